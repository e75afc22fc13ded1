package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/swcatalog/internal/domain"
	"github.com/totegamma/swcatalog/internal/infra/database/models"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func characterToDomain(m models.Character) domain.Character {
	return domain.Character{
		ID:        m.ID,
		FullName:  m.FullName,
		BirthYear: m.BirthYear,
		Gender:    m.Gender,
		HeightMts: m.HeightMts,
		WeightKg:  m.WeightKg,
		SkinTone:  m.SkinTone,
		EyeColor:  m.EyeColor,
		HairColor: m.HairColor,
	}
}

// Create inserts the character and, when homePlanet is given, its natives
// row in the same transaction. A dangling planet id rolls everything back.
func (r *CharacterRepository) Create(ctx context.Context, character domain.Character, homePlanet *int64) (domain.Character, error) {
	model := models.Character{
		FullName:  character.FullName,
		BirthYear: character.BirthYear,
		Gender:    character.Gender,
		HeightMts: character.HeightMts,
		WeightKg:  character.WeightKg,
		SkinTone:  character.SkinTone,
		EyeColor:  character.EyeColor,
		HairColor: character.HairColor,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ConflictError{Resource: "character", Detail: "full_name already in use"}
			}
			return err
		}

		if homePlanet == nil {
			return nil
		}

		var planet models.Planet
		if err := tx.Take(&planet, *homePlanet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.InvalidReferenceError{Resource: "planet", ID: *homePlanet}
			}
			return err
		}

		return tx.Create(&models.NativePlanet{
			CharacterID: model.ID,
			PlanetID:    planet.ID,
		}).Error
	})
	if err != nil {
		return domain.Character{}, err
	}

	return characterToDomain(model), nil
}

func (r *CharacterRepository) Get(ctx context.Context, id int64) (domain.Character, error) {
	var model models.Character
	err := r.db.WithContext(ctx).Take(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Character{}, domain.NotFoundError{Resource: "character", ID: id}
		}
		return domain.Character{}, pkgerrors.Wrap(err, "failed to get character")
	}
	return characterToDomain(model), nil
}

func (r *CharacterRepository) List(ctx context.Context) ([]domain.Character, error) {
	var rows []models.Character
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list characters")
	}

	characters := make([]domain.Character, 0, len(rows))
	for _, row := range rows {
		characters = append(characters, characterToDomain(row))
	}
	return characters, nil
}

// GetDetail resolves the character plus its relations through explicit join
// queries.
func (r *CharacterRepository) GetDetail(ctx context.Context, id int64) (domain.CharacterDetail, error) {
	character, err := r.Get(ctx, id)
	if err != nil {
		return domain.CharacterDetail{}, err
	}

	var userRows []models.User
	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN favorite_characters fc ON fc.user_id = users.id").
		Where("fc.character_id = ?", id).
		Order("users.id").
		Find(&userRows).Error
	if err != nil {
		return domain.CharacterDetail{}, pkgerrors.Wrap(err, "failed to resolve favorite_by")
	}

	var planetRows []models.Planet
	err = r.db.WithContext(ctx).
		Model(&models.Planet{}).
		Joins("JOIN native_planets np ON np.planet_id = planets.id").
		Where("np.character_id = ?", id).
		Order("planets.id").
		Find(&planetRows).Error
	if err != nil {
		return domain.CharacterDetail{}, pkgerrors.Wrap(err, "failed to resolve home_planet")
	}

	var filmRows []models.Film
	err = r.db.WithContext(ctx).
		Model(&models.Film{}).
		Joins("JOIN appearance_characters ac ON ac.film_id = films.id").
		Where("ac.character_id = ?", id).
		Order("films.id").
		Find(&filmRows).Error
	if err != nil {
		return domain.CharacterDetail{}, pkgerrors.Wrap(err, "failed to resolve appearances")
	}

	detail := domain.CharacterDetail{
		Character:   character,
		FavoriteBy:  make([]domain.User, 0, len(userRows)),
		HomePlanet:  make([]domain.Planet, 0, len(planetRows)),
		Appearances: make([]domain.Film, 0, len(filmRows)),
	}
	for _, row := range userRows {
		detail.FavoriteBy = append(detail.FavoriteBy, userToDomain(row))
	}
	for _, row := range planetRows {
		detail.HomePlanet = append(detail.HomePlanet, planetToDomain(row))
	}
	for _, row := range filmRows {
		detail.Appearances = append(detail.Appearances, filmToDomain(row))
	}
	return detail, nil
}

func (r *CharacterRepository) Update(ctx context.Context, id int64, patch domain.CharacterPatch) (domain.Character, error) {
	var model models.Character
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Take(&model, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "character", ID: id}
			}
			return err
		}

		if patch.FullName != nil {
			model.FullName = *patch.FullName
		}
		if patch.BirthYear != nil {
			model.BirthYear = patch.BirthYear
		}
		if patch.Gender != nil {
			model.Gender = patch.Gender
		}
		if patch.HeightMts != nil {
			model.HeightMts = patch.HeightMts
		}
		if patch.WeightKg != nil {
			model.WeightKg = patch.WeightKg
		}
		if patch.SkinTone != nil {
			model.SkinTone = patch.SkinTone
		}
		if patch.EyeColor != nil {
			model.EyeColor = patch.EyeColor
		}
		if patch.HairColor != nil {
			model.HairColor = patch.HairColor
		}

		return tx.Save(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Character{}, domain.ConflictError{Resource: "character", Detail: "full_name already in use"}
		}
		return domain.Character{}, err
	}
	return characterToDomain(model), nil
}

// Delete removes the character. Association rows go with it through the
// foreign key cascade.
func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Character{}, id)
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to delete character")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "character", ID: id}
	}
	return nil
}
