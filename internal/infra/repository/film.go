package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/swcatalog/internal/domain"
	"github.com/totegamma/swcatalog/internal/infra/database/models"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

func filmToDomain(m models.Film) domain.Film {
	return domain.Film{
		ID:           m.ID,
		Title:        m.Title,
		Episode:      m.Episode,
		Director:     m.Director,
		Producer:     m.Producer,
		ReleaseDate:  m.ReleaseDate,
		OpeningCrawl: m.OpeningCrawl,
	}
}

// Create inserts the film and every appearance row in one transaction. Every
// referenced id is verified against an existing row before commit, so a
// single dangling id leaves no rows behind.
func (r *FilmRepository) Create(ctx context.Context, film domain.Film, featureChars []int64, featurePlanets []int64) (domain.Film, error) {
	model := models.Film{
		Title:        film.Title,
		Episode:      film.Episode,
		Director:     film.Director,
		Producer:     film.Producer,
		ReleaseDate:  film.ReleaseDate,
		OpeningCrawl: film.OpeningCrawl,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ConflictError{Resource: "film", Detail: "title already in use"}
			}
			return err
		}

		for _, planetID := range featurePlanets {
			var planet models.Planet
			if err := tx.Take(&planet, planetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.InvalidReferenceError{Resource: "planet", ID: planetID}
				}
				return err
			}
			err := tx.Create(&models.AppearancePlanet{
				PlanetID: planetID,
				FilmID:   model.ID,
			}).Error
			if err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ConflictError{Resource: "feature_planet", Detail: "duplicate planet id in list"}
				}
				return err
			}
		}

		for _, characterID := range featureChars {
			var character models.Character
			if err := tx.Take(&character, characterID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.InvalidReferenceError{Resource: "character", ID: characterID}
				}
				return err
			}
			err := tx.Create(&models.AppearanceCharacter{
				CharacterID: characterID,
				FilmID:      model.ID,
			}).Error
			if err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ConflictError{Resource: "feature_char", Detail: "duplicate character id in list"}
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.Film{}, err
	}

	return filmToDomain(model), nil
}

func (r *FilmRepository) Get(ctx context.Context, id int64) (domain.Film, error) {
	var model models.Film
	err := r.db.WithContext(ctx).Take(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Film{}, domain.NotFoundError{Resource: "film", ID: id}
		}
		return domain.Film{}, pkgerrors.Wrap(err, "failed to get film")
	}
	return filmToDomain(model), nil
}

func (r *FilmRepository) List(ctx context.Context) ([]domain.Film, error) {
	var rows []models.Film
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list films")
	}

	films := make([]domain.Film, 0, len(rows))
	for _, row := range rows {
		films = append(films, filmToDomain(row))
	}
	return films, nil
}

func (r *FilmRepository) GetDetail(ctx context.Context, id int64) (domain.FilmDetail, error) {
	film, err := r.Get(ctx, id)
	if err != nil {
		return domain.FilmDetail{}, err
	}

	var userRows []models.User
	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN favorite_films ff ON ff.user_id = users.id").
		Where("ff.film_id = ?", id).
		Order("users.id").
		Find(&userRows).Error
	if err != nil {
		return domain.FilmDetail{}, pkgerrors.Wrap(err, "failed to resolve favorite_by")
	}

	var characterRows []models.Character
	err = r.db.WithContext(ctx).
		Model(&models.Character{}).
		Joins("JOIN appearance_characters ac ON ac.character_id = characters.id").
		Where("ac.film_id = ?", id).
		Order("characters.id").
		Find(&characterRows).Error
	if err != nil {
		return domain.FilmDetail{}, pkgerrors.Wrap(err, "failed to resolve feature_char")
	}

	var planetRows []models.Planet
	err = r.db.WithContext(ctx).
		Model(&models.Planet{}).
		Joins("JOIN appearance_planets ap ON ap.planet_id = planets.id").
		Where("ap.film_id = ?", id).
		Order("planets.id").
		Find(&planetRows).Error
	if err != nil {
		return domain.FilmDetail{}, pkgerrors.Wrap(err, "failed to resolve feature_planet")
	}

	detail := domain.FilmDetail{
		Film:          film,
		FavoriteBy:    make([]domain.User, 0, len(userRows)),
		FeatureChar:   make([]domain.Character, 0, len(characterRows)),
		FeaturePlanet: make([]domain.Planet, 0, len(planetRows)),
	}
	for _, row := range userRows {
		detail.FavoriteBy = append(detail.FavoriteBy, userToDomain(row))
	}
	for _, row := range characterRows {
		detail.FeatureChar = append(detail.FeatureChar, characterToDomain(row))
	}
	for _, row := range planetRows {
		detail.FeaturePlanet = append(detail.FeaturePlanet, planetToDomain(row))
	}
	return detail, nil
}

func (r *FilmRepository) Update(ctx context.Context, id int64, patch domain.FilmPatch) (domain.Film, error) {
	var model models.Film
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Take(&model, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "film", ID: id}
			}
			return err
		}

		if patch.Title != nil {
			model.Title = *patch.Title
		}
		if patch.Episode != nil {
			model.Episode = *patch.Episode
		}
		if patch.Director != nil {
			model.Director = patch.Director
		}
		if patch.Producer != nil {
			model.Producer = patch.Producer
		}
		if patch.ReleaseDate != nil {
			model.ReleaseDate = patch.ReleaseDate
		}
		if patch.OpeningCrawl != nil {
			model.OpeningCrawl = patch.OpeningCrawl
		}

		return tx.Save(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Film{}, domain.ConflictError{Resource: "film", Detail: "title already in use"}
		}
		return domain.Film{}, err
	}
	return filmToDomain(model), nil
}

func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Film{}, id)
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to delete film")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "film", ID: id}
	}
	return nil
}
