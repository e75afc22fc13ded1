package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/swcatalog/internal/domain"
	"github.com/totegamma/swcatalog/internal/infra/database/models"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func planetToDomain(m models.Planet) domain.Planet {
	return domain.Planet{
		ID:              m.ID,
		Name:            m.Name,
		Climate:         m.Climate,
		Terrain:         m.Terrain,
		PopulationCount: m.PopulationCount,
		Gravity:         m.Gravity,
		Diameter:        m.Diameter,
		WaterSurface:    m.WaterSurface,
		OrbitalPeriod:   m.OrbitalPeriod,
		RotationPeriod:  m.RotationPeriod,
	}
}

func (r *PlanetRepository) Create(ctx context.Context, planet domain.Planet) (domain.Planet, error) {
	model := models.Planet{
		Name:            planet.Name,
		Climate:         planet.Climate,
		Terrain:         planet.Terrain,
		PopulationCount: planet.PopulationCount,
		Gravity:         planet.Gravity,
		Diameter:        planet.Diameter,
		WaterSurface:    planet.WaterSurface,
		OrbitalPeriod:   planet.OrbitalPeriod,
		RotationPeriod:  planet.RotationPeriod,
	}

	err := r.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Planet{}, domain.ConflictError{Resource: "planet", Detail: "name already in use"}
		}
		return domain.Planet{}, pkgerrors.Wrap(err, "failed to create planet")
	}

	return planetToDomain(model), nil
}

func (r *PlanetRepository) Get(ctx context.Context, id int64) (domain.Planet, error) {
	var model models.Planet
	err := r.db.WithContext(ctx).Take(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Planet{}, domain.NotFoundError{Resource: "planet", ID: id}
		}
		return domain.Planet{}, pkgerrors.Wrap(err, "failed to get planet")
	}
	return planetToDomain(model), nil
}

func (r *PlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	var rows []models.Planet
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list planets")
	}

	planets := make([]domain.Planet, 0, len(rows))
	for _, row := range rows {
		planets = append(planets, planetToDomain(row))
	}
	return planets, nil
}

func (r *PlanetRepository) GetDetail(ctx context.Context, id int64) (domain.PlanetDetail, error) {
	planet, err := r.Get(ctx, id)
	if err != nil {
		return domain.PlanetDetail{}, err
	}

	var userRows []models.User
	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN favorite_planets fp ON fp.user_id = users.id").
		Where("fp.planet_id = ?", id).
		Order("users.id").
		Find(&userRows).Error
	if err != nil {
		return domain.PlanetDetail{}, pkgerrors.Wrap(err, "failed to resolve favorite_by")
	}

	var characterRows []models.Character
	err = r.db.WithContext(ctx).
		Model(&models.Character{}).
		Joins("JOIN native_planets np ON np.character_id = characters.id").
		Where("np.planet_id = ?", id).
		Order("characters.id").
		Find(&characterRows).Error
	if err != nil {
		return domain.PlanetDetail{}, pkgerrors.Wrap(err, "failed to resolve natives")
	}

	var filmRows []models.Film
	err = r.db.WithContext(ctx).
		Model(&models.Film{}).
		Joins("JOIN appearance_planets ap ON ap.film_id = films.id").
		Where("ap.planet_id = ?", id).
		Order("films.id").
		Find(&filmRows).Error
	if err != nil {
		return domain.PlanetDetail{}, pkgerrors.Wrap(err, "failed to resolve appearances")
	}

	detail := domain.PlanetDetail{
		Planet:      planet,
		FavoriteBy:  make([]domain.User, 0, len(userRows)),
		Natives:     make([]domain.Character, 0, len(characterRows)),
		Appearances: make([]domain.Film, 0, len(filmRows)),
	}
	for _, row := range userRows {
		detail.FavoriteBy = append(detail.FavoriteBy, userToDomain(row))
	}
	for _, row := range characterRows {
		detail.Natives = append(detail.Natives, characterToDomain(row))
	}
	for _, row := range filmRows {
		detail.Appearances = append(detail.Appearances, filmToDomain(row))
	}
	return detail, nil
}

func (r *PlanetRepository) Update(ctx context.Context, id int64, patch domain.PlanetPatch) (domain.Planet, error) {
	var model models.Planet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Take(&model, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "planet", ID: id}
			}
			return err
		}

		if patch.Name != nil {
			model.Name = *patch.Name
		}
		if patch.Climate != nil {
			model.Climate = patch.Climate
		}
		if patch.Terrain != nil {
			model.Terrain = patch.Terrain
		}
		if patch.PopulationCount != nil {
			model.PopulationCount = patch.PopulationCount
		}
		if patch.Gravity != nil {
			model.Gravity = patch.Gravity
		}
		if patch.Diameter != nil {
			model.Diameter = patch.Diameter
		}
		if patch.WaterSurface != nil {
			model.WaterSurface = patch.WaterSurface
		}
		if patch.OrbitalPeriod != nil {
			model.OrbitalPeriod = patch.OrbitalPeriod
		}
		if patch.RotationPeriod != nil {
			model.RotationPeriod = patch.RotationPeriod
		}

		return tx.Save(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Planet{}, domain.ConflictError{Resource: "planet", Detail: "name already in use"}
		}
		return domain.Planet{}, err
	}
	return planetToDomain(model), nil
}

func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Planet{}, id)
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to delete planet")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "planet", ID: id}
	}
	return nil
}
