package usecase

import (
	"context"

	"github.com/totegamma/swcatalog/internal/domain"
)

type PlanetCreateInput struct {
	Name            *string `json:"name"`
	Climate         *string `json:"climate"`
	Terrain         *string `json:"terrain"`
	PopulationCount *int64  `json:"population_count"`
	Gravity         *string `json:"gravity"`
	Diameter        *int    `json:"diameter"`
	WaterSurface    *int    `json:"water_surface"`
	OrbitalPeriod   *int    `json:"orbital_period"`
	RotationPeriod  *int    `json:"rotation_period"`
}

type PlanetUpdateInput struct {
	Name            *string `json:"name"`
	Climate         *string `json:"climate"`
	Terrain         *string `json:"terrain"`
	PopulationCount *int64  `json:"population_count"`
	Gravity         *string `json:"gravity"`
	Diameter        *int    `json:"diameter"`
	WaterSurface    *int    `json:"water_surface"`
	OrbitalPeriod   *int    `json:"orbital_period"`
	RotationPeriod  *int    `json:"rotation_period"`
}

type PlanetUsecase struct {
	repo   PlanetRepository
	signal EventPublisher
}

func NewPlanetUsecase(repo PlanetRepository, signal EventPublisher) *PlanetUsecase {
	return &PlanetUsecase{repo: repo, signal: signal}
}

func (uc *PlanetUsecase) Create(ctx context.Context, input PlanetCreateInput) (domain.Planet, []string, error) {
	if input.Name == nil {
		return domain.Planet{}, nil, domain.MissingFieldError{Field: "name"}
	}

	missing := []string{}
	if input.Climate == nil {
		missing = append(missing, "climate")
	}
	if input.Terrain == nil {
		missing = append(missing, "terrain")
	}
	if input.PopulationCount == nil {
		missing = append(missing, "population_count")
	}
	if input.Gravity == nil {
		missing = append(missing, "gravity")
	}
	if input.Diameter == nil {
		missing = append(missing, "diameter")
	}
	if input.WaterSurface == nil {
		missing = append(missing, "water_surface")
	}
	if input.OrbitalPeriod == nil {
		missing = append(missing, "orbital_period")
	}
	if input.RotationPeriod == nil {
		missing = append(missing, "rotation_period")
	}

	created, err := uc.repo.Create(ctx, domain.Planet{
		Name:            *input.Name,
		Climate:         input.Climate,
		Terrain:         input.Terrain,
		PopulationCount: input.PopulationCount,
		Gravity:         input.Gravity,
		Diameter:        input.Diameter,
		WaterSurface:    input.WaterSurface,
		OrbitalPeriod:   input.OrbitalPeriod,
		RotationPeriod:  input.RotationPeriod,
	})
	if err != nil {
		return domain.Planet{}, nil, err
	}

	publish(ctx, uc.signal, "planet.created", created.ID)
	return created, missing, nil
}

func (uc *PlanetUsecase) Get(ctx context.Context, id int64) (domain.PlanetDetail, error) {
	return uc.repo.GetDetail(ctx, id)
}

func (uc *PlanetUsecase) List(ctx context.Context) ([]domain.Planet, error) {
	return uc.repo.List(ctx)
}

func (uc *PlanetUsecase) Update(ctx context.Context, id int64, input PlanetUpdateInput) (domain.Planet, []string, error) {
	notEdited := []string{}
	if input.Name == nil {
		notEdited = append(notEdited, "name")
	}
	if input.Climate == nil {
		notEdited = append(notEdited, "climate")
	}
	if input.Terrain == nil {
		notEdited = append(notEdited, "terrain")
	}
	if input.PopulationCount == nil {
		notEdited = append(notEdited, "population_count")
	}
	if input.Gravity == nil {
		notEdited = append(notEdited, "gravity")
	}
	if input.Diameter == nil {
		notEdited = append(notEdited, "diameter")
	}
	if input.WaterSurface == nil {
		notEdited = append(notEdited, "water_surface")
	}
	if input.OrbitalPeriod == nil {
		notEdited = append(notEdited, "orbital_period")
	}
	if input.RotationPeriod == nil {
		notEdited = append(notEdited, "rotation_period")
	}

	updated, err := uc.repo.Update(ctx, id, domain.PlanetPatch{
		Name:            input.Name,
		Climate:         input.Climate,
		Terrain:         input.Terrain,
		PopulationCount: input.PopulationCount,
		Gravity:         input.Gravity,
		Diameter:        input.Diameter,
		WaterSurface:    input.WaterSurface,
		OrbitalPeriod:   input.OrbitalPeriod,
		RotationPeriod:  input.RotationPeriod,
	})
	if err != nil {
		return domain.Planet{}, nil, err
	}

	publish(ctx, uc.signal, "planet.updated", updated.ID)
	return updated, notEdited, nil
}

func (uc *PlanetUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, uc.signal, "planet.deleted", id)
	return nil
}
