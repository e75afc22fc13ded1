package usecase

import (
	"context"

	"github.com/totegamma/swcatalog/internal/domain"
)

type CharacterCreateInput struct {
	FullName   *string `json:"full_name"`
	BirthYear  *string `json:"birth_year"`
	Gender     *string `json:"gender"`
	HeightMts  *int    `json:"height_mts"`
	WeightKg   *int    `json:"weight_kg"`
	SkinTone   *string `json:"skin_tone"`
	EyeColor   *string `json:"eye_color"`
	HairColor  *string `json:"hair_color"`
	HomePlanet *int64  `json:"home_planet"`
}

type CharacterUpdateInput struct {
	FullName  *string `json:"full_name"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
	HeightMts *int    `json:"height_mts"`
	WeightKg  *int    `json:"weight_kg"`
	SkinTone  *string `json:"skin_tone"`
	EyeColor  *string `json:"eye_color"`
	HairColor *string `json:"hair_color"`
}

type CharacterUsecase struct {
	repo   CharacterRepository
	signal EventPublisher
}

func NewCharacterUsecase(repo CharacterRepository, signal EventPublisher) *CharacterUsecase {
	return &CharacterUsecase{repo: repo, signal: signal}
}

// Create validates the body, inserts the character, and reports which
// optional fields defaulted to null. A home_planet id additionally creates
// the natives association in the same transaction.
func (uc *CharacterUsecase) Create(ctx context.Context, input CharacterCreateInput) (domain.Character, []string, error) {
	if input.FullName == nil {
		return domain.Character{}, nil, domain.MissingFieldError{Field: "full_name"}
	}

	missing := []string{}
	if input.BirthYear == nil {
		missing = append(missing, "birth_year")
	}
	if input.Gender == nil {
		missing = append(missing, "gender")
	}
	if input.HeightMts == nil {
		missing = append(missing, "height_mts")
	}
	if input.WeightKg == nil {
		missing = append(missing, "weight_kg")
	}
	if input.SkinTone == nil {
		missing = append(missing, "skin_tone")
	}
	if input.EyeColor == nil {
		missing = append(missing, "eye_color")
	}
	if input.HairColor == nil {
		missing = append(missing, "hair_color")
	}
	if input.HomePlanet == nil {
		missing = append(missing, "home_planet")
	}

	created, err := uc.repo.Create(ctx, domain.Character{
		FullName:  *input.FullName,
		BirthYear: input.BirthYear,
		Gender:    input.Gender,
		HeightMts: input.HeightMts,
		WeightKg:  input.WeightKg,
		SkinTone:  input.SkinTone,
		EyeColor:  input.EyeColor,
		HairColor: input.HairColor,
	}, input.HomePlanet)
	if err != nil {
		return domain.Character{}, nil, err
	}

	publish(ctx, uc.signal, "character.created", created.ID)
	return created, missing, nil
}

func (uc *CharacterUsecase) Get(ctx context.Context, id int64) (domain.CharacterDetail, error) {
	return uc.repo.GetDetail(ctx, id)
}

func (uc *CharacterUsecase) List(ctx context.Context) ([]domain.Character, error) {
	return uc.repo.List(ctx)
}

func (uc *CharacterUsecase) Update(ctx context.Context, id int64, input CharacterUpdateInput) (domain.Character, []string, error) {
	notEdited := []string{}
	if input.FullName == nil {
		notEdited = append(notEdited, "full_name")
	}
	if input.BirthYear == nil {
		notEdited = append(notEdited, "birth_year")
	}
	if input.Gender == nil {
		notEdited = append(notEdited, "gender")
	}
	if input.HeightMts == nil {
		notEdited = append(notEdited, "height_mts")
	}
	if input.WeightKg == nil {
		notEdited = append(notEdited, "weight_kg")
	}
	if input.SkinTone == nil {
		notEdited = append(notEdited, "skin_tone")
	}
	if input.EyeColor == nil {
		notEdited = append(notEdited, "eye_color")
	}
	if input.HairColor == nil {
		notEdited = append(notEdited, "hair_color")
	}

	updated, err := uc.repo.Update(ctx, id, domain.CharacterPatch{
		FullName:  input.FullName,
		BirthYear: input.BirthYear,
		Gender:    input.Gender,
		HeightMts: input.HeightMts,
		WeightKg:  input.WeightKg,
		SkinTone:  input.SkinTone,
		EyeColor:  input.EyeColor,
		HairColor: input.HairColor,
	})
	if err != nil {
		return domain.Character{}, nil, err
	}

	publish(ctx, uc.signal, "character.updated", updated.ID)
	return updated, notEdited, nil
}

func (uc *CharacterUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, uc.signal, "character.deleted", id)
	return nil
}
