package usecase

import (
	"context"

	"github.com/totegamma/swcatalog/internal/domain"
)

type FavoriteUsecase struct {
	repo   FavoriteRepository
	signal EventPublisher
}

func NewFavoriteUsecase(repo FavoriteRepository, signal EventPublisher) *FavoriteUsecase {
	return &FavoriteUsecase{repo: repo, signal: signal}
}

func (uc *FavoriteUsecase) FavoriteCharacter(ctx context.Context, userID int64, characterID int64) (domain.Favorite, error) {
	favorite, err := uc.repo.CreateCharacter(ctx, userID, characterID)
	if err != nil {
		return domain.Favorite{}, err
	}
	publish(ctx, uc.signal, "favorite.character.created", favorite.RegID)
	return favorite, nil
}

func (uc *FavoriteUsecase) FavoritePlanet(ctx context.Context, userID int64, planetID int64) (domain.Favorite, error) {
	favorite, err := uc.repo.CreatePlanet(ctx, userID, planetID)
	if err != nil {
		return domain.Favorite{}, err
	}
	publish(ctx, uc.signal, "favorite.planet.created", favorite.RegID)
	return favorite, nil
}

func (uc *FavoriteUsecase) FavoriteFilm(ctx context.Context, userID int64, filmID int64) (domain.Favorite, error) {
	favorite, err := uc.repo.CreateFilm(ctx, userID, filmID)
	if err != nil {
		return domain.Favorite{}, err
	}
	publish(ctx, uc.signal, "favorite.film.created", favorite.RegID)
	return favorite, nil
}

func (uc *FavoriteUsecase) ListByUser(ctx context.Context, userID int64) (domain.UserFavorites, error) {
	return uc.repo.ListByUser(ctx, userID)
}

func (uc *FavoriteUsecase) RemoveCharacterRegister(ctx context.Context, regID int64) error {
	if err := uc.repo.DeleteCharacterByRegID(ctx, regID); err != nil {
		return err
	}
	publish(ctx, uc.signal, "favorite.character.deleted", regID)
	return nil
}

func (uc *FavoriteUsecase) RemoveCharacterPair(ctx context.Context, userID int64, characterID int64) error {
	if err := uc.repo.DeleteCharacterPair(ctx, userID, characterID); err != nil {
		return err
	}
	publish(ctx, uc.signal, "favorite.character.deleted", characterID)
	return nil
}

func (uc *FavoriteUsecase) RemovePlanetPair(ctx context.Context, userID int64, planetID int64) error {
	if err := uc.repo.DeletePlanetPair(ctx, userID, planetID); err != nil {
		return err
	}
	publish(ctx, uc.signal, "favorite.planet.deleted", planetID)
	return nil
}

func (uc *FavoriteUsecase) RemoveFilmPair(ctx context.Context, userID int64, filmID int64) error {
	if err := uc.repo.DeleteFilmPair(ctx, userID, filmID); err != nil {
		return err
	}
	publish(ctx, uc.signal, "favorite.film.deleted", filmID)
	return nil
}
