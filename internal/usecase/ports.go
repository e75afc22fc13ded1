package usecase

import (
	"context"

	"github.com/totegamma/swcatalog/internal/domain"
)

// UserRepository defines persistence/lookup for user accounts. Lookups only
// see active users; Deactivate is the soft delete.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetActive(ctx context.Context, id int64) (domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error)
	Deactivate(ctx context.Context, id int64) (domain.User, error)
}

// CharacterRepository defines persistence/lookup for characters.
type CharacterRepository interface {
	Create(ctx context.Context, character domain.Character, homePlanet *int64) (domain.Character, error)
	Get(ctx context.Context, id int64) (domain.Character, error)
	GetDetail(ctx context.Context, id int64) (domain.CharacterDetail, error)
	List(ctx context.Context) ([]domain.Character, error)
	Update(ctx context.Context, id int64, patch domain.CharacterPatch) (domain.Character, error)
	Delete(ctx context.Context, id int64) error
}

// PlanetRepository defines persistence/lookup for planets.
type PlanetRepository interface {
	Create(ctx context.Context, planet domain.Planet) (domain.Planet, error)
	Get(ctx context.Context, id int64) (domain.Planet, error)
	GetDetail(ctx context.Context, id int64) (domain.PlanetDetail, error)
	List(ctx context.Context) ([]domain.Planet, error)
	Update(ctx context.Context, id int64, patch domain.PlanetPatch) (domain.Planet, error)
	Delete(ctx context.Context, id int64) error
}

// FilmRepository defines persistence/lookup for films. Create writes the film
// and its appearance rows atomically.
type FilmRepository interface {
	Create(ctx context.Context, film domain.Film, featureChars []int64, featurePlanets []int64) (domain.Film, error)
	Get(ctx context.Context, id int64) (domain.Film, error)
	GetDetail(ctx context.Context, id int64) (domain.FilmDetail, error)
	List(ctx context.Context) ([]domain.Film, error)
	Update(ctx context.Context, id int64, patch domain.FilmPatch) (domain.Film, error)
	Delete(ctx context.Context, id int64) error
}

// FavoriteRepository defines persistence for favorite associations.
type FavoriteRepository interface {
	CreateCharacter(ctx context.Context, userID int64, characterID int64) (domain.Favorite, error)
	CreatePlanet(ctx context.Context, userID int64, planetID int64) (domain.Favorite, error)
	CreateFilm(ctx context.Context, userID int64, filmID int64) (domain.Favorite, error)
	ListByUser(ctx context.Context, userID int64) (domain.UserFavorites, error)
	DeleteCharacterByRegID(ctx context.Context, regID int64) error
	DeleteCharacterPair(ctx context.Context, userID int64, characterID int64) error
	DeletePlanetPair(ctx context.Context, userID int64, planetID int64) error
	DeleteFilmPair(ctx context.Context, userID int64, filmID int64) error
}

// EventPublisher emits catalog change notifications.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
