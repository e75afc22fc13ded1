package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/swcatalog/internal/domain"
	"github.com/totegamma/swcatalog/internal/infra/database/models"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) activeUser(tx *gorm.DB, userID int64) (models.User, error) {
	var user models.User
	err := tx.Where("id = ? AND is_active = ?", userID, true).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, domain.NotFoundError{Resource: "user", ID: userID}
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateCharacter records a (user, character) favorite. At most one row per
// pair exists.
func (r *FavoriteRepository) CreateCharacter(ctx context.Context, userID int64, characterID int64) (domain.Favorite, error) {
	row := models.FavoriteCharacter{UserID: userID, CharacterID: characterID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var character models.Character
		if err := tx.Take(&character, characterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "character", ID: characterID}
			}
			return err
		}

		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ConflictError{Resource: "favorite", Detail: "character already favorited"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Favorite{}, err
	}
	return domain.Favorite{RegID: row.ID, UserID: userID, TargetID: characterID}, nil
}

func (r *FavoriteRepository) CreatePlanet(ctx context.Context, userID int64, planetID int64) (domain.Favorite, error) {
	row := models.FavoritePlanet{UserID: userID, PlanetID: planetID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var planet models.Planet
		if err := tx.Take(&planet, planetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "planet", ID: planetID}
			}
			return err
		}

		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ConflictError{Resource: "favorite", Detail: "planet already favorited"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Favorite{}, err
	}
	return domain.Favorite{RegID: row.ID, UserID: userID, TargetID: planetID}, nil
}

func (r *FavoriteRepository) CreateFilm(ctx context.Context, userID int64, filmID int64) (domain.Favorite, error) {
	row := models.FavoriteFilm{UserID: userID, FilmID: filmID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var film models.Film
		if err := tx.Take(&film, filmID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "film", ID: filmID}
			}
			return err
		}

		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ConflictError{Resource: "favorite", Detail: "film already favorited"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Favorite{}, err
	}
	return domain.Favorite{RegID: row.ID, UserID: userID, TargetID: filmID}, nil
}

// ListByUser resolves every favorite row of the user to its target entity.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) (domain.UserFavorites, error) {
	favorites := domain.UserFavorites{
		Characters: []domain.FavoriteCharacterEntry{},
		Planets:    []domain.FavoritePlanetEntry{},
		Films:      []domain.FavoriteFilmEntry{},
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var characterRows []models.FavoriteCharacter
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&characterRows).Error; err != nil {
			return err
		}
		for _, row := range characterRows {
			var character models.Character
			if err := tx.Take(&character, row.CharacterID).Error; err != nil {
				return err
			}
			favorites.Characters = append(favorites.Characters, domain.FavoriteCharacterEntry{
				RegID:     row.ID,
				Character: characterToDomain(character),
			})
		}

		var planetRows []models.FavoritePlanet
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&planetRows).Error; err != nil {
			return err
		}
		for _, row := range planetRows {
			var planet models.Planet
			if err := tx.Take(&planet, row.PlanetID).Error; err != nil {
				return err
			}
			favorites.Planets = append(favorites.Planets, domain.FavoritePlanetEntry{
				RegID:  row.ID,
				Planet: planetToDomain(planet),
			})
		}

		var filmRows []models.FavoriteFilm
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&filmRows).Error; err != nil {
			return err
		}
		for _, row := range filmRows {
			var film models.Film
			if err := tx.Take(&film, row.FilmID).Error; err != nil {
				return err
			}
			favorites.Films = append(favorites.Films, domain.FavoriteFilmEntry{
				RegID: row.ID,
				Film:  filmToDomain(film),
			})
		}

		return nil
	})
	if err != nil {
		return domain.UserFavorites{}, err
	}
	return favorites, nil
}

// DeleteCharacterByRegID removes a favorite register directly by its own id.
func (r *FavoriteRepository) DeleteCharacterByRegID(ctx context.Context, regID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.FavoriteCharacter{}, regID)
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to delete favorite register")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "favorite register", ID: regID}
	}
	return nil
}

func (r *FavoriteRepository) DeleteCharacterPair(ctx context.Context, userID int64, characterID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var character models.Character
		if err := tx.Take(&character, characterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "character", ID: characterID}
			}
			return err
		}

		result := tx.Where("user_id = ? AND character_id = ?", userID, characterID).
			Delete(&models.FavoriteCharacter{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "favorite register"}
		}
		return nil
	})
}

func (r *FavoriteRepository) DeletePlanetPair(ctx context.Context, userID int64, planetID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var planet models.Planet
		if err := tx.Take(&planet, planetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "planet", ID: planetID}
			}
			return err
		}

		result := tx.Where("user_id = ? AND planet_id = ?", userID, planetID).
			Delete(&models.FavoritePlanet{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "favorite register"}
		}
		return nil
	})
}

func (r *FavoriteRepository) DeleteFilmPair(ctx context.Context, userID int64, filmID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.activeUser(tx, userID); err != nil {
			return err
		}

		var film models.Film
		if err := tx.Take(&film, filmID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "film", ID: filmID}
			}
			return err
		}

		result := tx.Where("user_id = ? AND film_id = ?", userID, filmID).
			Delete(&models.FavoriteFilm{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "favorite register"}
		}
		return nil
	})
}
