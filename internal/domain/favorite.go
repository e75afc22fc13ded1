package domain

// Favorite is one favorite association row. RegID is the row's own surrogate
// id, exposed to clients so registers can be deleted directly.
type Favorite struct {
	RegID    int64 `json:"reg_id"`
	UserID   int64 `json:"user_id"`
	TargetID int64 `json:"target_id"`
}

type FavoriteCharacterEntry struct {
	RegID     int64     `json:"reg_id"`
	Character Character `json:"Character"`
}

type FavoritePlanetEntry struct {
	RegID  int64  `json:"reg_id"`
	Planet Planet `json:"Planet"`
}

type FavoriteFilmEntry struct {
	RegID int64 `json:"reg_id"`
	Film  Film  `json:"Film"`
}

// UserFavorites groups a user's favorites by target kind.
type UserFavorites struct {
	Characters []FavoriteCharacterEntry
	Planets    []FavoritePlanetEntry
	Films      []FavoriteFilmEntry
}
