package models

// Association rows carry their own surrogate id plus both foreign keys.
// Every kind enforces pair uniqueness through a composite unique index, and
// deleting either end cascades to the row.

type FavoriteCharacter struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64     `json:"user_id" gorm:"not null;uniqueIndex:uniq_favorite_character"`
	User        User      `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	CharacterID int64     `json:"character_id" gorm:"not null;uniqueIndex:uniq_favorite_character"`
	Character   Character `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

type FavoritePlanet struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   int64  `json:"user_id" gorm:"not null;uniqueIndex:uniq_favorite_planet"`
	User     User   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	PlanetID int64  `json:"planet_id" gorm:"not null;uniqueIndex:uniq_favorite_planet"`
	Planet   Planet `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

type FavoriteFilm struct {
	ID     int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64 `json:"user_id" gorm:"not null;uniqueIndex:uniq_favorite_film"`
	User   User  `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	FilmID int64 `json:"film_id" gorm:"not null;uniqueIndex:uniq_favorite_film"`
	Film   Film  `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

type NativePlanet struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CharacterID int64     `json:"character_id" gorm:"not null;uniqueIndex:uniq_native_planet"`
	Character   Character `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	PlanetID    int64     `json:"planet_id" gorm:"not null;uniqueIndex:uniq_native_planet"`
	Planet      Planet    `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

type AppearanceCharacter struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CharacterID int64     `json:"character_id" gorm:"not null;uniqueIndex:uniq_appearance_character"`
	Character   Character `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	FilmID      int64     `json:"film_id" gorm:"not null;uniqueIndex:uniq_appearance_character"`
	Film        Film      `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

type AppearancePlanet struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	PlanetID int64  `json:"planet_id" gorm:"not null;uniqueIndex:uniq_appearance_planet"`
	Planet   Planet `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	FilmID   int64  `json:"film_id" gorm:"not null;uniqueIndex:uniq_appearance_planet"`
	Film     Film   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
