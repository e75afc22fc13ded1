package domain

// Character is a catalog character. Optional columns are pointers so an
// omitted field serializes as null.
type Character struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
	HeightMts *int    `json:"height_mts"`
	WeightKg  *int    `json:"weight_kg"`
	SkinTone  *string `json:"skin_tone"`
	EyeColor  *string `json:"eye_color"`
	HairColor *string `json:"hair_color"`
}

type CharacterPatch struct {
	FullName  *string
	BirthYear *string
	Gender    *string
	HeightMts *int
	WeightKg  *int
	SkinTone  *string
	EyeColor  *string
	HairColor *string
}

// CharacterDetail is the single-character view with its resolved relations.
type CharacterDetail struct {
	Character
	FavoriteBy  []User   `json:"favorite_by"`
	HomePlanet  []Planet `json:"home_planet"`
	Appearances []Film   `json:"appearances"`
}
