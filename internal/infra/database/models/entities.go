package models

type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	IsActive bool   `json:"is_active" gorm:"type:boolean;not null"`
	UserName string `json:"user_name" gorm:"type:varchar(20);uniqueIndex;not null"`
	Email    string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:text;not null"`
}

type Character struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName  string  `json:"full_name" gorm:"type:varchar(50);uniqueIndex;not null"`
	BirthYear *string `json:"birth_year" gorm:"type:varchar(10)"`
	Gender    *string `json:"gender" gorm:"type:varchar(10)"`
	HeightMts *int    `json:"height_mts" gorm:"type:integer"`
	WeightKg  *int    `json:"weight_kg" gorm:"type:integer"`
	SkinTone  *string `json:"skin_tone" gorm:"type:varchar(20)"`
	EyeColor  *string `json:"eye_color" gorm:"type:varchar(20)"`
	HairColor *string `json:"hair_color" gorm:"type:varchar(20)"`
}

type Planet struct {
	ID              int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string  `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	Climate         *string `json:"climate" gorm:"type:varchar(20)"`
	Terrain         *string `json:"terrain" gorm:"type:varchar(20)"`
	PopulationCount *int64  `json:"population_count" gorm:"type:bigint"`
	Gravity         *string `json:"gravity" gorm:"type:text"`
	Diameter        *int    `json:"diameter" gorm:"type:integer"`
	WaterSurface    *int    `json:"water_surface" gorm:"type:integer"`
	OrbitalPeriod   *int    `json:"orbital_period" gorm:"type:integer"`
	RotationPeriod  *int    `json:"rotation_period" gorm:"type:integer"`
}

type Film struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string  `json:"title" gorm:"type:varchar(50);uniqueIndex;not null"`
	Episode      string  `json:"episode" gorm:"type:varchar(10);not null"`
	Director     *string `json:"director" gorm:"type:varchar(20)"`
	Producer     *string `json:"producer" gorm:"type:varchar(20)"`
	ReleaseDate  *string `json:"release_date" gorm:"type:varchar(20)"`
	OpeningCrawl *string `json:"opening_crawl" gorm:"type:text"`
}
