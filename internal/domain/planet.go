package domain

type Planet struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Climate         *string `json:"climate"`
	Terrain         *string `json:"terrain"`
	PopulationCount *int64  `json:"population_count"`
	Gravity         *string `json:"gravity"`
	Diameter        *int    `json:"diameter"`
	WaterSurface    *int    `json:"water_surface"`
	OrbitalPeriod   *int    `json:"orbital_period"`
	RotationPeriod  *int    `json:"rotation_period"`
}

type PlanetPatch struct {
	Name            *string
	Climate         *string
	Terrain         *string
	PopulationCount *int64
	Gravity         *string
	Diameter        *int
	WaterSurface    *int
	OrbitalPeriod   *int
	RotationPeriod  *int
}

type PlanetDetail struct {
	Planet
	FavoriteBy  []User      `json:"favorite_by"`
	Natives     []Character `json:"natives"`
	Appearances []Film      `json:"appearances"`
}
