package domain

// Film keeps release_date as an opaque string: the API never interprets it,
// only stores and echoes it.
type Film struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Episode      string  `json:"episode"`
	Director     *string `json:"director"`
	Producer     *string `json:"producer"`
	ReleaseDate  *string `json:"release_date"`
	OpeningCrawl *string `json:"opening_crawl"`
}

type FilmPatch struct {
	Title        *string
	Episode      *string
	Director     *string
	Producer     *string
	ReleaseDate  *string
	OpeningCrawl *string
}

type FilmDetail struct {
	Film
	FavoriteBy    []User      `json:"favorite_by"`
	FeatureChar   []Character `json:"feature_char"`
	FeaturePlanet []Planet    `json:"feature_planet"`
}
