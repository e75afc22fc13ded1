package usecase

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/swcatalog/internal/domain"
)

var tracer = otel.Tracer("usecase")

type FilmCreateInput struct {
	Title         *string  `json:"title"`
	Episode       *string  `json:"episode"`
	Director      *string  `json:"director"`
	Producer      *string  `json:"producer"`
	ReleaseDate   *string  `json:"release_date"`
	OpeningCrawl  *string  `json:"opening_crawl"`
	FeatureChar   *[]int64 `json:"feature_char"`
	FeaturePlanet *[]int64 `json:"feature_planet"`
}

type FilmUpdateInput struct {
	Title        *string `json:"title"`
	Episode      *string `json:"episode"`
	Director     *string `json:"director"`
	Producer     *string `json:"producer"`
	ReleaseDate  *string `json:"release_date"`
	OpeningCrawl *string `json:"opening_crawl"`
}

type FilmUsecase struct {
	repo   FilmRepository
	signal EventPublisher
}

func NewFilmUsecase(repo FilmRepository, signal EventPublisher) *FilmUsecase {
	return &FilmUsecase{repo: repo, signal: signal}
}

// Create validates the body and writes the film together with its appearance
// rows. All referenced ids are checked before anything commits; one bad id
// means nothing persists.
func (uc *FilmUsecase) Create(ctx context.Context, input FilmCreateInput) (domain.Film, []string, error) {
	ctx, span := tracer.Start(ctx, "Film.Usecase.Create")
	defer span.End()

	if input.Title == nil {
		return domain.Film{}, nil, domain.MissingFieldError{Field: "title"}
	}
	if input.Episode == nil {
		return domain.Film{}, nil, domain.MissingFieldError{Field: "episode"}
	}

	missing := []string{}
	if input.Director == nil {
		missing = append(missing, "director")
	}
	if input.Producer == nil {
		missing = append(missing, "producer")
	}
	if input.ReleaseDate == nil {
		missing = append(missing, "release_date")
	}
	if input.OpeningCrawl == nil {
		missing = append(missing, "opening_crawl")
	}
	if input.FeatureChar == nil {
		missing = append(missing, "feature_char")
	}
	if input.FeaturePlanet == nil {
		missing = append(missing, "feature_planet")
	}

	var featureChars, featurePlanets []int64
	if input.FeatureChar != nil {
		featureChars = *input.FeatureChar
	}
	if input.FeaturePlanet != nil {
		featurePlanets = *input.FeaturePlanet
	}

	created, err := uc.repo.Create(ctx, domain.Film{
		Title:        *input.Title,
		Episode:      *input.Episode,
		Director:     input.Director,
		Producer:     input.Producer,
		ReleaseDate:  input.ReleaseDate,
		OpeningCrawl: input.OpeningCrawl,
	}, featureChars, featurePlanets)
	if err != nil {
		span.RecordError(err)
		return domain.Film{}, nil, err
	}

	publish(ctx, uc.signal, "film.created", created.ID)
	return created, missing, nil
}

func (uc *FilmUsecase) Get(ctx context.Context, id int64) (domain.FilmDetail, error) {
	return uc.repo.GetDetail(ctx, id)
}

func (uc *FilmUsecase) List(ctx context.Context) ([]domain.Film, error) {
	return uc.repo.List(ctx)
}

func (uc *FilmUsecase) Update(ctx context.Context, id int64, input FilmUpdateInput) (domain.Film, []string, error) {
	notEdited := []string{}
	if input.Title == nil {
		notEdited = append(notEdited, "title")
	}
	if input.Episode == nil {
		notEdited = append(notEdited, "episode")
	}
	if input.Director == nil {
		notEdited = append(notEdited, "director")
	}
	if input.Producer == nil {
		notEdited = append(notEdited, "producer")
	}
	if input.ReleaseDate == nil {
		notEdited = append(notEdited, "release_date")
	}
	if input.OpeningCrawl == nil {
		notEdited = append(notEdited, "opening_crawl")
	}

	updated, err := uc.repo.Update(ctx, id, domain.FilmPatch{
		Title:        input.Title,
		Episode:      input.Episode,
		Director:     input.Director,
		Producer:     input.Producer,
		ReleaseDate:  input.ReleaseDate,
		OpeningCrawl: input.OpeningCrawl,
	})
	if err != nil {
		return domain.Film{}, nil, err
	}

	publish(ctx, uc.signal, "film.updated", updated.ID)
	return updated, notEdited, nil
}

func (uc *FilmUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, uc.signal, "film.deleted", id)
	return nil
}
