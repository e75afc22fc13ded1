package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/totegamma/swcatalog/internal/domain"
)

type mockFilmRepo struct {
	characters     map[int64]bool
	planets        map[int64]bool
	films          map[int64]domain.Film
	appearances    int
	nextID         int64
	createAttempts int
}

func newMockFilmRepo() *mockFilmRepo {
	return &mockFilmRepo{
		characters: map[int64]bool{},
		planets:    map[int64]bool{},
		films:      map[int64]domain.Film{},
		nextID:     1,
	}
}

func (m *mockFilmRepo) Create(ctx context.Context, film domain.Film, featureChars []int64, featurePlanets []int64) (domain.Film, error) {
	m.createAttempts++

	// all-or-nothing: validate every id before touching state
	for _, id := range featurePlanets {
		if !m.planets[id] {
			return domain.Film{}, domain.InvalidReferenceError{Resource: "planet", ID: id}
		}
	}
	for _, id := range featureChars {
		if !m.characters[id] {
			return domain.Film{}, domain.InvalidReferenceError{Resource: "character", ID: id}
		}
	}

	film.ID = m.nextID
	m.nextID++
	m.films[film.ID] = film
	m.appearances += len(featureChars) + len(featurePlanets)
	return film, nil
}

func (m *mockFilmRepo) Get(ctx context.Context, id int64) (domain.Film, error) {
	film, ok := m.films[id]
	if !ok {
		return domain.Film{}, domain.NotFoundError{Resource: "film", ID: id}
	}
	return film, nil
}

func (m *mockFilmRepo) GetDetail(ctx context.Context, id int64) (domain.FilmDetail, error) {
	film, err := m.Get(ctx, id)
	if err != nil {
		return domain.FilmDetail{}, err
	}
	return domain.FilmDetail{Film: film}, nil
}

func (m *mockFilmRepo) List(ctx context.Context) ([]domain.Film, error) {
	return nil, nil
}

func (m *mockFilmRepo) Update(ctx context.Context, id int64, patch domain.FilmPatch) (domain.Film, error) {
	return domain.Film{}, domain.NotFoundError{Resource: "film", ID: id}
}

func (m *mockFilmRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.films[id]; !ok {
		return domain.NotFoundError{Resource: "film", ID: id}
	}
	delete(m.films, id)
	return nil
}

func TestFilmCreateRequiresTitleAndEpisode(t *testing.T) {
	uc := NewFilmUsecase(newMockFilmRepo(), nil)

	_, _, err := uc.Create(context.Background(), FilmCreateInput{
		Episode: ptr("IV"),
	})
	var missing domain.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "title" {
		t.Fatalf("expected missing title, got %v", err)
	}

	_, _, err = uc.Create(context.Background(), FilmCreateInput{
		Title: ptr("A New Hope"),
	})
	if !errors.As(err, &missing) || missing.Field != "episode" {
		t.Fatalf("expected missing episode, got %v", err)
	}
}

func TestFilmCreateReportsMissingOptionals(t *testing.T) {
	uc := NewFilmUsecase(newMockFilmRepo(), nil)

	_, missing, err := uc.Create(context.Background(), FilmCreateInput{
		Title:    ptr("A New Hope"),
		Episode:  ptr("IV"),
		Director: ptr("George Lucas"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := []string{"producer", "release_date", "opening_crawl", "feature_char", "feature_planet"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("unexpected missing list: %v", missing)
	}
}

func TestFilmCreateDanglingFeatureChar(t *testing.T) {
	repo := newMockFilmRepo()
	repo.characters[1] = true
	uc := NewFilmUsecase(repo, nil)

	_, _, err := uc.Create(context.Background(), FilmCreateInput{
		Title:       ptr("A New Hope"),
		Episode:     ptr("IV"),
		FeatureChar: ptr([]int64{1, 999999}),
	})

	var invalid domain.InvalidReferenceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidReferenceError, got %v", err)
	}
	if invalid.Resource != "character" || invalid.ID != 999999 {
		t.Fatalf("error must name the dangling side, got %+v", invalid)
	}
	if len(repo.films) != 0 || repo.appearances != 0 {
		t.Fatalf("failed create must leave no rows behind")
	}
}

func TestFilmCreateWithFeatures(t *testing.T) {
	repo := newMockFilmRepo()
	repo.characters[1] = true
	repo.characters[2] = true
	repo.planets[3] = true
	signal := &mockPublisher{}
	uc := NewFilmUsecase(repo, signal)

	film, _, err := uc.Create(context.Background(), FilmCreateInput{
		Title:         ptr("A New Hope"),
		Episode:       ptr("IV"),
		FeatureChar:   ptr([]int64{1, 2}),
		FeaturePlanet: ptr([]int64{3}),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if repo.appearances != 3 {
		t.Fatalf("expected 3 appearance rows, got %d", repo.appearances)
	}
	if len(signal.events) != 1 || signal.events[0].Kind != "film.created" || signal.events[0].ID != film.ID {
		t.Fatalf("expected film.created event, got %v", signal.events)
	}
}
