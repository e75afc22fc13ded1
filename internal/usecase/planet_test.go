package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/totegamma/swcatalog/internal/domain"
)

type mockPlanetRepo struct {
	planets map[int64]domain.Planet
	nextID  int64
}

func newMockPlanetRepo() *mockPlanetRepo {
	return &mockPlanetRepo{planets: map[int64]domain.Planet{}, nextID: 1}
}

func (m *mockPlanetRepo) Create(ctx context.Context, planet domain.Planet) (domain.Planet, error) {
	for _, existing := range m.planets {
		if existing.Name == planet.Name {
			return domain.Planet{}, domain.ConflictError{Resource: "planet", Detail: "name already in use"}
		}
	}
	planet.ID = m.nextID
	m.nextID++
	m.planets[planet.ID] = planet
	return planet, nil
}

func (m *mockPlanetRepo) Get(ctx context.Context, id int64) (domain.Planet, error) {
	planet, ok := m.planets[id]
	if !ok {
		return domain.Planet{}, domain.NotFoundError{Resource: "planet", ID: id}
	}
	return planet, nil
}

func (m *mockPlanetRepo) GetDetail(ctx context.Context, id int64) (domain.PlanetDetail, error) {
	planet, err := m.Get(ctx, id)
	if err != nil {
		return domain.PlanetDetail{}, err
	}
	return domain.PlanetDetail{Planet: planet}, nil
}

func (m *mockPlanetRepo) List(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	for _, planet := range m.planets {
		planets = append(planets, planet)
	}
	return planets, nil
}

func (m *mockPlanetRepo) Update(ctx context.Context, id int64, patch domain.PlanetPatch) (domain.Planet, error) {
	planet, ok := m.planets[id]
	if !ok {
		return domain.Planet{}, domain.NotFoundError{Resource: "planet", ID: id}
	}
	if patch.Name != nil {
		planet.Name = *patch.Name
	}
	if patch.Climate != nil {
		planet.Climate = patch.Climate
	}
	if patch.Terrain != nil {
		planet.Terrain = patch.Terrain
	}
	m.planets[id] = planet
	return planet, nil
}

func (m *mockPlanetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.planets[id]; !ok {
		return domain.NotFoundError{Resource: "planet", ID: id}
	}
	delete(m.planets, id)
	return nil
}

func TestPlanetCreateRequiresName(t *testing.T) {
	uc := NewPlanetUsecase(newMockPlanetRepo(), nil)

	_, _, err := uc.Create(context.Background(), PlanetCreateInput{
		Climate: ptr("arid"),
	})
	var missing domain.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "name" {
		t.Fatalf("expected missing name, got %v", err)
	}
}

func TestPlanetCreateReportsMissingOptionals(t *testing.T) {
	uc := NewPlanetUsecase(newMockPlanetRepo(), nil)

	_, missing, err := uc.Create(context.Background(), PlanetCreateInput{
		Name:    ptr("Tatooine"),
		Climate: ptr("arid"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := []string{"terrain", "population_count", "gravity", "diameter", "water_surface", "orbital_period", "rotation_period"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("unexpected missing list: %v", missing)
	}
}

func TestPlanetUpdateReportsNotEdited(t *testing.T) {
	repo := newMockPlanetRepo()
	signal := &mockPublisher{}
	uc := NewPlanetUsecase(repo, signal)

	created, _, err := uc.Create(context.Background(), PlanetCreateInput{
		Name: ptr("Tatooine"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, notEdited, err := uc.Update(context.Background(), created.ID, PlanetUpdateInput{
		Climate: ptr("arid"),
		Terrain: ptr("desert"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Climate == nil || *updated.Climate != "arid" {
		t.Fatalf("climate not applied: %v", updated.Climate)
	}

	want := []string{"name", "population_count", "gravity", "diameter", "water_surface", "orbital_period", "rotation_period"}
	if !reflect.DeepEqual(notEdited, want) {
		t.Fatalf("unexpected not-edited list: %v", notEdited)
	}

	last := signal.events[len(signal.events)-1]
	if last.Kind != "planet.updated" {
		t.Fatalf("expected planet.updated event, got %s", last.Kind)
	}
}

func TestPlanetDeleteNotFound(t *testing.T) {
	signal := &mockPublisher{}
	uc := NewPlanetUsecase(newMockPlanetRepo(), signal)

	err := uc.Delete(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(signal.events) != 0 {
		t.Fatalf("failed delete must not publish events, got %v", signal.events)
	}
}
