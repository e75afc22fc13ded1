package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/totegamma/swcatalog/internal/domain"
)

type mockCharacterRepo struct {
	created    domain.Character
	homePlanet *int64
	deleted    int64
	planets    map[int64]bool
	nextID     int64
}

func newMockCharacterRepo() *mockCharacterRepo {
	return &mockCharacterRepo{planets: map[int64]bool{}, nextID: 1}
}

func (m *mockCharacterRepo) Create(ctx context.Context, character domain.Character, homePlanet *int64) (domain.Character, error) {
	if homePlanet != nil && !m.planets[*homePlanet] {
		return domain.Character{}, domain.InvalidReferenceError{Resource: "planet", ID: *homePlanet}
	}
	character.ID = m.nextID
	m.nextID++
	m.created = character
	m.homePlanet = homePlanet
	return character, nil
}

func (m *mockCharacterRepo) Get(ctx context.Context, id int64) (domain.Character, error) {
	return domain.Character{}, domain.NotFoundError{Resource: "character", ID: id}
}

func (m *mockCharacterRepo) GetDetail(ctx context.Context, id int64) (domain.CharacterDetail, error) {
	return domain.CharacterDetail{}, domain.NotFoundError{Resource: "character", ID: id}
}

func (m *mockCharacterRepo) List(ctx context.Context) ([]domain.Character, error) {
	return nil, nil
}

func (m *mockCharacterRepo) Update(ctx context.Context, id int64, patch domain.CharacterPatch) (domain.Character, error) {
	return domain.Character{}, domain.NotFoundError{Resource: "character", ID: id}
}

func (m *mockCharacterRepo) Delete(ctx context.Context, id int64) error {
	m.deleted = id
	return nil
}

func TestCharacterCreateRequiresFullName(t *testing.T) {
	uc := NewCharacterUsecase(newMockCharacterRepo(), nil)

	_, _, err := uc.Create(context.Background(), CharacterCreateInput{
		Gender: ptr("male"),
	})
	var missing domain.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "full_name" {
		t.Fatalf("expected missing full_name, got %v", err)
	}
}

func TestCharacterCreateReportsMissingOptionals(t *testing.T) {
	uc := NewCharacterUsecase(newMockCharacterRepo(), nil)

	_, missing, err := uc.Create(context.Background(), CharacterCreateInput{
		FullName:  ptr("Luke Skywalker"),
		BirthYear: ptr("19BBY"),
		Gender:    ptr("male"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := []string{"height_mts", "weight_kg", "skin_tone", "eye_color", "hair_color", "home_planet"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("unexpected missing list: %v", missing)
	}
}

func TestCharacterCreateWithHomePlanet(t *testing.T) {
	repo := newMockCharacterRepo()
	repo.planets[1] = true
	uc := NewCharacterUsecase(repo, nil)

	_, missing, err := uc.Create(context.Background(), CharacterCreateInput{
		FullName:   ptr("Luke Skywalker"),
		HomePlanet: ptr(int64(1)),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if repo.homePlanet == nil || *repo.homePlanet != 1 {
		t.Fatalf("home planet id not forwarded to the repository")
	}
	for _, field := range missing {
		if field == "home_planet" {
			t.Fatalf("home_planet must not be reported missing when supplied")
		}
	}
}

func TestCharacterCreateDanglingHomePlanet(t *testing.T) {
	uc := NewCharacterUsecase(newMockCharacterRepo(), nil)

	_, _, err := uc.Create(context.Background(), CharacterCreateInput{
		FullName:   ptr("Luke Skywalker"),
		HomePlanet: ptr(int64(999999)),
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected InvalidReferenceError, got %v", err)
	}
}

func TestCharacterDeletePublishesEvent(t *testing.T) {
	repo := newMockCharacterRepo()
	signal := &mockPublisher{}
	uc := NewCharacterUsecase(repo, signal)

	if err := uc.Delete(context.Background(), 42); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.deleted != 42 {
		t.Fatalf("delete not forwarded to the repository")
	}
	if len(signal.events) != 1 || signal.events[0].Kind != "character.deleted" {
		t.Fatalf("expected character.deleted event, got %v", signal.events)
	}
}
