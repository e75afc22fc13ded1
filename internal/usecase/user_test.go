package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/totegamma/swcatalog/internal/domain"
)

type mockUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]domain.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	for _, existing := range m.users {
		if existing.UserName == user.UserName || existing.Email == user.Email {
			return domain.User{}, domain.ConflictError{Resource: "user", Detail: "user_name or email already in use"}
		}
	}
	user.ID = m.nextID
	user.IsActive = true
	m.nextID++
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepo) GetActive(ctx context.Context, id int64) (domain.User, error) {
	user, ok := m.users[id]
	if !ok || !user.IsActive {
		return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	return user, nil
}

func (m *mockUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, user := range m.users {
		if user.IsActive {
			users = append(users, user)
		}
	}
	return users, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	user, ok := m.users[id]
	if !ok || !user.IsActive {
		return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	if patch.UserName != nil {
		user.UserName = *patch.UserName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	m.users[id] = user
	return user, nil
}

func (m *mockUserRepo) Deactivate(ctx context.Context, id int64) (domain.User, error) {
	user, ok := m.users[id]
	if !ok || !user.IsActive {
		return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	user.IsActive = false
	m.users[id] = user
	return user, nil
}

type mockPublisher struct {
	events []domain.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestUserCreateRequiresFields(t *testing.T) {
	uc := NewUserUsecase(newMockUserRepo(), nil)

	_, err := uc.Create(context.Background(), UserCreateInput{
		Email:    ptr("luke@tatooine.net"),
		Password: ptr("secret"),
	})
	var missing domain.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "user_name" {
		t.Fatalf("expected user_name to be reported first, got %s", missing.Field)
	}

	_, err = uc.Create(context.Background(), UserCreateInput{
		UserName: ptr("luke"),
		Password: ptr("secret"),
	})
	if !errors.As(err, &missing) || missing.Field != "email" {
		t.Fatalf("expected email to be reported, got %v", err)
	}
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewUserUsecase(repo, nil)

	created, err := uc.Create(context.Background(), UserCreateInput{
		UserName: ptr("luke"),
		Email:    ptr("luke@tatooine.net"),
		Password: ptr("secret"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored := repo.users[created.ID]
	if stored.Password == "secret" {
		t.Fatalf("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")); err != nil {
		t.Fatalf("stored password is not a valid hash of the input: %v", err)
	}
}

func TestUserCreateDuplicate(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewUserUsecase(repo, nil)

	input := UserCreateInput{
		UserName: ptr("luke"),
		Email:    ptr("luke@tatooine.net"),
		Password: ptr("secret"),
	}
	if _, err := uc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := uc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate create must not add a row, have %d", len(repo.users))
	}
}

func TestUserUpdateReportsNotEdited(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewUserUsecase(repo, nil)

	created, err := uc.Create(context.Background(), UserCreateInput{
		UserName: ptr("luke"),
		Email:    ptr("luke@tatooine.net"),
		Password: ptr("secret"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, notEdited, err := uc.Update(context.Background(), created.ID, UserUpdateInput{
		Email: ptr("luke@dagobah.net"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "luke@dagobah.net" {
		t.Fatalf("email not applied: %s", updated.Email)
	}
	if len(notEdited) != 2 || notEdited[0] != "user_name" || notEdited[1] != "password" {
		t.Fatalf("unexpected not-edited list: %v", notEdited)
	}
}

func TestUserDeactivateKeepsRow(t *testing.T) {
	repo := newMockUserRepo()
	signal := &mockPublisher{}
	uc := NewUserUsecase(repo, signal)

	created, err := uc.Create(context.Background(), UserCreateInput{
		UserName: ptr("luke"),
		Email:    ptr("luke@tatooine.net"),
		Password: ptr("secret"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	stored, ok := repo.users[created.ID]
	if !ok {
		t.Fatalf("soft delete must keep the row in storage")
	}
	if stored.IsActive {
		t.Fatalf("deactivate must flip is_active to false")
	}

	if _, err := uc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deactivated user must be reported as not found, got %v", err)
	}

	if _, err := uc.Deactivate(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second deactivate must report not found, got %v", err)
	}

	last := signal.events[len(signal.events)-1]
	if last.Kind != "user.deleted" {
		t.Fatalf("expected user.deleted event, got %s", last.Kind)
	}
}
