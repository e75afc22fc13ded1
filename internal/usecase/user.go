package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/totegamma/swcatalog/internal/domain"
)

// UserCreateInput is the decoded POST /user body. Pointers distinguish an
// absent key from a zero value.
type UserCreateInput struct {
	UserName *string `json:"user_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserUpdateInput struct {
	UserName *string `json:"user_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserUsecase struct {
	repo   UserRepository
	signal EventPublisher
}

func NewUserUsecase(repo UserRepository, signal EventPublisher) *UserUsecase {
	return &UserUsecase{repo: repo, signal: signal}
}

func (uc *UserUsecase) Create(ctx context.Context, input UserCreateInput) (domain.User, error) {
	if input.UserName == nil {
		return domain.User{}, domain.MissingFieldError{Field: "user_name"}
	}
	if input.Email == nil {
		return domain.User{}, domain.MissingFieldError{Field: "email"}
	}
	if input.Password == nil {
		return domain.User{}, domain.MissingFieldError{Field: "password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	created, err := uc.repo.Create(ctx, domain.User{
		UserName: *input.UserName,
		Email:    *input.Email,
		Password: string(hash),
	})
	if err != nil {
		return domain.User{}, err
	}

	publish(ctx, uc.signal, "user.created", created.ID)
	return created, nil
}

func (uc *UserUsecase) Get(ctx context.Context, id int64) (domain.User, error) {
	return uc.repo.GetActive(ctx, id)
}

func (uc *UserUsecase) List(ctx context.Context) ([]domain.User, error) {
	return uc.repo.ListActive(ctx)
}

// Update applies the supplied fields and reports the untouched ones back.
func (uc *UserUsecase) Update(ctx context.Context, id int64, input UserUpdateInput) (domain.User, []string, error) {
	notEdited := []string{}
	patch := domain.UserPatch{
		UserName: input.UserName,
		Email:    input.Email,
	}
	if input.UserName == nil {
		notEdited = append(notEdited, "user_name")
	}
	if input.Email == nil {
		notEdited = append(notEdited, "email")
	}
	if input.Password == nil {
		notEdited = append(notEdited, "password")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, nil, err
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.User{}, nil, err
	}

	publish(ctx, uc.signal, "user.updated", updated.ID)
	return updated, notEdited, nil
}

// Deactivate is the user delete: the active flag flips to false and the row
// stays.
func (uc *UserUsecase) Deactivate(ctx context.Context, id int64) (domain.User, error) {
	user, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	publish(ctx, uc.signal, "user.deleted", user.ID)
	return user, nil
}
