package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/swcatalog/internal/domain"
	"github.com/totegamma/swcatalog/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userToDomain(m models.User) domain.User {
	return domain.User{
		ID:       m.ID,
		IsActive: m.IsActive,
		UserName: m.UserName,
		Email:    m.Email,
		Password: m.Password,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	model := models.User{
		IsActive: true,
		UserName: user.UserName,
		Email:    user.Email,
		Password: user.Password,
	}

	err := r.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ConflictError{Resource: "user", Detail: "user_name or email already in use"}
		}
		return domain.User{}, pkgerrors.Wrap(err, "failed to create user")
	}

	return userToDomain(model), nil
}

// GetActive resolves a user by id. Deactivated users are reported as missing.
func (r *UserRepository) GetActive(ctx context.Context, id int64) (domain.User, error) {
	var model models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
		}
		return domain.User{}, pkgerrors.Wrap(err, "failed to get user")
	}
	return userToDomain(model), nil
}

func (r *UserRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	var rows []models.User
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list users")
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userToDomain(row))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	var model models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND is_active = ?", id, true).Take(&model).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "user", ID: id}
			}
			return err
		}

		if patch.UserName != nil {
			model.UserName = *patch.UserName
		}
		if patch.Email != nil {
			model.Email = *patch.Email
		}
		if patch.Password != nil {
			model.Password = *patch.Password
		}

		return tx.Save(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ConflictError{Resource: "user", Detail: "user_name or email already in use"}
		}
		return domain.User{}, err
	}
	return userToDomain(model), nil
}

// Deactivate flips is_active to false. The row itself stays in storage.
func (r *UserRepository) Deactivate(ctx context.Context, id int64) (domain.User, error) {
	var model models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND is_active = ?", id, true).Take(&model).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "user", ID: id}
			}
			return err
		}

		model.IsActive = false
		return tx.Model(&model).Update("is_active", false).Error
	})
	if err != nil {
		return domain.User{}, err
	}
	return userToDomain(model), nil
}
