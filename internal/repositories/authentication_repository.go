package repositories

import (
	"context"
	"errors"

	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/models"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ interfaces.AccountRepository = (*AuthenticationRepository)(nil)

// AuthenticationRepository is the postgres Account Store.
type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(ctx context.Context, user *models.User) error {
	result := ar.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.Conflict(errs.ErrAccountAlreadyExists)
		}
		return errs.Storage(pkgerrors.Wrap(result.Error, "create user"))
	}
	return nil
}

func (ar *AuthenticationRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return ar.findOne(ctx, "email = ?", email)
}

func (ar *AuthenticationRepository) FindUserById(ctx context.Context, id string) (*models.User, error) {
	return ar.findOne(ctx, "id = ?", id)
}

func (ar *AuthenticationRepository) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	if err := ar.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(errs.ErrUserNotFound)
		}
		return nil, errs.Storage(pkgerrors.Wrap(err, "find user"))
	}
	return &user, nil
}

func (ar *AuthenticationRepository) ListUsersExcept(ctx context.Context, id string) ([]*models.User, error) {
	users := []*models.User{}
	if err := ar.db.WithContext(ctx).
		Where("id <> ?", id).
		Order("created_at ASC, id ASC").
		Find(&users).Error; err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "list users"))
	}
	return users, nil
}

func (ar *AuthenticationRepository) UpdateUser(ctx context.Context, id string, changes models.ProfileChanges) (*models.User, error) {
	updates := map[string]interface{}{}
	if changes.FullName != nil {
		updates["full_name"] = *changes.FullName
	}
	if changes.Bio != nil {
		updates["bio"] = *changes.Bio
	}
	if changes.ProfilePic != nil {
		updates["profile_pic"] = *changes.ProfilePic
	}
	if len(updates) == 0 {
		return ar.FindUserById(ctx, id)
	}

	result := ar.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, errs.Storage(pkgerrors.Wrap(result.Error, "update user"))
	}
	if result.RowsAffected == 0 {
		return nil, errs.NotFound(errs.ErrUserNotFound)
	}
	return ar.FindUserById(ctx, id)
}

func (ar *AuthenticationRepository) DeleteUser(ctx context.Context, id string) error {
	result := ar.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return errs.Storage(pkgerrors.Wrap(result.Error, "delete user"))
	}
	if result.RowsAffected == 0 {
		return errs.NotFound(errs.ErrUserNotFound)
	}
	return nil
}
