package interfaces

import (
	"context"

	"duoChat/internal/models"
)

//go:generate mockgen -destination=mocks/mock_account_repository.go -package=mocks duoChat/internal/interfaces AccountRepository

// AccountRepository is the Account Store. Lookups of a missing user return an
// errs.KindNotFound error wrapping errs.ErrUserNotFound.
type AccountRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserById(ctx context.Context, id string) (*models.User, error)
	// ListUsersExcept returns every other user in account creation order.
	ListUsersExcept(ctx context.Context, id string) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, changes models.ProfileChanges) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
