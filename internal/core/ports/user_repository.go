package ports

import (
	"context"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Insert persists a new user. Returns domain.ErrUserExists when the
	// username is already taken; the write must not partially apply.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes a user by id. Returns domain.ErrUserNotFound when no
	// user has the given id.
	Delete(ctx context.Context, id string) error
}
