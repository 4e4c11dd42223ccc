package ports

import (
	"context"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// UserService defines admin-facing account management.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes the target account. Returns domain.ErrSelfDelete when
	// actorID equals targetID: an admin may never delete their own account.
	Delete(ctx context.Context, actorID, targetID string) error
}
