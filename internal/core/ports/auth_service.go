package ports

import (
	"context"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// AuthService implements login, logout, registration and per-request
// identity resolution.
type AuthService interface {
	// Login verifies credentials and issues a new session token. The
	// identity is stored server-side under the token for the session TTL.
	Login(ctx context.Context, username, password string) (string, *domain.Identity, error)
	// Logout invalidates the session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// Register creates a new employee account.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Resolve maps a session token to its stored identity. A malformed,
	// unknown or expired token resolves to (nil, nil): anonymous is never a
	// hard failure.
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}
