package ports

import (
	"context"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// SessionStore is the TTL-backed store keyed by opaque session tokens.
// Entries expire a fixed duration after Put; there is no sliding renewal.
type SessionStore interface {
	Put(ctx context.Context, token string, identity domain.Identity) error
	// Get returns (nil, nil) when the token is unknown or expired.
	Get(ctx context.Context, token string) (*domain.Identity, error)
	Delete(ctx context.Context, token string) error
}
