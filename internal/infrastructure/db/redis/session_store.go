package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps identities in Redis keyed by opaque session tokens.
// Key format: session:<token>. Entries carry a fixed TTL from creation;
// expiry is absolute, not sliding.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Put stores the identity under the token for the session TTL.
func (s *SessionStore) Put(ctx context.Context, token string, identity domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, s.key(token), payload, s.ttl).Err()
}

// Get returns the identity stored under the token, or (nil, nil) when the
// token is unknown or has expired.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Identity, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &identity, nil
}

// Delete invalidates the token. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}
