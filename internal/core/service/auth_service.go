package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-studio/backoffice/internal/api/metrics"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// AuthService implements login, logout, registration and session resolution.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Login verifies credentials and issues a fresh opaque session token. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}

	identity := domain.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	if err := s.sessions.Put(ctx, token, identity); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login")
	return token, &identity, nil
}

// Logout invalidates the session token. An empty or unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Register creates a new account. Registration always produces an employee;
// admins are seeded out of band.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Resolve maps a session token to its stored identity. Unknown or expired
// tokens resolve to anonymous, never an error the transport must handle.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, nil
	}
	return s.sessions.Get(ctx, token)
}

// newSessionToken returns a 256-bit random token in hex.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
