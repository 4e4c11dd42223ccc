package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by username
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	if created.ID == "" {
		created.ID = "id-" + user.Username
	}
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSessionStore struct {
	sessions map[string]domain.Identity
	putErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Identity)}
}

func (s *stubSessionStore) Put(_ context.Context, token string, identity domain.Identity) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.sessions[token] = identity
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Identity, error) {
	identity, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newAuthFixture() (*AuthService, *stubUserRepo, *stubSessionStore) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	return NewAuthService(repo, store, zerolog.Nop()), repo, store
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if _, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, store := newAuthFixture()
	seedUser(t, repo, "carol", "s3cret", domain.RoleAdmin)

	token, identity, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if identity == nil || identity.Username != "carol" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	stored, err := store.Get(context.Background(), token)
	if err != nil || stored == nil {
		t.Fatalf("expected session stored under token, got %v %v", stored, err)
	}
	if stored.UserID != identity.UserID {
		t.Fatalf("stored identity mismatch: %+v vs %+v", stored, identity)
	}
}

func TestAuthService_Login_FreshTokenPerLogin(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(t, repo, "carol", "s3cret", domain.RoleEmployee)

	t1, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	t2, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("expected distinct tokens per login")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(t, repo, "dave", "goodpass", domain.RoleEmployee)

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture()

	// An unknown username must yield the same error as a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_InvalidatesSession(t *testing.T) {
	svc, repo, store := newAuthFixture()
	seedUser(t, repo, "carol", "s3cret", domain.RoleEmployee)

	token, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	identity, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected anonymous after logout, got %+v", identity)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("session record not removed")
	}
}

func TestAuthService_Logout_EmptyTokenNoop(t *testing.T) {
	svc, _, _ := newAuthFixture()
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-token logout must be a no-op: %v", err)
	}
}

func TestAuthService_Resolve_UnknownToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	identity, err := svc.Resolve(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("unknown token must not error: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected anonymous, got %+v", identity)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("registration must produce employee, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "bob", "pass12"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other1"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate registration must not write")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "eve", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
