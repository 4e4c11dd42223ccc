package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/api/middleware"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, username, password string) (string, *domain.Identity, error)
	logoutFn   func(ctx context.Context, token string) error
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	resolveFn  func(ctx context.Context, token string) (*domain.Identity, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	return s.resolveFn(ctx, token)
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	res := &http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Identity, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return "tok-123", &domain.Identity{UserID: "u1", Username: "alice", Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"username":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if cookie.Value != "tok-123" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	var identity domain.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &identity); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if identity.Username != "alice" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Identity, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if cookie := sessionCookieFrom(rec); cookie != nil {
		t.Fatal("no cookie should be set on failed login")
	}
}

func TestAuthHandler_Logout_ExpiresCookie(t *testing.T) {
	e := newEcho()
	var loggedOut string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			loggedOut = token
			return nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if loggedOut != "tok-123" {
		t.Fatalf("expected token to be invalidated, got %q", loggedOut)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_CreatesEmployee(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: "u2", Username: username, Role: domain.RoleEmployee}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"username":"bob","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != domain.RoleEmployee {
		t.Fatalf("expected employee role, got %s", resp.Role)
	}
	if resp.Username != "bob" {
		t.Fatalf("unexpected username %s", resp.Username)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"username":"bob","password":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, &domain.Identity{UserID: "u1", Username: "alice", Role: domain.RoleAdmin})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var identity domain.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &identity); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if identity.UserID != "u1" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}
