package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestRequireLogin_Anonymous(t *testing.T) {
	c := newTestContext()

	called := false
	err := RequireLogin()(okHandler(&called))(c)
	if called {
		t.Fatalf("next handler must not run for anonymous caller")
	}
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireLogin_AnyRolePasses(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleEmployee, domain.RoleAdmin} {
		c := newTestContext()
		c.Set(IdentityKey, &domain.Identity{UserID: "u1", Username: "x", Role: role})

		called := false
		if err := RequireLogin()(okHandler(&called))(c); err != nil {
			t.Fatalf("role %s: unexpected error %v", role, err)
		}
		if !called {
			t.Fatalf("role %s: next handler not called", role)
		}
	}
}

func TestRequireAdmin_AnonymousGets401Not403(t *testing.T) {
	c := newTestContext()

	err := RequireAdmin()(okHandler(new(bool)))(c)
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("anonymous caller must get 401, got %d", code)
	}
}

func TestRequireAdmin_EmployeeGets403(t *testing.T) {
	c := newTestContext()
	c.Set(IdentityKey, &domain.Identity{UserID: "u1", Username: "worker", Role: domain.RoleEmployee})

	err := RequireAdmin()(okHandler(new(bool)))(c)
	if code := httpCode(t, err); code != http.StatusForbidden {
		t.Fatalf("authenticated non-admin must get 403, got %d", code)
	}
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	c := newTestContext()
	c.Set(IdentityKey, &domain.Identity{UserID: "u1", Username: "root", Role: domain.RoleAdmin})

	called := false
	if err := RequireAdmin()(okHandler(&called))(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called for admin")
	}
}
