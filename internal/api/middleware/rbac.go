package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// RequireLogin rejects anonymous requests with 401. Any role passes.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(IdentityKey).(*domain.Identity); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admins with 403. The two cases stay distinguishable: an anonymous
// caller must not learn that the route exists behind a role check.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(*domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !identity.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
