package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/api/middleware"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// currentIdentity extracts the identity injected by the session middleware.
// Handlers behind RequireLogin/RequireAdmin can rely on it being present;
// the 401 here is a fast-fail for a misregistered route.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(*domain.Identity)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
