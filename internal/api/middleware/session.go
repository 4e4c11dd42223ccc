package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "backoffice_session"

// IdentityKey is the echo context key under which the resolved identity is
// stored for the duration of the request.
const IdentityKey = "identity"

// IdentityResolver maps a session token to a stored identity. Unknown tokens
// resolve to (nil, nil).
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}

// Session resolves the caller's identity from the session cookie and injects
// it into the request context. A missing cookie, an unknown token, or a
// session-store failure all leave the request anonymous; gating is the
// responsibility of RequireLogin/RequireAdmin downstream.
func Session(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := resolver.Resolve(c.Request().Context(), cookie.Value)
			if err != nil || identity == nil {
				return next(c)
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
