package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/api/middleware"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// AuthHandler handles login, logout, registration and the identity probe.
type AuthHandler struct {
	service    ports.AuthService
	sessionTTL time.Duration
}

func NewAuthHandler(service ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{service: service, sessionTTL: sessionTTL}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Login handles POST /admin/login. On success the session token is delivered
// as an HttpOnly cookie; the body carries the resolved identity.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, identity, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	c.SetCookie(h.sessionCookie(token, h.sessionTTL))
	return c.JSON(http.StatusOK, identity)
}

// Logout handles POST /admin/logout. Succeeds whether or not a session
// existed; the cookie is expired either way.
//
// @Summary      Log out
// @Tags         auth
// @Success      200
// @Router       /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		token = cookie.Value
	}

	if err := h.service.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.NoContent(http.StatusOK)
}

// Me handles GET /users/me.
//
// @Summary      Current caller identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// Register handles POST /users/register. New accounts are always employees.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
