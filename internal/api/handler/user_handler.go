package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// UserHandler handles admin account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Delete handles DELETE /api/users/:id. The acting admin may not delete
// their own account.
//
// @Summary      Delete a user account
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
