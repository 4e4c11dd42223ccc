package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// ContactHandler forwards contact-form submissions.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Send handles POST /api/contact.
//
// @Summary      Send a contact-form message
// @Tags         contact
// @Accept       json
// @Param        body  body  contactRequest  true  "Message"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Send(c.Request().Context(), ports.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
