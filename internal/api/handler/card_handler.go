package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// CardHandler handles HTTP requests for the task board.
type CardHandler struct {
	service ports.CardService
}

func NewCardHandler(service ports.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// List handles GET /api/kanban.
//
// @Summary      List all task-board cards
// @Tags         kanban
// @Produce      json
// @Success      200  {array}   cardResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/kanban [get]
func (h *CardHandler) List(c echo.Context) error {
	cards, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardResponses(cards))
}

// Create handles POST /api/kanban.
//
// @Summary      Create a task-board card
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        body  body      createCardRequest  true  "Card fields"
// @Success      201   {object}  cardResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/kanban [post]
func (h *CardHandler) Create(c echo.Context) error {
	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.service.Create(c.Request().Context(), ports.CreateCardInput{
		Client:   req.Client,
		Task:     req.Task,
		Owner:    req.Owner,
		DueDate:  req.DueDate,
		Status:   req.Status,
		Blocked:  req.Blocked,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCardResponse(card))
}

// Update handles PUT /api/kanban/:id, replacing all mutable fields.
//
// @Summary      Replace a card
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Card id"
// @Param        body  body      updateCardRequest  true  "Card fields"
// @Success      200   {object}  cardResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/kanban/{id} [put]
func (h *CardHandler) Update(c echo.Context) error {
	id, err := cardID(c)
	if err != nil {
		return err
	}

	var req updateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.service.Update(c.Request().Context(), id, ports.UpdateCardInput{
		Client:   req.Client,
		Task:     req.Task,
		Owner:    req.Owner,
		DueDate:  req.DueDate,
		Status:   req.Status,
		Blocked:  req.Blocked,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCardResponse(card))
}

// PatchStatus handles PATCH /api/kanban/:id/status.
//
// @Summary      Update only a card's status
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Card id"
// @Param        body  body      patchStatusRequest  true  "New status"
// @Success      200   {object}  cardResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/kanban/{id}/status [patch]
func (h *CardHandler) PatchStatus(c echo.Context) error {
	id, err := cardID(c)
	if err != nil {
		return err
	}

	var req patchStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.service.PatchStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCardResponse(card))
}

// Delete handles DELETE /api/kanban/:id.
//
// @Summary      Delete a card
// @Tags         kanban
// @Security     SessionCookie
// @Param        id  path  int  true  "Card id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/kanban/{id} [delete]
func (h *CardHandler) Delete(c echo.Context) error {
	id, err := cardID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearCompleted handles DELETE /api/kanban/completed.
//
// @Summary      Delete all Done cards
// @Tags         kanban
// @Produce      json
// @Success      200  {object}  clearCompletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/kanban/completed [delete]
func (h *CardHandler) ClearCompleted(c echo.Context) error {
	count, err := h.service.ClearCompleted(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clearCompletedResponse{DeletedCount: count})
}

func cardID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "card not found")
	}
	return id, nil
}
