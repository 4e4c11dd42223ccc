package handler

import (
	"time"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createCardRequest struct {
	Client   string     `json:"client"   validate:"required"`
	Task     string     `json:"task"     validate:"required"`
	Owner    *string    `json:"owner"`
	DueDate  *time.Time `json:"due_date"`
	Status   string     `json:"status"`
	Blocked  bool       `json:"blocked"`
	Category *string    `json:"category"`
}

type updateCardRequest struct {
	Client   string     `json:"client"   validate:"required"`
	Task     string     `json:"task"     validate:"required"`
	Owner    *string    `json:"owner"`
	DueDate  *time.Time `json:"due_date"`
	Status   string     `json:"status"   validate:"required"`
	Blocked  bool       `json:"blocked"`
	Category *string    `json:"category"`
}

type patchStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// cardResponse is owned by the transport layer; the JSON contract stays
// decoupled from internal domain changes.
type cardResponse struct {
	ID          int64      `json:"id"`
	Client      string     `json:"client"`
	Task        string     `json:"task"`
	Owner       *string    `json:"owner"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Blocked     bool       `json:"blocked"`
	Category    *string    `json:"category"`
	CompletedAt *time.Time `json:"completed_at"`
}

type clearCompletedResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

func toCardResponse(c *domain.Card) cardResponse {
	return cardResponse{
		ID:          c.ID,
		Client:      c.Client,
		Task:        c.Task,
		Owner:       c.Owner,
		DueDate:     c.DueDate,
		Status:      c.Status,
		Blocked:     c.Blocked,
		Category:    c.Category,
		CompletedAt: c.CompletedAt,
	}
}

func toCardResponses(cards []*domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}
