package ports

import (
	"context"
	"time"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// CreateCardInput carries the fields accepted when creating a card. Status
// defaults to "To Do" when empty.
type CreateCardInput struct {
	Client   string
	Task     string
	Owner    *string
	DueDate  *time.Time
	Status   string
	Blocked  bool
	Category *string
}

// UpdateCardInput carries the fields for a full card replacement.
type UpdateCardInput struct {
	Client   string
	Task     string
	Owner    *string
	DueDate  *time.Time
	Status   string
	Blocked  bool
	Category *string
}

// CardService defines the task-board use cases.
type CardService interface {
	Create(ctx context.Context, input CreateCardInput) (*domain.Card, error)
	List(ctx context.Context) ([]*domain.Card, error)
	Update(ctx context.Context, id int64, input UpdateCardInput) (*domain.Card, error)
	PatchStatus(ctx context.Context, id int64, status string) (*domain.Card, error)
	Delete(ctx context.Context, id int64) error
	// ClearCompleted removes all "Done" cards and returns the count removed.
	ClearCompleted(ctx context.Context) (int64, error)
}
