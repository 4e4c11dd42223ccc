package ports

import (
	"context"
	"time"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// CardUpdate carries the full set of mutable card fields for a replacement
// write. Nil pointer fields clear the stored value.
type CardUpdate struct {
	Client   string
	Task     string
	Owner    *string
	DueDate  *time.Time
	Status   string
	Blocked  bool
	Category *string
}

// CardRepository defines persistence operations for task-board cards.
//
// Replace and SetStatus must apply the completed_at transition rule
// (domain.NextCompletedAt) against the stored row within a single atomic
// write, so that two concurrent status writes on the same card can never
// persist a state where status and completed_at disagree.
type CardRepository interface {
	// Insert persists a new card and returns it with its assigned id.
	Insert(ctx context.Context, card *domain.Card) (*domain.Card, error)
	// List returns all cards ordered by id ascending.
	List(ctx context.Context) ([]*domain.Card, error)
	// Replace overwrites every mutable field and recomputes completed_at
	// against the previously stored status. Returns domain.ErrCardNotFound
	// when no card has the given id.
	Replace(ctx context.Context, id int64, upd CardUpdate) (*domain.Card, error)
	// SetStatus updates only the status and recomputes completed_at against
	// the previously stored status. Returns domain.ErrCardNotFound when no
	// card has the given id.
	SetStatus(ctx context.Context, id int64, status string) (*domain.Card, error)
	// Delete removes a card. Returns domain.ErrCardNotFound when the card
	// did not exist at delete time.
	Delete(ctx context.Context, id int64) error
	// DeleteCompleted removes every card whose status is "Done" as one set
	// operation and returns the number removed.
	DeleteCompleted(ctx context.Context) (int64, error)
}
