package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-studio/backoffice/internal/api/metrics"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// CardService implements the task-board lifecycle over a CardRepository.
type CardService struct {
	repo ports.CardRepository
	log  zerolog.Logger
}

func NewCardService(repo ports.CardRepository, log zerolog.Logger) *CardService {
	return &CardService{repo: repo, log: log}
}

// Create validates input and persists a new card. Status defaults to
// "To Do"; completed_at is initialized from the status so the invariant
// holds from the first write.
func (s *CardService) Create(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
	if strings.TrimSpace(input.Client) == "" {
		return nil, fmt.Errorf("%w: client is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Task) == "" {
		return nil, fmt.Errorf("%w: task is required", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusToDo
	}

	card := &domain.Card{
		Client:   input.Client,
		Task:     input.Task,
		Owner:    input.Owner,
		DueDate:  input.DueDate,
		Status:   status,
		Blocked:  input.Blocked,
		Category: input.Category,
	}
	if status == domain.StatusDone {
		now := time.Now().UTC()
		card.CompletedAt = &now
	}

	created, err := s.repo.Insert(ctx, card)
	if err != nil {
		s.log.Error().Err(err).Str("client", input.Client).Msg("failed to create card")
		return nil, err
	}

	metrics.CardsCreatedTotal.WithLabelValues(status).Inc()
	s.log.Info().Int64("card_id", created.ID).Str("client", created.Client).Msg("card created")
	return created, nil
}

// List returns all cards ordered by id ascending.
func (s *CardService) List(ctx context.Context) ([]*domain.Card, error) {
	return s.repo.List(ctx)
}

// Update replaces every mutable field of the card. The completed_at
// transition is computed by the repository against the stored status in a
// single atomic write.
func (s *CardService) Update(ctx context.Context, id int64, input ports.UpdateCardInput) (*domain.Card, error) {
	if strings.TrimSpace(input.Client) == "" {
		return nil, fmt.Errorf("%w: client is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Task) == "" {
		return nil, fmt.Errorf("%w: task is required", domain.ErrValidation)
	}

	card, err := s.repo.Replace(ctx, id, ports.CardUpdate{
		Client:   input.Client,
		Task:     input.Task,
		Owner:    input.Owner,
		DueDate:  input.DueDate,
		Status:   input.Status,
		Blocked:  input.Blocked,
		Category: input.Category,
	})
	if err != nil {
		return nil, err
	}

	s.observeTransition(card)
	s.log.Info().Int64("card_id", id).Str("status", card.Status).Msg("card updated")
	return card, nil
}

// PatchStatus updates only the status; all other fields are untouched.
func (s *CardService) PatchStatus(ctx context.Context, id int64, status string) (*domain.Card, error) {
	card, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.observeTransition(card)
	s.log.Info().Int64("card_id", id).Str("status", card.Status).Msg("card status patched")
	return card, nil
}

// Delete removes a single card. A repeated delete reports not-found.
func (s *CardService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("card_id", id).Msg("card deleted")
	return nil
}

// ClearCompleted removes every "Done" card as one set operation. Zero
// matches is a success with count 0.
func (s *CardService) ClearCompleted(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteCompleted(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to clear completed cards")
		return 0, err
	}

	metrics.CardsClearedTotal.Add(float64(count))
	s.log.Info().Int64("count", count).Msg("completed cards cleared")
	return count, nil
}

func (s *CardService) observeTransition(card *domain.Card) {
	direction := "active"
	if card.Status == domain.StatusDone {
		direction = "done"
	}
	metrics.CardTransitionsTotal.WithLabelValues(direction).Inc()
}
