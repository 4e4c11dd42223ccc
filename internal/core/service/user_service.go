package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// UserService implements admin-facing account management.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Delete removes the target account. The self-delete guard runs before any
// store access: the acting admin's id must differ from the target id.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", targetID).Str("deleted_by", actorID).Msg("user deleted")
	return nil
}
