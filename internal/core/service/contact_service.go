package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkwell-studio/backoffice/internal/api/metrics"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// ContactService forwards contact-form submissions by email. Nothing is
// persisted; delivery failure is the request's failure.
type ContactService struct {
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewContactService(mailer ports.Mailer, log zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, log: log}
}

func (s *ContactService) Send(ctx context.Context, msg ports.ContactMessage) error {
	if err := s.mailer.SendContact(ctx, msg); err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("failure").Inc()
		s.log.Error().Err(err).Str("from", msg.Email).Msg("contact mail delivery failed")
		return fmt.Errorf("%w: %v", domain.ErrMailer, err)
	}

	metrics.ContactMessagesTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("from", msg.Email).Msg("contact message forwarded")
	return nil
}
