// Package mail implements the outbound contact notifier over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// Config captures the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the envelope sender; To receives all contact submissions.
	From string
	To   string
}

// SMTPMailer forwards contact messages through an SMTP relay. Delivery is
// synchronous: the send blocks until the relay accepts or rejects the
// message.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendContact delivers a single contact-form submission. The visitor's
// address goes in the body, not the envelope, so the relay never rejects a
// spoofed From.
func (m *SMTPMailer) SendContact(ctx context.Context, msg ports.ContactMessage) error {
	mm := gomail.NewMsg()
	if err := mm.From(m.cfg.From); err != nil {
		return fmt.Errorf("contact mail from: %w", err)
	}
	if err := mm.To(m.cfg.To); err != nil {
		return fmt.Errorf("contact mail to: %w", err)
	}
	mm.Subject("New message from " + msg.Name)
	mm.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("Email: %s\n\n%s", msg.Email, msg.Message))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("contact mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, mm)
}
