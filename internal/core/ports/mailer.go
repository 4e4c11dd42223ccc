package ports

import "context"

// ContactMessage is a contact-form submission. It is forwarded by email and
// never persisted.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mailer delivers outbound email. Implementations block until the message is
// accepted by the relay; failure is the caller's failure.
type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// ContactService forwards contact-form submissions.
type ContactService interface {
	Send(ctx context.Context, msg ContactMessage) error
}
