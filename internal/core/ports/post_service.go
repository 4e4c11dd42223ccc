package ports

import (
	"context"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// PostInput carries the writable post fields.
type PostInput struct {
	Title   string
	Excerpt string
	Slug    string
}

// PostService defines blog post use cases. Reads are public; writes are
// admin-gated at the transport layer.
type PostService interface {
	Create(ctx context.Context, input PostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, input PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
