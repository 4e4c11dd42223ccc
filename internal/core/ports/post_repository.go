package ports

import (
	"context"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// List returns all posts ordered by created_at descending (newest first).
	List(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// Replace overwrites title, excerpt and slug; created_at is untouched.
	Replace(ctx context.Context, id int64, title, excerpt, slug string) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
