package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// PostService implements blog post CRUD.
type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

func (s *PostService) Create(ctx context.Context, input ports.PostInput) (*domain.Post, error) {
	post := &domain.Post{
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Slug:      input.Slug,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("slug", input.Slug).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Int64("post_id", created.ID).Str("slug", created.Slug).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces title, excerpt and slug. created_at never changes.
func (s *PostService) Update(ctx context.Context, id int64, input ports.PostInput) (*domain.Post, error) {
	post, err := s.repo.Replace(ctx, id, input.Title, input.Excerpt, input.Slug)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("post_id", id).Msg("post updated")
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
