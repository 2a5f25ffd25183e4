package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/vbonduro/homebase/internal/domain"
)

// postRepository is the subset of store.PostStore that PostService requires.
type postRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Replace(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}

type PostService struct {
	posts  postRepository
	now    func() time.Time
	logger *slog.Logger
}

// NewPostService builds a PostService. now supplies "today" for posts created
// or replaced without a publish date.
func NewPostService(posts postRepository, now func() time.Time, logger *slog.Logger) *PostService {
	return &PostService{posts: posts, now: now, logger: logger}
}

// CreatePost stores a new post whose Markdown body is the uploaded file content.
func (s *PostService) CreatePost(ctx context.Context, title string, publishDate *domain.Date, body []byte) (*domain.Post, error) {
	post := &domain.Post{
		Title:       title,
		PublishDate: s.dateOrToday(publishDate),
	}
	if err := domain.Validate(post); err != nil {
		return nil, err
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("post body: %w", domain.ErrInvalidEncoding)
	}
	post.BodyMD = string(body)

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	s.logger.Info("post created", "post_id", created.ID, "publish_date", created.PublishDate.String(), "bytes", len(body))
	return created, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return post, nil
}

// ReplacePost overwrites every field of post id. A missing publish date resets it to today.
func (s *PostService) ReplacePost(ctx context.Context, id int64, in domain.PostUpdate) (*domain.Post, error) {
	if err := domain.Validate(&in); err != nil {
		return nil, err
	}

	updated, err := s.posts.Replace(ctx, &domain.Post{
		ID:          id,
		Title:       in.Title,
		PublishDate: s.dateOrToday(in.PublishDate),
		BodyMD:      *in.BodyMD,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("post replaced", "post_id", id)
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("post deleted", "post_id", id)
	return nil
}

func (s *PostService) dateOrToday(d *domain.Date) domain.Date {
	if d != nil && !d.IsZero() {
		return *d
	}
	return domain.DateOf(s.now())
}
