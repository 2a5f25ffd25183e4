package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/homebase/internal/db"
	"github.com/vbonduro/homebase/internal/domain"
)

type PostStore struct {
	db *db.DB
}

func NewPostStore(d *db.DB) *PostStore {
	return &PostStore{db: d}
}

func (s *PostStore) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		INSERT INTO posts (title, publish_date, body_md) VALUES (?, ?, ?) RETURNING id
	`), p.Title, p.PublishDate, p.BodyMD).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns nil, nil when no post has the given id.
func (s *PostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post := &domain.Post{}
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		SELECT id, title, publish_date, body_md FROM posts WHERE id = ?
	`), id).Scan(&post.ID, &post.Title, &post.PublishDate, &post.BodyMD)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// List returns every post, most recent publish date first. The order of posts
// sharing a publish date is whatever the database yields.
func (s *PostStore) List(ctx context.Context) ([]*domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, publish_date, body_md FROM posts ORDER BY publish_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		post := &domain.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.PublishDate, &post.BodyMD); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// Replace overwrites every column of the post with p.ID.
func (s *PostStore) Replace(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE posts SET title = ?, publish_date = ?, body_md = ? WHERE id = ?
	`), p.Title, p.PublishDate, p.BodyMD, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("post %d: %w", p.ID, domain.ErrNotFound)
	}

	return s.GetByID(ctx, p.ID)
}

func (s *PostStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(`
		DELETE FROM posts WHERE id = ?
	`), id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
