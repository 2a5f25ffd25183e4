package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/homebase/internal/db"
	"github.com/vbonduro/homebase/internal/domain"
)

type RequirementStore struct {
	db *db.DB
}

func NewRequirementStore(d *db.DB) *RequirementStore {
	return &RequirementStore{db: d}
}

// Create inserts the requirement without checking that its visit exists.
func (s *RequirementStore) Create(ctx context.Context, r *domain.VisitRequirement) (*domain.VisitRequirement, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		INSERT INTO visit_requirements (visit_id, meal_request, special_notes) VALUES (?, ?, ?) RETURNING id
	`), r.VisitID, nullString(r.MealRequest), nullString(r.SpecialNotes)).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create visit requirement: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *RequirementStore) GetByID(ctx context.Context, id int64) (*domain.VisitRequirement, error) {
	req := &domain.VisitRequirement{}
	var meal, special sql.NullString
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		SELECT id, visit_id, meal_request, special_notes FROM visit_requirements WHERE id = ?
	`), id).Scan(&req.ID, &req.VisitID, &meal, &special)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get visit requirement: %w", err)
	}

	req.MealRequest = stringPtr(meal)
	req.SpecialNotes = stringPtr(special)
	return req, nil
}
