package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/homebase/internal/db"
	"github.com/vbonduro/homebase/internal/domain"
)

type VisitStore struct {
	db *db.DB
}

func NewVisitStore(d *db.DB) *VisitStore {
	return &VisitStore{db: d}
}

func (s *VisitStore) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		INSERT INTO visits (visitor_name, start_date, end_date, notes) VALUES (?, ?, ?, ?) RETURNING id
	`), v.VisitorName, v.StartDate, v.EndDate, nullString(v.Notes)).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *VisitStore) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	visit := &domain.Visit{}
	var notes sql.NullString
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		SELECT id, visitor_name, start_date, end_date, notes FROM visits WHERE id = ?
	`), id).Scan(&visit.ID, &visit.VisitorName, &visit.StartDate, &visit.EndDate, &notes)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	visit.Notes = stringPtr(notes)
	return visit, nil
}

// List returns visits in storage order; no ordering is requested.
func (s *VisitStore) List(ctx context.Context) ([]*domain.Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, visitor_name, start_date, end_date, notes FROM visits
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	visits := []*domain.Visit{}
	for rows.Next() {
		visit := &domain.Visit{}
		var notes sql.NullString
		if err := rows.Scan(&visit.ID, &visit.VisitorName, &visit.StartDate, &visit.EndDate, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visit.Notes = stringPtr(notes)
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visits: %w", err)
	}

	return visits, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
