package service

import (
	"context"
	"log/slog"

	"github.com/vbonduro/homebase/internal/domain"
)

// visitRepository is the subset of store.VisitStore that VisitService requires.
type visitRepository interface {
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	List(ctx context.Context) ([]*domain.Visit, error)
}

// requirementRepository is the subset of store.RequirementStore that VisitService requires.
type requirementRepository interface {
	Create(ctx context.Context, r *domain.VisitRequirement) (*domain.VisitRequirement, error)
}

type VisitService struct {
	visits       visitRepository
	requirements requirementRepository
	logger       *slog.Logger
}

func NewVisitService(visits visitRepository, requirements requirementRepository, logger *slog.Logger) *VisitService {
	return &VisitService{visits: visits, requirements: requirements, logger: logger}
}

// CreateVisit stores a visit. An end date before the start date is accepted as is.
func (s *VisitService) CreateVisit(ctx context.Context, in domain.VisitInput) (*domain.Visit, error) {
	if err := domain.Validate(&in); err != nil {
		return nil, err
	}

	visit, err := s.visits.Create(ctx, &domain.Visit{
		VisitorName: in.VisitorName,
		StartDate:   *in.StartDate,
		EndDate:     *in.EndDate,
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}
	if visit.EndDate.Before(visit.StartDate) {
		s.logger.Warn("visit ends before it starts", "visit_id", visit.ID,
			"start_date", visit.StartDate.String(), "end_date", visit.EndDate.String())
	}
	s.logger.Info("visit created", "visit_id", visit.ID)
	return visit, nil
}

func (s *VisitService) ListVisits(ctx context.Context) ([]*domain.Visit, error) {
	return s.visits.List(ctx)
}

// AddRequirement attaches meal and special requirements to visitID. The visit
// itself is not looked up, so requirements for unknown visits are stored too.
func (s *VisitService) AddRequirement(ctx context.Context, visitID int64, in domain.RequirementInput) (*domain.VisitRequirement, error) {
	if in.VisitID != nil && *in.VisitID != visitID {
		return nil, &domain.ValidationError{Fields: []string{"visit_id must match the visit in the path"}}
	}

	req, err := s.requirements.Create(ctx, &domain.VisitRequirement{
		VisitID:      visitID,
		MealRequest:  in.MealRequest,
		SpecialNotes: in.SpecialNotes,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("visit requirement added", "visit_id", visitID, "requirement_id", req.ID)
	return req, nil
}
