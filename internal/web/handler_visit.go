package web

import (
	"net/http"

	"github.com/vbonduro/homebase/internal/domain"
)

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var in domain.VisitInput
	if !s.readJSON(w, r, &in) {
		return
	}

	visit, err := s.visits.CreateVisit(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, visit, http.StatusOK)
}

func (s *Server) handleListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := s.visits.ListVisits(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, visits, http.StatusOK)
}

func (s *Server) handleAddRequirement(w http.ResponseWriter, r *http.Request) {
	visitID, err := parseID(r)
	if err != nil {
		s.apiError(w, "invalid visit id", http.StatusBadRequest)
		return
	}

	var in domain.RequirementInput
	if !s.readJSON(w, r, &in) {
		return
	}

	req, err := s.visits.AddRequirement(r.Context(), visitID, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, req, http.StatusOK)
}
