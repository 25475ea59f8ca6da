package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/placement-prep/internal/assessment"
	"github.com/jonathan/placement-prep/internal/report"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/types"
)

// ListAnalysesResponse is the response for GET /analyses
type ListAnalysesResponse struct {
	Analyses []*types.AnalysisResult `json:"analyses"`
	Count    int                     `json:"count"`
}

// handleCreateAnalysis analyzes a job description and prepends it to the history.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.analyzer.AnalyzeRequest(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.history.Prepend(r.Context(), result); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/analyses/"+result.ID)
	s.jsonResponse(w, http.StatusCreated, result)
}

// handleListAnalyses returns the history, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	list, err := s.history.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []*types.AnalysisResult{}
	}
	s.jsonResponse(w, http.StatusOK, ListAnalysesResponse{Analyses: list, Count: len(list)})
}

func (s *Server) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := s.history.Latest(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleToggleSkill flips one skill between know and practice and returns the
// updated analysis with its recomputed final score.
func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	var req types.ToggleSkillRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.history.Update(r.Context(), r.PathValue("id"), func(a *types.AnalysisResult) error {
		_, err := scoring.ToggleSkill(a, req.Skill)
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleExportAnalysis downloads the analysis as plain text.
func (s *Server) handleExportAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	text, err := report.PlainText(result)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExportFileName(result.Company)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleSkillSelection(w http.ResponseWriter, r *http.Request) {
	result, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment.SkillSelection(result))
}
