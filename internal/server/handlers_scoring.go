package server

import (
	"io"
	"net/http"

	"github.com/jonathan/placement-prep/internal/assessment"
	"github.com/jonathan/placement-prep/internal/matching"
	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/types"
)

// MatchResponse is the response for POST /match
type MatchResponse struct {
	JobID      string        `json:"jobId"`
	MatchScore int           `json:"matchScore"`
	Band       matching.Band `json:"band"`
}

// DigestResponse is the response for POST /digest
type DigestResponse struct {
	Date   string            `json:"date"`
	Digest []types.ScoredJob `json:"digest"`
	Text   string            `json:"text,omitempty"`
	Jobs   []types.ScoredJob `json:"jobs,omitempty"` // Filtered dashboard, only when a filter was sent
}

// handleATS scores a resume document. The body is validated against the resume schema.
func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, &ErrBadRequest{Message: "failed to read request body"})
		return
	}

	resume, err := schemas.DecodeResume(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.CalculateATS(resume))
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	score := matching.MatchScore(req.Job, req.Preferences)
	s.jsonResponse(w, http.StatusOK, MatchResponse{
		JobID:      req.Job.ID,
		MatchScore: score,
		Band:       matching.BandFor(score),
	})
}

// handleDigest builds today's top matches and, when a filter is sent, the filtered dashboard.
func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	var req types.DigestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	date := s.now().Format("2006-01-02")
	digest := matching.Digest(req.Jobs, req.Preferences)
	resp := DigestResponse{Date: date, Digest: digest}
	if digest == nil {
		resp.Digest = []types.ScoredJob{}
	} else {
		resp.Text = matching.DigestText(date, digest)
	}

	if req.Filter != nil {
		scored := matching.ScoreJobs(req.Jobs, req.Preferences, nil)
		resp.Jobs = matching.Filter(scored, *req.Filter, req.Preferences)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req types.AssessmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, assessment.GenerateMockTest(req.Skills, req.Config, s.now()))
}

func (s *Server) handleGradeAssessment(w http.ResponseWriter, r *http.Request) {
	var req types.GradeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment.Grade(req.Test, req.Answers))
}
