package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/server/middleware"
	"github.com/jonathan/placement-prep/internal/server/ratelimit"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var fixedTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

const seniorBackendJD = "Senior Backend Engineer role requiring React, Node.js, AWS, and SQL. Remote work available."

// newTestServer creates a server over a memory store with deterministic IDs and time
func newTestServer(t *testing.T) *Server {
	t.Helper()
	n := 0
	analyzer := analysis.New(
		analysis.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("analysis-%d", n)
		}),
		analysis.WithClock(func() time.Time { return fixedTime }),
	)

	s, err := New(Config{
		Store:     storage.NewMemoryStore(),
		Analyzer:  analyzer,
		RateLimit: &ratelimit.Config{Enabled: false},
	})
	require.NoError(t, err)
	s.now = func() time.Time { return fixedTime }
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	w := doJSON(t, newTestServer(t).Handler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, w)["status"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	w := doJSON(t, newTestServer(t).Handler(), http.MethodOptions, "/analyses", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight_BypassesRateLimit(t *testing.T) {
	s, err := New(Config{
		Store:     storage.NewMemoryStore(),
		RateLimit: &ratelimit.Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute},
	})
	require.NoError(t, err)
	defer s.rateLimiter.Stop()
	h := s.Handler()

	for i := 0; i < 3; i++ {
		w := doJSON(t, h, http.MethodOptions, "/analyses", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, h, http.MethodGet, "/analyses", nil)
	require.Equal(t, http.StatusOK, w.Code, "preflights left the token alone")

	w = doJSON(t, h, http.MethodGet, "/analyses", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalysisLifecycle(t *testing.T) {
	h := newTestServer(t).Handler()

	w := doJSON(t, h, http.MethodPost, "/analyses", types.AnalyzeRequest{
		Company: "Amazon", Role: "Backend Engineer", JDText: seniorBackendJD,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[types.AnalysisResult](t, w)
	assert.Equal(t, "analysis-1", created.ID)
	assert.Equal(t, "/analyses/analysis-1", w.Header().Get("Location"))
	assert.Equal(t, 70, created.BaseScore)
	assert.Equal(t, 62, created.FinalScore)

	w = doJSON(t, h, http.MethodPost, "/analyses", types.AnalyzeRequest{Company: "Acme", Role: "SDE", JDText: "Go and SQL"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodGet, "/analyses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[ListAnalysesResponse](t, w)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, "analysis-2", list.Analyses[0].ID, "newest first")

	w = doJSON(t, h, http.MethodGet, "/analyses/latest", nil)
	assert.Equal(t, "analysis-2", decodeBody[types.AnalysisResult](t, w).ID)

	w = doJSON(t, h, http.MethodGet, "/analyses/analysis-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Amazon", decodeBody[types.AnalysisResult](t, w).Company)

	w = doJSON(t, h, http.MethodPost, "/analyses/analysis-1/skills/toggle", types.ToggleSkillRequest{Skill: "SQL"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	toggled := decodeBody[types.AnalysisResult](t, w)
	assert.Equal(t, types.ConfidenceKnow, toggled.SkillConfidenceMap["SQL"])
	assert.Equal(t, 66, toggled.FinalScore)

	w = doJSON(t, h, http.MethodGet, "/analyses/analysis-1", nil)
	assert.Equal(t, 66, decodeBody[types.AnalysisResult](t, w).FinalScore, "toggle is persisted")
}

func TestCreateAnalysis_Errors(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name string
		body any
	}{
		{"malformed body", "{not json"},
		{"missing jd", types.AnalyzeRequest{Company: "Acme"}},
		{"whitespace jd", types.AnalyzeRequest{JDText: "   \n "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, h, http.MethodPost, "/analyses", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeBody[map[string]string](t, w)["error"])
		})
	}
}

func TestAnalyses_NotFound(t *testing.T) {
	h := newTestServer(t).Handler()

	w := doJSON(t, h, http.MethodGet, "/analyses/latest", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/analyses/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodPost, "/analyses/missing/skills/toggle", types.ToggleSkillRequest{Skill: "SQL"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/analyses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeBody[ListAnalysesResponse](t, w).Count)
}

func TestToggleSkill_UnknownSkillKeepsScore(t *testing.T) {
	h := newTestServer(t).Handler()
	doJSON(t, h, http.MethodPost, "/analyses", types.AnalyzeRequest{Company: "Amazon", Role: "Backend Engineer", JDText: seniorBackendJD})

	w := doJSON(t, h, http.MethodPost, "/analyses/analysis-1/skills/toggle", types.ToggleSkillRequest{Skill: "Cobol"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodPost, "/analyses/analysis-1/skills/toggle", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodGet, "/analyses/analysis-1", nil)
	assert.Equal(t, 62, decodeBody[types.AnalysisResult](t, w).FinalScore)
}

func TestExportAndSkillSelection(t *testing.T) {
	h := newTestServer(t).Handler()
	doJSON(t, h, http.MethodPost, "/analyses", types.AnalyzeRequest{Company: "Amazon", Role: "Backend Engineer", JDText: seniorBackendJD})

	w := doJSON(t, h, http.MethodGet, "/analyses/analysis-1/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "readiness_amazon.txt")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Body.String(), "Amazon")

	w = doJSON(t, h, http.MethodGet, "/analyses/analysis-1/skill-selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	selection := decodeBody[types.SkillSelection](t, w)
	assert.Equal(t, 4, selection.TotalSkillsIdentified)
}

func TestRateLimitMiddleware(t *testing.T) {
	s, err := New(Config{
		Store:     storage.NewMemoryStore(),
		RateLimit: &ratelimit.Config{Enabled: true, DefaultLimit: 2, DefaultWindow: time.Minute},
	})
	require.NoError(t, err)
	defer s.rateLimiter.Stop()
	h := s.Handler()

	for i := 0; i < 2; i++ {
		w := doJSON(t, h, http.MethodGet, "/analyses", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := doJSON(t, h, http.MethodGet, "/analyses", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decodeBody[map[string]any](t, w)["error"])

	w = doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code, "health is never limited")
}
