package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })
	return s
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "127.0.0.1:54321"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

func sampleProfile() types.Profile {
	return types.Profile{
		Skills: []string{"Python", "SQL", "Git"},
		Projects: []types.Project{
			{Name: "data-pipeline", Description: "ETL pipeline with Airflow", Language: "Python", Stars: 4},
		},
		GitHubStats: &types.GitHubStats{PublicRepos: 8, TotalContributions: 150, TotalStars: 12},
	}
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: 70000})
	assert.Error(t, err)

	_, err = New(Config{Port: 0})
	assert.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodOptions, "/api/score", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleScore(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/score", types.ScoreRequest{Profile: sampleProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	var score types.HolisticScore
	decodeBody(t, rec, &score)
	assert.Greater(t, score.Total, 0.0)
	assert.LessOrEqual(t, score.Total, 850.0)
	assert.NotEmpty(t, score.Tier)
}

func TestHandleScore_InvalidJSON(t *testing.T) {
	s := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/score", bytes.NewBufferString("{not json"))
	req.RemoteAddr = "127.0.0.1:54321"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["error"], "invalid JSON body")
}

func TestHandleMatch_DefaultLimit(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/match", types.MatchRequest{Profile: sampleProfile()})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Matches []types.InternshipMatch `json:"matches"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Matches, defaultMatchLimit)
}

func TestHandleMatch_LimitOutOfRange(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/match", types.MatchRequest{Profile: sampleProfile(), Limit: 50})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRoadmap(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/roadmap", types.RoadmapRequest{
		Profile:  sampleProfile(),
		Category: "Software Development",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var roadmap types.Roadmap
	decodeBody(t, rec, &roadmap)
	assert.Equal(t, "Software Development", roadmap.Category)
}

func TestHandleRoadmap_UnknownCategory(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/roadmap", types.RoadmapRequest{
		Profile:  sampleProfile(),
		Category: "Underwater Basket Weaving",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRoadmap_MissingCategory(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/roadmap", types.RoadmapRequest{Profile: sampleProfile()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func githubStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"login":"octocat","name":"Octo Cat","public_repos":2,"followers":10,"created_at":"2020-01-15T00:00:00Z"}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"name":"compass","description":"career analysis engine","language":"Go","stargazers_count":5,"forks_count":1,"watchers_count":5,"pushed_at":"2026-05-01T00:00:00Z"}]`)
	})
	mux.HandleFunc("/repos/octocat/compass/languages", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"Go":12000,"Makefile":300}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	stub := httptest.NewServer(mux)
	t.Cleanup(stub.Close)
	return stub
}

func TestHandleGitHub(t *testing.T) {
	stub := githubStub(t)
	s := newTestServer(t, Config{GitHubBaseURL: stub.URL})

	rec := doRequest(t, s, http.MethodGet, "/api/github/octocat", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis types.GitHubAnalysis
	decodeBody(t, rec, &analysis)
	assert.Equal(t, "octocat", analysis.Profile.Username)
	assert.Equal(t, 5, analysis.Statistics.TotalStars)
}

func TestHandleGitHub_Cached(t *testing.T) {
	stub := githubStub(t)
	var userHits int
	counting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/octocat" {
			userHits++
		}
		resp, err := http.Get(stub.URL + r.URL.Path)
		require.NoError(t, err)
		defer resp.Body.Close()
		w.WriteHeader(resp.StatusCode)
		_, _ = io.Copy(w, resp.Body)
	}))
	t.Cleanup(counting.Close)
	s := newTestServer(t, Config{GitHubBaseURL: counting.URL})

	first := doRequest(t, s, http.MethodGet, "/api/github/octocat", nil)
	require.Equal(t, http.StatusOK, first.Code)
	second := doRequest(t, s, http.MethodGet, "/api/github/octocat", nil)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, 1, userHits, "second request should be served from cache")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHandleGitHub_NotFound(t *testing.T) {
	stub := githubStub(t)
	s := newTestServer(t, Config{GitHubBaseURL: stub.URL})

	rec := doRequest(t, s, http.MethodGet, "/api/github/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["error"], "not found")
}

func TestHandleCertificates(t *testing.T) {
	s := newTestServer(t, Config{})
	issued := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rec := doRequest(t, s, http.MethodPost, "/api/certificates", types.CertificatesRequest{
		Certificates: []types.Certificate{
			{Name: "AWS Certified Cloud Practitioner", Issuer: "Amazon", IssueDate: &issued},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.CertificateReport
	decodeBody(t, rec, &report)
	assert.Equal(t, 1, report.TotalCertificates)
}

func TestHandleCertificates_EmptyList(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/certificates", types.CertificatesRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleActivities(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/activities", types.ActivitiesRequest{
		Activities: []types.Activity{
			{Name: "Coding Club", Type: "club", Role: "President"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.ActivityReport
	decodeBody(t, rec, &report)
	assert.Equal(t, 1, report.TotalActivities)
}

func TestHandlePortfolio(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/portfolio", types.PortfolioRequest{
		Projects: []types.Project{
			{Name: "ml-classifier", Description: "machine learning image classifier", Language: "Python", Stars: 10},
			{Name: "rest-api", Description: "REST API with authentication", Language: "Go", Stars: 3},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis types.PortfolioAnalysis
	decodeBody(t, rec, &analysis)
	assert.Len(t, analysis.Projects, 2)
	assert.Greater(t, analysis.PortfolioStrength, 0.0)
}

func TestHandlePortfolio_Enhanced(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/portfolio", types.PortfolioRequest{
		Projects: []types.Project{
			{Name: "ml-classifier", Description: "machine learning image classifier", Language: "Python"},
		},
		Enhanced: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.EnhancedPortfolio
	decodeBody(t, rec, &result)
	assert.Len(t, result.DimensionScores, 6)
}

func TestHandlePortfolio_NoProjects(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/portfolio", types.PortfolioRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleATS(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/ats", types.ATSRequest{
		ResumeText:         "Experienced developer with Python and SQL.",
		JobDescriptionText: "Looking for Python, SQL, and Docker experience.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var match types.ATSMatch
	decodeBody(t, rec, &match)
	assert.Contains(t, match.MatchedSkills, "Python")
	assert.Contains(t, match.MissingSkills, "Docker")
}

func TestHandleATS_MissingFields(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/ats", types.ATSRequest{ResumeText: "resume only"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIntegrate_NoSources(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/integrate", types.IntegrateRequest{})
	require.Equal(t, http.StatusOK, rec.Code)

	var unified types.UnifiedProfile
	decodeBody(t, rec, &unified)
	assert.Zero(t, unified.Completeness)
	assert.NotEmpty(t, unified.Recommendations)
}

func TestHandleIntegrate_Website(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><main><h1>Projects</h1><p>Built with Python and Docker. Contact: sam@example.com. About me.</p></main></body></html>`)
	}))
	t.Cleanup(site.Close)

	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/integrate", types.IntegrateRequest{
		Profile:    sampleProfile(),
		WebsiteURL: site.URL,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var unified types.UnifiedProfile
	decodeBody(t, rec, &unified)
	require.NotNil(t, unified.Website)
	assert.Equal(t, site.URL, unified.Website.URL)
	assert.Contains(t, unified.MergedSkills, "Docker")
}

func TestHandleIntegrate_InvalidURL(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/integrate", types.IntegrateRequest{
		WebsiteURL: "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSuggest_ResumeFallback(t *testing.T) {
	// No API key configured, so the generator serves its fixed fallback.
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/suggest", types.SuggestRequest{
		Kind:               "resume",
		ResumeText:         "Python developer resume.",
		JobDescriptionText: "Python and Docker role.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "resume", body["kind"])
	assert.NotEmpty(t, body["content"])
	assert.NotContains(t, body["content"], "Error:")
}

func TestHandleSuggest_ResumeMissingText(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/suggest", types.SuggestRequest{Kind: "resume"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSuggest_Careers(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/suggest", types.SuggestRequest{
		Kind:    "careers",
		Profile: sampleProfile(),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Kind        string                   `json:"kind"`
		Suggestions []types.CareerSuggestion `json:"suggestions"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "careers", body.Kind)
	assert.NotEmpty(t, body.Suggestions)
}

func TestHandleSuggest_UnknownKind(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/suggest", types.SuggestRequest{Kind: "horoscope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doRequest(t, s, http.MethodPost, "/api/score", types.ScoreRequest{Profile: sampleProfile()})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRepoViewOfProjects(t *testing.T) {
	view := repoViewOfProjects([]types.Project{
		{Name: "a", Language: "Go", Stars: 4, Forks: 1},
		{Name: "b", Language: "Go", Stars: 2},
		{Name: "c", Language: "Python", Stars: 0},
		{Name: "d"},
	})

	assert.Len(t, view.TopRepos, 4)
	assert.Equal(t, 6, view.Statistics.TotalStars)
	assert.Equal(t, 1, view.Statistics.TotalForks)
	assert.InDelta(t, 50.0, view.Languages["Go"], 0.01)
	assert.InDelta(t, 25.0, view.Languages["Python"], 0.01)
}

func TestRepoViewOfProjects_Empty(t *testing.T) {
	view := repoViewOfProjects(nil)
	assert.Empty(t, view.TopRepos)
	assert.Empty(t, view.Languages)
}
