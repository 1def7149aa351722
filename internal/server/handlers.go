package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/career-compass/internal/activities"
	"github.com/jonathan/career-compass/internal/certs"
	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/integration"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/portfolio"
	"github.com/jonathan/career-compass/internal/scoring"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

// defaultMatchLimit is the number of matches returned when the request
// does not ask for a specific count.
const defaultMatchLimit = 5

// decodeRequest decodes the JSON body into dst and reports a client error.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// handleScore computes the holistic score for a profile
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	score := scoring.Compute(req.Profile, time.Now())
	s.jsonResponse(w, http.StatusOK, score)
}

// handleMatch ranks internship categories for a profile
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultMatchLimit
	}

	matches := matching.FindBestMatches(req.Profile, limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleRoadmap builds a skill-gap roadmap toward one internship category
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	roadmap, err := matching.BuildRoadmap(req.Profile, req.Category)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleGitHub analyzes a public GitHub profile
func (s *Server) handleGitHub(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		s.errorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	cacheKey := "github:" + username
	if cached, ok := s.cache.Get(cacheKey); ok {
		if analysis, ok := cached.(types.GitHubAnalysis); ok {
			s.jsonResponse(w, http.StatusOK, analysis)
			return
		}
	}

	analysis, err := s.gitHub.Analyze(r.Context(), username, time.Now())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.cache.Set(cacheKey, analysis, fetch.DefaultCacheTTL)
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleCertificates validates and analyzes a certificate list
func (s *Server) handleCertificates(w http.ResponseWriter, r *http.Request) {
	var req types.CertificatesRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	report := certs.Analyze(req.Certificates, time.Now())
	s.jsonResponse(w, http.StatusOK, report)
}

// handleActivities analyzes extracurricular activities
func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	var req types.ActivitiesRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	report := activities.Analyze(req.Activities, time.Now())
	s.jsonResponse(w, http.StatusOK, report)
}

// handlePortfolio analyzes a project portfolio. The enhanced flag switches
// to the six-dimension analysis that also weighs certificates and activities.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	var req types.PortfolioRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Enhanced {
		result := portfolio.AnalyzeEnhanced(req.Projects, nil, nil, nil, nil, time.Now())
		s.jsonResponse(w, http.StatusOK, result)
		return
	}

	analysis, err := portfolio.Analyze(repoViewOfProjects(req.Projects))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleATS scores a resume against a job description
func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	var req types.ATSRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	match := skills.MatchResume(req.ResumeText, req.JobDescriptionText)
	s.jsonResponse(w, http.StatusOK, match)
}

// handleIntegrate builds a unified multi-source profile. Unreachable
// sources are skipped, never fatal.
func (s *Server) handleIntegrate(w http.ResponseWriter, r *http.Request) {
	var req types.IntegrateRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	now := time.Now()

	var githubAnalysis *types.GitHubAnalysis
	if req.Profile.GitHubUsername != "" {
		analysis, err := s.gitHub.Analyze(ctx, req.Profile.GitHubUsername, now)
		if err != nil {
			log.Printf("[INTEGRATE] GitHub source skipped: %v", err)
		} else {
			githubAnalysis = &analysis
		}
	}

	var websiteAnalysis *types.WebsiteAnalysis
	var websiteText string
	if req.WebsiteURL != "" {
		analysis, text, err := s.integrator.AnalyzeWebsite(ctx, req.WebsiteURL)
		if err != nil {
			log.Printf("[INTEGRATE] website source skipped: %v", err)
		} else {
			websiteAnalysis = analysis
			websiteText = text
		}
	}

	unified := integration.BuildUnifiedProfile(req.Profile, githubAnalysis, websiteAnalysis, websiteText, now)
	s.jsonResponse(w, http.StatusOK, unified)
}

// handleSuggest generates one kind of LLM-backed guidance. Text kinds need
// resume text; the generator itself degrades to canned fallbacks when no
// provider is configured.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	switch req.Kind {
	case "resume":
		if req.ResumeText == "" || req.JobDescriptionText == "" {
			s.errorResponse(w, http.StatusBadRequest, "resume_text and job_description_text are required for kind resume")
			return
		}
		match := skills.MatchResume(req.ResumeText, req.JobDescriptionText)
		content := s.generator.ResumeImprovements(ctx, req.ResumeText, req.JobDescriptionText, match.MissingSkills)
		s.jsonResponse(w, http.StatusOK, map[string]string{"kind": req.Kind, "content": content})

	case "projects":
		if req.ResumeText == "" {
			s.errorResponse(w, http.StatusBadRequest, "resume_text is required for kind projects")
			return
		}
		content := s.generator.ProjectIdeas(ctx, req.ResumeText, req.Profile.Skills)
		s.jsonResponse(w, http.StatusOK, map[string]string{"kind": req.Kind, "content": content})

	case "cover_letter":
		if req.ResumeText == "" || req.JobDescriptionText == "" {
			s.errorResponse(w, http.StatusBadRequest, "resume_text and job_description_text are required for kind cover_letter")
			return
		}
		content := s.generator.CoverLetter(ctx, req.ResumeText, req.JobDescriptionText, req.Profile.Skills)
		s.jsonResponse(w, http.StatusOK, map[string]string{"kind": req.Kind, "content": content})

	case "careers":
		suggestions := s.generator.CareerSuggestions(ctx, req.Profile)
		s.jsonResponse(w, http.StatusOK, map[string]any{"kind": req.Kind, "suggestions": suggestions})

	case "courses":
		if len(req.SkillsToLearn) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "skills_to_learn is required for kind courses")
			return
		}
		suggestions := s.generator.CourseSuggestions(ctx, req.SkillsToLearn)
		s.jsonResponse(w, http.StatusOK, map[string]any{"kind": req.Kind, "suggestions": suggestions})

	default:
		// Unreachable after validation, kept for safety.
		s.errorResponse(w, http.StatusBadRequest, "unknown suggestion kind: "+req.Kind)
	}
}

// repoViewOfProjects adapts user-supplied projects to the repository view
// the portfolio analyzer operates on, deriving language shares from the
// per-project languages.
func repoViewOfProjects(projects []types.Project) types.GitHubAnalysis {
	repos := make([]types.RepoSummary, 0, len(projects))
	languages := make(map[string]float64)
	totalStars := 0
	totalForks := 0

	for _, p := range projects {
		repos = append(repos, types.RepoSummary{
			Name:        p.Name,
			Description: p.Description,
			Stars:       p.Stars,
			Forks:       p.Forks,
			Language:    p.Language,
			URL:         p.GitHubURL,
		})
		if p.Language != "" {
			languages[p.Language]++
		}
		totalStars += p.Stars
		totalForks += p.Forks
	}

	if len(projects) > 0 {
		for lang := range languages {
			languages[lang] = languages[lang] / float64(len(projects)) * 100
		}
	}

	return types.GitHubAnalysis{
		TopRepos:  repos,
		Languages: languages,
		Statistics: types.GitHubStatistics{
			TotalRepos:     len(repos),
			TotalStars:     totalStars,
			TotalForks:     totalForks,
			LanguagesCount: len(languages),
		},
	}
}
