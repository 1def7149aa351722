package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/types"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

const portfolioHTML = `<html><body>
<nav><a href="#projects">Projects</a><a href="#about">About</a><a href="#contact">Contact</a></nav>
<main>
<h2>Projects</h2>
<p>Skills: Python, JavaScript, SQL, Docker and Kubernetes.</p>
<a href="https://github.com/samdev">GitHub</a>
<a href="https://linkedin.com/in/sam-dev">LinkedIn</a>
</main>
</body></html>`

func TestAnalyzeWebsiteContent(t *testing.T) {
	text := "Skills: Python, JavaScript, SQL, Docker and Kubernetes."
	analysis := AnalyzeWebsiteContent("https://samdev.github.io", portfolioHTML, text)

	assert.True(t, analysis.HasProjects)
	assert.True(t, analysis.HasContact)
	assert.True(t, analysis.HasAbout)
	assert.Equal(t, []string{"Docker", "JavaScript", "Kubernetes", "Python", "SQL"}, analysis.SkillsMentioned)
	assert.Equal(t, "samdev", analysis.GitHubUsername)
	assert.Equal(t, "sam-dev", analysis.LinkedInHandle)
	// 25 + 25 + 25 + min(5*2.5, 25)
	assert.InDelta(t, 87.5, analysis.QualityScore, 0.01)
}

func TestAnalyzeWebsiteContent_Bare(t *testing.T) {
	html := `<html><body><p>hello there</p></body></html>`
	analysis := AnalyzeWebsiteContent("https://example.com", html, "hello there")

	assert.False(t, analysis.HasProjects)
	assert.False(t, analysis.HasContact)
	assert.False(t, analysis.HasAbout)
	assert.Empty(t, analysis.SkillsMentioned)
	assert.Empty(t, analysis.GitHubUsername)
	assert.Empty(t, analysis.LinkedInHandle)
	assert.InDelta(t, 0.0, analysis.QualityScore, 0.01)
}

func TestAnalyzeWebsite_Fetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(portfolioHTML))
	}))
	defer server.Close()

	integrator := NewIntegrator(fetch.NewCachedFetcher(fetch.NewTTLCache(), nil), false)

	analysis, text, err := integrator.AnalyzeWebsite(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, analysis.URL)
	assert.True(t, analysis.HasProjects)
	assert.Contains(t, text, "Python")
	assert.Contains(t, analysis.SkillsMentioned, "Kubernetes")
}

func TestAnalyzeWebsite_FetchError(t *testing.T) {
	integrator := NewIntegrator(nil, false)

	_, _, err := integrator.AnalyzeWebsite(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *fetch.Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestBuildUnifiedProfile_AllSources(t *testing.T) {
	profile := types.Profile{
		Skills:       []string{"python", "golang"},
		Certificates: []types.Certificate{{Name: "AWS Cloud Practitioner"}},
		Activities: []types.Activity{
			{Name: "Coding Club", Type: "Club"},
			{Name: "Hackathon", Type: "Competition"},
		},
		Learning: &types.LearningProgress{CompletedCourses: 3},
	}
	github := &types.GitHubAnalysis{
		Profile:   types.GitHubProfileInfo{Username: "samdev"},
		Languages: map[string]float64{"Python": 60.0, "Go": 40.0},
	}
	website := &types.WebsiteAnalysis{
		URL:             "https://samdev.github.io",
		SkillsMentioned: []string{"Docker"},
	}

	unified := BuildUnifiedProfile(profile, github, website, "site text", testNow)

	assert.NotEqual(t, uuid.Nil, unified.ID)
	assert.Equal(t, testNow, unified.GeneratedAt)
	assert.Equal(t, "site text", unified.WebsiteText)

	// Variants collapse: python/Python merge, golang becomes Go.
	assert.Equal(t, []string{"Docker", "Go", "Python"}, unified.MergedSkills)

	require.Len(t, unified.Sources, 5)
	for _, status := range unified.Sources {
		assert.True(t, status.Used, "source %s should be used", status.Source)
	}
	assert.Equal(t, "samdev", unified.Sources[0].Detail)
	assert.Equal(t, "https://samdev.github.io", unified.Sources[1].Detail)
	assert.Equal(t, "1 certificate", unified.Sources[2].Detail)
	assert.Equal(t, "2 activities", unified.Sources[3].Detail)

	assert.InDelta(t, 100.0, unified.Completeness, 0.01)
	// Only the certificate-count recommendation fires (1 < 3).
	assert.Equal(t, []string{"Add more certifications to strengthen your profile"}, unified.Recommendations)
}

func TestBuildUnifiedProfile_NoSources(t *testing.T) {
	unified := BuildUnifiedProfile(types.Profile{}, nil, nil, "", testNow)

	assert.NotEqual(t, uuid.Nil, unified.ID)
	assert.Empty(t, unified.MergedSkills)
	assert.InDelta(t, 0.0, unified.Completeness, 0.01)

	require.Len(t, unified.Sources, 5)
	for _, status := range unified.Sources {
		assert.False(t, status.Used)
	}

	assert.Equal(t, []string{
		"Connect your GitHub profile for project analysis",
		"Add your portfolio website for comprehensive analysis",
		"Add more certifications to strengthen your profile",
		"Track your learning progress for better insights",
	}, unified.Recommendations)
}

func TestBuildUnifiedProfile_ProficienciesMerge(t *testing.T) {
	profile := types.Profile{
		Proficiencies: []types.SkillProficiency{
			{Name: "react", Level: 80},
			{Name: "TypeScript", Level: 70},
		},
	}

	unified := BuildUnifiedProfile(profile, nil, nil, "", testNow)

	assert.Equal(t, []string{"React", "TypeScript"}, unified.MergedSkills)
}
