// Package integration merges GitHub analysis, portfolio-website signals,
// certificates, and activity data into a single unified profile, the input
// to scoring and matching. Missing sources are skipped, never fatal.
package integration

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

// Source names as they appear in SourceStatus entries.
const (
	SourceGitHub       = "GitHub"
	SourceWebsite      = "Website"
	SourceCertificates = "Certificates"
	SourceActivities   = "Activities"
	SourceLearning     = "Learning"
)

// knownSources is the fixed denominator for the completeness score.
var knownSources = []string{
	SourceGitHub,
	SourceWebsite,
	SourceCertificates,
	SourceActivities,
	SourceLearning,
}

var (
	githubLinkPattern   = regexp.MustCompile(`github\.com/([a-zA-Z0-9-]+)`)
	linkedinLinkPattern = regexp.MustCompile(`linkedin\.com/in/([a-zA-Z0-9-]+)`)
)

// Section marker words checked against lowercased page content.
var (
	projectWords = []string{"project", "portfolio", "work"}
	contactWords = []string{"contact", "email", "linkedin"}
	aboutWords   = []string{"about", "bio", "profile"}
)

// Integrator fetches and analyzes portfolio websites and assembles
// unified profiles.
type Integrator struct {
	fetcher *fetch.CachedFetcher
	verbose bool
}

// NewIntegrator creates an integrator. A nil fetcher gets defaults.
func NewIntegrator(fetcher *fetch.CachedFetcher, verbose bool) *Integrator {
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil, nil)
	}
	return &Integrator{fetcher: fetcher, verbose: verbose}
}

// AnalyzeWebsite fetches a portfolio website and summarizes its signals:
// section presence, mentioned skills, social links, and a quality score.
func (i *Integrator) AnalyzeWebsite(ctx context.Context, urlStr string) (*types.WebsiteAnalysis, string, error) {
	if i.verbose {
		log.Printf("[INTEGRATE] fetching website: %s", urlStr)
	}

	result, err := i.fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, "", err
	}

	analysis := AnalyzeWebsiteContent(urlStr, result.HTML, result.Text)
	if i.verbose {
		log.Printf("[INTEGRATE] website quality %.1f, %d skills mentioned",
			analysis.QualityScore, len(analysis.SkillsMentioned))
	}
	return analysis, result.Text, nil
}

// AnalyzeWebsiteContent inspects already-fetched page content.
// Section flags scan the raw HTML so nav/footer anchors still count;
// skill extraction runs on the cleaned main text.
func AnalyzeWebsiteContent(urlStr, html, text string) *types.WebsiteAnalysis {
	content := strings.ToLower(html)

	analysis := &types.WebsiteAnalysis{
		URL:             urlStr,
		HasProjects:     containsAny(content, projectWords),
		HasContact:      containsAny(content, contactWords),
		HasAbout:        containsAny(content, aboutWords),
		SkillsMentioned: skills.ExtractSkills(text),
	}

	if m := githubLinkPattern.FindStringSubmatch(content); m != nil {
		analysis.GitHubUsername = m[1]
	}
	if m := linkedinLinkPattern.FindStringSubmatch(content); m != nil {
		analysis.LinkedInHandle = m[1]
	}

	analysis.QualityScore = websiteQuality(analysis.HasProjects, analysis.HasContact,
		analysis.HasAbout, len(analysis.SkillsMentioned))

	return analysis
}

// websiteQuality scores a site out of 100: 25 points per present section
// plus up to 25 for mentioned skills.
func websiteQuality(hasProjects, hasContact, hasAbout bool, skillCount int) float64 {
	score := 0.0
	if hasProjects {
		score += 25
	}
	if hasContact {
		score += 25
	}
	if hasAbout {
		score += 25
	}
	score += math.Min(float64(skillCount)*2.5, 25)
	return score
}

// BuildUnifiedProfile merges all available sources into one profile.
// Any source pointer may be nil; absent sources lower completeness and add
// a recommendation but never fail the build.
func BuildUnifiedProfile(profile types.Profile, github *types.GitHubAnalysis, website *types.WebsiteAnalysis, websiteText string, now time.Time) types.UnifiedProfile {
	unified := types.UnifiedProfile{
		ID:          uuid.New(),
		GeneratedAt: now,
		Profile:     profile,
		GitHub:      github,
		Website:     website,
		WebsiteText: websiteText,
	}

	unified.MergedSkills = mergeSkills(profile, github, website)
	unified.Sources = sourceStatuses(profile, github, website)
	unified.Completeness = completeness(unified.Sources)
	unified.Recommendations = integrationRecommendations(profile, github, website)

	return unified
}

// mergeSkills deduplicates skills across declared profile skills, GitHub
// languages, and website mentions. Variants collapse through normalization
// and the result is sorted for stable output.
func mergeSkills(profile types.Profile, github *types.GitHubAnalysis, website *types.WebsiteAnalysis) []string {
	var raw []string
	raw = append(raw, profile.Skills...)
	for _, p := range profile.Proficiencies {
		raw = append(raw, p.Name)
	}
	if github != nil {
		langs := make([]string, 0, len(github.Languages))
		for lang := range github.Languages {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		raw = append(raw, langs...)
	}
	if website != nil {
		raw = append(raw, website.SkillsMentioned...)
	}

	merged := skills.NormalizeSkills(raw)
	sort.Strings(merged)
	return merged
}

func sourceStatuses(profile types.Profile, github *types.GitHubAnalysis, website *types.WebsiteAnalysis) []types.SourceStatus {
	statuses := make([]types.SourceStatus, 0, len(knownSources))
	for _, source := range knownSources {
		status := types.SourceStatus{Source: source}
		switch source {
		case SourceGitHub:
			if github != nil {
				status.Used = true
				status.Detail = github.Profile.Username
			}
		case SourceWebsite:
			if website != nil {
				status.Used = true
				status.Detail = website.URL
			}
		case SourceCertificates:
			if len(profile.Certificates) > 0 {
				status.Used = true
				status.Detail = countDetail(len(profile.Certificates), "certificate", "certificates")
			}
		case SourceActivities:
			if len(profile.Activities) > 0 {
				status.Used = true
				status.Detail = countDetail(len(profile.Activities), "activity", "activities")
			}
		case SourceLearning:
			if profile.Learning != nil {
				status.Used = true
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// completeness is the share of known sources that contributed, 0-100.
func completeness(statuses []types.SourceStatus) float64 {
	if len(statuses) == 0 {
		return 0
	}
	used := 0
	for _, s := range statuses {
		if s.Used {
			used++
		}
	}
	return float64(used) / float64(len(statuses)) * 100
}

func integrationRecommendations(profile types.Profile, github *types.GitHubAnalysis, website *types.WebsiteAnalysis) []string {
	var recs []string
	if github == nil {
		recs = append(recs, "Connect your GitHub profile for project analysis")
	}
	if website == nil {
		recs = append(recs, "Add your portfolio website for comprehensive analysis")
	}
	if len(profile.Certificates) < 3 {
		recs = append(recs, "Add more certifications to strengthen your profile")
	}
	if profile.Learning == nil {
		recs = append(recs, "Track your learning progress for better insights")
	}
	return recs
}

func containsAny(content string, words []string) bool {
	for _, w := range words {
		if strings.Contains(content, w) {
			return true
		}
	}
	return false
}

func countDetail(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
