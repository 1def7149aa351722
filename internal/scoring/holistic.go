package scoring

import (
	"math"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// MaxScore is the ceiling of the composite score, credit-score style.
const MaxScore = 850

// component identifies one life-area of the composite score
type component struct {
	key    string
	label  string
	weight float64
}

// components lists every scored area with its weight. Weights sum to 1.0;
// each area's point ceiling is weight * 850.
var components = []component{
	{"resume_quality", "Resume Quality", 0.15},
	{"skills_portfolio", "Skills Portfolio", 0.20},
	{"project_portfolio", "Project Portfolio", 0.18},
	{"certifications", "Certifications", 0.12},
	{"extracurricular", "Extracurricular", 0.10},
	{"github_activity", "GitHub Activity", 0.10},
	{"learning_progress", "Learning Progress", 0.08},
	{"interview_readiness", "Interview Readiness", 0.07},
}

// tier describes one band of the 0-850 range
type tier struct {
	min           float64
	max           float64
	rating        string
	description   string
	opportunities string
}

var tiers = []tier{
	{750, 850, "Exceptional", "Outstanding career readiness - Top tier candidate",
		"Eligible for top companies, leadership roles, premium internships"},
	{650, 749, "Excellent", "Strong career profile - Highly competitive",
		"Competitive for most positions, good internship prospects"},
	{550, 649, "Good", "Solid foundation - Ready for entry-level roles",
		"Suitable for entry-level positions and internships"},
	{450, 549, "Fair", "Developing profile - Needs improvement",
		"May qualify for some internships, needs skill building"},
	{0, 449, "Building", "Early stage - Focus on fundamentals",
		"Focus on learning, projects, and skill development"},
}

// Compute calculates the holistic career score for a profile. The clock is
// an explicit argument so certificate recency is reproducible in tests.
func Compute(profile types.Profile, now time.Time) types.HolisticScore {
	results := map[string]componentResult{
		"resume_quality":      scoreResume(profile.ResumeAnalysis),
		"skills_portfolio":    scoreSkills(profile.Skills, profile.Proficiencies),
		"project_portfolio":   scoreProjects(profile.Projects),
		"certifications":      scoreCertifications(profile.Certificates, now),
		"extracurricular":     scoreExtracurricular(profile.Activities),
		"github_activity":     scoreGitHub(profile.GitHubStats),
		"learning_progress":   scoreLearning(profile.Learning),
		"interview_readiness": scoreInterview(profile.Interview),
	}

	categories := make([]types.CategoryScore, 0, len(components))
	total := 0.0
	for _, c := range components {
		r := results[c.key]
		maxPoints := c.weight * MaxScore
		points := r.percentage / 100 * maxPoints
		total += points
		categories = append(categories, types.CategoryScore{
			Category:   c.key,
			Label:      c.label,
			Percentage: r.percentage,
			Weight:     c.weight,
			Points:     points,
			MaxPoints:  maxPoints,
			Details:    r.details,
		})
	}
	total = math.Round(total*10) / 10

	t := tierFor(total)

	return types.HolisticScore{
		Total:           total,
		MaxScore:        MaxScore,
		Tier:            t.rating,
		TierDescription: t.description,
		Opportunities:   t.opportunities,
		Percentile:      percentile(total),
		Categories:      categories,
		Strengths:       identifyStrengths(categories),
		Weaknesses:      identifyWeaknesses(categories),
		Recommendations: recommendations(categories, total),
		Improvement:     improvementPotential(categories, total),
	}
}

func tierFor(score float64) tier {
	for _, t := range tiers {
		if score >= t.min && score <= t.max {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// percentile approximates standing among peers from the total score.
// Piecewise linear with integer truncation, capped at 99.
func percentile(score float64) int {
	var p int
	switch {
	case score >= 750:
		p = 95 + int((score-750)/10)
	case score >= 650:
		p = 75 + int((score-650)/5)
	case score >= 550:
		p = 50 + int((score-550)/4)
	case score >= 450:
		p = 25 + int((score-450)/4)
	default:
		p = int(score / 18)
	}
	if p > 99 {
		p = 99
	}
	return p
}
