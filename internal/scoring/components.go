// Package scoring computes the composite career readiness score from a
// profile. Every component scorer is pure: the same profile always yields
// the same score, and empty sections fall back to documented defaults.
package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Defaults applied when a profile section carries no signal.
const (
	defaultFormattingScore = 70.0
	defaultLearningScore   = 50.0
	defaultInterviewScore  = 40.0
)

// componentResult is one category's raw percentage before weighting
type componentResult struct {
	percentage float64
	details    string
}

// scoreResume scores resume quality (0-100). A nil analysis still earns the
// formatting baseline, matching the observed behavior of the score model.
func scoreResume(analysis *types.ResumeAnalysis) componentResult {
	if analysis == nil {
		analysis = &types.ResumeAnalysis{}
	}
	score := 0.0

	// ATS compatibility, 40%
	score += analysis.ATSScore / 100 * 40

	// Content quality, 30%
	contentSignals := 0
	if analysis.HasSummary {
		contentSignals++
	}
	if analysis.HasQuantifiable {
		contentSignals++
	}
	if analysis.KeywordDensity > 0.5 {
		contentSignals++
	}
	score += float64(contentSignals) / 3 * 30

	// Formatting, 20%
	formatting := defaultFormattingScore
	if analysis.FormattingScore != nil {
		formatting = *analysis.FormattingScore
	}
	score += formatting / 100 * 20

	// Completeness, 10%
	score += capRatio(float64(analysis.SectionsCount)/5) * 10

	return componentResult{capPercent(score), "Resume quality and ATS compatibility"}
}

// diversity keyword lists for the skills component. These are deliberately
// narrow; the broader catalog lives in the skills package.
var (
	techKeywords = []string{"python", "java", "javascript", "sql", "react"}
	softKeywords = []string{"communication", "leadership", "teamwork"}
)

// scoreSkills scores the skills portfolio (0-100)
func scoreSkills(skillList []string, proficiencies []types.SkillProficiency) componentResult {
	score := 0.0

	// Skill count, 30%
	score += capRatio(float64(len(skillList))/15) * 30

	// Diversity, 30%: half for technical coverage, half for soft skills
	hasTech := containsAnyKeyword(skillList, techKeywords)
	hasSoft := containsAnyKeyword(skillList, softKeywords)
	diversity := 0.0
	if hasTech {
		diversity += 0.5
	}
	if hasSoft {
		diversity += 0.5
	}
	score += diversity * 30

	// Proficiency, 40%; flat 20 when no proficiency data exists
	if len(proficiencies) > 0 {
		sum := 0.0
		for _, p := range proficiencies {
			sum += p.Level
		}
		avg := sum / float64(len(proficiencies))
		score += avg / 100 * 40
	} else {
		score += 20
	}

	return componentResult{capPercent(score), fmt.Sprintf("%d skills with varying proficiency", len(skillList))}
}

// scoreProjects scores the project portfolio (0-100)
func scoreProjects(projects []types.Project) componentResult {
	if len(projects) == 0 {
		return componentResult{0, "No projects found"}
	}
	score := 0.0

	// Count, 25%
	score += capRatio(float64(len(projects))/8) * 25

	// Per-project quality, 50%
	qualitySum := 0.0
	languages := make(map[string]bool)
	for _, p := range projects {
		q := 0.0
		if p.Description != "" {
			q += 20
		}
		if p.GitHubURL != "" {
			q += 20
		}
		if p.DemoURL != "" {
			q += 20
		}
		if p.Stars > 0 {
			q += capAt(float64(p.Stars)*5, 20)
		}
		if strings.Contains(strings.ToLower(p.Description), "complex") {
			q += 20
		}
		qualitySum += capAt(q, 100)

		lang := p.Language
		if lang == "" {
			lang = "Unknown"
		}
		languages[lang] = true
	}
	avgQuality := qualitySum / float64(len(projects))
	score += avgQuality / 100 * 50

	// Language diversity, 25%
	score += capRatio(float64(len(languages))/4) * 25

	return componentResult{
		capPercent(score),
		fmt.Sprintf("%d projects across %d technologies", len(projects), len(languages)),
	}
}

// trustedProviders counts toward certification quality in the composite
// score. The full provider registry lives in the certs package.
var trustedProviders = []string{"google", "microsoft", "aws", "ibm", "coursera", "edx"}

// scoreCertifications scores certifications (0-100)
func scoreCertifications(certs []types.Certificate, now time.Time) componentResult {
	if len(certs) == 0 {
		return componentResult{0, "No certifications"}
	}
	score := 0.0

	// Count, 30%
	score += capRatio(float64(len(certs))/8) * 30

	// Trusted-provider share, 50%
	trusted := 0
	for _, c := range certs {
		issuer := strings.ToLower(c.Issuer)
		for _, p := range trustedProviders {
			if strings.Contains(issuer, p) {
				trusted++
				break
			}
		}
	}
	score += capRatio(float64(trusted)/float64(len(certs))) * 50

	// Recency share, 20%: issued within the last two years
	recent := 0
	for _, c := range certs {
		if c.IssueDate != nil && now.Year()-c.IssueDate.Year() <= 2 {
			recent++
		}
	}
	score += capRatio(float64(recent)/float64(len(certs))) * 20

	return componentResult{
		capPercent(score),
		fmt.Sprintf("%d certifications, %d from top providers", len(certs), trusted),
	}
}

var leadershipKeywords = []string{"president", "lead", "founder", "organizer", "captain"}

// scoreExtracurricular scores activities (0-100)
func scoreExtracurricular(activities []types.Activity) componentResult {
	if len(activities) == 0 {
		return componentResult{0, "No extracurricular activities"}
	}
	score := 0.0

	// Count, 30%
	score += capRatio(float64(len(activities))/6) * 30

	// Leadership share, 40%
	leadership := 0
	for _, a := range activities {
		role := strings.ToLower(a.Role)
		for _, kw := range leadershipKeywords {
			if strings.Contains(role, kw) {
				leadership++
				break
			}
		}
	}
	score += capRatio(float64(leadership)/float64(len(activities))) * 40

	// Impact share, 30%: activities with achievements or a stated impact
	impact := 0
	for _, a := range activities {
		if len(a.Achievements) > 0 || a.Impact != "" {
			impact++
		}
	}
	score += capRatio(float64(impact)/float64(len(activities))) * 30

	return componentResult{
		capPercent(score),
		fmt.Sprintf("%d activities, %d leadership roles", len(activities), leadership),
	}
}

// scoreGitHub scores GitHub activity (0-100). Nil stats mean no account
// was linked and score zero.
func scoreGitHub(stats *types.GitHubStats) componentResult {
	if stats == nil {
		return componentResult{0, "No GitHub activity"}
	}
	score := 0.0
	score += capRatio(float64(stats.PublicRepos)/15) * 25
	score += capRatio(float64(stats.TotalContributions)/500) * 35
	score += capRatio(float64(stats.TotalStars)/50) * 20
	score += capRatio(float64(stats.LongestStreak)/30) * 20

	return componentResult{
		capPercent(score),
		fmt.Sprintf("%d repos, %d contributions, %d stars",
			stats.PublicRepos, stats.TotalContributions, stats.TotalStars),
	}
}

// scoreLearning scores learning progress (0-100), defaulting to 50 when
// no learning data exists.
func scoreLearning(learning *types.LearningProgress) componentResult {
	if learning == nil {
		return componentResult{defaultLearningScore, "No learning data"}
	}
	score := 0.0
	score += capRatio(float64(learning.CompletedCourses)/10) * 40
	score += capRatio(float64(learning.InProgressCourses)/5) * 30
	score += capRatio(learning.TotalHours/100) * 30

	return componentResult{
		capPercent(score),
		fmt.Sprintf("%d completed, %d in progress", learning.CompletedCourses, learning.InProgressCourses),
	}
}

// scoreInterview scores interview readiness (0-100), defaulting to 40 when
// no practice data exists.
func scoreInterview(interview *types.InterviewScores) componentResult {
	if interview == nil {
		return componentResult{defaultInterviewScore, "No interview practice data"}
	}
	score := 0.0
	score += capRatio(float64(interview.QuestionsPracticed)/50) * 30
	score += interview.AverageScore / 100 * 50
	score += capRatio(interview.ImprovementRate/20) * 20

	return componentResult{
		capPercent(score),
		fmt.Sprintf("%d questions practiced, %.0f%% avg score",
			interview.QuestionsPracticed, interview.AverageScore),
	}
}

func containsAnyKeyword(list []string, keywords []string) bool {
	for _, item := range list {
		lower := strings.ToLower(item)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// capRatio clamps a ratio to [0, 1]
func capRatio(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// capPercent clamps a percentage to [0, 100]
func capPercent(p float64) float64 {
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// capAt clamps a value to an upper bound
func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
