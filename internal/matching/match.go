package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Score component weights: skills carry 60 points, domain projects 20,
// certifications 10, general experience 10.
const (
	requiredWeight   = 0.7
	preferredWeight  = 0.3
	skillPoints      = 60.0
	projectPointsCap = 20.0
	certPointsCap    = 10.0
	expPointsCap     = 10.0
)

// Readiness labels keyed off the total match score.
const (
	ReadinessHigh       = "Highly Ready - Strong Match"
	ReadinessReady      = "Ready - Good Match"
	ReadinessDeveloping = "Developing - Needs Preparation"
	ReadinessEarly      = "Early Stage - Significant Preparation Needed"
)

// ErrUnknownCategory is returned for category names not in the catalog.
type ErrUnknownCategory struct {
	Category string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown internship category: %q", e.Category)
}

// Analyze scores a profile against one catalog category.
func Analyze(profile types.Profile, categoryName string) (types.MatchAnalysis, error) {
	category, ok := CategoryByName(categoryName)
	if !ok {
		return types.MatchAnalysis{}, &ErrUnknownCategory{Category: categoryName}
	}
	return analyzeCategory(profile, category), nil
}

func analyzeCategory(profile types.Profile, category types.InternshipCategory) types.MatchAnalysis {
	candidate := lowerSet(profile.Skills)

	requiredMet, missingRequired := splitBySet(category.RequiredSkills, candidate)
	preferredMet, missingPreferred := splitBySet(category.PreferredSkills, candidate)

	requiredMatch := ratio(requiredMet, len(category.RequiredSkills))
	preferredMatch := ratio(preferredMet, len(category.PreferredSkills))
	skillScore := (requiredMatch*requiredWeight + preferredMatch*preferredWeight) * skillPoints

	relevantProjects := 0
	for _, p := range profile.Projects {
		text := strings.ToLower(p.Name + " " + p.Description)
		if containsAny(text, category.Keywords) {
			relevantProjects++
		}
	}
	projectScore := capAt(float64(relevantProjects)*10, projectPointsCap)

	relevantCerts := 0
	for _, c := range profile.Certificates {
		text := strings.ToLower(c.Name + " " + c.Issuer)
		if containsAny(text, category.Keywords) {
			relevantCerts++
		}
	}
	certScore := capAt(float64(relevantCerts)*5, certPointsCap)

	total := skillScore + projectScore + certScore + experienceScore(profile)
	if total > 100 {
		total = 100
	}

	return types.MatchAnalysis{
		Category:             category.Name,
		MatchScore:           total,
		SkillMatchPercentage: requiredMatch * 100,
		RequiredSkillsMet:    requiredMet,
		RequiredSkillsTotal:  len(category.RequiredSkills),
		PreferredSkillsMet:   preferredMet,
		RelevantProjects:     relevantProjects,
		RelevantCerts:        relevantCerts,
		MissingRequired:      missingRequired,
		MissingPreferred:     missingPreferred,
		Readiness:            readiness(total),
		Recommendations:      matchRecommendations(total, missingRequired, missingPreferred, relevantProjects),
		StipendRange:         category.StipendRange,
		Duration:             category.Duration,
	}
}

// FindBestMatches ranks the whole catalog for a profile and returns the top
// entries. Equal scores keep catalog order.
func FindBestMatches(profile types.Profile, topN int) []types.InternshipMatch {
	matches := make([]types.InternshipMatch, 0, len(Catalog))
	for _, category := range Catalog {
		analysis := analyzeCategory(profile, category)
		matches = append(matches, types.InternshipMatch{
			Category:  category.Name,
			Score:     analysis.MatchScore,
			Readiness: analysis.Readiness,
			Analysis:  analysis,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topN <= 0 || topN > len(matches) {
		topN = len(matches)
	}
	return matches[:topN]
}

// experienceScore grades overall experience breadth on a 10-point scale.
func experienceScore(profile types.Profile) float64 {
	score := 0.0
	score += capAt(float64(len(profile.Projects))*2, 4)
	score += capAt(float64(len(profile.Certificates))*1.5, 3)
	score += capAt(float64(len(profile.Activities))*0.5, 3)
	return capAt(score, expPointsCap)
}

func readiness(score float64) string {
	switch {
	case score >= 75:
		return ReadinessHigh
	case score >= 60:
		return ReadinessReady
	case score >= 40:
		return ReadinessDeveloping
	default:
		return ReadinessEarly
	}
}

func matchRecommendations(score float64, missingRequired, missingPreferred []string, relevantProjects int) []string {
	recs := []string{}

	if score < 60 {
		recs = append(recs, "Focus on building foundational skills before applying")
	}
	if len(missingRequired) > 0 {
		recs = append(recs, "Priority: Learn these required skills - "+joinFirst(missingRequired, 3))
	}
	if len(missingPreferred) > 0 && score < 80 {
		recs = append(recs, "Recommended: Add these skills to stand out - "+joinFirst(missingPreferred, 3))
	}
	switch {
	case relevantProjects == 0:
		recs = append(recs, "Build 1-2 projects in this domain to demonstrate practical skills")
	case relevantProjects < 2:
		recs = append(recs, "Add more domain-specific projects to strengthen your profile")
	}
	switch {
	case score >= 75:
		recs = append(recs, "You're ready to apply! Prepare a strong resume highlighting relevant skills")
	case score >= 60:
		recs = append(recs, "You're on track! A few more skills/projects will make you highly competitive")
	}
	return recs
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = true
	}
	return set
}

// splitBySet counts catalog skills present in the candidate set and lists
// the missing ones in catalog order.
func splitBySet(catalogSkills []string, candidate map[string]bool) (int, []string) {
	met := 0
	missing := []string{}
	for _, s := range catalogSkills {
		if candidate[strings.ToLower(s)] {
			met++
		} else {
			missing = append(missing, s)
		}
	}
	return met, missing
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func ratio(met, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(met) / float64(total)
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
