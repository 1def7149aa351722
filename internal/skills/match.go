package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Assessment labels for ATS match scores.
const (
	AssessmentExcellent = "Excellent Match"
	AssessmentGood      = "Good Match"
	AssessmentModerate  = "Moderate Match"
	AssessmentGrowth    = "Growth Opportunity"
)

// MatchResume scores a resume against a job description by skill overlap.
// The score is the share of job-description skills present in the resume,
// as a percentage. An empty job description scores 0 with empty sets.
func MatchResume(resumeText, jobDescription string) types.ATSMatch {
	resumeSkills := ExtractSkills(resumeText)
	jdSkills := ExtractSkills(jobDescription)
	return MatchSkills(resumeSkills, jdSkills)
}

// MatchSkills scores two already-extracted skill sets.
func MatchSkills(resumeSkills, jdSkills []string) types.ATSMatch {
	resumeSet := toSet(resumeSkills)
	jdSet := toSet(jdSkills)

	matched := make([]string, 0, len(jdSet))
	missing := make([]string, 0, len(jdSet))
	extra := make([]string, 0, len(resumeSet))

	for skill := range jdSet {
		if resumeSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for skill := range resumeSet {
		if !jdSet[skill] {
			extra = append(extra, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	score := 0.0
	if len(jdSet) > 0 {
		score = float64(len(matched)) / float64(len(jdSet)) * 100
	}
	if score > 100 {
		score = 100
	}

	return types.ATSMatch{
		Score:         score,
		Assessment:    assessMatch(score),
		MatchedSkills: matched,
		MissingSkills: missing,
		ExtraSkills:   extra,
	}
}

func assessMatch(score float64) string {
	switch {
	case score >= 80:
		return AssessmentExcellent
	case score >= 60:
		return AssessmentGood
	case score >= 40:
		return AssessmentModerate
	default:
		return AssessmentGrowth
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		c := NormalizeSkillName(n)
		if c != "" {
			set[c] = true
		}
	}
	return set
}

// ContainsSkill reports whether a skill list contains a skill, comparing
// canonical names case-insensitively.
func ContainsSkill(list []string, skill string) bool {
	want := strings.ToLower(NormalizeSkillName(skill))
	for _, s := range list {
		if strings.ToLower(NormalizeSkillName(s)) == want {
			return true
		}
	}
	return false
}
