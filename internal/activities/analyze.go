package activities

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// AnalyzeActivity scores a single activity. The clock is explicit so
// ongoing-activity durations are reproducible in tests.
func AnalyzeActivity(activity types.Activity, now time.Time) types.ActivityAnalysis {
	info := typeInfo(activity.Type)

	analysis := types.ActivityAnalysis{
		Name:            activity.Name,
		Type:            activity.Type,
		BaseWeight:      info.weight,
		LeadershipLevel: "Participant",
		Recommendations: []string{},
	}

	analysis.DurationMonths = durationMonths(activity, now)

	combined := strings.ToLower(activity.Role + " " + activity.Description)
	for _, level := range leadershipLevels {
		if containsAnyKeyword(combined, level.keywords) {
			analysis.LeadershipLevel = level.level
			break
		}
	}

	impact := info.weight * 20
	impact *= leadershipMultipliers[analysis.LeadershipLevel]

	switch {
	case analysis.DurationMonths >= 12:
		impact *= 1.3
	case analysis.DurationMonths >= 6:
		impact *= 1.15
	}

	if len(activity.Achievements) > 0 {
		impact += float64(len(activity.Achievements)) * 5

		achievementsText := strings.ToLower(strings.Join(activity.Achievements, " "))
		for _, kw := range info.impactKeywords {
			if strings.Contains(achievementsText, kw) {
				impact += 10
				analysis.QuantifiableImpact = true
			}
		}
	}

	if containsDigit(activity.Impact) {
		impact += 15
		analysis.QuantifiableImpact = true
	}

	analysis.ImpactScore = capAt(impact, 100)

	analysis.SkillsDemonstrated = mergeSkills(info.skills, activity.SkillsUsed)

	if len(activity.Achievements) == 0 {
		analysis.Recommendations = append(analysis.Recommendations, "Add specific achievements or outcomes")
	}
	if !analysis.QuantifiableImpact {
		analysis.Recommendations = append(analysis.Recommendations, "Add quantifiable metrics (numbers, percentages, impact)")
	}
	if len(activity.SkillsUsed) == 0 {
		analysis.Recommendations = append(analysis.Recommendations, "List specific skills you used or developed")
	}

	return analysis
}

// Analyze aggregates a full activity portfolio.
func Analyze(activityList []types.Activity, now time.Time) types.ActivityReport {
	report := types.ActivityReport{
		TotalActivities: len(activityList),
		ByType:          map[string]int{},
		SkillsGained:    map[string]int{},
		Leadership:      map[string]int{},
		Timeline:        []types.ActivityTimelineEntry{},
		Details:         []types.ActivityAnalysis{},
		TopActivities:   []types.TopActivity{},
		Strengths:       []string{},
	}

	if len(activityList) == 0 {
		report.Recommendations = []string{
			"Start participating in extracurricular activities to build a well-rounded profile",
		}
		return report
	}

	totalImpact := 0.0
	for _, activity := range activityList {
		analysis := AnalyzeActivity(activity, now)

		report.ByType[analysis.Type]++
		totalImpact += analysis.ImpactScore
		for _, skill := range analysis.SkillsDemonstrated {
			report.SkillsGained[skill]++
		}
		report.Leadership[analysis.LeadershipLevel]++

		if activity.StartDate != nil {
			role := activity.Role
			if role == "" {
				role = "Participant"
			}
			report.Timeline = append(report.Timeline, types.ActivityTimelineEntry{
				Date: activity.StartDate.Format("2006-01-02"),
				Name: activity.Name,
				Type: analysis.Type,
				Role: role,
			})
		}

		report.Details = append(report.Details, analysis)
	}

	sort.SliceStable(report.Timeline, func(i, j int) bool {
		return report.Timeline[i].Date > report.Timeline[j].Date
	})

	report.TotalImpactScore = totalImpact
	report.DiversityScore = capAt(float64(len(report.ByType))*15, 100)
	report.QualityScore = capAt(totalImpact/float64(len(activityList)), 100)
	report.ConsistencyScore = consistencyScore(report.Timeline)

	top := make([]types.TopActivity, 0, len(report.Details))
	for _, d := range report.Details {
		top = append(top, types.TopActivity{Name: d.Name, ImpactScore: d.ImpactScore})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].ImpactScore > top[j].ImpactScore })
	if len(top) > 5 {
		top = top[:5]
	}
	report.TopActivities = top

	report.Strengths = strengths(&report)
	report.Recommendations = activityRecommendations(&report)
	report.OverallScore = overallScore(&report)

	return report
}

// overallScore grades the whole portfolio 0-100: quantity up to 25 points,
// quality 35, diversity 20, consistency 20.
func overallScore(report *types.ActivityReport) float64 {
	quantity := capAt(float64(report.TotalActivities)*8, 25)
	quality := capAt(report.QualityScore*0.35, 35)
	diversity := capAt(report.DiversityScore*0.20, 20)
	consistency := capAt(report.ConsistencyScore*0.20, 20)

	return capAt(quantity+quality+diversity+consistency, 100)
}

// consistencyScore rewards participation spread across distinct months.
func consistencyScore(timeline []types.ActivityTimelineEntry) float64 {
	if len(timeline) < 2 {
		return 30
	}
	months := map[string]bool{}
	for _, t := range timeline {
		months[t.Date[:7]] = true
	}
	return capAt(float64(len(months))*10, 100)
}

func strengths(report *types.ActivityReport) []string {
	out := []string{}

	leadershipCount := report.Leadership["Executive"] + report.Leadership["Lead"] + report.Leadership["Core Team"]
	if leadershipCount >= 2 {
		out = append(out, "Strong leadership experience across multiple activities")
	}
	if report.DiversityScore >= 60 {
		out = append(out, "Diverse extracurricular portfolio showing well-rounded interests")
	}
	techCount := report.ByType["Hackathon"] + report.ByType["Open Source"] + report.ByType["Research"]
	if techCount >= 3 {
		out = append(out, "Strong technical engagement through hackathons and open source")
	}
	if report.ConsistencyScore >= 70 {
		out = append(out, "Consistent participation showing long-term commitment")
	}
	if report.QualityScore >= 70 {
		out = append(out, "High-impact activities with measurable outcomes")
	}

	if len(out) == 0 {
		return []string{"Building a foundation of extracurricular experience"}
	}
	return out
}

func activityRecommendations(report *types.ActivityReport) []string {
	recs := []string{}

	switch {
	case report.TotalActivities < 3:
		recs = append(recs, "Aim for 5-8 quality extracurricular activities to build a strong profile")
	case report.TotalActivities > 15:
		recs = append(recs, "Focus on depth over breadth - highlight your most impactful activities")
	}

	if report.DiversityScore < 40 {
		recs = append(recs, "Diversify your activities across different types (technical, leadership, social)")
	}
	if report.Leadership["Executive"]+report.Leadership["Lead"] == 0 {
		recs = append(recs, "Seek leadership roles to demonstrate initiative and management skills")
	}
	if report.ByType["Hackathon"]+report.ByType["Open Source"] == 0 {
		recs = append(recs, "Participate in hackathons or contribute to open source projects")
	}
	if report.ConsistencyScore < 50 {
		recs = append(recs, "Maintain consistent participation over time rather than sporadic involvement")
	}

	undocumented := 0
	for _, d := range report.Details {
		if !d.QuantifiableImpact {
			undocumented++
		}
	}
	if undocumented*2 > len(report.Details) {
		recs = append(recs, "Add quantifiable metrics to demonstrate your impact (numbers, percentages, outcomes)")
	}

	if report.ByType["Hackathon"] == 0 {
		recs = append(recs, "Participate in hackathons to showcase problem-solving and teamwork skills")
	}
	if report.ByType["Freelancing"] == 0 && report.ByType["Open Source"] == 0 {
		recs = append(recs, "Consider freelancing or open source to gain real-world experience")
	}

	return recs
}

func durationMonths(activity types.Activity, now time.Time) int {
	if activity.StartDate == nil {
		return 0
	}
	end := now
	if activity.EndDate != nil {
		end = *activity.EndDate
	}
	days := int(end.Sub(*activity.StartDate).Hours() / 24)
	months := days / 30
	if months < 1 {
		return 1
	}
	return months
}

// mergeSkills unions type-implied skills with explicitly listed ones,
// keeping first-seen order.
func mergeSkills(implied, used []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range append(append([]string{}, implied...), used...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
