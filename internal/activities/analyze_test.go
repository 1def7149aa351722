package activities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAnalyzeActivityHackathonWinner(t *testing.T) {
	analysis := AnalyzeActivity(types.Activity{
		Name:         "Smart India Hackathon",
		Type:         "Hackathon",
		Role:         "Team Member",
		Achievements: []string{"Winner of the national round"},
		Impact:       "Beat 200 teams",
	}, testNow)

	assert.Equal(t, "Active Member", analysis.LeadershipLevel)
	// base 1.5*20=30, member multiplier 1.0, one achievement +5,
	// "winner" keyword +10, digit in impact +15
	assert.InDelta(t, 60.0, analysis.ImpactScore, 0.01)
	assert.True(t, analysis.QuantifiableImpact)
	assert.Contains(t, analysis.SkillsDemonstrated, "Problem Solving")
}

func TestAnalyzeActivityExecutiveMultiplier(t *testing.T) {
	analysis := AnalyzeActivity(types.Activity{
		Name: "Robotics Club",
		Type: "Club/Organization",
		Role: "President",
	}, testNow)

	assert.Equal(t, "Executive", analysis.LeadershipLevel)
	// base 1.2*20=24, executive 2.0 -> 48
	assert.InDelta(t, 48.0, analysis.ImpactScore, 0.01)
}

func TestAnalyzeActivityDurationBonus(t *testing.T) {
	analysis := AnalyzeActivity(types.Activity{
		Name:      "Open Source Work",
		Type:      "Open Source",
		Role:      "Contributor",
		StartDate: datePtr(2025, 1, 1),
		EndDate:   datePtr(2026, 3, 1),
	}, testNow)

	assert.GreaterOrEqual(t, analysis.DurationMonths, 12)
	// base 1.3*20=26, active member 1.0, twelve-month bonus 1.3 -> 33.8
	assert.InDelta(t, 33.8, analysis.ImpactScore, 0.01)
}

func TestAnalyzeActivityUnknownTypeDefaults(t *testing.T) {
	analysis := AnalyzeActivity(types.Activity{
		Name: "Chess Evenings",
		Type: "Other",
	}, testNow)

	assert.InDelta(t, 1.0, analysis.BaseWeight, 0.001)
	// base 20, participant 0.8 -> 16
	assert.InDelta(t, 16.0, analysis.ImpactScore, 0.01)
	assert.Empty(t, analysis.SkillsDemonstrated)
}

func TestAnalyzeActivityImpactCapped(t *testing.T) {
	many := make([]string, 30)
	for i := range many {
		many[i] = "winner award prize"
	}
	analysis := AnalyzeActivity(types.Activity{
		Name:         "Big Competition",
		Type:         "Competition",
		Role:         "Captain",
		Achievements: many,
		Impact:       "ranked 1st of 500",
	}, testNow)

	assert.InDelta(t, 100.0, analysis.ImpactScore, 0.001)
}

func TestAnalyzeActivityRecommendations(t *testing.T) {
	analysis := AnalyzeActivity(types.Activity{Name: "Club", Type: "Club/Organization"}, testNow)
	assert.Contains(t, analysis.Recommendations, "Add specific achievements or outcomes")
	assert.Contains(t, analysis.Recommendations, "Add quantifiable metrics (numbers, percentages, impact)")
	assert.Contains(t, analysis.Recommendations, "List specific skills you used or developed")
}

func TestAnalyzeEmptyList(t *testing.T) {
	report := Analyze(nil, testNow)
	assert.Zero(t, report.TotalActivities)
	assert.Zero(t, report.OverallScore)
	require.Len(t, report.Recommendations, 1)
	assert.Contains(t, report.Recommendations[0], "Start participating")
}

func TestAnalyzeAggregates(t *testing.T) {
	report := Analyze([]types.Activity{
		{Name: "Hack Night", Type: "Hackathon", Role: "Member", StartDate: datePtr(2025, 10, 5)},
		{Name: "AI Club", Type: "Club/Organization", Role: "President", StartDate: datePtr(2025, 2, 1)},
		{Name: "Docs Project", Type: "Open Source", Role: "Contributor"},
	}, testNow)

	assert.Equal(t, 3, report.TotalActivities)
	assert.Equal(t, 1, report.ByType["Hackathon"])
	assert.Equal(t, 1, report.Leadership["Executive"])
	// 45 for three distinct types
	assert.InDelta(t, 45.0, report.DiversityScore, 0.01)
	// Timeline is newest first and only dated activities appear
	require.Len(t, report.Timeline, 2)
	assert.Equal(t, "2025-10-05", report.Timeline[0].Date)
	// Top activities ranked by impact: the presidency leads
	require.NotEmpty(t, report.TopActivities)
	assert.Equal(t, "AI Club", report.TopActivities[0].Name)
}

func TestOverallScoreWithinRange(t *testing.T) {
	var list []types.Activity
	for i := 0; i < 12; i++ {
		list = append(list, types.Activity{
			Name:         "Activity",
			Type:         "Hackathon",
			Role:         "Lead organizer",
			Achievements: []string{"winner"},
			Impact:       "100 participants",
			StartDate:    datePtr(2024, time.Month(i%12+1), 1),
		})
	}
	report := Analyze(list, testNow)
	assert.LessOrEqual(t, report.OverallScore, 100.0)
	assert.Greater(t, report.OverallScore, 0.0)
}
