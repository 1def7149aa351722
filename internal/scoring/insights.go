package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// Insight thresholds: a top-3 category is a strength at or above 70%, a
// bottom-3 category is a weakness below 60%.
const (
	strengthThreshold = 70.0
	weaknessThreshold = 60.0
)

func identifyStrengths(categories []types.CategoryScore) []string {
	sorted := make([]types.CategoryScore, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})

	strengths := []string{}
	for _, c := range sorted[:3] {
		if c.Percentage >= strengthThreshold {
			strengths = append(strengths, fmt.Sprintf("%s: %.1f%%", c.Label, c.Percentage))
		}
	}
	if len(strengths) == 0 {
		return []string{"Building foundation across all areas"}
	}
	return strengths
}

func identifyWeaknesses(categories []types.CategoryScore) []string {
	sorted := make([]types.CategoryScore, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage < sorted[j].Percentage
	})

	weaknesses := []string{}
	for _, c := range sorted[:3] {
		if c.Percentage < weaknessThreshold {
			weaknesses = append(weaknesses, fmt.Sprintf("%s: %.1f%%", c.Label, c.Percentage))
		}
	}
	if len(weaknesses) == 0 {
		return []string{"All areas performing well"}
	}
	return weaknesses
}

// recommendations pairs a priority line for the weakest category with
// band-specific advice keyed off the total score.
func recommendations(categories []types.CategoryScore, total float64) []string {
	lowest := categories[0]
	for _, c := range categories[1:] {
		if c.Percentage < lowest.Percentage {
			lowest = c
		}
	}

	recs := []string{
		fmt.Sprintf("Priority: Improve %s (currently %.1f%%)", lowest.Label, lowest.Percentage),
	}

	switch {
	case total < 450:
		recs = append(recs,
			"Focus on building foundational skills and completing 2-3 projects",
			"Earn 2-3 beginner certifications to validate your learning")
	case total < 550:
		recs = append(recs,
			"Build a strong portfolio with 4-5 quality projects",
			"Participate in hackathons or coding competitions")
	case total < 650:
		recs = append(recs,
			"Focus on advanced skills and specialized certifications",
			"Take on leadership roles in projects or communities")
	case total < 750:
		recs = append(recs,
			"Contribute to open source projects to showcase expertise",
			"Mentor others and share knowledge through blogs/talks")
	default:
		recs = append(recs,
			"Maintain excellence and explore cutting-edge technologies",
			"Build your personal brand through speaking and writing")
	}
	return recs
}

// improvementPotential finds the category where effort buys the most points:
// the largest remaining percentage weighted by the category's share.
func improvementPotential(categories []types.CategoryScore, total float64) types.ImprovementPotential {
	best := categories[0]
	bestGain := (100 - best.Percentage) * best.Weight
	for _, c := range categories[1:] {
		if gain := (100 - c.Percentage) * c.Weight; gain > bestGain {
			best = c
			bestGain = gain
		}
	}

	round1 := func(v float64) float64 { return float64(int(v*10+0.5)) / 10 }
	return types.ImprovementPotential{
		TotalPotentialGain: round1(MaxScore - total),
		BestArea:           best.Label,
		BestAreaPoints:     round1((100 - best.Percentage) / 100 * best.MaxPoints),
		PercentageToMax:    round1(total / MaxScore * 100),
	}
}
