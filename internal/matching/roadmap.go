package matching

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// TargetScore is the match score a roadmap aims for.
const TargetScore = 80.0

// BuildRoadmap generates a preparation plan toward one target category.
// Timeline and phase shrink as the current match score grows.
func BuildRoadmap(profile types.Profile, categoryName string) (types.Roadmap, error) {
	analysis, err := Analyze(profile, categoryName)
	if err != nil {
		return types.Roadmap{}, err
	}

	timeline, phase := timelineFor(analysis.MatchScore)

	roadmap := types.Roadmap{
		Category:     categoryName,
		CurrentScore: analysis.MatchScore,
		TargetScore:  TargetScore,
		Timeline:     timeline,
		Phase:        phase,
		Milestones:   []types.Milestone{},
		ActionItems:  []string{},
	}

	if len(analysis.MissingRequired) > 0 {
		roadmap.Milestones = append(roadmap.Milestones, types.Milestone{
			Title:         "Master Required Skills",
			Priority:      "High",
			Skills:        firstN(analysis.MissingRequired, 3),
			EstimatedTime: "2-4 weeks",
		})
	}
	if analysis.RelevantProjects < 2 {
		roadmap.Milestones = append(roadmap.Milestones, types.Milestone{
			Title:         "Build Domain Projects",
			Priority:      "High",
			Target:        fmt.Sprintf("Create %d relevant projects", 2-analysis.RelevantProjects),
			EstimatedTime: "3-6 weeks",
		})
	}
	if len(analysis.MissingPreferred) > 0 {
		roadmap.Milestones = append(roadmap.Milestones, types.Milestone{
			Title:         "Add Preferred Skills",
			Priority:      "Medium",
			Skills:        firstN(analysis.MissingPreferred, 3),
			EstimatedTime: "2-3 weeks",
		})
	}

	for _, skill := range firstN(analysis.MissingRequired, 3) {
		roadmap.ActionItems = append(roadmap.ActionItems, "Learn "+skill)
	}
	roadmap.ActionItems = append(roadmap.ActionItems,
		"Build a portfolio project showcasing your skills",
		"Earn a relevant certification",
		"Update resume with new skills and projects",
		"Prepare for technical interviews",
	)

	roadmap.Resources = []string{
		"Recommended courses for " + categoryName,
		"Project ideas and tutorials",
		"Interview preparation guides",
		"Resume templates for internships",
	}

	return roadmap, nil
}

func timelineFor(score float64) (timeline, phase string) {
	switch {
	case score >= 75:
		return "1-2 weeks", "Application Ready"
	case score >= 60:
		return "2-4 weeks", "Final Preparation"
	case score >= 40:
		return "1-2 months", "Skill Building"
	default:
		return "2-4 months", "Foundation Building"
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
