package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func mlRepo() types.RepoSummary {
	return types.RepoSummary{
		Name:        "ml-pipeline",
		Description: "Distributed machine learning pipeline with kubernetes deployment and api documentation",
		Stars:       60,
		Forks:       25,
		Language:    "Python",
		URL:         "https://github.com/dev/ml-pipeline",
	}
}

func todoRepo() types.RepoSummary {
	return types.RepoSummary{
		Name:        "todo",
		Description: "simple todo app",
		Language:    "JavaScript",
	}
}

func TestAnalyzeProjectAdvanced(t *testing.T) {
	p := analyzeProject(mlRepo())

	assert.Equal(t, ComplexityAdvanced, p.Complexity)
	// description 20 + doc words 10 + stars 15 + forks 10 + name 15
	assert.InDelta(t, 70.0, p.QualityScore, 0.001)
	// stars tier 45 + forks tier 30
	assert.InDelta(t, 75.0, p.ImpactScore, 0.001)
	assert.Equal(t, "Library/Tool", p.ProjectType)
	assert.Equal(t, []string{"Api", "Kubernetes", "Python"}, p.Skills)
}

func TestAnalyzeProjectBeginner(t *testing.T) {
	p := analyzeProject(todoRepo())

	assert.Equal(t, ComplexityBeginner, p.Complexity)
	assert.InDelta(t, 5.0, p.QualityScore, 0.001)
	assert.Zero(t, p.ImpactScore)
	assert.Equal(t, "Personal Project", p.ProjectType)
}

func TestProjectQualityCapped(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}
	desc := string(long) + " installation usage example screenshot demo features api documentation"
	score := projectQuality("well-named-repo", desc, 1000, 1000)
	assert.Equal(t, 100.0, score)
}

func TestImpactScoreTiers(t *testing.T) {
	assert.Equal(t, 100.0, impactScore(200, 100))
	assert.Equal(t, 10.0, impactScore(3, 2))
	assert.Zero(t, impactScore(0, 0))
}

func TestAnalyzePortfolio(t *testing.T) {
	analysis := types.GitHubAnalysis{
		TopRepos:   []types.RepoSummary{mlRepo(), todoRepo()},
		Languages:  map[string]float64{"Python": 60, "JavaScript": 40},
		Statistics: types.GitHubStatistics{TotalRepos: 10},
	}

	report, err := Analyze(analysis)
	require.NoError(t, err)

	// quality avg 11.25 + complexity 15 + impact avg 7.5 + languages 4 + repos 6
	assert.InDelta(t, 44.0, report.PortfolioStrength, 0.001)
	// languages 8 + categories (Frontend, Backend, Data Science/ML) 18 + types 10
	assert.InDelta(t, 36.0, report.DiversityScore, 0.001)

	assert.Equal(t, 1, report.Categories.ByComplexity[ComplexityAdvanced])
	assert.Equal(t, 1, report.Categories.ByComplexity[ComplexityBeginner])
	assert.Equal(t, []string{"ml-pipeline"}, report.Categories.HighQuality)
	assert.Equal(t, []string{"ml-pipeline"}, report.Categories.HighImpact)

	assert.Equal(t, 4, report.SkillDemonstration.TotalSkills)
	assert.Equal(t, "Basic", report.SkillDemonstration.SkillLevels["Python"])

	assert.Equal(t, "Developing", report.Summary.Rating)
	assert.Equal(t, 40.0, report.Summary.OverallScore)
	assert.Equal(t, []string{"Building foundation", "Active development"}, report.Summary.Strengths)
	assert.Equal(t, 2, report.Summary.TotalProjectsAnalyzed)

	gapTypes := []string{}
	for _, g := range report.Gaps {
		gapTypes = append(gapTypes, g.Type)
	}
	assert.Equal(t, []string{"Diversity", "Collaboration"}, gapTypes)

	assert.Len(t, report.Recommendations, 4)
	assert.Equal(t, "Project Complexity", report.Recommendations[0].Category)
}

func TestAnalyzeNoRepositories(t *testing.T) {
	_, err := Analyze(types.GitHubAnalysis{})
	assert.ErrorIs(t, err, ErrNoRepositories)
}

func TestDetermineComplexityDefault(t *testing.T) {
	assert.Equal(t, ComplexityIntermediate, determineComplexity("svc", "a service"))
}

func TestTitleTerm(t *testing.T) {
	assert.Equal(t, "Scikit-Learn", titleTerm("scikit-learn"))
	assert.Equal(t, "Aws", titleTerm("aws"))
	assert.Equal(t, "Ci/Cd", titleTerm("ci/cd"))
}
