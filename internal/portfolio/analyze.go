// Package portfolio evaluates GitHub project portfolios for quality,
// complexity, diversity, and skill demonstration.
package portfolio

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// ErrNoRepositories is returned when a GitHub analysis carries no
// repositories to evaluate.
var ErrNoRepositories = errors.New("no repositories available for portfolio analysis")

// Complexity levels assigned to projects.
const (
	ComplexityAdvanced     = "Advanced"
	ComplexityIntermediate = "Intermediate"
	ComplexityBeginner     = "Beginner"
)

const (
	highQualityThreshold = 70.0
	highImpactThreshold  = 50.0
)

// techCategories maps a stack area to the languages that signal it.
var techCategories = map[string][]string{
	"Frontend":        {"JavaScript", "TypeScript", "React", "Vue", "Angular", "HTML", "CSS", "SCSS", "Svelte"},
	"Backend":         {"Python", "Java", "Go", "Ruby", "PHP", "Node.js", "C#", "Rust", "Kotlin"},
	"Mobile":          {"Swift", "Kotlin", "Dart", "React Native", "Flutter", "Objective-C"},
	"Data Science/ML": {"Python", "R", "Julia", "MATLAB", "Jupyter Notebook"},
	"DevOps":          {"Shell", "Docker", "Kubernetes", "Terraform", "Ansible"},
	"Database":        {"SQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra"},
	"Systems":         {"C", "C++", "Rust", "Assembly", "Zig"},
}

var (
	highComplexityIndicators = []string{
		"machine learning", "deep learning", "distributed system", "microservices",
		"kubernetes", "blockchain", "compiler", "operating system", "neural network",
		"cloud architecture", "scalability", "real-time processing",
	}
	mediumComplexityIndicators = []string{
		"api", "database", "authentication", "testing", "ci/cd", "deployment",
		"rest", "graphql", "docker", "web application", "mobile app",
	}
	beginnerComplexityIndicators = []string{
		"todo", "calculator", "landing page", "simple", "basic", "tutorial",
		"practice", "learning", "clone",
	}
)

// readmeIndicators are description words that suggest real documentation.
var readmeIndicators = []string{
	"installation", "usage", "example", "screenshot", "demo", "features", "api", "documentation",
}

var badNameTokens = []string{"test", "tmp", "copy"}

// projectTechTerms are stack names scanned for in project descriptions.
var projectTechTerms = []string{
	"react", "vue", "angular", "node", "express", "django", "flask",
	"spring", "docker", "kubernetes", "aws", "azure", "gcp",
	"mongodb", "postgresql", "mysql", "redis", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "api", "rest", "graphql",
	"typescript", "javascript", "python", "java", "golang",
}

// Analyze evaluates the repositories in a GitHub analysis as a project
// portfolio.
func Analyze(analysis types.GitHubAnalysis) (types.PortfolioAnalysis, error) {
	repos := analysis.TopRepos
	if len(repos) == 0 {
		return types.PortfolioAnalysis{}, ErrNoRepositories
	}

	projects := make([]types.ProjectAnalysis, 0, len(repos))
	for _, repo := range repos {
		projects = append(projects, analyzeProject(repo))
	}

	strength := portfolioStrength(projects, analysis.Languages, analysis.Statistics)
	categories := categorizeProjects(projects)
	skillDemo := analyzeSkillDemonstration(projects)
	diversity := diversityScore(analysis.Languages, categories)

	return types.PortfolioAnalysis{
		PortfolioStrength:  strength,
		DiversityScore:     diversity,
		Projects:           projects,
		Categories:         categories,
		SkillDemonstration: skillDemo,
		Recommendations:    portfolioRecommendations(projects, skillDemo, categories),
		Gaps:               identifyGaps(projects, analysis.Languages),
		Summary:            buildSummary(strength, diversity, projects, skillDemo),
	}, nil
}

func analyzeProject(repo types.RepoSummary) types.ProjectAnalysis {
	description := strings.ToLower(repo.Description)

	return types.ProjectAnalysis{
		Name:         repo.Name,
		Description:  repo.Description,
		URL:          repo.URL,
		Language:     repo.Language,
		Stars:        repo.Stars,
		Forks:        repo.Forks,
		Complexity:   determineComplexity(repo.Name, description),
		QualityScore: projectQuality(repo.Name, description, repo.Stars, repo.Forks),
		ProjectType:  identifyProjectType(repo.Name, description, repo.Stars, repo.Forks),
		Skills:       extractProjectSkills(description, repo.Language),
		ImpactScore:  impactScore(repo.Stars, repo.Forks),
	}
}

func determineComplexity(name, description string) string {
	text := strings.ToLower(name) + " " + description

	high := countIndicators(text, highComplexityIndicators)
	medium := countIndicators(text, mediumComplexityIndicators)
	beginner := countIndicators(text, beginnerComplexityIndicators)

	switch {
	case high >= 2 || (high >= 1 && medium >= 2):
		return ComplexityAdvanced
	case medium >= 2 || (high >= 1 && medium >= 1):
		return ComplexityIntermediate
	case beginner >= 1:
		return ComplexityBeginner
	default:
		return ComplexityIntermediate
	}
}

// projectQuality grades a project 0-100: description depth 30, documentation
// vocabulary 30, community engagement 25, repository naming 15.
func projectQuality(name, description string, stars, forks int) float64 {
	score := 0.0

	switch {
	case len(description) > 100:
		score += 30
	case len(description) > 50:
		score += 20
	case len(description) > 20:
		score += 10
	}

	score += math.Min(30, float64(countIndicators(description, readmeIndicators))*5)

	switch {
	case stars > 50:
		score += 15
	case stars > 10:
		score += 10
	case stars > 1:
		score += 5
	}
	switch {
	case forks > 20:
		score += 10
	case forks > 5:
		score += 5
	}

	if (len(name) > 5 && strings.Contains(name, "-")) || strings.Contains(name, "_") {
		score += 10
	}
	if !containsAny(strings.ToLower(name), badNameTokens) {
		score += 5
	}

	return math.Min(100, score)
}

func identifyProjectType(name, description string, stars, forks int) string {
	text := strings.ToLower(name) + " " + description

	switch {
	case stars > 100 || forks > 50:
		return "Popular/Open Source"
	case containsAny(text, []string{"api", "library", "framework", "package"}):
		return "Library/Tool"
	case containsAny(text, []string{"website", "web app", "application", "platform"}):
		return "Web Application"
	case containsAny(text, []string{"mobile", "android", "ios", "flutter"}):
		return "Mobile Application"
	case containsAny(text, []string{"bot", "automation", "script"}):
		return "Automation/Bot"
	case containsAny(text, []string{"machine learning", "ml", "ai", "data"}):
		return "ML/Data Science"
	case float64(forks) > float64(stars)*0.5 && forks > 5:
		return "Collaborative Project"
	default:
		return "Personal Project"
	}
}

func extractProjectSkills(description, language string) []string {
	found := map[string]bool{}
	if language != "" && language != "Unknown" {
		found[language] = true
	}
	for _, term := range projectTechTerms {
		if strings.Contains(description, term) {
			found[titleTerm(term)] = true
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// impactScore combines star tiers (up to 60) with fork tiers (up to 40).
func impactScore(stars, forks int) float64 {
	impact := 0.0

	switch {
	case stars > 100:
		impact += 60
	case stars > 50:
		impact += 45
	case stars > 20:
		impact += 30
	case stars > 10:
		impact += 20
	case stars > 5:
		impact += 10
	case stars > 0:
		impact += 5
	}

	switch {
	case forks > 50:
		impact += 40
	case forks > 20:
		impact += 30
	case forks > 10:
		impact += 20
	case forks > 5:
		impact += 10
	case forks > 0:
		impact += 5
	}

	return math.Min(100, impact)
}

// portfolioStrength grades the whole portfolio 0-100: average quality 30,
// complexity distribution 20, average impact 20, language diversity 15,
// repository count 15.
func portfolioStrength(projects []types.ProjectAnalysis, languages map[string]float64, stats types.GitHubStatistics) float64 {
	if len(projects) == 0 {
		return 0
	}

	score := 0.0

	avgQuality := 0.0
	avgImpact := 0.0
	advanced := 0
	intermediate := 0
	for _, p := range projects {
		avgQuality += p.QualityScore
		avgImpact += p.ImpactScore
		switch p.Complexity {
		case ComplexityAdvanced:
			advanced++
		case ComplexityIntermediate:
			intermediate++
		}
	}
	avgQuality /= float64(len(projects))
	avgImpact /= float64(len(projects))

	score += avgQuality / 100 * 30

	switch {
	case advanced >= 2:
		score += 20
	case advanced >= 1:
		score += 15
	case intermediate >= 3:
		score += 12
	default:
		score += 5
	}

	score += avgImpact / 100 * 20
	score += math.Min(15, float64(len(languages))*2)

	switch {
	case stats.TotalRepos > 50:
		score += 15
	case stats.TotalRepos > 30:
		score += 12
	case stats.TotalRepos > 15:
		score += 9
	case stats.TotalRepos > 5:
		score += 6
	default:
		score += 3
	}

	return math.Min(100, math.Round(score))
}

func categorizeProjects(projects []types.ProjectAnalysis) types.ProjectCategories {
	categories := types.ProjectCategories{
		ByComplexity: map[string]int{},
		ByType:       map[string]int{},
		HighQuality:  []string{},
		HighImpact:   []string{},
	}
	for _, p := range projects {
		categories.ByComplexity[p.Complexity]++
		categories.ByType[p.ProjectType]++
		if p.QualityScore >= highQualityThreshold {
			categories.HighQuality = append(categories.HighQuality, p.Name)
		}
		if p.ImpactScore >= highImpactThreshold {
			categories.HighImpact = append(categories.HighImpact, p.Name)
		}
	}
	return categories
}

func analyzeSkillDemonstration(projects []types.ProjectAnalysis) types.SkillDemonstration {
	demonstrated := map[string][]string{}
	for _, p := range projects {
		for _, skill := range p.Skills {
			demonstrated[skill] = append(demonstrated[skill], p.Name)
		}
	}

	levels := make(map[string]string, len(demonstrated))
	for skill, names := range demonstrated {
		switch {
		case len(names) >= 3:
			levels[skill] = "Strong"
		case len(names) >= 2:
			levels[skill] = "Moderate"
		default:
			levels[skill] = "Basic"
		}
	}

	return types.SkillDemonstration{
		Skills:      demonstrated,
		SkillLevels: levels,
		TotalSkills: len(demonstrated),
	}
}

// diversityScore grades portfolio spread 0-100: language count 40, stack
// category coverage 30, project type variety 30.
func diversityScore(languages map[string]float64, categories types.ProjectCategories) float64 {
	score := math.Min(40, float64(len(languages))*4)

	covered := map[string]bool{}
	for lang := range languages {
		for category, stack := range techCategories {
			for _, entry := range stack {
				if entry == lang {
					covered[category] = true
				}
			}
		}
	}
	score += math.Min(30, float64(len(covered))*6)
	score += math.Min(30, float64(len(categories.ByType))*5)

	return math.Min(100, math.Round(score))
}

func identifyGaps(projects []types.ProjectAnalysis, languages map[string]float64) []types.PortfolioGap {
	gaps := []types.PortfolioGap{}

	advanced := 0
	wellDocumented := 0
	popular := 0
	collaborative := 0
	for _, p := range projects {
		if p.Complexity == ComplexityAdvanced {
			advanced++
		}
		if p.QualityScore >= highQualityThreshold {
			wellDocumented++
		}
		if p.Stars > 10 {
			popular++
		}
		if p.ProjectType == "Collaborative Project" {
			collaborative++
		}
	}

	if advanced == 0 {
		gaps = append(gaps, types.PortfolioGap{
			Type:       "Complexity",
			Issue:      "No advanced-level projects",
			Priority:   "High",
			Suggestion: "Add projects with advanced algorithms, system design, or ML/AI",
		})
	}
	if float64(wellDocumented) < float64(len(projects))*0.5 {
		gaps = append(gaps, types.PortfolioGap{
			Type:       "Documentation",
			Issue:      "Many projects lack good documentation",
			Priority:   "High",
			Suggestion: "Add detailed READMEs with setup instructions, examples, and screenshots",
		})
	}
	if popular == 0 && len(projects) > 3 {
		gaps = append(gaps, types.PortfolioGap{
			Type:       "Impact",
			Issue:      "Low community engagement",
			Priority:   "Medium",
			Suggestion: "Share projects on social media, dev communities, or add unique features",
		})
	}
	if len(languages) < 3 {
		gaps = append(gaps, types.PortfolioGap{
			Type:       "Diversity",
			Issue:      "Limited technology stack",
			Priority:   "Medium",
			Suggestion: "Explore projects in different languages or frameworks",
		})
	}
	if collaborative == 0 {
		gaps = append(gaps, types.PortfolioGap{
			Type:       "Collaboration",
			Issue:      "No collaborative/team projects",
			Priority:   "Medium",
			Suggestion: "Contribute to open source or create projects with others",
		})
	}

	return gaps
}

func portfolioRecommendations(projects []types.ProjectAnalysis, skillDemo types.SkillDemonstration, categories types.ProjectCategories) []types.PortfolioRecommendation {
	recommendations := []types.PortfolioRecommendation{}

	if categories.ByComplexity[ComplexityAdvanced] < 2 {
		recommendations = append(recommendations, types.PortfolioRecommendation{
			Category:       "Project Complexity",
			Recommendation: "Add 1-2 advanced projects showcasing system design or complex algorithms",
			Impact:         "High",
			Examples:       []string{"Distributed cache system", "Custom ML model from scratch", "Real-time data pipeline"},
		})
	}
	if skillDemo.TotalSkills < 8 {
		recommendations = append(recommendations, types.PortfolioRecommendation{
			Category:       "Skill Coverage",
			Recommendation: "Expand skill demonstrations with projects in new domains",
			Impact:         "High",
			Examples:       []string{"API development", "Cloud deployment (AWS/Azure)", "Mobile app development"},
		})
	}
	if float64(len(categories.HighQuality)) < float64(len(projects))*0.7 {
		recommendations = append(recommendations, types.PortfolioRecommendation{
			Category:       "Project Quality",
			Recommendation: "Improve documentation and add professional touches to existing projects",
			Impact:         "High",
			Examples:       []string{"Add comprehensive README", "Include demo videos/GIFs", "Add CI/CD badges"},
		})
	}
	if len(categories.HighImpact) < 2 {
		recommendations = append(recommendations, types.PortfolioRecommendation{
			Category:       "Community Impact",
			Recommendation: "Focus on creating useful, shareable projects that solve real problems",
			Impact:         "Medium",
			Examples:       []string{"Developer tools", "Useful libraries", "Educational resources"},
		})
	}
	if categories.ByType["ML/Data Science"] == 0 && len(projects) >= 3 {
		recommendations = append(recommendations, types.PortfolioRecommendation{
			Category:       "Trending Skills",
			Recommendation: "Add ML/AI projects to align with industry trends",
			Impact:         "Medium",
			Examples:       []string{"Predictive model", "NLP application", "Computer vision project"},
		})
	}

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

func buildSummary(strength, diversity float64, projects []types.ProjectAnalysis, skillDemo types.SkillDemonstration) types.PortfolioSummary {
	avg := (strength + diversity) / 2

	var rating, message string
	switch {
	case avg >= 80:
		rating = "Excellent"
		message = "Outstanding portfolio with diverse, high-quality projects"
	case avg >= 65:
		rating = "Strong"
		message = "Solid portfolio demonstrating good technical breadth"
	case avg >= 50:
		rating = "Good"
		message = "Decent portfolio with room for improvement"
	case avg >= 35:
		rating = "Developing"
		message = "Growing portfolio, focus on quality and diversity"
	default:
		rating = "Early Stage"
		message = "Portfolio in early stages, build more projects"
	}

	strengths := []string{}
	if diversity >= 70 {
		strengths = append(strengths, "Diverse technology stack")
	}
	if strength >= 70 {
		strengths = append(strengths, "High-quality projects")
	}

	advanced := 0
	highImpact := 0
	for _, p := range projects {
		if p.Complexity == ComplexityAdvanced {
			advanced++
		}
		if p.ImpactScore >= 60 {
			highImpact++
		}
	}
	if advanced >= 2 {
		strengths = append(strengths, "Advanced technical skills")
	}
	if highImpact >= 2 {
		strengths = append(strengths, "Strong community engagement")
	}
	if len(strengths) == 0 {
		strengths = []string{"Building foundation", "Active development"}
	}

	return types.PortfolioSummary{
		Rating:                rating,
		Message:               message,
		OverallScore:          math.Round(avg),
		Strengths:             strengths,
		TotalProjectsAnalyzed: len(projects),
		SkillsDemonstrated:    skillDemo.TotalSkills,
	}
}

func countIndicators(text string, indicators []string) int {
	count := 0
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			count++
		}
	}
	return count
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// titleTerm capitalizes the first letter of each alphabetic run, so
// "scikit-learn" becomes "Scikit-Learn".
func titleTerm(term string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range term {
		isLetter := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
		if isLetter && !prevLetter {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
