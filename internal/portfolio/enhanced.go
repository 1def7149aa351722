package portfolio

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Dimension names of the enhanced assessment, in report order.
const (
	DimTechnicalDepth   = "Technical Depth"
	DimBreadthDiversity = "Breadth & Diversity"
	DimImpactQuality    = "Impact & Quality"
	DimProfessional     = "Professional Growth"
	DimLeadership       = "Leadership & Collaboration"
	DimIndustry         = "Industry Readiness"
)

var dimensionWeights = []struct {
	name   string
	weight float64
}{
	{DimTechnicalDepth, 0.25},
	{DimBreadthDiversity, 0.20},
	{DimImpactQuality, 0.20},
	{DimProfessional, 0.15},
	{DimLeadership, 0.10},
	{DimIndustry, 0.10},
}

var complexityKeywords = []string{"architecture", "scalable", "distributed", "advanced"}

var industryTrends = []struct {
	name     string
	keywords []string
}{
	{"AI/ML", []string{"machine learning", "ai", "neural", "deep learning", "nlp"}},
	{"Cloud", []string{"aws", "azure", "gcp", "cloud", "kubernetes", "docker"}},
	{"Web3", []string{"blockchain", "web3", "crypto", "smart contract"}},
	{"Full Stack", []string{"fullstack", "mern", "mean", "frontend", "backend"}},
	{"Data Science", []string{"data science", "analytics", "visualization", "pandas"}},
}

// AnalyzeEnhanced evaluates a portfolio across six weighted dimensions,
// folding certifications, activities, and learning progress into the view.
// All inputs besides projects are optional.
func AnalyzeEnhanced(
	projects []types.Project,
	github *types.GitHubAnalysis,
	certifications []types.Certificate,
	activities []types.Activity,
	learning *types.LearningProgress,
	now time.Time,
) types.EnhancedPortfolio {
	dimensions := []types.PortfolioDimension{
		technicalDepth(projects, github, certifications),
		breadthDiversity(projects, github),
		impactQuality(projects, github),
		professionalGrowth(certifications, learning),
		leadershipCollaboration(activities, projects),
		industryReadiness(projects, activities),
	}

	overall := 0.0
	for i, dim := range dimensions {
		dimensions[i].Weight = dimensionWeights[i].weight
		overall += dim.Score * dimensionWeights[i].weight
	}
	overall = math.Round(overall*10) / 10

	projectReport := detailedProjectReport(projects, now)
	standout := standoutProjects(projectReport.AllProjects)

	return types.EnhancedPortfolio{
		OverallScore:        overall,
		DimensionScores:     dimensions,
		ProjectAnalysis:     projectReport,
		StandoutProjects:    standout,
		SkillDemonstration:  enhancedSkillDemonstration(projects, certifications, activities),
		PortfolioTier:       portfolioTier(overall),
		Strengths:           dimensionStrengths(dimensions),
		AreasForImprovement: improvementAreas(dimensions),
		Recommendations:     enhancedRecommendations(dimensions, overall),
		CompetitiveEdge:     competitiveEdges(dimensions, standout),
		MissingElements:     missingElements(dimensions),
		IndustryAlignment:   industryAlignment(projects, certifications),
	}
}

// technicalDepth scores project complexity 40, repository volume 30, and
// technical certifications 30.
func technicalDepth(projects []types.Project, github *types.GitHubAnalysis, certifications []types.Certificate) types.PortfolioDimension {
	score := 0.0
	details := []string{}

	if len(projects) > 0 {
		complexCount := 0
		for _, p := range projects {
			if containsAny(strings.ToLower(p.Description), complexityKeywords) {
				complexCount++
			}
		}
		score += math.Min(float64(complexCount)/float64(len(projects)), 1) * 40
		details = append(details, fmt.Sprintf("%d complex projects", complexCount))
	}

	if github != nil {
		repos := github.Statistics.TotalRepos
		score += math.Min(float64(repos)/20, 1) * 30
		details = append(details, fmt.Sprintf("%d GitHub repositories", repos))
	}

	if len(certifications) > 0 {
		techCerts := 0
		for _, c := range certifications {
			if containsAny(strings.ToLower(c.Name), []string{"programming", "developer", "engineer", "architect"}) {
				techCerts++
			}
		}
		score += math.Min(float64(techCerts)/5, 1) * 30
		details = append(details, fmt.Sprintf("%d technical certifications", techCerts))
	}

	return dimension(DimTechnicalDepth, score, details)
}

// breadthDiversity scores language spread 50 and domain spread 50.
func breadthDiversity(projects []types.Project, github *types.GitHubAnalysis) types.PortfolioDimension {
	score := 0.0
	details := []string{}

	languages := map[string]bool{}
	for _, p := range projects {
		if p.Language != "" {
			languages[p.Language] = true
		}
	}
	if github != nil {
		for lang := range github.Languages {
			languages[lang] = true
		}
	}
	score += math.Min(float64(len(languages))/6, 1) * 50
	details = append(details, fmt.Sprintf("%d programming languages", len(languages)))

	domainKeywords := []struct {
		domain   string
		keywords []string
	}{
		{"Web", []string{"web", "frontend", "backend", "fullstack"}},
		{"Mobile", []string{"android", "ios", "mobile", "app"}},
		{"Data", []string{"data", "analytics", "ml", "ai"}},
		{"Cloud", []string{"cloud", "aws", "azure", "devops"}},
		{"Security", []string{"security", "encryption", "auth"}},
	}
	domains := map[string]bool{}
	for _, p := range projects {
		desc := strings.ToLower(p.Description)
		for _, d := range domainKeywords {
			if containsAny(desc, d.keywords) {
				domains[d.domain] = true
			}
		}
	}
	score += math.Min(float64(len(domains))/4, 1) * 50
	details = append(details, fmt.Sprintf("%d technical domains", len(domains)))

	return dimension(DimBreadthDiversity, score, details)
}

// impactQuality scores stars 40, quality signals 40, fork engagement 20.
func impactQuality(projects []types.Project, github *types.GitHubAnalysis) types.PortfolioDimension {
	score := 0.0
	details := []string{}

	totalStars := 0
	if github != nil {
		totalStars = github.Statistics.TotalStars
	} else {
		for _, p := range projects {
			totalStars += p.Stars
		}
	}
	score += math.Min(float64(totalStars)/100, 1) * 40
	details = append(details, fmt.Sprintf("%d total stars", totalStars))

	qualityCount := 0
	for _, p := range projects {
		desc := strings.ToLower(p.Description)
		hasDemo := p.DemoURL != "" || strings.Contains(desc, "demo")
		hasDocs := strings.Contains(desc, "documentation") || strings.Contains(desc, "readme")
		hasTests := strings.Contains(desc, "test")
		if hasDemo || hasDocs || hasTests {
			qualityCount++
		}
	}
	if len(projects) > 0 {
		score += math.Min(float64(qualityCount)/float64(len(projects)), 1) * 40
	}
	details = append(details, fmt.Sprintf("%d high-quality projects", qualityCount))

	forks := 0
	if github != nil {
		forks = github.Statistics.TotalForks
	}
	score += math.Min(float64(forks)/50, 1) * 20
	details = append(details, fmt.Sprintf("%d total forks", forks))

	return dimension(DimImpactQuality, score, details)
}

// professionalGrowth scores certifications 60 and completed courses 40.
func professionalGrowth(certifications []types.Certificate, learning *types.LearningProgress) types.PortfolioDimension {
	score := 0.0
	details := []string{}

	if len(certifications) > 0 {
		score += math.Min(float64(len(certifications))/8, 1) * 60
		details = append(details, fmt.Sprintf("%d certifications", len(certifications)))
	}
	if learning != nil {
		score += math.Min(float64(learning.CompletedCourses)/10, 1) * 40
		details = append(details, fmt.Sprintf("%d courses completed", learning.CompletedCourses))
	}

	return dimension(DimProfessional, score, details)
}

// leadershipCollaboration scores leadership roles 60 and team projects 40.
func leadershipCollaboration(activities []types.Activity, projects []types.Project) types.PortfolioDimension {
	score := 0.0
	details := []string{}

	if len(activities) > 0 {
		leadershipKeywords := []string{"president", "lead", "founder", "organizer", "captain", "head"}
		leadershipCount := 0
		for _, a := range activities {
			if containsAny(strings.ToLower(a.Role), leadershipKeywords) {
				leadershipCount++
			}
		}
		score += math.Min(float64(leadershipCount)/float64(len(activities)), 1) * 60
		details = append(details, fmt.Sprintf("%d leadership roles", leadershipCount))
	}

	teamProjects := 0
	for _, p := range projects {
		if containsAny(strings.ToLower(p.Description), []string{"team", "collaboration", "group"}) {
			teamProjects++
		}
	}
	if len(projects) > 0 {
		score += math.Min(float64(teamProjects)/float64(len(projects)), 1) * 40
	}
	details = append(details, fmt.Sprintf("%d team projects", teamProjects))

	return dimension(DimLeadership, score, details)
}

// industryReadiness scores real-world projects 50 and work experience 50.
func industryReadiness(projects []types.Project, activities []types.Activity) types.PortfolioDimension {
	score := 0.0
	details := []string{}

	realWorld := 0
	for _, p := range projects {
		if containsAny(strings.ToLower(p.Description), []string{"production", "deployed", "live", "client", "commercial"}) {
			realWorld++
		}
	}
	if len(projects) > 0 {
		score += math.Min(float64(realWorld)/float64(len(projects)), 1) * 50
	}
	details = append(details, fmt.Sprintf("%d real-world projects", realWorld))

	if len(activities) > 0 {
		workExperience := 0
		for _, a := range activities {
			switch a.Type {
			case "Freelancing", "Internship", "Work":
				workExperience++
			}
		}
		score += math.Min(float64(workExperience)/3, 1) * 50
		details = append(details, fmt.Sprintf("%d work experiences", workExperience))
	}

	return dimension(DimIndustry, score, details)
}

func detailedProjectReport(projects []types.Project, now time.Time) types.EnhancedProjectReport {
	scored := make([]types.ScoredProject, 0, len(projects))
	total := 0.0
	for _, p := range projects {
		score := projectQualityScore(p, now)
		total += score
		scored = append(scored, types.ScoredProject{
			Name:        p.Name,
			Score:       score,
			Language:    orUnknown(p.Language),
			Stars:       p.Stars,
			Description: truncate(p.Description, 100),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	average := 0.0
	if len(scored) > 0 {
		average = total / float64(len(scored))
	}

	return types.EnhancedProjectReport{
		TotalProjects:  len(projects),
		AverageQuality: average,
		TopProjects:    firstProjects(scored, 5),
		AllProjects:    scored,
	}
}

// projectQualityScore grades a single project out of five 20-point signals:
// description, stars, demo or deployment, complexity vocabulary, recency.
func projectQualityScore(p types.Project, now time.Time) float64 {
	score := 0.0
	desc := strings.ToLower(p.Description)

	if p.Description != "" {
		score += 20
	}
	score += math.Min(float64(p.Stars)*2, 20)
	if p.DemoURL != "" || strings.Contains(desc, "deployed") {
		score += 20
	}
	if containsAny(desc, []string{"architecture", "scalable", "distributed", "advanced", "complex"}) {
		score += 20
	}
	if !p.UpdatedAt.IsZero() {
		daysOld := now.Sub(p.UpdatedAt).Hours() / 24
		if daysOld < 180 {
			score += 20
		} else if daysOld < 365 {
			score += 10
		}
	}

	return math.Min(score, 100)
}

func standoutProjects(scored []types.ScoredProject) []types.ScoredProject {
	standout := []types.ScoredProject{}
	for _, p := range scored {
		if p.Score >= 70 {
			standout = append(standout, p)
		}
	}
	return firstProjects(standout, 5)
}

func enhancedSkillDemonstration(projects []types.Project, certifications []types.Certificate, activities []types.Activity) map[string][]string {
	demo := map[string][]string{}
	for _, p := range projects {
		if p.Language != "" {
			name := p.Name
			if name == "" {
				name = "Project"
			}
			demo[p.Language] = append(demo[p.Language], "Project: "+name)
		}
	}
	for _, c := range certifications {
		demo["Certifications"] = append(demo["Certifications"], c.Name)
	}
	for _, a := range activities {
		activityType := a.Type
		if activityType == "" {
			activityType = "Activity"
		}
		demo["Extracurricular"] = append(demo["Extracurricular"], activityType)
	}
	return demo
}

func portfolioTier(score float64) string {
	switch {
	case score >= 85:
		return "Elite - Top 5%"
	case score >= 75:
		return "Excellent - Top 15%"
	case score >= 65:
		return "Strong - Top 30%"
	case score >= 50:
		return "Developing - Top 50%"
	default:
		return "Building - Keep Growing"
	}
}

func dimensionStrengths(dimensions []types.PortfolioDimension) []string {
	strengths := []string{}
	for _, d := range dimensions {
		if d.Score >= 75 {
			strengths = append(strengths, fmt.Sprintf("%s: %s", d.Name, d.Rating))
		}
	}
	if len(strengths) == 0 {
		return []string{"Building foundation across all areas"}
	}
	return strengths
}

func improvementAreas(dimensions []types.PortfolioDimension) []string {
	improvements := []string{}
	for _, d := range dimensions {
		if d.Score < 60 {
			improvements = append(improvements, fmt.Sprintf("%s: %s", d.Name, d.Rating))
		}
	}
	if len(improvements) == 0 {
		return []string{"All areas performing well"}
	}
	return improvements
}

func enhancedRecommendations(dimensions []types.PortfolioDimension, overall float64) []string {
	lowest := dimensions[0]
	for _, d := range dimensions[1:] {
		if d.Score < lowest.Score {
			lowest = d
		}
	}

	recommendations := []string{
		fmt.Sprintf("Priority: Improve %s (currently %.1f%%)", lowest.Name, lowest.Score),
	}
	switch {
	case overall < 50:
		recommendations = append(recommendations,
			"Focus on building 3-5 quality projects across different domains",
			"Earn foundational certifications in your target field")
	case overall < 65:
		recommendations = append(recommendations,
			"Add advanced projects showcasing complex problem-solving",
			"Participate in hackathons or coding competitions")
	case overall < 80:
		recommendations = append(recommendations,
			"Contribute to open source projects to demonstrate collaboration",
			"Take on leadership roles in technical communities")
	default:
		recommendations = append(recommendations,
			"Maintain excellence and explore cutting-edge technologies",
			"Share knowledge through blogs, talks, or mentoring")
	}
	return recommendations
}

func competitiveEdges(dimensions []types.PortfolioDimension, standout []types.ScoredProject) []string {
	edges := []string{}
	for _, d := range dimensions {
		if d.Score >= 80 {
			edges = append(edges, "Strong "+d.Name)
		}
	}
	if len(standout) >= 3 {
		edges = append(edges, "Multiple high-quality projects")
	}
	if len(edges) == 0 {
		return []string{"Building competitive advantages"}
	}
	return edges
}

func missingElements(dimensions []types.PortfolioDimension) []string {
	byName := map[string]float64{}
	for _, d := range dimensions {
		byName[d.Name] = d.Score
	}

	missing := []string{}
	if byName[DimTechnicalDepth] < 50 {
		missing = append(missing, "Complex technical projects")
	}
	if byName[DimProfessional] < 50 {
		missing = append(missing, "Professional certifications")
	}
	if byName[DimLeadership] < 50 {
		missing = append(missing, "Leadership experience")
	}
	if byName[DimIndustry] < 50 {
		missing = append(missing, "Real-world project experience")
	}
	if len(missing) == 0 {
		return []string{"Portfolio is well-rounded"}
	}
	return missing
}

func industryAlignment(projects []types.Project, certifications []types.Certificate) types.IndustryAlignment {
	alignment := map[string]int{}
	for _, p := range projects {
		desc := strings.ToLower(p.Description)
		for _, trend := range industryTrends {
			if containsAny(desc, trend.keywords) {
				alignment[trend.name]++
			}
		}
	}
	for _, c := range certifications {
		name := strings.ToLower(c.Name)
		for _, trend := range industryTrends {
			if containsAny(name, trend.keywords) {
				alignment[trend.name]++
			}
		}
	}

	top := "General"
	total := 0
	best := 0
	for _, trend := range industryTrends {
		count := alignment[trend.name]
		total += count
		if count > best {
			best = count
			top = trend.name
		}
	}

	return types.IndustryAlignment{
		AlignedIndustries: alignment,
		TopAlignment:      top,
		AlignmentScore:    math.Min(float64(total)*10, 100),
	}
}

func dimension(name string, score float64, details []string) types.PortfolioDimension {
	score = math.Min(score, 100)
	return types.PortfolioDimension{
		Name:    name,
		Score:   score,
		Details: details,
		Rating:  dimensionRating(score),
	}
}

func dimensionRating(score float64) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 55:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func firstProjects(projects []types.ScoredProject, n int) []types.ScoredProject {
	if len(projects) <= n {
		return projects
	}
	return projects[:n]
}
