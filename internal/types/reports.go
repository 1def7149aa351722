package types

// CertValidation is the verification result for one certificate
type CertValidation struct {
	Valid            bool     `json:"valid"`
	TrustScore       float64  `json:"trust_score"` // 0-100
	ProviderVerified bool     `json:"provider_verified"`
	URLVerified      bool     `json:"url_verified"`
	VerifiedProvider string   `json:"verified_provider,omitempty"`
	Warnings         []string `json:"warnings"`
	Recommendations  []string `json:"recommendations"`
}

// CertificateDetail pairs a certificate with its validation and categories
type CertificateDetail struct {
	Name       string         `json:"name"`
	Provider   string         `json:"provider"`
	Categories []string       `json:"categories"`
	Validation CertValidation `json:"validation"`
}

// CertTimelineEntry is one dated certificate in the issue timeline
type CertTimelineEntry struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// CertificateReport aggregates certificate validation into a portfolio view
type CertificateReport struct {
	TotalCertificates int                 `json:"total_certificates"`
	VerifiedCount     int                 `json:"verified_count"`
	TrustScoreAvg     float64             `json:"trust_score_avg"`
	ValueScore        float64             `json:"value_score"` // 0-100
	Categories        map[string][]string `json:"categories"`
	SkillsGained      map[string]float64  `json:"skills_gained"`
	Providers         map[string]int      `json:"providers"`
	Timeline          []CertTimelineEntry `json:"timeline"`
	Warnings          []string            `json:"warnings"`
	Recommendations   []string            `json:"recommendations"`
	Details           []CertificateDetail `json:"certificate_details"`
}

// ActivityAnalysis is the scored view of a single extracurricular activity
type ActivityAnalysis struct {
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	BaseWeight         float64  `json:"base_weight"`
	ImpactScore        float64  `json:"impact_score"` // 0-100
	SkillsDemonstrated []string `json:"skills_demonstrated"`
	DurationMonths     int      `json:"duration_months"`
	LeadershipLevel    string   `json:"leadership_level"`
	QuantifiableImpact bool     `json:"quantifiable_impact"`
	Recommendations    []string `json:"recommendations"`
}

// ActivityTimelineEntry is one dated activity in the participation timeline
type ActivityTimelineEntry struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
	Type string `json:"type"`
	Role string `json:"role"`
}

// TopActivity names one activity with its impact score for ranking
type TopActivity struct {
	Name        string  `json:"name"`
	ImpactScore float64 `json:"impact_score"`
}

// ActivityReport aggregates extracurricular analysis
type ActivityReport struct {
	TotalActivities  int                     `json:"total_activities"`
	ByType           map[string]int          `json:"by_type"`
	TotalImpactScore float64                 `json:"total_impact_score"`
	SkillsGained     map[string]int          `json:"skills_gained"`
	Leadership       map[string]int          `json:"leadership_experience"`
	Timeline         []ActivityTimelineEntry `json:"timeline"`
	DiversityScore   float64                 `json:"diversity_score"`
	ConsistencyScore float64                 `json:"consistency_score"`
	QualityScore     float64                 `json:"quality_score"`
	OverallScore     float64                 `json:"overall_score"` // 0-100
	Details          []ActivityAnalysis      `json:"activity_details"`
	TopActivities    []TopActivity           `json:"top_activities"`
	Strengths        []string                `json:"strengths"`
	Recommendations  []string                `json:"recommendations"`
}

// ProjectAnalysis is the scored view of a single portfolio project.
type ProjectAnalysis struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Language     string   `json:"language"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	Complexity   string   `json:"complexity"` // Advanced, Intermediate or Beginner
	QualityScore float64  `json:"quality_score"`
	ProjectType  string   `json:"project_type"`
	Skills       []string `json:"skills"`
	ImpactScore  float64  `json:"impact_score"`
}

// ProjectCategories groups projects by complexity, type and quality bands.
type ProjectCategories struct {
	ByComplexity map[string]int `json:"by_complexity"`
	ByType       map[string]int `json:"by_type"`
	HighQuality  []string       `json:"high_quality"` // quality >= 70
	HighImpact   []string       `json:"high_impact"`  // impact >= 50
}

// SkillDemonstration maps each demonstrated skill to the projects that
// show it, with a level derived from the project count.
type SkillDemonstration struct {
	Skills      map[string][]string `json:"skills"`
	SkillLevels map[string]string   `json:"skill_levels"` // Strong, Moderate, Basic
	TotalSkills int                 `json:"total_skills"`
}

// PortfolioRecommendation is one actionable portfolio improvement.
type PortfolioRecommendation struct {
	Category       string   `json:"category"`
	Recommendation string   `json:"recommendation"`
	Impact         string   `json:"impact"`
	Examples       []string `json:"examples"`
}

// PortfolioGap is a structural weakness found in the portfolio.
type PortfolioGap struct {
	Type       string `json:"type"`
	Issue      string `json:"issue"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
}

// PortfolioSummary is the headline rating of the portfolio.
type PortfolioSummary struct {
	Rating                string   `json:"rating"`
	Message               string   `json:"message"`
	OverallScore          float64  `json:"overall_score"`
	Strengths             []string `json:"strengths"`
	TotalProjectsAnalyzed int      `json:"total_projects_analyzed"`
	SkillsDemonstrated    int      `json:"skills_demonstrated"`
}

// PortfolioAnalysis is the full project-portfolio evaluation built from a
// GitHub analysis.
type PortfolioAnalysis struct {
	PortfolioStrength  float64                   `json:"portfolio_strength"` // 0-100
	DiversityScore     float64                   `json:"diversity_score"`    // 0-100
	Projects           []ProjectAnalysis         `json:"projects"`
	Categories         ProjectCategories         `json:"categories"`
	SkillDemonstration SkillDemonstration        `json:"skill_demonstration"`
	Recommendations    []PortfolioRecommendation `json:"recommendations"`
	Gaps               []PortfolioGap            `json:"gaps"`
	Summary            PortfolioSummary          `json:"summary"`
}

// PortfolioDimension is one weighted dimension of the enhanced portfolio
// assessment.
type PortfolioDimension struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"` // 0-100
	Weight  float64  `json:"weight"`
	Details []string `json:"details"`
	Rating  string   `json:"rating"`
}

// ScoredProject is a compact per-project quality entry in the enhanced view.
type ScoredProject struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Language    string  `json:"language"`
	Stars       int     `json:"stars"`
	Description string  `json:"description"`
}

// EnhancedProjectReport ranks individual projects by quality score.
type EnhancedProjectReport struct {
	TotalProjects  int             `json:"total_projects"`
	AverageQuality float64         `json:"average_quality"`
	TopProjects    []ScoredProject `json:"top_projects"`
	AllProjects    []ScoredProject `json:"all_projects"`
}

// IndustryAlignment reports how the portfolio maps onto industry trends.
type IndustryAlignment struct {
	AlignedIndustries map[string]int `json:"aligned_industries"`
	TopAlignment      string         `json:"top_alignment"`
	AlignmentScore    float64        `json:"alignment_score"`
}

// EnhancedPortfolio is the six-dimension weighted portfolio assessment that
// folds in certifications, activities, and learning progress.
type EnhancedPortfolio struct {
	OverallScore        float64               `json:"overall_score"` // 0-100
	DimensionScores     []PortfolioDimension  `json:"dimension_scores"`
	ProjectAnalysis     EnhancedProjectReport `json:"project_analysis"`
	StandoutProjects    []ScoredProject       `json:"standout_projects"`
	SkillDemonstration  map[string][]string   `json:"skill_demonstration"`
	PortfolioTier       string                `json:"portfolio_tier"`
	Strengths           []string              `json:"strengths"`
	AreasForImprovement []string              `json:"areas_for_improvement"`
	Recommendations     []string              `json:"recommendations"`
	CompetitiveEdge     []string              `json:"competitive_edge"`
	MissingElements     []string              `json:"missing_elements"`
	IndustryAlignment   IndustryAlignment     `json:"industry_alignment"`
}

// ATSMatch is the resume-vs-job-description skill overlap report
type ATSMatch struct {
	Score         float64  `json:"score"` // 0-100
	Assessment    string   `json:"assessment"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`
}
