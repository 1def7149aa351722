package types

// InternshipCategory describes one entry of the fixed internship catalog
type InternshipCategory struct {
	Name            string   `json:"name"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
	StipendRange    string   `json:"avg_stipend_range"`
	Duration        string   `json:"duration"`
}

// MatchAnalysis is the full match breakdown of a profile against one category
type MatchAnalysis struct {
	Category             string   `json:"category"`
	MatchScore           float64  `json:"match_score"` // 0-100
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	RequiredSkillsMet    int      `json:"required_skills_met"`
	RequiredSkillsTotal  int      `json:"required_skills_total"`
	PreferredSkillsMet   int      `json:"preferred_skills_met"`
	RelevantProjects     int      `json:"relevant_projects"`
	RelevantCerts        int      `json:"relevant_certifications"`
	MissingRequired      []string `json:"missing_required_skills"`
	MissingPreferred     []string `json:"missing_preferred_skills"`
	Readiness            string   `json:"readiness_level"`
	Recommendations      []string `json:"recommendations"`
	StipendRange         string   `json:"avg_stipend_range"`
	Duration             string   `json:"duration"`
}

// InternshipMatch is one entry of the ranked match list
type InternshipMatch struct {
	Category  string        `json:"category"`
	Score     float64       `json:"match_score"`
	Readiness string        `json:"readiness"`
	Analysis  MatchAnalysis `json:"analysis"`
}

// Milestone is one roadmap step with priority and time estimate
type Milestone struct {
	Title         string   `json:"title"`
	Priority      string   `json:"priority"`
	Skills        []string `json:"skills,omitempty"`
	Target        string   `json:"target,omitempty"`
	EstimatedTime string   `json:"estimated_time"`
}

// Roadmap is a personalized preparation plan toward a target category
type Roadmap struct {
	Category     string      `json:"category"`
	CurrentScore float64     `json:"current_score"`
	TargetScore  float64     `json:"target_score"`
	Timeline     string      `json:"estimated_timeline"`
	Phase        string      `json:"current_phase"`
	Milestones   []Milestone `json:"milestones"`
	ActionItems  []string    `json:"action_items"`
	Resources    []string    `json:"resources"`
}
