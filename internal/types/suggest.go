package types

// CareerSuggestion is one recommended career path.
type CareerSuggestion struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	SkillsNeeded []string `json:"skills_needed"`
	LearningPath string   `json:"learning_path"`
	SalaryRange  string   `json:"salary_range"`
	Growth       string   `json:"growth"`
	MatchReason  string   `json:"match_reason"`
	EntryLevel   string   `json:"entry_level"`
	TimeToStart  string   `json:"time_to_start"`
}

// CourseSuggestion is one recommended course toward a skill.
type CourseSuggestion struct {
	Title          string   `json:"title"`
	Platform       string   `json:"platform"`
	Price          string   `json:"price"`
	Rating         string   `json:"rating"`
	URL            string   `json:"url"`
	WhyRecommended string   `json:"why_recommended"`
	LearningOrder  int      `json:"learning_order"`
	Duration       string   `json:"duration"`
	SkillsCovered  []string `json:"skills_covered"`
}
