// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SkillProficiency represents a skill with a self-assessed proficiency level
type SkillProficiency struct {
	Name  string  `json:"name"`
	Level float64 `json:"level"` // 0-100
}

// Project represents a single project in a student's portfolio
type Project struct {
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Language     string    `json:"language,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Topics       []string  `json:"topics,omitempty"`
	Stars        int       `json:"stars,omitempty"`
	Forks        int       `json:"forks,omitempty"`
	ReadmeText   string    `json:"readme_text,omitempty"`
	GitHubURL    string    `json:"github_url,omitempty"`
	DemoURL      string    `json:"demo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}

// Certificate represents a completed certification or course credential
type Certificate struct {
	Name        string     `json:"name"`
	Issuer      string     `json:"issuer,omitempty"`
	URL         string     `json:"url,omitempty"`
	IssueDate   *time.Time `json:"issue_date,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Activity represents an extracurricular activity entry
type Activity struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Role         string     `json:"role,omitempty"`
	Description  string     `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"` // nil means ongoing
	Achievements []string   `json:"achievements,omitempty"`
	SkillsUsed   []string   `json:"skills_used,omitempty"`
	Impact       string     `json:"impact,omitempty"`
}

// ResumeAnalysis carries precomputed resume quality signals.
// A nil analysis scores only the formatting baseline.
type ResumeAnalysis struct {
	ATSScore        float64  `json:"ats_score,omitempty"`
	HasSummary      bool     `json:"has_summary,omitempty"`
	HasQuantifiable bool     `json:"has_quantifiable_achievements,omitempty"`
	KeywordDensity  float64  `json:"keyword_density,omitempty"`
	FormattingScore *float64 `json:"formatting_score,omitempty"` // nil means the 70 baseline
	SectionsCount   int      `json:"sections_count,omitempty"`
}

// GitHubStats carries the aggregate GitHub signals the scorer consumes
type GitHubStats struct {
	PublicRepos        int `json:"public_repos,omitempty"`
	TotalContributions int `json:"total_contributions,omitempty"`
	TotalStars         int `json:"total_stars,omitempty"`
	LongestStreak      int `json:"longest_streak,omitempty"`
}

// LearningProgress carries course-completion signals
type LearningProgress struct {
	CompletedCourses  int     `json:"completed_courses,omitempty"`
	InProgressCourses int     `json:"in_progress_courses,omitempty"`
	TotalHours        float64 `json:"total_hours,omitempty"`
}

// InterviewScores carries interview-practice signals
type InterviewScores struct {
	QuestionsPracticed int     `json:"questions_practiced,omitempty"`
	AverageScore       float64 `json:"average_score,omitempty"`
	ImprovementRate    float64 `json:"improvement_rate,omitempty"`
}

// Profile is the core scoring input: everything the engine knows about a
// student. Any section may be absent; scoring falls back to documented
// defaults rather than erroring.
type Profile struct {
	Name           string             `json:"name,omitempty"`
	ResumeText     string             `json:"resume_text,omitempty"`
	ResumeAnalysis *ResumeAnalysis    `json:"resume_analysis,omitempty"`
	Skills         []string           `json:"skills,omitempty"`
	Proficiencies  []SkillProficiency `json:"proficiencies,omitempty"`
	Projects       []Project          `json:"projects,omitempty"`
	Certificates   []Certificate      `json:"certificates,omitempty"`
	Activities     []Activity         `json:"activities,omitempty"`
	GitHubUsername string             `json:"github_username,omitempty"`
	GitHubStats    *GitHubStats       `json:"github_stats,omitempty"`
	Learning       *LearningProgress  `json:"learning_progress,omitempty"`
	Interview      *InterviewScores   `json:"interview_scores,omitempty"`
}
