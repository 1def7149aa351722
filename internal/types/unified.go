package types

import (
	"time"

	"github.com/google/uuid"
)

// SourceStatus records whether one data source contributed to a unified profile
type SourceStatus struct {
	Source string `json:"source"`
	Used   bool   `json:"used"`
	Detail string `json:"detail,omitempty"`
}

// WebsiteAnalysis summarizes a fetched portfolio or personal website
type WebsiteAnalysis struct {
	URL             string   `json:"url"`
	HasProjects     bool     `json:"has_projects_section"`
	HasContact      bool     `json:"has_contact_section"`
	HasAbout        bool     `json:"has_about_section"`
	SkillsMentioned []string `json:"skills_mentioned"`
	GitHubUsername  string   `json:"github_username,omitempty"`
	LinkedInHandle  string   `json:"linkedin_handle,omitempty"`
	QualityScore    float64  `json:"quality_score"` // 0-100
}

// UnifiedProfile merges every available data source into a single scoring input
type UnifiedProfile struct {
	ID              uuid.UUID        `json:"id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Profile         Profile          `json:"profile"`
	GitHub          *GitHubAnalysis  `json:"github,omitempty"`
	Website         *WebsiteAnalysis `json:"website,omitempty"`
	WebsiteText     string           `json:"website_text,omitempty"`
	Sources         []SourceStatus   `json:"sources"`
	MergedSkills    []string         `json:"merged_skills"`
	Completeness    float64          `json:"completeness"` // 0-100, share of sources present
	Recommendations []string         `json:"recommendations,omitempty"`
}
