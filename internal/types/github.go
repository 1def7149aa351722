package types

import "time"

// GitHubUser is the subset of the GitHub /users response the analyzer needs
type GitHubUser struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// GitHubRepo is the subset of the GitHub /repos response the analyzer needs
type GitHubRepo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Watchers    int       `json:"watchers_count"`
	Fork        bool      `json:"fork"`
	Topics      []string  `json:"topics"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PushedAt    time.Time `json:"pushed_at"`
}

// GitHubProfileInfo is the profile section of an analysis
type GitHubProfileInfo struct {
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	AvatarURL   string    `json:"avatar_url"`
}

// GitHubStatistics aggregates repository counts for an analysis
type GitHubStatistics struct {
	TotalRepos     int `json:"total_repos"`
	TotalStars     int `json:"total_stars"`
	TotalForks     int `json:"total_forks"`
	TotalWatchers  int `json:"total_watchers"`
	LanguagesCount int `json:"languages_count"`
}

// RepoSummary is a compact view of one repository inside an analysis
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	URL         string `json:"url"`
}

// GitHubAnalysis is the full result of analyzing a GitHub profile
type GitHubAnalysis struct {
	Profile           GitHubProfileInfo  `json:"profile"`
	Statistics        GitHubStatistics   `json:"statistics"`
	Languages         map[string]float64 `json:"languages"` // language -> share of bytes, percent
	TopRepos          []RepoSummary      `json:"top_repos"`
	ContributionScore float64            `json:"contribution_score"` // 0-100
	ActivityLevel     string             `json:"activity_level"`
	AccountAgeDays    int                `json:"account_age_days"`
}
