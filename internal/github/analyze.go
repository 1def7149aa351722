package github

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// languageRepoLimit bounds per-repo language lookups to stay inside the
// unauthenticated rate limit.
const languageRepoLimit = 20

// recentWindow is how far back a repository update still counts as recent.
const recentWindow = 90 * 24 * time.Hour

// topRepoCount is how many repositories appear in the analysis summary.
const topRepoCount = 5

// topLanguageCount bounds the language breakdown.
const topLanguageCount = 10

// Analyzer turns raw API data into a profile analysis.
type Analyzer struct {
	client  *Client
	verbose bool
}

// NewAnalyzer wraps a client.
func NewAnalyzer(client *Client, verbose bool) *Analyzer {
	return &Analyzer{client: client, verbose: verbose}
}

// Analyze runs the complete profile analysis. Failures come back as *Error
// with a kind the caller can branch on; callers typically degrade to a
// zero-valued analysis rather than failing their whole request.
func (a *Analyzer) Analyze(ctx context.Context, username string, now time.Time) (types.GitHubAnalysis, error) {
	user, err := a.client.User(ctx, username)
	if err != nil {
		return types.GitHubAnalysis{}, err
	}

	repos, err := a.client.Repos(ctx, username)
	if err != nil {
		return types.GitHubAnalysis{}, err
	}
	if len(repos) == 0 {
		return types.GitHubAnalysis{}, &Error{
			Kind:     KindNoRepos,
			Username: username,
			Message:  "Unable to fetch repositories or no public repositories found",
		}
	}

	totalStars, totalForks, totalWatchers := 0, 0, 0
	for _, r := range repos {
		totalStars += r.Stars
		totalForks += r.Forks
		totalWatchers += r.Watchers
	}

	// Language bytes across the most recently updated repositories.
	// Lookup failures are skipped, not fatal.
	languageBytes := map[string]int{}
	limit := len(repos)
	if limit > languageRepoLimit {
		limit = languageRepoLimit
	}
	for _, r := range repos[:limit] {
		languages, err := a.client.Languages(ctx, username, r.Name)
		if err != nil {
			if a.verbose {
				log.Printf("[GITHUB] language lookup failed for %s/%s: %v", username, r.Name, err)
			}
			continue
		}
		for lang, count := range languages {
			languageBytes[lang] += count
		}
	}

	accountAgeDays := 0
	if !user.CreatedAt.IsZero() {
		accountAgeDays = int(now.Sub(user.CreatedAt).Hours() / 24)
	}

	analysis := types.GitHubAnalysis{
		Profile: types.GitHubProfileInfo{
			Username:    user.Login,
			Name:        user.Name,
			Bio:         user.Bio,
			Location:    user.Location,
			Company:     user.Company,
			Blog:        user.Blog,
			Followers:   user.Followers,
			Following:   user.Following,
			PublicRepos: user.PublicRepos,
			CreatedAt:   user.CreatedAt,
			AvatarURL:   user.AvatarURL,
		},
		Statistics: types.GitHubStatistics{
			TotalRepos:     len(repos),
			TotalStars:     totalStars,
			TotalForks:     totalForks,
			TotalWatchers:  totalWatchers,
			LanguagesCount: len(languageBytes),
		},
		Languages:      languageBreakdown(languageBytes),
		TopRepos:       topRepos(repos),
		ActivityLevel:  activityLevel(repos, now),
		AccountAgeDays: accountAgeDays,
	}
	analysis.ContributionScore = contributionScore(
		len(repos), totalStars, user.Followers, len(languageBytes), accountAgeDays)

	return analysis, nil
}

// contributionScore grades a profile 0-100: repositories up to 30 points,
// stars 25, followers 15, language diversity 15, account age 15.
func contributionScore(repoCount, totalStars, followers, languagesCount, accountAgeDays int) float64 {
	score := 0.0
	score += math.Min(30, float64(repoCount)*1.5)
	score += math.Min(25, float64(totalStars)*0.5)
	score += math.Min(15, float64(followers)*0.3)
	score += math.Min(15, float64(languagesCount)*2)

	years := float64(accountAgeDays) / 365
	score += math.Min(15, years*3)

	return math.Min(100, math.Round(score))
}

// languageBreakdown converts byte counts into percentage shares of the
// top languages.
func languageBreakdown(languageBytes map[string]int) map[string]float64 {
	total := 0
	for _, b := range languageBytes {
		total += b
	}
	breakdown := map[string]float64{}
	if total == 0 {
		return breakdown
	}

	type langCount struct {
		name  string
		bytes int
	}
	ranked := make([]langCount, 0, len(languageBytes))
	for lang, b := range languageBytes {
		ranked = append(ranked, langCount{lang, b})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].bytes != ranked[j].bytes {
			return ranked[i].bytes > ranked[j].bytes
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > topLanguageCount {
		ranked = ranked[:topLanguageCount]
	}

	for _, lc := range ranked {
		pct := float64(lc.bytes) / float64(total) * 100
		breakdown[lc.name] = math.Round(pct*10) / 10
	}
	return breakdown
}

func topRepos(repos []types.GitHubRepo) []types.RepoSummary {
	ranked := make([]types.GitHubRepo, len(repos))
	copy(ranked, repos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})
	if len(ranked) > topRepoCount {
		ranked = ranked[:topRepoCount]
	}

	summaries := make([]types.RepoSummary, 0, len(ranked))
	for _, r := range ranked {
		description := r.Description
		if description == "" {
			description = "No description"
		}
		language := r.Language
		if language == "" {
			language = "Unknown"
		}
		summaries = append(summaries, types.RepoSummary{
			Name:        r.Name,
			Description: description,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Language:    language,
			URL:         r.HTMLURL,
		})
	}
	return summaries
}

// activityLevel labels the profile by the share of repositories updated
// inside the recent window.
func activityLevel(repos []types.GitHubRepo, now time.Time) string {
	if len(repos) == 0 {
		return "Unknown"
	}
	recent := 0
	for _, r := range repos {
		if !r.UpdatedAt.IsZero() && now.Sub(r.UpdatedAt) <= recentWindow {
			recent++
		}
	}
	ratio := float64(recent) / float64(len(repos))
	switch {
	case ratio >= 0.3:
		return "Very Active"
	case ratio >= 0.15:
		return "Active"
	case ratio >= 0.05:
		return "Moderately Active"
	default:
		return "Less Active"
	}
}

// Stats condenses an analysis into the aggregate signals the composite
// scorer consumes.
func Stats(analysis types.GitHubAnalysis) *types.GitHubStats {
	return &types.GitHubStats{
		PublicRepos: analysis.Statistics.TotalRepos,
		TotalStars:  analysis.Statistics.TotalStars,
	}
}
