// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintHolisticScore outputs a human-readable summary of a holistic score.
func (p *Printer) PrintHolisticScore(score *types.HolisticScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:      %.0f / %d\n", score.Total, score.MaxScore))
	sb.WriteString(fmt.Sprintf("Tier:       %s\n", score.Tier))
	sb.WriteString(fmt.Sprintf("Percentile: top %d%%\n", 100-score.Percentile))
	sb.WriteString("\n")

	if len(score.Categories) > 0 {
		sb.WriteString("Categories:\n")
		count := min(len(score.Categories), maxItemsToShow)
		for i := 0; i < count; i++ {
			cat := score.Categories[i]
			sb.WriteString(fmt.Sprintf("  • %s: %.0f/%.0f\n", cat.Label, cat.Points, cat.MaxPoints))
		}
		if len(score.Categories) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Categories)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(score.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(score.Strengths), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", score.Strengths[i]))
		}
		if len(score.Strengths) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Strengths)-3))
		}
	}

	p.printBox("HOLISTIC CAREER SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked internship matches with scores and readiness.
func (p *Printer) PrintMatches(matches []types.InternshipMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total categories matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.Category))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  (%s)\n", match.Score, match.Readiness))
		if len(match.Analysis.MissingRequired) > 0 {
			missing := strings.Join(match.Analysis.MissingRequired, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more categories", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP INTERNSHIP MATCHES", sb.String())
}

// PrintGitHubAnalysis outputs a summary of an analyzed GitHub profile.
func (p *Printer) PrintGitHubAnalysis(analysis *types.GitHubAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:     %s\n", analysis.Profile.Username))
	sb.WriteString(fmt.Sprintf("Repos:    %d (%d stars, %d forks)\n",
		analysis.Statistics.TotalRepos, analysis.Statistics.TotalStars, analysis.Statistics.TotalForks))
	sb.WriteString(fmt.Sprintf("Activity: %s\n", analysis.ActivityLevel))
	sb.WriteString(fmt.Sprintf("Score:    %.0f/100\n", analysis.ContributionScore))

	if len(analysis.TopRepos) > 0 {
		sb.WriteString("\nTop repositories:\n")
		count := min(len(analysis.TopRepos), 3)
		for i := 0; i < count; i++ {
			repo := analysis.TopRepos[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d★, %s)\n", repo.Name, repo.Stars, repo.Language))
		}
		if len(analysis.TopRepos) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.TopRepos)-3))
		}
	}

	p.printBox("GITHUB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs a preparation roadmap with its first milestones.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:   %s\n", roadmap.Category))
	sb.WriteString(fmt.Sprintf("Score:    %.1f → %.1f\n", roadmap.CurrentScore, roadmap.TargetScore))
	sb.WriteString(fmt.Sprintf("Timeline: %s\n", roadmap.Timeline))
	sb.WriteString(fmt.Sprintf("Phase:    %s\n", roadmap.Phase))

	if len(roadmap.Milestones) > 0 {
		sb.WriteString("\nMilestones:\n")
		count := min(len(roadmap.Milestones), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := roadmap.Milestones[i]
			title := m.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s [%s]\n", i+1, title, m.Priority))
		}
		if len(roadmap.Milestones) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(roadmap.Milestones)-maxItemsToShow))
		}
	}

	p.printBox("PREPARATION ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUnifiedProfile outputs which sources contributed to a unified profile.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintUnifiedProfile(unified *types.UnifiedProfile) {
	if unified == nil {
		return
	}

	if len(unified.Sources) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ NO DATA SOURCES INTEGRATED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness: %.0f%%\n", unified.Completeness))
	sb.WriteString(fmt.Sprintf("Skills:       %d merged\n\n", len(unified.MergedSkills)))

	sb.WriteString("Sources:\n")
	for _, source := range unified.Sources {
		mark := "✗"
		if source.Used {
			mark = "✓"
		}
		line := fmt.Sprintf("  %s %s", mark, source.Source)
		if source.Detail != "" {
			line += fmt.Sprintf(" (%s)", source.Detail)
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("UNIFIED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
