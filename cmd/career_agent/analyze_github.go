package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/career-compass/internal/github"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeGitHubCmd = &cobra.Command{
	Use:   "analyze-github",
	Short: "Analyze a public GitHub profile",
	Long:  "Fetches a GitHub user's repositories over the REST API and produces language breakdown, activity level, and contribution score.",
	RunE:  runAnalyzeGitHub,
}

var (
	ghUsername string
	ghToken    string
	ghBaseURL  string
	ghTimeout  int
	ghVerbose  bool
	ghOut      string
	ghJSON     bool
)

func init() {
	analyzeGitHubCmd.Flags().StringVarP(&ghUsername, "username", "u", "", "GitHub username (required)")
	analyzeGitHubCmd.Flags().StringVar(&ghToken, "token", "", "GitHub API token (defaults to GITHUB_TOKEN env var)")
	analyzeGitHubCmd.Flags().StringVar(&ghBaseURL, "base-url", "", "GitHub API base URL override")
	analyzeGitHubCmd.Flags().IntVar(&ghTimeout, "timeout", 10, "Request timeout in seconds")
	analyzeGitHubCmd.Flags().BoolVarP(&ghVerbose, "verbose", "v", false, "Verbose logging")
	analyzeGitHubCmd.Flags().StringVarP(&ghOut, "out", "o", "", "Output file for the analysis artifact")
	analyzeGitHubCmd.Flags().BoolVar(&ghJSON, "json", false, "Print raw JSON instead of the formatted report")

	if err := analyzeGitHubCmd.MarkFlagRequired("username"); err != nil {
		panic(fmt.Sprintf("failed to mark username flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeGitHubCmd)
}

func runAnalyzeGitHub(_ *cobra.Command, _ []string) error {
	token := ghToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	opts := []github.Option{
		github.WithToken(token),
		github.WithTimeout(time.Duration(ghTimeout) * time.Second),
	}
	if ghBaseURL != "" {
		opts = append(opts, github.WithBaseURL(ghBaseURL))
	}

	analyzer := github.NewAnalyzer(github.NewClient(opts...), ghVerbose)
	analysis, err := analyzer.Analyze(context.Background(), ghUsername, time.Now())
	if err != nil {
		return fmt.Errorf("github analysis failed: %w", err)
	}

	if ghJSON || ghOut != "" {
		return writeArtifact(ghOut, analysis)
	}

	observability.NewPrinter(os.Stdout).PrintGitHubAnalysis(&analysis)
	return nil
}
