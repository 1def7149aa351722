package main

import (
	"fmt"
	"time"

	"github.com/jonathan/career-compass/internal/portfolio"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/spf13/cobra"
)

var analyzePortfolioCmd = &cobra.Command{
	Use:   "analyze-portfolio",
	Short: "Analyze a project portfolio",
	Long:  "Evaluates the profile's projects as a portfolio. By default runs the six-dimension enhanced analysis; with --github-file, the repository-based analysis runs on a stored GitHub artifact instead.",
	RunE:  runAnalyzePortfolio,
}

var (
	portfolioProfilePath string
	portfolioGitHubFile  string
	portfolioBasic       bool
	portfolioOut         string
)

func init() {
	analyzePortfolioCmd.Flags().StringVarP(&portfolioProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	analyzePortfolioCmd.Flags().StringVar(&portfolioGitHubFile, "github-file", "", "Path to a GitHub analysis artifact from analyze-github")
	analyzePortfolioCmd.Flags().BoolVar(&portfolioBasic, "basic", false, "Run the repository-based analysis instead of the enhanced one (requires --github-file)")
	analyzePortfolioCmd.Flags().StringVarP(&portfolioOut, "out", "o", "", "Output file for the analysis artifact")

	if err := analyzePortfolioCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzePortfolioCmd)
}

func runAnalyzePortfolio(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(portfolioProfilePath)
	if err != nil {
		return err
	}

	var githubAnalysis *types.GitHubAnalysis
	if portfolioGitHubFile != "" {
		var analysis types.GitHubAnalysis
		if err := loadJSONFile(portfolioGitHubFile, &analysis); err != nil {
			return err
		}
		githubAnalysis = &analysis
	}

	if portfolioBasic {
		if githubAnalysis == nil {
			return fmt.Errorf("--basic requires --github-file")
		}
		analysis, err := portfolio.Analyze(*githubAnalysis)
		if err != nil {
			return fmt.Errorf("portfolio analysis failed: %w", err)
		}
		return writeArtifact(portfolioOut, analysis)
	}

	result := portfolio.AnalyzeEnhanced(
		profile.Projects, githubAnalysis, profile.Certificates,
		profile.Activities, profile.Learning, time.Now())
	return writeArtifact(portfolioOut, result)
}
