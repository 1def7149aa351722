package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/github"
	"github.com/jonathan/career-compass/internal/integration"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/spf13/cobra"
)

var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Build a unified profile from every configured data source",
	Long:  "Merges the base profile with GitHub analysis and portfolio-website signals into a unified profile with deduplicated skills, per-source status, and completeness. Unreachable sources are skipped with a warning, never fatal.",
	RunE:  runIntegrate,
}

var (
	integrateProfilePath string
	integrateConfigPath  string
	integrateWebsite     string
	integrateUseBrowser  bool
	integrateVerbose     bool
	integrateOut         string
	integrateJSON        bool
)

func init() {
	integrateCmd.Flags().StringVarP(&integrateProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	integrateCmd.Flags().StringVar(&integrateConfigPath, "config", "", "Path to config JSON file")
	integrateCmd.Flags().StringVarP(&integrateWebsite, "website", "w", "", "Portfolio website URL (overrides config)")
	integrateCmd.Flags().BoolVar(&integrateUseBrowser, "use-browser", false, "Render JavaScript-heavy sites in a headless browser")
	integrateCmd.Flags().BoolVarP(&integrateVerbose, "verbose", "v", false, "Verbose logging")
	integrateCmd.Flags().StringVarP(&integrateOut, "out", "o", "", "Output file for the unified profile artifact")
	integrateCmd.Flags().BoolVar(&integrateJSON, "json", false, "Print raw JSON instead of the formatted report")

	if err := integrateCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(integrateCmd)
}

func runIntegrate(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if integrateConfigPath != "" {
		loaded, err := config.LoadConfig(integrateConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	profile, err := loadProfile(integrateProfilePath)
	if err != nil {
		return err
	}

	website := integrateWebsite
	if website == "" {
		website = cfg.Website
	}

	ctx := context.Background()
	now := time.Now()

	// GitHub source. Failures degrade to a missing source.
	var githubAnalysis *types.GitHubAnalysis
	if profile.GitHubUsername != "" {
		opts := []github.Option{
			github.WithToken(os.Getenv("GITHUB_TOKEN")),
			github.WithTimeout(time.Duration(cfg.GitHubTimeoutSecs) * time.Second),
		}
		if cfg.GitHubBaseURL != "" {
			opts = append(opts, github.WithBaseURL(cfg.GitHubBaseURL))
		}
		analyzer := github.NewAnalyzer(github.NewClient(opts...), integrateVerbose)
		analysis, err := analyzer.Analyze(ctx, profile.GitHubUsername, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: GitHub source skipped: %v\n", err)
		} else {
			githubAnalysis = &analysis
		}
	}

	// Website source. Same degradation rule.
	var websiteAnalysis *types.WebsiteAnalysis
	var websiteText string
	if website != "" {
		fetcher := fetch.NewCachedFetcher(nil, &fetch.CachedFetcherConfig{
			CacheTTL:   time.Duration(cfg.CacheTTLHours) * time.Hour,
			UseBrowser: integrateUseBrowser || cfg.UseBrowser,
			Verbose:    integrateVerbose,
		})
		integrator := integration.NewIntegrator(fetcher, integrateVerbose)
		analysis, text, err := integrator.AnalyzeWebsite(ctx, website)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: website source skipped: %v\n", err)
		} else {
			websiteAnalysis = analysis
			websiteText = text
		}
	}

	unified := integration.BuildUnifiedProfile(profile, githubAnalysis, websiteAnalysis, websiteText, now)

	if integrateJSON || integrateOut != "" {
		return writeArtifact(integrateOut, unified)
	}

	observability.NewPrinter(os.Stdout).PrintUnifiedProfile(&unified)
	return nil
}
