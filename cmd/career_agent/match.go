package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank internship categories for a profile",
	Long:  "Scores the profile against every internship category in the catalog and prints the top matches with matched and missing skills.",
	RunE:  runMatch,
}

var (
	matchProfilePath string
	matchLimit       int
	matchOut         string
	matchJSON        bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 5, "Number of matches to show")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Output file for the matches artifact")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print raw JSON instead of the formatted report")

	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchLimit <= 0 {
		return fmt.Errorf("limit must be greater than 0, got %d", matchLimit)
	}

	profile, err := loadProfile(matchProfilePath)
	if err != nil {
		return err
	}

	matches := matching.FindBestMatches(profile, matchLimit)

	if matchJSON || matchOut != "" {
		return writeArtifact(matchOut, matches)
	}

	observability.NewPrinter(os.Stdout).PrintMatches(matches)
	return nil
}
