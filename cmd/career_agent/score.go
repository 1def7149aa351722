package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/scoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the holistic career score for a profile",
	Long:  "Computes the 850-point holistic score across resume, GitHub, projects, certifications, activities, learning, and interview categories.",
	RunE:  runScore,
}

var (
	scoreProfilePath string
	scoreOut         string
	scoreJSON        bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Output file for the score artifact")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print raw JSON instead of the formatted report")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(scoreProfilePath)
	if err != nil {
		return err
	}

	score := scoring.Compute(profile, time.Now())

	if scoreJSON || scoreOut != "" {
		return writeArtifact(scoreOut, score)
	}

	observability.NewPrinter(os.Stdout).PrintHolisticScore(&score)
	return nil
}
