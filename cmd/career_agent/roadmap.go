package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a skill-gap roadmap toward one internship category",
	Long:  "Analyzes the gap between the profile and a target internship category and produces prioritized milestones.",
	RunE:  runRoadmap,
}

var (
	roadmapProfilePath string
	roadmapCategory    string
	roadmapOut         string
	roadmapJSON        bool
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	roadmapCmd.Flags().StringVarP(&roadmapCategory, "category", "c", "", "Target internship category (required)")
	roadmapCmd.Flags().StringVarP(&roadmapOut, "out", "o", "", "Output file for the roadmap artifact")
	roadmapCmd.Flags().BoolVar(&roadmapJSON, "json", false, "Print raw JSON instead of the formatted report")

	if err := roadmapCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := roadmapCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(roadmapProfilePath)
	if err != nil {
		return err
	}

	roadmap, err := matching.BuildRoadmap(profile, roadmapCategory)
	if err != nil {
		var unknown *matching.ErrUnknownCategory
		if errors.As(err, &unknown) {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(matching.CategoryNames(), ", "))
		}
		return err
	}

	if roadmapJSON || roadmapOut != "" {
		return writeArtifact(roadmapOut, roadmap)
	}

	observability.NewPrinter(os.Stdout).PrintRoadmap(&roadmap)
	return nil
}
