package main

import (
	"fmt"
	"time"

	"github.com/jonathan/career-compass/internal/activities"
	"github.com/spf13/cobra"
)

var analyzeActivitiesCmd = &cobra.Command{
	Use:   "analyze-activities",
	Short: "Analyze the extracurricular activities in a profile",
	Long:  "Scores extracurricular activities for leadership, skill development, and career relevance.",
	RunE:  runAnalyzeActivities,
}

var (
	activitiesProfilePath string
	activitiesOut         string
)

func init() {
	analyzeActivitiesCmd.Flags().StringVarP(&activitiesProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	analyzeActivitiesCmd.Flags().StringVarP(&activitiesOut, "out", "o", "", "Output file for the report artifact")

	if err := analyzeActivitiesCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeActivitiesCmd)
}

func runAnalyzeActivities(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(activitiesProfilePath)
	if err != nil {
		return err
	}

	report := activities.Analyze(profile.Activities, time.Now())
	return writeArtifact(activitiesOut, report)
}
