package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/skills"
	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score a resume against a job description",
	Long:  "Extracts skills from the resume and the job description, then reports the match score with matched, missing, and extra skills.",
	RunE:  runATS,
}

var (
	atsResumeFile string
	atsJDFile     string
	atsOut        string
)

func init() {
	atsCmd.Flags().StringVarP(&atsResumeFile, "resume", "r", "", "Path to resume text file (required)")
	atsCmd.Flags().StringVarP(&atsJDFile, "jd", "j", "", "Path to job description text file (required)")
	atsCmd.Flags().StringVarP(&atsOut, "out", "o", "", "Output file for the match artifact")

	if err := atsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := atsCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}

	rootCmd.AddCommand(atsCmd)
}

func runATS(_ *cobra.Command, _ []string) error {
	resumeText, err := os.ReadFile(atsResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jdText, err := os.ReadFile(atsJDFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	match := skills.MatchResume(string(resumeText), string(jdText))
	return writeArtifact(atsOut, match)
}
