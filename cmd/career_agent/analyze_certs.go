package main

import (
	"fmt"
	"time"

	"github.com/jonathan/career-compass/internal/certs"
	"github.com/spf13/cobra"
)

var analyzeCertsCmd = &cobra.Command{
	Use:   "analyze-certs",
	Short: "Validate and analyze the certificates in a profile",
	Long:  "Validates certificate entries, flags expired and expiring credentials, and scores the certification portfolio.",
	RunE:  runAnalyzeCerts,
}

var (
	certsProfilePath string
	certsOut         string
)

func init() {
	analyzeCertsCmd.Flags().StringVarP(&certsProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	analyzeCertsCmd.Flags().StringVarP(&certsOut, "out", "o", "", "Output file for the report artifact")

	if err := analyzeCertsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCertsCmd)
}

func runAnalyzeCerts(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(certsProfilePath)
	if err != nil {
		return err
	}

	report := certs.Analyze(profile.Certificates, time.Now())
	return writeArtifact(certsOut, report)
}
