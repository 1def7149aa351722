package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring, matching, GitHub and portfolio analysis, and guidance generation.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveUseBrowser bool
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config, default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config JSON file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render JavaScript-heavy sites in a headless browser")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Verbose logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}

	// Env vars take precedence over config for secrets.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = cfg.GitHubToken
	}

	srv, err := server.New(server.Config{
		Port:          port,
		GitHubBaseURL: cfg.GitHubBaseURL,
		GitHubToken:   token,
		APIKey:        apiKey,
		UseBrowser:    serveUseBrowser || cfg.UseBrowser,
		Verbose:       serveVerbose || cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
