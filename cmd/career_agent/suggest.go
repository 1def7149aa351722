package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate LLM-backed career guidance",
	Long:  "Generates one kind of guidance: resume (improvements), projects (ideas), cover_letter (draft), careers (suggestions), or courses (recommendations). Without a GEMINI_API_KEY the command serves fixed fallback guidance.",
	RunE:  runSuggest,
}

var (
	suggestKind        string
	suggestProfilePath string
	suggestResumeFile  string
	suggestJDFile      string
	suggestSkills      []string
	suggestVerbose     bool
	suggestOut         string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestKind, "kind", "k", "", "Guidance kind: resume, projects, cover_letter, careers, courses (required)")
	suggestCmd.Flags().StringVarP(&suggestProfilePath, "profile", "p", "", "Path to profile JSON file")
	suggestCmd.Flags().StringVarP(&suggestResumeFile, "resume", "r", "", "Path to resume text file")
	suggestCmd.Flags().StringVarP(&suggestJDFile, "jd", "j", "", "Path to job description text file")
	suggestCmd.Flags().StringSliceVar(&suggestSkills, "skills", nil, "Skills to learn (for kind courses)")
	suggestCmd.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "Verbose logging")
	suggestCmd.Flags().StringVarP(&suggestOut, "out", "o", "", "Output file for the guidance artifact")

	if err := suggestCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

// newGenerator builds the guidance generator, degrading to fallbacks when
// no provider key is configured or the client cannot be created.
func newGenerator(ctx context.Context, verbose bool) *llm.Generator {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set, serving fallback guidance")
		return llm.NewGenerator(nil, verbose)
	}

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable, serving fallback guidance: %v\n", err)
		return llm.NewGenerator(nil, verbose)
	}
	return llm.NewGenerator(client, verbose)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	var profile types.Profile
	if suggestProfilePath != "" {
		loaded, err := loadProfile(suggestProfilePath)
		if err != nil {
			return err
		}
		profile = loaded
	}

	resumeText := profile.ResumeText
	if suggestResumeFile != "" {
		data, err := os.ReadFile(suggestResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resumeText = string(data)
	}

	var jdText string
	if suggestJDFile != "" {
		data, err := os.ReadFile(suggestJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jdText = string(data)
	}

	generator := newGenerator(ctx, suggestVerbose)

	switch suggestKind {
	case "resume":
		if resumeText == "" || jdText == "" {
			return fmt.Errorf("kind resume requires resume text (--resume or profile) and --jd")
		}
		match := skills.MatchResume(resumeText, jdText)
		content := generator.ResumeImprovements(ctx, resumeText, jdText, match.MissingSkills)
		return writeArtifact(suggestOut, map[string]string{"kind": suggestKind, "content": content})

	case "projects":
		if resumeText == "" {
			return fmt.Errorf("kind projects requires resume text (--resume or profile)")
		}
		content := generator.ProjectIdeas(ctx, resumeText, profile.Skills)
		return writeArtifact(suggestOut, map[string]string{"kind": suggestKind, "content": content})

	case "cover_letter":
		if resumeText == "" || jdText == "" {
			return fmt.Errorf("kind cover_letter requires resume text (--resume or profile) and --jd")
		}
		content := generator.CoverLetter(ctx, resumeText, jdText, profile.Skills)
		return writeArtifact(suggestOut, map[string]string{"kind": suggestKind, "content": content})

	case "careers":
		if suggestProfilePath == "" {
			return fmt.Errorf("kind careers requires --profile")
		}
		suggestions := generator.CareerSuggestions(ctx, profile)
		return writeArtifact(suggestOut, map[string]any{"kind": suggestKind, "suggestions": suggestions})

	case "courses":
		if len(suggestSkills) == 0 {
			return fmt.Errorf("kind courses requires --skills")
		}
		suggestions := generator.CourseSuggestions(ctx, suggestSkills)
		return writeArtifact(suggestOut, map[string]any{"kind": suggestKind, "suggestions": suggestions})

	default:
		return fmt.Errorf("unknown kind %q (expected resume, projects, cover_letter, careers, or courses)", suggestKind)
	}
}
