package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

// profileSchemaPath is the schema the profile input is checked against.
const profileSchemaPath = "schemas/profile.schema.json"

// loadProfile reads a profile JSON file. Schema violations are reported as
// warnings, not errors, so a partially filled profile still scores.
func loadProfile(path string) (types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath(profileSchemaPath)
	if _, statErr := os.Stat(schemaPath); statErr == nil {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: profile failed schema validation: %v\n", err)
		}
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return types.Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	return profile, nil
}

// writeArtifact writes v as indented JSON to path, or to stdout when path
// is empty.
func writeArtifact(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}

// loadJSONFile reads a JSON artifact produced by an earlier command.
func loadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
