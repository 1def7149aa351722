package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestRunRoadmap_WritesArtifact(t *testing.T) {
	roadmapProfilePath = writeProfileFile(t, testProfile())
	roadmapCategory = "Software Development"
	roadmapOut = filepath.Join(t.TempDir(), "roadmap.json")
	roadmapJSON = false

	require.NoError(t, runRoadmap(nil, nil))

	var roadmap types.Roadmap
	require.NoError(t, loadJSONFile(roadmapOut, &roadmap))
	assert.Equal(t, "Software Development", roadmap.Category)
	assert.NotEmpty(t, roadmap.Milestones)
}

func TestRunRoadmap_UnknownCategory(t *testing.T) {
	roadmapProfilePath = writeProfileFile(t, testProfile())
	roadmapCategory = "Underwater Basket Weaving"
	roadmapOut = ""
	roadmapJSON = false

	err := runRoadmap(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available:")
}
