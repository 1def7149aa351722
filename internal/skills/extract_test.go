package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_DirectMentions(t *testing.T) {
	text := "Skills: Python, JavaScript, SQL, Docker and Kubernetes."
	got := ExtractSkills(text)
	assert.Equal(t, []string{"Docker", "JavaScript", "Kubernetes", "Python", "SQL"}, got)
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	got := ExtractSkills("PYTHON and docker")
	assert.Equal(t, []string{"Docker", "Python"}, got)
}

func TestExtractSkills_SpecialCharacterNames(t *testing.T) {
	// the + and # boundaries must not split C++ or C# into a bare C match
	got := ExtractSkills("C++ and C# development")
	assert.Equal(t, []string{"C#", "C++"}, got)

	got = ExtractSkills("built a service in node.js")
	assert.Equal(t, []string{"Node.js"}, got)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	// "java" inside "javascript" is not a Java mention
	got := ExtractSkills("javascript only")
	assert.Equal(t, []string{"JavaScript"}, got)
}

func TestExtractSkills_ContextPhrases(t *testing.T) {
	got := ExtractSkills("proficient in terraform")
	assert.Contains(t, got, "Terraform")

	got = ExtractSkills("worked with airflow pipelines")
	assert.Contains(t, got, "Airflow")
}

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("   \n\t"))
	assert.NotNil(t, ExtractSkills(""))
}

func TestSoftSkillClassification(t *testing.T) {
	assert.True(t, IsSoftSkill("Leadership"))
	assert.True(t, IsSoftSkill("communication"))
	assert.False(t, IsSoftSkill("Docker"))

	assert.True(t, IsTechnicalSkill("Docker"))
	assert.False(t, IsTechnicalSkill("Teamwork"))
	// unknown names default to technical
	assert.True(t, IsTechnicalSkill("Zig"))
}
