package skills

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":                "Go",
	"go lang":               "Go",
	"javascript":            "JavaScript",
	"js":                    "JavaScript",
	"typescript":            "TypeScript",
	"ts":                    "TypeScript",
	"k8s":                   "Kubernetes",
	"kubernetes":            "Kubernetes",
	"react.js":              "React",
	"reactjs":               "React",
	"vue.js":                "Vue",
	"vuejs":                 "Vue",
	"node":                  "Node.js",
	"node.js":               "Node.js",
	"nodejs":                "Node.js",
	"postgres":              "PostgreSQL",
	"postgresql":            "PostgreSQL",
	"ml":                    "Machine Learning",
	"machine learning":      "Machine Learning",
	"dl":                    "Deep Learning",
	"sklearn":               "Scikit-learn",
	"scikit learn":          "Scikit-learn",
	"amazon web services":   "AWS",
	"google cloud":          "GCP",
	"google cloud platform": "GCP",
	"c sharp":               "C#",
	"c plus plus":           "C++",
	"cpp":                   "C++",
}

// canonical holds the catalog keyed by lowercase name so extraction and
// normalization agree on casing.
var canonical = func() map[string]string {
	m := make(map[string]string, len(CommonSkills))
	for _, s := range CommonSkills {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)
	lower := strings.ToLower(normalized)

	if c, ok := skillNormalizations[lower]; ok {
		return c
	}
	if c, ok := canonical[lower]; ok {
		return c
	}

	// Mixed case already, keep as written
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// Single lowercase or uppercase word, capitalize first letter only.
	// Short all-caps tokens are likely acronyms and stay as-is.
	if normalized == strings.ToUpper(normalized) && len(normalized) <= 4 {
		return normalized
	}
	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	return normalized
}

// NormalizeSkills normalizes and deduplicates a skill list, preserving the
// first-seen order.
func NormalizeSkills(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		c := NormalizeSkillName(n)
		if c == "" || seen[strings.ToLower(c)] {
			continue
		}
		seen[strings.ToLower(c)] = true
		out = append(out, c)
	}
	return out
}
