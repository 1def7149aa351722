package skills

import (
	"regexp"
	"sort"
	"strings"
)

// skillPatterns holds one word-boundary pattern per catalog entry,
// compiled once at init.
var skillPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(CommonSkills))
	for _, skill := range CommonSkills {
		escaped := regexp.QuoteMeta(strings.ToLower(skill))
		patterns[skill] = regexp.MustCompile(`(^|[^a-z0-9+#.])` + escaped + `($|[^a-z0-9+#])`)
	}
	return patterns
}()

// contextPatterns capture skill mentions introduced by phrases like
// "proficient in X" or "built with X".
var contextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:experienced?|proficient|skilled|knowledge|expertise|familiar)\s+(?:in|with|of)\s+([a-z0-9+#.\-\s]+)`),
	regexp.MustCompile(`(?:using|worked with|developed with|built with|implemented)\s+([a-z0-9+#.\-\s]+)`),
}

// ExtractSkills finds catalog skills mentioned in free text. Matching is
// case-insensitive whole-word containment plus context-phrase capture.
// The result is deduplicated and sorted.
func ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make(map[string]bool)

	for skill, pattern := range skillPatterns {
		if pattern.MatchString(lower) {
			found[skill] = true
		}
	}

	for _, pattern := range contextPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			captured := strings.TrimSpace(m[1])
			for _, skill := range CommonSkills {
				if strings.Contains(captured, strings.ToLower(skill)) {
					found[skill] = true
				}
			}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
