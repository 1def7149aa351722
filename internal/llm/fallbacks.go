// Package llm - fallbacks.go holds the fixed local fallbacks used when the
// provider is unavailable. The texts are deterministic so degraded output
// stays stable across runs.
package llm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const projectIdeasFallback = "### Project Ideas (Fast Fallback)\n" +
	"1. Metrics Dashboard: Build a small app that ingests CSV/JSON and renders KPI charts.\n" +
	"2. Data ETL Mini-Pipeline: Extract from an API, clean the data, load to SQLite, expose a simple API.\n" +
	"3. Resume Keyword Highlighter: Highlight JD-aligned keywords in a resume with a web UI.\n"

const coverLetterFallback = "Dear Hiring Team,\n\n" +
	"I'm excited to apply for this role. My background aligns with the position's core requirements, and I've delivered measurable results in related projects." +
	" I'm particularly drawn to your focus on impact and quality. I'd welcome the chance to discuss how I can contribute.\n\n" +
	"Best regards,\nYour Name"

var jdWordPattern = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)

var jdBuzzwords = map[string]bool{
	"experience": true, "skills": true, "required": true,
	"preferred": true, "years": true, "team": true, "work": true,
}

// resumeImprovementsFallback builds improvement guidance from the job
// description keywords and missing skills, without the provider.
func resumeImprovementsFallback(jdText string, missingSkills []string) string {
	topMissing := dedupeTrimmed(missingSkills, 8)
	jdKeywords := extractJDKeywords(jdText, 10)

	improvements := []string{
		"### AI-Powered Resume Enhancement Recommendations",
		"\n**Immediate Action Items:**",
		"\n- **Professional Summary**: Add a compelling 2-3 line summary highlighting your value proposition",
		"- **Keywords Optimization**: Integrate job-specific terms naturally throughout your resume",
		"- **Quantify Achievements**: Add metrics (percentages, dollar amounts, time saved) to your accomplishments",
		"- **Skills Section**: Create a dedicated technical skills section with relevant technologies",
		"- **Action Verbs**: Start each bullet point with strong action verbs (Led, Developed, Optimized, Implemented)",
	}

	if len(jdKeywords) > 0 {
		improvements = append(improvements,
			"\n**Job-Specific Keywords to Include:**",
			fmt.Sprintf("\n- Integrate these terms: %s", strings.Join(firstStrings(jdKeywords, 6), ", ")),
			"- Use them naturally in your experience descriptions and skills section")
	}

	if len(topMissing) > 0 {
		improvements = append(improvements,
			"\n**Address Missing Skills:**",
			"- **Highlight Transferable Experience**: Show how your current experience relates to required skills")
		for _, skill := range firstStrings(topMissing, 5) {
			improvements = append(improvements,
				fmt.Sprintf("  - For %s: Describe any related projects, coursework, or self-study", skill))
		}
	}

	improvements = append(improvements,
		"\n**Professional Formatting:**",
		"- **Consistent Structure**: Use the same format for each role (Title, Company, Dates, Bullets)",
		"- **Bullet Point Optimization**: Limit to 3-5 bullets per role, prioritize most relevant accomplishments",
		"- **Length Management**: Keep to 1-2 pages, focus on most recent and relevant experience",
		"\n**ATS Optimization:**",
		"- **Standard Sections**: Use clear headings (Experience, Education, Skills, Projects)",
		"- **Keyword Density**: Ensure important terms appear 2-3 times throughout the document",
		"- **Simple Formatting**: Avoid complex layouts, stick to standard fonts and bullet points",
		"\n**Next Steps**: Review each section against these recommendations and update 2-3 bullets to better showcase your fit for this specific role.")

	return strings.Join(improvements, "\n")
}

// extractJDKeywords pulls distinctive words from the job description,
// skipping generic posting vocabulary. First-seen order is preserved.
func extractJDKeywords(jdText string, limit int) []string {
	if jdText == "" {
		return nil
	}

	seen := map[string]bool{}
	keywords := []string{}
	for _, word := range jdWordPattern.FindAllString(strings.ToLower(jdText), -1) {
		if jdBuzzwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == limit {
			break
		}
	}
	return keywords
}

var careerTechMarkers = []string{
	"python", "java", "javascript", "sql", "go", "react", "programming",
	"data science", "web development", "machine learning", "cybersecurity",
	"cloud computing",
}

// careerSuggestionsFallback returns fixed career suggestions: technical
// profiles get developer and analyst tracks, everyone else gets a general
// entry-level track.
func careerSuggestionsFallback(profile types.Profile) []types.CareerSuggestion {
	hasTechInterest := false
	for _, skill := range profile.Skills {
		lower := strings.ToLower(skill)
		for _, marker := range careerTechMarkers {
			if lower == marker {
				hasTechInterest = true
			}
		}
	}

	if hasTechInterest {
		return []types.CareerSuggestion{
			{
				Title:        "Software Developer",
				Description:  "Build applications and software solutions",
				SkillsNeeded: []string{"Programming", "Problem Solving", "Logic"},
				LearningPath: "Start with Python or JavaScript basics",
				SalaryRange:  "₹3-15 LPA",
				Growth:       "High",
				MatchReason:  "Matches your technical interests and problem-solving skills",
				EntryLevel:   "Entry",
				TimeToStart:  "3-6 months",
			},
			{
				Title:        "Data Analyst",
				Description:  "Analyze data to help businesses make decisions",
				SkillsNeeded: []string{"Statistics", "Excel", "SQL", "Python"},
				LearningPath: "Learn Excel, SQL, and basic Python",
				SalaryRange:  "₹2-12 LPA",
				Growth:       "Very High",
				MatchReason:  "Great for analytical minds and data enthusiasts",
				EntryLevel:   "Entry",
				TimeToStart:  "2-4 months",
			},
		}
	}

	return []types.CareerSuggestion{
		{
			Title:        "Customer Service Representative",
			Description:  "Help customers with their needs and inquiries",
			SkillsNeeded: []string{"Communication", "Patience", "Problem Solving"},
			LearningPath: "Develop communication skills and learn customer service tools",
			SalaryRange:  "₹1.5-4 LPA",
			Growth:       "Stable",
			MatchReason:  "Good entry-level position for developing professional skills",
			EntryLevel:   "Entry",
			TimeToStart:  "1-2 months",
		},
	}
}

// courseSuggestionsFallback returns two fixed courses per requested skill,
// capped at five total.
func courseSuggestionsFallback(skillsToLearn []string) []types.CourseSuggestion {
	courses := []types.CourseSuggestion{}
	for _, skill := range skillsToLearn {
		candidates := []types.CourseSuggestion{
			{
				Title:    fmt.Sprintf("%s Fundamentals", skill),
				Platform: "Coursera",
				Price:    "Free",
				Rating:   "4.6",
				URL:      "#",
			},
			{
				Title:    fmt.Sprintf("%s Projects Bootcamp", skill),
				Platform: "Udemy",
				Price:    "Paid",
				Rating:   "4.5",
				URL:      "#",
			},
		}
		for _, course := range candidates {
			if len(courses) == 5 {
				return courses
			}
			course.WhyRecommended = fmt.Sprintf("Recommended for learning %s", skill)
			course.LearningOrder = len(courses) + 1
			course.Duration = "4-8 weeks"
			course.SkillsCovered = []string{skill}
			courses = append(courses, course)
		}
	}
	return courses
}

func dedupeTrimmed(items []string, limit int) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
		if len(out) == limit {
			break
		}
	}
	return out
}
