// Package llm - generate.go provides the guidance-generation operations:
// resume improvements, project ideas, cover letters, and career/course
// suggestions. Every operation degrades to a fixed local fallback when the
// provider is unavailable or fails, so callers always get usable text.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	maxPromptChars = 4000
	maxRetries     = 2
)

// backoffStep is the linear retry backoff unit, shortened in tests.
var backoffStep = time.Second

// sentinelPrefix marks a generation result that must never be surfaced;
// callers substitute their fallback instead.
const sentinelPrefix = "Error:"

// IsSentinel reports whether a generation result is an error sentinel.
func IsSentinel(result string) bool {
	return strings.HasPrefix(result, sentinelPrefix)
}

// Generator runs guidance generation against an optional LLM client.
// A nil client is valid and routes every operation to its fallback.
type Generator struct {
	client  Client
	verbose bool
}

// NewGenerator creates a Generator. client may be nil.
func NewGenerator(client Client, verbose bool) *Generator {
	return &Generator{client: client, verbose: verbose}
}

// generate calls the provider with retries and linear backoff. It never
// returns an error: failures come back as sentinel strings.
func (g *Generator) generate(ctx context.Context, prompt string, tier ModelTier, asJSON bool) string {
	if g.client == nil {
		return sentinelPrefix + " no LLM client configured"
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if g.verbose {
			log.Printf("[LLM] generating response (attempt %d)", attempt)
		}

		var out string
		var err error
		if asJSON {
			out, err = g.client.GenerateJSON(ctx, prompt, tier)
		} else {
			out, err = g.client.GenerateContent(ctx, prompt, tier)
		}
		if err == nil {
			if strings.TrimSpace(out) == "" {
				return sentinelPrefix + " Empty response from model"
			}
			return out
		}
		lastErr = err

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return fmt.Sprintf("%s %v", sentinelPrefix, ctx.Err())
			case <-time.After(time.Duration(attempt) * backoffStep):
			}
		}
	}

	return fmt.Sprintf("%s All retry attempts failed. Last error: %v", sentinelPrefix, lastErr)
}

// ResumeImprovements returns improvement guidance for a resume against a
// job description.
func (g *Generator) ResumeImprovements(ctx context.Context, resumeText, jdText string, missingSkills []string) string {
	prompt := fmt.Sprintf(`Analyze the resume and job description below, then provide specific, actionable recommendations to improve the resume.

CURRENT RESUME:
%s

JOB DESCRIPTION:
%s

MISSING SKILLS TO ADDRESS:
%s

Provide 5-8 specific resume improvements in this format:
- [Section]: [Specific improvement with example]

Focus on:
1. Adding relevant keywords from the job description
2. Quantifying achievements with numbers/percentages
3. Highlighting transferable skills
4. Addressing missing skills through existing experience
5. Improving action verbs and impact statements

Resume Improvements:`,
		truncatePrompt(resumeText, 2000),
		truncatePrompt(jdText, 2000),
		strings.Join(firstStrings(missingSkills, 10), ", "))

	result := g.generate(ctx, prompt, TierStandard, false)
	if IsSentinel(result) {
		return resumeImprovementsFallback(jdText, missingSkills)
	}
	return result
}

// ProjectIdeas returns portfolio project ideas tailored to a resume.
func (g *Generator) ProjectIdeas(ctx context.Context, resumeText string, knownSkills []string) string {
	prompt := fmt.Sprintf(`Propose 3-5 high-impact, realistic project ideas tailored to the candidate.

Candidate Background:
RESUME TEXT:
%s

KNOWN SKILLS:
%s

Requirements:
- Ideas must solve real problems (not toy demos)
- Balance ambition with feasibility (2-6 weeks per project)
- Each idea must be technically specific and implementation-ready
- Favor measurable outcomes and evaluation metrics
- Prefer modern, in-demand stacks aligned with the candidate's skills

Output Format (Markdown):
For each project, provide:
1) Title
2) One-line value proposition
3) Target users and real-world use cases
4) Tech stack (primary + optional alternatives)
5) Step-by-step implementation plan (5-10 concrete steps)
6) Data sources/APIs
7) Evaluation metrics and acceptance criteria
8) Stretch goals (2-3 scoped enhancements)
9) Resume bullets (2-3 STAR-format achievements)
10) Suggested timeline (week-by-week)
11) Suggested repo structure
12) Demo plan

Generate the projects now.`,
		truncatePrompt(resumeText, 2000),
		strings.Join(knownSkills, ", "))

	result := g.generate(ctx, prompt, TierAdvanced, false)
	if IsSentinel(result) {
		return projectIdeasFallback
	}
	return result
}

// CoverLetter returns a short cover letter tailored to a job description.
func (g *Generator) CoverLetter(ctx context.Context, resumeText, jdText string, knownSkills []string) string {
	prompt := fmt.Sprintf(`Draft a short, role-aligned cover letter (200-300 words) tailored to the given job description, grounded in the candidate's resume.

RESUME:
%s

JOB DESCRIPTION:
%s

KNOWN SKILLS:
%s

Requirements:
- Use a professional, confident tone
- Reflect 2-3 specific JD requirements and map them to candidate strengths
- Include one brief accomplishment with measurable impact if present
- Avoid buzzwords and cliches
- End with a polite CTA to continue the conversation

Output: Plain text cover letter.`,
		truncatePrompt(resumeText, 2000),
		truncatePrompt(jdText, 2000),
		strings.Join(knownSkills, ", "))

	result := g.generate(ctx, prompt, TierStandard, false)
	if IsSentinel(result) {
		return coverLetterFallback
	}
	return result
}

type careersEnvelope struct {
	Careers []types.CareerSuggestion `json:"careers"`
}

// CareerSuggestions returns 4-6 recommended career paths for a profile.
// Provider failures and malformed JSON fall back to the fixed suggestions.
func (g *Generator) CareerSuggestions(ctx context.Context, profile types.Profile) []types.CareerSuggestion {
	currentSkills := "None"
	if len(profile.Skills) > 0 {
		currentSkills = strings.Join(profile.Skills, ", ")
	}

	prompt := fmt.Sprintf(`Generate 4-6 personalized career recommendations in JSON format.

USER PROFILE:
Current Skills: %s
Projects: %d
Certifications: %d

Requirements:
- Suggest careers matching their profile
- Indian market salary ranges (₹1-20 LPA)
- Include learning paths
- Mix entry-level and growth positions

Output ONLY valid JSON in this exact format:
{
  "careers": [
    {
      "title": "Career Name",
      "description": "What this career involves",
      "skills_needed": ["Skill1", "Skill2"],
      "learning_path": "How to get started",
      "salary_range": "₹X-Y LPA",
      "growth": "High/Medium/Stable",
      "match_reason": "Why this fits",
      "entry_level": "Entry/Mid/Senior",
      "time_to_start": "X-Y months"
    }
  ]
}

Generate exactly 4-6 careers. Keep descriptions short and complete. Output ONLY the JSON, no additional text.`,
		currentSkills, len(profile.Projects), len(profile.Certificates))

	result := g.generate(ctx, prompt, TierStandard, true)
	if IsSentinel(result) {
		return careerSuggestionsFallback(profile)
	}

	var envelope careersEnvelope
	if err := json.Unmarshal([]byte(CleanJSONBlock(result)), &envelope); err != nil {
		if g.verbose {
			log.Printf("[LLM] career suggestion JSON parse failed: %v", err)
		}
		return careerSuggestionsFallback(profile)
	}

	careers := make([]types.CareerSuggestion, 0, len(envelope.Careers))
	for _, career := range envelope.Careers {
		if career.Title == "" {
			continue
		}
		careers = append(careers, withCareerDefaults(career))
	}
	if len(careers) == 0 {
		return careerSuggestionsFallback(profile)
	}
	return careers
}

type coursesEnvelope struct {
	RecommendedCourses []types.CourseSuggestion `json:"recommended_courses"`
	LearningPath       string                   `json:"learning_path"`
}

// CourseSuggestions returns recommended courses for the given skills.
func (g *Generator) CourseSuggestions(ctx context.Context, skillsToLearn []string) []types.CourseSuggestion {
	prompt := fmt.Sprintf(`Recommend the best online courses in JSON format.

SKILLS TO LEARN: %s

Requirements:
- Recommend 3-5 best courses for these skills
- Consider price, rating, and platform reputation
- Mix free and paid options
- Include learning path suggestions

Output ONLY valid JSON in this exact format:
{
  "recommended_courses": [
    {
      "title": "Course Title",
      "platform": "Platform Name",
      "price": "Price",
      "rating": "Rating",
      "url": "Course URL",
      "why_recommended": "Why this course is good",
      "learning_order": 1
    }
  ],
  "learning_path": "Suggested learning sequence"
}

Output ONLY the JSON, no additional text.`,
		strings.Join(skillsToLearn, ", "))

	result := g.generate(ctx, prompt, TierLite, true)
	if IsSentinel(result) {
		return courseSuggestionsFallback(skillsToLearn)
	}

	var envelope coursesEnvelope
	if err := json.Unmarshal([]byte(CleanJSONBlock(result)), &envelope); err != nil {
		if g.verbose {
			log.Printf("[LLM] course suggestion JSON parse failed: %v", err)
		}
		return courseSuggestionsFallback(skillsToLearn)
	}
	if len(envelope.RecommendedCourses) == 0 {
		return courseSuggestionsFallback(skillsToLearn)
	}

	courses := make([]types.CourseSuggestion, 0, len(envelope.RecommendedCourses))
	for i, course := range envelope.RecommendedCourses {
		courses = append(courses, withCourseDefaults(course, i+1, skillsToLearn))
	}
	return courses
}

func withCareerDefaults(career types.CareerSuggestion) types.CareerSuggestion {
	if career.Description == "" {
		career.Description = "No description available"
	}
	if career.LearningPath == "" {
		career.LearningPath = "No learning path specified"
	}
	if career.SalaryRange == "" {
		career.SalaryRange = "₹2-8 LPA"
	}
	if career.Growth == "" {
		career.Growth = "Medium"
	}
	if career.MatchReason == "" {
		career.MatchReason = "Good fit based on your profile"
	}
	if career.EntryLevel == "" {
		career.EntryLevel = "Entry"
	}
	if career.TimeToStart == "" {
		career.TimeToStart = "3-6 months"
	}
	return career
}

func withCourseDefaults(course types.CourseSuggestion, order int, skillsToLearn []string) types.CourseSuggestion {
	if course.Title == "" {
		course.Title = "Unknown Course"
	}
	if course.Platform == "" {
		course.Platform = "Unknown Platform"
	}
	if course.Price == "" {
		course.Price = "Free/Paid"
	}
	if course.Rating == "" {
		course.Rating = "4.5"
	}
	if course.URL == "" {
		course.URL = "#"
	}
	if course.WhyRecommended == "" {
		course.WhyRecommended = "Good course for learning"
	}
	if course.LearningOrder == 0 {
		course.LearningOrder = order
	}
	course.Duration = "4-8 weeks"
	course.SkillsCovered = firstStrings(skillsToLearn, 3)
	return course
}

func truncatePrompt(text string, limit int) string {
	if limit <= 0 {
		limit = maxPromptChars
	}
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "\n\n...[truncated]"
}

func firstStrings(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
