// Package activities analyzes extracurricular involvement: per-activity
// impact scoring, leadership detection, and portfolio-level aggregation.
package activities

// activityType describes one known activity kind with its scoring weight,
// implied skills, and the achievement keywords that signal real impact.
type activityType struct {
	weight         float64
	skills         []string
	impactKeywords []string
}

var activityTypes = map[string]activityType{
	"Hackathon": {1.5,
		[]string{"Problem Solving", "Teamwork", "Time Management", "Innovation"},
		[]string{"winner", "finalist", "award", "prize", "top", "champion"}},
	"Club/Organization": {1.2,
		[]string{"Leadership", "Teamwork", "Organization", "Communication"},
		[]string{"president", "lead", "founder", "organizer", "coordinator"}},
	"Freelancing": {1.4,
		[]string{"Client Management", "Self-motivation", "Business", "Professional Communication"},
		[]string{"client", "project", "delivered", "revenue", "satisfied"}},
	"Volunteering": {1.1,
		[]string{"Empathy", "Social Responsibility", "Teamwork", "Communication"},
		[]string{"impact", "community", "helped", "served", "benefited"}},
	"Open Source": {1.3,
		[]string{"Collaboration", "Code Review", "Version Control", "Technical Writing"},
		[]string{"contributor", "maintainer", "merged", "pr", "commits"}},
	"Research": {1.4,
		[]string{"Research", "Analysis", "Critical Thinking", "Documentation"},
		[]string{"published", "paper", "findings", "study", "research"}},
	"Competition": {1.3,
		[]string{"Competitive Spirit", "Excellence", "Preparation", "Performance"},
		[]string{"winner", "rank", "medal", "award", "champion"}},
	"Workshop/Seminar": {1.0,
		[]string{"Learning", "Networking", "Knowledge Sharing", "Professional Development"},
		[]string{"speaker", "presenter", "organized", "attended", "participated"}},
	"Mentoring": {1.2,
		[]string{"Teaching", "Patience", "Communication", "Leadership"},
		[]string{"mentored", "guided", "taught", "helped", "trained"}},
	"Content Creation": {1.1,
		[]string{"Communication", "Creativity", "Marketing", "Technical Writing"},
		[]string{"blog", "video", "tutorial", "views", "followers"}},
}

// defaultActivityType covers unrecognized activity kinds.
var defaultActivityType = activityType{weight: 1.0}

func typeInfo(name string) activityType {
	if t, ok := activityTypes[name]; ok {
		return t
	}
	return defaultActivityType
}

// Leadership levels ordered from highest to lowest. Detection scans role
// and description text; the first matching level wins.
var leadershipLevels = []struct {
	level    string
	keywords []string
}{
	{"Executive", []string{"president", "ceo", "founder", "director", "head"}},
	{"Lead", []string{"lead", "manager", "coordinator", "organizer", "captain"}},
	{"Core Team", []string{"core", "committee", "board", "team lead"}},
	{"Active Member", []string{"member", "volunteer", "contributor", "participant"}},
}

// leadershipMultipliers scale an activity's base impact by seniority.
var leadershipMultipliers = map[string]float64{
	"Executive":     2.0,
	"Lead":          1.5,
	"Core Team":     1.3,
	"Active Member": 1.0,
	"Participant":   0.8,
}
