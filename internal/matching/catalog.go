// Package matching ranks a candidate profile against a fixed catalog of
// internship categories and builds preparation roadmaps for the gaps.
package matching

import "github.com/jonathan/career-compass/internal/types"

// Catalog is the fixed internship category registry. Order matters: ranked
// results keep this order for equal scores. Matching against required and
// preferred skills is exact (case-insensitive); keyword matching against
// project and certificate text is substring containment.
var Catalog = []types.InternshipCategory{
	{
		Name:            "Software Development",
		RequiredSkills:  []string{"Programming", "Problem Solving", "Data Structures"},
		PreferredSkills: []string{"Python", "Java", "C++", "JavaScript", "Git"},
		Keywords:        []string{"software", "developer", "programming", "coding", "backend", "frontend"},
		StipendRange:    "₹10,000-30,000/month",
		Duration:        "2-6 months",
	},
	{
		Name:            "Data Science/Analytics",
		RequiredSkills:  []string{"Python", "Statistics", "Data Analysis"},
		PreferredSkills: []string{"Machine Learning", "SQL", "Pandas", "NumPy", "Visualization"},
		Keywords:        []string{"data", "analytics", "machine learning", "ai", "ml", "statistics"},
		StipendRange:    "₹15,000-35,000/month",
		Duration:        "3-6 months",
	},
	{
		Name:            "Web Development",
		RequiredSkills:  []string{"HTML", "CSS", "JavaScript"},
		PreferredSkills: []string{"React", "Node.js", "MongoDB", "Express", "REST API"},
		Keywords:        []string{"web", "frontend", "backend", "fullstack", "react", "angular"},
		StipendRange:    "₹8,000-25,000/month",
		Duration:        "2-4 months",
	},
	{
		Name:            "Mobile App Development",
		RequiredSkills:  []string{"Programming", "Mobile Development"},
		PreferredSkills: []string{"Android", "iOS", "Flutter", "React Native", "Swift", "Kotlin"},
		Keywords:        []string{"mobile", "android", "ios", "app development", "flutter"},
		StipendRange:    "₹12,000-28,000/month",
		Duration:        "3-5 months",
	},
	{
		Name:            "UI/UX Design",
		RequiredSkills:  []string{"Design", "User Research", "Prototyping"},
		PreferredSkills: []string{"Figma", "Adobe XD", "Sketch", "User Testing", "Wireframing"},
		Keywords:        []string{"ui", "ux", "design", "user experience", "interface", "figma"},
		StipendRange:    "₹8,000-20,000/month",
		Duration:        "2-4 months",
	},
	{
		Name:            "Digital Marketing",
		RequiredSkills:  []string{"Marketing", "Communication", "Analytics"},
		PreferredSkills: []string{"SEO", "Social Media", "Content Marketing", "Google Analytics"},
		Keywords:        []string{"marketing", "digital", "seo", "social media", "content", "campaigns"},
		StipendRange:    "₹5,000-18,000/month",
		Duration:        "2-4 months",
	},
	{
		Name:            "Content Writing",
		RequiredSkills:  []string{"Writing", "Communication", "Research"},
		PreferredSkills: []string{"SEO Writing", "Technical Writing", "Copywriting", "Editing"},
		Keywords:        []string{"content", "writing", "copywriting", "blog", "technical writing"},
		StipendRange:    "₹5,000-15,000/month",
		Duration:        "2-3 months",
	},
	{
		Name:            "Business Development",
		RequiredSkills:  []string{"Communication", "Sales", "Negotiation"},
		PreferredSkills: []string{"CRM", "Market Research", "Presentation", "Client Management"},
		Keywords:        []string{"business development", "sales", "bd", "partnerships", "client"},
		StipendRange:    "₹8,000-22,000/month",
		Duration:        "3-6 months",
	},
	{
		Name:            "Graphic Design",
		RequiredSkills:  []string{"Design", "Creativity", "Visual Communication"},
		PreferredSkills: []string{"Photoshop", "Illustrator", "InDesign", "Canva", "Branding"},
		Keywords:        []string{"graphic", "design", "visual", "creative", "photoshop", "illustrator"},
		StipendRange:    "₹6,000-18,000/month",
		Duration:        "2-4 months",
	},
	{
		Name:            "Cybersecurity",
		RequiredSkills:  []string{"Security", "Networking", "Problem Solving"},
		PreferredSkills: []string{"Penetration Testing", "Security Analysis", "Firewall", "Encryption"},
		Keywords:        []string{"security", "cybersecurity", "ethical hacking", "penetration", "network security"},
		StipendRange:    "₹12,000-30,000/month",
		Duration:        "3-6 months",
	},
	{
		Name:            "Cloud Computing",
		RequiredSkills:  []string{"Cloud Platforms", "Networking", "Linux"},
		PreferredSkills: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "DevOps"},
		Keywords:        []string{"cloud", "aws", "azure", "gcp", "devops", "kubernetes"},
		StipendRange:    "₹15,000-35,000/month",
		Duration:        "3-6 months",
	},
	{
		Name:            "Research",
		RequiredSkills:  []string{"Research", "Analysis", "Critical Thinking"},
		PreferredSkills: []string{"Academic Writing", "Data Collection", "Literature Review", "Statistics"},
		Keywords:        []string{"research", "academic", "study", "analysis", "investigation"},
		StipendRange:    "₹8,000-20,000/month",
		Duration:        "3-6 months",
	},
}

// CategoryByName looks up a catalog entry by its exact name.
func CategoryByName(name string) (types.InternshipCategory, bool) {
	for _, c := range Catalog {
		if c.Name == name {
			return c, true
		}
	}
	return types.InternshipCategory{}, false
}

// CategoryNames returns every catalog category name in catalog order.
func CategoryNames() []string {
	names := make([]string, len(Catalog))
	for i, c := range Catalog {
		names[i] = c.Name
	}
	return names
}
