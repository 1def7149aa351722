// Package certs validates certification credentials against a registry of
// known providers and maps them to skill categories.
package certs

import "regexp"

// provider is one known credential issuer with its URL verification pattern
type provider struct {
	name       string
	pattern    *regexp.Regexp
	trustScore float64
}

// Providers are checked in registry order; the first name or URL hit wins.
// Trust scores reflect how reliably each issuer's credentials verify.
var providers = []provider{
	{"Coursera", regexp.MustCompile(`(?i)coursera\.org/verify/([A-Z0-9]+)`), 95},
	{"edX", regexp.MustCompile(`(?i)credentials\.edx\.org/credentials/([a-f0-9-]+)`), 95},
	{"Udemy", regexp.MustCompile(`(?i)udemy\.com/certificate/([A-Z0-9]+)`), 85},
	{"LinkedIn Learning", regexp.MustCompile(`(?i)linkedin\.com/learning/certificates/([a-f0-9-]+)`), 90},
	{"Google", regexp.MustCompile(`(?i)(google\.com/.*certificate|coursera\.org/.*google)`), 98},
	{"Microsoft", regexp.MustCompile(`(?i)(microsoft\.com/.*certification|learn\.microsoft)`), 98},
	{"AWS", regexp.MustCompile(`(?i)(aws\.amazon\.com/certification|aws\.training)`), 98},
	{"IBM", regexp.MustCompile(`(?i)(ibm\.com/.*badge|credly\.com/.*ibm)`), 95},
	{"Oracle", regexp.MustCompile(`(?i)(oracle\.com/.*certification|education\.oracle)`), 95},
	{"Cisco", regexp.MustCompile(`(?i)(cisco\.com/.*certification|learningnetwork\.cisco)`), 95},
	{"CompTIA", regexp.MustCompile(`(?i)comptia\.org`), 92},
	{"freeCodeCamp", regexp.MustCompile(`(?i)freecodecamp\.org/certification`), 88},
	{"Udacity", regexp.MustCompile(`(?i)udacity\.com/certificate`), 90},
	{"Pluralsight", regexp.MustCompile(`(?i)pluralsight\.com`), 88},
	{"DataCamp", regexp.MustCompile(`(?i)datacamp\.com/certificate`), 87},
	{"HackerRank", regexp.MustCompile(`(?i)hackerrank\.com/certificates`), 85},
	{"Credly", regexp.MustCompile(`(?i)credly\.com/badges`), 90},
}

// unverifiedTrustScore is the baseline for credentials no registry entry matches.
const unverifiedTrustScore = 50.0

// certCategory maps credential keywords to the skills the credential implies
type certCategory struct {
	name     string
	keywords []string
	skills   []string
	weight   float64
}

var certCategories = []certCategory{
	{"Cloud Computing",
		[]string{"aws", "azure", "gcp", "cloud", "kubernetes", "docker", "devops"},
		[]string{"Cloud Architecture", "Infrastructure", "DevOps", "Containerization"}, 1.2},
	{"Data Science",
		[]string{"data science", "machine learning", "ai", "deep learning", "analytics", "statistics"},
		[]string{"Python", "R", "Machine Learning", "Statistics", "Data Analysis"}, 1.3},
	{"Web Development",
		[]string{"web", "frontend", "backend", "fullstack", "javascript", "react", "node"},
		[]string{"JavaScript", "HTML", "CSS", "React", "Node.js", "Web Development"}, 1.1},
	{"Cybersecurity",
		[]string{"security", "cybersecurity", "ethical hacking", "penetration", "cissp", "ceh"},
		[]string{"Network Security", "Ethical Hacking", "Security Analysis", "Risk Management"}, 1.3},
	{"Database",
		[]string{"sql", "database", "mongodb", "postgresql", "mysql", "nosql"},
		[]string{"SQL", "Database Design", "Data Modeling", "Query Optimization"}, 1.1},
	{"Project Management",
		[]string{"pmp", "agile", "scrum", "project management", "prince2"},
		[]string{"Project Management", "Agile", "Scrum", "Leadership"}, 1.0},
	{"Programming",
		[]string{"python", "java", "c++", "programming", "coding", "software"},
		[]string{"Programming", "Problem Solving", "Algorithms", "Data Structures"}, 1.2},
	{"Business Analytics",
		[]string{"business analytics", "bi", "tableau", "power bi", "excel"},
		[]string{"Business Intelligence", "Data Visualization", "Excel", "Analytics"}, 1.0},
	{"Mobile Development",
		[]string{"android", "ios", "mobile", "flutter", "react native", "swift"},
		[]string{"Mobile Development", "iOS", "Android", "Cross-platform"}, 1.1},
	{"AI/ML",
		[]string{"artificial intelligence", "neural network", "nlp", "computer vision", "tensorflow"},
		[]string{"AI", "Neural Networks", "NLP", "Computer Vision", "TensorFlow"}, 1.4},
}
