// Package skills provides skill extraction, normalization, and matching
// against an explicit skill catalog.
package skills

// CommonSkills is the canonical skill catalog used for extraction and
// diversity scoring. Matching is case-insensitive whole-word containment;
// the catalog stays data so new skills are additions, not code changes.
var CommonSkills = []string{
	// Languages
	"Python", "Java", "JavaScript", "TypeScript", "Go", "C", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "MATLAB",
	"SQL", "HTML", "CSS", "Bash", "Perl", "Dart",
	// Frameworks and libraries
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"FastAPI", "Spring", "Spring Boot", "Rails", ".NET", "Laravel",
	"Next.js", "Svelte", "jQuery", "Bootstrap", "Tailwind",
	"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy",
	"OpenCV", "Hugging Face", "LangChain",
	// Data and infrastructure
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Elasticsearch",
	"Kafka", "RabbitMQ", "Spark", "Hadoop", "Airflow",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "Git", "GitHub Actions", "Linux", "Nginx", "GraphQL",
	"REST", "gRPC", "CI/CD",
	// Practices and domains
	"Machine Learning", "Deep Learning", "Data Science", "Data Analysis",
	"Data Visualization", "NLP", "Computer Vision", "DevOps",
	"Cloud Computing", "Cybersecurity", "Blockchain", "Microservices",
	"Agile", "Scrum", "Unit Testing", "Test Automation", "UI/UX",
	"Mobile Development", "Android", "iOS", "React Native", "Flutter",
	// Soft skills
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Critical Thinking", "Time Management", "Collaboration",
	"Project Management", "Public Speaking", "Mentoring", "Adaptability",
	"Creativity", "Presentation", "Writing",
}

// softSkills marks catalog entries that count as soft skills for
// diversity scoring. Everything else in the catalog is technical.
var softSkills = map[string]bool{
	"Communication":      true,
	"Leadership":         true,
	"Teamwork":           true,
	"Problem Solving":    true,
	"Critical Thinking":  true,
	"Time Management":    true,
	"Collaboration":      true,
	"Project Management": true,
	"Public Speaking":    true,
	"Mentoring":          true,
	"Adaptability":       true,
	"Creativity":         true,
	"Presentation":       true,
	"Writing":            true,
}

// IsSoftSkill reports whether a canonical skill name is a soft skill.
func IsSoftSkill(name string) bool {
	return softSkills[NormalizeSkillName(name)]
}

// IsTechnicalSkill reports whether a canonical skill name is technical.
// Unknown skills count as technical, matching how resumes list them.
func IsTechnicalSkill(name string) bool {
	return !IsSoftSkill(name)
}
