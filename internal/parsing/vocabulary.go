package parsing

import "regexp"

// Indicator phrases looked for near a skill mention. Preferred indicators are checked first.
var (
	preferredIndicators = []string{
		"preferred", "nice to have", "bonus", "plus", "advantage",
		"would be great", "ideal", "desirable",
	}
	requiredIndicators = []string{
		"required", "must", "essential", "mandatory", "need", "necessary",
		"should have", "should be", "proficient",
	}
)

// degreePhrasePatterns run on the lower-cased description; each hit is reported with context
var degreePhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`bachelor'?s?\s*(?:degree|in)`),
	regexp.MustCompile(`master'?s?\s*(?:degree|in)`),
	regexp.MustCompile(`phd|doctorate`),
	regexp.MustCompile(`b\.s\.|b\.a\.|m\.s\.|m\.a\.`),
	regexp.MustCompile(`university\s*degree`),
	regexp.MustCompile(`college\s*degree`),
	regexp.MustCompile(`graduate\s*degree`),
	regexp.MustCompile(`undergraduate\s*degree`),
}

// fieldsOfStudy are reported as "Degree in <Field>" when mentioned
var fieldsOfStudy = []string{
	// technology and engineering
	"computer science", "software engineering", "information technology", "data science",
	"electrical engineering", "mechanical engineering", "civil engineering", "chemical engineering",
	"industrial engineering", "aerospace engineering", "biomedical engineering", "environmental engineering",
	"systems engineering", "materials engineering", "petroleum engineering", "nuclear engineering",

	// business and finance
	"business administration", "business management", "finance", "accounting", "economics",
	"marketing", "international business", "entrepreneurship", "supply chain management",
	"human resources", "operations management", "project management", "business analytics",
	"management information systems", "organizational behavior", "strategic management",

	// healthcare
	"medicine", "nursing", "pharmacy", "dentistry", "veterinary medicine", "public health",
	"healthcare administration", "medical technology", "radiology", "physical therapy",
	"occupational therapy", "speech therapy", "clinical psychology", "health sciences",
	"biomedical sciences", "epidemiology", "health informatics", "nutrition",

	// sciences and mathematics
	"mathematics", "statistics", "physics", "chemistry", "biology", "biochemistry",
	"microbiology", "biotechnology", "genetics", "molecular biology", "neuroscience",
	"environmental science", "geology", "geography", "astronomy", "marine biology",

	// humanities
	"english literature", "history", "philosophy", "political science", "sociology",
	"anthropology", "psychology", "linguistics", "foreign languages", "international relations",
	"criminal justice", "social work", "religious studies", "cultural studies",

	// creative arts and design
	"graphic design", "fine arts", "art history", "music", "theatre", "film studies",
	"creative writing", "journalism", "communications", "media studies", "digital media",
	"architecture", "interior design", "fashion design", "industrial design",

	// education
	"education", "elementary education", "secondary education", "special education",
	"educational psychology", "curriculum and instruction", "educational leadership",
	"early childhood education", "adult education", "instructional design",

	// law
	"law", "legal studies", "criminal law", "corporate law", "international law",
	"constitutional law", "environmental law", "intellectual property law", "tax law",

	// agriculture and environment
	"agriculture", "agricultural engineering", "forestry", "environmental studies",
	"sustainability", "renewable energy", "marine sciences", "wildlife management",

	// sports and recreation
	"kinesiology", "sports management", "exercise science", "recreation management",
	"athletic training", "sports psychology", "physical education",

	// interdisciplinary
	"cybersecurity", "artificial intelligence", "machine learning", "robotics",
	"sustainable development", "digital humanities", "bioinformatics",
	"computational biology", "cognitive science", "game design", "user experience design",
}

// experiencePhrasePatterns capture the subject of "experience in X" style phrases on one line
var experiencePhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`experience in ([a-z \t]+)`),
	regexp.MustCompile(`background in ([a-z \t]+)`),
	regexp.MustCompile(`knowledge of ([a-z \t]+)`),
	regexp.MustCompile(`familiar with ([a-z \t]+)`),
}

// rangeYearsPatterns capture a minimum and a maximum
var rangeYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`),
}

// minYearsPatterns capture a single minimum
var minYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[+\-]?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)[+\-]?\s*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?:minimum|min|at least)\s*(\d+)\s*years?`),
}
