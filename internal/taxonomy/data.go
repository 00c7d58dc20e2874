package taxonomy

// DefaultVersion identifies the built-in dictionaries
const DefaultVersion = "2024.1"

// defaultCategories are the built-in technical dictionaries, grouped by professional domain.
// Order is significant: flattened lookups and scan results follow it.
var defaultCategories = []Category{
	// Technology & IT
	{Name: "programming_languages", Skills: []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
		"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "sql", "c",
		"objective-c", "dart", "perl", "shell", "bash",
	}},
	{Name: "web_technologies", Skills: []string{
		"html", "css", "react", "angular", "vue", "node.js", "nodejs", "express",
		"django", "flask", "spring", "laravel", "bootstrap", "jquery", "webpack",
		"sass", "less", "tailwind", "material-ui", "next.js", "nuxt.js",
	}},
	{Name: "databases", Skills: []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle",
		"sqlite", "cassandra", "dynamodb", "firebase", "mariadb", "neo4j",
		"influxdb", "couchdb",
	}},
	{Name: "cloud_devops", Skills: []string{
		"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "terraform",
		"jenkins", "gitlab", "github actions", "circleci", "ansible", "chef",
		"puppet", "vagrant", "helm",
	}},
	{Name: "data_science", Skills: []string{
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"spark", "hadoop", "tableau", "power bi", "excel", "jupyter", "matplotlib",
		"seaborn", "plotly", "dask", "airflow",
	}},
	{Name: "mobile", Skills: []string{
		"android", "ios", "react native", "flutter", "xamarin", "ionic",
		"cordova", "swift", "kotlin", "objective-c",
	}},
	{Name: "testing", Skills: []string{
		"junit", "pytest", "selenium", "cypress", "jest", "mocha", "chai",
		"unittest", "testng", "cucumber", "postman",
	}},

	// Business & Finance
	{Name: "finance_accounting", Skills: []string{
		"accounting", "bookkeeping", "financial analysis", "budgeting", "forecasting",
		"excel", "quickbooks", "sap", "oracle financials", "gaap", "ifrs", "tax preparation",
		"auditing", "financial reporting", "cash flow", "accounts payable", "accounts receivable",
		"cost accounting", "financial modeling", "variance analysis", "cpa", "cfa",
	}},
	{Name: "business_analysis", Skills: []string{
		"business analysis", "requirements gathering", "process improvement", "stakeholder management",
		"business intelligence", "data analysis", "market research", "competitive analysis",
		"strategic planning", "process mapping", "workflow optimization", "kpi development",
		"project management", "agile", "scrum", "lean", "six sigma",
	}},
	{Name: "consulting", Skills: []string{
		"management consulting", "strategy consulting", "change management", "organizational development",
		"business transformation", "process optimization", "performance improvement",
		"stakeholder engagement", "workshop facilitation", "presentation skills",
	}},

	// Marketing & Sales
	{Name: "digital_marketing", Skills: []string{
		"seo", "sem", "google ads", "facebook ads", "social media marketing", "content marketing",
		"email marketing", "marketing automation", "google analytics", "conversion optimization",
		"a/b testing", "ppc", "affiliate marketing", "influencer marketing", "brand management",
	}},
	{Name: "sales", Skills: []string{
		"sales", "business development", "lead generation", "cold calling", "prospecting",
		"account management", "customer relationship management", "crm", "salesforce",
		"negotiation", "closing", "pipeline management", "territory management", "b2b sales", "b2c sales",
	}},
	{Name: "marketing_traditional", Skills: []string{
		"brand marketing", "advertising", "public relations", "market research", "campaign management",
		"event marketing", "trade shows", "print advertising", "radio advertising", "tv advertising",
		"direct mail", "outdoor advertising", "media planning", "media buying",
	}},

	// Healthcare & Medical
	{Name: "medical_clinical", Skills: []string{
		"patient care", "clinical assessment", "medical diagnosis", "treatment planning",
		"medical procedures", "surgery", "emergency medicine", "intensive care", "radiology",
		"cardiology", "oncology", "pediatrics", "geriatrics", "psychiatry", "nursing",
	}},
	{Name: "healthcare_admin", Skills: []string{
		"healthcare administration", "medical billing", "medical coding", "hipaa compliance",
		"healthcare regulations", "patient records", "electronic health records", "ehr",
		"medical insurance", "healthcare quality", "patient safety", "clinical workflows",
	}},
	{Name: "pharmacy", Skills: []string{
		"pharmaceutical", "drug dispensing", "medication therapy management", "clinical pharmacy",
		"pharmacy operations", "pharmaceutical calculations", "drug interactions",
		"pharmacy law", "controlled substances", "immunizations",
	}},

	// Education & Training
	{Name: "teaching", Skills: []string{
		"curriculum development", "lesson planning", "classroom management", "student assessment",
		"educational technology", "differentiated instruction", "special education",
		"learning disabilities", "educational psychology", "pedagogy", "instructional design",
	}},
	{Name: "training_development", Skills: []string{
		"training design", "instructional design", "e-learning", "learning management systems",
		"training delivery", "adult learning", "training evaluation", "needs assessment",
		"performance improvement", "organizational development", "talent development",
	}},

	// Engineering & Manufacturing
	{Name: "mechanical_engineering", Skills: []string{
		"mechanical design", "cad", "autocad", "solidworks", "inventor", "catia", "ansys",
		"finite element analysis", "thermodynamics", "fluid mechanics", "materials science",
		"manufacturing processes", "quality control", "lean manufacturing", "six sigma",
	}},
	{Name: "electrical_engineering", Skills: []string{
		"circuit design", "power systems", "control systems", "electronics", "pcb design",
		"matlab", "simulink", "plc programming", "scada", "electrical safety", "power distribution",
		"renewable energy", "motor control", "instrumentation",
	}},
	{Name: "civil_engineering", Skills: []string{
		"structural design", "construction management", "project management", "autocad",
		"structural analysis", "concrete design", "steel design", "geotechnical engineering",
		"transportation engineering", "environmental engineering", "water resources", "surveying",
	}},
	{Name: "chemical_engineering", Skills: []string{
		"process design", "chemical processes", "reaction engineering", "mass transfer", "heat transfer",
		"thermodynamics", "fluid mechanics", "distillation", "separation processes", "process control",
		"process safety", "hysys", "aspen plus", "chemcad", "process simulation", "process optimization",
		"unit operations", "chemical kinetics", "reactor design", "process equipment design",
		"piping and instrumentation diagrams", "p&id", "hazop", "process hazard analysis",
		"chemical plant design", "process economics", "material balance", "energy balance",
		"process troubleshooting", "process improvement", "chemical safety", "environmental compliance",
		"petrochemicals", "pharmaceuticals", "polymer processing", "catalysis", "crystallization",
	}},
	{Name: "manufacturing", Skills: []string{
		"production planning", "quality assurance", "inventory management", "supply chain",
		"manufacturing processes", "lean manufacturing", "continuous improvement", "safety protocols",
		"equipment maintenance", "production scheduling", "cost reduction", "efficiency optimization",
	}},

	// Legal & Compliance
	{Name: "legal", Skills: []string{
		"legal research", "contract law", "litigation", "corporate law", "employment law",
		"intellectual property", "regulatory compliance", "legal writing", "case management",
		"discovery", "depositions", "trial preparation", "legal analysis", "due diligence",
	}},
	{Name: "compliance", Skills: []string{
		"regulatory compliance", "risk management", "audit", "internal controls", "policy development",
		"sox compliance", "gdpr", "data privacy", "anti-money laundering", "kyc", "risk assessment",
		"compliance monitoring", "regulatory reporting", "ethics training",
	}},

	// Human Resources
	{Name: "human_resources", Skills: []string{
		"recruitment", "talent acquisition", "employee relations", "performance management",
		"compensation", "benefits administration", "hr policies", "employment law", "onboarding",
		"training coordination", "hr analytics", "workforce planning", "employee engagement",
		"diversity and inclusion", "hris", "payroll",
	}},

	// Operations & Logistics
	{Name: "supply_chain", Skills: []string{
		"supply chain management", "logistics", "procurement", "vendor management", "inventory management",
		"warehouse management", "transportation", "distribution", "demand planning", "sourcing",
		"contract negotiation", "cost optimization", "supplier relationships", "erp systems",
	}},
	{Name: "operations", Skills: []string{
		"operations management", "process improvement", "quality management", "project management",
		"resource planning", "capacity planning", "workflow optimization", "performance metrics",
		"cost control", "efficiency improvement", "team management", "vendor coordination",
	}},

	// Creative & Design
	{Name: "graphic_design", Skills: []string{
		"adobe creative suite", "photoshop", "illustrator", "indesign", "sketch", "figma",
		"typography", "branding", "logo design", "web design", "print design", "ui design",
		"ux design", "color theory", "layout design", "creative direction",
	}},
	{Name: "content_creation", Skills: []string{
		"content writing", "copywriting", "technical writing", "creative writing", "editing",
		"proofreading", "content strategy", "storytelling", "blogging", "social media content",
		"video production", "photography", "content marketing", "seo writing",
	}},

	// Customer Service & Support
	{Name: "customer_service", Skills: []string{
		"customer support", "customer service", "call center", "help desk", "technical support",
		"customer relations", "complaint resolution", "customer satisfaction", "phone skills",
		"email support", "chat support", "ticketing systems", "customer retention", "upselling",
	}},

	// Research & Analysis
	{Name: "research", Skills: []string{
		"research methodology", "data collection", "statistical analysis", "survey design",
		"qualitative research", "quantitative research", "market research", "academic research",
		"literature review", "data interpretation", "research design", "hypothesis testing",
	}},
}

// defaultSoftSkills is the built-in soft-skill list; duplicates are removed at construction.
var defaultSoftSkills = []string{
	// Communication
	"communication", "verbal communication", "written communication", "presentation skills",
	"public speaking", "active listening", "interpersonal skills", "multilingual",
	"cross-cultural communication", "client communication", "stakeholder communication",

	// Leadership & Management
	"leadership", "team leadership", "people management", "strategic leadership",
	"change management", "organizational leadership", "executive leadership",
	"servant leadership", "transformational leadership", "coaching", "mentoring",
	"delegation", "team building", "talent development", "performance management",

	// Teamwork & Collaboration
	"teamwork", "collaboration", "cross-functional collaboration", "team player",
	"cooperative", "collective problem solving", "consensus building",
	"relationship building", "networking", "partnership development",

	// Problem Solving & Analytical
	"problem solving", "analytical thinking", "critical thinking", "logical thinking",
	"creative problem solving", "troubleshooting", "root cause analysis",
	"decision making", "strategic thinking", "systems thinking", "innovative thinking",

	// Organizational & Time Management
	"time management", "organization", "organized", "detail-oriented", "attention to detail",
	"multitasking", "prioritization", "planning", "scheduling", "deadline management",
	"project coordination", "workflow management", "resource management",

	// Adaptability & Flexibility
	"adaptable", "flexible", "agile", "resilient", "change adaptability",
	"learning agility", "open-minded", "versatile", "continuous learning",
	"growth mindset", "innovation", "creative", "entrepreneurial",

	// Customer & Client Focus
	"customer service", "customer focus", "client relations", "customer satisfaction",
	"service orientation", "empathy", "patience", "diplomacy", "cultural sensitivity",
	"conflict resolution", "complaint handling", "relationship management",

	// Sales & Business Development
	"sales skills", "negotiation", "persuasion", "business development",
	"relationship selling", "consultative selling", "closing skills",
	"prospecting", "networking", "market awareness", "competitive intelligence",

	// Project Management
	"project management", "project coordination", "project planning", "resource planning",
	"risk management", "quality management", "process improvement", "change management",
	"stakeholder management", "vendor management", "budget management",

	// Technical & Industry Specific
	"technical writing", "documentation", "training", "knowledge transfer",
	"quality assurance", "compliance", "regulatory knowledge", "safety consciousness",
	"ethical standards", "professional integrity", "confidentiality",

	// Financial & Business Acumen
	"financial acumen", "business acumen", "cost consciousness", "profit awareness",
	"budget management", "financial analysis", "business strategy", "market understanding",
	"commercial awareness", "business intelligence", "data-driven decision making",

	// Creative & Innovation
	"creativity", "innovative", "design thinking", "artistic ability", "visual design",
	"creative writing", "storytelling", "brand awareness", "aesthetic sense",
	"conceptual thinking", "ideation", "brainstorming",

	// Healthcare & Medical
	"patient care", "bedside manner", "medical ethics", "compassion", "empathy",
	"clinical judgment", "health advocacy", "patient education", "medical communication",
	"cultural competency", "interdisciplinary collaboration",

	// Education & Training
	"teaching", "curriculum development", "educational psychology", "student engagement",
	"learning assessment", "classroom management", "educational technology",
	"differentiated instruction", "inclusive education", "academic coaching",

	// Legal & Compliance
	"legal research", "legal writing", "attention to detail", "analytical reasoning",
	"ethical reasoning", "client counseling", "negotiation", "advocacy",
	"regulatory compliance", "risk assessment", "policy development",

	// Manufacturing & Operations
	"safety consciousness", "quality focus", "continuous improvement", "efficiency optimization",
	"process optimization", "lean thinking", "operational excellence", "troubleshooting",
	"equipment operation", "maintenance awareness", "production planning",
}
