package services

import "github.com/mannsoni/portfolio/internal/models"

func ptr[T any](v T) *T { return &v }

var demoSkills = []models.SkillCreate{
	{Category: "Programming", Name: "Java", Proficiency: 90},
	{Category: "Programming", Name: "Python", Proficiency: 95},
	{Category: "Programming", Name: "HTML", Proficiency: 95},
	{Category: "Programming", Name: "CSS", Proficiency: 90},
	{Category: "Programming", Name: "Flask", Proficiency: 85},
	{Category: "Frameworks", Name: "JavaScript", Proficiency: 90},
	{Category: "Frameworks", Name: "React", Proficiency: 85},
	{Category: "Frameworks", Name: "Django", Proficiency: 80},
	{Category: "Frameworks", Name: "Streamlit", Proficiency: 80},
	{Category: "Tools", Name: "Next.js", Proficiency: 85},
	{Category: "Tools", Name: "Node.js", Proficiency: 85},
	{Category: "Tools", Name: "TypeScript", Proficiency: 85},
	{Category: "Tools", Name: "Kaggle", Proficiency: 75},
	{Category: "Databases", Name: "PostgreSQL", Proficiency: 85},
	{Category: "Databases", Name: "MongoDB", Proficiency: 80},
	{Category: "Databases", Name: "Supabase", Proficiency: 85},
	{Category: "AI Tools", Name: "ChatGPT", Proficiency: 95},
	{Category: "AI Tools", Name: "Claude", Proficiency: 95},
	{Category: "AI Tools", Name: "Copilot", Proficiency: 90},
	{Category: "AI Tools", Name: "DeepSeek", Proficiency: 85},
	{Category: "AI Tools", Name: "Cursor", Proficiency: 90},
	{Category: "AI Tools", Name: "Windsurf", Proficiency: 90},
	{Category: "Networking", Name: "Wireshark", Proficiency: 75},
	{Category: "Networking", Name: "TCP", Proficiency: 80},
	{Category: "Networking", Name: "UDP", Proficiency: 80},
	{Category: "Networking", Name: "QUIC", Proficiency: 75},
}

var demoProjects = []models.ProjectCreate{
	{
		Title:                "AI Car Part Chat Bot",
		Description:          "AI-driven WhatsApp chatbot for identifying and selling car parts using multimodal AI (text, voice, image, documents).",
		TechStack:            []string{"GPT-4o", "Whisper", "Redis", "PostgreSQL", "Flask", "React"},
		ArchitectureOverview: ptr("WhatsApp -> Flask Webhook -> Redis Queue -> Worker -> GPT Engine -> DB -> Response"),
		Featured:             true,
	},
	{
		Title:                "KALAMRUT - AI Art Gallery",
		Description:          "AI-powered artwork recommender using CLIP ViT-B/32, MiDaS depth estimation and PyTorch.",
		TechStack:            []string{"PyTorch", "CLIP", "Django REST", "React", "MiDaS"},
		ArchitectureOverview: ptr("Upload wall image -> Depth detection -> CLIP embedding -> Cosine similarity -> 10 recommendations"),
		Featured:             true,
	},
	{
		Title:                "HEARTSYNC",
		Description:          "Matchmaking app with an AI chat suggestion system backed by a local LLM.",
		TechStack:            []string{"Django", "React", "Ollama"},
		ArchitectureOverview: ptr("Frontend -> REST API -> Match engine -> Real-time updates"),
		Featured:             true,
	},
}

var demoEducation = []models.EducationCreate{
	{
		Degree:      "B.Tech Computer Science",
		Institution: "LJ University",
		Period:      "August 2023 - August 2027",
		GPA:         ptr(8.7),
		MaxGPA:      ptr(10.0),
		Status:      ptr("Current Status: Semester 6."),
	},
}

var demoExperience = []models.ExperienceCreate{
	{
		Role:        "MERN Stack Developer Intern",
		Company:     "KONCPT AI",
		Duration:    "6 Months",
		Description: "Built full-stack features with React, Node.js, Express and MongoDB.",
	},
}

var demoHackathons = []models.HackathonCreate{
	{Name: "Nirma University Hackathon", Description: "Blockchain Extension Wallet", Role: "Developer", Year: 2024},
	{Name: "Dhirubhai Ambani University", Description: "Coastal Threat Alert System", Role: "Developer", Year: 2024},
	{Name: "Odoo Hackathon 2025", Description: "StackIt Q&A Platform", Role: "Full Stack Developer", Year: 2025},
	{Name: "HACKHAZARDS 25", Description: "NFT Gun Game", Role: "Developer", Year: 2025},
}

var demoCertifications = []models.CertificationCreate{
	{Name: "Introduction to Java", Issuer: "Coursera", Year: 2023},
	{Name: "Inheritance & Data Structures in Java", Issuer: "Coursera", Year: 2024},
	{Name: "Exploratory Data Analysis", Issuer: "IBM", Year: 2024},
	{Name: "HTML/CSS/JS", Issuer: "IBM", Year: 2023},
	{Name: "TCS iON Career Edge", Issuer: "TCS", Year: 2023},
}
