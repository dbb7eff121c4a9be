package web

// Field describes one input of an admin editor form.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"` // text, textarea, number, float, checkbox, list
	Required bool   `json:"required"`
}

// Resource describes an editable content table.
type Resource struct {
	Path    string   `json:"path"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Fields  []Field  `json:"fields"`
}

var Resources = []Resource{
	{
		Path:    "skills",
		Title:   "Skills",
		Columns: []string{"category", "name", "proficiency"},
		Fields: []Field{
			{Name: "category", Label: "Category", Kind: "text", Required: true},
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "proficiency", Label: "Proficiency (%)", Kind: "number", Required: true},
			{Name: "icon", Label: "Icon", Kind: "text"},
		},
	},
	{
		Path:    "projects",
		Title:   "Projects",
		Columns: []string{"title", "tech_stack", "featured"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: "text", Required: true},
			{Name: "description", Label: "Description", Kind: "textarea", Required: true},
			{Name: "tech_stack", Label: "Tech stack (comma separated)", Kind: "list"},
			{Name: "architecture_overview", Label: "Architecture overview", Kind: "textarea"},
			{Name: "github_link", Label: "GitHub link", Kind: "text"},
			{Name: "live_link", Label: "Live link", Kind: "text"},
			{Name: "featured", Label: "Featured", Kind: "checkbox"},
		},
	},
	{
		Path:    "education",
		Title:   "Education",
		Columns: []string{"degree", "institution", "period"},
		Fields: []Field{
			{Name: "degree", Label: "Degree", Kind: "text", Required: true},
			{Name: "institution", Label: "Institution", Kind: "text", Required: true},
			{Name: "period", Label: "Period", Kind: "text", Required: true},
			{Name: "gpa", Label: "GPA", Kind: "float"},
			{Name: "max_gpa", Label: "Max GPA", Kind: "float"},
			{Name: "status", Label: "Status", Kind: "text"},
		},
	},
	{
		Path:    "experience",
		Title:   "Experience",
		Columns: []string{"role", "company", "duration"},
		Fields: []Field{
			{Name: "role", Label: "Role", Kind: "text", Required: true},
			{Name: "company", Label: "Company", Kind: "text", Required: true},
			{Name: "duration", Label: "Duration", Kind: "text", Required: true},
			{Name: "description", Label: "Description", Kind: "textarea", Required: true},
		},
	},
	{
		Path:    "hackathons",
		Title:   "Hackathons",
		Columns: []string{"name", "role", "year"},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "description", Label: "Description", Kind: "textarea", Required: true},
			{Name: "role", Label: "Role", Kind: "text", Required: true},
			{Name: "year", Label: "Year", Kind: "number", Required: true},
		},
	},
	{
		Path:    "certifications",
		Title:   "Certifications",
		Columns: []string{"name", "issuer", "year"},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "issuer", Label: "Issuer", Kind: "text", Required: true},
			{Name: "year", Label: "Year", Kind: "number", Required: true},
		},
	},
}

func LookupResource(path string) (Resource, bool) {
	for _, r := range Resources {
		if r.Path == path {
			return r, true
		}
	}
	return Resource{}, false
}
