package content

// Document is the top-level layout of a portfolio content file.
type Document struct {
	PersonalInfo     PersonalInfo    `yaml:"personal_info"`
	SkillGroups      []SkillGroup    `yaml:"skill_groups"`
	Projects         []Project       `yaml:"projects"`
	FeaturedProjects []Project       `yaml:"featured_projects"`
	Experience       []Experience    `yaml:"experience"`
	Education        []Education     `yaml:"education"`
	Certifications   []Certification `yaml:"certifications"`
	Studies          []Study         `yaml:"studies"`
}

type PersonalInfo struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title,omitempty"`
	Subtitle  string `yaml:"subtitle"`
	Bio       string `yaml:"bio"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone,omitempty"`
	Location  string `yaml:"location,omitempty"`
	LinkedIn  string `yaml:"linkedin,omitempty"`
	GitHub    string `yaml:"github,omitempty"`
	AvatarURL string `yaml:"avatar_url,omitempty"`
}

// SkillGroup lists skills sharing a category and description.
type SkillGroup struct {
	Category    string       `yaml:"category"`
	Description string       `yaml:"description,omitempty"`
	Skills      []SkillEntry `yaml:"skills"`
}

type SkillEntry struct {
	Name        string `yaml:"name"`
	Proficiency int    `yaml:"proficiency"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Project struct {
	ID           string   `yaml:"id,omitempty"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category,omitempty"`
	Technologies []string `yaml:"technologies"`
	GitHubURL    string   `yaml:"github_url,omitempty"`
	DemoURL      string   `yaml:"demo_url,omitempty"`
	ImageURL     string   `yaml:"image_url,omitempty"`
	CreatedDate  string   `yaml:"created_date,omitempty"`
	Featured     bool     `yaml:"featured,omitempty"`
}

type Experience struct {
	ID           string   `yaml:"id,omitempty"`
	Company      string   `yaml:"company"`
	Position     string   `yaml:"position"`
	Duration     string   `yaml:"duration"`
	Description  string   `yaml:"description"`
	Location     string   `yaml:"location,omitempty"`
	Technologies []string `yaml:"technologies"`
	Achievements []string `yaml:"achievements"`
	StartDate    string   `yaml:"start_date,omitempty"`
	EndDate      string   `yaml:"end_date,omitempty"`
}

type Education struct {
	ID           string   `yaml:"id"`
	Institution  string   `yaml:"institution"`
	Degree       string   `yaml:"degree"`
	FieldOfStudy string   `yaml:"field_of_study"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date,omitempty"`
	GPA          *float64 `yaml:"gpa,omitempty"`
	Description  string   `yaml:"description,omitempty"`
	Achievements []string `yaml:"achievements"`
}

type Certification struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Issuer          string   `yaml:"issuer"`
	IssueDate       string   `yaml:"issue_date"`
	ExpiryDate      string   `yaml:"expiry_date,omitempty"`
	CredentialID    string   `yaml:"credential_id,omitempty"`
	CredentialURL   string   `yaml:"credential_url,omitempty"`
	VerificationURL string   `yaml:"verification_url,omitempty"`
	Description     string   `yaml:"description,omitempty"`
	SkillsValidated []string `yaml:"skills_validated"`
}

type Study struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Institution    string   `yaml:"institution"`
	Description    string   `yaml:"description"`
	YearCompleted  string   `yaml:"year_completed"`
	Grade          string   `yaml:"grade"`
	Duration       string   `yaml:"duration"`
	Specialization string   `yaml:"specialization"`
	ImageURL       string   `yaml:"image_url"`
	Skills         []string `yaml:"skills"`
	CompletionDate string   `yaml:"completion_date,omitempty"`
	SkillsAcquired []string `yaml:"skills_acquired"`
}
