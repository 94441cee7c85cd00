package handlers

import (
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// isoDate is the wire format for calendar dates.
const isoDate = "2006-01-02"

// External field names are fixed; they do not follow the domain names
// (a certification's issue date is "date", an experience position is "title").

type personalInfoJSON struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type skillJSON struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type projectJSON struct {
	ID           *string  `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     *string  `json:"category"`
	Technologies []string `json:"technologies"`
	GitHubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
	ImageURL     *string  `json:"image_url"`
	Featured     bool     `json:"featured"`
	Date         *string  `json:"date"`
}

type experienceJSON struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

type currentPositionJSON struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type educationJSON struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	GPA         *float64 `json:"gpa"`
}

type certificationJSON struct {
	Name         string  `json:"name"`
	Issuer       string  `json:"issuer"`
	Date         *string `json:"date"`
	ExpiryDate   *string `json:"expiry_date"`
	CredentialID *string `json:"credential_id"`
	URL          *string `json:"url"`
	Active       bool    `json:"active"`
}

type studyJSON struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Institution    string   `json:"institution"`
	Description    string   `json:"description"`
	YearCompleted  string   `json:"year_completed"`
	Grade          string   `json:"grade"`
	Duration       string   `json:"duration"`
	Specialization string   `json:"specialization"`
	ImageURL       *string  `json:"image_url"`
	Skills         []string `json:"skills"`
	CompletionDate *string  `json:"completion_date"`
}

type portfolioJSON struct {
	PersonalInfo   personalInfoJSON    `json:"personal_info"`
	Skills         []skillJSON         `json:"skills"`
	Projects       []projectJSON       `json:"projects"`
	Experience     []experienceJSON    `json:"experience"`
	Education      []educationJSON     `json:"education"`
	Certifications []certificationJSON `json:"certifications"`
}

type experienceData struct {
	Experience      []experienceJSON     `json:"experience"`
	CurrentPosition *currentPositionJSON `json:"current_position"`
}

// nullable maps "" to JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// dateOrNull maps the zero time to JSON null.
func dateOrNull(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(isoDate)
	return &s
}

// list never returns nil, so empty collections encode as [].
func list(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func mapAll[T, J any](in []T, fn func(T) J) []J {
	out := make([]J, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func toPersonalInfo(p domain.PersonalInfo) personalInfoJSON {
	return personalInfoJSON{
		Name:      p.Name,
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		Email:     p.Email,
		Phone:     p.Phone,
		Location:  p.Location,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
	}
}

func toSkill(s domain.Skill) skillJSON {
	return skillJSON{
		Name:        s.Name,
		Level:       s.Proficiency,
		Category:    s.Category,
		Icon:        s.Icon,
		Description: s.Description,
	}
}

func toProject(p domain.Project) projectJSON {
	return projectJSON{
		ID:           nullable(p.ID),
		Title:        p.Title,
		Description:  p.Description,
		Category:     nullable(p.Category),
		Technologies: list(p.Technologies),
		GitHubURL:    nullable(p.GitHubURL),
		DemoURL:      nullable(p.DemoURL),
		ImageURL:     nullable(p.ImageURL),
		Featured:     p.Featured,
		Date:         dateOrNull(p.CreatedDate),
	}
}

func toExperience(e domain.Experience) experienceJSON {
	return experienceJSON{
		Title:        e.Position,
		Company:      e.Company,
		Duration:     e.Duration,
		Description:  e.Description,
		Technologies: list(e.Technologies),
		Achievements: list(e.Achievements),
	}
}

func toCurrentPosition(e domain.Experience, ok bool) *currentPositionJSON {
	if !ok {
		return nil
	}
	return &currentPositionJSON{
		Title:        e.Position,
		Company:      e.Company,
		Duration:     e.Duration,
		Description:  e.Description,
		Technologies: list(e.Technologies),
	}
}

func toEducation(e domain.Education) educationJSON {
	return educationJSON{
		Degree:      e.Degree,
		Institution: e.Institution,
		Year:        e.Year(),
		Description: e.Description,
		GPA:         e.GPA,
	}
}

// certificationMapper binds the clock used for "active".
func certificationMapper(now time.Time) func(domain.Certification) certificationJSON {
	return func(c domain.Certification) certificationJSON {
		return certificationJSON{
			Name:         c.Name,
			Issuer:       c.Issuer,
			Date:         dateOrNull(c.IssueDate),
			ExpiryDate:   dateOrNull(c.ExpiryDate),
			CredentialID: nullable(c.CredentialID),
			URL:          nullable(c.URL()),
			Active:       c.IsValid(now),
		}
	}
}

func toStudy(s domain.Study) studyJSON {
	return studyJSON{
		ID:             s.ID,
		Title:          s.Title,
		Institution:    s.Institution,
		Description:    s.Description,
		YearCompleted:  s.YearCompleted,
		Grade:          s.Grade,
		Duration:       s.Duration,
		Specialization: s.Specialization,
		ImageURL:       nullable(s.ImageURL),
		Skills:         list(s.Skills),
		CompletionDate: dateOrNull(s.CompletionDate),
	}
}

func toPortfolio(p domain.Portfolio, now time.Time) portfolioJSON {
	return portfolioJSON{
		PersonalInfo:   toPersonalInfo(p.PersonalInfo),
		Skills:         mapAll(p.Skills, toSkill),
		Projects:       mapAll(p.Projects, toProject),
		Experience:     mapAll(p.Experience, toExperience),
		Education:      mapAll(p.Education, toEducation),
		Certifications: mapAll(p.Certifications, certificationMapper(now)),
	}
}
