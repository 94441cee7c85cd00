package content

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// DateLayout is the format of every date in a content document.
const DateLayout = "2006-01-02"

// Mapper converts a content Document into the validated domain aggregate.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapPortfolio runs every entry through its domain constructor and fails on
// the first invalid one, naming its section and position.
func (m *Mapper) MapPortfolio(doc *Document) (domain.Portfolio, error) {
	if doc == nil {
		return domain.Portfolio{}, fmt.Errorf("nil content document")
	}

	info, err := domain.NewPersonalInfo(domain.PersonalInfo{
		Name:      doc.PersonalInfo.Name,
		Title:     doc.PersonalInfo.Title,
		Subtitle:  doc.PersonalInfo.Subtitle,
		Bio:       doc.PersonalInfo.Bio,
		Email:     doc.PersonalInfo.Email,
		Phone:     doc.PersonalInfo.Phone,
		Location:  doc.PersonalInfo.Location,
		LinkedIn:  doc.PersonalInfo.LinkedIn,
		GitHub:    doc.PersonalInfo.GitHub,
		AvatarURL: doc.PersonalInfo.AvatarURL,
	})
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("personal_info: %w", err)
	}

	skills, err := m.mapSkills(doc.SkillGroups)
	if err != nil {
		return domain.Portfolio{}, err
	}
	projects, err := m.mapProjects("projects", doc.Projects)
	if err != nil {
		return domain.Portfolio{}, err
	}
	featured, err := m.mapProjects("featured_projects", doc.FeaturedProjects)
	if err != nil {
		return domain.Portfolio{}, err
	}
	experience, err := m.mapExperience(doc.Experience)
	if err != nil {
		return domain.Portfolio{}, err
	}
	education, err := m.mapEducation(doc.Education)
	if err != nil {
		return domain.Portfolio{}, err
	}
	certifications, err := m.mapCertifications(doc.Certifications)
	if err != nil {
		return domain.Portfolio{}, err
	}
	studies, err := m.mapStudies(doc.Studies)
	if err != nil {
		return domain.Portfolio{}, err
	}

	return domain.Portfolio{
		PersonalInfo:     info,
		Skills:           skills,
		Projects:         projects,
		Experience:       experience,
		Education:        education,
		Certifications:   certifications,
		Studies:          studies,
		FeaturedProjects: featured,
	}, nil
}

// mapSkills flattens groups in document order, so category order follows
// the first group that names it.
func (m *Mapper) mapSkills(groups []SkillGroup) ([]domain.Skill, error) {
	skills := make([]domain.Skill, 0)
	for gi, g := range groups {
		for si, s := range g.Skills {
			desc := s.Description
			if desc == "" {
				desc = g.Description
			}
			skill, err := domain.NewSkill(domain.Skill{
				Name:        s.Name,
				Category:    g.Category,
				Proficiency: s.Proficiency,
				Icon:        s.Icon,
				Description: desc,
			})
			if err != nil {
				return nil, fmt.Errorf("skill_groups[%d].skills[%d] (%s): %w", gi, si, s.Name, err)
			}
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

func (m *Mapper) mapProjects(section string, in []Project) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(in))
	for i, p := range in {
		created, err := parseDate(p.CreatedDate)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].created_date: %w", section, i, err)
		}
		project, err := domain.NewProject(domain.Project{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Category:     p.Category,
			Technologies: p.Technologies,
			GitHubURL:    p.GitHubURL,
			DemoURL:      p.DemoURL,
			ImageURL:     p.ImageURL,
			CreatedDate:  created,
			Featured:     p.Featured,
		})
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", section, i, err)
		}
		out = append(out, project)
	}
	return out, nil
}

func (m *Mapper) mapExperience(in []Experience) ([]domain.Experience, error) {
	out := make([]domain.Experience, 0, len(in))
	for i, e := range in {
		start, err := parseDate(e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("experience[%d].start_date: %w", i, err)
		}
		end, err := parseDate(e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("experience[%d].end_date: %w", i, err)
		}
		exp, err := domain.NewExperience(domain.Experience{
			ID:           e.ID,
			Company:      e.Company,
			Position:     e.Position,
			Duration:     e.Duration,
			Description:  e.Description,
			Location:     e.Location,
			Technologies: e.Technologies,
			Achievements: e.Achievements,
			StartDate:    start,
			EndDate:      end,
		})
		if err != nil {
			return nil, fmt.Errorf("experience[%d]: %w", i, err)
		}
		out = append(out, exp)
	}
	return out, nil
}

func (m *Mapper) mapEducation(in []Education) ([]domain.Education, error) {
	out := make([]domain.Education, 0, len(in))
	for i, e := range in {
		start, err := parseDate(e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("education[%d].start_date: %w", i, err)
		}
		end, err := parseDate(e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("education[%d].end_date: %w", i, err)
		}
		edu, err := domain.NewEducation(domain.Education{
			ID:           e.ID,
			Institution:  e.Institution,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			StartDate:    start,
			EndDate:      end,
			GPA:          e.GPA,
			Description:  e.Description,
			Achievements: e.Achievements,
		})
		if err != nil {
			return nil, fmt.Errorf("education[%d]: %w", i, err)
		}
		out = append(out, edu)
	}
	return out, nil
}

func (m *Mapper) mapCertifications(in []Certification) ([]domain.Certification, error) {
	out := make([]domain.Certification, 0, len(in))
	for i, c := range in {
		issued, err := parseDate(c.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("certifications[%d].issue_date: %w", i, err)
		}
		expiry, err := parseDate(c.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("certifications[%d].expiry_date: %w", i, err)
		}
		cert, err := domain.NewCertification(domain.Certification{
			ID:              c.ID,
			Name:            c.Name,
			Issuer:          c.Issuer,
			IssueDate:       issued,
			ExpiryDate:      expiry,
			CredentialID:    c.CredentialID,
			CredentialURL:   c.CredentialURL,
			VerificationURL: c.VerificationURL,
			Description:     c.Description,
			SkillsValidated: c.SkillsValidated,
		})
		if err != nil {
			return nil, fmt.Errorf("certifications[%d]: %w", i, err)
		}
		out = append(out, cert)
	}
	return out, nil
}

func (m *Mapper) mapStudies(in []Study) ([]domain.Study, error) {
	out := make([]domain.Study, 0, len(in))
	for i, s := range in {
		completed, err := parseDate(s.CompletionDate)
		if err != nil {
			return nil, fmt.Errorf("studies[%d].completion_date: %w", i, err)
		}
		study, err := domain.NewStudy(domain.Study{
			ID:             s.ID,
			Title:          s.Title,
			Institution:    s.Institution,
			Description:    s.Description,
			YearCompleted:  s.YearCompleted,
			Grade:          s.Grade,
			Duration:       s.Duration,
			Specialization: s.Specialization,
			ImageURL:       s.ImageURL,
			Skills:         s.Skills,
			CompletionDate: completed,
			SkillsAcquired: s.SkillsAcquired,
		})
		if err != nil {
			return nil, fmt.Errorf("studies[%d]: %w", i, err)
		}
		out = append(out, study)
	}
	return out, nil
}

// parseDate maps "" to the zero time, which the domain reads as absent.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}
