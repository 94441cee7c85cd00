package pages

import (
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/portfolio"
)

// Common is embedded in every page context.
type Common struct {
	Page        string
	Site        Site
	Navigation  []NavItem
	SocialLinks []SocialLink
	Theme       map[string]string
}

type HomePage struct {
	Common
	PersonalInfo     domain.PersonalInfo
	FeaturedProjects []domain.Project
	CurrentPosition  *domain.Experience
	SkillsByCategory portfolio.SkillGroups
	Studies          []domain.Study
	Experience       []domain.Experience
	Certifications   []domain.Certification
}

type AboutPage struct {
	Common
	PersonalInfo   domain.PersonalInfo
	Education      []domain.Education
	Certifications []domain.Certification
}

type ProjectsPage struct {
	Common
	Projects         []domain.Project
	FeaturedProjects []domain.Project
	Categories       []string
	SelectedCategory string
}

type ExperiencePage struct {
	Common
	Experience      []domain.Experience
	CurrentPosition *domain.Experience
}

type SkillsPage struct {
	Common
	SkillsByCategory portfolio.SkillGroups
}

type ContactPage struct {
	Common
	PersonalInfo domain.PersonalInfo
}

type ErrorPage struct {
	Common
	Message string
}

// Builder assembles page contexts from the portfolio service.
type Builder struct {
	svc  *portfolio.Service
	site Site
}

func NewBuilder(svc *portfolio.Service, site Site) *Builder {
	return &Builder{svc: svc, site: site}
}

func (b *Builder) common(page string) Common {
	return Common{
		Page:        page,
		Site:        b.site,
		Navigation:  Navigation,
		SocialLinks: SocialLinks,
		Theme:       ThemeColors,
	}
}

func (b *Builder) current() *domain.Experience {
	if cur, ok := b.svc.CurrentExperience(); ok {
		return &cur
	}
	return nil
}

func (b *Builder) Home() HomePage {
	return HomePage{
		Common:           b.common("home"),
		PersonalInfo:     b.svc.PersonalInfo(),
		FeaturedProjects: b.svc.FeaturedProjects(),
		CurrentPosition:  b.current(),
		SkillsByCategory: b.svc.SkillsByCategory(),
		Studies:          b.svc.Studies(),
		Experience:       b.svc.Experience(),
		Certifications:   b.svc.ActiveCertifications(),
	}
}

// About lists active certifications only.
func (b *Builder) About() AboutPage {
	return AboutPage{
		Common:         b.common("about"),
		PersonalInfo:   b.svc.PersonalInfo(),
		Education:      b.svc.Education(),
		Certifications: b.svc.ActiveCertifications(),
	}
}

// Projects filters by category; "" shows every project.
func (b *Builder) Projects(category string) ProjectsPage {
	return ProjectsPage{
		Common:           b.common("projects"),
		Projects:         b.svc.ProjectsByCategory(category),
		FeaturedProjects: b.svc.FeaturedProjects(),
		Categories:       b.svc.ProjectCategories(),
		SelectedCategory: category,
	}
}

func (b *Builder) Experience() ExperiencePage {
	return ExperiencePage{
		Common:          b.common("experience"),
		Experience:      b.svc.Experience(),
		CurrentPosition: b.current(),
	}
}

func (b *Builder) Skills() SkillsPage {
	return SkillsPage{
		Common:           b.common("skills"),
		SkillsByCategory: b.svc.SkillsByCategory(),
	}
}

func (b *Builder) Contact() ContactPage {
	return ContactPage{
		Common:       b.common("contact"),
		PersonalInfo: b.svc.PersonalInfo(),
	}
}

func (b *Builder) Error(message string) ErrorPage {
	return ErrorPage{
		Common:  b.common("error"),
		Message: message,
	}
}
