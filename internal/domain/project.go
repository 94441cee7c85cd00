package domain

import (
	"slices"
	"strings"
	"time"
)

// Project is a portfolio entry. ID, Category, URLs and CreatedDate are
// optional; an empty string or zero time means absent.
type Project struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Technologies []string
	GitHubURL    string
	DemoURL      string
	ImageURL     string
	CreatedDate  time.Time
	Featured     bool
}

// NewProject rejects blank titles and descriptions.
func NewProject(p Project) (Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return Project{}, invalid("title", "Project title cannot be empty")
	}
	if strings.TrimSpace(p.Description) == "" {
		return Project{}, invalid("description", "Project description cannot be empty")
	}
	return p.Clone(), nil
}

func (p Project) Clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}
