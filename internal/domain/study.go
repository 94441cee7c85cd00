package domain

import (
	"slices"
	"time"
)

// Study is an academic programme (degree or master) shown with its diploma.
type Study struct {
	ID             string
	Title          string
	Institution    string
	Description    string
	YearCompleted  string
	Grade          string
	Duration       string
	Specialization string
	ImageURL       string
	Skills         []string
	CompletionDate time.Time
	SkillsAcquired []string
}

func NewStudy(s Study) (Study, error) {
	return s.Clone(), nil
}

func (s Study) Clone() Study {
	s.Skills = slices.Clone(s.Skills)
	s.SkillsAcquired = slices.Clone(s.SkillsAcquired)
	return s
}
