package domain

import (
	"slices"
	"strconv"
	"time"
)

type Education struct {
	ID           string
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      time.Time
	GPA          *float64
	Description  string
	Achievements []string
}

func NewEducation(e Education) (Education, error) {
	checks := []struct{ field, label, value string }{
		{"id", "ID", e.ID},
		{"institution", "Institution", e.Institution},
		{"degree", "Degree", e.Degree},
		{"field_of_study", "Field of study", e.FieldOfStudy},
	}
	for _, c := range checks {
		if err := required(c.field, c.label, c.value); err != nil {
			return Education{}, err
		}
	}
	if e.StartDate.IsZero() {
		return Education{}, invalid("start_date", "Start date is required")
	}
	return e.Clone(), nil
}

// Year is the graduation year, or the start year while still enrolled.
func (e Education) Year() string {
	if !e.EndDate.IsZero() {
		return strconv.Itoa(e.EndDate.Year())
	}
	return strconv.Itoa(e.StartDate.Year())
}

func (e Education) Clone() Education {
	if e.GPA != nil {
		gpa := *e.GPA
		e.GPA = &gpa
	}
	e.Achievements = slices.Clone(e.Achievements)
	return e
}
