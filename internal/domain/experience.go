package domain

import (
	"slices"
	"time"
)

// Experience is a position held at a company. Duration is display text;
// StartDate and EndDate are optional and drive the derived values.
type Experience struct {
	ID           string
	Company      string
	Position     string
	Duration     string
	Description  string
	Location     string
	Technologies []string
	Achievements []string
	StartDate    time.Time
	EndDate      time.Time
}

func NewExperience(e Experience) (Experience, error) {
	if err := required("company", "Company", e.Company); err != nil {
		return Experience{}, err
	}
	if err := required("position", "Position", e.Position); err != nil {
		return Experience{}, err
	}
	return e.Clone(), nil
}

// IsCurrent reports whether the position has no end date.
func (e Experience) IsCurrent() bool {
	return e.EndDate.IsZero()
}

// DurationMonths approximates the span in whole calendar months, counting
// up to now for current positions. Days are ignored.
func (e Experience) DurationMonths(now time.Time) int {
	if e.StartDate.IsZero() {
		return 0
	}
	end := e.EndDate
	if end.IsZero() {
		end = now
	}
	return (end.Year()-e.StartDate.Year())*12 + int(end.Month()) - int(e.StartDate.Month())
}

func (e Experience) Clone() Experience {
	e.Technologies = slices.Clone(e.Technologies)
	e.Achievements = slices.Clone(e.Achievements)
	return e
}
