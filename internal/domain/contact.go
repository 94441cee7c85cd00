package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldRule constrains one contact form field. Zero lengths and a nil
// pattern disable the corresponding check.
type FieldRule struct {
	Field     string
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
}

// ContactRules are evaluated in this order, so the first failing field is
// always the earliest one in the form.
var ContactRules = []FieldRule{
	{
		Field:     "name",
		Required:  true,
		MinLength: 2,
		MaxLength: 50,
		Pattern:   regexp.MustCompile(`^[a-zA-Z\s]+$`),
	},
	{
		Field:    "email",
		Required: true,
		Pattern:  regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`),
	},
	{
		Field:     "subject",
		Required:  true,
		MinLength: 5,
		MaxLength: 100,
	},
	{
		Field:     "message",
		Required:  true,
		MinLength: 10,
		MaxLength: 1000,
	},
}

// Check applies required, min length, max length and pattern in that order
// and returns the first violation.
func (r FieldRule) Check(value string) error {
	label := strings.ToUpper(r.Field[:1]) + r.Field[1:]
	length := utf8.RuneCountInString(value)

	if r.Required && strings.TrimSpace(value) == "" {
		return invalid(r.Field, "%s is required", label)
	}
	if r.MinLength > 0 && length < r.MinLength {
		return invalid(r.Field, "%s must be at least %d characters", label, r.MinLength)
	}
	if r.MaxLength > 0 && length > r.MaxLength {
		return invalid(r.Field, "%s must not exceed %d characters", label, r.MaxLength)
	}
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return invalid(r.Field, "%s format is invalid", label)
	}
	return nil
}

// ContactMessage is a validated contact form submission. It is never
// stored by the site itself.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Timestamp time.Time
}

// NewContactMessage validates every field against ContactRules and stops
// at the first failure. A zero timestamp defaults to the current time.
func NewContactMessage(name, email, subject, message string, at time.Time) (ContactMessage, error) {
	values := map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	}
	for _, rule := range ContactRules {
		if err := rule.Check(values[rule.Field]); err != nil {
			return ContactMessage{}, err
		}
	}
	if at.IsZero() {
		at = time.Now()
	}
	return ContactMessage{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Timestamp: at,
	}, nil
}
