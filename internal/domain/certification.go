package domain

import (
	"slices"
	"time"
)

type Certification struct {
	ID              string
	Name            string
	Issuer          string
	IssueDate       time.Time
	ExpiryDate      time.Time
	CredentialID    string
	CredentialURL   string
	VerificationURL string
	Description     string
	SkillsValidated []string
}

func NewCertification(c Certification) (Certification, error) {
	if err := required("id", "ID", c.ID); err != nil {
		return Certification{}, err
	}
	if err := required("name", "Name", c.Name); err != nil {
		return Certification{}, err
	}
	if err := required("issuer", "Issuer", c.Issuer); err != nil {
		return Certification{}, err
	}
	if c.IssueDate.IsZero() {
		return Certification{}, invalid("issue_date", "Issue date is required")
	}
	return c.Clone(), nil
}

// IsValid holds when the certification never expires or expires after now.
func (c Certification) IsValid(now time.Time) bool {
	if c.ExpiryDate.IsZero() {
		return true
	}
	return now.Before(c.ExpiryDate)
}

// URL prefers the credential document over the issuer's verification page.
func (c Certification) URL() string {
	if c.CredentialURL != "" {
		return c.CredentialURL
	}
	return c.VerificationURL
}

func (c Certification) Clone() Certification {
	c.SkillsValidated = slices.Clone(c.SkillsValidated)
	return c
}
