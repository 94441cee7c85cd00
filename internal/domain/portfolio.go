package domain

import "time"

// Portfolio aggregates everything the site shows about its owner.
//
// FeaturedProjects is curated on its own and is not derived from the
// Featured flag of Projects; the two may disagree.
type Portfolio struct {
	PersonalInfo     PersonalInfo
	Skills           []Skill
	Projects         []Project
	Experience       []Experience
	Education        []Education
	Certifications   []Certification
	Studies          []Study
	FeaturedProjects []Project
}

// CurrentPosition returns the first experience without an end date.
func (p Portfolio) CurrentPosition() (Experience, bool) {
	for _, e := range p.Experience {
		if e.IsCurrent() {
			return e.Clone(), true
		}
	}
	return Experience{}, false
}

// ActiveCertifications keeps the certifications still valid at now, in order.
func (p Portfolio) ActiveCertifications(now time.Time) []Certification {
	active := make([]Certification, 0, len(p.Certifications))
	for _, c := range p.Certifications {
		if c.IsValid(now) {
			active = append(active, c.Clone())
		}
	}
	return active
}

// Clone returns a deep copy that shares no slices with p.
func (p Portfolio) Clone() Portfolio {
	return Portfolio{
		PersonalInfo:     p.PersonalInfo,
		Skills:           cloneAll(p.Skills),
		Projects:         cloneAll(p.Projects),
		Experience:       cloneAll(p.Experience),
		Education:        cloneAll(p.Education),
		Certifications:   cloneAll(p.Certifications),
		Studies:          cloneAll(p.Studies),
		FeaturedProjects: cloneAll(p.FeaturedProjects),
	}
}
