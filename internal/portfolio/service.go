// Package portfolio serves read-only queries over the site's content.
package portfolio

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// Clock returns the reference time used for derived values such as
// certification validity.
type Clock func() time.Time

// Service owns the one Portfolio aggregate built at startup. Every query
// returns a copy, so callers can never mutate the shared state.
type Service struct {
	portfolio domain.Portfolio
	now       Clock
}

// NewService takes ownership of p. A nil clock means time.Now.
func NewService(p domain.Portfolio, now Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		portfolio: p.Clone(),
		now:       now,
	}
}

// Now is the service's reference time.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Portfolio() domain.Portfolio {
	return s.portfolio.Clone()
}

func (s *Service) PersonalInfo() domain.PersonalInfo {
	return s.portfolio.PersonalInfo
}

func (s *Service) Skills() []domain.Skill {
	return cloneSlice(s.portfolio.Skills)
}

// SkillGroup is one category of skills.
type SkillGroup struct {
	Category string
	Skills   []domain.Skill
}

// SkillGroups keeps categories in first-occurrence order.
type SkillGroups []SkillGroup

// SkillsByCategory groups skills by category. Categories appear in the order
// they are first seen and skills keep their relative order.
func (s *Service) SkillsByCategory() SkillGroups {
	groups := make(SkillGroups, 0)
	index := make(map[string]int)
	for _, sk := range s.portfolio.Skills {
		i, ok := index[sk.Category]
		if !ok {
			i = len(groups)
			index[sk.Category] = i
			groups = append(groups, SkillGroup{Category: sk.Category})
		}
		groups[i].Skills = append(groups[i].Skills, sk.Clone())
	}
	return groups
}

// MarshalJSON encodes the groups as a JSON object whose keys keep group
// order. encoding/json would sort a map's keys.
func (g SkillGroups) MarshalJSON() ([]byte, error) {
	return g.marshalWith(func(sk domain.Skill) any { return sk })
}

// MarshalSkillsWith encodes the groups as an ordered object, mapping each
// skill through fn.
func (g SkillGroups) MarshalSkillsWith(fn func(domain.Skill) any) ([]byte, error) {
	return g.marshalWith(fn)
}

func (g SkillGroups) marshalWith(fn func(domain.Skill) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		items := make([]any, 0, len(group.Skills))
		for _, sk := range group.Skills {
			items = append(items, fn(sk))
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FeaturedProjects returns the curated featured list. It is not derived from
// each project's Featured flag.
func (s *Service) FeaturedProjects() []domain.Project {
	return cloneSlice(s.portfolio.FeaturedProjects)
}

func (s *Service) Projects() []domain.Project {
	return cloneSlice(s.portfolio.Projects)
}

// ProjectsByCategory filters projects by exact category. An empty category
// returns every project. No match yields an empty, non-nil slice.
func (s *Service) ProjectsByCategory(category string) []domain.Project {
	if category == "" {
		return s.Projects()
	}
	out := make([]domain.Project, 0)
	for _, p := range s.portfolio.Projects {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ProjectCategories lists distinct project categories in first-seen order.
func (s *Service) ProjectCategories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.portfolio.Projects {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *Service) Experience() []domain.Experience {
	return cloneSlice(s.portfolio.Experience)
}

// CurrentExperience returns the first position without an end date.
func (s *Service) CurrentExperience() (domain.Experience, bool) {
	return s.portfolio.CurrentPosition()
}

func (s *Service) Education() []domain.Education {
	return cloneSlice(s.portfolio.Education)
}

func (s *Service) Certifications() []domain.Certification {
	return cloneSlice(s.portfolio.Certifications)
}

// ActiveCertifications returns the certifications valid at the service clock.
func (s *Service) ActiveCertifications() []domain.Certification {
	return s.portfolio.ActiveCertifications(s.now())
}

func (s *Service) Studies() []domain.Study {
	return cloneSlice(s.portfolio.Studies)
}

func cloneSlice[T interface{ Clone() T }](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
