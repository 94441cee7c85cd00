package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

// flag reads a boolean-ish query parameter: only "true", in any case, is true.
func flag(r *http.Request, name string) bool {
	return strings.ToLower(r.URL.Query().Get(name)) == "true"
}

// Portfolio dumps the whole aggregate.
func Portfolio(d deps.Deps) http.HandlerFunc {
	return apiHandler(d, "portfolio", func(r *http.Request) (result, error) {
		return result{data: toPortfolio(d.Portfolio.Portfolio(), d.Portfolio.Now())}, nil
	})
}

// Projects serves every project, the curated featured list with
// featured=true, or the exact-match category filter. featured wins when both
// are given.
func Projects(d deps.Deps) http.HandlerFunc {
	return apiHandler(d, "projects", func(r *http.Request) (result, error) {
		var projects []domain.Project
		if flag(r, "featured") {
			projects = d.Portfolio.FeaturedProjects()
		} else {
			projects = d.Portfolio.ProjectsByCategory(r.URL.Query().Get("category"))
		}
		return withTotal(mapAll(projects, toProject), len(projects)), nil
	})
}

// Skills groups skills by category, keeping first-occurrence order.
func Skills(d deps.Deps) http.HandlerFunc {
	return apiHandler(d, "skills", func(r *http.Request) (result, error) {
		raw, err := d.Portfolio.SkillsByCategory().MarshalSkillsWith(func(s domain.Skill) any {
			return toSkill(s)
		})
		if err != nil {
			return result{}, err
		}
		return result{data: json.RawMessage(raw)}, nil
	})
}

func Experience(d deps.Deps) http.HandlerFunc {
	return apiHandler(d, "experience", func(r *http.Request) (result, error) {
		return result{data: experienceData{
			Experience:      mapAll(d.Portfolio.Experience(), toExperience),
			CurrentPosition: toCurrentPosition(d.Portfolio.CurrentExperience()),
		}}, nil
	})
}

// Certifications keeps only unexpired ones with active=true.
func Certifications(d deps.Deps) http.HandlerFunc {
	return apiHandler(d, "certifications", func(r *http.Request) (result, error) {
		certs := d.Portfolio.Certifications()
		if flag(r, "active") {
			certs = d.Portfolio.ActiveCertifications()
		}
		return withTotal(mapAll(certs, certificationMapper(d.Portfolio.Now())), len(certs)), nil
	})
}

func Studies(d deps.Deps) http.HandlerFunc {
	return apiHandler(d, "studies", func(r *http.Request) (result, error) {
		studies := d.Portfolio.Studies()
		return withTotal(mapAll(studies, toStudy), len(studies)), nil
	})
}
