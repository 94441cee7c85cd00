package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

const (
	msgPageError    = "Something went wrong while loading this page."
	msgPageNotFound = "The page you are looking for does not exist."
)

// renderPage writes an HTML page. A template failure falls back to the
// error page, and to plain text if even that fails.
func renderPage(d deps.Deps, w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := d.Renderer.Render(&buf, page, data); err != nil {
		d.Logger.Error("page render failed",
			logger.String("page", page),
			logger.Error(err))

		buf.Reset()
		if page == "error" || d.Renderer.Render(&buf, "error", d.Pages.Error(msgPageError)) != nil {
			http.Error(w, msgPageError, http.StatusInternalServerError)
			return
		}
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusOK, "home", d.Pages.Home())
	}
}

func About(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusOK, "about", d.Pages.About())
	}
}

// ProjectsPage lists projects, filtered by the optional {category} segment.
func ProjectsPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusOK, "projects", d.Pages.Projects(chi.URLParam(r, "category")))
	}
}

func ExperiencePage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusOK, "experience", d.Pages.Experience())
	}
}

func SkillsPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusOK, "skills", d.Pages.Skills())
	}
}

func ContactPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusOK, "contact", d.Pages.Contact())
	}
}

func NotFound(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(d, w, http.StatusNotFound, "error", d.Pages.Error(msgPageNotFound))
	}
}
