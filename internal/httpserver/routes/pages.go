package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
)

func init() { Register("pages", registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Home(d))
	r.Get("/home", handlers.Home(d))
	r.Get("/about", handlers.About(d))
	r.Get("/projects", handlers.ProjectsPage(d))
	r.Get("/projects/{category}", handlers.ProjectsPage(d))
	r.Get("/experience", handlers.ExperiencePage(d))
	r.Get("/skills", handlers.SkillsPage(d))
	r.Get("/contact", handlers.ContactPage(d))
	r.NotFound(handlers.NotFound(d))
}
