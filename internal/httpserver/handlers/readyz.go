package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

type readyzResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Readyz reports whether the portfolio and templates are loaded. The chat
// upstream and the contact outbox are optional and never block readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"portfolio": "ok",
			"templates": "ok",
		}
		if d.Portfolio == nil || d.Portfolio.PersonalInfo().Name == "" {
			checks["portfolio"] = "error"
		}
		if d.Renderer == nil {
			checks["templates"] = "error"
		}

		for _, v := range checks {
			if v != "ok" {
				writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Status: "not_ready", Checks: checks})
				return
			}
		}
		writeJSON(w, http.StatusOK, readyzResponse{Status: "ready", Checks: checks})
	}
}
