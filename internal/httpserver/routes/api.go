package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
)

func init() { Register("api", registerAPI) }

// limiterEntries caps tracked visitor buckets per limiter.
const limiterEntries = 10_000

func rateLimit(rl deps.RateLimit, trustProxy bool) Middleware {
	return mw.RateLimit(mw.RateLimitConfig{
		Burst:             rl.Burst,
		RefillPerIPPerMin: rl.PerMinute,
		MaxEntries:        limiterEntries,
		TrustProxy:        trustProxy,
	})
}

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(api chi.Router) {
		api.Get("/portfolio", handlers.Portfolio(d))
		api.Get("/projects", handlers.Projects(d))
		api.Get("/skills", handlers.Skills(d))
		api.Get("/experience", handlers.Experience(d))
		api.Get("/certifications", handlers.Certifications(d))
		api.Get("/studies", handlers.Studies(d))

		api.With(rateLimit(d.ContactRateLimit, d.TrustProxy)).Post("/contact", handlers.Contact(d))
		api.With(rateLimit(d.ChatRateLimit, d.TrustProxy)).Post("/chat", handlers.Chat(d))
	})
}
