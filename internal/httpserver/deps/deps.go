package deps

import (
	"time"

	"github.com/MrSnakeDoc/folio/internal/chat"
	"github.com/MrSnakeDoc/folio/internal/contact"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/metrics"
	"github.com/MrSnakeDoc/folio/internal/pages"
	"github.com/MrSnakeDoc/folio/internal/portfolio"
	storeredis "github.com/MrSnakeDoc/folio/internal/store/redis"
)

// RateLimit is the per-IP token bucket applied to one POST endpoint.
type RateLimit struct {
	Burst     int
	PerMinute int
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	ServiceName  string
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed on /infra and /metrics
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	Portfolio *portfolio.Service // the one in-memory portfolio
	Pages     *pages.Builder     // page contexts
	Renderer  *pages.Renderer    // html templates
	Contact   *contact.Intake    // contact form validation and notifiers
	Chat      *chat.Proxy        // completion proxy, possibly unavailable
	Metrics   *metrics.Collector // nil disables metrics
	Outbox    *storeredis.Store  // nil when redis is not configured
	Telegram  bool               // telegram notifications enabled

	ContactRateLimit RateLimit
	ChatRateLimit    RateLimit
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
