package mw

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MrSnakeDoc/folio/internal/utils"
)

// MsgTooManyRequests is the envelope message sent with a 429.
const MsgTooManyRequests = "Too many requests. Please try again later."

type RateLimitConfig struct {
	Burst             int
	RefillPerIPPerMin int
	MaxEntries        int           // sweep idle visitors early past this size, 0 = unbounded
	SweepInterval     time.Duration // default 1m
	IdleTTL           time.Duration // default 15m
	TrustProxy        bool          // resolve IP from proxy headers when true
	Now               func() time.Time
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	if c.SweepInterval <= 0 {
		c.SweepInterval = time.Minute
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = 15 * time.Minute
	}
	if c.Burst < 1 {
		c.Burst = 1
	}
	if c.RefillPerIPPerMin < 1 {
		c.RefillPerIPPerMin = 1
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// visitor is one client's token bucket.
type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// limiter keeps one rate.Limiter per client IP and forgets idle ones.
type limiter struct {
	cfg       RateLimitConfig
	every     rate.Limit
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	cfg = cfg.withDefaults()
	return &limiter{
		cfg:       cfg,
		every:     rate.Limit(float64(cfg.RefillPerIPPerMin) / 60.0),
		visitors:  make(map[string]*visitor),
		lastSweep: cfg.Now(),
	}
}

// take consumes one token for key. When none is left it returns how many
// seconds until the next one.
func (l *limiter) take(key string, now time.Time) (ok bool, remaining, retryAfter int) {
	l.mu.Lock()
	full := l.cfg.MaxEntries > 0 && len(l.visitors) >= l.cfg.MaxEntries
	if full || now.Sub(l.lastSweep) >= l.cfg.SweepInterval {
		l.sweep(now)
	}
	v, found := l.visitors[key]
	if !found {
		v = &visitor{lim: rate.NewLimiter(l.every, l.cfg.Burst)}
		l.visitors[key] = v
	}
	v.seen = now
	l.mu.Unlock()

	if !v.lim.AllowN(now, 1) {
		wait := math.Ceil((1 - v.lim.TokensAt(now)) / float64(l.every))
		return false, 0, max(int(wait), 1)
	}
	return true, max(int(v.lim.TokensAt(now)), 0), 0
}

// sweep forgets visitors idle longer than IdleTTL. Caller holds l.mu.
func (l *limiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.seen) > l.cfg.IdleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// RateLimit applies a per-IP token bucket. Rejections carry Retry-After and
// the JSON error envelope used by the API.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newLimiter(cfg)
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, retry := l.take(utils.ClientIP(r, l.cfg.TrustProxy), l.cfg.Now())

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				tooManyRequests(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": MsgTooManyRequests,
	})
}
