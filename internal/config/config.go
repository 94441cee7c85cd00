package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultSiteTitle = "Adrian Infantes | AI Engineer & Cybersecurity"

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout middleware (ex: 30s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ContentFile string // optional YAML override of the embedded portfolio content
	SiteTitle   string // page <title>

	// Chat
	OpenAIAPIKey  string        // empty => chatbot unavailable for the life of the process
	OpenAIBaseURL string        // OpenAI-compatible API base
	OpenAIModel   string        // ex: "gpt-4"
	ChatTimeout   time.Duration // upstream completion timeout

	// Rate limits (per client IP)
	ContactRateBurst  int
	ContactRatePerMin int
	ChatRateBurst     int
	ChatRatePerMin    int

	// Redis contact outbox (optional, empty address = disabled)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number, required when RedisAddr is set
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
	OutboxTTL           time.Duration // how long a stored contact message is kept
	OutboxSize          int64         // max messages kept in the outbox list

	// Telegram contact notifications (both required to enable)
	TelegramToken  string
	TelegramChatID int64

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict /infra and /metrics to specific IPs (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FOLIO_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("FOLIO_REQUEST_TIMEOUT", 30*time.Second),

		// Logging
		LogLevel:  getenv("FOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FOLIO_PRETTY_LOG", true),

		// Content
		ContentFile: getenv("FOLIO_CONTENT_FILE", ""), // Optional, empty = embedded content
		SiteTitle:   getenv("FOLIO_SITE_TITLE", DefaultSiteTitle),

		// Chat settings
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: getenv("FOLIO_OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getenv("FOLIO_OPENAI_MODEL", "gpt-4"),
		ChatTimeout:   mustDuration("FOLIO_CHAT_TIMEOUT", 20*time.Second),

		// Rate limits
		ContactRateBurst:  getenvInt("FOLIO_CONTACT_RATE_BURST", 5),
		ContactRatePerMin: getenvInt("FOLIO_CONTACT_RATE_PER_MIN", 5),
		ChatRateBurst:     getenvInt("FOLIO_CHAT_RATE_BURST", 10),
		ChatRatePerMin:    getenvInt("FOLIO_CHAT_RATE_PER_MIN", 10),

		// Redis settings
		RedisAddr:           getenv("FOLIO_REDIS_ADDR", ""),
		RedisUser:           getenv("FOLIO_REDIS_USERNAME", ""),
		RedisPassword:       getenv("FOLIO_REDIS_PASSWORD", ""),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		OutboxTTL:           mustDuration("FOLIO_OUTBOX_TTL", 30*24*time.Hour),
		OutboxSize:          int64(getenvInt("FOLIO_OUTBOX_SIZE", 1000)),

		// Telegram
		TelegramToken:  getenv("FOLIO_TELEGRAM_TOKEN", ""),
		TelegramChatID: getenvInt64("FOLIO_TELEGRAM_CHAT_ID", 0),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("FOLIO_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("FOLIO_ADMIN_CIDRS", "")),
		TrustProxy:   mustBool("FOLIO_TRUST_PROXY", false),
	}

	// The DB number is only mandatory once the outbox is enabled.
	if cfg.RedisAddr != "" {
		cfg.RedisDB = requireEnvInt("FOLIO_REDIS_DB")
	}

	if (cfg.TelegramToken == "") != (cfg.TelegramChatID == 0) {
		panic("❌ FATAL: FOLIO_TELEGRAM_TOKEN and FOLIO_TELEGRAM_CHAT_ID must be set together")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// ChatEnabled reports whether a completion credential was supplied.
func (c *Config) ChatEnabled() bool { return c.OpenAIAPIKey != "" }

// OutboxEnabled reports whether contact messages go to redis.
func (c *Config) OutboxEnabled() bool { return c.RedisAddr != "" }

// TelegramEnabled reports whether contact messages are pushed to Telegram.
func (c *Config) TelegramEnabled() bool { return c.TelegramToken != "" && c.TelegramChatID != 0 }

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	for _, s := range []*string{&cp.RedisPassword, &cp.OpenAIAPIKey, &cp.TelegramToken} {
		if *s != "" {
			*s = "***REDACTED***"
		}
	}
	return cp
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getenvInt64 panics on a malformed value: a silently ignored chat id would
// disable notifications without notice.
func getenvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
