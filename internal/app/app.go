package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/chat"
	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/contact"
	"github.com/MrSnakeDoc/folio/internal/content"
	"github.com/MrSnakeDoc/folio/internal/httpserver"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/metrics"
	"github.com/MrSnakeDoc/folio/internal/pages"
	"github.com/MrSnakeDoc/folio/internal/portfolio"
	"github.com/MrSnakeDoc/folio/internal/redis"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	intake      *contact.Intake
	redisClient *goredis.Client
}

// New builds every component once. The portfolio is loaded and validated
// here, before the server accepts any request.
func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	svc, err := loadPortfolio(cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	renderer, err := pages.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	notifiers := make([]contact.Notifier, 0, 2)

	// Redis is optional; when configured it must be reachable at startup.
	var (
		redisClient *goredis.Client
		outbox      *redisstore.Store
	)
	if cfg.OutboxEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		outbox = redisstore.NewStore(redisClient).WithRetention(cfg.OutboxTTL, cfg.OutboxSize)
		notifiers = append(notifiers, contact.NewOutboxNotifier(outbox))
		loggerClient.Info("contact outbox enabled",
			logger.Duration("ttl", cfg.OutboxTTL),
			logger.Int64("max_size", cfg.OutboxSize))
	} else {
		loggerClient.Info("redis not configured, contact messages are logged only")
	}

	telegramOn := false
	if cfg.TelegramEnabled() {
		tg, err := contact.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			// Notifications are best effort; the site still works without them.
			loggerClient.Warn("telegram notifications disabled", logger.Error(err))
		} else {
			notifiers = append(notifiers, tg)
			telegramOn = true
			loggerClient.Info("telegram notifications enabled")
		}
	}

	intake := contact.NewIntake(loggerClient.With(logger.String("component", "contact")), notifiers...)

	chatProxy := chat.New(chat.Options{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.ChatTimeout,
	}, loggerClient.With(logger.String("component", "chat")))

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		ServiceName:  version.Service,
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Portfolio:    svc,
		Pages:        pages.NewBuilder(svc, pages.DefaultSite(cfg.SiteTitle, version.Version)),
		Renderer:     renderer,
		Contact:      intake,
		Chat:         chatProxy,
		Metrics:      metrics.NewCollector(),
		Outbox:       outbox,
		Telegram:     telegramOn,
		ContactRateLimit: deps.RateLimit{
			Burst:     cfg.ContactRateBurst,
			PerMinute: cfg.ContactRatePerMin,
		},
		ChatRateLimit: deps.RateLimit{
			Burst:     cfg.ChatRateBurst,
			PerMinute: cfg.ChatRatePerMin,
		},
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		intake:      intake,
		redisClient: redisClient,
	}, nil
}

// loadPortfolio reads the content document and builds the service that
// holds it for the life of the process.
func loadPortfolio(cfg *config.Config, log logger.Logger) (*portfolio.Service, error) {
	loader := content.NewLoader(cfg.ContentFile)
	doc, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio content: %w", err)
	}
	p, err := content.NewMapper().MapPortfolio(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio content in %s: %w", loader.Source(), err)
	}

	log.Info("portfolio loaded",
		logger.String("source", loader.Source()),
		logger.Int("projects", len(p.Projects)),
		logger.Int("featured", len(p.FeaturedProjects)),
		logger.Int("skills", len(p.Skills)),
		logger.Int("certifications", len(p.Certifications)))

	return portfolio.NewService(p, time.Now), nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Notifications still in flight are bounded by the notify timeout.
	a.intake.Wait()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ folio stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
