package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/edusearch/edusearch/internal/config"
	"github.com/edusearch/edusearch/internal/domain"
	"github.com/edusearch/edusearch/internal/httpserver"
	"github.com/edusearch/edusearch/internal/httpserver/deps"
	"github.com/edusearch/edusearch/internal/logger"
	"github.com/edusearch/edusearch/internal/redis"
	"github.com/edusearch/edusearch/internal/search"
	"github.com/edusearch/edusearch/internal/sources/catalog"
	"github.com/edusearch/edusearch/internal/store/memory"
	redisstore "github.com/edusearch/edusearch/internal/store/redis"
	"github.com/edusearch/edusearch/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// The record store lives and dies with the process.
	store := memory.New()
	seedDemoUser(store, loggerClient)

	synthesizer := search.New(loadCatalog(cfg, loggerClient))

	// Redis page cache is optional: no address means search pages are
	// regenerated on every request.
	var redisClient *goredis.Client
	var searchCache *redisstore.Cache
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, search page cache disabled",
				logger.Error(err))
		} else {
			redisClient = client
			searchCache = redisstore.NewCache(client, cfg.SearchCacheTTL)
			loggerClient.Info("search page cache enabled",
				logger.Duration("ttl", cfg.SearchCacheTTL))
		}
	}

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		Store:         store,
		Search:        synthesizer,
		SearchCache:   searchCache,
		DefaultUserID: cfg.DefaultUser,
		HistoryLimit:  cfg.HistoryLimit,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

// seedDemoUser creates the fixed account every request is scoped to.
func seedDemoUser(store *memory.Store, log logger.Logger) {
	user, err := store.CreateUser(domain.NewUser{Username: "demo", Password: "demo123"})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return
		}
		log.Errorf("failed to seed demo user: %v", err)
		os.Exit(1)
	}
	log.Info("demo user created",
		logger.Int("id", user.ID),
		logger.String("username", user.Username))
}

// loadCatalog reads the configured source catalog file, falling back to the
// built-in catalog when no file is configured or loading fails.
func loadCatalog(cfg *config.Config, log logger.Logger) []search.Source {
	if cfg.CatalogFile == "" {
		return nil // synthesizer falls back to defaults
	}

	file, err := catalog.NewLoader(cfg.CatalogFile).Load()
	if err != nil {
		log.Warn("failed to load source catalog, using built-in catalog",
			logger.String("file", cfg.CatalogFile),
			logger.Error(err))
		return nil
	}

	sources := catalog.MapSources(file, log)
	if len(sources) == 0 {
		log.Warn("source catalog is empty, using built-in catalog",
			logger.String("file", cfg.CatalogFile))
		return nil
	}

	log.Info("source catalog loaded",
		logger.String("file", cfg.CatalogFile),
		logger.Int("sources", len(sources)))
	return sources
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting EduSearch v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("EduSearch %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

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

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ EduSearch stopped cleanly")
	return nil
}
