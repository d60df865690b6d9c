package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizdash-core/config"
	httpHandler "bizdash-core/internal/adapter/http/handler"
	"bizdash-core/internal/adapter/sheets"
	pgStorage "bizdash-core/internal/adapter/storage/postgres"
	redisStorage "bizdash-core/internal/adapter/storage/redis"
	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"
	"bizdash-core/internal/service"
	"bizdash-core/pkg/logger"

	"github.com/rs/zerolog"
)

// sheetBackend is a sheet source that can also report its health.
type sheetBackend interface {
	ports.SheetSource
	ports.HealthChecker
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting BizDash Core")

	ctx := context.Background()

	projectsID := sheets.ParseSheetID(cfg.Projects.SheetID)
	callsID := sheets.ParseSheetID(cfg.Calls.SheetID)

	backend, err := newSheetBackend(cfg, projectsID, callsID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize sheet source")
	}
	healthCheckers := []ports.HealthChecker{backend}

	// Optional Redis: per-user dispatch limits and per-client HTTP limits
	var (
		rateLimitStore *redisStorage.RateLimitStore
		limiter        ports.RateLimiter
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		limiter = redisStorage.NewDispatchLimiter(rateLimitStore, cfg.RateLimit.Limit, cfg.RateLimit.Window)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, dispatch rate limiting is off")
	}

	// Optional PostgreSQL: durable dispatch log
	var dispatchLog ports.DispatchLogRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to create dispatch log schema")
		}
		log.Info().Msg("PostgreSQL connected")

		dispatchLog = pgStorage.NewDispatchLogRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Initialize services
	sheetCache := service.NewSheetCache(backend, cfg.Cache.TTL, log)
	projectSvc := service.NewProjectService(sheetCache, projectsID, cfg.Projects.Worksheet, log)
	callSvc := service.NewCallService(sheetCache, callsID, cfg.Calls.Worksheet, log)

	validator, err := service.NewPayloadValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize payload validator")
	}
	stats := service.NewDispatchStats(cfg.Webhook.HistorySize, dispatchLog, log)
	dispatcher := service.NewWebhookDispatcher(
		dispatcherConfig(cfg.Webhook, log),
		validator,
		limiter,
		stats,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		log,
	)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Sheets:         sheetCache,
		Projects:       projectSvc,
		Calls:          callSvc,
		Dispatcher:     dispatcher,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newSheetBackend connects to the Sheets API when a service-account file is
// configured. Otherwise it returns an in-memory source seeded with demo data.
func newSheetBackend(cfg *config.Config, projectsID, callsID string, log zerolog.Logger) (sheetBackend, error) {
	if cfg.Sheets.CredentialsFile != "" {
		account, err := sheets.LoadServiceAccount(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, err
		}
		tokens, err := sheets.NewServiceAccountTokenSource(account, cfg.Sheets.TokenURL, cfg.Sheets.Timeout)
		if err != nil {
			return nil, err
		}
		log.Info().Str("client_email", account.ClientEmail).Msg("Using Google Sheets backend")
		return sheets.NewClient(cfg.Sheets.BaseURL, cfg.Sheets.Timeout, tokens, log), nil
	}

	log.Warn().Msg("No sheets credentials configured, using in-memory sheet source")
	mem := sheets.NewMemorySource()
	if projectsID != "" {
		mem.Seed(projectsID, cfg.Projects.Worksheet, domain.SampleProjects().Values())
	}
	if callsID != "" {
		header := make([]any, len(domain.CallColumns))
		for i, c := range domain.CallColumns {
			header[i] = c
		}
		mem.Seed(callsID, cfg.Calls.Worksheet, [][]any{header})
	}
	return mem, nil
}

// dispatcherConfig maps webhook settings onto the dispatcher, skipping
// endpoint entries that name no known kind.
func dispatcherConfig(wc config.WebhookConfig, log zerolog.Logger) service.DispatcherConfig {
	endpoints := make(map[domain.WebhookKind]string, len(wc.Endpoints))
	for name, url := range wc.Endpoints {
		kind, err := domain.ParseWebhookKind(name)
		if err != nil {
			log.Warn().Str("kind", name).Msg("Ignoring endpoint for unknown webhook kind")
			continue
		}
		endpoints[kind] = url
	}
	return service.DispatcherConfig{
		Endpoints:       endpoints,
		MaxPayloadBytes: wc.MaxPayloadBytes,
		MaxAttempts:     wc.MaxAttempts,
		BaseDelay:       wc.BaseDelay,
		Timeout:         wc.Timeout,
		UserAgentPrefix: wc.UserAgentPrefix,
		SigningSecret:   wc.SigningSecret,
	}
}
