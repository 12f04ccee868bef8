package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-settlement/config"
	httpHandler "pos-settlement/internal/adapter/http/handler"
	"pos-settlement/internal/adapter/metrics"
	"pos-settlement/internal/adapter/sales"
	pgStorage "pos-settlement/internal/adapter/storage/postgres"
	redisStorage "pos-settlement/internal/adapter/storage/redis"
	"pos-settlement/internal/core/ports"
	"pos-settlement/internal/service"
	"pos-settlement/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("sales_api", cfg.Sales.BaseURL).
		Msg("Starting POS settlement service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	confirmationRepo := pgStorage.NewConfirmationRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	attemptStore := redisStorage.NewAttemptStore(rdb)
	confirmationCache := redisStorage.NewConfirmationCache(rdb)
	submissionGuard := redisStorage.NewSubmissionGuard(rdb)
	revocations := redisStorage.NewSessionRevocations(rdb)
	statsCache := redisStorage.NewStatsCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Sales API client. Each try gets its own deadline; the settlement
	// service bounds the whole submission separately.
	salesClient := sales.NewClient(
		cfg.Sales,
		&http.Client{Timeout: cfg.Sales.Timeout},
		logger.Component(log, "sales"),
	)

	settlementMetrics := metrics.New()

	// Initialize business services
	tokenSvc := service.NewJWTTokenService(cfg.Session.Secret, cfg.Session.Issuer)
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))
	reportingSvc := service.NewReportingService(confirmationRepo, statsCache, cfg.Settlement.StatsTTL, logger.Component(log, "reporting"))
	settlementSvc := service.NewSettlementService(service.SettlementDeps{
		Attempts:      attemptStore,
		Guard:         submissionGuard,
		Gateway:       salesClient,
		Confirmations: confirmationRepo,
		Cache:         confirmationCache,
		Transactor:    transactor,
		Reporting:     reportingSvc,
		Metrics:       settlementMetrics,
	}, service.SettlementOptions{
		AttemptTTL:      cfg.Settlement.AttemptTTL,
		ConfirmationTTL: cfg.Settlement.ConfirmationTTL,
		SubmitTimeout:   cfg.Sales.Timeout * time.Duration(cfg.Sales.MaxRetries+1),
		MaxParties:      cfg.Settlement.MaxParties,
	}, logger.Component(log, "settlement"))

	sessionLog := logger.Component(log, "session")
	newSession := func(token string, claims ports.TokenClaims) ports.Session {
		return service.NewRequestSession(token, claims, revocations, sessionLog)
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	deps := httpHandler.RouterDeps{
		SettlementSvc:  settlementSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		Revocations:    revocations,
		NewSession:     newSession,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = settlementMetrics.Handler()
		deps.MetricsPath = cfg.Metrics.Path
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight confirms run on a detached context bounded by the submit
	// timeout, so give them that long to settle.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second+cfg.Sales.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
