package handler

import (
	"net/http"

	"pos-settlement/internal/adapter/http/middleware"
	redisStore "pos-settlement/internal/adapter/storage/redis"
	"pos-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SettlementSvc  ports.SettlementService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	Revocations    ports.SessionRevocations // nil = revocation check disabled
	NewSession     middleware.SessionBuilder
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        http.Handler       // nil = no metrics endpoint
	MetricsPath    string
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Session-authenticated API ---
	sessionAuth := middleware.SessionAuth(deps.TokenSvc, deps.Revocations, deps.NewSession, deps.Logger)
	v1 := r.Group("/api/v1", sessionAuth)

	// Audit logging (after response, needs the session)
	if deps.AuditSvc != nil {
		v1.Use(middleware.AuditLog(deps.AuditSvc))
	}

	settlementHandler := NewSettlementHandler(deps.SettlementSvc, deps.ReportingSvc)
	settlements := v1.Group("/settlements")
	{
		settlements.POST("/evaluate", rl("evaluate"), settlementHandler.Evaluate)
		settlements.POST("/split", rl("evaluate"), settlementHandler.Split)
		settlements.GET("/stats", rl("stats"), settlementHandler.GetStats)
	}

	attemptHandler := NewAttemptHandler(deps.SettlementSvc)
	attempts := v1.Group("/attempts")
	{
		attempts.POST("", rl("attempts"), attemptHandler.Open)
		attempts.GET("/:id", rl("attempts"), attemptHandler.Get)
		attempts.PUT("/:id/tendered", rl("evaluate"), attemptHandler.UpdateTendered)
		attempts.POST("/:id/split", rl("attempts"), attemptHandler.Split)
		attempts.POST("/:id/confirm", rl("confirm"), attemptHandler.Confirm)
		attempts.DELETE("/:id", rl("attempts"), attemptHandler.Abandon)
	}

	return r
}
