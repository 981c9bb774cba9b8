package handler

import (
	"solver-matching-engine/internal/adapter/http/middleware"
	redisStore "solver-matching-engine/internal/adapter/storage/redis"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerReader
	Matcher        ports.Matcher
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The whole surface is read-only: matching happens on the watcher path, not
// through HTTP.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies ledger RPC + Redis when enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Rate limit rules
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

	// API v1 routes
	v1 := r.Group("/api/v1")

	paymentHandler := NewPaymentHandler(deps.Ledger, deps.Matcher)
	payments := v1.Group("/payments")
	{
		payments.GET("/:id", rl("payments"), paymentHandler.GetPayment)
		payments.GET("/:id/candidates", rl("candidates"), paymentHandler.GetCandidates)
	}

	solverHandler := NewSolverHandler(deps.Ledger)
	solvers := v1.Group("/solvers")
	{
		solvers.GET("", rl("solvers"), solverHandler.ListSolvers)
		solvers.GET("/:address", rl("solvers"), solverHandler.GetSolver)
	}

	return r
}
