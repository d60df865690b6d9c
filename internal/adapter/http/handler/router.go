package handler

import (
	"bizdash-core/internal/adapter/http/middleware"
	redisStore "bizdash-core/internal/adapter/storage/redis"
	"bizdash-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Sheets         ports.SheetService
	Projects       ports.ProjectService
	Calls          ports.CallService
	Dispatcher     ports.WebhookDispatcher
	RateLimitStore *redisStore.RateLimitStore // nil = per-client rate limiting disabled
	HealthCheckers []ports.HealthChecker
	MaxBodyBytes   int64
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 12 << 20
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))
	r.Use(middleware.AuditLog(deps.Logger.With().Str("component", "audit").Logger()))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
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

	v1 := r.Group("/api/v1")

	sheetHandler := NewSheetHandler(deps.Sheets)
	sheets := v1.Group("/sheets")
	{
		// Static routes first so "cache" is never taken as a sheet id.
		sheets.GET("/cache", rl("sheets_read"), sheetHandler.CacheInfo)
		sheets.DELETE("/cache", rl("admin"), sheetHandler.ClearCache)
		sheets.GET("/:source", rl("sheets_read"), sheetHandler.Get)
		sheets.PUT("/:source", rl("sheets_write"), sheetHandler.Replace)
		sheets.POST("/:source/rows", rl("sheets_write"), sheetHandler.AppendRow)
	}

	projectHandler := NewProjectHandler(deps.Projects)
	projects := v1.Group("/projects")
	{
		projects.GET("", rl("sheets_read"), projectHandler.List)
		projects.POST("", rl("sheets_write"), projectHandler.Add)
		projects.PUT("", rl("sheets_write"), projectHandler.Save)
		projects.GET("/quality", rl("sheets_read"), projectHandler.Quality)
	}

	callHandler := NewCallHandler(deps.Calls)
	v1.GET("/calls", rl("sheets_read"), callHandler.List)

	webhookHandler := NewWebhookHandler(deps.Dispatcher)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/dispatch", rl("dispatch"), webhookHandler.DispatchMany)
		webhooks.POST("/:kind/dispatch", rl("dispatch"), webhookHandler.Dispatch)
		webhooks.GET("/history", webhookHandler.History)
		webhooks.GET("/stats", webhookHandler.Stats)
		webhooks.DELETE("/stats", rl("admin"), webhookHandler.ResetStats)
		webhooks.GET("/endpoints", webhookHandler.Endpoints)
		webhooks.PUT("/:kind/endpoint", rl("admin"), webhookHandler.UpdateEndpoint)
	}

	return r
}
