// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, pages and route handlers. It centralizes cross-cutting
// concerns: tracing, correlation IDs, redacted access logs, panic recovery,
// metrics, rate limiting, CORS, security headers and compression.
//
// Everything the router needs is injected: the record store, the assistant
// responder and the configuration. Nothing here reads globals.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/tbourn/holistiq/docs" // swagger spec registration

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/config"
	"github.com/tbourn/holistiq/internal/export"
	"github.com/tbourn/holistiq/internal/http/handlers"
	"github.com/tbourn/holistiq/internal/http/middleware"
	"github.com/tbourn/holistiq/internal/http/pages"
	"github.com/tbourn/holistiq/internal/repo"
	"github.com/tbourn/holistiq/internal/services"
)

const (
	maxBodyBytes  = 1 << 20
	healthTimeout = 2 * time.Second
)

// Downloads keep their Content-Length; PDFs are already compressed.
var gzipExcluded = []string{"/api/export-pdf", "/api/export-json", "/api/export-yaml", "/metrics"}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Store   string `json:"store" example:"up"`
	Backend string `json:"backend" example:"mongo"`
}

// Deps are the runtime dependencies of the HTTP layer.
type Deps struct {
	Store     *repo.Store
	Responder assistant.Responder
}

// RegisterRoutes attaches middleware, pages and API endpoints to r.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: correlation id and optional caller id
//  3. Logger: structured access logs with PII scrubbing
//  4. Recovery: capture panics after the logger is attached
//  5. Body size limit
//  6. Metrics
//  7. CORS, security headers and gzip
//
// The rate limiter only guards /api; pages and static assets are exempt.
func RegisterRoutes(r *gin.Engine, deps Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(middleware.LogOptions{
		SkipPaths:   []string{"/health", "/metrics"},
		MaskHeaders: []string{"X-API-Key"},
		Headers:     cfg.Debug,
	}))
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(cfg.CORS))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(gzipExcluded)))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", healthHandler(deps.Store))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	site := r.Group("", middleware.ContentSecurityPolicy(""))
	pages.MustNew().Register(site)

	// Dependency injection: services <- store/responder
	h := handlers.New(
		services.NewTrackingService(deps.Store),
		services.NewChatService(deps.Store, deps.Responder),
		services.NewAssessmentService(deps.Store),
		services.NewHealthReportService(deps.Store),
		export.New(deps.Store),
	)

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	api := r.Group("/api", rl.Handler())
	{
		// Tracking
		api.POST("/calculate-bmi", h.CalculateBMI)
		api.POST("/bmi", h.CalculateBMI)
		api.POST("/save-workout", h.SaveWorkout)
		api.POST("/save-meditation", h.SaveMeditation)
		api.GET("/reports-data", h.ReportsData)
		api.POST("/health-data", h.SaveHealthData)
		api.GET("/health-data", h.LatestHealthData)

		// Assistant
		api.POST("/chatbot", h.Chatbot)

		// Assessments and reports
		api.GET("/assessments/:type", h.GetAssessment)
		api.POST("/assessments/:type/submit", h.SubmitAssessment)
		api.POST("/health-report", h.CreateHealthReport)
		api.GET("/health-report/:id", h.GetHealthReport)

		// Export
		api.GET("/export-json", h.ExportJSON)
		api.GET("/export-yaml", h.ExportYAML)
		api.GET("/export-pdf", h.ExportPDF)
	}
}

// healthHandler godoc
// @ID          health
// @Summary     Liveness and store status
// @Description Always 200 while the process serves traffic; store is "down" in degraded mode.
// @Tags        Health
// @Produce     json
// @Success     200  {object}  httpapi.HealthResponse
// @Router      /health [get]
func healthHandler(store *repo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		resp := HealthResponse{Status: "ok", Store: "up", Backend: store.BackendName()}
		if err := store.Ping(ctx); err != nil {
			resp.Store = "down"
		}
		c.JSON(http.StatusOK, resp)
	}
}

// corsMiddleware allows every origin (without credentials) when no allowlist
// is configured, otherwise only the listed origins.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(cc)
}

// limitBody caps request bodies at maxBytes; reads past the cap fail.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
