package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RouterConfig collects everything the HTTP router serves.
type RouterConfig struct {
	ServiceName string
	Logger      *slog.Logger
	Score       *ScoreHandler
	Health      *HealthHandler

	// Metrics is mounted at GET /metrics when non-nil.
	Metrics http.Handler
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		gin.Recovery(),
		otelgin.Middleware(cfg.ServiceName),
		RequestIDMiddleware(),
		LoggingMiddleware(cfg.Logger),
	)

	cfg.Health.RegisterRoutes(r)
	cfg.Score.RegisterRoutes(r)
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found", Code: CodeNotFound})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed", Code: CodeMethodNotAllowed})
	})

	return r
}
