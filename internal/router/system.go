package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogful/internal/handler"
	"github.com/deppfellow/blogful/internal/middleware"
)

// registerSystemRoutes registers endpoints that are not part of the blog
// API: health and Prometheus metrics.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, metrics *middleware.MetricsMiddleware) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
