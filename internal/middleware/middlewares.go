package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/deppfellow/blogful/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// they are built once and reused during router setup.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic and adds custom attributes. It degrades to
	// a no-op without a New Relic application.
	Tracing *TracingMiddleware

	// Metrics records Prometheus request metrics and serves /metrics.
	Metrics *MetricsMiddleware
}

// NewMiddlewares constructs all middleware components. Metrics are
// registered on a registry owned by the returned value.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		Metrics:         NewMetricsMiddleware(prometheus.NewRegistry()),
	}
}
