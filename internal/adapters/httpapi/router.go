package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haulpath/tripplan/internal/adapters/metrics"
	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/domain/driver"
)

// RouterConfig carries the dependencies the HTTP router needs
type RouterConfig struct {
	Mediator common.Mediator

	// Drivers backs the /health database probe.
	Drivers driver.Repository

	// Logger is attached to every request context so application
	// handlers can emit structured entries. Optional.
	Logger common.Logger

	// AllowedOrigins for CORS. Empty allows any origin.
	AllowedOrigins []string

	// Providers lists the directions providers for /providers/, in chain
	// preference order.
	Providers []ProviderStatus

	// HTTPMetrics records request counts and latencies. Nil disables
	// collection.
	HTTPMetrics *metrics.HTTPMetricsCollector
}

// NewRouter assembles the chi router with CORS, logging, and metrics
// middleware and every API route.
func NewRouter(cfg RouterConfig) chi.Router {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(requestLogger(cfg.Logger))
	r.Use(metrics.HTTPMetricsMiddleware(cfg.HTTPMetrics))

	planTrip := NewPlanTripHandler(cfg.Mediator)
	drivers := NewDriverHandler(cfg.Mediator)
	providers := NewProviderHandler(cfg.Providers)
	health := NewHealthHandler(cfg.Drivers)

	r.Post("/plan-trip/", planTrip.PlanTrip)
	r.Get("/drivers/", drivers.List)
	r.Post("/drivers/", drivers.Create)
	r.Get("/drivers/{driverID}/logs/", drivers.Logs)
	r.Get("/providers/", providers.Status)
	r.Get("/health", health.Check)

	if metrics.IsEnabled() {
		r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	}

	return r
}

// requestLogger attaches the process logger to each request context
func requestLogger(logger common.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger != nil {
				r = r.WithContext(common.WithLogger(r.Context(), logger))
			}
			next.ServeHTTP(w, r)
		})
	}
}
