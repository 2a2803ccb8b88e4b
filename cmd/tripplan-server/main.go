package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/haulpath/tripplan/internal/adapters/directions"
	"github.com/haulpath/tripplan/internal/adapters/httpapi"
	"github.com/haulpath/tripplan/internal/adapters/metrics"
	"github.com/haulpath/tripplan/internal/adapters/persistence"
	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/application/setup"
	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/infrastructure/config"
	"github.com/haulpath/tripplan/internal/infrastructure/database"
	"github.com/haulpath/tripplan/internal/infrastructure/pidfile"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: search standard locations)")
	flag.Parse()

	fmt.Println("Trip Planner Server v0.1.0")
	fmt.Println("==========================")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Server.PIDFile)
	pf := pidfile.New(cfg.Server.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("Failed to acquire PID file lock: %v", err)
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Setup database connection
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("Database connected")

	// 2. Initialize repositories
	driverRepo := persistence.NewGormDriverRepository(db)
	recordRepo := persistence.NewGormRecordRepository(db)

	// 3. Initialize metrics collectors when enabled
	var (
		httpCollector    *metrics.HTTPMetricsCollector
		commandCollector *metrics.CommandMetricsCollector
		attemptRecorder  directions.AttemptRecorder
	)
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		httpCollector = metrics.NewHTTPMetricsCollector()
		commandCollector = metrics.NewCommandMetricsCollector()
		directionsCollector := metrics.NewDirectionsMetricsCollector()
		planningCollector := metrics.NewPlanningMetricsCollector()

		collectors := []interface{ Register() error }{
			httpCollector,
			commandCollector,
			directionsCollector,
			planningCollector,
		}
		for _, c := range collectors {
			if err := c.Register(); err != nil {
				return fmt.Errorf("failed to register metrics: %w", err)
			}
		}

		metrics.SetGlobalDirectionsCollector(directionsCollector)
		metrics.SetGlobalPlanningCollector(planningCollector)
		attemptRecorder = directionsCollector
		fmt.Println("Metrics enabled")
	}

	// 4. Initialize route provider chain
	routeProvider := buildRouteProvider(cfg, attemptRecorder)

	// 5. Create mediator with all handlers registered
	registry := setup.NewHandlerRegistry(routeProvider, driverRepo, recordRepo, nil) // nil = use RealClock
	med, err := registry.CreateConfiguredMediator()
	if err != nil {
		return fmt.Errorf("failed to configure mediator: %w", err)
	}
	med.RegisterMiddleware(metrics.PrometheusMiddleware(commandCollector))

	// 6. Assemble HTTP router and server
	logger := common.NewStdLogger(nil, cfg.Logging.Level)
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Mediator:       med,
		Drivers:        driverRepo,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Providers:      providerStatuses(cfg),
		HTTPMetrics:    httpCollector,
	})

	server := httpapi.NewServer(&cfg.Server, router)

	fmt.Printf("\nListening on http://%s\n", server.Addr())
	fmt.Println("Endpoints:")
	fmt.Println("  POST /plan-trip/")
	fmt.Println("  GET  /drivers/")
	fmt.Println("  POST /drivers/")
	fmt.Println("  GET  /drivers/{driverID}/logs/")
	fmt.Println("  GET  /providers/")
	fmt.Println("  GET  /health (with database check)")
	if cfg.Metrics.Enabled {
		fmt.Println("  GET  /metrics")
	}
	fmt.Println("Press Ctrl+C to stop")

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		fmt.Printf("\nReceived signal %v, shutting down...\n", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}

// providerStatuses reports the chain members for /providers/, mirroring
// buildRouteProvider's credential checks.
func providerStatuses(cfg *config.Config) []httpapi.ProviderStatus {
	return []httpapi.ProviderStatus{
		{Name: "mapbox", Configured: cfg.Directions.MapboxToken != ""},
		{Name: "ors", Configured: cfg.Directions.ORSAPIKey != ""},
		{Name: "estimator", Configured: true, Fallback: true},
	}
}

// buildRouteProvider assembles the provider chain from configured
// credentials. Providers without credentials are skipped; the haversine
// estimator always terminates the chain, so route lookup cannot fail for
// valid coordinates.
func buildRouteProvider(cfg *config.Config, recorder directions.AttemptRecorder) routing.Provider {
	var providers []routing.Provider

	if cfg.Directions.MapboxToken != "" {
		providers = append(providers,
			directions.NewMapboxClientWithConfig(cfg.Directions.MapboxToken, "", cfg.Directions.Timeout))
		fmt.Println("Route provider: Mapbox Directions enabled")
	}
	if cfg.Directions.ORSAPIKey != "" {
		providers = append(providers,
			directions.NewORSClientWithConfig(cfg.Directions.ORSAPIKey, "", cfg.Directions.Timeout))
		fmt.Println("Route provider: OpenRouteService enabled")
	}
	if len(providers) == 0 {
		fmt.Println("Route provider: no API credentials configured, using haversine estimator only")
	}

	return directions.NewChain(
		providers,
		directions.NewEstimator(),
		float64(cfg.Directions.RateLimit.Requests),
		cfg.Directions.RateLimit.Burst,
		recorder,
	)
}
