package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/cliparse"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/db"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/kvstore"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/logging"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/menuopts"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/metrics"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/middleware"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/router"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/voting"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logCloser, err := logging.Setup(cfg)
	if err != nil {
		slog.Error("Error setting up logging", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	dialect := kvstore.DialectSQLite
	if cfg.DatabaseType == db.TypePostgres {
		dialect = kvstore.DialectPostgres
	}
	store := kvstore.NewSQLStore(dbConn, dialect)
	defer store.Close()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// Voting service
	source := menuopts.NewSource(menuopts.NewFetcher(cfg.MenuOptionsSource, cfg.FetchTimeout), store, collector)
	svc := voting.NewService(store, source, cfg.Location, collector)

	limiter := middleware.NewRateLimiter(cfg.BallotRatePerMin, 5*time.Minute)
	defer limiter.Stop()

	// Create router
	mux := router.NewRouter(svc, cfg, limiter, registry)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(middleware.WithMetrics(collector, mux)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"timezone", cfg.Timezone,
		"menu_source", cfg.MenuOptionsSource,
		"week_key", svc.CurrentWeekKey(),
		"phase", svc.Status(),
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
