// RepoRadar server: runs the discovery/analysis scheduler, the batch
// orchestrator, and the HTTP API over a shared PostgreSQL store.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/semaphore"

	"github.com/reporadar/reporadar/pkg/api"
	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/database"
	"github.com/reporadar/reporadar/pkg/discovery"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/metrics"
	"github.com/reporadar/reporadar/pkg/planner"
	"github.com/reporadar/reporadar/pkg/ratelimit"
	"github.com/reporadar/reporadar/pkg/scheduler"
	"github.com/reporadar/reporadar/pkg/store"
)

// alertDedupeWindow suppresses repeat alerts for the same repository and
// alert type within this window.
const alertDedupeWindow = 24 * time.Hour

// gracefulShutdownTimeout bounds how long shutdown waits for the scheduler
// and in-flight batches before abandoning them to checkpoint recovery.
const gracefulShutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting RepoRadar",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Rate limiting: per-endpoint token buckets plus the credit ledger
	governor := ratelimit.NewGovernor()
	if err := governor.Register(githost.EndpointSearch, ratelimit.BucketSettings{
		Capacity:     cfg.GitHost.SearchRate.Capacity,
		RefillAmount: cfg.GitHost.SearchRate.RefillAmount,
		RefillPeriod: cfg.GitHost.SearchRate.RefillPeriod,
	}); err != nil {
		slog.Error("Failed to register search rate bucket", "error", err)
		os.Exit(1)
	}
	if err := governor.Register(githost.EndpointCore, ratelimit.BucketSettings{
		Capacity:     cfg.GitHost.CoreRate.Capacity,
		RefillAmount: cfg.GitHost.CoreRate.RefillAmount,
		RefillPeriod: cfg.GitHost.CoreRate.RefillPeriod,
	}); err != nil {
		slog.Error("Failed to register core rate bucket", "error", err)
		os.Exit(1)
	}
	if err := governor.Register(llm.EndpointAnalyze, ratelimit.BucketSettings{
		Capacity:     cfg.LLM.Rate.Capacity,
		RefillAmount: cfg.LLM.Rate.RefillAmount,
		RefillPeriod: cfg.LLM.Rate.RefillPeriod,
	}); err != nil {
		slog.Error("Failed to register analyze rate bucket", "error", err)
		os.Exit(1)
	}
	ledger := ratelimit.NewCreditLedger(cfg.Batch.MaxCreditsPerBatch, cfg.Batch.MaxCreditsPerHour)

	// 4. Outbound clients: git host and LLM share a connection cap
	conns := semaphore.NewWeighted(cfg.GitHost.MaxConnections)
	host := githost.NewClient(githost.Options{
		BaseURL:        cfg.GitHost.BaseURL,
		Token:          os.Getenv(cfg.GitHost.TokenEnv),
		RequestTimeout: cfg.GitHost.RequestTimeout,
		Governor:       governor,
		Conns:          conns,
		ReadmeCacheTTL: cfg.GitHost.ReadmeCacheTTL,
	})
	analyzer := llm.NewHTTPClient(cfg.LLM, os.Getenv(cfg.LLM.APIKeyEnv), governor, conns)
	slog.Info("Outbound clients initialized",
		"githost", cfg.GitHost.BaseURL,
		"llm", cfg.LLM.Endpoint)

	// 5. Store services
	repos := store.NewRepositoryService(dbClient.Client)
	metricsStore := store.NewMetricsService(dbClient.Client)
	tiers := store.NewTierService(dbClient.Client, cfg.Tiers)
	analyses := store.NewAnalysisService(dbClient.Client)
	alerts := store.NewAlertService(dbClient.Client, alertDedupeWindow)
	stats := store.NewStatsService(dbClient.Client)
	batches := store.NewBatchService(dbClient.Client)
	state := store.NewSchedulerStateService(dbClient.Client)
	slog.Info("Store services initialized")

	// 6. Pipeline core
	engine := discovery.NewEngine(host, repos, metricsStore, tiers, cfg.Discovery)
	scanner := discovery.NewScanner(host, repos, metricsStore, tiers)
	workPlanner := planner.New(tiers, analyses, cfg.Tiers)
	orchestrator := batch.NewOrchestrator(
		batches, repos, analyses, alerts, tiers,
		host, analyzer, ledger,
		cfg.Batch, cfg.LLM, cfg.Alerts, cfg.Tiers,
	)

	prom := metrics.New()
	if err := prom.Register(metrics.NewStoreCollector(repos, tiers, analyses)); err != nil {
		slog.Warn("Store metrics collector not registered, gauges unavailable", "error", err)
	}
	orchestrator.SetMetrics(prom)

	controller := scheduler.NewController(cfg.Scheduler, engine, scanner, workPlanner, orchestrator, state)
	controller.SetMetrics(prom)
	tracker := scheduler.NewTracker(batches, state)
	slog.Info("Pipeline core initialized")

	// 7. Resume any batch interrupted by the previous shutdown. Runs in the
	// background so startup is not blocked by a long batch.
	go func() {
		run, err := orchestrator.Resume(context.Background())
		switch {
		case errors.Is(err, store.ErrNotFound):
			slog.Info("No interrupted batch to resume")
		case err != nil:
			slog.Error("Batch resume failed", "error", err)
		default:
			slog.Info("Resumed interrupted batch", "batch_id", run.ID, "status", run.Status)
		}
	}()

	// 8. Start scheduler loop
	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if err := controller.Run(schedulerCtx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Scheduler stopped with error", "error", err)
		}
	}()

	// 9. Start HTTP server (non-blocking)
	server := api.NewServer(api.Deps{
		DB:         dbClient,
		Repos:      repos,
		Metrics:    metricsStore,
		Tiers:      tiers,
		Analyses:   analyses,
		Alerts:     alerts,
		Stats:      stats,
		Batches:    batches,
		State:      state,
		Discoverer: engine,
		Scanner:    scanner,
		Planner:    workPlanner,
		Runner:     orchestrator,
		Tracker:    tracker,
		Policies:   cfg.Tiers,
		Alerting:   cfg.Alerts,
		Prom:       prom,
	})
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RepoRadar started successfully")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	stopScheduler()
	shutdownCtx, cancel := context.WithTimeout(ctx, gracefulShutdownTimeout)
	defer cancel()

	select {
	case <-schedulerDone:
		slog.Info("Scheduler stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Scheduler shutdown timeout exceeded")
	}

	// Ask the active batch, if any, to stop at the next checkpoint. Its
	// progress is durable, so the next startup resumes it.
	if active, err := tracker.ActiveBatch(shutdownCtx); err == nil {
		if _, err := orchestrator.Stop(shutdownCtx, active.ID); err != nil {
			slog.Warn("Could not stop active batch", "batch_id", active.ID, "error", err)
		} else {
			slog.Info("Requested stop for active batch", "batch_id", active.ID)
		}
	}

	// Wait for handler-spawned batches to wind down within the budget
	batchesDone := make(chan struct{})
	go func() {
		server.Wait()
		close(batchesDone)
	}()
	select {
	case <-batchesDone:
		slog.Info("Background batches stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Batch shutdown timeout exceeded, progress is checkpointed for resume")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
