// Package api exposes the HTTP facade: operational triggers, reporting
// reads, and batch control over the pipeline core.
package api

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/database"
	"github.com/reporadar/reporadar/pkg/metrics"
	"github.com/reporadar/reporadar/pkg/scheduler"
	"github.com/reporadar/reporadar/pkg/store"
)

// BatchRunner is the batch orchestrator surface the facade drives. Prepare
// creates the durable batch row synchronously so the caller sees conflicts
// before the response; Execute runs a prepared batch to a terminal state.
type BatchRunner interface {
	Prepare(ctx context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error)
	Execute(ctx context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error)
	Start(ctx context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error)
	Stop(ctx context.Context, batchID string) (*ent.BatchRun, error)
}

// Deps carries the collaborators the server needs. All fields are required
// unless noted.
type Deps struct {
	DB       *database.Client
	Repos    *store.RepositoryService
	Metrics  *store.MetricsService
	Tiers    *store.TierService
	Analyses *store.AnalysisService
	Alerts   *store.AlertService
	Stats    *store.StatsService
	Batches  *store.BatchService
	State    *store.SchedulerStateService

	Discoverer scheduler.Discoverer
	Scanner    scheduler.RepoScanner
	Planner    scheduler.WorkPlanner
	Runner     BatchRunner
	Tracker    *scheduler.Tracker

	Policies *config.TierPolicies
	Alerting *config.AlertConfig

	// Prom is optional; nil disables HTTP instrumentation.
	Prom *metrics.Metrics
}

// Server is the HTTP facade.
type Server struct {
	deps   Deps
	logger *slog.Logger

	// wg tracks background batches started by handlers so shutdown can wait
	// for them.
	wg sync.WaitGroup

	now func() time.Time
}

// NewServer creates a Server.
func NewServer(deps Deps) *Server {
	return &Server{
		deps:   deps,
		logger: slog.Default().With("component", "api"),
		now:    time.Now,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger, s.deps.Prom))

	router.GET("/healthz", s.Healthz)
	if s.deps.Prom != nil {
		router.GET("/metrics", gin.WrapH(s.deps.Prom.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/init", s.Init)
		v1.POST("/scan", s.Scan)
		v1.POST("/scan/comprehensive", s.ScanComprehensive)
		v1.POST("/analyze", s.Analyze)
		v1.GET("/status", s.Status)
		v1.GET("/report", s.Report)
		v1.GET("/metrics", s.RepoMetrics)
		v1.GET("/tiers", s.Tiers)
		v1.GET("/alerts", s.Alerts)
		v1.POST("/alerts/acknowledge", s.AlertAcknowledge)

		v1.POST("/batch/start", s.BatchStart)
		v1.POST("/batch/stop", s.BatchStop)
		v1.POST("/batch/clear", s.BatchClear)
		v1.GET("/batch/status", s.BatchStatus)
		v1.GET("/batch/active", s.BatchActive)
		v1.GET("/batch/history", s.BatchHistory)
	}

	return router
}

// Wait blocks until handler-spawned background work finishes.
func (s *Server) Wait() {
	s.wg.Wait()
}
