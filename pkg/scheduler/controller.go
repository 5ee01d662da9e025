// Package scheduler drives the periodic discovery, scan, and analysis cycles.
// The tick state is store-backed, so a restarted process resumes the cadence
// instead of restarting it.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/discovery"
	"github.com/reporadar/reporadar/pkg/metrics"
	"github.com/reporadar/reporadar/pkg/planner"
	"github.com/reporadar/reporadar/pkg/store"
)

// Cycle types.
const (
	CycleHourly = "hourly"
	CycleSweep  = "sweep"
)

// Discoverer runs one discovery pass.
type Discoverer interface {
	Discover(ctx context.Context, opts discovery.Options) (*discovery.Result, error)
}

// RepoScanner refreshes one tracked repository.
type RepoScanner interface {
	Scan(ctx context.Context, fullName string, deep bool) (*discovery.ScanReport, error)
}

// WorkPlanner builds the per-cycle scan and analysis plans.
type WorkPlanner interface {
	PlanScans(ctx context.Context, now time.Time) (*planner.ScanPlan, error)
	PlanAnalysisPool(ctx context.Context, now time.Time, max int) ([]planner.Candidate, error)
}

// BatchStarter runs one analysis batch to completion.
type BatchStarter interface {
	Start(ctx context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error)
}

// CycleReport summarizes one completed cycle.
type CycleReport struct {
	Type      string             `json:"type"`
	StartedAt time.Time          `json:"started_at"`
	Duration  time.Duration      `json:"duration"`
	Discovery *discovery.Result  `json:"discovery,omitempty"`
	Scans     int                `json:"scans"`
	ScansDone int                `json:"scans_done"`
	BatchID   string             `json:"batch_id,omitempty"`
	PoolSize  int                `json:"pool_size"`
}

// Controller owns the cycle loop. Each cycle runs a scan phase (discovery
// plus due-repo scans) and an analysis phase (one batch), each under its own
// wall-clock budget so a slow phase cannot starve the other.
type Controller struct {
	cfg        *config.SchedulerConfig
	discoverer Discoverer
	scanner    RepoScanner
	planner    WorkPlanner
	batches    BatchStarter
	state      *store.SchedulerStateService
	metrics    *metrics.Metrics
	logger     *slog.Logger

	now func() time.Time
}

// NewController creates a Controller.
func NewController(cfg *config.SchedulerConfig, discoverer Discoverer, scanner RepoScanner, workPlanner WorkPlanner, batches BatchStarter, state *store.SchedulerStateService) *Controller {
	return &Controller{
		cfg:        cfg,
		discoverer: discoverer,
		scanner:    scanner,
		planner:    workPlanner,
		batches:    batches,
		state:      state,
		logger:     slog.Default().With("component", "scheduler"),
		now:        time.Now,
	}
}

// SetMetrics attaches optional Prometheus instrumentation.
func (c *Controller) SetMetrics(m *metrics.Metrics) {
	c.metrics = m
}

// Run ticks until the context is canceled. The next tick is loaded from the
// store on entry, so a restart mid-interval waits out the remainder instead
// of firing immediately.
func (c *Controller) Run(ctx context.Context) error {
	nextTick := c.now()
	if state, err := c.state.Load(ctx); err == nil && state.NextTick.After(nextTick) {
		nextTick = state.NextTick
	}

	for {
		if err := c.waitUntil(ctx, nextTick); err != nil {
			return err
		}

		tick := c.now()
		report, err := c.RunCycle(ctx, tick)
		if err != nil {
			c.logger.Error("Cycle finished with errors", "type", report.Type, "error", err)
		}

		nextTick = tick.Add(c.cfg.ScanInterval)
		if err := c.state.SaveTick(ctx, nextTick); err != nil {
			c.logger.Error("Failed to persist next tick", "error", err)
		}
	}
}

func (c *Controller) waitUntil(ctx context.Context, t time.Time) error {
	d := t.Sub(c.now())
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RunCycle executes one full cycle at the given tick time and records its
// outcome. Phase failures are isolated: a failed scan phase still lets the
// analysis phase run, and the joined error is returned alongside the report.
func (c *Controller) RunCycle(ctx context.Context, tick time.Time) (*CycleReport, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.MaxCycleRuntime)
	defer cancel()

	report := &CycleReport{
		Type:      c.cycleTypeFor(tick),
		StartedAt: tick,
	}
	c.logger.Info("Cycle starting", "type", report.Type, "tick", tick)

	scanErr := c.scanPhase(ctx, tick, report)
	analysisErr := c.analysisPhase(ctx, tick, report)

	cycleErr := errors.Join(scanErr, analysisErr)
	if err := c.state.RecordCycle(ctx, report.Type, tick, cycleErr); err != nil {
		c.logger.Error("Failed to record cycle outcome", "error", err)
	}

	report.Duration = c.now().Sub(tick)
	discovered := 0
	if report.Discovery != nil {
		discovered = report.Discovery.New
	}
	c.metrics.ObserveCycle(report.Type, report.Duration, discovered)
	c.logger.Info("Cycle finished",
		"type", report.Type,
		"scans", report.ScansDone,
		"pool", report.PoolSize,
		"batch_id", report.BatchID,
		"duration", report.Duration)
	return report, cycleErr
}

// cycleTypeFor picks sweep during the configured sweep hours, hourly otherwise.
func (c *Controller) cycleTypeFor(tick time.Time) string {
	if lo.Contains(c.cfg.SweepHours, tick.Hour()) {
		return CycleSweep
	}
	return CycleHourly
}

// scanPhase runs discovery (sweeps only) and the due-repo scans under the
// scan budget. Individual scan failures are logged and counted, not fatal.
func (c *Controller) scanPhase(ctx context.Context, tick time.Time, report *CycleReport) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ScanPhaseBudget)
	defer cancel()

	var errs []error
	if report.Type == CycleSweep {
		result, err := c.discoverer.Discover(ctx, discovery.Options{Limit: c.cfg.SweepDiscoveryLimit})
		if err != nil {
			errs = append(errs, fmt.Errorf("sweep discovery: %w", err))
		} else {
			report.Discovery = result
		}
	}

	plan, err := c.planner.PlanScans(ctx, tick)
	if err != nil {
		errs = append(errs, fmt.Errorf("scan planning: %w", err))
		return errors.Join(errs...)
	}
	report.Scans = len(plan.Items)

	for _, item := range plan.Items {
		if ctx.Err() != nil {
			c.logger.Warn("Scan budget exhausted", "remaining", report.Scans-report.ScansDone)
			break
		}
		if item.FullName == "" {
			continue
		}
		if _, err := c.scanner.Scan(ctx, item.FullName, item.Deep); err != nil {
			c.logger.Warn("Scheduled scan failed", "repo", item.FullName, "error", err)
			continue
		}
		c.metrics.ObserveScan(item.Deep)
		report.ScansDone++
	}
	return errors.Join(errs...)
}

// analysisPhase builds the analysis pool and runs it as one batch under the
// analysis budget. An already-active batch is a skip, not an error.
func (c *Controller) analysisPhase(ctx context.Context, tick time.Time, report *CycleReport) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AnalysisPhaseBudget)
	defer cancel()

	max := c.cfg.HourlyPoolMax
	if report.Type == CycleSweep {
		max = c.cfg.SweepAnalysisLimit
	}

	pool, err := c.planner.PlanAnalysisPool(ctx, tick, max)
	if err != nil {
		return fmt.Errorf("analysis planning: %w", err)
	}
	report.PoolSize = len(pool)
	if len(pool) == 0 {
		return nil
	}

	items := lo.Map(pool, func(cand planner.Candidate, _ int) batch.Item {
		return batch.Item{
			RepoID:    cand.RepoID,
			FullName:  cand.FullName,
			ModelTier: cand.ModelTier,
		}
	})

	batchID := fmt.Sprintf("auto-%s-%d", report.Type, tick.Unix())
	run, err := c.batches.Start(ctx, batchID, items)
	if err != nil {
		if errors.Is(err, batch.ErrBatchActive) {
			c.logger.Info("Analysis batch skipped, another batch is active")
			return nil
		}
		return fmt.Errorf("analysis batch: %w", err)
	}
	c.metrics.ObserveBatchStart()
	report.BatchID = run.ID
	return nil
}
