package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/discovery"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/planner"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

type fakeDiscoverer struct {
	calls    int
	lastOpts discovery.Options
	result   *discovery.Result
	err      error
}

func (f *fakeDiscoverer) Discover(_ context.Context, opts discovery.Options) (*discovery.Result, error) {
	f.calls++
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeRepoScanner struct {
	mu      sync.Mutex
	scanned []string
	failFor map[string]bool
}

func (f *fakeRepoScanner) Scan(_ context.Context, fullName string, deep bool) (*discovery.ScanReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[fullName] {
		return nil, errors.New("host unavailable")
	}
	f.scanned = append(f.scanned, fullName)
	return &discovery.ScanReport{FullName: fullName, Deep: deep}, nil
}

type fakePlanner struct {
	plan    *planner.ScanPlan
	planErr error
	pool    []planner.Candidate
	poolErr error
	lastMax int
}

func (f *fakePlanner) PlanScans(_ context.Context, now time.Time) (*planner.ScanPlan, error) {
	if f.planErr != nil {
		return nil, f.planErr
	}
	if f.plan == nil {
		return &planner.ScanPlan{PlannedAt: now}, nil
	}
	return f.plan, nil
}

func (f *fakePlanner) PlanAnalysisPool(_ context.Context, _ time.Time, max int) ([]planner.Candidate, error) {
	f.lastMax = max
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	return f.pool, nil
}

type fakeStarter struct {
	calls     int
	lastID    string
	lastItems []batch.Item
	err       error
}

func (f *fakeStarter) Start(_ context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error) {
	f.calls++
	f.lastID = batchID
	f.lastItems = items
	if f.err != nil {
		return nil, f.err
	}
	return &ent.BatchRun{ID: batchID}, nil
}

type controllerFixture struct {
	ctrl       *Controller
	discoverer *fakeDiscoverer
	scanner    *fakeRepoScanner
	planner    *fakePlanner
	starter    *fakeStarter
	state      *store.SchedulerStateService
}

func testController(t *testing.T) *controllerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	f := &controllerFixture{
		discoverer: &fakeDiscoverer{result: &discovery.Result{Found: 5, New: 5}},
		scanner:    &fakeRepoScanner{failFor: map[string]bool{}},
		planner:    &fakePlanner{},
		starter:    &fakeStarter{},
		state:      store.NewSchedulerStateService(client.Client),
	}

	cfg := &config.SchedulerConfig{
		ScanInterval:        time.Hour,
		SweepHours:          []int{2, 14},
		MaxCycleRuntime:     time.Minute,
		ScanPhaseBudget:     30 * time.Second,
		AnalysisPhaseBudget: 30 * time.Second,
		HourlyPoolMax:       30,
		SweepDiscoveryLimit: 50,
		SweepAnalysisLimit:  100,
	}
	f.ctrl = NewController(cfg, f.discoverer, f.scanner, f.planner, f.starter, f.state)
	return f
}

func hourlyTick() time.Time {
	return time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
}

func sweepTick() time.Time {
	return time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
}

func TestController_RunCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("hourly cycle scans due repos and starts one batch", func(t *testing.T) {
		f := testController(t)
		f.planner.plan = &planner.ScanPlan{Items: []planner.ScanItem{
			{RepoID: "1", FullName: "acme/alpha", Tier: 1, Deep: true},
			{RepoID: "2", FullName: "acme/beta", Tier: 2},
		}}
		f.planner.pool = []planner.Candidate{
			{RepoID: "1", FullName: "acme/alpha", Tier: 1, ModelTier: llm.ModelTierHigh},
			{RepoID: "2", FullName: "acme/beta", Tier: 2, ModelTier: llm.ModelTierMedium},
		}

		report, err := f.ctrl.RunCycle(ctx, hourlyTick())
		require.NoError(t, err)

		assert.Equal(t, CycleHourly, report.Type)
		assert.Zero(t, f.discoverer.calls, "hourly cycles do not run discovery")
		assert.Equal(t, 2, report.Scans)
		assert.Equal(t, 2, report.ScansDone)
		assert.Equal(t, []string{"acme/alpha", "acme/beta"}, f.scanner.scanned)

		assert.Equal(t, 30, f.planner.lastMax)
		assert.Equal(t, 2, report.PoolSize)
		require.Equal(t, 1, f.starter.calls)
		assert.Equal(t, report.BatchID, f.starter.lastID)
		assert.Contains(t, report.BatchID, "auto-hourly-")
		require.Len(t, f.starter.lastItems, 2)
		assert.Equal(t, llm.ModelTierHigh, f.starter.lastItems[0].ModelTier)

		state, err := f.state.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, CycleHourly, state.LastCycleType)
		assert.Empty(t, state.LastCycleError)
	})

	t.Run("sweep cycle runs discovery and the larger pool", func(t *testing.T) {
		f := testController(t)

		report, err := f.ctrl.RunCycle(ctx, sweepTick())
		require.NoError(t, err)

		assert.Equal(t, CycleSweep, report.Type)
		assert.Equal(t, 1, f.discoverer.calls)
		assert.Equal(t, 50, f.discoverer.lastOpts.Limit)
		require.NotNil(t, report.Discovery)
		assert.Equal(t, 5, report.Discovery.New)
		assert.Equal(t, 100, f.planner.lastMax)
	})

	t.Run("scan phase failure does not block the analysis phase", func(t *testing.T) {
		f := testController(t)
		f.planner.planErr = errors.New("store unavailable")
		f.planner.pool = []planner.Candidate{
			{RepoID: "1", FullName: "acme/alpha", Tier: 1, ModelTier: llm.ModelTierHigh},
		}

		report, err := f.ctrl.RunCycle(ctx, hourlyTick())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan planning")

		assert.Equal(t, 1, f.starter.calls, "analysis phase still ran")
		assert.Equal(t, 1, report.PoolSize)

		state, stateErr := f.state.Load(ctx)
		require.NoError(t, stateErr)
		assert.Contains(t, state.LastCycleError, "scan planning")
	})

	t.Run("individual scan failures are counted, not fatal", func(t *testing.T) {
		f := testController(t)
		f.planner.plan = &planner.ScanPlan{Items: []planner.ScanItem{
			{RepoID: "1", FullName: "acme/alpha", Tier: 1},
			{RepoID: "2", FullName: "acme/beta", Tier: 2},
		}}
		f.scanner.failFor["acme/alpha"] = true

		report, err := f.ctrl.RunCycle(ctx, hourlyTick())
		require.NoError(t, err)
		assert.Equal(t, 2, report.Scans)
		assert.Equal(t, 1, report.ScansDone)
	})

	t.Run("active batch is a skip, not a cycle error", func(t *testing.T) {
		f := testController(t)
		f.planner.pool = []planner.Candidate{
			{RepoID: "1", FullName: "acme/alpha", Tier: 1, ModelTier: llm.ModelTierHigh},
		}
		f.starter.err = batch.ErrBatchActive

		report, err := f.ctrl.RunCycle(ctx, hourlyTick())
		require.NoError(t, err)
		assert.Empty(t, report.BatchID)
	})

	t.Run("empty pool starts no batch", func(t *testing.T) {
		f := testController(t)

		report, err := f.ctrl.RunCycle(ctx, hourlyTick())
		require.NoError(t, err)
		assert.Zero(t, f.starter.calls)
		assert.Empty(t, report.BatchID)
		assert.Zero(t, report.PoolSize)
	})
}

func TestController_Run(t *testing.T) {
	t.Run("waits out a persisted future tick and stops on cancel", func(t *testing.T) {
		f := testController(t)
		ctx := context.Background()
		require.NoError(t, f.state.SaveTick(ctx, time.Now().Add(time.Hour)))

		runCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		err := f.ctrl.Run(runCtx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Zero(t, f.starter.calls, "no cycle fired before the persisted tick")
	})
}

func TestTracker(t *testing.T) {
	ctx := context.Background()

	t.Run("cycle status reflects persisted state", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		state := store.NewSchedulerStateService(client.Client)
		batches := store.NewBatchService(client.Client)
		tracker := NewTracker(batches, state)

		_, err := tracker.Cycle(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)

		at := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
		require.NoError(t, state.RecordCycle(ctx, CycleHourly, at, nil))

		status, err := tracker.Cycle(ctx)
		require.NoError(t, err)
		assert.Equal(t, CycleHourly, status.LastCycleType)
		require.NotNil(t, status.LastCycleAt)
		assert.Empty(t, status.LastCycleError)
	})

	t.Run("batch progress computes percent and staleness", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		batches := store.NewBatchService(client.Client)
		tracker := NewTracker(batches, store.NewSchedulerStateService(client.Client))

		_, err := batches.Create(ctx, "b1", []string{"acme/alpha", "acme/beta", "acme/gamma", "acme/delta"}, 8, 100)
		require.NoError(t, err)
		_, err = batches.SetStatus(ctx, "b1", "running")
		require.NoError(t, err)
		_, err = batches.RecordProgress(ctx, "b1", store.ProgressUpdate{Completed: 1, CurrentRepo: "acme/beta"})
		require.NoError(t, err)

		p, err := tracker.ActiveBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, "b1", p.ID)
		assert.Equal(t, 4, p.Total)
		assert.InDelta(t, 25, p.PercentDone, 0.01)
		assert.Equal(t, "acme/beta", p.CurrentRepo)
		assert.False(t, p.Stale, "freshly updated batch is not stale")

		// A runner that stopped writing progress shows up as stale.
		tracker.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
		p, err = tracker.ActiveBatch(ctx)
		require.NoError(t, err)
		assert.True(t, p.Stale)

		stale, err := tracker.StaleBatches(ctx)
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, "b1", stale[0].ID)

		history, err := tracker.History(ctx, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
	})
}
