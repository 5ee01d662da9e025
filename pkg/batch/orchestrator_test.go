package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/database"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/ratelimit"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

type fakeAnalyzer struct {
	mu    sync.Mutex
	calls int
	// fail maps full names that should error; empty map analyzes everything.
	fail map[string]error
	// investment overrides the default score per full name.
	investment map[string]int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, repo githost.Repository, _ string, tier llm.ModelTier) (*llm.Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.fail[repo.FullName]; ok {
		return nil, err
	}

	investment := 65
	if v, ok := f.investment[repo.FullName]; ok {
		investment = v
	}
	cost := 1.0
	if tier == llm.ModelTierMedium {
		cost = 2
	} else if tier == llm.ModelTierHigh {
		cost = 4
	}
	return &llm.Analysis{
		Investment:     investment,
		Innovation:     60,
		Team:           55,
		Market:         60,
		Growth:         50,
		Recommendation: llm.RecommendationHold,
		Summary:        "ok",
		ModelUsed:      "analyst-" + string(tier),
		Cost:           cost,
		CreatedAt:      time.Now(),
	}, nil
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeHost serves READMEs for everything and repository lookups for the
// repos it knows about.
type fakeHost struct {
	mu      sync.Mutex
	fetched []string
	repos   map[string]githost.Repository
}

func (f *fakeHost) GetReadme(context.Context, string, string) (string, error) {
	return "# readme", nil
}

func (f *fakeHost) GetRepository(_ context.Context, owner, name string) (*githost.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fullName := owner + "/" + name
	f.fetched = append(f.fetched, fullName)
	repo, ok := f.repos[fullName]
	if !ok {
		return nil, githost.ErrNotFound
	}
	return &repo, nil
}

type fixture struct {
	orch     *Orchestrator
	client   *database.Client
	batches  *store.BatchService
	repos    *store.RepositoryService
	analyses *store.AnalysisService
	alerts   *store.AlertService
	host     *fakeHost
	analyzer *fakeAnalyzer
	cfg      *config.BatchConfig
}

func setup(t *testing.T, analyzer *fakeAnalyzer) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := config.DefaultBatchConfig()
	cfg.ChunkSize = 2
	cfg.MaxRetries = 0
	cfg.RetryDelay = time.Millisecond
	cfg.DelayBetweenAnalyses = 0
	cfg.RecoveryDelay = time.Millisecond
	cfg.MaxBatchRuntime = time.Minute

	batches := store.NewBatchService(client.Client)
	repos := store.NewRepositoryService(client.Client)
	analyses := store.NewAnalysisService(client.Client)
	alerts := store.NewAlertService(client.Client, time.Hour)
	host := &fakeHost{}

	orch := NewOrchestrator(
		batches,
		repos,
		analyses,
		alerts,
		store.NewTierService(client.Client, config.DefaultTierPolicies()),
		host,
		analyzer,
		ratelimit.NewCreditLedger(cfg.MaxCreditsPerBatch, cfg.MaxCreditsPerHour),
		cfg,
		config.DefaultLLMConfig(),
		config.DefaultAlertConfig(),
		config.DefaultTierPolicies(),
	)

	return &fixture{
		orch:     orch,
		client:   client,
		batches:  batches,
		repos:    repos,
		analyses: analyses,
		alerts:   alerts,
		host:     host,
		analyzer: analyzer,
		cfg:      cfg,
	}
}

func (f *fixture) seedItems(t *testing.T, n int) []Item {
	t.Helper()
	now := time.Now().UTC()

	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("r%d", i)
		fullName := fmt.Sprintf("acme/repo-%d", i)
		_, err := f.repos.UpsertRepository(context.Background(), githost.Repository{
			ID:        id,
			Owner:     "acme",
			Name:      fmt.Sprintf("repo-%d", i),
			FullName:  fullName,
			Stars:     100,
			CreatedAt: now.AddDate(0, -2, 0),
			UpdatedAt: now,
		})
		require.NoError(t, err)
		items = append(items, Item{RepoID: id, FullName: fullName, ModelTier: llm.ModelTierMedium})
	}
	return items
}

func TestOrchestrator_Start(t *testing.T) {
	t.Run("empty batch completes immediately", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		b, err := f.orch.Start(context.Background(), "b-empty", nil)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)
	})

	t.Run("processes every chunk and checkpoints", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		items := f.seedItems(t, 3)

		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Completed)
		assert.Zero(t, stored.Failed)
		assert.Len(t, stored.Results, 3)
		assert.InDelta(t, 6.0, stored.CreditsActual, 1e-9, "three medium-model analyses")
		require.NotNil(t, stored.EndedAt)

		cp, ok := checkpointFromMap(stored.Checkpoint)
		require.True(t, ok)
		assert.Len(t, cp.CompletedRepos, 3)
		assert.Empty(t, cp.FailedRepos)
		for _, item := range items {
			assert.True(t, cp.Processed(item.FullName))
		}

		for _, item := range items {
			_, err := f.analyses.GetLatestAnalysis(context.Background(), item.RepoID)
			assert.NoError(t, err, "analysis persisted for %s", item.FullName)
		}
	})

	t.Run("fresh analyses are skipped, not re-billed", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		items := f.seedItems(t, 2)

		_, err := f.analyses.SaveAnalysis(context.Background(), items[0].RepoID, &llm.Analysis{
			Investment: 50, Innovation: 50, Team: 50, Market: 50,
			Recommendation: llm.RecommendationHold,
			ModelUsed:      "analyst-medium",
			CreatedAt:      time.Now(),
		})
		require.NoError(t, err)

		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Completed)
		assert.Equal(t, 1, stored.Skipped)
		assert.Equal(t, 1, f.analyzer.callCount())
	})

	t.Run("untracked repos are fetched from the host and tracked", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		now := time.Now().UTC()
		f.host.repos = map[string]githost.Repository{
			"acme/fresh": {
				ID:        "fresh-1",
				Owner:     "acme",
				Name:      "fresh",
				FullName:  "acme/fresh",
				Stars:     400,
				CreatedAt: now.AddDate(0, -3, 0),
				UpdatedAt: now,
			},
		}

		items := []Item{{RepoID: "fresh-1", FullName: "acme/fresh", ModelTier: llm.ModelTierSmall}}
		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Completed)
		assert.Equal(t, []string{"acme/fresh"}, f.host.fetched)

		repo, err := f.repos.GetRepositoryByFullName(context.Background(), "acme/fresh")
		require.NoError(t, err)
		assert.Equal(t, "fresh-1", repo.ID)
	})

	t.Run("host fetch failure fails the repo, not the batch", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		items := []Item{{RepoID: "ghost-1", FullName: "acme/ghost", ModelTier: llm.ModelTierSmall}}

		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Failed)
		assert.Zero(t, f.analyzer.callCount())
	})

	t.Run("high scores raise alerts", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{investment: map[string]int{"acme/repo-0": 92, "acme/repo-1": 83}})
		items := f.seedItems(t, 2)

		_, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)

		alerts, err := f.alerts.ListAlerts(context.Background(), false, 0)
		require.NoError(t, err)
		require.Len(t, alerts, 2)

		levels := map[string]string{}
		for _, a := range alerts {
			levels[a.RepoID] = string(a.Level)
		}
		assert.Equal(t, "urgent", levels["r0"], "score past the urgent threshold")
		assert.Equal(t, "high", levels["r1"])
	})

	t.Run("second active batch is rejected", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		_, err := f.batches.Create(context.Background(), "already-open", []string{"acme/x"}, 1, 100)
		require.NoError(t, err)

		_, err = f.orch.Start(context.Background(), "b2", nil)
		assert.ErrorIs(t, err, ErrBatchActive)
	})
}

func TestOrchestrator_Pacing(t *testing.T) {
	t.Run("delay between analyses backs off while failures are consecutive", func(t *testing.T) {
		analyzer := &fakeAnalyzer{fail: map[string]error{}}
		f := setup(t, analyzer)
		f.cfg.DelayBetweenAnalyses = 10 * time.Millisecond
		f.cfg.RetryBackoffMultiplier = 2
		f.cfg.HealthCheckInterval = 0

		var mu sync.Mutex
		var delays []time.Duration
		f.orch.sleep = func(_ context.Context, d time.Duration) {
			mu.Lock()
			delays = append(delays, d)
			mu.Unlock()
		}

		items := f.seedItems(t, 3)
		for _, item := range items {
			analyzer.fail[item.FullName] = llm.ErrUnavailable
		}

		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		mu.Lock()
		defer mu.Unlock()
		want := []time.Duration{
			20 * time.Millisecond,
			40 * time.Millisecond,
			80 * time.Millisecond,
		}
		assert.Equal(t, want, delays, "each consecutive failure doubles the spacing")
	})

	t.Run("successes keep the base delay", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		f.cfg.DelayBetweenAnalyses = 10 * time.Millisecond
		f.cfg.RetryBackoffMultiplier = 2
		f.cfg.HealthCheckInterval = 0

		var mu sync.Mutex
		var delays []time.Duration
		f.orch.sleep = func(_ context.Context, d time.Duration) {
			mu.Lock()
			delays = append(delays, d)
			mu.Unlock()
		}

		items := f.seedItems(t, 2)
		_, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, delays)
	})
}

func TestOrchestrator_SelfHealing(t *testing.T) {
	t.Run("recovers once then fails when the budget is spent", func(t *testing.T) {
		analyzer := &fakeAnalyzer{fail: map[string]error{}}
		f := setup(t, analyzer)
		f.cfg.MaxConsecutiveFailures = 2
		f.cfg.MaxRecoveryAttempts = 1

		items := f.seedItems(t, 6)
		for _, item := range items {
			analyzer.fail[item.FullName] = llm.ErrUnavailable
		}

		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusFailed, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 2, stored.RecoveryAttempts, "one successful recovery plus the failed one")
		assert.GreaterOrEqual(t, stored.Failed, 4)

		health := stored.Health
		require.NotNil(t, health)
		assert.Equal(t, HealthCritical, health["state"])
	})

	t.Run("credit exhaustion stops instead of retrying forever", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		f.cfg.MaxCreditsPerBatch = 4
		f.orch.ledger = ratelimit.NewCreditLedger(4, 0)

		items := f.seedItems(t, 4)
		b, err := f.orch.Start(context.Background(), "b1", items)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusStopped, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Completed, "two medium analyses fit in four credits")
	})

	t.Run("health monitor persists on its own interval", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		f.cfg.HealthCheckInterval = time.Millisecond
		ctx := context.Background()

		_, err := f.batches.Create(ctx, "b1", []string{"acme/x"}, 1, 100)
		require.NoError(t, err)

		st := &runState{cp: Checkpoint{CompletedRepos: []string{"acme/x"}}}
		monitorCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			f.orch.monitorHealth(monitorCtx, "b1", time.Time{}, st)
		}()

		require.Eventually(t, func() bool {
			stored, err := f.batches.Get(ctx, "b1")
			return err == nil && stored.Health != nil
		}, 2*time.Second, 5*time.Millisecond)
		cancel()
		<-done

		stored, err := f.batches.Get(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, HealthHealthy, stored.Health["state"])
	})
}

func TestOrchestrator_StopAndResume(t *testing.T) {
	t.Run("stop without a live runner settles the row idempotently", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		_, err := f.batches.Create(context.Background(), "b1", []string{"acme/x"}, 1, 100)
		require.NoError(t, err)

		b, err := f.orch.Stop(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusStopped, b.Status)

		again, err := f.orch.Stop(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusStopped, again.Status)
	})

	t.Run("resume continues from the checkpoint", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		items := f.seedItems(t, 4)

		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.FullName
		}
		_, err := f.batches.Create(context.Background(), "b1", names, 8, 100)
		require.NoError(t, err)
		_, err = f.batches.SetStatus(context.Background(), "b1", batchrun.StatusRunning)
		require.NoError(t, err)

		// Crash after the first chunk: two repos done, checkpoint persisted.
		cp := Checkpoint{CompletedRepos: names[:2], CreditsUsed: 4, UpdatedAt: time.Now()}
		_, err = f.batches.RecordProgress(context.Background(), "b1", store.ProgressUpdate{
			Completed:     2,
			CreditsActual: 4,
			Checkpoint:    toMap(cp),
		})
		require.NoError(t, err)

		b, err := f.orch.Resume(context.Background())
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 4, stored.Completed)
		assert.Equal(t, 1, stored.RecoveryAttempts)
		assert.Equal(t, 2, f.analyzer.callCount(), "only the unfinished repos re-run")
	})

	t.Run("resume does not recount repos finished mid-chunk", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		items := f.seedItems(t, 5)

		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.FullName
		}
		_, err := f.batches.Create(context.Background(), "b1", names, 10, 100)
		require.NoError(t, err)
		_, err = f.batches.SetStatus(context.Background(), "b1", batchrun.StatusRunning)
		require.NoError(t, err)

		// Crash between per-repo checkpoints: three repos recorded while the
		// second chunk was still open.
		cp := Checkpoint{CompletedRepos: names[:3], CreditsUsed: 6, UpdatedAt: time.Now()}
		_, err = f.batches.RecordProgress(context.Background(), "b1", store.ProgressUpdate{
			Completed:     3,
			CreditsActual: 6,
			Checkpoint:    toMap(cp),
		})
		require.NoError(t, err)

		b, err := f.orch.Resume(context.Background())
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)

		stored, err := f.batches.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Completed)
		assert.Equal(t, stored.Total, stored.Completed+stored.Failed+stored.Skipped)
		assert.Equal(t, 2, f.analyzer.callCount(), "already-counted repos never re-run")
	})

	t.Run("resume past the recovery budget fails the batch", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		f.cfg.MaxRecoveryAttempts = 0

		_, err := f.batches.Create(context.Background(), "b1", []string{"acme/ghost"}, 1, 100)
		require.NoError(t, err)

		b, err := f.orch.Resume(context.Background())
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusFailed, b.Status)
	})

	t.Run("resume with nothing active reports not found", func(t *testing.T) {
		f := setup(t, &fakeAnalyzer{})
		_, err := f.orch.Resume(context.Background())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestOrchestrator_ConcurrentWorkers(t *testing.T) {
	f := setup(t, &fakeAnalyzer{})
	f.cfg.ConcurrentWorkers = 3
	f.cfg.ChunkSize = 6
	f.cfg.MaxChunkSize = 10

	items := f.seedItems(t, 6)
	b, err := f.orch.Start(context.Background(), "b1", items)
	require.NoError(t, err)
	assert.Equal(t, batchrun.StatusCompleted, b.Status)

	stored, err := f.batches.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Completed)
	assert.Equal(t, 6, f.analyzer.callCount())
	assert.Equal(t, stored.Total, stored.Completed+stored.Failed+stored.Skipped)
}

func TestCanTransition(t *testing.T) {
	legal := []struct{ from, to batchrun.Status }{
		{batchrun.StatusPending, batchrun.StatusRunning},
		{batchrun.StatusRunning, batchrun.StatusRecovering},
		{batchrun.StatusRunning, batchrun.StatusStopped},
		{batchrun.StatusRunning, batchrun.StatusCompleted},
		{batchrun.StatusRecovering, batchrun.StatusRunning},
		{batchrun.StatusRecovering, batchrun.StatusFailed},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	illegal := []struct{ from, to batchrun.Status }{
		{batchrun.StatusCompleted, batchrun.StatusRunning},
		{batchrun.StatusStopped, batchrun.StatusRunning},
		{batchrun.StatusFailed, batchrun.StatusRecovering},
		{batchrun.StatusPending, batchrun.StatusRecovering},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, IsTerminal(batchrun.StatusCompleted))
	assert.False(t, IsTerminal(batchrun.StatusRunning))
}

func TestEvaluateHealth(t *testing.T) {
	now := time.Now()

	t.Run("healthy by default", func(t *testing.T) {
		h := evaluateHealth(3, 0, 0, 0, 2, 100, 0.5, 5, 0, now)
		assert.Equal(t, HealthHealthy, h.State)
	})

	t.Run("early failures degrade but do not condemn", func(t *testing.T) {
		h := evaluateHealth(0, 2, 0, 2, 0, 100, 0.5, 5, 0, now)
		assert.Equal(t, HealthDegraded, h.State)
		assert.Equal(t, reasonFailuresOutpacing, h.Reason)
	})

	t.Run("four processed is below the sample floor", func(t *testing.T) {
		h := evaluateHealth(0, 4, 0, 1, 0, 100, 0.5, 10, 0, now)
		assert.NotEqual(t, HealthCritical, h.State)
	})

	t.Run("consecutive failures go critical", func(t *testing.T) {
		h := evaluateHealth(10, 5, 0, 5, 0, 100, 0.5, 5, 0, now)
		assert.Equal(t, HealthCritical, h.State)
		assert.Equal(t, reasonConsecutiveFailures, h.Reason)
	})

	t.Run("low success rate goes critical", func(t *testing.T) {
		h := evaluateHealth(2, 5, 0, 1, 0, 100, 0.5, 10, 0, now)
		assert.Equal(t, HealthCritical, h.State)
		assert.Equal(t, reasonLowSuccessRate, h.Reason)
	})

	t.Run("skips count against the success rate", func(t *testing.T) {
		h := evaluateHealth(2, 0, 3, 0, 0, 100, 0.5, 10, 0, now)
		assert.Equal(t, HealthCritical, h.State)
		assert.Equal(t, reasonLowSuccessRate, h.Reason)
		assert.InDelta(t, 0.4, h.SuccessRate, 1e-9)
	})

	t.Run("credit exhaustion goes critical", func(t *testing.T) {
		h := evaluateHealth(10, 0, 0, 0, 100, 100, 0.5, 5, 0, now)
		assert.Equal(t, HealthCritical, h.State)
		assert.Equal(t, reasonCreditsExhausted, h.Reason)
	})

	t.Run("runtime budget nearly spent degrades", func(t *testing.T) {
		h := evaluateHealth(10, 0, 0, 0, 2, 100, 0.5, 5, 30*time.Second, now)
		assert.Equal(t, HealthDegraded, h.State)
		assert.Equal(t, reasonRuntimeNearBudget, h.Reason)
		assert.InDelta(t, 30.0, h.TimeRemainingSec, 1e-9)
	})

	t.Run("failures outpacing completions degrade", func(t *testing.T) {
		h := evaluateHealth(1, 2, 0, 1, 0, 100, 0.5, 5, 0, now)
		assert.Equal(t, HealthDegraded, h.State)
		assert.Equal(t, reasonFailuresOutpacing, h.Reason)
	})

	t.Run("near-limit credits degrade", func(t *testing.T) {
		h := evaluateHealth(10, 0, 0, 0, 95, 100, 0.5, 5, 0, now)
		assert.Equal(t, HealthDegraded, h.State)
	})
}
