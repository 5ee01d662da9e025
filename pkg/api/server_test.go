package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/discovery"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/metrics"
	"github.com/reporadar/reporadar/pkg/models"
	"github.com/reporadar/reporadar/pkg/planner"
	"github.com/reporadar/reporadar/pkg/scheduler"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubDiscoverer struct {
	calls  int
	result *discovery.Result
	err    error
}

func (f *stubDiscoverer) Discover(_ context.Context, _ discovery.Options) (*discovery.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type stubScanner struct {
	scanned []string
}

func (f *stubScanner) Scan(_ context.Context, fullName string, deep bool) (*discovery.ScanReport, error) {
	f.scanned = append(f.scanned, fullName)
	return &discovery.ScanReport{FullName: fullName, Deep: deep}, nil
}

type stubPlanner struct {
	plan *planner.ScanPlan
}

func (f *stubPlanner) PlanScans(_ context.Context, now time.Time) (*planner.ScanPlan, error) {
	if f.plan == nil {
		return &planner.ScanPlan{PlannedAt: now}, nil
	}
	return f.plan, nil
}

func (f *stubPlanner) PlanAnalysisPool(_ context.Context, _ time.Time, _ int) ([]planner.Candidate, error) {
	return nil, nil
}

// stubRunner persists an analysis for each item, standing in for the real
// orchestrator.
type stubRunner struct {
	analyses   *store.AnalysisService
	started    chan string
	err        error
	prepareErr error

	mu        sync.Mutex
	prepared  []string
	lastItems []batch.Item
}

func (f *stubRunner) Prepare(_ context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error) {
	if f.prepareErr != nil {
		return nil, f.prepareErr
	}
	f.mu.Lock()
	f.prepared = append(f.prepared, batchID)
	f.mu.Unlock()
	return &ent.BatchRun{ID: batchID, Status: batchrun.StatusPending, Total: len(items)}, nil
}

func (f *stubRunner) Execute(ctx context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error) {
	f.mu.Lock()
	f.lastItems = items
	f.mu.Unlock()
	if f.started != nil {
		defer func() { f.started <- batchID }()
	}
	if f.err != nil {
		return nil, f.err
	}
	for _, item := range items {
		if _, err := f.analyses.SaveAnalysis(ctx, item.RepoID, &llm.Analysis{
			Investment:     82,
			Recommendation: llm.RecommendationBuy,
			Summary:        "promising",
			ModelUsed:      string(item.ModelTier),
			Cost:           1,
		}); err != nil {
			return nil, err
		}
	}
	return &ent.BatchRun{ID: batchID, Status: batchrun.StatusCompleted}, nil
}

func (f *stubRunner) Start(ctx context.Context, batchID string, items []batch.Item) (*ent.BatchRun, error) {
	if _, err := f.Prepare(ctx, batchID, items); err != nil {
		return nil, err
	}
	return f.Execute(ctx, batchID, items)
}

func (f *stubRunner) preparedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prepared...)
}

func (f *stubRunner) Stop(_ context.Context, batchID string) (*ent.BatchRun, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ent.BatchRun{ID: batchID, Status: batchrun.StatusStopped}, nil
}

type apiFixture struct {
	server     *Server
	router     *gin.Engine
	repos      *store.RepositoryService
	tiers      *store.TierService
	analyses   *store.AnalysisService
	metrics    *store.MetricsService
	batches    *store.BatchService
	alerts     *store.AlertService
	discoverer *stubDiscoverer
	scanner    *stubScanner
	planner    *stubPlanner
	runner     *stubRunner
}

func newFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	f := &apiFixture{
		repos:      store.NewRepositoryService(client.Client),
		tiers:      store.NewTierService(client.Client, config.DefaultTierPolicies()),
		analyses:   store.NewAnalysisService(client.Client),
		metrics:    store.NewMetricsService(client.Client),
		batches:    store.NewBatchService(client.Client),
		alerts:     store.NewAlertService(client.Client, time.Hour),
		discoverer: &stubDiscoverer{result: &discovery.Result{Found: 3, New: 3}},
		scanner:    &stubScanner{},
		planner:    &stubPlanner{},
	}
	f.runner = &stubRunner{analyses: f.analyses}

	state := store.NewSchedulerStateService(client.Client)
	f.server = NewServer(Deps{
		DB:         client,
		Repos:      f.repos,
		Metrics:    f.metrics,
		Tiers:      f.tiers,
		Analyses:   f.analyses,
		Alerts:     f.alerts,
		Stats:      store.NewStatsService(client.Client),
		Batches:    f.batches,
		State:      state,
		Discoverer: f.discoverer,
		Scanner:    f.scanner,
		Planner:    f.planner,
		Runner:     f.runner,
		Tracker:    scheduler.NewTracker(f.batches, state),
		Policies:   config.DefaultTierPolicies(),
		Alerting:   config.DefaultAlertConfig(),
		Prom:       metrics.New(),
	})
	f.router = f.server.Router()
	return f
}

func (f *apiFixture) seedRepo(t *testing.T, id, fullName string, stars, tier int) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	_, err := f.repos.UpsertRepository(ctx, githost.Repository{
		ID:        id,
		Owner:     "acme",
		Name:      fullName[len("acme/"):],
		FullName:  fullName,
		Stars:     stars,
		Forks:     stars / 10,
		CreatedAt: now.AddDate(0, -6, 0),
		UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = f.tiers.UpsertTier(ctx, store.TierInput{RepoID: id, Tier: tier, Stars: stars})
	require.NoError(t, err)
}

func (f *apiFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestServer_Healthz(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestServer_Init(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "next_tick")
}

func TestServer_Scan(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/scan", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.discoverer.calls)

	var result discovery.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.New)
}

func TestServer_ScanComprehensive(t *testing.T) {
	f := newFixture(t)
	f.seedRepo(t, "1", "acme/alpha", 200, 1)
	f.planner.plan = &planner.ScanPlan{Items: []planner.ScanItem{
		{RepoID: "1", FullName: "acme/alpha", Tier: 1, Deep: true},
	}}

	t.Run("skips discovery when enough repos are tracked", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/scan/comprehensive?min_repos=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, f.discoverer.calls)

		var resp models.ComprehensiveScanResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Discovery)
		assert.Equal(t, 1, resp.Planned)
		assert.Equal(t, 1, resp.Scanned)
	})

	t.Run("force always discovers", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/scan/comprehensive?force=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, f.discoverer.calls)
	})

	t.Run("bad query parameter", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/scan/comprehensive?force=sometimes", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Analyze(t *testing.T) {
	f := newFixture(t)
	f.seedRepo(t, "1", "acme/alpha", 200, 1)

	t.Run("runs a fresh analysis", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{RepoID: "1"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AnalyzeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Cached)
		require.NotNil(t, resp.Analysis)
		assert.Equal(t, 82, resp.Analysis.InvestmentScore)
		require.Len(t, f.runner.lastItems, 1)
		assert.Equal(t, llm.ModelTierHigh, f.runner.lastItems[0].ModelTier)
	})

	t.Run("serves the fresh analysis from the store", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{Owner: "acme", Name: "alpha"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AnalyzeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Cached)
	})

	t.Run("force bypasses the cache", func(t *testing.T) {
		f.runner.lastItems = nil
		rec := f.do(http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{RepoID: "1", Force: true})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, f.runner.lastItems, 1)
	})

	t.Run("unknown repository", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{RepoID: "missing"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing identifiers", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_StatusAndReport(t *testing.T) {
	f := newFixture(t)
	f.seedRepo(t, "1", "acme/alpha", 200, 1)
	f.seedRepo(t, "2", "acme/beta", 60, 2)

	rec := f.do(http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{RepoID: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("status", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, 2, resp.Repositories)
		assert.Equal(t, 1, resp.Tiers[1])
		assert.Equal(t, 1, resp.Tiers[2])
	})

	t.Run("report includes the qualifying analysis", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/report", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.TopInvestments, 1)
		assert.Equal(t, "acme/alpha", resp.TopInvestments[0].FullName)
	})
}

func TestServer_RepoMetrics(t *testing.T) {
	f := newFixture(t)
	f.seedRepo(t, "1", "acme/alpha", 200, 1)
	_, err := f.metrics.RecordSnapshot(context.Background(), "1", store.SnapshotInput{
		Stars:      200,
		RecordedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	t.Run("returns history and trending score", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/metrics?repo_id=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RepoMetricsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Latest)
		assert.Equal(t, 200, resp.Latest.Stars)
		require.Len(t, resp.History, 1)
		assert.Positive(t, resp.TrendingScore)
	})

	t.Run("missing repo_id", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/metrics", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown repo", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/metrics?repo_id=missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Tiers(t *testing.T) {
	f := newFixture(t)
	f.seedRepo(t, "1", "acme/alpha", 200, 1)
	f.seedRepo(t, "2", "acme/beta", 60, 2)

	t.Run("counts only", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/tiers", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TiersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Counts[1])
		assert.Empty(t, resp.Repos)
	})

	t.Run("tier listing with full names", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/tiers?tier=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TiersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Repos, 1)
		assert.Equal(t, "acme/beta", resp.Repos[0].FullName)
	})

	t.Run("invalid tier", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/tiers?tier=4", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Batches(t *testing.T) {
	ctx := context.Background()

	t.Run("start runs the batch in the background", func(t *testing.T) {
		f := newFixture(t)
		f.seedRepo(t, "1", "acme/alpha", 200, 1)
		f.seedRepo(t, "2", "acme/beta", 60, 2)
		f.runner.started = make(chan string, 1)

		rec := f.do(http.MethodPost, "/api/v1/batch/start", models.BatchStartRequest{
			BatchID:      "manual-1",
			Repositories: []string{"acme/alpha", "acme/beta"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.BatchStartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "manual-1", resp.BatchID)
		assert.Equal(t, 2, resp.Total)
		assert.Contains(t, f.runner.preparedIDs(), "manual-1",
			"batch row is created before the response goes out")

		select {
		case id := <-f.runner.started:
			assert.Equal(t, "manual-1", id)
		case <-time.After(2 * time.Second):
			t.Fatal("batch never started")
		}
		f.server.Wait()
		require.Len(t, f.runner.lastItems, 2)
		assert.Equal(t, llm.ModelTierMedium, f.runner.lastItems[1].ModelTier)
	})

	t.Run("unknown repository in the list", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/batch/start", models.BatchStartRequest{
			BatchID:      "manual-2",
			Repositories: []string{"acme/ghost"},
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("conflict while a batch is active", func(t *testing.T) {
		f := newFixture(t)
		f.seedRepo(t, "1", "acme/alpha", 200, 1)
		_, err := f.batches.Create(ctx, "busy", []string{"acme/alpha"}, 1, 100)
		require.NoError(t, err)

		rec := f.do(http.MethodPost, "/api/v1/batch/start", models.BatchStartRequest{
			BatchID:      "manual-3",
			Repositories: []string{"acme/alpha"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("duplicate batch id is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.seedRepo(t, "1", "acme/alpha", 200, 1)
		f.runner.prepareErr = store.ErrAlreadyExists

		rec := f.do(http.MethodPost, "/api/v1/batch/start", models.BatchStartRequest{
			BatchID:      "dup",
			Repositories: []string{"acme/alpha"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Empty(t, f.runner.preparedIDs(), "nothing runs when the row cannot be created")
	})

	t.Run("status endpoints", func(t *testing.T) {
		f := newFixture(t)
		f.seedRepo(t, "1", "acme/alpha", 200, 1)
		_, err := f.batches.Create(ctx, "b1", []string{"acme/alpha"}, 1, 100)
		require.NoError(t, err)

		rec := f.do(http.MethodGet, "/api/v1/batch/status?batch_id=b1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/batch/status", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/batch/status?batch_id=ghost", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/batch/active", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/batch/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"b1"`)
	})

	t.Run("stop and clear", func(t *testing.T) {
		f := newFixture(t)
		f.seedRepo(t, "1", "acme/alpha", 200, 1)
		_, err := f.batches.Create(ctx, "b1", []string{"acme/alpha"}, 1, 100)
		require.NoError(t, err)
		_, err = f.batches.SetStatus(ctx, "b1", batchrun.StatusRunning)
		require.NoError(t, err)
		_, err = f.batches.SetStatus(ctx, "b1", batchrun.StatusCompleted)
		require.NoError(t, err)

		rec := f.do(http.MethodPost, "/api/v1/batch/stop", models.BatchStopRequest{BatchID: "b1"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodPost, "/api/v1/batch/clear", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.BatchClearResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Cleared)
	})
}

func TestServer_Alerts(t *testing.T) {
	f := newFixture(t)
	f.seedRepo(t, "1", "acme/alpha", 200, 1)
	ctx := context.Background()

	created, err := f.alerts.CreateAlert(ctx, store.AlertInput{
		RepoID:  "1",
		Type:    "investment_opportunity",
		Level:   alert.LevelHigh,
		Message: "score 85",
	})
	require.NoError(t, err)

	t.Run("lists alerts", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/alerts", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "investment_opportunity")
	})

	t.Run("acknowledge hides from unacknowledged listing", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/alerts/acknowledge",
			models.AlertAcknowledgeRequest{AlertID: created.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/alerts?unacknowledged=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "investment_opportunity")
	})

	t.Run("acknowledging an unknown alert is a 404", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/alerts/acknowledge",
			models.AlertAcknowledgeRequest{AlertID: "ghost"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing alert_id is a 400", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/alerts/acknowledge", gin.H{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
