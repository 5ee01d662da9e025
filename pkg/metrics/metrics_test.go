package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

func TestMetrics(t *testing.T) {
	t.Run("counters accumulate and scrape", func(t *testing.T) {
		m := New()
		m.ObserveCycle("hourly", 2*time.Second, 5)
		m.ObserveCycle("hourly", time.Second, 0)
		m.ObserveScan(true)
		m.ObserveScan(false)
		m.ObserveRequest("/api/v1/status", http.StatusOK, 10*time.Millisecond)
		m.ObserveRequest("/api/v1/status", http.StatusNotFound, 5*time.Millisecond)
		m.ObserveBatchStart()
		m.ObserveBatchRecovery()

		assert.InDelta(t, 2, testutil.ToFloat64(m.cyclesTotal.WithLabelValues("hourly")), 0.001)
		assert.InDelta(t, 5, testutil.ToFloat64(m.discoveredTotal), 0.001)
		assert.InDelta(t, 1, testutil.ToFloat64(m.scansTotal.WithLabelValues("deep")), 0.001)
		assert.InDelta(t, 1, testutil.ToFloat64(m.scansTotal.WithLabelValues("basic")), 0.001)
		assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/status", "2xx")), 0.001)
		assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/status", "4xx")), 0.001)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "reporadar_scheduler_cycles_total")
		assert.Contains(t, rec.Body.String(), "reporadar_batch_runs_started_total")
	})

	t.Run("nil receiver observations are no-ops", func(t *testing.T) {
		var m *Metrics
		m.ObserveCycle("hourly", time.Second, 1)
		m.ObserveScan(false)
		m.ObserveRequest("/", http.StatusOK, time.Millisecond)
		m.ObserveBatchStart()
		m.ObserveBatchRecovery()
	})
}

func TestStoreCollector(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	repos := store.NewRepositoryService(client.Client)
	tiers := store.NewTierService(client.Client, config.DefaultTierPolicies())
	analyses := store.NewAnalysisService(client.Client)

	now := time.Now().UTC()
	_, err := repos.UpsertRepository(ctx, githost.Repository{
		ID:        "1",
		Owner:     "acme",
		Name:      "alpha",
		FullName:  "acme/alpha",
		Stars:     500,
		CreatedAt: now.AddDate(0, -6, 0),
		UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = tiers.UpsertTier(ctx, store.TierInput{RepoID: "1", Tier: 1, Stars: 500})
	require.NoError(t, err)
	_, err = analyses.SaveAnalysis(ctx, "1", &llm.Analysis{
		Investment:     75,
		Recommendation: llm.RecommendationHold,
		Summary:        "steady",
		ModelUsed:      "analyst-medium",
		Cost:           2.5,
	})
	require.NoError(t, err)

	m := New()
	collector := NewStoreCollector(repos, tiers, analyses)
	require.NoError(t, m.Register(collector))
	assert.Error(t, m.Register(collector), "double registration surfaces instead of panicking")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `reporadar_store_repositories 1`)
	assert.Contains(t, body, `reporadar_store_tier_repositories{tier="1"} 1`)
	assert.Contains(t, body, `reporadar_store_tier_repositories{tier="3"} 0`)
	assert.Contains(t, body, `reporadar_store_analysis_credits_total 2.5`)
}
