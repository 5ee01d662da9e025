package planner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/database"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

func seedTiered(t *testing.T, client *database.Client, tiers *store.TierService, id string, tier, stars int, velocity float64) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC()
	repos := store.NewRepositoryService(client.Client)
	_, err := repos.UpsertRepository(ctx, githost.Repository{
		ID:        id,
		Owner:     "acme",
		Name:      id,
		FullName:  "acme/" + id,
		Stars:     stars,
		CreatedAt: now.AddDate(0, -4, 0),
		UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = tiers.UpsertTier(ctx, store.TierInput{
		RepoID:         id,
		Tier:           tier,
		Stars:          stars,
		GrowthVelocity: velocity,
	})
	require.NoError(t, err)
}

func TestPlanner_PlanScans(t *testing.T) {
	client := testdb.NewTestClient(t)
	policies := config.DefaultTierPolicies()
	// Small budgets keep the fixture readable.
	policies.Tier1.HourlyBatchLimit = 2
	policies.Tier2.HourlyBatchLimit = 2

	tiers := store.NewTierService(client.Client, policies)
	p := New(tiers, store.NewAnalysisService(client.Client), policies)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedTiered(t, client, tiers, fmt.Sprintf("t1-%d", i), 1, 500, 3)
	}
	seedTiered(t, client, tiers, "t2-0", 2, 80, 0.5)

	t.Run("nothing due immediately after assignment", func(t *testing.T) {
		plan, err := p.PlanScans(ctx, time.Now())
		require.NoError(t, err)
		assert.Empty(t, plan.Items)
	})

	t.Run("caps per tier and marks deep scans", func(t *testing.T) {
		future := time.Now().Add(30 * 24 * time.Hour)
		plan, err := p.PlanScans(ctx, future)
		require.NoError(t, err)

		assert.Equal(t, 2, plan.PerTier[1], "hourly cap trims the due list")
		assert.Equal(t, 1, plan.PerTier[2])
		assert.Zero(t, plan.PerTier[3])

		for _, item := range plan.Items {
			assert.NotEmpty(t, item.FullName)
			if item.Tier == 1 {
				assert.True(t, item.Deep, "tier 1 runs comprehensive scans")
			} else {
				assert.False(t, item.Deep)
			}
		}
	})
}

func TestPlanner_PlanAnalysisPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	policies := config.DefaultTierPolicies()
	policies.Tier2.DeepModelTopN = 1

	tiers := store.NewTierService(client.Client, policies)
	analyses := store.NewAnalysisService(client.Client)
	p := New(tiers, analyses, policies)
	ctx := context.Background()

	seedTiered(t, client, tiers, "a", 1, 900, 5)
	seedTiered(t, client, tiers, "b", 2, 200, 2)
	seedTiered(t, client, tiers, "c", 2, 90, 0.2)
	seedTiered(t, client, tiers, "d", 3, 20, 0.1)

	t.Run("tier 1 fills first with the deep model", func(t *testing.T) {
		pool, err := p.PlanAnalysisPool(ctx, time.Now(), 10)
		require.NoError(t, err)
		require.Len(t, pool, 4)

		assert.Equal(t, "a", pool[0].RepoID)
		assert.Equal(t, llm.ModelTierHigh, pool[0].ModelTier)

		assert.Equal(t, 2, pool[1].Tier)
		assert.Equal(t, llm.ModelTierHigh, pool[1].ModelTier, "tier 2 top-ranked repo gets the deep model")
		assert.Equal(t, llm.ModelTierMedium, pool[2].ModelTier)

		assert.Equal(t, llm.ModelTierSmall, pool[3].ModelTier)
	})

	t.Run("fresh analyses are skipped", func(t *testing.T) {
		_, err := analyses.SaveAnalysis(ctx, "a", &llm.Analysis{
			Investment: 80, Innovation: 70, Team: 60, Market: 70,
			Recommendation: llm.RecommendationBuy,
			ModelUsed:      "analyst-large",
			CreatedAt:      time.Now(),
		})
		require.NoError(t, err)

		pool, err := p.PlanAnalysisPool(ctx, time.Now(), 10)
		require.NoError(t, err)
		require.Len(t, pool, 3)
		for _, c := range pool {
			assert.NotEqual(t, "a", c.RepoID)
		}
	})

	t.Run("pool ceiling cuts lower tiers", func(t *testing.T) {
		pool, err := p.PlanAnalysisPool(ctx, time.Now(), 2)
		require.NoError(t, err)
		require.Len(t, pool, 2)
		assert.Equal(t, 2, pool[0].Tier)
		assert.Equal(t, 2, pool[1].Tier)
	})

	t.Run("zero ceiling yields nothing", func(t *testing.T) {
		pool, err := p.PlanAnalysisPool(ctx, time.Now(), 0)
		require.NoError(t, err)
		assert.Empty(t, pool)
	})
}
