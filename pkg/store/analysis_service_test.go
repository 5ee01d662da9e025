package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/llm"
	testdb "github.com/reporadar/reporadar/test/database"
)

func testAnalysis(investment int, created time.Time) *llm.Analysis {
	moat := 70
	return &llm.Analysis{
		Investment:     investment,
		Innovation:     60,
		Team:           55,
		Market:         65,
		Growth:         80,
		TechnicalMoat:  &moat,
		Recommendation: llm.RecommendationBuy,
		Summary:        "solid",
		Strengths:      []string{"adoption"},
		Risks:          []string{"competition"},
		ModelUsed:      "analyst-medium",
		Cost:           2,
		CreatedAt:      created,
	}
}

func TestAnalysisService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/one")
	seedRepo(t, client, "r2", "acme/two")

	now := time.Now().UTC().Truncate(time.Second)

	t.Run("appends and reads back latest", func(t *testing.T) {
		_, err := service.SaveAnalysis(ctx, "r1", testAnalysis(60, now.Add(-48*time.Hour)))
		require.NoError(t, err)
		_, err = service.SaveAnalysis(ctx, "r1", testAnalysis(85, now))
		require.NoError(t, err)

		latest, err := service.GetLatestAnalysis(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, 85, latest.InvestmentScore)
		require.NotNil(t, latest.TechnicalMoat)
		assert.Equal(t, 70, *latest.TechnicalMoat)
		assert.Nil(t, latest.Scalability)
	})

	t.Run("freshness window", func(t *testing.T) {
		fresh, err := service.HasRecentAnalysis(ctx, "r1", 24*time.Hour)
		require.NoError(t, err)
		assert.True(t, fresh)

		_, err = service.SaveAnalysis(ctx, "r2", testAnalysis(90, now.Add(-30*24*time.Hour)))
		require.NoError(t, err)

		stale, err := service.HasRecentAnalysis(ctx, "r2", 24*time.Hour)
		require.NoError(t, err)
		assert.False(t, stale)
	})

	t.Run("top analyses uses latest row per repo", func(t *testing.T) {
		top, err := service.TopAnalyses(ctx, 80, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, 90, top[0].InvestmentScore)
		assert.Equal(t, "r2", top[0].RepoID)
		assert.Equal(t, 85, top[1].InvestmentScore)
	})

	t.Run("rejects unknown recommendation", func(t *testing.T) {
		bad := testAnalysis(50, now)
		bad.Recommendation = llm.Recommendation("maybe")
		_, err := service.SaveAnalysis(ctx, "r1", bad)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown repo maps to invalid input", func(t *testing.T) {
		_, err := service.SaveAnalysis(ctx, "ghost", testAnalysis(50, now))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("total cost since", func(t *testing.T) {
		cost, err := service.TotalCost(ctx, now.Add(-72*time.Hour))
		require.NoError(t, err)
		assert.InDelta(t, 4.0, cost, 1e-9)
	})
}
