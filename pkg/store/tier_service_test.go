package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	testdb "github.com/reporadar/reporadar/test/database"
)

func TestTierService_UpsertTier(t *testing.T) {
	client := testdb.NewTestClient(t)
	policies := config.DefaultTierPolicies()
	service := NewTierService(client.Client, policies)
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/one")

	t.Run("creates assignment with scheduled next scan", func(t *testing.T) {
		ta, err := service.UpsertTier(ctx, TierInput{
			RepoID:          "r1",
			Tier:            2,
			Stars:           120,
			GrowthVelocity:  1.5,
			EngagementScore: 40,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, ta.Tier)
		assert.Greater(t, ta.ScanPriority, 0.0)

		wantDue := time.Now().Add(policies.Tier2.ScanInterval)
		assert.WithinDuration(t, wantDue, ta.NextScanDue, time.Minute)
	})

	t.Run("promotion always applies", func(t *testing.T) {
		ta, err := service.UpsertTier(ctx, TierInput{RepoID: "r1", Tier: 1, Stars: 300})
		require.NoError(t, err)
		assert.Equal(t, 1, ta.Tier)
	})

	t.Run("scheduled rescans never demote", func(t *testing.T) {
		ta, err := service.UpsertTier(ctx, TierInput{RepoID: "r1", Tier: 3, Stars: 300})
		require.NoError(t, err)
		assert.Equal(t, 1, ta.Tier)
	})

	t.Run("explicit recompute may demote", func(t *testing.T) {
		ta, err := service.UpsertTier(ctx, TierInput{RepoID: "r1", Tier: 3, Stars: 300, AllowDemotion: true})
		require.NoError(t, err)
		assert.Equal(t, 3, ta.Tier)
	})

	t.Run("rejects out-of-range tier", func(t *testing.T) {
		_, err := service.UpsertTier(ctx, TierInput{RepoID: "r1", Tier: 4})
		assert.True(t, IsValidationError(err))
	})
}

func TestTierService_ScanPlanning(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTierService(client.Client, config.DefaultTierPolicies())
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/one")
	seedRepo(t, client, "r2", "acme/two")
	seedRepo(t, client, "r3", "acme/three")

	for _, in := range []TierInput{
		{RepoID: "r1", Tier: 1, Stars: 500, GrowthVelocity: 3},
		{RepoID: "r2", Tier: 1, Stars: 200, GrowthVelocity: 1},
		{RepoID: "r3", Tier: 2, Stars: 80},
	} {
		_, err := service.UpsertTier(ctx, in)
		require.NoError(t, err)
	}

	t.Run("repos by tier ordered by priority", func(t *testing.T) {
		rows, err := service.ReposByTier(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "r1", rows[0].RepoID, "faster growth sorts first")
	})

	t.Run("nothing due right after assignment", func(t *testing.T) {
		due, err := service.ReposNeedingScan(ctx, 1, time.Now(), 0)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("overdue repos surface most overdue first", func(t *testing.T) {
		future := time.Now().Add(30 * 24 * time.Hour)
		due, err := service.ReposNeedingScan(ctx, 1, future, 0)
		require.NoError(t, err)
		require.Len(t, due, 2)
	})

	t.Run("mark scanned reschedules per cadence", func(t *testing.T) {
		now := time.Now()
		ta, err := service.MarkScanned(ctx, "r1", true, now)
		require.NoError(t, err)
		require.NotNil(t, ta.LastDeepScan)
		assert.WithinDuration(t, now.Add(config.DefaultTierPolicies().Tier1.ScanInterval), ta.NextScanDue, time.Second)
		assert.Nil(t, ta.LastBasicScan)

		// Repeating the call is harmless.
		_, err = service.MarkScanned(ctx, "r1", true, now)
		require.NoError(t, err)
	})

	t.Run("tier counts", func(t *testing.T) {
		counts, err := service.TierCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, counts[1])
		assert.Equal(t, 1, counts[2])
	})
}

func TestTierService_ScanOrdering(t *testing.T) {
	client := testdb.NewTestClient(t)
	policies := config.DefaultTierPolicies()
	service := NewTierService(client.Client, policies)
	repos := NewRepositoryService(client.Client)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	seed := func(id string, stars int, pushed time.Time) {
		t.Helper()
		_, err := repos.UpsertRepository(ctx, githost.Repository{
			ID:        id,
			Owner:     "acme",
			Name:      id,
			FullName:  "acme/" + id,
			Stars:     stars,
			CreatedAt: now.AddDate(0, -6, 0),
			UpdatedAt: now,
			PushedAt:  &pushed,
		})
		require.NoError(t, err)
		_, err = service.UpsertTier(ctx, TierInput{RepoID: id, Tier: 1, Stars: stars})
		require.NoError(t, err)
	}

	seed("bright", 300, now.Add(-1*time.Hour))
	seed("dimmer", 300, now.Add(-48*time.Hour))
	seed("giant", 500, now.Add(-72*time.Hour))
	seed("small", 100, now)

	// MarkScanned with a shared timestamp gives every row the same due time,
	// so only the tie-breaks decide the order.
	for _, id := range []string{"bright", "dimmer", "giant", "small"} {
		_, err := service.MarkScanned(ctx, id, false, now)
		require.NoError(t, err)
	}

	future := now.Add(policies.Tier1.ScanInterval + time.Hour)

	t.Run("stars then push recency break due-time ties", func(t *testing.T) {
		due, err := service.ReposNeedingScan(ctx, 1, future, 0)
		require.NoError(t, err)
		require.Len(t, due, 4)

		got := make([]string, len(due))
		for i, ta := range due {
			got[i] = ta.RepoID
		}
		assert.Equal(t, []string{"giant", "bright", "dimmer", "small"}, got)
	})

	t.Run("the most overdue repo leads regardless of stars", func(t *testing.T) {
		_, err := service.MarkScanned(ctx, "small", false, now.Add(-2*time.Hour))
		require.NoError(t, err)

		due, err := service.ReposNeedingScan(ctx, 1, future, 0)
		require.NoError(t, err)
		require.Len(t, due, 4)
		assert.Equal(t, "small", due[0].RepoID)
	})

	t.Run("limit keeps the front of the ordering", func(t *testing.T) {
		due, err := service.ReposNeedingScan(ctx, 1, future, 2)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, []string{due[0].RepoID, due[1].RepoID}, []string{"small", "giant"})
	})
}
