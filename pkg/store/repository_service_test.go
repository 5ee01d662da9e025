package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/reporadar/reporadar/test/database"
)

func TestRepositoryService_UpsertRepository(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRepositoryService(client.Client)
	ctx := context.Background()

	t.Run("creates on first sighting", func(t *testing.T) {
		repo := seedRepo(t, client, "r1", "acme/one")

		stored, err := service.GetRepository(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, repo.FullName, stored.FullName)
		assert.Equal(t, repo.Stars, stored.Stars)
		assert.Equal(t, []string{"ai", "llm"}, stored.Topics)
		assert.NotZero(t, stored.DiscoveredAt)
	})

	t.Run("refreshes metadata on rescan without destroying the row", func(t *testing.T) {
		repo := seedRepo(t, client, "r2", "acme/two")
		first, err := service.GetRepository(ctx, "r2")
		require.NoError(t, err)

		repo.Stars = 999
		repo.Description = "renamed"
		_, err = service.UpsertRepository(ctx, repo)
		require.NoError(t, err)

		second, err := service.GetRepository(ctx, "r2")
		require.NoError(t, err)
		assert.Equal(t, 999, second.Stars)
		assert.Equal(t, "renamed", second.Description)
		assert.Equal(t, first.DiscoveredAt, second.DiscoveredAt, "discovery time is immutable")
	})

	t.Run("rejects missing id", func(t *testing.T) {
		repo := seedRepo(t, client, "r3", "acme/three")
		repo.ID = ""
		_, err := service.UpsertRepository(ctx, repo)
		assert.True(t, IsValidationError(err))
	})
}

func TestRepositoryService_Lookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRepositoryService(client.Client)
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/alpha")
	seedRepo(t, client, "r2", "acme/beta")

	t.Run("by full name", func(t *testing.T) {
		repo, err := service.GetRepositoryByFullName(ctx, "acme/beta")
		require.NoError(t, err)
		assert.Equal(t, "r2", repo.ID)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetRepository(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("count", func(t *testing.T) {
		n, err := service.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("list orders by stars", func(t *testing.T) {
		repo, err := service.GetRepositoryByFullName(ctx, "acme/alpha")
		require.NoError(t, err)
		_, err = repo.Update().SetStars(5000).Save(ctx)
		require.NoError(t, err)

		repos, err := service.ListRepositories(ctx, 10)
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "acme/alpha", repos[0].FullName)
	})
}
