package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/githost"
	testdb "github.com/reporadar/reporadar/test/database"
)

func TestMetricsService_RecordSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMetricsService(client.Client)
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/one")
	recordedAt := time.Now().UTC().Truncate(time.Second)

	t.Run("appends a snapshot", func(t *testing.T) {
		contribs := 12
		snap, err := service.RecordSnapshot(ctx, "r1", SnapshotInput{
			Stars:        120,
			Forks:        14,
			Watchers:     40,
			Contributors: &contribs,
			RecordedAt:   recordedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, 120, snap.Stars)
		require.NotNil(t, snap.Contributors)
		assert.Equal(t, 12, *snap.Contributors)
		assert.Nil(t, snap.CommitsCount, "uncollected metrics stay nil")
	})

	t.Run("duplicate recorded_at is rejected", func(t *testing.T) {
		_, err := service.RecordSnapshot(ctx, "r1", SnapshotInput{Stars: 121, RecordedAt: recordedAt})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("previous snapshot for growth computation", func(t *testing.T) {
		later := recordedAt.Add(time.Hour)
		_, err := service.RecordSnapshot(ctx, "r1", SnapshotInput{Stars: 140, RecordedAt: later})
		require.NoError(t, err)

		prev, err := service.PreviousSnapshot(ctx, "r1", later)
		require.NoError(t, err)
		assert.Equal(t, 120, prev.Stars)

		latest, err := service.LatestSnapshot(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, 140, latest.Stars)
	})

	t.Run("history is oldest first", func(t *testing.T) {
		history, err := service.History(ctx, "r1", recordedAt.Add(-time.Minute))
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].RecordedAt.Before(history[1].RecordedAt))
	})
}

func TestMetricsService_SaveContributors(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMetricsService(client.Client)
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/one")

	err := service.SaveContributors(ctx, "r1", []githost.Contributor{
		{Login: "alice", Contributions: 40},
		{Login: "bob", Contributions: 10},
	})
	require.NoError(t, err)

	t.Run("deep rescan replaces the set", func(t *testing.T) {
		err := service.SaveContributors(ctx, "r1", []githost.Contributor{
			{Login: "alice", Contributions: 55},
			{Login: "carol", Contributions: 5},
		})
		require.NoError(t, err)

		rows, err := service.Contributors(ctx, "r1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "alice", rows[0].Login)
		assert.Equal(t, 55, rows[0].Contributions)
		assert.Equal(t, "carol", rows[1].Login)
	})
}
