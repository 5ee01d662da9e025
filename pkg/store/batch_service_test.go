package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/ent/batchrun"
	testdb "github.com/reporadar/reporadar/test/database"
)

func TestBatchService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBatchService(client.Client)
	ctx := context.Background()

	repos := []string{"acme/one", "acme/two", "acme/three"}

	t.Run("create pending batch", func(t *testing.T) {
		b, err := service.Create(ctx, "b1", repos, 6, 100)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusPending, b.Status)
		assert.Equal(t, 3, b.Total)
		assert.Equal(t, repos, b.Repositories)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := service.Create(ctx, "b1", repos, 6, 100)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("active returns the open batch", func(t *testing.T) {
		active, err := service.Active(ctx)
		require.NoError(t, err)
		assert.Equal(t, "b1", active.ID)
	})

	t.Run("progress checkpointing", func(t *testing.T) {
		_, err := service.SetStatus(ctx, "b1", batchrun.StatusRunning)
		require.NoError(t, err)

		eta := time.Now().Add(2 * time.Minute)
		updated, err := service.RecordProgress(ctx, "b1", ProgressUpdate{
			Completed:           1,
			CurrentRepo:         "acme/two",
			EstimatedCompletion: &eta,
			Result:              map[string]interface{}{"repo": "acme/one", "status": "completed"},
			CreditsActual:       2,
			Checkpoint:          map[string]interface{}{"completed_repos": []string{"acme/one"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Completed)
		assert.Equal(t, "acme/two", updated.CurrentRepo)
		require.Len(t, updated.Results, 1)
		assert.Equal(t, "acme/one", updated.Results[0]["repo"])

		// Results append rather than overwrite.
		updated, err = service.RecordProgress(ctx, "b1", ProgressUpdate{
			Completed:     2,
			CreditsActual: 4,
			Result:        map[string]interface{}{"repo": "acme/two", "status": "completed"},
		})
		require.NoError(t, err)
		assert.Len(t, updated.Results, 2)
	})

	t.Run("terminal status records end time", func(t *testing.T) {
		b, err := service.SetStatus(ctx, "b1", batchrun.StatusCompleted)
		require.NoError(t, err)
		require.NotNil(t, b.EndedAt)

		_, err = service.Active(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("clear removes only finished batches", func(t *testing.T) {
		_, err := service.Create(ctx, "b2", repos, 6, 100)
		require.NoError(t, err)

		n, err := service.ClearFinished(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = service.Get(ctx, "b2")
		require.NoError(t, err)
	})
}

func TestBatchService_Transitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBatchService(client.Client)
	ctx := context.Background()

	_, err := service.Create(ctx, "b1", []string{"acme/one"}, 2, 100)
	require.NoError(t, err)

	t.Run("setting the current status is a no-op", func(t *testing.T) {
		b, err := service.SetStatus(ctx, "b1", batchrun.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusPending, b.Status)
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		_, err := service.SetStatus(ctx, "b1", batchrun.StatusRecovering)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal states accept no further transitions", func(t *testing.T) {
		_, err := service.SetStatus(ctx, "b1", batchrun.StatusRunning)
		require.NoError(t, err)
		_, err = service.SetStatus(ctx, "b1", batchrun.StatusCompleted)
		require.NoError(t, err)

		_, err = service.SetStatus(ctx, "b1", batchrun.StatusRunning)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// Idempotent even when terminal.
		b, err := service.SetStatus(ctx, "b1", batchrun.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, batchrun.StatusCompleted, b.Status)
	})

	t.Run("recovering loops back to running", func(t *testing.T) {
		_, err := service.Create(ctx, "b2", []string{"acme/one"}, 2, 100)
		require.NoError(t, err)

		for _, status := range []batchrun.Status{
			batchrun.StatusRunning,
			batchrun.StatusRecovering,
			batchrun.StatusRunning,
			batchrun.StatusFailed,
		} {
			_, err := service.SetStatus(ctx, "b2", status)
			require.NoError(t, err, "to %s", status)
		}
	})

	t.Run("table helpers agree with the writes", func(t *testing.T) {
		assert.True(t, CanTransition(batchrun.StatusPending, batchrun.StatusRunning))
		assert.False(t, CanTransition(batchrun.StatusStopped, batchrun.StatusRunning))
		assert.True(t, IsTerminalStatus(batchrun.StatusFailed))
		assert.False(t, IsTerminalStatus(batchrun.StatusRecovering))
	})
}

func TestBatchService_Stale(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBatchService(client.Client)
	ctx := context.Background()

	_, err := service.Create(ctx, "b1", []string{"acme/one"}, 2, 100)
	require.NoError(t, err)

	t.Run("fresh batch is not stale", func(t *testing.T) {
		stale, err := service.Stale(ctx, time.Now().Add(-5*time.Minute))
		require.NoError(t, err)
		assert.Empty(t, stale)
	})

	t.Run("quiet batch turns stale", func(t *testing.T) {
		stale, err := service.Stale(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, "b1", stale[0].ID)
	})

	t.Run("increment recovery", func(t *testing.T) {
		n, err := service.IncrementRecovery(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = service.IncrementRecovery(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestSchedulerStateService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSchedulerStateService(client.Client)
	ctx := context.Background()

	t.Run("load before first save", func(t *testing.T) {
		_, err := service.Load(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("tick state survives reload", func(t *testing.T) {
		next := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		require.NoError(t, service.SaveTick(ctx, next))

		state, err := service.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, next, state.NextTick.UTC())
	})

	t.Run("cycle outcome recorded", func(t *testing.T) {
		at := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, service.RecordCycle(ctx, "sweep", at, assert.AnError))

		state, err := service.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sweep", state.LastCycleType)
		require.NotNil(t, state.LastCycleAt)
		assert.Contains(t, state.LastCycleError, "general error")
	})
}
