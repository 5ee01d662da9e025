package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGovernor(t *testing.T) (*Governor, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	g := NewGovernor()
	g.now = func() time.Time { return now }
	return g, &now
}

func TestGovernor_TryAcquire(t *testing.T) {
	t.Run("consumes tokens until empty", func(t *testing.T) {
		g, _ := newTestGovernor(t)
		require.NoError(t, g.Register("search", BucketSettings{Capacity: 3, RefillAmount: 3, RefillPeriod: time.Minute}))

		for i := 0; i < 3; i++ {
			require.NoError(t, g.TryAcquire("search", 1))
		}
		err := g.TryAcquire("search", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("refills over time up to capacity", func(t *testing.T) {
		g, now := newTestGovernor(t)
		require.NoError(t, g.Register("core", BucketSettings{Capacity: 10, RefillAmount: 10, RefillPeriod: time.Minute}))

		require.NoError(t, g.TryAcquire("core", 10))
		require.Error(t, g.TryAcquire("core", 1))

		// Half the refill period restores half the tokens.
		*now = now.Add(30 * time.Second)
		require.NoError(t, g.TryAcquire("core", 5))
		require.Error(t, g.TryAcquire("core", 1))

		// Tokens never exceed capacity.
		*now = now.Add(time.Hour)
		require.NoError(t, g.TryAcquire("core", 10))
		require.Error(t, g.TryAcquire("core", 1))
	})

	t.Run("unregistered endpoints pass through", func(t *testing.T) {
		g, _ := newTestGovernor(t)
		require.NoError(t, g.TryAcquire("unknown", 100))
	})
}

func TestGovernor_Acquire(t *testing.T) {
	t.Run("returns immediately with tokens available", func(t *testing.T) {
		g, _ := newTestGovernor(t)
		require.NoError(t, g.Register("search", BucketSettings{Capacity: 1, RefillAmount: 1, RefillPeriod: time.Minute}))
		require.NoError(t, g.Acquire(context.Background(), "search", 1))
	})

	t.Run("honours context cancellation while blocked", func(t *testing.T) {
		g, _ := newTestGovernor(t)
		require.NoError(t, g.Register("search", BucketSettings{Capacity: 1, RefillAmount: 1, RefillPeriod: time.Hour}))
		require.NoError(t, g.Acquire(context.Background(), "search", 1))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := g.Acquire(ctx, "search", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestGovernor_Snapshot(t *testing.T) {
	g, _ := newTestGovernor(t)
	require.NoError(t, g.Register("search", BucketSettings{Capacity: 5, RefillAmount: 5, RefillPeriod: time.Minute}))
	require.NoError(t, g.TryAcquire("search", 2))

	snaps := g.Snapshot()
	require.Len(t, snaps, 1)
	assert.Equal(t, "search", snaps[0].Endpoint)
	assert.Equal(t, 5, snaps[0].Capacity)
	assert.InDelta(t, 3, snaps[0].Tokens, 0.01)
}

func TestCreditLedger(t *testing.T) {
	t.Run("enforces per-batch limit", func(t *testing.T) {
		l := NewCreditLedger(10, 0)
		l.Charge("batch-1", 8)

		require.NoError(t, l.Check("batch-1", 2))
		err := l.Check("batch-1", 3)
		assert.ErrorIs(t, err, ErrBatchCreditsExhausted)

		// Other batches have their own counter.
		require.NoError(t, l.Check("batch-2", 10))
	})

	t.Run("enforces hourly limit across batches", func(t *testing.T) {
		l := NewCreditLedger(0, 10)
		l.Charge("a", 6)
		l.Charge("b", 3)

		require.NoError(t, l.Check("c", 1))
		assert.ErrorIs(t, l.Check("c", 2), ErrHourlyCreditsExhausted)
	})

	t.Run("hourly window resets", func(t *testing.T) {
		now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		l := NewCreditLedger(0, 10)
		l.now = func() time.Time { return now }

		l.Charge("a", 10)
		assert.ErrorIs(t, l.Check("a", 1), ErrHourlyCreditsExhausted)

		now = now.Add(61 * time.Minute)
		require.NoError(t, l.Check("a", 10))
		assert.Equal(t, float64(0), l.HourlyUsed())
	})

	t.Run("release forgets batch counters", func(t *testing.T) {
		l := NewCreditLedger(5, 0)
		l.Charge("a", 5)
		assert.ErrorIs(t, l.Check("a", 1), ErrBatchCreditsExhausted)

		l.Release("a")
		require.NoError(t, l.Check("a", 5))
	})

	t.Run("zero limits disable enforcement", func(t *testing.T) {
		l := NewCreditLedger(0, 0)
		l.Charge("a", 1e9)
		require.NoError(t, l.Check("a", 1e9))
	})
}
