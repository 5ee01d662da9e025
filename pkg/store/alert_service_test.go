package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/ent/alert"
	testdb "github.com/reporadar/reporadar/test/database"
)

func TestAlertService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAlertService(client.Client, time.Hour)
	ctx := context.Background()

	seedRepo(t, client, "r1", "acme/one")

	t.Run("records an alert", func(t *testing.T) {
		created, err := service.CreateAlert(ctx, AlertInput{
			RepoID:   "r1",
			Type:     "investment_opportunity",
			Level:    alert.LevelHigh,
			Message:  "investment score 86 for acme/one",
			Metadata: map[string]interface{}{"score": 86},
		})
		require.NoError(t, err)
		assert.False(t, created.Acknowledged)
		assert.Equal(t, alert.LevelHigh, created.Level)
	})

	t.Run("same type inside the window is suppressed", func(t *testing.T) {
		_, err := service.CreateAlert(ctx, AlertInput{
			RepoID:  "r1",
			Type:    "investment_opportunity",
			Level:   alert.LevelUrgent,
			Message: "repeat",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("different type is not suppressed", func(t *testing.T) {
		_, err := service.CreateAlert(ctx, AlertInput{
			RepoID:  "r1",
			Type:    "high_growth",
			Level:   alert.LevelMedium,
			Message: "growth score 93",
		})
		require.NoError(t, err)
	})

	t.Run("acknowledge and filter", func(t *testing.T) {
		open, err := service.ListAlerts(ctx, true, 0)
		require.NoError(t, err)
		require.Len(t, open, 2)

		_, err = service.Acknowledge(ctx, open[0].ID)
		require.NoError(t, err)

		open, err = service.ListAlerts(ctx, true, 0)
		require.NoError(t, err)
		assert.Len(t, open, 1)

		all, err := service.ListAlerts(ctx, false, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("unknown alert id", func(t *testing.T) {
		_, err := service.Acknowledge(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
