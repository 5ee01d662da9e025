package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/database"
	testdb "github.com/reporadar/reporadar/test/database"
)

func TestLoadConfigFromEnv(t *testing.T) {
	clear := func(t *testing.T) {
		t.Helper()
		for _, key := range []string{
			"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
			"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
			"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
		} {
			t.Setenv(key, "")
		}
	}

	t.Run("defaults without environment", func(t *testing.T) {
		clear(t)
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "reporadar", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("environment overrides, including pool lifetimes", func(t *testing.T) {
		clear(t)
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_MAX_OPEN_CONNS", "25")
		t.Setenv("DB_CONN_MAX_LIFETIME", "1h")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "90s")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 25, cfg.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
		assert.Equal(t, 90*time.Second, cfg.ConnMaxIdleTime)
	})

	t.Run("invalid port is an error", func(t *testing.T) {
		clear(t)
		t.Setenv("DB_PORT", "not-a-port")
		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PORT")
	})

	t.Run("unparseable duration falls back to the default", func(t *testing.T) {
		clear(t)
		t.Setenv("DB_CONN_MAX_LIFETIME", "soon")
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	})
}

func TestHealth(t *testing.T) {
	client := testdb.NewTestClient(t)

	status, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)

	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.PingMs, int64(0))
	assert.Positive(t, status.MaxOpenConns)
	assert.GreaterOrEqual(t, status.Open, status.InUse)
}
