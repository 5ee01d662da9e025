package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Initialize(context.Background(), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 1*time.Hour, cfg.Scheduler.ScanInterval)
		assert.Equal(t, []int{2, 14}, cfg.Scheduler.SweepHours)
		assert.Equal(t, 5, cfg.Batch.ChunkSize)
		assert.Equal(t, 0.5, cfg.Batch.MinSuccessRate)
		assert.Equal(t, 1000, cfg.Discovery.Limit)
		assert.Equal(t, 200, cfg.Discovery.ManualLimit)
	})

	t.Run("user values override defaults", func(t *testing.T) {
		dir := writeConfig(t, `
batch:
  chunk_size: 8
  max_batch_runtime: 2m
discovery:
  min_stars: 50
`)
		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.Batch.ChunkSize)
		assert.Equal(t, 2*time.Minute, cfg.Batch.MaxBatchRuntime)
		assert.Equal(t, 50, cfg.Discovery.MinStars)
		// Untouched fields keep defaults
		assert.Equal(t, 2, cfg.Batch.MaxRetries)
		assert.Equal(t, 120*time.Second, cfg.Batch.AnalysisTimeout)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_LLM_ENDPOINT", "http://llm.internal:9000/analyze")
		dir := writeConfig(t, `
llm:
  endpoint: "{{.TEST_LLM_ENDPOINT}}"
`)
		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "http://llm.internal:9000/analyze", cfg.LLM.Endpoint)
	})

	t.Run("invalid YAML is rejected", func(t *testing.T) {
		dir := writeConfig(t, "batch: [unclosed")
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
	})

	t.Run("validation failure surfaces field", func(t *testing.T) {
		dir := writeConfig(t, `
batch:
  chunk_size: 99
`)
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chunk_size")
	})
}

func TestTierPolicies_ForTier(t *testing.T) {
	tiers := DefaultTierPolicies()

	assert.Equal(t, 7*24*time.Hour, tiers.ForTier(1).ScanInterval)
	assert.Equal(t, 10*24*time.Hour, tiers.ForTier(2).ScanInterval)
	assert.Equal(t, 14*24*time.Hour, tiers.ForTier(3).ScanInterval)
	// Out-of-range tiers degrade to the lowest priority policy
	assert.Equal(t, tiers.Tier3, tiers.ForTier(7))

	assert.True(t, tiers.ForTier(1).DeepScan)
	assert.False(t, tiers.ForTier(3).DeepScan)
	assert.Equal(t, 10, tiers.ForTier(2).DeepModelTopN)
}

func TestValidator(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		require.NoError(t, applyDefaults(cfg))
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, NewValidator(base()).ValidateAll())
	})

	t.Run("sweep hour out of range", func(t *testing.T) {
		cfg := base()
		cfg.Scheduler.SweepHours = []int{25}
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sweep_hours")
	})

	t.Run("missing model tier", func(t *testing.T) {
		cfg := base()
		delete(cfg.LLM.Models, "medium")
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "medium")
	})

	t.Run("bad success rate", func(t *testing.T) {
		cfg := base()
		cfg.Batch.MinSuccessRate = 1.5
		require.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("missing analyze rate bucket", func(t *testing.T) {
		cfg := base()
		cfg.LLM.Rate = nil
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate")
	})
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_VAR", "hello")

	t.Run("expands known variables", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.EXPAND_TEST_VAR}}"))
		assert.Equal(t, "value: hello", string(out))
	})

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.DOES_NOT_EXIST_XYZ}}"))
		assert.Equal(t, "value: ", string(out))
	})

	t.Run("plain YAML passes through", func(t *testing.T) {
		in := []byte("query: stars>100 $lang")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
