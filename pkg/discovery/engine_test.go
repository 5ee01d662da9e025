package discovery

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

type fakeSearcher struct {
	mu      sync.Mutex
	calls   int
	results map[string][]githost.Repository // keyed by substring of query
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, q githost.SearchQuery) ([]githost.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for key, repos := range f.results {
		if strings.Contains(q.Query, key) {
			return repos, nil
		}
	}
	return nil, nil
}

func hostRepo(id, fullName string, stars int) githost.Repository {
	now := time.Now().UTC()
	pushed := now.Add(-12 * time.Hour)
	return githost.Repository{
		ID:        id,
		Owner:     "acme",
		Name:      fullName[strings.Index(fullName, "/")+1:],
		FullName:  fullName,
		Stars:     stars,
		Forks:     stars / 10,
		Topics:    []string{"llm"},
		CreatedAt: now.AddDate(0, -3, 0),
		UpdatedAt: now,
		PushedAt:  &pushed,
	}
}

func testEngine(t *testing.T, searcher Searcher) (*Engine, *store.TierService) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.DiscoveryConfig{
		Topics:                []string{"llm"},
		Languages:             []string{"go", "python"},
		MinStars:              10,
		MaxConcurrentSearches: 2,
		Limit:                 100,
		ManualLimit:           1,
	}

	tiers := store.NewTierService(client.Client, config.DefaultTierPolicies())
	engine := NewEngine(searcher,
		store.NewRepositoryService(client.Client),
		store.NewMetricsService(client.Client),
		tiers,
		cfg)
	return engine, tiers
}

func TestEngine_Discover(t *testing.T) {
	t.Run("dedupes across strategies and persists everything", func(t *testing.T) {
		searcher := &fakeSearcher{results: map[string][]githost.Repository{
			"language:go": {
				hostRepo("1", "acme/alpha", 250),
				hostRepo("2", "acme/beta", 40),
			},
			"language:python": {
				hostRepo("1", "acme/alpha", 250), // duplicate
				hostRepo("3", "acme/gamma", 15),
			},
		}}
		engine, tiers := testEngine(t, searcher)

		result, err := engine.Discover(context.Background(), Options{})
		require.NoError(t, err)

		assert.Equal(t, 3, result.Strategies, "two languages plus a trending query")
		assert.Equal(t, 3, result.Found, "alpha counted once")
		assert.Equal(t, 3, result.New)
		assert.Zero(t, result.Updated)

		counts, err := tiers.TierCounts(context.Background())
		require.NoError(t, err)
		total := 0
		for _, n := range counts {
			total += n
		}
		assert.Equal(t, 3, total, "every discovered repo gets a tier assignment")
	})

	t.Run("rescan counts as updated", func(t *testing.T) {
		searcher := &fakeSearcher{results: map[string][]githost.Repository{
			"language:go": {hostRepo("1", "acme/alpha", 250)},
		}}
		engine, _ := testEngine(t, searcher)

		_, err := engine.Discover(context.Background(), Options{})
		require.NoError(t, err)

		result, err := engine.Discover(context.Background(), Options{})
		require.NoError(t, err)
		assert.Zero(t, result.New)
		assert.Equal(t, 1, result.Updated)
	})

	t.Run("filters archived repos, forks, and low stars", func(t *testing.T) {
		archived := hostRepo("10", "acme/old", 500)
		archived.IsArchived = true
		fork := hostRepo("11", "acme/fork", 500)
		fork.IsFork = true

		searcher := &fakeSearcher{results: map[string][]githost.Repository{
			"language:go": {archived, fork, hostRepo("12", "acme/tiny", 3), hostRepo("13", "acme/keep", 80)},
		}}
		engine, _ := testEngine(t, searcher)

		result, err := engine.Discover(context.Background(), Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Found)
	})

	t.Run("manual runs use the lower cap", func(t *testing.T) {
		searcher := &fakeSearcher{results: map[string][]githost.Repository{
			"language:go": {hostRepo("1", "acme/alpha", 250), hostRepo("2", "acme/beta", 120)},
		}}
		engine, _ := testEngine(t, searcher)

		result, err := engine.Discover(context.Background(), Options{Manual: true})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Found)
	})

	t.Run("all strategies failing is an error", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("search down")}
		engine, _ := testEngine(t, searcher)

		_, err := engine.Discover(context.Background(), Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "search strategies failed")
	})
}
