package githost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Options{
		BaseURL:        server.URL,
		Token:          "test-token",
		RequestTimeout: 5 * time.Second,
		Conns:          semaphore.NewWeighted(6),
	})
	return client, server
}

const searchPayload = `{
  "items": [
    {
      "id": 42,
      "name": "langkit",
      "full_name": "acme/langkit",
      "description": "LLM toolkit",
      "owner": {"login": "acme"},
      "stargazers_count": 1500,
      "forks_count": 120,
      "open_issues_count": 10,
      "watchers_count": 1500,
      "language": "Python",
      "topics": ["ai", "llm"],
      "created_at": "2026-01-10T00:00:00Z",
      "updated_at": "2026-08-20T00:00:00Z",
      "pushed_at": "2026-08-24T12:00:00Z",
      "archived": false,
      "fork": false,
      "html_url": "https://github.com/acme/langkit",
      "default_branch": "main"
    }
  ]
}`

func TestClient_Search(t *testing.T) {
	t.Run("maps wire fields", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/repositories", r.URL.Path)
			assert.Equal(t, "stars:>100", r.URL.Query().Get("q"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(searchPayload))
		}))

		repos, err := client.Search(context.Background(), SearchQuery{Query: "stars:>100", Sort: "stars", Order: "desc"})
		require.NoError(t, err)
		require.Len(t, repos, 1)

		repo := repos[0]
		assert.Equal(t, "42", repo.ID)
		assert.Equal(t, "acme", repo.Owner)
		assert.Equal(t, "acme/langkit", repo.FullName)
		assert.Equal(t, 1500, repo.Stars)
		assert.Equal(t, []string{"ai", "llm"}, repo.Topics)
		require.NotNil(t, repo.PushedAt)
		assert.False(t, repo.IsArchived)
	})

	t.Run("retries transient 5xx then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(searchPayload))
		}))

		repos, err := client.Search(context.Background(), SearchQuery{Query: "ai"})
		require.NoError(t, err)
		assert.Len(t, repos, 1)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("exhausted retries surface unavailable", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		_, err := client.Search(context.Background(), SearchQuery{Query: "ai"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_GetRepository(t *testing.T) {
	t.Run("not found is permanent", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetRepository(context.Background(), "acme", "gone")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, int32(1), calls.Load(), "permanent errors must not retry")
	})

	t.Run("auth failure is permanent", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := client.GetRepository(context.Background(), "acme", "private")
		assert.ErrorIs(t, err, ErrAuthFailed)
	})
}

func TestClient_GetReadme(t *testing.T) {
	t.Run("caches content", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "/repos/acme/langkit/readme", r.URL.Path)
			_, _ = w.Write([]byte("# LangKit"))
		}))

		first, err := client.GetReadme(context.Background(), "acme", "langkit")
		require.NoError(t, err)
		assert.Equal(t, "# LangKit", first)

		second, err := client.GetReadme(context.Background(), "acme", "langkit")
		require.NoError(t, err)
		assert.Equal(t, "# LangKit", second)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClient_RateLimit(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"resources":{"core":{"limit":5000,"remaining":4321,"reset":1787300000}}}`))
	}))

	info, err := client.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000, info.Limit)
	assert.Equal(t, 4321, info.Remaining)
	assert.Equal(t, time.Unix(1787300000, 0).UTC(), info.ResetAt)

	_, err = client.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "second call should hit the cache")
}

func TestStatusToError(t *testing.T) {
	t.Run("429 carries retry-after", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     http.Header{"Retry-After": []string{"30"}},
		}
		err := statusToError(resp)
		var rl *RateLimitedError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, 30*time.Second, rl.RetryAfter)
		assert.True(t, IsTransient(err))
	})

	t.Run("invalid unexpected status", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusTeapot, Header: http.Header{}}
		assert.ErrorIs(t, statusToError(resp), ErrInvalidResponse)
		assert.False(t, IsTransient(statusToError(resp)))
	})
}

func TestClient_GetReleases(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/langkit/releases", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[{"tag_name":"v1.2.0","name":"1.2.0","published_at":"2026-08-01T00:00:00Z","prerelease":false}]`))
	}))

	releases, err := client.GetReleases(context.Background(), "acme", "langkit", 5)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "v1.2.0", releases[0].TagName)
	assert.False(t, releases[0].Prerelease)
}

func TestClient_GetPullRequests(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		_, _ = w.Write([]byte(`[{"number":7,"state":"closed","created_at":"2026-08-10T00:00:00Z","merged_at":"2026-08-11T00:00:00Z"},{"number":8,"state":"open","created_at":"2026-08-20T00:00:00Z","merged_at":null}]`))
	}))

	prs, err := client.GetPullRequests(context.Background(), "acme", "langkit", 30)
	require.NoError(t, err)
	require.Len(t, prs, 2)
	assert.NotNil(t, prs[0].MergedAt)
	assert.Nil(t, prs[1].MergedAt)
}

func TestClient_GetIssues(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		_, _ = w.Write([]byte(`[{"number":12,"state":"open","created_at":"2026-08-15T00:00:00Z","comments":4}]`))
	}))

	issues, err := client.GetIssues(context.Background(), "acme", "langkit", 30)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 4, issues[0].Comments)
}

func TestClient_GetStarHistory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github.star+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`[{"starred_at":"2026-08-24T10:00:00Z"},{"starred_at":"2026-08-23T09:00:00Z"}]`))
	}))

	events, err := client.GetStarHistory(context.Background(), "acme", "langkit", 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].StarredAt.After(events[1].StarredAt))
}

func TestClient_GetForkAnalysis(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -3).UTC().Format(time.RFC3339)
	old := time.Now().AddDate(0, -6, 0).UTC().Format(time.RFC3339)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "newest", r.URL.Query().Get("sort"))
		_, _ = w.Write([]byte(`[{"created_at":"` + recent + `"},{"created_at":"` + old + `"}]`))
	}))

	analysis, err := client.GetForkAnalysis(context.Background(), "acme", "langkit")
	require.NoError(t, err)
	assert.Equal(t, 2, analysis.TotalForks)
	assert.Equal(t, 1, analysis.RecentForks)
	require.NotNil(t, analysis.LatestFork)
}

func TestClient_GetCommitActivity(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -7).Unix()
	old := time.Now().AddDate(0, 0, -200).Unix()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(
			`[{"week":` + strconv.FormatInt(old, 10) + `,"total":3},{"week":` + strconv.FormatInt(recent, 10) + `,"total":17}]`))
	}))

	metrics, err := client.GetCommitActivity(context.Background(), "acme", "langkit", 30)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, 17, metrics[0].Commits)
}
