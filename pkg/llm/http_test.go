package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/ratelimit"
)

const validAnalysis = `{
  "investment_score": 85,
  "innovation_score": 78,
  "team_score": 70,
  "market_score": 82,
  "growth_score": 91,
  "technical_moat": 66,
  "recommendation": "buy",
  "summary": "Strong adoption curve.",
  "strengths": ["active maintainers"],
  "risks": ["crowded market"],
  "questions": ["monetization path?"]
}`

func newTestAnalyzer(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultLLMConfig()
	cfg.Endpoint = server.URL
	cfg.RequestTimeout = 2 * time.Second
	return NewHTTPClient(cfg, "key", nil, semaphore.NewWeighted(6))
}

func testRepo() githost.Repository {
	return githost.Repository{ID: "1", Owner: "acme", Name: "langkit", FullName: "acme/langkit", Stars: 1500}
}

func TestHTTPClient_Analyze(t *testing.T) {
	t.Run("parses valid response and attaches model metadata", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(validAnalysis))
		}))

		analysis, err := analyzer.Analyze(context.Background(), testRepo(), "# README", ModelTierHigh)
		require.NoError(t, err)

		assert.Equal(t, 85, analysis.Investment)
		assert.Equal(t, 91, analysis.Growth)
		require.NotNil(t, analysis.TechnicalMoat)
		assert.Equal(t, 66, *analysis.TechnicalMoat)
		assert.Nil(t, analysis.Scalability, "omitted optional metrics stay nil")
		assert.Equal(t, RecommendationBuy, analysis.Recommendation)
		assert.Equal(t, "analyst-large", analysis.ModelUsed)
		assert.Equal(t, float64(4), analysis.Cost)
	})

	t.Run("rejects unknown recommendation", func(t *testing.T) {
		bad := strings.Replace(validAnalysis, `"buy"`, `"maybe"`, 1)
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(bad))
		}))

		_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTierSmall)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "maybe")
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		bad := strings.Replace(validAnalysis, `"investment_score": 85`, `"investment_score": 140`, 1)
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(bad))
		}))

		_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTierSmall)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("maps 429 to rate limited", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))

		_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTierMedium)
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.True(t, IsTransient(err))
	})

	t.Run("slow provider maps to timeout", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(validAnalysis))
		}))
		analyzer.httpClient.Timeout = 50 * time.Millisecond

		_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTierSmall)
		require.Error(t, err)
	})

	t.Run("unknown model tier rejected before any call", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no HTTP call expected")
		}))

		_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTier("xl"))
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("each call consumes one token from the analyze bucket", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(validAnalysis))
		}))

		governor := ratelimit.NewGovernor()
		require.NoError(t, governor.Register(EndpointAnalyze, ratelimit.BucketSettings{
			Capacity:     2,
			RefillAmount: 1,
			RefillPeriod: time.Hour,
		}))
		analyzer.governor = governor

		for i := 0; i < 2; i++ {
			_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTierSmall)
			require.NoError(t, err)
		}

		assert.ErrorIs(t, governor.TryAcquire(EndpointAnalyze, 1), ratelimit.ErrRateLimited,
			"bucket drained by the two calls")
	})

	t.Run("exhausted analyze bucket blocks until the context expires", func(t *testing.T) {
		var calls int
		analyzer := newTestAnalyzer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte(validAnalysis))
		}))

		governor := ratelimit.NewGovernor()
		require.NoError(t, governor.Register(EndpointAnalyze, ratelimit.BucketSettings{
			Capacity:     1,
			RefillAmount: 1,
			RefillPeriod: time.Hour,
		}))
		analyzer.governor = governor

		_, err := analyzer.Analyze(context.Background(), testRepo(), "", ModelTierSmall)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = analyzer.Analyze(ctx, testRepo(), "", ModelTierSmall)
		require.Error(t, err)
		assert.Equal(t, 1, calls, "no provider call without a token")
	})
}
