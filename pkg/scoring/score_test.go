package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
)

var scoreNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func repoAgedDays(days int, stars, forks int) githost.Repository {
	pushed := scoreNow.Add(-24 * time.Hour)
	return githost.Repository{
		ID:        "1",
		FullName:  "acme/langkit",
		Stars:     stars,
		Forks:     forks,
		CreatedAt: scoreNow.AddDate(0, 0, -days),
		PushedAt:  &pushed,
	}
}

func TestCompute(t *testing.T) {
	t.Run("components stay within bounds", func(t *testing.T) {
		repo := repoAgedDays(30, 100000, 50000)
		repo.Topics = []string{"ai", "llm"}
		repo.OpenIssues = 5000

		score := Compute(Input{Repo: repo, HasReadme: true, Contributors: 500, WeeklyCommits: 400}, scoreNow)

		assert.LessOrEqual(t, score.Total, 100.0)
		assert.LessOrEqual(t, score.Growth, 100.0)
		assert.LessOrEqual(t, score.Engagement, 100.0)
		assert.LessOrEqual(t, score.Quality, 100.0)
	})

	t.Run("total uses 0.4 growth, 0.3 engagement, 0.3 quality", func(t *testing.T) {
		score := Compute(Input{Repo: repoAgedDays(365, 400, 40), HasReadme: true}, scoreNow)

		want := 0.4*score.Growth + 0.3*score.Engagement + 0.3*score.Quality
		assert.InDelta(t, want, score.Total, 1e-9)
	})

	t.Run("hot young repo outranks stagnant old repo", func(t *testing.T) {
		young := repoAgedDays(30, 900, 120)
		young.Topics = []string{"llm"}

		old := repoAgedDays(2000, 900, 10)
		stale := scoreNow.AddDate(0, -8, 0)
		old.PushedAt = &stale

		youngScore := Compute(Input{Repo: young, HasReadme: true}, scoreNow)
		oldScore := Compute(Input{Repo: old}, scoreNow)

		assert.Greater(t, youngScore.Total, oldScore.Total)
	})

	t.Run("records signal factors", func(t *testing.T) {
		repo := repoAgedDays(100, 500, 50)
		repo.Topics = []string{"machine-learning"}

		score := Compute(Input{Repo: repo, HasReadme: true}, scoreNow)

		assert.Contains(t, score.Factors, "star_velocity")
		assert.Contains(t, score.Factors, "fork_to_star_ratio")
		assert.Equal(t, 1.0, score.Factors["ai_topic_boost"])
		assert.Equal(t, 1.0, score.Factors["readme_present"])
	})

	t.Run("zero-star repo scores without dividing by zero", func(t *testing.T) {
		score := Compute(Input{Repo: repoAgedDays(10, 0, 0)}, scoreNow)
		assert.GreaterOrEqual(t, score.Total, 0.0)
	})
}

func TestMonthlyGrowthRate(t *testing.T) {
	t.Run("prefers previous snapshot", func(t *testing.T) {
		repo := repoAgedDays(365, 220, 0)
		in := Input{
			Repo:           repo,
			PrevStars:      200,
			PrevRecordedAt: scoreNow.AddDate(0, 0, -30),
		}

		// 20 stars on 200 over 30 days = 10% per month.
		assert.InDelta(t, 0.10, MonthlyGrowthRate(in, scoreNow), 1e-9)
	})

	t.Run("falls back to lifetime average", func(t *testing.T) {
		repo := repoAgedDays(300, 300, 0)
		rate := MonthlyGrowthRate(Input{Repo: repo}, scoreNow)
		// 1 star/day over 300 stars scaled to 30 days = 10%.
		assert.InDelta(t, 0.10, rate, 1e-9)
	})

	t.Run("zero for brand-new repo", func(t *testing.T) {
		assert.Zero(t, MonthlyGrowthRate(Input{Repo: repoAgedDays(0, 50, 0)}, scoreNow))
	})
}

func TestAssignTier(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		stars   int
		monthly float64
		want    int
	}{
		{"total 70 boundary is tier 1", 70, 10, 0, 1},
		{"total above 70 is tier 1", 88, 10, 0, 1},
		{"100 stars with 10 percent growth is tier 1", 40, 100, 0.10, 1},
		{"99 stars with high growth is not tier 1 on stars", 40, 99, 0.50, 2},
		{"total 50 boundary is tier 2", 50, 10, 0, 2},
		{"50 stars alone is tier 2", 20, 50, 0, 2},
		{"low score and few stars is tier 3", 30, 49, 0.05, 3},
		{"zero everything is tier 3", 0, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignTier(Score{Total: tt.total}, tt.stars, tt.monthly)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModelTierFor(t *testing.T) {
	assert.Equal(t, llm.ModelTierHigh, ModelTierFor(1, Score{}))
	assert.Equal(t, llm.ModelTierMedium, ModelTierFor(2, Score{}))
	assert.Equal(t, llm.ModelTierSmall, ModelTierFor(3, Score{}))

	t.Run("very high growth overrides tier", func(t *testing.T) {
		assert.Equal(t, llm.ModelTierHigh, ModelTierFor(3, Score{Growth: 92}))
	})
}

func TestTrendingScore(t *testing.T) {
	t.Run("young repo gets momentum multiplier", func(t *testing.T) {
		young := repoAgedDays(60, 300, 30)
		older := repoAgedDays(400, 2000, 200) // same 5 stars/day velocity

		assert.Greater(t, TrendingScore(young, scoreNow), TrendingScore(older, scoreNow))
	})

	t.Run("stays within bounds", func(t *testing.T) {
		huge := repoAgedDays(20, 500000, 90000)
		score := TrendingScore(huge, scoreNow)
		require.LessOrEqual(t, score, 100.0)
		require.GreaterOrEqual(t, score, 0.0)
	})

	t.Run("dormant repo scores low", func(t *testing.T) {
		dormant := repoAgedDays(1500, 80, 2)
		stale := scoreNow.AddDate(-1, 0, 0)
		dormant.PushedAt = &stale

		assert.Less(t, TrendingScore(dormant, scoreNow), 10.0)
	})
}
