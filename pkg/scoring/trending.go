package scoring

import (
	"time"

	"github.com/reporadar/reporadar/pkg/githost"
)

// Hybrid trending weights, applied when historical metrics are missing.
const (
	trendStarVelocityWeight   = 0.35
	trendRecentActivityWeight = 0.25
	trendMomentumWeight       = 0.20
	trendPopularityWeight     = 0.10
	trendForkActivityWeight   = 0.10
)

// TrendingScore estimates how "hot" a repository is from host-level signals
// alone. Each component is normalized to [0,100]; young repositories get a
// momentum multiplier (×1.5 under 90 days, ×1.2 under 180).
func TrendingScore(repo githost.Repository, now time.Time) float64 {
	velocity := normalizeVelocity(StarVelocity(repo, now))

	recentActivity := pushRecencyScore(repo.PushedAt, now) * 2.5 // rescale 0-40 → 0-100

	ageDays := now.Sub(repo.CreatedAt).Hours() / 24
	momentum := velocity
	switch {
	case ageDays < 90:
		momentum *= 1.5
	case ageDays < 180:
		momentum *= 1.2
	}
	momentum = clamp(momentum)

	// log-ish popularity: 10k stars saturates.
	popularity := clamp(float64(repo.Stars) / 100)

	forkActivity := 0.0
	if repo.Stars > 0 {
		forkActivity = clamp(float64(repo.Forks) / float64(repo.Stars) * 500)
	}

	return clamp(trendStarVelocityWeight*velocity +
		trendRecentActivityWeight*clamp(recentActivity) +
		trendMomentumWeight*momentum +
		trendPopularityWeight*popularity +
		trendForkActivityWeight*forkActivity)
}
