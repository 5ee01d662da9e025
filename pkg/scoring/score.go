// Package scoring computes numeric repository scores, tier assignments, and
// LLM model selection.
package scoring

import (
	"math"
	"time"

	"github.com/reporadar/reporadar/pkg/githost"
)

// Score weights: total = 0.4·growth + 0.3·engagement + 0.3·quality.
const (
	growthWeight     = 0.4
	engagementWeight = 0.3
	qualityWeight    = 0.3
)

// Score is the composite rating for one repository. All components are in
// [0,100]; Factors records the individual signals that fed them.
type Score struct {
	Total      float64            `json:"total"`
	Growth     float64            `json:"growth"`
	Engagement float64            `json:"engagement"`
	Quality    float64            `json:"quality"`
	Factors    map[string]float64 `json:"factors"`
}

// Input carries the repository plus optional enhanced metrics. Zero values
// for the enhanced fields mean "not collected", not "zero observed".
type Input struct {
	Repo      githost.Repository
	HasReadme bool

	// Enhanced metrics from a deep scan; optional.
	Contributors  int
	WeeklyCommits int

	// Previous snapshot for growth-rate computation; optional.
	PrevStars      int
	PrevRecordedAt time.Time
}

// aiTopics earn the AI-topic quality boost.
var aiTopics = map[string]bool{
	"ai": true, "llm": true, "machine-learning": true, "deep-learning": true,
	"agents": true, "rag": true, "nlp": true, "generative-ai": true,
	"artificial-intelligence": true, "ml": true, "llm-agent": true,
}

// Compute produces the composite score for the input as of now.
func Compute(in Input, now time.Time) Score {
	factors := make(map[string]float64)

	velocity := StarVelocity(in.Repo, now)
	factors["star_velocity"] = velocity

	monthlyGrowth := MonthlyGrowthRate(in, now)
	factors["monthly_growth"] = monthlyGrowth

	growth := clamp(normalizeVelocity(velocity)*0.6 + clamp(monthlyGrowth*200)*0.4)

	engagement := engagementScore(in, factors)
	quality := qualityScore(in, now, factors)

	return Score{
		Total:      clamp(growthWeight*growth + engagementWeight*engagement + qualityWeight*quality),
		Growth:     growth,
		Engagement: engagement,
		Quality:    quality,
		Factors:    factors,
	}
}

// StarVelocity is stars gained per day averaged over the repository's life.
func StarVelocity(repo githost.Repository, now time.Time) float64 {
	ageDays := now.Sub(repo.CreatedAt).Hours() / 24
	if ageDays < 1 {
		ageDays = 1
	}
	return float64(repo.Stars) / ageDays
}

// MonthlyGrowthRate is the fractional star growth per 30 days. It prefers the
// previous snapshot when available and falls back to lifetime averaging.
func MonthlyGrowthRate(in Input, now time.Time) float64 {
	if in.PrevStars > 0 && !in.PrevRecordedAt.IsZero() {
		elapsedDays := now.Sub(in.PrevRecordedAt).Hours() / 24
		if elapsedDays >= 1 {
			rate := float64(in.Repo.Stars-in.PrevStars) / float64(in.PrevStars)
			return rate / elapsedDays * 30
		}
	}

	ageDays := now.Sub(in.Repo.CreatedAt).Hours() / 24
	if ageDays < 1 || in.Repo.Stars == 0 {
		return 0
	}
	// Lifetime average: stars/age scaled to a 30-day window against current size.
	return StarVelocity(in.Repo, now) * 30 / float64(in.Repo.Stars)
}

func engagementScore(in Input, factors map[string]float64) float64 {
	repo := in.Repo

	forkRatio := 0.0
	if repo.Stars > 0 {
		forkRatio = float64(repo.Forks) / float64(repo.Stars)
	}
	factors["fork_to_star_ratio"] = forkRatio

	forkComponent := clamp(forkRatio * 500)
	contributorComponent := clamp(float64(in.Contributors) * 4)
	commitComponent := clamp(float64(in.WeeklyCommits) * 5)
	issueComponent := clamp(math.Log1p(float64(repo.OpenIssues)) * 12)

	if in.Contributors == 0 && in.WeeklyCommits == 0 {
		// Basic scan: only host-level signals are available.
		return clamp(forkComponent*0.6 + issueComponent*0.4)
	}
	return clamp(forkComponent*0.3 + contributorComponent*0.3 + commitComponent*0.2 + issueComponent*0.2)
}

func qualityScore(in Input, now time.Time, factors map[string]float64) float64 {
	score := 0.0

	if in.HasReadme {
		score += 30
		factors["readme_present"] = 1
	}

	if hasAITopic(in.Repo.Topics) {
		score += 30
		factors["ai_topic_boost"] = 1
	}

	pushScore := pushRecencyScore(in.Repo.PushedAt, now)
	factors["push_recency"] = pushScore
	score += pushScore

	return clamp(score)
}

// pushRecencyScore rewards recently-pushed repositories, up to 40 points.
func pushRecencyScore(pushedAt *time.Time, now time.Time) float64 {
	if pushedAt == nil {
		return 0
	}
	days := now.Sub(*pushedAt).Hours() / 24
	switch {
	case days <= 7:
		return 40
	case days <= 30:
		return 25
	case days <= 90:
		return 10
	default:
		return 0
	}
}

func hasAITopic(topics []string) bool {
	for _, t := range topics {
		if aiTopics[t] {
			return true
		}
	}
	return false
}

// normalizeVelocity maps stars/day onto [0,100]; 10 stars/day saturates.
func normalizeVelocity(v float64) float64 {
	return clamp(v * 10)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
