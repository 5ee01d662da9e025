package scoring

import "github.com/reporadar/reporadar/pkg/llm"

// Tier thresholds; boundaries are inclusive to the higher tier.
const (
	tier1TotalThreshold = 70
	tier2TotalThreshold = 50
	tier1StarsThreshold = 100
	tier2StarsThreshold = 50
	tier1GrowthRate     = 0.10

	// veryHighGrowthScore promotes a repo to the deep model regardless of tier.
	veryHighGrowthScore = 90
)

// AssignTier classifies a repository into tier 1 (highest) through 3.
func AssignTier(score Score, stars int, monthlyGrowth float64) int {
	switch {
	case score.Total >= tier1TotalThreshold:
		return 1
	case stars >= tier1StarsThreshold && monthlyGrowth >= tier1GrowthRate:
		return 1
	case score.Total >= tier2TotalThreshold || stars >= tier2StarsThreshold:
		return 2
	default:
		return 3
	}
}

// ModelTierFor selects the LLM model tier for an analysis. Very-high-growth
// repositories get the deep model regardless of their tier.
func ModelTierFor(tier int, score Score) llm.ModelTier {
	if score.Growth >= veryHighGrowthScore {
		return llm.ModelTierHigh
	}
	switch tier {
	case 1:
		return llm.ModelTierHigh
	case 2:
		return llm.ModelTierMedium
	default:
		return llm.ModelTierSmall
	}
}
