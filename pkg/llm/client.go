// Package llm provides the LLM adapter: an Analyzer interface and an HTTP
// implementation that turns a repository plus README into a structured
// investment analysis.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reporadar/reporadar/pkg/githost"
)

// ModelTier selects how large (and expensive) a model handles the analysis.
type ModelTier string

// Model tiers, ordered by capability and cost.
const (
	ModelTierHigh   ModelTier = "high"
	ModelTierMedium ModelTier = "medium"
	ModelTierSmall  ModelTier = "small"
)

// Valid reports whether the tier is one of the known values.
func (m ModelTier) Valid() bool {
	switch m {
	case ModelTierHigh, ModelTierMedium, ModelTierSmall:
		return true
	}
	return false
}

// Recommendation is the analyst verdict for a repository.
type Recommendation string

// Recommendation values. Anything else in a response is rejected, not coerced.
const (
	RecommendationStrongBuy Recommendation = "strong_buy"
	RecommendationBuy       Recommendation = "buy"
	RecommendationHold      Recommendation = "hold"
	RecommendationPass      Recommendation = "pass"
)

// Valid reports whether the recommendation is one of the known values.
func (r Recommendation) Valid() bool {
	switch r {
	case RecommendationStrongBuy, RecommendationBuy, RecommendationHold, RecommendationPass:
		return true
	}
	return false
}

// Analysis is the structured scoring artifact produced by one LLM call.
// Optional enhanced metrics stay nil when the model omits them, never
// silently zeroed.
type Analysis struct {
	Investment        int            `json:"investment_score"`
	Innovation        int            `json:"innovation_score"`
	Team              int            `json:"team_score"`
	Market            int            `json:"market_score"`
	Growth            int            `json:"growth_score"`
	TechnicalMoat     *int           `json:"technical_moat,omitempty"`
	Scalability       *int           `json:"scalability,omitempty"`
	DeveloperAdoption *int           `json:"developer_adoption,omitempty"`
	Recommendation    Recommendation `json:"recommendation"`
	Summary           string         `json:"summary"`
	Strengths         []string       `json:"strengths"`
	Risks             []string       `json:"risks"`
	Questions         []string       `json:"questions"`
	ModelUsed         string         `json:"model_used"`
	Cost              float64        `json:"cost"`
	CreatedAt         time.Time      `json:"created_at"`
}

// Analyzer is the vendor-replaceable LLM adapter contract.
type Analyzer interface {
	// Analyze produces a structured analysis for the repository. The call
	// respects ctx for cancellation and the adapter's own request timeout.
	Analyze(ctx context.Context, repo githost.Repository, readme string, tier ModelTier) (*Analysis, error)
}

// Error taxonomy for LLM calls.
var (
	// ErrRateLimited indicates the provider rejected the call for rate limiting.
	ErrRateLimited = errors.New("llm rate limited")

	// ErrTimeout indicates the analysis exceeded its deadline.
	ErrTimeout = errors.New("llm timeout")

	// ErrInvalidResponse indicates the provider returned a payload that fails
	// strict validation.
	ErrInvalidResponse = errors.New("llm invalid response")

	// ErrUnavailable indicates the provider returned a server error.
	ErrUnavailable = errors.New("llm unavailable")
)

// IsTransient reports whether the call may succeed on retry.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnavailable)
}

// validate enforces the response contract: scores in [0,100], a known
// recommendation, and a model name.
func (a *Analysis) validate() error {
	for name, score := range map[string]int{
		"investment_score": a.Investment,
		"innovation_score": a.Innovation,
		"team_score":       a.Team,
		"market_score":     a.Market,
		"growth_score":     a.Growth,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: %s %d out of range [0,100]", ErrInvalidResponse, name, score)
		}
	}
	for name, score := range map[string]*int{
		"technical_moat":     a.TechnicalMoat,
		"scalability":        a.Scalability,
		"developer_adoption": a.DeveloperAdoption,
	} {
		if score != nil && (*score < 0 || *score > 100) {
			return fmt.Errorf("%w: %s %d out of range [0,100]", ErrInvalidResponse, name, *score)
		}
	}
	if !a.Recommendation.Valid() {
		return fmt.Errorf("%w: unknown recommendation %q", ErrInvalidResponse, a.Recommendation)
	}
	return nil
}
