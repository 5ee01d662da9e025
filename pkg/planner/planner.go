// Package planner turns tier assignments into concrete work: ordered scan
// lists per tier and the hourly analysis pool.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/store"
)

// ScanItem is one repository due for a metrics scan.
type ScanItem struct {
	RepoID   string `json:"repo_id"`
	FullName string `json:"full_name"`
	Tier     int    `json:"tier"`
	Deep     bool   `json:"deep"`
}

// ScanPlan groups the due scans per tier, each capped by the tier's hourly
// budget and ordered most-overdue first.
type ScanPlan struct {
	Items     []ScanItem `json:"items"`
	PerTier   map[int]int `json:"per_tier"`
	PlannedAt time.Time  `json:"planned_at"`
}

// Candidate is one repository selected for LLM analysis.
type Candidate struct {
	RepoID    string        `json:"repo_id"`
	FullName  string        `json:"full_name"`
	Tier      int           `json:"tier"`
	ModelTier llm.ModelTier `json:"model_tier"`
}

// Planner builds scan and analysis plans from stored tier state.
type Planner struct {
	tiers    *store.TierService
	analyses *store.AnalysisService
	policies *config.TierPolicies
	logger   *slog.Logger
}

// New creates a Planner.
func New(tiers *store.TierService, analyses *store.AnalysisService, policies *config.TierPolicies) *Planner {
	return &Planner{
		tiers:    tiers,
		analyses: analyses,
		policies: policies,
		logger:   slog.Default().With("component", "planner"),
	}
}

// PlanScans selects the repositories due for a scan in every tier, capped by
// each tier's hourly budget.
func (p *Planner) PlanScans(ctx context.Context, now time.Time) (*ScanPlan, error) {
	plan := &ScanPlan{
		PerTier:   make(map[int]int, 3),
		PlannedAt: now,
	}

	for tier := 1; tier <= 3; tier++ {
		policy := p.policies.ForTier(tier)
		due, err := p.tiers.ReposNeedingScan(ctx, tier, now, policy.HourlyBatchLimit)
		if err != nil {
			return nil, fmt.Errorf("plan tier %d: %w", tier, err)
		}

		for _, ta := range due {
			fullName := ""
			if repo := ta.Edges.Repository; repo != nil {
				fullName = repo.FullName
			}
			plan.Items = append(plan.Items, ScanItem{
				RepoID:   ta.RepoID,
				FullName: fullName,
				Tier:     tier,
				Deep:     policy.DeepScan,
			})
		}
		plan.PerTier[tier] = len(due)
	}

	p.logger.Debug("Scan plan built",
		"tier1", plan.PerTier[1],
		"tier2", plan.PerTier[2],
		"tier3", plan.PerTier[3])
	return plan, nil
}

// PlanAnalysisPool selects up to max repositories whose latest analysis has
// aged out of the tier's freshness window. Tier 1 fills first; inside a tier
// the top DeepModelTopN ranked repos get the deep model.
func (p *Planner) PlanAnalysisPool(ctx context.Context, now time.Time, max int) ([]Candidate, error) {
	if max <= 0 {
		return nil, nil
	}

	var pool []Candidate
	for tier := 1; tier <= 3 && len(pool) < max; tier++ {
		policy := p.policies.ForTier(tier)

		ranked, err := p.tiers.ReposByTier(ctx, tier, 0)
		if err != nil {
			return nil, fmt.Errorf("plan analysis tier %d: %w", tier, err)
		}

		taken := 0
		for rank, ta := range ranked {
			if len(pool) >= max || taken >= policy.HourlyBatchLimit {
				break
			}

			fresh, err := p.analyses.HasRecentAnalysis(ctx, ta.RepoID, policy.FreshnessWindow)
			if err != nil {
				return nil, fmt.Errorf("freshness check for %s: %w", ta.RepoID, err)
			}
			if fresh {
				continue
			}

			pool = append(pool, Candidate{
				RepoID:    ta.RepoID,
				FullName:  fullNameOf(ta),
				Tier:      tier,
				ModelTier: modelFor(tier, rank, policy),
			})
			taken++
		}
	}

	p.logger.Debug("Analysis pool built", "size", len(pool), "max", max)
	return pool, nil
}

// modelFor maps tier to model, upgrading the top-ranked repos of a tier to
// the deep model when the policy grants them.
func modelFor(tier, rank int, policy *config.TierPolicy) llm.ModelTier {
	if policy.DeepModelTopN > 0 && rank < policy.DeepModelTopN {
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

func fullNameOf(ta *ent.TierAssignment) string {
	if repo := ta.Edges.Repository; repo != nil {
		return repo.FullName
	}
	return ""
}
