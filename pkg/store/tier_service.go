package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/tierassignment"
	"github.com/reporadar/reporadar/pkg/config"
)

// TierInput carries a recomputed classification for one repository.
type TierInput struct {
	RepoID          string
	Tier            int
	Stars           int
	GrowthVelocity  float64
	EngagementScore float64

	// AllowDemotion permits moving a repository to a lower-priority tier.
	// Scans that recompute the full score pass true; incremental discovery
	// upserts leave it false so a partial signal cannot demote.
	AllowDemotion bool
}

// TierService manages the one-row-per-repository tier assignments that drive
// scan planning.
type TierService struct {
	client   *ent.Client
	policies *config.TierPolicies
}

// NewTierService creates a new TierService
func NewTierService(client *ent.Client, policies *config.TierPolicies) *TierService {
	return &TierService{client: client, policies: policies}
}

// scanPriority is the planner's ordering hint: growth dominates, engagement
// and audience size break ties.
func scanPriority(growthVelocity, engagementScore float64, stars int) float64 {
	return growthVelocity*50 + engagementScore*0.3 + math.Log10(float64(stars)+1)*10
}

// UpsertTier creates or refreshes the assignment. Without AllowDemotion an
// existing higher-priority tier is kept; scan bookkeeping updates either way.
func (s *TierService) UpsertTier(ctx context.Context, in TierInput) (*ent.TierAssignment, error) {
	if in.RepoID == "" {
		return nil, NewValidationError("repo_id", "required")
	}
	if in.Tier < 1 || in.Tier > 3 {
		return nil, NewValidationError("tier", fmt.Sprintf("must be 1..3, got %d", in.Tier))
	}

	priority := scanPriority(in.GrowthVelocity, in.EngagementScore, in.Stars)

	existing, err := s.client.TierAssignment.Query().
		Where(tierassignment.RepoIDEQ(in.RepoID)).
		Only(ctx)

	switch {
	case err == nil:
		tier := in.Tier
		if !in.AllowDemotion && existing.Tier < tier {
			tier = existing.Tier
		}
		updated, err := existing.Update().
			SetTier(tier).
			SetStars(in.Stars).
			SetGrowthVelocity(in.GrowthVelocity).
			SetEngagementScore(in.EngagementScore).
			SetScanPriority(priority).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update tier assignment: %w", err)
		}
		return updated, nil

	case ent.IsNotFound(err):
		policy := s.policies.ForTier(in.Tier)
		created, err := s.client.TierAssignment.Create().
			SetID(uuid.New().String()).
			SetRepoID(in.RepoID).
			SetTier(in.Tier).
			SetStars(in.Stars).
			SetGrowthVelocity(in.GrowthVelocity).
			SetEngagementScore(in.EngagementScore).
			SetScanPriority(priority).
			SetNextScanDue(time.Now().Add(policy.ScanInterval)).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("%w: unknown repository %s", ErrInvalidInput, in.RepoID)
			}
			return nil, fmt.Errorf("failed to create tier assignment: %w", err)
		}
		return created, nil

	default:
		return nil, fmt.Errorf("failed to query tier assignment: %w", err)
	}
}

// GetTier returns the assignment for one repository.
func (s *TierService) GetTier(ctx context.Context, repoID string) (*ent.TierAssignment, error) {
	ta, err := s.client.TierAssignment.Query().
		Where(tierassignment.RepoIDEQ(repoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tier assignment: %w", err)
	}
	return ta, nil
}

// ReposByTier returns assignments in one tier ordered by scan priority.
func (s *TierService) ReposByTier(ctx context.Context, tier, limit int) ([]*ent.TierAssignment, error) {
	q := s.client.TierAssignment.Query().
		Where(tierassignment.TierEQ(tier)).
		Order(ent.Desc(tierassignment.FieldScanPriority)).
		WithRepository()
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tier %d: %w", tier, err)
	}
	return rows, nil
}

// ReposNeedingScan returns assignments in the tier whose next_scan_due has
// passed: most overdue first, then larger audiences, then the most recently
// pushed.
func (s *TierService) ReposNeedingScan(ctx context.Context, tier int, now time.Time, limit int) ([]*ent.TierAssignment, error) {
	q := s.client.TierAssignment.Query().
		Where(
			tierassignment.TierEQ(tier),
			tierassignment.NextScanDueLTE(now),
		).
		Order(
			ent.Asc(tierassignment.FieldNextScanDue),
			ent.Desc(tierassignment.FieldStars),
		).
		WithRepository()
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due repos for tier %d: %w", tier, err)
	}

	// Push recency lives on the repository row, so the final tie-break
	// happens here rather than in SQL.
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.NextScanDue.Equal(b.NextScanDue) {
			return a.NextScanDue.Before(b.NextScanDue)
		}
		if a.Stars != b.Stars {
			return a.Stars > b.Stars
		}
		ra, rb := a.Edges.Repository, b.Edges.Repository
		if ra == nil || rb == nil || ra.PushedAt == nil || rb.PushedAt == nil {
			return false
		}
		return ra.PushedAt.After(*rb.PushedAt)
	})
	return rows, nil
}

// MarkScanned records a completed scan and schedules the next one per the
// tier's cadence. Safe to call repeatedly.
func (s *TierService) MarkScanned(ctx context.Context, repoID string, deep bool, now time.Time) (*ent.TierAssignment, error) {
	existing, err := s.GetTier(ctx, repoID)
	if err != nil {
		return nil, err
	}

	policy := s.policies.ForTier(existing.Tier)
	upd := existing.Update().
		SetNextScanDue(now.Add(policy.ScanInterval))
	if deep {
		upd.SetLastDeepScan(now)
	} else {
		upd.SetLastBasicScan(now)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark scanned: %w", err)
	}
	return updated, nil
}

// TierCounts returns the number of repositories per tier.
func (s *TierService) TierCounts(ctx context.Context) (map[int]int, error) {
	var rows []struct {
		Tier  int `json:"tier"`
		Count int `json:"count"`
	}
	err := s.client.TierAssignment.Query().
		GroupBy(tierassignment.FieldTier).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count tiers: %w", err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Tier] = row.Count
	}
	return counts, nil
}
