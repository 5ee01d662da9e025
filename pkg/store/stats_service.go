package store

import (
	"context"
	"fmt"
	"time"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// DailyStats summarizes one day of pipeline activity.
type DailyStats struct {
	Day              time.Time `json:"day"`
	ReposDiscovered  int       `json:"repos_discovered"`
	AnalysesCreated  int       `json:"analyses_created"`
	AlertsSent       int       `json:"alerts_sent"`
	CreditsSpent     float64   `json:"credits_spent"`
	TrackedRepoCount int       `json:"tracked_repo_count"`
}

// StatsService answers aggregate reporting queries.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// HighGrowthRepos returns tier assignments with growth velocity at or above
// the threshold, fastest first, with their repositories loaded.
func (s *StatsService) HighGrowthRepos(ctx context.Context, minVelocity float64, limit int) ([]*ent.TierAssignment, error) {
	q := s.client.TierAssignment.Query().
		Where(tierassignment.GrowthVelocityGTE(minVelocity)).
		Order(ent.Desc(tierassignment.FieldGrowthVelocity)).
		WithRepository()
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query high-growth repos: %w", err)
	}
	return rows, nil
}

// Daily returns aggregate counts for the calendar day containing t (UTC).
func (s *StatsService) Daily(ctx context.Context, t time.Time) (*DailyStats, error) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	discovered, err := s.client.Repository.Query().
		Where(
			repository.DiscoveredAtGTE(dayStart),
			repository.DiscoveredAtLT(dayEnd),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count discovered repos: %w", err)
	}

	analyses, err := s.client.Analysis.Query().
		Where(
			analysis.CreatedAtGTE(dayStart),
			analysis.CreatedAtLT(dayEnd),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}

	alerts, err := s.client.Alert.Query().
		Where(
			alert.SentAtGTE(dayStart),
			alert.SentAtLT(dayEnd),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count alerts: %w", err)
	}

	var costRows []struct {
		Sum float64 `json:"sum"`
	}
	err = s.client.Analysis.Query().
		Where(
			analysis.CreatedAtGTE(dayStart),
			analysis.CreatedAtLT(dayEnd),
		).
		Aggregate(ent.Sum(analysis.FieldCost)).
		Scan(ctx, &costRows)
	if err != nil {
		return nil, fmt.Errorf("failed to sum credits: %w", err)
	}
	credits := 0.0
	if len(costRows) > 0 {
		credits = costRows[0].Sum
	}

	tracked, err := s.client.Repository.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count repositories: %w", err)
	}

	return &DailyStats{
		Day:              dayStart,
		ReposDiscovered:  discovered,
		AnalysesCreated:  analyses,
		AlertsSent:       alerts,
		CreditsSpent:     credits,
		TrackedRepoCount: tracked,
	}, nil
}
