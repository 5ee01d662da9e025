package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/pkg/githost"
)

// SnapshotInput carries one point-in-time metrics observation.
type SnapshotInput struct {
	Stars        int
	Forks        int
	OpenIssues   int
	Watchers     int
	Contributors *int
	CommitsCount *int
	RecordedAt   time.Time
}

// MetricsService manages the append-only metric history and the contributor
// rows refreshed by deep scans.
type MetricsService struct {
	client *ent.Client
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(client *ent.Client) *MetricsService {
	return &MetricsService{client: client}
}

// RecordSnapshot appends one snapshot for the repository. A second snapshot
// with the same recorded_at is rejected with ErrAlreadyExists.
func (s *MetricsService) RecordSnapshot(ctx context.Context, repoID string, in SnapshotInput) (*ent.MetricSnapshot, error) {
	if repoID == "" {
		return nil, NewValidationError("repo_id", "required")
	}
	recordedAt := in.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	create := s.client.MetricSnapshot.Create().
		SetID(uuid.New().String()).
		SetRepoID(repoID).
		SetStars(in.Stars).
		SetForks(in.Forks).
		SetOpenIssues(in.OpenIssues).
		SetWatchers(in.Watchers).
		SetRecordedAt(recordedAt)
	if in.Contributors != nil {
		create.SetContributors(*in.Contributors)
	}
	if in.CommitsCount != nil {
		create.SetCommitsCount(*in.CommitsCount)
	}

	snapshot, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}
	return snapshot, nil
}

// LatestSnapshot returns the most recent snapshot for the repository.
func (s *MetricsService) LatestSnapshot(ctx context.Context, repoID string) (*ent.MetricSnapshot, error) {
	snapshot, err := s.client.MetricSnapshot.Query().
		Where(metricsnapshot.RepoIDEQ(repoID)).
		Order(ent.Desc(metricsnapshot.FieldRecordedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snapshot, nil
}

// PreviousSnapshot returns the newest snapshot recorded strictly before the
// given time, for growth-rate computation.
func (s *MetricsService) PreviousSnapshot(ctx context.Context, repoID string, before time.Time) (*ent.MetricSnapshot, error) {
	snapshot, err := s.client.MetricSnapshot.Query().
		Where(
			metricsnapshot.RepoIDEQ(repoID),
			metricsnapshot.RecordedAtLT(before),
		).
		Order(ent.Desc(metricsnapshot.FieldRecordedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get previous snapshot: %w", err)
	}
	return snapshot, nil
}

// History returns snapshots recorded since the given time, oldest first.
func (s *MetricsService) History(ctx context.Context, repoID string, since time.Time) ([]*ent.MetricSnapshot, error) {
	snapshots, err := s.client.MetricSnapshot.Query().
		Where(
			metricsnapshot.RepoIDEQ(repoID),
			metricsnapshot.RecordedAtGTE(since),
		).
		Order(ent.Asc(metricsnapshot.FieldRecordedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot history: %w", err)
	}
	return snapshots, nil
}

// SaveContributors replaces the contributor set for the repository with the
// one observed by the latest deep scan.
func (s *MetricsService) SaveContributors(ctx context.Context, repoID string, contributors []githost.Contributor) error {
	if repoID == "" {
		return NewValidationError("repo_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Contributor.Delete().
		Where(contributor.RepoIDEQ(repoID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear contributors: %w", err)
	}

	builders := make([]*ent.ContributorCreate, 0, len(contributors))
	for _, c := range contributors {
		builders = append(builders, tx.Contributor.Create().
			SetID(uuid.New().String()).
			SetRepoID(repoID).
			SetLogin(c.Login).
			SetContributions(c.Contributions))
	}
	if len(builders) > 0 {
		if _, err := tx.Contributor.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("failed to save contributors: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Contributors returns the stored contributor rows, highest contribution first.
func (s *MetricsService) Contributors(ctx context.Context, repoID string) ([]*ent.Contributor, error) {
	rows, err := s.client.Contributor.Query().
		Where(contributor.RepoIDEQ(repoID)).
		Order(ent.Desc(contributor.FieldContributions)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributors: %w", err)
	}
	return rows, nil
}
