package store

import (
	"context"
	"fmt"
	"time"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/batchrun"
)

// activeStatuses are the batch states that occupy the single-runner slot.
var activeStatuses = []batchrun.Status{
	batchrun.StatusPending,
	batchrun.StatusRunning,
	batchrun.StatusRecovering,
}

// BatchService persists durable batch state. The orchestrator checkpoints
// through this service so a restarted process can resume mid-batch.
type BatchService struct {
	client *ent.Client
}

// NewBatchService creates a new BatchService
func NewBatchService(client *ent.Client) *BatchService {
	return &BatchService{client: client}
}

// Create records a new pending batch.
func (s *BatchService) Create(ctx context.Context, batchID string, repos []string, creditsEstimated, creditsLimit float64) (*ent.BatchRun, error) {
	if batchID == "" {
		return nil, NewValidationError("batch_id", "required")
	}

	created, err := s.client.BatchRun.Create().
		SetID(batchID).
		SetStatus(batchrun.StatusPending).
		SetTotal(len(repos)).
		SetRepositories(repos).
		SetCreditsEstimated(creditsEstimated).
		SetCreditsLimit(creditsLimit).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return created, nil
}

// Get returns one batch by ID.
func (s *BatchService) Get(ctx context.Context, batchID string) (*ent.BatchRun, error) {
	b, err := s.client.BatchRun.Query().
		Where(batchrun.IDEQ(batchID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return b, nil
}

// List returns batches newest-first.
func (s *BatchService) List(ctx context.Context, limit int) ([]*ent.BatchRun, error) {
	q := s.client.BatchRun.Query().
		Order(ent.Desc(batchrun.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	batches, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	return batches, nil
}

// Active returns the batch currently occupying the runner slot, or ErrNotFound.
func (s *BatchService) Active(ctx context.Context) (*ent.BatchRun, error) {
	b, err := s.client.BatchRun.Query().
		Where(batchrun.StatusIn(activeStatuses...)).
		Order(ent.Desc(batchrun.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active batch: %w", err)
	}
	return b, nil
}

// SetStatus moves the batch to a new status; terminal states also record the
// end time. Illegal transitions are rejected with ErrInvalidTransition;
// setting the current status again is a no-op.
func (s *BatchService) SetStatus(ctx context.Context, batchID string, status batchrun.Status) (*ent.BatchRun, error) {
	existing, err := s.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if existing.Status == status {
		return existing, nil
	}
	if !CanTransition(existing.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, existing.Status, status)
	}

	upd := s.client.BatchRun.UpdateOneID(batchID).
		SetStatus(status)
	switch status {
	case batchrun.StatusCompleted, batchrun.StatusStopped, batchrun.StatusFailed:
		upd.SetEndedAt(time.Now())
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set batch status: %w", err)
	}
	return updated, nil
}

// ProgressUpdate carries one progress checkpoint for a running batch.
type ProgressUpdate struct {
	Completed           int
	Failed              int
	Skipped             int
	CurrentRepo         string
	EstimatedCompletion *time.Time
	Result              map[string]interface{}
	CreditsActual       float64
	Checkpoint          map[string]interface{}
}

// RecordProgress persists counters, the current repo, an optional per-repo
// result, and the resume checkpoint in one write.
func (s *BatchService) RecordProgress(ctx context.Context, batchID string, p ProgressUpdate) (*ent.BatchRun, error) {
	existing, err := s.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}

	upd := existing.Update().
		SetCompleted(p.Completed).
		SetFailed(p.Failed).
		SetSkipped(p.Skipped).
		SetCurrentRepo(p.CurrentRepo).
		SetCreditsActual(p.CreditsActual)
	if p.EstimatedCompletion != nil {
		upd.SetEstimatedCompletion(*p.EstimatedCompletion)
	}
	if p.Result != nil {
		upd.SetResults(append(existing.Results, p.Result))
	}
	if p.Checkpoint != nil {
		upd.SetCheckpoint(p.Checkpoint)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record batch progress: %w", err)
	}
	return updated, nil
}

// SaveHealth persists the latest health report.
func (s *BatchService) SaveHealth(ctx context.Context, batchID string, health map[string]interface{}) error {
	err := s.client.BatchRun.UpdateOneID(batchID).
		SetHealth(health).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save batch health: %w", err)
	}
	return nil
}

// IncrementRecovery bumps the recovery counter and returns the new value.
func (s *BatchService) IncrementRecovery(ctx context.Context, batchID string) (int, error) {
	updated, err := s.client.BatchRun.UpdateOneID(batchID).
		AddRecoveryAttempts(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment recovery attempts: %w", err)
	}
	return updated.RecoveryAttempts, nil
}

// Stale returns active batches with no progress update since the cutoff.
// A batch that stops checkpointing has lost its runner.
func (s *BatchService) Stale(ctx context.Context, cutoff time.Time) ([]*ent.BatchRun, error) {
	batches, err := s.client.BatchRun.Query().
		Where(
			batchrun.StatusIn(activeStatuses...),
			batchrun.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale batches: %w", err)
	}
	return batches, nil
}

// ClearFinished deletes completed, stopped, and failed batches, returning the
// number removed. Active batches are never cleared.
func (s *BatchService) ClearFinished(ctx context.Context) (int, error) {
	n, err := s.client.BatchRun.Delete().
		Where(batchrun.StatusIn(
			batchrun.StatusCompleted,
			batchrun.StatusStopped,
			batchrun.StatusFailed,
		)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear finished batches: %w", err)
	}
	return n, nil
}
