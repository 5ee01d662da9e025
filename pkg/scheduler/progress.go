package scheduler

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/pkg/store"
)

// staleAfter is how long a batch may go without a progress write before it is
// reported stale. Checkpoints land at least once per repository, so a healthy
// batch updates far more often than this.
const staleAfter = 5 * time.Minute

// BatchProgress is the operator-facing view of one batch run.
type BatchProgress struct {
	ID                  string                 `json:"id"`
	Status              string                 `json:"status"`
	Total               int                    `json:"total"`
	Completed           int                    `json:"completed"`
	Failed              int                    `json:"failed"`
	Skipped             int                    `json:"skipped"`
	PercentDone         float64                `json:"percent_done"`
	CurrentRepo         string                 `json:"current_repo,omitempty"`
	EstimatedCompletion *time.Time             `json:"estimated_completion,omitempty"`
	CreditsEstimated    float64                `json:"credits_estimated"`
	CreditsUsed         float64                `json:"credits_used"`
	RecoveryAttempts    int                    `json:"recovery_attempts"`
	Stale               bool                   `json:"stale"`
	Health              map[string]interface{} `json:"health,omitempty"`
	StartedAt           time.Time              `json:"started_at"`
	EndedAt             *time.Time             `json:"ended_at,omitempty"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// CycleStatus is the operator-facing view of the scheduler itself.
type CycleStatus struct {
	NextTick       time.Time  `json:"next_tick"`
	LastCycleType  string     `json:"last_cycle_type,omitempty"`
	LastCycleAt    *time.Time `json:"last_cycle_at,omitempty"`
	LastCycleError string     `json:"last_cycle_error,omitempty"`
}

// Tracker reads scheduler and batch state for status endpoints.
type Tracker struct {
	batches *store.BatchService
	state   *store.SchedulerStateService

	now func() time.Time
}

// NewTracker creates a Tracker.
func NewTracker(batches *store.BatchService, state *store.SchedulerStateService) *Tracker {
	return &Tracker{
		batches: batches,
		state:   state,
		now:     time.Now,
	}
}

// Cycle returns the persisted scheduler state, or store.ErrNotFound before
// the first tick.
func (t *Tracker) Cycle(ctx context.Context) (*CycleStatus, error) {
	state, err := t.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &CycleStatus{
		NextTick:       state.NextTick,
		LastCycleType:  state.LastCycleType,
		LastCycleAt:    state.LastCycleAt,
		LastCycleError: state.LastCycleError,
	}, nil
}

// ActiveBatch returns the progress of the currently active batch, or
// store.ErrNotFound when none is active.
func (t *Tracker) ActiveBatch(ctx context.Context) (*BatchProgress, error) {
	run, err := t.batches.Active(ctx)
	if err != nil {
		return nil, err
	}
	return t.progressOf(run), nil
}

// Batch returns the progress of one batch by ID.
func (t *Tracker) Batch(ctx context.Context, batchID string) (*BatchProgress, error) {
	run, err := t.batches.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return t.progressOf(run), nil
}

// History returns recent batches, newest first.
func (t *Tracker) History(ctx context.Context, limit int) ([]*BatchProgress, error) {
	runs, err := t.batches.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(runs, func(run *ent.BatchRun, _ int) *BatchProgress {
		return t.progressOf(run)
	}), nil
}

// StaleBatches returns active batches with no progress write inside the
// staleness window, the signature of a crashed runner.
func (t *Tracker) StaleBatches(ctx context.Context) ([]*BatchProgress, error) {
	runs, err := t.batches.Stale(ctx, t.now().Add(-staleAfter))
	if err != nil {
		return nil, err
	}
	return lo.Map(runs, func(run *ent.BatchRun, _ int) *BatchProgress {
		return t.progressOf(run)
	}), nil
}

func (t *Tracker) progressOf(run *ent.BatchRun) *BatchProgress {
	p := &BatchProgress{
		ID:                  run.ID,
		Status:              string(run.Status),
		Total:               run.Total,
		Completed:           run.Completed,
		Failed:              run.Failed,
		Skipped:             run.Skipped,
		CurrentRepo:         run.CurrentRepo,
		EstimatedCompletion: run.EstimatedCompletion,
		CreditsEstimated:    run.CreditsEstimated,
		CreditsUsed:         run.CreditsActual,
		RecoveryAttempts:    run.RecoveryAttempts,
		Health:              run.Health,
		StartedAt:           run.StartedAt,
		EndedAt:             run.EndedAt,
		UpdatedAt:           run.UpdatedAt,
	}
	if run.Total > 0 {
		done := run.Completed + run.Failed + run.Skipped
		p.PercentDone = float64(done) / float64(run.Total) * 100
	}
	active := run.Status == batchrun.StatusPending || run.Status == batchrun.StatusRunning || run.Status == batchrun.StatusRecovering
	p.Stale = active && t.now().Sub(run.UpdatedAt) > staleAfter
	return p
}
