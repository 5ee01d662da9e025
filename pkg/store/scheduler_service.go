package store

import (
	"context"
	"fmt"
	"time"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/schedulerstate"
)

// schedulerSingletonID keys the single scheduler state row.
const schedulerSingletonID = "scheduler"

// SchedulerStateService persists the scheduler's tick state so correctness
// survives process restarts.
type SchedulerStateService struct {
	client *ent.Client
}

// NewSchedulerStateService creates a new SchedulerStateService
func NewSchedulerStateService(client *ent.Client) *SchedulerStateService {
	return &SchedulerStateService{client: client}
}

// Load returns the persisted scheduler state, or ErrNotFound before the first
// save.
func (s *SchedulerStateService) Load(ctx context.Context) (*ent.SchedulerState, error) {
	state, err := s.client.SchedulerState.Query().
		Where(schedulerstate.IDEQ(schedulerSingletonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load scheduler state: %w", err)
	}
	return state, nil
}

// ensure returns the singleton row, creating it on first use.
func (s *SchedulerStateService) ensure(ctx context.Context, nextTick time.Time) (*ent.SchedulerState, error) {
	state, err := s.Load(ctx)
	if err == nil {
		return state, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	created, err := s.client.SchedulerState.Create().
		SetID(schedulerSingletonID).
		SetNextTick(nextTick).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race; the row exists now.
			return s.Load(ctx)
		}
		return nil, fmt.Errorf("failed to create scheduler state: %w", err)
	}
	return created, nil
}

// SaveTick persists the next scheduled tick.
func (s *SchedulerStateService) SaveTick(ctx context.Context, nextTick time.Time) error {
	state, err := s.ensure(ctx, nextTick)
	if err != nil {
		return err
	}

	err = state.Update().
		SetNextTick(nextTick).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save scheduler tick: %w", err)
	}
	return nil
}

// RecordCycle persists the outcome of a completed cycle.
func (s *SchedulerStateService) RecordCycle(ctx context.Context, cycleType string, at time.Time, cycleErr error) error {
	state, err := s.ensure(ctx, at)
	if err != nil {
		return err
	}

	errText := ""
	if cycleErr != nil {
		errText = cycleErr.Error()
	}

	err = state.Update().
		SetLastCycleType(cycleType).
		SetLastCycleAt(at).
		SetLastCycleError(errText).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record cycle: %w", err)
	}
	return nil
}
