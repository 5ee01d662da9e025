// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/batchrun"
)

// BatchRunCreate is the builder for creating a BatchRun entity.
type BatchRunCreate struct {
	config
	mutation *BatchRunMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *BatchRunCreate) SetStatus(v batchrun.Status) *BatchRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableStatus(v *batchrun.Status) *BatchRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *BatchRunCreate) SetTotal(v int) *BatchRunCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableTotal(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *BatchRunCreate) SetCompleted(v int) *BatchRunCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableCompleted(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *BatchRunCreate) SetFailed(v int) *BatchRunCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableFailed(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *BatchRunCreate) SetSkipped(v int) *BatchRunCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableSkipped(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BatchRunCreate) SetStartedAt(v time.Time) *BatchRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableStartedAt(v *time.Time) *BatchRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *BatchRunCreate) SetEndedAt(v time.Time) *BatchRunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableEndedAt(v *time.Time) *BatchRunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetCurrentRepo sets the "current_repo" field.
func (_c *BatchRunCreate) SetCurrentRepo(v string) *BatchRunCreate {
	_c.mutation.SetCurrentRepo(v)
	return _c
}

// SetNillableCurrentRepo sets the "current_repo" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableCurrentRepo(v *string) *BatchRunCreate {
	if v != nil {
		_c.SetCurrentRepo(*v)
	}
	return _c
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (_c *BatchRunCreate) SetEstimatedCompletion(v time.Time) *BatchRunCreate {
	_c.mutation.SetEstimatedCompletion(v)
	return _c
}

// SetNillableEstimatedCompletion sets the "estimated_completion" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableEstimatedCompletion(v *time.Time) *BatchRunCreate {
	if v != nil {
		_c.SetEstimatedCompletion(*v)
	}
	return _c
}

// SetRepositories sets the "repositories" field.
func (_c *BatchRunCreate) SetRepositories(v []string) *BatchRunCreate {
	_c.mutation.SetRepositories(v)
	return _c
}

// SetResults sets the "results" field.
func (_c *BatchRunCreate) SetResults(v []map[string]interface{}) *BatchRunCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetHealth sets the "health" field.
func (_c *BatchRunCreate) SetHealth(v map[string]interface{}) *BatchRunCreate {
	_c.mutation.SetHealth(v)
	return _c
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_c *BatchRunCreate) SetRecoveryAttempts(v int) *BatchRunCreate {
	_c.mutation.SetRecoveryAttempts(v)
	return _c
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableRecoveryAttempts(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetRecoveryAttempts(*v)
	}
	return _c
}

// SetCreditsEstimated sets the "credits_estimated" field.
func (_c *BatchRunCreate) SetCreditsEstimated(v float64) *BatchRunCreate {
	_c.mutation.SetCreditsEstimated(v)
	return _c
}

// SetNillableCreditsEstimated sets the "credits_estimated" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableCreditsEstimated(v *float64) *BatchRunCreate {
	if v != nil {
		_c.SetCreditsEstimated(*v)
	}
	return _c
}

// SetCreditsActual sets the "credits_actual" field.
func (_c *BatchRunCreate) SetCreditsActual(v float64) *BatchRunCreate {
	_c.mutation.SetCreditsActual(v)
	return _c
}

// SetNillableCreditsActual sets the "credits_actual" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableCreditsActual(v *float64) *BatchRunCreate {
	if v != nil {
		_c.SetCreditsActual(*v)
	}
	return _c
}

// SetCreditsLimit sets the "credits_limit" field.
func (_c *BatchRunCreate) SetCreditsLimit(v float64) *BatchRunCreate {
	_c.mutation.SetCreditsLimit(v)
	return _c
}

// SetNillableCreditsLimit sets the "credits_limit" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableCreditsLimit(v *float64) *BatchRunCreate {
	if v != nil {
		_c.SetCreditsLimit(*v)
	}
	return _c
}

// SetCheckpoint sets the "checkpoint" field.
func (_c *BatchRunCreate) SetCheckpoint(v map[string]interface{}) *BatchRunCreate {
	_c.mutation.SetCheckpoint(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BatchRunCreate) SetUpdatedAt(v time.Time) *BatchRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableUpdatedAt(v *time.Time) *BatchRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchRunCreate) SetID(v string) *BatchRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BatchRunMutation object of the builder.
func (_c *BatchRunCreate) Mutation() *BatchRunMutation {
	return _c.mutation
}

// Save creates the BatchRun in the database.
func (_c *BatchRunCreate) Save(ctx context.Context) (*BatchRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchRunCreate) SaveX(ctx context.Context) *BatchRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batchrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := batchrun.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := batchrun.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := batchrun.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := batchrun.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := batchrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.RecoveryAttempts(); !ok {
		v := batchrun.DefaultRecoveryAttempts
		_c.mutation.SetRecoveryAttempts(v)
	}
	if _, ok := _c.mutation.CreditsEstimated(); !ok {
		v := batchrun.DefaultCreditsEstimated
		_c.mutation.SetCreditsEstimated(v)
	}
	if _, ok := _c.mutation.CreditsActual(); !ok {
		v := batchrun.DefaultCreditsActual
		_c.mutation.SetCreditsActual(v)
	}
	if _, ok := _c.mutation.CreditsLimit(); !ok {
		v := batchrun.DefaultCreditsLimit
		_c.mutation.SetCreditsLimit(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := batchrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "BatchRun.total"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "BatchRun.completed"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "BatchRun.failed"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "BatchRun.skipped"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "BatchRun.started_at"`)}
	}
	if _, ok := _c.mutation.Repositories(); !ok {
		return &ValidationError{Name: "repositories", err: errors.New(`ent: missing required field "BatchRun.repositories"`)}
	}
	if _, ok := _c.mutation.RecoveryAttempts(); !ok {
		return &ValidationError{Name: "recovery_attempts", err: errors.New(`ent: missing required field "BatchRun.recovery_attempts"`)}
	}
	if _, ok := _c.mutation.CreditsEstimated(); !ok {
		return &ValidationError{Name: "credits_estimated", err: errors.New(`ent: missing required field "BatchRun.credits_estimated"`)}
	}
	if _, ok := _c.mutation.CreditsActual(); !ok {
		return &ValidationError{Name: "credits_actual", err: errors.New(`ent: missing required field "BatchRun.credits_actual"`)}
	}
	if _, ok := _c.mutation.CreditsLimit(); !ok {
		return &ValidationError{Name: "credits_limit", err: errors.New(`ent: missing required field "BatchRun.credits_limit"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BatchRun.updated_at"`)}
	}
	return nil
}

func (_c *BatchRunCreate) sqlSave(ctx context.Context) (*BatchRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BatchRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchRunCreate) createSpec() (*BatchRun, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchrun.Table, sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(batchrun.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(batchrun.FieldCompleted, field.TypeInt, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(batchrun.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(batchrun.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(batchrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(batchrun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.CurrentRepo(); ok {
		_spec.SetField(batchrun.FieldCurrentRepo, field.TypeString, value)
		_node.CurrentRepo = value
	}
	if value, ok := _c.mutation.EstimatedCompletion(); ok {
		_spec.SetField(batchrun.FieldEstimatedCompletion, field.TypeTime, value)
		_node.EstimatedCompletion = &value
	}
	if value, ok := _c.mutation.Repositories(); ok {
		_spec.SetField(batchrun.FieldRepositories, field.TypeJSON, value)
		_node.Repositories = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(batchrun.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.Health(); ok {
		_spec.SetField(batchrun.FieldHealth, field.TypeJSON, value)
		_node.Health = value
	}
	if value, ok := _c.mutation.RecoveryAttempts(); ok {
		_spec.SetField(batchrun.FieldRecoveryAttempts, field.TypeInt, value)
		_node.RecoveryAttempts = value
	}
	if value, ok := _c.mutation.CreditsEstimated(); ok {
		_spec.SetField(batchrun.FieldCreditsEstimated, field.TypeFloat64, value)
		_node.CreditsEstimated = value
	}
	if value, ok := _c.mutation.CreditsActual(); ok {
		_spec.SetField(batchrun.FieldCreditsActual, field.TypeFloat64, value)
		_node.CreditsActual = value
	}
	if value, ok := _c.mutation.CreditsLimit(); ok {
		_spec.SetField(batchrun.FieldCreditsLimit, field.TypeFloat64, value)
		_node.CreditsLimit = value
	}
	if value, ok := _c.mutation.Checkpoint(); ok {
		_spec.SetField(batchrun.FieldCheckpoint, field.TypeJSON, value)
		_node.Checkpoint = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(batchrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BatchRunCreateBulk is the builder for creating many BatchRun entities in bulk.
type BatchRunCreateBulk struct {
	config
	err      error
	builders []*BatchRunCreate
}

// Save creates the BatchRun entities in the database.
func (_c *BatchRunCreateBulk) Save(ctx context.Context) ([]*BatchRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchRunCreateBulk) SaveX(ctx context.Context) []*BatchRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
