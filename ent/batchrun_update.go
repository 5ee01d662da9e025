// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/ent/predicate"
)

// BatchRunUpdate is the builder for updating BatchRun entities.
type BatchRunUpdate struct {
	config
	hooks    []Hook
	mutation *BatchRunMutation
}

// Where appends a list predicates to the BatchRunUpdate builder.
func (_u *BatchRunUpdate) Where(ps ...predicate.BatchRun) *BatchRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchRunUpdate) SetStatus(v batchrun.Status) *BatchRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableStatus(v *batchrun.Status) *BatchRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *BatchRunUpdate) SetTotal(v int) *BatchRunUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableTotal(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *BatchRunUpdate) AddTotal(v int) *BatchRunUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BatchRunUpdate) SetCompleted(v int) *BatchRunUpdate {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableCompleted(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *BatchRunUpdate) AddCompleted(v int) *BatchRunUpdate {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *BatchRunUpdate) SetFailed(v int) *BatchRunUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableFailed(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *BatchRunUpdate) AddFailed(v int) *BatchRunUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *BatchRunUpdate) SetSkipped(v int) *BatchRunUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableSkipped(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *BatchRunUpdate) AddSkipped(v int) *BatchRunUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *BatchRunUpdate) SetEndedAt(v time.Time) *BatchRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableEndedAt(v *time.Time) *BatchRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *BatchRunUpdate) ClearEndedAt() *BatchRunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetCurrentRepo sets the "current_repo" field.
func (_u *BatchRunUpdate) SetCurrentRepo(v string) *BatchRunUpdate {
	_u.mutation.SetCurrentRepo(v)
	return _u
}

// SetNillableCurrentRepo sets the "current_repo" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableCurrentRepo(v *string) *BatchRunUpdate {
	if v != nil {
		_u.SetCurrentRepo(*v)
	}
	return _u
}

// ClearCurrentRepo clears the value of the "current_repo" field.
func (_u *BatchRunUpdate) ClearCurrentRepo() *BatchRunUpdate {
	_u.mutation.ClearCurrentRepo()
	return _u
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (_u *BatchRunUpdate) SetEstimatedCompletion(v time.Time) *BatchRunUpdate {
	_u.mutation.SetEstimatedCompletion(v)
	return _u
}

// SetNillableEstimatedCompletion sets the "estimated_completion" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableEstimatedCompletion(v *time.Time) *BatchRunUpdate {
	if v != nil {
		_u.SetEstimatedCompletion(*v)
	}
	return _u
}

// ClearEstimatedCompletion clears the value of the "estimated_completion" field.
func (_u *BatchRunUpdate) ClearEstimatedCompletion() *BatchRunUpdate {
	_u.mutation.ClearEstimatedCompletion()
	return _u
}

// SetRepositories sets the "repositories" field.
func (_u *BatchRunUpdate) SetRepositories(v []string) *BatchRunUpdate {
	_u.mutation.SetRepositories(v)
	return _u
}

// AppendRepositories appends value to the "repositories" field.
func (_u *BatchRunUpdate) AppendRepositories(v []string) *BatchRunUpdate {
	_u.mutation.AppendRepositories(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *BatchRunUpdate) SetResults(v []map[string]interface{}) *BatchRunUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *BatchRunUpdate) AppendResults(v []map[string]interface{}) *BatchRunUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *BatchRunUpdate) ClearResults() *BatchRunUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetHealth sets the "health" field.
func (_u *BatchRunUpdate) SetHealth(v map[string]interface{}) *BatchRunUpdate {
	_u.mutation.SetHealth(v)
	return _u
}

// ClearHealth clears the value of the "health" field.
func (_u *BatchRunUpdate) ClearHealth() *BatchRunUpdate {
	_u.mutation.ClearHealth()
	return _u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_u *BatchRunUpdate) SetRecoveryAttempts(v int) *BatchRunUpdate {
	_u.mutation.ResetRecoveryAttempts()
	_u.mutation.SetRecoveryAttempts(v)
	return _u
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableRecoveryAttempts(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetRecoveryAttempts(*v)
	}
	return _u
}

// AddRecoveryAttempts adds value to the "recovery_attempts" field.
func (_u *BatchRunUpdate) AddRecoveryAttempts(v int) *BatchRunUpdate {
	_u.mutation.AddRecoveryAttempts(v)
	return _u
}

// SetCreditsEstimated sets the "credits_estimated" field.
func (_u *BatchRunUpdate) SetCreditsEstimated(v float64) *BatchRunUpdate {
	_u.mutation.ResetCreditsEstimated()
	_u.mutation.SetCreditsEstimated(v)
	return _u
}

// SetNillableCreditsEstimated sets the "credits_estimated" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableCreditsEstimated(v *float64) *BatchRunUpdate {
	if v != nil {
		_u.SetCreditsEstimated(*v)
	}
	return _u
}

// AddCreditsEstimated adds value to the "credits_estimated" field.
func (_u *BatchRunUpdate) AddCreditsEstimated(v float64) *BatchRunUpdate {
	_u.mutation.AddCreditsEstimated(v)
	return _u
}

// SetCreditsActual sets the "credits_actual" field.
func (_u *BatchRunUpdate) SetCreditsActual(v float64) *BatchRunUpdate {
	_u.mutation.ResetCreditsActual()
	_u.mutation.SetCreditsActual(v)
	return _u
}

// SetNillableCreditsActual sets the "credits_actual" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableCreditsActual(v *float64) *BatchRunUpdate {
	if v != nil {
		_u.SetCreditsActual(*v)
	}
	return _u
}

// AddCreditsActual adds value to the "credits_actual" field.
func (_u *BatchRunUpdate) AddCreditsActual(v float64) *BatchRunUpdate {
	_u.mutation.AddCreditsActual(v)
	return _u
}

// SetCreditsLimit sets the "credits_limit" field.
func (_u *BatchRunUpdate) SetCreditsLimit(v float64) *BatchRunUpdate {
	_u.mutation.ResetCreditsLimit()
	_u.mutation.SetCreditsLimit(v)
	return _u
}

// SetNillableCreditsLimit sets the "credits_limit" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableCreditsLimit(v *float64) *BatchRunUpdate {
	if v != nil {
		_u.SetCreditsLimit(*v)
	}
	return _u
}

// AddCreditsLimit adds value to the "credits_limit" field.
func (_u *BatchRunUpdate) AddCreditsLimit(v float64) *BatchRunUpdate {
	_u.mutation.AddCreditsLimit(v)
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *BatchRunUpdate) SetCheckpoint(v map[string]interface{}) *BatchRunUpdate {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *BatchRunUpdate) ClearCheckpoint() *BatchRunUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchRunUpdate) SetUpdatedAt(v time.Time) *BatchRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BatchRunMutation object of the builder.
func (_u *BatchRunUpdate) Mutation() *BatchRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batchrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batchrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchrun.Table, batchrun.Columns, sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(batchrun.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(batchrun.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(batchrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(batchrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(batchrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(batchrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentRepo(); ok {
		_spec.SetField(batchrun.FieldCurrentRepo, field.TypeString, value)
	}
	if _u.mutation.CurrentRepoCleared() {
		_spec.ClearField(batchrun.FieldCurrentRepo, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCompletion(); ok {
		_spec.SetField(batchrun.FieldEstimatedCompletion, field.TypeTime, value)
	}
	if _u.mutation.EstimatedCompletionCleared() {
		_spec.ClearField(batchrun.FieldEstimatedCompletion, field.TypeTime)
	}
	if value, ok := _u.mutation.Repositories(); ok {
		_spec.SetField(batchrun.FieldRepositories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRepositories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchrun.FieldRepositories, value)
		})
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(batchrun.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchrun.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(batchrun.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Health(); ok {
		_spec.SetField(batchrun.FieldHealth, field.TypeJSON, value)
	}
	if _u.mutation.HealthCleared() {
		_spec.ClearField(batchrun.FieldHealth, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecoveryAttempts(); ok {
		_spec.SetField(batchrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempts(); ok {
		_spec.AddField(batchrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsEstimated(); ok {
		_spec.SetField(batchrun.FieldCreditsEstimated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditsEstimated(); ok {
		_spec.AddField(batchrun.FieldCreditsEstimated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditsActual(); ok {
		_spec.SetField(batchrun.FieldCreditsActual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditsActual(); ok {
		_spec.AddField(batchrun.FieldCreditsActual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditsLimit(); ok {
		_spec.SetField(batchrun.FieldCreditsLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditsLimit(); ok {
		_spec.AddField(batchrun.FieldCreditsLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(batchrun.FieldCheckpoint, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(batchrun.FieldCheckpoint, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batchrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchRunUpdateOne is the builder for updating a single BatchRun entity.
type BatchRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchRunMutation
}

// SetStatus sets the "status" field.
func (_u *BatchRunUpdateOne) SetStatus(v batchrun.Status) *BatchRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableStatus(v *batchrun.Status) *BatchRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *BatchRunUpdateOne) SetTotal(v int) *BatchRunUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableTotal(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *BatchRunUpdateOne) AddTotal(v int) *BatchRunUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BatchRunUpdateOne) SetCompleted(v int) *BatchRunUpdateOne {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableCompleted(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *BatchRunUpdateOne) AddCompleted(v int) *BatchRunUpdateOne {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *BatchRunUpdateOne) SetFailed(v int) *BatchRunUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableFailed(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *BatchRunUpdateOne) AddFailed(v int) *BatchRunUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *BatchRunUpdateOne) SetSkipped(v int) *BatchRunUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableSkipped(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *BatchRunUpdateOne) AddSkipped(v int) *BatchRunUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *BatchRunUpdateOne) SetEndedAt(v time.Time) *BatchRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableEndedAt(v *time.Time) *BatchRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *BatchRunUpdateOne) ClearEndedAt() *BatchRunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetCurrentRepo sets the "current_repo" field.
func (_u *BatchRunUpdateOne) SetCurrentRepo(v string) *BatchRunUpdateOne {
	_u.mutation.SetCurrentRepo(v)
	return _u
}

// SetNillableCurrentRepo sets the "current_repo" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableCurrentRepo(v *string) *BatchRunUpdateOne {
	if v != nil {
		_u.SetCurrentRepo(*v)
	}
	return _u
}

// ClearCurrentRepo clears the value of the "current_repo" field.
func (_u *BatchRunUpdateOne) ClearCurrentRepo() *BatchRunUpdateOne {
	_u.mutation.ClearCurrentRepo()
	return _u
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (_u *BatchRunUpdateOne) SetEstimatedCompletion(v time.Time) *BatchRunUpdateOne {
	_u.mutation.SetEstimatedCompletion(v)
	return _u
}

// SetNillableEstimatedCompletion sets the "estimated_completion" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableEstimatedCompletion(v *time.Time) *BatchRunUpdateOne {
	if v != nil {
		_u.SetEstimatedCompletion(*v)
	}
	return _u
}

// ClearEstimatedCompletion clears the value of the "estimated_completion" field.
func (_u *BatchRunUpdateOne) ClearEstimatedCompletion() *BatchRunUpdateOne {
	_u.mutation.ClearEstimatedCompletion()
	return _u
}

// SetRepositories sets the "repositories" field.
func (_u *BatchRunUpdateOne) SetRepositories(v []string) *BatchRunUpdateOne {
	_u.mutation.SetRepositories(v)
	return _u
}

// AppendRepositories appends value to the "repositories" field.
func (_u *BatchRunUpdateOne) AppendRepositories(v []string) *BatchRunUpdateOne {
	_u.mutation.AppendRepositories(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *BatchRunUpdateOne) SetResults(v []map[string]interface{}) *BatchRunUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *BatchRunUpdateOne) AppendResults(v []map[string]interface{}) *BatchRunUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *BatchRunUpdateOne) ClearResults() *BatchRunUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetHealth sets the "health" field.
func (_u *BatchRunUpdateOne) SetHealth(v map[string]interface{}) *BatchRunUpdateOne {
	_u.mutation.SetHealth(v)
	return _u
}

// ClearHealth clears the value of the "health" field.
func (_u *BatchRunUpdateOne) ClearHealth() *BatchRunUpdateOne {
	_u.mutation.ClearHealth()
	return _u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_u *BatchRunUpdateOne) SetRecoveryAttempts(v int) *BatchRunUpdateOne {
	_u.mutation.ResetRecoveryAttempts()
	_u.mutation.SetRecoveryAttempts(v)
	return _u
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableRecoveryAttempts(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempts(*v)
	}
	return _u
}

// AddRecoveryAttempts adds value to the "recovery_attempts" field.
func (_u *BatchRunUpdateOne) AddRecoveryAttempts(v int) *BatchRunUpdateOne {
	_u.mutation.AddRecoveryAttempts(v)
	return _u
}

// SetCreditsEstimated sets the "credits_estimated" field.
func (_u *BatchRunUpdateOne) SetCreditsEstimated(v float64) *BatchRunUpdateOne {
	_u.mutation.ResetCreditsEstimated()
	_u.mutation.SetCreditsEstimated(v)
	return _u
}

// SetNillableCreditsEstimated sets the "credits_estimated" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableCreditsEstimated(v *float64) *BatchRunUpdateOne {
	if v != nil {
		_u.SetCreditsEstimated(*v)
	}
	return _u
}

// AddCreditsEstimated adds value to the "credits_estimated" field.
func (_u *BatchRunUpdateOne) AddCreditsEstimated(v float64) *BatchRunUpdateOne {
	_u.mutation.AddCreditsEstimated(v)
	return _u
}

// SetCreditsActual sets the "credits_actual" field.
func (_u *BatchRunUpdateOne) SetCreditsActual(v float64) *BatchRunUpdateOne {
	_u.mutation.ResetCreditsActual()
	_u.mutation.SetCreditsActual(v)
	return _u
}

// SetNillableCreditsActual sets the "credits_actual" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableCreditsActual(v *float64) *BatchRunUpdateOne {
	if v != nil {
		_u.SetCreditsActual(*v)
	}
	return _u
}

// AddCreditsActual adds value to the "credits_actual" field.
func (_u *BatchRunUpdateOne) AddCreditsActual(v float64) *BatchRunUpdateOne {
	_u.mutation.AddCreditsActual(v)
	return _u
}

// SetCreditsLimit sets the "credits_limit" field.
func (_u *BatchRunUpdateOne) SetCreditsLimit(v float64) *BatchRunUpdateOne {
	_u.mutation.ResetCreditsLimit()
	_u.mutation.SetCreditsLimit(v)
	return _u
}

// SetNillableCreditsLimit sets the "credits_limit" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableCreditsLimit(v *float64) *BatchRunUpdateOne {
	if v != nil {
		_u.SetCreditsLimit(*v)
	}
	return _u
}

// AddCreditsLimit adds value to the "credits_limit" field.
func (_u *BatchRunUpdateOne) AddCreditsLimit(v float64) *BatchRunUpdateOne {
	_u.mutation.AddCreditsLimit(v)
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *BatchRunUpdateOne) SetCheckpoint(v map[string]interface{}) *BatchRunUpdateOne {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *BatchRunUpdateOne) ClearCheckpoint() *BatchRunUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchRunUpdateOne) SetUpdatedAt(v time.Time) *BatchRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BatchRunMutation object of the builder.
func (_u *BatchRunUpdateOne) Mutation() *BatchRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the BatchRunUpdate builder.
func (_u *BatchRunUpdateOne) Where(ps ...predicate.BatchRun) *BatchRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchRunUpdateOne) Select(field string, fields ...string) *BatchRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchRun entity.
func (_u *BatchRunUpdateOne) Save(ctx context.Context) (*BatchRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchRunUpdateOne) SaveX(ctx context.Context) *BatchRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batchrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batchrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchRunUpdateOne) sqlSave(ctx context.Context) (_node *BatchRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchrun.Table, batchrun.Columns, sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchrun.FieldID)
		for _, f := range fields {
			if !batchrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(batchrun.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(batchrun.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(batchrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(batchrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(batchrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(batchrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentRepo(); ok {
		_spec.SetField(batchrun.FieldCurrentRepo, field.TypeString, value)
	}
	if _u.mutation.CurrentRepoCleared() {
		_spec.ClearField(batchrun.FieldCurrentRepo, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCompletion(); ok {
		_spec.SetField(batchrun.FieldEstimatedCompletion, field.TypeTime, value)
	}
	if _u.mutation.EstimatedCompletionCleared() {
		_spec.ClearField(batchrun.FieldEstimatedCompletion, field.TypeTime)
	}
	if value, ok := _u.mutation.Repositories(); ok {
		_spec.SetField(batchrun.FieldRepositories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRepositories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchrun.FieldRepositories, value)
		})
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(batchrun.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchrun.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(batchrun.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Health(); ok {
		_spec.SetField(batchrun.FieldHealth, field.TypeJSON, value)
	}
	if _u.mutation.HealthCleared() {
		_spec.ClearField(batchrun.FieldHealth, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecoveryAttempts(); ok {
		_spec.SetField(batchrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempts(); ok {
		_spec.AddField(batchrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsEstimated(); ok {
		_spec.SetField(batchrun.FieldCreditsEstimated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditsEstimated(); ok {
		_spec.AddField(batchrun.FieldCreditsEstimated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditsActual(); ok {
		_spec.SetField(batchrun.FieldCreditsActual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditsActual(); ok {
		_spec.AddField(batchrun.FieldCreditsActual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditsLimit(); ok {
		_spec.SetField(batchrun.FieldCreditsLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditsLimit(); ok {
		_spec.AddField(batchrun.FieldCreditsLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(batchrun.FieldCheckpoint, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(batchrun.FieldCheckpoint, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batchrun.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BatchRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
