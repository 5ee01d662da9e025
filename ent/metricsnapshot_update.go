// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/predicate"
)

// MetricSnapshotUpdate is the builder for updating MetricSnapshot entities.
type MetricSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *MetricSnapshotMutation
}

// Where appends a list predicates to the MetricSnapshotUpdate builder.
func (_u *MetricSnapshotUpdate) Where(ps ...predicate.MetricSnapshot) *MetricSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStars sets the "stars" field.
func (_u *MetricSnapshotUpdate) SetStars(v int) *MetricSnapshotUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *MetricSnapshotUpdate) SetNillableStars(v *int) *MetricSnapshotUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *MetricSnapshotUpdate) AddStars(v int) *MetricSnapshotUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// SetForks sets the "forks" field.
func (_u *MetricSnapshotUpdate) SetForks(v int) *MetricSnapshotUpdate {
	_u.mutation.ResetForks()
	_u.mutation.SetForks(v)
	return _u
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_u *MetricSnapshotUpdate) SetNillableForks(v *int) *MetricSnapshotUpdate {
	if v != nil {
		_u.SetForks(*v)
	}
	return _u
}

// AddForks adds value to the "forks" field.
func (_u *MetricSnapshotUpdate) AddForks(v int) *MetricSnapshotUpdate {
	_u.mutation.AddForks(v)
	return _u
}

// SetOpenIssues sets the "open_issues" field.
func (_u *MetricSnapshotUpdate) SetOpenIssues(v int) *MetricSnapshotUpdate {
	_u.mutation.ResetOpenIssues()
	_u.mutation.SetOpenIssues(v)
	return _u
}

// SetNillableOpenIssues sets the "open_issues" field if the given value is not nil.
func (_u *MetricSnapshotUpdate) SetNillableOpenIssues(v *int) *MetricSnapshotUpdate {
	if v != nil {
		_u.SetOpenIssues(*v)
	}
	return _u
}

// AddOpenIssues adds value to the "open_issues" field.
func (_u *MetricSnapshotUpdate) AddOpenIssues(v int) *MetricSnapshotUpdate {
	_u.mutation.AddOpenIssues(v)
	return _u
}

// SetWatchers sets the "watchers" field.
func (_u *MetricSnapshotUpdate) SetWatchers(v int) *MetricSnapshotUpdate {
	_u.mutation.ResetWatchers()
	_u.mutation.SetWatchers(v)
	return _u
}

// SetNillableWatchers sets the "watchers" field if the given value is not nil.
func (_u *MetricSnapshotUpdate) SetNillableWatchers(v *int) *MetricSnapshotUpdate {
	if v != nil {
		_u.SetWatchers(*v)
	}
	return _u
}

// AddWatchers adds value to the "watchers" field.
func (_u *MetricSnapshotUpdate) AddWatchers(v int) *MetricSnapshotUpdate {
	_u.mutation.AddWatchers(v)
	return _u
}

// SetContributors sets the "contributors" field.
func (_u *MetricSnapshotUpdate) SetContributors(v int) *MetricSnapshotUpdate {
	_u.mutation.ResetContributors()
	_u.mutation.SetContributors(v)
	return _u
}

// SetNillableContributors sets the "contributors" field if the given value is not nil.
func (_u *MetricSnapshotUpdate) SetNillableContributors(v *int) *MetricSnapshotUpdate {
	if v != nil {
		_u.SetContributors(*v)
	}
	return _u
}

// AddContributors adds value to the "contributors" field.
func (_u *MetricSnapshotUpdate) AddContributors(v int) *MetricSnapshotUpdate {
	_u.mutation.AddContributors(v)
	return _u
}

// ClearContributors clears the value of the "contributors" field.
func (_u *MetricSnapshotUpdate) ClearContributors() *MetricSnapshotUpdate {
	_u.mutation.ClearContributors()
	return _u
}

// SetCommitsCount sets the "commits_count" field.
func (_u *MetricSnapshotUpdate) SetCommitsCount(v int) *MetricSnapshotUpdate {
	_u.mutation.ResetCommitsCount()
	_u.mutation.SetCommitsCount(v)
	return _u
}

// SetNillableCommitsCount sets the "commits_count" field if the given value is not nil.
func (_u *MetricSnapshotUpdate) SetNillableCommitsCount(v *int) *MetricSnapshotUpdate {
	if v != nil {
		_u.SetCommitsCount(*v)
	}
	return _u
}

// AddCommitsCount adds value to the "commits_count" field.
func (_u *MetricSnapshotUpdate) AddCommitsCount(v int) *MetricSnapshotUpdate {
	_u.mutation.AddCommitsCount(v)
	return _u
}

// ClearCommitsCount clears the value of the "commits_count" field.
func (_u *MetricSnapshotUpdate) ClearCommitsCount() *MetricSnapshotUpdate {
	_u.mutation.ClearCommitsCount()
	return _u
}

// Mutation returns the MetricSnapshotMutation object of the builder.
func (_u *MetricSnapshotUpdate) Mutation() *MetricSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetricSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetricSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricSnapshotUpdate) check() error {
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MetricSnapshot.repository"`)
	}
	return nil
}

func (_u *MetricSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricsnapshot.Table, metricsnapshot.Columns, sqlgraph.NewFieldSpec(metricsnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(metricsnapshot.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(metricsnapshot.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forks(); ok {
		_spec.SetField(metricsnapshot.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForks(); ok {
		_spec.AddField(metricsnapshot.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenIssues(); ok {
		_spec.SetField(metricsnapshot.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpenIssues(); ok {
		_spec.AddField(metricsnapshot.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Watchers(); ok {
		_spec.SetField(metricsnapshot.FieldWatchers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWatchers(); ok {
		_spec.AddField(metricsnapshot.FieldWatchers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Contributors(); ok {
		_spec.SetField(metricsnapshot.FieldContributors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributors(); ok {
		_spec.AddField(metricsnapshot.FieldContributors, field.TypeInt, value)
	}
	if _u.mutation.ContributorsCleared() {
		_spec.ClearField(metricsnapshot.FieldContributors, field.TypeInt)
	}
	if value, ok := _u.mutation.CommitsCount(); ok {
		_spec.SetField(metricsnapshot.FieldCommitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommitsCount(); ok {
		_spec.AddField(metricsnapshot.FieldCommitsCount, field.TypeInt, value)
	}
	if _u.mutation.CommitsCountCleared() {
		_spec.ClearField(metricsnapshot.FieldCommitsCount, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetricSnapshotUpdateOne is the builder for updating a single MetricSnapshot entity.
type MetricSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetricSnapshotMutation
}

// SetStars sets the "stars" field.
func (_u *MetricSnapshotUpdateOne) SetStars(v int) *MetricSnapshotUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *MetricSnapshotUpdateOne) SetNillableStars(v *int) *MetricSnapshotUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *MetricSnapshotUpdateOne) AddStars(v int) *MetricSnapshotUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// SetForks sets the "forks" field.
func (_u *MetricSnapshotUpdateOne) SetForks(v int) *MetricSnapshotUpdateOne {
	_u.mutation.ResetForks()
	_u.mutation.SetForks(v)
	return _u
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_u *MetricSnapshotUpdateOne) SetNillableForks(v *int) *MetricSnapshotUpdateOne {
	if v != nil {
		_u.SetForks(*v)
	}
	return _u
}

// AddForks adds value to the "forks" field.
func (_u *MetricSnapshotUpdateOne) AddForks(v int) *MetricSnapshotUpdateOne {
	_u.mutation.AddForks(v)
	return _u
}

// SetOpenIssues sets the "open_issues" field.
func (_u *MetricSnapshotUpdateOne) SetOpenIssues(v int) *MetricSnapshotUpdateOne {
	_u.mutation.ResetOpenIssues()
	_u.mutation.SetOpenIssues(v)
	return _u
}

// SetNillableOpenIssues sets the "open_issues" field if the given value is not nil.
func (_u *MetricSnapshotUpdateOne) SetNillableOpenIssues(v *int) *MetricSnapshotUpdateOne {
	if v != nil {
		_u.SetOpenIssues(*v)
	}
	return _u
}

// AddOpenIssues adds value to the "open_issues" field.
func (_u *MetricSnapshotUpdateOne) AddOpenIssues(v int) *MetricSnapshotUpdateOne {
	_u.mutation.AddOpenIssues(v)
	return _u
}

// SetWatchers sets the "watchers" field.
func (_u *MetricSnapshotUpdateOne) SetWatchers(v int) *MetricSnapshotUpdateOne {
	_u.mutation.ResetWatchers()
	_u.mutation.SetWatchers(v)
	return _u
}

// SetNillableWatchers sets the "watchers" field if the given value is not nil.
func (_u *MetricSnapshotUpdateOne) SetNillableWatchers(v *int) *MetricSnapshotUpdateOne {
	if v != nil {
		_u.SetWatchers(*v)
	}
	return _u
}

// AddWatchers adds value to the "watchers" field.
func (_u *MetricSnapshotUpdateOne) AddWatchers(v int) *MetricSnapshotUpdateOne {
	_u.mutation.AddWatchers(v)
	return _u
}

// SetContributors sets the "contributors" field.
func (_u *MetricSnapshotUpdateOne) SetContributors(v int) *MetricSnapshotUpdateOne {
	_u.mutation.ResetContributors()
	_u.mutation.SetContributors(v)
	return _u
}

// SetNillableContributors sets the "contributors" field if the given value is not nil.
func (_u *MetricSnapshotUpdateOne) SetNillableContributors(v *int) *MetricSnapshotUpdateOne {
	if v != nil {
		_u.SetContributors(*v)
	}
	return _u
}

// AddContributors adds value to the "contributors" field.
func (_u *MetricSnapshotUpdateOne) AddContributors(v int) *MetricSnapshotUpdateOne {
	_u.mutation.AddContributors(v)
	return _u
}

// ClearContributors clears the value of the "contributors" field.
func (_u *MetricSnapshotUpdateOne) ClearContributors() *MetricSnapshotUpdateOne {
	_u.mutation.ClearContributors()
	return _u
}

// SetCommitsCount sets the "commits_count" field.
func (_u *MetricSnapshotUpdateOne) SetCommitsCount(v int) *MetricSnapshotUpdateOne {
	_u.mutation.ResetCommitsCount()
	_u.mutation.SetCommitsCount(v)
	return _u
}

// SetNillableCommitsCount sets the "commits_count" field if the given value is not nil.
func (_u *MetricSnapshotUpdateOne) SetNillableCommitsCount(v *int) *MetricSnapshotUpdateOne {
	if v != nil {
		_u.SetCommitsCount(*v)
	}
	return _u
}

// AddCommitsCount adds value to the "commits_count" field.
func (_u *MetricSnapshotUpdateOne) AddCommitsCount(v int) *MetricSnapshotUpdateOne {
	_u.mutation.AddCommitsCount(v)
	return _u
}

// ClearCommitsCount clears the value of the "commits_count" field.
func (_u *MetricSnapshotUpdateOne) ClearCommitsCount() *MetricSnapshotUpdateOne {
	_u.mutation.ClearCommitsCount()
	return _u
}

// Mutation returns the MetricSnapshotMutation object of the builder.
func (_u *MetricSnapshotUpdateOne) Mutation() *MetricSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the MetricSnapshotUpdate builder.
func (_u *MetricSnapshotUpdateOne) Where(ps ...predicate.MetricSnapshot) *MetricSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetricSnapshotUpdateOne) Select(field string, fields ...string) *MetricSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MetricSnapshot entity.
func (_u *MetricSnapshotUpdateOne) Save(ctx context.Context) (*MetricSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricSnapshotUpdateOne) SaveX(ctx context.Context) *MetricSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetricSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricSnapshotUpdateOne) check() error {
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MetricSnapshot.repository"`)
	}
	return nil
}

func (_u *MetricSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *MetricSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricsnapshot.Table, metricsnapshot.Columns, sqlgraph.NewFieldSpec(metricsnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MetricSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metricsnapshot.FieldID)
		for _, f := range fields {
			if !metricsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metricsnapshot.FieldID {
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
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(metricsnapshot.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(metricsnapshot.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forks(); ok {
		_spec.SetField(metricsnapshot.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForks(); ok {
		_spec.AddField(metricsnapshot.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenIssues(); ok {
		_spec.SetField(metricsnapshot.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpenIssues(); ok {
		_spec.AddField(metricsnapshot.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Watchers(); ok {
		_spec.SetField(metricsnapshot.FieldWatchers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWatchers(); ok {
		_spec.AddField(metricsnapshot.FieldWatchers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Contributors(); ok {
		_spec.SetField(metricsnapshot.FieldContributors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributors(); ok {
		_spec.AddField(metricsnapshot.FieldContributors, field.TypeInt, value)
	}
	if _u.mutation.ContributorsCleared() {
		_spec.ClearField(metricsnapshot.FieldContributors, field.TypeInt)
	}
	if value, ok := _u.mutation.CommitsCount(); ok {
		_spec.SetField(metricsnapshot.FieldCommitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommitsCount(); ok {
		_spec.AddField(metricsnapshot.FieldCommitsCount, field.TypeInt, value)
	}
	if _u.mutation.CommitsCountCleared() {
		_spec.ClearField(metricsnapshot.FieldCommitsCount, field.TypeInt)
	}
	_node = &MetricSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
