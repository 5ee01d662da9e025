// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/predicate"
	"github.com/reporadar/reporadar/ent/schedulerstate"
)

// SchedulerStateUpdate is the builder for updating SchedulerState entities.
type SchedulerStateUpdate struct {
	config
	hooks    []Hook
	mutation *SchedulerStateMutation
}

// Where appends a list predicates to the SchedulerStateUpdate builder.
func (_u *SchedulerStateUpdate) Where(ps ...predicate.SchedulerState) *SchedulerStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextTick sets the "next_tick" field.
func (_u *SchedulerStateUpdate) SetNextTick(v time.Time) *SchedulerStateUpdate {
	_u.mutation.SetNextTick(v)
	return _u
}

// SetNillableNextTick sets the "next_tick" field if the given value is not nil.
func (_u *SchedulerStateUpdate) SetNillableNextTick(v *time.Time) *SchedulerStateUpdate {
	if v != nil {
		_u.SetNextTick(*v)
	}
	return _u
}

// SetLastCycleType sets the "last_cycle_type" field.
func (_u *SchedulerStateUpdate) SetLastCycleType(v string) *SchedulerStateUpdate {
	_u.mutation.SetLastCycleType(v)
	return _u
}

// SetNillableLastCycleType sets the "last_cycle_type" field if the given value is not nil.
func (_u *SchedulerStateUpdate) SetNillableLastCycleType(v *string) *SchedulerStateUpdate {
	if v != nil {
		_u.SetLastCycleType(*v)
	}
	return _u
}

// ClearLastCycleType clears the value of the "last_cycle_type" field.
func (_u *SchedulerStateUpdate) ClearLastCycleType() *SchedulerStateUpdate {
	_u.mutation.ClearLastCycleType()
	return _u
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (_u *SchedulerStateUpdate) SetLastCycleAt(v time.Time) *SchedulerStateUpdate {
	_u.mutation.SetLastCycleAt(v)
	return _u
}

// SetNillableLastCycleAt sets the "last_cycle_at" field if the given value is not nil.
func (_u *SchedulerStateUpdate) SetNillableLastCycleAt(v *time.Time) *SchedulerStateUpdate {
	if v != nil {
		_u.SetLastCycleAt(*v)
	}
	return _u
}

// ClearLastCycleAt clears the value of the "last_cycle_at" field.
func (_u *SchedulerStateUpdate) ClearLastCycleAt() *SchedulerStateUpdate {
	_u.mutation.ClearLastCycleAt()
	return _u
}

// SetLastCycleError sets the "last_cycle_error" field.
func (_u *SchedulerStateUpdate) SetLastCycleError(v string) *SchedulerStateUpdate {
	_u.mutation.SetLastCycleError(v)
	return _u
}

// SetNillableLastCycleError sets the "last_cycle_error" field if the given value is not nil.
func (_u *SchedulerStateUpdate) SetNillableLastCycleError(v *string) *SchedulerStateUpdate {
	if v != nil {
		_u.SetLastCycleError(*v)
	}
	return _u
}

// ClearLastCycleError clears the value of the "last_cycle_error" field.
func (_u *SchedulerStateUpdate) ClearLastCycleError() *SchedulerStateUpdate {
	_u.mutation.ClearLastCycleError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchedulerStateUpdate) SetUpdatedAt(v time.Time) *SchedulerStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SchedulerStateMutation object of the builder.
func (_u *SchedulerStateUpdate) Mutation() *SchedulerStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchedulerStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulerStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchedulerStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulerStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchedulerStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedulerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SchedulerStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulerstate.Table, schedulerstate.Columns, sqlgraph.NewFieldSpec(schedulerstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextTick(); ok {
		_spec.SetField(schedulerstate.FieldNextTick, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastCycleType(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleType, field.TypeString, value)
	}
	if _u.mutation.LastCycleTypeCleared() {
		_spec.ClearField(schedulerstate.FieldLastCycleType, field.TypeString)
	}
	if value, ok := _u.mutation.LastCycleAt(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleAt, field.TypeTime, value)
	}
	if _u.mutation.LastCycleAtCleared() {
		_spec.ClearField(schedulerstate.FieldLastCycleAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastCycleError(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleError, field.TypeString, value)
	}
	if _u.mutation.LastCycleErrorCleared() {
		_spec.ClearField(schedulerstate.FieldLastCycleError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchedulerStateUpdateOne is the builder for updating a single SchedulerState entity.
type SchedulerStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchedulerStateMutation
}

// SetNextTick sets the "next_tick" field.
func (_u *SchedulerStateUpdateOne) SetNextTick(v time.Time) *SchedulerStateUpdateOne {
	_u.mutation.SetNextTick(v)
	return _u
}

// SetNillableNextTick sets the "next_tick" field if the given value is not nil.
func (_u *SchedulerStateUpdateOne) SetNillableNextTick(v *time.Time) *SchedulerStateUpdateOne {
	if v != nil {
		_u.SetNextTick(*v)
	}
	return _u
}

// SetLastCycleType sets the "last_cycle_type" field.
func (_u *SchedulerStateUpdateOne) SetLastCycleType(v string) *SchedulerStateUpdateOne {
	_u.mutation.SetLastCycleType(v)
	return _u
}

// SetNillableLastCycleType sets the "last_cycle_type" field if the given value is not nil.
func (_u *SchedulerStateUpdateOne) SetNillableLastCycleType(v *string) *SchedulerStateUpdateOne {
	if v != nil {
		_u.SetLastCycleType(*v)
	}
	return _u
}

// ClearLastCycleType clears the value of the "last_cycle_type" field.
func (_u *SchedulerStateUpdateOne) ClearLastCycleType() *SchedulerStateUpdateOne {
	_u.mutation.ClearLastCycleType()
	return _u
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (_u *SchedulerStateUpdateOne) SetLastCycleAt(v time.Time) *SchedulerStateUpdateOne {
	_u.mutation.SetLastCycleAt(v)
	return _u
}

// SetNillableLastCycleAt sets the "last_cycle_at" field if the given value is not nil.
func (_u *SchedulerStateUpdateOne) SetNillableLastCycleAt(v *time.Time) *SchedulerStateUpdateOne {
	if v != nil {
		_u.SetLastCycleAt(*v)
	}
	return _u
}

// ClearLastCycleAt clears the value of the "last_cycle_at" field.
func (_u *SchedulerStateUpdateOne) ClearLastCycleAt() *SchedulerStateUpdateOne {
	_u.mutation.ClearLastCycleAt()
	return _u
}

// SetLastCycleError sets the "last_cycle_error" field.
func (_u *SchedulerStateUpdateOne) SetLastCycleError(v string) *SchedulerStateUpdateOne {
	_u.mutation.SetLastCycleError(v)
	return _u
}

// SetNillableLastCycleError sets the "last_cycle_error" field if the given value is not nil.
func (_u *SchedulerStateUpdateOne) SetNillableLastCycleError(v *string) *SchedulerStateUpdateOne {
	if v != nil {
		_u.SetLastCycleError(*v)
	}
	return _u
}

// ClearLastCycleError clears the value of the "last_cycle_error" field.
func (_u *SchedulerStateUpdateOne) ClearLastCycleError() *SchedulerStateUpdateOne {
	_u.mutation.ClearLastCycleError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchedulerStateUpdateOne) SetUpdatedAt(v time.Time) *SchedulerStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SchedulerStateMutation object of the builder.
func (_u *SchedulerStateUpdateOne) Mutation() *SchedulerStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchedulerStateUpdate builder.
func (_u *SchedulerStateUpdateOne) Where(ps ...predicate.SchedulerState) *SchedulerStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchedulerStateUpdateOne) Select(field string, fields ...string) *SchedulerStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchedulerState entity.
func (_u *SchedulerStateUpdateOne) Save(ctx context.Context) (*SchedulerState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulerStateUpdateOne) SaveX(ctx context.Context) *SchedulerState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchedulerStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulerStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchedulerStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedulerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SchedulerStateUpdateOne) sqlSave(ctx context.Context) (_node *SchedulerState, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulerstate.Table, schedulerstate.Columns, sqlgraph.NewFieldSpec(schedulerstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchedulerState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulerstate.FieldID)
		for _, f := range fields {
			if !schedulerstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedulerstate.FieldID {
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
	if value, ok := _u.mutation.NextTick(); ok {
		_spec.SetField(schedulerstate.FieldNextTick, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastCycleType(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleType, field.TypeString, value)
	}
	if _u.mutation.LastCycleTypeCleared() {
		_spec.ClearField(schedulerstate.FieldLastCycleType, field.TypeString)
	}
	if value, ok := _u.mutation.LastCycleAt(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleAt, field.TypeTime, value)
	}
	if _u.mutation.LastCycleAtCleared() {
		_spec.ClearField(schedulerstate.FieldLastCycleAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastCycleError(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleError, field.TypeString, value)
	}
	if _u.mutation.LastCycleErrorCleared() {
		_spec.ClearField(schedulerstate.FieldLastCycleError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SchedulerState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
