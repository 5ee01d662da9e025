// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/schedulerstate"
)

// SchedulerStateCreate is the builder for creating a SchedulerState entity.
type SchedulerStateCreate struct {
	config
	mutation *SchedulerStateMutation
	hooks    []Hook
}

// SetNextTick sets the "next_tick" field.
func (_c *SchedulerStateCreate) SetNextTick(v time.Time) *SchedulerStateCreate {
	_c.mutation.SetNextTick(v)
	return _c
}

// SetLastCycleType sets the "last_cycle_type" field.
func (_c *SchedulerStateCreate) SetLastCycleType(v string) *SchedulerStateCreate {
	_c.mutation.SetLastCycleType(v)
	return _c
}

// SetNillableLastCycleType sets the "last_cycle_type" field if the given value is not nil.
func (_c *SchedulerStateCreate) SetNillableLastCycleType(v *string) *SchedulerStateCreate {
	if v != nil {
		_c.SetLastCycleType(*v)
	}
	return _c
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (_c *SchedulerStateCreate) SetLastCycleAt(v time.Time) *SchedulerStateCreate {
	_c.mutation.SetLastCycleAt(v)
	return _c
}

// SetNillableLastCycleAt sets the "last_cycle_at" field if the given value is not nil.
func (_c *SchedulerStateCreate) SetNillableLastCycleAt(v *time.Time) *SchedulerStateCreate {
	if v != nil {
		_c.SetLastCycleAt(*v)
	}
	return _c
}

// SetLastCycleError sets the "last_cycle_error" field.
func (_c *SchedulerStateCreate) SetLastCycleError(v string) *SchedulerStateCreate {
	_c.mutation.SetLastCycleError(v)
	return _c
}

// SetNillableLastCycleError sets the "last_cycle_error" field if the given value is not nil.
func (_c *SchedulerStateCreate) SetNillableLastCycleError(v *string) *SchedulerStateCreate {
	if v != nil {
		_c.SetLastCycleError(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SchedulerStateCreate) SetUpdatedAt(v time.Time) *SchedulerStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SchedulerStateCreate) SetNillableUpdatedAt(v *time.Time) *SchedulerStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchedulerStateCreate) SetID(v string) *SchedulerStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SchedulerStateMutation object of the builder.
func (_c *SchedulerStateCreate) Mutation() *SchedulerStateMutation {
	return _c.mutation
}

// Save creates the SchedulerState in the database.
func (_c *SchedulerStateCreate) Save(ctx context.Context) (*SchedulerState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchedulerStateCreate) SaveX(ctx context.Context) *SchedulerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulerStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulerStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchedulerStateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := schedulerstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchedulerStateCreate) check() error {
	if _, ok := _c.mutation.NextTick(); !ok {
		return &ValidationError{Name: "next_tick", err: errors.New(`ent: missing required field "SchedulerState.next_tick"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SchedulerState.updated_at"`)}
	}
	return nil
}

func (_c *SchedulerStateCreate) sqlSave(ctx context.Context) (*SchedulerState, error) {
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
			return nil, fmt.Errorf("unexpected SchedulerState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchedulerStateCreate) createSpec() (*SchedulerState, *sqlgraph.CreateSpec) {
	var (
		_node = &SchedulerState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulerstate.Table, sqlgraph.NewFieldSpec(schedulerstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextTick(); ok {
		_spec.SetField(schedulerstate.FieldNextTick, field.TypeTime, value)
		_node.NextTick = value
	}
	if value, ok := _c.mutation.LastCycleType(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleType, field.TypeString, value)
		_node.LastCycleType = value
	}
	if value, ok := _c.mutation.LastCycleAt(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleAt, field.TypeTime, value)
		_node.LastCycleAt = &value
	}
	if value, ok := _c.mutation.LastCycleError(); ok {
		_spec.SetField(schedulerstate.FieldLastCycleError, field.TypeString, value)
		_node.LastCycleError = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulerstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SchedulerStateCreateBulk is the builder for creating many SchedulerState entities in bulk.
type SchedulerStateCreateBulk struct {
	config
	err      error
	builders []*SchedulerStateCreate
}

// Save creates the SchedulerState entities in the database.
func (_c *SchedulerStateCreateBulk) Save(ctx context.Context) ([]*SchedulerState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchedulerState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchedulerStateMutation)
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
func (_c *SchedulerStateCreateBulk) SaveX(ctx context.Context) []*SchedulerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulerStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulerStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
