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
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ContributorUpdate is the builder for updating Contributor entities.
type ContributorUpdate struct {
	config
	hooks    []Hook
	mutation *ContributorMutation
}

// Where appends a list predicates to the ContributorUpdate builder.
func (_u *ContributorUpdate) Where(ps ...predicate.Contributor) *ContributorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLogin sets the "login" field.
func (_u *ContributorUpdate) SetLogin(v string) *ContributorUpdate {
	_u.mutation.SetLogin(v)
	return _u
}

// SetNillableLogin sets the "login" field if the given value is not nil.
func (_u *ContributorUpdate) SetNillableLogin(v *string) *ContributorUpdate {
	if v != nil {
		_u.SetLogin(*v)
	}
	return _u
}

// SetContributions sets the "contributions" field.
func (_u *ContributorUpdate) SetContributions(v int) *ContributorUpdate {
	_u.mutation.ResetContributions()
	_u.mutation.SetContributions(v)
	return _u
}

// SetNillableContributions sets the "contributions" field if the given value is not nil.
func (_u *ContributorUpdate) SetNillableContributions(v *int) *ContributorUpdate {
	if v != nil {
		_u.SetContributions(*v)
	}
	return _u
}

// AddContributions adds value to the "contributions" field.
func (_u *ContributorUpdate) AddContributions(v int) *ContributorUpdate {
	_u.mutation.AddContributions(v)
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *ContributorUpdate) SetRecordedAt(v time.Time) *ContributorUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// Mutation returns the ContributorMutation object of the builder.
func (_u *ContributorUpdate) Mutation() *ContributorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContributorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContributorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContributorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContributorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContributorUpdate) defaults() {
	if _, ok := _u.mutation.RecordedAt(); !ok {
		v := contributor.UpdateDefaultRecordedAt()
		_u.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContributorUpdate) check() error {
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contributor.repository"`)
	}
	return nil
}

func (_u *ContributorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contributor.Table, contributor.Columns, sqlgraph.NewFieldSpec(contributor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Login(); ok {
		_spec.SetField(contributor.FieldLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contributions(); ok {
		_spec.SetField(contributor.FieldContributions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributions(); ok {
		_spec.AddField(contributor.FieldContributions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(contributor.FieldRecordedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contributor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContributorUpdateOne is the builder for updating a single Contributor entity.
type ContributorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContributorMutation
}

// SetLogin sets the "login" field.
func (_u *ContributorUpdateOne) SetLogin(v string) *ContributorUpdateOne {
	_u.mutation.SetLogin(v)
	return _u
}

// SetNillableLogin sets the "login" field if the given value is not nil.
func (_u *ContributorUpdateOne) SetNillableLogin(v *string) *ContributorUpdateOne {
	if v != nil {
		_u.SetLogin(*v)
	}
	return _u
}

// SetContributions sets the "contributions" field.
func (_u *ContributorUpdateOne) SetContributions(v int) *ContributorUpdateOne {
	_u.mutation.ResetContributions()
	_u.mutation.SetContributions(v)
	return _u
}

// SetNillableContributions sets the "contributions" field if the given value is not nil.
func (_u *ContributorUpdateOne) SetNillableContributions(v *int) *ContributorUpdateOne {
	if v != nil {
		_u.SetContributions(*v)
	}
	return _u
}

// AddContributions adds value to the "contributions" field.
func (_u *ContributorUpdateOne) AddContributions(v int) *ContributorUpdateOne {
	_u.mutation.AddContributions(v)
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *ContributorUpdateOne) SetRecordedAt(v time.Time) *ContributorUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// Mutation returns the ContributorMutation object of the builder.
func (_u *ContributorUpdateOne) Mutation() *ContributorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContributorUpdate builder.
func (_u *ContributorUpdateOne) Where(ps ...predicate.Contributor) *ContributorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContributorUpdateOne) Select(field string, fields ...string) *ContributorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contributor entity.
func (_u *ContributorUpdateOne) Save(ctx context.Context) (*Contributor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContributorUpdateOne) SaveX(ctx context.Context) *Contributor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContributorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContributorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContributorUpdateOne) defaults() {
	if _, ok := _u.mutation.RecordedAt(); !ok {
		v := contributor.UpdateDefaultRecordedAt()
		_u.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContributorUpdateOne) check() error {
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contributor.repository"`)
	}
	return nil
}

func (_u *ContributorUpdateOne) sqlSave(ctx context.Context) (_node *Contributor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contributor.Table, contributor.Columns, sqlgraph.NewFieldSpec(contributor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contributor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contributor.FieldID)
		for _, f := range fields {
			if !contributor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contributor.FieldID {
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
	if value, ok := _u.mutation.Login(); ok {
		_spec.SetField(contributor.FieldLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contributions(); ok {
		_spec.SetField(contributor.FieldContributions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributions(); ok {
		_spec.AddField(contributor.FieldContributions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(contributor.FieldRecordedAt, field.TypeTime, value)
	}
	_node = &Contributor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contributor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
