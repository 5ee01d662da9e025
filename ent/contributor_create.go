// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/repository"
)

// ContributorCreate is the builder for creating a Contributor entity.
type ContributorCreate struct {
	config
	mutation *ContributorMutation
	hooks    []Hook
}

// SetRepoID sets the "repo_id" field.
func (_c *ContributorCreate) SetRepoID(v string) *ContributorCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetLogin sets the "login" field.
func (_c *ContributorCreate) SetLogin(v string) *ContributorCreate {
	_c.mutation.SetLogin(v)
	return _c
}

// SetContributions sets the "contributions" field.
func (_c *ContributorCreate) SetContributions(v int) *ContributorCreate {
	_c.mutation.SetContributions(v)
	return _c
}

// SetNillableContributions sets the "contributions" field if the given value is not nil.
func (_c *ContributorCreate) SetNillableContributions(v *int) *ContributorCreate {
	if v != nil {
		_c.SetContributions(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *ContributorCreate) SetRecordedAt(v time.Time) *ContributorCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *ContributorCreate) SetNillableRecordedAt(v *time.Time) *ContributorCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContributorCreate) SetID(v string) *ContributorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRepositoryID sets the "repository" edge to the Repository entity by ID.
func (_c *ContributorCreate) SetRepositoryID(id string) *ContributorCreate {
	_c.mutation.SetRepositoryID(id)
	return _c
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_c *ContributorCreate) SetRepository(v *Repository) *ContributorCreate {
	return _c.SetRepositoryID(v.ID)
}

// Mutation returns the ContributorMutation object of the builder.
func (_c *ContributorCreate) Mutation() *ContributorMutation {
	return _c.mutation
}

// Save creates the Contributor in the database.
func (_c *ContributorCreate) Save(ctx context.Context) (*Contributor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContributorCreate) SaveX(ctx context.Context) *Contributor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContributorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContributorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContributorCreate) defaults() {
	if _, ok := _c.mutation.Contributions(); !ok {
		v := contributor.DefaultContributions
		_c.mutation.SetContributions(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := contributor.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContributorCreate) check() error {
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "Contributor.repo_id"`)}
	}
	if _, ok := _c.mutation.Login(); !ok {
		return &ValidationError{Name: "login", err: errors.New(`ent: missing required field "Contributor.login"`)}
	}
	if _, ok := _c.mutation.Contributions(); !ok {
		return &ValidationError{Name: "contributions", err: errors.New(`ent: missing required field "Contributor.contributions"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "Contributor.recorded_at"`)}
	}
	if len(_c.mutation.RepositoryIDs()) == 0 {
		return &ValidationError{Name: "repository", err: errors.New(`ent: missing required edge "Contributor.repository"`)}
	}
	return nil
}

func (_c *ContributorCreate) sqlSave(ctx context.Context) (*Contributor, error) {
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
			return nil, fmt.Errorf("unexpected Contributor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContributorCreate) createSpec() (*Contributor, *sqlgraph.CreateSpec) {
	var (
		_node = &Contributor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contributor.Table, sqlgraph.NewFieldSpec(contributor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Login(); ok {
		_spec.SetField(contributor.FieldLogin, field.TypeString, value)
		_node.Login = value
	}
	if value, ok := _c.mutation.Contributions(); ok {
		_spec.SetField(contributor.FieldContributions, field.TypeInt, value)
		_node.Contributions = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(contributor.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.RepositoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contributor.RepositoryTable,
			Columns: []string{contributor.RepositoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RepoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContributorCreateBulk is the builder for creating many Contributor entities in bulk.
type ContributorCreateBulk struct {
	config
	err      error
	builders []*ContributorCreate
}

// Save creates the Contributor entities in the database.
func (_c *ContributorCreateBulk) Save(ctx context.Context) ([]*Contributor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contributor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContributorMutation)
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
func (_c *ContributorCreateBulk) SaveX(ctx context.Context) []*Contributor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContributorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContributorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
