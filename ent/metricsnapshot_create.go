// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/repository"
)

// MetricSnapshotCreate is the builder for creating a MetricSnapshot entity.
type MetricSnapshotCreate struct {
	config
	mutation *MetricSnapshotMutation
	hooks    []Hook
}

// SetRepoID sets the "repo_id" field.
func (_c *MetricSnapshotCreate) SetRepoID(v string) *MetricSnapshotCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetStars sets the "stars" field.
func (_c *MetricSnapshotCreate) SetStars(v int) *MetricSnapshotCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableStars(v *int) *MetricSnapshotCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetForks sets the "forks" field.
func (_c *MetricSnapshotCreate) SetForks(v int) *MetricSnapshotCreate {
	_c.mutation.SetForks(v)
	return _c
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableForks(v *int) *MetricSnapshotCreate {
	if v != nil {
		_c.SetForks(*v)
	}
	return _c
}

// SetOpenIssues sets the "open_issues" field.
func (_c *MetricSnapshotCreate) SetOpenIssues(v int) *MetricSnapshotCreate {
	_c.mutation.SetOpenIssues(v)
	return _c
}

// SetNillableOpenIssues sets the "open_issues" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableOpenIssues(v *int) *MetricSnapshotCreate {
	if v != nil {
		_c.SetOpenIssues(*v)
	}
	return _c
}

// SetWatchers sets the "watchers" field.
func (_c *MetricSnapshotCreate) SetWatchers(v int) *MetricSnapshotCreate {
	_c.mutation.SetWatchers(v)
	return _c
}

// SetNillableWatchers sets the "watchers" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableWatchers(v *int) *MetricSnapshotCreate {
	if v != nil {
		_c.SetWatchers(*v)
	}
	return _c
}

// SetContributors sets the "contributors" field.
func (_c *MetricSnapshotCreate) SetContributors(v int) *MetricSnapshotCreate {
	_c.mutation.SetContributors(v)
	return _c
}

// SetNillableContributors sets the "contributors" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableContributors(v *int) *MetricSnapshotCreate {
	if v != nil {
		_c.SetContributors(*v)
	}
	return _c
}

// SetCommitsCount sets the "commits_count" field.
func (_c *MetricSnapshotCreate) SetCommitsCount(v int) *MetricSnapshotCreate {
	_c.mutation.SetCommitsCount(v)
	return _c
}

// SetNillableCommitsCount sets the "commits_count" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableCommitsCount(v *int) *MetricSnapshotCreate {
	if v != nil {
		_c.SetCommitsCount(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *MetricSnapshotCreate) SetRecordedAt(v time.Time) *MetricSnapshotCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *MetricSnapshotCreate) SetNillableRecordedAt(v *time.Time) *MetricSnapshotCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MetricSnapshotCreate) SetID(v string) *MetricSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRepositoryID sets the "repository" edge to the Repository entity by ID.
func (_c *MetricSnapshotCreate) SetRepositoryID(id string) *MetricSnapshotCreate {
	_c.mutation.SetRepositoryID(id)
	return _c
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_c *MetricSnapshotCreate) SetRepository(v *Repository) *MetricSnapshotCreate {
	return _c.SetRepositoryID(v.ID)
}

// Mutation returns the MetricSnapshotMutation object of the builder.
func (_c *MetricSnapshotCreate) Mutation() *MetricSnapshotMutation {
	return _c.mutation
}

// Save creates the MetricSnapshot in the database.
func (_c *MetricSnapshotCreate) Save(ctx context.Context) (*MetricSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricSnapshotCreate) SaveX(ctx context.Context) *MetricSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetricSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Stars(); !ok {
		v := metricsnapshot.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.Forks(); !ok {
		v := metricsnapshot.DefaultForks
		_c.mutation.SetForks(v)
	}
	if _, ok := _c.mutation.OpenIssues(); !ok {
		v := metricsnapshot.DefaultOpenIssues
		_c.mutation.SetOpenIssues(v)
	}
	if _, ok := _c.mutation.Watchers(); !ok {
		v := metricsnapshot.DefaultWatchers
		_c.mutation.SetWatchers(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := metricsnapshot.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricSnapshotCreate) check() error {
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "MetricSnapshot.repo_id"`)}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "MetricSnapshot.stars"`)}
	}
	if _, ok := _c.mutation.Forks(); !ok {
		return &ValidationError{Name: "forks", err: errors.New(`ent: missing required field "MetricSnapshot.forks"`)}
	}
	if _, ok := _c.mutation.OpenIssues(); !ok {
		return &ValidationError{Name: "open_issues", err: errors.New(`ent: missing required field "MetricSnapshot.open_issues"`)}
	}
	if _, ok := _c.mutation.Watchers(); !ok {
		return &ValidationError{Name: "watchers", err: errors.New(`ent: missing required field "MetricSnapshot.watchers"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "MetricSnapshot.recorded_at"`)}
	}
	if len(_c.mutation.RepositoryIDs()) == 0 {
		return &ValidationError{Name: "repository", err: errors.New(`ent: missing required edge "MetricSnapshot.repository"`)}
	}
	return nil
}

func (_c *MetricSnapshotCreate) sqlSave(ctx context.Context) (*MetricSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected MetricSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MetricSnapshotCreate) createSpec() (*MetricSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &MetricSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metricsnapshot.Table, sqlgraph.NewFieldSpec(metricsnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(metricsnapshot.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.Forks(); ok {
		_spec.SetField(metricsnapshot.FieldForks, field.TypeInt, value)
		_node.Forks = value
	}
	if value, ok := _c.mutation.OpenIssues(); ok {
		_spec.SetField(metricsnapshot.FieldOpenIssues, field.TypeInt, value)
		_node.OpenIssues = value
	}
	if value, ok := _c.mutation.Watchers(); ok {
		_spec.SetField(metricsnapshot.FieldWatchers, field.TypeInt, value)
		_node.Watchers = value
	}
	if value, ok := _c.mutation.Contributors(); ok {
		_spec.SetField(metricsnapshot.FieldContributors, field.TypeInt, value)
		_node.Contributors = &value
	}
	if value, ok := _c.mutation.CommitsCount(); ok {
		_spec.SetField(metricsnapshot.FieldCommitsCount, field.TypeInt, value)
		_node.CommitsCount = &value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(metricsnapshot.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.RepositoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   metricsnapshot.RepositoryTable,
			Columns: []string{metricsnapshot.RepositoryColumn},
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

// MetricSnapshotCreateBulk is the builder for creating many MetricSnapshot entities in bulk.
type MetricSnapshotCreateBulk struct {
	config
	err      error
	builders []*MetricSnapshotCreate
}

// Save creates the MetricSnapshot entities in the database.
func (_c *MetricSnapshotCreateBulk) Save(ctx context.Context) ([]*MetricSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetricSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricSnapshotMutation)
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
func (_c *MetricSnapshotCreateBulk) SaveX(ctx context.Context) []*MetricSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
