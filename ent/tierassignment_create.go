// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// TierAssignmentCreate is the builder for creating a TierAssignment entity.
type TierAssignmentCreate struct {
	config
	mutation *TierAssignmentMutation
	hooks    []Hook
}

// SetRepoID sets the "repo_id" field.
func (_c *TierAssignmentCreate) SetRepoID(v string) *TierAssignmentCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *TierAssignmentCreate) SetTier(v int) *TierAssignmentCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetStars sets the "stars" field.
func (_c *TierAssignmentCreate) SetStars(v int) *TierAssignmentCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableStars(v *int) *TierAssignmentCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetGrowthVelocity sets the "growth_velocity" field.
func (_c *TierAssignmentCreate) SetGrowthVelocity(v float64) *TierAssignmentCreate {
	_c.mutation.SetGrowthVelocity(v)
	return _c
}

// SetNillableGrowthVelocity sets the "growth_velocity" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableGrowthVelocity(v *float64) *TierAssignmentCreate {
	if v != nil {
		_c.SetGrowthVelocity(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *TierAssignmentCreate) SetEngagementScore(v float64) *TierAssignmentCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableEngagementScore(v *float64) *TierAssignmentCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetScanPriority sets the "scan_priority" field.
func (_c *TierAssignmentCreate) SetScanPriority(v float64) *TierAssignmentCreate {
	_c.mutation.SetScanPriority(v)
	return _c
}

// SetNillableScanPriority sets the "scan_priority" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableScanPriority(v *float64) *TierAssignmentCreate {
	if v != nil {
		_c.SetScanPriority(*v)
	}
	return _c
}

// SetLastDeepScan sets the "last_deep_scan" field.
func (_c *TierAssignmentCreate) SetLastDeepScan(v time.Time) *TierAssignmentCreate {
	_c.mutation.SetLastDeepScan(v)
	return _c
}

// SetNillableLastDeepScan sets the "last_deep_scan" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableLastDeepScan(v *time.Time) *TierAssignmentCreate {
	if v != nil {
		_c.SetLastDeepScan(*v)
	}
	return _c
}

// SetLastBasicScan sets the "last_basic_scan" field.
func (_c *TierAssignmentCreate) SetLastBasicScan(v time.Time) *TierAssignmentCreate {
	_c.mutation.SetLastBasicScan(v)
	return _c
}

// SetNillableLastBasicScan sets the "last_basic_scan" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableLastBasicScan(v *time.Time) *TierAssignmentCreate {
	if v != nil {
		_c.SetLastBasicScan(*v)
	}
	return _c
}

// SetNextScanDue sets the "next_scan_due" field.
func (_c *TierAssignmentCreate) SetNextScanDue(v time.Time) *TierAssignmentCreate {
	_c.mutation.SetNextScanDue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TierAssignmentCreate) SetUpdatedAt(v time.Time) *TierAssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TierAssignmentCreate) SetNillableUpdatedAt(v *time.Time) *TierAssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TierAssignmentCreate) SetID(v string) *TierAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRepositoryID sets the "repository" edge to the Repository entity by ID.
func (_c *TierAssignmentCreate) SetRepositoryID(id string) *TierAssignmentCreate {
	_c.mutation.SetRepositoryID(id)
	return _c
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_c *TierAssignmentCreate) SetRepository(v *Repository) *TierAssignmentCreate {
	return _c.SetRepositoryID(v.ID)
}

// Mutation returns the TierAssignmentMutation object of the builder.
func (_c *TierAssignmentCreate) Mutation() *TierAssignmentMutation {
	return _c.mutation
}

// Save creates the TierAssignment in the database.
func (_c *TierAssignmentCreate) Save(ctx context.Context) (*TierAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TierAssignmentCreate) SaveX(ctx context.Context) *TierAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TierAssignmentCreate) defaults() {
	if _, ok := _c.mutation.Stars(); !ok {
		v := tierassignment.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.GrowthVelocity(); !ok {
		v := tierassignment.DefaultGrowthVelocity
		_c.mutation.SetGrowthVelocity(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := tierassignment.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.ScanPriority(); !ok {
		v := tierassignment.DefaultScanPriority
		_c.mutation.SetScanPriority(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tierassignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TierAssignmentCreate) check() error {
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "TierAssignment.repo_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "TierAssignment.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := tierassignment.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "TierAssignment.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "TierAssignment.stars"`)}
	}
	if _, ok := _c.mutation.GrowthVelocity(); !ok {
		return &ValidationError{Name: "growth_velocity", err: errors.New(`ent: missing required field "TierAssignment.growth_velocity"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "TierAssignment.engagement_score"`)}
	}
	if _, ok := _c.mutation.ScanPriority(); !ok {
		return &ValidationError{Name: "scan_priority", err: errors.New(`ent: missing required field "TierAssignment.scan_priority"`)}
	}
	if _, ok := _c.mutation.NextScanDue(); !ok {
		return &ValidationError{Name: "next_scan_due", err: errors.New(`ent: missing required field "TierAssignment.next_scan_due"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TierAssignment.updated_at"`)}
	}
	if len(_c.mutation.RepositoryIDs()) == 0 {
		return &ValidationError{Name: "repository", err: errors.New(`ent: missing required edge "TierAssignment.repository"`)}
	}
	return nil
}

func (_c *TierAssignmentCreate) sqlSave(ctx context.Context) (*TierAssignment, error) {
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
			return nil, fmt.Errorf("unexpected TierAssignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TierAssignmentCreate) createSpec() (*TierAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &TierAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tierassignment.Table, sqlgraph.NewFieldSpec(tierassignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(tierassignment.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(tierassignment.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.GrowthVelocity(); ok {
		_spec.SetField(tierassignment.FieldGrowthVelocity, field.TypeFloat64, value)
		_node.GrowthVelocity = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(tierassignment.FieldEngagementScore, field.TypeFloat64, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.ScanPriority(); ok {
		_spec.SetField(tierassignment.FieldScanPriority, field.TypeFloat64, value)
		_node.ScanPriority = value
	}
	if value, ok := _c.mutation.LastDeepScan(); ok {
		_spec.SetField(tierassignment.FieldLastDeepScan, field.TypeTime, value)
		_node.LastDeepScan = &value
	}
	if value, ok := _c.mutation.LastBasicScan(); ok {
		_spec.SetField(tierassignment.FieldLastBasicScan, field.TypeTime, value)
		_node.LastBasicScan = &value
	}
	if value, ok := _c.mutation.NextScanDue(); ok {
		_spec.SetField(tierassignment.FieldNextScanDue, field.TypeTime, value)
		_node.NextScanDue = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tierassignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RepositoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   tierassignment.RepositoryTable,
			Columns: []string{tierassignment.RepositoryColumn},
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

// TierAssignmentCreateBulk is the builder for creating many TierAssignment entities in bulk.
type TierAssignmentCreateBulk struct {
	config
	err      error
	builders []*TierAssignmentCreate
}

// Save creates the TierAssignment entities in the database.
func (_c *TierAssignmentCreateBulk) Save(ctx context.Context) ([]*TierAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TierAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TierAssignmentMutation)
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
func (_c *TierAssignmentCreateBulk) SaveX(ctx context.Context) []*TierAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
