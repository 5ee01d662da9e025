// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// RepositoryCreate is the builder for creating a Repository entity.
type RepositoryCreate struct {
	config
	mutation *RepositoryMutation
	hooks    []Hook
}

// SetOwner sets the "owner" field.
func (_c *RepositoryCreate) SetOwner(v string) *RepositoryCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RepositoryCreate) SetName(v string) *RepositoryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *RepositoryCreate) SetFullName(v string) *RepositoryCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RepositoryCreate) SetDescription(v string) *RepositoryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableDescription(v *string) *RepositoryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStars sets the "stars" field.
func (_c *RepositoryCreate) SetStars(v int) *RepositoryCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableStars(v *int) *RepositoryCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetForks sets the "forks" field.
func (_c *RepositoryCreate) SetForks(v int) *RepositoryCreate {
	_c.mutation.SetForks(v)
	return _c
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableForks(v *int) *RepositoryCreate {
	if v != nil {
		_c.SetForks(*v)
	}
	return _c
}

// SetOpenIssues sets the "open_issues" field.
func (_c *RepositoryCreate) SetOpenIssues(v int) *RepositoryCreate {
	_c.mutation.SetOpenIssues(v)
	return _c
}

// SetNillableOpenIssues sets the "open_issues" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableOpenIssues(v *int) *RepositoryCreate {
	if v != nil {
		_c.SetOpenIssues(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *RepositoryCreate) SetLanguage(v string) *RepositoryCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableLanguage(v *string) *RepositoryCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *RepositoryCreate) SetTopics(v []string) *RepositoryCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RepositoryCreate) SetCreatedAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RepositoryCreate) SetUpdatedAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetPushedAt sets the "pushed_at" field.
func (_c *RepositoryCreate) SetPushedAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetPushedAt(v)
	return _c
}

// SetNillablePushedAt sets the "pushed_at" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillablePushedAt(v *time.Time) *RepositoryCreate {
	if v != nil {
		_c.SetPushedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *RepositoryCreate) SetIsArchived(v bool) *RepositoryCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableIsArchived(v *bool) *RepositoryCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetIsFork sets the "is_fork" field.
func (_c *RepositoryCreate) SetIsFork(v bool) *RepositoryCreate {
	_c.mutation.SetIsFork(v)
	return _c
}

// SetNillableIsFork sets the "is_fork" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableIsFork(v *bool) *RepositoryCreate {
	if v != nil {
		_c.SetIsFork(*v)
	}
	return _c
}

// SetHTMLURL sets the "html_url" field.
func (_c *RepositoryCreate) SetHTMLURL(v string) *RepositoryCreate {
	_c.mutation.SetHTMLURL(v)
	return _c
}

// SetNillableHTMLURL sets the "html_url" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableHTMLURL(v *string) *RepositoryCreate {
	if v != nil {
		_c.SetHTMLURL(*v)
	}
	return _c
}

// SetDefaultBranch sets the "default_branch" field.
func (_c *RepositoryCreate) SetDefaultBranch(v string) *RepositoryCreate {
	_c.mutation.SetDefaultBranch(v)
	return _c
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableDefaultBranch(v *string) *RepositoryCreate {
	if v != nil {
		_c.SetDefaultBranch(*v)
	}
	return _c
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_c *RepositoryCreate) SetDiscoveredAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetDiscoveredAt(v)
	return _c
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableDiscoveredAt(v *time.Time) *RepositoryCreate {
	if v != nil {
		_c.SetDiscoveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RepositoryCreate) SetID(v string) *RepositoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSnapshotIDs adds the "snapshots" edge to the MetricSnapshot entity by IDs.
func (_c *RepositoryCreate) AddSnapshotIDs(ids ...string) *RepositoryCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the MetricSnapshot entity.
func (_c *RepositoryCreate) AddSnapshots(v ...*MetricSnapshot) *RepositoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// SetTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by ID.
func (_c *RepositoryCreate) SetTierAssignmentID(id string) *RepositoryCreate {
	_c.mutation.SetTierAssignmentID(id)
	return _c
}

// SetNillableTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by ID if the given value is not nil.
func (_c *RepositoryCreate) SetNillableTierAssignmentID(id *string) *RepositoryCreate {
	if id != nil {
		_c = _c.SetTierAssignmentID(*id)
	}
	return _c
}

// SetTierAssignment sets the "tier_assignment" edge to the TierAssignment entity.
func (_c *RepositoryCreate) SetTierAssignment(v *TierAssignment) *RepositoryCreate {
	return _c.SetTierAssignmentID(v.ID)
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_c *RepositoryCreate) AddAnalysisIDs(ids ...string) *RepositoryCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_c *RepositoryCreate) AddAnalyses(v ...*Analysis) *RepositoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_c *RepositoryCreate) AddAlertIDs(ids ...string) *RepositoryCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_c *RepositoryCreate) AddAlerts(v ...*Alert) *RepositoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// AddContributorIDs adds the "contributors" edge to the Contributor entity by IDs.
func (_c *RepositoryCreate) AddContributorIDs(ids ...string) *RepositoryCreate {
	_c.mutation.AddContributorIDs(ids...)
	return _c
}

// AddContributors adds the "contributors" edges to the Contributor entity.
func (_c *RepositoryCreate) AddContributors(v ...*Contributor) *RepositoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContributorIDs(ids...)
}

// Mutation returns the RepositoryMutation object of the builder.
func (_c *RepositoryCreate) Mutation() *RepositoryMutation {
	return _c.mutation
}

// Save creates the Repository in the database.
func (_c *RepositoryCreate) Save(ctx context.Context) (*Repository, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RepositoryCreate) SaveX(ctx context.Context) *Repository {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepositoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepositoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RepositoryCreate) defaults() {
	if _, ok := _c.mutation.Stars(); !ok {
		v := repository.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.Forks(); !ok {
		v := repository.DefaultForks
		_c.mutation.SetForks(v)
	}
	if _, ok := _c.mutation.OpenIssues(); !ok {
		v := repository.DefaultOpenIssues
		_c.mutation.SetOpenIssues(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := repository.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.IsFork(); !ok {
		v := repository.DefaultIsFork
		_c.mutation.SetIsFork(v)
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		v := repository.DefaultDiscoveredAt()
		_c.mutation.SetDiscoveredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RepositoryCreate) check() error {
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "Repository.owner"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Repository.name"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Repository.full_name"`)}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "Repository.stars"`)}
	}
	if v, ok := _c.mutation.Stars(); ok {
		if err := repository.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "Repository.stars": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Forks(); !ok {
		return &ValidationError{Name: "forks", err: errors.New(`ent: missing required field "Repository.forks"`)}
	}
	if v, ok := _c.mutation.Forks(); ok {
		if err := repository.ForksValidator(v); err != nil {
			return &ValidationError{Name: "forks", err: fmt.Errorf(`ent: validator failed for field "Repository.forks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OpenIssues(); !ok {
		return &ValidationError{Name: "open_issues", err: errors.New(`ent: missing required field "Repository.open_issues"`)}
	}
	if v, ok := _c.mutation.OpenIssues(); ok {
		if err := repository.OpenIssuesValidator(v); err != nil {
			return &ValidationError{Name: "open_issues", err: fmt.Errorf(`ent: validator failed for field "Repository.open_issues": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Repository.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Repository.updated_at"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`ent: missing required field "Repository.is_archived"`)}
	}
	if _, ok := _c.mutation.IsFork(); !ok {
		return &ValidationError{Name: "is_fork", err: errors.New(`ent: missing required field "Repository.is_fork"`)}
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		return &ValidationError{Name: "discovered_at", err: errors.New(`ent: missing required field "Repository.discovered_at"`)}
	}
	return nil
}

func (_c *RepositoryCreate) sqlSave(ctx context.Context) (*Repository, error) {
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
			return nil, fmt.Errorf("unexpected Repository.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RepositoryCreate) createSpec() (*Repository, *sqlgraph.CreateSpec) {
	var (
		_node = &Repository{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(repository.Table, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(repository.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(repository.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(repository.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(repository.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.Forks(); ok {
		_spec.SetField(repository.FieldForks, field.TypeInt, value)
		_node.Forks = value
	}
	if value, ok := _c.mutation.OpenIssues(); ok {
		_spec.SetField(repository.FieldOpenIssues, field.TypeInt, value)
		_node.OpenIssues = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(repository.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(repository.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(repository.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PushedAt(); ok {
		_spec.SetField(repository.FieldPushedAt, field.TypeTime, value)
		_node.PushedAt = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(repository.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.IsFork(); ok {
		_spec.SetField(repository.FieldIsFork, field.TypeBool, value)
		_node.IsFork = value
	}
	if value, ok := _c.mutation.HTMLURL(); ok {
		_spec.SetField(repository.FieldHTMLURL, field.TypeString, value)
		_node.HTMLURL = value
	}
	if value, ok := _c.mutation.DefaultBranch(); ok {
		_spec.SetField(repository.FieldDefaultBranch, field.TypeString, value)
		_node.DefaultBranch = value
	}
	if value, ok := _c.mutation.DiscoveredAt(); ok {
		_spec.SetField(repository.FieldDiscoveredAt, field.TypeTime, value)
		_node.DiscoveredAt = value
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   repository.SnapshotsTable,
			Columns: []string{repository.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metricsnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TierAssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   repository.TierAssignmentTable,
			Columns: []string{repository.TierAssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tierassignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   repository.AnalysesTable,
			Columns: []string{repository.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   repository.AlertsTable,
			Columns: []string{repository.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContributorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   repository.ContributorsTable,
			Columns: []string{repository.ContributorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contributor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RepositoryCreateBulk is the builder for creating many Repository entities in bulk.
type RepositoryCreateBulk struct {
	config
	err      error
	builders []*RepositoryCreate
}

// Save creates the Repository entities in the database.
func (_c *RepositoryCreateBulk) Save(ctx context.Context) ([]*Repository, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Repository, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RepositoryMutation)
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
func (_c *RepositoryCreateBulk) SaveX(ctx context.Context) []*Repository {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepositoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepositoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
