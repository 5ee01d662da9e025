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
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/predicate"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// RepositoryUpdate is the builder for updating Repository entities.
type RepositoryUpdate struct {
	config
	hooks    []Hook
	mutation *RepositoryMutation
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdate) Where(ps ...predicate.Repository) *RepositoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *RepositoryUpdate) SetOwner(v string) *RepositoryUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableOwner(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RepositoryUpdate) SetName(v string) *RepositoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableName(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RepositoryUpdate) SetFullName(v string) *RepositoryUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableFullName(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RepositoryUpdate) SetDescription(v string) *RepositoryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableDescription(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RepositoryUpdate) ClearDescription() *RepositoryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStars sets the "stars" field.
func (_u *RepositoryUpdate) SetStars(v int) *RepositoryUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableStars(v *int) *RepositoryUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *RepositoryUpdate) AddStars(v int) *RepositoryUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// SetForks sets the "forks" field.
func (_u *RepositoryUpdate) SetForks(v int) *RepositoryUpdate {
	_u.mutation.ResetForks()
	_u.mutation.SetForks(v)
	return _u
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableForks(v *int) *RepositoryUpdate {
	if v != nil {
		_u.SetForks(*v)
	}
	return _u
}

// AddForks adds value to the "forks" field.
func (_u *RepositoryUpdate) AddForks(v int) *RepositoryUpdate {
	_u.mutation.AddForks(v)
	return _u
}

// SetOpenIssues sets the "open_issues" field.
func (_u *RepositoryUpdate) SetOpenIssues(v int) *RepositoryUpdate {
	_u.mutation.ResetOpenIssues()
	_u.mutation.SetOpenIssues(v)
	return _u
}

// SetNillableOpenIssues sets the "open_issues" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableOpenIssues(v *int) *RepositoryUpdate {
	if v != nil {
		_u.SetOpenIssues(*v)
	}
	return _u
}

// AddOpenIssues adds value to the "open_issues" field.
func (_u *RepositoryUpdate) AddOpenIssues(v int) *RepositoryUpdate {
	_u.mutation.AddOpenIssues(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RepositoryUpdate) SetLanguage(v string) *RepositoryUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLanguage(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *RepositoryUpdate) ClearLanguage() *RepositoryUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *RepositoryUpdate) SetTopics(v []string) *RepositoryUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *RepositoryUpdate) AppendTopics(v []string) *RepositoryUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *RepositoryUpdate) ClearTopics() *RepositoryUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RepositoryUpdate) SetCreatedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableCreatedAt(v *time.Time) *RepositoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepositoryUpdate) SetUpdatedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableUpdatedAt(v *time.Time) *RepositoryUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetPushedAt sets the "pushed_at" field.
func (_u *RepositoryUpdate) SetPushedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetPushedAt(v)
	return _u
}

// SetNillablePushedAt sets the "pushed_at" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillablePushedAt(v *time.Time) *RepositoryUpdate {
	if v != nil {
		_u.SetPushedAt(*v)
	}
	return _u
}

// ClearPushedAt clears the value of the "pushed_at" field.
func (_u *RepositoryUpdate) ClearPushedAt() *RepositoryUpdate {
	_u.mutation.ClearPushedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *RepositoryUpdate) SetIsArchived(v bool) *RepositoryUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableIsArchived(v *bool) *RepositoryUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetIsFork sets the "is_fork" field.
func (_u *RepositoryUpdate) SetIsFork(v bool) *RepositoryUpdate {
	_u.mutation.SetIsFork(v)
	return _u
}

// SetNillableIsFork sets the "is_fork" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableIsFork(v *bool) *RepositoryUpdate {
	if v != nil {
		_u.SetIsFork(*v)
	}
	return _u
}

// SetHTMLURL sets the "html_url" field.
func (_u *RepositoryUpdate) SetHTMLURL(v string) *RepositoryUpdate {
	_u.mutation.SetHTMLURL(v)
	return _u
}

// SetNillableHTMLURL sets the "html_url" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableHTMLURL(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetHTMLURL(*v)
	}
	return _u
}

// ClearHTMLURL clears the value of the "html_url" field.
func (_u *RepositoryUpdate) ClearHTMLURL() *RepositoryUpdate {
	_u.mutation.ClearHTMLURL()
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *RepositoryUpdate) SetDefaultBranch(v string) *RepositoryUpdate {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableDefaultBranch(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// ClearDefaultBranch clears the value of the "default_branch" field.
func (_u *RepositoryUpdate) ClearDefaultBranch() *RepositoryUpdate {
	_u.mutation.ClearDefaultBranch()
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the MetricSnapshot entity by IDs.
func (_u *RepositoryUpdate) AddSnapshotIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the MetricSnapshot entity.
func (_u *RepositoryUpdate) AddSnapshots(v ...*MetricSnapshot) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// SetTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by ID.
func (_u *RepositoryUpdate) SetTierAssignmentID(id string) *RepositoryUpdate {
	_u.mutation.SetTierAssignmentID(id)
	return _u
}

// SetNillableTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by ID if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableTierAssignmentID(id *string) *RepositoryUpdate {
	if id != nil {
		_u = _u.SetTierAssignmentID(*id)
	}
	return _u
}

// SetTierAssignment sets the "tier_assignment" edge to the TierAssignment entity.
func (_u *RepositoryUpdate) SetTierAssignment(v *TierAssignment) *RepositoryUpdate {
	return _u.SetTierAssignmentID(v.ID)
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *RepositoryUpdate) AddAnalysisIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *RepositoryUpdate) AddAnalyses(v ...*Analysis) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *RepositoryUpdate) AddAlertIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *RepositoryUpdate) AddAlerts(v ...*Alert) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// AddContributorIDs adds the "contributors" edge to the Contributor entity by IDs.
func (_u *RepositoryUpdate) AddContributorIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.AddContributorIDs(ids...)
	return _u
}

// AddContributors adds the "contributors" edges to the Contributor entity.
func (_u *RepositoryUpdate) AddContributors(v ...*Contributor) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContributorIDs(ids...)
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdate) Mutation() *RepositoryMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the MetricSnapshot entity.
func (_u *RepositoryUpdate) ClearSnapshots() *RepositoryUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to MetricSnapshot entities by IDs.
func (_u *RepositoryUpdate) RemoveSnapshotIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to MetricSnapshot entities.
func (_u *RepositoryUpdate) RemoveSnapshots(v ...*MetricSnapshot) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearTierAssignment clears the "tier_assignment" edge to the TierAssignment entity.
func (_u *RepositoryUpdate) ClearTierAssignment() *RepositoryUpdate {
	_u.mutation.ClearTierAssignment()
	return _u
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *RepositoryUpdate) ClearAnalyses() *RepositoryUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *RepositoryUpdate) RemoveAnalysisIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *RepositoryUpdate) RemoveAnalyses(v ...*Analysis) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *RepositoryUpdate) ClearAlerts() *RepositoryUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *RepositoryUpdate) RemoveAlertIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *RepositoryUpdate) RemoveAlerts(v ...*Alert) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearContributors clears all "contributors" edges to the Contributor entity.
func (_u *RepositoryUpdate) ClearContributors() *RepositoryUpdate {
	_u.mutation.ClearContributors()
	return _u
}

// RemoveContributorIDs removes the "contributors" edge to Contributor entities by IDs.
func (_u *RepositoryUpdate) RemoveContributorIDs(ids ...string) *RepositoryUpdate {
	_u.mutation.RemoveContributorIDs(ids...)
	return _u
}

// RemoveContributors removes "contributors" edges to Contributor entities.
func (_u *RepositoryUpdate) RemoveContributors(v ...*Contributor) *RepositoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContributorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepositoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepositoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepositoryUpdate) check() error {
	if v, ok := _u.mutation.Stars(); ok {
		if err := repository.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "Repository.stars": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Forks(); ok {
		if err := repository.ForksValidator(v); err != nil {
			return &ValidationError{Name: "forks", err: fmt.Errorf(`ent: validator failed for field "Repository.forks": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpenIssues(); ok {
		if err := repository.OpenIssuesValidator(v); err != nil {
			return &ValidationError{Name: "open_issues", err: fmt.Errorf(`ent: validator failed for field "Repository.open_issues": %w`, err)}
		}
	}
	return nil
}

func (_u *RepositoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(repository.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(repository.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(repository.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(repository.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(repository.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(repository.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forks(); ok {
		_spec.SetField(repository.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForks(); ok {
		_spec.AddField(repository.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenIssues(); ok {
		_spec.SetField(repository.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpenIssues(); ok {
		_spec.AddField(repository.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(repository.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(repository.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(repository.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, repository.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(repository.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(repository.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PushedAt(); ok {
		_spec.SetField(repository.FieldPushedAt, field.TypeTime, value)
	}
	if _u.mutation.PushedAtCleared() {
		_spec.ClearField(repository.FieldPushedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(repository.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFork(); ok {
		_spec.SetField(repository.FieldIsFork, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HTMLURL(); ok {
		_spec.SetField(repository.FieldHTMLURL, field.TypeString, value)
	}
	if _u.mutation.HTMLURLCleared() {
		_spec.ClearField(repository.FieldHTMLURL, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(repository.FieldDefaultBranch, field.TypeString, value)
	}
	if _u.mutation.DefaultBranchCleared() {
		_spec.ClearField(repository.FieldDefaultBranch, field.TypeString)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TierAssignmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TierAssignmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContributorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContributorsIDs(); len(nodes) > 0 && !_u.mutation.ContributorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContributorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepositoryUpdateOne is the builder for updating a single Repository entity.
type RepositoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepositoryMutation
}

// SetOwner sets the "owner" field.
func (_u *RepositoryUpdateOne) SetOwner(v string) *RepositoryUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableOwner(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RepositoryUpdateOne) SetName(v string) *RepositoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableName(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RepositoryUpdateOne) SetFullName(v string) *RepositoryUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableFullName(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RepositoryUpdateOne) SetDescription(v string) *RepositoryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableDescription(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RepositoryUpdateOne) ClearDescription() *RepositoryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStars sets the "stars" field.
func (_u *RepositoryUpdateOne) SetStars(v int) *RepositoryUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableStars(v *int) *RepositoryUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *RepositoryUpdateOne) AddStars(v int) *RepositoryUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// SetForks sets the "forks" field.
func (_u *RepositoryUpdateOne) SetForks(v int) *RepositoryUpdateOne {
	_u.mutation.ResetForks()
	_u.mutation.SetForks(v)
	return _u
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableForks(v *int) *RepositoryUpdateOne {
	if v != nil {
		_u.SetForks(*v)
	}
	return _u
}

// AddForks adds value to the "forks" field.
func (_u *RepositoryUpdateOne) AddForks(v int) *RepositoryUpdateOne {
	_u.mutation.AddForks(v)
	return _u
}

// SetOpenIssues sets the "open_issues" field.
func (_u *RepositoryUpdateOne) SetOpenIssues(v int) *RepositoryUpdateOne {
	_u.mutation.ResetOpenIssues()
	_u.mutation.SetOpenIssues(v)
	return _u
}

// SetNillableOpenIssues sets the "open_issues" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableOpenIssues(v *int) *RepositoryUpdateOne {
	if v != nil {
		_u.SetOpenIssues(*v)
	}
	return _u
}

// AddOpenIssues adds value to the "open_issues" field.
func (_u *RepositoryUpdateOne) AddOpenIssues(v int) *RepositoryUpdateOne {
	_u.mutation.AddOpenIssues(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RepositoryUpdateOne) SetLanguage(v string) *RepositoryUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLanguage(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *RepositoryUpdateOne) ClearLanguage() *RepositoryUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *RepositoryUpdateOne) SetTopics(v []string) *RepositoryUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *RepositoryUpdateOne) AppendTopics(v []string) *RepositoryUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *RepositoryUpdateOne) ClearTopics() *RepositoryUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RepositoryUpdateOne) SetCreatedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableCreatedAt(v *time.Time) *RepositoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepositoryUpdateOne) SetUpdatedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableUpdatedAt(v *time.Time) *RepositoryUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetPushedAt sets the "pushed_at" field.
func (_u *RepositoryUpdateOne) SetPushedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetPushedAt(v)
	return _u
}

// SetNillablePushedAt sets the "pushed_at" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillablePushedAt(v *time.Time) *RepositoryUpdateOne {
	if v != nil {
		_u.SetPushedAt(*v)
	}
	return _u
}

// ClearPushedAt clears the value of the "pushed_at" field.
func (_u *RepositoryUpdateOne) ClearPushedAt() *RepositoryUpdateOne {
	_u.mutation.ClearPushedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *RepositoryUpdateOne) SetIsArchived(v bool) *RepositoryUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableIsArchived(v *bool) *RepositoryUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetIsFork sets the "is_fork" field.
func (_u *RepositoryUpdateOne) SetIsFork(v bool) *RepositoryUpdateOne {
	_u.mutation.SetIsFork(v)
	return _u
}

// SetNillableIsFork sets the "is_fork" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableIsFork(v *bool) *RepositoryUpdateOne {
	if v != nil {
		_u.SetIsFork(*v)
	}
	return _u
}

// SetHTMLURL sets the "html_url" field.
func (_u *RepositoryUpdateOne) SetHTMLURL(v string) *RepositoryUpdateOne {
	_u.mutation.SetHTMLURL(v)
	return _u
}

// SetNillableHTMLURL sets the "html_url" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableHTMLURL(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetHTMLURL(*v)
	}
	return _u
}

// ClearHTMLURL clears the value of the "html_url" field.
func (_u *RepositoryUpdateOne) ClearHTMLURL() *RepositoryUpdateOne {
	_u.mutation.ClearHTMLURL()
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *RepositoryUpdateOne) SetDefaultBranch(v string) *RepositoryUpdateOne {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableDefaultBranch(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// ClearDefaultBranch clears the value of the "default_branch" field.
func (_u *RepositoryUpdateOne) ClearDefaultBranch() *RepositoryUpdateOne {
	_u.mutation.ClearDefaultBranch()
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the MetricSnapshot entity by IDs.
func (_u *RepositoryUpdateOne) AddSnapshotIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the MetricSnapshot entity.
func (_u *RepositoryUpdateOne) AddSnapshots(v ...*MetricSnapshot) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// SetTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by ID.
func (_u *RepositoryUpdateOne) SetTierAssignmentID(id string) *RepositoryUpdateOne {
	_u.mutation.SetTierAssignmentID(id)
	return _u
}

// SetNillableTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by ID if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableTierAssignmentID(id *string) *RepositoryUpdateOne {
	if id != nil {
		_u = _u.SetTierAssignmentID(*id)
	}
	return _u
}

// SetTierAssignment sets the "tier_assignment" edge to the TierAssignment entity.
func (_u *RepositoryUpdateOne) SetTierAssignment(v *TierAssignment) *RepositoryUpdateOne {
	return _u.SetTierAssignmentID(v.ID)
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *RepositoryUpdateOne) AddAnalysisIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *RepositoryUpdateOne) AddAnalyses(v ...*Analysis) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *RepositoryUpdateOne) AddAlertIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *RepositoryUpdateOne) AddAlerts(v ...*Alert) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// AddContributorIDs adds the "contributors" edge to the Contributor entity by IDs.
func (_u *RepositoryUpdateOne) AddContributorIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.AddContributorIDs(ids...)
	return _u
}

// AddContributors adds the "contributors" edges to the Contributor entity.
func (_u *RepositoryUpdateOne) AddContributors(v ...*Contributor) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContributorIDs(ids...)
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdateOne) Mutation() *RepositoryMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the MetricSnapshot entity.
func (_u *RepositoryUpdateOne) ClearSnapshots() *RepositoryUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to MetricSnapshot entities by IDs.
func (_u *RepositoryUpdateOne) RemoveSnapshotIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to MetricSnapshot entities.
func (_u *RepositoryUpdateOne) RemoveSnapshots(v ...*MetricSnapshot) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearTierAssignment clears the "tier_assignment" edge to the TierAssignment entity.
func (_u *RepositoryUpdateOne) ClearTierAssignment() *RepositoryUpdateOne {
	_u.mutation.ClearTierAssignment()
	return _u
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *RepositoryUpdateOne) ClearAnalyses() *RepositoryUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *RepositoryUpdateOne) RemoveAnalysisIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *RepositoryUpdateOne) RemoveAnalyses(v ...*Analysis) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *RepositoryUpdateOne) ClearAlerts() *RepositoryUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *RepositoryUpdateOne) RemoveAlertIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *RepositoryUpdateOne) RemoveAlerts(v ...*Alert) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearContributors clears all "contributors" edges to the Contributor entity.
func (_u *RepositoryUpdateOne) ClearContributors() *RepositoryUpdateOne {
	_u.mutation.ClearContributors()
	return _u
}

// RemoveContributorIDs removes the "contributors" edge to Contributor entities by IDs.
func (_u *RepositoryUpdateOne) RemoveContributorIDs(ids ...string) *RepositoryUpdateOne {
	_u.mutation.RemoveContributorIDs(ids...)
	return _u
}

// RemoveContributors removes "contributors" edges to Contributor entities.
func (_u *RepositoryUpdateOne) RemoveContributors(v ...*Contributor) *RepositoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContributorIDs(ids...)
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdateOne) Where(ps ...predicate.Repository) *RepositoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepositoryUpdateOne) Select(field string, fields ...string) *RepositoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Repository entity.
func (_u *RepositoryUpdateOne) Save(ctx context.Context) (*Repository, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdateOne) SaveX(ctx context.Context) *Repository {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepositoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepositoryUpdateOne) check() error {
	if v, ok := _u.mutation.Stars(); ok {
		if err := repository.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "Repository.stars": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Forks(); ok {
		if err := repository.ForksValidator(v); err != nil {
			return &ValidationError{Name: "forks", err: fmt.Errorf(`ent: validator failed for field "Repository.forks": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpenIssues(); ok {
		if err := repository.OpenIssuesValidator(v); err != nil {
			return &ValidationError{Name: "open_issues", err: fmt.Errorf(`ent: validator failed for field "Repository.open_issues": %w`, err)}
		}
	}
	return nil
}

func (_u *RepositoryUpdateOne) sqlSave(ctx context.Context) (_node *Repository, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Repository.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repository.FieldID)
		for _, f := range fields {
			if !repository.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repository.FieldID {
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
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(repository.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(repository.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(repository.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(repository.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(repository.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(repository.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forks(); ok {
		_spec.SetField(repository.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForks(); ok {
		_spec.AddField(repository.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenIssues(); ok {
		_spec.SetField(repository.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpenIssues(); ok {
		_spec.AddField(repository.FieldOpenIssues, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(repository.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(repository.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(repository.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, repository.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(repository.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(repository.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PushedAt(); ok {
		_spec.SetField(repository.FieldPushedAt, field.TypeTime, value)
	}
	if _u.mutation.PushedAtCleared() {
		_spec.ClearField(repository.FieldPushedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(repository.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFork(); ok {
		_spec.SetField(repository.FieldIsFork, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HTMLURL(); ok {
		_spec.SetField(repository.FieldHTMLURL, field.TypeString, value)
	}
	if _u.mutation.HTMLURLCleared() {
		_spec.ClearField(repository.FieldHTMLURL, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(repository.FieldDefaultBranch, field.TypeString, value)
	}
	if _u.mutation.DefaultBranchCleared() {
		_spec.ClearField(repository.FieldDefaultBranch, field.TypeString)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TierAssignmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TierAssignmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContributorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContributorsIDs(); len(nodes) > 0 && !_u.mutation.ContributorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContributorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Repository{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
