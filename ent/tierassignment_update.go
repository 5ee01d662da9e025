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
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// TierAssignmentUpdate is the builder for updating TierAssignment entities.
type TierAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *TierAssignmentMutation
}

// Where appends a list predicates to the TierAssignmentUpdate builder.
func (_u *TierAssignmentUpdate) Where(ps ...predicate.TierAssignment) *TierAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTier sets the "tier" field.
func (_u *TierAssignmentUpdate) SetTier(v int) *TierAssignmentUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableTier(v *int) *TierAssignmentUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *TierAssignmentUpdate) AddTier(v int) *TierAssignmentUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetStars sets the "stars" field.
func (_u *TierAssignmentUpdate) SetStars(v int) *TierAssignmentUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableStars(v *int) *TierAssignmentUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *TierAssignmentUpdate) AddStars(v int) *TierAssignmentUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// SetGrowthVelocity sets the "growth_velocity" field.
func (_u *TierAssignmentUpdate) SetGrowthVelocity(v float64) *TierAssignmentUpdate {
	_u.mutation.ResetGrowthVelocity()
	_u.mutation.SetGrowthVelocity(v)
	return _u
}

// SetNillableGrowthVelocity sets the "growth_velocity" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableGrowthVelocity(v *float64) *TierAssignmentUpdate {
	if v != nil {
		_u.SetGrowthVelocity(*v)
	}
	return _u
}

// AddGrowthVelocity adds value to the "growth_velocity" field.
func (_u *TierAssignmentUpdate) AddGrowthVelocity(v float64) *TierAssignmentUpdate {
	_u.mutation.AddGrowthVelocity(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *TierAssignmentUpdate) SetEngagementScore(v float64) *TierAssignmentUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableEngagementScore(v *float64) *TierAssignmentUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *TierAssignmentUpdate) AddEngagementScore(v float64) *TierAssignmentUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetScanPriority sets the "scan_priority" field.
func (_u *TierAssignmentUpdate) SetScanPriority(v float64) *TierAssignmentUpdate {
	_u.mutation.ResetScanPriority()
	_u.mutation.SetScanPriority(v)
	return _u
}

// SetNillableScanPriority sets the "scan_priority" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableScanPriority(v *float64) *TierAssignmentUpdate {
	if v != nil {
		_u.SetScanPriority(*v)
	}
	return _u
}

// AddScanPriority adds value to the "scan_priority" field.
func (_u *TierAssignmentUpdate) AddScanPriority(v float64) *TierAssignmentUpdate {
	_u.mutation.AddScanPriority(v)
	return _u
}

// SetLastDeepScan sets the "last_deep_scan" field.
func (_u *TierAssignmentUpdate) SetLastDeepScan(v time.Time) *TierAssignmentUpdate {
	_u.mutation.SetLastDeepScan(v)
	return _u
}

// SetNillableLastDeepScan sets the "last_deep_scan" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableLastDeepScan(v *time.Time) *TierAssignmentUpdate {
	if v != nil {
		_u.SetLastDeepScan(*v)
	}
	return _u
}

// ClearLastDeepScan clears the value of the "last_deep_scan" field.
func (_u *TierAssignmentUpdate) ClearLastDeepScan() *TierAssignmentUpdate {
	_u.mutation.ClearLastDeepScan()
	return _u
}

// SetLastBasicScan sets the "last_basic_scan" field.
func (_u *TierAssignmentUpdate) SetLastBasicScan(v time.Time) *TierAssignmentUpdate {
	_u.mutation.SetLastBasicScan(v)
	return _u
}

// SetNillableLastBasicScan sets the "last_basic_scan" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableLastBasicScan(v *time.Time) *TierAssignmentUpdate {
	if v != nil {
		_u.SetLastBasicScan(*v)
	}
	return _u
}

// ClearLastBasicScan clears the value of the "last_basic_scan" field.
func (_u *TierAssignmentUpdate) ClearLastBasicScan() *TierAssignmentUpdate {
	_u.mutation.ClearLastBasicScan()
	return _u
}

// SetNextScanDue sets the "next_scan_due" field.
func (_u *TierAssignmentUpdate) SetNextScanDue(v time.Time) *TierAssignmentUpdate {
	_u.mutation.SetNextScanDue(v)
	return _u
}

// SetNillableNextScanDue sets the "next_scan_due" field if the given value is not nil.
func (_u *TierAssignmentUpdate) SetNillableNextScanDue(v *time.Time) *TierAssignmentUpdate {
	if v != nil {
		_u.SetNextScanDue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierAssignmentUpdate) SetUpdatedAt(v time.Time) *TierAssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TierAssignmentMutation object of the builder.
func (_u *TierAssignmentUpdate) Mutation() *TierAssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TierAssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TierAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierAssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tierassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TierAssignmentUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := tierassignment.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "TierAssignment.tier": %w`, err)}
		}
	}
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TierAssignment.repository"`)
	}
	return nil
}

func (_u *TierAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tierassignment.Table, tierassignment.Columns, sqlgraph.NewFieldSpec(tierassignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(tierassignment.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(tierassignment.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(tierassignment.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(tierassignment.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrowthVelocity(); ok {
		_spec.SetField(tierassignment.FieldGrowthVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrowthVelocity(); ok {
		_spec.AddField(tierassignment.FieldGrowthVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(tierassignment.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(tierassignment.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScanPriority(); ok {
		_spec.SetField(tierassignment.FieldScanPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScanPriority(); ok {
		_spec.AddField(tierassignment.FieldScanPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastDeepScan(); ok {
		_spec.SetField(tierassignment.FieldLastDeepScan, field.TypeTime, value)
	}
	if _u.mutation.LastDeepScanCleared() {
		_spec.ClearField(tierassignment.FieldLastDeepScan, field.TypeTime)
	}
	if value, ok := _u.mutation.LastBasicScan(); ok {
		_spec.SetField(tierassignment.FieldLastBasicScan, field.TypeTime, value)
	}
	if _u.mutation.LastBasicScanCleared() {
		_spec.ClearField(tierassignment.FieldLastBasicScan, field.TypeTime)
	}
	if value, ok := _u.mutation.NextScanDue(); ok {
		_spec.SetField(tierassignment.FieldNextScanDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tierassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tierassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TierAssignmentUpdateOne is the builder for updating a single TierAssignment entity.
type TierAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TierAssignmentMutation
}

// SetTier sets the "tier" field.
func (_u *TierAssignmentUpdateOne) SetTier(v int) *TierAssignmentUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableTier(v *int) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *TierAssignmentUpdateOne) AddTier(v int) *TierAssignmentUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetStars sets the "stars" field.
func (_u *TierAssignmentUpdateOne) SetStars(v int) *TierAssignmentUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableStars(v *int) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *TierAssignmentUpdateOne) AddStars(v int) *TierAssignmentUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// SetGrowthVelocity sets the "growth_velocity" field.
func (_u *TierAssignmentUpdateOne) SetGrowthVelocity(v float64) *TierAssignmentUpdateOne {
	_u.mutation.ResetGrowthVelocity()
	_u.mutation.SetGrowthVelocity(v)
	return _u
}

// SetNillableGrowthVelocity sets the "growth_velocity" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableGrowthVelocity(v *float64) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetGrowthVelocity(*v)
	}
	return _u
}

// AddGrowthVelocity adds value to the "growth_velocity" field.
func (_u *TierAssignmentUpdateOne) AddGrowthVelocity(v float64) *TierAssignmentUpdateOne {
	_u.mutation.AddGrowthVelocity(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *TierAssignmentUpdateOne) SetEngagementScore(v float64) *TierAssignmentUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableEngagementScore(v *float64) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *TierAssignmentUpdateOne) AddEngagementScore(v float64) *TierAssignmentUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetScanPriority sets the "scan_priority" field.
func (_u *TierAssignmentUpdateOne) SetScanPriority(v float64) *TierAssignmentUpdateOne {
	_u.mutation.ResetScanPriority()
	_u.mutation.SetScanPriority(v)
	return _u
}

// SetNillableScanPriority sets the "scan_priority" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableScanPriority(v *float64) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetScanPriority(*v)
	}
	return _u
}

// AddScanPriority adds value to the "scan_priority" field.
func (_u *TierAssignmentUpdateOne) AddScanPriority(v float64) *TierAssignmentUpdateOne {
	_u.mutation.AddScanPriority(v)
	return _u
}

// SetLastDeepScan sets the "last_deep_scan" field.
func (_u *TierAssignmentUpdateOne) SetLastDeepScan(v time.Time) *TierAssignmentUpdateOne {
	_u.mutation.SetLastDeepScan(v)
	return _u
}

// SetNillableLastDeepScan sets the "last_deep_scan" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableLastDeepScan(v *time.Time) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetLastDeepScan(*v)
	}
	return _u
}

// ClearLastDeepScan clears the value of the "last_deep_scan" field.
func (_u *TierAssignmentUpdateOne) ClearLastDeepScan() *TierAssignmentUpdateOne {
	_u.mutation.ClearLastDeepScan()
	return _u
}

// SetLastBasicScan sets the "last_basic_scan" field.
func (_u *TierAssignmentUpdateOne) SetLastBasicScan(v time.Time) *TierAssignmentUpdateOne {
	_u.mutation.SetLastBasicScan(v)
	return _u
}

// SetNillableLastBasicScan sets the "last_basic_scan" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableLastBasicScan(v *time.Time) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetLastBasicScan(*v)
	}
	return _u
}

// ClearLastBasicScan clears the value of the "last_basic_scan" field.
func (_u *TierAssignmentUpdateOne) ClearLastBasicScan() *TierAssignmentUpdateOne {
	_u.mutation.ClearLastBasicScan()
	return _u
}

// SetNextScanDue sets the "next_scan_due" field.
func (_u *TierAssignmentUpdateOne) SetNextScanDue(v time.Time) *TierAssignmentUpdateOne {
	_u.mutation.SetNextScanDue(v)
	return _u
}

// SetNillableNextScanDue sets the "next_scan_due" field if the given value is not nil.
func (_u *TierAssignmentUpdateOne) SetNillableNextScanDue(v *time.Time) *TierAssignmentUpdateOne {
	if v != nil {
		_u.SetNextScanDue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierAssignmentUpdateOne) SetUpdatedAt(v time.Time) *TierAssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TierAssignmentMutation object of the builder.
func (_u *TierAssignmentUpdateOne) Mutation() *TierAssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TierAssignmentUpdate builder.
func (_u *TierAssignmentUpdateOne) Where(ps ...predicate.TierAssignment) *TierAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TierAssignmentUpdateOne) Select(field string, fields ...string) *TierAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TierAssignment entity.
func (_u *TierAssignmentUpdateOne) Save(ctx context.Context) (*TierAssignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierAssignmentUpdateOne) SaveX(ctx context.Context) *TierAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TierAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierAssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tierassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TierAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := tierassignment.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "TierAssignment.tier": %w`, err)}
		}
	}
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TierAssignment.repository"`)
	}
	return nil
}

func (_u *TierAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *TierAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tierassignment.Table, tierassignment.Columns, sqlgraph.NewFieldSpec(tierassignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TierAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tierassignment.FieldID)
		for _, f := range fields {
			if !tierassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tierassignment.FieldID {
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
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(tierassignment.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(tierassignment.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(tierassignment.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(tierassignment.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrowthVelocity(); ok {
		_spec.SetField(tierassignment.FieldGrowthVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrowthVelocity(); ok {
		_spec.AddField(tierassignment.FieldGrowthVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(tierassignment.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(tierassignment.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScanPriority(); ok {
		_spec.SetField(tierassignment.FieldScanPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScanPriority(); ok {
		_spec.AddField(tierassignment.FieldScanPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastDeepScan(); ok {
		_spec.SetField(tierassignment.FieldLastDeepScan, field.TypeTime, value)
	}
	if _u.mutation.LastDeepScanCleared() {
		_spec.ClearField(tierassignment.FieldLastDeepScan, field.TypeTime)
	}
	if value, ok := _u.mutation.LastBasicScan(); ok {
		_spec.SetField(tierassignment.FieldLastBasicScan, field.TypeTime, value)
	}
	if _u.mutation.LastBasicScanCleared() {
		_spec.ClearField(tierassignment.FieldLastBasicScan, field.TypeTime)
	}
	if value, ok := _u.mutation.NextScanDue(); ok {
		_spec.SetField(tierassignment.FieldNextScanDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tierassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TierAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tierassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
