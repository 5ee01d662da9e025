// Code generated by ent, DO NOT EDIT.

package schedulerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldContainsFold(FieldID, id))
}

// NextTick applies equality check predicate on the "next_tick" field. It's identical to NextTickEQ.
func NextTick(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldNextTick, v))
}

// LastCycleType applies equality check predicate on the "last_cycle_type" field. It's identical to LastCycleTypeEQ.
func LastCycleType(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldLastCycleType, v))
}

// LastCycleAt applies equality check predicate on the "last_cycle_at" field. It's identical to LastCycleAtEQ.
func LastCycleAt(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldLastCycleAt, v))
}

// LastCycleError applies equality check predicate on the "last_cycle_error" field. It's identical to LastCycleErrorEQ.
func LastCycleError(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldLastCycleError, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// NextTickEQ applies the EQ predicate on the "next_tick" field.
func NextTickEQ(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldNextTick, v))
}

// NextTickNEQ applies the NEQ predicate on the "next_tick" field.
func NextTickNEQ(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNEQ(FieldNextTick, v))
}

// NextTickIn applies the In predicate on the "next_tick" field.
func NextTickIn(vs ...time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIn(FieldNextTick, vs...))
}

// NextTickNotIn applies the NotIn predicate on the "next_tick" field.
func NextTickNotIn(vs ...time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotIn(FieldNextTick, vs...))
}

// NextTickGT applies the GT predicate on the "next_tick" field.
func NextTickGT(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGT(FieldNextTick, v))
}

// NextTickGTE applies the GTE predicate on the "next_tick" field.
func NextTickGTE(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGTE(FieldNextTick, v))
}

// NextTickLT applies the LT predicate on the "next_tick" field.
func NextTickLT(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLT(FieldNextTick, v))
}

// NextTickLTE applies the LTE predicate on the "next_tick" field.
func NextTickLTE(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLTE(FieldNextTick, v))
}

// LastCycleTypeEQ applies the EQ predicate on the "last_cycle_type" field.
func LastCycleTypeEQ(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldLastCycleType, v))
}

// LastCycleTypeNEQ applies the NEQ predicate on the "last_cycle_type" field.
func LastCycleTypeNEQ(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNEQ(FieldLastCycleType, v))
}

// LastCycleTypeIn applies the In predicate on the "last_cycle_type" field.
func LastCycleTypeIn(vs ...string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIn(FieldLastCycleType, vs...))
}

// LastCycleTypeNotIn applies the NotIn predicate on the "last_cycle_type" field.
func LastCycleTypeNotIn(vs ...string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotIn(FieldLastCycleType, vs...))
}

// LastCycleTypeGT applies the GT predicate on the "last_cycle_type" field.
func LastCycleTypeGT(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGT(FieldLastCycleType, v))
}

// LastCycleTypeGTE applies the GTE predicate on the "last_cycle_type" field.
func LastCycleTypeGTE(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGTE(FieldLastCycleType, v))
}

// LastCycleTypeLT applies the LT predicate on the "last_cycle_type" field.
func LastCycleTypeLT(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLT(FieldLastCycleType, v))
}

// LastCycleTypeLTE applies the LTE predicate on the "last_cycle_type" field.
func LastCycleTypeLTE(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLTE(FieldLastCycleType, v))
}

// LastCycleTypeContains applies the Contains predicate on the "last_cycle_type" field.
func LastCycleTypeContains(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldContains(FieldLastCycleType, v))
}

// LastCycleTypeHasPrefix applies the HasPrefix predicate on the "last_cycle_type" field.
func LastCycleTypeHasPrefix(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldHasPrefix(FieldLastCycleType, v))
}

// LastCycleTypeHasSuffix applies the HasSuffix predicate on the "last_cycle_type" field.
func LastCycleTypeHasSuffix(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldHasSuffix(FieldLastCycleType, v))
}

// LastCycleTypeIsNil applies the IsNil predicate on the "last_cycle_type" field.
func LastCycleTypeIsNil() predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIsNull(FieldLastCycleType))
}

// LastCycleTypeNotNil applies the NotNil predicate on the "last_cycle_type" field.
func LastCycleTypeNotNil() predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotNull(FieldLastCycleType))
}

// LastCycleTypeEqualFold applies the EqualFold predicate on the "last_cycle_type" field.
func LastCycleTypeEqualFold(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEqualFold(FieldLastCycleType, v))
}

// LastCycleTypeContainsFold applies the ContainsFold predicate on the "last_cycle_type" field.
func LastCycleTypeContainsFold(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldContainsFold(FieldLastCycleType, v))
}

// LastCycleAtEQ applies the EQ predicate on the "last_cycle_at" field.
func LastCycleAtEQ(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldLastCycleAt, v))
}

// LastCycleAtNEQ applies the NEQ predicate on the "last_cycle_at" field.
func LastCycleAtNEQ(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNEQ(FieldLastCycleAt, v))
}

// LastCycleAtIn applies the In predicate on the "last_cycle_at" field.
func LastCycleAtIn(vs ...time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIn(FieldLastCycleAt, vs...))
}

// LastCycleAtNotIn applies the NotIn predicate on the "last_cycle_at" field.
func LastCycleAtNotIn(vs ...time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotIn(FieldLastCycleAt, vs...))
}

// LastCycleAtGT applies the GT predicate on the "last_cycle_at" field.
func LastCycleAtGT(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGT(FieldLastCycleAt, v))
}

// LastCycleAtGTE applies the GTE predicate on the "last_cycle_at" field.
func LastCycleAtGTE(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGTE(FieldLastCycleAt, v))
}

// LastCycleAtLT applies the LT predicate on the "last_cycle_at" field.
func LastCycleAtLT(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLT(FieldLastCycleAt, v))
}

// LastCycleAtLTE applies the LTE predicate on the "last_cycle_at" field.
func LastCycleAtLTE(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLTE(FieldLastCycleAt, v))
}

// LastCycleAtIsNil applies the IsNil predicate on the "last_cycle_at" field.
func LastCycleAtIsNil() predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIsNull(FieldLastCycleAt))
}

// LastCycleAtNotNil applies the NotNil predicate on the "last_cycle_at" field.
func LastCycleAtNotNil() predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotNull(FieldLastCycleAt))
}

// LastCycleErrorEQ applies the EQ predicate on the "last_cycle_error" field.
func LastCycleErrorEQ(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldLastCycleError, v))
}

// LastCycleErrorNEQ applies the NEQ predicate on the "last_cycle_error" field.
func LastCycleErrorNEQ(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNEQ(FieldLastCycleError, v))
}

// LastCycleErrorIn applies the In predicate on the "last_cycle_error" field.
func LastCycleErrorIn(vs ...string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIn(FieldLastCycleError, vs...))
}

// LastCycleErrorNotIn applies the NotIn predicate on the "last_cycle_error" field.
func LastCycleErrorNotIn(vs ...string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotIn(FieldLastCycleError, vs...))
}

// LastCycleErrorGT applies the GT predicate on the "last_cycle_error" field.
func LastCycleErrorGT(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGT(FieldLastCycleError, v))
}

// LastCycleErrorGTE applies the GTE predicate on the "last_cycle_error" field.
func LastCycleErrorGTE(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGTE(FieldLastCycleError, v))
}

// LastCycleErrorLT applies the LT predicate on the "last_cycle_error" field.
func LastCycleErrorLT(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLT(FieldLastCycleError, v))
}

// LastCycleErrorLTE applies the LTE predicate on the "last_cycle_error" field.
func LastCycleErrorLTE(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLTE(FieldLastCycleError, v))
}

// LastCycleErrorContains applies the Contains predicate on the "last_cycle_error" field.
func LastCycleErrorContains(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldContains(FieldLastCycleError, v))
}

// LastCycleErrorHasPrefix applies the HasPrefix predicate on the "last_cycle_error" field.
func LastCycleErrorHasPrefix(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldHasPrefix(FieldLastCycleError, v))
}

// LastCycleErrorHasSuffix applies the HasSuffix predicate on the "last_cycle_error" field.
func LastCycleErrorHasSuffix(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldHasSuffix(FieldLastCycleError, v))
}

// LastCycleErrorIsNil applies the IsNil predicate on the "last_cycle_error" field.
func LastCycleErrorIsNil() predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIsNull(FieldLastCycleError))
}

// LastCycleErrorNotNil applies the NotNil predicate on the "last_cycle_error" field.
func LastCycleErrorNotNil() predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotNull(FieldLastCycleError))
}

// LastCycleErrorEqualFold applies the EqualFold predicate on the "last_cycle_error" field.
func LastCycleErrorEqualFold(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEqualFold(FieldLastCycleError, v))
}

// LastCycleErrorContainsFold applies the ContainsFold predicate on the "last_cycle_error" field.
func LastCycleErrorContainsFold(v string) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldContainsFold(FieldLastCycleError, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SchedulerState {
	return predicate.SchedulerState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchedulerState) predicate.SchedulerState {
	return predicate.SchedulerState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchedulerState) predicate.SchedulerState {
	return predicate.SchedulerState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchedulerState) predicate.SchedulerState {
	return predicate.SchedulerState(sql.NotPredicates(p))
}
