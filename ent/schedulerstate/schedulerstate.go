// Code generated by ent, DO NOT EDIT.

package schedulerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedulerstate type in the database.
	Label = "scheduler_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scheduler_id"
	// FieldNextTick holds the string denoting the next_tick field in the database.
	FieldNextTick = "next_tick"
	// FieldLastCycleType holds the string denoting the last_cycle_type field in the database.
	FieldLastCycleType = "last_cycle_type"
	// FieldLastCycleAt holds the string denoting the last_cycle_at field in the database.
	FieldLastCycleAt = "last_cycle_at"
	// FieldLastCycleError holds the string denoting the last_cycle_error field in the database.
	FieldLastCycleError = "last_cycle_error"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the schedulerstate in the database.
	Table = "scheduler_states"
)

// Columns holds all SQL columns for schedulerstate fields.
var Columns = []string{
	FieldID,
	FieldNextTick,
	FieldLastCycleType,
	FieldLastCycleAt,
	FieldLastCycleError,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SchedulerState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNextTick orders the results by the next_tick field.
func ByNextTick(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextTick, opts...).ToFunc()
}

// ByLastCycleType orders the results by the last_cycle_type field.
func ByLastCycleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCycleType, opts...).ToFunc()
}

// ByLastCycleAt orders the results by the last_cycle_at field.
func ByLastCycleAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCycleAt, opts...).ToFunc()
}

// ByLastCycleError orders the results by the last_cycle_error field.
func ByLastCycleError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCycleError, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
