// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/schedulerstate"
)

// SchedulerState is the model entity for the SchedulerState schema.
type SchedulerState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// NextTick holds the value of the "next_tick" field.
	NextTick time.Time `json:"next_tick,omitempty"`
	// hourly or sweep
	LastCycleType string `json:"last_cycle_type,omitempty"`
	// LastCycleAt holds the value of the "last_cycle_at" field.
	LastCycleAt *time.Time `json:"last_cycle_at,omitempty"`
	// LastCycleError holds the value of the "last_cycle_error" field.
	LastCycleError string `json:"last_cycle_error,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchedulerState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedulerstate.FieldID, schedulerstate.FieldLastCycleType, schedulerstate.FieldLastCycleError:
			values[i] = new(sql.NullString)
		case schedulerstate.FieldNextTick, schedulerstate.FieldLastCycleAt, schedulerstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchedulerState fields.
func (_m *SchedulerState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedulerstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schedulerstate.FieldNextTick:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_tick", values[i])
			} else if value.Valid {
				_m.NextTick = value.Time
			}
		case schedulerstate.FieldLastCycleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_cycle_type", values[i])
			} else if value.Valid {
				_m.LastCycleType = value.String
			}
		case schedulerstate.FieldLastCycleAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_cycle_at", values[i])
			} else if value.Valid {
				_m.LastCycleAt = new(time.Time)
				*_m.LastCycleAt = value.Time
			}
		case schedulerstate.FieldLastCycleError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_cycle_error", values[i])
			} else if value.Valid {
				_m.LastCycleError = value.String
			}
		case schedulerstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchedulerState.
// This includes values selected through modifiers, order, etc.
func (_m *SchedulerState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchedulerState.
// Note that you need to call SchedulerState.Unwrap() before calling this method if this SchedulerState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchedulerState) Update() *SchedulerStateUpdateOne {
	return NewSchedulerStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchedulerState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchedulerState) Unwrap() *SchedulerState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchedulerState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchedulerState) String() string {
	var builder strings.Builder
	builder.WriteString("SchedulerState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("next_tick=")
	builder.WriteString(_m.NextTick.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_cycle_type=")
	builder.WriteString(_m.LastCycleType)
	builder.WriteString(", ")
	if v := _m.LastCycleAt; v != nil {
		builder.WriteString("last_cycle_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_cycle_error=")
	builder.WriteString(_m.LastCycleError)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchedulerStates is a parsable slice of SchedulerState.
type SchedulerStates []*SchedulerState
