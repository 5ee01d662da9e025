// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/batchrun"
)

// BatchRun is the model entity for the BatchRun schema.
type BatchRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status batchrun.Status `json:"status,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed int `json:"completed,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed int `json:"failed,omitempty"`
	// Skipped holds the value of the "skipped" field.
	Skipped int `json:"skipped,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// CurrentRepo holds the value of the "current_repo" field.
	CurrentRepo string `json:"current_repo,omitempty"`
	// EstimatedCompletion holds the value of the "estimated_completion" field.
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	// Full names submitted to this batch, in order
	Repositories []string `json:"repositories,omitempty"`
	// Per-repo outcomes appended in completion order
	Results []map[string]interface{} `json:"results,omitempty"`
	// Health holds the value of the "health" field.
	Health map[string]interface{} `json:"health,omitempty"`
	// RecoveryAttempts holds the value of the "recovery_attempts" field.
	RecoveryAttempts int `json:"recovery_attempts,omitempty"`
	// CreditsEstimated holds the value of the "credits_estimated" field.
	CreditsEstimated float64 `json:"credits_estimated,omitempty"`
	// CreditsActual holds the value of the "credits_actual" field.
	CreditsActual float64 `json:"credits_actual,omitempty"`
	// CreditsLimit holds the value of the "credits_limit" field.
	CreditsLimit float64 `json:"credits_limit,omitempty"`
	// Checkpoint holds the value of the "checkpoint" field.
	Checkpoint map[string]interface{} `json:"checkpoint,omitempty"`
	// Staleness detection: no update in 5 minutes = stale
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatchRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batchrun.FieldRepositories, batchrun.FieldResults, batchrun.FieldHealth, batchrun.FieldCheckpoint:
			values[i] = new([]byte)
		case batchrun.FieldCreditsEstimated, batchrun.FieldCreditsActual, batchrun.FieldCreditsLimit:
			values[i] = new(sql.NullFloat64)
		case batchrun.FieldTotal, batchrun.FieldCompleted, batchrun.FieldFailed, batchrun.FieldSkipped, batchrun.FieldRecoveryAttempts:
			values[i] = new(sql.NullInt64)
		case batchrun.FieldID, batchrun.FieldStatus, batchrun.FieldCurrentRepo:
			values[i] = new(sql.NullString)
		case batchrun.FieldStartedAt, batchrun.FieldEndedAt, batchrun.FieldEstimatedCompletion, batchrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatchRun fields.
func (_m *BatchRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batchrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case batchrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = batchrun.Status(value.String)
			}
		case batchrun.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case batchrun.FieldCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = int(value.Int64)
			}
		case batchrun.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case batchrun.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = int(value.Int64)
			}
		case batchrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case batchrun.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case batchrun.FieldCurrentRepo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_repo", values[i])
			} else if value.Valid {
				_m.CurrentRepo = value.String
			}
		case batchrun.FieldEstimatedCompletion:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_completion", values[i])
			} else if value.Valid {
				_m.EstimatedCompletion = new(time.Time)
				*_m.EstimatedCompletion = value.Time
			}
		case batchrun.FieldRepositories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field repositories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Repositories); err != nil {
					return fmt.Errorf("unmarshal field repositories: %w", err)
				}
			}
		case batchrun.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case batchrun.FieldHealth:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field health", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Health); err != nil {
					return fmt.Errorf("unmarshal field health: %w", err)
				}
			}
		case batchrun.FieldRecoveryAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_attempts", values[i])
			} else if value.Valid {
				_m.RecoveryAttempts = int(value.Int64)
			}
		case batchrun.FieldCreditsEstimated:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_estimated", values[i])
			} else if value.Valid {
				_m.CreditsEstimated = value.Float64
			}
		case batchrun.FieldCreditsActual:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_actual", values[i])
			} else if value.Valid {
				_m.CreditsActual = value.Float64
			}
		case batchrun.FieldCreditsLimit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_limit", values[i])
			} else if value.Valid {
				_m.CreditsLimit = value.Float64
			}
		case batchrun.FieldCheckpoint:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checkpoint); err != nil {
					return fmt.Errorf("unmarshal field checkpoint: %w", err)
				}
			}
		case batchrun.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BatchRun.
// This includes values selected through modifiers, order, etc.
func (_m *BatchRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BatchRun.
// Note that you need to call BatchRun.Unwrap() before calling this method if this BatchRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatchRun) Update() *BatchRunUpdateOne {
	return NewBatchRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatchRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatchRun) Unwrap() *BatchRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatchRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatchRun) String() string {
	var builder strings.Builder
	builder.WriteString("BatchRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("current_repo=")
	builder.WriteString(_m.CurrentRepo)
	builder.WriteString(", ")
	if v := _m.EstimatedCompletion; v != nil {
		builder.WriteString("estimated_completion=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("repositories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repositories))
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteString(", ")
	builder.WriteString("health=")
	builder.WriteString(fmt.Sprintf("%v", _m.Health))
	builder.WriteString(", ")
	builder.WriteString("recovery_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryAttempts))
	builder.WriteString(", ")
	builder.WriteString("credits_estimated=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsEstimated))
	builder.WriteString(", ")
	builder.WriteString("credits_actual=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsActual))
	builder.WriteString(", ")
	builder.WriteString("credits_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsLimit))
	builder.WriteString(", ")
	builder.WriteString("checkpoint=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checkpoint))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BatchRuns is a parsable slice of BatchRun.
type BatchRuns []*BatchRun
