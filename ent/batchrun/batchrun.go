// Code generated by ent, DO NOT EDIT.

package batchrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the batchrun type in the database.
	Label = "batch_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "batch_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldCurrentRepo holds the string denoting the current_repo field in the database.
	FieldCurrentRepo = "current_repo"
	// FieldEstimatedCompletion holds the string denoting the estimated_completion field in the database.
	FieldEstimatedCompletion = "estimated_completion"
	// FieldRepositories holds the string denoting the repositories field in the database.
	FieldRepositories = "repositories"
	// FieldResults holds the string denoting the results field in the database.
	FieldResults = "results"
	// FieldHealth holds the string denoting the health field in the database.
	FieldHealth = "health"
	// FieldRecoveryAttempts holds the string denoting the recovery_attempts field in the database.
	FieldRecoveryAttempts = "recovery_attempts"
	// FieldCreditsEstimated holds the string denoting the credits_estimated field in the database.
	FieldCreditsEstimated = "credits_estimated"
	// FieldCreditsActual holds the string denoting the credits_actual field in the database.
	FieldCreditsActual = "credits_actual"
	// FieldCreditsLimit holds the string denoting the credits_limit field in the database.
	FieldCreditsLimit = "credits_limit"
	// FieldCheckpoint holds the string denoting the checkpoint field in the database.
	FieldCheckpoint = "checkpoint"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the batchrun in the database.
	Table = "batch_runs"
)

// Columns holds all SQL columns for batchrun fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldTotal,
	FieldCompleted,
	FieldFailed,
	FieldSkipped,
	FieldStartedAt,
	FieldEndedAt,
	FieldCurrentRepo,
	FieldEstimatedCompletion,
	FieldRepositories,
	FieldResults,
	FieldHealth,
	FieldRecoveryAttempts,
	FieldCreditsEstimated,
	FieldCreditsActual,
	FieldCreditsLimit,
	FieldCheckpoint,
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
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultRecoveryAttempts holds the default value on creation for the "recovery_attempts" field.
	DefaultRecoveryAttempts int
	// DefaultCreditsEstimated holds the default value on creation for the "credits_estimated" field.
	DefaultCreditsEstimated float64
	// DefaultCreditsActual holds the default value on creation for the "credits_actual" field.
	DefaultCreditsActual float64
	// DefaultCreditsLimit holds the default value on creation for the "credits_limit" field.
	DefaultCreditsLimit float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusRunning    Status = "running"
	StatusRecovering Status = "recovering"
	StatusStopped    Status = "stopped"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusRecovering, StatusStopped, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("batchrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BatchRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByCurrentRepo orders the results by the current_repo field.
func ByCurrentRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentRepo, opts...).ToFunc()
}

// ByEstimatedCompletion orders the results by the estimated_completion field.
func ByEstimatedCompletion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCompletion, opts...).ToFunc()
}

// ByRecoveryAttempts orders the results by the recovery_attempts field.
func ByRecoveryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempts, opts...).ToFunc()
}

// ByCreditsEstimated orders the results by the credits_estimated field.
func ByCreditsEstimated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsEstimated, opts...).ToFunc()
}

// ByCreditsActual orders the results by the credits_actual field.
func ByCreditsActual(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsActual, opts...).ToFunc()
}

// ByCreditsLimit orders the results by the credits_limit field.
func ByCreditsLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsLimit, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
