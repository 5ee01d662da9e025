// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// BatchRun is the predicate function for batchrun builders.
type BatchRun func(*sql.Selector)

// Contributor is the predicate function for contributor builders.
type Contributor func(*sql.Selector)

// MetricSnapshot is the predicate function for metricsnapshot builders.
type MetricSnapshot func(*sql.Selector)

// Repository is the predicate function for repository builders.
type Repository func(*sql.Selector)

// SchedulerState is the predicate function for schedulerstate builders.
type SchedulerState func(*sql.Selector)

// TierAssignment is the predicate function for tierassignment builders.
type TierAssignment func(*sql.Selector)
