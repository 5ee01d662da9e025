// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/repository"
)

// MetricSnapshot is the model entity for the MetricSnapshot schema.
type MetricSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID string `json:"repo_id,omitempty"`
	// Stars holds the value of the "stars" field.
	Stars int `json:"stars,omitempty"`
	// Forks holds the value of the "forks" field.
	Forks int `json:"forks,omitempty"`
	// OpenIssues holds the value of the "open_issues" field.
	OpenIssues int `json:"open_issues,omitempty"`
	// Watchers holds the value of the "watchers" field.
	Watchers int `json:"watchers,omitempty"`
	// Contributors holds the value of the "contributors" field.
	Contributors *int `json:"contributors,omitempty"`
	// CommitsCount holds the value of the "commits_count" field.
	CommitsCount *int `json:"commits_count,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MetricSnapshotQuery when eager-loading is set.
	Edges        MetricSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MetricSnapshotEdges holds the relations/edges for other nodes in the graph.
type MetricSnapshotEdges struct {
	// Repository holds the value of the repository edge.
	Repository *Repository `json:"repository,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RepositoryOrErr returns the Repository value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MetricSnapshotEdges) RepositoryOrErr() (*Repository, error) {
	if e.Repository != nil {
		return e.Repository, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: repository.Label}
	}
	return nil, &NotLoadedError{edge: "repository"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetricSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metricsnapshot.FieldStars, metricsnapshot.FieldForks, metricsnapshot.FieldOpenIssues, metricsnapshot.FieldWatchers, metricsnapshot.FieldContributors, metricsnapshot.FieldCommitsCount:
			values[i] = new(sql.NullInt64)
		case metricsnapshot.FieldID, metricsnapshot.FieldRepoID:
			values[i] = new(sql.NullString)
		case metricsnapshot.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetricSnapshot fields.
func (_m *MetricSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metricsnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case metricsnapshot.FieldRepoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.String
			}
		case metricsnapshot.FieldStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stars", values[i])
			} else if value.Valid {
				_m.Stars = int(value.Int64)
			}
		case metricsnapshot.FieldForks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field forks", values[i])
			} else if value.Valid {
				_m.Forks = int(value.Int64)
			}
		case metricsnapshot.FieldOpenIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field open_issues", values[i])
			} else if value.Valid {
				_m.OpenIssues = int(value.Int64)
			}
		case metricsnapshot.FieldWatchers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field watchers", values[i])
			} else if value.Valid {
				_m.Watchers = int(value.Int64)
			}
		case metricsnapshot.FieldContributors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contributors", values[i])
			} else if value.Valid {
				_m.Contributors = new(int)
				*_m.Contributors = int(value.Int64)
			}
		case metricsnapshot.FieldCommitsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commits_count", values[i])
			} else if value.Valid {
				_m.CommitsCount = new(int)
				*_m.CommitsCount = int(value.Int64)
			}
		case metricsnapshot.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MetricSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *MetricSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRepository queries the "repository" edge of the MetricSnapshot entity.
func (_m *MetricSnapshot) QueryRepository() *RepositoryQuery {
	return NewMetricSnapshotClient(_m.config).QueryRepository(_m)
}

// Update returns a builder for updating this MetricSnapshot.
// Note that you need to call MetricSnapshot.Unwrap() before calling this method if this MetricSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetricSnapshot) Update() *MetricSnapshotUpdateOne {
	return NewMetricSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetricSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetricSnapshot) Unwrap() *MetricSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetricSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetricSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("MetricSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_id=")
	builder.WriteString(_m.RepoID)
	builder.WriteString(", ")
	builder.WriteString("stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stars))
	builder.WriteString(", ")
	builder.WriteString("forks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Forks))
	builder.WriteString(", ")
	builder.WriteString("open_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpenIssues))
	builder.WriteString(", ")
	builder.WriteString("watchers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Watchers))
	builder.WriteString(", ")
	if v := _m.Contributors; v != nil {
		builder.WriteString("contributors=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CommitsCount; v != nil {
		builder.WriteString("commits_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MetricSnapshots is a parsable slice of MetricSnapshot.
type MetricSnapshots []*MetricSnapshot
