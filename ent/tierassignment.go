// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// TierAssignment is the model entity for the TierAssignment schema.
type TierAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID string `json:"repo_id,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier int `json:"tier,omitempty"`
	// Stars holds the value of the "stars" field.
	Stars int `json:"stars,omitempty"`
	// Stars gained per day since creation
	GrowthVelocity float64 `json:"growth_velocity,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore float64 `json:"engagement_score,omitempty"`
	// Composite ordering hint for the scan planner
	ScanPriority float64 `json:"scan_priority,omitempty"`
	// LastDeepScan holds the value of the "last_deep_scan" field.
	LastDeepScan *time.Time `json:"last_deep_scan,omitempty"`
	// LastBasicScan holds the value of the "last_basic_scan" field.
	LastBasicScan *time.Time `json:"last_basic_scan,omitempty"`
	// Always set; overdue repos sort first in planning
	NextScanDue time.Time `json:"next_scan_due,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TierAssignmentQuery when eager-loading is set.
	Edges        TierAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TierAssignmentEdges holds the relations/edges for other nodes in the graph.
type TierAssignmentEdges struct {
	// Repository holds the value of the repository edge.
	Repository *Repository `json:"repository,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RepositoryOrErr returns the Repository value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TierAssignmentEdges) RepositoryOrErr() (*Repository, error) {
	if e.Repository != nil {
		return e.Repository, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: repository.Label}
	}
	return nil, &NotLoadedError{edge: "repository"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TierAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tierassignment.FieldGrowthVelocity, tierassignment.FieldEngagementScore, tierassignment.FieldScanPriority:
			values[i] = new(sql.NullFloat64)
		case tierassignment.FieldTier, tierassignment.FieldStars:
			values[i] = new(sql.NullInt64)
		case tierassignment.FieldID, tierassignment.FieldRepoID:
			values[i] = new(sql.NullString)
		case tierassignment.FieldLastDeepScan, tierassignment.FieldLastBasicScan, tierassignment.FieldNextScanDue, tierassignment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TierAssignment fields.
func (_m *TierAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tierassignment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tierassignment.FieldRepoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.String
			}
		case tierassignment.FieldTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = int(value.Int64)
			}
		case tierassignment.FieldStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stars", values[i])
			} else if value.Valid {
				_m.Stars = int(value.Int64)
			}
		case tierassignment.FieldGrowthVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field growth_velocity", values[i])
			} else if value.Valid {
				_m.GrowthVelocity = value.Float64
			}
		case tierassignment.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = value.Float64
			}
		case tierassignment.FieldScanPriority:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field scan_priority", values[i])
			} else if value.Valid {
				_m.ScanPriority = value.Float64
			}
		case tierassignment.FieldLastDeepScan:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_deep_scan", values[i])
			} else if value.Valid {
				_m.LastDeepScan = new(time.Time)
				*_m.LastDeepScan = value.Time
			}
		case tierassignment.FieldLastBasicScan:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_basic_scan", values[i])
			} else if value.Valid {
				_m.LastBasicScan = new(time.Time)
				*_m.LastBasicScan = value.Time
			}
		case tierassignment.FieldNextScanDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_scan_due", values[i])
			} else if value.Valid {
				_m.NextScanDue = value.Time
			}
		case tierassignment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TierAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *TierAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRepository queries the "repository" edge of the TierAssignment entity.
func (_m *TierAssignment) QueryRepository() *RepositoryQuery {
	return NewTierAssignmentClient(_m.config).QueryRepository(_m)
}

// Update returns a builder for updating this TierAssignment.
// Note that you need to call TierAssignment.Unwrap() before calling this method if this TierAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TierAssignment) Update() *TierAssignmentUpdateOne {
	return NewTierAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TierAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TierAssignment) Unwrap() *TierAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TierAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TierAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("TierAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_id=")
	builder.WriteString(_m.RepoID)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stars))
	builder.WriteString(", ")
	builder.WriteString("growth_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrowthVelocity))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("scan_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScanPriority))
	builder.WriteString(", ")
	if v := _m.LastDeepScan; v != nil {
		builder.WriteString("last_deep_scan=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastBasicScan; v != nil {
		builder.WriteString("last_basic_scan=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("next_scan_due=")
	builder.WriteString(_m.NextScanDue.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TierAssignments is a parsable slice of TierAssignment.
type TierAssignments []*TierAssignment
