// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/repository"
)

// Contributor is the model entity for the Contributor schema.
type Contributor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID string `json:"repo_id,omitempty"`
	// Login holds the value of the "login" field.
	Login string `json:"login,omitempty"`
	// Contributions holds the value of the "contributions" field.
	Contributions int `json:"contributions,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContributorQuery when eager-loading is set.
	Edges        ContributorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContributorEdges holds the relations/edges for other nodes in the graph.
type ContributorEdges struct {
	// Repository holds the value of the repository edge.
	Repository *Repository `json:"repository,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RepositoryOrErr returns the Repository value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContributorEdges) RepositoryOrErr() (*Repository, error) {
	if e.Repository != nil {
		return e.Repository, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: repository.Label}
	}
	return nil, &NotLoadedError{edge: "repository"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contributor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contributor.FieldContributions:
			values[i] = new(sql.NullInt64)
		case contributor.FieldID, contributor.FieldRepoID, contributor.FieldLogin:
			values[i] = new(sql.NullString)
		case contributor.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contributor fields.
func (_m *Contributor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contributor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contributor.FieldRepoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.String
			}
		case contributor.FieldLogin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field login", values[i])
			} else if value.Valid {
				_m.Login = value.String
			}
		case contributor.FieldContributions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contributions", values[i])
			} else if value.Valid {
				_m.Contributions = int(value.Int64)
			}
		case contributor.FieldRecordedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Contributor.
// This includes values selected through modifiers, order, etc.
func (_m *Contributor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRepository queries the "repository" edge of the Contributor entity.
func (_m *Contributor) QueryRepository() *RepositoryQuery {
	return NewContributorClient(_m.config).QueryRepository(_m)
}

// Update returns a builder for updating this Contributor.
// Note that you need to call Contributor.Unwrap() before calling this method if this Contributor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contributor) Update() *ContributorUpdateOne {
	return NewContributorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contributor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contributor) Unwrap() *Contributor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contributor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contributor) String() string {
	var builder strings.Builder
	builder.WriteString("Contributor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_id=")
	builder.WriteString(_m.RepoID)
	builder.WriteString(", ")
	builder.WriteString("login=")
	builder.WriteString(_m.Login)
	builder.WriteString(", ")
	builder.WriteString("contributions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Contributions))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contributors is a parsable slice of Contributor.
type Contributors []*Contributor
