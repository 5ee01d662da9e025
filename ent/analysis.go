// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/repository"
)

// Analysis is the model entity for the Analysis schema.
type Analysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID string `json:"repo_id,omitempty"`
	// InvestmentScore holds the value of the "investment_score" field.
	InvestmentScore int `json:"investment_score,omitempty"`
	// InnovationScore holds the value of the "innovation_score" field.
	InnovationScore int `json:"innovation_score,omitempty"`
	// TeamScore holds the value of the "team_score" field.
	TeamScore int `json:"team_score,omitempty"`
	// MarketScore holds the value of the "market_score" field.
	MarketScore int `json:"market_score,omitempty"`
	// Growth component observed at analysis time
	GrowthScore int `json:"growth_score,omitempty"`
	// TechnicalMoat holds the value of the "technical_moat" field.
	TechnicalMoat *int `json:"technical_moat,omitempty"`
	// Scalability holds the value of the "scalability" field.
	Scalability *int `json:"scalability,omitempty"`
	// DeveloperAdoption holds the value of the "developer_adoption" field.
	DeveloperAdoption *int `json:"developer_adoption,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation analysis.Recommendation `json:"recommendation,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// Risks holds the value of the "risks" field.
	Risks []string `json:"risks,omitempty"`
	// Questions holds the value of the "questions" field.
	Questions []string `json:"questions,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// Credits charged for this analysis
	Cost float64 `json:"cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisQuery when eager-loading is set.
	Edges        AnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisEdges holds the relations/edges for other nodes in the graph.
type AnalysisEdges struct {
	// Repository holds the value of the repository edge.
	Repository *Repository `json:"repository,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RepositoryOrErr returns the Repository value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisEdges) RepositoryOrErr() (*Repository, error) {
	if e.Repository != nil {
		return e.Repository, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: repository.Label}
	}
	return nil, &NotLoadedError{edge: "repository"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysis.FieldStrengths, analysis.FieldRisks, analysis.FieldQuestions:
			values[i] = new([]byte)
		case analysis.FieldCost:
			values[i] = new(sql.NullFloat64)
		case analysis.FieldInvestmentScore, analysis.FieldInnovationScore, analysis.FieldTeamScore, analysis.FieldMarketScore, analysis.FieldGrowthScore, analysis.FieldTechnicalMoat, analysis.FieldScalability, analysis.FieldDeveloperAdoption:
			values[i] = new(sql.NullInt64)
		case analysis.FieldID, analysis.FieldRepoID, analysis.FieldRecommendation, analysis.FieldSummary, analysis.FieldModelUsed:
			values[i] = new(sql.NullString)
		case analysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analysis fields.
func (_m *Analysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysis.FieldRepoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.String
			}
		case analysis.FieldInvestmentScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field investment_score", values[i])
			} else if value.Valid {
				_m.InvestmentScore = int(value.Int64)
			}
		case analysis.FieldInnovationScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field innovation_score", values[i])
			} else if value.Valid {
				_m.InnovationScore = int(value.Int64)
			}
		case analysis.FieldTeamScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field team_score", values[i])
			} else if value.Valid {
				_m.TeamScore = int(value.Int64)
			}
		case analysis.FieldMarketScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field market_score", values[i])
			} else if value.Valid {
				_m.MarketScore = int(value.Int64)
			}
		case analysis.FieldGrowthScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field growth_score", values[i])
			} else if value.Valid {
				_m.GrowthScore = int(value.Int64)
			}
		case analysis.FieldTechnicalMoat:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field technical_moat", values[i])
			} else if value.Valid {
				_m.TechnicalMoat = new(int)
				*_m.TechnicalMoat = int(value.Int64)
			}
		case analysis.FieldScalability:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scalability", values[i])
			} else if value.Valid {
				_m.Scalability = new(int)
				*_m.Scalability = int(value.Int64)
			}
		case analysis.FieldDeveloperAdoption:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field developer_adoption", values[i])
			} else if value.Valid {
				_m.DeveloperAdoption = new(int)
				*_m.DeveloperAdoption = int(value.Int64)
			}
		case analysis.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = analysis.Recommendation(value.String)
			}
		case analysis.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case analysis.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case analysis.FieldRisks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Risks); err != nil {
					return fmt.Errorf("unmarshal field risks: %w", err)
				}
			}
		case analysis.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case analysis.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case analysis.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case analysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Analysis.
// This includes values selected through modifiers, order, etc.
func (_m *Analysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRepository queries the "repository" edge of the Analysis entity.
func (_m *Analysis) QueryRepository() *RepositoryQuery {
	return NewAnalysisClient(_m.config).QueryRepository(_m)
}

// Update returns a builder for updating this Analysis.
// Note that you need to call Analysis.Unwrap() before calling this method if this Analysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analysis) Update() *AnalysisUpdateOne {
	return NewAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analysis) Unwrap() *Analysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analysis) String() string {
	var builder strings.Builder
	builder.WriteString("Analysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_id=")
	builder.WriteString(_m.RepoID)
	builder.WriteString(", ")
	builder.WriteString("investment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvestmentScore))
	builder.WriteString(", ")
	builder.WriteString("innovation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.InnovationScore))
	builder.WriteString(", ")
	builder.WriteString("team_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamScore))
	builder.WriteString(", ")
	builder.WriteString("market_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarketScore))
	builder.WriteString(", ")
	builder.WriteString("growth_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrowthScore))
	builder.WriteString(", ")
	if v := _m.TechnicalMoat; v != nil {
		builder.WriteString("technical_moat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Scalability; v != nil {
		builder.WriteString("scalability=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeveloperAdoption; v != nil {
		builder.WriteString("developer_adoption=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendation))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("risks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Risks))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("model_used=")
	builder.WriteString(_m.ModelUsed)
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Analyses is a parsable slice of Analysis.
type Analyses []*Analysis
