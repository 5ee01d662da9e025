package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis holds the schema definition for the Analysis entity.
// Append-only LLM scoring artifacts; "latest" is the max created_at per repo.
type Analysis struct {
	ent.Schema
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("repo_id").
			Immutable(),
		field.Int("investment_score").
			Min(0).
			Max(100),
		field.Int("innovation_score").
			Min(0).
			Max(100),
		field.Int("team_score").
			Min(0).
			Max(100),
		field.Int("market_score").
			Min(0).
			Max(100),
		field.Int("growth_score").
			Default(0).
			Comment("Growth component observed at analysis time"),
		field.Int("technical_moat").
			Optional().
			Nillable(),
		field.Int("scalability").
			Optional().
			Nillable(),
		field.Int("developer_adoption").
			Optional().
			Nillable(),
		field.Enum("recommendation").
			Values("strong_buy", "buy", "hold", "pass"),
		field.Text("summary").
			Optional(),
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("risks", []string{}).
			Optional(),
		field.JSON("questions", []string{}).
			Optional(),
		field.String("model_used"),
		field.Float("cost").
			Default(0).
			Comment("Credits charged for this analysis"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Analysis.
func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("repository", Repository.Type).
			Ref("analyses").
			Field("repo_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Analysis.
func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo_id", "created_at"),
		index.Fields("recommendation"),
		index.Fields("investment_score"),
	}
}
