package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for the Alert entity.
// Emitted when an analysis score or growth crosses configured thresholds.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("repo_id").
			Immutable(),
		field.String("type").
			Comment("e.g. investment_opportunity, high_growth"),
		field.Enum("level").
			Values("urgent", "high", "medium", "low"),
		field.Text("message"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
		field.Bool("acknowledged").
			Default(false),
	}
}

// Edges of the Alert.
func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("repository", Repository.Type).
			Ref("alerts").
			Field("repo_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo_id", "type", "sent_at"),
		index.Fields("level"),
		index.Fields("acknowledged"),
	}
}
