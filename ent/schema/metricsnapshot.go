package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MetricSnapshot holds the schema definition for the MetricSnapshot entity.
// Append-only point-in-time metrics keyed by (repo_id, recorded_at).
type MetricSnapshot struct {
	ent.Schema
}

// Fields of the MetricSnapshot.
func (MetricSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("repo_id").
			Immutable(),
		field.Int("stars").
			Default(0),
		field.Int("forks").
			Default(0),
		field.Int("open_issues").
			Default(0),
		field.Int("watchers").
			Default(0),
		field.Int("contributors").
			Optional().
			Nillable(),
		field.Int("commits_count").
			Optional().
			Nillable(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MetricSnapshot.
func (MetricSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("repository", Repository.Type).
			Ref("snapshots").
			Field("repo_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MetricSnapshot.
func (MetricSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo_id", "recorded_at").
			Unique(),
		index.Fields("recorded_at"),
	}
}
