package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Repository holds the schema definition for the Repository entity.
// One row per discovered project; created on first sighting, mutated on
// rescans, never destroyed.
type Repository struct {
	ent.Schema
}

// Fields of the Repository.
func (Repository) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repo_id").
			Unique().
			Immutable().
			Comment("Stable identifier from the code host"),
		field.String("owner"),
		field.String("name"),
		field.String("full_name").
			Unique().
			Comment("owner/name"),
		field.Text("description").
			Optional(),
		field.Int("stars").
			Default(0).
			Min(0),
		field.Int("forks").
			Default(0).
			Min(0),
		field.Int("open_issues").
			Default(0).
			Min(0),
		field.String("language").
			Optional(),
		field.JSON("topics", []string{}).
			Optional(),
		field.Time("created_at").
			Comment("Creation time on the code host"),
		field.Time("updated_at"),
		field.Time("pushed_at").
			Optional().
			Nillable(),
		field.Bool("is_archived").
			Default(false),
		field.Bool("is_fork").
			Default(false),
		field.String("html_url").
			Optional(),
		field.String("default_branch").
			Optional(),
		field.Time("discovered_at").
			Default(time.Now).
			Immutable().
			Comment("When the discovery engine first saw this repo"),
	}
}

// Edges of the Repository.
func (Repository) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("snapshots", MetricSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tier_assignment", TierAssignment.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analyses", Analysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("alerts", Alert.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("contributors", Contributor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Repository.
func (Repository) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("full_name"),
		index.Fields("stars"),
		index.Fields("language"),
		index.Fields("is_archived", "is_fork"),
		index.Fields("discovered_at"),
	}
}
