package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TierAssignment holds the schema definition for the TierAssignment entity.
// Exactly one row per repository; tier 1 is the highest priority class.
type TierAssignment struct {
	ent.Schema
}

// Fields of the TierAssignment.
func (TierAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("assignment_id").
			Unique().
			Immutable(),
		field.String("repo_id").
			Unique().
			Immutable(),
		field.Int("tier").
			Min(1).
			Max(3),
		field.Int("stars").
			Default(0),
		field.Float("growth_velocity").
			Default(0).
			Comment("Stars gained per day since creation"),
		field.Float("engagement_score").
			Default(0),
		field.Float("scan_priority").
			Default(0).
			Comment("Composite ordering hint for the scan planner"),
		field.Time("last_deep_scan").
			Optional().
			Nillable(),
		field.Time("last_basic_scan").
			Optional().
			Nillable(),
		field.Time("next_scan_due").
			Comment("Always set; overdue repos sort first in planning"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TierAssignment.
func (TierAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("repository", Repository.Type).
			Ref("tier_assignment").
			Field("repo_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TierAssignment.
func (TierAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier"),
		index.Fields("tier", "next_scan_due"),
		index.Fields("tier", "stars"),
	}
}
