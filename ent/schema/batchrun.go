package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BatchRun holds the schema definition for the BatchRun entity, the durable
// state of one batch analysis, persisted between chunks so a crashed or
// restarted process can resume from the last checkpoint.
type BatchRun struct {
	ent.Schema
}

// Fields of the BatchRun.
func (BatchRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "recovering", "stopped", "completed", "failed").
			Default("pending"),
		field.Int("total").
			Default(0),
		field.Int("completed").
			Default(0),
		field.Int("failed").
			Default(0),
		field.Int("skipped").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.String("current_repo").
			Optional(),
		field.Time("estimated_completion").
			Optional().
			Nillable(),
		field.JSON("repositories", []string{}).
			Comment("Full names submitted to this batch, in order"),
		field.JSON("results", []map[string]interface{}{}).
			Optional().
			Comment("Per-repo outcomes appended in completion order"),
		field.JSON("health", map[string]interface{}{}).
			Optional(),
		field.Int("recovery_attempts").
			Default(0),
		field.Float("credits_estimated").
			Default(0),
		field.Float("credits_actual").
			Default(0),
		field.Float("credits_limit").
			Default(0),
		field.JSON("checkpoint", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Staleness detection: no update in 5 minutes = stale"),
	}
}

// Indexes of the BatchRun.
func (BatchRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "updated_at"),
		index.Fields("started_at"),
	}
}
