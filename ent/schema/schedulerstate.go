package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SchedulerState holds the schema definition for the SchedulerState entity.
// A single row per scheduler instance; correctness of the tick loop comes
// from this store-backed state, not from runtime lifecycles.
type SchedulerState struct {
	ent.Schema
}

// Fields of the SchedulerState.
func (SchedulerState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scheduler_id").
			Unique().
			Immutable(),
		field.Time("next_tick"),
		field.String("last_cycle_type").
			Optional().
			Comment("hourly or sweep"),
		field.Time("last_cycle_at").
			Optional().
			Nillable(),
		field.Text("last_cycle_error").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
