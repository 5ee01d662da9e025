package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contributor holds the schema definition for the Contributor entity.
// Child rows of Repository, refreshed on deep scans.
type Contributor struct {
	ent.Schema
}

// Fields of the Contributor.
func (Contributor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contributor_id").
			Unique().
			Immutable(),
		field.String("repo_id").
			Immutable(),
		field.String("login"),
		field.Int("contributions").
			Default(0),
		field.Time("recorded_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Contributor.
func (Contributor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("repository", Repository.Type).
			Ref("contributors").
			Field("repo_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Contributor.
func (Contributor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo_id", "login").
			Unique(),
	}
}
