// Code generated by ent, DO NOT EDIT.

package contributor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Contributor {
	return predicate.Contributor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Contributor {
	return predicate.Contributor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Contributor {
	return predicate.Contributor(sql.FieldContainsFold(FieldID, id))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldRepoID, v))
}

// Login applies equality check predicate on the "login" field. It's identical to LoginEQ.
func Login(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldLogin, v))
}

// Contributions applies equality check predicate on the "contributions" field. It's identical to ContributionsEQ.
func Contributions(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldContributions, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldRecordedAt, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...string) predicate.Contributor {
	return predicate.Contributor(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...string) predicate.Contributor {
	return predicate.Contributor(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldLTE(FieldRepoID, v))
}

// RepoIDContains applies the Contains predicate on the "repo_id" field.
func RepoIDContains(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldContains(FieldRepoID, v))
}

// RepoIDHasPrefix applies the HasPrefix predicate on the "repo_id" field.
func RepoIDHasPrefix(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldHasPrefix(FieldRepoID, v))
}

// RepoIDHasSuffix applies the HasSuffix predicate on the "repo_id" field.
func RepoIDHasSuffix(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldHasSuffix(FieldRepoID, v))
}

// RepoIDEqualFold applies the EqualFold predicate on the "repo_id" field.
func RepoIDEqualFold(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEqualFold(FieldRepoID, v))
}

// RepoIDContainsFold applies the ContainsFold predicate on the "repo_id" field.
func RepoIDContainsFold(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldContainsFold(FieldRepoID, v))
}

// LoginEQ applies the EQ predicate on the "login" field.
func LoginEQ(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldLogin, v))
}

// LoginNEQ applies the NEQ predicate on the "login" field.
func LoginNEQ(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldNEQ(FieldLogin, v))
}

// LoginIn applies the In predicate on the "login" field.
func LoginIn(vs ...string) predicate.Contributor {
	return predicate.Contributor(sql.FieldIn(FieldLogin, vs...))
}

// LoginNotIn applies the NotIn predicate on the "login" field.
func LoginNotIn(vs ...string) predicate.Contributor {
	return predicate.Contributor(sql.FieldNotIn(FieldLogin, vs...))
}

// LoginGT applies the GT predicate on the "login" field.
func LoginGT(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldGT(FieldLogin, v))
}

// LoginGTE applies the GTE predicate on the "login" field.
func LoginGTE(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldGTE(FieldLogin, v))
}

// LoginLT applies the LT predicate on the "login" field.
func LoginLT(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldLT(FieldLogin, v))
}

// LoginLTE applies the LTE predicate on the "login" field.
func LoginLTE(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldLTE(FieldLogin, v))
}

// LoginContains applies the Contains predicate on the "login" field.
func LoginContains(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldContains(FieldLogin, v))
}

// LoginHasPrefix applies the HasPrefix predicate on the "login" field.
func LoginHasPrefix(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldHasPrefix(FieldLogin, v))
}

// LoginHasSuffix applies the HasSuffix predicate on the "login" field.
func LoginHasSuffix(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldHasSuffix(FieldLogin, v))
}

// LoginEqualFold applies the EqualFold predicate on the "login" field.
func LoginEqualFold(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldEqualFold(FieldLogin, v))
}

// LoginContainsFold applies the ContainsFold predicate on the "login" field.
func LoginContainsFold(v string) predicate.Contributor {
	return predicate.Contributor(sql.FieldContainsFold(FieldLogin, v))
}

// ContributionsEQ applies the EQ predicate on the "contributions" field.
func ContributionsEQ(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldContributions, v))
}

// ContributionsNEQ applies the NEQ predicate on the "contributions" field.
func ContributionsNEQ(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldNEQ(FieldContributions, v))
}

// ContributionsIn applies the In predicate on the "contributions" field.
func ContributionsIn(vs ...int) predicate.Contributor {
	return predicate.Contributor(sql.FieldIn(FieldContributions, vs...))
}

// ContributionsNotIn applies the NotIn predicate on the "contributions" field.
func ContributionsNotIn(vs ...int) predicate.Contributor {
	return predicate.Contributor(sql.FieldNotIn(FieldContributions, vs...))
}

// ContributionsGT applies the GT predicate on the "contributions" field.
func ContributionsGT(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldGT(FieldContributions, v))
}

// ContributionsGTE applies the GTE predicate on the "contributions" field.
func ContributionsGTE(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldGTE(FieldContributions, v))
}

// ContributionsLT applies the LT predicate on the "contributions" field.
func ContributionsLT(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldLT(FieldContributions, v))
}

// ContributionsLTE applies the LTE predicate on the "contributions" field.
func ContributionsLTE(v int) predicate.Contributor {
	return predicate.Contributor(sql.FieldLTE(FieldContributions, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.Contributor {
	return predicate.Contributor(sql.FieldLTE(FieldRecordedAt, v))
}

// HasRepository applies the HasEdge predicate on the "repository" edge.
func HasRepository() predicate.Contributor {
	return predicate.Contributor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RepositoryTable, RepositoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepositoryWith applies the HasEdge predicate on the "repository" edge with a given conditions (other predicates).
func HasRepositoryWith(preds ...predicate.Repository) predicate.Contributor {
	return predicate.Contributor(func(s *sql.Selector) {
		step := newRepositoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contributor) predicate.Contributor {
	return predicate.Contributor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contributor) predicate.Contributor {
	return predicate.Contributor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contributor) predicate.Contributor {
	return predicate.Contributor(sql.NotPredicates(p))
}
