// Code generated by ent, DO NOT EDIT.

package metricsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldContainsFold(FieldID, id))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldRepoID, v))
}

// Stars applies equality check predicate on the "stars" field. It's identical to StarsEQ.
func Stars(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldStars, v))
}

// Forks applies equality check predicate on the "forks" field. It's identical to ForksEQ.
func Forks(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldForks, v))
}

// OpenIssues applies equality check predicate on the "open_issues" field. It's identical to OpenIssuesEQ.
func OpenIssues(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldOpenIssues, v))
}

// Watchers applies equality check predicate on the "watchers" field. It's identical to WatchersEQ.
func Watchers(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldWatchers, v))
}

// Contributors applies equality check predicate on the "contributors" field. It's identical to ContributorsEQ.
func Contributors(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldContributors, v))
}

// CommitsCount applies equality check predicate on the "commits_count" field. It's identical to CommitsCountEQ.
func CommitsCount(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldCommitsCount, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldRecordedAt, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldRepoID, v))
}

// RepoIDContains applies the Contains predicate on the "repo_id" field.
func RepoIDContains(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldContains(FieldRepoID, v))
}

// RepoIDHasPrefix applies the HasPrefix predicate on the "repo_id" field.
func RepoIDHasPrefix(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldHasPrefix(FieldRepoID, v))
}

// RepoIDHasSuffix applies the HasSuffix predicate on the "repo_id" field.
func RepoIDHasSuffix(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldHasSuffix(FieldRepoID, v))
}

// RepoIDEqualFold applies the EqualFold predicate on the "repo_id" field.
func RepoIDEqualFold(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEqualFold(FieldRepoID, v))
}

// RepoIDContainsFold applies the ContainsFold predicate on the "repo_id" field.
func RepoIDContainsFold(v string) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldContainsFold(FieldRepoID, v))
}

// StarsEQ applies the EQ predicate on the "stars" field.
func StarsEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldStars, v))
}

// StarsNEQ applies the NEQ predicate on the "stars" field.
func StarsNEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldStars, v))
}

// StarsIn applies the In predicate on the "stars" field.
func StarsIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldStars, vs...))
}

// StarsNotIn applies the NotIn predicate on the "stars" field.
func StarsNotIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldStars, vs...))
}

// StarsGT applies the GT predicate on the "stars" field.
func StarsGT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldStars, v))
}

// StarsGTE applies the GTE predicate on the "stars" field.
func StarsGTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldStars, v))
}

// StarsLT applies the LT predicate on the "stars" field.
func StarsLT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldStars, v))
}

// StarsLTE applies the LTE predicate on the "stars" field.
func StarsLTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldStars, v))
}

// ForksEQ applies the EQ predicate on the "forks" field.
func ForksEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldForks, v))
}

// ForksNEQ applies the NEQ predicate on the "forks" field.
func ForksNEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldForks, v))
}

// ForksIn applies the In predicate on the "forks" field.
func ForksIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldForks, vs...))
}

// ForksNotIn applies the NotIn predicate on the "forks" field.
func ForksNotIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldForks, vs...))
}

// ForksGT applies the GT predicate on the "forks" field.
func ForksGT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldForks, v))
}

// ForksGTE applies the GTE predicate on the "forks" field.
func ForksGTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldForks, v))
}

// ForksLT applies the LT predicate on the "forks" field.
func ForksLT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldForks, v))
}

// ForksLTE applies the LTE predicate on the "forks" field.
func ForksLTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldForks, v))
}

// OpenIssuesEQ applies the EQ predicate on the "open_issues" field.
func OpenIssuesEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldOpenIssues, v))
}

// OpenIssuesNEQ applies the NEQ predicate on the "open_issues" field.
func OpenIssuesNEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldOpenIssues, v))
}

// OpenIssuesIn applies the In predicate on the "open_issues" field.
func OpenIssuesIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldOpenIssues, vs...))
}

// OpenIssuesNotIn applies the NotIn predicate on the "open_issues" field.
func OpenIssuesNotIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldOpenIssues, vs...))
}

// OpenIssuesGT applies the GT predicate on the "open_issues" field.
func OpenIssuesGT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldOpenIssues, v))
}

// OpenIssuesGTE applies the GTE predicate on the "open_issues" field.
func OpenIssuesGTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldOpenIssues, v))
}

// OpenIssuesLT applies the LT predicate on the "open_issues" field.
func OpenIssuesLT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldOpenIssues, v))
}

// OpenIssuesLTE applies the LTE predicate on the "open_issues" field.
func OpenIssuesLTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldOpenIssues, v))
}

// WatchersEQ applies the EQ predicate on the "watchers" field.
func WatchersEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldWatchers, v))
}

// WatchersNEQ applies the NEQ predicate on the "watchers" field.
func WatchersNEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldWatchers, v))
}

// WatchersIn applies the In predicate on the "watchers" field.
func WatchersIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldWatchers, vs...))
}

// WatchersNotIn applies the NotIn predicate on the "watchers" field.
func WatchersNotIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldWatchers, vs...))
}

// WatchersGT applies the GT predicate on the "watchers" field.
func WatchersGT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldWatchers, v))
}

// WatchersGTE applies the GTE predicate on the "watchers" field.
func WatchersGTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldWatchers, v))
}

// WatchersLT applies the LT predicate on the "watchers" field.
func WatchersLT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldWatchers, v))
}

// WatchersLTE applies the LTE predicate on the "watchers" field.
func WatchersLTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldWatchers, v))
}

// ContributorsEQ applies the EQ predicate on the "contributors" field.
func ContributorsEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldContributors, v))
}

// ContributorsNEQ applies the NEQ predicate on the "contributors" field.
func ContributorsNEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldContributors, v))
}

// ContributorsIn applies the In predicate on the "contributors" field.
func ContributorsIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldContributors, vs...))
}

// ContributorsNotIn applies the NotIn predicate on the "contributors" field.
func ContributorsNotIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldContributors, vs...))
}

// ContributorsGT applies the GT predicate on the "contributors" field.
func ContributorsGT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldContributors, v))
}

// ContributorsGTE applies the GTE predicate on the "contributors" field.
func ContributorsGTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldContributors, v))
}

// ContributorsLT applies the LT predicate on the "contributors" field.
func ContributorsLT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldContributors, v))
}

// ContributorsLTE applies the LTE predicate on the "contributors" field.
func ContributorsLTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldContributors, v))
}

// ContributorsIsNil applies the IsNil predicate on the "contributors" field.
func ContributorsIsNil() predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIsNull(FieldContributors))
}

// ContributorsNotNil applies the NotNil predicate on the "contributors" field.
func ContributorsNotNil() predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotNull(FieldContributors))
}

// CommitsCountEQ applies the EQ predicate on the "commits_count" field.
func CommitsCountEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldCommitsCount, v))
}

// CommitsCountNEQ applies the NEQ predicate on the "commits_count" field.
func CommitsCountNEQ(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldCommitsCount, v))
}

// CommitsCountIn applies the In predicate on the "commits_count" field.
func CommitsCountIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldCommitsCount, vs...))
}

// CommitsCountNotIn applies the NotIn predicate on the "commits_count" field.
func CommitsCountNotIn(vs ...int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldCommitsCount, vs...))
}

// CommitsCountGT applies the GT predicate on the "commits_count" field.
func CommitsCountGT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldCommitsCount, v))
}

// CommitsCountGTE applies the GTE predicate on the "commits_count" field.
func CommitsCountGTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldCommitsCount, v))
}

// CommitsCountLT applies the LT predicate on the "commits_count" field.
func CommitsCountLT(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldCommitsCount, v))
}

// CommitsCountLTE applies the LTE predicate on the "commits_count" field.
func CommitsCountLTE(v int) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldCommitsCount, v))
}

// CommitsCountIsNil applies the IsNil predicate on the "commits_count" field.
func CommitsCountIsNil() predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIsNull(FieldCommitsCount))
}

// CommitsCountNotNil applies the NotNil predicate on the "commits_count" field.
func CommitsCountNotNil() predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotNull(FieldCommitsCount))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.FieldLTE(FieldRecordedAt, v))
}

// HasRepository applies the HasEdge predicate on the "repository" edge.
func HasRepository() predicate.MetricSnapshot {
	return predicate.MetricSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RepositoryTable, RepositoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepositoryWith applies the HasEdge predicate on the "repository" edge with a given conditions (other predicates).
func HasRepositoryWith(preds ...predicate.Repository) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(func(s *sql.Selector) {
		step := newRepositoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetricSnapshot) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetricSnapshot) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetricSnapshot) predicate.MetricSnapshot {
	return predicate.MetricSnapshot(sql.NotPredicates(p))
}
