// Code generated by ent, DO NOT EDIT.

package metricsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the metricsnapshot type in the database.
	Label = "metric_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "snapshot_id"
	// FieldRepoID holds the string denoting the repo_id field in the database.
	FieldRepoID = "repo_id"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// FieldForks holds the string denoting the forks field in the database.
	FieldForks = "forks"
	// FieldOpenIssues holds the string denoting the open_issues field in the database.
	FieldOpenIssues = "open_issues"
	// FieldWatchers holds the string denoting the watchers field in the database.
	FieldWatchers = "watchers"
	// FieldContributors holds the string denoting the contributors field in the database.
	FieldContributors = "contributors"
	// FieldCommitsCount holds the string denoting the commits_count field in the database.
	FieldCommitsCount = "commits_count"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// EdgeRepository holds the string denoting the repository edge name in mutations.
	EdgeRepository = "repository"
	// RepositoryFieldID holds the string denoting the ID field of the Repository.
	RepositoryFieldID = "repo_id"
	// Table holds the table name of the metricsnapshot in the database.
	Table = "metric_snapshots"
	// RepositoryTable is the table that holds the repository relation/edge.
	RepositoryTable = "metric_snapshots"
	// RepositoryInverseTable is the table name for the Repository entity.
	// It exists in this package in order to avoid circular dependency with the "repository" package.
	RepositoryInverseTable = "repositories"
	// RepositoryColumn is the table column denoting the repository relation/edge.
	RepositoryColumn = "repo_id"
)

// Columns holds all SQL columns for metricsnapshot fields.
var Columns = []string{
	FieldID,
	FieldRepoID,
	FieldStars,
	FieldForks,
	FieldOpenIssues,
	FieldWatchers,
	FieldContributors,
	FieldCommitsCount,
	FieldRecordedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStars holds the default value on creation for the "stars" field.
	DefaultStars int
	// DefaultForks holds the default value on creation for the "forks" field.
	DefaultForks int
	// DefaultOpenIssues holds the default value on creation for the "open_issues" field.
	DefaultOpenIssues int
	// DefaultWatchers holds the default value on creation for the "watchers" field.
	DefaultWatchers int
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
)

// OrderOption defines the ordering options for the MetricSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoID orders the results by the repo_id field.
func ByRepoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoID, opts...).ToFunc()
}

// ByStars orders the results by the stars field.
func ByStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStars, opts...).ToFunc()
}

// ByForks orders the results by the forks field.
func ByForks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForks, opts...).ToFunc()
}

// ByOpenIssues orders the results by the open_issues field.
func ByOpenIssues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenIssues, opts...).ToFunc()
}

// ByWatchers orders the results by the watchers field.
func ByWatchers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatchers, opts...).ToFunc()
}

// ByContributors orders the results by the contributors field.
func ByContributors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributors, opts...).ToFunc()
}

// ByCommitsCount orders the results by the commits_count field.
func ByCommitsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitsCount, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// ByRepositoryField orders the results by repository field.
func ByRepositoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRepositoryStep(), sql.OrderByField(field, opts...))
	}
}
func newRepositoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RepositoryInverseTable, RepositoryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RepositoryTable, RepositoryColumn),
	)
}
