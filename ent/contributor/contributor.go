// Code generated by ent, DO NOT EDIT.

package contributor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contributor type in the database.
	Label = "contributor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "contributor_id"
	// FieldRepoID holds the string denoting the repo_id field in the database.
	FieldRepoID = "repo_id"
	// FieldLogin holds the string denoting the login field in the database.
	FieldLogin = "login"
	// FieldContributions holds the string denoting the contributions field in the database.
	FieldContributions = "contributions"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// EdgeRepository holds the string denoting the repository edge name in mutations.
	EdgeRepository = "repository"
	// RepositoryFieldID holds the string denoting the ID field of the Repository.
	RepositoryFieldID = "repo_id"
	// Table holds the table name of the contributor in the database.
	Table = "contributors"
	// RepositoryTable is the table that holds the repository relation/edge.
	RepositoryTable = "contributors"
	// RepositoryInverseTable is the table name for the Repository entity.
	// It exists in this package in order to avoid circular dependency with the "repository" package.
	RepositoryInverseTable = "repositories"
	// RepositoryColumn is the table column denoting the repository relation/edge.
	RepositoryColumn = "repo_id"
)

// Columns holds all SQL columns for contributor fields.
var Columns = []string{
	FieldID,
	FieldRepoID,
	FieldLogin,
	FieldContributions,
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
	// DefaultContributions holds the default value on creation for the "contributions" field.
	DefaultContributions int
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
	// UpdateDefaultRecordedAt holds the default value on update for the "recorded_at" field.
	UpdateDefaultRecordedAt func() time.Time
)

// OrderOption defines the ordering options for the Contributor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoID orders the results by the repo_id field.
func ByRepoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoID, opts...).ToFunc()
}

// ByLogin orders the results by the login field.
func ByLogin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogin, opts...).ToFunc()
}

// ByContributions orders the results by the contributions field.
func ByContributions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributions, opts...).ToFunc()
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
