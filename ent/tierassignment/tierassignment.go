// Code generated by ent, DO NOT EDIT.

package tierassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tierassignment type in the database.
	Label = "tier_assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "assignment_id"
	// FieldRepoID holds the string denoting the repo_id field in the database.
	FieldRepoID = "repo_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// FieldGrowthVelocity holds the string denoting the growth_velocity field in the database.
	FieldGrowthVelocity = "growth_velocity"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldScanPriority holds the string denoting the scan_priority field in the database.
	FieldScanPriority = "scan_priority"
	// FieldLastDeepScan holds the string denoting the last_deep_scan field in the database.
	FieldLastDeepScan = "last_deep_scan"
	// FieldLastBasicScan holds the string denoting the last_basic_scan field in the database.
	FieldLastBasicScan = "last_basic_scan"
	// FieldNextScanDue holds the string denoting the next_scan_due field in the database.
	FieldNextScanDue = "next_scan_due"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRepository holds the string denoting the repository edge name in mutations.
	EdgeRepository = "repository"
	// RepositoryFieldID holds the string denoting the ID field of the Repository.
	RepositoryFieldID = "repo_id"
	// Table holds the table name of the tierassignment in the database.
	Table = "tier_assignments"
	// RepositoryTable is the table that holds the repository relation/edge.
	RepositoryTable = "tier_assignments"
	// RepositoryInverseTable is the table name for the Repository entity.
	// It exists in this package in order to avoid circular dependency with the "repository" package.
	RepositoryInverseTable = "repositories"
	// RepositoryColumn is the table column denoting the repository relation/edge.
	RepositoryColumn = "repo_id"
)

// Columns holds all SQL columns for tierassignment fields.
var Columns = []string{
	FieldID,
	FieldRepoID,
	FieldTier,
	FieldStars,
	FieldGrowthVelocity,
	FieldEngagementScore,
	FieldScanPriority,
	FieldLastDeepScan,
	FieldLastBasicScan,
	FieldNextScanDue,
	FieldUpdatedAt,
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
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(int) error
	// DefaultStars holds the default value on creation for the "stars" field.
	DefaultStars int
	// DefaultGrowthVelocity holds the default value on creation for the "growth_velocity" field.
	DefaultGrowthVelocity float64
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore float64
	// DefaultScanPriority holds the default value on creation for the "scan_priority" field.
	DefaultScanPriority float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TierAssignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoID orders the results by the repo_id field.
func ByRepoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByStars orders the results by the stars field.
func ByStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStars, opts...).ToFunc()
}

// ByGrowthVelocity orders the results by the growth_velocity field.
func ByGrowthVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrowthVelocity, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByScanPriority orders the results by the scan_priority field.
func ByScanPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanPriority, opts...).ToFunc()
}

// ByLastDeepScan orders the results by the last_deep_scan field.
func ByLastDeepScan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDeepScan, opts...).ToFunc()
}

// ByLastBasicScan orders the results by the last_basic_scan field.
func ByLastBasicScan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBasicScan, opts...).ToFunc()
}

// ByNextScanDue orders the results by the next_scan_due field.
func ByNextScanDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextScanDue, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, RepositoryTable, RepositoryColumn),
	)
}
