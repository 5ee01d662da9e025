// Code generated by ent, DO NOT EDIT.

package repository

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the repository type in the database.
	Label = "repository"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "repo_id"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// FieldForks holds the string denoting the forks field in the database.
	FieldForks = "forks"
	// FieldOpenIssues holds the string denoting the open_issues field in the database.
	FieldOpenIssues = "open_issues"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPushedAt holds the string denoting the pushed_at field in the database.
	FieldPushedAt = "pushed_at"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldIsFork holds the string denoting the is_fork field in the database.
	FieldIsFork = "is_fork"
	// FieldHTMLURL holds the string denoting the html_url field in the database.
	FieldHTMLURL = "html_url"
	// FieldDefaultBranch holds the string denoting the default_branch field in the database.
	FieldDefaultBranch = "default_branch"
	// FieldDiscoveredAt holds the string denoting the discovered_at field in the database.
	FieldDiscoveredAt = "discovered_at"
	// EdgeSnapshots holds the string denoting the snapshots edge name in mutations.
	EdgeSnapshots = "snapshots"
	// EdgeTierAssignment holds the string denoting the tier_assignment edge name in mutations.
	EdgeTierAssignment = "tier_assignment"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// EdgeContributors holds the string denoting the contributors edge name in mutations.
	EdgeContributors = "contributors"
	// MetricSnapshotFieldID holds the string denoting the ID field of the MetricSnapshot.
	MetricSnapshotFieldID = "snapshot_id"
	// TierAssignmentFieldID holds the string denoting the ID field of the TierAssignment.
	TierAssignmentFieldID = "assignment_id"
	// AnalysisFieldID holds the string denoting the ID field of the Analysis.
	AnalysisFieldID = "analysis_id"
	// AlertFieldID holds the string denoting the ID field of the Alert.
	AlertFieldID = "alert_id"
	// ContributorFieldID holds the string denoting the ID field of the Contributor.
	ContributorFieldID = "contributor_id"
	// Table holds the table name of the repository in the database.
	Table = "repositories"
	// SnapshotsTable is the table that holds the snapshots relation/edge.
	SnapshotsTable = "metric_snapshots"
	// SnapshotsInverseTable is the table name for the MetricSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "metricsnapshot" package.
	SnapshotsInverseTable = "metric_snapshots"
	// SnapshotsColumn is the table column denoting the snapshots relation/edge.
	SnapshotsColumn = "repo_id"
	// TierAssignmentTable is the table that holds the tier_assignment relation/edge.
	TierAssignmentTable = "tier_assignments"
	// TierAssignmentInverseTable is the table name for the TierAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "tierassignment" package.
	TierAssignmentInverseTable = "tier_assignments"
	// TierAssignmentColumn is the table column denoting the tier_assignment relation/edge.
	TierAssignmentColumn = "repo_id"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "analyses"
	// AnalysesInverseTable is the table name for the Analysis entity.
	// It exists in this package in order to avoid circular dependency with the "analysis" package.
	AnalysesInverseTable = "analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "repo_id"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "alerts"
	// AlertsInverseTable is the table name for the Alert entity.
	// It exists in this package in order to avoid circular dependency with the "alert" package.
	AlertsInverseTable = "alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "repo_id"
	// ContributorsTable is the table that holds the contributors relation/edge.
	ContributorsTable = "contributors"
	// ContributorsInverseTable is the table name for the Contributor entity.
	// It exists in this package in order to avoid circular dependency with the "contributor" package.
	ContributorsInverseTable = "contributors"
	// ContributorsColumn is the table column denoting the contributors relation/edge.
	ContributorsColumn = "repo_id"
)

// Columns holds all SQL columns for repository fields.
var Columns = []string{
	FieldID,
	FieldOwner,
	FieldName,
	FieldFullName,
	FieldDescription,
	FieldStars,
	FieldForks,
	FieldOpenIssues,
	FieldLanguage,
	FieldTopics,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPushedAt,
	FieldIsArchived,
	FieldIsFork,
	FieldHTMLURL,
	FieldDefaultBranch,
	FieldDiscoveredAt,
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
	// StarsValidator is a validator for the "stars" field. It is called by the builders before save.
	StarsValidator func(int) error
	// DefaultForks holds the default value on creation for the "forks" field.
	DefaultForks int
	// ForksValidator is a validator for the "forks" field. It is called by the builders before save.
	ForksValidator func(int) error
	// DefaultOpenIssues holds the default value on creation for the "open_issues" field.
	DefaultOpenIssues int
	// OpenIssuesValidator is a validator for the "open_issues" field. It is called by the builders before save.
	OpenIssuesValidator func(int) error
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// DefaultIsFork holds the default value on creation for the "is_fork" field.
	DefaultIsFork bool
	// DefaultDiscoveredAt holds the default value on creation for the "discovered_at" field.
	DefaultDiscoveredAt func() time.Time
)

// OrderOption defines the ordering options for the Repository queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
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

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPushedAt orders the results by the pushed_at field.
func ByPushedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushedAt, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByIsFork orders the results by the is_fork field.
func ByIsFork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFork, opts...).ToFunc()
}

// ByHTMLURL orders the results by the html_url field.
func ByHTMLURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHTMLURL, opts...).ToFunc()
}

// ByDefaultBranch orders the results by the default_branch field.
func ByDefaultBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultBranch, opts...).ToFunc()
}

// ByDiscoveredAt orders the results by the discovered_at field.
func ByDiscoveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveredAt, opts...).ToFunc()
}

// BySnapshotsCount orders the results by snapshots count.
func BySnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnapshotsStep(), opts...)
	}
}

// BySnapshots orders the results by snapshots terms.
func BySnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTierAssignmentField orders the results by tier_assignment field.
func ByTierAssignmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTierAssignmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContributorsCount orders the results by contributors count.
func ByContributorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContributorsStep(), opts...)
	}
}

// ByContributors orders the results by contributors terms.
func ByContributors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContributorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnapshotsInverseTable, MetricSnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
	)
}
func newTierAssignmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TierAssignmentInverseTable, TierAssignmentFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TierAssignmentTable, TierAssignmentColumn),
	)
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, AnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, AlertFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
func newContributorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContributorsInverseTable, ContributorFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContributorsTable, ContributorsColumn),
	)
}
