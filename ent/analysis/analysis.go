// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysis type in the database.
	Label = "analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldRepoID holds the string denoting the repo_id field in the database.
	FieldRepoID = "repo_id"
	// FieldInvestmentScore holds the string denoting the investment_score field in the database.
	FieldInvestmentScore = "investment_score"
	// FieldInnovationScore holds the string denoting the innovation_score field in the database.
	FieldInnovationScore = "innovation_score"
	// FieldTeamScore holds the string denoting the team_score field in the database.
	FieldTeamScore = "team_score"
	// FieldMarketScore holds the string denoting the market_score field in the database.
	FieldMarketScore = "market_score"
	// FieldGrowthScore holds the string denoting the growth_score field in the database.
	FieldGrowthScore = "growth_score"
	// FieldTechnicalMoat holds the string denoting the technical_moat field in the database.
	FieldTechnicalMoat = "technical_moat"
	// FieldScalability holds the string denoting the scalability field in the database.
	FieldScalability = "scalability"
	// FieldDeveloperAdoption holds the string denoting the developer_adoption field in the database.
	FieldDeveloperAdoption = "developer_adoption"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldRisks holds the string denoting the risks field in the database.
	FieldRisks = "risks"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRepository holds the string denoting the repository edge name in mutations.
	EdgeRepository = "repository"
	// RepositoryFieldID holds the string denoting the ID field of the Repository.
	RepositoryFieldID = "repo_id"
	// Table holds the table name of the analysis in the database.
	Table = "analyses"
	// RepositoryTable is the table that holds the repository relation/edge.
	RepositoryTable = "analyses"
	// RepositoryInverseTable is the table name for the Repository entity.
	// It exists in this package in order to avoid circular dependency with the "repository" package.
	RepositoryInverseTable = "repositories"
	// RepositoryColumn is the table column denoting the repository relation/edge.
	RepositoryColumn = "repo_id"
)

// Columns holds all SQL columns for analysis fields.
var Columns = []string{
	FieldID,
	FieldRepoID,
	FieldInvestmentScore,
	FieldInnovationScore,
	FieldTeamScore,
	FieldMarketScore,
	FieldGrowthScore,
	FieldTechnicalMoat,
	FieldScalability,
	FieldDeveloperAdoption,
	FieldRecommendation,
	FieldSummary,
	FieldStrengths,
	FieldRisks,
	FieldQuestions,
	FieldModelUsed,
	FieldCost,
	FieldCreatedAt,
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
	// InvestmentScoreValidator is a validator for the "investment_score" field. It is called by the builders before save.
	InvestmentScoreValidator func(int) error
	// InnovationScoreValidator is a validator for the "innovation_score" field. It is called by the builders before save.
	InnovationScoreValidator func(int) error
	// TeamScoreValidator is a validator for the "team_score" field. It is called by the builders before save.
	TeamScoreValidator func(int) error
	// MarketScoreValidator is a validator for the "market_score" field. It is called by the builders before save.
	MarketScoreValidator func(int) error
	// DefaultGrowthScore holds the default value on creation for the "growth_score" field.
	DefaultGrowthScore int
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Recommendation defines the type for the "recommendation" enum field.
type Recommendation string

// Recommendation values.
const (
	RecommendationStrongBuy Recommendation = "strong_buy"
	RecommendationBuy       Recommendation = "buy"
	RecommendationHold      Recommendation = "hold"
	RecommendationPass      Recommendation = "pass"
)

func (r Recommendation) String() string {
	return string(r)
}

// RecommendationValidator is a validator for the "recommendation" field enum values. It is called by the builders before save.
func RecommendationValidator(r Recommendation) error {
	switch r {
	case RecommendationStrongBuy, RecommendationBuy, RecommendationHold, RecommendationPass:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for recommendation field: %q", r)
	}
}

// OrderOption defines the ordering options for the Analysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoID orders the results by the repo_id field.
func ByRepoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoID, opts...).ToFunc()
}

// ByInvestmentScore orders the results by the investment_score field.
func ByInvestmentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestmentScore, opts...).ToFunc()
}

// ByInnovationScore orders the results by the innovation_score field.
func ByInnovationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInnovationScore, opts...).ToFunc()
}

// ByTeamScore orders the results by the team_score field.
func ByTeamScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamScore, opts...).ToFunc()
}

// ByMarketScore orders the results by the market_score field.
func ByMarketScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketScore, opts...).ToFunc()
}

// ByGrowthScore orders the results by the growth_score field.
func ByGrowthScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrowthScore, opts...).ToFunc()
}

// ByTechnicalMoat orders the results by the technical_moat field.
func ByTechnicalMoat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnicalMoat, opts...).ToFunc()
}

// ByScalability orders the results by the scalability field.
func ByScalability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScalability, opts...).ToFunc()
}

// ByDeveloperAdoption orders the results by the developer_adoption field.
func ByDeveloperAdoption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeveloperAdoption, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
