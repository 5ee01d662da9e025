// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldID, id))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldRepoID, v))
}

// InvestmentScore applies equality check predicate on the "investment_score" field. It's identical to InvestmentScoreEQ.
func InvestmentScore(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldInvestmentScore, v))
}

// InnovationScore applies equality check predicate on the "innovation_score" field. It's identical to InnovationScoreEQ.
func InnovationScore(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldInnovationScore, v))
}

// TeamScore applies equality check predicate on the "team_score" field. It's identical to TeamScoreEQ.
func TeamScore(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTeamScore, v))
}

// MarketScore applies equality check predicate on the "market_score" field. It's identical to MarketScoreEQ.
func MarketScore(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldMarketScore, v))
}

// GrowthScore applies equality check predicate on the "growth_score" field. It's identical to GrowthScoreEQ.
func GrowthScore(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldGrowthScore, v))
}

// TechnicalMoat applies equality check predicate on the "technical_moat" field. It's identical to TechnicalMoatEQ.
func TechnicalMoat(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTechnicalMoat, v))
}

// Scalability applies equality check predicate on the "scalability" field. It's identical to ScalabilityEQ.
func Scalability(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldScalability, v))
}

// DeveloperAdoption applies equality check predicate on the "developer_adoption" field. It's identical to DeveloperAdoptionEQ.
func DeveloperAdoption(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDeveloperAdoption, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldSummary, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldModelUsed, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldRepoID, v))
}

// RepoIDContains applies the Contains predicate on the "repo_id" field.
func RepoIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldRepoID, v))
}

// RepoIDHasPrefix applies the HasPrefix predicate on the "repo_id" field.
func RepoIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldRepoID, v))
}

// RepoIDHasSuffix applies the HasSuffix predicate on the "repo_id" field.
func RepoIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldRepoID, v))
}

// RepoIDEqualFold applies the EqualFold predicate on the "repo_id" field.
func RepoIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldRepoID, v))
}

// RepoIDContainsFold applies the ContainsFold predicate on the "repo_id" field.
func RepoIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldRepoID, v))
}

// InvestmentScoreEQ applies the EQ predicate on the "investment_score" field.
func InvestmentScoreEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldInvestmentScore, v))
}

// InvestmentScoreNEQ applies the NEQ predicate on the "investment_score" field.
func InvestmentScoreNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldInvestmentScore, v))
}

// InvestmentScoreIn applies the In predicate on the "investment_score" field.
func InvestmentScoreIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldInvestmentScore, vs...))
}

// InvestmentScoreNotIn applies the NotIn predicate on the "investment_score" field.
func InvestmentScoreNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldInvestmentScore, vs...))
}

// InvestmentScoreGT applies the GT predicate on the "investment_score" field.
func InvestmentScoreGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldInvestmentScore, v))
}

// InvestmentScoreGTE applies the GTE predicate on the "investment_score" field.
func InvestmentScoreGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldInvestmentScore, v))
}

// InvestmentScoreLT applies the LT predicate on the "investment_score" field.
func InvestmentScoreLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldInvestmentScore, v))
}

// InvestmentScoreLTE applies the LTE predicate on the "investment_score" field.
func InvestmentScoreLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldInvestmentScore, v))
}

// InnovationScoreEQ applies the EQ predicate on the "innovation_score" field.
func InnovationScoreEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldInnovationScore, v))
}

// InnovationScoreNEQ applies the NEQ predicate on the "innovation_score" field.
func InnovationScoreNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldInnovationScore, v))
}

// InnovationScoreIn applies the In predicate on the "innovation_score" field.
func InnovationScoreIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldInnovationScore, vs...))
}

// InnovationScoreNotIn applies the NotIn predicate on the "innovation_score" field.
func InnovationScoreNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldInnovationScore, vs...))
}

// InnovationScoreGT applies the GT predicate on the "innovation_score" field.
func InnovationScoreGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldInnovationScore, v))
}

// InnovationScoreGTE applies the GTE predicate on the "innovation_score" field.
func InnovationScoreGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldInnovationScore, v))
}

// InnovationScoreLT applies the LT predicate on the "innovation_score" field.
func InnovationScoreLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldInnovationScore, v))
}

// InnovationScoreLTE applies the LTE predicate on the "innovation_score" field.
func InnovationScoreLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldInnovationScore, v))
}

// TeamScoreEQ applies the EQ predicate on the "team_score" field.
func TeamScoreEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTeamScore, v))
}

// TeamScoreNEQ applies the NEQ predicate on the "team_score" field.
func TeamScoreNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldTeamScore, v))
}

// TeamScoreIn applies the In predicate on the "team_score" field.
func TeamScoreIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldTeamScore, vs...))
}

// TeamScoreNotIn applies the NotIn predicate on the "team_score" field.
func TeamScoreNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldTeamScore, vs...))
}

// TeamScoreGT applies the GT predicate on the "team_score" field.
func TeamScoreGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldTeamScore, v))
}

// TeamScoreGTE applies the GTE predicate on the "team_score" field.
func TeamScoreGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldTeamScore, v))
}

// TeamScoreLT applies the LT predicate on the "team_score" field.
func TeamScoreLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldTeamScore, v))
}

// TeamScoreLTE applies the LTE predicate on the "team_score" field.
func TeamScoreLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldTeamScore, v))
}

// MarketScoreEQ applies the EQ predicate on the "market_score" field.
func MarketScoreEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldMarketScore, v))
}

// MarketScoreNEQ applies the NEQ predicate on the "market_score" field.
func MarketScoreNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldMarketScore, v))
}

// MarketScoreIn applies the In predicate on the "market_score" field.
func MarketScoreIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldMarketScore, vs...))
}

// MarketScoreNotIn applies the NotIn predicate on the "market_score" field.
func MarketScoreNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldMarketScore, vs...))
}

// MarketScoreGT applies the GT predicate on the "market_score" field.
func MarketScoreGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldMarketScore, v))
}

// MarketScoreGTE applies the GTE predicate on the "market_score" field.
func MarketScoreGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldMarketScore, v))
}

// MarketScoreLT applies the LT predicate on the "market_score" field.
func MarketScoreLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldMarketScore, v))
}

// MarketScoreLTE applies the LTE predicate on the "market_score" field.
func MarketScoreLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldMarketScore, v))
}

// GrowthScoreEQ applies the EQ predicate on the "growth_score" field.
func GrowthScoreEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldGrowthScore, v))
}

// GrowthScoreNEQ applies the NEQ predicate on the "growth_score" field.
func GrowthScoreNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldGrowthScore, v))
}

// GrowthScoreIn applies the In predicate on the "growth_score" field.
func GrowthScoreIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldGrowthScore, vs...))
}

// GrowthScoreNotIn applies the NotIn predicate on the "growth_score" field.
func GrowthScoreNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldGrowthScore, vs...))
}

// GrowthScoreGT applies the GT predicate on the "growth_score" field.
func GrowthScoreGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldGrowthScore, v))
}

// GrowthScoreGTE applies the GTE predicate on the "growth_score" field.
func GrowthScoreGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldGrowthScore, v))
}

// GrowthScoreLT applies the LT predicate on the "growth_score" field.
func GrowthScoreLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldGrowthScore, v))
}

// GrowthScoreLTE applies the LTE predicate on the "growth_score" field.
func GrowthScoreLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldGrowthScore, v))
}

// TechnicalMoatEQ applies the EQ predicate on the "technical_moat" field.
func TechnicalMoatEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTechnicalMoat, v))
}

// TechnicalMoatNEQ applies the NEQ predicate on the "technical_moat" field.
func TechnicalMoatNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldTechnicalMoat, v))
}

// TechnicalMoatIn applies the In predicate on the "technical_moat" field.
func TechnicalMoatIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldTechnicalMoat, vs...))
}

// TechnicalMoatNotIn applies the NotIn predicate on the "technical_moat" field.
func TechnicalMoatNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldTechnicalMoat, vs...))
}

// TechnicalMoatGT applies the GT predicate on the "technical_moat" field.
func TechnicalMoatGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldTechnicalMoat, v))
}

// TechnicalMoatGTE applies the GTE predicate on the "technical_moat" field.
func TechnicalMoatGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldTechnicalMoat, v))
}

// TechnicalMoatLT applies the LT predicate on the "technical_moat" field.
func TechnicalMoatLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldTechnicalMoat, v))
}

// TechnicalMoatLTE applies the LTE predicate on the "technical_moat" field.
func TechnicalMoatLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldTechnicalMoat, v))
}

// TechnicalMoatIsNil applies the IsNil predicate on the "technical_moat" field.
func TechnicalMoatIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldTechnicalMoat))
}

// TechnicalMoatNotNil applies the NotNil predicate on the "technical_moat" field.
func TechnicalMoatNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldTechnicalMoat))
}

// ScalabilityEQ applies the EQ predicate on the "scalability" field.
func ScalabilityEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldScalability, v))
}

// ScalabilityNEQ applies the NEQ predicate on the "scalability" field.
func ScalabilityNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldScalability, v))
}

// ScalabilityIn applies the In predicate on the "scalability" field.
func ScalabilityIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldScalability, vs...))
}

// ScalabilityNotIn applies the NotIn predicate on the "scalability" field.
func ScalabilityNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldScalability, vs...))
}

// ScalabilityGT applies the GT predicate on the "scalability" field.
func ScalabilityGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldScalability, v))
}

// ScalabilityGTE applies the GTE predicate on the "scalability" field.
func ScalabilityGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldScalability, v))
}

// ScalabilityLT applies the LT predicate on the "scalability" field.
func ScalabilityLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldScalability, v))
}

// ScalabilityLTE applies the LTE predicate on the "scalability" field.
func ScalabilityLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldScalability, v))
}

// ScalabilityIsNil applies the IsNil predicate on the "scalability" field.
func ScalabilityIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldScalability))
}

// ScalabilityNotNil applies the NotNil predicate on the "scalability" field.
func ScalabilityNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldScalability))
}

// DeveloperAdoptionEQ applies the EQ predicate on the "developer_adoption" field.
func DeveloperAdoptionEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDeveloperAdoption, v))
}

// DeveloperAdoptionNEQ applies the NEQ predicate on the "developer_adoption" field.
func DeveloperAdoptionNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldDeveloperAdoption, v))
}

// DeveloperAdoptionIn applies the In predicate on the "developer_adoption" field.
func DeveloperAdoptionIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldDeveloperAdoption, vs...))
}

// DeveloperAdoptionNotIn applies the NotIn predicate on the "developer_adoption" field.
func DeveloperAdoptionNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldDeveloperAdoption, vs...))
}

// DeveloperAdoptionGT applies the GT predicate on the "developer_adoption" field.
func DeveloperAdoptionGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldDeveloperAdoption, v))
}

// DeveloperAdoptionGTE applies the GTE predicate on the "developer_adoption" field.
func DeveloperAdoptionGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldDeveloperAdoption, v))
}

// DeveloperAdoptionLT applies the LT predicate on the "developer_adoption" field.
func DeveloperAdoptionLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldDeveloperAdoption, v))
}

// DeveloperAdoptionLTE applies the LTE predicate on the "developer_adoption" field.
func DeveloperAdoptionLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldDeveloperAdoption, v))
}

// DeveloperAdoptionIsNil applies the IsNil predicate on the "developer_adoption" field.
func DeveloperAdoptionIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldDeveloperAdoption))
}

// DeveloperAdoptionNotNil applies the NotNil predicate on the "developer_adoption" field.
func DeveloperAdoptionNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldDeveloperAdoption))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v Recommendation) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v Recommendation) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...Recommendation) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...Recommendation) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldRecommendation, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldSummary, v))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldStrengths))
}

// RisksIsNil applies the IsNil predicate on the "risks" field.
func RisksIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldRisks))
}

// RisksNotNil applies the NotNil predicate on the "risks" field.
func RisksNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldRisks))
}

// QuestionsIsNil applies the IsNil predicate on the "questions" field.
func QuestionsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldQuestions))
}

// QuestionsNotNil applies the NotNil predicate on the "questions" field.
func QuestionsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldQuestions))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldModelUsed, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRepository applies the HasEdge predicate on the "repository" edge.
func HasRepository() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RepositoryTable, RepositoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepositoryWith applies the HasEdge predicate on the "repository" edge with a given conditions (other predicates).
func HasRepositoryWith(preds ...predicate.Repository) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newRepositoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
