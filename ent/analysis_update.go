// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvestmentScore sets the "investment_score" field.
func (_u *AnalysisUpdate) SetInvestmentScore(v int) *AnalysisUpdate {
	_u.mutation.ResetInvestmentScore()
	_u.mutation.SetInvestmentScore(v)
	return _u
}

// SetNillableInvestmentScore sets the "investment_score" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableInvestmentScore(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetInvestmentScore(*v)
	}
	return _u
}

// AddInvestmentScore adds value to the "investment_score" field.
func (_u *AnalysisUpdate) AddInvestmentScore(v int) *AnalysisUpdate {
	_u.mutation.AddInvestmentScore(v)
	return _u
}

// SetInnovationScore sets the "innovation_score" field.
func (_u *AnalysisUpdate) SetInnovationScore(v int) *AnalysisUpdate {
	_u.mutation.ResetInnovationScore()
	_u.mutation.SetInnovationScore(v)
	return _u
}

// SetNillableInnovationScore sets the "innovation_score" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableInnovationScore(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetInnovationScore(*v)
	}
	return _u
}

// AddInnovationScore adds value to the "innovation_score" field.
func (_u *AnalysisUpdate) AddInnovationScore(v int) *AnalysisUpdate {
	_u.mutation.AddInnovationScore(v)
	return _u
}

// SetTeamScore sets the "team_score" field.
func (_u *AnalysisUpdate) SetTeamScore(v int) *AnalysisUpdate {
	_u.mutation.ResetTeamScore()
	_u.mutation.SetTeamScore(v)
	return _u
}

// SetNillableTeamScore sets the "team_score" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableTeamScore(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetTeamScore(*v)
	}
	return _u
}

// AddTeamScore adds value to the "team_score" field.
func (_u *AnalysisUpdate) AddTeamScore(v int) *AnalysisUpdate {
	_u.mutation.AddTeamScore(v)
	return _u
}

// SetMarketScore sets the "market_score" field.
func (_u *AnalysisUpdate) SetMarketScore(v int) *AnalysisUpdate {
	_u.mutation.ResetMarketScore()
	_u.mutation.SetMarketScore(v)
	return _u
}

// SetNillableMarketScore sets the "market_score" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableMarketScore(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetMarketScore(*v)
	}
	return _u
}

// AddMarketScore adds value to the "market_score" field.
func (_u *AnalysisUpdate) AddMarketScore(v int) *AnalysisUpdate {
	_u.mutation.AddMarketScore(v)
	return _u
}

// SetGrowthScore sets the "growth_score" field.
func (_u *AnalysisUpdate) SetGrowthScore(v int) *AnalysisUpdate {
	_u.mutation.ResetGrowthScore()
	_u.mutation.SetGrowthScore(v)
	return _u
}

// SetNillableGrowthScore sets the "growth_score" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableGrowthScore(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetGrowthScore(*v)
	}
	return _u
}

// AddGrowthScore adds value to the "growth_score" field.
func (_u *AnalysisUpdate) AddGrowthScore(v int) *AnalysisUpdate {
	_u.mutation.AddGrowthScore(v)
	return _u
}

// SetTechnicalMoat sets the "technical_moat" field.
func (_u *AnalysisUpdate) SetTechnicalMoat(v int) *AnalysisUpdate {
	_u.mutation.ResetTechnicalMoat()
	_u.mutation.SetTechnicalMoat(v)
	return _u
}

// SetNillableTechnicalMoat sets the "technical_moat" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableTechnicalMoat(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetTechnicalMoat(*v)
	}
	return _u
}

// AddTechnicalMoat adds value to the "technical_moat" field.
func (_u *AnalysisUpdate) AddTechnicalMoat(v int) *AnalysisUpdate {
	_u.mutation.AddTechnicalMoat(v)
	return _u
}

// ClearTechnicalMoat clears the value of the "technical_moat" field.
func (_u *AnalysisUpdate) ClearTechnicalMoat() *AnalysisUpdate {
	_u.mutation.ClearTechnicalMoat()
	return _u
}

// SetScalability sets the "scalability" field.
func (_u *AnalysisUpdate) SetScalability(v int) *AnalysisUpdate {
	_u.mutation.ResetScalability()
	_u.mutation.SetScalability(v)
	return _u
}

// SetNillableScalability sets the "scalability" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableScalability(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetScalability(*v)
	}
	return _u
}

// AddScalability adds value to the "scalability" field.
func (_u *AnalysisUpdate) AddScalability(v int) *AnalysisUpdate {
	_u.mutation.AddScalability(v)
	return _u
}

// ClearScalability clears the value of the "scalability" field.
func (_u *AnalysisUpdate) ClearScalability() *AnalysisUpdate {
	_u.mutation.ClearScalability()
	return _u
}

// SetDeveloperAdoption sets the "developer_adoption" field.
func (_u *AnalysisUpdate) SetDeveloperAdoption(v int) *AnalysisUpdate {
	_u.mutation.ResetDeveloperAdoption()
	_u.mutation.SetDeveloperAdoption(v)
	return _u
}

// SetNillableDeveloperAdoption sets the "developer_adoption" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableDeveloperAdoption(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetDeveloperAdoption(*v)
	}
	return _u
}

// AddDeveloperAdoption adds value to the "developer_adoption" field.
func (_u *AnalysisUpdate) AddDeveloperAdoption(v int) *AnalysisUpdate {
	_u.mutation.AddDeveloperAdoption(v)
	return _u
}

// ClearDeveloperAdoption clears the value of the "developer_adoption" field.
func (_u *AnalysisUpdate) ClearDeveloperAdoption() *AnalysisUpdate {
	_u.mutation.ClearDeveloperAdoption()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *AnalysisUpdate) SetRecommendation(v analysis.Recommendation) *AnalysisUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableRecommendation(v *analysis.Recommendation) *AnalysisUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisUpdate) SetSummary(v string) *AnalysisUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableSummary(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisUpdate) ClearSummary() *AnalysisUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *AnalysisUpdate) SetStrengths(v []string) *AnalysisUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *AnalysisUpdate) AppendStrengths(v []string) *AnalysisUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *AnalysisUpdate) ClearStrengths() *AnalysisUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *AnalysisUpdate) SetRisks(v []string) *AnalysisUpdate {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *AnalysisUpdate) AppendRisks(v []string) *AnalysisUpdate {
	_u.mutation.AppendRisks(v)
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *AnalysisUpdate) ClearRisks() *AnalysisUpdate {
	_u.mutation.ClearRisks()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *AnalysisUpdate) SetQuestions(v []string) *AnalysisUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *AnalysisUpdate) AppendQuestions(v []string) *AnalysisUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *AnalysisUpdate) ClearQuestions() *AnalysisUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *AnalysisUpdate) SetModelUsed(v string) *AnalysisUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableModelUsed(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *AnalysisUpdate) SetCost(v float64) *AnalysisUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableCost(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *AnalysisUpdate) AddCost(v float64) *AnalysisUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.InvestmentScore(); ok {
		if err := analysis.InvestmentScoreValidator(v); err != nil {
			return &ValidationError{Name: "investment_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.investment_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InnovationScore(); ok {
		if err := analysis.InnovationScoreValidator(v); err != nil {
			return &ValidationError{Name: "innovation_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.innovation_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TeamScore(); ok {
		if err := analysis.TeamScoreValidator(v); err != nil {
			return &ValidationError{Name: "team_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.team_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarketScore(); ok {
		if err := analysis.MarketScoreValidator(v); err != nil {
			return &ValidationError{Name: "market_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.market_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := analysis.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Analysis.recommendation": %w`, err)}
		}
	}
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.repository"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvestmentScore(); ok {
		_spec.SetField(analysis.FieldInvestmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvestmentScore(); ok {
		_spec.AddField(analysis.FieldInvestmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InnovationScore(); ok {
		_spec.SetField(analysis.FieldInnovationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInnovationScore(); ok {
		_spec.AddField(analysis.FieldInnovationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TeamScore(); ok {
		_spec.SetField(analysis.FieldTeamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTeamScore(); ok {
		_spec.AddField(analysis.FieldTeamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarketScore(); ok {
		_spec.SetField(analysis.FieldMarketScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarketScore(); ok {
		_spec.AddField(analysis.FieldMarketScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrowthScore(); ok {
		_spec.SetField(analysis.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrowthScore(); ok {
		_spec.AddField(analysis.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TechnicalMoat(); ok {
		_spec.SetField(analysis.FieldTechnicalMoat, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTechnicalMoat(); ok {
		_spec.AddField(analysis.FieldTechnicalMoat, field.TypeInt, value)
	}
	if _u.mutation.TechnicalMoatCleared() {
		_spec.ClearField(analysis.FieldTechnicalMoat, field.TypeInt)
	}
	if value, ok := _u.mutation.Scalability(); ok {
		_spec.SetField(analysis.FieldScalability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScalability(); ok {
		_spec.AddField(analysis.FieldScalability, field.TypeInt, value)
	}
	if _u.mutation.ScalabilityCleared() {
		_spec.ClearField(analysis.FieldScalability, field.TypeInt)
	}
	if value, ok := _u.mutation.DeveloperAdoption(); ok {
		_spec.SetField(analysis.FieldDeveloperAdoption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeveloperAdoption(); ok {
		_spec.AddField(analysis.FieldDeveloperAdoption, field.TypeInt, value)
	}
	if _u.mutation.DeveloperAdoptionCleared() {
		_spec.ClearField(analysis.FieldDeveloperAdoption, field.TypeInt)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(analysis.FieldRecommendation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysis.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysis.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(analysis.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(analysis.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(analysis.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldRisks, value)
		})
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(analysis.FieldRisks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(analysis.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(analysis.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(analysis.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(analysis.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(analysis.FieldCost, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetInvestmentScore sets the "investment_score" field.
func (_u *AnalysisUpdateOne) SetInvestmentScore(v int) *AnalysisUpdateOne {
	_u.mutation.ResetInvestmentScore()
	_u.mutation.SetInvestmentScore(v)
	return _u
}

// SetNillableInvestmentScore sets the "investment_score" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableInvestmentScore(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetInvestmentScore(*v)
	}
	return _u
}

// AddInvestmentScore adds value to the "investment_score" field.
func (_u *AnalysisUpdateOne) AddInvestmentScore(v int) *AnalysisUpdateOne {
	_u.mutation.AddInvestmentScore(v)
	return _u
}

// SetInnovationScore sets the "innovation_score" field.
func (_u *AnalysisUpdateOne) SetInnovationScore(v int) *AnalysisUpdateOne {
	_u.mutation.ResetInnovationScore()
	_u.mutation.SetInnovationScore(v)
	return _u
}

// SetNillableInnovationScore sets the "innovation_score" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableInnovationScore(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetInnovationScore(*v)
	}
	return _u
}

// AddInnovationScore adds value to the "innovation_score" field.
func (_u *AnalysisUpdateOne) AddInnovationScore(v int) *AnalysisUpdateOne {
	_u.mutation.AddInnovationScore(v)
	return _u
}

// SetTeamScore sets the "team_score" field.
func (_u *AnalysisUpdateOne) SetTeamScore(v int) *AnalysisUpdateOne {
	_u.mutation.ResetTeamScore()
	_u.mutation.SetTeamScore(v)
	return _u
}

// SetNillableTeamScore sets the "team_score" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableTeamScore(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetTeamScore(*v)
	}
	return _u
}

// AddTeamScore adds value to the "team_score" field.
func (_u *AnalysisUpdateOne) AddTeamScore(v int) *AnalysisUpdateOne {
	_u.mutation.AddTeamScore(v)
	return _u
}

// SetMarketScore sets the "market_score" field.
func (_u *AnalysisUpdateOne) SetMarketScore(v int) *AnalysisUpdateOne {
	_u.mutation.ResetMarketScore()
	_u.mutation.SetMarketScore(v)
	return _u
}

// SetNillableMarketScore sets the "market_score" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableMarketScore(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetMarketScore(*v)
	}
	return _u
}

// AddMarketScore adds value to the "market_score" field.
func (_u *AnalysisUpdateOne) AddMarketScore(v int) *AnalysisUpdateOne {
	_u.mutation.AddMarketScore(v)
	return _u
}

// SetGrowthScore sets the "growth_score" field.
func (_u *AnalysisUpdateOne) SetGrowthScore(v int) *AnalysisUpdateOne {
	_u.mutation.ResetGrowthScore()
	_u.mutation.SetGrowthScore(v)
	return _u
}

// SetNillableGrowthScore sets the "growth_score" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableGrowthScore(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetGrowthScore(*v)
	}
	return _u
}

// AddGrowthScore adds value to the "growth_score" field.
func (_u *AnalysisUpdateOne) AddGrowthScore(v int) *AnalysisUpdateOne {
	_u.mutation.AddGrowthScore(v)
	return _u
}

// SetTechnicalMoat sets the "technical_moat" field.
func (_u *AnalysisUpdateOne) SetTechnicalMoat(v int) *AnalysisUpdateOne {
	_u.mutation.ResetTechnicalMoat()
	_u.mutation.SetTechnicalMoat(v)
	return _u
}

// SetNillableTechnicalMoat sets the "technical_moat" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableTechnicalMoat(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetTechnicalMoat(*v)
	}
	return _u
}

// AddTechnicalMoat adds value to the "technical_moat" field.
func (_u *AnalysisUpdateOne) AddTechnicalMoat(v int) *AnalysisUpdateOne {
	_u.mutation.AddTechnicalMoat(v)
	return _u
}

// ClearTechnicalMoat clears the value of the "technical_moat" field.
func (_u *AnalysisUpdateOne) ClearTechnicalMoat() *AnalysisUpdateOne {
	_u.mutation.ClearTechnicalMoat()
	return _u
}

// SetScalability sets the "scalability" field.
func (_u *AnalysisUpdateOne) SetScalability(v int) *AnalysisUpdateOne {
	_u.mutation.ResetScalability()
	_u.mutation.SetScalability(v)
	return _u
}

// SetNillableScalability sets the "scalability" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableScalability(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetScalability(*v)
	}
	return _u
}

// AddScalability adds value to the "scalability" field.
func (_u *AnalysisUpdateOne) AddScalability(v int) *AnalysisUpdateOne {
	_u.mutation.AddScalability(v)
	return _u
}

// ClearScalability clears the value of the "scalability" field.
func (_u *AnalysisUpdateOne) ClearScalability() *AnalysisUpdateOne {
	_u.mutation.ClearScalability()
	return _u
}

// SetDeveloperAdoption sets the "developer_adoption" field.
func (_u *AnalysisUpdateOne) SetDeveloperAdoption(v int) *AnalysisUpdateOne {
	_u.mutation.ResetDeveloperAdoption()
	_u.mutation.SetDeveloperAdoption(v)
	return _u
}

// SetNillableDeveloperAdoption sets the "developer_adoption" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableDeveloperAdoption(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetDeveloperAdoption(*v)
	}
	return _u
}

// AddDeveloperAdoption adds value to the "developer_adoption" field.
func (_u *AnalysisUpdateOne) AddDeveloperAdoption(v int) *AnalysisUpdateOne {
	_u.mutation.AddDeveloperAdoption(v)
	return _u
}

// ClearDeveloperAdoption clears the value of the "developer_adoption" field.
func (_u *AnalysisUpdateOne) ClearDeveloperAdoption() *AnalysisUpdateOne {
	_u.mutation.ClearDeveloperAdoption()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *AnalysisUpdateOne) SetRecommendation(v analysis.Recommendation) *AnalysisUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableRecommendation(v *analysis.Recommendation) *AnalysisUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisUpdateOne) SetSummary(v string) *AnalysisUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableSummary(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisUpdateOne) ClearSummary() *AnalysisUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *AnalysisUpdateOne) SetStrengths(v []string) *AnalysisUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *AnalysisUpdateOne) AppendStrengths(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *AnalysisUpdateOne) ClearStrengths() *AnalysisUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *AnalysisUpdateOne) SetRisks(v []string) *AnalysisUpdateOne {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *AnalysisUpdateOne) AppendRisks(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendRisks(v)
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *AnalysisUpdateOne) ClearRisks() *AnalysisUpdateOne {
	_u.mutation.ClearRisks()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *AnalysisUpdateOne) SetQuestions(v []string) *AnalysisUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *AnalysisUpdateOne) AppendQuestions(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *AnalysisUpdateOne) ClearQuestions() *AnalysisUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *AnalysisUpdateOne) SetModelUsed(v string) *AnalysisUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableModelUsed(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *AnalysisUpdateOne) SetCost(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableCost(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *AnalysisUpdateOne) AddCost(v float64) *AnalysisUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.InvestmentScore(); ok {
		if err := analysis.InvestmentScoreValidator(v); err != nil {
			return &ValidationError{Name: "investment_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.investment_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InnovationScore(); ok {
		if err := analysis.InnovationScoreValidator(v); err != nil {
			return &ValidationError{Name: "innovation_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.innovation_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TeamScore(); ok {
		if err := analysis.TeamScoreValidator(v); err != nil {
			return &ValidationError{Name: "team_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.team_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarketScore(); ok {
		if err := analysis.MarketScoreValidator(v); err != nil {
			return &ValidationError{Name: "market_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.market_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := analysis.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Analysis.recommendation": %w`, err)}
		}
	}
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.repository"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvestmentScore(); ok {
		_spec.SetField(analysis.FieldInvestmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvestmentScore(); ok {
		_spec.AddField(analysis.FieldInvestmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InnovationScore(); ok {
		_spec.SetField(analysis.FieldInnovationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInnovationScore(); ok {
		_spec.AddField(analysis.FieldInnovationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TeamScore(); ok {
		_spec.SetField(analysis.FieldTeamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTeamScore(); ok {
		_spec.AddField(analysis.FieldTeamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarketScore(); ok {
		_spec.SetField(analysis.FieldMarketScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarketScore(); ok {
		_spec.AddField(analysis.FieldMarketScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrowthScore(); ok {
		_spec.SetField(analysis.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrowthScore(); ok {
		_spec.AddField(analysis.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TechnicalMoat(); ok {
		_spec.SetField(analysis.FieldTechnicalMoat, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTechnicalMoat(); ok {
		_spec.AddField(analysis.FieldTechnicalMoat, field.TypeInt, value)
	}
	if _u.mutation.TechnicalMoatCleared() {
		_spec.ClearField(analysis.FieldTechnicalMoat, field.TypeInt)
	}
	if value, ok := _u.mutation.Scalability(); ok {
		_spec.SetField(analysis.FieldScalability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScalability(); ok {
		_spec.AddField(analysis.FieldScalability, field.TypeInt, value)
	}
	if _u.mutation.ScalabilityCleared() {
		_spec.ClearField(analysis.FieldScalability, field.TypeInt)
	}
	if value, ok := _u.mutation.DeveloperAdoption(); ok {
		_spec.SetField(analysis.FieldDeveloperAdoption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeveloperAdoption(); ok {
		_spec.AddField(analysis.FieldDeveloperAdoption, field.TypeInt, value)
	}
	if _u.mutation.DeveloperAdoptionCleared() {
		_spec.ClearField(analysis.FieldDeveloperAdoption, field.TypeInt)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(analysis.FieldRecommendation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysis.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysis.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(analysis.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(analysis.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(analysis.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldRisks, value)
		})
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(analysis.FieldRisks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(analysis.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(analysis.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(analysis.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(analysis.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(analysis.FieldCost, field.TypeFloat64, value)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
