// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/repository"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
}

// SetRepoID sets the "repo_id" field.
func (_c *AnalysisCreate) SetRepoID(v string) *AnalysisCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetInvestmentScore sets the "investment_score" field.
func (_c *AnalysisCreate) SetInvestmentScore(v int) *AnalysisCreate {
	_c.mutation.SetInvestmentScore(v)
	return _c
}

// SetInnovationScore sets the "innovation_score" field.
func (_c *AnalysisCreate) SetInnovationScore(v int) *AnalysisCreate {
	_c.mutation.SetInnovationScore(v)
	return _c
}

// SetTeamScore sets the "team_score" field.
func (_c *AnalysisCreate) SetTeamScore(v int) *AnalysisCreate {
	_c.mutation.SetTeamScore(v)
	return _c
}

// SetMarketScore sets the "market_score" field.
func (_c *AnalysisCreate) SetMarketScore(v int) *AnalysisCreate {
	_c.mutation.SetMarketScore(v)
	return _c
}

// SetGrowthScore sets the "growth_score" field.
func (_c *AnalysisCreate) SetGrowthScore(v int) *AnalysisCreate {
	_c.mutation.SetGrowthScore(v)
	return _c
}

// SetNillableGrowthScore sets the "growth_score" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableGrowthScore(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetGrowthScore(*v)
	}
	return _c
}

// SetTechnicalMoat sets the "technical_moat" field.
func (_c *AnalysisCreate) SetTechnicalMoat(v int) *AnalysisCreate {
	_c.mutation.SetTechnicalMoat(v)
	return _c
}

// SetNillableTechnicalMoat sets the "technical_moat" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableTechnicalMoat(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetTechnicalMoat(*v)
	}
	return _c
}

// SetScalability sets the "scalability" field.
func (_c *AnalysisCreate) SetScalability(v int) *AnalysisCreate {
	_c.mutation.SetScalability(v)
	return _c
}

// SetNillableScalability sets the "scalability" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableScalability(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetScalability(*v)
	}
	return _c
}

// SetDeveloperAdoption sets the "developer_adoption" field.
func (_c *AnalysisCreate) SetDeveloperAdoption(v int) *AnalysisCreate {
	_c.mutation.SetDeveloperAdoption(v)
	return _c
}

// SetNillableDeveloperAdoption sets the "developer_adoption" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableDeveloperAdoption(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetDeveloperAdoption(*v)
	}
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *AnalysisCreate) SetRecommendation(v analysis.Recommendation) *AnalysisCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AnalysisCreate) SetSummary(v string) *AnalysisCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableSummary(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *AnalysisCreate) SetStrengths(v []string) *AnalysisCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetRisks sets the "risks" field.
func (_c *AnalysisCreate) SetRisks(v []string) *AnalysisCreate {
	_c.mutation.SetRisks(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *AnalysisCreate) SetQuestions(v []string) *AnalysisCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *AnalysisCreate) SetModelUsed(v string) *AnalysisCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetCost sets the "cost" field.
func (_c *AnalysisCreate) SetCost(v float64) *AnalysisCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCost(v *float64) *AnalysisCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v string) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRepositoryID sets the "repository" edge to the Repository entity by ID.
func (_c *AnalysisCreate) SetRepositoryID(id string) *AnalysisCreate {
	_c.mutation.SetRepositoryID(id)
	return _c
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_c *AnalysisCreate) SetRepository(v *Repository) *AnalysisCreate {
	return _c.SetRepositoryID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.GrowthScore(); !ok {
		v := analysis.DefaultGrowthScore
		_c.mutation.SetGrowthScore(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := analysis.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "Analysis.repo_id"`)}
	}
	if _, ok := _c.mutation.InvestmentScore(); !ok {
		return &ValidationError{Name: "investment_score", err: errors.New(`ent: missing required field "Analysis.investment_score"`)}
	}
	if v, ok := _c.mutation.InvestmentScore(); ok {
		if err := analysis.InvestmentScoreValidator(v); err != nil {
			return &ValidationError{Name: "investment_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.investment_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InnovationScore(); !ok {
		return &ValidationError{Name: "innovation_score", err: errors.New(`ent: missing required field "Analysis.innovation_score"`)}
	}
	if v, ok := _c.mutation.InnovationScore(); ok {
		if err := analysis.InnovationScoreValidator(v); err != nil {
			return &ValidationError{Name: "innovation_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.innovation_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TeamScore(); !ok {
		return &ValidationError{Name: "team_score", err: errors.New(`ent: missing required field "Analysis.team_score"`)}
	}
	if v, ok := _c.mutation.TeamScore(); ok {
		if err := analysis.TeamScoreValidator(v); err != nil {
			return &ValidationError{Name: "team_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.team_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MarketScore(); !ok {
		return &ValidationError{Name: "market_score", err: errors.New(`ent: missing required field "Analysis.market_score"`)}
	}
	if v, ok := _c.mutation.MarketScore(); ok {
		if err := analysis.MarketScoreValidator(v); err != nil {
			return &ValidationError{Name: "market_score", err: fmt.Errorf(`ent: validator failed for field "Analysis.market_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrowthScore(); !ok {
		return &ValidationError{Name: "growth_score", err: errors.New(`ent: missing required field "Analysis.growth_score"`)}
	}
	if _, ok := _c.mutation.Recommendation(); !ok {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required field "Analysis.recommendation"`)}
	}
	if v, ok := _c.mutation.Recommendation(); ok {
		if err := analysis.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Analysis.recommendation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelUsed(); !ok {
		return &ValidationError{Name: "model_used", err: errors.New(`ent: missing required field "Analysis.model_used"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "Analysis.cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if len(_c.mutation.RepositoryIDs()) == 0 {
		return &ValidationError{Name: "repository", err: errors.New(`ent: missing required edge "Analysis.repository"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Analysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.InvestmentScore(); ok {
		_spec.SetField(analysis.FieldInvestmentScore, field.TypeInt, value)
		_node.InvestmentScore = value
	}
	if value, ok := _c.mutation.InnovationScore(); ok {
		_spec.SetField(analysis.FieldInnovationScore, field.TypeInt, value)
		_node.InnovationScore = value
	}
	if value, ok := _c.mutation.TeamScore(); ok {
		_spec.SetField(analysis.FieldTeamScore, field.TypeInt, value)
		_node.TeamScore = value
	}
	if value, ok := _c.mutation.MarketScore(); ok {
		_spec.SetField(analysis.FieldMarketScore, field.TypeInt, value)
		_node.MarketScore = value
	}
	if value, ok := _c.mutation.GrowthScore(); ok {
		_spec.SetField(analysis.FieldGrowthScore, field.TypeInt, value)
		_node.GrowthScore = value
	}
	if value, ok := _c.mutation.TechnicalMoat(); ok {
		_spec.SetField(analysis.FieldTechnicalMoat, field.TypeInt, value)
		_node.TechnicalMoat = &value
	}
	if value, ok := _c.mutation.Scalability(); ok {
		_spec.SetField(analysis.FieldScalability, field.TypeInt, value)
		_node.Scalability = &value
	}
	if value, ok := _c.mutation.DeveloperAdoption(); ok {
		_spec.SetField(analysis.FieldDeveloperAdoption, field.TypeInt, value)
		_node.DeveloperAdoption = &value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(analysis.FieldRecommendation, field.TypeEnum, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(analysis.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(analysis.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Risks(); ok {
		_spec.SetField(analysis.FieldRisks, field.TypeJSON, value)
		_node.Risks = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(analysis.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(analysis.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(analysis.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RepositoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.RepositoryTable,
			Columns: []string{analysis.RepositoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RepoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
