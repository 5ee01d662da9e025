package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/pkg/llm"
)

// AnalysisService manages the append-only LLM analysis history.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// SaveAnalysis appends one analysis for the repository. History is never
// overwritten; "latest" is the newest created_at.
func (s *AnalysisService) SaveAnalysis(ctx context.Context, repoID string, a *llm.Analysis) (*ent.Analysis, error) {
	if repoID == "" {
		return nil, NewValidationError("repo_id", "required")
	}
	if a == nil {
		return nil, NewValidationError("analysis", "required")
	}
	if !a.Recommendation.Valid() {
		return nil, NewValidationError("recommendation", fmt.Sprintf("unknown value %q", a.Recommendation))
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	create := s.client.Analysis.Create().
		SetID(uuid.New().String()).
		SetRepoID(repoID).
		SetInvestmentScore(a.Investment).
		SetInnovationScore(a.Innovation).
		SetTeamScore(a.Team).
		SetMarketScore(a.Market).
		SetGrowthScore(a.Growth).
		SetRecommendation(analysis.Recommendation(a.Recommendation)).
		SetSummary(a.Summary).
		SetStrengths(a.Strengths).
		SetRisks(a.Risks).
		SetQuestions(a.Questions).
		SetModelUsed(a.ModelUsed).
		SetCost(a.Cost).
		SetCreatedAt(createdAt)
	if a.TechnicalMoat != nil {
		create.SetTechnicalMoat(*a.TechnicalMoat)
	}
	if a.Scalability != nil {
		create.SetScalability(*a.Scalability)
	}
	if a.DeveloperAdoption != nil {
		create.SetDeveloperAdoption(*a.DeveloperAdoption)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: unknown repository %s", ErrInvalidInput, repoID)
		}
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return saved, nil
}

// GetLatestAnalysis returns the newest analysis for the repository.
func (s *AnalysisService) GetLatestAnalysis(ctx context.Context, repoID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Query().
		Where(analysis.RepoIDEQ(repoID)).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}
	return a, nil
}

// HasRecentAnalysis reports whether the repository has an analysis newer than
// the freshness window.
func (s *AnalysisService) HasRecentAnalysis(ctx context.Context, repoID string, window time.Duration) (bool, error) {
	cutoff := time.Now().Add(-window)
	exists, err := s.client.Analysis.Query().
		Where(
			analysis.RepoIDEQ(repoID),
			analysis.CreatedAtGT(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check recent analysis: %w", err)
	}
	return exists, nil
}

// TopAnalyses returns the latest analysis per repository with an investment
// score at or above the threshold, ordered by score descending.
func (s *AnalysisService) TopAnalyses(ctx context.Context, minInvestment, limit int) ([]*ent.Analysis, error) {
	rows, err := s.client.Analysis.Query().
		Where(analysis.InvestmentScoreGTE(minInvestment)).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query top analyses: %w", err)
	}

	// Rows are newest-first, so the first row per repo is its latest analysis.
	latest := lo.UniqBy(rows, func(a *ent.Analysis) string { return a.RepoID })

	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].InvestmentScore > latest[j].InvestmentScore
	})
	if limit > 0 && len(latest) > limit {
		latest = latest[:limit]
	}
	return latest, nil
}

// TotalCost sums analysis credits spent since the given time.
func (s *AnalysisService) TotalCost(ctx context.Context, since time.Time) (float64, error) {
	var v []struct {
		Sum float64 `json:"sum"`
	}
	err := s.client.Analysis.Query().
		Where(analysis.CreatedAtGTE(since)).
		Aggregate(ent.Sum(analysis.FieldCost)).
		Scan(ctx, &v)
	if err != nil {
		return 0, fmt.Errorf("failed to sum analysis cost: %w", err)
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Sum, nil
}
