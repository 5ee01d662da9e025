// Package discovery finds candidate repositories by fanning search strategies
// out over the code host and folding the deduplicated results into the store.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/scoring"
	"github.com/reporadar/reporadar/pkg/store"
)

// Searcher is the slice of the code-host client the engine needs.
type Searcher interface {
	Search(ctx context.Context, q githost.SearchQuery) ([]githost.Repository, error)
}

// Result summarizes one discovery run.
type Result struct {
	Strategies int           `json:"strategies"`
	Found      int           `json:"found"`
	New        int           `json:"new"`
	Updated    int           `json:"updated"`
	Failed     int           `json:"failed_strategies"`
	Duration   time.Duration `json:"duration"`
}

// Options controls one discovery run.
type Options struct {
	// Limit caps the deduplicated result set; zero uses the configured limit.
	Limit int

	// Manual marks operator-triggered runs, which use the lower manual cap.
	Manual bool
}

// Engine runs multi-strategy discovery.
type Engine struct {
	searcher Searcher
	repos    *store.RepositoryService
	metrics  *store.MetricsService
	tiers    *store.TierService
	cfg      *config.DiscoveryConfig
	logger   *slog.Logger

	now func() time.Time
}

// NewEngine creates a discovery engine.
func NewEngine(searcher Searcher, repos *store.RepositoryService, metrics *store.MetricsService, tiers *store.TierService, cfg *config.DiscoveryConfig) *Engine {
	return &Engine{
		searcher: searcher,
		repos:    repos,
		metrics:  metrics,
		tiers:    tiers,
		cfg:      cfg,
		logger:   slog.Default().With("component", "discovery"),
		now:      time.Now,
	}
}

// strategies builds one search per topic/language combination plus one
// trending query per topic.
func (e *Engine) strategies() []githost.SearchQuery {
	queries := make([]githost.SearchQuery, 0, len(e.cfg.Topics)*(len(e.cfg.Languages)+1))
	for _, topic := range e.cfg.Topics {
		for _, lang := range e.cfg.Languages {
			queries = append(queries, githost.SearchQuery{
				Query:   fmt.Sprintf("topic:%s language:%s stars:>=%d", topic, lang, e.cfg.MinStars),
				Sort:    "stars",
				Order:   "desc",
				PerPage: 100,
			})
		}
		queries = append(queries, githost.SearchQuery{
			Query:   fmt.Sprintf("topic:%s stars:>=%d", topic, e.cfg.MinStars),
			Sort:    "updated",
			Order:   "desc",
			PerPage: 100,
		})
	}
	return queries
}

// Discover runs all strategies in parallel, deduplicates by full name, and
// persists every surviving repository with a snapshot and tier assignment.
// Individual strategy failures degrade the result instead of aborting it.
func (e *Engine) Discover(ctx context.Context, opts Options) (*Result, error) {
	started := e.now()

	limit := opts.Limit
	if limit <= 0 {
		if opts.Manual {
			limit = e.cfg.ManualLimit
		} else {
			limit = e.cfg.Limit
		}
	}

	queries := e.strategies()

	var (
		mu     sync.Mutex
		found  []githost.Repository
		failed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxConcurrentSearches)
	for _, q := range queries {
		g.Go(func() error {
			repos, err := e.searcher.Search(gctx, q)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				e.logger.Warn("Search strategy failed", "query", q.Query, "error", err)
				return nil
			}
			found = append(found, repos...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("discovery canceled: %w", err)
	}
	if failed == len(queries) {
		return nil, fmt.Errorf("all %d search strategies failed", failed)
	}

	candidates := e.filter(found)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := &Result{
		Strategies: len(queries),
		Found:      len(candidates),
		Failed:     failed,
	}

	for _, repo := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		isNew, err := e.ingest(ctx, repo)
		if err != nil {
			e.logger.Warn("Failed to ingest repository", "repo", repo.FullName, "error", err)
			continue
		}
		if isNew {
			result.New++
		} else {
			result.Updated++
		}
	}

	result.Duration = e.now().Sub(started)
	e.logger.Info("Discovery run complete",
		"strategies", result.Strategies,
		"found", result.Found,
		"new", result.New,
		"updated", result.Updated,
		"failed_strategies", result.Failed,
		"duration", result.Duration)
	return result, nil
}

// filter deduplicates by full name and drops archived repos, forks, and
// anything under the star floor.
func (e *Engine) filter(repos []githost.Repository) []githost.Repository {
	unique := lo.UniqBy(repos, func(r githost.Repository) string { return r.FullName })
	return lo.Filter(unique, func(r githost.Repository, _ int) bool {
		return !r.IsArchived && !r.IsFork && r.Stars >= e.cfg.MinStars
	})
}

// ingest persists one repository: metadata upsert, metric snapshot, score,
// and tier assignment. Returns whether the repo was newly discovered.
func (e *Engine) ingest(ctx context.Context, repo githost.Repository) (bool, error) {
	now := e.now()

	_, lookupErr := e.repos.GetRepository(ctx, repo.ID)
	isNew := lookupErr == store.ErrNotFound

	if _, err := e.repos.UpsertRepository(ctx, repo); err != nil {
		return false, fmt.Errorf("upsert: %w", err)
	}

	input := scoring.Input{Repo: repo, HasReadme: true}
	if prev, err := e.metrics.PreviousSnapshot(ctx, repo.ID, now); err == nil {
		input.PrevStars = prev.Stars
		input.PrevRecordedAt = prev.RecordedAt
	}

	if _, err := e.metrics.RecordSnapshot(ctx, repo.ID, store.SnapshotInput{
		Stars:      repo.Stars,
		Forks:      repo.Forks,
		OpenIssues: repo.OpenIssues,
		Watchers:   repo.Watchers,
		RecordedAt: now,
	}); err != nil && err != store.ErrAlreadyExists {
		return isNew, fmt.Errorf("snapshot: %w", err)
	}

	score := scoring.Compute(input, now)
	tier := scoring.AssignTier(score, repo.Stars, scoring.MonthlyGrowthRate(input, now))

	if _, err := e.tiers.UpsertTier(ctx, store.TierInput{
		RepoID:          repo.ID,
		Tier:            tier,
		Stars:           repo.Stars,
		GrowthVelocity:  scoring.StarVelocity(repo, now),
		EngagementScore: score.Engagement,
	}); err != nil {
		return isNew, fmt.Errorf("tier: %w", err)
	}

	return isNew, nil
}
