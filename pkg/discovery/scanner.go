package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/scoring"
	"github.com/reporadar/reporadar/pkg/store"
)

// Inspector is the slice of the code-host client the scanner needs.
type Inspector interface {
	GetRepository(ctx context.Context, owner, name string) (*githost.Repository, error)
	GetReadme(ctx context.Context, owner, name string) (string, error)
	GetContributors(ctx context.Context, owner, name string, limit int) ([]githost.Contributor, error)
	GetCommitActivity(ctx context.Context, owner, name string, days int) ([]githost.CommitMetric, error)
}

// ScanReport summarizes one repository scan.
type ScanReport struct {
	RepoID   string  `json:"repo_id"`
	FullName string  `json:"full_name"`
	Tier     int     `json:"tier"`
	Score    float64 `json:"score"`
	Stars    int     `json:"stars"`
	Deep     bool    `json:"deep"`
}

const (
	contributorFetchLimit = 100
	commitActivityDays    = 90
)

// Scanner refreshes a single tracked repository. A basic scan updates host
// metadata and metrics; a deep scan also collects contributors and commit
// activity before rescoring.
type Scanner struct {
	host    Inspector
	repos   *store.RepositoryService
	metrics *store.MetricsService
	tiers   *store.TierService
	logger  *slog.Logger

	now func() time.Time
}

// NewScanner creates a Scanner.
func NewScanner(host Inspector, repos *store.RepositoryService, metrics *store.MetricsService, tiers *store.TierService) *Scanner {
	return &Scanner{
		host:    host,
		repos:   repos,
		metrics: metrics,
		tiers:   tiers,
		logger:  slog.Default().With("component", "scanner"),
		now:     time.Now,
	}
}

// Scan refreshes one repository by full name and reschedules its next scan.
func (s *Scanner) Scan(ctx context.Context, fullName string, deep bool) (*ScanReport, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("invalid full name %q", fullName)
	}

	repo, err := s.host.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", fullName, err)
	}

	now := s.now()
	if _, err := s.repos.UpsertRepository(ctx, *repo); err != nil {
		return nil, fmt.Errorf("upsert %s: %w", fullName, err)
	}

	input := scoring.Input{Repo: *repo}
	if prev, err := s.metrics.PreviousSnapshot(ctx, repo.ID, now); err == nil {
		input.PrevStars = prev.Stars
		input.PrevRecordedAt = prev.RecordedAt
	}

	snapshot := store.SnapshotInput{
		Stars:      repo.Stars,
		Forks:      repo.Forks,
		OpenIssues: repo.OpenIssues,
		Watchers:   repo.Watchers,
		RecordedAt: now,
	}

	if deep {
		s.collectEnhanced(ctx, repo, &input, &snapshot)
	}

	if readme, err := s.host.GetReadme(ctx, owner, name); err == nil && readme != "" {
		input.HasReadme = true
	}

	if _, err := s.metrics.RecordSnapshot(ctx, repo.ID, snapshot); err != nil && err != store.ErrAlreadyExists {
		return nil, fmt.Errorf("snapshot %s: %w", fullName, err)
	}

	score := scoring.Compute(input, now)
	tier := scoring.AssignTier(score, repo.Stars, scoring.MonthlyGrowthRate(input, now))

	// A scan recomputes the full score from fresh host data, so its tier is
	// authoritative in both directions.
	if _, err := s.tiers.UpsertTier(ctx, store.TierInput{
		RepoID:          repo.ID,
		Tier:            tier,
		Stars:           repo.Stars,
		GrowthVelocity:  scoring.StarVelocity(*repo, now),
		EngagementScore: score.Engagement,
		AllowDemotion:   true,
	}); err != nil {
		return nil, fmt.Errorf("tier %s: %w", fullName, err)
	}
	if _, err := s.tiers.MarkScanned(ctx, repo.ID, deep, now); err != nil {
		return nil, fmt.Errorf("mark scanned %s: %w", fullName, err)
	}

	s.logger.Debug("Scan complete", "repo", fullName, "deep", deep, "tier", tier, "score", score.Total)
	return &ScanReport{
		RepoID:   repo.ID,
		FullName: fullName,
		Tier:     tier,
		Score:    score.Total,
		Stars:    repo.Stars,
		Deep:     deep,
	}, nil
}

// collectEnhanced gathers deep-scan metrics. Failures degrade the scan to
// basic quality instead of aborting it.
func (s *Scanner) collectEnhanced(ctx context.Context, repo *githost.Repository, input *scoring.Input, snapshot *store.SnapshotInput) {
	contributors, err := s.host.GetContributors(ctx, repo.Owner, repo.Name, contributorFetchLimit)
	if err != nil {
		s.logger.Warn("Contributor fetch failed", "repo", repo.FullName, "error", err)
	} else {
		n := len(contributors)
		input.Contributors = n
		snapshot.Contributors = &n
		if err := s.metrics.SaveContributors(ctx, repo.ID, contributors); err != nil {
			s.logger.Warn("Contributor save failed", "repo", repo.FullName, "error", err)
		}
	}

	activity, err := s.host.GetCommitActivity(ctx, repo.Owner, repo.Name, commitActivityDays)
	if err != nil {
		s.logger.Warn("Commit activity fetch failed", "repo", repo.FullName, "error", err)
		return
	}
	total := lo.SumBy(activity, func(m githost.CommitMetric) int { return m.Commits })
	snapshot.CommitsCount = &total
	if len(activity) > 0 {
		input.WeeklyCommits = total / len(activity)
	}
}
