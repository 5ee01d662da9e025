package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/store"
	testdb "github.com/reporadar/reporadar/test/database"
)

type fakeInspector struct {
	repos        map[string]githost.Repository // keyed by owner/name
	readme       string
	contributors []githost.Contributor
	activity     []githost.CommitMetric

	repoErr        error
	contributorErr error
	activityErr    error
}

func (f *fakeInspector) GetRepository(_ context.Context, owner, name string) (*githost.Repository, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	repo, ok := f.repos[owner+"/"+name]
	if !ok {
		return nil, errors.New("repository not found")
	}
	return &repo, nil
}

func (f *fakeInspector) GetReadme(_ context.Context, _, _ string) (string, error) {
	return f.readme, nil
}

func (f *fakeInspector) GetContributors(_ context.Context, _, _ string, _ int) ([]githost.Contributor, error) {
	if f.contributorErr != nil {
		return nil, f.contributorErr
	}
	return f.contributors, nil
}

func (f *fakeInspector) GetCommitActivity(_ context.Context, _, _ string, _ int) ([]githost.CommitMetric, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	return f.activity, nil
}

type scannerFixture struct {
	scanner *Scanner
	repos   *store.RepositoryService
	metrics *store.MetricsService
	tiers   *store.TierService
}

func testScanner(t *testing.T, host Inspector) *scannerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	f := &scannerFixture{
		repos:   store.NewRepositoryService(client.Client),
		metrics: store.NewMetricsService(client.Client),
		tiers:   store.NewTierService(client.Client, config.DefaultTierPolicies()),
	}
	f.scanner = NewScanner(host, f.repos, f.metrics, f.tiers)
	return f
}

func TestScanner_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("basic scan persists metadata, snapshot, and tier", func(t *testing.T) {
		host := &fakeInspector{
			repos:  map[string]githost.Repository{"acme/alpha": hostRepo("1", "acme/alpha", 250)},
			readme: "# alpha",
		}
		f := testScanner(t, host)

		report, err := f.scanner.Scan(ctx, "acme/alpha", false)
		require.NoError(t, err)
		assert.Equal(t, "1", report.RepoID)
		assert.Equal(t, 250, report.Stars)
		assert.False(t, report.Deep)
		assert.Positive(t, report.Score)

		repo, err := f.repos.GetRepositoryByFullName(ctx, "acme/alpha")
		require.NoError(t, err)
		assert.Equal(t, 250, repo.Stars)

		snap, err := f.metrics.LatestSnapshot(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 250, snap.Stars)
		assert.Nil(t, snap.Contributors, "basic scans do not collect contributors")

		tier, err := f.tiers.GetTier(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, report.Tier, tier.Tier)
		assert.NotNil(t, tier.LastBasicScan)
		assert.Nil(t, tier.LastDeepScan)
	})

	t.Run("deep scan collects contributors and commit activity", func(t *testing.T) {
		week := time.Now().UTC().AddDate(0, 0, -7)
		host := &fakeInspector{
			repos:  map[string]githost.Repository{"acme/alpha": hostRepo("1", "acme/alpha", 250)},
			readme: "# alpha",
			contributors: []githost.Contributor{
				{Login: "ada", Contributions: 90},
				{Login: "grace", Contributions: 30},
			},
			activity: []githost.CommitMetric{
				{WeekStart: week.AddDate(0, 0, -7), Commits: 12},
				{WeekStart: week, Commits: 8},
			},
		}
		f := testScanner(t, host)

		report, err := f.scanner.Scan(ctx, "acme/alpha", true)
		require.NoError(t, err)
		assert.True(t, report.Deep)

		snap, err := f.metrics.LatestSnapshot(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, snap.Contributors)
		assert.Equal(t, 2, *snap.Contributors)
		require.NotNil(t, snap.CommitsCount)
		assert.Equal(t, 20, *snap.CommitsCount)

		saved, err := f.metrics.Contributors(ctx, "1")
		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, "ada", saved[0].Login)

		tier, err := f.tiers.GetTier(ctx, "1")
		require.NoError(t, err)
		assert.NotNil(t, tier.LastDeepScan)
	})

	t.Run("deep scan survives enhanced metric failures", func(t *testing.T) {
		host := &fakeInspector{
			repos:          map[string]githost.Repository{"acme/alpha": hostRepo("1", "acme/alpha", 250)},
			contributorErr: errors.New("rate limited"),
			activityErr:    errors.New("rate limited"),
		}
		f := testScanner(t, host)

		report, err := f.scanner.Scan(ctx, "acme/alpha", true)
		require.NoError(t, err)
		assert.True(t, report.Deep)

		snap, err := f.metrics.LatestSnapshot(ctx, "1")
		require.NoError(t, err)
		assert.Nil(t, snap.Contributors)
		assert.Nil(t, snap.CommitsCount)
	})

	t.Run("rescan demotes a repo whose signals collapsed", func(t *testing.T) {
		now := time.Now().UTC()
		stale := now.AddDate(0, 0, -40)
		faded := githost.Repository{
			ID:        "1",
			Owner:     "acme",
			Name:      "alpha",
			FullName:  "acme/alpha",
			Stars:     12,
			CreatedAt: now.AddDate(-2, 0, 0),
			UpdatedAt: stale,
			PushedAt:  &stale,
		}
		host := &fakeInspector{repos: map[string]githost.Repository{"acme/alpha": faded}}
		f := testScanner(t, host)

		_, err := f.repos.UpsertRepository(ctx, faded)
		require.NoError(t, err)
		_, err = f.tiers.UpsertTier(ctx, store.TierInput{RepoID: "1", Tier: 1, Stars: 500})
		require.NoError(t, err)

		report, err := f.scanner.Scan(ctx, "acme/alpha", false)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Tier)

		tier, err := f.tiers.GetTier(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 3, tier.Tier, "a full rescan is authoritative in both directions")
	})

	t.Run("host lookup failure aborts the scan", func(t *testing.T) {
		host := &fakeInspector{repoErr: errors.New("host down")}
		f := testScanner(t, host)

		_, err := f.scanner.Scan(ctx, "acme/alpha", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch acme/alpha")
	})

	t.Run("malformed full name is rejected", func(t *testing.T) {
		f := testScanner(t, &fakeInspector{})

		_, err := f.scanner.Scan(ctx, "not-a-full-name", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid full name")
	})
}
