package githost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/semaphore"

	"github.com/reporadar/reporadar/pkg/ratelimit"
)

// Governor endpoint names used for token-bucket accounting.
const (
	EndpointSearch = "githost.search"
	EndpointCore   = "githost.core"
)

const defaultRetryAttempts = 3

// rateLimitCacheTTL keeps rate-limit polling from consuming the budget it
// reports on.
const rateLimitCacheTTL = 30 * time.Second

// Client is the GitHub REST adapter. Every call acquires from the governor,
// holds a slot on the shared connection semaphore, retries transient failures
// with exponential backoff, and fully drains response bodies.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	governor   *ratelimit.Governor
	conns      *semaphore.Weighted
	readmes    *gocache.Cache
	limits     *gocache.Cache
	logger     *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL        string
	Token          string
	RequestTimeout time.Duration
	Governor       *ratelimit.Governor
	// Conns is the process-wide outbound connection semaphore shared with
	// the LLM client.
	Conns          *semaphore.Weighted
	ReadmeCacheTTL time.Duration
}

// NewClient creates a code-host client.
func NewClient(opts Options) *Client {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ttl := opts.ReadmeCacheTTL
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		token:      opts.Token,
		governor:   opts.Governor,
		conns:      opts.Conns,
		readmes:    gocache.New(ttl, 2*ttl),
		limits:     gocache.New(rateLimitCacheTTL, 2*rateLimitCacheTTL),
		logger:     slog.Default().With("component", "githost"),
	}
}

// Search runs a repository search and returns the matching repositories.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]Repository, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	perPage := q.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	params.Set("per_page", strconv.Itoa(perPage))

	var result struct {
		Items []apiRepository `json:"items"`
	}
	if err := c.getJSON(ctx, EndpointSearch, "/search/repositories?"+params.Encode(), "", &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Query, err)
	}

	repos := make([]Repository, 0, len(result.Items))
	for _, item := range result.Items {
		repos = append(repos, item.toRepository())
	}
	return repos, nil
}

// GetRepository fetches a single repository by owner and name.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	var item apiRepository
	if err := c.getJSON(ctx, EndpointCore, fmt.Sprintf("/repos/%s/%s", owner, name), "", &item); err != nil {
		return nil, fmt.Errorf("get repository %s/%s: %w", owner, name, err)
	}
	repo := item.toRepository()
	return &repo, nil
}

// GetReadme fetches the repository README as raw text. Results are cached
// for the configured TTL since READMEs change rarely relative to scan cadence.
func (c *Client) GetReadme(ctx context.Context, owner, name string) (string, error) {
	key := owner + "/" + name
	if cached, ok := c.readmes.Get(key); ok {
		return cached.(string), nil
	}

	body, err := c.getRaw(ctx, EndpointCore, fmt.Sprintf("/repos/%s/%s/readme", owner, name), "application/vnd.github.raw+json")
	if err != nil {
		return "", fmt.Errorf("get readme %s: %w", key, err)
	}

	c.readmes.SetDefault(key, body)
	return body, nil
}

// GetContributors returns up to limit contributors ordered by contributions.
func (c *Client) GetContributors(ctx context.Context, owner, name string, limit int) ([]Contributor, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var items []struct {
		Login         string `json:"login"`
		Contributions int    `json:"contributions"`
	}
	path := fmt.Sprintf("/repos/%s/%s/contributors?per_page=%d", owner, name, limit)
	if err := c.getJSON(ctx, EndpointCore, path, "", &items); err != nil {
		return nil, fmt.Errorf("get contributors %s/%s: %w", owner, name, err)
	}

	out := make([]Contributor, 0, len(items))
	for _, it := range items {
		out = append(out, Contributor{Login: it.Login, Contributions: it.Contributions})
	}
	return out, nil
}

// GetCommitActivity returns weekly commit counts covering the last days days.
func (c *Client) GetCommitActivity(ctx context.Context, owner, name string, days int) ([]CommitMetric, error) {
	var weeks []struct {
		Week  int64 `json:"week"`
		Total int   `json:"total"`
	}
	path := fmt.Sprintf("/repos/%s/%s/stats/commit_activity", owner, name)
	if err := c.getJSON(ctx, EndpointCore, path, "", &weeks); err != nil {
		return nil, fmt.Errorf("get commit activity %s/%s: %w", owner, name, err)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	out := make([]CommitMetric, 0, len(weeks))
	for _, w := range weeks {
		start := time.Unix(w.Week, 0).UTC()
		if start.Before(cutoff) {
			continue
		}
		out = append(out, CommitMetric{WeekStart: start, Commits: w.Total})
	}
	return out, nil
}

// GetReleases returns the most recent releases.
func (c *Client) GetReleases(ctx context.Context, owner, name string, limit int) ([]Release, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var items []struct {
		TagName     string    `json:"tag_name"`
		Name        string    `json:"name"`
		PublishedAt time.Time `json:"published_at"`
		Prerelease  bool      `json:"prerelease"`
	}
	path := fmt.Sprintf("/repos/%s/%s/releases?per_page=%d", owner, name, limit)
	if err := c.getJSON(ctx, EndpointCore, path, "", &items); err != nil {
		return nil, fmt.Errorf("get releases %s/%s: %w", owner, name, err)
	}

	out := make([]Release, 0, len(items))
	for _, it := range items {
		out = append(out, Release(it))
	}
	return out, nil
}

// GetPullRequests returns recent pull requests in any state.
func (c *Client) GetPullRequests(ctx context.Context, owner, name string, limit int) ([]PullRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var items []struct {
		Number    int        `json:"number"`
		State     string     `json:"state"`
		CreatedAt time.Time  `json:"created_at"`
		MergedAt  *time.Time `json:"merged_at"`
	}
	path := fmt.Sprintf("/repos/%s/%s/pulls?state=all&per_page=%d", owner, name, limit)
	if err := c.getJSON(ctx, EndpointCore, path, "", &items); err != nil {
		return nil, fmt.Errorf("get pull requests %s/%s: %w", owner, name, err)
	}

	out := make([]PullRequest, 0, len(items))
	for _, it := range items {
		out = append(out, PullRequest(it))
	}
	return out, nil
}

// GetIssues returns recent open issues.
func (c *Client) GetIssues(ctx context.Context, owner, name string, limit int) ([]Issue, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var items []struct {
		Number    int       `json:"number"`
		State     string    `json:"state"`
		CreatedAt time.Time `json:"created_at"`
		Comments  int       `json:"comments"`
	}
	path := fmt.Sprintf("/repos/%s/%s/issues?state=open&per_page=%d", owner, name, limit)
	if err := c.getJSON(ctx, EndpointCore, path, "", &items); err != nil {
		return nil, fmt.Errorf("get issues %s/%s: %w", owner, name, err)
	}

	out := make([]Issue, 0, len(items))
	for _, it := range items {
		out = append(out, Issue(it))
	}
	return out, nil
}

// GetStarHistory returns recent star events, newest page first.
func (c *Client) GetStarHistory(ctx context.Context, owner, name string, limit int) ([]StarEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var items []struct {
		StarredAt time.Time `json:"starred_at"`
	}
	path := fmt.Sprintf("/repos/%s/%s/stargazers?per_page=%d", owner, name, limit)
	if err := c.getJSON(ctx, EndpointCore, path, "application/vnd.github.star+json", &items); err != nil {
		return nil, fmt.Errorf("get star history %s/%s: %w", owner, name, err)
	}

	out := make([]StarEvent, 0, len(items))
	for _, it := range items {
		out = append(out, StarEvent(it))
	}
	return out, nil
}

// GetForkAnalysis summarizes fork activity over the last 30 days.
func (c *Client) GetForkAnalysis(ctx context.Context, owner, name string) (*ForkAnalysis, error) {
	var items []struct {
		CreatedAt time.Time `json:"created_at"`
	}
	path := fmt.Sprintf("/repos/%s/%s/forks?sort=newest&per_page=100", owner, name)
	if err := c.getJSON(ctx, EndpointCore, path, "", &items); err != nil {
		return nil, fmt.Errorf("get forks %s/%s: %w", owner, name, err)
	}

	analysis := &ForkAnalysis{TotalForks: len(items)}
	cutoff := time.Now().AddDate(0, 0, -30)
	for i, it := range items {
		if i == 0 {
			latest := it.CreatedAt
			analysis.LatestFork = &latest
		}
		if it.CreatedAt.After(cutoff) {
			analysis.RecentForks++
		}
	}
	return analysis, nil
}

// RateLimit reports the host's authoritative core rate-limit state, cached
// briefly so status polling stays cheap.
func (c *Client) RateLimit(ctx context.Context) (*RateLimitInfo, error) {
	if cached, ok := c.limits.Get("core"); ok {
		return cached.(*RateLimitInfo), nil
	}

	var result struct {
		Resources struct {
			Core struct {
				Limit     int   `json:"limit"`
				Remaining int   `json:"remaining"`
				Reset     int64 `json:"reset"`
			} `json:"core"`
		} `json:"resources"`
	}
	if err := c.getJSON(ctx, EndpointCore, "/rate_limit", "", &result); err != nil {
		return nil, fmt.Errorf("get rate limit: %w", err)
	}
	info := &RateLimitInfo{
		Limit:     result.Resources.Core.Limit,
		Remaining: result.Resources.Core.Remaining,
		ResetAt:   time.Unix(result.Resources.Core.Reset, 0).UTC(),
	}
	c.limits.SetDefault("core", info)
	return info, nil
}

// ────────────────────────────────────────────────────────────
// Transport
// ────────────────────────────────────────────────────────────

// getJSON performs a governed GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path, accept string, out interface{}) error {
	body, err := c.getRaw(ctx, endpoint, path, accept)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

// getRaw performs a governed GET with retry and returns the response body.
func (c *Client) getRaw(ctx context.Context, endpoint, path, accept string) (string, error) {
	if c.governor != nil {
		if err := c.governor.Acquire(ctx, endpoint, 1); err != nil {
			return "", fmt.Errorf("acquire rate limit: %w", err)
		}
	}

	var body string
	err := retry.Do(
		func() error {
			var attemptErr error
			body, attemptErr = c.doOnce(ctx, path, accept)
			return attemptErr
		},
		retry.Context(ctx),
		retry.Attempts(defaultRetryAttempts),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(IsTransient),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Retrying host call", "path", path, "attempt", n+1, "error", err)
		}),
	)
	return body, err
}

// doOnce issues a single HTTP request while holding a connection slot.
func (c *Client) doOnce(ctx context.Context, path, accept string) (string, error) {
	if c.conns != nil {
		if err := c.conns.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("acquire connection slot: %w", err)
		}
		defer c.conns.Release(1)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	} else {
		req.Header.Set("Accept", "application/vnd.github.v3+json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain before close so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", statusToError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return string(data), nil
}

// statusToError maps a non-200 response to the error taxonomy.
func statusToError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthFailed
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: parseRetryAfter(resp)}
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%w: unexpected HTTP %d", ErrInvalidResponse, resp.StatusCode)
	}
}

func parseRetryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			if wait := time.Until(time.Unix(epoch, 0)); wait > 0 {
				return wait
			}
		}
	}
	return 0
}

// apiRepository is the wire shape of a repository from the host API.
type apiRepository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	OpenIssuesCount int        `json:"open_issues_count"`
	WatchersCount   int        `json:"watchers_count"`
	Language        string     `json:"language"`
	Topics          []string   `json:"topics"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PushedAt        *time.Time `json:"pushed_at"`
	Archived        bool       `json:"archived"`
	Fork            bool       `json:"fork"`
	HTMLURL         string     `json:"html_url"`
	DefaultBranch   string     `json:"default_branch"`
}

func (r apiRepository) toRepository() Repository {
	return Repository{
		ID:            strconv.FormatInt(r.ID, 10),
		Owner:         r.Owner.Login,
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		OpenIssues:    r.OpenIssuesCount,
		Watchers:      r.WatchersCount,
		Language:      r.Language,
		Topics:        r.Topics,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		PushedAt:      r.PushedAt,
		IsArchived:    r.Archived,
		IsFork:        r.Fork,
		HTMLURL:       r.HTMLURL,
		DefaultBranch: r.DefaultBranch,
	}
}
