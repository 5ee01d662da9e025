// Package githost provides the code-host adapter: a governed, retrying HTTP
// client for repository search, metadata, and activity metrics.
package githost

import "time"

// Repository is the host-side view of a repository, as returned by search
// and lookup calls. The store owns the durable representation.
type Repository struct {
	ID            string     `json:"id"`
	Owner         string     `json:"owner"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	Description   string     `json:"description"`
	Stars         int        `json:"stars"`
	Forks         int        `json:"forks"`
	OpenIssues    int        `json:"open_issues"`
	Watchers      int        `json:"watchers"`
	Language      string     `json:"language"`
	Topics        []string   `json:"topics"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PushedAt      *time.Time `json:"pushed_at,omitempty"`
	IsArchived    bool       `json:"is_archived"`
	IsFork        bool       `json:"is_fork"`
	HTMLURL       string     `json:"html_url"`
	DefaultBranch string     `json:"default_branch"`
}

// Contributor is one repository contributor.
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// CommitMetric is one week of commit activity.
type CommitMetric struct {
	WeekStart time.Time `json:"week_start"`
	Commits   int       `json:"commits"`
}

// Release is one published release.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Prerelease  bool      `json:"prerelease"`
}

// PullRequest is a minimal view of a pull request.
type PullRequest struct {
	Number    int        `json:"number"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
}

// Issue is a minimal view of an issue.
type Issue struct {
	Number    int       `json:"number"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	Comments  int       `json:"comments"`
}

// StarEvent is one starring event, used for star history.
type StarEvent struct {
	StarredAt time.Time `json:"starred_at"`
}

// ForkAnalysis summarizes recent fork activity.
type ForkAnalysis struct {
	TotalForks  int        `json:"total_forks"`
	RecentForks int        `json:"recent_forks"`
	LatestFork  *time.Time `json:"latest_fork,omitempty"`
}

// RateLimitInfo reports the host's authoritative rate-limit state.
type RateLimitInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// SearchQuery describes one search call.
type SearchQuery struct {
	Query   string
	Sort    string // stars, updated, ...
	Order   string // asc, desc
	PerPage int
}
