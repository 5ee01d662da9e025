// Package batch runs self-healing chunked analysis batches with durable
// checkpoints, credit enforcement, and health-driven recovery.
package batch

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/samber/lo"

	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/store"
)

// ErrBatchActive is returned when a second batch is started while one
// already occupies the single runner slot.
var ErrBatchActive = errors.New("a batch is already active")

// Item is one repository submitted to a batch.
type Item struct {
	RepoID    string        `json:"repo_id"`
	FullName  string        `json:"full_name"`
	ModelTier llm.ModelTier `json:"model_tier"`
}

// Result statuses for one repository inside a batch.
const (
	ResultCompleted = "completed"
	ResultFailed    = "failed"
	ResultSkipped   = "skipped"
)

// Result is the outcome for one repository.
type Result struct {
	Repo           string  `json:"repo"`
	Status         string  `json:"status"`
	Error          string  `json:"error,omitempty"`
	Investment     int     `json:"investment_score,omitempty"`
	Recommendation string  `json:"recommendation,omitempty"`
	Cost           float64 `json:"cost,omitempty"`
	DurationMs     int64   `json:"duration_ms"`
}

// Checkpoint is the durable resume point, persisted after every repository.
// It records the outcome lists by full name so a resumed run can tell exactly
// which repositories still need work, even when the crash landed mid-chunk.
type Checkpoint struct {
	CompletedRepos      []string  `json:"completed_repos"`
	FailedRepos         []string  `json:"failed_repos"`
	SkippedRepos        []string  `json:"skipped_repos"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	CreditsUsed         float64   `json:"credits_used"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Processed reports whether the repository already has a recorded outcome.
func (cp Checkpoint) Processed(fullName string) bool {
	return lo.Contains(cp.CompletedRepos, fullName) ||
		lo.Contains(cp.FailedRepos, fullName) ||
		lo.Contains(cp.SkippedRepos, fullName)
}

// ProcessedCount is the number of repositories with a recorded outcome.
func (cp Checkpoint) ProcessedCount() int {
	return len(cp.CompletedRepos) + len(cp.FailedRepos) + len(cp.SkippedRepos)
}

// clone copies the checkpoint so a snapshot stays stable while workers keep
// appending to the live one.
func (cp Checkpoint) clone() Checkpoint {
	out := cp
	out.CompletedRepos = append([]string(nil), cp.CompletedRepos...)
	out.FailedRepos = append([]string(nil), cp.FailedRepos...)
	out.SkippedRepos = append([]string(nil), cp.SkippedRepos...)
	return out
}

// CanTransition reports whether the status change is legal. The store
// enforces the same table on every write; this is the runner's cheap
// pre-check.
func CanTransition(from, to batchrun.Status) bool {
	return store.CanTransition(from, to)
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(status batchrun.Status) bool {
	return store.IsTerminalStatus(status)
}

// toMap round-trips a struct through JSON into the loosely-typed shape the
// store persists.
func toMap(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// checkpointFromMap restores a Checkpoint persisted by toMap.
func checkpointFromMap(m map[string]interface{}) (Checkpoint, bool) {
	if len(m) == 0 {
		return Checkpoint{}, false
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return Checkpoint{}, false
	}
	var cp Checkpoint
	if err := json.Unmarshal(raw, &cp); err != nil {
		return Checkpoint{}, false
	}
	return cp, true
}
