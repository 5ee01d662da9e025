package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/metrics"
	"github.com/reporadar/reporadar/pkg/ratelimit"
	"github.com/reporadar/reporadar/pkg/store"
)

// HostClient is the slice of the code-host client the orchestrator needs:
// READMEs for analysis context, and repository lookups for batch items that
// are not tracked yet.
type HostClient interface {
	GetRepository(ctx context.Context, owner, name string) (*githost.Repository, error)
	GetReadme(ctx context.Context, owner, name string) (string, error)
}

// Orchestrator runs one batch at a time: chunked processing, per-repo retries,
// credit enforcement, health-driven recovery, and checkpoint resume.
type Orchestrator struct {
	batches  *store.BatchService
	repos    *store.RepositoryService
	analyses *store.AnalysisService
	alerts   *store.AlertService
	tiers    *store.TierService
	host     HostClient
	analyzer llm.Analyzer
	ledger   *ratelimit.CreditLedger

	cfg      *config.BatchConfig
	llmCfg   *config.LLMConfig
	alertCfg *config.AlertConfig
	policies *config.TierPolicies
	metrics  *metrics.Metrics
	logger   *slog.Logger

	mu            sync.Mutex
	runningID     string
	stopRequested bool

	now   func() time.Time
	sleep func(context.Context, time.Duration)
}

// NewOrchestrator wires the orchestrator. All dependencies are required.
func NewOrchestrator(
	batches *store.BatchService,
	repos *store.RepositoryService,
	analyses *store.AnalysisService,
	alerts *store.AlertService,
	tiers *store.TierService,
	host HostClient,
	analyzer llm.Analyzer,
	ledger *ratelimit.CreditLedger,
	cfg *config.BatchConfig,
	llmCfg *config.LLMConfig,
	alertCfg *config.AlertConfig,
	policies *config.TierPolicies,
) *Orchestrator {
	return &Orchestrator{
		batches:  batches,
		repos:    repos,
		analyses: analyses,
		alerts:   alerts,
		tiers:    tiers,
		host:     host,
		analyzer: analyzer,
		ledger:   ledger,
		cfg:      cfg,
		llmCfg:   llmCfg,
		alertCfg: alertCfg,
		policies: policies,
		logger:   slog.Default().With("component", "batch"),
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// SetMetrics attaches optional Prometheus instrumentation.
func (o *Orchestrator) SetMetrics(m *metrics.Metrics) {
	o.metrics = m
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// runState guards the live checkpoint shared by the workers and the health
// monitor.
type runState struct {
	mu       sync.Mutex
	cp       Checkpoint
	critical *Health
}

// apply records one outcome and returns a stable snapshot of the checkpoint.
func (st *runState) apply(res Result, now time.Time) Checkpoint {
	st.mu.Lock()
	defer st.mu.Unlock()
	switch res.Status {
	case ResultCompleted:
		st.cp.CompletedRepos = append(st.cp.CompletedRepos, res.Repo)
		st.cp.ConsecutiveFailures = 0
	case ResultSkipped:
		st.cp.SkippedRepos = append(st.cp.SkippedRepos, res.Repo)
	default:
		st.cp.FailedRepos = append(st.cp.FailedRepos, res.Repo)
		st.cp.ConsecutiveFailures++
	}
	st.cp.CreditsUsed += res.Cost
	st.cp.UpdatedAt = now
	return st.cp.clone()
}

func (st *runState) snapshot() Checkpoint {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cp.clone()
}

// flagCritical parks the first critical observation; workers stop picking up
// new repos until recovery clears it.
func (st *runState) flagCritical(h Health) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.critical == nil {
		st.critical = &h
	}
}

func (st *runState) halted() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.critical != nil
}

// takeCritical consumes the parked critical observation, if any.
func (st *runState) takeCritical() (Health, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.critical == nil {
		return Health{}, false
	}
	h := *st.critical
	st.critical = nil
	return h, true
}

func (st *runState) resetFailures() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cp.ConsecutiveFailures = 0
}

// Prepare validates the request and creates the pending batch row. Only one
// batch may be active at a time. The batch does not run until Execute.
func (o *Orchestrator) Prepare(ctx context.Context, batchID string, items []Item) (*ent.BatchRun, error) {
	if len(batchID) == 0 {
		return nil, fmt.Errorf("batch id required")
	}

	if _, err := o.batches.Active(ctx); err == nil {
		return nil, ErrBatchActive
	} else if err != store.ErrNotFound {
		return nil, err
	}

	estimated := 0.0
	for _, item := range items {
		estimated += o.costOf(item.ModelTier)
	}

	fullNames := lo.Map(items, func(it Item, _ int) string { return it.FullName })
	return o.batches.Create(ctx, batchID, fullNames, estimated, o.cfg.MaxCreditsPerBatch)
}

// Execute runs a batch previously created by Prepare until a terminal state.
func (o *Orchestrator) Execute(ctx context.Context, batchID string, items []Item) (*ent.BatchRun, error) {
	return o.run(ctx, batchID, items, Checkpoint{})
}

// Start creates the batch row and runs it synchronously until a terminal
// state.
func (o *Orchestrator) Start(ctx context.Context, batchID string, items []Item) (*ent.BatchRun, error) {
	if _, err := o.Prepare(ctx, batchID, items); err != nil {
		return nil, err
	}
	return o.Execute(ctx, batchID, items)
}

// Resume picks up the active batch after a restart, rebuilding the item list
// from the stored repository names and continuing from the checkpoint.
func (o *Orchestrator) Resume(ctx context.Context) (*ent.BatchRun, error) {
	active, err := o.batches.Active(ctx)
	if err != nil {
		return nil, err
	}

	attempts, err := o.batches.IncrementRecovery(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	if attempts > o.cfg.MaxRecoveryAttempts {
		o.logger.Error("Batch exceeded recovery budget, failing", "batch_id", active.ID, "attempts", attempts)
		return o.batches.SetStatus(ctx, active.ID, batchrun.StatusFailed)
	}

	items, err := o.rebuildItems(ctx, active.Repositories)
	if err != nil {
		return nil, err
	}

	cp, _ := checkpointFromMap(active.Checkpoint)
	o.logger.Info("Resuming batch from checkpoint",
		"batch_id", active.ID,
		"processed", cp.ProcessedCount(),
		"total", len(items),
		"attempt", attempts)
	return o.run(ctx, active.ID, items, cp)
}

// Stop requests the running batch to halt after the current repository.
// Stopping a batch that is already stopped is a no-op.
func (o *Orchestrator) Stop(ctx context.Context, batchID string) (*ent.BatchRun, error) {
	o.mu.Lock()
	if o.runningID == batchID {
		o.stopRequested = true
		o.mu.Unlock()
		return o.batches.Get(ctx, batchID)
	}
	o.mu.Unlock()

	// No live runner; settle the row directly.
	b, err := o.batches.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if IsTerminal(b.Status) {
		return b, nil
	}
	return o.batches.SetStatus(ctx, batchID, batchrun.StatusStopped)
}

// run drives the chunk loop until the batch reaches a terminal state. Repos
// already recorded in the checkpoint are never re-dispatched, so a crash
// mid-chunk cannot double-count them on resume.
func (o *Orchestrator) run(ctx context.Context, batchID string, items []Item, cp Checkpoint) (*ent.BatchRun, error) {
	o.mu.Lock()
	if o.runningID != "" {
		o.mu.Unlock()
		return nil, ErrBatchActive
	}
	o.runningID = batchID
	o.stopRequested = false
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.runningID = ""
		o.mu.Unlock()
	}()

	if _, err := o.batches.SetStatus(ctx, batchID, batchrun.StatusRunning); err != nil {
		return nil, err
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if o.cfg.MaxBatchRuntime > 0 {
		runCtx, cancel = context.WithTimeout(ctx, o.cfg.MaxBatchRuntime)
		defer cancel()
	}
	var deadline time.Time
	if d, ok := runCtx.Deadline(); ok {
		deadline = d
	}

	pending := lo.Filter(items, func(it Item, _ int) bool { return !cp.Processed(it.FullName) })
	if len(pending) == 0 {
		return o.batches.SetStatus(ctx, batchID, batchrun.StatusCompleted)
	}

	chunkSize := o.cfg.ChunkSize
	if chunkSize <= 0 || chunkSize > o.cfg.MaxChunkSize {
		chunkSize = o.cfg.MaxChunkSize
	}
	workers := o.cfg.ConcurrentWorkers
	if workers < 1 {
		workers = 1
	}

	st := &runState{cp: cp}
	started := o.now()
	total := len(items)

	if o.cfg.HealthCheckInterval > 0 {
		monitorCtx, stopMonitor := context.WithCancel(ctx)
		defer stopMonitor()
		go o.monitorHealth(monitorCtx, batchID, deadline, st)
	}

	for len(pending) > 0 {
		chunk := pending
		if len(chunk) > chunkSize {
			chunk = chunk[:chunkSize]
		}

		g := new(errgroup.Group)
		g.SetLimit(workers)
		for _, item := range chunk {
			item := item
			g.Go(func() error {
				if o.stopping() || runCtx.Err() != nil || st.halted() {
					return nil
				}

				res := o.processRepo(runCtx, batchID, item)
				snap := st.apply(res, o.now())
				health := o.health(snap, deadline)
				if err := o.persistProgress(ctx, batchID, item, total, started, snap, res, health); err != nil {
					o.logger.Error("Failed to persist batch progress", "batch_id", batchID, "error", err)
				}
				if health.State == HealthCritical {
					st.flagCritical(health)
					return nil
				}

				o.sleep(runCtx, o.interAnalysisDelay(snap.ConsecutiveFailures))
				return nil
			})
		}
		_ = g.Wait()

		if o.stopping() {
			o.logger.Info("Stop requested, halting batch", "batch_id", batchID)
			return o.batches.SetStatus(ctx, batchID, batchrun.StatusStopped)
		}
		if runCtx.Err() != nil {
			o.logger.Warn("Batch runtime budget exhausted", "batch_id", batchID)
			return o.batches.SetStatus(ctx, batchID, batchrun.StatusStopped)
		}
		if health, critical := st.takeCritical(); critical {
			recovered, terminal, err := o.recover(ctx, batchID, health, st)
			if err != nil {
				return nil, err
			}
			if terminal != nil {
				return terminal, nil
			}
			if !recovered {
				return o.batches.SetStatus(ctx, batchID, batchrun.StatusFailed)
			}
		}

		snap := st.snapshot()
		// Repos left unprocessed by a halt stay pending and are retried
		// after recovery.
		pending = lo.Filter(pending, func(it Item, _ int) bool { return !snap.Processed(it.FullName) })
		if _, err := o.batches.RecordProgress(ctx, batchID, store.ProgressUpdate{
			Completed:     len(snap.CompletedRepos),
			Failed:        len(snap.FailedRepos),
			Skipped:       len(snap.SkippedRepos),
			CreditsActual: snap.CreditsUsed,
			Checkpoint:    toMap(snap),
		}); err != nil {
			o.logger.Error("Failed to checkpoint chunk", "batch_id", batchID, "error", err)
		}
	}

	return o.batches.SetStatus(ctx, batchID, batchrun.StatusCompleted)
}

// interAnalysisDelay spaces repositories out, backing off exponentially while
// failures are consecutive.
func (o *Orchestrator) interAnalysisDelay(consecutiveFailures int) time.Duration {
	d := o.cfg.DelayBetweenAnalyses
	if d <= 0 {
		return 0
	}
	if consecutiveFailures > 0 && o.cfg.RetryBackoffMultiplier > 1 {
		d = time.Duration(float64(d) * math.Pow(o.cfg.RetryBackoffMultiplier, float64(consecutiveFailures)))
	}
	return d
}

// monitorHealth periodically evaluates and persists health independent of
// repo completions, so a batch stuck in one long analysis still reports.
func (o *Orchestrator) monitorHealth(ctx context.Context, batchID string, deadline time.Time, st *runState) {
	t := time.NewTicker(o.cfg.HealthCheckInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h := o.health(st.snapshot(), deadline)
			if err := o.batches.SaveHealth(ctx, batchID, toMap(h)); err != nil {
				o.logger.Warn("Failed to save batch health", "batch_id", batchID, "error", err)
				continue
			}
			if h.State != HealthHealthy {
				o.logger.Warn("Batch health check",
					"batch_id", batchID, "state", h.State, "reason", h.Reason)
			}
		}
	}
}

// recover moves the batch through recovering and back to running, or to
// failed once the recovery budget is spent.
func (o *Orchestrator) recover(ctx context.Context, batchID string, health Health, st *runState) (bool, *ent.BatchRun, error) {
	// Credit exhaustion cannot be waited out inside this batch.
	if health.Reason == reasonCreditsExhausted {
		o.logger.Warn("Stopping batch on credit exhaustion", "batch_id", batchID)
		b, err := o.batches.SetStatus(ctx, batchID, batchrun.StatusStopped)
		return false, b, err
	}

	if _, err := o.batches.SetStatus(ctx, batchID, batchrun.StatusRecovering); err != nil {
		return false, nil, err
	}

	attempts, err := o.batches.IncrementRecovery(ctx, batchID)
	if err != nil {
		return false, nil, err
	}
	o.metrics.ObserveBatchRecovery()
	if attempts > o.cfg.MaxRecoveryAttempts {
		o.logger.Error("Recovery budget spent", "batch_id", batchID, "attempts", attempts, "reason", health.Reason)
		return false, nil, nil
	}

	o.logger.Warn("Batch entering recovery",
		"batch_id", batchID,
		"attempt", attempts,
		"reason", health.Reason)
	o.sleep(ctx, o.cfg.RecoveryDelay)

	st.resetFailures()
	if _, err := o.batches.SetStatus(ctx, batchID, batchrun.StatusRunning); err != nil {
		return false, nil, err
	}
	return true, nil, nil
}

// processRepo analyzes one repository with retries and records the outcome.
func (o *Orchestrator) processRepo(ctx context.Context, batchID string, item Item) Result {
	started := o.now()
	res := Result{Repo: item.FullName}

	finish := func() Result {
		res.DurationMs = o.now().Sub(started).Milliseconds()
		return res
	}

	repo, err := o.repos.GetRepositoryByFullName(ctx, item.FullName)
	if errors.Is(err, store.ErrNotFound) {
		repo, err = o.fetchAndTrack(ctx, item.FullName)
	}
	if err != nil {
		res.Status = ResultFailed
		res.Error = fmt.Sprintf("lookup: %v", err)
		return finish()
	}

	policy := o.policyFor(ctx, repo.ID)
	if fresh, err := o.analyses.HasRecentAnalysis(ctx, repo.ID, policy.FreshnessWindow); err == nil && fresh {
		res.Status = ResultSkipped
		return finish()
	}

	cost := o.costOf(item.ModelTier)
	if err := o.ledger.Check(batchID, cost); err != nil {
		res.Status = ResultSkipped
		res.Error = err.Error()
		return finish()
	}

	readme, err := o.host.GetReadme(ctx, repo.Owner, repo.Name)
	if err != nil {
		// A missing README degrades the analysis, it does not block it.
		readme = ""
	}

	var analysis *llm.Analysis
	err = retry.Do(
		func() error {
			callCtx, cancel := context.WithTimeout(ctx, o.cfg.AnalysisTimeout)
			defer cancel()
			var aerr error
			analysis, aerr = o.analyzer.Analyze(callCtx, hostView(repo), readme, item.ModelTier)
			return aerr
		},
		retry.Context(ctx),
		retry.Attempts(uint(o.cfg.MaxRetries+1)),
		retry.Delay(o.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(llm.IsTransient),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		res.Status = ResultFailed
		res.Error = err.Error()
		return finish()
	}

	if _, err := o.analyses.SaveAnalysis(ctx, repo.ID, analysis); err != nil {
		res.Status = ResultFailed
		res.Error = fmt.Sprintf("save: %v", err)
		return finish()
	}
	o.ledger.Charge(batchID, analysis.Cost)

	o.emitAlerts(ctx, repo, analysis)

	res.Status = ResultCompleted
	res.Investment = analysis.Investment
	res.Recommendation = string(analysis.Recommendation)
	res.Cost = analysis.Cost
	return finish()
}

// fetchAndTrack pulls an untracked repository from the host and upserts it so
// the batch can proceed.
func (o *Orchestrator) fetchAndTrack(ctx context.Context, fullName string) (*ent.Repository, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("invalid full name %q", fullName)
	}
	fetched, err := o.host.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	o.logger.Info("Tracking new repository from batch item", "repo", fullName)
	return o.repos.UpsertRepository(ctx, *fetched)
}

// emitAlerts raises threshold alerts for a fresh analysis. Failures are
// logged, never fatal to the batch.
func (o *Orchestrator) emitAlerts(ctx context.Context, repo *ent.Repository, analysis *llm.Analysis) {
	if analysis.Investment >= o.alertCfg.InvestmentThreshold {
		level := alert.LevelHigh
		if analysis.Investment >= o.alertCfg.UrgentThreshold {
			level = alert.LevelUrgent
		}
		_, err := o.alerts.CreateAlert(ctx, store.AlertInput{
			RepoID:  repo.ID,
			Type:    "investment_opportunity",
			Level:   level,
			Message: fmt.Sprintf("%s scored %d for investment (%s)", repo.FullName, analysis.Investment, analysis.Recommendation),
			Metadata: map[string]interface{}{
				"investment_score": analysis.Investment,
				"recommendation":   string(analysis.Recommendation),
				"model_used":       analysis.ModelUsed,
			},
		})
		if err != nil && err != store.ErrAlreadyExists {
			o.logger.Warn("Failed to create investment alert", "repo", repo.FullName, "error", err)
		}
	}

	if analysis.Growth >= o.alertCfg.GrowthThreshold {
		_, err := o.alerts.CreateAlert(ctx, store.AlertInput{
			RepoID:  repo.ID,
			Type:    "high_growth",
			Level:   alert.LevelHigh,
			Message: fmt.Sprintf("%s growth score %d", repo.FullName, analysis.Growth),
			Metadata: map[string]interface{}{
				"growth_score": analysis.Growth,
			},
		})
		if err != nil && err != store.ErrAlreadyExists {
			o.logger.Warn("Failed to create growth alert", "repo", repo.FullName, "error", err)
		}
	}
}

func (o *Orchestrator) persistProgress(ctx context.Context, batchID string, item Item, total int, started time.Time, cp Checkpoint, res Result, health Health) error {
	processed := cp.ProcessedCount()
	var eta *time.Time
	if processed > 0 && processed < total {
		perRepo := o.now().Sub(started) / time.Duration(processed)
		t := o.now().Add(perRepo * time.Duration(total-processed))
		eta = &t
	}

	_, err := o.batches.RecordProgress(ctx, batchID, store.ProgressUpdate{
		Completed:           len(cp.CompletedRepos),
		Failed:              len(cp.FailedRepos),
		Skipped:             len(cp.SkippedRepos),
		CurrentRepo:         item.FullName,
		EstimatedCompletion: eta,
		Result:              toMap(res),
		CreditsActual:       cp.CreditsUsed,
		Checkpoint:          toMap(cp),
	})
	if err != nil {
		return err
	}
	return o.batches.SaveHealth(ctx, batchID, toMap(health))
}

func (o *Orchestrator) health(cp Checkpoint, deadline time.Time) Health {
	remaining := time.Duration(0)
	if !deadline.IsZero() {
		remaining = deadline.Sub(o.now())
	}
	return evaluateHealth(
		len(cp.CompletedRepos), len(cp.FailedRepos), len(cp.SkippedRepos), cp.ConsecutiveFailures,
		cp.CreditsUsed, o.cfg.MaxCreditsPerBatch, o.cfg.MinSuccessRate,
		o.cfg.MaxConsecutiveFailures, remaining, o.now())
}

func (o *Orchestrator) stopping() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stopRequested
}

func (o *Orchestrator) costOf(tier llm.ModelTier) float64 {
	if model, ok := o.llmCfg.Models[string(tier)]; ok {
		return model.CreditsPerCall
	}
	return 0
}

// policyFor maps the repo's stored tier to its policy, defaulting to tier 3.
func (o *Orchestrator) policyFor(ctx context.Context, repoID string) *config.TierPolicy {
	ta, err := o.tiers.GetTier(ctx, repoID)
	if err != nil {
		return o.policies.ForTier(3)
	}
	return o.policies.ForTier(ta.Tier)
}

// rebuildItems reconstructs batch items from stored full names, re-deriving
// the model tier from current tier state.
func (o *Orchestrator) rebuildItems(ctx context.Context, fullNames []string) ([]Item, error) {
	items := make([]Item, 0, len(fullNames))
	for _, name := range fullNames {
		repo, err := o.repos.GetRepositoryByFullName(ctx, name)
		if err != nil {
			o.logger.Warn("Skipping unknown repo on resume", "repo", name)
			continue
		}

		tier := 3
		if ta, err := o.tiers.GetTier(ctx, repo.ID); err == nil {
			tier = ta.Tier
		}
		model := llm.ModelTierSmall
		switch tier {
		case 1:
			model = llm.ModelTierHigh
		case 2:
			model = llm.ModelTierMedium
		}

		items = append(items, Item{RepoID: repo.ID, FullName: name, ModelTier: model})
	}
	return items, nil
}

// hostView converts the stored row back to the host-shaped struct the
// analyzer prompt expects.
func hostView(repo *ent.Repository) githost.Repository {
	return githost.Repository{
		ID:          repo.ID,
		Owner:       repo.Owner,
		Name:        repo.Name,
		FullName:    repo.FullName,
		Description: repo.Description,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		OpenIssues:  repo.OpenIssues,
		Language:    repo.Language,
		Topics:      repo.Topics,
		CreatedAt:   repo.CreatedAt,
		UpdatedAt:   repo.UpdatedAt,
		PushedAt:    repo.PushedAt,
		IsArchived:  repo.IsArchived,
		IsFork:      repo.IsFork,
		HTMLURL:     repo.HTMLURL,
	}
}
