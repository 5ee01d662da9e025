package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/database"
	"github.com/reporadar/reporadar/pkg/discovery"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/llm"
	"github.com/reporadar/reporadar/pkg/models"
	"github.com/reporadar/reporadar/pkg/scoring"
	"github.com/reporadar/reporadar/pkg/store"
)

const (
	reportLimit = 20

	// highGrowthVelocity is the stars-per-day floor for the report's
	// high-growth section.
	highGrowthVelocity = 5.0

	metricsHistoryWindow = 90 * 24 * time.Hour

	// manualBatchBudget bounds a handler-spawned batch after the request has
	// already returned.
	manualBatchBudget = time.Hour
)

// Healthz handles GET /healthz.
func (s *Server) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.deps.DB.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// Init handles POST /api/v1/init: it arms the scheduler by persisting an
// immediate next tick.
func (s *Server) Init(c *gin.Context) {
	now := s.now()
	if err := s.deps.State.SaveTick(c.Request.Context(), now); err != nil {
		respondError(c, err)
		return
	}

	cycle, err := s.deps.Tracker.Cycle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "initialized",
		"next_tick": cycle.NextTick,
	})
}

// Scan handles POST /api/v1/scan: a manual discovery run under the manual
// result cap.
func (s *Server) Scan(c *gin.Context) {
	result, err := s.deps.Discoverer.Discover(c.Request.Context(), discovery.Options{Manual: true})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScanComprehensive handles POST /api/v1/scan/comprehensive: optional forced
// discovery followed by deep scans of everything currently due.
func (s *Server) ScanComprehensive(c *gin.Context) {
	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err != nil {
		respondError(c, store.NewValidationError("force", "must be a boolean"))
		return
	}
	minRepos, err := strconv.Atoi(c.DefaultQuery("min_repos", "0"))
	if err != nil {
		respondError(c, store.NewValidationError("min_repos", "must be an integer"))
		return
	}

	ctx := c.Request.Context()
	resp := models.ComprehensiveScanResponse{}

	count, err := s.deps.Repos.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if force || count < minRepos {
		result, err := s.deps.Discoverer.Discover(ctx, discovery.Options{Manual: true})
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Discovery = result
	}

	plan, err := s.deps.Planner.PlanScans(ctx, s.now())
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Planned = len(plan.Items)

	for _, item := range plan.Items {
		if item.FullName == "" {
			continue
		}
		if _, err := s.deps.Scanner.Scan(ctx, item.FullName, true); err != nil {
			s.logger.Warn("Comprehensive scan failed", "repo", item.FullName, "error", err)
			continue
		}
		resp.Scanned++
	}

	c.JSON(http.StatusOK, resp)
}

// Analyze handles POST /api/v1/analyze: a synchronous single-repository
// analysis, served from the store when a fresh one exists.
func (s *Server) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	repo, err := s.resolveRepo(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	tier := s.tierOf(ctx, repo.ID)
	if !req.Force {
		policy := s.deps.Policies.ForTier(tier)
		fresh, err := s.deps.Analyses.HasRecentAnalysis(ctx, repo.ID, policy.FreshnessWindow)
		if err != nil {
			respondError(c, err)
			return
		}
		if fresh {
			latest, err := s.deps.Analyses.GetLatestAnalysis(ctx, repo.ID)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.AnalyzeResponse{Analysis: latest, Cached: true})
			return
		}
	}

	item := batch.Item{RepoID: repo.ID, FullName: repo.FullName, ModelTier: modelTierFor(tier)}
	batchID := fmt.Sprintf("manual-%s-%d", repo.ID, s.now().Unix())
	if _, err := s.deps.Runner.Start(ctx, batchID, []batch.Item{item}); err != nil {
		respondError(c, err)
		return
	}

	latest, err := s.deps.Analyses.GetLatestAnalysis(ctx, repo.ID)
	if err != nil {
		respondError(c, fmt.Errorf("analysis did not produce a result: %w", err))
		return
	}
	c.JSON(http.StatusOK, models.AnalyzeResponse{Analysis: latest})
}

// Status handles GET /api/v1/status.
func (s *Server) Status(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := s.deps.Repos.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	counts, err := s.deps.Tiers.TierCounts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.StatusResponse{
		Status:       "ok",
		Repositories: count,
		Tiers:        counts,
	}
	if daily, err := s.deps.Stats.Daily(ctx, s.now()); err == nil {
		resp.Daily = daily
	}
	if cycle, err := s.deps.Tracker.Cycle(ctx); err == nil {
		resp.Scheduler = cycle
	}
	if active, err := s.deps.Tracker.ActiveBatch(ctx); err == nil {
		resp.ActiveBatch = active
	}

	c.JSON(http.StatusOK, resp)
}

// Report handles GET /api/v1/report.
func (s *Server) Report(c *gin.Context) {
	ctx := c.Request.Context()

	top, err := s.deps.Analyses.TopAnalyses(ctx, s.deps.Alerting.InvestmentThreshold, reportLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.ReportResponse{
		GeneratedAt:    s.now(),
		TopInvestments: make([]models.AnalysisEntry, 0, len(top)),
	}
	for _, a := range top {
		entry := models.AnalysisEntry{Analysis: a}
		if repo, err := s.deps.Repos.GetRepository(ctx, a.RepoID); err == nil {
			entry.FullName = repo.FullName
		}
		resp.TopInvestments = append(resp.TopInvestments, entry)
	}

	growth, err := s.deps.Stats.HighGrowthRepos(ctx, highGrowthVelocity, 10)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.HighGrowth = lo.Map(growth, func(ta *ent.TierAssignment, _ int) models.TierEntry {
		return tierEntry(ta)
	})

	alerts, err := s.deps.Alerts.ListAlerts(ctx, false, reportLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.RecentAlerts = alerts

	if daily, err := s.deps.Stats.Daily(ctx, s.now()); err == nil {
		resp.Daily = daily
	}

	c.JSON(http.StatusOK, resp)
}

// RepoMetrics handles GET /api/v1/metrics?repo_id=.
func (s *Server) RepoMetrics(c *gin.Context) {
	repoID := c.Query("repo_id")
	if repoID == "" {
		respondError(c, store.NewValidationError("repo_id", "required"))
		return
	}

	ctx := c.Request.Context()
	repo, err := s.deps.Repos.GetRepository(ctx, repoID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := s.now()
	resp := models.RepoMetricsResponse{
		Repository:    repo,
		TrendingScore: scoring.TrendingScore(hostView(repo), now),
	}
	if latest, err := s.deps.Metrics.LatestSnapshot(ctx, repoID); err == nil {
		resp.Latest = latest
	}
	history, err := s.deps.Metrics.History(ctx, repoID, now.Add(-metricsHistoryWindow))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.History = history
	if contributors, err := s.deps.Metrics.Contributors(ctx, repoID); err == nil {
		resp.Contributors = contributors
	}

	c.JSON(http.StatusOK, resp)
}

// Tiers handles GET /api/v1/tiers?tier=.
func (s *Server) Tiers(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := s.deps.Tiers.TierCounts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := models.TiersResponse{Counts: counts}

	if tierParam := c.Query("tier"); tierParam != "" {
		tier, err := strconv.Atoi(tierParam)
		if err != nil || tier < 1 || tier > 3 {
			respondError(c, store.NewValidationError("tier", "must be 1, 2, or 3"))
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil {
			respondError(c, store.NewValidationError("limit", "must be an integer"))
			return
		}

		rows, err := s.deps.Tiers.ReposByTier(ctx, tier, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Repos = lo.Map(rows, func(ta *ent.TierAssignment, _ int) models.TierEntry {
			return tierEntry(ta)
		})
	}

	c.JSON(http.StatusOK, resp)
}

// BatchStart handles POST /api/v1/batch/start. The batch row is created
// before the response so conflicts surface to the caller; the run itself
// happens in the background and is polled via the batch status endpoints.
func (s *Server) BatchStart(c *gin.Context) {
	var req models.BatchStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.deps.Tracker.ActiveBatch(ctx); err == nil {
		respondError(c, batch.ErrBatchActive)
		return
	} else if err != store.ErrNotFound {
		respondError(c, err)
		return
	}

	items := make([]batch.Item, 0, len(req.Repositories))
	for _, fullName := range req.Repositories {
		repo, err := s.deps.Repos.GetRepositoryByFullName(ctx, fullName)
		if err != nil {
			respondError(c, fmt.Errorf("repository %s: %w", fullName, err))
			return
		}
		items = append(items, batch.Item{
			RepoID:    repo.ID,
			FullName:  repo.FullName,
			ModelTier: modelTierFor(s.tierOf(ctx, repo.ID)),
		})
	}

	if _, err := s.deps.Runner.Prepare(ctx, req.BatchID, items); err != nil {
		respondError(c, err)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		runCtx, cancel := context.WithTimeout(context.Background(), manualBatchBudget)
		defer cancel()
		if _, err := s.deps.Runner.Execute(runCtx, req.BatchID, items); err != nil {
			s.logger.Error("Manual batch failed to run", "batch_id", req.BatchID, "error", err)
		}
	}()

	c.JSON(http.StatusOK, models.BatchStartResponse{
		BatchID: req.BatchID,
		Status:  "pending",
		Total:   len(items),
	})
}

// BatchStop handles POST /api/v1/batch/stop.
func (s *Server) BatchStop(c *gin.Context) {
	var req models.BatchStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := s.deps.Runner.Stop(c.Request.Context(), req.BatchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"batch_id": run.ID,
		"status":   run.Status,
	})
}

// BatchClear handles POST /api/v1/batch/clear.
func (s *Server) BatchClear(c *gin.Context) {
	cleared, err := s.deps.Batches.ClearFinished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BatchClearResponse{Cleared: cleared})
}

// BatchStatus handles GET /api/v1/batch/status?batch_id=.
func (s *Server) BatchStatus(c *gin.Context) {
	batchID := c.Query("batch_id")
	if batchID == "" {
		respondError(c, store.NewValidationError("batch_id", "required"))
		return
	}

	progress, err := s.deps.Tracker.Batch(c.Request.Context(), batchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// BatchActive handles GET /api/v1/batch/active.
func (s *Server) BatchActive(c *gin.Context) {
	progress, err := s.deps.Tracker.ActiveBatch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// BatchHistory handles GET /api/v1/batch/history.
func (s *Server) BatchHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		respondError(c, store.NewValidationError("limit", "must be an integer"))
		return
	}

	history, err := s.deps.Tracker.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"batches": history})
}

// Alerts handles GET /api/v1/alerts. With unacknowledged=true only pending
// alerts are returned.
func (s *Server) Alerts(c *gin.Context) {
	onlyUnacked, err := strconv.ParseBool(c.DefaultQuery("unacknowledged", "false"))
	if err != nil {
		respondError(c, store.NewValidationError("unacknowledged", "must be a boolean"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		respondError(c, store.NewValidationError("limit", "must be an integer"))
		return
	}

	alerts, err := s.deps.Alerts.ListAlerts(c.Request.Context(), onlyUnacked, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// AlertAcknowledge handles POST /api/v1/alerts/acknowledge.
func (s *Server) AlertAcknowledge(c *gin.Context) {
	var req models.AlertAcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, store.NewValidationError("alert_id", "alert_id is required"))
		return
	}

	alert, err := s.deps.Alerts.Acknowledge(c.Request.Context(), req.AlertID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// resolveRepo finds the repository addressed by an AnalyzeRequest.
func (s *Server) resolveRepo(ctx context.Context, req models.AnalyzeRequest) (*ent.Repository, error) {
	switch {
	case req.RepoID != "":
		return s.deps.Repos.GetRepository(ctx, req.RepoID)
	case req.Owner != "" && req.Name != "":
		return s.deps.Repos.GetRepositoryByFullName(ctx, req.Owner+"/"+req.Name)
	default:
		return nil, store.NewValidationError("repo_id", "repo_id or owner and name required")
	}
}

// tierOf returns the repository's tier, defaulting to 3 when unassigned.
func (s *Server) tierOf(ctx context.Context, repoID string) int {
	if ta, err := s.deps.Tiers.GetTier(ctx, repoID); err == nil {
		return ta.Tier
	}
	return 3
}

func modelTierFor(tier int) llm.ModelTier {
	switch tier {
	case 1:
		return llm.ModelTierHigh
	case 2:
		return llm.ModelTierMedium
	default:
		return llm.ModelTierSmall
	}
}

func tierEntry(ta *ent.TierAssignment) models.TierEntry {
	entry := models.TierEntry{TierAssignment: ta}
	if repo := ta.Edges.Repository; repo != nil {
		entry.FullName = repo.FullName
	}
	return entry
}

// hostView rebuilds the host-side shape of a stored repository for scoring.
func hostView(r *ent.Repository) githost.Repository {
	return githost.Repository{
		ID:         r.ID,
		Owner:      r.Owner,
		Name:       r.Name,
		FullName:   r.FullName,
		Stars:      r.Stars,
		Forks:      r.Forks,
		OpenIssues: r.OpenIssues,
		Topics:     r.Topics,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		PushedAt:   r.PushedAt,
	}
}
