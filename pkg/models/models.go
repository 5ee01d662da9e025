// Package models contains request/response models for the HTTP facade.
package models

import (
	"time"

	"github.com/reporadar/reporadar/ent"
	"github.com/reporadar/reporadar/pkg/discovery"
	"github.com/reporadar/reporadar/pkg/scheduler"
	"github.com/reporadar/reporadar/pkg/store"
)

// AnalyzeRequest asks for an on-demand analysis of one repository, addressed
// by stored ID or by owner and name.
type AnalyzeRequest struct {
	RepoID string `json:"repo_id"`
	Owner  string `json:"owner"`
	Name   string `json:"name"`

	// Force regenerates the analysis even when a fresh one exists.
	Force bool `json:"force"`
}

// AnalyzeResponse wraps the analysis for one repository.
type AnalyzeResponse struct {
	Analysis *ent.Analysis `json:"analysis"`

	// Cached reports that a fresh stored analysis was returned instead of
	// spending credits on a new one.
	Cached bool `json:"cached"`
}

// BatchStartRequest submits a manual analysis batch.
type BatchStartRequest struct {
	BatchID      string   `json:"batch_id" binding:"required"`
	Repositories []string `json:"repositories" binding:"required,min=1"`
}

// BatchStartResponse acknowledges a submitted batch.
type BatchStartResponse struct {
	BatchID string `json:"batch_id"`
	Status  string `json:"status"`
	Total   int    `json:"total"`
}

// BatchStopRequest stops a batch by ID.
type BatchStopRequest struct {
	BatchID string `json:"batch_id" binding:"required"`
}

// AlertAcknowledgeRequest marks one alert as handled.
type AlertAcknowledgeRequest struct {
	AlertID string `json:"alert_id" binding:"required"`
}

// BatchClearResponse reports how many finished batches were removed.
type BatchClearResponse struct {
	Cleared int `json:"cleared"`
}

// ComprehensiveScanResponse summarizes a comprehensive scan pass.
type ComprehensiveScanResponse struct {
	Discovery *discovery.Result `json:"discovery,omitempty"`
	Planned   int               `json:"planned"`
	Scanned   int               `json:"scanned"`
}

// TierEntry pairs a tier assignment with its repository full name.
type TierEntry struct {
	*ent.TierAssignment
	FullName string `json:"full_name,omitempty"`
}

// TiersResponse is returned by GET /tiers.
type TiersResponse struct {
	Counts map[int]int `json:"counts"`
	Repos  []TierEntry `json:"repos,omitempty"`
}

// AnalysisEntry pairs an analysis with its repository full name.
type AnalysisEntry struct {
	*ent.Analysis
	FullName string `json:"full_name,omitempty"`
}

// RepoMetricsResponse is returned by GET /metrics?repo_id=.
type RepoMetricsResponse struct {
	Repository    *ent.Repository       `json:"repository"`
	Latest        *ent.MetricSnapshot   `json:"latest,omitempty"`
	History       []*ent.MetricSnapshot `json:"history"`
	Contributors  []*ent.Contributor    `json:"contributors,omitempty"`
	TrendingScore float64               `json:"trending_score"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Status       string                   `json:"status"`
	Repositories int                      `json:"repositories"`
	Tiers        map[int]int              `json:"tiers"`
	Daily        *store.DailyStats        `json:"daily,omitempty"`
	Scheduler    *scheduler.CycleStatus   `json:"scheduler,omitempty"`
	ActiveBatch  *scheduler.BatchProgress `json:"active_batch,omitempty"`
}

// ReportResponse is the investment report returned by GET /report.
type ReportResponse struct {
	GeneratedAt    time.Time         `json:"generated_at"`
	TopInvestments []AnalysisEntry   `json:"top_investments"`
	HighGrowth     []TierEntry       `json:"high_growth"`
	RecentAlerts   []*ent.Alert      `json:"recent_alerts"`
	Daily          *store.DailyStats `json:"daily,omitempty"`
}
