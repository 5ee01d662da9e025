package metrics

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reporadar/reporadar/pkg/store"
)

// collectTimeout bounds the store queries behind one scrape.
const collectTimeout = 5 * time.Second

// StoreCollector reports store-derived gauges at scrape time: tracked repo
// counts per tier and cumulative analysis spend. Reading at scrape time keeps
// the gauges correct across restarts without any counter replay.
type StoreCollector struct {
	repos    *store.RepositoryService
	tiers    *store.TierService
	analyses *store.AnalysisService
	logger   *slog.Logger

	reposDesc *prometheus.Desc
	tierDesc  *prometheus.Desc
	costDesc  *prometheus.Desc
}

// NewStoreCollector creates a StoreCollector.
func NewStoreCollector(repos *store.RepositoryService, tiers *store.TierService, analyses *store.AnalysisService) *StoreCollector {
	return &StoreCollector{
		repos:    repos,
		tiers:    tiers,
		analyses: analyses,
		logger:   slog.Default().With("component", "metrics"),
		reposDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "repositories"),
			"Number of tracked repositories.",
			nil, nil,
		),
		tierDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "tier_repositories"),
			"Number of repositories per priority tier.",
			[]string{"tier"}, nil,
		),
		costDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "analysis_credits_total"),
			"Cumulative credits spent on analyses.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.reposDesc
	ch <- c.tierDesc
	ch <- c.costDesc
}

// Collect implements prometheus.Collector. Query failures drop the affected
// gauge from the scrape instead of failing it.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	if total, err := c.repos.Count(ctx); err != nil {
		c.logger.Warn("Repository count scrape failed", "error", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.reposDesc, prometheus.GaugeValue, float64(total))
	}

	if counts, err := c.tiers.TierCounts(ctx); err != nil {
		c.logger.Warn("Tier count scrape failed", "error", err)
	} else {
		for tier := 1; tier <= 3; tier++ {
			ch <- prometheus.MustNewConstMetric(c.tierDesc, prometheus.GaugeValue,
				float64(counts[tier]), strconv.Itoa(tier))
		}
	}

	if cost, err := c.analyses.TotalCost(ctx, time.Time{}); err != nil {
		c.logger.Warn("Cost scrape failed", "error", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.costDesc, prometheus.GaugeValue, cost)
	}
}
