package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports connectivity plus connection pool pressure for the
// healthz endpoint. WaitCount climbing between scrapes means the pool is
// undersized for the scheduler's concurrency.
type HealthStatus struct {
	Status       string `json:"status"`
	PingMs       int64  `json:"ping_ms"`
	Open         int    `json:"open_connections"`
	InUse        int    `json:"in_use"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"wait_count"`
	WaitMs       int64  `json:"wait_ms"`
	MaxOpenConns int    `json:"max_open_conns"`
}

// Health pings the database and snapshots the pool counters. On ping failure
// the partial status is returned alongside the error so the caller can still
// report latency.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status: "unhealthy",
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		PingMs:       time.Since(start).Milliseconds(),
		Open:         stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		WaitCount:    stats.WaitCount,
		WaitMs:       stats.WaitDuration.Milliseconds(),
		MaxOpenConns: stats.MaxOpenConnections,
	}, nil
}
