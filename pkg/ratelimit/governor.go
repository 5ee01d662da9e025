// Package ratelimit provides cooperative per-endpoint token buckets and
// credit accounting for external API usage. The buckets are advisory: the
// external providers enforce the authoritative limits, so process restarts
// resetting bucket state is acceptable.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrRateLimited is returned by TryAcquire when the bucket cannot satisfy the
// request without waiting.
var ErrRateLimited = errors.New("rate limited")

// BucketSettings describes one endpoint bucket.
type BucketSettings struct {
	Capacity     int
	RefillAmount int
	RefillPeriod time.Duration
}

// bucket is a token bucket refilled lazily on access.
type bucket struct {
	mu         sync.Mutex
	settings   BucketSettings
	tokens     float64
	lastRefill time.Time
}

func newBucket(s BucketSettings, now time.Time) *bucket {
	return &bucket{
		settings:   s,
		tokens:     float64(s.Capacity),
		lastRefill: now,
	}
}

// refillLocked credits tokens accrued since the last refill. Caller holds mu.
func (b *bucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed <= 0 {
		return
	}
	rate := float64(b.settings.RefillAmount) / b.settings.RefillPeriod.Seconds()
	b.tokens += rate * elapsed.Seconds()
	if b.tokens > float64(b.settings.Capacity) {
		b.tokens = float64(b.settings.Capacity)
	}
	b.lastRefill = now
}

// take consumes n tokens if available and reports the wait until they would be.
func (b *bucket) take(n int, now time.Time) (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(now)
	if b.tokens >= float64(n) {
		b.tokens -= float64(n)
		return true, 0
	}

	deficit := float64(n) - b.tokens
	rate := float64(b.settings.RefillAmount) / b.settings.RefillPeriod.Seconds()
	wait := time.Duration(deficit / rate * float64(time.Second))
	return false, wait
}

// BucketSnapshot is a point-in-time view of one bucket for observability.
type BucketSnapshot struct {
	Endpoint string  `json:"endpoint"`
	Capacity int     `json:"capacity"`
	Tokens   float64 `json:"tokens"`
}

// Governor holds per-endpoint token buckets. Unknown endpoints pass through
// unthrottled; only registered endpoints are governed.
type Governor struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	now     func() time.Time
}

// NewGovernor creates an empty governor.
func NewGovernor() *Governor {
	return &Governor{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Register installs a bucket for the endpoint, replacing any existing one.
func (g *Governor) Register(endpoint string, s BucketSettings) error {
	if s.Capacity < 1 || s.RefillAmount < 1 || s.RefillPeriod <= 0 {
		return fmt.Errorf("invalid bucket settings for endpoint %q", endpoint)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buckets[endpoint] = newBucket(s, g.now())
	return nil
}

// Acquire consumes n tokens from the endpoint bucket, blocking cooperatively
// until enough tokens refill or ctx is done.
func (g *Governor) Acquire(ctx context.Context, endpoint string, n int) error {
	for {
		b := g.lookup(endpoint)
		if b == nil {
			return nil
		}

		ok, wait := b.take(n, g.now())
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TryAcquire consumes n tokens without blocking, or fails with ErrRateLimited.
func (g *Governor) TryAcquire(endpoint string, n int) error {
	b := g.lookup(endpoint)
	if b == nil {
		return nil
	}
	if ok, _ := b.take(n, g.now()); !ok {
		return fmt.Errorf("%w: endpoint %q", ErrRateLimited, endpoint)
	}
	return nil
}

// Snapshot returns the current state of all buckets.
func (g *Governor) Snapshot() []BucketSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]BucketSnapshot, 0, len(g.buckets))
	for endpoint, b := range g.buckets {
		b.mu.Lock()
		b.refillLocked(g.now())
		out = append(out, BucketSnapshot{
			Endpoint: endpoint,
			Capacity: b.settings.Capacity,
			Tokens:   b.tokens,
		})
		b.mu.Unlock()
	}
	return out
}

func (g *Governor) lookup(endpoint string) *bucket {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.buckets[endpoint]
}
