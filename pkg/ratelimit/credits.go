package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// Credit limit errors.
var (
	// ErrBatchCreditsExhausted indicates the per-batch credit limit was reached.
	ErrBatchCreditsExhausted = errors.New("batch credit limit reached")

	// ErrHourlyCreditsExhausted indicates the per-hour credit limit was reached.
	ErrHourlyCreditsExhausted = errors.New("hourly credit limit reached")
)

// CreditLedger tracks LLM credits charged per batch and per rolling hour.
// The hourly window resets one hour after the first charge in the window.
type CreditLedger struct {
	mu sync.Mutex

	batchLimit  float64
	hourlyLimit float64

	batchUsed  map[string]float64
	hourlyUsed float64
	hourReset  time.Time

	now func() time.Time
}

// NewCreditLedger creates a ledger. A limit of 0 disables that limit.
func NewCreditLedger(batchLimit, hourlyLimit float64) *CreditLedger {
	return &CreditLedger{
		batchLimit:  batchLimit,
		hourlyLimit: hourlyLimit,
		batchUsed:   make(map[string]float64),
		now:         time.Now,
	}
}

// Check reports whether charging cost more credits to the batch would stay
// within both limits. It does not consume anything.
func (l *CreditLedger) Check(batchID string, cost float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollWindowLocked()
	if l.batchLimit > 0 && l.batchUsed[batchID]+cost > l.batchLimit {
		return ErrBatchCreditsExhausted
	}
	if l.hourlyLimit > 0 && l.hourlyUsed+cost > l.hourlyLimit {
		return ErrHourlyCreditsExhausted
	}
	return nil
}

// Charge records cost credits against the batch and the hourly window.
func (l *CreditLedger) Charge(batchID string, cost float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollWindowLocked()
	l.batchUsed[batchID] += cost
	l.hourlyUsed += cost
}

// BatchUsed returns credits charged to the batch so far.
func (l *CreditLedger) BatchUsed(batchID string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.batchUsed[batchID]
}

// HourlyUsed returns credits charged in the current hourly window.
func (l *CreditLedger) HourlyUsed() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollWindowLocked()
	return l.hourlyUsed
}

// Release forgets a batch's counter once the batch reaches a terminal state.
func (l *CreditLedger) Release(batchID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.batchUsed, batchID)
}

// rollWindowLocked resets the hourly counter when the window expires.
// Caller holds mu.
func (l *CreditLedger) rollWindowLocked() {
	now := l.now()
	if l.hourReset.IsZero() || now.After(l.hourReset) {
		l.hourlyUsed = 0
		l.hourReset = now.Add(time.Hour)
	}
}
