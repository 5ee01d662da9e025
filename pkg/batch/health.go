package batch

import "time"

// Health states for a running batch.
const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
	HealthCritical = "critical"
)

// Health is one health observation of a running batch.
type Health struct {
	State               string    `json:"state"`
	SuccessRate         float64   `json:"success_rate"`
	Processed           int       `json:"processed"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	CreditsUsed         float64   `json:"credits_used"`
	CreditsLimit        float64   `json:"credits_limit"`
	TimeRemainingSec    float64   `json:"time_remaining_seconds,omitempty"`
	Reason              string    `json:"reason,omitempty"`
	CheckedAt           time.Time `json:"checked_at"`
}

// healthSample is the minimum processed count before the success rate is
// trusted; early failures should not condemn a batch.
const healthSample = 5

// runtimeWarning is how close to the runtime budget a batch may get before
// its health degrades.
const runtimeWarning = time.Minute

// Health reasons.
const (
	reasonConsecutiveFailures = "consecutive failure ceiling reached"
	reasonLowSuccessRate      = "success rate below minimum"
	reasonCreditsExhausted    = "credit budget exhausted"
	reasonRuntimeNearBudget   = "runtime budget nearly exhausted"
	reasonFailuresOutpacing   = "failures outpacing completions"
	reasonCreditsNearLimit    = "credit budget nearly exhausted"
)

// evaluateHealth classifies the batch from its running counters. The success
// rate counts skips against the batch: a repo that produced no analysis did
// not succeed. Critical triggers recovery; degraded only raises the log level.
func evaluateHealth(completed, failed, skipped, consecutiveFailures int, creditsUsed, creditsLimit, minSuccessRate float64, maxConsecutiveFailures int, timeRemaining time.Duration, now time.Time) Health {
	processed := completed + failed + skipped
	h := Health{
		Processed:           processed,
		ConsecutiveFailures: consecutiveFailures,
		CreditsUsed:         creditsUsed,
		CreditsLimit:        creditsLimit,
		CheckedAt:           now,
	}
	if timeRemaining > 0 {
		h.TimeRemainingSec = timeRemaining.Seconds()
	}

	h.SuccessRate = 1
	if processed > 0 {
		h.SuccessRate = float64(completed) / float64(processed)
	}

	switch {
	case maxConsecutiveFailures > 0 && consecutiveFailures >= maxConsecutiveFailures:
		h.State = HealthCritical
		h.Reason = reasonConsecutiveFailures
	case processed >= healthSample && h.SuccessRate < minSuccessRate:
		h.State = HealthCritical
		h.Reason = reasonLowSuccessRate
	case creditsLimit > 0 && creditsUsed >= creditsLimit:
		h.State = HealthCritical
		h.Reason = reasonCreditsExhausted
	case timeRemaining > 0 && timeRemaining < runtimeWarning:
		h.State = HealthDegraded
		h.Reason = reasonRuntimeNearBudget
	case failed > completed:
		h.State = HealthDegraded
		h.Reason = reasonFailuresOutpacing
	case creditsLimit > 0 && creditsUsed >= creditsLimit*0.9:
		h.State = HealthDegraded
		h.Reason = reasonCreditsNearLimit
	default:
		h.State = HealthHealthy
	}
	return h
}
