package config

import "fmt"

// Validator validates configuration with field-level error messages.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error).
func (v *Validator) ValidateAll() error {
	if err := v.validateScheduler(); err != nil {
		return err
	}
	if err := v.validateDiscovery(); err != nil {
		return err
	}
	if err := v.validateBatch(); err != nil {
		return err
	}
	if err := v.validateTiers(); err != nil {
		return err
	}
	if err := v.validateLLM(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateScheduler() error {
	s := v.cfg.Scheduler
	if s.ScanInterval <= 0 {
		return NewValidationError("scheduler", "scan_interval", fmt.Errorf("must be positive"))
	}
	for _, h := range s.SweepHours {
		if h < 0 || h > 23 {
			return NewValidationError("scheduler", "sweep_hours", fmt.Errorf("hour %d out of range 0-23", h))
		}
	}
	if s.MaxCycleRuntime <= 0 {
		return NewValidationError("scheduler", "max_cycle_runtime", fmt.Errorf("must be positive"))
	}
	if s.ScanPhaseBudget+s.AnalysisPhaseBudget > s.MaxCycleRuntime {
		return NewValidationError("scheduler", "scan_phase_budget",
			fmt.Errorf("phase budgets exceed max_cycle_runtime"))
	}
	if s.HourlyPoolMax < 1 {
		return NewValidationError("scheduler", "hourly_pool_max", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *Validator) validateDiscovery() error {
	d := v.cfg.Discovery
	if len(d.Topics) == 0 {
		return NewValidationError("discovery", "topics", fmt.Errorf("at least one topic required"))
	}
	if d.MaxConcurrentSearches < 1 {
		return NewValidationError("discovery", "max_concurrent_searches", fmt.Errorf("must be at least 1"))
	}
	if d.Limit < 1 || d.ManualLimit < 1 {
		return NewValidationError("discovery", "limit", fmt.Errorf("limits must be at least 1"))
	}
	if d.MinStars < 0 {
		return NewValidationError("discovery", "min_stars", fmt.Errorf("must not be negative"))
	}
	return nil
}

func (v *Validator) validateBatch() error {
	b := v.cfg.Batch
	if b.ChunkSize < 1 {
		return NewValidationError("batch", "chunk_size", fmt.Errorf("must be at least 1"))
	}
	if b.MaxChunkSize > 0 && b.ChunkSize > b.MaxChunkSize {
		return NewValidationError("batch", "chunk_size",
			fmt.Errorf("exceeds max_chunk_size %d", b.MaxChunkSize))
	}
	if b.MaxRetries < 0 {
		return NewValidationError("batch", "max_retries", fmt.Errorf("must not be negative"))
	}
	if b.RetryBackoffMultiplier < 1 {
		return NewValidationError("batch", "retry_backoff_multiplier", fmt.Errorf("must be at least 1"))
	}
	if b.MinSuccessRate < 0 || b.MinSuccessRate > 1 {
		return NewValidationError("batch", "min_success_rate", fmt.Errorf("must be within [0,1]"))
	}
	if b.MaxConsecutiveFailures < 1 {
		return NewValidationError("batch", "max_consecutive_failures", fmt.Errorf("must be at least 1"))
	}
	if b.MaxRecoveryAttempts < 0 {
		return NewValidationError("batch", "max_recovery_attempts", fmt.Errorf("must not be negative"))
	}
	if b.ConcurrentWorkers < 1 {
		return NewValidationError("batch", "concurrent_workers", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *Validator) validateTiers() error {
	for tier, p := range map[int]*TierPolicy{1: v.cfg.Tiers.Tier1, 2: v.cfg.Tiers.Tier2, 3: v.cfg.Tiers.Tier3} {
		if p == nil {
			return NewValidationError("tiers", fmt.Sprintf("tier%d", tier), fmt.Errorf("policy required"))
		}
		if p.ScanInterval <= 0 {
			return NewValidationError("tiers", fmt.Sprintf("tier%d.scan_interval", tier), fmt.Errorf("must be positive"))
		}
		if p.HourlyBatchLimit < 1 {
			return NewValidationError("tiers", fmt.Sprintf("tier%d.hourly_batch_limit", tier), fmt.Errorf("must be at least 1"))
		}
		if p.FreshnessWindow <= 0 {
			return NewValidationError("tiers", fmt.Sprintf("tier%d.freshness_window", tier), fmt.Errorf("must be positive"))
		}
	}
	return nil
}

func (v *Validator) validateLLM() error {
	l := v.cfg.LLM
	if l.Endpoint == "" {
		return NewValidationError("llm", "endpoint", fmt.Errorf("required"))
	}
	if l.Rate == nil {
		return NewValidationError("llm", "rate", fmt.Errorf("required"))
	}
	if l.Rate.Capacity < 1 || l.Rate.RefillAmount < 1 || l.Rate.RefillPeriod <= 0 {
		return NewValidationError("llm", "rate", fmt.Errorf("capacity, refill_amount, and refill_period must be positive"))
	}
	for _, tier := range []string{"high", "medium", "small"} {
		m, ok := l.Models[tier]
		if !ok {
			return NewValidationError("llm", "models", fmt.Errorf("model tier '%s' required", tier))
		}
		if m.Name == "" {
			return NewValidationError("llm", "models."+tier, fmt.Errorf("model name required"))
		}
		if m.CreditsPerCall <= 0 {
			return NewValidationError("llm", "models."+tier, fmt.Errorf("credits_per_call must be positive"))
		}
	}
	return nil
}
