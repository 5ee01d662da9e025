package config

import "time"

// SchedulerConfig controls the cycle controller: how often ticks fire, which
// hours run the full sweep, and the per-cycle wall-clock budgets.
type SchedulerConfig struct {
	// ScanInterval is the spacing between periodic ticks.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// SweepHours are the wall-clock hours (0-23) that run the full-coverage
	// sweep cycle instead of the hourly cycle.
	SweepHours []int `yaml:"sweep_hours"`

	// MaxCycleRuntime is the hard wall-clock ceiling for a single cycle.
	MaxCycleRuntime time.Duration `yaml:"max_cycle_runtime"`

	// ScanPhaseBudget bounds phase 1 (discovery + planning) of an hourly cycle.
	ScanPhaseBudget time.Duration `yaml:"scan_phase_budget"`

	// AnalysisPhaseBudget bounds phase 2 (batch analysis) of an hourly cycle.
	AnalysisPhaseBudget time.Duration `yaml:"analysis_phase_budget"`

	// HourlyPoolMax caps the automated analysis pool drawn across tiers per
	// hourly cycle.
	HourlyPoolMax int `yaml:"hourly_pool_max"`

	// SweepDiscoveryLimit caps force-discovery during a sweep cycle.
	SweepDiscoveryLimit int `yaml:"sweep_discovery_limit"`

	// SweepAnalysisLimit caps the comprehensive stale-repo pass during a sweep.
	SweepAnalysisLimit int `yaml:"sweep_analysis_limit"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		ScanInterval:        1 * time.Hour,
		SweepHours:          []int{2, 14},
		MaxCycleRuntime:     5 * time.Minute,
		ScanPhaseBudget:     3 * time.Minute,
		AnalysisPhaseBudget: 2 * time.Minute,
		HourlyPoolMax:       30,
		SweepDiscoveryLimit: 50,
		SweepAnalysisLimit:  100,
	}
}

// DiscoveryConfig controls the multi-strategy search engine.
type DiscoveryConfig struct {
	// Topics are searched pairwise with Languages, one strategy per combination.
	Topics    []string `yaml:"topics"`
	Languages []string `yaml:"languages"`

	// MinStars filters out low-signal repos at discovery time.
	MinStars int `yaml:"min_stars"`

	// MaxConcurrentSearches bounds parallel search strategies.
	MaxConcurrentSearches int `yaml:"max_concurrent_searches"`

	// Limit caps total deduplicated results for a scheduled scan.
	Limit int `yaml:"limit"`

	// ManualLimit is the lower cap used for operator-triggered scans,
	// conserving API credits.
	ManualLimit int `yaml:"manual_limit"`
}

// DefaultDiscoveryConfig returns the built-in discovery defaults.
func DefaultDiscoveryConfig() *DiscoveryConfig {
	return &DiscoveryConfig{
		Topics:                []string{"ai", "llm", "machine-learning", "agents", "rag"},
		Languages:             []string{"python", "go", "typescript", "rust"},
		MinStars:              10,
		MaxConcurrentSearches: 5,
		Limit:                 1000,
		ManualLimit:           200,
	}
}

// BatchConfig controls the self-healing batch orchestrator.
type BatchConfig struct {
	ChunkSize              int           `yaml:"chunk_size"`
	MaxChunkSize           int           `yaml:"max_chunk_size"`
	MaxRetries             int           `yaml:"max_retries"`
	RetryDelay             time.Duration `yaml:"retry_delay"`
	AnalysisTimeout        time.Duration `yaml:"analysis_timeout"`
	DelayBetweenAnalyses   time.Duration `yaml:"delay_between_analyses"`
	RetryBackoffMultiplier float64       `yaml:"retry_backoff_multiplier"`
	MaxConsecutiveFailures int           `yaml:"max_consecutive_failures"`
	MaxRecoveryAttempts    int           `yaml:"max_recovery_attempts"`
	RecoveryDelay          time.Duration `yaml:"recovery_delay"`
	MaxBatchRuntime        time.Duration `yaml:"max_batch_runtime"`
	HealthCheckInterval    time.Duration `yaml:"health_check_interval"`
	MinSuccessRate         float64       `yaml:"min_success_rate"`
	MaxCreditsPerBatch     float64       `yaml:"max_credits_per_batch"`
	MaxCreditsPerHour      float64       `yaml:"max_credits_per_hour"`

	// ConcurrentWorkers is the number of parallel LLM workers per batch.
	// Platform connection limits keep this small.
	ConcurrentWorkers int `yaml:"concurrent_workers"`
}

// DefaultBatchConfig returns the built-in batch orchestrator defaults.
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		ChunkSize:              5,
		MaxChunkSize:           10,
		MaxRetries:             2,
		RetryDelay:             3 * time.Second,
		AnalysisTimeout:        120 * time.Second,
		DelayBetweenAnalyses:   2 * time.Second,
		RetryBackoffMultiplier: 2,
		MaxConsecutiveFailures: 5,
		MaxRecoveryAttempts:    3,
		RecoveryDelay:          30 * time.Second,
		MaxBatchRuntime:        5 * time.Minute,
		HealthCheckInterval:    10 * time.Second,
		MinSuccessRate:         0.5,
		MaxCreditsPerBatch:     100,
		MaxCreditsPerHour:      500,
		ConcurrentWorkers:      1,
	}
}

// TierPolicy defines the scan cadence and budgets for one priority tier.
type TierPolicy struct {
	// ScanInterval is the maximum age of a scan before the repo is due again.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// DeepScan selects comprehensive scans (enhanced metrics + LLM) over
	// lightweight metric refreshes.
	DeepScan bool `yaml:"deep_scan"`

	// HourlyBatchLimit caps repos from this tier per hourly cycle.
	HourlyBatchLimit int `yaml:"hourly_batch_limit"`

	// DeepModelTopN gives the top-N ranked repos in this tier the deep model
	// even when the tier default is the basic scan.
	DeepModelTopN int `yaml:"deep_model_top_n"`

	// FreshnessWindow is how long an Analysis stays current before it is
	// eligible for re-generation.
	FreshnessWindow time.Duration `yaml:"freshness_window"`
}

// TierPolicies groups the three tier policies.
type TierPolicies struct {
	Tier1 *TierPolicy `yaml:"tier1"`
	Tier2 *TierPolicy `yaml:"tier2"`
	Tier3 *TierPolicy `yaml:"tier3"`
}

// ForTier returns the policy for tier 1..3; out-of-range tiers get tier 3.
func (t *TierPolicies) ForTier(tier int) *TierPolicy {
	switch tier {
	case 1:
		return t.Tier1
	case 2:
		return t.Tier2
	default:
		return t.Tier3
	}
}

// DefaultTierPolicies returns the built-in tier cadences.
func DefaultTierPolicies() *TierPolicies {
	return &TierPolicies{
		Tier1: &TierPolicy{
			ScanInterval:     7 * 24 * time.Hour,
			DeepScan:         true,
			HourlyBatchLimit: 25,
			FreshnessWindow:  168 * time.Hour,
		},
		Tier2: &TierPolicy{
			ScanInterval:     10 * 24 * time.Hour,
			DeepScan:         false,
			HourlyBatchLimit: 50,
			DeepModelTopN:    10,
			FreshnessWindow:  240 * time.Hour,
		},
		Tier3: &TierPolicy{
			ScanInterval:     14 * 24 * time.Hour,
			DeepScan:         false,
			HourlyBatchLimit: 100,
			FreshnessWindow:  336 * time.Hour,
		},
	}
}

// GitHostConfig holds code-host API settings.
type GitHostConfig struct {
	BaseURL  string `yaml:"base_url"`
	TokenEnv string `yaml:"token_env"`

	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxConnections is the process-wide cap on simultaneous outbound
	// connections shared with the LLM client (platform limit).
	MaxConnections int64 `yaml:"max_connections"`

	// SearchRate and CoreRate configure the per-endpoint token buckets.
	SearchRate *BucketConfig `yaml:"search_rate"`
	CoreRate   *BucketConfig `yaml:"core_rate"`

	// ReadmeCacheTTL bounds how long fetched READMEs are reused.
	ReadmeCacheTTL time.Duration `yaml:"readme_cache_ttl"`
}

// BucketConfig describes one token bucket.
type BucketConfig struct {
	Capacity     int           `yaml:"capacity"`
	RefillAmount int           `yaml:"refill_amount"`
	RefillPeriod time.Duration `yaml:"refill_period"`
}

// DefaultGitHostConfig returns the built-in code-host defaults.
func DefaultGitHostConfig() *GitHostConfig {
	return &GitHostConfig{
		BaseURL:        "https://api.github.com",
		TokenEnv:       "GITHUB_TOKEN",
		RequestTimeout: 30 * time.Second,
		MaxConnections: 6,
		SearchRate:     &BucketConfig{Capacity: 30, RefillAmount: 30, RefillPeriod: time.Minute},
		CoreRate:       &BucketConfig{Capacity: 5000, RefillAmount: 5000, RefillPeriod: time.Hour},
		ReadmeCacheTTL: 6 * time.Hour,
	}
}

// ModelConfig describes one LLM model tier.
type ModelConfig struct {
	Name           string  `yaml:"name"`
	CreditsPerCall float64 `yaml:"credits_per_call"`
}

// LLMConfig holds LLM adapter settings.
type LLMConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	APIKeyEnv      string        `yaml:"api_key_env"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Rate configures the provider-wide token bucket for analyze calls.
	Rate *BucketConfig `yaml:"rate"`

	// Models maps the model tier names (high, medium, small) to concrete models.
	Models map[string]ModelConfig `yaml:"models"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Endpoint:       "http://localhost:8090/v1/analyze",
		APIKeyEnv:      "LLM_API_KEY",
		RequestTimeout: 120 * time.Second,
		Rate:           &BucketConfig{Capacity: 30, RefillAmount: 30, RefillPeriod: time.Minute},
		Models: map[string]ModelConfig{
			"high":   {Name: "analyst-large", CreditsPerCall: 4},
			"medium": {Name: "analyst-medium", CreditsPerCall: 2},
			"small":  {Name: "analyst-small", CreditsPerCall: 1},
		},
	}
}

// AlertConfig holds alerting thresholds.
type AlertConfig struct {
	// InvestmentThreshold triggers an alert when the investment score
	// meets or exceeds it.
	InvestmentThreshold int `yaml:"investment_threshold"`

	// UrgentThreshold upgrades the alert level to urgent.
	UrgentThreshold int `yaml:"urgent_threshold"`

	// GrowthThreshold triggers an alert on the growth score.
	GrowthThreshold int `yaml:"growth_threshold"`
}

// DefaultAlertConfig returns the built-in alerting defaults.
func DefaultAlertConfig() *AlertConfig {
	return &AlertConfig{
		InvestmentThreshold: 80,
		UrgentThreshold:     90,
		GrowthThreshold:     90,
	}
}
