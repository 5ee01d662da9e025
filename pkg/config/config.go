// Package config loads and validates RepoRadar configuration from YAML and
// the environment.
package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string

	Scheduler *SchedulerConfig `yaml:"scheduler"`
	Discovery *DiscoveryConfig `yaml:"discovery"`
	Batch     *BatchConfig     `yaml:"batch"`
	Tiers     *TierPolicies    `yaml:"tiers"`
	GitHost   *GitHostConfig   `yaml:"githost"`
	LLM       *LLMConfig       `yaml:"llm"`
	Alerts    *AlertConfig     `yaml:"alerts"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// TierPolicy returns the scan policy for the given tier (1..3).
func (c *Config) TierPolicy(tier int) *TierPolicy {
	return c.Tiers.ForTier(tier)
}

// Stats contains summary numbers about loaded configuration, for startup logging.
type Stats struct {
	Topics    int
	Languages int
	Models    int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Discovery != nil {
		s.Topics = len(c.Discovery.Topics)
		s.Languages = len(c.Discovery.Languages)
	}
	if c.LLM != nil {
		s.Models = len(c.LLM.Models)
	}
	return s
}
