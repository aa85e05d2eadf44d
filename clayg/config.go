package clayg

import (
	"fmt"
	"math"

	"github.com/tpeduzzi/clayg/unionfind"
)

// Config is ClAYG's typed configuration, extending unionfind.Config with
// the streaming-specific knobs from §4.5.
type Config struct {
	StopEarly             bool
	Policy                unionfind.GrowthPolicy
	PolicyName            string
	GrowthRounds          int
	ClusterLifetimeFactor float64
}

// Option configures a Config.
type Option func(*Config)

// WithStopEarly toggles early termination of the streaming loop once every
// cluster has been neutral for a full buffer region.
func WithStopEarly(enabled bool) Option {
	return func(c *Config) { c.StopEarly = enabled }
}

// WithGrowthPolicy installs an explicit policy function and display name.
func WithGrowthPolicy(policy unionfind.GrowthPolicy, name string) Option {
	return func(c *Config) {
		c.Policy = policy
		c.PolicyName = name
	}
}

// WithGrowthPolicyName resolves and installs one of the named policies.
func WithGrowthPolicyName(name string) Option {
	policy, resolved := unionfind.GrowthPolicyByName(name)
	return WithGrowthPolicy(policy, resolved)
}

// WithGrowthRounds sets how many grow/merge passes run per streamed round
// before the next round's nodes are injected. Default 1.
func WithGrowthRounds(n int) Option {
	return func(c *Config) { c.GrowthRounds = n }
}

// WithClusterLifetimeFactor sets the §4.5 cluster_lifetime_factor: a
// neutral cluster is retained, rather than immediately peeled, until it
// has been neutral for Lifetime(d) rounds.
func WithClusterLifetimeFactor(factor float64) Option {
	return func(c *Config) { c.ClusterLifetimeFactor = factor }
}

// DefaultConfig mirrors unionfind.DefaultConfig, plus growth_rounds=1 and
// cluster_lifetime_factor=0 (peel as soon as a cluster goes neutral).
func DefaultConfig() Config {
	return Config{
		Policy:       unionfind.ConstantGrowthPolicy(),
		PolicyName:   "default",
		GrowthRounds: 1,
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.GrowthRounds <= 0 {
		cfg.GrowthRounds = 1
	}
	return cfg
}

// ConfigFromStringMap translates the §6 string-keyed option map.
// Unrecognized keys are ignored. "cluster_lifetime" is §6's documented key;
// "cluster_lifetime_factor" is accepted as a synonym.
func ConfigFromStringMap(options map[string]string) Config {
	var opts []Option
	if v, ok := options["stop_early"]; ok && v == "true" {
		opts = append(opts, WithStopEarly(true))
	}
	if v, ok := options["growth_policy"]; ok {
		opts = append(opts, WithGrowthPolicyName(v))
	}
	if v, ok := options["growth_rounds"]; ok {
		var n int
		if _, err := fmt.Sscan(v, &n); err == nil {
			opts = append(opts, WithGrowthRounds(n))
		}
	}
	lifetimeKey := "cluster_lifetime"
	if _, ok := options[lifetimeKey]; !ok {
		lifetimeKey = "cluster_lifetime_factor"
	}
	if v, ok := options[lifetimeKey]; ok {
		var f float64
		if _, err := fmt.Sscan(v, &f); err == nil {
			opts = append(opts, WithClusterLifetimeFactor(f))
		}
	}

	return NewConfig(opts...)
}

// Lifetime is the §4.5 cluster-retention horizon, in rounds: if the
// configured factor is below 1 it is interpreted as a fraction of the code
// distance, otherwise as an absolute round count.
func (c Config) Lifetime(d int) int {
	if c.ClusterLifetimeFactor < 1 {
		return int(math.Floor(float64(d) * c.ClusterLifetimeFactor))
	}
	return int(math.Floor(c.ClusterLifetimeFactor))
}
