package unionfind

// Config is the typed, hot-path-ready translation of the string-keyed
// decoder options arriving from the CLI (§6, §9 design note: "Translate
// once, at construction, into a typed configuration struct").
type Config struct {
	StopEarly  bool
	Policy     GrowthPolicy
	PolicyName string
}

// Option configures a Config, mirroring the teacher's functional-option
// pattern (core.GraphOption, bfs.Option).
type Option func(*Config)

// WithStopEarly toggles the early-termination / buffer-confinement
// behaviour described in §4.3.
func WithStopEarly(enabled bool) Option {
	return func(c *Config) { c.StopEarly = enabled }
}

// WithGrowthPolicy installs an explicit policy function and display name.
func WithGrowthPolicy(policy GrowthPolicy, name string) Option {
	return func(c *Config) {
		c.Policy = policy
		c.PolicyName = name
	}
}

// WithGrowthPolicyName resolves and installs one of the named policies.
func WithGrowthPolicyName(name string) Option {
	policy, resolved := GrowthPolicyByName(name)
	return WithGrowthPolicy(policy, resolved)
}

// DefaultConfig returns the zero-value-safe default configuration:
// stop_early disabled, constant 0.5 growth policy.
func DefaultConfig() Config {
	return Config{Policy: ConstantGrowthPolicy(), PolicyName: "default"}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ConfigFromStringMap translates the §6 string-keyed option map into a
// Config. Unrecognized keys are ignored.
func ConfigFromStringMap(options map[string]string) Config {
	var opts []Option
	if v, ok := options["stop_early"]; ok && v == "true" {
		opts = append(opts, WithStopEarly(true))
	}
	if v, ok := options["growth_policy"]; ok {
		opts = append(opts, WithGrowthPolicyName(v))
	}

	return NewConfig(opts...)
}
