// Package config loads phfwd settings from a file, the environment and
// command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/forward"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PHFWD"

// Config holds all configuration for phfwd
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Limits LimitsConfig `mapstructure:"limits"`
	Rules  []RuleConfig `mapstructure:"rules"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LimitsConfig holds registry memory limits. Zero means unlimited.
type LimitsConfig struct {
	MaxNodes   int `mapstructure:"max_nodes"`
	Worklist   int `mapstructure:"worklist"`
	MaxResults int `mapstructure:"max_results"`
}

// RuleConfig is a rule preloaded into the registry
type RuleConfig struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Load reads configuration from the file at path (optional), PHFWD_*
// environment variables and flags, in increasing order of precedence.
// Only the flags named in flagKeys are bound; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"max-nodes":   "limits.max_nodes",
	"worklist":    "limits.worklist",
	"max-results": "limits.max_results",
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("limits.max_nodes", 0)
	v.SetDefault("limits.worklist", 0)
	v.SetDefault("limits.max_results", 0)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q: want console or json", c.Log.Format)
	}
	if c.Limits.MaxNodes < 0 {
		return fmt.Errorf("invalid max_nodes: %d", c.Limits.MaxNodes)
	}
	if c.Limits.MaxResults < 0 {
		return fmt.Errorf("invalid max_results: %d", c.Limits.MaxResults)
	}
	for i, r := range c.Rules {
		if !phnum.Valid(r.From) || !phnum.Valid(r.To) || r.From == r.To {
			return fmt.Errorf("invalid rule %d: %q -> %q", i, r.From, r.To)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// RegistryLimits converts the limits section for forward.WithLimits.
func (c *Config) RegistryLimits() forward.Limits {
	return forward.Limits{
		MaxNodes:   c.Limits.MaxNodes,
		Worklist:   c.Limits.Worklist,
		MaxResults: c.Limits.MaxResults,
	}
}
