// Package config provides submatch's configuration, grounded on
// junjiewwang-perf-analysis's pkg/config/config.go: a viper.Viper bound to
// defaults and optionally a config file, then unmarshalled into a plain
// struct and bound to cobra flags by cmd/submatch.
package config

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the submatch CLI.
type Config struct {
	Cache   CacheConfig   `mapstructure:"cache"`
	Filters FiltersConfig `mapstructure:"filters"`
	Caps    CapsConfig    `mapstructure:"caps"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// CacheConfig controls the on-disk cache layout (cache package).
type CacheConfig struct {
	Dir string `mapstructure:"dir"`
}

// FiltersConfig selects which filter tiers the pipeline runs.
type FiltersConfig struct {
	// Set is either "cheap" (statistics + topology only) or "all" (cheap
	// plus elimination and neighborhood filters).
	Set string `mapstructure:"set"`
}

// CapsConfig mirrors match.Caps, read from config/flags before a search
// starts.
type CapsConfig struct {
	MaxIsomorphisms string `mapstructure:"max_isomorphisms"` // decimal string, empty = unbounded
	MaxMatches      int64  `mapstructure:"max_matches"`       // <= 0 = unbounded
	MaxWorkers      int    `mapstructure:"max_workers"`       // <= 1 = single-threaded DFS
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format    string `mapstructure:"format"` // "text" or "json"
	CountOnly bool   `mapstructure:"count_only"`
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
	Debug   bool `mapstructure:"debug"`
}

// Load reads configuration from configPath (if non-empty) layered over
// defaults, printing a notice to stdout and falling back to defaults when
// no config file is found, matching the teacher's Load behavior.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				fmt.Printf("config file %s not found, using defaults\n", configPath)
			} else if os.IsNotExist(err) {
				fmt.Printf("config file %s not found, using defaults\n", configPath)
			} else {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cache.dir", "./.submatch-cache")

	v.SetDefault("filters.set", "all")

	v.SetDefault("caps.max_isomorphisms", "")
	v.SetDefault("caps.max_matches", int64(0))
	v.SetDefault("caps.max_workers", 1)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.count_only", false)

	v.SetDefault("log.verbose", false)
	v.SetDefault("log.debug", false)
}

// Validate checks the configuration for internally-inconsistent values.
func (c *Config) Validate() error {
	if c.Filters.Set != "cheap" && c.Filters.Set != "all" {
		return fmt.Errorf("filters.set must be %q or %q, got %q", "cheap", "all", c.Filters.Set)
	}
	if c.Caps.MaxWorkers < 1 {
		return fmt.Errorf("caps.max_workers must be at least 1")
	}
	if c.Caps.MaxIsomorphisms != "" {
		if _, ok := new(big.Int).SetString(c.Caps.MaxIsomorphisms, 10); !ok {
			return fmt.Errorf("caps.max_isomorphisms %q is not a decimal integer", c.Caps.MaxIsomorphisms)
		}
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be %q or %q, got %q", "text", "json", c.Output.Format)
	}
	return nil
}

// MaxIsomorphismsBigInt parses Caps.MaxIsomorphisms, returning nil (no cap)
// when the field is empty.
func (c *Config) MaxIsomorphismsBigInt() *big.Int {
	if c.Caps.MaxIsomorphisms == "" {
		return nil
	}
	n, _ := new(big.Int).SetString(c.Caps.MaxIsomorphisms, 10)
	return n
}

// EnsureCacheDir creates the configured cache directory if it doesn't
// already exist.
func (c *Config) EnsureCacheDir() error {
	if c.Cache.Dir == "" {
		return nil
	}
	return os.MkdirAll(c.Cache.Dir, 0o755)
}
