// Package config loads solver settings from YAML files and the environment.
//
//	timeAllowance: 30s
//	priorityWeight: 16
//	greedySeed: true
//	greedyTimeAllowance: 2s
//	logLevel: debug
//
// Parse decodes a YAML document strictly (unknown keys are errors). Load
// reads a file through viper and lets ATSP_* environment variables
// override it, e.g. ATSP_TIMEALLOWANCE=5s. Missing keys keep the values
// of Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/atsp/bnb"
	"github.com/katalvlaran/atsp/logging"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides read by Load.
const EnvPrefix = "ATSP"

// Config mirrors the bnb options that make sense outside code.
type Config struct {
	TimeAllowance       time.Duration `yaml:"timeAllowance" mapstructure:"timeAllowance"`
	PriorityWeight      float64       `yaml:"priorityWeight" mapstructure:"priorityWeight"`
	GreedySeed          bool          `yaml:"greedySeed" mapstructure:"greedySeed"`
	GreedyTimeAllowance time.Duration `yaml:"greedyTimeAllowance" mapstructure:"greedyTimeAllowance"`
	LogLevel            string        `yaml:"logLevel" mapstructure:"logLevel"`
}

// Default returns the bnb defaults with greedy seeding off and info logging.
func Default() Config {
	return Config{
		TimeAllowance:       bnb.DefaultTimeAllowance,
		PriorityWeight:      bnb.DefaultPriorityWeight,
		GreedyTimeAllowance: bnb.DefaultGreedyTimeAllowance,
		LogLevel:            "info",
	}
}

// Parse decodes data over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path (any format viper recognises by extension; "" skips the
// file), applies ATSP_* environment overrides and validates.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("timeAllowance", def.TimeAllowance)
	v.SetDefault("priorityWeight", def.PriorityWeight)
	v.SetDefault("greedySeed", def.GreedySeed)
	v.SetDefault("greedyTimeAllowance", def.GreedyTimeAllowance)
	v.SetDefault("logLevel", def.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.TimeAllowance <= 0 {
		return fmt.Errorf("%w: timeAllowance must be positive, got %v", ErrInvalidConfig, c.TimeAllowance)
	}
	if !(c.PriorityWeight > 0) || math.IsInf(c.PriorityWeight, 0) {
		return fmt.Errorf("%w: priorityWeight must be positive and finite, got %g", ErrInvalidConfig, c.PriorityWeight)
	}
	if c.GreedySeed && c.GreedyTimeAllowance <= 0 {
		return fmt.Errorf("%w: greedyTimeAllowance must be positive, got %v", ErrInvalidConfig, c.GreedyTimeAllowance)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: logLevel: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Logger builds the logger described by LogLevel, writing JSON to w.
func (c Config) Logger(w io.Writer) (logr.Logger, error) {
	return logging.New(strings.TrimSpace(c.LogLevel), w)
}

// SolveOptions validates c and translates it into bnb options that use log.
func (c Config) SolveOptions(log logr.Logger) ([]bnb.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []bnb.Option{
		bnb.WithTimeAllowance(c.TimeAllowance),
		bnb.WithPriorityWeight(c.PriorityWeight),
		bnb.WithLogger(log),
	}
	if c.GreedySeed {
		opts = append(opts, bnb.WithGreedySeed(c.GreedyTimeAllowance))
	}

	return opts, nil
}
