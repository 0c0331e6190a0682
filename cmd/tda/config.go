package main

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config validation errors.
var (
	ErrInvalidOutputDir = errors.New("output dir cannot be empty")
	ErrInvalidLogLevel  = errors.New("log level must be debug, info, warn, or error")
	ErrInvalidWorkers   = errors.New("workers cannot be negative")
)

// Config carries the process-wide settings. Every field can be set through
// the environment with the TDA_ prefix (TDA_OUTPUT_DIR, TDA_LOG_LEVEL,
// TDA_WORKERS) and overridden by flags.
type Config struct {
	// OutputDir receives diagram and graph files.
	OutputDir string `split_words:"true" default:"."`

	// LogLevel is the minimum level written to stderr.
	LogLevel string `split_words:"true" default:"info"`

	// Workers bounds parallel per-graph processing; zero means one worker
	// per CPU.
	Workers int `default:"0"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("tda", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading configuration: %w", err)
	}

	return cfg, nil
}

// ValidateConfig checks the merged flag and environment values.
func ValidateConfig(cfg *Config) error {
	if cfg.OutputDir == "" {
		return ErrInvalidOutputDir
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	if cfg.Workers < 0 {
		return ErrInvalidWorkers
	}

	return nil
}
