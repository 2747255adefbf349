package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// defaultMaxWeights bounds the number of weights handed to CKK.
	defaultMaxWeights = 16

	// defaultMaxLeaves bounds (k!)^(n-1), the unpruned leaf count of the
	// CKK tree. Each merge step branches k! ways, so k matters as much as n.
	defaultMaxLeaves = 1 << 20
)

var (
	errTooManyWeights = errors.New("too many weights for an exact search")
	errSearchTooLarge = errors.New("partition search space too large")
)

// validate is shared by the config and input structs.
var validate = validator.New()

// Config is the optional YAML configuration file.
type Config struct {
	LogLevel   string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Bins       int    `yaml:"bins" validate:"gte=0"`
	Order      string `yaml:"order" validate:"omitempty,oneof=mean-desc mean-asc first-seen"`
	MaxWeights int    `yaml:"max_weights" validate:"gte=0"`
	MaxLeaves  int    `yaml:"max_leaves" validate:"gte=0"`
}

// defaultConfig is used when no --config is given.
func defaultConfig() Config {
	return Config{
		LogLevel:   "info",
		Order:      "first-seen",
		MaxWeights: defaultMaxWeights,
		MaxLeaves:  defaultMaxLeaves,
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// parseLevel maps a config level name onto slog.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}

	return lvl, nil
}
