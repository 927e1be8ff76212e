package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names and prefix.
const (
	EnvPrefix  = "CAREERPATH_"
	EnvConfig  = EnvPrefix + "CONFIG"
	EnvDotFile = EnvPrefix + "ENV_FILE"

	defaultDotFile = ".env"
)

var pageSizes = []string{"A3", "A4", "A5", "Letter", "Legal"} //nolint:gochecknoglobals // fixed set

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. .env file (only fills variables not already set)
//  3. file (YAML) if CAREERPATH_CONFIG is set
//  4. env (prefix CAREERPATH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	dotFile := os.Getenv(EnvDotFile)
	if dotFile == "" {
		dotFile = defaultDotFile
	}
	if err := godotenv.Load(dotFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: env file %s: %w", ErrLoadConfig, dotFile, err)
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// CAREERPATH_OUTPUT_DIR -> output_dir. Underscores are kept so keys match
	// the koanf tags; the "." delimiter never occurs in env names.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	if !slices.Contains(pageSizes, c.PageSize) {
		return fmt.Errorf("%w: page_size %q must be one of %s", ErrInvalidConfig, c.PageSize, strings.Join(pageSizes, ", "))
	}
	if math.IsNaN(c.DefaultTraitScore) || c.DefaultTraitScore < 0 || c.DefaultTraitScore > 100 {
		return fmt.Errorf("%w: default_trait_score must be within [0, 100]", ErrInvalidConfig)
	}
	return nil
}
