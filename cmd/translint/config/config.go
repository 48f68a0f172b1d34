package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the lint settings. Values come from the environment (and an
// optional .env file); command line flags override them.
type Config struct {
	Dir             string `env:"TRANSLINT_DIR, default=./locales"`
	DefaultLanguage string `env:"TRANSLINT_DEFAULT_LANGUAGE, default=en-US"`
	FailOnIssues    bool   `env:"TRANSLINT_FAIL, default=false"`
	Debug           bool   `env:"TRANSLINT_DEBUG, default=false"`
}

// Load reads envFile if it exists and then the process environment.
func Load(ctx context.Context, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings after flags have been applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return errors.New("config: locales directory is required")
	}
	if strings.TrimSpace(c.DefaultLanguage) == "" {
		return errors.New("config: default language is required")
	}
	return nil
}
