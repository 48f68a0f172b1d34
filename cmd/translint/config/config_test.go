package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "./locales", cfg.Dir)
		assert.Equal(t, "en-US", cfg.DefaultLanguage)
		assert.False(t, cfg.FailOnIssues)
		assert.False(t, cfg.Debug)
	})

	t.Run("from environment", func(t *testing.T) {
		cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
			"TRANSLINT_DIR":              "/srv/locales",
			"TRANSLINT_DEFAULT_LANGUAGE": "es-ES",
			"TRANSLINT_FAIL":             "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, "/srv/locales", cfg.Dir)
		assert.Equal(t, "es-ES", cfg.DefaultLanguage)
		assert.True(t, cfg.FailOnIssues)
	})

	t.Run("invalid bool", func(t *testing.T) {
		_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
			"TRANSLINT_FAIL": "maybe",
		}))
		assert.Error(t, err)
	})

	t.Run("missing env file is fine", func(t *testing.T) {
		t.Setenv("TRANSLINT_DIR", "./x")
		cfg, err := Load(context.Background(), t.TempDir()+"/.env")
		require.NoError(t, err)
		assert.Equal(t, "./x", cfg.Dir)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{Dir: " ", DefaultLanguage: "en"}).Validate())
	assert.Error(t, (&Config{Dir: "./locales"}).Validate())
	assert.NoError(t, (&Config{Dir: "./locales", DefaultLanguage: "en"}).Validate())
}
