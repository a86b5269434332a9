package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajisdzalparo/finsmart-entitlement/pkg/config"
)

type testConfig struct {
	BaseURL string        `env:"TEST_BILLING_URL,required"`
	Token   string        `env:"TEST_BILLING_TOKEN"`
	Timeout time.Duration `env:"TEST_BILLING_TIMEOUT" envDefault:"10s"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env into struct", func(t *testing.T) {
		t.Setenv("TEST_BILLING_URL", "https://api.example.com/billing")
		t.Setenv("TEST_BILLING_TOKEN", "secret")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "https://api.example.com/billing", cfg.BaseURL)
		assert.Equal(t, "secret", cfg.Token)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("missing required variable", func(t *testing.T) {
		t.Setenv("TEST_BILLING_URL", "")

		type strictConfig struct {
			Missing string `env:"TEST_DEFINITELY_UNSET_VAR,required,notEmpty"`
		}

		var cfg strictConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type strictConfig struct {
			Missing string `env:"TEST_ANOTHER_UNSET_VAR,required,notEmpty"`
		}

		assert.Panics(t, func() {
			var cfg strictConfig
			config.MustLoad(&cfg)
		})
	})
}
