package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Missing JWT Secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		cfg, err := NewInternalConfig()

		assert.ErrorIs(t, err, ErrMissingJWTSecret)
		assert.Nil(t, cfg)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := NewInternalConfig()
		require.NoError(t, err)

		assert.Equal(t, "0 0 1 * *", cfg.Billing.CronSpec)
		assert.Equal(t, 8, cfg.Billing.MaxConcurrency)
		assert.Equal(t, 168, cfg.JWT.ExpiryHours)
		assert.Equal(t, "billing_events", cfg.RabbitMQ.BillingQueue)
		assert.Equal(t, "/api", cfg.App.EndpointPrefix)
		assert.Equal(t, "v1", cfg.App.Version)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("BILLING_CRON_SPEC", "*/5 * * * *")
		t.Setenv("BILLING_MAX_CONCURRENCY", "2")
		t.Setenv("APP_ENV", "production")

		cfg, err := NewInternalConfig()
		require.NoError(t, err)

		assert.Equal(t, "*/5 * * * *", cfg.Billing.CronSpec)
		assert.Equal(t, 2, cfg.Billing.MaxConcurrency)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("Invalid Timezone", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("APP_TIMEZONE", "Not/AZone")

		_, err := NewInternalConfig()
		assert.Error(t, err)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("MONGODB_DB_NAME", "practice_test")

	cfg, err := NewDriverConfig()
	require.NoError(t, err)

	assert.Equal(t, "practice_test", cfg.MongoDB.DbName)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Empty(t, cfg.RabbitMQ.Host)
}
