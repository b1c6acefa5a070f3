package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:     "development",
		DatabaseName:    "lpg_backoffice",
		JWTSecret:       defaultJWTSecret,
		SessionTTLHours: 24,
		OTPLength:       6,
		OTPTTLMinutes:   10,
		OTPMaxAttempts:  5,
	}
}

func TestValidate(t *testing.T) {
	t.Run("development accepts default secret", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("otp length out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.OTPLength = 3
		assert.Error(t, validate(cfg))
		cfg.OTPLength = 11
		assert.Error(t, validate(cfg))
	})

	t.Run("non positive otp ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.OTPTTLMinutes = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		cfg.OTPMaxAttempts = 0
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "OTP_MAX_ATTEMPTS")
	})

	t.Run("non positive session ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.SessionTTLHours = 0
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "lpg",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "lpg_backoffice",
		DatabaseSSLMode:  "require",
	}
	assert.Equal(t, "postgres://lpg:secret@db:5433/lpg_backoffice?sslmode=require", buildDatabaseURL(cfg))

	cfg.DatabasePassword = "p@ss/word"
	assert.Equal(t, "postgres://lpg:p%40ss%2Fword@db:5433/lpg_backoffice?sslmode=require", buildDatabaseURL(cfg))
}

func TestDurations(t *testing.T) {
	cfg := validConfig()
	cfg.OTPResendCooldownSeconds = 45
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL())
	assert.Equal(t, 45*time.Second, cfg.OTPResendCooldown())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
