package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Session configuration
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTLHours   int    `mapstructure:"SESSION_TTL_HOURS"`
	CookieSecure      bool   `mapstructure:"COOKIE_SECURE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// OTP configuration
	OTPLength                int `mapstructure:"OTP_LENGTH"`
	OTPTTLMinutes            int `mapstructure:"OTP_TTL_MINUTES"`
	OTPMaxAttempts           int `mapstructure:"OTP_MAX_ATTEMPTS"`
	OTPResendCooldownSeconds int `mapstructure:"OTP_RESEND_COOLDOWN_SECONDS"`

	// Redis is optional; the OTP resend cooldown is disabled without it
	RedisURL string `mapstructure:"REDIS_URL"`

	// Backups
	BackupRetention int `mapstructure:"BACKUP_RETENTION"`

	// Super admin seed
	SuperAdminEmail    string `mapstructure:"SUPER_ADMIN_EMAIL"`
	SuperAdminPassword string `mapstructure:"SUPER_ADMIN_PASSWORD"`
}

// Load merges defaults, an optional config.yaml (./ or ./config) and the environment, in that
// order of precedence from lowest to highest.
func Load() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	setDefaults(v)

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(&cfg)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]interface{}{
		"ENVIRONMENT": "development",
		"PORT":        "7010",
		"LOG_LEVEL":   "info",

		"DB_HOST":     "localhost",
		"DB_PORT":     "5432",
		"DB_USER":     "postgres",
		"DB_PASSWORD": "postgres",
		"DB_NAME":     "lpg_backoffice",
		"DB_SSL_MODE": "disable",

		"JWT_SECRET":          defaultJWTSecret,
		"SESSION_COOKIE_NAME": "lpg_session",
		"SESSION_TTL_HOURS":   24,
		"COOKIE_SECURE":       false,
		"ALLOWED_ORIGINS":     []string{"http://localhost:3000"},

		"OTP_LENGTH":                  6,
		"OTP_TTL_MINUTES":             10,
		"OTP_MAX_ATTEMPTS":            5,
		"OTP_RESEND_COOLDOWN_SECONDS": 60,
		"REDIS_URL":                   "",

		"BACKUP_RETENTION":     10,
		"SUPER_ADMIN_EMAIL":    "",
		"SUPER_ADMIN_PASSWORD": "",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func buildDatabaseURL(cfg *Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DatabaseUser, cfg.DatabasePassword),
		Host:     net.JoinHostPort(cfg.DatabaseHost, cfg.DatabasePort),
		Path:     "/" + cfg.DatabaseName,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.DatabaseSSLMode),
	}
	return u.String()
}

// validate reports every problem at once
func validate(cfg *Config) error {
	var errs []error
	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if cfg.DatabaseName == "" && cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("DB_NAME or DATABASE_URL is required"))
	}
	if cfg.OTPLength < 4 || cfg.OTPLength > 10 {
		errs = append(errs, fmt.Errorf("OTP_LENGTH must be between 4 and 10, got %d", cfg.OTPLength))
	}
	if cfg.OTPTTLMinutes <= 0 {
		errs = append(errs, errors.New("OTP_TTL_MINUTES must be positive"))
	}
	if cfg.OTPMaxAttempts <= 0 {
		errs = append(errs, errors.New("OTP_MAX_ATTEMPTS must be positive"))
	}
	if cfg.SessionTTLHours <= 0 {
		errs = append(errs, errors.New("SESSION_TTL_HOURS must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SessionTTL returns the lifetime of a session token
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// OTPTTL returns how long an issued OTP stays valid
func (c *Config) OTPTTL() time.Duration {
	return time.Duration(c.OTPTTLMinutes) * time.Minute
}

// OTPResendCooldown returns the minimum gap between two OTP requests for one email
func (c *Config) OTPResendCooldown() time.Duration {
	return time.Duration(c.OTPResendCooldownSeconds) * time.Second
}
