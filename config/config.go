// File: /config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port           string
	DBDriver       string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins string
	LogLevel       string
	LogFormat      string
	SeedData       bool

	RateLimitPerMinute int
	RateLimitBurst     int

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Service reminders
	ReminderInterval time.Duration
	ReminderWindow   time.Duration
}

// Load reads .env (when present) and the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("Could not read .env file, using process environment")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL:    getEnv("DATABASE_URL", "fueltrack.db"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@fueltrack.local"),
		FromName:     getEnv("FROM_NAME", "FuelTrack"),
	}

	var err error
	if cfg.SeedData, err = parseBoolEnv("SEED_DATA", false); err != nil {
		return nil, fmt.Errorf("parse SEED_DATA: %w", err)
	}
	if cfg.SMTPPort, err = parseIntEnv("SMTP_PORT", 2525); err != nil {
		return nil, fmt.Errorf("parse SMTP_PORT: %w", err)
	}
	if cfg.RateLimitPerMinute, err = parseIntEnv("RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if cfg.RateLimitBurst, err = parseIntEnv("RATE_LIMIT_BURST", 30); err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
	}
	if cfg.JWTExpiry, err = parseDurationEnv("JWT_EXPIRY", 7*24*time.Hour); err != nil {
		return nil, fmt.Errorf("parse JWT_EXPIRY: %w", err)
	}
	if cfg.ReminderInterval, err = parseDurationEnv("REMINDER_INTERVAL", time.Hour); err != nil {
		return nil, fmt.Errorf("parse REMINDER_INTERVAL: %w", err)
	}
	if cfg.ReminderWindow, err = parseDurationEnv("REMINDER_WINDOW", 7*24*time.Hour); err != nil {
		return nil, fmt.Errorf("parse REMINDER_WINDOW: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.DBDriver != "mysql" && c.DBDriver != "sqlite" {
		return fmt.Errorf("DB_DRIVER must be mysql or sqlite, got %q", c.DBDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTExpiry <= 0 {
		return errors.New("JWT_EXPIRY must be positive")
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive")
	}
	if c.ReminderInterval <= 0 || c.ReminderWindow <= 0 {
		return errors.New("REMINDER_INTERVAL and REMINDER_WINDOW must be positive")
	}
	return nil
}

// MailEnabled reports whether an SMTP host is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(val)
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(val)
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(val)
}
