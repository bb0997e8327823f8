package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig controls the attendance correction window.
// Past dates stay editable for GracePeriodDays; future dates beyond
// MaxFutureDays are always locked.
type AttendanceConfig struct {
	GracePeriodDays int
	MaxFutureDays   int
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffledger_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	gracePeriod, err := strconv.Atoi(getEnv("ATTENDANCE_GRACE_PERIOD_DAYS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_GRACE_PERIOD_DAYS: %w", err)
	}
	maxFuture, err := strconv.Atoi(getEnv("ATTENDANCE_MAX_FUTURE_DAYS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_MAX_FUTURE_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		GracePeriodDays: gracePeriod,
		MaxFutureDays:   maxFuture,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.GracePeriodDays < 0 {
		return fmt.Errorf("ATTENDANCE_GRACE_PERIOD_DAYS must not be negative")
	}
	if c.Attendance.MaxFutureDays < 0 {
		return fmt.Errorf("ATTENDANCE_MAX_FUTURE_DAYS must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
