package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/pkg/timeutil"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Shift    ShiftConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// ShiftConfig is the nominal working window attendance lateness, early-leave
// and overtime are derived against.
type ShiftConfig struct {
	Start         string
	End           string
	StandardHours decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; env vars take over.
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
		Name:     getEnv("DB_NAME", "peopledesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}

	standardHours, err := decimal.NewFromString(getEnv("SHIFT_STANDARD_HOURS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_STANDARD_HOURS: %w", err)
	}
	config.Shift = ShiftConfig{
		Start:         getEnv("SHIFT_START", "09:00"),
		End:           getEnv("SHIFT_END", "17:00"),
		StandardHours: standardHours,
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
	if _, err := timeutil.ParseClock(c.Shift.Start); err != nil {
		return fmt.Errorf("SHIFT_START: %w", err)
	}
	if _, err := timeutil.ParseClock(c.Shift.End); err != nil {
		return fmt.Errorf("SHIFT_END: %w", err)
	}
	if !c.Shift.StandardHours.IsPositive() {
		return fmt.Errorf("SHIFT_STANDARD_HOURS must be positive")
	}
	return nil
}

// ShiftWindow builds the attendance shift window from the configured bounds.
func (c *Config) ShiftWindow() (timeutil.ShiftWindow, error) {
	return timeutil.NewShiftWindow(c.Shift.Start, c.Shift.End, c.Shift.StandardHours)
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

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
