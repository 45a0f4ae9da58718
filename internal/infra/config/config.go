package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"date_dimension/internal/domain/calendar"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseDriver  string
	DatabaseURL     string
	TableStart      calendar.Date
	HorizonYears    int
	CronSpecRefresh string
	ExportCSVPath   string // empty disables export
	RunOnce         bool
	TelegramToken   string // empty disables the bot
	AdminTelegramID int64
	LogLevel        string
	Environment     string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseDriver = strings.ToLower(os.Getenv("DATABASE_DRIVER"))
	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = DriverPostgres
	}
	if cfg.DatabaseDriver != DriverPostgres && cfg.DatabaseDriver != DriverSQLite {
		return nil, fmt.Errorf("invalid DATABASE_DRIVER %q: must be %s or %s", cfg.DatabaseDriver, DriverPostgres, DriverSQLite)
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	startStr := os.Getenv("DATE_TABLE_START")
	if startStr == "" {
		startStr = "2000-01-01"
	}
	cfg.TableStart, err = calendar.Parse(startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DATE_TABLE_START: %w", err)
	}

	cfg.HorizonYears = 5
	if s := os.Getenv("DATE_TABLE_HORIZON_YEARS"); s != "" {
		cfg.HorizonYears, err = strconv.Atoi(s)
		if err != nil || cfg.HorizonYears < 0 {
			return nil, fmt.Errorf("invalid DATE_TABLE_HORIZON_YEARS %q", s)
		}
	}

	cfg.CronSpecRefresh = os.Getenv("CRON_SPEC_REFRESH")
	if cfg.CronSpecRefresh == "" {
		cfg.CronSpecRefresh = "0 3 * * *" // Default: 03:00 daily
	}

	cfg.ExportCSVPath = os.Getenv("EXPORT_CSV_PATH")

	if s := os.Getenv("RUN_ONCE"); s != "" {
		cfg.RunOnce, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid RUN_ONCE: %w", err)
		}
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken != "" {
		adminIDStr := os.Getenv("ADMIN_TELEGRAM_ID")
		if adminIDStr == "" {
			return nil, fmt.Errorf("ADMIN_TELEGRAM_ID is not set")
		}
		cfg.AdminTelegramID, err = strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}

// BotEnabled reports whether a Telegram token was configured.
func (c *AppConfig) BotEnabled() bool {
	return c.TelegramToken != ""
}
