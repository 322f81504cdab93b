package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
)

const (
	defaultPollInterval   = 10 * time.Minute
	defaultRequestTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    int64
	PracticumEndpoint string
	PollInterval      time.Duration
	RequestTimeout    time.Duration // Zero disables the request timeout
	FromDate          int64         // Initial poll cursor, unix seconds
	LogConfig
}

// LogConfig holds the logging settings. They are read separately so the
// logger is ready before credentials are checked.
type LogConfig struct {
	LogLevel    string
	Environment string
	LogFile     string // Optional, logs go to stdout as well
}

// LoadLogConfig reads the logging settings. It never fails; unset values get defaults.
func LoadLogConfig() LogConfig {
	_ = godotenv.Load()

	cfg := LogConfig{}
	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	return cfg
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	return load(time.Now)
}

func load(now func() time.Time) (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = practicum.DefaultEndpoint
	}

	cfg.PollInterval, err = durationEnv("POLL_INTERVAL", defaultPollInterval)
	if err != nil {
		return nil, err
	}
	if cfg.PollInterval < time.Second {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: must be at least 1s, got %s", cfg.PollInterval)
	}

	cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: must not be negative")
	}

	fromDateStr := os.Getenv("FROM_DATE")
	if fromDateStr == "" {
		cfg.FromDate = now().Add(-cfg.PollInterval).Unix() // Look back one interval on start
	} else {
		cfg.FromDate, err = strconv.ParseInt(fromDateStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FROM_DATE: %w", err)
		}
		if cfg.FromDate < 0 {
			return nil, fmt.Errorf("invalid FROM_DATE: must not be negative")
		}
	}

	cfg.LogConfig = LoadLogConfig()

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
