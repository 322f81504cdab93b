// internal/infra/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

// Init initializes the global logger based on application configuration.
// The returned closer releases the log file, if one was opened.
func Init(cfg config.LogConfig) (io.Closer, error) {
	var closer io.Closer = nopCloser{}
	var fileErr error
	Log.SetOutput(os.Stdout) // Default output
	if cfg.LogFile != "" {
		// The file starts empty on every run.
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			fileErr = fmt.Errorf("failed to open log file %q: %w", cfg.LogFile, err)
		} else {
			Log.SetOutput(io.MultiWriter(os.Stdout, f))
			closer = f
		}
	}

	// Set Log Level
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	// Set Log Formatter
	if strings.ToLower(cfg.Environment) == "production" || strings.ToLower(cfg.Environment) == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else { // Development or other environments
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   cfg.LogFile != "", // Keep escape codes out of the file
		})
	}

	Log.Info("Logger initialized successfully.")
	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	Log.Debugf("Log format set for environment: %s", cfg.Environment)
	return closer, fileErr
}

// Named returns an entry of the global logger tagged with a component name.
func Named(name string) *logrus.Entry {
	return Log.WithField("logger", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
