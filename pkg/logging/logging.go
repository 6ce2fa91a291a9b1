package logging

import (
	"errors"
	"log/slog"
	"os"
)

const (
	// KeyError is the key used for errors.
	KeyError = "err"

	// KeyDal is the key used to identify the data access layer in use.
	KeyDal = "dal"

	// KeyAppName is the key used for the application name.
	KeyAppName = "app"
)

// Name is the application name attached to every log line.
type Name string

// Config is the configuration for a logger.
type Config struct {
	// name is the application name.
	name Name

	// level is the minimum level that will be logged.
	level slog.Level
}

// NewConfig creates a new logging configuration.
func NewConfig(name Name) *Config {
	return &Config{
		name:  name,
		level: slog.LevelDebug,
	}
}

// CommonLogger creates the common logger for the application. It is also set
// as the slog default so that packages logging through slog directly share
// the same handler.
func CommonLogger(c *Config) (*slog.Logger, error) {
	if c.name == "" {
		return nil, errors.New("logging config has no application name")
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: c.level,
	})

	l := slog.New(h).With(slog.String(KeyAppName, string(c.name)))
	slog.SetDefault(l)
	return l, nil
}
