package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/symcrypt/internal/request"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	validator *request.Validator
}

// NewApp is the constructor for the main application. Results are reported
// on outW; logs go to logW through an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat, "profile", cfg.ProfilePath)

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		validator: request.NewValidator(),
	}
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
