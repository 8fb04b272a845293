package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/symcrypt/internal/fsutil"
	"github.com/specialistvlad/symcrypt/internal/profile"
)

// ErrConfig marks an invalid ambient setting from any source.
var ErrConfig = errors.New("invalid configuration")

// Options are the ambient settings given on the command line. Empty
// fields were not set and fall through to the environment and profile.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProfilePath string

	LogLevel  string
	LogFormat string

	OutputPrefix string
	OutputDir    string
}

// NewConfig fills defaults and checks the enumerated settings.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = fsutil.DefaultPrefix
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log level must be 'debug', 'info', 'warn', or 'error', got %q", ErrConfig, cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrConfig, cfg.LogFormat)
	}

	return &cfg, nil
}

// LoadConfig resolves each setting from, in order, the command line, the
// environment, the profile and the built-in default.
func LoadConfig(opts Options, env Env) (*Config, error) {
	path := firstOf(opts.ConfigPath, env.Get(EnvConfig))

	var p *profile.Profile
	if path != "" {
		loaded, err := profile.Load(path, env)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		p = loaded
	}

	return NewConfig(Config{
		ProfilePath:  path,
		LogLevel:     firstOf(opts.LogLevel, env.Get(EnvLogLevel), p.LogLevel()),
		LogFormat:    firstOf(opts.LogFormat, env.Get(EnvLogFormat), p.LogFormat()),
		OutputPrefix: p.OutputPrefix(),
		OutputDir:    p.OutputDirectory(),
	})
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
