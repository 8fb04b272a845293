package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvConfig    = "SYMCRYPT_CONFIG"
	EnvLogLevel  = "SYMCRYPT_LOG_LEVEL"
	EnvLogFormat = "SYMCRYPT_LOG_FORMAT"
)

// Env is a snapshot of the environment the app sees.
type Env map[string]string

// Get returns the value of key, or "" when it is unset.
func (e Env) Get(key string) string {
	return e[key]
}

// LoadEnv merges the dotenv file at path under the process environment.
// Variables already set in the process win. A missing file is not an error.
func LoadEnv(path string) (Env, error) {
	dotenv, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to read %s: %w", ErrConfig, path, err)
		}
		dotenv = nil
	}
	return mergeEnv(os.Environ(), dotenv), nil
}

func mergeEnv(environ []string, dotenv map[string]string) Env {
	env := make(Env, len(environ)+len(dotenv))
	for k, v := range dotenv {
		env[k] = v
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
