package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/symcrypt/internal/profile"
	"github.com/specialistvlad/symcrypt/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	want := &Config{LogLevel: "warn", LogFormat: "text", OutputPrefix: "new_"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{LogLevel: "verbose"})
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewConfig(Config{LogFormat: "yaml"})
	require.ErrorIs(t, err, ErrConfig)
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	profilePath := testutil.WriteFile(t, dir, "symcrypt.hcl", `
		log {
			level  = "error"
			format = "json"
		}
		output {
			prefix    = "enc_"
			directory = "${env.OUT_ROOT}/results"
		}
	`)

	testCases := []struct {
		name string
		opts Options
		env  Env
		want *Config
	}{
		{
			name: "defaults without profile",
			env:  Env{},
			want: &Config{LogLevel: "warn", LogFormat: "text", OutputPrefix: "new_"},
		},
		{
			name: "profile from flag",
			opts: Options{ConfigPath: profilePath},
			env:  Env{"OUT_ROOT": "/data"},
			want: &Config{ProfilePath: profilePath, LogLevel: "error", LogFormat: "json", OutputPrefix: "enc_", OutputDir: "/data/results"},
		},
		{
			name: "profile from environment, env level beats profile",
			env:  Env{EnvConfig: profilePath, EnvLogLevel: "info", "OUT_ROOT": "/x"},
			want: &Config{ProfilePath: profilePath, LogLevel: "info", LogFormat: "json", OutputPrefix: "enc_", OutputDir: "/x/results"},
		},
		{
			name: "flags beat environment",
			opts: Options{LogLevel: "debug", LogFormat: "text"},
			env:  Env{EnvLogLevel: "info", EnvLogFormat: "json"},
			want: &Config{LogLevel: "debug", LogFormat: "text", OutputPrefix: "new_"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadConfig(tc.opts, tc.env)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, cfg); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_BadProfile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.hcl")}, Env{})
	require.ErrorIs(t, err, ErrConfig)
	require.ErrorIs(t, err, profile.ErrProfile)
}

func TestLoadConfig_BadEnvironmentValue(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(Options{}, Env{EnvLogFormat: "xml"})
	require.ErrorIs(t, err, ErrConfig)
}
