package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		src       string
		env       map[string]string
		expectErr bool
		want      *Profile
	}{
		{
			name: "all settings",
			src: `
				log {
					level  = "debug"
					format = "json"
				}
				output {
					prefix    = "enc_"
					directory = "/srv/out"
				}
			`,
			want: &Profile{
				Log:    &Log{Level: "debug", Format: "json"},
				Output: &Output{Prefix: "enc_", Directory: "/srv/out"},
			},
		},
		{
			name: "env interpolation",
			src: `
				output {
					directory = "${env.HOME}/results"
				}
			`,
			env:  map[string]string{"HOME": "/home/alice"},
			want: &Profile{Output: &Output{Directory: "/home/alice/results"}},
		},
		{
			name: "empty file",
			src:  ``,
			want: &Profile{},
		},
		{
			name:      "unknown env variable",
			src:       `output { directory = env.NOPE }`,
			env:       map[string]string{},
			expectErr: true,
		},
		{
			name:      "unknown block",
			src:       `cipher { name = "AES" }`,
			expectErr: true,
		},
		{
			name:      "unknown attribute",
			src:       `log { colour = "red" }`,
			expectErr: true,
		},
		{
			name:      "syntax error",
			src:       `log {`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got, err := Parse([]byte(tc.src), "profile.hcl", tc.env)

			// --- Assert ---
			if tc.expectErr {
				require.ErrorIs(t, err, ErrProfile)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Profile mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "symcrypt.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log { level = "info" }`), 0600))

	p, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "info", p.LogLevel())
	require.Equal(t, "", p.LogFormat())
	require.Equal(t, "", p.OutputPrefix())
	require.Equal(t, "", p.OutputDirectory())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"), nil)
	require.ErrorIs(t, err, ErrProfile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAccessors_NilProfile(t *testing.T) {
	t.Parallel()

	var p *Profile
	require.Empty(t, p.LogLevel())
	require.Empty(t, p.OutputDirectory())
}
