package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// ErrProfile wraps every failure to read or decode a profile.
var ErrProfile = errors.New("invalid profile")

// Profile is the decoded form of a profile file.
type Profile struct {
	Log    *Log    `hcl:"log,block"`
	Output *Output `hcl:"output,block"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Output configures the default result location.
type Output struct {
	Prefix    string `hcl:"prefix,optional"`
	Directory string `hcl:"directory,optional"`
}

// LogLevel returns the configured level or "".
func (p *Profile) LogLevel() string {
	if p == nil || p.Log == nil {
		return ""
	}
	return p.Log.Level
}

// LogFormat returns the configured format or "".
func (p *Profile) LogFormat() string {
	if p == nil || p.Log == nil {
		return ""
	}
	return p.Log.Format
}

// OutputPrefix returns the configured result prefix or "".
func (p *Profile) OutputPrefix() string {
	if p == nil || p.Output == nil {
		return ""
	}
	return p.Output.Prefix
}

// OutputDirectory returns the configured result directory or "".
func (p *Profile) OutputDirectory() string {
	if p == nil || p.Output == nil {
		return ""
	}
	return p.Output.Directory
}

// Load reads and decodes the profile at path.
func Load(path string, env map[string]string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfile, err)
	}
	return Parse(src, path, env)
}

// Parse decodes src; filename is used only in diagnostics.
func Parse(src []byte, filename string, env map[string]string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrProfile, filename, diags)
	}

	var p Profile
	diags = gohcl.DecodeBody(file.Body, EvalContext(env), &p)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrProfile, filename, diags)
	}
	return &p, nil
}

// EvalContext exposes env to profile expressions as the env object.
func EvalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}
