package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/predictgo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-p", "a.proj.hcl",
		"--project", "b.proj.hcl",
		"--property", "Configuration=Release",
		"--property", "Empty=",
		"--property", "Expr=a=b",
		"--log-level", "DEBUG",
		"--format", "yaml",
		"--parallelism", "3",
		"--case-sensitive",
		"c.proj.hcl",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, []string{"a.proj.hcl", "b.proj.hcl", "c.proj.hcl"}, cfg.ProjectPaths)
	assert.Equal(t, map[string]string{"Configuration": "Release", "Empty": "", "Expr": "a=b"}, cfg.GlobalProperties)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, app.FormatYAML, cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Parallelism)
	assert.True(t, cfg.CaseSensitive)
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvParallelism, "5")
	t.Setenv(EnvOutputFormat, "hcl")

	cfg, _, err := Parse([]string{"a.proj.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.Parallelism)
	assert.Equal(t, app.FormatHCL, cfg.OutputFormat)

	cfg, _, err = Parse([]string{"--log-level", "error", "a.proj.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "flags win over the environment")
}

func TestParse_UsageExits(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}} {
		var out bytes.Buffer
		cfg, exit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--nope", "a"}, "flag provided but not defined"},
		{"bad log format", []string{"--log-format", "xml", "a"}, "invalid log-format"},
		{"bad log level", []string{"--log-level", "trace", "a"}, "invalid log-level"},
		{"bad property", []string{"--property", "=x", "a"}, "invalid property"},
		{"property without value", []string{"--property", "Name", "a"}, "invalid property"},
		{"bad format", []string{"--format", "xml", "a"}, "unknown output format"},
		{"negative parallelism", []string{"--parallelism", "-2", "a"}, "must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}

	t.Run("bad parallelism environment", func(t *testing.T) {
		t.Setenv(EnvParallelism, "many")
		_, _, err := Parse([]string{"a"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, EnvParallelism)
	})
}
