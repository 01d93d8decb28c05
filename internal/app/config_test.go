package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        Config
		wantFormat string
		wantErr    string
	}{
		{name: "defaults to json", cfg: Config{ProjectPaths: []string{"a.proj.hcl"}}, wantFormat: FormatJSON},
		{name: "format is case-insensitive", cfg: Config{ProjectPaths: []string{"a.proj.hcl"}, OutputFormat: "HCL"}, wantFormat: FormatHCL},
		{name: "no projects", cfg: Config{}, wantErr: "at least one project path"},
		{name: "blank project", cfg: Config{ProjectPaths: []string{" "}}, wantErr: "cannot be empty"},
		{name: "negative parallelism", cfg: Config{ProjectPaths: []string{"a"}, Parallelism: -1}, wantErr: "must not be negative"},
		{name: "unknown format", cfg: Config{ProjectPaths: []string{"a"}, OutputFormat: "xml"}, wantErr: "unknown output format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantFormat, cfg.OutputFormat)
		})
	}
}

func TestConfig_Comparer(t *testing.T) {
	assert.False(t, (&Config{}).Comparer().CaseSensitive)
	assert.True(t, (&Config{CaseSensitive: true}).Comparer().CaseSensitive)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("WARN", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = newLogger("nonsense", "text", &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
