package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// Output formats understood by the encoder.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPaths []string

	LogFormat    string
	LogLevel     string
	Parallelism  int
	OutputFormat string

	CaseSensitive    bool
	GlobalProperties map[string]string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ProjectPaths) == 0 {
		return nil, errors.New("at least one project path is required")
	}
	for _, p := range cfg.ProjectPaths {
		if strings.TrimSpace(p) == "" {
			return nil, errors.New("project path cannot be empty")
		}
	}
	if cfg.Parallelism < 0 {
		return nil, fmt.Errorf("parallelism must not be negative, got %d", cfg.Parallelism)
	}

	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = FormatJSON
	case FormatJSON, FormatYAML, FormatHCL:
	default:
		return nil, fmt.Errorf("unknown output format %q: must be 'json', 'yaml' or 'hcl'", cfg.OutputFormat)
	}
	return &cfg, nil
}

// Comparer returns the path comparer selected by the configuration.
func (c *Config) Comparer() pathid.Comparer {
	return pathid.Comparer{CaseSensitive: c.CaseSensitive}
}
