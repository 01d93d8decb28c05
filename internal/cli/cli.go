package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/predictgo/internal/app"
)

// Environment variables that provide flag defaults.
const (
	EnvLogLevel     = "PREDICTGO_LOG_LEVEL"
	EnvLogFormat    = "PREDICTGO_LOG_FORMAT"
	EnvParallelism  = "PREDICTGO_PARALLELISM"
	EnvOutputFormat = "PREDICTGO_OUTPUT_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("predictgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
predictgo - Static prediction of the files a build reads and writes.

Usage:
  predictgo [options] [PROJECT_PATH...]

Arguments:
  PROJECT_PATH
    Path to an HCL project description. Referenced projects are followed.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaultParallelism := 0
	if v := os.Getenv(EnvParallelism); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %v", EnvParallelism, err)}
		}
		defaultParallelism = n
	}

	var projects, properties stringList
	flagSet.Var(&projects, "project", "Path to a project file or a directory of *.proj.hcl files. Repeatable.")
	flagSet.Var(&projects, "p", "Path to a project file (shorthand).")
	flagSet.Var(&properties, "property", "Global property as NAME=VALUE. Repeatable.")
	logFormatFlag := flagSet.String("log-format", envOr(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	parallelismFlag := flagSet.Int("parallelism", defaultParallelism, "Projects predicted concurrently. 0 uses one per CPU.")
	formatFlag := flagSet.String("format", envOr(EnvOutputFormat, app.FormatJSON), "Prediction output format. Options: 'json', 'yaml' or 'hcl'.")
	caseSensitiveFlag := flagSet.Bool("case-sensitive", false, "Compare paths case-sensitively.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := append([]string(nil), projects...)
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Project paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No project path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	globals := make(map[string]string, len(properties))
	for _, p := range properties {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid property %q: must be NAME=VALUE", p)}
		}
		globals[name] = value
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectPaths:     paths,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		Parallelism:      *parallelismFlag,
		OutputFormat:     *formatFlag,
		CaseSensitive:    *caseSensitiveFlag,
		GlobalProperties: globals,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
