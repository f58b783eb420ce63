package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/registrygen/internal/app"
	"github.com/vk/registrygen/internal/config"
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

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("registrygen", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
registrygen - compiles registry documents into Go enumerable types.

Usage:
  registrygen [options] [CONFIG_PATH...]
  registrygen [options] --input FILE --output DIR --type NAME

Arguments:
  CONFIG_PATH
    A task file (.hcl, .yaml, .yml, .toml), a directory searched recursively
    for task files, or a glob.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.StringArrayP("config", "c", nil, "Task file, directory or glob. Repeatable.")
	inputFlag := flagSet.StringP("input", "i", "", "Registry document for an ad-hoc task.")
	outputFlag := flagSet.StringP("output", "o", "", "Output directory for an ad-hoc task.")
	typeFlag := flagSet.StringP("type", "t", "", "Generated type name for an ad-hoc task.")
	packageFlag := flagSet.String("package", "", "Generated package name. Defaults to the lower-cased type name.")
	sinkFlag := flagSet.String("sink", "", "Registry the values join at init. Defaults to the lower-cased type name plus \"s\".")
	runtimeFlag := flagSet.String("runtime-import", config.DefaultRuntimeImport, "Import path of the nsid and registries packages.")
	workersFlag := flagSet.IntP("workers", "w", runtime.NumCPU(), "Number of tasks generated concurrently.")
	failFastFlag := flagSet.Bool("fail-fast", false, "Stop starting new tasks after the first failure.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and regenerate when inputs or task files change.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	configPaths := append(*configFlag, flagSet.Args()...)

	var task *config.Task
	if *inputFlag != "" || *outputFlag != "" || *typeFlag != "" {
		var missing []string
		for _, f := range []struct{ name, value string }{
			{"--input", *inputFlag}, {"--output", *outputFlag}, {"--type", *typeFlag},
		} {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return nil, false, usageError("ad-hoc task is missing %s", strings.Join(missing, ", "))
		}
		task = &config.Task{
			Input:         *inputFlag,
			OutputDir:     *outputFlag,
			TypeName:      *typeFlag,
			Package:       *packageFlag,
			Sink:          *sinkFlag,
			RuntimeImport: *runtimeFlag,
		}
	}

	if len(configPaths) == 0 && task == nil {
		slog.Debug("No task provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ConfigPaths: configPaths,
		Task:        task,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
		FailFast:    *failFastFlag,
		Watch:       *watchFlag,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
