package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/registrygen/internal/config"
	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/filecfg"
	"github.com/vk/registrygen/internal/fsutil"
	"github.com/vk/registrygen/internal/hcl"
	"github.com/vk/registrygen/internal/pipeline"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	loaders map[string]config.Loader

	model       *config.Model
	configFiles []string // absolute
}

// NewApp is the constructor for the main application. It configures an
// isolated logger and loads every task; a task file that fails to load or a
// task set that fails validation is returned as an error.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	hclLoader := hcl.NewLoader()
	yamlLoader := filecfg.NewYAMLLoader()
	a := &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		loaders: map[string]config.Loader{
			".hcl":  hclLoader,
			".yaml": yamlLoader,
			".yml":  yamlLoader,
			".toml": filecfg.NewTOMLLoader(),
		},
	}

	if err := a.reload(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Model returns the loaded tasks. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// reload rereads every task file and replaces the current model only if the
// new one is valid.
func (a *App) reload(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ExpandPaths(a.cfg.ConfigPaths)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Discovered task files.", "count", len(files))

	model := &config.Model{}
	for i, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		files[i] = abs

		ext := strings.ToLower(filepath.Ext(file))
		loader, ok := a.loaders[ext]
		if !ok {
			return fmt.Errorf("failed to load configuration: unsupported task file %s", file)
		}
		m, err := loader.Load(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		model.Merge(m)
	}

	if a.cfg.Task != nil {
		task := *a.cfg.Task
		task.ApplyDefaults()
		if err := task.ResolvePaths("."); err != nil {
			return err
		}
		model.Tasks = append(model.Tasks, &task)
	}

	if err := validateModel(model); err != nil {
		return err
	}
	if len(model.Tasks) == 0 {
		logger.Warn("No generation tasks found.", "paths", a.cfg.ConfigPaths)
	}

	a.model = model
	a.configFiles = files
	logger.Debug("Configuration loaded.", "tasks", len(model.Tasks))
	return nil
}

// validateModel checks the tasks and rejects any two that would write the
// same file.
func validateModel(model *config.Model) error {
	if err := model.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	var errs []error
	owners := make(map[string]string)
	for _, t := range model.Tasks {
		target := pipeline.TargetPath(t)
		if owner, taken := owners[target]; taken {
			errs = append(errs, fmt.Errorf("tasks %q and %q both write %s", owner, t.Name, target))
			continue
		}
		owners[target] = t.Name
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
