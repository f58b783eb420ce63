package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vk/registrygen/internal/config"
	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/pipeline"
	"github.com/vk/registrygen/internal/watch"
)

// ErrSkipped marks a task that was never started because an earlier task
// failed in fail-fast mode.
var ErrSkipped = errors.New("skipped after an earlier failure")

// Run executes every task once and, in watch mode, keeps regenerating until
// ctx is cancelled. The returned error joins the failure of every task.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	err := a.generate(ctx, a.model.Tasks)
	if !a.cfg.Watch {
		a.logger.Debug("App.Run method finished.")
		return err
	}
	return a.watch(ctx)
}

// generate runs tasks on at most WorkerCount goroutines. A failed task never
// stops its siblings; with FailFast, tasks not yet started are skipped.
func (a *App) generate(ctx context.Context, tasks []*config.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	a.logger.Info("Starting generation.", "tasks", len(tasks), "workers", a.cfg.WorkerCount)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		failures = make([]error, len(tasks))
	)
	var g errgroup.Group
	g.SetLimit(a.cfg.WorkerCount)

	for i, task := range tasks {
		i, task := i, task
		// Go blocks while the pool is full, so check for cancellation once a
		// slot is free.
		g.Go(func() error {
			if runCtx.Err() != nil {
				mu.Lock()
				failures[i] = fmt.Errorf("task %q: %w", task.Name, ErrSkipped)
				mu.Unlock()
				return nil
			}

			res, err := pipeline.Generate(runCtx, task)
			if err != nil {
				a.logger.Error("Generation failed.", "task", task.Name, "error", err)
				mu.Lock()
				failures[i] = fmt.Errorf("task %q: %w", task.Name, err)
				mu.Unlock()
				if a.cfg.FailFast {
					cancel()
				}
				return nil
			}
			a.logger.Info("Registry generated.", "task", res.Task, "path", res.Path, "entries", res.Entries)
			return nil
		})
	}
	_ = g.Wait()

	failed := slices.DeleteFunc(failures, func(err error) bool { return err == nil })
	a.logger.Info("Generation finished.", "succeeded", len(tasks)-len(failed), "failed", len(failed))
	return errors.Join(failed...)
}

// watch regenerates tasks whose input changed, and reloads the whole
// configuration when a task file changed.
func (a *App) watch(ctx context.Context) error {
	w, err := watch.New(watch.DefaultDebounce)
	if err != nil {
		return err
	}
	if err := w.Set(a.watchedFiles()...); err != nil {
		return err
	}
	a.logger.Info("Watching for changes.", "files", len(a.watchedFiles()))

	return w.Run(ctx, func(ctx context.Context, changed []string) {
		logger := ctxlog.FromContext(ctx)
		logger.Info("Change detected.", "paths", changed)

		var tasks []*config.Task
		if slices.ContainsFunc(changed, func(p string) bool { return slices.Contains(a.configFiles, p) }) {
			if err := a.reload(ctx); err != nil {
				logger.Error("Reloading configuration failed; keeping the previous tasks.", "error", err)
				return
			}
			tasks = a.model.Tasks
			if err := w.Set(a.watchedFiles()...); err != nil {
				logger.Error("Updating watched files failed.", "error", err)
			}
		} else {
			tasks = slices.DeleteFunc(slices.Clone(a.model.Tasks), func(t *config.Task) bool {
				return !slices.Contains(changed, t.Input)
			})
		}

		// Failures are logged by generate; the watch continues.
		_ = a.generate(ctx, tasks)
	})
}

// watchedFiles lists every task file and task input as absolute paths.
func (a *App) watchedFiles() []string {
	files := slices.Clone(a.configFiles)
	for _, t := range a.model.Tasks {
		files = append(files, t.Input)
	}
	slices.Sort(files)
	return slices.Compact(files)
}
