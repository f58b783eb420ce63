// Package watch reports debounced changes to a fixed set of files.
//
// Editors replace files in several steps (write to a temporary file, rename,
// chmod), so the parent directories are watched rather than the files
// themselves, and bursts of events for one file collapse into one change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/registrygen/internal/ctxlog"
)

// DefaultDebounce is the quiet period after the last event for a file before
// the change is reported.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives the sorted absolute paths that changed since the last
// call. Calls are sequential.
type ChangeFunc func(ctx context.Context, changed []string)

// Watcher watches a set of files.
type Watcher struct {
	debounce time.Duration
	fsw      *fsnotify.Watcher

	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]struct{}
}

// New creates a Watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		debounce: debounce,
		fsw:      fsw,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}, nil
}

// Set replaces the watched files with paths.
func (w *Watcher) Set(paths ...string) error {
	files := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for dir := range dirs {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}
	for dir := range w.dirs {
		if _, ok := dirs[dir]; !ok {
			// The directory may already be gone.
			_ = w.fsw.Remove(dir)
		}
	}
	w.files, w.dirs = files, dirs
	return nil
}

func (w *Watcher) watched(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// Run delivers changes to onChange until ctx is cancelled, then closes the
// underlying watcher.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	logger := ctxlog.FromContext(ctx)
	defer w.fsw.Close()

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Stopping file watcher.")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !w.watched(event.Name) {
				continue
			}
			logger.Debug("File event.", "path", event.Name, "op", event.Op.String())
			pending[filepath.Clean(event.Name)] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", err)

		case now := <-ticker.C:
			var ready []string
			for path, last := range pending {
				if now.Sub(last) >= w.debounce {
					ready = append(ready, path)
					delete(pending, path)
				}
			}
			if len(ready) == 0 {
				continue
			}
			slices.Sort(ready)
			onChange(ctx, ready)
		}
	}
}
