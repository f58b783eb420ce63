// Package pipeline runs one registry generation task end to end:
// load the document, build the model, render the source and write it.
//
// Each stage either succeeds completely or aborts the task; nothing is written
// unless every earlier stage succeeded.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/registrygen/internal/artifact"
	"github.com/vk/registrygen/internal/config"
	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/emitter"
	"github.com/vk/registrygen/internal/model"
	"github.com/vk/registrygen/internal/registrydoc"
)

// Result describes a successful generation.
type Result struct {
	Task    string
	Path    string
	Entries int
	Digest  string
}

// TargetPath returns the file a task writes to.
func TargetPath(task *config.Task) string {
	return filepath.Join(task.OutputDir, task.Package, emitter.FileName(task.TypeName))
}

// Generate runs task. The task must have had defaults applied.
func Generate(ctx context.Context, task *config.Task) (*Result, error) {
	ctx = ctxlog.WithTask(ctx, task.Name)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generation started.", "input", task.Input, "output_dir", task.OutputDir)

	doc, err := registrydoc.Load(ctx, task.Input)
	if err != nil {
		return nil, fmt.Errorf("loading registry: %w", err)
	}

	entries, err := model.Build(ctx, doc.Records)
	if err != nil {
		return nil, fmt.Errorf("building model from %s: %w", task.Input, err)
	}

	art, err := emitter.Render(ctx, entries, emitter.Options{
		Package:       task.Package,
		TypeName:      task.TypeName,
		Sink:          task.Sink,
		RuntimeImport: task.RuntimeImport,
		Source:        filepath.Base(task.Input),
		Digest:        doc.DigestString(),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", task.TypeName, err)
	}

	path, err := artifact.Write(ctx, art, task.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", art.QualifiedTypeName, err)
	}

	logger.Debug("Generation finished.", "path", path, "entries", len(entries))
	return &Result{
		Task:    task.Name,
		Path:    path,
		Entries: len(entries),
		Digest:  doc.DigestString(),
	}, nil
}
