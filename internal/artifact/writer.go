// Package artifact writes rendered registry sources to disk.
//
// A write either lands the complete file at its final path or leaves whatever
// was there before untouched: content goes to a temporary file in the target
// directory, is synced, and is then renamed into place.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/emitter"
	"github.com/vk/registrygen/internal/generr"
)

// Path returns where art is written inside outputDir:
// <outputDir>/<package>/<snake_type>_gen.go.
func Path(art *emitter.Artifact, outputDir string) string {
	pkg, typeName, found := strings.Cut(art.QualifiedTypeName, ".")
	if !found {
		pkg, typeName = art.Package, art.TypeName
	}
	return filepath.Join(outputDir, pkg, emitter.FileName(typeName))
}

// Write stores art under outputDir and returns the final file path.
func Write(ctx context.Context, art *emitter.Artifact, outputDir string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	target := Path(art, outputDir)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", generr.New(generr.OutputUnavailable, dir, err)
	}
	if info, err := os.Lstat(target); err == nil && info.IsDir() {
		return "", generr.Newf(generr.OutputUnavailable, target, "path is a directory")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", generr.New(generr.OutputUnavailable, target, err)
	}

	if err := writeAtomic(target, art.Source); err != nil {
		return "", generr.New(generr.OutputUnavailable, target, err)
	}

	logger.Debug("Artifact written.", "path", target, "bytes", len(art.Source))
	return target, nil
}

func writeAtomic(path string, data []byte) error {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	temporaryPath := file.Name()

	// Write, sync, close, in that order. Any failure removes the temporary file.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Chmod(temporaryPath, 0o644); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming into place: %w", err)
	}

	if parent, err := os.Open(filepath.Dir(path)); err == nil {
		parent.Sync()
		parent.Close()
	}
	return nil
}
