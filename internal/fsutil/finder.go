// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// TaskFilePattern matches every task file format the application understands.
const TaskFilePattern = "**/*.{hcl,yaml,yml,toml}"

// FindFiles returns the files under root matching any of the doublestar
// patterns, as sorted paths joined to root.
func FindFiles(root string, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		panic("at least one pattern is required")
	}

	fsys := os.DirFS(root)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q under %s: %w", pattern, root, err)
		}
		for _, m := range matches {
			files = append(files, filepath.Join(root, filepath.FromSlash(m)))
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// ExpandPaths turns the command-line path arguments into a flat, duplicate-free
// list of files. A directory contributes every task file beneath it; an
// argument containing glob characters is expanded; anything else is taken as
// a file and must exist.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, path := range paths {
		if containsGlob(path) {
			matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("glob error: %w", err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match pattern: %s", path)
			}
			slices.Sort(matches)
			for _, m := range matches {
				add(m)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		files, err := FindFiles(path, TaskFilePattern)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
