package config

import "context"

// Loader is the interface for a format-specific task-file loader.
type Loader interface {
	// Load reads task definitions from the given files and translates them
	// into the format-agnostic model. Relative paths inside a file are
	// resolved against that file's directory.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
