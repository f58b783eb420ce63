package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultRuntimeImport is the import path prefix of the nsid and registries
// packages that generated code depends on.
const DefaultRuntimeImport = "github.com/vk/registrygen/pkg"

// Model is the unified, format-agnostic representation of every generation
// task to run.
type Model struct {
	Tasks []*Task
}

// Task describes a single registry generation.
type Task struct {
	Name          string
	Input         string // registry document (JSON)
	OutputDir     string
	Package       string
	TypeName      string
	Sink          string
	RuntimeImport string

	// Origin is the task file that declared the task; empty for tasks built
	// from command-line flags.
	Origin string
}

// ApplyDefaults fills optional fields derived from the required ones.
func (t *Task) ApplyDefaults() {
	lowerType := strings.ToLower(t.TypeName)
	if t.Package == "" {
		t.Package = lowerType
	}
	if t.Sink == "" && lowerType != "" {
		t.Sink = lowerType + "s"
	}
	if t.RuntimeImport == "" {
		t.RuntimeImport = DefaultRuntimeImport
	}
	if t.Name == "" {
		t.Name = lowerType
	}
}

// ResolvePaths makes Input and OutputDir absolute, interpreting relative
// paths against baseDir.
func (t *Task) ResolvePaths(baseDir string) error {
	for _, p := range []*string{&t.Input, &t.OutputDir} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(baseDir, *p))
		if err != nil {
			return fmt.Errorf("resolving %q: %w", *p, err)
		}
		*p = abs
	}
	return nil
}

// Validate checks that the required fields are present.
func (t *Task) Validate() error {
	var missing []string
	if t.Input == "" {
		missing = append(missing, "input")
	}
	if t.OutputDir == "" {
		missing = append(missing, "output_dir")
	}
	if t.TypeName == "" {
		missing = append(missing, "type_name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("task %q: missing required field(s): %s", t.Name, strings.Join(missing, ", "))
	}
	return nil
}

// Merge appends the tasks of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Tasks = append(m.Tasks, other.Tasks...)
}

// Validate checks every task and rejects duplicate task names.
func (m *Model) Validate() error {
	var errs []error
	seen := make(map[string]string)
	for _, t := range m.Tasks {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if origin, dup := seen[t.Name]; dup {
			errs = append(errs, fmt.Errorf("task %q declared twice (%s and %s)", t.Name, describeOrigin(origin), describeOrigin(t.Origin)))
			continue
		}
		seen[t.Name] = t.Origin
	}
	return errors.Join(errs...)
}

func describeOrigin(origin string) string {
	if origin == "" {
		return "command line"
	}
	return origin
}
