// Package filecfg loads generation tasks from YAML and TOML task files. Both
// formats share one document shape:
//
//	registries:
//	  - name: particles
//	    input: data/particles.json
//	    output_dir: gen
//	    type_name: Particle
//
// String values have $VAR and ${VAR} references expanded from the environment.
package filecfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/vk/registrygen/internal/config"
	"github.com/vk/registrygen/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type document struct {
	Registries []registryEntry `yaml:"registries" toml:"registries"`
}

type registryEntry struct {
	Name          string `yaml:"name" toml:"name"`
	Input         string `yaml:"input" toml:"input"`
	OutputDir     string `yaml:"output_dir" toml:"output_dir"`
	TypeName      string `yaml:"type_name" toml:"type_name"`
	Package       string `yaml:"package" toml:"package"`
	Sink          string `yaml:"sink" toml:"sink"`
	RuntimeImport string `yaml:"runtime_import" toml:"runtime_import"`
}

type decodeFunc func(data []byte, doc *document) error

// Loader implements config.Loader for one of the supported formats.
type Loader struct {
	format string
	decode decodeFunc
	expand func(string) string
}

// NewYAMLLoader returns a loader for .yaml/.yml task files.
func NewYAMLLoader() *Loader {
	return &Loader{format: "YAML", decode: decodeYAML, expand: os.ExpandEnv}
}

// NewTOMLLoader returns a loader for .toml task files.
func NewTOMLLoader() *Loader {
	return &Loader{format: "TOML", decode: decodeTOML, expand: os.ExpandEnv}
}

// Load reads every file in paths and returns the tasks they declare.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Task file loader started.", "format", l.format, "path_count", len(paths))

	model := &config.Model{}
	for _, file := range paths {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("resolving task file %s: %w", file, err)
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("reading %s file %s: %w", l.format, file, err)
		}

		var doc document
		if err := l.decode(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s file %s: %w", l.format, file, err)
		}

		for i, entry := range doc.Registries {
			task := l.translate(entry, abs)
			task.ApplyDefaults()
			if err := task.ResolvePaths(filepath.Dir(abs)); err != nil {
				return nil, fmt.Errorf("%s: registries[%d]: %w", file, i, err)
			}
			model.Tasks = append(model.Tasks, task)
		}
		logger.Debug("Decoded task file.", "format", l.format, "path", abs, "tasks", len(doc.Registries))
	}
	return model, nil
}

func (l *Loader) translate(e registryEntry, origin string) *config.Task {
	return &config.Task{
		Name:          l.expand(e.Name),
		Input:         l.expand(e.Input),
		OutputDir:     l.expand(e.OutputDir),
		Package:       l.expand(e.Package),
		TypeName:      l.expand(e.TypeName),
		Sink:          l.expand(e.Sink),
		RuntimeImport: l.expand(e.RuntimeImport),
		Origin:        origin,
	}
}

func decodeYAML(data []byte, doc *document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, doc *document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}
