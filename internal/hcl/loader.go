package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/registrygen/internal/config"
	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// environ returns the process environment; replaced in tests.
	environ func() []string
}

// NewLoader creates a new HCL task-file loader.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// fileRoot is the shape of a task file.
type fileRoot struct {
	Registries []*registryBlock `hcl:"registry,block"`
}

type registryBlock struct {
	Name          string `hcl:"name,label"`
	Input         string `hcl:"input"`
	OutputDir     string `hcl:"output_dir"`
	TypeName      string `hcl:"type_name"`
	Package       string `hcl:"package,optional"`
	Sink          string `hcl:"sink,optional"`
	RuntimeImport string `hcl:"runtime_import,optional"`
}

// Load parses every file in paths and returns the tasks they declare, in
// file order then declaration order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range paths {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("resolving task file %s: %w", file, err)
		}

		hclFile, diags := parser.ParseHCLFile(abs)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(filepath.Dir(abs)), &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Registries {
			task, err := translateRegistry(block, abs)
			if err != nil {
				return nil, err
			}
			model.Tasks = append(model.Tasks, task)
		}
		logger.Debug("Decoded HCL task file.", "path", abs, "tasks", len(root.Registries))
	}

	logger.Debug("HCL loading complete.", "tasks", len(model.Tasks))
	return model, nil
}

func translateRegistry(b *registryBlock, origin string) (*config.Task, error) {
	task := &config.Task{
		Name:          b.Name,
		Input:         b.Input,
		OutputDir:     b.OutputDir,
		Package:       b.Package,
		TypeName:      b.TypeName,
		Sink:          b.Sink,
		RuntimeImport: b.RuntimeImport,
		Origin:        origin,
	}
	task.ApplyDefaults()
	if err := task.ResolvePaths(filepath.Dir(origin)); err != nil {
		return nil, fmt.Errorf("registry %q in %s: %w", b.Name, origin, err)
	}
	return task, nil
}

// evalContext exposes the environment, the task file's directory and a few
// string functions to expressions.
func (l *Loader) evalContext(configDir string) *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":        envVal,
			"config_dir": cty.StringVal(configDir),
		},
		Functions: map[string]function.Function{
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
		},
	}
}
