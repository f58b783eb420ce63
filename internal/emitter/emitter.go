package emitter

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"go/token"
	"regexp"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/generr"
	"github.com/vk/registrygen/internal/model"
)

//go:embed registry.go.tmpl
var registryTemplateText string

var registryTemplate = template.Must(template.New("registry").Parse(registryTemplateText))

var (
	packageRegex = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	typeRegex    = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	importRegex  = regexp.MustCompile(`^[A-Za-z0-9._~-]+(/[A-Za-z0-9._~-]+)*$`)
)

// generatedIdents are the exported package-level names every artifact declares
// besides the type itself.
var generatedIdents = []string{"Count", "FromID", "FromKey", "Values", "RegisterAll"}

// Options controls how a registry is rendered.
type Options struct {
	// Package is the Go package name of the generated file.
	Package string
	// TypeName is the exported name of the generated type.
	TypeName string
	// Sink is the name passed to registries.For at init time.
	Sink string
	// RuntimeImport is the import path containing the nsid and registries packages.
	RuntimeImport string
	// Source is the input file name shown in the header.
	Source string
	// Digest of the input document, shown in the header when set.
	Digest string
}

func (o Options) validate() error {
	if !packageRegex.MatchString(o.Package) || token.IsKeyword(o.Package) {
		return generr.Newf(generr.InvalidName, o.Package, "not a valid package name")
	}
	if !typeRegex.MatchString(o.TypeName) || slices.Contains(generatedIdents, o.TypeName) {
		return generr.Newf(generr.InvalidName, o.TypeName, "not a valid exported type name")
	}
	if o.Sink == "" {
		return generr.Newf(generr.InvalidName, o.Sink, "sink name cannot be empty")
	}
	if !importRegex.MatchString(o.RuntimeImport) {
		return generr.Newf(generr.InvalidName, o.RuntimeImport, "not a valid import path")
	}
	return nil
}

// Artifact is a rendered registry source file.
type Artifact struct {
	// QualifiedTypeName is "<package>.<TypeName>".
	QualifiedTypeName string
	Package           string
	TypeName          string
	Source            []byte
}

type templateEntry struct {
	Ident   string
	Ordinal uint16
	Key     string
}

type templateData struct {
	Options
	Entries []templateEntry
}

// Render produces the Go source for entries.
func Render(ctx context.Context, entries []model.Entry, opts Options) (*Artifact, error) {
	logger := ctxlog.FromContext(ctx)

	if len(entries) == 0 {
		return nil, generr.New(generr.EmptyRegistry, opts.Source, nil)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ordered, err := orderEntries(entries)
	if err != nil {
		return nil, err
	}

	data := templateData{Options: opts, Entries: make([]templateEntry, 0, len(ordered))}
	for _, e := range ordered {
		if e.Ident == opts.TypeName || slices.Contains(generatedIdents, e.Ident) {
			return nil, generr.Newf(generr.InvalidName, e.Name, "identifier %s collides with a generated declaration", e.Ident)
		}
		data.Entries = append(data.Entries, templateEntry{
			Ident:   e.Ident,
			Ordinal: e.Ordinal,
			Key:     e.Key.String(),
		})
	}

	var buf bytes.Buffer
	if err := registryTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing registry template: %w", err)
	}

	filename := FileName(opts.TypeName)
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated %s: %w", filename, err)
	}

	logger.Debug("Registry rendered.", "type", opts.Package+"."+opts.TypeName, "entries", len(ordered), "bytes", len(src))
	return &Artifact{
		QualifiedTypeName: opts.Package + "." + opts.TypeName,
		Package:           opts.Package,
		TypeName:          opts.TypeName,
		Source:            src,
	}, nil
}

// orderEntries returns a copy of entries sorted by ordinal and verifies the
// ordinals run contiguously from zero. Declaration order in the generated
// file is exactly this order.
func orderEntries(entries []model.Entry) ([]model.Entry, error) {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b model.Entry) int {
		return int(a.Ordinal) - int(b.Ordinal)
	})
	for i, e := range ordered {
		if int(e.Ordinal) != i {
			return nil, generr.Newf(generr.MalformedInput, e.Name, "expected ordinal %d, got %d", i, e.Ordinal)
		}
	}
	return ordered, nil
}
