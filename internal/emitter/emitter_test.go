package emitter

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/registrygen/internal/generr"
	"github.com/vk/registrygen/internal/model"
	"github.com/vk/registrygen/internal/registrydoc"
)

func testOptions() Options {
	return Options{
		Package:       "particle",
		TypeName:      "Particle",
		Sink:          "particles",
		RuntimeImport: "github.com/vk/registrygen/pkg",
		Source:        "particles.json",
		Digest:        "blake3:00ff",
	}
}

func buildEntries(t *testing.T, pairs ...string) []model.Entry {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	var records []registrydoc.Record
	for i := 0; i < len(pairs); i += 2 {
		records = append(records, registrydoc.Record{Name: pairs[i], ID: pairs[i+1]})
	}
	entries, err := model.Build(context.Background(), records)
	require.NoError(t, err)
	return entries
}

// declaredValue is what the test extracts from one generated `X = &T{...}` spec.
type declaredValue struct {
	Ident   string
	Ordinal int
	Key     string
}

// inspectArtifact parses generated source and returns the declared values in
// source order, plus the element order of the `values` table.
func inspectArtifact(t *testing.T, src []byte) (*ast.File, []declaredValue, []string) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)

	var declared []declaredValue
	var table []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Values) != 1 {
				continue
			}
			name := vs.Names[0].Name
			switch v := vs.Values[0].(type) {
			case *ast.UnaryExpr:
				lit := v.X.(*ast.CompositeLit)
				dv := declaredValue{Ident: name}
				for _, elt := range lit.Elts {
					kv := elt.(*ast.KeyValueExpr)
					switch kv.Key.(*ast.Ident).Name {
					case "ordinal":
						dv.Ordinal, err = strconv.Atoi(kv.Value.(*ast.BasicLit).Value)
						require.NoError(t, err)
					case "id":
						call := kv.Value.(*ast.CallExpr)
						dv.Key, err = strconv.Unquote(call.Args[0].(*ast.BasicLit).Value)
						require.NoError(t, err)
					}
				}
				declared = append(declared, dv)
			case *ast.CompositeLit:
				if name == "values" {
					for _, elt := range v.Elts {
						table = append(table, elt.(*ast.Ident).Name)
					}
				}
			}
		}
	}
	return file, declared, table
}

func TestRender_FlameSmokeScenario(t *testing.T) {
	entries := buildEntries(t, "flame", "minecraft:flame", "smoke", "minecraft:smoke")

	art, err := Render(context.Background(), entries, testOptions())
	require.NoError(t, err)

	assert.Equal(t, "particle.Particle", art.QualifiedTypeName)
	assert.Equal(t, "particle", art.Package)
	assert.Equal(t, "Particle", art.TypeName)

	file, declared, table := inspectArtifact(t, art.Source)
	assert.Equal(t, "particle", file.Name.Name)
	assert.Equal(t, []declaredValue{
		{Ident: "Flame", Ordinal: 0, Key: "minecraft:flame"},
		{Ident: "Smoke", Ordinal: 1, Key: "minecraft:smoke"},
	}, declared)
	assert.Equal(t, []string{"Flame", "Smoke"}, table)

	src := string(art.Source)
	assert.True(t, strings.HasPrefix(src, "// Code generated by registrygen from particles.json. DO NOT EDIT.\n"))
	assert.Contains(t, src, "// Source digest: blake3:00ff\n")
	assert.Contains(t, src, "const Count = 2\n")
	assert.Contains(t, src, `registries.For("particles")`)
	assert.Contains(t, src, `"github.com/vk/registrygen/pkg/nsid"`)
	assert.Contains(t, src, `"github.com/vk/registrygen/pkg/registries"`)
}

func TestRender_DeclaresEveryEntryInInputOrder(t *testing.T) {
	// Reverse-alphabetical so a sort by name or id would be caught.
	var pairs []string
	for i := 0; i < 40; i++ {
		n := 39 - i
		pairs = append(pairs, fmt.Sprintf("entry_%02d", n), fmt.Sprintf("test:entry_%02d", n))
	}
	entries := buildEntries(t, pairs...)

	art, err := Render(context.Background(), entries, testOptions())
	require.NoError(t, err)

	_, declared, table := inspectArtifact(t, art.Source)
	require.Len(t, declared, 40)
	require.Len(t, table, 40)
	for i, dv := range declared {
		assert.Equal(t, i, dv.Ordinal)
		assert.Equal(t, entries[i].Ident, dv.Ident)
		assert.Equal(t, entries[i].Key.String(), dv.Key)
		assert.Equal(t, dv.Ident, table[i], "values table must be indexed by ordinal")
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	entries := buildEntries(t, "flame", "minecraft:flame", "smoke", "minecraft:smoke", "ash", "minecraft:ash")

	first, err := Render(context.Background(), entries, testOptions())
	require.NoError(t, err)
	second, err := Render(context.Background(), entries, testOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Source, second.Source)
}

func TestRender_OmitsEmptyDigest(t *testing.T) {
	opts := testOptions()
	opts.Digest = ""
	art, err := Render(context.Background(), buildEntries(t, "flame", "minecraft:flame"), opts)
	require.NoError(t, err)
	assert.NotContains(t, string(art.Source), "Source digest")
}

func TestRender_EmptyRegistry(t *testing.T) {
	_, err := Render(context.Background(), nil, testOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrEmptyRegistry))
}

func TestRender_InvalidNames(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(o *Options)
		entries []string
	}{
		{name: "keyword package", mutate: func(o *Options) { o.Package = "type" }},
		{name: "upper-case package", mutate: func(o *Options) { o.Package = "Particle" }},
		{name: "unexported type", mutate: func(o *Options) { o.TypeName = "particle" }},
		{name: "type shadows generated func", mutate: func(o *Options) { o.TypeName = "Values" }},
		{name: "empty sink", mutate: func(o *Options) { o.Sink = "" }},
		{name: "bad import path", mutate: func(o *Options) { o.RuntimeImport = "github.com/x y" }},
		{name: "entry named like the type", entries: []string{"particle", "minecraft:particle"}},
		{name: "entry named like a generated func", entries: []string{"values", "minecraft:values"}},
		{name: "entry named Count", entries: []string{"COUNT", "minecraft:count"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			pairs := tc.entries
			if pairs == nil {
				pairs = []string{"flame", "minecraft:flame"}
			}

			_, err := Render(context.Background(), buildEntries(t, pairs...), opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, generr.ErrInvalidName), "got %v", err)
		})
	}
}

func TestOrderEntries(t *testing.T) {
	entries := buildEntries(t, "a", "x:a", "b", "x:b", "c", "x:c")
	shuffled := []model.Entry{entries[2], entries[0], entries[1]}

	ordered, err := orderEntries(shuffled)
	require.NoError(t, err)
	assert.Equal(t, entries, ordered)
	assert.Equal(t, "c", shuffled[0].Name, "input must not be mutated")
}

func TestOrderEntries_RejectsGaps(t *testing.T) {
	entries := buildEntries(t, "a", "x:a", "b", "x:b", "c", "x:c")

	_, err := orderEntries([]model.Entry{entries[0], entries[2]})
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrMalformedInput))

	_, err = orderEntries([]model.Entry{entries[1], entries[2]})
	require.Error(t, err, "ordinals must start at zero")
}

func TestFileName(t *testing.T) {
	testCases := map[string]string{
		"Particle":     "particle_gen.go",
		"ParticleType": "particle_type_gen.go",
		"HTTPStatus":   "http_status_gen.go",
		"Block2D":      "block2_d_gen.go",
	}
	for typeName, expected := range testCases {
		t.Run(typeName, func(t *testing.T) {
			assert.Equal(t, expected, FileName(typeName))
		})
	}
}
