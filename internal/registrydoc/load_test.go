package registrydoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/registrygen/internal/generr"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "particles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_PreservesDocumentOrder(t *testing.T) {
	path := writeFile(t, `[
		{"name": "smoke", "id": "minecraft:smoke"},
		{"name": "ash",   "id": "minecraft:ash"},
		{"name": "flame", "id": "minecraft:flame"}
	]`)

	doc, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Name: "smoke", ID: "minecraft:smoke"},
		{Name: "ash", ID: "minecraft:ash"},
		{Name: "flame", ID: "minecraft:flame"},
	}, doc.Records)
	assert.Equal(t, path, doc.Path)
}

func TestLoad_DigestTracksContent(t *testing.T) {
	a, err := Load(context.Background(), writeFile(t, `[{"name":"flame","id":"minecraft:flame"}]`))
	require.NoError(t, err)
	b, err := Load(context.Background(), writeFile(t, `[{"name":"flame","id":"minecraft:flame"}]`))
	require.NoError(t, err)
	c, err := Load(context.Background(), writeFile(t, `[{"name":"smoke","id":"minecraft:smoke"}]`))
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest)
	assert.NotEqual(t, a.Digest, c.Digest)
	assert.Regexp(t, `^blake3:[0-9a-f]{64}$`, a.DigestString())
}

func TestLoad_AcceptsCommentsAndTrailingCommas(t *testing.T) {
	path := writeFile(t, `
	// vanilla particles
	[
		{"name": "flame", "id": "minecraft:flame"}, /* first */
		{"name": "smoke", "id": "minecraft:smoke", "extra": 3},
	]`)

	doc, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "smoke", doc.Records[1].Name)
}

func TestLoad_InputNotFound(t *testing.T) {
	testCases := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "directory",
			path: func(t *testing.T) string { return t.TempDir() },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(context.Background(), tc.path(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, generr.ErrInputNotFound), "got %v", err)
		})
	}
}

func TestParse_MalformedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ``},
		{name: "object at top level", input: `{"name":"flame","id":"minecraft:flame"}`},
		{name: "null at top level", input: `null`},
		{name: "syntax error", input: `[{"name":"flame",]`},
		{name: "trailing garbage", input: `[] []`},
		{name: "element is a string", input: `["flame"]`},
		{name: "element is null", input: `[null]`},
		{name: "missing name", input: `[{"id":"minecraft:flame"}]`},
		{name: "missing id", input: `[{"name":"flame"}]`},
		{name: "empty name", input: `[{"name":"","id":"minecraft:flame"}]`},
		{name: "numeric id", input: `[{"name":"flame","id":7}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, generr.ErrMalformedInput), "got %v", err)
		})
	}
}

func TestParse_EmptyArrayIsValid(t *testing.T) {
	records, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}
