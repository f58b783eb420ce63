package registrydoc

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/generr"
	"github.com/zeebo/blake3"
)

// Record is one raw `{name, id}` element of the registry document.
type Record struct {
	Name string
	ID   string
}

// Document is a loaded registry file.
type Document struct {
	Path    string
	Records []Record
	// Digest is the BLAKE3 hash of the raw file bytes.
	Digest [32]byte
}

// DigestString returns the digest in `blake3:<hex>` form.
func (d *Document) DigestString() string {
	return "blake3:" + hex.EncodeToString(d.Digest[:])
}

type rawRecord struct {
	Name *string `json:"name"`
	ID   *string `json:"id"`
}

// Load reads and parses the registry document at path.
func Load(ctx context.Context, path string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading registry document.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, generr.New(generr.InputNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, generr.Newf(generr.InputNotFound, path, "not a regular file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, generr.New(generr.InputNotFound, path, err)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	logger.Debug("Registry document loaded.", "path", path, "records", len(records))
	return &Document{
		Path:    path,
		Records: records,
		Digest:  blake3.Sum256(data),
	}, nil
}

// Parse decodes registry document bytes into records, preserving order.
func Parse(data []byte) ([]Record, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 || stripped[0] != '[' {
		return nil, generr.Newf(generr.MalformedInput, "", "top-level value must be an array")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(stripped, &elements); err != nil {
		return nil, generr.New(generr.MalformedInput, "", err)
	}

	records := make([]Record, 0, len(elements))
	for i, element := range elements {
		var raw rawRecord
		if err := json.Unmarshal(element, &raw); err != nil {
			return nil, generr.New(generr.MalformedInput, fmt.Sprintf("element %d", i), err)
		}
		if raw.Name == nil || *raw.Name == "" {
			return nil, generr.Newf(generr.MalformedInput, fmt.Sprintf("element %d", i), "missing or empty \"name\"")
		}
		if raw.ID == nil || *raw.ID == "" {
			return nil, generr.Newf(generr.MalformedInput, fmt.Sprintf("element %d", i), "missing or empty \"id\"")
		}
		records = append(records, Record{Name: *raw.Name, ID: *raw.ID})
	}

	return records, nil
}
