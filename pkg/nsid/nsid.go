package nsid

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	namespaceRegex = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	pathRegex      = regexp.MustCompile(`^[a-z0-9_./-]+$`)
)

// ID is the structured representation of a `namespace:path` identifier.
type ID struct {
	namespace string
	path      string
}

// Parse creates an ID by parsing its canonical string representation.
func Parse(raw string) (ID, error) {
	if raw == "" {
		return ID{}, fmt.Errorf("identifier cannot be empty")
	}

	namespace, path, found := strings.Cut(raw, ":")
	if !found {
		return ID{}, fmt.Errorf("identifier %q is missing a namespace separator", raw)
	}
	if strings.Contains(path, ":") {
		return ID{}, fmt.Errorf("identifier %q contains more than one namespace separator", raw)
	}

	return From(namespace, path)
}

// MustParse is like Parse but panics if the identifier is invalid. It is
// meant for generated code, whose identifiers were validated at build time.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("nsid: %v", err))
	}
	return id
}

// From builds an ID from its two parts.
func From(namespace, path string) (ID, error) {
	if !namespaceRegex.MatchString(namespace) {
		return ID{}, fmt.Errorf("invalid namespace: %q", namespace)
	}
	if !pathRegex.MatchString(path) {
		return ID{}, fmt.Errorf("invalid path: %q", path)
	}
	return ID{namespace: namespace, path: path}, nil
}

// Namespace returns the part before the separator.
func (id ID) Namespace() string {
	return id.namespace
}

// Path returns the part after the separator.
func (id ID) Path() string {
	return id.path
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.namespace == "" && id.path == ""
}

// String serializes the ID into its canonical `namespace:path` form.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.namespace + ":" + id.path
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
