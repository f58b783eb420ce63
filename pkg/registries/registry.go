package registries

import (
	"fmt"
	"sync"

	"github.com/vk/registrygen/pkg/nsid"
)

// Keyed is implemented by every generated registry type.
type Keyed interface {
	Key() nsid.ID
}

// Registry maps identifiers to the values registered under them.
type Registry struct {
	name string

	mu      sync.RWMutex
	entries map[nsid.ID]Keyed
	order   []nsid.ID
}

// New creates an empty Registry that is not shared with the rest of the
// process. Generated code uses For; New is for isolated sinks, e.g. in tests.
func New(name string) *Registry {
	return &Registry{
		name:    name,
		entries: make(map[nsid.ID]Keyed),
	}
}

// Name returns the sink name.
func (r *Registry) Name() string {
	return r.name
}

// Register inserts v under v.Key(). Registering a key twice is an error.
func (r *Registry) Register(v Keyed) error {
	if v == nil {
		return fmt.Errorf("registry %q: cannot register nil value", r.name)
	}
	key := v.Key()
	if key.IsZero() {
		return fmt.Errorf("registry %q: cannot register value with empty key", r.name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("registry %q: key '%s' already registered", r.name, key)
	}
	r.entries[key] = v
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the value registered under id.
func (r *Registry) Lookup(id nsid.ID) (Keyed, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[id]
	return v, ok
}

// Len returns the number of registered values.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns the registered keys in insertion order.
func (r *Registry) Keys() []nsid.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]nsid.ID, len(r.order))
	copy(keys, r.order)
	return keys
}

var (
	sinksMu sync.Mutex
	sinks   = make(map[string]*Registry)
)

// For returns the process-wide sink with the given name, creating it on
// first use.
func For(name string) *Registry {
	sinksMu.Lock()
	defer sinksMu.Unlock()

	if r, ok := sinks[name]; ok {
		return r
	}
	r := New(name)
	sinks[name] = r
	return r
}
