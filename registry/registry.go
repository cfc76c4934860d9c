// Package registry provides a name-keyed, order-preserving store for
// pluggable capability handlers. One instance holds handlers of a single
// capability kind; all operations are safe for concurrent use.
package registry

import (
	"errors"
	"sync"
)

// ErrEmptyName is returned when registering a handler under an empty name.
var ErrEmptyName = errors.New("registry: name must not be empty")

// Entry pairs a registered name with its handler.
type Entry[H any] struct {
	Name    string
	Handler H
}

// Registry is a mutex-guarded mapping from names to handlers. Registration
// order is preserved for listing and dispatch tie-breaks. Registering an
// existing name overwrites the handler in place, keeping its original
// position; this makes re-registration a safe hot-reload primitive.
type Registry[H any] struct {
	mu      sync.Mutex
	entries []Entry[H]
	index   map[string]int
}

// New creates an empty registry.
func New[H any]() *Registry[H] {
	return &Registry[H]{
		index: make(map[string]int),
	}
}

// Register adds a handler under the given name, overwriting any previous
// entry with that name. An empty name is rejected with ErrEmptyName.
func (r *Registry[H]) Register(name string, handler H) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[name]; ok {
		r.entries[i].Handler = handler
		return nil
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry[H]{Name: name, Handler: handler})
	return nil
}

// Unregister removes the entry with the given name. Removing an absent
// name is a deliberate no-op so housekeeping stays idempotent.
func (r *Registry[H]) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return
	}

	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, name)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].Name] = j
	}
}

// Get returns the handler registered under the given name.
func (r *Registry[H]) Get(name string) (H, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[name]; ok {
		return r.entries[i].Handler, true
	}
	var zero H
	return zero, false
}

// List returns all registered names in registration order. The result is
// a snapshot of the registry state at the instant of the call.
func (r *Registry[H]) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a snapshot of all entries in registration order.
func (r *Registry[H]) Entries() []Entry[H] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry[H], len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered handlers.
func (r *Registry[H]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear removes every entry, built-in defaults included. A subsequent
// List returns an empty slice.
func (r *Registry[H]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.index = make(map[string]int)
}
