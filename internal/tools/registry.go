package tools

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrDuplicateTool is returned when a name is registered twice.
	ErrDuplicateTool = errors.New("duplicate tool name")

	// ErrRegistryFrozen is returned when registering after Freeze.
	ErrRegistryFrozen = errors.New("tool registry is frozen")

	// ErrInvalidHandler is returned for nil handlers or empty names.
	ErrInvalidHandler = errors.New("invalid tool handler")
)

type entry struct {
	handler    Handler
	descriptor Descriptor
}

// Registry maps tool names to handlers. Registration order is preserved.
// The descriptor of each handler is captured at registration and never
// re-read, so what is advertised cannot drift from what was registered.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	index   map[string]int
	frozen  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds a handler under its descriptor name.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return fmt.Errorf("%w: nil handler", ErrInvalidHandler)
	}
	desc := h.Descriptor()
	if strings.TrimSpace(desc.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidHandler)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrRegistryFrozen, desc.Name)
	}
	if _, exists := r.index[desc.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, desc.Name)
	}

	r.index[desc.Name] = len(r.entries)
	r.entries = append(r.entries, entry{handler: h, descriptor: desc})
	return nil
}

// MustRegister registers every handler and panics on the first failure.
// Use it only during startup, where a duplicate is a programming error.
func (r *Registry) MustRegister(handlers ...Handler) {
	for _, h := range handlers {
		if err := r.Register(h); err != nil {
			panic(err)
		}
	}
}

// Freeze ends the registration phase. Later Register calls fail.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Get returns the handler registered under name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[i].handler, true
}

// All returns the handlers in registration order.
func (r *Registry) All() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := make([]Handler, len(r.entries))
	for i, e := range r.entries {
		handlers[i] = e.handler
	}
	return handlers
}

// Descriptors returns the captured descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]Descriptor, len(r.entries))
	for i, e := range r.entries {
		descs[i] = e.descriptor
	}
	return descs
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.descriptor.Name
	}
	return names
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
