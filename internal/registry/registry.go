package registry

import "fmt"

// Registry holds all registered interview modules with a precomputed ID
// index. Built once at startup and read-only afterward, so unsynchronized
// concurrent reads are safe.
type Registry struct {
	modules []Module
	byID    map[string]*Module
}

// New builds a Registry from the given modules, validating each one.
// A validation failure is a configuration error and aborts registration.
func New(modules []Module) (*Registry, error) {
	r := &Registry{
		modules: modules,
		byID:    make(map[string]*Module, len(modules)),
	}
	for i := range r.modules {
		m := &r.modules[i]
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("register module: %w", err)
		}
		if _, dup := r.byID[m.ID]; dup {
			return nil, fmt.Errorf("register module: duplicate module ID %q", m.ID)
		}
		r.byID[m.ID] = m
	}
	return r, nil
}

// Get returns the module with the given ID, or nil.
func (r *Registry) Get(id string) *Module {
	return r.byID[id]
}

// Modules returns all registered modules in registration order. The slice
// order is the tie-break order for equal relevancy scores, so it is stable
// across calls.
func (r *Registry) Modules() []Module {
	return r.modules
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.modules)
}
