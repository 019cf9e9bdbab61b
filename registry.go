package symdiff

import "sync"

// Registry interns variables by name: a name maps to exactly one
// *Variable for the registry's lifetime. Insertion is guarded by a mutex
// so concurrent creation under the same name is not a read-modify-write
// race.
type Registry struct {
	mu   sync.Mutex
	vars map[string]*Variable
}

// NewRegistry returns an empty variable registry.
func NewRegistry() *Registry {
	return &Registry{vars: make(map[string]*Variable)}
}

// Define creates and registers a new variable. It fails with
// *DuplicateVariableError if the name is already registered, whether
// through Define or Var.
func (r *Registry) Define(name string) (*Variable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vars[name]; ok {
		return nil, &DuplicateVariableError{Name: name}
	}
	v := &Variable{name: name}
	r.vars[name] = v
	return v, nil
}

// Var returns the registered variable for name, creating and registering
// one if none exists. It never fails on repeats.
func (r *Registry) Var(name string) *Variable {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.vars[name]; ok {
		return v
	}
	v := &Variable{name: name}
	r.vars[name] = v
	return v
}

// defaultRegistry backs the package-level Define and Var entry points for
// the process lifetime.
var defaultRegistry = NewRegistry()

// Define registers a new variable in the process-wide registry.
func Define(name string) (*Variable, error) { return defaultRegistry.Define(name) }

// Var returns the process-wide variable for name, creating it on first use.
func Var(name string) *Variable { return defaultRegistry.Var(name) }
