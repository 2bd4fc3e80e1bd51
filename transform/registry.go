package transform

import (
	"slices"
	"sync"
)

// Registry holds named transforms.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry creates a new empty transform registry.
func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]Transform),
	}
}

// Presets returns a registry with every preset under its lower-case name.
func Presets() *Registry {
	r := NewRegistry()
	r.Add("bool", Bool)
	r.Add("int32", Int32)
	r.Add("int64", Int64)
	r.Add("float32", Float32)
	r.Add("float64", Float64)
	r.Add("datetime", DateTime)
	r.Add("ascii", ASCII)

	return r
}

// Add adds a transform to the registry, replacing any previous one.
func (r *Registry) Add(name string, t Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transforms[name] = t
}

// Get returns a transform by name.
func (r *Registry) Get(name string) (Transform, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transforms[name]

	return t, ok
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// Names returns all transform names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Default is the process-wide registry fields resolve transform names against.
var Default = Presets()
