package resource

import (
	"fmt"
	"slices"
	"sync"
)

// Resolver looks up a resource type by its wire type identifier.
// Implementations must be safe for concurrent lookups.
type Resolver interface {
	Lookup(typeID string) (Definition, bool)
}

// Registry is a concurrency-safe Resolver. Types may be registered at any
// time, including while lookups are running.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

var _ Resolver = (*Registry)(nil)

// NewRegistry returns a registry holding defs.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}

	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustRegistry is like NewRegistry but panics on a duplicate type.
func MustRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}

	return r
}

// Register adds def. Registering a second type with the same identifier
// fails with ErrAlreadyRegistered; registering the same value again is a
// no-op.
func (r *Registry) Register(def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.defs == nil {
		r.defs = map[string]Definition{}
	}

	id := def.TypeID()
	if existing, ok := r.defs[id]; ok {
		if existing == def {
			return nil
		}

		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, id)
	}

	r.defs[id] = def

	return nil
}

func (r *Registry) Lookup(typeID string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[typeID]

	return def, ok
}

// TypeIDs returns the registered identifiers, sorted.
func (r *Registry) TypeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.defs)
}
