package object

import (
	"sort"
	"sync"
)

// Constructor builds an empty descriptor of one kind for the given locator;
// callers populate it through the kind's own API afterwards.
type Constructor func(locator string) Object

// Registry maps kind names to constructors so descriptors can be
// instantiated from configuration by name. The zero value is not usable;
// call NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register binds kind to ctor. Registering the same kind twice returns
// ErrDuplicateKind; the first binding stays.
func (r *Registry) Register(kind string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[kind]; exists {
		return ErrDuplicateKind
	}
	r.ctors[kind] = ctor

	return nil
}

// New instantiates a descriptor of the named kind, or ErrUnknownKind.
func (r *Registry) New(kind, locator string) (Object, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownKind
	}

	return ctor(locator), nil
}

// Kinds lists the registered kind names in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}
