// core/naming/registry.go
package naming

import (
	"strconv"
	"sync"
)

// Registry is the set of output names handed out during one run. It only
// grows. Reserve is atomic, so a Registry may be shared by goroutines, but
// output order is only reproducible when reservations happen in input order.
type Registry struct {
	mu   sync.Mutex
	used map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{used: make(map[string]struct{}, 256)}
}

// Reserve returns name if unused, else the first free name-1, name-2, ...
// The returned name is recorded before Reserve returns.
func (r *Registry) Reserve(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cand := name
	for i := 1; r.has(cand); i++ {
		cand = name + "-" + strconv.Itoa(i)
	}
	r.used[cand] = struct{}{}
	return cand
}

// Has reports whether name was already reserved.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.has(name)
}

// Len is the number of reserved names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.used)
}

func (r *Registry) has(name string) bool {
	_, ok := r.used[name]
	return ok
}
