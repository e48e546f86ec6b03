package payment

import "sync"

// Registry holds providers in registration order. Resolution is a
// linear scan, so when two providers claim the same method the first
// registered one wins. The list is populated at startup and read
// concurrently afterwards.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a provider. No deduplication: registration order is
// the only precedence rule.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// Resolve returns the first registered provider supporting method, or
// nil when no provider claims it.
func (r *Registry) Resolve(method string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.Supports(method) {
			return p
		}
	}
	return nil
}

// IsSupported reports whether any provider claims method.
func (r *Registry) IsSupported(method string) bool {
	return r.Resolve(method) != nil
}

// SupportedMethods returns the deduplicated union of every provider's
// methods, in first-seen order.
func (r *Registry) SupportedMethods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var methods []string
	for _, p := range r.providers {
		for _, m := range p.SupportedMethods() {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			methods = append(methods, m)
		}
	}
	return methods
}

// Providers returns a snapshot of the registered providers.
func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}
