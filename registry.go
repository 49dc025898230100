package stimulus

import (
	"strings"
	"sync"
)

// Registry caches parsed selectors by their trimmed source text. Entries
// are added on first use and never evicted or updated; a registry only
// grows. The zero value is not usable; construct registries with
// NewRegistry and pass them to the call sites that need them.
//
// A Registry is safe for concurrent use. The whole get-or-create sequence
// runs under one lock, so a selector is constructed at most once per
// distinct trimmed text even under contention.
type Registry struct {
	mu        sync.Mutex
	selectors map[string]*Selector
}

// NewRegistry returns an empty selector registry.
func NewRegistry() *Registry {
	return &Registry{selectors: make(map[string]*Selector)}
}

// Get returns the selector for text, constructing and caching it on first
// use. text is trimmed of leading and trailing whitespace before lookup, so
// all callers that agree on the trimmed form share one *Selector.
//
// If text cannot be tokenized, Get returns an *Error wrapping the scanner
// error and caches nothing: a later call with the same text re-runs
// tokenization and fails identically.
func (r *Registry) Get(text string) (*Selector, error) {
	key := strings.TrimSpace(text)

	r.mu.Lock()
	defer r.mu.Unlock()

	if sel, ok := r.selectors[key]; ok {
		return sel, nil
	}
	sel, err := newSelector(key)
	if err != nil {
		return nil, err
	}
	r.selectors[key] = sel
	return sel, nil
}

// Len returns the number of cached selectors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.selectors)
}
