package manifest

import (
	"fmt"
	"sync"

	"ocimeta/internal/ecosystem"
)

// Engine reads a single value out of raw manifest content addressed by a
// dotted path. Implementations exist per parser family (json, toml).
type Engine interface {
	// Name identifies the engine in logs.
	Name() string
	// Available reports whether the engine can be used in this process.
	Available() bool
	// Query returns the value at path, or found=false when the path does
	// not exist in the document. Errors are reserved for unreadable
	// documents, not missing paths.
	Query(content []byte, path string) (value string, found bool, err error)
}

// NoParserError indicates that a parser family has no usable engine.
type NoParserError struct {
	Family ecosystem.Family
}

func (e *NoParserError) Error() string {
	return fmt.Sprintf("no %s parser available: no usable engine is registered for this family", e.Family)
}

// Registry holds the candidate engines per parser family, in preference
// order. Binding picks the first available candidate and is cached for the
// lifetime of the registry; bindings never change within a run.
type Registry struct {
	mu       sync.Mutex
	engines  map[ecosystem.Family][]Engine
	bindings map[ecosystem.Family]Engine
}

// NewRegistry returns a registry with no engines. Most callers want
// DefaultRegistry instead.
func NewRegistry() *Registry {
	return &Registry{
		engines:  make(map[ecosystem.Family][]Engine),
		bindings: make(map[ecosystem.Family]Engine),
	}
}

// DefaultRegistry returns the standard engine set: the in-process JSON and
// TOML engines.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ecosystem.FamilyJSON, &jsonEngine{})
	r.Register(ecosystem.FamilyTOML, &tomlEngine{})
	return r
}

// Register appends an engine candidate for a family. Registration order is
// preference order.
func (r *Registry) Register(family ecosystem.Family, engine Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[family] = append(r.engines[family], engine)
}

// Bind resolves the engine for a family: the first available candidate.
// The result is cached, so repeated calls return the same engine.
func (r *Registry) Bind(family ecosystem.Family) (Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bound, ok := r.bindings[family]; ok {
		return bound, nil
	}
	for _, candidate := range r.engines[family] {
		if candidate.Available() {
			r.bindings[family] = candidate
			return candidate, nil
		}
	}
	return nil, &NoParserError{Family: family}
}
