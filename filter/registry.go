package filter

import (
	"maps"
	"slices"
)

// Constructor creates a definition in its default state.
type Constructor func() Definition

// Registry resolves filter type names to definitions. Prototypes are built
// when a constructor is registered; lookups hand out copies.
type Registry struct {
	prototypes map[string]Definition
}

// Defaults returns the built-in constructors keyed by name.
func Defaults() map[string]Constructor {
	return map[string]Constructor{
		"boolean":  func() Definition { return NewBoolean() },
		"date":     func() Definition { return NewDate() },
		"datetime": func() Definition { return NewDateTime() },
		"lookup":   func() Definition { return NewLookup() },
		"multiple": func() Definition { return NewMultiple() },
		"numeric":  func() Definition { return NewNumeric() },
		"select":   func() Definition { return NewSelect() },
		"string":   func() Definition { return NewString() },
	}
}

// NewRegistry creates a registry loaded with ctors. A nil or empty map
// loads Defaults.
func NewRegistry(ctors map[string]Constructor) *Registry {
	if len(ctors) == 0 {
		ctors = Defaults()
	}
	r := &Registry{prototypes: make(map[string]Definition, len(ctors))}
	for name, ctor := range ctors {
		r.Register(name, ctor)
	}
	return r
}

// Register adds or replaces the constructor for name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.prototypes[name] = ctor()
}

func (r *Registry) Has(name string) bool {
	_, ok := r.prototypes[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.prototypes))
}

// Get returns the prototype registered under name. Callers that mutate the
// result should use New instead.
func (r *Registry) Get(name string) (Definition, error) {
	def, ok := r.prototypes[name]
	if !ok {
		return nil, &MissingFilterError{Name: name}
	}
	return def, nil
}

// New returns a fresh copy of the prototype registered under name.
func (r *Registry) New(name string) (Definition, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return def.New(), nil
}

// Require checks that every name is registered.
func (r *Registry) Require(names ...string) error {
	for _, name := range names {
		if !r.Has(name) {
			return &MissingFilterError{Name: name}
		}
	}
	return nil
}
