package filter

import (
	"maps"

	"github.com/hugr-lab/searchfilter-go/criterion"
)

// Definition is the UI-facing description of one filterable field: label,
// property bag, offered conditions and the criterion that filters it.
//
// Implementations embed Base. The unexported method keeps the alias under
// the control of Collection.
type Definition interface {
	// Alias returns the key the definition is registered under, or "" before
	// registration.
	Alias() string

	Label() string
	SetLabel(label string)

	// Properties returns a copy of the property bag.
	Properties() map[string]any
	Property(name string) (any, bool)
	SetProperty(name string, value any)
	// SetProperties replaces the property bag.
	SetProperties(props map[string]any)

	Conditions() Conditions
	SetConditions(conds Conditions)
	// ExcludeIn drops the in and notIn conditions.
	ExcludeIn()

	// Criterion returns the attached criterion, or nil.
	Criterion() criterion.Criterion
	SetCriterion(c criterion.Criterion)

	// ViewConfig exports the definition for the UI: the property bag plus
	// "conditions" and "name".
	ViewConfig() map[string]any

	// New returns an unregistered deep copy.
	New() Definition

	base() *Base
}

// Base holds the state shared by all definitions.
type Base struct {
	alias      string
	label      string
	properties map[string]any
	conditions Conditions
	criterion  criterion.Criterion
}

func newBase(props map[string]any, conds Conditions) Base {
	return Base{properties: props, conditions: conds}
}

func (b *Base) base() *Base { return b }

func (b *Base) Alias() string { return b.alias }

func (b *Base) Label() string { return b.label }

func (b *Base) SetLabel(label string) { b.label = label }

func (b *Base) Properties() map[string]any { return cloneMap(b.properties) }

func (b *Base) Property(name string) (any, bool) {
	v, ok := b.properties[name]
	return v, ok
}

func (b *Base) SetProperty(name string, value any) {
	if b.properties == nil {
		b.properties = make(map[string]any)
	}
	b.properties[name] = value
}

func (b *Base) SetProperties(props map[string]any) { b.properties = cloneMap(props) }

func (b *Base) Conditions() Conditions { return b.conditions.clone() }

func (b *Base) SetConditions(conds Conditions) { b.conditions = conds.clone() }

func (b *Base) ExcludeIn() {
	b.conditions = b.conditions.Without(criterion.In, criterion.NotIn)
}

func (b *Base) Criterion() criterion.Criterion { return b.criterion }

func (b *Base) SetCriterion(c criterion.Criterion) { b.criterion = c }

func (b *Base) ViewConfig() map[string]any {
	out := cloneMap(b.properties)
	if out == nil {
		out = make(map[string]any, 2)
	}
	out["conditions"] = b.conditions.clone()
	out["name"] = b.label
	return out
}

// clone copies b without its alias. The criterion is shared: criteria are
// not mutated after construction.
func (b *Base) clone() Base {
	return Base{
		label:      b.label,
		properties: cloneMap(b.properties),
		conditions: b.conditions.clone(),
		criterion:  b.criterion,
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case map[string]string:
		return maps.Clone(v)
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = cloneValue(v[i])
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case Options:
		return v.clone()
	case Conditions:
		return v.clone()
	}
	return v
}
