package filter

import (
	"bytes"
	"encoding/json"

	"github.com/hugr-lab/searchfilter-go/criterion"
)

// ConditionLabel pairs a condition with its display string.
type ConditionLabel struct {
	Condition criterion.Condition
	Label     string
}

// Conditions is the ordered condition→label map offered by a filter.
// It marshals to a JSON object in declaration order.
type Conditions []ConditionLabel

// Label returns the display string for cond.
func (c Conditions) Label(cond criterion.Condition) (string, bool) {
	for _, cl := range c {
		if cl.Condition == cond {
			return cl.Label, true
		}
	}
	return "", false
}

// Has reports whether cond is offered.
func (c Conditions) Has(cond criterion.Condition) bool {
	_, ok := c.Label(cond)
	return ok
}

// Keys returns the conditions in order.
func (c Conditions) Keys() []criterion.Condition {
	keys := make([]criterion.Condition, len(c))
	for i, cl := range c {
		keys[i] = cl.Condition
	}
	return keys
}

// Without returns a copy of c with conds removed.
func (c Conditions) Without(conds ...criterion.Condition) Conditions {
	out := make(Conditions, 0, len(c))
next:
	for _, cl := range c {
		for _, drop := range conds {
			if cl.Condition == drop {
				continue next
			}
		}
		out = append(out, cl)
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (c Conditions) MarshalJSON() ([]byte, error) {
	entries := make([]entry, len(c))
	for i, cl := range c {
		entries[i] = entry{key: string(cl.Condition), value: cl.Label}
	}
	return marshalObject(entries)
}

func (c Conditions) clone() Conditions {
	if c == nil {
		return nil
	}
	return append(Conditions(nil), c...)
}

// Option is one choice of a select-style filter.
type Option struct {
	Value string
	Label string
}

// Options is an ordered value→label list. It marshals to a JSON object in
// declaration order.
type Options []Option

// MarshalJSON implements json.Marshaler.
func (o Options) MarshalJSON() ([]byte, error) {
	entries := make([]entry, len(o))
	for i, opt := range o {
		entries[i] = entry{key: opt.Value, value: opt.Label}
	}
	return marshalObject(entries)
}

func (o Options) clone() Options {
	if o == nil {
		return nil
	}
	return append(Options(nil), o...)
}

// ViewConfig is the ordered alias→export map produced by a collection.
type ViewConfig []ViewEntry

// ViewEntry is one exported filter.
type ViewEntry struct {
	Alias  string
	Config map[string]any
}

// Get returns the export for alias.
func (v ViewConfig) Get(alias string) (map[string]any, bool) {
	for _, e := range v {
		if e.Alias == alias {
			return e.Config, true
		}
	}
	return nil, false
}

// Aliases returns the exported aliases in order.
func (v ViewConfig) Aliases() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Alias
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (v ViewConfig) MarshalJSON() ([]byte, error) {
	entries := make([]entry, len(v))
	for i, e := range v {
		entries[i] = entry{key: e.Alias, value: e.Config}
	}
	return marshalObject(entries)
}

type entry struct {
	key   string
	value any
}

// marshalObject writes entries as a JSON object keeping their order.
func marshalObject(entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
