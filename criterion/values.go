package criterion

import (
	"reflect"
	"slices"
)

// Values is the decoded value bundle of one filter slot.
//
// Keys holds sub-values by logical sub-key ("value", "from", "to",
// "date_from", "date_to", "id"); each is a scalar or a list of scalars.
// Rows holds positional bundles, produced when a sub-key was submitted
// several times or when an in/notIn selection was normalized to a list.
type Values struct {
	Keys map[string]any
	Rows []map[string]any
}

// ValuesOf returns a keyed bundle.
func ValuesOf(keys map[string]any) Values {
	return Values{Keys: keys}
}

// RowsOf returns a positional bundle.
func RowsOf(rows ...map[string]any) Values {
	return Values{Rows: rows}
}

// IsEmpty reports whether the bundle carries nothing.
func (v Values) IsEmpty() bool {
	return len(v.Keys) == 0 && len(v.Rows) == 0
}

// Positional reports whether the bundle has only positional rows.
func (v Values) Positional() bool {
	return len(v.Keys) == 0
}

// Get returns the sub-value stored under key for the given condition.
// For in/notIn on a positional bundle the key is collected from every row
// that has it, yielding a list.
func (v Values) Get(key string, cond Condition) any {
	if cond.IsList() && v.Positional() {
		out := make([]any, 0, len(v.Rows))
		for _, row := range v.Rows {
			if val, ok := row[key]; ok {
				out = append(out, val)
			}
		}
		return out
	}
	if v.Keys == nil {
		return nil
	}
	return v.Keys[key]
}

// Shape names the form of value bundle a criterion consumes.
type Shape int

const (
	// ShapeScalar reads "value" as a scalar or list.
	ShapeScalar Shape = iota
	// ShapeRange reads "from" and "to".
	ShapeRange
	// ShapeDateRange reads "date_from" and "date_to".
	ShapeDateRange
	// ShapeIDOrValue reads "id" and "value".
	ShapeIDOrValue
	// ShapeNone reads nothing.
	ShapeNone
)

// Keys returns the sub-keys consumed by the shape.
func (s Shape) Keys() []string {
	switch s {
	case ShapeScalar:
		return []string{"value"}
	case ShapeRange:
		return []string{"from", "to"}
	case ShapeDateRange:
		return []string{"date_from", "date_to"}
	case ShapeIDOrValue:
		return []string{"id", "value"}
	}
	return nil
}

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeRange:
		return "range"
	case ShapeDateRange:
		return "dateRange"
	case ShapeIDOrValue:
		return "idOrValue"
	case ShapeNone:
		return "none"
	}
	return "unknown"
}

// Shaper is implemented by criteria that declare the bundle shape they read.
type Shaper interface {
	Shape(cond Condition) Shape
}

// Extra returns the keyed sub-keys that s does not consume, sorted.
func (v Values) Extra(s Shape) []string {
	want := s.Keys()
	var extra []string
	for k := range v.Keys {
		if !slices.Contains(want, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return extra
}

// Range is the from/to pair of a between selection.
type Range struct {
	From any
	To   any
}

// Range returns the from/to pair.
func (v Values) Range(cond Condition) Range {
	return Range{From: v.Get("from", cond), To: v.Get("to", cond)}
}

// DateRange returns the date_from/date_to pair.
func (v Values) DateRange(cond Condition) Range {
	return Range{From: v.Get("date_from", cond), To: v.Get("date_to", cond)}
}

// IDOrValue is the selection of a lookup field: an explicit id or a display text.
type IDOrValue struct {
	ID    any
	Value any
}

// IDOrValue returns the id/value pair.
func (v Values) IDOrValue(cond Condition) IDOrValue {
	return IDOrValue{ID: v.Get("id", cond), Value: v.Get("value", cond)}
}

// asList returns v as a list when it is a slice (other than []byte).
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case nil:
		return nil, false
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// present is the default applicability rule: a list counts iff non-empty,
// a scalar iff it is neither nil nor the empty string.
func present(v any) bool {
	if l, ok := asList(v); ok {
		return len(l) > 0
	}
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// anyPresent reports whether at least one list element is present.
func anyPresent(l []any) bool {
	for _, v := range l {
		if present(v) {
			return true
		}
	}
	return false
}
