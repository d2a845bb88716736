package expr

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// PlaceholderStyle selects how bound parameters are rendered.
type PlaceholderStyle int

const (
	// PlaceholderColon renders named placeholders :c0, :c1, ...
	PlaceholderColon PlaceholderStyle = iota
	// PlaceholderQuestion renders positional ? placeholders.
	PlaceholderQuestion
	// PlaceholderDollar renders numbered $1, $2, ... placeholders.
	PlaceholderDollar
)

// Binding is one bound parameter of a rendered statement.
type Binding struct {
	// Placeholder is the text emitted into the SQL (":c0", "?", "$1").
	Placeholder string
	// Value is the coerced value passed to the driver.
	Value any
	// Type is the type hint the value was bound with.
	Type string
}

// Binder collects bound parameters and hands out placeholders.
type Binder struct {
	Style    PlaceholderStyle
	bindings []Binding
}

// NewBinder creates an empty binder.
func NewBinder(style PlaceholderStyle) *Binder {
	return &Binder{Style: style, bindings: make([]Binding, 0)}
}

// Bind records v coerced by bindType and returns its placeholder.
func (b *Binder) Bind(v any, bindType string) string {
	n := len(b.bindings)
	var ph string
	switch b.Style {
	case PlaceholderQuestion:
		ph = "?"
	case PlaceholderDollar:
		ph = "$" + strconv.Itoa(n+1)
	default:
		ph = ":c" + strconv.Itoa(n)
	}
	b.bindings = append(b.bindings, Binding{
		Placeholder: ph,
		Value:       Coerce(v, bindType),
		Type:        bindType,
	})
	return ph
}

// Bindings returns the recorded bindings in placeholder order.
func (b *Binder) Bindings() []Binding { return b.bindings }

// Len returns the number of bound parameters.
func (b *Binder) Len() int { return len(b.bindings) }

// Args returns the binding values ready for database/sql.
// Colon placeholders are passed as sql.Named arguments.
func (b *Binder) Args() []any {
	args := make([]any, 0, len(b.bindings))
	for _, bind := range b.bindings {
		if b.Style == PlaceholderColon {
			args = append(args, sql.Named(strings.TrimPrefix(bind.Placeholder, ":"), bind.Value))
			continue
		}
		args = append(args, bind.Value)
	}
	return args
}

// Coerce converts v to the database representation implied by bindType.
// Values that cannot be converted are returned unchanged.
func Coerce(v any, bindType string) any {
	switch bindType {
	case "integer", "biginteger", "smallinteger", "tinyinteger":
		switch x := v.(type) {
		case string:
			s := strings.TrimSpace(x)
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return int64(f)
			}
		case bool:
			if x {
				return int64(1)
			}
			return int64(0)
		case int:
			return int64(x)
		case int32:
			return int64(x)
		case float64:
			return int64(x)
		}
	case "float", "decimal":
		if s, ok := v.(string); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return f
			}
		}
	case "boolean":
		switch x := v.(type) {
		case string:
			if b, err := strconv.ParseBool(x); err == nil {
				return b
			}
		case int:
			return x != 0
		case int64:
			return x != 0
		}
	case "date":
		if t, ok := v.(time.Time); ok {
			return t.Format(time.DateOnly)
		}
	case "datetime", "timestamp":
		if t, ok := v.(time.Time); ok {
			return t.Format(time.DateTime)
		}
	}
	return v
}
