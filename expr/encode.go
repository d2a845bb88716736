package expr

import "strings"

// Encoder converts predicate expressions to SQL strings.
type Encoder interface {
	// Encode converts a single expression to SQL with a fresh binder.
	// Returns an empty statement if the expression renders to nothing.
	Encode(expr Expression) Statement

	// EncodeWith converts an expression to SQL, binding parameters into b.
	EncodeWith(b *Binder, expr Expression) string
}

// Statement is rendered SQL plus its bound parameters.
type Statement struct {
	SQL      string
	Bindings []Binding

	style PlaceholderStyle
}

// Args returns the binding values ready for database/sql.
func (s Statement) Args() []any {
	b := &Binder{Style: s.style, bindings: s.Bindings}
	return b.Args()
}

// Values returns the raw binding values in placeholder order.
func (s Statement) Values() []any {
	out := make([]any, len(s.Bindings))
	for i, b := range s.Bindings {
		out[i] = b.Value
	}
	return out
}

// EncoderOptions configures encoding behavior.
type EncoderOptions struct {
	// ColumnMapping maps original column names to target names.
	// Columns not in the map use their original names.
	ColumnMapping map[string]string

	// ColumnExpressions maps column names to SQL expressions.
	// Takes precedence over ColumnMapping.
	ColumnExpressions map[string]string

	// Placeholder selects the bound parameter syntax.
	// Defaults to PlaceholderColon (:c0, :c1, ...).
	Placeholder PlaceholderStyle
}

// quoteName quotes every dot-separated part of a possibly qualified name.
func quoteName(name string) string {
	if name == "*" {
		return name
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if p == "*" {
			continue
		}
		parts[i] = quoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

// quoteIdentifier returns a quoted identifier if needed.
func quoteIdentifier(name string) string {
	if needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

// needsQuoting returns true if the identifier needs quoting.
func needsQuoting(name string) bool {
	if len(name) == 0 {
		return true
	}

	c := name[0]
	if !isLetter(c) && c != '_' {
		return true
	}

	for i := 1; i < len(name); i++ {
		c = name[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return true
		}
	}

	// Simplified reserved word list
	switch strings.ToUpper(name) {
	case "SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "NULL", "TRUE", "FALSE",
		"INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER", "TABLE", "INDEX",
		"JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "ON", "AS", "IN", "IS", "LIKE",
		"BETWEEN", "EXISTS", "CASE", "WHEN", "THEN", "ELSE", "END", "ORDER", "BY",
		"GROUP", "HAVING", "LIMIT", "OFFSET", "UNION", "EXCEPT", "INTERSECT",
		"ALL", "DISTINCT", "VALUES", "SET", "INTO", "PRIMARY", "KEY", "FOREIGN",
		"REFERENCES", "CONSTRAINT", "DEFAULT", "CHECK", "UNIQUE", "ASC", "DESC",
		"USER", "CAST", "INTERVAL", "DATE", "TIME", "TIMESTAMP":
		return true
	}

	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
