package expr

import "strings"

// SQLEncoder encodes predicate expressions to SQL with bound parameters.
type SQLEncoder struct {
	opts *EncoderOptions
}

// NewSQLEncoder creates a new SQL encoder.
// If opts is nil, default options are used.
func NewSQLEncoder(opts *EncoderOptions) *SQLEncoder {
	if opts == nil {
		opts = &EncoderOptions{}
	}
	return &SQLEncoder{opts: opts}
}

// Encode converts a single expression to SQL with a fresh binder.
func (e *SQLEncoder) Encode(expr Expression) Statement {
	b := NewBinder(e.opts.Placeholder)
	sql := e.EncodeWith(b, expr)
	return Statement{SQL: sql, Bindings: b.Bindings(), style: b.Style}
}

// EncodeWith converts an expression to SQL, binding parameters into b.
// Returns empty string if the expression renders to nothing.
func (e *SQLEncoder) EncodeWith(b *Binder, expr Expression) string {
	if expr == nil {
		return ""
	}

	switch ex := expr.(type) {
	case *ComparisonExpression:
		return e.encodeComparison(b, ex)
	case *InExpression:
		return e.encodeIn(b, ex)
	case *SubqueryExpression:
		return e.encodeSubquery(b, ex)
	case *BetweenExpression:
		return e.encodeBetween(b, ex)
	case *ConjunctionExpression:
		return e.encodeConjunction(b, ex)
	case *ColumnRefExpression:
		return e.encodeColumnRef(ex)
	case *ParameterExpression:
		return b.Bind(ex.Value, ex.BindType)
	case *RawExpression:
		return ex.SQL
	case *FunctionExpression:
		return e.encodeFunction(b, ex)
	case *SelectExpression:
		return e.encodeSelect(b, ex)
	case *IdentityExpression:
		return ""
	default:
		return ""
	}
}

// encodeComparison encodes a comparison expression.
func (e *SQLEncoder) encodeComparison(b *Binder, c *ComparisonExpression) string {
	left := e.EncodeWith(b, c.Left)
	if left == "" {
		return ""
	}

	var op string
	switch c.Type() {
	case TypeCompareEqual:
		op = " = "
	case TypeCompareNotEqual:
		op = " != "
	case TypeCompareLessThan:
		op = " < "
	case TypeCompareGreaterThan:
		op = " > "
	case TypeCompareLessThanOrEqual:
		op = " <= "
	case TypeCompareGreaterThanOrEqual:
		op = " >= "
	case TypeCompareLike:
		op = " LIKE "
	case TypeCompareNotLike:
		op = " NOT LIKE "
	case TypeCompareILike:
		op = " ILIKE "
	case TypeCompareNotILike:
		op = " NOT ILIKE "
	default:
		return ""
	}

	if c.Right == nil {
		switch c.Type() {
		case TypeCompareEqual:
			return left + " IS NULL"
		case TypeCompareNotEqual:
			return left + " IS NOT NULL"
		}
		return ""
	}

	right := e.EncodeWith(b, c.Right)
	if right == "" {
		return ""
	}
	return left + op + right
}

// encodeIn encodes IN/NOT IN expressions.
func (e *SQLEncoder) encodeIn(b *Binder, in *InExpression) string {
	if len(in.Values) == 0 {
		return ""
	}

	left := e.EncodeWith(b, in.Left)
	if left == "" {
		return ""
	}

	values := make([]string, 0, len(in.Values))
	for _, v := range in.Values {
		encoded := e.EncodeWith(b, v)
		if encoded == "" {
			return ""
		}
		values = append(values, encoded)
	}

	op := " IN "
	if in.Type() == TypeCompareNotIn {
		op = " NOT IN "
	}

	return left + op + "(" + strings.Join(values, ", ") + ")"
}

// encodeSubquery encodes "left IN (SELECT ...)".
func (e *SQLEncoder) encodeSubquery(b *Binder, s *SubqueryExpression) string {
	left := e.EncodeWith(b, s.Left)
	if left == "" || s.Query == nil {
		return ""
	}
	query := e.encodeSelect(b, s.Query)
	if query == "" {
		return ""
	}
	return left + " IN (" + query + ")"
}

// encodeBetween encodes a BETWEEN expression.
func (e *SQLEncoder) encodeBetween(b *Binder, bt *BetweenExpression) string {
	input := e.EncodeWith(b, bt.Input)
	lower := e.EncodeWith(b, bt.Lower)
	upper := e.EncodeWith(b, bt.Upper)

	if input == "" || lower == "" || upper == "" {
		return ""
	}

	return input + " BETWEEN " + lower + " AND " + upper
}

// encodeConjunction encodes AND/OR conjunctions.
// Children that render to nothing are skipped.
func (e *SQLEncoder) encodeConjunction(b *Binder, c *ConjunctionExpression) string {
	var parts []string
	for _, child := range c.Children {
		encoded := e.EncodeWith(b, child)
		if encoded != "" {
			parts = append(parts, encoded)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	if len(parts) == 1 {
		return parts[0]
	}

	op := " AND "
	if c.Type() == TypeConjunctionOr {
		op = " OR "
	}

	return "(" + strings.Join(parts, op) + ")"
}

// encodeColumnRef encodes a column reference.
func (e *SQLEncoder) encodeColumnRef(c *ColumnRefExpression) string {
	colName := c.Name

	// Expression mapping takes precedence
	if e.opts.ColumnExpressions != nil {
		if expr, ok := e.opts.ColumnExpressions[colName]; ok {
			return expr
		}
	}

	if e.opts.ColumnMapping != nil {
		if mapped, ok := e.opts.ColumnMapping[colName]; ok {
			colName = mapped
		}
	}

	return quoteName(colName)
}

// encodeFunction encodes a function expression.
func (e *SQLEncoder) encodeFunction(b *Binder, f *FunctionExpression) string {
	args := make([]string, 0, len(f.Children))
	for _, child := range f.Children {
		encoded := e.EncodeWith(b, child)
		if encoded == "" {
			return ""
		}
		args = append(args, encoded)
	}

	sep := f.Separator
	if sep == "" {
		sep = ", "
	}
	return f.Name + "(" + strings.Join(args, sep) + ")"
}

// encodeSelect encodes a single-table SELECT.
func (e *SQLEncoder) encodeSelect(b *Binder, s *SelectExpression) string {
	if s.Table == "" {
		return ""
	}

	cols := "*"
	if len(s.Columns) > 0 {
		parts := make([]string, 0, len(s.Columns))
		for _, c := range s.Columns {
			encoded := e.EncodeWith(b, c)
			if encoded == "" {
				return ""
			}
			parts = append(parts, encoded)
		}
		cols = strings.Join(parts, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(cols)
	sb.WriteString(" FROM ")
	sb.WriteString(quoteName(s.Table))
	if s.Alias != "" {
		sb.WriteString(" ")
		sb.WriteString(quoteIdentifier(s.Alias))
	}

	if where := e.EncodeWith(b, s.Where); where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	return sb.String()
}
