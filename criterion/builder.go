package criterion

import "github.com/hugr-lab/searchfilter-go/expr"

// Builder is a factory for criteria on named columns.
//
// Example:
//
//	var b criterion.Builder
//	c := b.Or(
//	    b.String("Articles.title"),
//	    b.Lookup("Articles.author_id", authors, b.String("name")),
//	)
type Builder struct{}

// And creates an AND composite.
func (Builder) And(criteria ...Criterion) *AndCriterion { return NewAnd(criteria...) }

// Or creates an OR composite.
func (Builder) Or(criteria ...Criterion) *OrCriterion { return NewOr(criteria...) }

// In creates a sub-query criterion on field.
func (Builder) In(field string, table expr.Source, inner Criterion) *InCriterion {
	return NewIn(expr.Column(field), table, inner)
}

// String creates a string criterion on field.
func (Builder) String(field string) *StringCriterion { return NewString(expr.Column(field)) }

// Numeric creates a numeric criterion on field.
func (Builder) Numeric(field string) *NumericCriterion { return NewNumeric(expr.Column(field)) }

// Lookup creates a lookup criterion on field.
func (Builder) Lookup(field string, table expr.Source, inner Criterion) *LookupCriterion {
	return NewLookup(expr.Column(field), table, inner)
}

// Bool creates a boolean criterion on field.
func (Builder) Bool(field string) *BoolCriterion { return NewBool(expr.Column(field)) }

// Date creates a date criterion on field. An empty format selects the default.
func (Builder) Date(field, format string) *DateCriterion {
	return NewDate(expr.Column(field), format)
}

// DateTime creates a date-time criterion on field. An empty format selects the default.
func (Builder) DateTime(field, format string) *DateTimeCriterion {
	return NewDateTime(expr.Column(field), format)
}
