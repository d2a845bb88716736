package criterion

import (
	"github.com/google/uuid"

	"github.com/hugr-lab/searchfilter-go/expr"
)

// LookupCriterion filters a foreign key column either by explicit ids or,
// when only a display text is given, through a sub-query on the related
// table matched by the inner criterion.
type LookupCriterion struct {
	field     expr.Expression
	table     expr.Source
	criterion Criterion
}

// NewLookup creates a lookup criterion on field, resolving display text
// through inner against table.
func NewLookup(field expr.Expression, table expr.Source, inner Criterion) *LookupCriterion {
	return &LookupCriterion{field: field, table: table, criterion: inner}
}

// Field returns the foreign key field.
func (c *LookupCriterion) Field() expr.Expression { return c.field }

// Table returns the related table.
func (c *LookupCriterion) Table() expr.Source { return c.table }

// Criterion returns the inner criterion matched against the related table.
func (c *LookupCriterion) Criterion() Criterion { return c.criterion }

// Shape implements Shaper.
func (c *LookupCriterion) Shape(Condition) Shape { return ShapeIDOrValue }

// IsApplicable implements Criterion. Bundles count when non-empty.
func (c *LookupCriterion) IsApplicable(value any, _ Condition) bool {
	switch v := value.(type) {
	case Values:
		return !v.IsEmpty()
	case map[string]any:
		return len(v) > 0
	}
	return present(value)
}

// IsIDApplicable reports whether id selects rows by key: a non-empty list
// or a non-empty scalar other than the "null" placeholder.
func (c *LookupCriterion) IsIDApplicable(id any) bool {
	return !nullID(id) && present(id)
}

// BuildFilter implements Criterion.
func (c *LookupCriterion) BuildFilter(cond Condition, values Values, search *Search, opts Options) (*Predicate, error) {
	sel := values.IDOrValue(cond)

	if cond.IsLike() || (nullID(sel.ID) && present(sel.Value)) {
		inner, err := c.criterion.BuildFilter(
			cond,
			ValuesOf(map[string]any{"value": sel.Value}),
			search,
			opts.withDefaults(Options{LikeBefore: Flag(false)}),
		)
		if err != nil || inner.Empty() {
			return nil, err
		}
		return leaf(expr.InSubquery(c.field, expr.SelectFrom(c.table, inner.Expression()))), nil
	}

	if c.IsIDApplicable(sel.ID) {
		opts = opts.withDefaults(Options{Type: idType(sel.ID)})
		return leaf(BuildQueryByCondition(c.field, cond, sel.ID, opts)), nil
	}

	return nil, nil
}

func nullID(id any) bool {
	return id == nil || id == "null"
}

// idType detects "uuid" or "integer" from the first id.
func idType(id any) string {
	first := id
	if list, ok := asList(id); ok && len(list) > 0 {
		first = list[0]
	}
	s, ok := first.(string)
	if !ok || len(s) != 36 {
		return "integer"
	}
	if _, err := uuid.Parse(s); err != nil {
		return "integer"
	}
	return "uuid"
}

// InCriterion restricts field to the keys of table rows matched by an
// inner criterion: field IN (SELECT pk FROM table WHERE inner).
type InCriterion struct {
	field     expr.Expression
	table     expr.Source
	criterion Criterion
}

// NewIn creates a sub-query criterion.
func NewIn(field expr.Expression, table expr.Source, inner Criterion) *InCriterion {
	return &InCriterion{field: field, table: table, criterion: inner}
}

// IsApplicable implements Criterion by delegating to the inner criterion.
func (c *InCriterion) IsApplicable(value any, cond Condition) bool {
	return c.criterion.IsApplicable(value, cond)
}

// BuildFilter implements Criterion.
func (c *InCriterion) BuildFilter(cond Condition, values Values, search *Search, opts Options) (*Predicate, error) {
	inner, err := c.criterion.BuildFilter(cond, values, search, opts)
	if err != nil || inner.Empty() {
		return nil, err
	}
	return leaf(expr.InSubquery(c.field, expr.SelectFrom(c.table, inner.Expression()))), nil
}
