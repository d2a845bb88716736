package criterion

import "github.com/hugr-lab/searchfilter-go/expr"

// StringCriterion matches a text column. like/notLike default to a prefix
// match (no leading wildcard).
type StringCriterion struct {
	field expr.Expression
}

// NewString creates a string criterion on field.
func NewString(field expr.Expression) *StringCriterion {
	return &StringCriterion{field: field}
}

// Field returns the filtered field.
func (c *StringCriterion) Field() expr.Expression { return c.field }

// Shape implements Shaper.
func (c *StringCriterion) Shape(Condition) Shape { return ShapeScalar }

// IsApplicable implements Criterion.
func (c *StringCriterion) IsApplicable(value any, _ Condition) bool {
	return present(value)
}

// BuildFilter implements Criterion.
func (c *StringCriterion) BuildFilter(cond Condition, values Values, _ *Search, opts Options) (*Predicate, error) {
	value := values.Get("value", cond)
	if !c.IsApplicable(value, cond) {
		return nil, nil
	}
	opts = opts.withDefaults(Options{LikeBefore: Flag(false), LikeAfter: Flag(true)})
	return leaf(BuildQueryByCondition(c.field, cond, value, opts)), nil
}
