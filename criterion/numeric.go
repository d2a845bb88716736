package criterion

import "github.com/hugr-lab/searchfilter-go/expr"

// NumericCriterion compares a number column. between needs both bounds.
type NumericCriterion struct {
	field expr.Expression
}

// NewNumeric creates a numeric criterion on field.
func NewNumeric(field expr.Expression) *NumericCriterion {
	return &NumericCriterion{field: field}
}

// Field returns the filtered field.
func (c *NumericCriterion) Field() expr.Expression { return c.field }

// Shape implements Shaper.
func (c *NumericCriterion) Shape(cond Condition) Shape {
	if cond == Between {
		return ShapeRange
	}
	return ShapeScalar
}

// IsApplicable implements Criterion.
func (c *NumericCriterion) IsApplicable(value any, _ Condition) bool {
	return present(value)
}

// BuildFilter implements Criterion.
func (c *NumericCriterion) BuildFilter(cond Condition, values Values, _ *Search, opts Options) (*Predicate, error) {
	opts = opts.withDefaults(Options{Type: "integer"})

	if cond == Between {
		r := values.Range(cond)
		if !c.IsApplicable(r.From, cond) || !c.IsApplicable(r.To, cond) {
			return nil, nil
		}
		return leaf(expr.Between(c.field, expr.Param(r.From, opts.Type), expr.Param(r.To, opts.Type))), nil
	}

	value := values.Get("value", cond)
	if !c.IsApplicable(value, cond) {
		return nil, nil
	}
	return leaf(BuildQueryByCondition(c.field, cond, value, opts)), nil
}

// BoolCriterion tests a flag column for equality, whatever the condition.
type BoolCriterion struct {
	field expr.Expression
}

// NewBool creates a boolean criterion on field.
func NewBool(field expr.Expression) *BoolCriterion {
	return &BoolCriterion{field: field}
}

// Field returns the filtered field.
func (c *BoolCriterion) Field() expr.Expression { return c.field }

// Shape implements Shaper.
func (c *BoolCriterion) Shape(Condition) Shape { return ShapeScalar }

// IsApplicable implements Criterion.
func (c *BoolCriterion) IsApplicable(value any, _ Condition) bool {
	return present(value)
}

// BuildFilter implements Criterion. The condition is always treated as =.
func (c *BoolCriterion) BuildFilter(_ Condition, values Values, _ *Search, opts Options) (*Predicate, error) {
	value := values.Get("value", Equal)
	if !c.IsApplicable(value, Equal) {
		return nil, nil
	}
	opts.Type = "integer"
	return leaf(BuildQueryByCondition(c.field, Equal, value, opts)), nil
}
