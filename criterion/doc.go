// Package criterion turns a filter selection (condition + value bundle) into
// a typed query predicate.
//
// Every variant implements Criterion:
//   - StringCriterion, NumericCriterion, BoolCriterion compare a column
//   - DateCriterion and DateTimeCriterion compare the date part of a column
//     and understand today/yesterday/this_week/last_week
//   - LookupCriterion filters a foreign key by id or by display text through
//     a sub-query on the related table
//   - InCriterion wraps any criterion in "field IN (SELECT pk ...)"
//   - AndCriterion and OrCriterion compose children
//
// BuildFilter returns nil when the criterion is not engaged (value absent or
// not applicable for the condition). Callers skip such criteria instead of
// emitting a predicate.
//
// # Basic Usage
//
//	c := criterion.NewString(expr.Column("name"))
//	p, err := c.BuildFilter(criterion.Like, criterion.ValuesOf(map[string]any{"value": "John"}), nil, criterion.Options{})
//	// p.Expression() renders as: name LIKE :c0   with :c0 = "John%"
//
// # Unknown Conditions
//
// A condition outside the mapping table yields the identity predicate.
// Set Options.OnUnknownCondition to observe it:
//
//	opts := criterion.Options{OnUnknownCondition: func(f expr.Expression, c criterion.Condition) {
//	    logger.Debug("unknown condition", "condition", c)
//	}}
package criterion
