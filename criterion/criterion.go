package criterion

import (
	"fmt"

	"github.com/hugr-lab/searchfilter-go/expr"
)

// Criterion turns a condition and a value bundle into a predicate.
type Criterion interface {
	// IsApplicable reports whether value counts as present for cond.
	IsApplicable(value any, cond Condition) bool

	// BuildFilter returns the predicate for cond and values, or nil when the
	// criterion is not engaged. search is the whole decoded request.
	BuildFilter(cond Condition, values Values, search *Search, opts Options) (*Predicate, error)
}

// Predicate is what a criterion contributes to a query: one expression for
// leaf criteria, the surviving child expressions for composites.
type Predicate struct {
	// Conjunction combines Parts: TypeConjunctionAnd or TypeConjunctionOr.
	Conjunction expr.ExpressionType
	Parts       []expr.Expression
}

func leaf(e expr.Expression) *Predicate {
	return &Predicate{Conjunction: expr.TypeConjunctionAnd, Parts: []expr.Expression{e}}
}

// Empty reports whether p contributes nothing.
func (p *Predicate) Empty() bool {
	if p == nil {
		return true
	}
	for _, e := range p.Parts {
		if !expr.IsIdentity(e) {
			return false
		}
	}
	return true
}

// Expression combines the parts into a single expression.
func (p *Predicate) Expression() expr.Expression {
	if p == nil || len(p.Parts) == 0 {
		return expr.Identity()
	}
	if len(p.Parts) == 1 {
		return p.Parts[0]
	}
	if p.Conjunction == expr.TypeConjunctionOr {
		return expr.Or(p.Parts...)
	}
	return expr.And(p.Parts...)
}

// Apply builds c's predicate and adds it to q's WHERE clause.
func Apply(q *expr.Query, c Criterion, cond Condition, values Values, search *Search, opts Options) (*expr.Query, error) {
	p, err := c.BuildFilter(cond, values, search, opts)
	if err != nil {
		return q, err
	}
	if p.Empty() {
		return q, nil
	}
	return q.Where(p.Expression()), nil
}

var comparisonTypes = map[Condition]expr.ExpressionType{
	Equal:          expr.TypeCompareEqual,
	NotEqual:       expr.TypeCompareNotEqual,
	Greater:        expr.TypeCompareGreaterThan,
	GreaterOrEqual: expr.TypeCompareGreaterThanOrEqual,
	Less:           expr.TypeCompareLessThan,
	LessOrEqual:    expr.TypeCompareLessThanOrEqual,
}

// BuildQueryByCondition maps a condition and value to a predicate on field.
//
// Equality against a list becomes IN / NOT IN, scalar comparisons bind the
// value (dates formatted first), in/notIn take lists, like/notLike wrap the
// value in % per the LikeBefore/LikeAfter options. An unrecognized condition
// yields the identity predicate and triggers opts.OnUnknownCondition.
func BuildQueryByCondition(field expr.Expression, cond Condition, value any, opts Options) expr.Expression {
	list, isList := asList(value)

	switch cond {
	case Equal:
		if isList {
			return expr.In(field, list, opts.Type)
		}
		return expr.Compare(comparisonTypes[cond], field, operand(value, opts.Type))
	case NotEqual:
		if isList {
			return expr.NotIn(field, list, opts.Type)
		}
		return expr.Compare(comparisonTypes[cond], field, operand(value, opts.Type))
	case Greater, GreaterOrEqual, Less, LessOrEqual:
		return expr.Compare(comparisonTypes[cond], field, operand(value, opts.Type))
	case In:
		if !isList {
			return expr.In(field, []any{value}, opts.Type)
		}
		if anyPresent(list) {
			return expr.In(field, list, opts.Type)
		}
		return expr.Identity()
	case NotIn:
		if isList && anyPresent(list) {
			return expr.NotIn(field, list, opts.Type)
		}
		return expr.Identity()
	case Like, NotLike:
		return likePredicate(field, cond, value, opts)
	}

	if opts.OnUnknownCondition != nil {
		opts.OnUnknownCondition(field, cond)
	}
	return expr.Identity()
}

func likePredicate(field expr.Expression, cond Condition, value any, opts Options) expr.Expression {
	pattern := ""
	if value != nil {
		pattern = fmt.Sprint(value)
	}
	if flagOr(opts.LikeBefore, true) {
		pattern = "%" + pattern
	}
	if flagOr(opts.LikeAfter, true) {
		pattern = pattern + "%"
	}

	t := expr.TypeCompareLike
	switch {
	case cond == NotLike && opts.CaseInsensitive:
		t = expr.TypeCompareNotILike
	case cond == NotLike:
		t = expr.TypeCompareNotLike
	case opts.CaseInsensitive:
		t = expr.TypeCompareILike
	}
	return expr.Compare(t, field, expr.Param(pattern, opts.Type))
}

// operand returns value as the right side of a comparison. Expressions are
// used as-is, nil stays nil, times are formatted for the bind type.
func operand(value any, bindType string) expr.Expression {
	switch v := value.(type) {
	case nil:
		return nil
	case expr.Expression:
		return v
	}
	return expr.Param(canonical(value, bindType), bindType)
}
