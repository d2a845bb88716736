package criterion

import "github.com/hugr-lab/searchfilter-go/expr"

// AndCriterion requires every engaged child criterion to match.
type AndCriterion struct {
	criteria []Criterion
}

// NewAnd creates an AND composite.
func NewAnd(criteria ...Criterion) *AndCriterion {
	return &AndCriterion{criteria: criteria}
}

// Criteria returns the children.
func (c *AndCriterion) Criteria() []Criterion { return c.criteria }

// IsApplicable implements Criterion.
func (c *AndCriterion) IsApplicable(value any, cond Condition) bool {
	return anyChildApplicable(c.criteria, value, cond)
}

// BuildFilter implements Criterion. Children that are not engaged are
// dropped; an empty result contributes nothing.
func (c *AndCriterion) BuildFilter(cond Condition, values Values, search *Search, opts Options) (*Predicate, error) {
	parts, err := buildChildren(c.criteria, cond, values, search, opts)
	if err != nil {
		return nil, err
	}
	return &Predicate{Conjunction: expr.TypeConjunctionAnd, Parts: parts}, nil
}

// OrCriterion matches when any engaged child criterion matches.
type OrCriterion struct {
	criteria []Criterion
}

// NewOr creates an OR composite.
func NewOr(criteria ...Criterion) *OrCriterion {
	return &OrCriterion{criteria: criteria}
}

// Criteria returns the children.
func (c *OrCriterion) Criteria() []Criterion { return c.criteria }

// IsApplicable implements Criterion.
func (c *OrCriterion) IsApplicable(value any, cond Condition) bool {
	return anyChildApplicable(c.criteria, value, cond)
}

// BuildFilter implements Criterion. Returns nil when no child is engaged.
func (c *OrCriterion) BuildFilter(cond Condition, values Values, search *Search, opts Options) (*Predicate, error) {
	parts, err := buildChildren(c.criteria, cond, values, search, opts)
	if err != nil || len(parts) == 0 {
		return nil, err
	}
	return &Predicate{Conjunction: expr.TypeConjunctionOr, Parts: parts}, nil
}

// anyChildApplicable is the applicability rule of both composites: true as
// soon as one child is applicable, for AND as well as OR.
func anyChildApplicable(criteria []Criterion, value any, cond Condition) bool {
	for _, c := range criteria {
		if c.IsApplicable(value, cond) {
			return true
		}
	}
	return false
}

func buildChildren(criteria []Criterion, cond Condition, values Values, search *Search, opts Options) ([]expr.Expression, error) {
	var parts []expr.Expression
	for _, c := range criteria {
		p, err := c.BuildFilter(cond, values, search, opts)
		if err != nil {
			return nil, err
		}
		if p.Empty() {
			continue
		}
		parts = append(parts, p.Expression())
	}
	return parts, nil
}
