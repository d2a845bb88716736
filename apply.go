package searchfilter

import (
	"fmt"

	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
	"github.com/hugr-lab/searchfilter-go/filter"
	"github.com/hugr-lab/searchfilter-go/internal/recovery"
)

// Apply adds the predicates of every engaged filter in search to q.
//
// Global free text goes to the configured SearchCriterion. Every other
// entry is applied with the criterion attached to the collection filter
// of the same alias. Entries without a criterion are skipped; an empty
// condition is left to the criterion (boolean filters offer none). A date
// that does not parse fails the whole call, as does a criterion that
// panics (ErrCriterionPanic).
func (m *Manager) Apply(q *expr.Query, coll *filter.Collection, search *criterion.Search) (*expr.Query, error) {
	finders := m.FormatFinders(search)

	if finders.Search != "" {
		if m.searchCriterion == nil {
			m.logger.Debug("Global search ignored: no search criterion configured", "text", finders.Search)
		} else {
			values := criterion.ValuesOf(map[string]any{"value": finders.Search})
			var err error
			q, err = m.applyOne(q, SearchAlias, m.searchCriterion, m.searchCondition, values, search)
			if err != nil {
				return nil, err
			}
		}
	}

	if finders.Multiple == nil {
		return q, nil
	}

	criteria := coll.Criteria()
	for _, e := range finders.Multiple.Entries() {
		c, ok := criteria[e.Alias]
		if !ok {
			m.logger.Debug("Search entry skipped: no criterion", "alias", e.Alias)
			continue
		}

		var err error
		q, err = m.applyOne(q, e.Alias, c, e.Condition, e.Values, finders.Multiple)
		if err != nil {
			return nil, err
		}
	}

	return q, nil
}

func (m *Manager) applyOne(q *expr.Query, alias string, c criterion.Criterion, cond criterion.Condition, values criterion.Values, search *criterion.Search) (*expr.Query, error) {
	out, err := recovery.RecoverToValue(m.logger, "criterion "+alias, func() (*expr.Query, error) {
		return criterion.Apply(q, c, cond, values, search, m.opts)
	})
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", alias, err)
	}
	return out, nil
}

// Where returns the combined predicate for search, or nil when no filter
// is engaged.
func (m *Manager) Where(coll *filter.Collection, search *criterion.Search) (expr.Expression, error) {
	q, err := m.Apply(expr.NewQuery(nil), coll, search)
	if err != nil {
		return nil, err
	}
	return q.Conditions(), nil
}

// Query returns a SELECT over table filtered by search.
//
// Example:
//
//	q, err := m.Query(articles, coll, search)
//	stmt := q.SQL(expr.NewSQLEncoder(&expr.EncoderOptions{Placeholder: expr.PlaceholderQuestion}))
//	rows, err := db.QueryContext(ctx, stmt.SQL, stmt.Args()...)
func (m *Manager) Query(table expr.Source, coll *filter.Collection, search *criterion.Search) (*expr.Query, error) {
	return m.Apply(expr.NewQuery(table), coll, search)
}
