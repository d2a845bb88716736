package searchfilter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
	"github.com/hugr-lab/searchfilter-go/filter"
)

func TestApply(t *testing.T) {
	m := testManager(t, Config{})
	coll := articleFilters(t, m)
	enc := expr.NewSQLEncoder(nil)

	tests := []struct {
		name   string
		query  string
		sql    string
		values []any
	}{
		{
			name:   "string like",
			query:  "f[0]=title&c[0]=like&v[0][value][]=First",
			sql:    "Articles.title LIKE :c0",
			values: []any{"First%"},
		},
		{
			name:   "numeric between and boolean",
			query:  "f[0]=views&c[0]=between&v[0][from][]=10&v[0][to][]=20&f[1]=published&c[1]==&v[1][value][]=1",
			sql:    "(Articles.views BETWEEN :c0 AND :c1 AND Articles.published = :c2)",
			values: []any{int64(10), int64(20), int64(1)},
		},
		{
			name:   "lookup by ids",
			query:  "f[0]=author_id&c[0]=in&v[0][id][]=1&v[0][id][]=2",
			sql:    "Articles.author_id IN (:c0, :c1)",
			values: []any{int64(1), int64(2)},
		},
		{
			name:   "lookup by text",
			query:  "f[0]=author_id&c[0]=like&v[0][value][]=Jo",
			sql:    "Articles.author_id IN (SELECT Authors.id FROM authors Authors WHERE name LIKE :c0)",
			values: []any{"Jo%"},
		},
		{
			name:   "partial range is not engaged",
			query:  "f[0]=views&c[0]=between&v[0][from][]=10&f[1]=title&c[1]=!=&v[1][value][]=Draft",
			sql:    "Articles.title != :c0",
			values: []any{"Draft"},
		},
		{
			name:   "boolean with null condition",
			query:  "f[0]=published&c[0]=null&v[0][value][]=1",
			sql:    "Articles.published = :c0",
			values: []any{int64(1)},
		},
		{
			name:   "boolean with empty condition",
			query:  "f[0]=published&c[0]=&v[0][value][]=0",
			sql:    "Articles.published = :c0",
			values: []any{int64(0)},
		},
		{
			name:   "boolean without condition",
			query:  "f[0]=published&v[0][value][]=1",
			sql:    "Articles.published = :c0",
			values: []any{int64(1)},
		},
		{
			name:  "not in with blank value",
			query: "f[0]=title&c[0]=notIn&v[0][value][]=",
			sql:   "",
		},
		{
			name:  "unknown alias and missing condition are skipped",
			query: "f[0]=nope&c[0]=like&v[0][value][]=x&f[1]=title&c[1]=null&v[1][value][]=y",
			sql:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := parseSearch(t, m, tt.query)
			where, err := m.Where(coll, search)
			if err != nil {
				t.Fatalf("Where failed: %v", err)
			}
			st := enc.Encode(where)
			if st.SQL != tt.sql {
				t.Errorf("expected '%s', got '%s'", tt.sql, st.SQL)
			}
			if diff := cmp.Diff(tt.values, st.Values()); len(tt.values) > 0 && diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	m := testManager(t, Config{})
	coll := articleFilters(t, m)
	articles, _ := testTables()

	q, err := m.Query(articles, coll, parseSearch(t, m, "f[0]=title&c[0]==&v[0][value][]=First"))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	st := q.SQL(expr.NewSQLEncoder(&expr.EncoderOptions{Placeholder: expr.PlaceholderQuestion}))
	expected := "SELECT * FROM articles Articles WHERE Articles.title = ?"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}
	if diff := cmp.Diff([]any{"First"}, st.Args()); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyGlobalSearch(t *testing.T) {
	search := criterion.NewOr(
		criterion.NewString(expr.Column("Articles.title")),
		criterion.NewString(expr.Column("Articles.body")),
	)
	m := testManager(t, Config{
		SearchCriterion: search,
		FilterOptions:   criterion.Options{LikeBefore: criterion.Flag(true)},
	})
	coll := articleFilters(t, m)

	where, err := m.Where(coll, parseSearch(t, m, "f[0]=search&c[0]=like&v[0][value][]=john&f[1]=views&c[1]=>&v[1][value][]=5"))
	if err != nil {
		t.Fatalf("Where failed: %v", err)
	}

	st := expr.NewSQLEncoder(nil).Encode(where)
	expected := "((Articles.title LIKE :c0 OR Articles.body LIKE :c1) AND Articles.views > :c2)"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}
	if diff := cmp.Diff([]any{"%john%", "%john%", int64(5)}, st.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	// Without a search criterion the text is ignored
	m = testManager(t, Config{})
	where, err = m.Where(coll, parseSearch(t, m, "f[0]=search&c[0]=like&v[0][value][]=john"))
	if err != nil {
		t.Fatalf("Where failed: %v", err)
	}
	if where != nil {
		t.Errorf("expected no predicate, got %s", expr.NewSQLEncoder(nil).Encode(where).SQL)
	}
}

func TestApplyParseError(t *testing.T) {
	m := testManager(t, Config{})
	coll := articleFilters(t, m)

	_, err := m.Where(coll, parseSearch(t, m, "f[0]=published_on&c[0]==&v[0][value][]=31/12/2024"))
	var perr *criterion.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Value != "31/12/2024" {
		t.Errorf("expected value '31/12/2024', got '%s'", perr.Value)
	}
}

type panicCriterion struct{}

func (panicCriterion) IsApplicable(any, criterion.Condition) bool { return true }

func (panicCriterion) BuildFilter(criterion.Condition, criterion.Values, *criterion.Search, criterion.Options) (*criterion.Predicate, error) {
	panic("broken criterion")
}

func TestApplyRecoversPanics(t *testing.T) {
	m := testManager(t, Config{})
	coll := m.NewCollection()
	def := filter.NewString()
	def.SetCriterion(panicCriterion{})
	if err := coll.Add("title", def); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	_, err := m.Where(coll, parseSearch(t, m, "f[0]=title&c[0]=like&v[0][value][]=x"))
	if !errors.Is(err, ErrCriterionPanic) {
		t.Fatalf("expected ErrCriterionPanic, got %v", err)
	}
}
