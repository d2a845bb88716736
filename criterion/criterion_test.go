package criterion

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hugr-lab/searchfilter-go/expr"
)

type testTable struct {
	name, alias, pk string
}

func (t testTable) TableName() string  { return t.name }
func (t testTable) Alias() string      { return t.alias }
func (t testTable) PrimaryKey() string { return t.pk }

var authors = testTable{name: "authors", alias: "Authors", pk: "id"}

func render(p *Predicate) expr.Statement {
	return expr.NewSQLEncoder(nil).Encode(p.Expression())
}

func value(v any) Values {
	return ValuesOf(map[string]any{"value": v})
}

func TestBuildQueryByCondition(t *testing.T) {
	field := expr.Column("col")

	tests := []struct {
		name     string
		cond     Condition
		value    any
		opts     Options
		sql      string
		bindings []any
	}{
		{"equal scalar", Equal, "a", Options{}, "col = :c0", []any{"a"}},
		{"equal list", Equal, []any{"a", "b"}, Options{}, "col IN (:c0, :c1)", []any{"a", "b"}},
		{"not equal list", NotEqual, []string{"a", "b"}, Options{}, "col NOT IN (:c0, :c1)", []any{"a", "b"}},
		{"not equal scalar", NotEqual, "a", Options{}, "col != :c0", []any{"a"}},
		{"greater", Greater, "5", Options{Type: "integer"}, "col > :c0", []any{int64(5)}},
		{"greater or equal", GreaterOrEqual, 5, Options{Type: "integer"}, "col >= :c0", []any{int64(5)}},
		{"less", Less, "5", Options{}, "col < :c0", []any{"5"}},
		{"less or equal", LessOrEqual, "5", Options{}, "col <= :c0", []any{"5"}},
		{"in list", In, []any{"a", ""}, Options{}, "col IN (:c0, :c1)", []any{"a", ""}},
		{"in scalar", In, "a", Options{}, "col IN (:c0)", []any{"a"}},
		{"in blank list", In, []any{"", nil}, Options{}, "", []any{}},
		{"not in list", NotIn, []any{1, 2}, Options{Type: "integer"}, "col NOT IN (:c0, :c1)", []any{int64(1), int64(2)}},
		{"not in scalar", NotIn, "a", Options{}, "", []any{}},
		{"in empty string", In, []any{""}, Options{}, "", []any{}},
		{"not in empty string", NotIn, []any{""}, Options{}, "", []any{}},
		{"not in blank list", NotIn, []any{"", nil}, Options{}, "", []any{}},
		{"like default", Like, "jo", Options{}, "col LIKE :c0", []any{"%jo%"}},
		{"like prefix", Like, "jo", Options{LikeBefore: Flag(false)}, "col LIKE :c0", []any{"jo%"}},
		{"like exact", Like, "jo", Options{LikeBefore: Flag(false), LikeAfter: Flag(false)}, "col LIKE :c0", []any{"jo"}},
		{"like number", Like, 42, Options{}, "col LIKE :c0", []any{"%42%"}},
		{"not like", NotLike, "jo", Options{}, "col NOT LIKE :c0", []any{"%jo%"}},
		{"ilike", Like, "jo", Options{CaseInsensitive: true}, "col ILIKE :c0", []any{"%jo%"}},
		{"not ilike", NotLike, "jo", Options{CaseInsensitive: true}, "col NOT ILIKE :c0", []any{"%jo%"}},
		{"unknown", Condition("regex"), "jo", Options{}, "", []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := expr.NewSQLEncoder(nil).Encode(BuildQueryByCondition(field, tt.cond, tt.value, tt.opts))
			if st.SQL != tt.sql {
				t.Errorf("expected '%s', got '%s'", tt.sql, st.SQL)
			}
			if diff := cmp.Diff(tt.bindings, st.Values()); diff != "" {
				t.Errorf("bindings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildQueryByConditionUnknownHook(t *testing.T) {
	var calls []Condition
	opts := Options{OnUnknownCondition: func(f expr.Expression, c Condition) {
		calls = append(calls, c)
	}}

	e := BuildQueryByCondition(expr.Column("col"), Condition("regex"), "x", opts)
	if !expr.IsIdentity(e) {
		t.Fatalf("expected identity predicate, got %T", e)
	}
	if diff := cmp.Diff([]Condition{"regex"}, calls); diff != "" {
		t.Errorf("hook calls mismatch (-want +got):\n%s", diff)
	}

	// Known conditions never reach the hook, even when they yield no predicate
	BuildQueryByCondition(expr.Column("col"), In, []any{}, opts)
	if len(calls) != 1 {
		t.Errorf("expected hook not to fire for in, got %d calls", len(calls))
	}
}

func TestApply(t *testing.T) {
	q := expr.NewQuery(testTable{name: "articles", alias: "Articles", pk: "id"})

	q, err := Apply(q, NewString(expr.Column("Articles.title")), Like, value("Go"), nil, Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	// Not engaged: nothing added
	q, err = Apply(q, NewNumeric(expr.Column("Articles.views")), Greater, value(""), nil, Options{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	st := q.SQL(expr.NewSQLEncoder(nil))
	expected := "SELECT * FROM articles Articles WHERE Articles.title LIKE :c0"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}
}

func TestConditionHelpers(t *testing.T) {
	if !In.IsList() || !NotIn.IsList() || Equal.IsList() {
		t.Error("IsList mismatch")
	}
	if !Like.IsLike() || !NotLike.IsLike() || Equal.IsLike() {
		t.Error("IsLike mismatch")
	}
	for _, c := range []Condition{Today, Yesterday, ThisWeek, LastWeek} {
		if !c.IsRelativeDate() {
			t.Errorf("%s should be relative", c)
		}
	}
	if !Between.Known() || Condition("null").Known() {
		t.Error("Known mismatch")
	}
	if len(Vocabulary) != 15 {
		t.Errorf("expected 15 conditions, got %d", len(Vocabulary))
	}
}
