package criterion

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hugr-lab/searchfilter-go/expr"
)

func TestCompositeCriteria(t *testing.T) {
	a := NewString(expr.Column("a"))
	b := NewString(expr.Column("b"))

	tests := []struct {
		name      string
		criterion Criterion
		sql       string
	}{
		{"and", NewAnd(a, b), "(a LIKE :c0 AND b LIKE :c1)"},
		{"or", NewOr(a, b), "(a LIKE :c0 OR b LIKE :c1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.criterion.BuildFilter(Like, value("john"), nil, Options{})
			if err != nil {
				t.Fatalf("BuildFilter failed: %v", err)
			}
			if len(p.Parts) != 2 {
				t.Fatalf("expected 2 parts, got %d", len(p.Parts))
			}
			st := render(p)
			if st.SQL != tt.sql {
				t.Errorf("expected '%s', got '%s'", tt.sql, st.SQL)
			}
			if diff := cmp.Diff([]any{"john%", "john%"}, st.Values()); diff != "" {
				t.Errorf("bindings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompositeDropsDisengagedChildren(t *testing.T) {
	c := NewOr(
		NewString(expr.Column("title")),
		NewNumeric(expr.Column("views")),
	)

	// A range bundle has no "value": the string child drops out
	p, err := c.BuildFilter(Between, ValuesOf(map[string]any{"from": 1, "to": 9}), nil, Options{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	if len(p.Parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(p.Parts))
	}
	if got := render(p).SQL; got != "views BETWEEN :c0 AND :c1" {
		t.Errorf("unexpected SQL: %s", got)
	}
}

func TestCompositeEmpty(t *testing.T) {
	children := []Criterion{NewString(expr.Column("a")), NewString(expr.Column("b"))}

	and, err := NewAnd(children...).BuildFilter(Like, value(""), nil, Options{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	if and == nil || !and.Empty() {
		t.Errorf("expected empty AND composite, got %#v", and)
	}

	or, err := NewOr(children...).BuildFilter(Like, value(""), nil, Options{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	if or != nil {
		t.Errorf("expected nil OR composite, got %#v", or)
	}

	// Neither contributes to a query
	q := expr.NewQuery(testTable{name: "t", alias: "T", pk: "id"})
	if _, err := Apply(q, NewAnd(children...), Like, value(""), nil, Options{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if q.Conditions() != nil {
		t.Error("expected no conditions")
	}
}

func TestCompositeIsApplicable(t *testing.T) {
	text := NewString(expr.Column("title"))
	lookup := newLookup()

	// Applicable as soon as one child is, for AND as well as OR
	and := NewAnd(text, lookup)
	or := NewOr(text, lookup)
	bundle := map[string]any{"id": 1}

	for _, c := range []Criterion{and, or} {
		if !c.IsApplicable(bundle, Equal) {
			t.Errorf("%T: expected applicable when one child is", c)
		}
		if c.IsApplicable("", Equal) {
			t.Errorf("%T: expected not applicable when no child is", c)
		}
	}
}

func TestCompositeNested(t *testing.T) {
	c := NewAnd(
		NewOr(NewString(expr.Column("a")), NewString(expr.Column("b"))),
		NewString(expr.Column("c")),
	)

	p, err := c.BuildFilter(Equal, value("x"), nil, Options{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	expected := "((a = :c0 OR b = :c1) AND c = :c2)"
	if got := render(p).SQL; got != expected {
		t.Errorf("expected '%s', got '%s'", expected, got)
	}
}

func TestCompositePropagatesErrors(t *testing.T) {
	c := NewOr(NewString(expr.Column("title")), NewDate(expr.Column("created"), ""))

	_, err := c.BuildFilter(Equal, value("not-a-date"), nil, Options{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestBuilder(t *testing.T) {
	var b Builder

	c := b.Or(
		b.String("Articles.title"),
		b.Lookup("Articles.author_id", authors, b.String("name")),
		b.And(b.Numeric("Articles.views"), b.Bool("Articles.published")),
	)

	p, err := c.BuildFilter(Like, value("Jo"), nil, Options{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	st := render(p)
	expected := "(Articles.title LIKE :c0 OR Articles.author_id IN (SELECT Authors.id FROM authors Authors WHERE name LIKE :c1) OR " +
		"(Articles.views LIKE :c2 AND Articles.published = :c3))"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}

	if b.Date("d", "").Format() != DefaultDateFormat {
		t.Error("expected default date format")
	}
	if b.DateTime("d", "").Format() != DefaultDateTimeFormat {
		t.Error("expected default date-time format")
	}
	if _, ok := b.In("Articles.id", authors, b.String("name")).criterion.(*StringCriterion); !ok {
		t.Error("expected inner string criterion")
	}
}
