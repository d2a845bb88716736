package expr

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testSource struct {
	table, alias, pk string
}

func (s testSource) TableName() string  { return s.table }
func (s testSource) Alias() string      { return s.alias }
func (s testSource) PrimaryKey() string { return s.pk }

func TestEncodeComparisonOperators(t *testing.T) {
	tests := []struct {
		opType   ExpressionType
		expected string
	}{
		{TypeCompareEqual, "col = :c0"},
		{TypeCompareNotEqual, "col != :c0"},
		{TypeCompareLessThan, "col < :c0"},
		{TypeCompareGreaterThan, "col > :c0"},
		{TypeCompareLessThanOrEqual, "col <= :c0"},
		{TypeCompareGreaterThanOrEqual, "col >= :c0"},
		{TypeCompareLike, "col LIKE :c0"},
		{TypeCompareNotLike, "col NOT LIKE :c0"},
		{TypeCompareILike, "col ILIKE :c0"},
		{TypeCompareNotILike, "col NOT ILIKE :c0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.opType), func(t *testing.T) {
			st := NewSQLEncoder(nil).Encode(Compare(tt.opType, Column("col"), Param(42, "integer")))
			if st.SQL != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, st.SQL)
			}
			if len(st.Bindings) != 1 {
				t.Fatalf("expected 1 binding, got %d", len(st.Bindings))
			}
			if st.Bindings[0].Value != int64(42) {
				t.Errorf("expected int64 42, got %#v", st.Bindings[0].Value)
			}
		})
	}
}

func TestEncodeNullComparison(t *testing.T) {
	enc := NewSQLEncoder(nil)
	if got := enc.Encode(Eq(Column("col"), nil)).SQL; got != "col IS NULL" {
		t.Errorf("expected 'col IS NULL', got '%s'", got)
	}
	if got := enc.Encode(Compare(TypeCompareNotEqual, Column("col"), nil)).SQL; got != "col IS NOT NULL" {
		t.Errorf("expected 'col IS NOT NULL', got '%s'", got)
	}
}

func TestEncodeIn(t *testing.T) {
	enc := NewSQLEncoder(nil)

	st := enc.Encode(In(Column("Articles.author_id"), []any{"1", "2"}, "integer"))
	if st.SQL != "Articles.author_id IN (:c0, :c1)" {
		t.Errorf("unexpected SQL: %s", st.SQL)
	}
	if diff := cmp.Diff([]any{int64(1), int64(2)}, st.Values()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}

	st = enc.Encode(NotIn(Column("status"), []any{"draft"}, "string"))
	if st.SQL != "status NOT IN (:c0)" {
		t.Errorf("unexpected SQL: %s", st.SQL)
	}

	// Empty lists render nothing rather than an always-false predicate
	if got := enc.Encode(In(Column("status"), nil, "string")).SQL; got != "" {
		t.Errorf("expected empty SQL for empty IN list, got '%s'", got)
	}
}

func TestEncodeSubquery(t *testing.T) {
	authors := testSource{table: "authors", alias: "Authors", pk: "id"}
	where := Compare(TypeCompareLike, Column("name"), Param("John%", "string"))

	st := NewSQLEncoder(nil).Encode(InSubquery(Column("Articles.author_id"), SelectFrom(authors, where)))

	expected := "Articles.author_id IN (SELECT Authors.id FROM authors Authors WHERE name LIKE :c0)"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}
	if st.Bindings[0].Value != "John%" {
		t.Errorf("expected binding 'John%%', got %#v", st.Bindings[0].Value)
	}
}

func TestEncodeBetween(t *testing.T) {
	st := NewSQLEncoder(nil).Encode(Between(Column("views"), Param("10", "integer"), Param("20", "integer")))
	if st.SQL != "views BETWEEN :c0 AND :c1" {
		t.Errorf("unexpected SQL: %s", st.SQL)
	}
	if diff := cmp.Diff([]any{int64(10), int64(20)}, st.Values()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeConjunction(t *testing.T) {
	a := Compare(TypeCompareLike, Column("a"), Param("john%", "string"))
	b := Compare(TypeCompareLike, Column("b"), Param("john%", "string"))

	tests := []struct {
		name     string
		expr     Expression
		expected string
	}{
		{"and", And(a, b), "(a LIKE :c0 AND b LIKE :c1)"},
		{"or", Or(a, b), "(a LIKE :c0 OR b LIKE :c1)"},
		{"single child", And(a), "a LIKE :c0"},
		{"identity skipped", And(Identity(), a, Identity()), "a LIKE :c0"},
		{"empty", Or(), ""},
		{"nested", And(Or(a, b), Eq(Column("c"), Param(1, "integer"))), "((a LIKE :c0 OR b LIKE :c1) AND c = :c2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSQLEncoder(nil).Encode(tt.expr).SQL
			if got != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestEncodeFunctions(t *testing.T) {
	field := Column("created")
	tests := []struct {
		name     string
		expr     Expression
		expected string
	}{
		{"date", Date(field), "DATE(created)"},
		{"date add", DateAdd(CurrentDate(), -1, "DAY"), "DATE_ADD(CURRENT_DATE, INTERVAL -1 DAY)"},
		{"extract", Extract("YEAR", field), "EXTRACT(YEAR FROM created)"},
		{"cast", Cast(field, "varchar"), "CAST(created AS varchar)"},
		{
			"year week",
			YearWeek(Date(field)),
			"CONCAT(CAST(EXTRACT(YEAR FROM DATE(created)) AS varchar), CAST(EXTRACT(WEEK FROM DATE(created)) AS varchar))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSQLEncoder(nil).Encode(tt.expr).SQL
			if got != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestEncodeQuotesIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"title", "title"},
		{"Articles.title", "Articles.title"},
		{"Events.date", `Events."date"`},
		{"my col", `"my col"`},
		{"user", `"user"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSQLEncoder(nil).Encode(Column(tt.name)).SQL; got != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestEncodeColumnMapping(t *testing.T) {
	enc := NewSQLEncoder(&EncoderOptions{
		ColumnMapping:     map[string]string{"title": "headline"},
		ColumnExpressions: map[string]string{"full_name": "first_name || ' ' || last_name"},
	})

	st := enc.Encode(And(
		Eq(Column("title"), Param("Go", "string")),
		Compare(TypeCompareLike, Column("full_name"), Param("Jo%", "string")),
	))

	expected := "(headline = :c0 AND first_name || ' ' || last_name LIKE :c1)"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}
}

func TestPlaceholderStyles(t *testing.T) {
	pred := And(Eq(Column("a"), Param(1, "integer")), Eq(Column("b"), Param(2, "integer")))

	tests := []struct {
		style    PlaceholderStyle
		expected string
	}{
		{PlaceholderColon, "(a = :c0 AND b = :c1)"},
		{PlaceholderQuestion, "(a = ? AND b = ?)"},
		{PlaceholderDollar, "(a = $1 AND b = $2)"},
	}

	for _, tt := range tests {
		st := NewSQLEncoder(&EncoderOptions{Placeholder: tt.style}).Encode(pred)
		if st.SQL != tt.expected {
			t.Errorf("expected '%s', got '%s'", tt.expected, st.SQL)
		}
		if len(st.Args()) != 2 {
			t.Errorf("expected 2 args, got %d", len(st.Args()))
		}
	}
}

func TestQuerySQL(t *testing.T) {
	articles := testSource{table: "articles", alias: "Articles", pk: "id"}

	q := NewQuery(articles)
	if got := q.SQL(NewSQLEncoder(nil)).SQL; got != "SELECT * FROM articles Articles" {
		t.Errorf("unexpected SQL for empty query: %s", got)
	}

	q.Where(nil, Identity())
	q.Where(Eq(Column("Articles.published"), Param(true, "integer")))
	q.Where(Compare(TypeCompareLike, Column("Articles.title"), Param("Go%", "string")))

	st := q.SQL(NewSQLEncoder(nil))
	expected := "SELECT * FROM articles Articles WHERE (Articles.published = :c0 AND Articles.title LIKE :c1)"
	if st.SQL != expected {
		t.Errorf("expected '%s', got '%s'", expected, st.SQL)
	}
	if diff := cmp.Diff([]any{int64(1), "Go%"}, st.Values()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerce(t *testing.T) {
	day := time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		bindType string
		expected any
	}{
		{"integer string", "10", "integer", int64(10)},
		{"integer float string", "10.7", "integer", int64(10)},
		{"integer junk", "abc", "integer", "abc"},
		{"integer bool", true, "integer", int64(1)},
		{"float string", "1.5", "float", 1.5},
		{"boolean string", "true", "boolean", true},
		{"date", day, "date", "2023-05-01"},
		{"datetime", day, "datetime", "2023-05-01 14:30:00"},
		{"uuid untouched", "0b6f1f2e-8c44-4f0c-9c52-0f1a5a2b7d11", "uuid", "0b6f1f2e-8c44-4f0c-9c52-0f1a5a2b7d11"},
		{"no hint", 7, "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Coerce(tt.value, tt.bindType)); diff != "" {
				t.Errorf("Coerce mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
