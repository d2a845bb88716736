package searchfilter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
	"github.com/hugr-lab/searchfilter-go/filter"
)

func TestNewManagerDefaults(t *testing.T) {
	m := testManager(t, Config{})

	if diff := cmp.Diff([]string{"id", "password", "created", "modified"}, m.FieldBlacklist()); diff != "" {
		t.Errorf("FieldBlacklist mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name", "title", "id"}, m.DefaultLookupFields()); diff != "" {
		t.Errorf("DefaultLookupFields mismatch (-want +got):\n%s", diff)
	}

	want := []string{"boolean", "date", "datetime", "lookup", "multiple", "numeric", "select", "string"}
	if diff := cmp.Diff(want, m.Filters().Names()); diff != "" {
		t.Errorf("Filters mismatch (-want +got):\n%s", diff)
	}

	def, err := m.Filter("select")
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if _, ok := def.(*filter.SelectFilter); !ok {
		t.Errorf("expected *filter.SelectFilter, got %T", def)
	}

	if m.NewCollection().Len() != 0 {
		t.Error("expected empty collection")
	}
}

func TestNewManagerOverrides(t *testing.T) {
	m := testManager(t, Config{
		FieldBlacklist:      []string{},
		DefaultLookupFields: []string{"title"},
	})

	if len(m.FieldBlacklist()) != 0 {
		t.Errorf("expected empty blacklist, got %v", m.FieldBlacklist())
	}
	if diff := cmp.Diff([]string{"title"}, m.DefaultLookupFields()); diff != "" {
		t.Errorf("DefaultLookupFields mismatch (-want +got):\n%s", diff)
	}

	lf := m.DefaultLookupFields()
	lf[0] = "changed"
	if m.DefaultLookupFields()[0] != "title" {
		t.Error("expected DefaultLookupFields to return a copy")
	}
}

func TestNewManagerInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"empty lookup field", Config{DefaultLookupFields: []string{"name", ""}}},
		{"unknown search condition", Config{
			SearchCriterion: criterion.NewString(expr.Column("title")),
			SearchCondition: "contains",
		}},
		{"search condition without criterion", Config{SearchCondition: criterion.Like}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManager(tt.config)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewManagerMissingFilter(t *testing.T) {
	_, err := NewManager(Config{
		Filters: map[string]filter.Constructor{
			"string": func() filter.Definition { return filter.NewString() },
		},
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	var missing *filter.MissingFilterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFilterError, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not be found") {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestNewManagerLogLevel(t *testing.T) {
	level := slog.LevelDebug
	m, err := NewManager(Config{LogLevel: &level})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if !m.logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected debug logging to be enabled")
	}
}

func TestUnknownConditionHook(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(t, Config{
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	coll := articleFilters(t, m)

	search := criterion.NewSearch(criterion.Entry{
		Alias:     "title",
		Condition: "contains",
		Values:    criterion.ValuesOf(map[string]any{"value": "x"}),
	})
	where, err := m.Where(coll, search)
	if err != nil {
		t.Fatalf("Where failed: %v", err)
	}
	if where != nil {
		t.Errorf("expected no predicate, got %#v", where)
	}
	if !strings.Contains(buf.String(), "Unknown condition ignored") || !strings.Contains(buf.String(), "Articles.title") {
		t.Errorf("expected unknown condition to be logged, got %q", buf.String())
	}

	var seen []criterion.Condition
	m = testManager(t, Config{
		OnUnknownCondition: func(_ expr.Expression, cond criterion.Condition) {
			seen = append(seen, cond)
		},
	})
	if _, err := m.Where(coll, search); err != nil {
		t.Fatalf("Where failed: %v", err)
	}
	if diff := cmp.Diff([]criterion.Condition{"contains"}, seen); diff != "" {
		t.Errorf("hook calls mismatch (-want +got):\n%s", diff)
	}

	// A panicking hook is logged, not propagated
	buf.Reset()
	m = testManager(t, Config{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		OnUnknownCondition: func(expr.Expression, criterion.Condition) {
			panic("hook failed")
		},
	})
	if _, err := m.Where(coll, search); err != nil {
		t.Fatalf("Where failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Hook panicked") {
		t.Errorf("expected hook panic to be logged, got %q", buf.String())
	}
}
