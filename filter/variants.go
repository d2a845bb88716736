package filter

import (
	"github.com/hugr-lab/searchfilter-go/criterion"
)

// Condition labels shown by the UI.
var (
	labelEqual          = ConditionLabel{criterion.Equal, "="}
	labelNotEqual       = ConditionLabel{criterion.NotEqual, "≠"}
	labelGreater        = ConditionLabel{criterion.Greater, ">"}
	labelGreaterOrEqual = ConditionLabel{criterion.GreaterOrEqual, ">="}
	labelLess           = ConditionLabel{criterion.Less, "<"}
	labelLessOrEqual    = ConditionLabel{criterion.LessOrEqual, "<="}
	labelIn             = ConditionLabel{criterion.In, "In"}
	labelNotIn          = ConditionLabel{criterion.NotIn, "Not In"}
	labelLike           = ConditionLabel{criterion.Like, "Like"}
	labelBetween        = ConditionLabel{criterion.Between, "Between"}
	labelToday          = ConditionLabel{criterion.Today, "Today"}
	labelYesterday      = ConditionLabel{criterion.Yesterday, "Yesterday"}
	labelThisWeek       = ConditionLabel{criterion.ThisWeek, "This week"}
	labelLastWeek       = ConditionLabel{criterion.LastWeek, "Last week"}
)

// Every constructor builds its defaults from scratch so that no two
// definitions share a property bag.

func numericConditions() Conditions {
	return Conditions{
		labelEqual, labelNotEqual,
		labelGreater, labelGreaterOrEqual, labelLess, labelLessOrEqual,
		labelBetween,
	}
}

func dateConditions() Conditions {
	return append(numericConditions(), labelToday, labelYesterday, labelThisWeek, labelLastWeek)
}

// StringFilter is a free-text filter.
type StringFilter struct{ Base }

// NewString returns a string filter with its default state.
func NewString() *StringFilter {
	return &StringFilter{Base: newBase(
		map[string]any{"type": "string"},
		Conditions{labelLike, labelEqual, labelNotEqual, labelIn, labelNotIn},
	)}
}

// Type returns the UI type tag.
func (f *StringFilter) Type() string {
	t, _ := f.properties["type"].(string)
	return t
}

// SetType changes the UI type tag.
func (f *StringFilter) SetType(t string) { f.SetProperty("type", t) }

func (f *StringFilter) New() Definition { return &StringFilter{Base: f.clone()} }

// NumericFilter compares numbers.
type NumericFilter struct{ Base }

// NewNumeric returns a numeric filter with its default state.
func NewNumeric() *NumericFilter {
	return &NumericFilter{Base: newBase(map[string]any{"type": "numeric"}, numericConditions())}
}

func (f *NumericFilter) New() Definition { return &NumericFilter{Base: f.clone()} }

// BooleanFilter is a yes/no select with no condition selector.
type BooleanFilter struct {
	Base
	options Options
}

// NewBoolean returns a boolean filter with its default state.
func NewBoolean() *BooleanFilter {
	return &BooleanFilter{
		Base:    newBase(map[string]any{"type": "select"}, Conditions{}),
		options: Options{{Value: "1", Label: "Yes"}, {Value: "0", Label: "No"}},
	}
}

func (f *BooleanFilter) Options() Options { return f.options.clone() }

func (f *BooleanFilter) SetOptions(opts Options) { f.options = opts.clone() }

// ViewConfig adds the options and always exports an empty condition map.
func (f *BooleanFilter) ViewConfig() map[string]any {
	out := f.Base.ViewConfig()
	out["options"] = f.options.clone()
	out["conditions"] = Conditions{}
	return out
}

func (f *BooleanFilter) New() Definition {
	return &BooleanFilter{Base: f.clone(), options: f.options.clone()}
}

// DateFilter compares calendar dates. The date format is a UI hint in the
// widget's notation, not a Go layout.
type DateFilter struct{ Base }

// NewDate returns a date filter with its default state.
func NewDate() *DateFilter {
	return &DateFilter{Base: newBase(
		map[string]any{"dateFormat": "DD/MM/YYYY", "type": "date"},
		dateConditions(),
	)}
}

func (f *DateFilter) DateFormat() string {
	s, _ := f.properties["dateFormat"].(string)
	return s
}

func (f *DateFilter) SetDateFormat(format string) { f.SetProperty("dateFormat", format) }

func (f *DateFilter) New() Definition { return &DateFilter{Base: f.clone()} }

// DateTimeFilter compares dates entered with a time of day.
type DateTimeFilter struct{ DateFilter }

// NewDateTime returns a date-time filter with its default state.
func NewDateTime() *DateTimeFilter {
	return &DateTimeFilter{DateFilter{Base: newBase(
		map[string]any{"dateFormat": "DD/MM/YYYY hh:mm A", "type": "datetime"},
		dateConditions(),
	)}}
}

func (f *DateTimeFilter) New() Definition {
	return &DateTimeFilter{DateFilter{Base: f.clone()}}
}

// SelectFilter picks one or more values from a fixed list.
type SelectFilter struct {
	Base
	options Options
}

// NewSelect returns a select filter with its default state.
func NewSelect() *SelectFilter {
	return &SelectFilter{Base: newBase(
		map[string]any{"type": "select"},
		Conditions{labelEqual, labelNotEqual, labelIn, labelNotIn},
	)}
}

func (f *SelectFilter) Options() Options { return f.options.clone() }

func (f *SelectFilter) SetOptions(opts Options) { f.options = opts.clone() }

// SetEmpty sets the label of the "no selection" entry.
func (f *SelectFilter) SetEmpty(label string) { f.SetProperty("empty", label) }

func (f *SelectFilter) ViewConfig() map[string]any {
	out := f.Base.ViewConfig()
	out["options"] = f.options.clone()
	return out
}

func (f *SelectFilter) New() Definition {
	return &SelectFilter{Base: f.clone(), options: f.options.clone()}
}

// MultipleFilter selects several values at once.
type MultipleFilter struct{ Base }

// NewMultiple returns a multiple filter with its default state.
func NewMultiple() *MultipleFilter {
	return &MultipleFilter{Base: newBase(
		map[string]any{"type": "multiple"},
		Conditions{labelIn, labelNotIn},
	)}
}

func (f *MultipleFilter) New() Definition { return &MultipleFilter{Base: f.clone()} }
