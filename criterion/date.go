package criterion

import (
	"fmt"
	"time"

	"github.com/hugr-lab/searchfilter-go/expr"
)

const (
	// DefaultDateFormat is the input layout of DateCriterion values.
	DefaultDateFormat = time.DateOnly
	// DefaultDateTimeFormat is the input layout of DateTimeCriterion values.
	DefaultDateTimeFormat = "2006-01-02T15:04"

	dateTimeMinutes = "2006-01-02 15:04"

	dateBindType = "date"
)

// ParseError reports a date value that does not match the configured layout.
type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q with layout %q: %v", e.Value, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DateCriterion compares the date part of a column. Values are parsed with
// the configured layout; a value that does not parse is an error.
type DateCriterion struct {
	field  expr.Expression
	format string
	parse  func(layout, value string) (time.Time, error)
}

// NewDate creates a date criterion on field. An empty format selects
// DefaultDateFormat.
func NewDate(field expr.Expression, format string) *DateCriterion {
	if format == "" {
		format = DefaultDateFormat
	}
	return &DateCriterion{
		field:  field,
		format: format,
		parse:  parseDate,
	}
}

// DateTimeCriterion is a DateCriterion whose values carry a time of day.
type DateTimeCriterion struct {
	*DateCriterion
}

// NewDateTime creates a date-time criterion on field. An empty format
// selects DefaultDateTimeFormat.
func NewDateTime(field expr.Expression, format string) *DateTimeCriterion {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	c := NewDate(field, format)
	c.parse = parseDateTime
	return &DateTimeCriterion{DateCriterion: c}
}

func parseDate(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

func parseDateTime(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, time.Local)
}

// Field returns the filtered field.
func (c *DateCriterion) Field() expr.Expression { return c.field }

// Format returns the input layout.
func (c *DateCriterion) Format() string { return c.format }

// Shape implements Shaper.
func (c *DateCriterion) Shape(cond Condition) Shape {
	switch {
	case cond == Between:
		return ShapeDateRange
	case cond.IsRelativeDate():
		return ShapeNone
	}
	return ShapeScalar
}

// IsApplicable implements Criterion.
func (c *DateCriterion) IsApplicable(value any, _ Condition) bool {
	return present(value)
}

// BuildFilter implements Criterion.
func (c *DateCriterion) BuildFilter(cond Condition, values Values, _ *Search, opts Options) (*Predicate, error) {
	// Date-times compare on their date part too; only parsing differs.
	field := expr.Date(c.field)
	mapOpts := Options{Type: dateBindType, OnUnknownCondition: opts.OnUnknownCondition}

	switch cond {
	case Between:
		r := values.DateRange(cond)
		hasFrom, hasTo := c.IsApplicable(r.From, cond), c.IsApplicable(r.To, cond)
		var from, to any
		var err error
		if hasFrom {
			if from, err = c.prepare(r.From); err != nil {
				return nil, err
			}
		}
		if hasTo {
			if to, err = c.prepare(r.To); err != nil {
				return nil, err
			}
		}
		switch {
		case hasFrom && hasTo:
			return leaf(expr.Between(field, expr.Param(from, dateBindType), expr.Param(to, dateBindType))), nil
		case hasFrom:
			return leaf(BuildQueryByCondition(field, GreaterOrEqual, from, mapOpts)), nil
		case hasTo:
			return leaf(BuildQueryByCondition(field, LessOrEqual, to, mapOpts)), nil
		}
		return nil, nil
	case Today:
		return leaf(expr.Eq(field, expr.CurrentDate())), nil
	case Yesterday:
		return leaf(expr.Eq(field, expr.DateAdd(expr.CurrentDate(), -1, "DAY"))), nil
	case ThisWeek:
		return leaf(expr.Eq(expr.YearWeek(field), expr.YearWeek(expr.CurrentDate()))), nil
	case LastWeek:
		return leaf(expr.Eq(expr.YearWeek(field), expr.YearWeek(expr.DateAdd(expr.CurrentDate(), -7, "DAY")))), nil
	}

	value := values.Get("value", cond)
	if !c.IsApplicable(value, cond) {
		return nil, nil
	}
	prepared, err := c.prepare(value)
	if err != nil {
		return nil, err
	}
	return leaf(BuildQueryByCondition(field, cond, prepared, mapOpts)), nil
}

// prepare parses a string value (or each element of a list) into a time.
func (c *DateCriterion) prepare(value any) (any, error) {
	if list, ok := asList(value); ok {
		out := make([]any, len(list))
		for i, v := range list {
			p, err := c.prepare(v)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	}

	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := c.parse(c.format, v)
		if err != nil {
			return nil, &ParseError{Value: v, Layout: c.format, Err: err}
		}
		return t, nil
	}
	s := fmt.Sprint(value)
	t, err := c.parse(c.format, s)
	if err != nil {
		return nil, &ParseError{Value: s, Layout: c.format, Err: err}
	}
	return t, nil
}

// canonical formats times for comparison: date-only under a "date" bind
// type, minute precision otherwise. Other values pass through.
func canonical(value any, bindType string) any {
	t, ok := value.(time.Time)
	if !ok {
		return value
	}
	if bindType == "date" {
		return t.Format(time.DateOnly)
	}
	return t.Format(dateTimeMinutes)
}
