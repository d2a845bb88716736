package criterion

// Condition is a comparison operator selected for a filter.
type Condition string

const (
	Equal          Condition = "="
	NotEqual       Condition = "!="
	Greater        Condition = ">"
	GreaterOrEqual Condition = ">="
	Less           Condition = "<"
	LessOrEqual    Condition = "<="
	In             Condition = "in"
	NotIn          Condition = "notIn"
	Like           Condition = "like"
	NotLike        Condition = "notLike"
	Between        Condition = "between"
	Today          Condition = "today"
	Yesterday      Condition = "yesterday"
	ThisWeek       Condition = "this_week"
	LastWeek       Condition = "last_week"
)

// Vocabulary lists every known condition in display order.
var Vocabulary = []Condition{
	Equal, NotEqual, Greater, GreaterOrEqual, Less, LessOrEqual,
	In, NotIn, Like, NotLike, Between,
	Today, Yesterday, ThisWeek, LastWeek,
}

// Known reports whether c is part of the vocabulary.
func (c Condition) Known() bool {
	for _, k := range Vocabulary {
		if c == k {
			return true
		}
	}
	return false
}

// IsList reports whether c selects membership in a list (in, notIn).
func (c Condition) IsList() bool {
	return c == In || c == NotIn
}

// IsLike reports whether c is a pattern match (like, notLike).
func (c Condition) IsLike() bool {
	return c == Like || c == NotLike
}

// IsRelativeDate reports whether c ignores the value and compares against
// the current date (today, yesterday, this_week, last_week).
func (c Condition) IsRelativeDate() bool {
	switch c {
	case Today, Yesterday, ThisWeek, LastWeek:
		return true
	}
	return false
}
