package criterion

import "github.com/hugr-lab/searchfilter-go/expr"

// Options tune how a criterion maps a condition to a predicate.
// Zero values mean "not set"; variant defaults fill them in.
type Options struct {
	// Type is the bind type hint for values ("integer", "uuid", "date", ...).
	Type string

	// LikeBefore prepends % to like/notLike values. Defaults to true.
	LikeBefore *bool

	// LikeAfter appends % to like/notLike values. Defaults to true.
	LikeAfter *bool

	// CaseInsensitive switches like/notLike to ILIKE/NOT ILIKE.
	CaseInsensitive bool

	// OnUnknownCondition is called when a condition falls through the
	// mapping table and the no-op predicate is returned.
	OnUnknownCondition func(field expr.Expression, cond Condition)
}

// Flag returns a pointer to b for the optional boolean options.
func Flag(b bool) *bool {
	return &b
}

// withDefaults fills fields unset in o from d. Set fields of o win.
func (o Options) withDefaults(d Options) Options {
	out := d
	if o.Type != "" {
		out.Type = o.Type
	}
	if o.LikeBefore != nil {
		out.LikeBefore = o.LikeBefore
	}
	if o.LikeAfter != nil {
		out.LikeAfter = o.LikeAfter
	}
	out.CaseInsensitive = o.CaseInsensitive || d.CaseInsensitive
	if o.OnUnknownCondition != nil {
		out.OnUnknownCondition = o.OnUnknownCondition
	}
	return out
}

func flagOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
