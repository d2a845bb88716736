// Package filter describes filterable fields for a search UI.
//
// A Definition carries what a search form needs to render one field: a
// label, a UI type tag and other hints in a property bag, and the
// conditions the user may pick. A definition may also carry the
// criterion.Criterion that turns the user's choice into a predicate.
//
// Variants:
//
//   - StringFilter: like, =, ≠, in, notIn
//   - NumericFilter: comparisons and between
//   - BooleanFilter: yes/no select, no condition selector
//   - DateFilter, DateTimeFilter: comparisons, between and relative dates
//   - SelectFilter, MultipleFilter: fixed option lists
//   - LookupFilter: autocomplete over a related table
//
// Definitions are registered in a Collection under a unique alias:
//
//	coll, _ := filter.NewCollection()
//	title := filter.NewString()
//	title.SetLabel("Title")
//	title.SetCriterion(b.String("Articles.title"))
//	if err := coll.Add("title", title); err != nil {
//	    // *DuplicateAliasError
//	}
//
// Collection.ViewConfig exports every definition ordered by label and
// marshals to the JSON object the search form consumes. Collection.Criteria
// hands the attached criteria to the predicate assembler.
//
// A Registry maps type names ("string", "lookup", ...) to prototypes and
// hands out copies through New, so that definitions are never shared
// between requests.
package filter
