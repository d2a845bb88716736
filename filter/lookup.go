package filter

import (
	"github.com/hugr-lab/searchfilter-go/internal/inflect"
)

// Route describes the endpoint that serves autocomplete suggestions for a
// lookup filter.
type Route struct {
	Controller string
	Action     string
	Ext        string
}

// RouteResolver turns a Route into a URL.
type RouteResolver func(Route) string

// DefaultRouteResolver builds "/<dashed-controller>/<action>[.<ext>]".
func DefaultRouteResolver(r Route) string {
	url := "/"
	if r.Controller != "" {
		url += inflect.Dasherize(r.Controller) + "/"
	}
	url += r.Action
	if r.Ext != "" {
		url += "." + r.Ext
	}
	return url
}

// LookupFilter selects rows of a related table through an autocomplete
// widget.
type LookupFilter struct {
	Base
	route        Route
	lookupFields []string
	resolver     RouteResolver
}

// NewLookup returns a lookup filter with its default state.
func NewLookup() *LookupFilter {
	return &LookupFilter{
		Base: newBase(
			map[string]any{
				"type":      "autocomplete",
				"idName":    "id",
				"valueName": "name",
				"query":     "name=%QUERY",
				"wildcard":  "%QUERY",
			},
			Conditions{labelEqual, labelNotEqual, labelIn, labelNotIn, labelLike},
		),
		route:        Route{Action: "autocomplete", Ext: "json"},
		lookupFields: []string{"name", "title", "id"},
	}
}

func (f *LookupFilter) AutocompleteRoute() Route { return f.route }

func (f *LookupFilter) SetAutocompleteRoute(r Route) { f.route = r }

// LookupFields returns the candidate display columns, in preference order.
func (f *LookupFilter) LookupFields() []string {
	return append([]string(nil), f.lookupFields...)
}

func (f *LookupFilter) SetLookupFields(fields []string) {
	f.lookupFields = append([]string(nil), fields...)
}

// SetRouteResolver replaces DefaultRouteResolver.
func (f *LookupFilter) SetRouteResolver(r RouteResolver) { f.resolver = r }

// ViewConfig resolves "autocompleteUrl" on first export unless it was set
// explicitly.
func (f *LookupFilter) ViewConfig() map[string]any {
	if url, _ := f.properties["autocompleteUrl"].(string); url == "" {
		resolve := f.resolver
		if resolve == nil {
			resolve = DefaultRouteResolver
		}
		f.SetProperty("autocompleteUrl", resolve(f.route))
	}
	return f.Base.ViewConfig()
}

func (f *LookupFilter) New() Definition {
	return &LookupFilter{
		Base:         f.clone(),
		route:        f.route,
		lookupFields: f.LookupFields(),
		resolver:     f.resolver,
	}
}
