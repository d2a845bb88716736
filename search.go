package searchfilter

import (
	"cmp"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"

	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/internal/msgpack"
	"github.com/hugr-lab/searchfilter-go/internal/querystring"
)

// SearchAlias is the reserved alias carrying global free-text search.
const SearchAlias = "search"

// nullCondition is sent by the UI for a slot with no condition selected.
const nullCondition = "null"

// Params is the wire form of a search request: three maps correlated by
// slot. Fields maps a slot to a filter alias, Conditions maps it to a
// condition and Values maps it to sub-key values, each a scalar or a list.
//
// As a query string: f[0]=title&c[0]=like&v[0][value][]=First.
type Params struct {
	Fields     map[string]string         `json:"f" msgpack:"f"`
	Conditions map[string]string         `json:"c" msgpack:"c"`
	Values     map[string]map[string]any `json:"v" msgpack:"v"`
}

// ParseQuery decodes Params from a raw query string.
func ParseQuery(raw string) (Params, error) {
	m, err := querystring.Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return ParamsFromMap(m)
}

// ParamsFromValues decodes Params from parsed query values.
func ParamsFromValues(values url.Values) (Params, error) {
	return ParamsFromMap(querystring.FromValues(values))
}

// DecodeParams decodes Params from a MessagePack document with "f", "c"
// and "v" keys.
func DecodeParams(data []byte) (Params, error) {
	var p Params
	if err := msgpack.Decode(data, &p); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return p, nil
}

// ParamsFromMap extracts Params from an expanded query map. Keys other than
// f, c and v are ignored.
func ParamsFromMap(m map[string]any) (Params, error) {
	var p Params
	var err error
	if p.Fields, err = stringMap("f", m["f"]); err != nil {
		return Params{}, err
	}
	if p.Conditions, err = stringMap("c", m["c"]); err != nil {
		return Params{}, err
	}
	if p.Values, err = valueMap(m["v"]); err != nil {
		return Params{}, err
	}
	return p, nil
}

func stringMap(key string, v any) (map[string]string, error) {
	slots, err := slotMap(key, v)
	if err != nil || slots == nil {
		return nil, err
	}
	out := make(map[string]string, len(slots))
	for slot, val := range slots {
		switch s := val.(type) {
		case string:
			out[slot] = s
		case nil:
		default:
			return nil, fmt.Errorf("%w: %s[%s] must be a string", ErrInvalidParams, key, slot)
		}
	}
	return out, nil
}

func valueMap(v any) (map[string]map[string]any, error) {
	slots, err := slotMap("v", v)
	if err != nil || slots == nil {
		return nil, err
	}
	out := make(map[string]map[string]any, len(slots))
	for slot, val := range slots {
		if sub, ok := val.(map[string]any); ok {
			out[slot] = sub
		}
	}
	return out, nil
}

// slotMap accepts a slot-keyed map or a list, whose indexes become slots.
func slotMap(key string, v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return t, nil
	case []any:
		out := make(map[string]any, len(t))
		for i, val := range t {
			out[strconv.Itoa(i)] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be indexed by slot", ErrInvalidParams, key)
	}
}

// ParseSearch decodes a raw query string straight into a search.
func (m *Manager) ParseSearch(raw string) (*criterion.Search, error) {
	p, err := ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	return m.FormatSearchData(p), nil
}

// FormatSearchData correlates the slots of p into a search keyed by alias,
// in slot order.
//
// For every sub-key of a slot's values a single-element list is unwrapped
// to a scalar and a longer list is transposed into positional rows, so
// v[0][from][]=1&v[0][from][]=5 yields rows {from:1} and {from:5}. The
// condition "null" decodes to no condition. An in/notIn selection that is
// not already positional becomes a single row.
func (m *Manager) FormatSearchData(p Params) *criterion.Search {
	search := criterion.NewSearch()

	for _, slot := range sortedSlots(p.Fields) {
		alias := p.Fields[slot]
		if alias == "" {
			m.logger.Debug("Search slot skipped: empty alias", "slot", slot)
			continue
		}

		values := transpose(p.Values[slot])

		cond := criterion.Condition(p.Conditions[slot])
		if cond == nullCondition {
			cond = ""
		}
		if cond.IsList() && (len(values.Keys) > 0 || len(values.Rows) == 0) {
			row := values.Keys
			if row == nil {
				row = map[string]any{}
			}
			values = criterion.Values{Rows: append([]map[string]any{row}, values.Rows...)}
		}

		search.Set(alias, cond, values)
	}

	return search
}

func transpose(raw map[string]any) criterion.Values {
	var out criterion.Values
	for _, key := range sortedSlots(raw) {
		list, isList := asList(raw[key])
		switch {
		case !isList:
			if out.Keys == nil {
				out.Keys = make(map[string]any)
			}
			out.Keys[key] = raw[key]
		case len(list) == 1:
			if out.Keys == nil {
				out.Keys = make(map[string]any)
			}
			out.Keys[key] = list[0]
		case len(list) > 1:
			for i, val := range list {
				for len(out.Rows) <= i {
					out.Rows = append(out.Rows, make(map[string]any))
				}
				out.Rows[i][key] = val
			}
		}
	}
	return out
}

// asList returns the elements of a list value. Maps count as lists of
// their values in slot order.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case map[string]any:
		out := make([]any, 0, len(t))
		for _, k := range sortedSlots(t) {
			out = append(out, t[k])
		}
		return out, true
	}
	return nil, false
}

// sortedSlots orders numeric slots by value, then the rest lexically.
func sortedSlots[V any](m map[string]V) []string {
	return slices.SortedFunc(maps.Keys(m), func(a, b string) int {
		ai, aErr := strconv.Atoi(a)
		bi, bErr := strconv.Atoi(b)
		switch {
		case aErr == nil && bErr == nil:
			return cmp.Compare(ai, bi)
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		}
		return cmp.Compare(a, b)
	})
}

// Finders is a search split into global free text and per-filter entries.
type Finders struct {
	// Search is the global free-text value, empty when none was sent.
	Search string

	// Multiple holds every other entry. Nil when nothing is left.
	Multiple *criterion.Search
}

// FormatFinders separates the reserved "search" alias from search. The
// alias is only extracted when its "value" sub-key is non-empty; otherwise
// it stays with the other entries.
func (m *Manager) FormatFinders(search *criterion.Search) Finders {
	var f Finders
	if search == nil {
		return f
	}

	if e, ok := search.Get(SearchAlias); ok {
		f.Search = searchText(e.Values.Keys["value"])
	}

	rest := criterion.NewSearch()
	for _, e := range search.Entries() {
		if e.Alias == SearchAlias && f.Search != "" {
			continue
		}
		rest.Set(e.Alias, e.Condition, e.Values)
	}
	if rest.Len() > 0 {
		f.Multiple = rest
	}
	return f
}

func searchText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any, map[string]any:
		return ""
	}
	return fmt.Sprint(v)
}
