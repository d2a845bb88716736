// Package querystring expands bracketed query keys such as f[0]=title or
// v[0][value][]=First into nested maps.
//
// A named segment ("[0]", "[value]") descends into a map keyed by the
// segment text. An empty segment ("[]") appends to a list. Repeated keys
// keep their order of appearance.
package querystring

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Parse decodes a raw query string.
func Parse(raw string) (map[string]any, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	return FromValues(values), nil
}

// FromValues expands already decoded query values.
func FromValues(values url.Values) map[string]any {
	root := make(map[string]any)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		path := SplitKey(key)
		for _, v := range values[key] {
			set(root, path, v)
		}
	}
	return root
}

// SplitKey splits "v[0][value][]" into ["v", "0", "value", ""].
// Text after an unterminated bracket is dropped.
func SplitKey(key string) []string {
	i := strings.IndexByte(key, '[')
	if i <= 0 {
		return []string{key}
	}
	parts := []string{key[:i]}
	rest := key[i:]
	for len(rest) > 0 && rest[0] == '[' {
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			break
		}
		parts = append(parts, rest[1:j])
		rest = rest[j+1:]
	}
	return parts
}

func set(node map[string]any, path []string, value string) {
	key := path[0]
	if len(path) == 1 {
		node[key] = value
		return
	}

	if path[1] == "" {
		list, _ := node[key].([]any)
		if len(path) == 2 {
			node[key] = append(list, value)
			return
		}
		child := make(map[string]any)
		node[key] = append(list, child)
		set(child, path[2:], value)
		return
	}

	child, ok := node[key].(map[string]any)
	if !ok {
		child = make(map[string]any)
		node[key] = child
	}
	set(child, path[1:], value)
}
