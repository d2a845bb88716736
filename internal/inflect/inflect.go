// Package inflect converts between the naming conventions used for columns,
// association names, labels and URL segments.
package inflect

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English, cases.NoLower)

// words splits s on underscores, dashes, spaces and lower→upper case changes.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}

// Camelize turns "blog_post" into "BlogPost".
func Camelize(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Humanize turns "author_name" into "Author Name".
func Humanize(s string) string {
	ws := words(strings.ReplaceAll(s, "_", " "))
	for i, w := range ws {
		ws[i] = title.String(w)
	}
	return strings.Join(ws, " ")
}

// Underscore turns "BlogPosts" into "blog_posts".
func Underscore(s string) string {
	return join(s, "_")
}

// Dasherize turns "BlogPosts" into "blog-posts".
func Dasherize(s string) string {
	return join(s, "-")
}

func join(s, sep string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, sep)
}

// Pluralize returns the plural form of a singular noun. Only the last word
// of a camel-cased name is inflected.
func Pluralize(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return s
	}
	last := ws[len(ws)-1]
	return strings.TrimSuffix(s, last) + inflection.Plural(last)
}
