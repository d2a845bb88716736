// Package searchfilter turns search-form submissions into SQL predicates.
//
// The package ties together three pieces:
//   - filter: UI-facing definitions (label, widget type, offered
//     conditions) collected per form and exported as a view config
//   - criterion: predicate builders bound to columns, one per filter
//   - catalog: table schemas used to derive filters automatically
//
// # Quick Start
//
//	m, err := searchfilter.NewManager(searchfilter.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Derive filters from the articles table and its associations
//	coll, err := m.AppendFromSchema(m.NewCollection(), articles, map[string]string{
//	    "published": "Is published",
//	}, nil, searchfilter.SchemaOptions{})
//
//	// Send the view config to the UI
//	view, err := searchfilter.EncodeViewConfig(coll, searchfilter.ExportOptions{})
//
//	// Decode a submission and render the WHERE clause
//	search, err := m.ParseSearch("f[0]=title&c[0]=like&v[0][value][]=First")
//	q, err := m.Query(articles, coll, search)
//	stmt := q.SQL(expr.NewSQLEncoder(nil))
//
// # Wire format
//
// A submission carries three maps correlated by slot index:
//
//	f[i]=alias
//	c[i]=condition
//	v[i][subkey][]=value
//
// The same maps can be sent as a MessagePack document (DecodeParams).
// Sub-keys depend on the condition: "value" for scalars, "from"/"to" for
// numeric ranges, "date_from"/"date_to" for date ranges and "id" or
// "value" for lookups.
//
// The alias "search" is reserved for global free text and is applied
// through Config.SearchCriterion.
//
// # Error Handling
//
// Unknown conditions and values that are missing or empty never fail: the
// filter simply contributes nothing. Dates that do not parse fail with a
// *criterion.ParseError. Panics raised by custom criteria are recovered
// and returned as errors wrapping ErrCriterionPanic.
package searchfilter
