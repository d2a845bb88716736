// Package expr provides a small typed SQL predicate tree and its encoder.
//
// Criteria build expressions from this package instead of concatenating SQL:
//   - Column references, bound parameters and raw fragments as leaves
//   - Comparisons, IN lists, IN sub-queries and BETWEEN
//   - AND/OR conjunctions that drop identity (no-op) children
//   - Function calls for date truncation, week extraction and date arithmetic
//
// # Basic Usage
//
//	q := expr.NewQuery(articles).
//	    Where(expr.Compare(expr.TypeCompareLike, expr.Column("Articles.title"), expr.Param("Go%", "string")))
//
//	st := q.SQL(expr.NewSQLEncoder(nil))
//	// st.SQL:      SELECT * FROM articles Articles WHERE Articles.title LIKE :c0
//	// st.Bindings: [{:c0 Go% string}]
//
// # Placeholders
//
// Parameters are numbered by a Binder. The default style renders :c0, :c1, ...;
// use PlaceholderQuestion or PlaceholderDollar for database/sql drivers:
//
//	enc := expr.NewSQLEncoder(&expr.EncoderOptions{Placeholder: expr.PlaceholderDollar})
//	st := enc.Encode(pred)
//	rows, err := db.QueryContext(ctx, "SELECT id FROM articles WHERE "+st.SQL, st.Args()...)
//
// # Column Mapping
//
// Column names can be renamed or replaced by SQL expressions at encode time:
//
//	enc := expr.NewSQLEncoder(&expr.EncoderOptions{
//	    ColumnMapping:     map[string]string{"title": "headline"},
//	    ColumnExpressions: map[string]string{"full_name": "first || ' ' || last"},
//	})
package expr
