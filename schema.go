package searchfilter

import (
	"slices"

	"github.com/hugr-lab/searchfilter-go/catalog"
	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/filter"
	"github.com/hugr-lab/searchfilter-go/internal/inflect"
)

// SchemaOptions tune AppendFromSchema.
type SchemaOptions struct {
	// DefaultLookupFields overrides the manager's candidate display columns
	// for lookup criteria. Lookup filters probe their own LookupFields.
	DefaultLookupFields []string
}

// lookupDefinition is the part of filter.LookupFilter the schema builder
// configures. A registry override for "lookup" that does not implement it
// gets no route or display field.
type lookupDefinition interface {
	filter.Definition
	LookupFields() []string
	AutocompleteRoute() filter.Route
	SetAutocompleteRoute(filter.Route)
}

// AppendFromSchema adds one filter per column of table to coll and returns
// coll. Columns in skipFields (nil selects the manager's blacklist), columns
// already in coll and columns whose type has no filter are skipped.
//
// labels overrides the humanized column name; lookup filters are labeled by
// "<stem>_<display field>" (for example "author_name").
func (m *Manager) AppendFromSchema(coll *filter.Collection, table catalog.Table, labels map[string]string, skipFields []string, opts SchemaOptions) (*filter.Collection, error) {
	if skipFields == nil {
		skipFields = m.fieldBlacklist
	}

	for _, col := range table.Columns() {
		if slices.Contains(skipFields, col.Name) || coll.Has(col.Name) {
			continue
		}
		if col.Type == "" {
			m.logger.Debug("Column skipped: no semantic type", "table", table.TableName(), "column", col.Name)
			continue
		}

		def, err := m.buildFilter(col.Name, col.Type, table, labels)
		if err != nil {
			return coll, err
		}
		if def == nil {
			m.logger.Debug("Column skipped: no filter for type",
				"table", table.TableName(),
				"column", col.Name,
				"type", col.Type,
			)
			continue
		}

		if c := m.BuildCriterion(col.Name, col.Type, table, opts); c != nil {
			def.SetCriterion(c)
		}
		if err := coll.Add(col.Name, def); err != nil {
			return coll, err
		}
	}

	return coll, nil
}

// BuildCriterion returns the criterion for a column of the given semantic
// type, qualified by the table alias, or nil when the type has none.
//
// Integer and uuid columns named "<stem>_id" resolve through the "<Stems>"
// association to a lookup on the first candidate field the target has.
func (m *Manager) BuildCriterion(column, typ string, table catalog.Table, opts SchemaOptions) criterion.Criterion {
	field := table.Alias() + "." + column

	switch {
	case typ == catalog.TypeString || typ == catalog.TypeText:
		return m.criteria.String(field)
	case typ == catalog.TypeDate:
		return m.criteria.Date(field, "")
	case typ == catalog.TypeTime || typ == catalog.TypeTimestamp || typ == catalog.TypeDateTime:
		return m.criteria.DateTime(field, "")
	case isForeignKey(column, typ):
		assoc, ok := table.Association(catalog.AssociationName(column))
		if !ok || assoc.Target == nil {
			return nil
		}
		candidates := opts.DefaultLookupFields
		if len(candidates) == 0 {
			candidates = m.lookupFields
		}
		for _, candidate := range candidates {
			if _, ok := assoc.Target.Column(candidate); ok {
				return m.criteria.Lookup(field, assoc.Target, m.criteria.String(candidate))
			}
		}
		return nil
	case isNumeric(typ):
		return m.criteria.Numeric(field)
	case typ == catalog.TypeBoolean:
		return m.criteria.Bool(field)
	}
	return nil
}

func (m *Manager) buildFilter(column, typ string, table catalog.Table, labels map[string]string) (filter.Definition, error) {
	var name string
	switch {
	case typ == catalog.TypeString || typ == catalog.TypeText:
		name = "string"
	case typ == catalog.TypeDate:
		name = "date"
	case typ == catalog.TypeTime || typ == catalog.TypeTimestamp || typ == catalog.TypeDateTime:
		name = "datetime"
	case isForeignKey(column, typ):
		return m.buildLookupFilter(column, table, labels)
	case isNumeric(typ):
		name = "numeric"
	case typ == catalog.TypeBoolean:
		name = "boolean"
	default:
		return nil, nil
	}

	def, err := m.registry.New(name)
	if err != nil {
		return nil, err
	}
	def.SetLabel(label(labels, column))
	return def, nil
}

// buildLookupFilter returns nil when the association is missing or its
// target has none of the filter's lookup fields.
func (m *Manager) buildLookupFilter(column string, table catalog.Table, labels map[string]string) (filter.Definition, error) {
	assocName := catalog.AssociationName(column)
	assoc, ok := table.Association(assocName)
	if !ok || assoc.Target == nil {
		m.logger.Debug("Foreign key skipped: no association",
			"table", table.TableName(),
			"column", column,
			"association", assocName,
		)
		return nil, nil
	}

	def, err := m.registry.New("lookup")
	if err != nil {
		return nil, err
	}

	candidates := m.lookupFields
	lookup, isLookup := def.(lookupDefinition)
	if isLookup {
		candidates = lookup.LookupFields()
	}

	stem, _ := catalog.ForeignKeyStem(column)
	for _, field := range candidates {
		if _, ok := assoc.Target.Column(field); !ok {
			continue
		}
		def.SetProperty("valueName", field)
		def.SetProperty("query", field+"=%QUERY")
		if isLookup {
			route := lookup.AutocompleteRoute()
			route.Controller = assocName
			lookup.SetAutocompleteRoute(route)
		}
		def.SetLabel(label(labels, stem+"_"+field))
		return def, nil
	}

	m.logger.Debug("Foreign key skipped: no lookup field on target",
		"table", table.TableName(),
		"column", column,
		"target", assoc.Target.TableName(),
		"candidates", candidates,
	)
	return nil, nil
}

func isForeignKey(column, typ string) bool {
	if typ != catalog.TypeInteger && typ != catalog.TypeUUID {
		return false
	}
	_, ok := catalog.ForeignKeyStem(column)
	return ok
}

func isNumeric(typ string) bool {
	switch typ {
	case catalog.TypeInteger, catalog.TypeFloat, catalog.TypeDecimal, catalog.TypeBigInteger:
		return true
	}
	return false
}

func label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return inflect.Humanize(key)
}
