package catalog

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/searchfilter-go/internal/inflect"
)

// StaticTable is a Table declared from an Arrow schema.
// Not thread-safe while associations are being added.
type StaticTable struct {
	name    string
	alias   string
	pk      string
	schema  *arrow.Schema
	columns []Column
	index   map[string]int
	assocs  []Association
}

// NewStaticTable creates a table from schema.
// An empty alias defaults to the camelized table name ("blog_posts" ->
// "BlogPosts"). The primary key comes from FindPrimaryKey.
func NewStaticTable(name, alias string, schema *arrow.Schema) *StaticTable {
	if alias == "" {
		alias = inflect.Camelize(name)
	}
	t := &StaticTable{
		name:   name,
		alias:  alias,
		pk:     FindPrimaryKey(schema),
		schema: schema,
		index:  make(map[string]int),
	}
	if schema == nil {
		return t
	}
	for i := 0; i < schema.NumFields(); i++ {
		f := schema.Field(i)
		t.index[f.Name] = len(t.columns)
		t.columns = append(t.columns, Column{
			Name:     f.Name,
			Type:     SemanticType(f),
			Nullable: f.Nullable,
		})
	}
	return t
}

// BelongsTo declares that foreignKey references target. The association is
// named after the foreign key stem ("author_id" -> "Authors").
// Returns the table for chaining.
func (t *StaticTable) BelongsTo(foreignKey string, target Table) *StaticTable {
	t.assocs = append(t.assocs, Association{
		Name:       AssociationName(foreignKey),
		ForeignKey: foreignKey,
		Target:     target,
	})
	return t
}

// TableName implements Table.
func (t *StaticTable) TableName() string { return t.name }

// Alias implements Table.
func (t *StaticTable) Alias() string { return t.alias }

// PrimaryKey implements Table.
func (t *StaticTable) PrimaryKey() string { return t.pk }

// ArrowSchema implements Table.
func (t *StaticTable) ArrowSchema() *arrow.Schema { return t.schema }

// Columns implements Table.
func (t *StaticTable) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Column implements Table.
func (t *StaticTable) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Association implements Table.
func (t *StaticTable) Association(name string) (Association, bool) {
	for _, a := range t.assocs {
		if a.Name == name {
			return a, true
		}
	}
	return Association{}, false
}

// Associations implements Table.
func (t *StaticTable) Associations() []Association {
	return append([]Association(nil), t.assocs...)
}

// ForeignKeyStem returns the column name without its "_id" suffix, or
// false if the column is not named like a foreign key.
func ForeignKeyStem(column string) (string, bool) {
	if len(column) <= 3 || column[len(column)-3:] != "_id" {
		return "", false
	}
	return column[:len(column)-3], true
}

// AssociationName derives the association name for a foreign key column:
// the stem camelized and pluralized ("blog_category_id" -> "BlogCategories").
// Columns not named like a foreign key are camelized and pluralized whole.
func AssociationName(column string) string {
	stem, ok := ForeignKeyStem(column)
	if !ok {
		stem = column
	}
	return inflect.Pluralize(inflect.Camelize(stem))
}

// AssociationTable returns the conventional table name for an association
// ("BlogCategories" -> "blog_categories").
func AssociationTable(name string) string {
	return inflect.Underscore(name)
}
