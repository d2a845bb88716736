package catalog

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Table is a filterable table. It satisfies expr.Source, so it can be the
// target of a lookup sub-query.
type Table interface {
	// TableName returns the physical table name (e.g., "articles").
	TableName() string

	// Alias returns the name used to qualify columns (e.g., "Articles").
	Alias() string

	// PrimaryKey returns the key column selected by lookup sub-queries.
	PrimaryKey() string

	// ArrowSchema returns the schema the columns were derived from.
	ArrowSchema() *arrow.Schema

	// Columns returns the columns in schema order.
	Columns() []Column

	// Column returns a column by name.
	Column(name string) (Column, bool)

	// Association returns a belongs-to association by name (e.g., "Authors").
	Association(name string) (Association, bool)

	// Associations returns all associations in declaration order.
	Associations() []Association
}

// Column is one table column.
type Column struct {
	Name string

	// Type is the semantic type name (see the Type constants).
	// Empty when the Arrow type has no semantic mapping.
	Type string

	Nullable bool
}

// Association links a foreign key column to the table it references.
type Association struct {
	// Name is the association name, the camelized plural of the foreign
	// key stem ("author_id" -> "Authors").
	Name string

	// ForeignKey is the column in the owning table.
	ForeignKey string

	// Target is the referenced table.
	Target Table
}
