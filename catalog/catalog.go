// Package catalog describes the tables a search form can filter.
//
// A Table exposes its columns with semantic type names ("string",
// "integer", "date", ...) derived from an Arrow schema, its primary key,
// and the belongs-to associations used to resolve foreign keys into lookup
// filters.
//
// Static tables are declared directly from an *arrow.Schema; the
// sqlcatalog subpackage builds them by introspecting a live database.
package catalog

import (
	"context"
	"errors"
	"sort"
)

var (
	// ErrNotFound is returned when a table does not exist or has no columns.
	ErrNotFound = errors.New("table not found")

	// ErrUnsupportedDialect is returned for an unknown database dialect.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
)

// Catalog is a set of tables.
type Catalog interface {
	// Tables returns all tables, ordered by name.
	Tables(ctx context.Context) ([]Table, error)

	// Table returns a table by name.
	// Returns (nil, nil) if the table doesn't exist.
	Table(ctx context.Context, name string) (Table, error)
}

// StaticCatalog is an in-memory Catalog.
type StaticCatalog struct {
	tables map[string]Table
}

// NewStaticCatalog creates a catalog holding tables.
func NewStaticCatalog(tables ...Table) *StaticCatalog {
	c := &StaticCatalog{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		c.AddTable(t)
	}
	return c
}

// AddTable adds or replaces a table.
func (c *StaticCatalog) AddTable(t Table) {
	c.tables[t.TableName()] = t
}

// Tables implements Catalog.
func (c *StaticCatalog) Tables(ctx context.Context) ([]Table, error) {
	result := make([]Table, 0, len(c.tables))
	for _, t := range c.tables {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TableName() < result[j].TableName()
	})
	return result, nil
}

// Table implements Catalog.
func (c *StaticCatalog) Table(ctx context.Context, name string) (Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, nil
	}
	return t, nil
}
