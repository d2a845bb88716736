// Package sqlcatalog builds catalog tables by introspecting a live
// database through database/sql.
//
// Supported dialects and the driver names they expect to be registered:
//
//   - DuckDB: "duckdb" (github.com/duckdb/duckdb-go/v2)
//   - PostgreSQL: "pgx" (github.com/jackc/pgx/v5/stdlib)
//   - SQLite: "sqlite" (modernc.org/sqlite)
//
// The package does not import drivers; the program does.
//
// Belongs-to associations are discovered by naming convention: an integer
// or uuid column "author_id" references table "authors" when it exists.
package sqlcatalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/searchfilter-go/catalog"
)

// Dialect identifies the database flavor.
type Dialect string

const (
	DuckDB   Dialect = "duckdb"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect accepts a dialect name or a common alias.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duckdb":
		return DuckDB, nil
	case "postgres", "postgresql", "pg", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("%w: %s", catalog.ErrUnsupportedDialect, s)
}

// DriverName returns the database/sql driver name for d.
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	default:
		return string(d)
	}
}

func (d Dialect) defaultSchema() string {
	switch d {
	case DuckDB:
		return "main"
	case Postgres:
		return "public"
	}
	return ""
}

func (d Dialect) valid() bool {
	return d == DuckDB || d == Postgres || d == SQLite
}

// Options configures a Catalog.
type Options struct {
	// Schema is the database schema to introspect.
	// OPTIONAL: defaults to "main" for DuckDB and "public" for PostgreSQL.
	// Ignored for SQLite.
	Schema string

	// Logger for debug output.
	// OPTIONAL: defaults to slog.Default().
	Logger *slog.Logger
}

// Catalog is a catalog.Catalog backed by database introspection.
// Loaded tables are cached; the catalog is safe for concurrent use.
type Catalog struct {
	db      *sql.DB
	dialect Dialect
	schema  string
	logger  *slog.Logger
	owned   bool

	mu     sync.Mutex
	tables map[string]catalog.Table
}

var _ catalog.Catalog = (*Catalog)(nil)

// Open opens a database for dialect and wraps it in a Catalog.
// The catalog owns the connection: Close closes it.
func Open(ctx context.Context, dialect Dialect, dsn string, opts Options) (*Catalog, error) {
	if !dialect.valid() {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnsupportedDialect, dialect)
	}
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", dialect, err)
	}
	c, err := New(db, dialect, opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	c.owned = true
	return c, nil
}

// New wraps an open database. The caller keeps ownership of db.
func New(db *sql.DB, dialect Dialect, opts Options) (*Catalog, error) {
	if !dialect.valid() {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnsupportedDialect, dialect)
	}
	schema := opts.Schema
	if schema == "" {
		schema = dialect.defaultSchema()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		db:      db,
		dialect: dialect,
		schema:  schema,
		logger:  logger,
		tables:  make(map[string]catalog.Table),
	}, nil
}

// DB returns the underlying database.
func (c *Catalog) DB() *sql.DB { return c.db }

// Dialect returns the catalog's dialect.
func (c *Catalog) Dialect() Dialect { return c.dialect }

// Close closes the database if the catalog opened it.
func (c *Catalog) Close() error {
	if !c.owned {
		return nil
	}
	return c.db.Close()
}

// TableNames returns the names of all tables and views, ordered.
func (c *Catalog) TableNames(ctx context.Context) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	switch c.dialect {
	case SQLite:
		rows, err = c.db.QueryContext(ctx,
			`SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	default:
		rows, err = c.db.QueryContext(ctx,
			`SELECT table_name FROM information_schema.tables WHERE table_schema = $1 ORDER BY table_name`, c.schema)
	}
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Tables implements catalog.Catalog.
func (c *Catalog) Tables(ctx context.Context) ([]catalog.Table, error) {
	names, err := c.TableNames(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]catalog.Table, 0, len(names))
	for _, name := range names {
		t, err := c.Table(ctx, name)
		if err != nil {
			return nil, err
		}
		if t != nil {
			result = append(result, t)
		}
	}
	return result, nil
}

// Table implements catalog.Catalog. Associations are resolved one level
// deep: the targets carry columns but no associations of their own.
// Returns (nil, nil) if the table doesn't exist.
func (c *Catalog) Table(ctx context.Context, name string) (catalog.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[name]; ok {
		return t, nil
	}

	t, err := c.load(ctx, name)
	if err != nil || t == nil {
		return nil, err
	}

	names, err := c.TableNames(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	for _, col := range t.Columns() {
		if col.Type != catalog.TypeInteger && col.Type != catalog.TypeUUID {
			continue
		}
		if _, ok := catalog.ForeignKeyStem(col.Name); !ok {
			continue
		}
		target := catalog.AssociationTable(catalog.AssociationName(col.Name))
		if !known[target] {
			c.logger.Debug("no table for foreign key", "table", name, "column", col.Name, "target", target)
			continue
		}
		tt, err := c.load(ctx, target)
		if err != nil {
			return nil, err
		}
		if tt != nil {
			t.BelongsTo(col.Name, tt)
		}
	}

	c.logger.Debug("table introspected",
		"table", name,
		"columns", len(t.Columns()),
		"associations", len(t.Associations()),
	)
	c.tables[name] = t
	return t, nil
}

// load introspects a single table without associations.
func (c *Catalog) load(ctx context.Context, name string) (*catalog.StaticTable, error) {
	fields, err := c.fields(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("introspect %s: %w", name, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return catalog.NewStaticTable(name, "", arrow.NewSchema(fields, nil)), nil
}

func (c *Catalog) fields(ctx context.Context, table string) ([]arrow.Field, error) {
	if c.dialect == SQLite {
		return c.sqliteFields(ctx, table)
	}

	pk, err := c.primaryKey(ctx, table)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`, c.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []arrow.Field
	for rows.Next() {
		var name, typ, nullable string
		if err := rows.Scan(&name, &typ, &nullable); err != nil {
			return nil, err
		}
		fields = append(fields, columnField(name, typ, nullable == "YES", name == pk))
	}
	return fields, rows.Err()
}

// primaryKey returns the first primary key column, or "".
func (c *Catalog) primaryKey(ctx context.Context, table string) (string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		 AND tc.table_schema = kcu.table_schema
		 AND tc.table_name = kcu.table_name
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND tc.table_schema = $1 AND tc.table_name = $2
		ORDER BY kcu.ordinal_position`, c.schema, table)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var pk string
	if rows.Next() {
		if err := rows.Scan(&pk); err != nil {
			return "", err
		}
	}
	return pk, rows.Err()
}

func (c *Catalog) sqliteFields(ctx context.Context, table string) ([]arrow.Field, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []arrow.Field
	pkSeen := false
	for rows.Next() {
		var (
			name, typ   string
			notNull, pk int
		)
		if err := rows.Scan(&name, &typ, &notNull, &pk); err != nil {
			return nil, err
		}
		isPK := pk == 1 && !pkSeen
		pkSeen = pkSeen || isPK
		fields = append(fields, columnField(name, typ, notNull == 0, isPK))
	}
	return fields, rows.Err()
}
