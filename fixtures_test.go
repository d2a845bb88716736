package searchfilter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/searchfilter-go/catalog"
	"github.com/hugr-lab/searchfilter-go/filter"
)

// testTables returns the articles table with its authors and tags
// associations. Tags has no display column a lookup could use.
func testTables() (articles, authors *catalog.StaticTable) {
	authors = catalog.NewStaticTable("authors", "", arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "created", Type: &arrow.TimestampType{Unit: arrow.Microsecond}},
	}, nil))

	tags := catalog.NewStaticTable("tags", "", arrow.NewSchema([]arrow.Field{
		{Name: "tag_key", Type: arrow.PrimitiveTypes.Int32},
		{Name: "label", Type: arrow.BinaryTypes.String},
	}, nil))

	articles = catalog.NewStaticTable("articles", "", arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "author_id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "category_id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "tag_id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "title", Type: arrow.BinaryTypes.String},
		{
			Name:     "body",
			Type:     arrow.BinaryTypes.String,
			Nullable: true,
			Metadata: arrow.NewMetadata([]string{catalog.MetadataSemanticType}, []string{catalog.TypeText}),
		},
		{Name: "views", Type: arrow.PrimitiveTypes.Int64},
		{Name: "rating", Type: &arrow.Decimal128Type{Precision: 4, Scale: 2}},
		{Name: "published", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "published_on", Type: arrow.FixedWidthTypes.Date32},
		{Name: "password", Type: arrow.BinaryTypes.String},
		{Name: "payload", Type: arrow.BinaryTypes.Binary},
		{Name: "created", Type: &arrow.TimestampType{Unit: arrow.Microsecond}},
	}, nil)).
		BelongsTo("author_id", authors).
		BelongsTo("tag_id", tags)

	return articles, authors
}

func testManager(t *testing.T, config Config) *Manager {
	t.Helper()
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	}
	m, err := NewManager(config)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func articleFilters(t *testing.T, m *Manager) *filter.Collection {
	t.Helper()
	articles, _ := testTables()
	coll, err := m.AppendFromSchema(m.NewCollection(), articles, nil, nil, SchemaOptions{})
	if err != nil {
		t.Fatalf("AppendFromSchema failed: %v", err)
	}
	return coll
}
