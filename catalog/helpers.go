package catalog

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// DefaultPrimaryKey is used when a schema marks no primary key.
const DefaultPrimaryKey = "id"

// FindPrimaryKey returns the name of the primary key column in the schema.
//
// The primary key is identified by, in order:
//   - Schema metadata "primary_key"
//   - Field metadata "is_primary_key" with non-empty value
//   - DefaultPrimaryKey
//
// Parameters:
//   - schema: Arrow schema to search. May be nil (returns DefaultPrimaryKey).
//
// Example:
//
//	schema := arrow.NewSchema(fields, &md) // md has primary_key=article_id
//	pk := catalog.FindPrimaryKey(schema)   // "article_id"
func FindPrimaryKey(schema *arrow.Schema) string {
	if schema == nil {
		return DefaultPrimaryKey
	}

	if md := schema.Metadata(); md.Len() > 0 {
		if v, ok := metadataValue(md, "primary_key"); ok && v != "" {
			return v
		}
	}

	for i := 0; i < schema.NumFields(); i++ {
		field := schema.Field(i)
		if v, ok := metadataValue(field.Metadata, MetadataPrimaryKey); ok && v != "" {
			return field.Name
		}
	}
	return DefaultPrimaryKey
}

func metadataValue(md arrow.Metadata, key string) (string, bool) {
	if md.Len() == 0 {
		return "", false
	}
	idx := md.FindKey(key)
	if idx < 0 {
		return "", false
	}
	return md.Values()[idx], true
}
