package catalog

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Semantic column types.
const (
	TypeString     = "string"
	TypeText       = "text"
	TypeInteger    = "integer"
	TypeBigInteger = "biginteger"
	TypeFloat      = "float"
	TypeDecimal    = "decimal"
	TypeBoolean    = "boolean"
	TypeDate       = "date"
	TypeTime       = "time"
	TypeTimestamp  = "timestamp"
	TypeDateTime   = "datetime"
	TypeUUID       = "uuid"
	TypeBinary     = "binary"
)

// Field metadata keys.
const (
	// MetadataSemanticType overrides the semantic type derived from the
	// Arrow type.
	MetadataSemanticType = "semantic_type"

	// MetadataExtensionName is the Arrow extension name of a field stored
	// without a registered extension type.
	MetadataExtensionName = "ARROW:extension:name"

	// MetadataPrimaryKey marks a primary key field.
	MetadataPrimaryKey = "is_primary_key"
)

// SemanticType returns the semantic type of an Arrow field.
// Field metadata "semantic_type" wins over the Arrow type.
// Returns "" for types that cannot be filtered.
func SemanticType(field arrow.Field) string {
	if v, ok := metadataValue(field.Metadata, MetadataSemanticType); ok {
		return v
	}
	if v, _ := metadataValue(field.Metadata, MetadataExtensionName); v == "arrow.uuid" {
		return TypeUUID
	}
	return semanticType(field.Type)
}

func semanticType(dt arrow.DataType) string {
	if dt == nil {
		return ""
	}
	if ext, ok := dt.(arrow.ExtensionType); ok {
		if ext.ExtensionName() == "arrow.uuid" {
			return TypeUUID
		}
		return semanticType(ext.StorageType())
	}

	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return TypeString
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.UINT8, arrow.UINT16, arrow.UINT32:
		return TypeInteger
	case arrow.INT64, arrow.UINT64:
		return TypeBigInteger
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return TypeFloat
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return TypeDecimal
	case arrow.BOOL:
		return TypeBoolean
	case arrow.DATE32, arrow.DATE64:
		return TypeDate
	case arrow.TIME32, arrow.TIME64:
		return TypeTime
	case arrow.TIMESTAMP:
		return TypeTimestamp
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.BINARY_VIEW:
		return TypeBinary
	case arrow.FIXED_SIZE_BINARY:
		return TypeBinary
	}
	return ""
}
