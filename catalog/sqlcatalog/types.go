package sqlcatalog

import (
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/searchfilter-go/catalog"
)

// columnField converts an introspected column into an Arrow field.
// Columns of unknown type get the Null type and no semantic type.
func columnField(name, sqlType string, nullable, primaryKey bool) arrow.Field {
	dt, semantic := sqlTypeToArrow(sqlType)
	var keys, values []string
	if semantic != "" {
		keys, values = append(keys, catalog.MetadataSemanticType), append(values, semantic)
	}
	if primaryKey {
		keys, values = append(keys, catalog.MetadataPrimaryKey), append(values, "true")
	}
	f := arrow.Field{Name: name, Type: dt, Nullable: nullable}
	if len(keys) > 0 {
		f.Metadata = arrow.NewMetadata(keys, values)
	}
	return f
}

// sqlTypeToArrow converts a DuckDB, PostgreSQL or SQLite type name to the
// corresponding Arrow type. The second result overrides the semantic type
// when the Arrow type alone loses it (TEXT, UUID, DATETIME).
func sqlTypeToArrow(sqlType string) (arrow.DataType, string) {
	base, params := splitType(sqlType)

	switch base {
	case "BOOLEAN", "BOOL":
		return arrow.FixedWidthTypes.Boolean, ""
	case "TINYINT", "INT1":
		return arrow.PrimitiveTypes.Int8, ""
	case "SMALLINT", "INT2", "SMALLSERIAL":
		return arrow.PrimitiveTypes.Int16, ""
	case "INTEGER", "INT", "INT4", "MEDIUMINT", "SERIAL":
		return arrow.PrimitiveTypes.Int32, ""
	case "BIGINT", "INT8", "BIGSERIAL", "HUGEINT":
		return arrow.PrimitiveTypes.Int64, ""
	case "UTINYINT":
		return arrow.PrimitiveTypes.Uint8, ""
	case "USMALLINT":
		return arrow.PrimitiveTypes.Uint16, ""
	case "UINTEGER":
		return arrow.PrimitiveTypes.Uint32, ""
	case "UBIGINT":
		return arrow.PrimitiveTypes.Uint64, ""
	case "FLOAT", "FLOAT4", "REAL":
		return arrow.PrimitiveTypes.Float32, ""
	case "DOUBLE", "FLOAT8", "DOUBLE PRECISION":
		return arrow.PrimitiveTypes.Float64, ""
	case "DECIMAL", "NUMERIC":
		precision, scale := int32(18), int32(3)
		if len(params) > 0 {
			precision = params[0]
			scale = 0
		}
		if len(params) > 1 {
			scale = params[1]
		}
		return &arrow.Decimal128Type{Precision: precision, Scale: scale}, ""
	case "VARCHAR", "STRING", "CHAR", "BPCHAR", "CHARACTER", "CHARACTER VARYING", "NVARCHAR", "NCHAR", "CLOB":
		return arrow.BinaryTypes.String, ""
	case "TEXT":
		return arrow.BinaryTypes.String, catalog.TypeText
	case "BLOB", "BYTEA":
		return arrow.BinaryTypes.Binary, ""
	case "DATE":
		return arrow.FixedWidthTypes.Date32, ""
	case "TIME", "TIME WITHOUT TIME ZONE":
		return arrow.FixedWidthTypes.Time64us, ""
	case "TIMESTAMP", "TIMESTAMP WITHOUT TIME ZONE":
		return &arrow.TimestampType{Unit: arrow.Microsecond}, ""
	case "TIMESTAMP WITH TIME ZONE", "TIMESTAMPTZ":
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}, ""
	case "DATETIME":
		return &arrow.TimestampType{Unit: arrow.Microsecond}, catalog.TypeDateTime
	case "UUID":
		return &arrow.FixedSizeBinaryType{ByteWidth: 16}, catalog.TypeUUID
	case "INTERVAL":
		return arrow.FixedWidthTypes.MonthDayNanoInterval, ""
	default:
		return arrow.Null, ""
	}
}

// splitType normalizes a type name ("decimal(10, 2)" -> "DECIMAL", [10 2]).
func splitType(sqlType string) (string, []int32) {
	s := strings.ToUpper(strings.TrimSpace(sqlType))
	var params []int32
	if open := strings.IndexByte(s, '('); open >= 0 {
		if end := strings.IndexByte(s[open:], ')'); end > 0 {
			for _, p := range strings.Split(s[open+1:open+end], ",") {
				if n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32); err == nil {
					params = append(params, int32(n))
				}
			}
			s = s[:open] + s[open+end+1:]
		} else {
			s = s[:open]
		}
	}
	return strings.Join(strings.Fields(s), " "), params
}
