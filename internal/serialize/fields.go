// Package serialize encodes exported filter definitions for transport:
// Arrow IPC for columnar consumers and ZStandard compression for either
// format.
package serialize

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Field is one exported filter.
type Field struct {
	Alias string
	Name  string
	Type  string
	// Conditions lists the offered conditions in display order.
	Conditions []string
	// AutocompleteURL is empty for non-lookup filters.
	AutocompleteURL string
}

// FieldsSchema is the Arrow schema written by SerializeFields.
var FieldsSchema = arrow.NewSchema([]arrow.Field{
	{Name: "alias", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "name", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "type", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "conditions", Type: arrow.ListOf(arrow.BinaryTypes.String), Nullable: false},
	{Name: "autocomplete_url", Type: arrow.BinaryTypes.String, Nullable: true},
}, nil)

// SerializeFields writes fields as a single-batch Arrow IPC stream.
func SerializeFields(fields []Field, allocator memory.Allocator) ([]byte, error) {
	if allocator == nil {
		allocator = memory.DefaultAllocator
	}

	builder := array.NewRecordBuilder(allocator, FieldsSchema)
	defer builder.Release()

	aliasBuilder := builder.Field(0).(*array.StringBuilder)
	nameBuilder := builder.Field(1).(*array.StringBuilder)
	typeBuilder := builder.Field(2).(*array.StringBuilder)
	condBuilder := builder.Field(3).(*array.ListBuilder)
	condValues := condBuilder.ValueBuilder().(*array.StringBuilder)
	urlBuilder := builder.Field(4).(*array.StringBuilder)

	for _, f := range fields {
		aliasBuilder.Append(f.Alias)
		nameBuilder.Append(f.Name)
		typeBuilder.Append(f.Type)
		condBuilder.Append(true)
		for _, c := range f.Conditions {
			condValues.Append(c)
		}
		if f.AutocompleteURL == "" {
			urlBuilder.AppendNull()
		} else {
			urlBuilder.Append(f.AutocompleteURL)
		}
	}

	record := builder.NewRecordBatch()
	defer record.Release()

	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(FieldsSchema), ipc.WithAllocator(allocator))
	if err := writer.Write(record); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write IPC record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close IPC writer: %w", err)
	}

	return buf.Bytes(), nil
}
