package searchfilter

import (
	"encoding/json"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hugr-lab/searchfilter-go/filter"
	"github.com/hugr-lab/searchfilter-go/internal/serialize"
)

// ExportFormat selects the encoding of EncodeViewConfig.
type ExportFormat int

const (
	// ExportJSON encodes the view config as a JSON object keyed by alias,
	// in label order.
	ExportJSON ExportFormat = iota

	// ExportArrow encodes one row per filter as an Arrow IPC stream with
	// columns alias, name, type, conditions and autocomplete_url.
	ExportArrow
)

// ExportOptions configures EncodeViewConfig.
type ExportOptions struct {
	Format ExportFormat

	// Compress applies ZStandard compression to the encoded bytes.
	Compress bool

	// Allocator for Arrow memory management.
	// OPTIONAL: Uses memory.DefaultAllocator if nil.
	Allocator memory.Allocator
}

// EncodeViewConfig exports the UI description of every filter in coll.
func EncodeViewConfig(coll *filter.Collection, opts ExportOptions) ([]byte, error) {
	view := coll.ViewConfig()

	var data []byte
	var err error
	switch opts.Format {
	case ExportJSON:
		data, err = json.Marshal(view)
	case ExportArrow:
		data, err = serialize.SerializeFields(viewFields(view), opts.Allocator)
	default:
		return nil, fmt.Errorf("unknown export format %d", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode view config: %w", err)
	}

	if !opts.Compress {
		return data, nil
	}
	return serialize.Compress(data)
}

func viewFields(view filter.ViewConfig) []serialize.Field {
	fields := make([]serialize.Field, 0, len(view))
	for _, e := range view {
		f := serialize.Field{Alias: e.Alias}
		f.Name, _ = e.Config["name"].(string)
		f.Type, _ = e.Config["type"].(string)
		f.AutocompleteURL, _ = e.Config["autocompleteUrl"].(string)
		if conds, ok := e.Config["conditions"].(filter.Conditions); ok {
			for _, c := range conds.Keys() {
				f.Conditions = append(f.Conditions, string(c))
			}
		}
		fields = append(fields, f)
	}
	return fields
}
