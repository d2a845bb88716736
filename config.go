package searchfilter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
	"github.com/hugr-lab/searchfilter-go/filter"
	"github.com/hugr-lab/searchfilter-go/internal/recovery"
)

// Config contains configuration for a Manager.
type Config struct {
	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil.
	// Note: If LogLevel is specified, a new logger will be created with that level.
	Logger *slog.Logger

	// LogLevel sets the logging level.
	// OPTIONAL: If nil, uses Info level.
	// If Logger is also provided, LogLevel is ignored (use pre-configured logger).
	LogLevel *slog.Level

	// FieldBlacklist lists columns AppendFromSchema never turns into filters.
	// OPTIONAL: If nil, uses DefaultFieldBlacklist. An empty non-nil slice
	// disables the blacklist.
	FieldBlacklist []string

	// DefaultLookupFields is the ordered list of candidate display columns
	// probed on an associated table when building lookup criteria.
	// OPTIONAL: If empty, uses DefaultLookupFields.
	DefaultLookupFields []string

	// Filters replaces the filter registry contents (name -> constructor).
	// OPTIONAL: If empty, uses filter.Defaults(). A replacement must still
	// provide the names AppendFromSchema builds from.
	Filters map[string]filter.Constructor

	// FilterOptions are passed to every criterion when a search is applied.
	// OPTIONAL: zero value keeps each criterion's defaults.
	FilterOptions criterion.Options

	// SearchCriterion handles the reserved "search" alias (global free text).
	// OPTIONAL: If nil, global search text is ignored.
	SearchCriterion criterion.Criterion

	// SearchCondition is the condition SearchCriterion is applied with.
	// OPTIONAL: Defaults to "like".
	SearchCondition criterion.Condition

	// OnUnknownCondition is called when a criterion receives a condition it
	// does not map and contributes nothing.
	// OPTIONAL: If nil, the event is logged at debug level.
	OnUnknownCondition func(field expr.Expression, cond criterion.Condition)
}

// Defaults applied by NewManager.
var (
	DefaultFieldBlacklist = []string{"id", "password", "created", "modified"}
	DefaultLookupFields   = []string{"name", "title", "id"}
)

// Standard errors returned by searchfilter package.
var (
	// ErrInvalidConfig indicates Config validation failed.
	ErrInvalidConfig = errors.New("invalid search filter config")

	// ErrInvalidParams indicates a search request could not be decoded.
	ErrInvalidParams = errors.New("invalid search parameters")

	// ErrCriterionPanic wraps panics recovered from criteria while a search
	// is applied.
	ErrCriterionPanic = recovery.ErrPanic
)

// schemaFilters are the registry names AppendFromSchema resolves.
var schemaFilters = []string{"boolean", "date", "datetime", "lookup", "numeric", "string"}

// validateConfig checks Config fields that cannot be defaulted.
func validateConfig(config Config) error {
	for _, f := range config.DefaultLookupFields {
		if f == "" {
			return fmt.Errorf("default lookup fields must not contain empty names")
		}
	}
	if config.SearchCondition != "" {
		if !config.SearchCondition.Known() {
			return fmt.Errorf("unknown search condition %q", config.SearchCondition)
		}
		if config.SearchCriterion == nil {
			return fmt.Errorf("search condition set without a search criterion")
		}
	}
	return nil
}

func newLogger(config Config) *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	if config.LogLevel != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: *config.LogLevel}))
	}
	return slog.Default()
}
