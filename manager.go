package searchfilter

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
	"github.com/hugr-lab/searchfilter-go/filter"
	"github.com/hugr-lab/searchfilter-go/internal/recovery"
)

// Manager builds filter collections from table schemas, decodes search
// requests and applies them to queries.
//
// A Manager is immutable after NewManager and safe for concurrent use.
// Collections it creates are not; build one per request.
type Manager struct {
	logger   *slog.Logger
	registry *filter.Registry
	criteria criterion.Builder

	fieldBlacklist []string
	lookupFields   []string

	opts            criterion.Options
	searchCriterion criterion.Criterion
	searchCondition criterion.Condition
}

// NewManager validates config and creates a Manager.
//
// Example:
//
//	m, err := searchfilter.NewManager(searchfilter.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coll, err := m.AppendFromSchema(m.NewCollection(), articles, nil, nil, searchfilter.SchemaOptions{})
func NewManager(config Config) (*Manager, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	registry := filter.NewRegistry(config.Filters)
	if err := registry.Require(schemaFilters...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	m := &Manager{
		logger:          newLogger(config),
		registry:        registry,
		fieldBlacklist:  DefaultFieldBlacklist,
		lookupFields:    DefaultLookupFields,
		opts:            config.FilterOptions,
		searchCriterion: config.SearchCriterion,
		searchCondition: config.SearchCondition,
	}
	if config.FieldBlacklist != nil {
		m.fieldBlacklist = config.FieldBlacklist
	}
	if len(config.DefaultLookupFields) > 0 {
		m.lookupFields = config.DefaultLookupFields
	}
	m.fieldBlacklist = slices.Clone(m.fieldBlacklist)
	m.lookupFields = slices.Clone(m.lookupFields)

	if m.searchCondition == "" {
		m.searchCondition = criterion.Like
	}

	m.opts.OnUnknownCondition = m.logUnknownCondition
	if hook := config.OnUnknownCondition; hook != nil {
		m.opts.OnUnknownCondition = func(field expr.Expression, cond criterion.Condition) {
			recovery.Recover(m.logger, "unknown condition hook", func() { hook(field, cond) })
		}
	}

	m.logger.Debug("Search filter manager created",
		"filters", registry.Names(),
		"field_blacklist", m.fieldBlacklist,
		"lookup_fields", m.lookupFields,
		"has_search_criterion", m.searchCriterion != nil,
	)

	return m, nil
}

// Filters returns the filter registry.
func (m *Manager) Filters() *filter.Registry { return m.registry }

// Criterion returns the criteria factory.
//
//	m.Criterion().Or(m.Criterion().String("Articles.title"), m.Criterion().String("Articles.body"))
func (m *Manager) Criterion() criterion.Builder { return m.criteria }

// Filter returns a fresh definition of the named filter type.
func (m *Manager) Filter(name string) (filter.Definition, error) {
	return m.registry.New(name)
}

// FieldBlacklist returns the columns skipped by AppendFromSchema.
func (m *Manager) FieldBlacklist() []string { return slices.Clone(m.fieldBlacklist) }

// DefaultLookupFields returns the candidate display columns for lookups.
func (m *Manager) DefaultLookupFields() []string { return slices.Clone(m.lookupFields) }

// NewCollection returns an empty filter collection.
func (m *Manager) NewCollection() *filter.Collection {
	coll, _ := filter.NewCollection()
	return coll
}

func (m *Manager) logUnknownCondition(field expr.Expression, cond criterion.Condition) {
	name := ""
	if col, ok := field.(*expr.ColumnRefExpression); ok {
		name = col.Name
	}
	m.logger.Debug("Unknown condition ignored", "field", name, "condition", string(cond))
}
