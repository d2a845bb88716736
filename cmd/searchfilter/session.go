package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/hugr-lab/searchfilter-go"
	"github.com/hugr-lab/searchfilter-go/catalog"
	"github.com/hugr-lab/searchfilter-go/catalog/sqlcatalog"
	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
	"github.com/hugr-lab/searchfilter-go/filter"
)

var errNoTable = errors.New("no table given, use --table or SEARCHFILTER_TABLE")

// settings is the resolved command configuration.
type settings struct {
	Dialect         sqlcatalog.Dialect
	DSN             string
	Schema          string
	Table           string
	Alias           string
	Placeholder     expr.PlaceholderStyle
	LogLevel        slog.Level
	Blacklist       []string
	LookupFields    []string
	SearchFields    []string
	Labels          map[string]string
	CaseInsensitive bool
}

func loadSettings(v *viper.Viper) (settings, error) {
	var s settings

	dialect, err := sqlcatalog.ParseDialect(v.GetString("driver"))
	if err != nil {
		return s, err
	}
	s.Dialect = dialect

	s.Table = v.GetString("table")
	if s.Table == "" {
		return s, errNoTable
	}

	if err := s.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return s, fmt.Errorf("invalid log level: %w", err)
	}

	s.Placeholder, err = parsePlaceholder(v.GetString("placeholder"), dialect)
	if err != nil {
		return s, err
	}

	s.DSN = v.GetString("dsn")
	s.Schema = v.GetString("schema")
	s.Alias = v.GetString("alias")
	s.Blacklist = nonEmpty(v.GetStringSlice("blacklist"))
	s.LookupFields = nonEmpty(v.GetStringSlice("lookup_fields"))
	s.SearchFields = nonEmpty(v.GetStringSlice("search_fields"))
	s.Labels = v.GetStringMapString("labels")
	s.CaseInsensitive = v.GetBool("case_insensitive")
	return s, nil
}

func parsePlaceholder(s string, dialect sqlcatalog.Dialect) (expr.PlaceholderStyle, error) {
	switch strings.ToLower(s) {
	case "":
		if dialect == sqlcatalog.Postgres {
			return expr.PlaceholderDollar, nil
		}
		return expr.PlaceholderQuestion, nil
	case "question", "?":
		return expr.PlaceholderQuestion, nil
	case "dollar", "$":
		return expr.PlaceholderDollar, nil
	case "colon", ":":
		return expr.PlaceholderColon, nil
	}
	return 0, fmt.Errorf("unknown placeholder style %q", s)
}

// nonEmpty drops blank entries and returns nil when none remain, so an
// unset list falls back to the library default.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// aliasedTable overrides the alias of an introspected table.
type aliasedTable struct {
	catalog.Table
	alias string
}

func (t aliasedTable) Alias() string { return t.alias }

// session holds an open catalog and the filters built for one table.
type session struct {
	settings settings
	logger   *slog.Logger
	catalog  *sqlcatalog.Catalog
	table    catalog.Table
	manager  *searchfilter.Manager
	filters  *filter.Collection
}

func openSession(ctx context.Context, v *viper.Viper) (*session, error) {
	s, err := loadSettings(v)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.LogLevel}))

	cat, err := sqlcatalog.Open(ctx, s.Dialect, s.DSN, sqlcatalog.Options{
		Schema: s.Schema,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	sess, err := newSession(ctx, s, logger, cat)
	if err != nil {
		cat.Close()
		return nil, err
	}
	return sess, nil
}

func newSession(ctx context.Context, s settings, logger *slog.Logger, cat *sqlcatalog.Catalog) (*session, error) {
	table, err := cat.Table(ctx, s.Table)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, s.Table)
	}
	if s.Alias != "" {
		table = aliasedTable{Table: table, alias: s.Alias}
	}

	cfg := searchfilter.Config{
		Logger:              logger,
		FieldBlacklist:      s.Blacklist,
		DefaultLookupFields: s.LookupFields,
		FilterOptions:       criterion.Options{CaseInsensitive: s.CaseInsensitive},
	}
	if len(s.SearchFields) > 0 {
		fields := make([]criterion.Criterion, 0, len(s.SearchFields))
		for _, name := range s.SearchFields {
			fields = append(fields, criterion.NewString(expr.Column(table.Alias()+"."+name)))
		}
		cfg.SearchCriterion = criterion.NewOr(fields...)
	}

	m, err := searchfilter.NewManager(cfg)
	if err != nil {
		return nil, err
	}

	coll, err := m.AppendFromSchema(m.NewCollection(), table, s.Labels, nil, searchfilter.SchemaOptions{})
	if err != nil {
		return nil, err
	}
	logger.Debug("filters built", "table", table.TableName(), "filters", coll.Len())

	return &session{
		settings: s,
		logger:   logger,
		catalog:  cat,
		table:    table,
		manager:  m,
		filters:  coll,
	}, nil
}

func (s *session) Close() error {
	return s.catalog.Close()
}

func (s *session) encoder() *expr.SQLEncoder {
	return expr.NewSQLEncoder(&expr.EncoderOptions{Placeholder: s.settings.Placeholder})
}
