package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/hugr-lab/searchfilter-go"
)

func blogDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "blog.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE authors (id INTEGER PRIMARY KEY, name VARCHAR(100) NOT NULL)`,
		`CREATE TABLE articles (id INTEGER PRIMARY KEY, author_id INTEGER, title VARCHAR(255), views BIGINT, password VARCHAR(64))`,
		`INSERT INTO authors VALUES (1, 'John'), (2, 'Jane')`,
		`INSERT INTO articles VALUES (1, 1, 'First post', 10, 'x'), (2, 2, 'Second post', 25, 'y'), (3, 1, 'First steps', 50, 'z')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFieldsCommand(t *testing.T) {
	dsn := blogDB(t)

	out, err := run(t, "", "fields", "--driver", "sqlite", "--dsn", dsn, "--table", "articles",
		"--labels", "views=Hits")
	require.NoError(t, err)

	var view map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Len(t, view, 3)
	require.Equal(t, "Author Name", view["author_id"]["name"])
	require.Equal(t, "/authors/autocomplete.json", view["author_id"]["autocompleteUrl"])
	require.Equal(t, "Hits", view["views"]["name"])
	require.NotContains(t, view, "password")
}

func TestFieldsCommandArrowFile(t *testing.T) {
	dsn := blogDB(t)
	target := filepath.Join(t.TempDir(), "fields.arrow.zst")

	_, err := run(t, "", "fields", "--driver", "sqlite", "--dsn", dsn, "-t", "articles",
		"--format", "arrow", "--zstd", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestWhereCommand(t *testing.T) {
	dsn := blogDB(t)
	base := []string{"where", "--driver", "sqlite", "--dsn", dsn, "--table", "articles"}

	out, err := run(t, "", append(base, "f[0]=title&c[0]=like&v[0][value][]=First")...)
	require.NoError(t, err)
	require.Equal(t, "Articles.title LIKE ?\n-- ? = \"First%\"\n", out)

	out, err = run(t, "", append(base, "--select", "--placeholder", "dollar", "f[0]=views&c[0]=>&v[0][value][]=20")...)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "SELECT * FROM articles Articles WHERE Articles.views > $1\n"), out)

	out, err = run(t, "f[0]=author_id&c[0]=like&v[0][value][]=Jo\n", base...)
	require.NoError(t, err)
	require.Equal(t, "Articles.author_id IN (SELECT Authors.id FROM authors Authors WHERE name LIKE ?)\n-- ? = \"Jo%\"\n", out)
}

func TestWhereCommandMsgpack(t *testing.T) {
	dsn := blogDB(t)

	data, err := msgpack.Marshal(searchfilter.Params{
		Fields:     map[string]string{"0": "title"},
		Conditions: map[string]string{"0": "like"},
		Values:     map[string]map[string]any{"0": {"value": []any{"Second"}}},
	})
	require.NoError(t, err)

	out, err := run(t, string(data), "where", "--driver", "sqlite", "--dsn", dsn, "-t", "articles", "--msgpack", "-")
	require.NoError(t, err)
	require.Equal(t, "Articles.title LIKE ?\n-- ? = \"Second%\"\n", out)
}

func TestSettingsFromEnvAndConfig(t *testing.T) {
	dsn := blogDB(t)

	cfg := filepath.Join(t.TempDir(), "searchfilter.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("driver: sqlite\ntable: articles\nalias: A\n"), 0o644))
	t.Setenv("SEARCHFILTER_DSN", dsn)
	t.Setenv("SEARCHFILTER_SEARCH_FIELDS", "title")

	out, err := run(t, "", "where", "--config", cfg, "f[0]=search&c[0]=like&v[0][value][]=steps")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "A.title LIKE ?\n"), out)
}

func TestSettingsErrors(t *testing.T) {
	_, err := run(t, "", "fields", "--driver", "sqlite", "--dsn", ":memory:")
	require.ErrorIs(t, err, errNoTable)

	_, err = run(t, "", "fields", "--driver", "oracle", "-t", "x")
	require.Error(t, err)

	_, err = run(t, "", "fields", "--driver", "sqlite", "--dsn", ":memory:", "-t", "x", "--placeholder", "percent")
	require.Error(t, err)

	_, err = run(t, "", "fields", "--driver", "sqlite", "--dsn", ":memory:", "-t", "missing")
	require.Error(t, err)
}
