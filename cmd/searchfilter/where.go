package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugr-lab/searchfilter-go"
	"github.com/hugr-lab/searchfilter-go/criterion"
	"github.com/hugr-lab/searchfilter-go/expr"
)

func newWhereCmd(v *viper.Viper) *cobra.Command {
	var (
		msgpackFile string
		selectAll   bool
	)

	cmd := &cobra.Command{
		Use:   "where [query]",
		Short: "Render a search request to SQL",
		Long: `Render a search request to SQL.

The request is a query string in the f/c/v form, e.g.
  f[0]=title&c[0]=like&v[0][value][]=First
read from the argument or from stdin. With --msgpack the request is read as
a msgpack-encoded {f, c, v} map instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := readParams(cmd.InOrStdin(), args, msgpackFile)
			if err != nil {
				return err
			}

			sess, err := openSession(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer sess.Close()

			st, err := sess.render(sess.manager.FormatSearchData(params), selectAll)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.SQL)
			for _, b := range st.Bindings {
				if b.Type == "" {
					fmt.Fprintf(out, "-- %s = %#v\n", b.Placeholder, b.Value)
					continue
				}
				fmt.Fprintf(out, "-- %s = %#v (%s)\n", b.Placeholder, b.Value, b.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&msgpackFile, "msgpack", "", "read a msgpack request from a file, - for stdin")
	cmd.Flags().BoolVar(&selectAll, "select", false, "print a full SELECT statement instead of the predicate")
	return cmd
}

func readParams(stdin io.Reader, args []string, msgpackFile string) (searchfilter.Params, error) {
	if msgpackFile != "" {
		var (
			data []byte
			err  error
		)
		if msgpackFile == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(msgpackFile)
		}
		if err != nil {
			return searchfilter.Params{}, err
		}
		return searchfilter.DecodeParams(data)
	}

	if len(args) == 1 {
		return searchfilter.ParseQuery(args[0])
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return searchfilter.Params{}, err
	}
	return searchfilter.ParseQuery(strings.TrimSpace(string(data)))
}

func (s *session) render(search *criterion.Search, selectAll bool) (expr.Statement, error) {
	if selectAll {
		q, err := s.manager.Query(s.table, s.filters, search)
		if err != nil {
			return expr.Statement{}, err
		}
		return q.SQL(s.encoder()), nil
	}
	where, err := s.manager.Where(s.filters, search)
	if err != nil {
		return expr.Statement{}, err
	}
	return s.encoder().Encode(where), nil
}
