package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugr-lab/searchfilter-go"
)

func newFieldsCmd(v *viper.Viper) *cobra.Command {
	var (
		format string
		zstd   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the view config of the filters derived from a table",
		Example: `  searchfilter fields --driver sqlite --dsn blog.db --table articles
  searchfilter fields -t articles --format arrow --zstd -o articles.arrow.zst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := searchfilter.ExportOptions{Compress: zstd}
			switch format {
			case "json":
				opts.Format = searchfilter.ExportJSON
			case "arrow":
				opts.Format = searchfilter.ExportArrow
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			sess, err := openSession(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer sess.Close()

			data, err := searchfilter.EncodeViewConfig(sess.filters, opts)
			if err != nil {
				return err
			}

			if output != "" {
				return os.WriteFile(output, data, 0o644)
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(data); err != nil {
				return err
			}
			if opts.Format == searchfilter.ExportJSON && !zstd {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or arrow")
	cmd.Flags().BoolVar(&zstd, "zstd", false, "compress the output with zstd")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
