package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SEARCHFILTER"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "searchfilter",
		Short: "Build search filters from a table schema and render searches to SQL",
		Long: `Build search filters from a table schema and render searches to SQL.

Settings are read from flags, then SEARCHFILTER_* environment variables, then
searchfilter.yaml in the working directory or $HOME. Environment variable names
are the flag names upper-cased with dashes replaced by underscores, e.g.
SEARCHFILTER_DSN=articles.db or SEARCHFILTER_LOG_LEVEL=debug.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is searchfilter.yaml in . or $HOME)")
	pf.String("driver", "duckdb", "database dialect: duckdb, postgres or sqlite")
	pf.String("dsn", "", "data source name")
	pf.String("schema", "", "database schema (default depends on the driver)")
	pf.StringP("table", "t", "", "table to build filters for")
	pf.String("alias", "", "alias used to qualify columns (default is the camelized table name)")
	pf.String("placeholder", "", "bound parameter style: question, dollar or colon (default depends on the driver)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.StringSlice("blacklist", nil, "columns never turned into filters (default id,password,created,modified)")
	pf.StringSlice("lookup-fields", nil, "candidate display columns for lookups (default name,title,id)")
	pf.StringSlice("search-fields", nil, "columns matched by the global \"search\" alias")
	pf.StringToString("labels", nil, "label overrides, column=label")
	pf.Bool("case-insensitive", false, "use ILIKE for like conditions")

	if err := bindFlags(v, pf); err != nil {
		panic(err)
	}

	cmd.AddCommand(newFieldsCmd(v), newWhereCmd(v))
	return cmd
}

// bindFlags binds every flag under its name with dashes replaced by
// underscores, matching the config file keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName("searchfilter")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}
