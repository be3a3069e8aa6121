package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SamuraiJack/typedoc/internal/output"
)

var (
	flagConfig  string
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typedoc",
		Short:         "Documentation graph generator for Go packages",
		Long: `typedoc converts checked Go packages into a normalized, cross-referenced
documentation graph and writes it as JSON or YAML.

Declarations, signatures, parameters, and type occurrences become nodes of
one project tree; named-type usages become references that are linked to
their declarations in a final resolve pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			output.SetupLogging(flagVerbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: TYPEDOC_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func configFile() string {
	if flagConfig != "" {
		return flagConfig
	}

	return envOr("TYPEDOC_CONFIG", "")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
