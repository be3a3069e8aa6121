package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	version   = "dev"
	gitCommit = "none"
	buildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "typedoc version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Commit: %s\n", gitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  Built:  %s\n", buildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "  Go:     %s\n", runtime.Version())

			return nil
		},
	}
}
