// Package main is the entry point for the typedoc CLI.
//
// typedoc loads Go packages through the standard analysis engine, converts
// the checked declarations into a cross-referenced documentation graph, and
// writes the graph as JSON or YAML artifacts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
