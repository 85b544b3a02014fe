// Package main provides the gauge CLI, a dimension-aware unit calculator
// backed by the pkg/unit symbol tables and a SQLite vocabulary of
// user-defined units.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
