// Package main is the entry point for the planner CLI: `planner plan`,
// `planner validate`, `planner watch`, built on spf13/cobra's root
// command and subcommand tree.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
