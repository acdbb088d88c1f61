package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/pddl"
)

var validateFlags domainProblemFlags

// validateCmd parses a domain/problem pair and reports ontology errors
// without running a search, separating "build the domain and problem"
// from "run the planner" as its own subcommand.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and type-check a PDDL domain/problem pair without planning",
	RunE: func(cmd *cobra.Command, args []string) error {
		domainPath, problemPath, err := validateFlags.resolve(args)
		if err != nil {
			return err
		}
		return runValidate(domainPath, problemPath)
	},
}

func init() {
	validateFlags.register(validateCmd)
}

func runValidate(domainPath, problemPath string) error {
	domainSrc, err := readFile(domainPath)
	if err != nil {
		return err
	}
	problemSrc, err := readFile(problemPath)
	if err != nil {
		return err
	}

	dom, err := pddl.ParseDomain(domainSrc)
	if err != nil {
		return fmt.Errorf("parsing domain: %w", err)
	}
	if _, err := pddl.ParseProblem(problemSrc, dom); err != nil {
		return fmt.Errorf("parsing problem: %w", err)
	}

	fmt.Fprintf(os.Stdout, "ok: %d actions, %d predicates\n",
		len(dom.Actions), len(dom.Ontology.Predicates.All()))
	return nil
}
