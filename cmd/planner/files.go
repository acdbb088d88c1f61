package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// domainProblemFlags holds the -d/-p/--dp/positional argument surface
// shared by `plan` and `validate`.
type domainProblemFlags struct {
	domainPath  string
	problemPath string
	dpDir       string
}

func (f *domainProblemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.domainPath, "domain", "d", "", "domain PDDL file")
	cmd.Flags().StringVarP(&f.problemPath, "problem", "p", "", "problem PDDL file")
	cmd.Flags().StringVar(&f.dpDir, "dp", "", "directory containing domain.pddl and problem.pddl")
}

// resolve implements the three accepted forms: -d/-p flags, --dp DIR, or
// two positional arguments (the legacy form).
func (f *domainProblemFlags) resolve(args []string) (domainPath, problemPath string, err error) {
	switch {
	case f.dpDir != "":
		return filepath.Join(f.dpDir, "domain.pddl"), filepath.Join(f.dpDir, "problem.pddl"), nil
	case f.domainPath != "" || f.problemPath != "":
		if f.domainPath == "" || f.problemPath == "" {
			return "", "", fmt.Errorf("both -d/--domain and -p/--problem are required")
		}
		return f.domainPath, f.problemPath, nil
	case len(args) == 2:
		return args[0], args[1], nil
	default:
		return "", "", fmt.Errorf("expected -d DOMAIN -p PROBLEM, DOMAIN PROBLEM, or --dp DIR")
	}
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
