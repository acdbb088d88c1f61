package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/logging"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/pddl"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/planner"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/tracepp"
)

var (
	planFlags  domainProblemFlags
	outputPath string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Find a plan for a PDDL domain/problem pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		domainPath, problemPath, err := planFlags.resolve(args)
		if err != nil {
			return err
		}
		return runPlan(domainPath, problemPath, outputPath)
	},
}

func init() {
	planFlags.register(planCmd)
	planCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the plan to this file instead of stdout")
}

func runPlan(domainPath, problemPath, outputPath string) error {
	log := logging.Get(logging.CategoryCLI)

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
	prob, err := pddl.ParseProblem(problemSrc, dom)
	if err != nil {
		return fmt.Errorf("parsing problem: %w", err)
	}

	limits := planner.Limits{MaxDepth: cfg.GetMaxDepth(), MaxSteps: cfg.GetMaxSteps()}
	if cfg.Logging.Verbose {
		limits.Trace = tracepp.New()
	}

	result, ok := planner.PlanForMoreImportantGoalPossible(prob, dom, limits, time.Now())

	if limits.Trace != nil {
		format := cfg.Logging.TraceFormat
		rendered, renderErr := tracepp.Render(limits.Trace, format)
		if renderErr != nil {
			log.Warnf("failed to render trace: %v", renderErr)
		} else if rendered != "" {
			fmt.Fprint(os.Stderr, rendered)
		}
	}

	if !ok {
		log.Infof("no plan found for %s / %s", domainPath, problemPath)
		return fmt.Errorf("no plan found")
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return pddl.WritePlan(out, result.Plan, problemPath)
}
