package pddl

import (
	"fmt"
	"io"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/planner"
)

// WritePlan serializes a found plan: a header comment naming the generator
// and the problem file, one S-expression action call per line, in
// execution order.
func WritePlan(w io.Writer, plan []planner.GroundAction, problemFile string) error {
	if _, err := fmt.Fprintf(w, "; Plan generated by ordered-goals-planner-sub001\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "; Problem file: %s\n", problemFile); err != nil {
		return err
	}
	for _, step := range plan {
		if _, err := fmt.Fprintf(w, "(%s", step.ActionID); err != nil {
			return err
		}
		for _, arg := range step.Args {
			if _, err := fmt.Fprintf(w, " %s", arg.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, ")\n"); err != nil {
			return err
		}
	}
	return nil
}
