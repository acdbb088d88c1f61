// Package unify implements the lifted-to-ground binding engine: matching a
// FactOptional against ground facts under type and value constraints, and
// enumerating the combinations a set of independently-bound parameters
// admits once cross-atom constraints are taken into account.
package unify

import (
	"sort"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// Binding maps a parameter name to the ground Entity chosen for it.
type Binding map[string]ontology.Entity

// Clone returns a shallow copy of b.
func (b Binding) Clone() Binding {
	cp := make(Binding, len(b))
	for k, v := range b {
		cp[k] = v
	}
	return cp
}

// ValueConstraint is one candidate Entity for a parameter, together with
// the constraints picking that entity carries over onto other parameters:
// entity e is only valid for parameter ?x when ?y is one of the entities
// named in Constraints["?y"].
type ValueConstraint struct {
	Entity      ontology.Entity
	Constraints map[string][]ontology.Entity // other parameter name -> allowed entities
}

// ParameterValuesWithConstraints maps a Parameter name to the list of
// entities it could be bound to, each with its cross-parameter constraints.
type ParameterValuesWithConstraints map[string][]ValueConstraint

// UnfoldMapWithSet enumerates the cartesian product of m's per-parameter
// candidates into concrete Binding maps, filtering out any combination that
// violates a carried-over constraint, visiting parameters in lexicographic
// order for a deterministic result.
func UnfoldMapWithSet(m ParameterValuesWithConstraints) []Binding {
	params := make([]string, 0, len(m))
	for p := range m {
		params = append(params, p)
	}
	sort.Strings(params)

	var results []Binding
	acc := make(Binding, len(params))
	var rec func(i int)
	rec = func(i int) {
		if i == len(params) {
			results = append(results, acc.Clone())
			return
		}
		pname := params[i]
		for _, vc := range m[pname] {
			if !constraintsSatisfied(vc, acc) {
				continue
			}
			acc[pname] = vc.Entity
			rec(i + 1)
			delete(acc, pname)
		}
	}
	rec(0)
	return results
}

func constraintsSatisfied(vc ValueConstraint, acc Binding) bool {
	for otherParam, allowed := range vc.Constraints {
		existing, bound := acc[otherParam]
		if !bound {
			continue
		}
		found := false
		for _, a := range allowed {
			if a.Equal(existing) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
