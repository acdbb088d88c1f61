package planner

import (
	"sort"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/domain"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

// collectCandidates finds, for each unsatisfied literal, the actions whose
// effect could establish it (via the successor cache), unifies that effect
// against the literal to obtain a partial binding, and returns one
// GroundAction per distinct (action, binding) pair with EstablishCount set
// to the number of requested literals it can establish at once — the
// input sortCandidates needs to prefer actions that make the most progress
// per step.
func collectCandidates(ws *world.WorldState, st *searchState, literals []model.FactOptional) []GroundAction {
	index := make(map[string]int) // (action id, binding) key -> index into out
	var out []GroundAction

	for _, lit := range literals {
		sigs := lit.Fact.Signatures(st.dom.Ontology.Types)
		ids := map[string]bool{}
		for _, sig := range sigs {
			for _, id := range st.dom.Successors().ActionsEstablishing(sig, !lit.Negated) {
				ids[id] = true
			}
		}
		for id := range ids {
			action, ok := st.dom.ActionByID(id)
			if !ok || action.Effect == nil {
				continue
			}
			for _, binding := range bindingsEstablishing(action.Effect, lit, unify.Binding{}) {
				key := id + "/" + bindingKeyLocal(binding)
				if i, ok := index[key]; ok {
					out[i].EstablishCount++
					continue
				}
				index[key] = len(out)
				out = append(out, GroundAction{
					ActionID:       id,
					Binding:        binding,
					Args:           argsForAction(action, binding),
					EstablishCount: 1,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActionID < out[j].ActionID })
	return out
}

// bindingsEstablishing finds every way to extend binding so that eff's
// tree contains an Add/Assign (or, for a negated literal, a Delete) whose
// fact unifies with lit.Fact.
func bindingsEstablishing(eff *model.Effect, lit model.FactOptional, binding unify.Binding) []unify.Binding {
	var out []unify.Binding
	var walk func(e *model.Effect, b unify.Binding)
	walk = func(e *model.Effect, b unify.Binding) {
		if e == nil {
			return
		}
		switch e.Kind {
		case model.EffAnd:
			for _, ch := range e.Children {
				walk(ch, b)
			}
		case model.EffWhen:
			walk(e.Then, b)
		case model.EffForall:
			// A forall-effect establishes the literal for whichever
			// binding of its own parameter makes the body match; since
			// the domain is typically small, candidates are left for the
			// precondition-completion unifier to pin down the same way
			// ordinary parameters are, by leaving the forall parameter
			// unbound here and letting MatchFact skip entities that don't
			// unify.
			walk(e.Body, b)
		case model.EffAdd, model.EffAssign:
			if !lit.Negated {
				if next, ok := unify.MatchFact(*e.Fact, lit.Fact, b); ok {
					out = append(out, next)
				}
			}
		case model.EffDelete:
			if lit.Negated {
				if next, ok := unify.MatchFact(*e.Fact, lit.Fact, b); ok {
					out = append(out, next)
				}
			}
		}
	}
	walk(eff, binding)
	return out
}

func argsForAction(action *model.Action, binding unify.Binding) []ontology.Entity {
	args := make([]ontology.Entity, len(action.Params))
	for i, p := range action.Params {
		if v, ok := binding[p.Name]; ok {
			args[i] = v
		} else {
			args[i] = p.ToEntity()
		}
	}
	return args
}

// sortCandidates orders candidates so the actions most likely to pay off
// are tried first: actions establishing more of the requested goal
// literals sort before those establishing fewer, ties go to the
// cheaper action.Cost, and remaining ties break on action id for a
// deterministic, stable order.
func sortCandidates(dom *domain.Domain, candidates []GroundAction) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.EstablishCount != b.EstablishCount {
			return a.EstablishCount > b.EstablishCount
		}
		if costA, costB := actionCost(dom, a.ActionID), actionCost(dom, b.ActionID); costA != costB {
			return costA < costB
		}
		return a.ActionID < b.ActionID
	})
}

func actionCost(dom *domain.Domain, actionID string) float64 {
	if a, ok := dom.ActionByID(actionID); ok {
		return a.Cost
	}
	return 0
}

func bindingKeyLocal(b unify.Binding) string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + "=" + b[k].Value + ";"
	}
	return out
}
