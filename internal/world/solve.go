package world

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
)

// Solve returns every binding extending the input binding under which cond
// holds against ws, threading positive atoms left-to-right through a
// conjunction so later (possibly negative) atoms in the same And are
// checked once their arguments have already been grounded by earlier
// siblings.
func Solve(cond *model.Condition, ws *WorldState, constants, objects *ontology.SetOfEntities, binding unify.Binding) []unify.Binding {
	if cond == nil {
		return []unify.Binding{binding}
	}
	switch cond.Kind {
	case model.CondAtom:
		return solveAtom(*cond.Atom, ws, binding)
	case model.CondAnd:
		results := []unify.Binding{binding}
		for _, ch := range cond.Children {
			var next []unify.Binding
			for _, b := range results {
				next = append(next, Solve(ch, ws, constants, objects, b)...)
			}
			results = next
			if len(results) == 0 {
				return nil
			}
		}
		return results
	case model.CondOr:
		var out []unify.Binding
		for _, ch := range cond.Children {
			out = append(out, Solve(ch, ws, constants, objects, binding)...)
		}
		return dedupeBindings(out)
	case model.CondNot, model.CondImply, model.CondForall, model.CondCompare:
		if IsTrue(ws, constants, objects, cond, binding) == model.True {
			return []unify.Binding{binding}
		}
		return nil
	case model.CondExists:
		domain := ontology.TypedDomain(cond.Param.Type, constants, objects)
		for _, e := range domain {
			sub := binding.Clone()
			sub[cond.Param.Name] = e
			if len(Solve(cond.Body, ws, constants, objects, sub)) > 0 {
				return []unify.Binding{binding}
			}
		}
		return nil
	default:
		return nil
	}
}

func solveAtom(fo model.FactOptional, ws *WorldState, binding unify.Binding) []unify.Binding {
	if isGroundUnder(fo.Fact, binding) {
		if atomTriState(ws, fo, binding) == model.True {
			return []unify.Binding{binding}
		}
		return nil
	}
	if fo.Negated {
		// A negative literal with unbound arguments cannot be enumerated
		// against "everything that is not a fact" — it must be ground by
		// the time it is reached (typically by an earlier sibling in the
		// same conjunction).
		return nil
	}
	pattern := unify.SubstituteFact(fo.Fact, binding)
	candidates := ws.CandidatesForName(pattern.Name)
	return unify.MatchAll(pattern, candidates, binding)
}

func dedupeBindings(list []unify.Binding) []unify.Binding {
	seen := make(map[string]bool)
	var out []unify.Binding
	for _, b := range list {
		k := bindingKey(b)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}

func bindingKey(b unify.Binding) string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sortStrings(keys)
	s := ""
	for _, k := range keys {
		s += k + "=" + b[k].Value + "/" + b[k].TypeName() + ";"
	}
	return s
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
