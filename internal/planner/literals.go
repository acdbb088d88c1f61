package planner

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

// unsatisfiedLiterals collects the set of unsatisfied atoms of cond
// together with the polarity required to satisfy it. It only descends
// into the shapes that meaningfully decompose into achievable literals
// (And, Or, Not-of-atom, Forall); Compare/Imply/NumberConstant/FluentRead
// are ground-check-only (a false comparison simply fails this search
// branch rather than producing a literal to chase, since numeric
// optimization search is out of scope) and Exists contributes the
// unsatisfied literals of its first still-failing witness, since only one
// witness needs to become true.
func unsatisfiedLiterals(ws *world.WorldState, constants, objects *ontology.SetOfEntities, cond *model.Condition, binding unify.Binding) []model.FactOptional {
	if cond == nil {
		return nil
	}
	switch cond.Kind {
	case model.CondAtom:
		fo := *cond.Atom
		if world.IsTrue(ws, constants, objects, cond, binding) == model.True {
			return nil
		}
		return []model.FactOptional{unify.SubstituteFactOptional(fo, binding)}
	case model.CondNot:
		if world.IsTrue(ws, constants, objects, cond, binding) == model.True {
			return nil
		}
		if cond.Children[0].Kind == model.CondAtom {
			negated := *cond.Children[0].Atom
			negated.Negated = !negated.Negated
			return []model.FactOptional{unify.SubstituteFactOptional(negated, binding)}
		}
		return nil
	case model.CondAnd:
		var out []model.FactOptional
		for _, ch := range cond.Children {
			out = append(out, unsatisfiedLiterals(ws, constants, objects, ch, binding)...)
		}
		return out
	case model.CondOr:
		if world.IsTrue(ws, constants, objects, cond, binding) == model.True {
			return nil
		}
		if len(cond.Children) == 0 {
			return nil
		}
		return unsatisfiedLiterals(ws, constants, objects, cond.Children[0], binding)
	case model.CondForall:
		var out []model.FactOptional
		for _, e := range ontology.TypedDomain(cond.Param.Type, constants, objects) {
			sub := binding.Clone()
			sub[cond.Param.Name] = e
			out = append(out, unsatisfiedLiterals(ws, constants, objects, cond.Body, sub)...)
		}
		return out
	case model.CondExists:
		for _, e := range ontology.TypedDomain(cond.Param.Type, constants, objects) {
			sub := binding.Clone()
			sub[cond.Param.Name] = e
			lits := unsatisfiedLiterals(ws, constants, objects, cond.Body, sub)
			if lits == nil && world.IsTrue(ws, constants, objects, cond.Body, sub) == model.True {
				return nil
			}
			if len(lits) > 0 {
				return lits
			}
		}
		return nil
	default:
		// Compare / Imply / NumberConstant / FluentRead: ground-check only.
		if world.IsTrue(ws, constants, objects, cond, binding) == model.True {
			return nil
		}
		return nil
	}
}

// countSatisfiedAtoms counts how many positive/negative atom leaves of cond
// currently hold — the monotone progress measure "oneStepTowards" goals
// are scored against, since they require a strictly-decreasing
// unsatisfied-atom count rather than full satisfaction.
func countSatisfiedAtoms(ws *world.WorldState, constants, objects *ontology.SetOfEntities, cond *model.Condition, binding unify.Binding) int {
	total := 0
	cond.ForAll(func(fo model.FactOptional, ignoreValue bool) {
		c := model.AtomCond(fo)
		if world.IsTrue(ws, constants, objects, c, binding) == model.True {
			total++
		}
	})
	return total
}

// totalAtoms counts every atom leaf of cond, the denominator for the
// oneStepTowards progress measure.
func totalAtoms(cond *model.Condition) int {
	total := 0
	cond.ForAll(func(fo model.FactOptional, ignoreValue bool) {
		total++
	})
	return total
}
