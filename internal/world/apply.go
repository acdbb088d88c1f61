package world

import (
	"strconv"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
)

// Modify applies eff to ws under binding, following a fixed evaluation
// order: Add/Delete/Assign/Increase/Decrease mutate immediately, Forall
// expands by enumerating the typed domain, and every When condition is
// evaluated against the world as it stood at the start of this call (the
// "pre-effect world") with its body deferred and applied once, after the
// rest of the tree — never cascaded into further When evaluation. It
// returns every fact touched, for the caller to feed to the event engine
// as "newly true".
func Modify(ws *WorldState, eff *model.Effect, binding unify.Binding, constants, objects *ontology.SetOfEntities) []model.Fact {
	if eff == nil {
		return nil
	}
	preEffect := ws.Clone()
	var touched []model.Fact
	var deferred []*model.Effect

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
		case model.EffForall:
			domain := ontology.TypedDomain(e.Param.Type, constants, objects)
			for _, ent := range domain {
				sub := b.Clone()
				sub[e.Param.Name] = ent
				walk(e.Body, sub)
			}
		case model.EffWhen:
			condSub := unify.SubstituteCondition(e.Cond, b)
			if IsTrue(preEffect, constants, objects, condSub, unify.Binding{}) == model.True {
				deferred = append(deferred, unify.SubstituteEffect(e.Then, b))
			}
		case model.EffAdd:
			f := unify.SubstituteFact(*e.Fact, b)
			ws.AddFact(f, false)
			touched = append(touched, f)
		case model.EffDelete:
			f := unify.SubstituteFact(*e.Fact, b)
			ws.RemoveFact(f)
			touched = append(touched, f)
		case model.EffAssign:
			f := unify.SubstituteFact(*e.Fact, b)
			val, ok := resolveOperand(ws, e, b)
			if !ok {
				return
			}
			f.Value = &val
			ws.AddFact(f, false)
			touched = append(touched, f)
		case model.EffIncrease, model.EffDecrease:
			f := unify.SubstituteFact(*e.Fact, b)
			cur := 0.0
			if v, ok := ws.GetFluentValue(f); ok {
				cur, _ = parseNumber(v.Value)
			}
			delta, ok := resolveOperandNumber(ws, e, b)
			if !ok {
				return
			}
			var result float64
			if e.Kind == model.EffIncrease {
				result = cur + delta
			} else {
				result = cur - delta
			}
			val := ontology.Entity{Value: formatNumber(result), Type: ws.types.Number()}
			f.Value = &val
			ws.AddFact(f, false)
			touched = append(touched, f)
		}
	}

	walk(eff, binding)
	for _, d := range deferred {
		walk(d, unify.Binding{})
	}
	return touched
}

func resolveOperand(ws *WorldState, e *model.Effect, b unify.Binding) (ontology.Entity, bool) {
	if e.Value != nil {
		return unify.Substitute(*e.Value, b), true
	}
	if e.ValueFluent != nil {
		f := unify.SubstituteFact(*e.ValueFluent, b)
		return ws.GetFluentValue(f)
	}
	return ontology.Entity{}, false
}

func resolveOperandNumber(ws *WorldState, e *model.Effect, b unify.Binding) (float64, bool) {
	v, ok := resolveOperand(ws, e, b)
	if !ok {
		return 0, false
	}
	return parseNumber(v.Value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
