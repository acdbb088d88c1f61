package world

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
)

// IsTrue evaluates cond against ws under binding, enumerating quantified
// parameters over the typed union of constants and objects. It returns
// model.Unknown when an atom still references a variable not
// present in binding and not itself bound by an enclosing quantifier —
// the signal the search engine uses to treat that atom as a literal still
// to be achieved rather than as settled false.
func IsTrue(ws *WorldState, constants, objects *ontology.SetOfEntities, cond *model.Condition, binding unify.Binding) model.TriState {
	if cond == nil {
		return model.True
	}
	switch cond.Kind {
	case model.CondAtom:
		return atomTriState(ws, *cond.Atom, binding)
	case model.CondAnd:
		return combineAnd(ws, constants, objects, cond.Children, binding)
	case model.CondOr:
		return combineOr(ws, constants, objects, cond.Children, binding)
	case model.CondNot:
		return negate(IsTrue(ws, constants, objects, cond.Children[0], binding))
	case model.CondImply:
		a := IsTrue(ws, constants, objects, cond.Children[0], binding)
		b := IsTrue(ws, constants, objects, cond.Children[1], binding)
		return combineOr2(negate(a), b)
	case model.CondForall:
		return evalForall(ws, constants, objects, cond, binding)
	case model.CondExists:
		return evalExists(ws, constants, objects, cond, binding)
	case model.CondCompare:
		return evalCompare(ws, binding, cond)
	default:
		return model.Unknown
	}
}

func atomTriState(ws *WorldState, fo model.FactOptional, binding unify.Binding) model.TriState {
	if !isGroundUnder(fo.Fact, binding) {
		return model.Unknown
	}
	f := unify.SubstituteFact(fo.Fact, binding)
	holds := atomHolds(ws, f, fo.ValueNegated)
	if fo.Negated {
		holds = !holds
	}
	if holds {
		return model.True
	}
	return model.False
}

func atomHolds(ws *WorldState, f model.Fact, valueNegated bool) bool {
	if f.Value == nil {
		return ws.HasFact(f)
	}
	cur, ok := ws.GetFluentValue(f)
	if !ok {
		if valueNegated {
			return !f.Value.IsUndefined()
		}
		return f.Value.IsUndefined()
	}
	eq := cur.Equal(*f.Value)
	if valueNegated {
		return !eq
	}
	return eq
}

func isGroundUnder(f model.Fact, binding unify.Binding) bool {
	for _, a := range f.Args {
		if a.IsVariable() {
			if _, ok := binding[a.Value]; !ok {
				return false
			}
		}
	}
	if f.Value != nil && f.Value.IsVariable() {
		if _, ok := binding[f.Value.Value]; !ok {
			return false
		}
	}
	return true
}

func negate(t model.TriState) model.TriState {
	switch t {
	case model.True:
		return model.False
	case model.False:
		return model.True
	default:
		return model.Unknown
	}
}

func combineAnd(ws *WorldState, constants, objects *ontology.SetOfEntities, children []*model.Condition, binding unify.Binding) model.TriState {
	sawUnknown := false
	for _, ch := range children {
		switch IsTrue(ws, constants, objects, ch, binding) {
		case model.False:
			return model.False
		case model.Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return model.Unknown
	}
	return model.True
}

func combineOr(ws *WorldState, constants, objects *ontology.SetOfEntities, children []*model.Condition, binding unify.Binding) model.TriState {
	sawUnknown := false
	for _, ch := range children {
		switch IsTrue(ws, constants, objects, ch, binding) {
		case model.True:
			return model.True
		case model.Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return model.Unknown
	}
	return model.False
}

func combineOr2(a, b model.TriState) model.TriState {
	if a == model.True || b == model.True {
		return model.True
	}
	if a == model.Unknown || b == model.Unknown {
		return model.Unknown
	}
	return model.False
}

func evalForall(ws *WorldState, constants, objects *ontology.SetOfEntities, cond *model.Condition, binding unify.Binding) model.TriState {
	domain := ontology.TypedDomain(cond.Param.Type, constants, objects)
	sawUnknown := false
	for _, e := range domain {
		sub := binding.Clone()
		sub[cond.Param.Name] = e
		switch IsTrue(ws, constants, objects, cond.Body, sub) {
		case model.False:
			return model.False
		case model.Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return model.Unknown
	}
	return model.True
}

func evalExists(ws *WorldState, constants, objects *ontology.SetOfEntities, cond *model.Condition, binding unify.Binding) model.TriState {
	domain := ontology.TypedDomain(cond.Param.Type, constants, objects)
	sawUnknown := false
	for _, e := range domain {
		sub := binding.Clone()
		sub[cond.Param.Name] = e
		switch IsTrue(ws, constants, objects, cond.Body, sub) {
		case model.True:
			return model.True
		case model.Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return model.Unknown
	}
	return model.False
}

func evalCompare(ws *WorldState, binding unify.Binding, cond *model.Condition) model.TriState {
	lhs, lok := evalNumeric(ws, binding, cond.Lhs)
	rhs, rok := evalNumeric(ws, binding, cond.Rhs)
	if !lok || !rok {
		return model.Unknown
	}
	var result bool
	switch cond.Op {
	case model.OpEq:
		result = lhs == rhs
	case model.OpNe:
		result = lhs != rhs
	case model.OpLt:
		result = lhs < rhs
	case model.OpLe:
		result = lhs <= rhs
	case model.OpGt:
		result = lhs > rhs
	case model.OpGe:
		result = lhs >= rhs
	}
	if result {
		return model.True
	}
	return model.False
}

func evalNumeric(ws *WorldState, binding unify.Binding, c *model.Condition) (float64, bool) {
	if c == nil {
		return 0, false
	}
	switch c.Kind {
	case model.CondNumberConstant:
		return c.Number, true
	case model.CondFluentRead:
		if !isGroundUnder(*c.FluentFact, binding) {
			return 0, false
		}
		f := unify.SubstituteFact(*c.FluentFact, binding)
		v, ok := ws.GetFluentValue(f)
		if !ok {
			return 0, false
		}
		return parseNumber(v.Value)
	default:
		return 0, false
	}
}
