package unify

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// MatchFact attempts to extend binding so that pattern — a lifted or ground
// Fact, whose variable arguments are Entities with IsVariable() true —
// matches candidate exactly. It applies the three argument rules
// (variable/constant/wildcard) plus the fluent-value rule, and constraint
// carry-over (a parameter already bound by an earlier atom must match
// here too).
func MatchFact(pattern, candidate model.Fact, binding Binding) (Binding, bool) {
	if pattern.Name != candidate.Name || len(pattern.Args) != len(candidate.Args) {
		return nil, false
	}
	next := binding.Clone()
	for i, arg := range pattern.Args {
		cArg := candidate.Args[i]
		if !matchEntity(arg, cArg, next) {
			return nil, false
		}
	}
	if !matchValue(pattern.Value, candidate.Value, next) {
		return nil, false
	}
	return next, true
}

func matchEntity(pattern, candidate ontology.Entity, binding Binding) bool {
	switch {
	case pattern.IsWildcard():
		return true
	case pattern.IsVariable():
		if existing, ok := binding[pattern.Value]; ok {
			return existing.Equal(candidate)
		}
		if pattern.Type != nil && candidate.Type != nil && !candidate.Type.IsA(pattern.Type) {
			return false
		}
		binding[pattern.Value] = candidate
		return true
	default:
		return pattern.Value == candidate.Value
	}
}

func matchValue(pattern, candidate *ontology.Entity, binding Binding) bool {
	switch {
	case pattern == nil:
		return candidate == nil
	case candidate == nil:
		// absence only satisfies a pattern explicitly asking for "undefined".
		return pattern.IsUndefined()
	case pattern.IsUndefined():
		return false
	default:
		return matchEntity(*pattern, *candidate, binding)
	}
}

// MatchAll returns the bindings extending binding for every candidate that
// matches pattern — the enumeration step behind solving an unbound atom
// against a WorldState's known facts for a given name.
func MatchAll(pattern model.Fact, candidates []model.Fact, binding Binding) []Binding {
	var out []Binding
	for _, c := range candidates {
		if next, ok := MatchFact(pattern, c, binding); ok {
			out = append(out, next)
		}
	}
	return out
}

// Substitute rewrites every variable Entity in args/value using binding,
// leaving unbound variables and wildcards untouched (used to ground an
// effect or precondition once a full action binding is known).
func Substitute(e ontology.Entity, binding Binding) ontology.Entity {
	if e.IsVariable() {
		if v, ok := binding[e.Value]; ok {
			return v
		}
	}
	return e
}

// SubstituteFact rewrites every argument and the value (if any) of f using
// binding.
func SubstituteFact(f model.Fact, binding Binding) model.Fact {
	args := make([]ontology.Entity, len(f.Args))
	for i, a := range f.Args {
		args[i] = Substitute(a, binding)
	}
	out := model.Fact{Name: f.Name, Args: args}
	if f.Value != nil {
		v := Substitute(*f.Value, binding)
		out.Value = &v
	}
	return out
}

// SubstituteFactOptional rewrites fo's fact using binding, preserving its
// polarity flags.
func SubstituteFactOptional(fo model.FactOptional, binding Binding) model.FactOptional {
	return model.FactOptional{
		Negated:      fo.Negated,
		Fact:         SubstituteFact(fo.Fact, binding),
		ValueNegated: fo.ValueNegated,
	}
}
