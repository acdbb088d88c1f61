package pddl

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// scope carries everything a domain/problem builder accumulates while
// walking the s-expression tree: the ontology under construction, the
// current lexical parameters (action/event/quantifier variables), and the
// objects in scope when parsing a problem.
type scope struct {
	ont     *ontology.Ontology
	objects *ontology.SetOfEntities
	params  map[string]ontology.Parameter
}

func newScope(ont *ontology.Ontology) *scope {
	return &scope{ont: ont, params: map[string]ontology.Parameter{}}
}

// withParams returns a copy of s with additional parameters bound, used
// when descending into a forall/exists quantifier body so the outer
// scope's bindings are unaffected once the quantifier body is done.
func (s *scope) withParams(extra []ontology.Parameter) *scope {
	next := &scope{ont: s.ont, objects: s.objects, params: make(map[string]ontology.Parameter, len(s.params)+len(extra))}
	for k, v := range s.params {
		next.params[k] = v
	}
	for _, p := range extra {
		next.params[p.Name] = p
	}
	return next
}

// typedItem is one name in a typed list ("?x ?y - foo" or "a b - bar").
type typedItem struct {
	Name     string
	TypeName string
}

// parseTypedAtoms groups a flat run of atoms on PDDL's "name... - type"
// convention: every name accumulated since the last "-" (or the start)
// takes the type named immediately after that dash. A trailing run with no
// dash defaults to "object" (PDDL's implicit root type when :typing
// declares no explicit supertype).
func parseTypedAtoms(items []*SExpr) ([]typedItem, error) {
	var out []typedItem
	var pending []string
	i := 0
	for i < len(items) {
		it := items[i]
		if !it.IsAtom() {
			return nil, errAt(Token{Offset: it.Offset, Line: it.Line}, "expected a name, found a list")
		}
		if it.Atom == "-" {
			if i+1 >= len(items) {
				return nil, errAt(Token{Offset: it.Offset, Line: it.Line}, "'-' must be followed by a type name")
			}
			typeName := items[i+1].Atom
			for _, n := range pending {
				out = append(out, typedItem{Name: n, TypeName: typeName})
			}
			pending = nil
			i += 2
			continue
		}
		pending = append(pending, it.Atom)
		i++
	}
	for _, n := range pending {
		out = append(out, typedItem{Name: n, TypeName: "object"})
	}
	return out, nil
}

// resolveParams converts a typed parameter list ("?x ?y - foo ?z - bar")
// into ontology.Parameters, registering any type name not yet declared
// (PDDL permits using a type in a param list before its :types
// declaration is re-scanned, though in practice :types is parsed first).
func (s *scope) resolveParams(items []*SExpr) ([]ontology.Parameter, error) {
	typed, err := parseTypedAtoms(items)
	if err != nil {
		return nil, err
	}
	params := make([]ontology.Parameter, len(typed))
	for i, t := range typed {
		typ, err := s.ont.Types.AddType(t.TypeName, "")
		if err != nil {
			return nil, err
		}
		params[i] = ontology.Parameter{Name: t.Name, Type: typ}
	}
	return params, nil
}

// resolveEntity looks up name as a bound parameter, then as a known
// constant/object, falling back to treating it as a number literal or an
// untyped literal. An undeclared parameter ("?x" not bound in scope) is a
// semantic error only when the name starts with '?'.
func (s *scope) resolveEntity(name string, numberType *ontology.Type) (ontology.Entity, error) {
	if p, ok := s.params[name]; ok {
		return p.ToEntity(), nil
	}
	if e, ok := s.ont.Constants.Get(name); ok {
		return e, nil
	}
	if s.objects != nil {
		if e, ok := s.objects.Get(name); ok {
			return e, nil
		}
	}
	if len(name) > 0 && name[0] == '?' {
		return ontology.Entity{}, &ParseError{Msg: "undeclared parameter " + name}
	}
	return ontology.NewEntity(name, nil, numberType), nil
}
