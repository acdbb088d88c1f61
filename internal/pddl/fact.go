package pddl

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
)

// buildFact parses a predicate application "(name arg1 arg2 ...)" into a
// valueless model.Fact (the Value slot, when relevant, is filled in by the
// caller — effect assignment and fluent-equality conditions each attach it
// differently).
func (s *scope) buildFact(expr *SExpr) (model.Fact, error) {
	if expr.IsAtom() || len(expr.List) == 0 {
		return model.Fact{}, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected a predicate application")
	}
	head := expr.List[0]
	if !head.IsAtom() {
		return model.Fact{}, errAt(Token{Offset: head.Offset, Line: head.Line}, "expected a predicate name")
	}
	pred, ok := s.ont.Predicates.Get(head.Atom)
	if !ok {
		return model.Fact{}, errAt(Token{Offset: head.Offset, Line: head.Line}, "unknown predicate %q", head.Atom)
	}
	argExprs := expr.List[1:]
	if len(argExprs) != pred.Arity() {
		return model.Fact{}, errAt(Token{Offset: expr.Offset, Line: expr.Line},
			"predicate %q expects %d arguments, got %d", head.Atom, pred.Arity(), len(argExprs))
	}

	numberType := s.ont.Types.Number()
	fact := model.Fact{Name: head.Atom}
	for _, a := range argExprs {
		if !a.IsAtom() {
			return model.Fact{}, errAt(Token{Offset: a.Offset, Line: a.Line}, "expected an argument name, found a list")
		}
		e, err := s.resolveEntity(a.Atom, numberType)
		if err != nil {
			return model.Fact{}, err
		}
		fact.Args = append(fact.Args, e)
	}
	return fact, nil
}

func (s *scope) isFluent(expr *SExpr) bool {
	if expr.IsAtom() || len(expr.List) == 0 || !expr.List[0].IsAtom() {
		return false
	}
	pred, ok := s.ont.Predicates.Get(expr.List[0].Atom)
	return ok && pred.IsFluent()
}
