package pddl

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
)

// parseEffect parses an effect s-expression into a *model.Effect:
// and/not/when/forall/assign/increase/decrease, or a bare predicate
// application meaning "add".
func (s *scope) parseEffect(expr *SExpr) (*model.Effect, error) {
	if expr.IsAtom() || len(expr.List) == 0 {
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected an effect")
	}
	head := expr.List[0]
	if !head.IsAtom() {
		return nil, errAt(Token{Offset: head.Offset, Line: head.Line}, "expected an operator or predicate name")
	}

	switch head.Atom {
	case "and":
		children := make([]*model.Effect, 0, len(expr.List)-1)
		for _, child := range expr.List[1:] {
			c, err := s.parseEffect(child)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return model.AndEffect(children...), nil
	case "not":
		if len(expr.List) != 2 {
			return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "'not' takes exactly one operand")
		}
		fact, err := s.buildFact(expr.List[1])
		if err != nil {
			return nil, err
		}
		return model.DeleteEffect(fact), nil
	case "when":
		if len(expr.List) != 3 {
			return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "'when' takes a condition and an effect")
		}
		cond, err := s.parseCondition(expr.List[1])
		if err != nil {
			return nil, err
		}
		then, err := s.parseEffect(expr.List[2])
		if err != nil {
			return nil, err
		}
		return model.WhenEffect(cond, then), nil
	case "forall":
		if len(expr.List) != 3 || expr.List[1].IsAtom() {
			return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "'forall' expects a parameter list and a body")
		}
		params, err := s.resolveParams(expr.List[1].List)
		if err != nil {
			return nil, err
		}
		if len(params) != 1 {
			return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "forall-effect expects exactly one bound parameter")
		}
		inner := s.withParams(params)
		body, err := inner.parseEffect(expr.List[2])
		if err != nil {
			return nil, err
		}
		return model.ForallEffect(params[0], body), nil
	case "assign":
		return s.parseValueEffect(expr, model.EffAssign)
	case "increase":
		return s.parseValueEffect(expr, model.EffIncrease)
	case "decrease":
		return s.parseValueEffect(expr, model.EffDecrease)
	default:
		fact, err := s.buildFact(expr)
		if err != nil {
			return nil, err
		}
		return model.AddEffect(fact), nil
	}
}

func (s *scope) parseValueEffect(expr *SExpr, kind model.EffKind) (*model.Effect, error) {
	if len(expr.List) != 3 {
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expects a fluent and an operand")
	}
	fact, err := s.buildFact(expr.List[1])
	if err != nil {
		return nil, err
	}
	eff := &model.Effect{Kind: kind, Fact: &fact}
	operand := expr.List[2]
	if operand.IsAtom() {
		v, err := s.resolveEntity(operand.Atom, s.ont.Types.Number())
		if err != nil {
			return nil, err
		}
		eff.Value = &v
		return eff, nil
	}
	if !s.isFluent(operand) {
		return nil, errAt(Token{Offset: operand.Offset, Line: operand.Line}, "expected a fluent read or a literal value")
	}
	operandFact, err := s.buildFact(operand)
	if err != nil {
		return nil, err
	}
	eff.ValueFluent = &operandFact
	return eff, nil
}
