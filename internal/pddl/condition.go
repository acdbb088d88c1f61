package pddl

import (
	"strconv"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// parseCondition parses a condition s-expression into a *model.Condition.
// It recognizes and/or/not/forall/exists/imply/comparisons plus a bare
// predicate application as a positive atom.
func (s *scope) parseCondition(expr *SExpr) (*model.Condition, error) {
	if expr.IsAtom() {
		if expr.Atom == "true" {
			return model.And(), nil
		}
		if pred, ok := s.ont.Predicates.Get(expr.Atom); ok && pred.Arity() == 0 {
			fact := model.Fact{Name: expr.Atom}
			return model.AtomCond(model.NewFactOptional(false, fact)), nil
		}
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected a condition, found bare atom %q", expr.Atom)
	}
	if len(expr.List) == 0 {
		return model.And(), nil
	}
	head := expr.List[0]
	if !head.IsAtom() {
		return nil, errAt(Token{Offset: head.Offset, Line: head.Line}, "expected an operator or predicate name")
	}

	switch head.Atom {
	case "and":
		return s.parseAndOr(expr, model.And)
	case "or":
		return s.parseAndOr(expr, model.Or)
	case "not":
		if len(expr.List) != 2 {
			return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "'not' takes exactly one operand")
		}
		inner, err := s.parseCondition(expr.List[1])
		if err != nil {
			return nil, err
		}
		return negateCondition(inner), nil
	case "imply":
		if len(expr.List) != 3 {
			return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "'imply' takes exactly two operands")
		}
		a, err := s.parseCondition(expr.List[1])
		if err != nil {
			return nil, err
		}
		b, err := s.parseCondition(expr.List[2])
		if err != nil {
			return nil, err
		}
		return model.Imply(a, b), nil
	case "forall":
		return s.parseQuantifier(expr, model.Forall)
	case "exists":
		return s.parseQuantifier(expr, model.Exists)
	case "=", "!=", "<", "<=", ">", ">=":
		return s.parseComparison(expr, head.Atom)
	default:
		fact, err := s.buildFact(expr)
		if err != nil {
			return nil, err
		}
		return model.AtomCond(model.NewFactOptional(false, fact)), nil
	}
}

func (s *scope) parseAndOr(expr *SExpr, build func(...*model.Condition) *model.Condition) (*model.Condition, error) {
	children := make([]*model.Condition, 0, len(expr.List)-1)
	for _, child := range expr.List[1:] {
		c, err := s.parseCondition(child)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return build(children...), nil
}

func (s *scope) parseQuantifier(expr *SExpr, build func(ontology.Parameter, *model.Condition) *model.Condition) (*model.Condition, error) {
	if len(expr.List) != 3 || expr.List[1].IsAtom() {
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "quantifier expects a parameter list and a body")
	}
	params, err := s.resolveParams(expr.List[1].List)
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "quantifier expects exactly one bound parameter")
	}
	inner := s.withParams(params)
	body, err := inner.parseCondition(expr.List[2])
	if err != nil {
		return nil, err
	}
	return build(params[0], body), nil
}

// parseComparison handles "=" as fluent-value equality (building a
// FactOptional with the value slot set, matching atomHolds's general
// value-equality check) and the other operators as numeric comparisons
// (matching evalCompare/evalNumeric, which only understand
// NumberConstant/FluentRead operands).
func (s *scope) parseComparison(expr *SExpr, op string) (*model.Condition, error) {
	if len(expr.List) != 3 {
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "%q takes exactly two operands", op)
	}
	lhs, rhs := expr.List[1], expr.List[2]

	if op == "=" || op == "!=" {
		if s.isFluent(lhs) {
			fact, err := s.buildFact(lhs)
			if err != nil {
				return nil, err
			}
			val, err := s.resolveOperandEntity(rhs)
			if err != nil {
				return nil, err
			}
			fact.Value = &val
			fo := model.NewFactOptionalWithValueNegation(false, fact, op == "!=")
			return model.AtomCond(fo), nil
		}
		if s.isFluent(rhs) {
			fact, err := s.buildFact(rhs)
			if err != nil {
				return nil, err
			}
			val, err := s.resolveOperandEntity(lhs)
			if err != nil {
				return nil, err
			}
			fact.Value = &val
			fo := model.NewFactOptionalWithValueNegation(false, fact, op == "!=")
			return model.AtomCond(fo), nil
		}
	}

	lhsNum, err := s.parseNumericOperand(lhs)
	if err != nil {
		return nil, err
	}
	rhsNum, err := s.parseNumericOperand(rhs)
	if err != nil {
		return nil, err
	}
	var cop model.CompareOp
	switch op {
	case "=":
		cop = model.OpEq
	case "!=":
		cop = model.OpNe
	case "<":
		cop = model.OpLt
	case "<=":
		cop = model.OpLe
	case ">":
		cop = model.OpGt
	case ">=":
		cop = model.OpGe
	}
	return model.Compare(cop, lhsNum, rhsNum), nil
}

func (s *scope) parseNumericOperand(expr *SExpr) (*model.Condition, error) {
	if expr.IsAtom() {
		if n, err := strconv.ParseFloat(expr.Atom, 64); err == nil {
			return model.NumberConstant(n), nil
		}
		e, err := s.resolveEntity(expr.Atom, s.ont.Types.Number())
		if err != nil {
			return nil, err
		}
		if n, err := strconv.ParseFloat(e.Value, 64); err == nil {
			return model.NumberConstant(n), nil
		}
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "%q is not a numeric operand", expr.Atom)
	}
	if !s.isFluent(expr) {
		return nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected a fluent read or a number")
	}
	fact, err := s.buildFact(expr)
	if err != nil {
		return nil, err
	}
	return model.FluentRead(fact), nil
}

// resolveOperandEntity resolves an operand appearing on the value side of
// "=" / "!=" — either a bare literal/constant or another fluent read,
// which the planner's FactOptional equality check does not support
// directly, so nested fluent reads on the value side are rejected.
func (s *scope) resolveOperandEntity(expr *SExpr) (ontology.Entity, error) {
	if !expr.IsAtom() {
		return ontology.Entity{}, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected a literal value, not a nested expression")
	}
	return s.resolveEntity(expr.Atom, s.ont.Types.Number())
}

// negateCondition negates c, collapsing the negation into the leaf
// FactOptional when c is a plain atom so downstream consumers that only
// look at CondAtom.Atom.Negated (internal/domain's precondition index,
// internal/planner's unsatisfiedLiterals) see the polarity directly
// instead of behind a CondNot wrapper.
func negateCondition(c *model.Condition) *model.Condition {
	if c.Kind == model.CondAtom {
		fo := *c.Atom
		fo.Negated = !fo.Negated
		return model.AtomCond(fo)
	}
	return model.Not(c)
}
