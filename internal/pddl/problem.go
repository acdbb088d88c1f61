package pddl

import (
	"fmt"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/derive"
	gdomain "github.com/carloacu/ordered-goals-planner-sub001/internal/domain"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/problem"
)

// ParseProblem parses a PDDL problem definition:
// "(define (problem N) (:domain D) (:objects …) (:init …) (:goal …))"
// against an already-parsed Domain, returning a *problem.Problem.
//
// Goals are read from repeated "(:goal PRIORITY GOAL-EXPR)" forms so a
// problem file can declare a priority-bucketed goal stack; a bare
// "(:goal GOAL-EXPR)" defaults to priority 0.
func ParseProblem(src string, dom *gdomain.Domain) (*problem.Problem, error) {
	top, err := parseSingleTopLevelForm(src, "problem")
	if err != nil {
		return nil, err
	}
	if len(top.List) < 2 || top.List[1].IsAtom() || len(top.List[1].List) != 2 ||
		top.List[1].List[0].Atom != "problem" {
		return nil, errAt(Token{Offset: top.Offset, Line: top.Line}, "expected (problem NAME) as the second form")
	}

	p := problem.New(dom.Ontology.Predicates, dom.Ontology.Types)
	s := newScope(dom.Ontology)
	s.objects = p.Objects

	if len(dom.Ontology.DerivedPredicates) > 0 {
		ev, err := derive.NewEvaluator(dom.Ontology.DerivedPredicates, dom.Ontology.Predicates)
		if err != nil {
			return nil, fmt.Errorf("compile derived predicates: %w", err)
		}
		p.World.SetDerivedEvaluator(ev)
	}

	for _, section := range top.List[2:] {
		if section.IsAtom() || len(section.List) == 0 || !section.List[0].IsAtom() {
			return nil, errAt(Token{Offset: section.Offset, Line: section.Line}, "expected a (:section ...) form")
		}
		keyword := section.List[0].Atom
		body := section.List[1:]
		switch keyword {
		case ":domain":
			// Domain name cross-check only; ParseProblem already takes the
			// parsed *domain.Domain directly.
		case ":objects":
			typed, err := parseTypedAtoms(body)
			if err != nil {
				return nil, err
			}
			for _, t := range typed {
				typ, err := dom.Ontology.Types.AddType(t.TypeName, "")
				if err != nil {
					return nil, err
				}
				if err := p.Objects.Add(ontology.Entity{Value: t.Name, Type: typ}); err != nil {
					return nil, err
				}
			}
		case ":init":
			for _, initFact := range body {
				fact, value, err := s.parseInitFact(initFact)
				if err != nil {
					return nil, err
				}
				fact.Value = value
				timeless := false
				p.World.AddFact(fact, timeless)
			}
		case ":timeless":
			for _, initFact := range body {
				fact, value, err := s.parseInitFact(initFact)
				if err != nil {
					return nil, err
				}
				fact.Value = value
				p.World.AddFact(fact, true)
				dom.TimelessFacts = append(dom.TimelessFacts, fact)
			}
		case ":goal":
			priority := 0
			goalExpr := body[0]
			if len(body) == 2 {
				n, err := parseFloatAtom(body[0])
				if err != nil {
					return nil, err
				}
				priority = int(n)
				goalExpr = body[1]
			}
			goal, err := s.parseGoal(goalExpr)
			if err != nil {
				return nil, err
			}
			p.Goals.AddGoal(priority, goal)
		case ":effectBetweenGoals":
			if len(body) != 1 {
				return nil, errAt(Token{Offset: section.Offset, Line: section.Line}, "':effectBetweenGoals' takes exactly one effect")
			}
			eff, err := s.parseEffect(body[0])
			if err != nil {
				return nil, err
			}
			p.Goals.EffectBetweenGoals = eff
		default:
			return nil, errAt(Token{Offset: section.Offset, Line: section.Line}, "unknown problem section %q", keyword)
		}
	}

	if dom.TimelessFacts != nil {
		dom.Rebuild()
	}
	return p, nil
}

// parseInitFact parses one ":init" entry: either a plain predicate
// application or "(= (fluent args) value)" for a fluent's initial value.
func (s *scope) parseInitFact(expr *SExpr) (model.Fact, *ontology.Entity, error) {
	if expr.IsAtom() || len(expr.List) == 0 || !expr.List[0].IsAtom() {
		return model.Fact{}, nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected a fact")
	}
	if expr.List[0].Atom == "=" {
		if len(expr.List) != 3 {
			return model.Fact{}, nil, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "'=' takes exactly two operands")
		}
		fact, err := s.buildFact(expr.List[1])
		if err != nil {
			return model.Fact{}, nil, err
		}
		val, err := s.resolveOperandEntity(expr.List[2])
		if err != nil {
			return model.Fact{}, nil, err
		}
		return fact, &val, nil
	}
	fact, err := s.buildFact(expr)
	if err != nil {
		return model.Fact{}, nil, err
	}
	return fact, nil, nil
}

// parseGoal parses a goal expression, unwrapping the extensions
// "(persist GOAL)", "(oneStepTowards GOAL)" and "(imply COND GOAL)" into
// model.Goal's flags, in any combination/nesting order.
func (s *scope) parseGoal(expr *SExpr) (*model.Goal, error) {
	g := &model.Goal{}
	cur := expr
	for {
		if cur.IsAtom() || len(cur.List) == 0 || !cur.List[0].IsAtom() {
			break
		}
		switch cur.List[0].Atom {
		case "persist":
			if len(cur.List) != 2 {
				return nil, errAt(Token{Offset: cur.Offset, Line: cur.Line}, "'persist' takes exactly one operand")
			}
			g.Persistent = true
			cur = cur.List[1]
			continue
		case "oneStepTowards":
			if len(cur.List) != 2 {
				return nil, errAt(Token{Offset: cur.Offset, Line: cur.Line}, "'oneStepTowards' takes exactly one operand")
			}
			g.OneStepTowards = true
			cur = cur.List[1]
			continue
		case "imply":
			if len(cur.List) != 3 {
				return nil, errAt(Token{Offset: cur.Offset, Line: cur.Line}, "'imply' takes exactly two operands")
			}
			fact, err := s.buildFact(cur.List[1])
			if err != nil {
				return nil, err
			}
			g.ConditionFact = &fact
			cur = cur.List[2]
			continue
		}
		break
	}
	cond, err := s.parseCondition(cur)
	if err != nil {
		return nil, err
	}
	g.Condition = cond
	return g, nil
}
