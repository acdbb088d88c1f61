package pddl

import (
	"fmt"
	"strings"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/domain"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// ParseDomain parses a PDDL domain definition:
// "(define (domain NAME) (:requirements …) (:types …) (:constants …)
// (:predicates …) (:functions …) (:action …)* (:derived …)* (:event …)*)"
// into a *domain.Domain, already Rebuild()-ed.
func ParseDomain(src string) (*domain.Domain, error) {
	top, err := parseSingleTopLevelForm(src, "domain")
	if err != nil {
		return nil, err
	}
	if len(top.List) < 2 || top.List[1].IsAtom() || len(top.List[1].List) != 2 ||
		top.List[1].List[0].Atom != "domain" {
		return nil, errAt(Token{Offset: top.Offset, Line: top.Line}, "expected (domain NAME) as the second form")
	}
	name := top.List[1].List[1].Atom

	ont := ontology.NewOntology()
	dom := domain.New(name, ont)

	s := newScope(ont)
	var eventSet []*model.Event

	for _, section := range top.List[2:] {
		if section.IsAtom() || len(section.List) == 0 || !section.List[0].IsAtom() {
			return nil, errAt(Token{Offset: section.Offset, Line: section.Line}, "expected a (:section ...) form")
		}
		keyword := section.List[0].Atom
		body := section.List[1:]
		switch keyword {
		case ":requirements":
			for _, r := range body {
				dom.Requirements = append(dom.Requirements, r.Atom)
			}
		case ":types":
			typed, err := parseTypedAtoms(body)
			if err != nil {
				return nil, err
			}
			for _, t := range typed {
				if _, err := ont.Types.AddType(t.TypeName, ""); err != nil {
					return nil, err
				}
				if _, err := ont.Types.AddType(t.Name, t.TypeName); err != nil {
					return nil, err
				}
			}
		case ":constants":
			typed, err := parseTypedAtoms(body)
			if err != nil {
				return nil, err
			}
			for _, t := range typed {
				typ, err := ont.Types.AddType(t.TypeName, "")
				if err != nil {
					return nil, err
				}
				if err := ont.Constants.Add(ontology.Entity{Value: t.Name, Type: typ}); err != nil {
					return nil, err
				}
			}
		case ":predicates":
			for _, decl := range body {
				if err := s.addPredicateDecl(decl, nil); err != nil {
					return nil, err
				}
			}
		case ":functions":
			numberType := ont.Types.Number()
			for _, decl := range body {
				if err := s.addPredicateDecl(decl, numberType); err != nil {
					return nil, err
				}
			}
		case ":action":
			action, err := s.parseAction(body)
			if err != nil {
				return nil, err
			}
			dom.Actions = append(dom.Actions, action)
		case ":derived":
			dp, err := s.parseDerived(body)
			if err != nil {
				return nil, err
			}
			ont.DerivedPredicates = append(ont.DerivedPredicates, dp)
		case ":event":
			ev, err := s.parseEvent(body)
			if err != nil {
				return nil, err
			}
			eventSet = append(eventSet, ev)
		default:
			return nil, errAt(Token{Offset: section.Offset, Line: section.Line}, "unknown domain section %q", keyword)
		}
	}

	if len(eventSet) > 0 {
		dom.SetsOfEvents = append(dom.SetsOfEvents, &domain.SetOfEvents{Name: "default", Events: eventSet})
	}

	dom.Rebuild()
	return dom, nil
}

// addPredicateDecl parses one "(name ?p1 - t1 ?p2 - t2)" predicate or
// function signature. fluentType is non-nil for :functions declarations;
// PDDL functions always return a number in this subset.
func (s *scope) addPredicateDecl(decl *SExpr, fluentType *ontology.Type) error {
	if decl.IsAtom() || len(decl.List) == 0 || !decl.List[0].IsAtom() {
		return errAt(Token{Offset: decl.Offset, Line: decl.Line}, "expected a predicate declaration")
	}
	name := decl.List[0].Atom
	params, err := s.resolveParams(decl.List[1:])
	if err != nil {
		return err
	}
	s.ont.Predicates.Add(&ontology.Predicate{Name: name, Params: params, FluentType: fluentType})
	return nil
}

// parseAction parses an :action body's alternating keyword/value pairs
// (:parameters, :precondition, :effect, :atStartEffect).
func (s *scope) parseAction(body []*SExpr) (*model.Action, error) {
	if len(body) == 0 || !body[0].IsAtom() {
		return nil, errAt(Token{}, "expected an action name")
	}
	action := &model.Action{ID: body[0].Atom, Cost: 1}
	inner := s

	i := 1
	for i < len(body) {
		kw := body[i]
		if !kw.IsAtom() || i+1 >= len(body) {
			return nil, errAt(Token{Offset: kw.Offset, Line: kw.Line}, "expected a :keyword value pair in action %q", action.ID)
		}
		val := body[i+1]
		switch kw.Atom {
		case ":parameters":
			if val.IsAtom() {
				return nil, errAt(Token{Offset: val.Offset, Line: val.Line}, ":parameters expects a list")
			}
			params, err := s.resolveParams(val.List)
			if err != nil {
				return nil, err
			}
			action.Params = params
			inner = s.withParams(params)
		case ":precondition":
			cond, err := inner.parseCondition(val)
			if err != nil {
				return nil, err
			}
			action.Precondition = cond
		case ":effect":
			eff, err := inner.parseEffect(val)
			if err != nil {
				return nil, err
			}
			action.Effect = eff
		case ":atStartEffect":
			eff, err := inner.parseEffect(val)
			if err != nil {
				return nil, err
			}
			action.AtStartEffect = eff.WithAtStart()
		case ":overAll":
			cond, err := inner.parseCondition(val)
			if err != nil {
				return nil, err
			}
			action.OverAllCondition = cond
		case ":cost":
			n, err := parseFloatAtom(val)
			if err != nil {
				return nil, err
			}
			action.Cost = n
		default:
			return nil, errAt(Token{Offset: kw.Offset, Line: kw.Line}, "unknown action keyword %q", kw.Atom)
		}
		i += 2
	}
	return action, nil
}

// parseEvent parses an :event body the same way as an action, minus the
// action-only keywords: an Event is id + params + precondition + effect.
func (s *scope) parseEvent(body []*SExpr) (*model.Event, error) {
	if len(body) == 0 || !body[0].IsAtom() {
		return nil, errAt(Token{}, "expected an event name")
	}
	ev := &model.Event{ID: body[0].Atom}
	inner := s

	i := 1
	for i < len(body) {
		kw := body[i]
		if !kw.IsAtom() || i+1 >= len(body) {
			return nil, errAt(Token{Offset: kw.Offset, Line: kw.Line}, "expected a :keyword value pair in event %q", ev.ID)
		}
		val := body[i+1]
		switch kw.Atom {
		case ":parameters":
			if val.IsAtom() {
				return nil, errAt(Token{Offset: val.Offset, Line: val.Line}, ":parameters expects a list")
			}
			params, err := s.resolveParams(val.List)
			if err != nil {
				return nil, err
			}
			ev.Params = params
			inner = s.withParams(params)
		case ":precondition":
			cond, err := inner.parseCondition(val)
			if err != nil {
				return nil, err
			}
			ev.Precondition = cond
		case ":effect":
			eff, err := inner.parseEffect(val)
			if err != nil {
				return nil, err
			}
			ev.Effect = eff
		default:
			return nil, errAt(Token{Offset: kw.Offset, Line: kw.Line}, "unknown event keyword %q", kw.Atom)
		}
		i += 2
	}
	return ev, nil
}

// parseDerived parses "(:derived (head ?params...) BODY)" into an
// ontology.DerivedPredicate, internal/derive's compilation input.
func (s *scope) parseDerived(body []*SExpr) (*ontology.DerivedPredicate, error) {
	if len(body) != 2 || body[0].IsAtom() || len(body[0].List) == 0 {
		return nil, errAt(Token{}, "expected (:derived (head ?params...) BODY)")
	}
	headExpr := body[0]
	if !headExpr.List[0].IsAtom() {
		return nil, errAt(Token{Offset: headExpr.Offset, Line: headExpr.Line}, "expected a derived predicate name")
	}
	name := headExpr.List[0].Atom
	params, err := s.resolveParams(headExpr.List[1:])
	if err != nil {
		return nil, err
	}
	head := &ontology.Predicate{Name: name, Params: params}
	s.ont.Predicates.Add(head)

	inner := s.withParams(params)
	cond, err := inner.parseCondition(body[1])
	if err != nil {
		return nil, err
	}
	return &ontology.DerivedPredicate{Head: head, Params: params, Body: cond}, nil
}

func parseFloatAtom(expr *SExpr) (float64, error) {
	if !expr.IsAtom() {
		return 0, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "expected a number")
	}
	var n float64
	if _, err := fmt.Sscanf(expr.Atom, "%g", &n); err != nil {
		return 0, errAt(Token{Offset: expr.Offset, Line: expr.Line}, "%q is not a number", expr.Atom)
	}
	return n, nil
}

// parseSingleTopLevelForm parses src and returns its one top-level
// "(define ...)" form, checking that its second element introduces kind
// ("domain" or "problem").
func parseSingleTopLevelForm(src string, kind string) (*SExpr, error) {
	p := NewParser(src)
	forms, err := p.ParseAll()
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, fmt.Errorf("pddl: expected exactly one top-level form, found %d", len(forms))
	}
	top := forms[0]
	if top.IsAtom() || len(top.List) < 2 || top.List[0].Atom != "define" {
		return nil, errAt(Token{Offset: top.Offset, Line: top.Line}, "expected (define ...)")
	}
	if strings.TrimSpace(kind) == "" {
		return top, nil
	}
	head := top.List[1]
	if head.IsAtom() || len(head.List) != 2 || head.List[0].Atom != kind {
		return nil, errAt(Token{Offset: top.Offset, Line: top.Line}, "expected (%s NAME) as the second form", kind)
	}
	return top, nil
}
