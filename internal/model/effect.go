package model

import (
	"fmt"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// EffKind tags the variant of an Effect (WorldStateModification) node.
type EffKind int

const (
	EffAdd EffKind = iota
	EffDelete
	EffAssign
	EffIncrease
	EffDecrease
	EffAnd
	EffWhen
	EffForall
)

// Effect is the recursive WorldStateModification tree, again a single
// tagged sum type rather than a class hierarchy.
type Effect struct {
	Kind EffKind

	// EffAdd / EffDelete: the fact to add or remove.
	// EffAssign / EffIncrease / EffDecrease: Fact names the fluent being
	// written; exactly one of Value or ValueFluent supplies the operand.
	Fact        *Fact
	Value       *ontology.Entity
	ValueFluent *Fact

	// EffAnd
	Children []*Effect

	// EffWhen
	Cond *Condition
	Then *Effect

	// EffForall
	Param *ontology.Parameter
	Body  *Effect

	// AtStart marks an effect applied when the action begins rather than
	// when it completes.
	AtStart bool
}

// AddEffect builds an add-fact effect.
func AddEffect(f Fact) *Effect { return &Effect{Kind: EffAdd, Fact: &f} }

// DeleteEffect builds a delete-fact effect.
func DeleteEffect(f Fact) *Effect { return &Effect{Kind: EffDelete, Fact: &f} }

// AssignEffect builds a fluent-assignment effect to a literal value.
func AssignEffect(f Fact, v ontology.Entity) *Effect {
	return &Effect{Kind: EffAssign, Fact: &f, Value: &v}
}

// IncreaseEffect builds a fluent-increase effect by a literal delta.
func IncreaseEffect(f Fact, v ontology.Entity) *Effect {
	return &Effect{Kind: EffIncrease, Fact: &f, Value: &v}
}

// DecreaseEffect builds a fluent-decrease effect by a literal delta.
func DecreaseEffect(f Fact, v ontology.Entity) *Effect {
	return &Effect{Kind: EffDecrease, Fact: &f, Value: &v}
}

// AndEffect builds a conjunction of effects.
func AndEffect(children ...*Effect) *Effect {
	if len(children) == 1 {
		return children[0]
	}
	return &Effect{Kind: EffAnd, Children: children}
}

// WhenEffect builds a conditional effect, evaluated against the pre-step
// world.
func WhenEffect(cond *Condition, then *Effect) *Effect {
	return &Effect{Kind: EffWhen, Cond: cond, Then: then}
}

// ForallEffect builds a universally-expanded effect.
func ForallEffect(param ontology.Parameter, body *Effect) *Effect {
	return &Effect{Kind: EffForall, Param: &param, Body: body}
}

// WithAtStart returns a copy of e tagged as an at-start effect.
func (e *Effect) WithAtStart() *Effect {
	if e == nil {
		return nil
	}
	cp := *e
	cp.AtStart = true
	return &cp
}

// ForAllFacts visits every Fact an Add/Delete/Assign/Increase/Decrease leaf
// of e could write, without expanding Forall (callers needing concrete
// ground facts must first substitute the action's binding — see
// unify.SubstituteEffect). This underlies the effect-indexed successor cache
// (internal/domain), which needs the *shape* of literals an action can
// establish before any binding exists.
func (e *Effect) ForAllFacts(visit func(kind EffKind, f Fact)) {
	if e == nil {
		return
	}
	switch e.Kind {
	case EffAdd, EffDelete, EffAssign, EffIncrease, EffDecrease:
		visit(e.Kind, *e.Fact)
	case EffAnd:
		for _, ch := range e.Children {
			ch.ForAllFacts(visit)
		}
	case EffWhen:
		e.Then.ForAllFacts(visit)
	case EffForall:
		e.Body.ForAllFacts(visit)
	}
}

func (e *Effect) String() string {
	if e == nil {
		return "()"
	}
	switch e.Kind {
	case EffAdd:
		return e.Fact.String()
	case EffDelete:
		return fmt.Sprintf("(not %s)", e.Fact)
	case EffAssign:
		return fmt.Sprintf("(assign %s %s)", e.Fact, e.Value.Value)
	case EffIncrease:
		return fmt.Sprintf("(increase %s %s)", e.Fact, e.Value.Value)
	case EffDecrease:
		return fmt.Sprintf("(decrease %s %s)", e.Fact, e.Value.Value)
	case EffAnd:
		s := "(and"
		for _, ch := range e.Children {
			s += " " + ch.String()
		}
		return s + ")"
	case EffWhen:
		return fmt.Sprintf("(when %s %s)", e.Cond, e.Then)
	case EffForall:
		return fmt.Sprintf("(forall (%s) %s)", e.Param.Name, e.Body)
	default:
		return "?"
	}
}
