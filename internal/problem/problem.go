// Package problem aggregates the mutable state a plan executes against:
// the WorldState, the GoalStack and the objects in scope, plus hooks
// observers use to react to plan execution.
package problem

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/goalstack"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

// ActionNotification carries the identity of an action invocation and the
// ground arguments it was invoked with, for OnActionStarted/OnActionDone.
type ActionNotification struct {
	ActionID string
	Args     []ontology.Entity
}

// Problem bundles everything the planner needs besides the Domain.
type Problem struct {
	World   *world.WorldState
	Goals   *goalstack.GoalStack
	Objects *ontology.SetOfEntities

	onActionStarted []func(ActionNotification)
	onActionDone    []func(ActionNotification)
}

// New returns a Problem over an empty WorldState and GoalStack.
func New(preds *ontology.SetOfPredicates, types *ontology.SetOfTypes) *Problem {
	return &Problem{
		World:   world.New(preds, types),
		Goals:   goalstack.New(),
		Objects: ontology.NewSetOfEntities(),
	}
}

// OnActionStarted registers a callback fired just before an action's effect
// is applied to World.
func (p *Problem) OnActionStarted(cb func(ActionNotification)) {
	p.onActionStarted = append(p.onActionStarted, cb)
}

// OnActionDone registers a callback fired just after an action's effect
// (and the subsequent event fixed point) has been applied.
func (p *Problem) OnActionDone(cb func(ActionNotification)) {
	p.onActionDone = append(p.onActionDone, cb)
}

// NotifyActionStarted invokes every OnActionStarted callback. Exported so
// internal/planner, which owns the execution loop, can drive notification
// without Problem importing model.Action.
func (p *Problem) NotifyActionStarted(n ActionNotification) {
	for _, cb := range p.onActionStarted {
		cb(n)
	}
}

// NotifyActionDone invokes every OnActionDone callback.
func (p *Problem) NotifyActionDone(n ActionNotification) {
	for _, cb := range p.onActionDone {
		cb(n)
	}
}

// AllFacts returns every currently-true fact in World, e.g. to feed the
// derived-predicate evaluator a snapshot.
func (p *Problem) AllFacts() []model.Fact {
	return p.World.AllFacts()
}
