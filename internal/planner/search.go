// Package planner implements a one-goal-at-a-time backward-chaining
// search: given a goal condition and a world, find a sequence of ground
// action invocations that establishes it, querying the domain's successor
// cache for candidates and unifying each candidate's effect against the
// literal it must establish before unifying its precondition against the
// world to complete the binding.
package planner

import (
	"sort"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/domain"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/tracepp"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

// GroundAction is a fully-bound action invocation produced by search.
type GroundAction struct {
	ActionID string
	Binding  unify.Binding
	Args     []ontology.Entity

	// EstablishCount is how many of the literals a search step asked for
	// this (action, binding) pair can establish in one application, used
	// by sortCandidates to prefer actions that make the most progress.
	EstablishCount int
}

// Limits bounds a single search call: a depth bound and a step budget
// (there is no deadline). On exhaustion it returns an empty plan, not an
// error.
type Limits struct {
	MaxDepth int
	MaxSteps int

	// Trace, if non-nil, receives a structured record of goals pursued,
	// candidates tried and search exhaustion. Left nil, search records
	// nothing extra.
	Trace *tracepp.Recorder
}

// DefaultLimits mirrors what the CLI wires in by default (internal/config).
func DefaultLimits() Limits {
	return Limits{MaxDepth: 64, MaxSteps: 10000}
}

type searchState struct {
	dom       *domain.Domain
	constants *ontology.SetOfEntities
	objects   *ontology.SetOfEntities
	limits    Limits
	steps     int
	visited   map[string]bool // (state-digest, literal-set) cycle guard
	trace     *tracepp.Recorder
}

func candidateArgs(cand GroundAction) []string {
	args := make([]string, len(cand.Args))
	for i, a := range cand.Args {
		args[i] = a.Value
	}
	return args
}

// PlanForCondition searches for a plan establishing cond against a copy of
// ws (the caller's live WorldState is never mutated). oneStepTowards
// relaxes full satisfaction to strict progress. It returns (plan, true) on
// success, (nil, false) if no plan exists within limits — exhaustion is
// not an error.
func PlanForCondition(ws *world.WorldState, dom *domain.Domain, constants, objects *ontology.SetOfEntities, cond *model.Condition, oneStepTowards bool, limits Limits) ([]GroundAction, bool) {
	sandbox := ws.Clone()
	st := &searchState{dom: dom, constants: constants, objects: objects, limits: limits, visited: make(map[string]bool), trace: limits.Trace}

	if !oneStepTowards && world.IsTrue(sandbox, constants, objects, cond, unify.Binding{}) == model.True {
		return nil, true
	}

	if oneStepTowards {
		return planOneStepTowards(sandbox, st, cond)
	}
	return searchGoal(sandbox, st, cond, unify.Binding{}, 0)
}

func planOneStepTowards(sandbox *world.WorldState, st *searchState, cond *model.Condition) ([]GroundAction, bool) {
	total := totalAtoms(cond)
	if total == 0 {
		return nil, false
	}
	before := countSatisfiedAtoms(sandbox, st.constants, st.objects, cond, unify.Binding{})

	candidates := collectCandidates(sandbox, st, unsatisfiedLiterals(sandbox, st.constants, st.objects, cond, unify.Binding{}))
	sortCandidates(st.dom, candidates)
	for _, cand := range candidates {
		st.trace.Record(tracepp.Event{Kind: tracepp.EventCandidateTried, Depth: 0, ActionID: cand.ActionID, Args: candidateArgs(cand)})
		trial := sandbox.Clone()
		applyGroundAction(trial, st, cand)
		after := countSatisfiedAtoms(trial, st.constants, st.objects, cond, unify.Binding{})
		if after > before {
			st.trace.Record(tracepp.Event{Kind: tracepp.EventCandidateAccepted, Depth: 0, ActionID: cand.ActionID, Args: candidateArgs(cand)})
			return []GroundAction{cand}, true
		}
	}
	st.trace.Record(tracepp.Event{Kind: tracepp.EventSearchExhausted, Depth: 0, Detail: "no candidate strictly decreased unsatisfied-atom count"})
	return nil, false
}

// searchGoal searches for a way to satisfy a single (sub-)goal condition,
// recursing through unsatisfied preconditions of candidate actions.
func searchGoal(sandbox *world.WorldState, st *searchState, cond *model.Condition, binding unify.Binding, depth int) ([]GroundAction, bool) {
	if world.IsTrue(sandbox, st.constants, st.objects, cond, binding) == model.True {
		st.trace.Record(tracepp.Event{Kind: tracepp.EventGoalSatisfied, Depth: depth, Detail: cond.String()})
		return nil, true
	}
	if depth >= st.limits.MaxDepth || st.steps >= st.limits.MaxSteps {
		st.trace.Record(tracepp.Event{Kind: tracepp.EventSearchExhausted, Depth: depth, Detail: "depth or step budget exhausted"})
		return nil, false
	}
	st.steps++

	literals := unsatisfiedLiterals(sandbox, st.constants, st.objects, cond, binding)
	if len(literals) == 0 {
		st.trace.Record(tracepp.Event{Kind: tracepp.EventSearchExhausted, Depth: depth, Detail: "no unsatisfied literals but condition not true"})
		return nil, false
	}
	st.trace.Record(tracepp.Event{Kind: tracepp.EventLiteralsUnsatisfied, Depth: depth, Detail: literalSetKey(literals)})

	digest := stateDigest(sandbox) + "|" + literalSetKey(literals)
	if st.visited[digest] {
		return nil, false
	}
	st.visited[digest] = true

	candidates := collectCandidates(sandbox, st, literals)
	sortCandidates(st.dom, candidates)

	for _, cand := range candidates {
		st.trace.Record(tracepp.Event{Kind: tracepp.EventCandidateTried, Depth: depth, ActionID: cand.ActionID, Args: candidateArgs(cand)})
		trial := sandbox.Clone()
		if !preconditionHolds(trial, st, cand) {
			action, _ := st.dom.ActionByID(cand.ActionID)
			st.trace.Record(tracepp.Event{Kind: tracepp.EventGoalPursued, Depth: depth, Detail: "precondition of " + cand.ActionID})
			subPlan, ok := searchGoal(trial, st, action.Precondition, cand.Binding, depth+1)
			if !ok {
				continue
			}
			// trial already reflects subPlan's effects (searchGoal applies
			// each chosen action to its sandbox as it goes); only cand
			// itself still needs applying here.
			applyGroundAction(trial, st, cand)
			*sandbox = *trial
			st.trace.Record(tracepp.Event{Kind: tracepp.EventCandidateAccepted, Depth: depth, ActionID: cand.ActionID, Args: candidateArgs(cand)})
			full := append(append([]GroundAction{}, subPlan...), cand)
			rest, ok := searchGoal(sandbox, st, cond, binding, depth+1)
			if !ok {
				return nil, false
			}
			return append(full, rest...), true
		}
		applyGroundAction(trial, st, cand)
		*sandbox = *trial
		st.trace.Record(tracepp.Event{Kind: tracepp.EventCandidateAccepted, Depth: depth, ActionID: cand.ActionID, Args: candidateArgs(cand)})
		rest, ok := searchGoal(sandbox, st, cond, binding, depth+1)
		if !ok {
			continue
		}
		return append([]GroundAction{cand}, rest...), true
	}
	st.trace.Record(tracepp.Event{Kind: tracepp.EventSearchExhausted, Depth: depth, Detail: "no candidate led to a plan"})
	return nil, false
}

func preconditionHolds(ws *world.WorldState, st *searchState, cand GroundAction) bool {
	action, ok := st.dom.ActionByID(cand.ActionID)
	if !ok || action.Precondition == nil {
		return true
	}
	return world.IsTrue(ws, st.constants, st.objects, action.Precondition, cand.Binding) == model.True
}

func applyGroundAction(ws *world.WorldState, st *searchState, cand GroundAction) {
	action, ok := st.dom.ActionByID(cand.ActionID)
	if !ok {
		return
	}
	if action.AtStartEffect != nil {
		world.Modify(ws, action.AtStartEffect, cand.Binding, st.constants, st.objects)
	}
	if action.Effect != nil {
		world.Modify(ws, action.Effect, cand.Binding, st.constants, st.objects)
	}
	var events []*model.Event
	for _, set := range st.dom.SetsOfEvents {
		events = append(events, set.Events...)
	}
	world.RunEvents(ws, events, st.constants, st.objects)
}

func stateDigest(ws *world.WorldState) string {
	facts := ws.AllFactsIncludingTimeless()
	keys := make([]string, len(facts))
	for i, f := range facts {
		keys[i] = f.ExactKey()
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + ";"
	}
	return out
}

func literalSetKey(literals []model.FactOptional) string {
	keys := make([]string, len(literals))
	for i, l := range literals {
		keys[i] = l.String()
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + ";"
	}
	return out
}
