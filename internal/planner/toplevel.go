package planner

import (
	"time"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/domain"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/eventbus"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/problem"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

// Result is one plan attempt's outcome, naming which goal it targeted so
// callers can correlate plan steps back to the goal they satisfied.
type Result struct {
	Goal     *model.Goal
	Priority int
	Plan     []GroundAction
}

// PlanForMoreImportantGoalPossible targets the highest-priority
// still-unsatisfied, active, non-expired goal and returns one plan for it;
// when no plan for that goal is found within limits, the next such goal in
// priority order is tried. It does not mutate p.
func PlanForMoreImportantGoalPossible(p *problem.Problem, dom *domain.Domain, limits Limits, now time.Time) (*Result, bool) {
	for _, priority := range p.Goals.Priorities() {
		for _, g := range p.Goals.AtPriority(priority) {
			if !goalApplies(p, g, now) {
				continue
			}
			if world.IsTrue(p.World, dom.Ontology.Constants, p.Objects, g.Condition, nil) == model.True {
				continue
			}
			plan, ok := PlanForCondition(p.World, dom, dom.Ontology.Constants, p.Objects, g.Condition, g.OneStepTowards, limits)
			if !ok {
				continue
			}
			return &Result{Goal: g, Priority: priority, Plan: plan}, true
		}
	}
	return nil, false
}

// PlanForEveryGoals repeatedly plans for the highest-priority goal,
// executes the plan against p.World (which also fires events and the
// eventbus), pops the goal unless persistent, applies
// GoalStack.EffectBetweenGoals, and continues until the stack is empty or
// a pass makes no progress.
func PlanForEveryGoals(p *problem.Problem, dom *domain.Domain, bus *eventbus.Bus, limits Limits, now time.Time) []Result {
	var results []Result
	for {
		p.Goals.RemoveExpired(now)

		priority, g, ok := p.Goals.HighestPriorityGoal()
		if !ok {
			break
		}
		if !goalApplies(p, g, now) {
			p.Goals.Remove(priority, g)
			continue
		}

		plan, ok := PlanForCondition(p.World, dom, dom.Ontology.Constants, p.Objects, g.Condition, g.OneStepTowards, limits)
		if !ok {
			break
		}

		executePlan(p, dom, bus, plan, now)
		results = append(results, Result{Goal: g, Priority: priority, Plan: plan})

		if world.IsTrue(p.World, dom.Ontology.Constants, p.Objects, g.Condition, nil) == model.True {
			p.Goals.Pop(priority, g)
		} else {
			p.Goals.TouchActivity(g, now)
		}

		if p.Goals.EffectBetweenGoals != nil {
			world.Modify(p.World, p.Goals.EffectBetweenGoals, nil, dom.Ontology.Constants, p.Objects)
			runEventsAndCallbacks(p, dom, bus)
		}
	}
	return results
}

func goalApplies(p *problem.Problem, g *model.Goal, now time.Time) bool {
	if g.Expired(now) {
		return false
	}
	return g.IsActive(p.World.HasFact)
}

// executePlan runs each action's at-start effect then ordinary effect
// through p.World (which fires events to fixed point), notifying
// Problem's started/done hooks and checking the eventbus after the world
// reaches quiescence: at-start, then ordinary+when, then events, then
// callbacks last.
func executePlan(p *problem.Problem, dom *domain.Domain, bus *eventbus.Bus, plan []GroundAction, now time.Time) {
	for _, ga := range plan {
		action, ok := dom.ActionByID(ga.ActionID)
		if !ok {
			continue
		}
		notice := problem.ActionNotification{ActionID: ga.ActionID, Args: ga.Args}
		p.NotifyActionStarted(notice)
		if action.AtStartEffect != nil {
			world.Modify(p.World, action.AtStartEffect, ga.Binding, dom.Ontology.Constants, p.Objects)
		}
		if action.Effect != nil {
			world.Modify(p.World, action.Effect, ga.Binding, dom.Ontology.Constants, p.Objects)
		}
		runEventsAndCallbacks(p, dom, bus)
		p.NotifyActionDone(notice)
	}
}

func runEventsAndCallbacks(p *problem.Problem, dom *domain.Domain, bus *eventbus.Bus) {
	var events []*model.Event
	for _, set := range dom.SetsOfEvents {
		events = append(events, set.Events...)
	}
	world.RunEvents(p.World, events, dom.Ontology.Constants, p.Objects)
	if bus != nil {
		bus.Check(p.World, dom.Ontology.Constants, p.Objects)
	}
}
