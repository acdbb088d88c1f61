package model

import "time"

// Goal wraps a Condition with its lifecycle flags.
type Goal struct {
	Condition *Condition

	// Persistent goals are not popped from the GoalStack once satisfied.
	Persistent bool

	// OneStepTowards goals succeed on any plan that strictly decreases the
	// unsatisfied-atom count without requiring full satisfaction this step.
	OneStepTowards bool

	// ConditionFact makes the goal active only while this fact holds,
	// equivalent to wrapping Condition in imply(ConditionFact, Condition).
	ConditionFact *Fact

	// MaxInactiveSeconds auto-expires the goal if it is never progressed
	// within this many seconds of activity (nil disables expiry).
	MaxInactiveSeconds *float64

	GroupID       string
	InactiveSince time.Time
}

// NewGoal builds a non-persistent, non-quantized goal over cond.
func NewGoal(cond *Condition) *Goal {
	return &Goal{Condition: cond}
}

// IsActive reports whether the goal's ConditionFact (if any) currently
// holds, given a lookup function the caller supplies (typically
// world.WorldState.HasFact). A goal with no ConditionFact is always active.
func (g *Goal) IsActive(hasFact func(Fact) bool) bool {
	if g.ConditionFact == nil {
		return true
	}
	return hasFact(*g.ConditionFact)
}

// Expired reports whether the goal has been inactive for longer than
// MaxInactiveSeconds as of now.
func (g *Goal) Expired(now time.Time) bool {
	if g.MaxInactiveSeconds == nil {
		return false
	}
	if g.InactiveSince.IsZero() {
		return false
	}
	return now.Sub(g.InactiveSince).Seconds() > *g.MaxInactiveSeconds
}
