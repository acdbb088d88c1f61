// Package goalstack implements the priority-bucketed, insertion-ordered
// goal queue the planner discharges one goal at a time.
package goalstack

import (
	"fmt"
	"sort"
	"time"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/idgen"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
)

// GoalStack is a map from integer priority to an insertion-ordered list of
// goals. Highest priority is served first; ties break by insertion order.
type GoalStack struct {
	buckets map[int][]*model.Goal

	// EffectBetweenGoals is applied to the world between consecutive goals
	// during planForEveryGoals.
	EffectBetweenGoals *model.Effect
}

// New returns an empty GoalStack.
func New() *GoalStack {
	return &GoalStack{buckets: make(map[int][]*model.Goal)}
}

// AddGoal appends g to the bucket for priority, preserving insertion order.
// A goal added with no GroupID is assigned one derived from its priority
// bucket, de-duplicated against every GroupID already in the stack — the
// only back-reference from a goal to its owning group is resolved by id
// lookup.
func (s *GoalStack) AddGoal(priority int, g *model.Goal) {
	if g.GroupID == "" {
		g.GroupID = idgen.IncrementLastNumberUntilAConditionIsSatisfied(groupIDSeed(priority), s.groupIDFree)
	}
	s.buckets[priority] = append(s.buckets[priority], g)
}

func groupIDSeed(priority int) string {
	if priority == 0 {
		return "goals"
	}
	return fmt.Sprintf("goals_p%d", priority)
}

func (s *GoalStack) groupIDFree(id string) bool {
	for _, goals := range s.buckets {
		for _, g := range goals {
			if g.GroupID == id {
				return false
			}
		}
	}
	return true
}

// Priorities returns every non-empty bucket's priority, highest first.
func (s *GoalStack) Priorities() []int {
	out := make([]int, 0, len(s.buckets))
	for p, goals := range s.buckets {
		if len(goals) > 0 {
			out = append(out, p)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// AtPriority returns the goals in the given priority's bucket, in
// insertion order.
func (s *GoalStack) AtPriority(priority int) []*model.Goal {
	return s.buckets[priority]
}

// HighestPriorityGoal returns the first goal in the highest-priority
// non-empty bucket, or nil if the stack is empty.
func (s *GoalStack) HighestPriorityGoal() (priority int, goal *model.Goal, ok bool) {
	priorities := s.Priorities()
	if len(priorities) == 0 {
		return 0, nil, false
	}
	p := priorities[0]
	goals := s.buckets[p]
	if len(goals) == 0 {
		return 0, nil, false
	}
	return p, goals[0], true
}

// Pop removes the given goal from its priority bucket unless it is
// persistent, in which case it is left in place.
func (s *GoalStack) Pop(priority int, g *model.Goal) {
	if g.Persistent {
		return
	}
	bucket := s.buckets[priority]
	for i, cand := range bucket {
		if cand == g {
			s.buckets[priority] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Remove unconditionally removes g from priority's bucket, used for
// auto-expiry which applies regardless of persistence.
func (s *GoalStack) Remove(priority int, g *model.Goal) {
	bucket := s.buckets[priority]
	for i, cand := range bucket {
		if cand == g {
			s.buckets[priority] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// All returns every goal across every bucket, highest priority first, in
// insertion order within a bucket.
func (s *GoalStack) All() []*model.Goal {
	var out []*model.Goal
	for _, p := range s.Priorities() {
		out = append(out, s.buckets[p]...)
	}
	return out
}

// Empty reports whether the stack holds no goals.
func (s *GoalStack) Empty() bool {
	for _, goals := range s.buckets {
		if len(goals) > 0 {
			return false
		}
	}
	return true
}

// RemoveExpired removes and returns every goal whose MaxInactiveSeconds has
// elapsed as of now.
func (s *GoalStack) RemoveExpired(now time.Time) []*model.Goal {
	var expired []*model.Goal
	for p, goals := range s.buckets {
		var kept []*model.Goal
		for _, g := range goals {
			if g.Expired(now) {
				expired = append(expired, g)
				continue
			}
			kept = append(kept, g)
		}
		s.buckets[p] = kept
	}
	return expired
}

// TouchActivity resets a goal's InactiveSince to now, called whenever a
// notify advances progress towards it.
func (s *GoalStack) TouchActivity(g *model.Goal, now time.Time) {
	g.InactiveSince = now
}
