package goalstack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
)

func TestAddGoalAssignsDistinctGroupIDs(t *testing.T) {
	s := New()
	s.AddGoal(0, model.NewGoal(nil))
	s.AddGoal(0, model.NewGoal(nil))
	s.AddGoal(5, model.NewGoal(nil))

	goals := s.All()
	require.Len(t, goals, 3)
	seen := map[string]bool{}
	for _, g := range goals {
		assert.NotEmpty(t, g.GroupID)
		assert.False(t, seen[g.GroupID], "duplicate GroupID %q", g.GroupID)
		seen[g.GroupID] = true
	}
}

func TestAddGoalPreservesExplicitGroupID(t *testing.T) {
	s := New()
	g := model.NewGoal(nil)
	g.GroupID = "mine"
	s.AddGoal(0, g)
	assert.Equal(t, "mine", g.GroupID)
}

// S5 — goal auto-expiry: a goal with MaxInactiveSeconds=0 is removed from
// the stack once RemoveExpired observes it has sat inactive since before now.
func TestS5GoalAutoExpiry(t *testing.T) {
	s := New()
	zero := 0.0
	g := model.NewGoal(nil)
	g.MaxInactiveSeconds = &zero

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.AddGoal(0, g)
	s.TouchActivity(g, t0)

	// No time has elapsed yet: not expired.
	assert.Empty(t, s.RemoveExpired(t0))
	assert.False(t, s.Empty())

	// A later notify (a plan that did not address this goal) observes the
	// goal has been inactive since t0: it expires and is dropped.
	t1 := t0.Add(time.Second)
	expired := s.RemoveExpired(t1)
	require.Len(t, expired, 1)
	assert.Same(t, g, expired[0])
	assert.True(t, s.Empty())
}

func TestGoalWithNoMaxInactiveNeverExpires(t *testing.T) {
	s := New()
	g := model.NewGoal(nil)
	s.AddGoal(0, g)
	s.TouchActivity(g, time.Now())
	assert.Empty(t, s.RemoveExpired(time.Now().Add(24*time.Hour)))
}

func TestPopRespectsPersistent(t *testing.T) {
	s := New()
	g := model.NewGoal(nil)
	g.Persistent = true
	s.AddGoal(0, g)
	s.Pop(0, g)
	assert.Len(t, s.AtPriority(0), 1)
}

func TestHighestPriorityGoalOrdering(t *testing.T) {
	s := New()
	low := model.NewGoal(nil)
	high := model.NewGoal(nil)
	s.AddGoal(1, low)
	s.AddGoal(10, high)

	priority, g, ok := s.HighestPriorityGoal()
	require.True(t, ok)
	assert.Equal(t, 10, priority)
	assert.Same(t, high, g)
}
