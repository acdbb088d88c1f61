package pddl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/planner"
)

const s1Problem = `
(define (problem s1-instance)
  (:domain s1)
  (:init (lock e2))
  (:goal fact_a))
`

func TestParseProblemAndPlan_S1NegativePrecondition(t *testing.T) {
	dom, err := ParseDomain(s1Domain)
	require.NoError(t, err)

	prob, err := ParseProblem(s1Problem, dom)
	require.NoError(t, err)

	result, ok := planner.PlanForMoreImportantGoalPossible(prob, dom, planner.Limits{MaxDepth: 16, MaxSteps: 1000}, time.Now())
	require.True(t, ok)
	require.Len(t, result.Plan, 2)
	assert.Equal(t, "a1", result.Plan[0].ActionID)
	assert.Equal(t, "a2", result.Plan[1].ActionID)
	require.Len(t, result.Plan[0].Args, 1)
	assert.Equal(t, "e2", result.Plan[0].Args[0].Value)
}

func TestParseProblemGoalPriorityAndWrappers(t *testing.T) {
	dom, err := ParseDomain(`
(define (domain d)
  (:predicates (fact_a) (fact_b)))
`)
	require.NoError(t, err)

	prob, err := ParseProblem(`
(define (problem p)
  (:domain d)
  (:goal 5 (persist fact_a))
  (:goal 10 fact_b))
`, dom)
	require.NoError(t, err)

	priorities := prob.Goals.Priorities()
	require.Equal(t, []int{10, 5}, priorities)

	lower := prob.Goals.AtPriority(5)
	require.Len(t, lower, 1)
	assert.True(t, lower[0].Persistent)
}

func TestParseProblemObjectsAndInitFluent(t *testing.T) {
	dom, err := ParseDomain(`
(define (domain d)
  (:types ent - object)
  (:functions (level ?e - ent)))
`)
	require.NoError(t, err)

	prob, err := ParseProblem(`
(define (problem p)
  (:domain d)
  (:objects e1 - ent)
  (:init (= (level e1) 3)))
`, dom)
	require.NoError(t, err)

	_, ok := prob.Objects.Get("e1")
	assert.True(t, ok)
}

func TestParseProblemRejectsUnknownSection(t *testing.T) {
	dom, err := ParseDomain(`(define (domain d))`)
	require.NoError(t, err)
	_, err = ParseProblem(`(define (problem p) (:bogus 1))`, dom)
	assert.Error(t, err)
}

// A problem built against a domain with a :derived predicate gets a World
// whose HasFact also consults the derived extension once its asserted
// dependencies hold.
func TestParseProblemDerivedPredicateIsQueryableOnWorld(t *testing.T) {
	dom, err := ParseDomain(`
(define (domain d)
  (:predicates (raining) (wet))
  (:derived (wet) (raining)))
`)
	require.NoError(t, err)

	prob, err := ParseProblem(`(define (problem p) (:domain d))`, dom)
	require.NoError(t, err)

	assert.False(t, prob.World.HasFact(model.Fact{Name: "wet"}))

	prob.World.AddFact(model.Fact{Name: "raining"}, false)
	assert.True(t, prob.World.HasFact(model.Fact{Name: "wet"}), "wet is derived once raining is asserted")
}
