package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

func newTestProblem() *Problem {
	types := ontology.NewSetOfTypes()
	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "fact_a"})
	return New(preds, types)
}

func TestNewProblemStartsEmpty(t *testing.T) {
	p := newTestProblem()
	require.NotNil(t, p.World)
	require.NotNil(t, p.Goals)
	require.NotNil(t, p.Objects)
	assert.Empty(t, p.AllFacts())
}

func TestAllFactsReflectsWorldMutations(t *testing.T) {
	p := newTestProblem()
	p.World.AddFact(model.Fact{Name: "fact_a"}, false)
	assert.Len(t, p.AllFacts(), 1)
}

func TestNotifyActionStartedInvokesAllCallbacks(t *testing.T) {
	p := newTestProblem()
	var got []ActionNotification
	p.OnActionStarted(func(n ActionNotification) { got = append(got, n) })
	p.OnActionStarted(func(n ActionNotification) { got = append(got, n) })

	n := ActionNotification{ActionID: "a1", Args: []ontology.Entity{{Value: "e1"}}}
	p.NotifyActionStarted(n)

	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ActionID)
	assert.Equal(t, "a1", got[1].ActionID)
}

func TestNotifyActionDoneInvokesAllCallbacks(t *testing.T) {
	p := newTestProblem()
	var calls int
	p.OnActionDone(func(ActionNotification) { calls++ })

	p.NotifyActionDone(ActionNotification{ActionID: "a1"})
	p.NotifyActionDone(ActionNotification{ActionID: "a2"})

	assert.Equal(t, 2, calls)
}

func TestNotifyWithNoCallbacksIsANoop(t *testing.T) {
	p := newTestProblem()
	assert.NotPanics(t, func() {
		p.NotifyActionStarted(ActionNotification{ActionID: "a1"})
		p.NotifyActionDone(ActionNotification{ActionID: "a1"})
	})
}
