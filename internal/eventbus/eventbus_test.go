package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

func newTestWorld(t *testing.T) *world.WorldState {
	t.Helper()
	types := ontology.NewSetOfTypes()
	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "fact_a"})
	return world.New(preds, types)
}

func TestCheckFiresOnceWhenConditionBecomesTrue(t *testing.T) {
	ws := newTestWorld(t)
	cond := model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "fact_a"}))

	b := New()
	fired := 0
	b.Subscribe(cond, func(unify.Binding) { fired++ })

	b.Check(ws, nil, nil)
	assert.Equal(t, 0, fired, "condition is not yet true")

	ws.AddFact(model.Fact{Name: "fact_a"}, false)
	b.Check(ws, nil, nil)
	assert.Equal(t, 1, fired)

	b.Check(ws, nil, nil)
	assert.Equal(t, 1, fired, "a subscription fires at most once")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ws := newTestWorld(t)
	cond := model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "fact_a"}))
	ws.AddFact(model.Fact{Name: "fact_a"}, false)

	b := New()
	fired := 0
	id := b.Subscribe(cond, func(unify.Binding) { fired++ })
	b.Unsubscribe(id)

	b.Check(ws, nil, nil)
	assert.Equal(t, 0, fired)
}

func TestSubscribeReturnsDistinctIDs(t *testing.T) {
	b := New()
	cond := model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "fact_a"}))
	id1 := b.Subscribe(cond, func(unify.Binding) {})
	id2 := b.Subscribe(cond, func(unify.Binding) {})
	require.NotEqual(t, id1, id2)
}
