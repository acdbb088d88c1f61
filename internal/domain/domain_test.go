package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

func newTestOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	ont := ontology.NewOntology()
	ont.Predicates.Add(&ontology.Predicate{Name: "fact_a"})
	ont.Predicates.Add(&ontology.Predicate{Name: "fact_b"})
	return ont
}

func atom(name string, negated bool) *model.Condition {
	return model.AtomCond(model.NewFactOptional(negated, model.Fact{Name: name}))
}

func TestRebuildIndexesActionsByPreconditionPolarity(t *testing.T) {
	ont := newTestOntology(t)
	d := New("d", ont)
	d.Actions = []*model.Action{
		{ID: "a1", Precondition: atom("fact_a", false), Effect: model.AddEffect(model.Fact{Name: "fact_b"})},
		{ID: "a2", Precondition: atom("fact_a", true), Effect: model.DeleteEffect(model.Fact{Name: "fact_b"})},
		{ID: "a3"},
	}
	d.Rebuild()

	assert.Equal(t, []string{"a1"}, d.ConditionsToActionIDs["fact_a()"])
	assert.Equal(t, []string{"a2"}, d.NotConditionsToActionIDs["fact_a()"])
	assert.Equal(t, []string{"a3"}, d.ActionsWithoutPrecondition)

	a, ok := d.ActionByID("a1")
	require.True(t, ok)
	assert.Equal(t, "a1", a.ID)
	_, ok = d.ActionByID("missing")
	assert.False(t, ok)
}

func TestRebuildRegeneratesUUID(t *testing.T) {
	ont := newTestOntology(t)
	d := New("d", ont)
	d.Rebuild()
	first := d.UUID
	d.Rebuild()
	assert.NotEqual(t, first, d.UUID)
}

func TestSuccessorCacheIndexesByEffectPolarity(t *testing.T) {
	ont := newTestOntology(t)
	d := New("d", ont)
	d.Actions = []*model.Action{
		{ID: "a1", Effect: model.AddEffect(model.Fact{Name: "fact_a"})},
		{ID: "a2", Effect: model.DeleteEffect(model.Fact{Name: "fact_a"})},
	}
	d.Rebuild()

	assert.Equal(t, []string{"a1"}, d.Successors().ActionsEstablishing("fact_a()", true))
	assert.Equal(t, []string{"a2"}, d.Successors().ActionsEstablishing("fact_a()", false))
	assert.Empty(t, d.Successors().ActionsEstablishing("fact_b()", true))
}

func TestDebugSuccessorCacheRendersDeterministically(t *testing.T) {
	ont := newTestOntology(t)
	d := New("d", ont)
	d.Actions = []*model.Action{
		{ID: "a1", Precondition: atom("fact_a", false)},
	}
	d.Rebuild()

	out := d.DebugSuccessorCache()
	assert.Contains(t, out, "fact_a() -> a1")
}
