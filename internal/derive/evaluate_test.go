package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

func TestEvaluatorDerivesFactFromConjunction(t *testing.T) {
	types := ontology.NewSetOfTypes()
	ent, err := types.AddType("ent", "")
	require.NoError(t, err)

	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "powered", Params: []ontology.Parameter{{Name: "?e", Type: ent}}})
	preds.Add(&ontology.Predicate{Name: "locked", Params: []ontology.Parameter{{Name: "?e", Type: ent}}})

	head := &ontology.Predicate{Name: "ready", Params: []ontology.Parameter{{Name: "?e", Type: ent}}}
	preds.Add(head)
	dp := &ontology.DerivedPredicate{
		Head:   head,
		Params: head.Params,
		Body: model.And(
			model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "powered", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
			model.AtomCond(model.NewFactOptional(true, model.Fact{Name: "locked", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
		),
	}

	ev, err := NewEvaluator([]*ontology.DerivedPredicate{dp}, preds)
	require.NoError(t, err)

	facts := []model.Fact{
		{Name: "powered", Args: []ontology.Entity{{Value: "e1", Type: ent}}},
	}
	derived, err := ev.Derive(facts)
	require.NoError(t, err)
	require.Len(t, derived, 1)
	assert.Equal(t, "ready", derived[0].Name)
	assert.Equal(t, "e1", derived[0].Args[0].Value)
}

func TestEvaluatorWithholdsWhenNegatedConditionFails(t *testing.T) {
	types := ontology.NewSetOfTypes()
	ent, err := types.AddType("ent", "")
	require.NoError(t, err)

	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "powered", Params: []ontology.Parameter{{Name: "?e", Type: ent}}})
	preds.Add(&ontology.Predicate{Name: "locked", Params: []ontology.Parameter{{Name: "?e", Type: ent}}})
	head := &ontology.Predicate{Name: "ready", Params: []ontology.Parameter{{Name: "?e", Type: ent}}}
	preds.Add(head)
	dp := &ontology.DerivedPredicate{
		Head:   head,
		Params: head.Params,
		Body: model.And(
			model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "powered", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
			model.AtomCond(model.NewFactOptional(true, model.Fact{Name: "locked", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
		),
	}
	ev, err := NewEvaluator([]*ontology.DerivedPredicate{dp}, preds)
	require.NoError(t, err)

	facts := []model.Fact{
		{Name: "powered", Args: []ontology.Entity{{Value: "e1", Type: ent}}},
		{Name: "locked", Args: []ontology.Entity{{Value: "e1", Type: ent}}},
	}
	derived, err := ev.Derive(facts)
	require.NoError(t, err)
	assert.Empty(t, derived)
}

func TestEvaluatorMemoizesByExactFactSet(t *testing.T) {
	types := ontology.NewSetOfTypes()
	ent, err := types.AddType("ent", "")
	require.NoError(t, err)
	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "powered", Params: []ontology.Parameter{{Name: "?e", Type: ent}}})
	head := &ontology.Predicate{Name: "ready", Params: []ontology.Parameter{{Name: "?e", Type: ent}}}
	preds.Add(head)
	dp := &ontology.DerivedPredicate{
		Head:   head,
		Params: head.Params,
		Body:   model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "powered", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
	}
	ev, err := NewEvaluator([]*ontology.DerivedPredicate{dp}, preds)
	require.NoError(t, err)

	facts := []model.Fact{{Name: "powered", Args: []ontology.Entity{{Value: "e1", Type: ent}}}}
	first, err := ev.Derive(facts)
	require.NoError(t, err)
	second, err := ev.Derive(facts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
