package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

func TestSourceRendersConjunctiveRule(t *testing.T) {
	types := ontology.NewSetOfTypes()
	ent, err := types.AddType("ent", "")
	require.NoError(t, err)

	head := &ontology.Predicate{Name: "ready", Params: []ontology.Parameter{{Name: "?e", Type: ent}}}
	body := model.And(
		model.AtomCond(model.NewFactOptional(false, model.Fact{Name: "powered", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
		model.AtomCond(model.NewFactOptional(true, model.Fact{Name: "locked", Args: []ontology.Entity{{Value: "?e", Type: ent}}})),
	)
	dp := &ontology.DerivedPredicate{
		Head:   head,
		Params: head.Params,
		Body:   body,
	}

	src, err := Source([]*ontology.DerivedPredicate{dp})
	require.NoError(t, err)
	assert.Equal(t, "ready(?E) :- powered(?E), !locked(?E).\n", src)
}

func TestSourceRejectsUnsupportedConditionKind(t *testing.T) {
	head := &ontology.Predicate{Name: "bad"}
	dp := &ontology.DerivedPredicate{
		Head: head,
		Body: model.Forall(ontology.Parameter{Name: "?x"}, model.And()),
	}

	_, err := Source([]*ontology.DerivedPredicate{dp})
	assert.Error(t, err, "quantifiers have no Mangle analogue and must be rejected")
}

func TestSourceRejectsNonConditionBody(t *testing.T) {
	dp := &ontology.DerivedPredicate{Head: &ontology.Predicate{Name: "bad"}, Body: "not a condition"}
	_, err := Source([]*ontology.DerivedPredicate{dp})
	assert.Error(t, err)
}
