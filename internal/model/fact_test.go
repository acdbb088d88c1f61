package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// S3 — signature under subtypes: fun1(?e - my_type3) - entity, with
// sub_my_type3 - my_type3 - ... - entity, generates exactly
// {fun1(entity), fun1(my_type3), fun1(sub_my_type3)} for a fact over a
// sub_my_type3-typed argument.
func TestS3SignatureUnderSubtypes(t *testing.T) {
	types := ontology.NewSetOfTypes()
	_, err := types.AddType("entity", "")
	require.NoError(t, err)
	_, err = types.AddType("my_type", "entity")
	require.NoError(t, err)
	_, err = types.AddType("my_type2", "entity")
	require.NoError(t, err)
	_, err = types.AddType("my_type3", "entity")
	require.NoError(t, err)
	subMyType3, err := types.AddType("sub_my_type3", "my_type3")
	require.NoError(t, err)

	f := Fact{Name: "fun1", Args: []ontology.Entity{{Value: "sub3a", Type: subMyType3}}}

	sigs := f.Signatures(types)
	assert.ElementsMatch(t, []string{"fun1(entity)", "fun1(my_type3)", "fun1(sub_my_type3)"}, sigs)
}

func TestSignaturesOfNullaryFact(t *testing.T) {
	f := Fact{Name: "fact_a"}
	assert.Equal(t, []string{"fact_a()"}, f.Signatures(nil))
}

// Testable property #1: a Fact's arity and argument types validate against
// its Predicate.
func TestProperty1FactValidatesArityAndTypes(t *testing.T) {
	types := ontology.NewSetOfTypes()
	ent, err := types.AddType("ent", "")
	require.NoError(t, err)
	other, err := types.AddType("other", "")
	require.NoError(t, err)

	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "lock", Params: []ontology.Parameter{{Name: "?e", Type: ent}}})

	_, err = NewFact("lock", []ontology.Entity{{Value: "e1", Type: ent}}, nil, preds)
	assert.NoError(t, err)

	_, err = NewFact("lock", nil, nil, preds)
	assert.Error(t, err, "arity mismatch must be rejected")

	_, err = NewFact("lock", []ontology.Entity{{Value: "e1", Type: ent}, {Value: "e2", Type: ent}}, nil, preds)
	assert.Error(t, err, "arity mismatch must be rejected")

	_, err = NewFact("lock", []ontology.Entity{{Value: "o1", Type: other}}, nil, preds)
	assert.Error(t, err, "argument of an incompatible type must be rejected")

	_, err = NewFact("unknown", nil, nil, preds)
	assert.Error(t, err, "unknown predicate must be rejected")
}

func TestProperty1FluentRequiresValue(t *testing.T) {
	types := ontology.NewSetOfTypes()
	preds := ontology.NewSetOfPredicates()
	preds.Add(&ontology.Predicate{Name: "level", FluentType: types.Number()})
	preds.Add(&ontology.Predicate{Name: "on"})

	_, err := NewFact("level", nil, nil, preds)
	assert.Error(t, err, "a fluent predicate requires a value")

	v := ontology.Entity{Value: "3", Type: types.Number()}
	_, err = NewFact("level", nil, &v, preds)
	assert.NoError(t, err)

	_, err = NewFact("on", nil, &v, preds)
	assert.Error(t, err, "a boolean predicate must not carry a value")
}
