package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const s1Domain = `
(define (domain s1)
  (:types ent - object)
  (:constants e1 e2 e3 - ent)
  (:predicates
    (lock ?e - ent)
    (fact_a))
  (:action a1
    :parameters (?e - ent)
    :effect (not (lock ?e)))
  (:action a2
    :precondition (not (lock e2))
    :effect (fact_a)))
`

func TestParseDomainBuildsActionsAndTypes(t *testing.T) {
	dom, err := ParseDomain(s1Domain)
	require.NoError(t, err)
	assert.Equal(t, "s1", dom.Name)
	require.Len(t, dom.Actions, 2)

	a1 := dom.Actions[0]
	assert.Equal(t, "a1", a1.ID)
	require.Len(t, a1.Params, 1)
	assert.Equal(t, "?e", a1.Params[0].Name)

	a2 := dom.Actions[1]
	assert.Equal(t, "a2", a2.ID)
	require.NotNil(t, a2.Precondition)

	_, ok := dom.Ontology.Constants.Get("e2")
	assert.True(t, ok)
	_, ok = dom.Ontology.Predicates.Get("lock")
	assert.True(t, ok)
}

func TestParseDomainRejectsUnknownSection(t *testing.T) {
	_, err := ParseDomain(`(define (domain d) (:bogus 1))`)
	assert.Error(t, err)
}

func TestParseDomainRejectsUnknownPredicateInEffect(t *testing.T) {
	_, err := ParseDomain(`(define (domain d)
		(:action a :effect (missing))
	)`)
	assert.Error(t, err)
}

func TestParseDomainDerivedPredicate(t *testing.T) {
	dom, err := ParseDomain(`
(define (domain d)
  (:predicates (raining) (wet))
  (:derived (wet) (raining)))
`)
	require.NoError(t, err)
	require.Len(t, dom.Ontology.DerivedPredicates, 1)
	assert.Equal(t, "wet", dom.Ontology.DerivedPredicates[0].Head.Name)
}

func TestParseDomainFunctionsAreFluents(t *testing.T) {
	dom, err := ParseDomain(`
(define (domain d)
  (:functions (fuel-level ?e - object))
  (:action burn
    :parameters (?e - object)
    :effect (decrease (fuel-level ?e) 1)))
`)
	require.NoError(t, err)
	pred, ok := dom.Ontology.Predicates.Get("fuel-level")
	require.True(t, ok)
	assert.True(t, pred.IsFluent())
}
