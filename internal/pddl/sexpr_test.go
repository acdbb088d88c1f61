package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllRoundTripsNestedForms(t *testing.T) {
	p := NewParser("(define (domain d) (:predicates (lock ?e - entity)))")
	forms, err := p.ParseAll()
	require.NoError(t, err)
	require.Len(t, forms, 1)

	top := forms[0]
	require.False(t, top.IsAtom())
	assert.Equal(t, "define", top.List[0].Atom)
	assert.Equal(t, "domain", top.List[1].List[0].Atom)
	assert.Equal(t, "d", top.List[1].List[1].Atom)

	preds := top.List[2]
	assert.Equal(t, ":predicates", preds.List[0].Atom)
	lockDecl := preds.List[1]
	assert.Equal(t, "lock", lockDecl.List[0].Atom)
	assert.Equal(t, "?e", lockDecl.List[1].Atom)
	assert.Equal(t, "-", lockDecl.List[2].Atom)
	assert.Equal(t, "entity", lockDecl.List[3].Atom)
}

func TestParseAllRejectsUnbalancedParens(t *testing.T) {
	p := NewParser("(define (domain d)")
	_, err := p.ParseAll()
	assert.Error(t, err)
}

func TestParseAllRejectsStrayCloseParen(t *testing.T) {
	p := NewParser("(a))")
	_, err := p.ParseAll()
	assert.Error(t, err)
}

func TestParseAllHandlesMultipleTopLevelForms(t *testing.T) {
	p := NewParser("(a) (b) (c)")
	forms, err := p.ParseAll()
	require.NoError(t, err)
	assert.Len(t, forms, 3)
}
