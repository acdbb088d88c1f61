package unify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

func entity(v string) ontology.Entity { return ontology.Entity{Value: v} }

// Testable property #6: UnfoldMapWithSet enumerates the cartesian product of
// per-parameter candidates, with no duplicates, visiting parameters in
// lexicographic order.
func TestProperty6UnfoldMapWithSetEnumeratesCartesianProduct(t *testing.T) {
	m := ParameterValuesWithConstraints{
		"?x": {{Entity: entity("a")}, {Entity: entity("b")}},
		"?y": {{Entity: entity("1")}, {Entity: entity("2")}},
	}
	results := UnfoldMapWithSet(m)
	assert.Len(t, results, 4)

	seen := map[string]bool{}
	for _, b := range results {
		key := fmt.Sprintf("%s,%s", b["?x"].Value, b["?y"].Value)
		assert.False(t, seen[key], "duplicate binding %s", key)
		seen[key] = true
	}
	for _, want := range []string{"a,1", "a,2", "b,1", "b,2"} {
		assert.True(t, seen[want], "missing combination %s", want)
	}
}

func TestUnfoldMapWithSetFiltersOnCrossParameterConstraint(t *testing.T) {
	m := ParameterValuesWithConstraints{
		"?x": {{Entity: entity("a")}, {Entity: entity("b")}},
		"?y": {{Entity: entity("1"), Constraints: map[string][]ontology.Entity{"?x": {entity("a")}}}},
	}
	results := UnfoldMapWithSet(m)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0]["?x"].Value)
	assert.Equal(t, "1", results[0]["?y"].Value)
}

func TestUnfoldMapWithSetEmptyMapYieldsOneEmptyBinding(t *testing.T) {
	results := UnfoldMapWithSet(ParameterValuesWithConstraints{})
	assert.Len(t, results, 1)
	assert.Empty(t, results[0])
}
