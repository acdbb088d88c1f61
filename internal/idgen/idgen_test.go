package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Mirrors the original's own test_util.cpp table for
// incrementLastNumberUntilAConditionIsSatisfied (spec testable property #7).
func TestIncrementLastNumberUntilAConditionIsSatisfied(t *testing.T) {
	ids := map[string]bool{}
	insert := func(id string) string {
		newID := IncrementLastNumberUntilAConditionIsSatisfied(id, func(cand string) bool { return !ids[cand] })
		ids[newID] = true
		return newID
	}

	assert.Equal(t, "", IncrementLastNumberUntilAConditionIsSatisfied("", func(string) bool { return true }))
	assert.Equal(t, "dede", insert("dede"))
	assert.Equal(t, "dede_2", insert("dede"))
	assert.Equal(t, "dede_3", insert("dede"))
	assert.Equal(t, "dede_4", insert("dede_2"))
	assert.Equal(t, "dede_5", insert("dede_4"))
	assert.Equal(t, "dede_6", insert("dede_6"))
	assert.Equal(t, "didi", insert("didi"))
}

func TestIncrementLastNumberReturnsInputWhenFree(t *testing.T) {
	got := IncrementLastNumberUntilAConditionIsSatisfied("fresh", func(string) bool { return true })
	assert.Equal(t, "fresh", got)
}
