package pddl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/planner"
)

func TestWritePlanFormatsHeaderAndSteps(t *testing.T) {
	plan := []planner.GroundAction{
		{ActionID: "a1", Args: []ontology.Entity{{Value: "e2"}}},
		{ActionID: "a2"},
	}

	var buf strings.Builder
	require.NoError(t, WritePlan(&buf, plan, "s1.pddl"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "; Plan generated by ordered-goals-planner-sub001", lines[0])
	assert.Equal(t, "; Problem file: s1.pddl", lines[1])
	assert.Equal(t, "(a1 e2)", lines[2])
	assert.Equal(t, "(a2)", lines[3])
}

func TestWritePlanEmptyPlanStillWritesHeader(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WritePlan(&buf, nil, "p.pddl"))
	assert.Contains(t, buf.String(), "; Problem file: p.pddl")
}
