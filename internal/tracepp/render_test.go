package tracepp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilRecorderRecordIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Record(Event{Kind: EventGoalPursued, Detail: "x"})
	})
	assert.Equal(t, "", RenderText(r))
}

func TestRenderTextIndentsByDepth(t *testing.T) {
	r := New()
	r.Record(Event{Kind: EventGoalPursued, Depth: 0, Detail: "fact_a"})
	r.Record(Event{Kind: EventCandidateTried, Depth: 1, ActionID: "a1", Args: []string{"e2"}})
	r.Record(Event{Kind: EventCandidateAccepted, Depth: 1, ActionID: "a1", Args: []string{"e2"}})
	r.Record(Event{Kind: EventGoalSatisfied, Depth: 0, Detail: "fact_a"})

	out := RenderText(r)
	assert.Contains(t, out, "pursuing: fact_a")
	assert.Contains(t, out, "trying (a1 e2)")
	assert.Contains(t, out, "accepted (a1 e2)")
	assert.Contains(t, out, "satisfied: fact_a")
}

func TestRenderYAMLRoundTripsEvents(t *testing.T) {
	r := New()
	r.Record(Event{Kind: EventCandidateTried, Depth: 2, ActionID: "a2"})

	out, err := RenderYAML(r)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: candidate-tried")
	assert.Contains(t, out, "action_id: a2")
}

func TestRenderDispatchesOnFormat(t *testing.T) {
	r := New()
	r.Record(Event{Kind: EventSearchExhausted, Detail: "no plan"})

	text, err := Render(r, "text")
	require.NoError(t, err)
	assert.Contains(t, text, "exhausted: no plan")

	yamlOut, err := Render(r, "yaml")
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "search-exhausted")

	_, err = Render(r, "json")
	assert.Error(t, err)
}
