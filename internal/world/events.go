package world

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
)

// RunEvents fires every event in events whose precondition holds, applies
// its effect, and repeats until a full pass produces no new mutation. A
// single (eventID, binding) pair is only allowed to fire once per
// RunEvents call: without that guard an event whose own effect
// re-satisfies its precondition would fire forever.
func RunEvents(ws *WorldState, events []*model.Event, constants, objects *ontology.SetOfEntities) []model.Fact {
	fired := make(map[string]bool)
	var allTouched []model.Fact

	for {
		changed := false
		for _, ev := range events {
			for _, b := range Solve(ev.Precondition, ws, constants, objects, unify.Binding{}) {
				if !isGroundForParams(ev.Params, b) {
					continue
				}
				key := ev.ID + "/" + bindingKey(b)
				if fired[key] {
					continue
				}
				fired[key] = true
				touched := Modify(ws, ev.Effect, b, constants, objects)
				if len(touched) > 0 {
					allTouched = append(allTouched, touched...)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return allTouched
}

func isGroundForParams(params []ontology.Parameter, b unify.Binding) bool {
	for _, p := range params {
		if _, ok := b[p.Name]; !ok {
			return false
		}
	}
	return true
}
