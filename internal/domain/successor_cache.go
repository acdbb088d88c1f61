package domain

import (
	"sort"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// SuccessorCache maps a fact signature (a type-broadened "name(T1,...,Tn)"
// key) to the ids of actions whose effect can establish a fact of that
// name/arity — queried for each unsatisfied goal literal to find candidate
// actions. It is built from effect atoms, not precondition atoms; see the
// design ledger's "Open Question: successor cache indexing direction" for
// why this differs from Domain.ConditionsToActionIDs.
type SuccessorCache struct {
	establishing map[string][]string // fact established positively (Add/Assign)
	retracting   map[string][]string // fact established negatively (Delete)
}

func buildSuccessorCache(actions []*model.Action, types *ontology.SetOfTypes) *SuccessorCache {
	c := &SuccessorCache{
		establishing: make(map[string][]string),
		retracting:   make(map[string][]string),
	}
	for _, a := range actions {
		if a.Effect == nil {
			continue
		}
		a.Effect.ForAllFacts(func(kind model.EffKind, f model.Fact) {
			for _, sig := range f.Signatures(types) {
				switch kind {
				case model.EffDelete:
					c.retracting[sig] = appendUnique(c.retracting[sig], a.ID)
				default: // Add, Assign, Increase, Decrease all establish a value
					c.establishing[sig] = appendUnique(c.establishing[sig], a.ID)
				}
			}
		})
	}
	for _, ids := range c.establishing {
		sort.Strings(ids)
	}
	for _, ids := range c.retracting {
		sort.Strings(ids)
	}
	return c
}

// ActionsEstablishing returns the ids of actions whose effect can make a
// fact with the given signature true (positive literal) when wantTrue, or
// false (i.e. delete it) when !wantTrue. The caller passes one of
// model.Fact.Signatures(types); ids are returned in lexicographic order,
// the tie-break used for candidates of equal cost and establishment count.
func (c *SuccessorCache) ActionsEstablishing(signature string, wantTrue bool) []string {
	if wantTrue {
		return c.establishing[signature]
	}
	return c.retracting[signature]
}
