// Package domain holds the Domain aggregate — the ontology, the action and
// event catalog, the timeless facts injected into every WorldState, and the
// successor caches the planner queries during search.
package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// SetOfEvents is a named, independently-triggered group of events — one
// set per simulated subsystem.
type SetOfEvents struct {
	Name   string
	Events []*model.Event
}

// Domain aggregates everything that does not change while a plan executes:
// the ontology, the action/event catalog, the timeless facts and the
// successor caches built from them. Domain exposes an explicit Rebuild
// step: callers mutate the catalog fields directly, then call Rebuild to
// refresh the UUID and both successor caches atomically. There is no
// implicit background rebuild.
type Domain struct {
	UUID uuid.UUID
	Name string

	Ontology      *ontology.Ontology
	TimelessFacts []model.Fact
	Actions       []*model.Action
	SetsOfEvents  []*SetOfEvents
	Requirements  []string

	ConditionsToActionIDs    map[string][]string
	NotConditionsToActionIDs map[string][]string
	ActionsWithoutPrecondition []string

	successors *SuccessorCache
	actionByID map[string]*model.Action
}

// New returns an empty, unrebuilt Domain.
func New(name string, ont *ontology.Ontology) *Domain {
	return &Domain{
		Name:     name,
		Ontology: ont,
	}
}

// Rebuild regenerates the UUID, the action lookup, the precondition index
// and the effect-based successor cache from the current Actions; the events
// in SetsOfEvents are not indexed. The UUID changes on every Rebuild so
// downstream caches can key off it. Call this once after any change to Actions,
// SetsOfEvents, TimelessFacts or Ontology.
func (d *Domain) Rebuild() {
	d.UUID = uuid.New()
	d.actionByID = make(map[string]*model.Action, len(d.Actions))
	for _, a := range d.Actions {
		d.actionByID[a.ID] = a
	}
	d.buildPreconditionIndex()
	d.successors = buildSuccessorCache(d.Actions, d.Ontology.Types)
}

// ActionByID looks up an action by id, valid as of the last Rebuild.
func (d *Domain) ActionByID(id string) (*model.Action, bool) {
	a, ok := d.actionByID[id]
	return a, ok
}

// Successors returns the effect-based successor cache built by the last
// Rebuild — the index internal/planner actually queries.
func (d *Domain) Successors() *SuccessorCache {
	return d.successors
}

// buildPreconditionIndex indexes, for each action and each atom reachable
// via the precondition's forAll, (atom-signature-key, actionId) into
// conditionsToActions or notConditionsToActions according to polarity.
// It is exposed for debugging via DebugSuccessorCache; internal/planner
// queries Successors() instead (see the dual-index note in the design
// ledger).
func (d *Domain) buildPreconditionIndex() {
	d.ConditionsToActionIDs = make(map[string][]string)
	d.NotConditionsToActionIDs = make(map[string][]string)
	var withoutPrecondition []string

	for _, a := range d.Actions {
		sawAtom := false
		if a.Precondition != nil {
			a.Precondition.ForAll(func(fo model.FactOptional, ignoreValue bool) {
				sawAtom = true
				for _, sig := range fo.Fact.Signatures(d.Ontology.Types) {
					if fo.Negated {
						d.NotConditionsToActionIDs[sig] = appendUnique(d.NotConditionsToActionIDs[sig], a.ID)
					} else {
						d.ConditionsToActionIDs[sig] = appendUnique(d.ConditionsToActionIDs[sig], a.ID)
					}
				}
			})
		}
		if !sawAtom {
			withoutPrecondition = append(withoutPrecondition, a.ID)
		}
	}
	sort.Strings(withoutPrecondition)
	d.ActionsWithoutPrecondition = withoutPrecondition
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

// DebugSuccessorCache renders the precondition-based index, mirroring the
// original's printSuccessionCache debug dump.
func (d *Domain) DebugSuccessorCache() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "domain %s (uuid=%s)\n", d.Name, d.UUID)
	keys := make([]string, 0, len(d.ConditionsToActionIDs))
	for k := range d.ConditionsToActionIDs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  + %s -> %s\n", k, strings.Join(d.ConditionsToActionIDs[k], ", "))
	}
	keys = keys[:0]
	for k := range d.NotConditionsToActionIDs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  - %s -> %s\n", k, strings.Join(d.NotConditionsToActionIDs[k], ", "))
	}
	if len(d.ActionsWithoutPrecondition) > 0 {
		fmt.Fprintf(&sb, "  (no precondition) -> %s\n", strings.Join(d.ActionsWithoutPrecondition, ", "))
	}
	return sb.String()
}
