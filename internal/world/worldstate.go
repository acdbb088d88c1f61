// Package world implements the mutable ground-fact store, its multi-key
// indices, effect application and the event engine that fires triggered
// effects to a fixed point after every mutation.
package world

import (
	"github.com/carloacu/ordered-goals-planner-sub001/internal/derive"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// argIndex is the per-predicate multi-key index: one value->facts map per
// argument position, plus a value->facts map over the fluent value.
type argIndex struct {
	byPosition   []map[string][]*model.Fact
	byFluent     map[string][]*model.Fact
	allCurrent   []*model.Fact // every currently-true fact of this predicate
}

// WorldState owns the ground-fact store and its derived indices.
type WorldState struct {
	preds *ontology.SetOfPredicates
	types *ontology.SetOfTypes

	// facts is a `{Fact -> isTimeless}` map, keyed by the fact's exact
	// string form (name/args/value).
	facts map[string]bool

	// exactCallIndex: "name(a,b,...)=v" -> the Fact, and the value-less
	// variant "name(a,b,...)" -> the current Fact at that call (at most one,
	// since an assign/add overwrites any prior fact at the same call).
	exactCallIndex map[string]*model.Fact
	callIndex      map[string]*model.Fact

	signatures map[string]*argIndex

	// derived evaluates the domain's :derived predicates against the
	// current facts, memoized until the next mutation.
	derived      *derive.Evaluator
	derivedFacts []model.Fact
	derivedDirty bool
}

// New returns an empty WorldState over the given ontology.
func New(preds *ontology.SetOfPredicates, types *ontology.SetOfTypes) *WorldState {
	return &WorldState{
		preds:          preds,
		types:          types,
		facts:          make(map[string]bool),
		exactCallIndex: make(map[string]*model.Fact),
		callIndex:      make(map[string]*model.Fact),
		signatures:     make(map[string]*argIndex),
	}
}

func (ws *WorldState) sigIndex(name string, arity int) *argIndex {
	idx, ok := ws.signatures[name]
	if !ok {
		idx = &argIndex{
			byPosition: make([]map[string][]*model.Fact, arity),
			byFluent:   make(map[string][]*model.Fact),
		}
		for i := range idx.byPosition {
			idx.byPosition[i] = make(map[string][]*model.Fact)
		}
		ws.signatures[name] = idx
	}
	return idx
}

// AddFact inserts f, overwriting whatever fact (if any) currently occupies
// the same call key (name+args) — the rule that makes fluent assignment and
// re-asserting a boolean fact both well defined.
func (ws *WorldState) AddFact(f model.Fact, timeless bool) {
	callKey := f.CallKey()
	if old, ok := ws.callIndex[callKey]; ok {
		if old.Equal(f) {
			return
		}
		ws.removeIndexed(old)
	}
	ws.derivedDirty = true
	fp := &f
	ws.facts[f.ExactKey()] = timeless
	ws.exactCallIndex[f.ExactKey()] = fp
	ws.callIndex[callKey] = fp

	idx := ws.sigIndex(f.Name, len(f.Args))
	for i, a := range f.Args {
		idx.byPosition[i][a.Value] = append(idx.byPosition[i][a.Value], fp)
	}
	if f.Value != nil {
		idx.byFluent[f.Value.Value] = append(idx.byFluent[f.Value.Value], fp)
	}
	idx.allCurrent = append(idx.allCurrent, fp)
}

// RemoveFact deletes whatever fact currently occupies f's call key
// (name+args), ignoring f's Value.
func (ws *WorldState) RemoveFact(f model.Fact) {
	callKey := f.CallKey()
	old, ok := ws.callIndex[callKey]
	if !ok {
		return
	}
	ws.removeIndexed(old)
}

func (ws *WorldState) removeIndexed(old *model.Fact) {
	ws.derivedDirty = true
	delete(ws.facts, old.ExactKey())
	delete(ws.exactCallIndex, old.ExactKey())
	delete(ws.callIndex, old.CallKey())
	idx, ok := ws.signatures[old.Name]
	if !ok {
		return
	}
	for i, a := range old.Args {
		idx.byPosition[i][a.Value] = removePtr(idx.byPosition[i][a.Value], old)
	}
	if old.Value != nil {
		idx.byFluent[old.Value.Value] = removePtr(idx.byFluent[old.Value.Value], old)
	}
	idx.allCurrent = removePtr(idx.allCurrent, old)
}

func removePtr(list []*model.Fact, target *model.Fact) []*model.Fact {
	for i, f := range list {
		if f == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// HasFact reports whether f currently holds: for a Boolean predicate,
// whether the call is present; for a fluent, whether the current value
// equals f.Value (the `undefined` sentinel is equivalent to absence).
func (ws *WorldState) HasFact(f model.Fact) bool {
	current, ok := ws.callIndex[f.CallKey()]
	if !ok {
		for _, d := range ws.derivedFactsSnapshot() {
			if d.CallKey() == f.CallKey() {
				current, ok = &d, true
				break
			}
		}
	}
	if f.Value != nil && f.Value.IsUndefined() {
		return !ok
	}
	if !ok {
		return false
	}
	if f.Value == nil {
		return true
	}
	return current.Value != nil && current.Value.Equal(*f.Value)
}

// GetFluentValue returns the current value of the fluent named by call
// (f.Args, ignoring f.Value), or false if absent.
func (ws *WorldState) GetFluentValue(f model.Fact) (ontology.Entity, bool) {
	current, ok := ws.callIndex[f.CallKey()]
	if !ok || current.Value == nil {
		return ontology.Entity{}, false
	}
	return *current.Value, true
}

// CandidatesForName returns every currently-true fact of the given
// predicate name — the broadest candidate set the matcher falls back to
// when no argument is yet bound.
func (ws *WorldState) CandidatesForName(name string) []model.Fact {
	var out []model.Fact
	if idx, ok := ws.signatures[name]; ok {
		out = make([]model.Fact, len(idx.allCurrent))
		for i, f := range idx.allCurrent {
			out[i] = *f
		}
	}
	for _, d := range ws.derivedFactsSnapshot() {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

// CandidatesForBoundArg narrows CandidatesForName using one already-bound
// argument position, exercising the per-position signature index.
func (ws *WorldState) CandidatesForBoundArg(name string, pos int, value string) []model.Fact {
	idx, ok := ws.signatures[name]
	if !ok || pos >= len(idx.byPosition) {
		return nil
	}
	list := idx.byPosition[pos][value]
	out := make([]model.Fact, len(list))
	for i, f := range list {
		out[i] = *f
	}
	return out
}

// AllFacts returns every currently-true, non-timeless fact (used to build
// world snapshots for the derived-predicate evaluator and for digesting
// search states).
func (ws *WorldState) AllFacts() []model.Fact {
	var out []model.Fact
	for key, f := range ws.exactCallIndex {
		if ws.facts[key] {
			continue
		}
		out = append(out, *f)
	}
	return out
}

// AllFactsIncludingTimeless returns every currently-true fact, including
// timeless ones injected from the Domain.
func (ws *WorldState) AllFactsIncludingTimeless() []model.Fact {
	out := make([]model.Fact, 0, len(ws.exactCallIndex))
	for _, f := range ws.exactCallIndex {
		out = append(out, *f)
	}
	return out
}

// Clone returns a deep-enough copy of ws for the planner to search over
// without mutating the live Problem: the planner operates on a cheap copy
// of the WorldState.
func (ws *WorldState) Clone() *WorldState {
	cp := New(ws.preds, ws.types)
	cp.derived = ws.derived
	for key, timeless := range ws.facts {
		f := ws.exactCallIndex[key]
		cp.AddFact(*f, timeless)
	}
	return cp
}

// SetDerivedEvaluator attaches the compiled :derived-predicate evaluator
// used to extend HasFact/CandidatesForName with derived facts alongside
// asserted ones. A nil evaluator (the default) disables derived evaluation
// entirely.
func (ws *WorldState) SetDerivedEvaluator(ev *derive.Evaluator) {
	ws.derived = ev
	ws.derivedDirty = true
}

// derivedFactsSnapshot lazily (re-)evaluates every derived predicate against
// the currently-asserted facts, caching the result until the next mutation.
func (ws *WorldState) derivedFactsSnapshot() []model.Fact {
	if ws.derived == nil {
		return nil
	}
	if !ws.derivedDirty {
		return ws.derivedFacts
	}
	facts, err := ws.derived.Derive(ws.AllFacts())
	if err != nil {
		return nil
	}
	ws.derivedFacts = facts
	ws.derivedDirty = false
	return facts
}
