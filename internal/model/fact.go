// Package model implements the recursive expression trees the planner
// reasons over: facts, the boolean Condition tree and the
// WorldStateModification (Effect) tree, plus Action, Event and Goal.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// Fact is a ground or partially-lifted predicate application:
// name(arg1,...,argn)[=value].
type Fact struct {
	Name  string
	Args  []ontology.Entity
	Value *ontology.Entity // nil for a plain Boolean predicate
}

// NewFact validates and builds a Fact against its predicate declaration.
func NewFact(name string, args []ontology.Entity, value *ontology.Entity, preds *ontology.SetOfPredicates) (Fact, error) {
	pred, ok := preds.Get(name)
	if !ok {
		return Fact{}, fmt.Errorf("model: unknown predicate %q", name)
	}
	if len(args) != pred.Arity() {
		return Fact{}, fmt.Errorf("model: predicate %q expects %d arguments, got %d", name, pred.Arity(), len(args))
	}
	for i, a := range args {
		want := pred.Params[i].Type
		if a.Type != nil && want != nil && !a.Type.IsA(want) && !a.IsVariable() && !a.IsWildcard() {
			return Fact{}, fmt.Errorf("model: predicate %q argument %d: %q is not a %q", name, i, a.Value, want.Name)
		}
	}
	if pred.IsFluent() {
		if value == nil {
			return Fact{}, fmt.Errorf("model: predicate %q is a fluent and requires a value", name)
		}
	} else if value != nil {
		return Fact{}, fmt.Errorf("model: predicate %q is boolean and must not carry a value", name)
	}
	return Fact{Name: name, Args: args, Value: value}, nil
}

// IsFluent reports whether the fact carries an explicit value slot.
func (f Fact) IsFluent() bool {
	return f.Value != nil
}

// String renders the fact in PDDL-call notation, e.g. "at(r1,loc2)=3".
func (f Fact) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Value
	}
	s := fmt.Sprintf("%s(%s)", f.Name, strings.Join(args, ","))
	if f.Value != nil {
		s += "=" + f.Value.Value
	}
	return s
}

// ExactKey is the canonical lookup key including the fluent value, used by
// WorldState.exactCallIndex.
func (f Fact) ExactKey() string {
	return f.String()
}

// CallKey is the canonical lookup key ignoring the fluent value, used by
// WorldState.exactCallIndex's value-less variant.
func (f Fact) CallKey() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Value
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(args, ","))
}

// Equal reports whether two facts have the same name, arguments and value.
func (f Fact) Equal(other Fact) bool {
	if f.Name != other.Name || len(f.Args) != len(other.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	switch {
	case f.Value == nil && other.Value == nil:
		return true
	case f.Value == nil || other.Value == nil:
		return false
	default:
		return f.Value.Equal(*other.Value)
	}
}

// EqualWithoutArgsAndValue reports whether two facts share a name and an
// arity — used to detect FactOptional contradictions
// under a partial substitution.
func (f Fact) EqualWithoutArgsAndValue(other Fact) bool {
	return f.Name == other.Name && len(f.Args) == len(other.Args)
}

// Signatures returns the set of type-broadened "name(T1,...,Tn)" strings
// used as keys for the successor cache and for type-broadened fact index
// lookups. types may be nil only for facts with no arguments.
func (f Fact) Signatures(types *ontology.SetOfTypes) []string {
	if len(f.Args) == 0 {
		return []string{f.Name + "()"}
	}
	perArg := make([][]string, len(f.Args))
	for i, a := range f.Args {
		if a.Type == nil {
			perArg[i] = []string{""}
			continue
		}
		perArg[i] = types.TypeBroadenedNames(a.Type)
	}
	var out []string
	var rec func(i int, acc []string)
	rec = func(i int, acc []string) {
		if i == len(perArg) {
			out = append(out, fmt.Sprintf("%s(%s)", f.Name, strings.Join(acc, ",")))
			return
		}
		for _, t := range perArg[i] {
			rec(i+1, append(acc, t))
		}
	}
	rec(0, nil)
	sort.Strings(out)
	return out
}
