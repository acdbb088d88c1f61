package ontology

import "fmt"

// SetOfEntities maps a value to its Entity, plus an auxiliary index from
// type name to the entities declared with that type (used by quantifier
// enumeration and by signature broadening).
type SetOfEntities struct {
	byValue map[string]Entity
	byType  map[string][]Entity
}

// NewSetOfEntities returns an empty entity set.
func NewSetOfEntities() *SetOfEntities {
	return &SetOfEntities{
		byValue: make(map[string]Entity),
		byType:  make(map[string][]Entity),
	}
}

// Add registers an entity, failing if the value is already bound to a
// different type.
func (s *SetOfEntities) Add(e Entity) error {
	if existing, ok := s.byValue[e.Value]; ok {
		if existing.TypeName() != e.TypeName() {
			return fmt.Errorf("ontology: object %q already declared with type %q, cannot redeclare as %q",
				e.Value, existing.TypeName(), e.TypeName())
		}
		return nil
	}
	s.byValue[e.Value] = e
	if e.Type != nil {
		s.byType[e.Type.Name] = append(s.byType[e.Type.Name], e)
	}
	return nil
}

// Get looks up an entity by its literal value.
func (s *SetOfEntities) Get(value string) (Entity, bool) {
	e, ok := s.byValue[value]
	return e, ok
}

// OfType returns every entity declared with exactly the given type name
// (not broadened to subtypes — callers combine this across a type's
// descendants when they need the full typed domain).
func (s *SetOfEntities) OfType(typeName string) []Entity {
	return s.byType[typeName]
}

// All returns every entity in the set.
func (s *SetOfEntities) All() []Entity {
	out := make([]Entity, 0, len(s.byValue))
	for _, e := range s.byValue {
		out = append(out, e)
	}
	return out
}

// TypedDomain returns every entity whose type is t or a descendant of t,
// drawn from s plus any additional sets (callers typically combine
// ontology constants with problem objects here).
func TypedDomain(t *Type, sets ...*SetOfEntities) []Entity {
	var out []Entity
	for _, s := range sets {
		for _, e := range s.All() {
			if e.Type != nil && e.Type.IsA(t) {
				out = append(out, e)
			}
		}
	}
	return out
}

// DerivedPredicate is a predicate whose extension is computed from a
// Condition body over other facts rather than asserted directly by effects.
// The Body field is declared as `any` to avoid an import cycle with the
// model package (which depends on ontology for Type/Entity/Parameter); the
// derive and model packages cast it back to *model.Condition.
type DerivedPredicate struct {
	Head   *Predicate
	Params []Parameter
	Body   any
}

// Ontology aggregates the type lattice, predicate declarations, constant
// objects and derived predicates shared by a Domain.
type Ontology struct {
	Types             *SetOfTypes
	Predicates        *SetOfPredicates
	Constants         *SetOfEntities
	DerivedPredicates []*DerivedPredicate
}

// NewOntology returns an empty ontology seeded with the number type.
func NewOntology() *Ontology {
	return &Ontology{
		Types:      NewSetOfTypes(),
		Predicates: NewSetOfPredicates(),
		Constants:  NewSetOfEntities(),
	}
}
