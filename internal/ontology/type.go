// Package ontology implements the typed name resolution used across the
// planner: the subtype lattice, predicate declarations and the constant
// objects shared by every problem built against a domain.
package ontology

import "fmt"

// NumberTypeName is the built-in numeric type every SetOfTypes implicitly
// contains, used for fluent values and arithmetic comparisons.
const NumberTypeName = "number"

// AnyEntityValue is the wildcard literal ("*") that matches any entity of a
// compatible type in an argument or fluent-value position.
const AnyEntityValue = "*"

// UndefinedValue is the sentinel fluent value meaning "fact absent".
const UndefinedValue = "undefined"

// Type is a node in the single-inheritance subtype tree.
type Type struct {
	Name   string
	Parent *Type
}

// IsA reports whether t is other or a descendant of other.
func (t *Type) IsA(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.Parent {
		if cur.Name == other.Name {
			return true
		}
	}
	return false
}

// Ancestors returns t and every transitive parent, t first.
func (t *Type) Ancestors() []*Type {
	var out []*Type
	for cur := t; cur != nil; cur = cur.Parent {
		out = append(out, cur)
	}
	return out
}

// SetOfTypes is the forest of declared types, always containing NumberTypeName.
type SetOfTypes struct {
	byName map[string]*Type
}

// NewSetOfTypes returns a SetOfTypes seeded with the built-in number type.
func NewSetOfTypes() *SetOfTypes {
	s := &SetOfTypes{byName: make(map[string]*Type)}
	s.byName[NumberTypeName] = &Type{Name: NumberTypeName}
	return s
}

// AddType registers a child type under parentName, creating the parent if it
// has not been seen yet — forward references are permitted.
func (s *SetOfTypes) AddType(name, parentName string) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("ontology: type name must not be empty")
	}
	var parent *Type
	if parentName != "" {
		p, ok := s.byName[parentName]
		if !ok {
			p = &Type{Name: parentName}
			s.byName[parentName] = p
		}
		parent = p
	}
	if existing, ok := s.byName[name]; ok {
		if parentName != "" && existing.Parent == nil {
			existing.Parent = parent
		}
		return existing, nil
	}
	t := &Type{Name: name, Parent: parent}
	s.byName[name] = t
	return t, nil
}

// NameToType resolves a declared type name, failing hard on unknown names.
func (s *SetOfTypes) NameToType(name string) (*Type, error) {
	t, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("ontology: unknown type %q", name)
	}
	return t, nil
}

// Number returns the built-in number type.
func (s *SetOfTypes) Number() *Type {
	return s.byName[NumberTypeName]
}

// All returns every declared type, in no particular order.
func (s *SetOfTypes) All() []*Type {
	out := make([]*Type, 0, len(s.byName))
	for _, t := range s.byName {
		out = append(out, t)
	}
	return out
}

// Descendants returns every declared type that IsA(t), including t itself.
func (s *SetOfTypes) Descendants(t *Type) []*Type {
	var out []*Type
	for _, cand := range s.byName {
		if cand.IsA(t) {
			out = append(out, cand)
		}
	}
	return out
}

// TypeBroadenedNames returns t's name, every ancestor's name and every
// descendant's name, de-duplicated — the per-argument vocabulary used to
// build a Fact's signature set.
func (s *SetOfTypes) TypeBroadenedNames(t *Type) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, a := range t.Ancestors() {
		add(a.Name)
	}
	for _, d := range s.Descendants(t) {
		add(d.Name)
	}
	return out
}

// GetSmallerType returns whichever of t1, t2 is a subtype of the other,
// erroring if the two types are incomparable.
func GetSmallerType(t1, t2 *Type) (*Type, error) {
	if t1 == nil {
		return t2, nil
	}
	if t2 == nil {
		return t1, nil
	}
	if t1.IsA(t2) {
		return t1, nil
	}
	if t2.IsA(t1) {
		return t2, nil
	}
	return nil, fmt.Errorf("ontology: incomparable types %q and %q", t1.Name, t2.Name)
}
