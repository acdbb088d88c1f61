package ontology

// Parameter is a lifted slot in an action, event, condition quantifier or
// predicate declaration. Parameter names conventionally begin with "?" and
// are unique by name within one scope.
type Parameter struct {
	Name string
	Type *Type
}

// ToEntity views the parameter as the Entity a condition/effect tree would
// reference it by (the variable syntax, carrying the parameter's type).
func (p Parameter) ToEntity() Entity {
	return Entity{Value: p.Name, Type: p.Type}
}

// Predicate is a typed relation: a name, a typed parameter list and an
// optional fluent return type (nil for a plain Boolean predicate).
type Predicate struct {
	Name       string
	Params     []Parameter
	FluentType *Type
}

// IsFluent reports whether the predicate returns a non-Boolean value.
func (p *Predicate) IsFluent() bool {
	return p.FluentType != nil
}

// Arity is the number of declared parameters.
func (p *Predicate) Arity() int {
	return len(p.Params)
}

// SetOfPredicates indexes Predicate declarations by name.
type SetOfPredicates struct {
	byName map[string]*Predicate
}

// NewSetOfPredicates returns an empty predicate table.
func NewSetOfPredicates() *SetOfPredicates {
	return &SetOfPredicates{byName: make(map[string]*Predicate)}
}

// Add registers a predicate declaration.
func (s *SetOfPredicates) Add(p *Predicate) {
	s.byName[p.Name] = p
}

// Get looks up a predicate declaration by name.
func (s *SetOfPredicates) Get(name string) (*Predicate, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// All returns every declared predicate.
func (s *SetOfPredicates) All() []*Predicate {
	out := make([]*Predicate, 0, len(s.byName))
	for _, p := range s.byName {
		out = append(out, p)
	}
	return out
}
