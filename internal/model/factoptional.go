package model

// FactOptional pairs a Fact with a polarity. The simplification invariant —
// a negated fact whose value is itself negated collapses to a positive
// fact with a positive value — is encoded by ValueNegated: it marks that
// the *value slot* carries a logical negation (e.g. a condition of the
// form "the value is not v"), distinct from Negated which negates the whole
// atom.
type FactOptional struct {
	Negated      bool
	Fact         Fact
	ValueNegated bool
}

// NewFactOptional builds a FactOptional with ValueNegated false, so the
// simplification invariant holds without any collapsing.
func NewFactOptional(negated bool, fact Fact) FactOptional {
	fo := FactOptional{Negated: negated, Fact: fact}
	return fo
}

// NewFactOptionalWithValueNegation builds a FactOptional from a raw
// (isFactNegated, isValueNegated) pair as produced by the PDDL parser for
// constructs like "(not (= pred val))", applying the simplification above.
func NewFactOptionalWithValueNegation(negated bool, fact Fact, valueNegated bool) FactOptional {
	if negated && valueNegated {
		negated = false
		valueNegated = false
	}
	return FactOptional{Negated: negated, Fact: fact, ValueNegated: valueNegated}
}

// Equal reports full equality (polarity + fact).
func (fo FactOptional) Equal(other FactOptional) bool {
	return fo.Negated == other.Negated && fo.ValueNegated == other.ValueNegated && fo.Fact.Equal(other.Fact)
}

// Compare gives the total order used for deterministic set membership:
// negation first, then the fact's string form.
func (fo FactOptional) Compare(other FactOptional) int {
	if fo.Negated != other.Negated {
		if !fo.Negated {
			return -1
		}
		return 1
	}
	a, b := fo.Fact.String(), other.Fact.String()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the fact optional, prefixing "!" when negated.
func (fo FactOptional) String() string {
	if fo.Negated {
		return "!" + fo.Fact.String()
	}
	return fo.Fact.String()
}

// HasContradictionWith reports whether fo contradicts any member of others
// under a shared name+arity (equality ignoring args/value): two
// FactOptionals on the same fact shape with opposite polarity and equal
// grounding contradict each other.
func (fo FactOptional) HasContradictionWith(others []FactOptional) bool {
	for _, other := range others {
		if !fo.Fact.EqualWithoutArgsAndValue(other.Fact) {
			continue
		}
		if fo.Fact.Equal(other.Fact) && fo.Negated != other.Negated {
			return true
		}
	}
	return false
}
