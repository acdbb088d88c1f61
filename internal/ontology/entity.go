package ontology

import (
	"fmt"
	"strconv"
	"strings"
)

// Entity is a ground or lifted atomic term: a variable ("?x"), the wildcard
// ("*") or a constant/number literal, each optionally typed.
type Entity struct {
	Value string
	Type  *Type
}

// NewEntity builds an Entity, defaulting its type to Number when the value
// parses as a number and no type was supplied.
func NewEntity(value string, t *Type, numberType *Type) Entity {
	if t == nil {
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			t = numberType
		}
	}
	return Entity{Value: value, Type: t}
}

// IsVariable reports whether the entity is a lifted parameter reference.
func (e Entity) IsVariable() bool {
	return strings.HasPrefix(e.Value, "?")
}

// IsWildcard reports whether the entity is the "*" any-entity marker.
func (e Entity) IsWildcard() bool {
	return e.Value == AnyEntityValue
}

// IsUndefined reports whether the entity is the "undefined" fluent sentinel.
func (e Entity) IsUndefined() bool {
	return e.Value == UndefinedValue
}

// TypeName returns the entity's type name, or "" if untyped.
func (e Entity) TypeName() string {
	if e.Type == nil {
		return ""
	}
	return e.Type.Name
}

// String renders the entity as PDDL-ish text: "?x - type" when typed and
// lifted, otherwise the bare value.
func (e Entity) String() string {
	if e.Type != nil && e.IsVariable() {
		return fmt.Sprintf("%s - %s", e.Value, e.Type.Name)
	}
	return e.Value
}

// Compare implements the total ordering over (value, type-name) required for
// Entity to be usable as a map key surrogate (Go maps already support struct
// keys with comparable fields, but ordered iteration — e.g. for deterministic
// plan output — goes through Compare).
func (e Entity) Compare(other Entity) int {
	if e.Value != other.Value {
		if e.Value < other.Value {
			return -1
		}
		return 1
	}
	tn, on := e.TypeName(), other.TypeName()
	if tn == on {
		return 0
	}
	if tn < on {
		return -1
	}
	return 1
}

// Equal reports value+type equality.
func (e Entity) Equal(other Entity) bool {
	return e.Compare(other) == 0
}
