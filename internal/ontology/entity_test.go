package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntityDefaultsNumericLiteralsToNumberType(t *testing.T) {
	types := NewSetOfTypes()
	e := NewEntity("3.5", nil, types.Number())
	assert.Equal(t, NumberTypeName, e.TypeName())

	e = NewEntity("hello", nil, types.Number())
	assert.Equal(t, "", e.TypeName(), "a non-numeric literal stays untyped unless a type is supplied")
}

func TestEntityVariableAndWildcardAndUndefined(t *testing.T) {
	assert.True(t, Entity{Value: "?x"}.IsVariable())
	assert.False(t, Entity{Value: "x"}.IsVariable())
	assert.True(t, Entity{Value: AnyEntityValue}.IsWildcard())
	assert.True(t, Entity{Value: UndefinedValue}.IsUndefined())
}

func TestEntityCompareOrdersByValueThenType(t *testing.T) {
	types := NewSetOfTypes()
	ent, _ := types.AddType("ent", "")
	other, _ := types.AddType("other", "")

	assert.Equal(t, 0, Entity{Value: "a", Type: ent}.Compare(Entity{Value: "a", Type: ent}))
	assert.Equal(t, -1, Entity{Value: "a"}.Compare(Entity{Value: "b"}))
	assert.Equal(t, 1, Entity{Value: "b"}.Compare(Entity{Value: "a"}))
	assert.NotEqual(t, 0, Entity{Value: "a", Type: ent}.Compare(Entity{Value: "a", Type: other}))
	assert.True(t, Entity{Value: "a", Type: ent}.Equal(Entity{Value: "a", Type: ent}))
}
