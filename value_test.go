package toon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectInsertionOrderPreserved(t *testing.T) {
	obj := NewObject()
	obj.Set("z", 1)
	obj.Set("a", 2)
	obj.Set("m", 3)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestObjectSetOverwritesValueKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 99) // last write wins for value, first occurrence wins for position
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, _ := obj.Get("a")
	assert.Equal(t, 99, v)
}

func TestObjectDelete(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("c", 3)
	obj.Delete("b")
	assert.Equal(t, []string{"a", "c"}, obj.Keys())
	assert.False(t, obj.Has("b"))
	v, ok := obj.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestNumberEqual(t *testing.T) {
	a := IntNumber(big.NewInt(42))
	b := FloatNumber(42.0)
	assert.True(t, a.Equal(b))
}

func TestNumberStringPlainDecimal(t *testing.T) {
	n := FloatNumber(0.0001)
	assert.Equal(t, "0.0001", n.String())
}
