package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomEqual(t *testing.T) {
	assert.True(t, MkInt(3).Equal(MkInt(3)))
	assert.False(t, MkInt(3).Equal(MkInt(4)))
	assert.False(t, MkInt(3).Equal(MkBool(true)))
	assert.True(t, MkName("x").Equal(MkName("x")))
	assert.True(t, MkConstr("Just").Equal(MkConstr("Just")))
}

func TestAtomCompare(t *testing.T) {
	cmp, ok := MkInt(1).Compare(MkInt(2))
	require.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = MkChar('b').Compare(MkChar('a'))
	require.True(t, ok)
	assert.Equal(t, 1, cmp)

	_, ok = MkName("a").Compare(MkName("b"))
	assert.False(t, ok, "Name has no total order")

	_, ok = MkInt(1).Compare(MkBool(true))
	assert.False(t, ok, "mismatched kinds don't compare")
}

func TestAtomOrdinalRoundTrip(t *testing.T) {
	for _, a := range []Atom{MkInt(42), MkBool(true), MkBool(false), MkChar('z')} {
		back := FromOrdinal(a.Kind, a.Ordinal())
		assert.True(t, a.Equal(back))
	}
}

func TestIsEnumerable(t *testing.T) {
	assert.True(t, AInt.IsEnumerable())
	assert.True(t, ABool.IsEnumerable())
	assert.True(t, AChar.IsEnumerable())
	assert.False(t, AName.IsEnumerable())
	assert.False(t, AConstr.IsEnumerable())
}

func TestBoundsBool(t *testing.T) {
	min, max := Bounds(ABool)
	assert.Equal(t, int64(0), min)
	assert.Equal(t, int64(1), max)
}
