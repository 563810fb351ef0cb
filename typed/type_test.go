package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualsToStructural(t *testing.T) {
	a := &TArr{From: &TVar{Name: "a"}, To: TInt}
	b := &TArr{From: &TVar{Name: "a"}, To: TInt}
	assert.True(t, EqualsTo(a, b))

	c := &TArr{From: &TVar{Name: "b"}, To: TInt}
	assert.False(t, EqualsTo(a, c))
}

func TestEqualsToMismatchedKinds(t *testing.T) {
	assert.False(t, EqualsTo(TInt, &TVar{Name: "a"}))
	assert.False(t, EqualsTo(&TList{Elem: TInt}, &TTuple{Items: []Type{TInt}}))
}

func TestEqualsToTCons(t *testing.T) {
	a := &TCons{Name: "Maybe", Args: []Type{TInt}}
	b := &TCons{Name: "Maybe", Args: []Type{TInt}}
	assert.True(t, EqualsTo(a, b))

	c := &TCons{Name: "Maybe", Args: []Type{TBool}}
	assert.False(t, EqualsTo(a, c))
}

func TestArrString(t *testing.T) {
	assert.Equal(t, "Int -> Int", (&TArr{From: TInt, To: TInt}).String())
	nested := &TArr{From: &TArr{From: TInt, To: TInt}, To: TInt}
	assert.Equal(t, "(Int -> Int) -> Int", nested.String())
}

func TestSchemeStringQuantifiesVars(t *testing.T) {
	sch := Scheme{Vars: []string{"a"}, Type: &TArr{From: &TVar{Name: "a"}, To: &TVar{Name: "a"}}}
	assert.Equal(t, "forall a. a -> a", sch.String())

	mono := Scheme{Type: TInt}
	assert.Equal(t, "Int", mono.String())
}
