package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/typed"
)

func TestUnifyVarBindsToConcreteType(t *testing.T) {
	s, err := Unify(&typed.TVar{Name: "a"}, typed.TInt)
	require.NoError(t, err)
	assert.True(t, typed.EqualsTo(typed.TInt, s["a"]))
}

func TestUnifyConMismatchFails(t *testing.T) {
	_, err := Unify(typed.TInt, typed.TBool)
	assert.IsType(t, UnificationFail{}, err)
}

func TestUnifyArrowComposesBothSides(t *testing.T) {
	t1 := &typed.TArr{From: &typed.TVar{Name: "a"}, To: &typed.TVar{Name: "b"}}
	t2 := &typed.TArr{From: typed.TInt, To: typed.TBool}
	s, err := Unify(t1, t2)
	require.NoError(t, err)
	assert.True(t, typed.EqualsTo(typed.TInt, s["a"]))
	assert.True(t, typed.EqualsTo(typed.TBool, s["b"]))
}

func TestUnifyOccursCheckCatchesInfiniteType(t *testing.T) {
	v := &typed.TVar{Name: "a"}
	self := &typed.TList{Elem: v}
	_, err := Unify(v, self)
	assert.IsType(t, InfiniteType{}, err)
}

func TestUnifySameVarIsNoOp(t *testing.T) {
	v := &typed.TVar{Name: "a"}
	s, err := Unify(v, &typed.TVar{Name: "a"})
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestUnifyUnknownUnifiesWithAnything(t *testing.T) {
	s, err := Unify(&typed.TUnknown{}, typed.TInt)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestUnifyTErrorDoesNotCascade(t *testing.T) {
	terr := &typed.TError{Err: assertAnErr{}}
	s, err := Unify(terr, typed.TBool)
	require.NoError(t, err)
	assert.Empty(t, s)
}

type assertAnErr struct{}

func (assertAnErr) Error() string { return "boom" }

func TestUnifyAllAbortsOnFirstFailure(t *testing.T) {
	cs := []Constraint{
		{Lhs: typed.TInt, Rhs: typed.TInt, Origin: 1},
		{Lhs: typed.TInt, Rhs: typed.TBool, Origin: 2},
		{Lhs: &typed.TVar{Name: "a"}, Rhs: typed.TChar, Origin: 3},
	}
	_, err := UnifyAll(cs)
	require.Error(t, err)
	assert.IsType(t, UnificationFail{}, err)
}

func TestUnifyPartialContinuesPastFailure(t *testing.T) {
	cs := []Constraint{
		{Lhs: typed.TInt, Rhs: typed.TBool, Origin: 1},
		{Lhs: &typed.TVar{Name: "a"}, Rhs: typed.TChar, Origin: 2},
	}
	s, failed := UnifyPartial(cs)
	require.Len(t, failed, 1)
	assert.IsType(t, UnificationFail{}, failed[1])
	assert.True(t, typed.EqualsTo(typed.TChar, s["a"]))
}

func TestUnifyPartialRecordsOnlyFirstFailurePerOrigin(t *testing.T) {
	cs := []Constraint{
		{Lhs: typed.TInt, Rhs: typed.TBool, Origin: 1},
		{Lhs: typed.TInt, Rhs: typed.TChar, Origin: 1},
	}
	_, failed := UnifyPartial(cs)
	require.Len(t, failed, 1)
	uf := failed[1].(UnificationFail)
	assert.True(t, typed.EqualsTo(typed.TBool, uf.T2), "the first failure for an origin wins")
}
