package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

func atomE(a ast.Atom) expr.Atom { return expr.Atom{Atom: a} }
func nameE(n string) expr.Atom  { return atomE(ast.MkName(ast.Identifier(n))) }
func intLit(i int64) expr.Atom  { return atomE(ast.MkInt(i)) }

func TestTypeTreeLambdaAddOne(t *testing.T) {
	e := expr.Lambda{
		Params: []expr.Binding{expr.NamePattern(ast.Location{}, "x")},
		Body:   expr.Binary{Op: ast.Op(ast.Add), Left: nameE("x"), Right: intLit(1)},
	}
	out, err := TypeTree(typed.NewTypeEnv(), e)
	require.NoError(t, err)
	assert.True(t, typed.EqualsTo(&typed.TArr{From: typed.TInt, To: typed.TInt}, out.GetType()))
}

func TestTypeTreeLambdaIdentityIsCanonicalized(t *testing.T) {
	e := expr.Lambda{
		Params: []expr.Binding{expr.NamePattern(ast.Location{}, "x")},
		Body:   nameE("x"),
	}
	out, err := TypeTree(typed.NewTypeEnv(), e)
	require.NoError(t, err)
	arr, ok := out.GetType().(*typed.TArr)
	require.True(t, ok)
	assert.True(t, typed.EqualsTo(arr.From, arr.To))
	v, ok := arr.From.(*typed.TVar)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name)
}

func TestTypeTreeIfExprWellTyped(t *testing.T) {
	e := expr.IfExpr{Cond: atomE(ast.MkBool(true)), Then: intLit(1), Else: intLit(2)}
	out, err := TypeTree(typed.NewTypeEnv(), e)
	require.NoError(t, err)
	assert.True(t, typed.EqualsTo(typed.TInt, out.GetType()))
}

func TestTypeTreeUnboundVariableFails(t *testing.T) {
	_, err := TypeTree(typed.NewTypeEnv(), nameE("undefined"))
	assert.IsType(t, UnboundVariable{}, err)
}

func TestTypeTreeIfExprMismatchFails(t *testing.T) {
	e := expr.IfExpr{Cond: intLit(1), Then: intLit(2), Else: intLit(3)}
	_, err := TypeTree(typed.NewTypeEnv(), e)
	require.Error(t, err)
	uf, ok := err.(UnificationFail)
	require.True(t, ok)
	assert.True(t, typed.EqualsTo(typed.TInt, uf.T1))
	assert.True(t, typed.EqualsTo(typed.TBool, uf.T2))
}

func TestTypeTreePartialLocalizesIfExprMismatchOnRoot(t *testing.T) {
	e := expr.IfExpr{Cond: intLit(1), Then: intLit(2), Else: intLit(3)}
	out := TypeTreePartial(typed.NewTypeEnv(), e)

	ifE, ok := out.(typed.IfExpr)
	require.True(t, ok)
	terr, ok := ifE.GetType().(*typed.TError)
	require.True(t, ok, "root should carry the localized unification failure")
	uf, ok := terr.Err.(UnificationFail)
	require.True(t, ok)
	assert.True(t, typed.EqualsTo(typed.TInt, uf.T1))
	assert.True(t, typed.EqualsTo(typed.TBool, uf.T2))

	assert.True(t, typed.EqualsTo(typed.TInt, ifE.Cond.GetType()), "children keep their own well-typed Int")
	assert.True(t, typed.EqualsTo(typed.TInt, ifE.Then.GetType()))
	assert.True(t, typed.EqualsTo(typed.TInt, ifE.Else.GetType()))
}

func TestTypeTreePartialNeverFailsOnUnboundVariable(t *testing.T) {
	out := TypeTreePartial(typed.NewTypeEnv(), nameE("undefined"))
	a, ok := out.(typed.Atom)
	require.True(t, ok)
	terr, ok := a.GetType().(*typed.TError)
	require.True(t, ok)
	assert.IsType(t, UnboundVariable{}, terr.Err)
}
