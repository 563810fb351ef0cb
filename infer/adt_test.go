package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

func maybeADT() expr.ADT {
	return expr.ADT{
		Name:       "Maybe",
		TypeParams: []ast.Identifier{"a"},
		Constructors: []expr.Constructor{
			{Prefix: true, Name: "Nothing", Arity: 0},
			{Prefix: true, Name: "Just", Arity: 1, ParamTypes: []ast.Identifier{"a"}},
		},
	}
}

func TestADTEnvJustIsPolymorphicOverAdtTypeParam(t *testing.T) {
	env := ADTEnv(maybeADT())

	sch, ok := env.Lookup("Just")
	require.True(t, ok)
	require.Len(t, sch.Vars, 1)

	arr, ok := sch.Type.(*typed.TArr)
	require.True(t, ok)
	from, ok := arr.From.(*typed.TVar)
	require.True(t, ok)
	assert.Equal(t, sch.Vars[0], from.Name)

	result, ok := arr.To.(*typed.TCons)
	require.True(t, ok)
	assert.Equal(t, "Maybe", string(result.Name))
	require.Len(t, result.Args, 1)
	assert.True(t, typed.EqualsTo(from, result.Args[0]))
}

func TestADTEnvNullaryConstructorIsPhantomInTypeParam(t *testing.T) {
	env := ADTEnv(maybeADT())

	sch, ok := env.Lookup("Nothing")
	require.True(t, ok)
	require.Len(t, sch.Vars, 1)
	result, ok := sch.Type.(*typed.TCons)
	require.True(t, ok)
	assert.Equal(t, "Maybe", string(result.Name))
}

func TestADTEnvConcreteParamTypeIsNotGeneralized(t *testing.T) {
	adt := expr.ADT{
		Name: "IntBox",
		Constructors: []expr.Constructor{
			{Prefix: true, Name: "MkIntBox", Arity: 1, ParamTypes: []ast.Identifier{"Int"}},
		},
	}
	env := ADTEnv(adt)

	sch, ok := env.Lookup("MkIntBox")
	require.True(t, ok)
	assert.Empty(t, sch.Vars)
	arr, ok := sch.Type.(*typed.TArr)
	require.True(t, ok)
	assert.True(t, typed.EqualsTo(typed.TInt, arr.From))
}

func TestADTEnvSeedsConstructorSchemeForOrdinaryCode(t *testing.T) {
	// f x = Just x, checked against a prelude seeded with Maybe's constructors.
	prelude := ADTEnv(maybeADT())
	defs := []expr.Def{{
		Name:   "f",
		Params: []expr.Binding{expr.NamePattern(ast.Location{}, "x")},
		Body:   expr.App{Head: expr.Atom{Atom: ast.MkConstr("Just")}, Args: []expr.Expression{nameE("x")}},
	}}

	env, err := BuildTypeEnv(defs, prelude)
	require.NoError(t, err)

	sch, ok := env.Lookup("f")
	require.True(t, ok)
	arr, ok := sch.Type.(*typed.TArr)
	require.True(t, ok)
	result, ok := arr.To.(*typed.TCons)
	require.True(t, ok)
	assert.Equal(t, "Maybe", string(result.Name))
	assert.True(t, typed.EqualsTo(arr.From, result.Args[0]), "f's parameter and Just's payload share one type variable")
}
