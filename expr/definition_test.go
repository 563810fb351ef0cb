package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
)

func TestCompileADTNullaryConstructor(t *testing.T) {
	adt := ADT{
		Name: "Bool2",
		Constructors: []Constructor{
			{Prefix: true, Name: "T", Arity: 0},
		},
	}
	defs := CompileADT(adt)
	require.Len(t, defs, 1)
	assert.Equal(t, ast.Identifier("T"), defs[0].Name)
	assert.Nil(t, defs[0].Params)
	assert.Equal(t, Atom{Atom: ast.MkConstr("T")}, defs[0].Body)
}

func TestCompileADTArityConstructorWrapsApp(t *testing.T) {
	adt := ADT{
		Name: "Maybe",
		Constructors: []Constructor{
			{Prefix: true, Name: "Just", Arity: 1},
		},
	}
	defs := CompileADT(adt)
	require.Len(t, defs, 1)
	d := defs[0]
	assert.Equal(t, ast.Identifier("Just"), d.Name)
	require.Len(t, d.Params, 1)
	name, ok := Name(d.Params[0])
	require.True(t, ok)
	assert.Equal(t, ast.Identifier("p0"), name)

	app, ok := d.Body.(App)
	require.True(t, ok)
	assert.Equal(t, Atom{Atom: ast.MkConstr("Just")}, app.Head)
	require.Len(t, app.Args, 1)
	assert.Equal(t, Atom{Atom: ast.MkName("p0")}, app.Args[0])
}
