package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

func TestBinaryPower(t *testing.T) {
	out, err := binary(Env{}, ast.Op(ast.Power), intE(2), intE(10), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, intE(1024), out)
}

func TestBinaryPowerNegativeExponentIsOne(t *testing.T) {
	out, err := binary(Env{}, ast.Op(ast.Power), intE(3), intE(-1), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, intE(1), out)
}

func TestBinaryColonConsesOntoList(t *testing.T) {
	out, err := binary(Env{}, ast.Op(ast.Colon), intE(1), expr.List{Items: []expr.Expression{intE(2)}}, ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, expr.List{Items: []expr.Expression{intE(1), intE(2)}}, out)
}

func TestBinaryAppend(t *testing.T) {
	l1 := expr.List{Items: []expr.Expression{intE(1)}}
	l2 := expr.List{Items: []expr.Expression{intE(2)}}
	out, err := binary(Env{}, ast.Op(ast.Append), l1, l2, ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, expr.List{Items: []expr.Expression{intE(1), intE(2)}}, out)
}

func TestBinaryComparisonOperators(t *testing.T) {
	out, err := binary(Env{}, ast.Op(ast.Lt), intE(1), intE(2), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, atom(ast.MkBool(true)), out)

	out, err = binary(Env{}, ast.Op(ast.Equ), intE(2), intE(2), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, atom(ast.MkBool(true)), out)
}

func TestBinaryComparisonRejectsNames(t *testing.T) {
	_, err := binary(Env{}, ast.Op(ast.Lt), atom(ast.MkName("x")), intE(2), ast.Location{})
	assert.IsType(t, BinaryOpError{}, err)
}

func TestBinaryAndShortCircuits(t *testing.T) {
	out, err := binary(Env{}, ast.Op(ast.And), atom(ast.MkBool(false)), atom(ast.MkName("undefined")), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, atom(ast.MkBool(false)), out)
}

func TestBinaryOrShortCircuits(t *testing.T) {
	out, err := binary(Env{}, ast.Op(ast.Or), atom(ast.MkBool(true)), atom(ast.MkName("undefined")), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, atom(ast.MkBool(true)), out)
}

func TestBinaryCompositionIsNotAPrimitive(t *testing.T) {
	_, err := binary(Env{}, ast.Op(ast.Composition), name("f"), name("g"), ast.Location{})
	assert.IsType(t, BinaryOpError{}, err)
}

func TestBinaryInfixFuncDispatchesToApply(t *testing.T) {
	env := Env{"add1": []Clause{{
		Params: []expr.Binding{expr.NamePattern(ast.Location{}, "x"), expr.NamePattern(ast.Location{}, "y")},
		Body:   expr.Binary{Op: ast.Op(ast.Add), Left: name("x"), Right: name("y")},
	}}}
	out, err := binary(env, ast.OpInfixFunc("add1"), intE(1), intE(2), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, expr.Binary{Op: ast.Op(ast.Add), Left: intE(1), Right: intE(2)}, out)
}

func TestUnarySubNegatesInt(t *testing.T) {
	out, err := unary(ast.Op(ast.Sub), intE(5), ast.Location{})
	require.NoError(t, err)
	assert.Equal(t, intE(-5), out)
}

func TestUnaryRejectsNonSub(t *testing.T) {
	_, err := unary(ast.Op(ast.Add), intE(5), ast.Location{})
	assert.IsType(t, UnaryOpError{}, err)
}
