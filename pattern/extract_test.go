package pattern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

func freshCounter() func() *typed.TVar {
	n := 0
	return func() *typed.TVar {
		v := &typed.TVar{Name: fmt.Sprintf("t%d", n)}
		n++
		return v
	}
}

func TestExtractBindingName(t *testing.T) {
	p := expr.NamePattern(ast.Location{}, "x")
	tb, env, cs := ExtractBinding(freshCounter(), p)
	assert.Nil(t, cs)
	require.Contains(t, env, ast.Identifier("x"))
	assert.Equal(t, tb.GetType(), env["x"])
}

func TestExtractBindingLiteralFixesType(t *testing.T) {
	p := expr.Lit{Atom: ast.MkInt(1)}
	tb, env, cs := ExtractBinding(freshCounter(), p)
	assert.Nil(t, env)
	assert.Nil(t, cs)
	assert.Equal(t, typed.Type(typed.TInt), tb.GetType())
}

func TestExtractBindingConsLitConstrainsTail(t *testing.T) {
	p := expr.ConsLit{Head: expr.NamePattern(ast.Location{}, "h"), Tail: expr.NamePattern(ast.Location{}, "t")}
	tb, env, cs := ExtractBinding(freshCounter(), p)
	require.Len(t, cs, 1)
	assert.True(t, typed.EqualsTo(env["t"], cs[0].Lhs))
	assert.True(t, typed.EqualsTo(tb.GetType(), cs[0].Rhs))
}
