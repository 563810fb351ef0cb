package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
)

func TestChildrenIfExprAndArithmSeq(t *testing.T) {
	cond := Atom{Atom: ast.MkBool(true)}
	then := Atom{Atom: ast.MkInt(1)}
	els := Atom{Atom: ast.MkInt(2)}
	n := IfExpr{Cond: cond, Then: then, Else: els}
	assert.Equal(t, []Expression{cond, then, els}, Children(n))

	start := Atom{Atom: ast.MkInt(0)}
	seq := ArithmSeq{Start: start}
	assert.Equal(t, []Expression{start}, Children(seq))

	end := Atom{Atom: ast.MkInt(10)}
	seq.End = end
	assert.Equal(t, []Expression{start, end}, Children(seq))
}

func TestRewriteVisitsBottomUp(t *testing.T) {
	left := Atom{Atom: ast.MkInt(1)}
	right := Atom{Atom: ast.MkInt(2)}
	n := Binary{OpMeta: OpMeta{Op: ast.Op(ast.Add)}, Left: left, Right: right}

	var order []Type
	out := Rewrite(n, func(e Expression) Expression {
		order = append(order, e.GetType())
		return e.WithType(TInt)
	})

	require.Len(t, order, 3)
	assert.True(t, EqualsTo(TInt, out.GetType()))
	bin := out.(Binary)
	assert.True(t, EqualsTo(TInt, bin.Left.GetType()))
	assert.True(t, EqualsTo(TInt, bin.Right.GetType()))
}

func TestRewriteReplacesTypeEverywhere(t *testing.T) {
	inner := Atom{Atom: ast.MkInt(5)}
	n := Lambda{Body: inner}

	out := Rewrite(n, func(e Expression) Expression {
		if _, ok := e.(Atom); ok {
			return e.WithType(&TError{Err: assert.AnError})
		}
		return e
	})

	lam := out.(Lambda)
	_, isErr := lam.Body.GetType().(*TError)
	assert.True(t, isErr)
}

func TestBindingChildrenConsLit(t *testing.T) {
	head := Lit{Atom: ast.MkName("h")}
	tail := Lit{Atom: ast.MkName("t")}
	n := ConsLit{Head: head, Tail: tail}
	assert.Equal(t, []Binding{head, tail}, BindingChildren(n))
	assert.Nil(t, BindingChildren(Lit{Atom: ast.MkInt(1)}))
}
