package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SRechenberger/clickyEvaluation/ast"
)

func TestChildrenIfExpr(t *testing.T) {
	one, two, three := Atom{Atom: ast.MkInt(1)}, Atom{Atom: ast.MkInt(2)}, Atom{Atom: ast.MkInt(3)}
	n := IfExpr{Cond: one, Then: two, Else: three}
	assert.Equal(t, []Expression{one, two, three}, Children(n))
}

func TestChildrenAppIncludesHeadAndArgs(t *testing.T) {
	head := Atom{Atom: ast.MkName("f")}
	arg := Atom{Atom: ast.MkInt(1)}
	n := App{Head: head, Args: []Expression{arg}}
	assert.Equal(t, []Expression{head, arg}, Children(n))
}

func TestChildrenArithmSeqOmitsAbsentParts(t *testing.T) {
	start := Atom{Atom: ast.MkInt(1)}
	n := ArithmSeq{Start: start}
	assert.Equal(t, []Expression{start}, Children(n))

	end := Atom{Atom: ast.MkInt(9)}
	n.End = end
	assert.Equal(t, []Expression{start, end}, Children(n))
}

func TestChildrenAtomAndPrefixOpAreLeaves(t *testing.T) {
	assert.Nil(t, Children(Atom{Atom: ast.MkInt(1)}))
	assert.Nil(t, Children(PrefixOp{Op: ast.Op(ast.Add)}))
}

func TestStringRoundTrip(t *testing.T) {
	n := Binary{Op: ast.Op(ast.Add), Left: Atom{Atom: ast.MkInt(1)}, Right: Atom{Atom: ast.MkInt(2)}}
	assert.Equal(t, "(1 + 2)", n.String())
}
