package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

func atomE(a ast.Atom) expr.Atom { return expr.Atom{Atom: a} }

func TestMatchNameBindsUnconditionally(t *testing.T) {
	p := expr.NamePattern(ast.Location{}, "x")
	b, err := Match(p, atomE(ast.MkInt(5)))
	require.NoError(t, err)
	assert.Equal(t, atomE(ast.MkInt(5)), b["x"])
}

func TestMatchLitEqualAtom(t *testing.T) {
	p := expr.Lit{Atom: ast.MkInt(3)}
	_, err := Match(p, atomE(ast.MkInt(3)))
	assert.NoError(t, err)

	_, err = Match(p, atomE(ast.MkInt(4)))
	assert.IsType(t, MatchingError{}, err)
}

func TestMatchLitOnUnforcedName(t *testing.T) {
	p := expr.Lit{Atom: ast.MkInt(3)}
	_, err := Match(p, atomE(ast.MkName("y")))
	assert.IsType(t, StrictnessError{}, err)
}

func TestMatchConsLitReshapesList(t *testing.T) {
	p := expr.ConsLit{Head: expr.NamePattern(ast.Location{}, "h"), Tail: expr.NamePattern(ast.Location{}, "t")}
	lst := expr.List{Items: []expr.Expression{atomE(ast.MkInt(1)), atomE(ast.MkInt(2))}}
	b, err := Match(p, lst)
	require.NoError(t, err)
	assert.Equal(t, atomE(ast.MkInt(1)), b["h"])
	assert.Equal(t, expr.List{Items: []expr.Expression{atomE(ast.MkInt(2))}}, b["t"])
}

func TestMatchConsLitOnEmptyList(t *testing.T) {
	p := expr.ConsLit{Head: expr.NamePattern(ast.Location{}, "h"), Tail: expr.NamePattern(ast.Location{}, "t")}
	_, err := Match(p, expr.List{})
	assert.IsType(t, MatchingError{}, err)
}

func TestMatchConstrLit(t *testing.T) {
	p := expr.ConstrLit{Name: "Just", Args: []expr.Binding{expr.NamePattern(ast.Location{}, "x")}}
	app := expr.App{Head: atomE(ast.MkConstr("Just")), Args: []expr.Expression{atomE(ast.MkInt(1))}}
	b, err := Match(p, app)
	require.NoError(t, err)
	assert.Equal(t, atomE(ast.MkInt(1)), b["x"])

	wrongArity := expr.ConstrLit{Name: "Just", Args: []expr.Binding{}}
	_, err = Match(wrongArity, app)
	assert.IsType(t, MatchingError{}, err)
}

func TestIsWHNF(t *testing.T) {
	assert.True(t, IsWHNF(atomE(ast.MkInt(1))))
	assert.False(t, IsWHNF(atomE(ast.MkName("x"))))
	assert.True(t, IsWHNF(expr.List{}))
	assert.True(t, IsWHNF(expr.Lambda{}))
	assert.False(t, IsWHNF(expr.App{Head: atomE(ast.MkName("f"))}))
}

func TestFlattenApp(t *testing.T) {
	inner := expr.App{Head: atomE(ast.MkName("f")), Args: []expr.Expression{atomE(ast.MkInt(1))}}
	outer := expr.App{Head: inner, Args: []expr.Expression{atomE(ast.MkInt(2))}}
	head, args := FlattenApp(outer)
	assert.Equal(t, atomE(ast.MkName("f")), head)
	assert.Equal(t, []expr.Expression{atomE(ast.MkInt(1)), atomE(ast.MkInt(2))}, args)
}

func TestNamesAndOverlap(t *testing.T) {
	p := expr.ConsLit{Head: expr.NamePattern(ast.Location{}, "x"), Tail: expr.NamePattern(ast.Location{}, "xs")}
	assert.Equal(t, []ast.Identifier{"x", "xs"}, Names(p))

	dup, ok := Overlap([]expr.Binding{
		expr.NamePattern(ast.Location{}, "x"),
		expr.NamePattern(ast.Location{}, "x"),
	})
	require.True(t, ok)
	assert.Equal(t, ast.Identifier("x"), dup)

	_, ok = Overlap([]expr.Binding{expr.NamePattern(ast.Location{}, "x"), expr.NamePattern(ast.Location{}, "y")})
	assert.False(t, ok)
}
