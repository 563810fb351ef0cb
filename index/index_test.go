package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

func TestIndexAssignsDistinctIndices(t *testing.T) {
	raw := expr.IfExpr{
		Cond: expr.Atom{Atom: ast.MkBool(true)},
		Then: expr.Atom{Atom: ast.MkInt(1)},
		Else: expr.Atom{Atom: ast.MkInt(2)},
	}
	indexed, next := Index(0, raw)
	ifE := indexed.(typed.IfExpr)
	seen := map[uint32]bool{
		ifE.GetIndex():          true,
		ifE.Cond.GetIndex():     true,
		ifE.Then.GetIndex():     true,
		ifE.Else.GetIndex():     true,
	}
	assert.Len(t, seen, 4, "every node should get a distinct index")
	assert.EqualValues(t, 4, next)
}

func TestIndexRespectsBase(t *testing.T) {
	raw := expr.Atom{Atom: ast.MkInt(1)}
	indexed, next := Index(10, raw)
	assert.EqualValues(t, 10, indexed.GetIndex())
	assert.EqualValues(t, 11, next)
}

func TestStripZeroesIndicesLeavesTypeAlone(t *testing.T) {
	raw := expr.Binary{
		Op:    ast.Op(ast.Add),
		Left:  expr.Atom{Atom: ast.MkInt(1)},
		Right: expr.Atom{Atom: ast.MkInt(2)},
	}
	indexed, _ := Index(5, raw)
	typedWithType := indexed.(typed.Binary)
	typedWithType.Meta.Type = typed.TInt
	typedWithType.Left = typedWithType.Left.WithType(typed.TInt)

	stripped := Strip(typedWithType).(typed.Binary)
	assert.EqualValues(t, 0, stripped.GetIndex())
	assert.EqualValues(t, 0, stripped.Left.GetIndex())
	assert.True(t, typed.EqualsTo(typed.TInt, stripped.GetType()))
	assert.True(t, typed.EqualsTo(typed.TInt, stripped.Left.GetType()))
}

func TestIndexDefsSharesContinuousSpace(t *testing.T) {
	defs := []expr.Def{
		{Name: "f", Body: expr.Atom{Atom: ast.MkInt(1)}},
		{Name: "g", Body: expr.Atom{Atom: ast.MkInt(2)}},
	}
	tdefs, next := IndexDefs(0, defs)
	require.Len(t, tdefs, 2)
	assert.NotEqual(t, tdefs[0].Body.GetIndex(), tdefs[1].Body.GetIndex())
	assert.EqualValues(t, 2, next)
}
