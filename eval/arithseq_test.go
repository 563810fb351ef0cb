package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

func TestNextStopsAtBoolMax(t *testing.T) {
	x := ast.MkBool(true)
	head, cont, ok := next(x)
	require.True(t, ok)
	assert.Equal(t, x, head)
	assert.Nil(t, cont, "true is the top of Bool's ordinal range")
}

func TestNextToEmptyWhenStartPastEnd(t *testing.T) {
	_, _, ok := nextTo(ast.MkInt(5), ast.MkInt(0))
	assert.False(t, ok)
}

func TestNextStepDescending(t *testing.T) {
	head, cont, ok := nextStep(ast.MkInt(10), ast.MkInt(8))
	require.True(t, ok)
	assert.Equal(t, ast.MkInt(10), head)
	require.NotNil(t, cont)
	assert.Equal(t, ast.MkInt(8), *cont)
}

func TestNextStepZeroEmitsOnce(t *testing.T) {
	head, cont, ok := nextStep(ast.MkInt(3), ast.MkInt(3))
	require.True(t, ok)
	assert.Equal(t, ast.MkInt(3), head)
	assert.Nil(t, cont)
}

func TestNextStepToTerminatesPastEnd(t *testing.T) {
	head, cont, ok := nextStepTo(ast.MkInt(0), ast.MkInt(2), ast.MkInt(5))
	require.True(t, ok)
	assert.Equal(t, ast.MkInt(0), head)
	require.NotNil(t, cont)
	assert.Equal(t, ast.MkInt(2), *cont)

	_, _, ok = nextStepTo(ast.MkInt(6), ast.MkInt(8), ast.MkInt(5))
	assert.False(t, ok)
}

func TestEvalArithmSeqUnboundedUnfoldsOneStep(t *testing.T) {
	seq := expr.ArithmSeq{Start: intE(1)}
	out, err := evalArithmSeq(seq)
	require.NoError(t, err)
	bin, ok := out.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Colon, bin.Op.Kind)
	assert.Equal(t, intE(1), bin.Left)
	cont, ok := bin.Right.(expr.ArithmSeq)
	require.True(t, ok)
	assert.Equal(t, intE(2), cont.Start)
}

func TestEvalArithmSeqBoundedTerminates(t *testing.T) {
	seq := expr.ArithmSeq{Start: intE(3), End: intE(3)}
	out, err := evalArithmSeq(seq)
	require.NoError(t, err)
	lst, ok := out.(expr.List)
	require.True(t, ok)
	assert.Equal(t, []expr.Expression{intE(3)}, lst.Items)
}

func TestEvalArithmSeqEmptyRangeYieldsEmptyList(t *testing.T) {
	seq := expr.ArithmSeq{Start: intE(5), End: intE(0)}
	out, err := evalArithmSeq(seq)
	require.NoError(t, err)
	lst, ok := out.(expr.List)
	require.True(t, ok)
	assert.Empty(t, lst.Items)
}

func TestEvalArithmSeqNonAtomStartCannotEvaluate(t *testing.T) {
	seq := expr.ArithmSeq{Start: name("x")}
	_, err := evalArithmSeq(seq)
	assert.IsType(t, CannotEvaluate{}, err)
}
