package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathHead(t *testing.T) {
	p := Path{FstStep(), NthStep(2)}
	step, rest, ok := p.Head()
	require.True(t, ok)
	assert.Equal(t, FstStep(), step)
	assert.Equal(t, Path{NthStep(2)}, rest)

	_, _, ok = Path{}.Head()
	assert.False(t, ok)
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "End", Path{}.String())
	assert.Equal(t, "Fst.Nth(2)", Path{FstStep(), NthStep(2)}.String())
}

func TestOperatorEqual(t *testing.T) {
	assert.True(t, OpInfixFunc("elem").Equal(OpInfixFunc("elem")))
	assert.False(t, OpInfixFunc("elem").Equal(OpInfixFunc("notElem")))
	assert.True(t, Op(Add).Equal(Op(Add)))
	assert.False(t, Op(Add).Equal(Op(Sub)))
}
