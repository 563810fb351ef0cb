package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

func stageNames(tr *Trace) []string {
	out := make([]string, len(tr.Stages))
	for i, s := range tr.Stages {
		out[i] = s.Name
	}
	return out
}

func TestTypeTreeTracedRecordsFullPipelineOnSuccess(t *testing.T) {
	e := expr.Lambda{
		Params: []expr.Binding{expr.NamePattern(ast.Location{}, "x")},
		Body:   expr.Binary{Op: ast.Op(ast.Add), Left: nameE("x"), Right: intLit(1)},
	}
	out, tr, err := TypeTreeTraced(typed.NewTypeEnv(), e)
	require.NoError(t, err)
	assert.True(t, typed.EqualsTo(&typed.TArr{From: typed.TInt, To: typed.TInt}, out.GetType()))
	assert.Equal(t, []string{"index", "generate", "unify", "apply", "checkEnums", "canonicalize"}, stageNames(tr))
}

func TestTypeTreeTracedStopsAtGenerateOnUnboundVariable(t *testing.T) {
	_, tr, err := TypeTreeTraced(typed.NewTypeEnv(), nameE("undefined"))
	require.Error(t, err)
	assert.IsType(t, UnboundVariable{}, err)
	assert.Equal(t, []string{"index", "generate"}, stageNames(tr))
}

func TestTypeTreeTracedStopsAtUnifyOnTypeMismatch(t *testing.T) {
	e := expr.IfExpr{Cond: intLit(1), Then: intLit(2), Else: intLit(3)}
	_, tr, err := TypeTreeTraced(typed.NewTypeEnv(), e)
	require.Error(t, err)
	assert.Equal(t, []string{"index", "generate", "unify"}, stageNames(tr))
}

func TestStageStringIncludesNameAndDetail(t *testing.T) {
	s := Stage{Name: "unify", Detail: "solved with 2 variable bindings"}
	assert.Equal(t, "unify: solved with 2 variable bindings", s.String())
}

func TestTraceStringJoinsStagesWithNewlines(t *testing.T) {
	tr := &Trace{}
	tr.record("index", "assigned 3 node indices starting at 0")
	tr.record("generate", "emitted 1 constraints")
	assert.Equal(t, "index: assigned 3 node indices starting at 0\ngenerate: emitted 1 constraints", tr.String())
}
