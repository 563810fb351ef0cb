package infer

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/common"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/index"
	"github.com/SRechenberger/clickyEvaluation/subst"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Stage is one recorded step of a Trace.
type Stage struct {
	Name   string
	Detail string
}

func (s Stage) String() string { return fmt.Sprintf("%s: %s", s.Name, s.Detail) }

// Trace is a structured record of the index/generate/unify/apply pipeline
// a TypeTree call goes through, so a host can render a developer-facing
// account of a typing pass instead of treating inference as an opaque
// call.
type Trace struct {
	Stages []Stage
}

func (t *Trace) record(name, detail string) {
	t.Stages = append(t.Stages, Stage{Name: name, Detail: detail})
}

func (t *Trace) String() string {
	return common.Join(t.Stages, "\n")
}

// TypeTreeTraced runs the same pipeline as TypeTree, additionally
// recording each stage's outcome onto the returned Trace regardless of
// whether the call ultimately succeeds.
func TypeTreeTraced(env typed.TypeEnv, e expr.Expression) (typed.Expression, *Trace, error) {
	tr := &Trace{}

	indexed, next := index.Index(0, e)
	tr.record("index", fmt.Sprintf("assigned %d node indices starting at 0", next))

	ctx := NewContext(env)
	generated, cs, err := ctx.Generate(indexed)
	if err != nil {
		tr.record("generate", err.Error())
		return nil, tr, normalize(err)
	}
	tr.record("generate", fmt.Sprintf("emitted %d constraints", len(cs)))

	s, err := UnifyAll(cs)
	if err != nil {
		tr.record("unify", err.Error())
		return nil, tr, err
	}
	tr.record("unify", fmt.Sprintf("solved with %d variable bindings", len(s)))

	solved := subst.ApplyExpression(s, generated)
	tr.record("apply", "substitution applied to every node's type")

	checked, err := checkEnums(solved, false)
	if err != nil {
		tr.record("checkEnums", err.Error())
		return nil, tr, normalize(err)
	}
	tr.record("checkEnums", "every arithmetic sequence element type is enumerable")

	final := index.CanonicalizeExpression(index.Strip(checked))
	tr.record("canonicalize", "indices stripped, free type variables renamed to a, b, c, ...")

	return final, tr, nil
}
