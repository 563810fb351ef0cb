package infer

import (
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/index"
	"github.com/SRechenberger/clickyEvaluation/subst"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// TypeTree infers e's type tree in one strict pass: index, generate,
// unify, apply, check enumerability, then strip indices and canonicalize
// free variable names. Any failure at any stage aborts and returns a
// normalized error; nothing is returned partially typed.
func TypeTree(env typed.TypeEnv, e expr.Expression) (typed.Expression, error) {
	indexed, _ := index.Index(0, e)
	ctx := NewContext(env)
	generated, cs, err := ctx.Generate(indexed)
	if err != nil {
		return nil, normalize(err)
	}
	s, err := UnifyAll(cs)
	if err != nil {
		return nil, err
	}
	solved := subst.ApplyExpression(s, generated)
	checked, err := checkEnums(solved, false)
	if err != nil {
		return nil, normalize(err)
	}
	return index.CanonicalizeExpression(index.Strip(checked)), nil
}

// TypeTreePartial infers e's type tree with the same pipeline, but never
// fails: generation errors are embedded as a TError on the node that
// raised them, unification failures are embedded as a TError on the
// ancestor node whose expectation of a child produced the failing
// constraint, and everything else keeps whatever type it solved to.
func TypeTreePartial(env typed.TypeEnv, e expr.Expression) typed.Expression {
	indexed, _ := index.Index(0, e)
	ctx := NewPartialContext(env)
	generated, cs, _ := ctx.genChild(indexed)
	s, failed := UnifyPartial(cs)
	solved := subst.ApplyExpression(s, generated)
	marked := markFailed(solved, failed)
	checked, _ := checkEnums(marked, true)
	return index.CanonicalizeExpression(index.Strip(checked))
}
