// Package infer is the two-phase Hindley-Milner inferencer: Context.Generate
// walks an indexed typed tree emitting Constraints (phase 1), Unify/UnifyAll
// solve them (phase 2), and TypeTree/TypeTreePartial glue generation,
// solving, and canonical renaming into the public entry points. Separating
// generation from solving keeps each phase a plain recursive walk instead of
// interleaving substitution application into every constructor case.
package infer

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/subst"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Constraint is one deferred type equality obligation, tagged
// with the index of the node whose expectations produced it. Origin is
// always the index of the node imposing the requirement (the parent), not
// the child being constrained, so a solving failure localises onto the
// node that turns out to be wrong, not onto the well-typed leaf underneath
// it — this is what makes TypeTreePartial's ancestor localisation work.
type Constraint struct {
	Lhs, Rhs typed.Type
	Origin   uint32
}

// Context is an explicit reader-of-environment + state-of-counter struct
// threaded through constraint generation, standing in for a monad
// transformer stack Go doesn't have a clean way to express. partial switches
// child-generation failures from propagating outward to being embedded as
// a TError on the failing subtree's own root, which is how
// TypeTreePartial keeps typing independent siblings after one subtree
// fails.
type Context struct {
	Env     typed.TypeEnv
	counter *uint32
	partial bool
}

func NewContext(env typed.TypeEnv) *Context {
	var c uint32
	return &Context{Env: env, counter: &c}
}

// NewPartialContext builds a Context in partial mode, the entry point
// TypeTreePartial uses so that generation failures embed a TError on the
// failing node instead of aborting the whole tree.
func NewPartialContext(env typed.TypeEnv) *Context {
	var c uint32
	return &Context{Env: env, counter: &c, partial: true}
}

func (ctx *Context) withEnv(env typed.TypeEnv) *Context {
	return &Context{Env: env, counter: ctx.counter, partial: ctx.partial}
}

func (ctx *Context) fresh() *typed.TVar {
	n := *ctx.counter
	*ctx.counter++
	return &typed.TVar{Name: fmt.Sprintf("t%d", n)}
}

// instantiate replaces sch's quantified variables with fresh ones.
func (ctx *Context) instantiate(sch typed.Scheme) typed.Type {
	s := subst.Null()
	for _, v := range sch.Vars {
		s[v] = ctx.fresh()
	}
	return subst.ApplyType(s, sch.Type)
}

// Generalize quantifies every free variable of t not also free in env:
// generalize(env, t) = Forall(ftv(t) \ ftv(env), t).
func Generalize(env typed.TypeEnv, t typed.Type) typed.Scheme {
	envFtv := map[string]bool{}
	for _, v := range subst.FtvEnv(env) {
		envFtv[v] = true
	}
	var vars []string
	for _, v := range subst.FtvType(t) {
		if !envFtv[v] {
			vars = append(vars, v)
		}
	}
	return typed.Scheme{Vars: vars, Type: t}
}
