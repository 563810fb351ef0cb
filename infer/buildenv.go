package infer

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/index"
	"github.com/SRechenberger/clickyEvaluation/subst"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// group is every clause sharing one Def.Name, in source order.
type group struct {
	name string
	defs []expr.Def
}

// groupDefs collects defs by name, preserving first-appearance order of the
// names themselves.
func groupDefs(defs []expr.Def) []group {
	var order []string
	byName := map[string][]expr.Def{}
	for _, d := range defs {
		name := string(d.Name)
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], d)
	}
	out := make([]group, len(order))
	for i, name := range order {
		out[i] = group{name: name, defs: byName[name]}
	}
	return out
}

func findGroup(gs []group, name string) (int, bool) {
	for i, g := range gs {
		if g.name == name {
			return i, true
		}
	}
	return 0, false
}

// BuildTypeEnv infers a scheme for every top-level definition group and
// extends prelude with them. Groups are processed queue-first; when a
// group's inference raises UnboundVariable(x) naming another still-queued
// group, that group is rotated to the front of the queue and the current
// group retried immediately after it — a demand-driven topological order
// that resolves ordinary forward references without a separate dependency
// analysis pass. Only one rotation per missing symbol is permitted, so a
// second miss on the same name is treated as a real UnboundVariable rather
// than rotated again; this means two groups that are genuinely and
// mutually dependent on each other (neither resolvable without the other
// already in env) cannot both succeed, since neither's scheme is ever
// added to env until one succeeds standalone.
func BuildTypeEnv(defs []expr.Def, prelude typed.TypeEnv) (typed.TypeEnv, error) {
	queue := groupDefs(defs)
	env := prelude
	rotated := map[string]bool{}
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		sch, err := inferGroup(env, g)
		if err != nil {
			if ub, ok := err.(UnboundVariable); ok {
				if idx, found := findGroup(queue, string(ub.Name)); found && !rotated[string(ub.Name)] {
					rotated[string(ub.Name)] = true
					dep := queue[idx]
					rest := make([]group, 0, len(queue)-1)
					rest = append(rest, queue[:idx]...)
					rest = append(rest, queue[idx+1:]...)
					queue = append([]group{dep, g}, rest...)
					continue
				}
			}
			return nil, normalize(err)
		}
		env = env.Extend(ast.Identifier(g.name), sch)
	}
	return env, nil
}

// inferGroup allocates one fresh scheme variable for the group's own name
// (bound monomorphically so recursive/mutually-recursive calls within the
// group's own clause bodies see a fixed type, not a generalized scheme),
// infers every clause under an environment already binding that name, ties
// every clause's folded arrow type to the first clause's, then generalizes
// under the outer (non-self-extended) environment.
func inferGroup(env typed.TypeEnv, g group) (typed.Scheme, error) {
	ctx := NewContext(env)
	self := ctx.fresh()
	selfEnv := env.Extend(ast.Identifier(g.name), typed.Scheme{Type: self})

	var clauseTypes []typed.Type
	var cs []Constraint
	for _, d := range g.defs {
		ix := index.NewIndexer(0)
		td := ix.Def(d)

		if name, dup := overlapAll(td.Params); dup {
			return typed.Scheme{}, UnknownError{Msg: fmt.Sprintf("Conflicting definitions for '%s'", name)}
		}

		clauseCtx := ctx.withEnv(selfEnv)
		params := make([]typed.Binding, len(td.Params))
		paramTypes := make([]typed.Type, len(td.Params))
		envAll := map[ast.Identifier]typed.Type{}
		for i, p := range td.Params {
			pb, penv, pc, err := clauseCtx.bindType(p)
			if err != nil {
				return typed.Scheme{}, err
			}
			params[i] = pb
			paramTypes[i] = pb.GetType()
			envAll = mergeEnv(envAll, penv)
			cs = append(cs, pc...)
		}

		bodyEnv := selfEnv.ExtendMany(schemesOf(envAll))
		bodyT, bodyC, err := clauseCtx.withEnv(bodyEnv).Generate(td.Body)
		if err != nil {
			return typed.Scheme{}, err
		}
		cs = append(cs, bodyC...)

		t := bodyT.GetType()
		for i := len(paramTypes) - 1; i >= 0; i-- {
			t = &typed.TArr{From: paramTypes[i], To: t}
		}
		clauseTypes = append(clauseTypes, t)
	}

	for _, t := range clauseTypes[1:] {
		cs = append(cs, Constraint{Lhs: clauseTypes[0], Rhs: t})
	}
	cs = append(cs, Constraint{Lhs: self, Rhs: clauseTypes[0]})

	s, err := UnifyAll(cs)
	if err != nil {
		return typed.Scheme{}, err
	}
	final := subst.ApplyType(s, clauseTypes[0])
	return Generalize(env, final), nil
}
