// Package eval is the small-step evaluator: path-directed single-step
// reduction, a fixpoint-driving full evaluator, definition application with
// multi-clause pattern matching, and arithmetic-sequence unfolding. A path
// lets a caller reduce exactly one chosen redex per call, so a host can
// single-step a program node by node instead of only ever running it to
// completion.
package eval

import (
	"reflect"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/pattern"
)

// Step descends expr along path and applies Eval1 at the selected node,
// returning the whole tree with that node replaced.
func Step(env Env, path ast.Path, e expr.Expression) (expr.Expression, error) {
	s, rest, ok := path.Head()
	if !ok || s.Nav == ast.End {
		return Eval1(env, e)
	}
	child, rebuild, err := descend(e, s)
	if err != nil {
		return nil, err
	}
	newChild, err := Step(env, rest, child)
	if err != nil {
		return nil, err
	}
	return rebuild(newChild), nil
}

// EvalAll repeats Step with path End to a fixpoint; a divergent program
// loops forever here, since nothing in this package imposes a step limit —
// callers wanting a bound wrap this call themselves.
func EvalAll(env Env, e expr.Expression) expr.Expression {
	for {
		next, err := Eval1(env, e)
		if err != nil {
			return e
		}
		if exprEqual(next, e) {
			return e
		}
		e = next
	}
}

func exprEqual(a, b expr.Expression) bool {
	return reflect.DeepEqual(a, b)
}

type rebuildFn func(expr.Expression) expr.Expression

// descend implements the per-node-shape navigation table Step walks.
func descend(e expr.Expression, s ast.Step) (expr.Expression, rebuildFn, error) {
	switch n := e.(type) {
	case expr.Binary:
		switch s.Nav {
		case ast.Fst:
			return n.Left, func(c expr.Expression) expr.Expression { n.Left = c; return n }, nil
		case ast.Snd:
			return n.Right, func(c expr.Expression) expr.Expression { n.Right = c; return n }, nil
		}
	case expr.Unary:
		if s.Nav == ast.Fst {
			return n.Expr, func(c expr.Expression) expr.Expression { n.Expr = c; return n }, nil
		}
	case expr.SectL:
		if s.Nav == ast.Fst {
			return n.Expr, func(c expr.Expression) expr.Expression { n.Expr = c; return n }, nil
		}
	case expr.SectR:
		if s.Nav == ast.Snd {
			return n.Expr, func(c expr.Expression) expr.Expression { n.Expr = c; return n }, nil
		}
	case expr.IfExpr:
		switch s.Nav {
		case ast.Fst:
			return n.Cond, func(c expr.Expression) expr.Expression { n.Cond = c; return n }, nil
		case ast.Snd:
			return n.Then, func(c expr.Expression) expr.Expression { n.Then = c; return n }, nil
		case ast.Thrd:
			return n.Else, func(c expr.Expression) expr.Expression { n.Else = c; return n }, nil
		}
	case expr.Lambda:
		if s.Nav == ast.Fst {
			return n.Body, func(c expr.Expression) expr.Expression { n.Body = c; return n }, nil
		}
	case expr.App:
		switch s.Nav {
		case ast.Fst:
			return n.Head, func(c expr.Expression) expr.Expression { n.Head = c; return n }, nil
		case ast.Nth:
			if s.Index < 0 || s.Index >= len(n.Args) {
				return nil, nil, IndexError{s.Index, len(n.Args)}
			}
			i := s.Index
			return n.Args[i], func(c expr.Expression) expr.Expression { n.Args[i] = c; return n }, nil
		}
	case expr.ArithmSeq:
		switch s.Nav {
		case ast.Fst:
			return n.Start, func(c expr.Expression) expr.Expression { n.Start = c; return n }, nil
		case ast.Snd:
			if n.Step == nil {
				break
			}
			return n.Step, func(c expr.Expression) expr.Expression { n.Step = c; return n }, nil
		case ast.Thrd:
			if n.End == nil {
				break
			}
			return n.End, func(c expr.Expression) expr.Expression { n.End = c; return n }, nil
		}
	case expr.List:
		if s.Nav == ast.Nth {
			if s.Index < 0 || s.Index >= len(n.Items) {
				return nil, nil, IndexError{s.Index, len(n.Items)}
			}
			i := s.Index
			return n.Items[i], func(c expr.Expression) expr.Expression { n.Items[i] = c; return n }, nil
		}
	case expr.NTuple:
		if s.Nav == ast.Nth {
			if s.Index < 0 || s.Index >= len(n.Items) {
				return nil, nil, IndexError{s.Index, len(n.Items)}
			}
			i := s.Index
			return n.Items[i], func(c expr.Expression) expr.Expression { n.Items[i] = c; return n }, nil
		}
	case expr.LetExpr:
		switch s.Nav {
		case ast.Fst:
			return n.Body, func(c expr.Expression) expr.Expression { n.Body = c; return n }, nil
		case ast.Nth:
			if s.Index < 0 || s.Index >= len(n.Bindings) {
				return nil, nil, IndexError{s.Index, len(n.Bindings)}
			}
			i := s.Index
			return n.Bindings[i].Expr, func(c expr.Expression) expr.Expression { n.Bindings[i].Expr = c; return n }, nil
		}
	case expr.ListComp:
		switch s.Nav {
		case ast.Fst:
			return n.Head, func(c expr.Expression) expr.Expression { n.Head = c; return n }, nil
		case ast.Nth:
			if s.Index < 0 || s.Index >= len(n.Quals) {
				return nil, nil, IndexError{s.Index, len(n.Quals)}
			}
			i := s.Index
			switch q := n.Quals[i].(type) {
			case expr.Gen:
				return q.Expr, func(c expr.Expression) expr.Expression { q.Expr = c; n.Quals[i] = q; return n }, nil
			case expr.LetQual:
				return q.Expr, func(c expr.Expression) expr.Expression { q.Expr = c; n.Quals[i] = q; return n }, nil
			case expr.Guard:
				return q.Expr, func(c expr.Expression) expr.Expression { q.Expr = c; n.Quals[i] = q; return n }, nil
			}
		}
	}
	return nil, nil, PathError{ast.Path{s}, e}
}

// Eval1 dispatches a single reduction step by the node's own shape, one
// rule per expression kind.
func Eval1(env Env, e expr.Expression) (expr.Expression, error) {
	switch n := e.(type) {
	case expr.Binary:
		return binary(env, n.Op, n.Left, n.Right, n.Location)
	case expr.Unary:
		return unary(n.Op, n.Expr, n.Location)
	case expr.Atom:
		if n.Atom.Kind == ast.AName {
			return Apply(env, n.Atom.Name, nil)
		}
		return nil, CannotEvaluate{e}
	case expr.IfExpr:
		cond, ok := n.Cond.(expr.Atom)
		if ok && cond.Atom.Kind == ast.ABool {
			if cond.Atom.Bool {
				return n.Then, nil
			}
			return n.Else, nil
		}
		return nil, CannotEvaluate{e}
	case expr.ArithmSeq:
		return evalArithmSeq(n)
	case expr.App:
		return evalApp(env, n)
	default:
		return nil, CannotEvaluate{e}
	}
}

func evalApp(env Env, n expr.App) (expr.Expression, error) {
	switch head := n.Head.(type) {
	case expr.Binary:
		if head.Op.Kind == ast.Composition && len(n.Args) == 1 {
			return expr.App{
				Location: n.Location,
				Head:     head.Left,
				Args:     []expr.Expression{expr.App{Location: n.Location, Head: head.Right, Args: n.Args}},
			}, nil
		}
	case expr.Lambda:
		return TryClauses(env, []Clause{{Params: head.Params, Body: head.Body}}, n.Args, "lambda")
	case expr.SectL:
		if len(n.Args) == 1 {
			if r, err := binary(env, head.Op, head.Expr, n.Args[0], n.Location); err == nil {
				return r, nil
			}
			return expr.Binary{Location: n.Location, Op: head.Op, Left: head.Expr, Right: n.Args[0]}, nil
		}
	case expr.SectR:
		if len(n.Args) == 1 {
			if r, err := binary(env, head.Op, n.Args[0], head.Expr, n.Location); err == nil {
				return r, nil
			}
			return expr.Binary{Location: n.Location, Op: head.Op, Left: n.Args[0], Right: head.Expr}, nil
		}
	case expr.PrefixOp:
		if len(n.Args) == 2 {
			if r, err := binary(env, head.Op, n.Args[0], n.Args[1], n.Location); err == nil {
				return r, nil
			}
			return expr.Binary{Location: n.Location, Op: head.Op, Left: n.Args[0], Right: n.Args[1]}, nil
		}
	case expr.Atom:
		if head.Atom.Kind == ast.AName {
			return Apply(env, head.Atom.Name, n.Args)
		}
	case expr.App:
		return expr.App{
			Location: n.Location,
			Head:     head.Head,
			Args:     append(append([]expr.Expression{}, head.Args...), n.Args...),
		}, nil
	}
	return nil, CannotEvaluate{n}
}

// Apply resolves name against the wired-in div/mod primitives, then env's
// clause table.
func Apply(env Env, name ast.Identifier, args []expr.Expression) (expr.Expression, error) {
	if name == "div" || name == "mod" {
		if len(args) != 2 {
			return nil, CannotEvaluate{expr.App{Head: expr.Atom{Atom: ast.MkName(name)}, Args: args}}
		}
		a1, ok1 := atomOf(args[0])
		a2, ok2 := atomOf(args[1])
		op := ast.OpInfixFunc(name)
		if !ok1 || !ok2 || a1.Kind != ast.AInt || a2.Kind != ast.AInt {
			return nil, BinaryOpError{op, args[0], args[1]}
		}
		if a2.Int == 0 {
			return nil, DivByZero{}
		}
		if name == "div" {
			return expr.Atom{Atom: ast.MkInt(a1.Int / a2.Int)}, nil
		}
		return expr.Atom{Atom: ast.MkInt(a1.Int % a2.Int)}, nil
	}
	clauses, ok := env.Clauses(name)
	if !ok {
		return nil, UnknownFunction{name}
	}
	return TryClauses(env, clauses, args, string(name))
}

// wrapLambda finishes a clause application: exact arity returns body
// unchanged, unconsumed patterns become a Lambda, unconsumed args are
// reapplied via App.
func wrapLambda(patterns []expr.Binding, args []expr.Expression, body expr.Expression) expr.Expression {
	k, n := len(patterns), len(args)
	switch {
	case n == k:
		return body
	case n < k:
		return expr.Lambda{Params: patterns[n:], Body: body}
	default:
		return expr.App{Head: body, Args: args[k:]}
	}
}

// TryClauses walks clauses in source order. A clause with
// more formal patterns than supplied arguments (n < k) is recorded as
// TooFewArguments and skipped in favor of a clause whose arity the call
// actually satisfies; if every clause falls into that bucket, the call is a
// genuine partial application, resolved by matching the args against the
// least-short clause's own leading patterns, substituting those bindings
// into its body, and wrapping the remaining patterns into a Lambda — the
// same match/substitute/wrapLambda sequence the full-arity path below uses,
// not a re-dispatch through a synthetic name.
func TryClauses(env Env, clauses []Clause, args []expr.Expression, name string) (expr.Expression, error) {
	var causes []error
	allTooFew := true
	var bestClause Clause
	bestShortfall := -1
	for _, c := range clauses {
		k, n := len(c.Params), len(args)
		if n < k {
			causes = append(causes, pattern.TooFewArguments{Bindings: c.Params, Exprs: args})
			if bestShortfall == -1 || k-n < bestShortfall {
				bestShortfall = k - n
				bestClause = c
			}
			continue
		}
		allTooFew = false
		bindings, err := MatchAll(env, c.Params, args[:k])
		if err != nil {
			if se, ok := err.(pattern.StrictnessError); ok {
				causes = append(causes, se)
				return nil, NoMatchingFunction{Name: ast.Identifier(name), Causes: causes}
			}
			causes = append(causes, err)
			continue
		}
		body, err := Substitute(bindings, c.Body)
		if err != nil {
			return nil, err
		}
		return wrapLambda(c.Params, args, body), nil
	}
	if allTooFew && bestShortfall != -1 {
		n := len(args)
		bindings, err := MatchAll(env, bestClause.Params[:n], args)
		if err != nil {
			causes = append(causes, err)
			return nil, NoMatchingFunction{Name: ast.Identifier(name), Causes: causes}
		}
		body, err := Substitute(bindings, bestClause.Body)
		if err != nil {
			return nil, err
		}
		return wrapLambda(bestClause.Params, args, body), nil
	}
	return nil, NoMatchingFunction{Name: ast.Identifier(name), Causes: causes}
}

// MatchAll forces each argument just enough (via EvalToBinding) to test it
// against the corresponding pattern.
func MatchAll(env Env, patterns []expr.Binding, args []expr.Expression) (pattern.Bindings, error) {
	out := pattern.Bindings{}
	for i, p := range patterns {
		forced, err := EvalToBinding(env, args[i], p)
		if err != nil {
			return nil, err
		}
		m, err := pattern.Match(p, forced)
		if err != nil {
			return nil, err
		}
		for k, v := range m {
			out[k] = v
		}
	}
	return out, nil
}

// EvalToBinding is a bounded normalizer: it forces e one step at a time
// until pattern.Match no longer reports StrictnessError (success or a
// definitive MatchingError) or a fixpoint is reached. It must never become
// a full normalizer — it stops the instant Match can decide, which is what
// keeps pattern matching lazy instead of forcing arguments a clause never
// inspects.
func EvalToBinding(env Env, e expr.Expression, p expr.Binding) (expr.Expression, error) {
	for {
		_, err := pattern.Match(p, e)
		if err == nil {
			return e, nil
		}
		if _, ok := err.(pattern.StrictnessError); !ok {
			return e, nil
		}
		next, evalErr := Eval1(env, e)
		if evalErr != nil {
			return e, nil
		}
		if exprEqual(next, e) {
			return e, nil
		}
		e = next
	}
}
