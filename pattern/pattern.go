// Package pattern is the pattern/binding engine: matching a raw binding
// against a raw expression for the evaluator's clause dispatch, and
// extracting a typed binding plus a fresh-variable environment for the
// inferencer. Both operations share the same pattern-shape recursion, one
// producing a value substitution and the other a symbol map plus a typed
// tree.
package pattern

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

// MatchingError means p can never match e: their shapes are incompatible
// once e is known to be in weak-head-normal form.
type MatchingError struct {
	Binding expr.Binding
	Expr    expr.Expression
}

func (e MatchingError) Error() string {
	return fmt.Sprintf("cannot match %v against %v", e.Binding, e.Expr)
}

// StrictnessError means e is not yet forced far enough to know whether it
// matches p; the caller (evalToBinding) must reduce e further before
// retrying.
type StrictnessError struct {
	Binding expr.Binding
	Expr    expr.Expression
}

func (e StrictnessError) Error() string {
	return fmt.Sprintf("%v not yet forced enough to match %v", e.Expr, e.Binding)
}

// TooFewArguments is raised by the clause dispatcher (not by Match itself)
// when a clause has more formal parameters than were supplied.
type TooFewArguments struct {
	Bindings []expr.Binding
	Exprs    []expr.Expression
}

func (e TooFewArguments) Error() string {
	return fmt.Sprintf("too few arguments: %d patterns, %d arguments", len(e.Bindings), len(e.Exprs))
}

// Bindings is the substitution a successful Match produces: pattern
// variable name to the (unevaluated) sub-expression it stands for.
type Bindings map[ast.Identifier]expr.Expression

func merge(dst, src Bindings) Bindings {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// IsWHNF reports whether e's outermost constructor is a data constructor,
// lambda, atom, list, tuple, or operator section — anything Match can
// pattern-match against without further reduction (GLOSSARY: WHNF).
func IsWHNF(e expr.Expression) bool {
	switch x := e.(type) {
	case expr.Atom:
		return x.Atom.Kind != ast.AName
	case expr.List, expr.NTuple, expr.Lambda, expr.SectL, expr.SectR, expr.PrefixOp:
		return true
	case expr.App:
		head, _ := FlattenApp(x)
		if a, ok := head.(expr.Atom); ok {
			return a.Atom.Kind == ast.AConstr
		}
		return false
	default:
		return false
	}
}

// FlattenApp collapses left-nested App(App(f,a),b) into (f, [a,b,...]),
// mirroring eval1 rule 10's left-associative flattening so Match sees a
// data constructor's full argument list regardless of how it was built.
func FlattenApp(e expr.App) (expr.Expression, []expr.Expression) {
	head := e.Head
	args := append([]expr.Expression{}, e.Args...)
	for {
		inner, ok := head.(expr.App)
		if !ok {
			return head, args
		}
		head = inner.Head
		args = append(append([]expr.Expression{}, inner.Args...), args...)
	}
}

// Match: a name pattern binds unconditionally,
// ConsLit re-shapes a List into a Binary(Colon,...) before recursing,
// ListLit/NTupleLit match pointwise on equal length/arity, a literal atom
// matches an equal atom, ConstrLit matches a saturated constructor
// application by name and arity. Any other pairing is a StrictnessError if
// e is not yet WHNF, else a MatchingError.
func Match(p expr.Binding, e expr.Expression) (Bindings, error) {
	switch pt := p.(type) {
	case expr.Lit:
		if name, ok := expr.Name(pt); ok {
			return Bindings{name: e}, nil
		}
		if a, ok := e.(expr.Atom); ok && a.Atom.Kind != ast.AName {
			if pt.Atom.Equal(a.Atom) {
				return Bindings{}, nil
			}
			return nil, MatchingError{p, e}
		}
		if !IsWHNF(e) {
			return nil, StrictnessError{p, e}
		}
		return nil, MatchingError{p, e}

	case expr.ConsLit:
		if bin, ok := e.(expr.Binary); ok && bin.Op.Kind == ast.Colon {
			out := Bindings{}
			hm, err := Match(pt.Head, bin.Left)
			if err != nil {
				return nil, err
			}
			tm, err := Match(pt.Tail, bin.Right)
			if err != nil {
				return nil, err
			}
			return merge(merge(out, hm), tm), nil
		}
		if lst, ok := e.(expr.List); ok {
			if len(lst.Items) == 0 {
				return nil, MatchingError{p, e}
			}
			reshaped := expr.Binary{
				Location: lst.Location,
				Op:       ast.Op(ast.Colon),
				Left:     lst.Items[0],
				Right:    expr.List{Location: lst.Location, Items: lst.Items[1:]},
			}
			return Match(pt, reshaped)
		}
		if !IsWHNF(e) {
			return nil, StrictnessError{p, e}
		}
		return nil, MatchingError{p, e}

	case expr.ListLit:
		lst, ok := e.(expr.List)
		if !ok {
			if !IsWHNF(e) {
				return nil, StrictnessError{p, e}
			}
			return nil, MatchingError{p, e}
		}
		if len(lst.Items) != len(pt.Items) {
			return nil, MatchingError{p, e}
		}
		out := Bindings{}
		for i, sub := range pt.Items {
			m, err := Match(sub, lst.Items[i])
			if err != nil {
				return nil, err
			}
			out = merge(out, m)
		}
		return out, nil

	case expr.NTupleLit:
		tup, ok := e.(expr.NTuple)
		if !ok {
			if !IsWHNF(e) {
				return nil, StrictnessError{p, e}
			}
			return nil, MatchingError{p, e}
		}
		if len(tup.Items) != len(pt.Items) {
			return nil, MatchingError{p, e}
		}
		out := Bindings{}
		for i, sub := range pt.Items {
			m, err := Match(sub, tup.Items[i])
			if err != nil {
				return nil, err
			}
			out = merge(out, m)
		}
		return out, nil

	case expr.ConstrLit:
		name, args, ok := constrApp(e)
		if !ok {
			if !IsWHNF(e) {
				return nil, StrictnessError{p, e}
			}
			return nil, MatchingError{p, e}
		}
		if name != pt.Name || len(args) != len(pt.Args) {
			return nil, MatchingError{p, e}
		}
		out := Bindings{}
		for i, sub := range pt.Args {
			m, err := Match(sub, args[i])
			if err != nil {
				return nil, err
			}
			out = merge(out, m)
		}
		return out, nil

	default:
		panic(fmt.Sprintf("pattern.Match: unhandled binding kind %T", p))
	}
}

func constrApp(e expr.Expression) (ast.Identifier, []expr.Expression, bool) {
	switch x := e.(type) {
	case expr.Atom:
		if x.Atom.Kind == ast.AConstr {
			return x.Atom.Name, nil, true
		}
	case expr.App:
		head, args := FlattenApp(x)
		if a, ok := head.(expr.Atom); ok && a.Atom.Kind == ast.AConstr {
			return a.Atom.Name, args, true
		}
	}
	return "", nil, false
}

// Names returns every name bound by p, in left-to-right occurrence order.
func Names(p expr.Binding) []ast.Identifier {
	switch pt := p.(type) {
	case expr.Lit:
		if name, ok := expr.Name(pt); ok {
			return []ast.Identifier{name}
		}
		return nil
	case expr.ConsLit:
		return append(Names(pt.Head), Names(pt.Tail)...)
	case expr.ListLit:
		var out []ast.Identifier
		for _, sub := range pt.Items {
			out = append(out, Names(sub)...)
		}
		return out
	case expr.NTupleLit:
		var out []ast.Identifier
		for _, sub := range pt.Items {
			out = append(out, Names(sub)...)
		}
		return out
	case expr.ConstrLit:
		var out []ast.Identifier
		for _, sub := range pt.Args {
			out = append(out, Names(sub)...)
		}
		return out
	default:
		return nil
	}
}

// Overlap reports the first name bound more than once across patterns.
// Pattern variables must be unique within a single clause head; a repeated
// name would make matching ambiguous about which occurrence binds.
func Overlap(patterns []expr.Binding) (ast.Identifier, bool) {
	seen := map[ast.Identifier]bool{}
	for _, p := range patterns {
		for _, n := range Names(p) {
			if seen[n] {
				return n, true
			}
			seen[n] = true
		}
	}
	return "", false
}
