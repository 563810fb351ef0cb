package eval

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/pattern"
)

// FreeVariables computes the real free-variable set of e: names that occur
// in an Atom(Name _) position and are not bound by an enclosing Lambda,
// LetExpr, or comprehension qualifier within e. A version that returns the
// empty set unconditionally would silently disable Substitute's capture
// check, letting a substituted name get shadowed by a binder it should
// have skipped.
func FreeVariables(e expr.Expression) []ast.Identifier {
	return freeVars(e, map[ast.Identifier]bool{})
}

func cloneBound(bound map[ast.Identifier]bool) map[ast.Identifier]bool {
	out := make(map[ast.Identifier]bool, len(bound))
	for k, v := range bound {
		out[k] = v
	}
	return out
}

func freeVars(e expr.Expression, bound map[ast.Identifier]bool) []ast.Identifier {
	switch n := e.(type) {
	case expr.Atom:
		if n.Atom.Kind == ast.AName && !bound[n.Atom.Name] {
			return []ast.Identifier{n.Atom.Name}
		}
		return nil
	case expr.List:
		var out []ast.Identifier
		for _, it := range n.Items {
			out = append(out, freeVars(it, bound)...)
		}
		return out
	case expr.NTuple:
		var out []ast.Identifier
		for _, it := range n.Items {
			out = append(out, freeVars(it, bound)...)
		}
		return out
	case expr.Binary:
		return append(freeVars(n.Left, bound), freeVars(n.Right, bound)...)
	case expr.Unary:
		return freeVars(n.Expr, bound)
	case expr.SectL:
		return freeVars(n.Expr, bound)
	case expr.SectR:
		return freeVars(n.Expr, bound)
	case expr.PrefixOp:
		return nil
	case expr.IfExpr:
		out := freeVars(n.Cond, bound)
		out = append(out, freeVars(n.Then, bound)...)
		return append(out, freeVars(n.Else, bound)...)
	case expr.ArithmSeq:
		out := freeVars(n.Start, bound)
		if n.Step != nil {
			out = append(out, freeVars(n.Step, bound)...)
		}
		if n.End != nil {
			out = append(out, freeVars(n.End, bound)...)
		}
		return out
	case expr.LetExpr:
		inner := cloneBound(bound)
		for _, b := range n.Bindings {
			for _, nm := range pattern.Names(b.Binding) {
				inner[nm] = true
			}
		}
		var out []ast.Identifier
		for _, b := range n.Bindings {
			out = append(out, freeVars(b.Expr, inner)...)
		}
		return append(out, freeVars(n.Body, inner)...)
	case expr.Lambda:
		inner := cloneBound(bound)
		for _, p := range n.Params {
			for _, nm := range pattern.Names(p) {
				inner[nm] = true
			}
		}
		return freeVars(n.Body, inner)
	case expr.App:
		out := freeVars(n.Head, bound)
		for _, a := range n.Args {
			out = append(out, freeVars(a, bound)...)
		}
		return out
	case expr.ListComp:
		inner := cloneBound(bound)
		var out []ast.Identifier
		for _, q := range n.Quals {
			switch qq := q.(type) {
			case expr.Gen:
				out = append(out, freeVars(qq.Expr, inner)...)
				for _, nm := range pattern.Names(qq.Binding) {
					inner[nm] = true
				}
			case expr.LetQual:
				out = append(out, freeVars(qq.Expr, inner)...)
				for _, nm := range pattern.Names(qq.Binding) {
					inner[nm] = true
				}
			case expr.Guard:
				out = append(out, freeVars(qq.Expr, inner)...)
			}
		}
		return append(out, freeVars(n.Head, inner)...)
	default:
		return nil
	}
}

func restrict(bindings pattern.Bindings, names []ast.Identifier) pattern.Bindings {
	drop := map[ast.Identifier]bool{}
	for _, n := range names {
		drop[n] = true
	}
	out := pattern.Bindings{}
	for k, v := range bindings {
		if !drop[k] {
			out[k] = v
		}
	}
	return out
}

func checkCapture(bindings pattern.Bindings, boundNames []ast.Identifier) error {
	boundSet := map[ast.Identifier]bool{}
	for _, n := range boundNames {
		boundSet[n] = true
	}
	var captured []ast.Identifier
	seen := map[ast.Identifier]bool{}
	for _, v := range bindings {
		for _, fv := range FreeVariables(v) {
			if boundSet[fv] && !seen[fv] {
				captured = append(captured, fv)
				seen[fv] = true
			}
		}
	}
	if len(captured) > 0 {
		return NameCaptureError{Names: captured}
	}
	return nil
}

func substituteAll(bindings pattern.Bindings, es []expr.Expression) ([]expr.Expression, error) {
	out := make([]expr.Expression, len(es))
	for i, e := range es {
		s, err := Substitute(bindings, e)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Substitute replaces every pattern-variable Atom(Name _) in e with its
// bound sub-expression, restricting the map before descending into any
// binder (Lambda, LetExpr, comprehension qualifier) and raising
// NameCaptureError if a substituted value's free variables collide with
// names that binder introduces.
func Substitute(bindings pattern.Bindings, e expr.Expression) (expr.Expression, error) {
	if len(bindings) == 0 {
		return e, nil
	}
	switch n := e.(type) {
	case expr.Atom:
		if n.Atom.Kind == ast.AName {
			if v, ok := bindings[n.Atom.Name]; ok {
				return v, nil
			}
		}
		return n, nil
	case expr.List:
		items, err := substituteAll(bindings, n.Items)
		if err != nil {
			return nil, err
		}
		n.Items = items
		return n, nil
	case expr.NTuple:
		items, err := substituteAll(bindings, n.Items)
		if err != nil {
			return nil, err
		}
		n.Items = items
		return n, nil
	case expr.Binary:
		l, err := Substitute(bindings, n.Left)
		if err != nil {
			return nil, err
		}
		r, err := Substitute(bindings, n.Right)
		if err != nil {
			return nil, err
		}
		n.Left, n.Right = l, r
		return n, nil
	case expr.Unary:
		s, err := Substitute(bindings, n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = s
		return n, nil
	case expr.SectL:
		s, err := Substitute(bindings, n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = s
		return n, nil
	case expr.SectR:
		s, err := Substitute(bindings, n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = s
		return n, nil
	case expr.PrefixOp:
		return n, nil
	case expr.IfExpr:
		c, err := Substitute(bindings, n.Cond)
		if err != nil {
			return nil, err
		}
		t, err := Substitute(bindings, n.Then)
		if err != nil {
			return nil, err
		}
		el, err := Substitute(bindings, n.Else)
		if err != nil {
			return nil, err
		}
		n.Cond, n.Then, n.Else = c, t, el
		return n, nil
	case expr.ArithmSeq:
		s, err := Substitute(bindings, n.Start)
		if err != nil {
			return nil, err
		}
		n.Start = s
		if n.Step != nil {
			st, err := Substitute(bindings, n.Step)
			if err != nil {
				return nil, err
			}
			n.Step = st
		}
		if n.End != nil {
			en, err := Substitute(bindings, n.End)
			if err != nil {
				return nil, err
			}
			n.End = en
		}
		return n, nil
	case expr.LetExpr:
		var boundNames []ast.Identifier
		for _, b := range n.Bindings {
			boundNames = append(boundNames, pattern.Names(b.Binding)...)
		}
		restricted := restrict(bindings, boundNames)
		if err := checkCapture(restricted, boundNames); err != nil {
			return nil, err
		}
		newBindings := make([]expr.LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			nb, err := Substitute(restricted, b.Expr)
			if err != nil {
				return nil, err
			}
			newBindings[i] = expr.LetBinding{Location: b.Location, Binding: b.Binding, Expr: nb}
		}
		body, err := Substitute(restricted, n.Body)
		if err != nil {
			return nil, err
		}
		n.Bindings, n.Body = newBindings, body
		return n, nil
	case expr.Lambda:
		var boundNames []ast.Identifier
		for _, p := range n.Params {
			boundNames = append(boundNames, pattern.Names(p)...)
		}
		restricted := restrict(bindings, boundNames)
		if err := checkCapture(restricted, boundNames); err != nil {
			return nil, err
		}
		body, err := Substitute(restricted, n.Body)
		if err != nil {
			return nil, err
		}
		n.Body = body
		return n, nil
	case expr.App:
		h, err := Substitute(bindings, n.Head)
		if err != nil {
			return nil, err
		}
		args, err := substituteAll(bindings, n.Args)
		if err != nil {
			return nil, err
		}
		n.Head, n.Args = h, args
		return n, nil
	case expr.ListComp:
		cur := bindings
		newQuals := make([]expr.Qual, len(n.Quals))
		for i, q := range n.Quals {
			switch qq := q.(type) {
			case expr.Gen:
				e2, err := Substitute(cur, qq.Expr)
				if err != nil {
					return nil, err
				}
				names := pattern.Names(qq.Binding)
				cur = restrict(cur, names)
				if err := checkCapture(cur, names); err != nil {
					return nil, err
				}
				newQuals[i] = expr.Gen{Location: qq.Location, Binding: qq.Binding, Expr: e2}
			case expr.LetQual:
				e2, err := Substitute(cur, qq.Expr)
				if err != nil {
					return nil, err
				}
				names := pattern.Names(qq.Binding)
				cur = restrict(cur, names)
				if err := checkCapture(cur, names); err != nil {
					return nil, err
				}
				newQuals[i] = expr.LetQual{Location: qq.Location, Binding: qq.Binding, Expr: e2}
			case expr.Guard:
				e2, err := Substitute(cur, qq.Expr)
				if err != nil {
					return nil, err
				}
				newQuals[i] = expr.Guard{Location: qq.Location, Expr: e2}
			}
		}
		head, err := Substitute(cur, n.Head)
		if err != nil {
			return nil, err
		}
		n.Quals, n.Head = newQuals, head
		return n, nil
	default:
		return n, nil
	}
}
