package eval

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

func atomOf(e expr.Expression) (ast.Atom, bool) {
	a, ok := e.(expr.Atom)
	if !ok {
		return ast.Atom{}, false
	}
	return a.Atom, true
}

func mkAtom(loc ast.Location, a ast.Atom) expr.Atom {
	return expr.Atom{Location: loc, Atom: a}
}

// binary is the primitive table for built-in binary operators, dispatched
// by Eval1's first rule. env is only needed to resolve InfixFunc's named
// call.
func binary(env Env, op ast.Operator, e1, e2 expr.Expression, loc ast.Location) (expr.Expression, error) {
	switch op.Kind {
	case ast.Power:
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if !ok1 || !ok2 || a1.Kind != ast.AInt || a2.Kind != ast.AInt {
			return nil, BinaryOpError{op, e1, e2}
		}
		// i^0 = 1, i^negative = 1: replicate(j, i) is empty for j <= 0, and
		// product([]) = 1, kept as-is.
		result := int64(1)
		for k := int64(0); k < a2.Int; k++ {
			result *= a1.Int
		}
		return mkAtom(loc, ast.MkInt(result)), nil

	case ast.Mul, ast.Add, ast.Sub:
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if !ok1 || !ok2 || a1.Kind != ast.AInt || a2.Kind != ast.AInt {
			return nil, BinaryOpError{op, e1, e2}
		}
		var r int64
		switch op.Kind {
		case ast.Mul:
			r = a1.Int * a2.Int
		case ast.Add:
			r = a1.Int + a2.Int
		case ast.Sub:
			r = a1.Int - a2.Int
		}
		return mkAtom(loc, ast.MkInt(r)), nil

	case ast.Colon:
		lst, ok := e2.(expr.List)
		if !ok {
			return nil, BinaryOpError{op, e1, e2}
		}
		items := append([]expr.Expression{e1}, lst.Items...)
		return expr.List{Location: loc, Items: items}, nil

	case ast.Append:
		l1, ok1 := e1.(expr.List)
		l2, ok2 := e2.(expr.List)
		if !ok1 || !ok2 {
			return nil, BinaryOpError{op, e1, e2}
		}
		items := append(append([]expr.Expression{}, l1.Items...), l2.Items...)
		return expr.List{Location: loc, Items: items}, nil

	case ast.Equ, ast.Neq, ast.Lt, ast.Leq, ast.Gt, ast.Geq:
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if !ok1 || !ok2 || a1.Kind != a2.Kind || !a1.Kind.IsEnumerable() {
			return nil, BinaryOpError{op, e1, e2}
		}
		if op.Kind == ast.Equ {
			return mkAtom(loc, ast.MkBool(a1.Equal(a2))), nil
		}
		if op.Kind == ast.Neq {
			return mkAtom(loc, ast.MkBool(!a1.Equal(a2))), nil
		}
		cmp, ok := a1.Compare(a2)
		if !ok {
			return nil, BinaryOpError{op, e1, e2}
		}
		var r bool
		switch op.Kind {
		case ast.Lt:
			r = cmp < 0
		case ast.Leq:
			r = cmp <= 0
		case ast.Gt:
			r = cmp > 0
		case ast.Geq:
			r = cmp >= 0
		}
		return mkAtom(loc, ast.MkBool(r)), nil

	case ast.And:
		if a, ok := atomOf(e1); ok && a.Kind == ast.ABool && !a.Bool {
			return mkAtom(loc, ast.MkBool(false)), nil
		}
		if a, ok := atomOf(e2); ok && a.Kind == ast.ABool && !a.Bool {
			return mkAtom(loc, ast.MkBool(false)), nil
		}
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if ok1 && ok2 && a1.Kind == ast.ABool && a2.Kind == ast.ABool {
			return mkAtom(loc, ast.MkBool(a1.Bool && a2.Bool)), nil
		}
		return nil, BinaryOpError{op, e1, e2}

	case ast.Or:
		if a, ok := atomOf(e1); ok && a.Kind == ast.ABool && a.Bool {
			return mkAtom(loc, ast.MkBool(true)), nil
		}
		if a, ok := atomOf(e2); ok && a.Kind == ast.ABool && a.Bool {
			return mkAtom(loc, ast.MkBool(true)), nil
		}
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if ok1 && ok2 && a1.Kind == ast.ABool && a2.Kind == ast.ABool {
			return mkAtom(loc, ast.MkBool(a1.Bool || a2.Bool)), nil
		}
		return nil, BinaryOpError{op, e1, e2}

	case ast.Dollar:
		return expr.App{Location: loc, Head: e1, Args: []expr.Expression{e2}}, nil

	case ast.Composition:
		return nil, BinaryOpError{op, e1, e2}

	case ast.InfixFunc:
		return Apply(env, op.Name, []expr.Expression{e1, e2})

	case ast.InfixConstr:
		return expr.App{
			Location: loc,
			Head:     expr.Atom{Location: loc, Atom: ast.MkConstr(op.Name)},
			Args:     []expr.Expression{e1, e2},
		}, nil

	default:
		return nil, BinaryOpError{op, e1, e2}
	}
}

// unary implements the built-in unary operators: only Sub on an Int is
// defined.
func unary(op ast.Operator, e expr.Expression, loc ast.Location) (expr.Expression, error) {
	if op.Kind == ast.Sub {
		if a, ok := atomOf(e); ok && a.Kind == ast.AInt {
			return mkAtom(loc, ast.MkInt(-a.Int)), nil
		}
	}
	return nil, UnaryOpError{op, e}
}
