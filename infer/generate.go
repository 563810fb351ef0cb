package infer

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Generate is the constraint-generation phase: at every node a fresh type
// variable is allocated where the node's shape calls for one, and a
// constraint tying it to the node's inferred type is emitted, tagged with
// the node's own index.
// Extra constraints describing what a composite node expects of its
// children (IfExpr's branches, List's elements, App's argument/result
// relationship, ...) always carry the composite node's own Index as
// Origin, never the child's — this is what lets a downstream unification
// failure localise onto the ancestor that turns out inconsistent instead of
// onto an individually well-typed leaf, matching the IfExpr(1,2,3)
// scenario where the root gets the TypeError while every child keeps its
// own well-typed Int.
func (ctx *Context) Generate(e typed.Expression) (typed.Expression, []Constraint, error) {
	switch n := e.(type) {
	case typed.Atom:
		return ctx.generateAtom(n)

	case typed.List:
		elem := typed.Type(ctx.fresh())
		items := make([]typed.Expression, len(n.Items))
		var cs []Constraint
		for i, it := range n.Items {
			itT, itC, err := ctx.genChild(it)
			if err != nil {
				return e, nil, err
			}
			items[i] = itT
			cs = append(cs, itC...)
			cs = append(cs, Constraint{Lhs: itT.GetType(), Rhs: elem, Origin: n.Index})
		}
		out := typed.List{Location: n.Location, Meta: typed.Meta{Type: &typed.TList{Elem: elem}, Index: n.Index}, Items: items}
		return out, cs, nil

	case typed.NTuple:
		items := make([]typed.Expression, len(n.Items))
		itemTypes := make([]typed.Type, len(n.Items))
		var cs []Constraint
		for i, it := range n.Items {
			itT, itC, err := ctx.genChild(it)
			if err != nil {
				return e, nil, err
			}
			items[i] = itT
			itemTypes[i] = itT.GetType()
			cs = append(cs, itC...)
		}
		out := typed.NTuple{Location: n.Location, Meta: typed.Meta{Type: &typed.TTuple{Items: itemTypes}, Index: n.Index}, Items: items}
		return out, cs, nil

	case typed.Binary:
		opT, err := ctx.opType(n.Op)
		if err != nil {
			return e, nil, err
		}
		leftT, leftC, err := ctx.genChild(n.Left)
		if err != nil {
			return e, nil, err
		}
		rightT, rightC, err := ctx.genChild(n.Right)
		if err != nil {
			return e, nil, err
		}
		tv := ctx.fresh()
		cs := append(leftC, rightC...)
		cs = append(cs, Constraint{
			Lhs: opT, Rhs: arr(leftT.GetType(), rightT.GetType(), tv), Origin: n.Index,
		})
		out := typed.Binary{
			Location: n.Location, Meta: typed.Meta{Type: tv, Index: n.Index},
			OpMeta: typed.OpMeta{Op: n.Op, OpType: opT}, Left: leftT, Right: rightT,
		}
		return out, cs, nil

	case typed.Unary:
		opT, err := ctx.unaryOpType(n.Op)
		if err != nil {
			return e, nil, err
		}
		exprT, exprC, err := ctx.genChild(n.Expr)
		if err != nil {
			return e, nil, err
		}
		tv := ctx.fresh()
		cs := append(exprC, Constraint{Lhs: opT, Rhs: arr(exprT.GetType(), tv), Origin: n.Index})
		out := typed.Unary{
			Location: n.Location, Meta: typed.Meta{Type: tv, Index: n.Index},
			OpMeta: typed.OpMeta{Op: n.Op, OpType: opT}, Expr: exprT,
		}
		return out, cs, nil

	case typed.SectL:
		opT, err := ctx.opType(n.Op)
		if err != nil {
			return e, nil, err
		}
		exprT, exprC, err := ctx.genChild(n.Expr)
		if err != nil {
			return e, nil, err
		}
		a, b, c := ctx.fresh(), ctx.fresh(), ctx.fresh()
		cs := append(exprC,
			Constraint{Lhs: opT, Rhs: arr(a, b, c), Origin: n.Index},
			Constraint{Lhs: exprT.GetType(), Rhs: a, Origin: n.Index},
		)
		out := typed.SectL{
			Location: n.Location, Meta: typed.Meta{Type: arr(b, c), Index: n.Index},
			OpMeta: typed.OpMeta{Op: n.Op, OpType: opT}, Expr: exprT,
		}
		return out, cs, nil

	case typed.SectR:
		opT, err := ctx.opType(n.Op)
		if err != nil {
			return e, nil, err
		}
		exprT, exprC, err := ctx.genChild(n.Expr)
		if err != nil {
			return e, nil, err
		}
		a, b, c := ctx.fresh(), ctx.fresh(), ctx.fresh()
		cs := append(exprC,
			Constraint{Lhs: opT, Rhs: arr(a, b, c), Origin: n.Index},
			Constraint{Lhs: exprT.GetType(), Rhs: b, Origin: n.Index},
		)
		out := typed.SectR{
			Location: n.Location, Meta: typed.Meta{Type: arr(a, c), Index: n.Index},
			OpMeta: typed.OpMeta{Op: n.Op, OpType: opT}, Expr: exprT,
		}
		return out, cs, nil

	case typed.PrefixOp:
		opT, err := ctx.opType(n.Op)
		if err != nil {
			return e, nil, err
		}
		out := typed.PrefixOp{Location: n.Location, Meta: typed.Meta{Type: opT, Index: n.Index}, OpMeta: typed.OpMeta{Op: n.Op, OpType: opT}}
		return out, nil, nil

	case typed.IfExpr:
		condT, condC, err := ctx.genChild(n.Cond)
		if err != nil {
			return e, nil, err
		}
		thenT, thenC, err := ctx.genChild(n.Then)
		if err != nil {
			return e, nil, err
		}
		elseT, elseC, err := ctx.genChild(n.Else)
		if err != nil {
			return e, nil, err
		}
		tv := ctx.fresh()
		cs := append(condC, thenC...)
		cs = append(cs, elseC...)
		cs = append(cs,
			Constraint{Lhs: condT.GetType(), Rhs: typed.TBool, Origin: n.Index},
			Constraint{Lhs: thenT.GetType(), Rhs: tv, Origin: n.Index},
			Constraint{Lhs: elseT.GetType(), Rhs: tv, Origin: n.Index},
		)
		out := typed.IfExpr{Location: n.Location, Meta: typed.Meta{Type: tv, Index: n.Index}, Cond: condT, Then: thenT, Else: elseT}
		return out, cs, nil

	case typed.ArithmSeq:
		ts := typed.Type(ctx.fresh())
		startT, startC, err := ctx.genChild(n.Start)
		if err != nil {
			return e, nil, err
		}
		cs := append(startC, Constraint{Lhs: startT.GetType(), Rhs: ts, Origin: n.Index})
		out := typed.ArithmSeq{Location: n.Location, Meta: typed.Meta{Type: &typed.TList{Elem: ts}, Index: n.Index}, Start: startT}
		if n.Step != nil {
			stepT, stepC, err := ctx.genChild(n.Step)
			if err != nil {
				return e, nil, err
			}
			cs = append(cs, stepC...)
			cs = append(cs, Constraint{Lhs: stepT.GetType(), Rhs: ts, Origin: n.Index})
			out.Step = stepT
		}
		if n.End != nil {
			endT, endC, err := ctx.genChild(n.End)
			if err != nil {
				return e, nil, err
			}
			cs = append(cs, endC...)
			cs = append(cs, Constraint{Lhs: endT.GetType(), Rhs: ts, Origin: n.Index})
			out.End = endT
		}
		return out, cs, nil

	case typed.LetExpr:
		if name, dup := overlapAll(bindingsOf(n.Bindings)); dup {
			return e, nil, UnknownError{Msg: "Conflicting definitions for '" + string(name) + "'"}
		}
		var cs []Constraint
		patterns := make([]typed.Binding, len(n.Bindings))
		envAll := map[ast.Identifier]typed.Type{}
		for i, b := range n.Bindings {
			pb, penv, pc, err := ctx.bindType(b.Binding)
			if err != nil {
				return e, nil, err
			}
			patterns[i] = pb
			envAll = mergeEnv(envAll, penv)
			cs = append(cs, pc...)
		}
		subEnv := ctx.Env.ExtendMany(schemesOf(envAll))
		subCtx := ctx.withEnv(subEnv)
		bindings := make([]typed.LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			rhsT, rhsC, err := subCtx.genChild(b.Expr)
			if err != nil {
				return e, nil, err
			}
			cs = append(cs, rhsC...)
			cs = append(cs, Constraint{Lhs: patterns[i].GetType(), Rhs: rhsT.GetType(), Origin: n.Index})
			bindings[i] = typed.LetBinding{Location: b.Location, Binding: patterns[i], Expr: rhsT}
		}
		bodyT, bodyC, err := subCtx.genChild(n.Body)
		if err != nil {
			return e, nil, err
		}
		cs = append(cs, bodyC...)
		out := typed.LetExpr{Location: n.Location, Meta: typed.Meta{Type: bodyT.GetType(), Index: n.Index}, Bindings: bindings, Body: bodyT}
		return out, cs, nil

	case typed.Lambda:
		if name, dup := overlapAll(n.Params); dup {
			return e, nil, UnknownError{Msg: "Conflicting definitions for '" + string(name) + "'"}
		}
		var cs []Constraint
		params := make([]typed.Binding, len(n.Params))
		paramTypes := make([]typed.Type, len(n.Params))
		envAll := map[ast.Identifier]typed.Type{}
		for i, p := range n.Params {
			pb, penv, pc, err := ctx.bindType(p)
			if err != nil {
				return e, nil, err
			}
			params[i] = pb
			paramTypes[i] = pb.GetType()
			cs = append(cs, pc...)
			envAll = mergeEnv(envAll, penv)
		}
		bodyEnv := ctx.Env.ExtendMany(schemesOf(envAll))
		bodyT, bodyC, err := ctx.withEnv(bodyEnv).genChild(n.Body)
		if err != nil {
			return e, nil, err
		}
		cs = append(cs, bodyC...)
		t := bodyT.GetType()
		for i := len(paramTypes) - 1; i >= 0; i-- {
			t = &typed.TArr{From: paramTypes[i], To: t}
		}
		out := typed.Lambda{Location: n.Location, Meta: typed.Meta{Type: t, Index: n.Index}, Params: params, Body: bodyT}
		return out, cs, nil

	case typed.App:
		headT, cs, err := ctx.genChild(n.Head)
		if err != nil {
			return e, nil, err
		}
		curT := headT.GetType()
		args := make([]typed.Expression, len(n.Args))
		for i, a := range n.Args {
			argT, argC, err := ctx.genChild(a)
			if err != nil {
				return e, nil, err
			}
			cs = append(cs, argC...)
			args[i] = argT
			tv := ctx.fresh()
			cs = append(cs, Constraint{Lhs: curT, Rhs: &typed.TArr{From: argT.GetType(), To: tv}, Origin: n.Index})
			curT = tv
		}
		out := typed.App{Location: n.Location, Meta: typed.Meta{Type: curT, Index: n.Index}, Head: headT, Args: args}
		return out, cs, nil

	case typed.ListComp:
		env := ctx.Env
		var cs []Constraint
		quals := make([]typed.Qual, len(n.Quals))
		for i, q := range n.Quals {
			qOut, qC, newEnv, err := ctx.withEnv(env).generateQual(q, n.Index)
			if err != nil {
				return e, nil, err
			}
			quals[i] = qOut
			cs = append(cs, qC...)
			env = newEnv
		}
		headT, headC, err := ctx.withEnv(env).genChild(n.Head)
		if err != nil {
			return e, nil, err
		}
		cs = append(cs, headC...)
		out := typed.ListComp{Location: n.Location, Meta: typed.Meta{Type: &typed.TList{Elem: headT.GetType()}, Index: n.Index}, Head: headT, Quals: quals}
		return out, cs, nil

	default:
		panic("infer.Generate: unhandled expression kind")
	}
}

func (ctx *Context) generateAtom(n typed.Atom) (typed.Expression, []Constraint, error) {
	var t typed.Type
	switch n.Atom.Kind {
	case ast.ABool:
		t = typed.TBool
	case ast.AChar:
		t = typed.TChar
	case ast.AInt:
		t = typed.TInt
	case ast.AName:
		if n.Atom.Name == "div" || n.Atom.Name == "mod" {
			t = arr(typed.TInt, typed.TInt, typed.TInt)
		} else {
			sch, ok := ctx.Env.Lookup(n.Atom.Name)
			if !ok {
				return n, nil, UnboundVariable{Name: n.Atom.Name}
			}
			t = ctx.instantiate(sch)
		}
	case ast.AConstr:
		sch, ok := ctx.Env.Lookup(n.Atom.Name)
		if !ok {
			return n, nil, UnknownDataConstructor{Name: n.Atom.Name}
		}
		t = ctx.instantiate(sch)
	default:
		panic("infer.generateAtom: unhandled atom kind")
	}
	return n.WithType(t), nil, nil
}

// genChild generates e's type, and in partial mode converts a generation
// failure into a TError embedded on e's own root instead of letting it
// propagate — the mechanism that keeps typing independent siblings after
// one subtree turns out ill-formed.
func (ctx *Context) genChild(e typed.Expression) (typed.Expression, []Constraint, error) {
	te, cs, err := ctx.Generate(e)
	if err != nil {
		if ctx.partial {
			return e.WithType(&typed.TError{Err: normalize(err)}), nil, nil
		}
		return e, nil, err
	}
	return te, cs, nil
}

func (ctx *Context) generateQual(q typed.Qual, origin uint32) (typed.Qual, []Constraint, typed.TypeEnv, error) {
	switch qq := q.(type) {
	case typed.Gen:
		exprT, exprC, err := ctx.genChild(qq.Expr)
		if err != nil {
			return q, nil, ctx.Env, err
		}
		pb, penv, pc, err := ctx.bindType(qq.Binding)
		if err != nil {
			return q, nil, ctx.Env, err
		}
		elem := typed.Type(ctx.fresh())
		cs := append(exprC, pc...)
		cs = append(cs,
			Constraint{Lhs: exprT.GetType(), Rhs: &typed.TList{Elem: elem}, Origin: origin},
			Constraint{Lhs: pb.GetType(), Rhs: elem, Origin: origin},
		)
		out := typed.Gen{Location: qq.Location, Binding: pb, Expr: exprT}
		return out, cs, ctx.Env.ExtendMany(schemesOf(penv)), nil

	case typed.LetQual:
		exprT, exprC, err := ctx.genChild(qq.Expr)
		if err != nil {
			return q, nil, ctx.Env, err
		}
		pb, penv, pc, err := ctx.bindType(qq.Binding)
		if err != nil {
			return q, nil, ctx.Env, err
		}
		cs := append(exprC, pc...)
		cs = append(cs, Constraint{Lhs: pb.GetType(), Rhs: exprT.GetType(), Origin: origin})
		out := typed.LetQual{Location: qq.Location, Binding: pb, Expr: exprT}
		return out, cs, ctx.Env.ExtendMany(schemesOf(penv)), nil

	case typed.Guard:
		exprT, exprC, err := ctx.genChild(qq.Expr)
		if err != nil {
			return q, nil, ctx.Env, err
		}
		cs := append(exprC, Constraint{Lhs: exprT.GetType(), Rhs: typed.TBool, Origin: origin})
		out := typed.Guard{Location: qq.Location, Expr: exprT}
		return out, cs, ctx.Env, nil

	default:
		panic("infer.generateQual: unhandled qualifier kind")
	}
}

// opType instantiates op's type scheme with fresh variables per use site.
// Comparison and equality operators are given a single shared operand type
// rather than an Ord/Eq constraint; this language has no type-class
// dictionaries to resolve one against.
func (ctx *Context) opType(op ast.Operator) (typed.Type, error) {
	switch op.Kind {
	case ast.Composition:
		a, b, c := ctx.fresh(), ctx.fresh(), ctx.fresh()
		return arr(arr(b, c), arr(a, b), arr(a, c)), nil
	case ast.Power, ast.Mul, ast.Add, ast.Sub:
		return arr(typed.TInt, typed.TInt, typed.TInt), nil
	case ast.Colon:
		a := typed.Type(ctx.fresh())
		return arr(a, &typed.TList{Elem: a}, &typed.TList{Elem: a}), nil
	case ast.Append:
		lt := &typed.TList{Elem: ctx.fresh()}
		return arr(lt, lt, lt), nil
	case ast.Equ, ast.Neq, ast.Lt, ast.Leq, ast.Gt, ast.Geq:
		a := typed.Type(ctx.fresh())
		return arr(a, a, typed.TBool), nil
	case ast.And, ast.Or:
		return arr(typed.TBool, typed.TBool, typed.TBool), nil
	case ast.Dollar:
		a, b := ctx.fresh(), ctx.fresh()
		return arr(arr(a, b), a, b), nil
	case ast.InfixFunc:
		sch, ok := ctx.Env.Lookup(op.Name)
		if !ok {
			return nil, UnboundVariable{Name: op.Name}
		}
		return ctx.instantiate(sch), nil
	case ast.InfixConstr:
		sch, ok := ctx.Env.Lookup(op.Name)
		if !ok {
			return nil, UnknownDataConstructor{Name: op.Name}
		}
		return ctx.instantiate(sch), nil
	default:
		panic("infer.opType: unhandled operator kind")
	}
}

// unaryOpType handles the one built-in prefix operator (integer negation)
// plus a user function used prefix.
func (ctx *Context) unaryOpType(op ast.Operator) (typed.Type, error) {
	switch op.Kind {
	case ast.Sub:
		return arr(typed.TInt, typed.TInt), nil
	case ast.InfixFunc:
		sch, ok := ctx.Env.Lookup(op.Name)
		if !ok {
			return nil, UnboundVariable{Name: op.Name}
		}
		return ctx.instantiate(sch), nil
	default:
		return nil, UnknownError{Msg: "operator " + op.String() + " cannot be used prefix"}
	}
}

// arr builds the right-associated arrow chain ts[0] -> ts[1] -> ... -> ts[n-1].
func arr(ts ...typed.Type) typed.Type {
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = &typed.TArr{From: ts[i], To: t}
	}
	return t
}

func bindingsOf(bs []typed.LetBinding) []typed.Binding {
	out := make([]typed.Binding, len(bs))
	for i, b := range bs {
		out[i] = b.Binding
	}
	return out
}
