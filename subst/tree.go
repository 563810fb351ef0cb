package subst

import (
	"github.com/SRechenberger/clickyEvaluation/common"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// ApplyExpression substitutes s into every Type/OpType annotation reachable
// from e, walking the whole tree so every node's meta is resolved before
// the next inference stage reads it.
func ApplyExpression(s Subst, e typed.Expression) typed.Expression {
	if e == nil {
		return nil
	}
	applyMeta := func(m typed.Meta) typed.Meta {
		if m.Type == nil {
			return m
		}
		return typed.Meta{Type: ApplyType(s, m.Type), Index: m.Index}
	}
	applyOpMeta := func(m typed.OpMeta) typed.OpMeta {
		if m.OpType == nil {
			return m
		}
		return typed.OpMeta{Op: m.Op, OpType: ApplyType(s, m.OpType)}
	}
	switch x := e.(type) {
	case typed.Atom:
		x.Meta = applyMeta(x.Meta)
		return x
	case typed.List:
		x.Meta = applyMeta(x.Meta)
		x.Items = common.Map(func(it typed.Expression) typed.Expression { return ApplyExpression(s, it) }, x.Items)
		return x
	case typed.NTuple:
		x.Meta = applyMeta(x.Meta)
		x.Items = common.Map(func(it typed.Expression) typed.Expression { return ApplyExpression(s, it) }, x.Items)
		return x
	case typed.Binary:
		x.Meta = applyMeta(x.Meta)
		x.OpMeta = applyOpMeta(x.OpMeta)
		x.Left = ApplyExpression(s, x.Left)
		x.Right = ApplyExpression(s, x.Right)
		return x
	case typed.Unary:
		x.Meta = applyMeta(x.Meta)
		x.OpMeta = applyOpMeta(x.OpMeta)
		x.Expr = ApplyExpression(s, x.Expr)
		return x
	case typed.SectL:
		x.Meta = applyMeta(x.Meta)
		x.OpMeta = applyOpMeta(x.OpMeta)
		x.Expr = ApplyExpression(s, x.Expr)
		return x
	case typed.SectR:
		x.Meta = applyMeta(x.Meta)
		x.OpMeta = applyOpMeta(x.OpMeta)
		x.Expr = ApplyExpression(s, x.Expr)
		return x
	case typed.PrefixOp:
		x.Meta = applyMeta(x.Meta)
		x.OpMeta = applyOpMeta(x.OpMeta)
		return x
	case typed.IfExpr:
		x.Meta = applyMeta(x.Meta)
		x.Cond = ApplyExpression(s, x.Cond)
		x.Then = ApplyExpression(s, x.Then)
		x.Else = ApplyExpression(s, x.Else)
		return x
	case typed.ArithmSeq:
		x.Meta = applyMeta(x.Meta)
		x.Start = ApplyExpression(s, x.Start)
		if x.Step != nil {
			x.Step = ApplyExpression(s, x.Step)
		}
		if x.End != nil {
			x.End = ApplyExpression(s, x.End)
		}
		return x
	case typed.LetExpr:
		x.Meta = applyMeta(x.Meta)
		x.Bindings = common.Map(func(b typed.LetBinding) typed.LetBinding {
			b.Binding = ApplyBinding(s, b.Binding)
			b.Expr = ApplyExpression(s, b.Expr)
			return b
		}, x.Bindings)
		x.Body = ApplyExpression(s, x.Body)
		return x
	case typed.Lambda:
		x.Meta = applyMeta(x.Meta)
		x.Params = common.Map(func(b typed.Binding) typed.Binding { return ApplyBinding(s, b) }, x.Params)
		x.Body = ApplyExpression(s, x.Body)
		return x
	case typed.App:
		x.Meta = applyMeta(x.Meta)
		x.Head = ApplyExpression(s, x.Head)
		x.Args = common.Map(func(a typed.Expression) typed.Expression { return ApplyExpression(s, a) }, x.Args)
		return x
	case typed.ListComp:
		x.Meta = applyMeta(x.Meta)
		x.Head = ApplyExpression(s, x.Head)
		x.Quals = common.Map(func(q typed.Qual) typed.Qual { return ApplyQual(s, q) }, x.Quals)
		return x
	default:
		panic(common.SystemError{Message: "subst.ApplyExpression: unhandled expression node"})
	}
}

// ApplyBinding substitutes s into every Type annotation reachable from b.
func ApplyBinding(s Subst, b typed.Binding) typed.Binding {
	if b == nil {
		return nil
	}
	applyMeta := func(m typed.Meta) typed.Meta {
		if m.Type == nil {
			return m
		}
		return typed.Meta{Type: ApplyType(s, m.Type), Index: m.Index}
	}
	switch x := b.(type) {
	case typed.Lit:
		x.Meta = applyMeta(x.Meta)
		return x
	case typed.ConsLit:
		x.Meta = applyMeta(x.Meta)
		x.Head = ApplyBinding(s, x.Head)
		x.Tail = ApplyBinding(s, x.Tail)
		return x
	case typed.ListLit:
		x.Meta = applyMeta(x.Meta)
		x.Items = common.Map(func(it typed.Binding) typed.Binding { return ApplyBinding(s, it) }, x.Items)
		return x
	case typed.NTupleLit:
		x.Meta = applyMeta(x.Meta)
		x.Items = common.Map(func(it typed.Binding) typed.Binding { return ApplyBinding(s, it) }, x.Items)
		return x
	case typed.ConstrLit:
		x.Meta = applyMeta(x.Meta)
		x.Args = common.Map(func(a typed.Binding) typed.Binding { return ApplyBinding(s, a) }, x.Args)
		return x
	default:
		panic(common.SystemError{Message: "subst.ApplyBinding: unhandled binding node"})
	}
}

// ApplyQual substitutes s into every Type annotation reachable from q.
func ApplyQual(s Subst, q typed.Qual) typed.Qual {
	switch x := q.(type) {
	case typed.Gen:
		x.Binding = ApplyBinding(s, x.Binding)
		x.Expr = ApplyExpression(s, x.Expr)
		return x
	case typed.LetQual:
		x.Binding = ApplyBinding(s, x.Binding)
		x.Expr = ApplyExpression(s, x.Expr)
		return x
	case typed.Guard:
		x.Expr = ApplyExpression(s, x.Expr)
		return x
	default:
		panic(common.SystemError{Message: "subst.ApplyQual: unhandled qualifier node"})
	}
}

// ApplyDef substitutes s into d's body and params, and refreshes its
// solved scheme if one has already been recorded.
func ApplyDef(s Subst, d typed.Def) typed.Def {
	d.Params = common.Map(func(b typed.Binding) typed.Binding { return ApplyBinding(s, b) }, d.Params)
	d.Body = ApplyExpression(s, d.Body)
	if d.Scheme != nil {
		sch := ApplyScheme(s, *d.Scheme)
		d.Scheme = &sch
	}
	return d
}
