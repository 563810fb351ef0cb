package typed

// Children returns the direct sub-expressions of e in evaluation order,
// the typed-tree counterpart of expr.Children — used by
// index.CanonicalizeExpression's traversal and by any pass that needs to
// walk a solved tree uniformly.
func Children(e Expression) []Expression {
	switch n := e.(type) {
	case Atom:
		return nil
	case List:
		return n.Items
	case NTuple:
		return n.Items
	case Binary:
		return []Expression{n.Left, n.Right}
	case Unary:
		return []Expression{n.Expr}
	case SectL:
		return []Expression{n.Expr}
	case SectR:
		return []Expression{n.Expr}
	case PrefixOp:
		return nil
	case IfExpr:
		return []Expression{n.Cond, n.Then, n.Else}
	case ArithmSeq:
		cs := []Expression{n.Start}
		if n.Step != nil {
			cs = append(cs, n.Step)
		}
		if n.End != nil {
			cs = append(cs, n.End)
		}
		return cs
	case LetExpr:
		cs := make([]Expression, 0, len(n.Bindings)+1)
		for _, b := range n.Bindings {
			cs = append(cs, b.Expr)
		}
		return append(cs, n.Body)
	case Lambda:
		return []Expression{n.Body}
	case App:
		cs := make([]Expression, 0, len(n.Args)+1)
		cs = append(cs, n.Head)
		return append(cs, n.Args...)
	case ListComp:
		cs := []Expression{n.Head}
		for _, q := range n.Quals {
			switch qq := q.(type) {
			case Gen:
				cs = append(cs, qq.Expr)
			case LetQual:
				cs = append(cs, qq.Expr)
			case Guard:
				cs = append(cs, qq.Expr)
			}
		}
		return cs
	default:
		return nil
	}
}

// Rewrite performs a bottom-up rebuild of e, applying f to every node after
// its children have already been rewritten. Passes that need to inspect or
// replace a node's type post-unification (partial-typing localisation,
// enumerability checks) write a small `f` using GetType/WithType instead of
// a bespoke per-node-kind switch.
func Rewrite(e Expression, f func(Expression) Expression) Expression {
	switch n := e.(type) {
	case Atom:
		return f(n)
	case List:
		n.Items = rewriteAll(n.Items, f)
		return f(n)
	case NTuple:
		n.Items = rewriteAll(n.Items, f)
		return f(n)
	case Binary:
		n.Left, n.Right = Rewrite(n.Left, f), Rewrite(n.Right, f)
		return f(n)
	case Unary:
		n.Expr = Rewrite(n.Expr, f)
		return f(n)
	case SectL:
		n.Expr = Rewrite(n.Expr, f)
		return f(n)
	case SectR:
		n.Expr = Rewrite(n.Expr, f)
		return f(n)
	case PrefixOp:
		return f(n)
	case IfExpr:
		n.Cond, n.Then, n.Else = Rewrite(n.Cond, f), Rewrite(n.Then, f), Rewrite(n.Else, f)
		return f(n)
	case ArithmSeq:
		n.Start = Rewrite(n.Start, f)
		if n.Step != nil {
			n.Step = Rewrite(n.Step, f)
		}
		if n.End != nil {
			n.End = Rewrite(n.End, f)
		}
		return f(n)
	case LetExpr:
		for i, b := range n.Bindings {
			n.Bindings[i] = LetBinding{Location: b.Location, Binding: b.Binding, Expr: Rewrite(b.Expr, f)}
		}
		n.Body = Rewrite(n.Body, f)
		return f(n)
	case Lambda:
		n.Body = Rewrite(n.Body, f)
		return f(n)
	case App:
		n.Head = Rewrite(n.Head, f)
		n.Args = rewriteAll(n.Args, f)
		return f(n)
	case ListComp:
		for i, q := range n.Quals {
			switch qq := q.(type) {
			case Gen:
				n.Quals[i] = Gen{Location: qq.Location, Binding: qq.Binding, Expr: Rewrite(qq.Expr, f)}
			case LetQual:
				n.Quals[i] = LetQual{Location: qq.Location, Binding: qq.Binding, Expr: Rewrite(qq.Expr, f)}
			case Guard:
				n.Quals[i] = Guard{Location: qq.Location, Expr: Rewrite(qq.Expr, f)}
			}
		}
		n.Head = Rewrite(n.Head, f)
		return f(n)
	default:
		return f(e)
	}
}

func rewriteAll(es []Expression, f func(Expression) Expression) []Expression {
	out := make([]Expression, len(es))
	for i, e := range es {
		out[i] = Rewrite(e, f)
	}
	return out
}

// BindingChildren returns the direct sub-bindings of b.
func BindingChildren(b Binding) []Binding {
	switch n := b.(type) {
	case Lit:
		return nil
	case ConsLit:
		return []Binding{n.Head, n.Tail}
	case ListLit:
		return n.Items
	case NTupleLit:
		return n.Items
	case ConstrLit:
		return n.Args
	default:
		return nil
	}
}
