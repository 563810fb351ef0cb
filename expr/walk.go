package expr

// Children returns the direct sub-expressions of e in evaluation order,
// needed by path-directed navigation to locate the next reducible node.
// A LetExpr lists its bound expressions first and its body last; a ListComp
// lists its head first, followed by the expressions of its qualifiers.
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
		cs = append(cs, n.Body)
		return cs
	case Lambda:
		return []Expression{n.Body}
	case App:
		cs := make([]Expression, 0, len(n.Args)+1)
		cs = append(cs, n.Head)
		cs = append(cs, n.Args...)
		return cs
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
