// Package index turns a raw expr tree into the typed tree that inference
// works over, assigning each node a dense NodeIndex from a caller-chosen
// base. Exposing the base lets a caller keep, e.g., a set of top-level
// definitions and a separately indexed focus expression in one continuous
// index space without collision. It also provides Strip, which erases
// indices back down once inference has consumed them.
package index

import (
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Indexer hands out consecutive NodeIndex values starting at a caller-given
// base. It is not safe for concurrent use; callers walk one tree at a time.
type Indexer struct {
	next uint32
}

func NewIndexer(base uint32) *Indexer {
	return &Indexer{next: base}
}

// Next reports the first index that has not yet been handed out.
func (ix *Indexer) Next() uint32 {
	return ix.next
}

func (ix *Indexer) alloc() uint32 {
	n := ix.next
	ix.next++
	return n
}

// Expression indexes e and every sub-expression, in evaluation order.
func (ix *Indexer) Expression(e expr.Expression) typed.Expression {
	idx := ix.alloc()
	meta := typed.Meta{Index: idx}
	switch n := e.(type) {
	case expr.Atom:
		return typed.Atom{Location: n.Location, Meta: meta, Atom: n.Atom}
	case expr.List:
		return typed.List{Location: n.Location, Meta: meta, Items: ix.expressions(n.Items)}
	case expr.NTuple:
		return typed.NTuple{Location: n.Location, Meta: meta, Items: ix.expressions(n.Items)}
	case expr.Binary:
		return typed.Binary{
			Location: n.Location, Meta: meta, OpMeta: typed.OpMeta{Op: n.Op},
			Left: ix.Expression(n.Left), Right: ix.Expression(n.Right),
		}
	case expr.Unary:
		return typed.Unary{Location: n.Location, Meta: meta, OpMeta: typed.OpMeta{Op: n.Op}, Expr: ix.Expression(n.Expr)}
	case expr.SectL:
		return typed.SectL{Location: n.Location, Meta: meta, OpMeta: typed.OpMeta{Op: n.Op}, Expr: ix.Expression(n.Expr)}
	case expr.SectR:
		return typed.SectR{Location: n.Location, Meta: meta, OpMeta: typed.OpMeta{Op: n.Op}, Expr: ix.Expression(n.Expr)}
	case expr.PrefixOp:
		return typed.PrefixOp{Location: n.Location, Meta: meta, OpMeta: typed.OpMeta{Op: n.Op}}
	case expr.IfExpr:
		return typed.IfExpr{
			Location: n.Location, Meta: meta,
			Cond: ix.Expression(n.Cond), Then: ix.Expression(n.Then), Else: ix.Expression(n.Else),
		}
	case expr.ArithmSeq:
		out := typed.ArithmSeq{Location: n.Location, Meta: meta, Start: ix.Expression(n.Start)}
		if n.Step != nil {
			out.Step = ix.Expression(n.Step)
		}
		if n.End != nil {
			out.End = ix.Expression(n.End)
		}
		return out
	case expr.LetExpr:
		bindings := make([]typed.LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			bindings[i] = typed.LetBinding{Location: b.Location, Binding: ix.Binding(b.Binding), Expr: ix.Expression(b.Expr)}
		}
		return typed.LetExpr{Location: n.Location, Meta: meta, Bindings: bindings, Body: ix.Expression(n.Body)}
	case expr.Lambda:
		return typed.Lambda{Location: n.Location, Meta: meta, Params: ix.bindings(n.Params), Body: ix.Expression(n.Body)}
	case expr.App:
		return typed.App{Location: n.Location, Meta: meta, Head: ix.Expression(n.Head), Args: ix.expressions(n.Args)}
	case expr.ListComp:
		quals := make([]typed.Qual, len(n.Quals))
		for i, q := range n.Quals {
			quals[i] = ix.Qual(q)
		}
		return typed.ListComp{Location: n.Location, Meta: meta, Head: ix.Expression(n.Head), Quals: quals}
	default:
		panic("index.Expression: unhandled expression kind")
	}
}

func (ix *Indexer) expressions(es []expr.Expression) []typed.Expression {
	out := make([]typed.Expression, len(es))
	for i, e := range es {
		out[i] = ix.Expression(e)
	}
	return out
}

// Binding indexes b and every sub-pattern.
func (ix *Indexer) Binding(b expr.Binding) typed.Binding {
	idx := ix.alloc()
	meta := typed.Meta{Index: idx}
	switch n := b.(type) {
	case expr.Lit:
		return typed.Lit{Location: n.Location, Meta: meta, Atom: n.Atom}
	case expr.ConsLit:
		return typed.ConsLit{Location: n.Location, Meta: meta, Head: ix.Binding(n.Head), Tail: ix.Binding(n.Tail)}
	case expr.ListLit:
		return typed.ListLit{Location: n.Location, Meta: meta, Items: ix.bindings(n.Items)}
	case expr.NTupleLit:
		return typed.NTupleLit{Location: n.Location, Meta: meta, Items: ix.bindings(n.Items)}
	case expr.ConstrLit:
		return typed.ConstrLit{Location: n.Location, Meta: meta, Name: n.Name, Args: ix.bindings(n.Args)}
	default:
		panic("index.Binding: unhandled binding kind")
	}
}

func (ix *Indexer) bindings(bs []expr.Binding) []typed.Binding {
	out := make([]typed.Binding, len(bs))
	for i, b := range bs {
		out[i] = ix.Binding(b)
	}
	return out
}

// Qual indexes one list-comprehension qualifier.
func (ix *Indexer) Qual(q expr.Qual) typed.Qual {
	switch n := q.(type) {
	case expr.Gen:
		return typed.Gen{Location: n.Location, Binding: ix.Binding(n.Binding), Expr: ix.Expression(n.Expr)}
	case expr.LetQual:
		return typed.LetQual{Location: n.Location, Binding: ix.Binding(n.Binding), Expr: ix.Expression(n.Expr)}
	case expr.Guard:
		return typed.Guard{Location: n.Location, Expr: ix.Expression(n.Expr)}
	default:
		panic("index.Qual: unhandled qualifier kind")
	}
}

// Def indexes one definition's parameters and body.
func (ix *Indexer) Def(d expr.Def) typed.Def {
	return typed.Def{Location: d.Location, Name: d.Name, Params: ix.bindings(d.Params), Body: ix.Expression(d.Body)}
}

// Index indexes e starting at base and reports the next free index, so a
// caller can index several trees (e.g. a program's definitions, then a
// separate focus expression) into one shared, non-overlapping index space.
func Index(base uint32, e expr.Expression) (typed.Expression, uint32) {
	ix := NewIndexer(base)
	out := ix.Expression(e)
	return out, ix.Next()
}

// IndexDefs indexes a whole definition list starting at base.
func IndexDefs(base uint32, defs []expr.Def) ([]typed.Def, uint32) {
	ix := NewIndexer(base)
	out := make([]typed.Def, len(defs))
	for i, d := range defs {
		out[i] = ix.Def(d)
	}
	return out, ix.Next()
}

// Strip zeroes the Index of every expression node in e, including the
// expressions inside let bindings and comprehension qualifiers, and leaves
// Type fields untouched. Binding patterns (lambda parameters, let and
// generator patterns) are not visited and keep the indices they were given.
func Strip(e typed.Expression) typed.Expression {
	switch n := e.(type) {
	case typed.Atom:
		n.Index = 0
		return n
	case typed.List:
		n.Index = 0
		n.Items = stripAll(n.Items)
		return n
	case typed.NTuple:
		n.Index = 0
		n.Items = stripAll(n.Items)
		return n
	case typed.Binary:
		n.Index = 0
		n.Left, n.Right = Strip(n.Left), Strip(n.Right)
		return n
	case typed.Unary:
		n.Index = 0
		n.Expr = Strip(n.Expr)
		return n
	case typed.SectL:
		n.Index = 0
		n.Expr = Strip(n.Expr)
		return n
	case typed.SectR:
		n.Index = 0
		n.Expr = Strip(n.Expr)
		return n
	case typed.PrefixOp:
		n.Index = 0
		return n
	case typed.IfExpr:
		n.Index = 0
		n.Cond, n.Then, n.Else = Strip(n.Cond), Strip(n.Then), Strip(n.Else)
		return n
	case typed.ArithmSeq:
		n.Index = 0
		n.Start = Strip(n.Start)
		if n.Step != nil {
			n.Step = Strip(n.Step)
		}
		if n.End != nil {
			n.End = Strip(n.End)
		}
		return n
	case typed.LetExpr:
		n.Index = 0
		for i, b := range n.Bindings {
			n.Bindings[i] = typed.LetBinding{Location: b.Location, Binding: b.Binding, Expr: Strip(b.Expr)}
		}
		n.Body = Strip(n.Body)
		return n
	case typed.Lambda:
		n.Index = 0
		n.Body = Strip(n.Body)
		return n
	case typed.App:
		n.Index = 0
		n.Head = Strip(n.Head)
		n.Args = stripAll(n.Args)
		return n
	case typed.ListComp:
		n.Index = 0
		n.Head = Strip(n.Head)
		quals := make([]typed.Qual, len(n.Quals))
		for i, q := range n.Quals {
			switch qq := q.(type) {
			case typed.Gen:
				quals[i] = typed.Gen{Location: qq.Location, Binding: qq.Binding, Expr: Strip(qq.Expr)}
			case typed.LetQual:
				quals[i] = typed.LetQual{Location: qq.Location, Binding: qq.Binding, Expr: Strip(qq.Expr)}
			case typed.Guard:
				quals[i] = typed.Guard{Location: qq.Location, Expr: Strip(qq.Expr)}
			default:
				quals[i] = q
			}
		}
		n.Quals = quals
		return n
	default:
		return e
	}
}

func stripAll(es []typed.Expression) []typed.Expression {
	out := make([]typed.Expression, len(es))
	for i, e := range es {
		out[i] = Strip(e)
	}
	return out
}
