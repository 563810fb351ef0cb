package eval

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

// evalArithmSeq unfolds one step of an arithmetic sequence into either a
// Binary(Colon, head, continuation) or a terminating List. All of
// Start/Step/End must already be forced atoms; if not, the sequence cannot
// be reduced yet (the caller must navigate into whichever sub-expression
// is unforced first).
func evalArithmSeq(n expr.ArithmSeq) (expr.Expression, error) {
	startA, ok := atomOf(n.Start)
	if !ok || !startA.Kind.IsEnumerable() {
		return nil, CannotEvaluate{n}
	}
	var stepA, endA *ast.Atom
	if n.Step != nil {
		a, ok := atomOf(n.Step)
		if !ok {
			return nil, CannotEvaluate{n}
		}
		stepA = &a
	}
	if n.End != nil {
		a, ok := atomOf(n.End)
		if !ok {
			return nil, CannotEvaluate{n}
		}
		endA = &a
	}

	var head ast.Atom
	var cont *ast.Atom
	var okEnum bool
	switch {
	case stepA == nil && endA == nil:
		head, cont, okEnum = next(startA)
	case stepA == nil && endA != nil:
		head, cont, okEnum = nextTo(startA, *endA)
	case stepA != nil && endA == nil:
		head, cont, okEnum = nextStep(startA, *stepA)
	default:
		head, cont, okEnum = nextStepTo(startA, *stepA, *endA)
	}
	if !okEnum {
		return expr.List{Location: n.Location}, nil
	}
	headExpr := mkAtom(n.Location, head)
	if cont == nil {
		return expr.List{Location: n.Location, Items: []expr.Expression{headExpr}}, nil
	}
	contExpr := mkAtom(n.Location, *cont)

	continuation := expr.ArithmSeq{Location: n.Location, Start: contExpr, End: n.End}
	if stepA != nil {
		delta := stepA.Ordinal() - startA.Ordinal()
		continuation.Step = mkAtom(n.Location, ast.FromOrdinal(cont.Kind, cont.Ordinal()+delta))
	}
	return expr.Binary{Location: n.Location, Op: ast.Op(ast.Colon), Left: headExpr, Right: continuation}, nil
}
