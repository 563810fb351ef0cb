package infer

import "github.com/SRechenberger/clickyEvaluation/typed"

// checkEnums validates the "ArithmSeq element type must be Int, Bool or
// Char" invariant post-solve, once every node's Type is concrete: this
// can't be expressed as a Constraint (it is a membership check, not an
// equality), so it runs as a dedicated pass over the solved tree using
// typed.Rewrite's generic traverse. In partial mode the failure is embedded
// as a TError on the offending ArithmSeq node itself and the pass never
// fails; otherwise the first violation found aborts with NoInstanceOfEnum.
func checkEnums(e typed.Expression, partial bool) (typed.Expression, error) {
	var firstErr error
	out := typed.Rewrite(e, func(n typed.Expression) typed.Expression {
		seq, ok := n.(typed.ArithmSeq)
		if !ok {
			return n
		}
		lt, ok := seq.GetType().(*typed.TList)
		if !ok {
			return n
		}
		name := ""
		if con, ok := lt.Elem.(*typed.TCon); ok {
			name = con.Name
		}
		if name == "Int" || name == "Bool" || name == "Char" {
			return n
		}
		err := NoInstanceOfEnum{Type: lt.Elem}
		if partial {
			return n.WithType(&typed.TError{Err: normalize(err)})
		}
		if firstErr == nil {
			firstErr = err
		}
		return n
	})
	if partial {
		return out, nil
	}
	return out, firstErr
}

// markFailed overlays a TError, built from the recorded UnifyPartial
// failure, onto every node whose index appears in failed — the pass that
// turns a set of skipped constraints back into visible errors on the
// specific ancestor nodes that produced them.
func markFailed(e typed.Expression, failed map[uint32]error) typed.Expression {
	if len(failed) == 0 {
		return e
	}
	return typed.Rewrite(e, func(n typed.Expression) typed.Expression {
		if err, ok := failed[n.GetIndex()]; ok {
			return n.WithType(&typed.TError{Err: err})
		}
		return n
	})
}
