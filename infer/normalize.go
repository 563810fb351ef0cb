package infer

import "github.com/SRechenberger/clickyEvaluation/index"

// normalize renames the free type variables embedded in a type error to
// the canonical a, b, c, ... alphabet before it crosses back out of this
// package, so two runs that solve the same program differently (internal
// variable numbering aside) still report identical-looking errors.
func normalize(err error) error {
	switch e := err.(type) {
	case UnificationFail:
		return UnificationFail{T1: index.CanonicalizeType(e.T1), T2: index.CanonicalizeType(e.T2)}
	case InfiniteType:
		return InfiniteType{Var: e.Var, Type: index.CanonicalizeType(e.Type)}
	case NoInstanceOfEnum:
		return NoInstanceOfEnum{Type: index.CanonicalizeType(e.Type)}
	case PatternMismatch:
		return PatternMismatch{Binding: e.Binding, Type: index.CanonicalizeType(e.Type)}
	default:
		return err
	}
}
