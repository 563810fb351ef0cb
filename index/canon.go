package index

import (
	"github.com/SRechenberger/clickyEvaluation/subst"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// renamer hands out a, b, ..., z, aa, ab, ... names in first-appearance
// order, a base-26 letter alphabet so canonicalized signatures read the
// way textbook Hindley-Milner output does (`a -> b` rather than `t0 ->
// t1`).
type renamer struct {
	next    int
	mapping map[string]string
}

func newRenamer() *renamer {
	return &renamer{mapping: map[string]string{}}
}

func (r *renamer) rename(old string) string {
	if n, ok := r.mapping[old]; ok {
		return n
	}
	n := letterName(r.next)
	r.next++
	r.mapping[old] = n
	return n
}

func letterName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	i++
	var out []byte
	for i > 0 {
		i--
		out = append([]byte{letters[i%26]}, out...)
		i /= 26
	}
	return string(out)
}

// CanonicalizeType renames every free variable of t to a, b, c, ... in the
// order subst.FtvType first encounters them, so two types that differ only
// in variable naming compare equal after canonicalizing both.
func CanonicalizeType(t typed.Type) typed.Type {
	s, _ := canonicalSubst(subst.FtvType(t), newRenamer())
	return subst.ApplyType(s, t)
}

// CanonicalizeScheme renames a scheme's own quantified variables (in the
// order they're listed) rather than its remaining free variables, since a
// scheme's Vars are exactly the ones bound by its forall.
func CanonicalizeScheme(sch typed.Scheme) typed.Scheme {
	s, newVars := canonicalSubst(sch.Vars, newRenamer())
	return typed.Scheme{Vars: newVars, Type: subst.ApplyType(s, sch.Type)}
}

func canonicalSubst(vars []string, r *renamer) (subst.Subst, []string) {
	s := subst.Null()
	newVars := make([]string, len(vars))
	for i, v := range vars {
		nv := r.rename(v)
		newVars[i] = nv
		s[v] = &typed.TVar{Name: nv}
	}
	return s, newVars
}

// CanonicalizeExpression renames every free type variable appearing
// anywhere in e's Meta.Type/OpMeta.OpType fields consistently, using
// first-appearance order over a pre-order walk of the tree. Two solved
// trees that differ only by a systematic renaming of type variables become
// syntactically identical after this pass, which is what makes doctest-style
// comparisons of typeTree output in the test suite meaningful.
func CanonicalizeExpression(e typed.Expression) typed.Expression {
	r := newRenamer()
	order := treeFtvOrder(e, nil)
	s, _ := canonicalSubst(order, r)
	return subst.ApplyExpression(s, e)
}

func treeFtvOrder(e typed.Expression, acc []string) []string {
	if e == nil {
		return acc
	}
	if t := e.GetType(); t != nil {
		acc = appendNew(acc, subst.FtvType(t))
	}
	if op, ok := opTypeOf(e); ok && op != nil {
		acc = appendNew(acc, subst.FtvType(op))
	}
	for _, c := range typed.Children(e) {
		acc = treeFtvOrder(c, acc)
	}
	return acc
}

func opTypeOf(e typed.Expression) (typed.Type, bool) {
	switch n := e.(type) {
	case typed.Binary:
		return n.OpType, true
	case typed.Unary:
		return n.OpType, true
	case typed.SectL:
		return n.OpType, true
	case typed.SectR:
		return n.OpType, true
	case typed.PrefixOp:
		return n.OpType, true
	default:
		return nil, false
	}
}

func appendNew(acc []string, vars []string) []string {
	seen := map[string]bool{}
	for _, v := range acc {
		seen[v] = true
	}
	for _, v := range vars {
		if !seen[v] {
			acc = append(acc, v)
			seen[v] = true
		}
	}
	return acc
}
