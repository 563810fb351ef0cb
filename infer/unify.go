package infer

import (
	"github.com/SRechenberger/clickyEvaluation/subst"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Unify solves one type equality: Unknown unifies with anything, TError (an
// already-failed subtree) likewise so its failure does not cascade into a
// second, misleading error; a Var binds unless the occurs check fires;
// arrows unify parts left-to-right, composing substitutions; Con/List/
// Tuple/Cons unify structurally; anything else fails.
func Unify(t1, t2 typed.Type) (subst.Subst, error) {
	if _, ok := t1.(*typed.TUnknown); ok {
		return subst.Null(), nil
	}
	if _, ok := t2.(*typed.TUnknown); ok {
		return subst.Null(), nil
	}
	if _, ok := t1.(*typed.TError); ok {
		return subst.Null(), nil
	}
	if _, ok := t2.(*typed.TError); ok {
		return subst.Null(), nil
	}
	if v, ok := t1.(*typed.TVar); ok {
		return bindVar(v.Name, t2)
	}
	if v, ok := t2.(*typed.TVar); ok {
		return bindVar(v.Name, t1)
	}
	switch a := t1.(type) {
	case *typed.TCon:
		b, ok := t2.(*typed.TCon)
		if ok && a.Name == b.Name {
			return subst.Null(), nil
		}
		return nil, UnificationFail{T1: t1, T2: t2}
	case *typed.TArr:
		b, ok := t2.(*typed.TArr)
		if !ok {
			return nil, UnificationFail{T1: t1, T2: t2}
		}
		s1, err := Unify(a.From, b.From)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(subst.ApplyType(s1, a.To), subst.ApplyType(s1, b.To))
		if err != nil {
			return nil, err
		}
		return subst.Compose(s2, s1), nil
	case *typed.TList:
		b, ok := t2.(*typed.TList)
		if !ok {
			return nil, UnificationFail{T1: t1, T2: t2}
		}
		return Unify(a.Elem, b.Elem)
	case *typed.TTuple:
		b, ok := t2.(*typed.TTuple)
		if !ok || len(a.Items) != len(b.Items) {
			return nil, UnificationFail{T1: t1, T2: t2}
		}
		return UnifyAllTypes(a.Items, b.Items)
	case *typed.TCons:
		b, ok := t2.(*typed.TCons)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return nil, UnificationFail{T1: t1, T2: t2}
		}
		return UnifyAllTypes(a.Args, b.Args)
	default:
		return nil, UnificationFail{T1: t1, T2: t2}
	}
}

func bindVar(name string, t typed.Type) (subst.Subst, error) {
	if v, ok := t.(*typed.TVar); ok && v.Name == name {
		return subst.Null(), nil
	}
	if OccursCheck(name, t) {
		return nil, InfiniteType{Var: name, Type: t}
	}
	return subst.Singleton(name, t), nil
}

// OccursCheck reports whether name appears free in t, guarding against
// building an infinite type by binding a variable to a term that contains it.
func OccursCheck(name string, t typed.Type) bool {
	for _, v := range subst.FtvType(t) {
		if v == name {
			return true
		}
	}
	return false
}

// UnifyAllTypes unifies as[i] with bs[i] pointwise, threading the running
// substitution through each step so earlier bindings apply to later pairs.
func UnifyAllTypes(as, bs []typed.Type) (subst.Subst, error) {
	s := subst.Null()
	for i := range as {
		a := subst.ApplyType(s, as[i])
		b := subst.ApplyType(s, bs[i])
		s2, err := Unify(a, b)
		if err != nil {
			return nil, err
		}
		s = subst.Compose(s2, s)
	}
	return s, nil
}

// UnifyAll solves cs in order, applying the substitution accumulated so far
// to each constraint before unifying it, and aborts at the first failure —
// the strict-mode solver used by TypeTree and BuildTypeEnv.
func UnifyAll(cs []Constraint) (subst.Subst, error) {
	s := subst.Null()
	for _, c := range cs {
		l := subst.ApplyType(s, c.Lhs)
		r := subst.ApplyType(s, c.Rhs)
		s2, err := Unify(l, r)
		if err != nil {
			return nil, normalize(err)
		}
		s = subst.Compose(s2, s)
	}
	return s, nil
}

// UnifyPartial solves cs the same way but never aborts: a failing
// constraint is recorded against its Origin node (first failure per origin
// wins) and skipped, so solving continues for the rest — the mechanism
// TypeTreePartial relies on to keep typing siblings of a failed subtree.
func UnifyPartial(cs []Constraint) (subst.Subst, map[uint32]error) {
	s := subst.Null()
	failed := map[uint32]error{}
	for _, c := range cs {
		l := subst.ApplyType(s, c.Lhs)
		r := subst.ApplyType(s, c.Rhs)
		s2, err := Unify(l, r)
		if err != nil {
			if _, exists := failed[c.Origin]; !exists {
				failed[c.Origin] = normalize(err)
			}
			continue
		}
		s = subst.Compose(s2, s)
	}
	return s, failed
}
