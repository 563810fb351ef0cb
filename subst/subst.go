// Package subst is the substitution core: a finite map from type-variable
// name to Type, composition obeying the left-biased law, and Apply/Ftv over
// every syntactic category that can mention a type variable. Kept here as
// free functions rather than methods on typed.Type, since Go cannot attach
// methods to a type declared in a different package.
package subst

import (
	"github.com/SRechenberger/clickyEvaluation/common"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Subst maps a type-variable name to the type it stands for.
type Subst map[string]typed.Type

// Null is the identity substitution.
func Null() Subst { return Subst{} }

// Singleton builds the substitution {name -> t}.
func Singleton(name string, t typed.Type) Subst {
	return Subst{name: t}
}

// Compose returns the substitution equivalent to applying s2 first, then
// s1: for every binding in s2, s1 is applied to its right-hand side; then
// s1's own bindings are added, overwriting any collision — s1 wins.
func Compose(s1, s2 Subst) Subst {
	out := make(Subst, len(s1)+len(s2))
	for k, v := range s2 {
		out[k] = ApplyType(s1, v)
	}
	for k, v := range s1 {
		out[k] = v
	}
	return out
}

// ApplyType substitutes every free variable of t per s.
func ApplyType(s Subst, t typed.Type) typed.Type {
	switch x := t.(type) {
	case *typed.TVar:
		if r, ok := s[x.Name]; ok {
			return r
		}
		return x
	case *typed.TCon:
		return x
	case *typed.TArr:
		return &typed.TArr{From: ApplyType(s, x.From), To: ApplyType(s, x.To)}
	case *typed.TList:
		return &typed.TList{Elem: ApplyType(s, x.Elem)}
	case *typed.TTuple:
		return &typed.TTuple{Items: common.Map(func(it typed.Type) typed.Type { return ApplyType(s, it) }, x.Items)}
	case *typed.TCons:
		return &typed.TCons{Name: x.Name, Args: common.Map(func(it typed.Type) typed.Type { return ApplyType(s, it) }, x.Args)}
	case *typed.TError, *typed.TUnknown:
		return x
	default:
		panic(common.SystemError{Message: "subst.ApplyType: unhandled type node"})
	}
}

// FtvType returns the free type variables of t, in first-appearance order.
func FtvType(t typed.Type) []string {
	switch x := t.(type) {
	case *typed.TVar:
		return []string{x.Name}
	case *typed.TCon:
		return nil
	case *typed.TArr:
		return common.Uniq(append(FtvType(x.From), FtvType(x.To)...))
	case *typed.TList:
		return FtvType(x.Elem)
	case *typed.TTuple:
		var out []string
		for _, it := range x.Items {
			out = append(out, FtvType(it)...)
		}
		return common.Uniq(out)
	case *typed.TCons:
		var out []string
		for _, a := range x.Args {
			out = append(out, FtvType(a)...)
		}
		return common.Uniq(out)
	case *typed.TError, *typed.TUnknown:
		return nil
	default:
		panic(common.SystemError{Message: "subst.FtvType: unhandled type node"})
	}
}

// ApplyScheme applies s to sch's body, leaving sch's own quantified
// variables untouched: they are locally bound, not free, so any binding
// for them in s is removed before recursing to respect that shadowing.
func ApplyScheme(s Subst, sch typed.Scheme) typed.Scheme {
	restricted := make(Subst, len(s))
	for k, v := range s {
		if !contains(sch.Vars, k) {
			restricted[k] = v
		}
	}
	return typed.Scheme{Vars: sch.Vars, Type: ApplyType(restricted, sch.Type)}
}

// FtvScheme returns sch's free variables: its body's, minus the quantified ones.
func FtvScheme(sch typed.Scheme) []string {
	bound := make(map[string]bool, len(sch.Vars))
	for _, v := range sch.Vars {
		bound[v] = true
	}
	var out []string
	for _, v := range FtvType(sch.Type) {
		if !bound[v] {
			out = append(out, v)
		}
	}
	return out
}

// ApplyEnv applies s to every scheme bound in env.
func ApplyEnv(s Subst, env typed.TypeEnv) typed.TypeEnv {
	out := typed.NewTypeEnv()
	for name, sch := range env {
		out = out.Extend(name, ApplyScheme(s, sch))
	}
	return out
}

// FtvEnv returns the union of every free variable bound anywhere in env.
func FtvEnv(env typed.TypeEnv) []string {
	var out []string
	for _, sch := range env {
		out = append(out, FtvScheme(sch)...)
	}
	return common.Uniq(out)
}

func contains(xs []string, x string) bool {
	for _, e := range xs {
		if e == x {
			return true
		}
	}
	return false
}
