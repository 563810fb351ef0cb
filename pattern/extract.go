package pattern

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// TypeConstraint is a deferred equality obligation produced while
// extracting a typed binding, resolved later by the caller's unifier (for
// example, ConsLit(h, t) forces t's element type equal to h's type).
// Keeping it as data rather than unifying inline avoids an import cycle
// back into the inferencer.
type TypeConstraint struct {
	Lhs, Rhs typed.Type
	Origin   ast.Location
}

// ExtractBinding turns a raw binding into a typed one plus the fresh
// type-variable environment it introduces: a Name pattern gets a fresh Var
// and a singleton mapping; literal patterns fix the type to the literal's
// Con; ConsLit/ListLit/NTupleLit recurse and constrain their parts. fresh
// must return a distinct *typed.TVar on each call.
func ExtractBinding(fresh func() *typed.TVar, p expr.Binding) (typed.Binding, map[ast.Identifier]typed.Type, []TypeConstraint) {
	switch pt := p.(type) {
	case expr.Lit:
		if name, ok := expr.Name(pt); ok {
			tv := fresh()
			return typed.Lit{Location: pt.Location, Meta: typed.Meta{Type: tv}, Atom: pt.Atom},
				map[ast.Identifier]typed.Type{name: tv}, nil
		}
		return typed.Lit{Location: pt.Location, Meta: typed.Meta{Type: atomConType(pt.Atom)}, Atom: pt.Atom}, nil, nil

	case expr.ConsLit:
		headT, headEnv, headC := ExtractBinding(fresh, pt.Head)
		tailT, tailEnv, tailC := ExtractBinding(fresh, pt.Tail)
		elem := headT.GetType()
		listT := &typed.TList{Elem: elem}
		cs := append(headC, tailC...)
		cs = append(cs, TypeConstraint{Lhs: tailT.GetType(), Rhs: listT, Origin: pt.Location})
		return typed.ConsLit{Location: pt.Location, Meta: typed.Meta{Type: listT}, Head: headT, Tail: tailT},
			mergeTypeEnv(headEnv, tailEnv), cs

	case expr.ListLit:
		elem := typed.Type(fresh())
		items := make([]typed.Binding, len(pt.Items))
		env := map[ast.Identifier]typed.Type{}
		var cs []TypeConstraint
		for i, sub := range pt.Items {
			t, e, c := ExtractBinding(fresh, sub)
			items[i] = t
			env = mergeTypeEnv(env, e)
			cs = append(cs, c...)
			cs = append(cs, TypeConstraint{Lhs: t.GetType(), Rhs: elem, Origin: sub.GetLocation()})
		}
		return typed.ListLit{Location: pt.Location, Meta: typed.Meta{Type: &typed.TList{Elem: elem}}, Items: items}, env, cs

	case expr.NTupleLit:
		items := make([]typed.Binding, len(pt.Items))
		itemTypes := make([]typed.Type, len(pt.Items))
		env := map[ast.Identifier]typed.Type{}
		var cs []TypeConstraint
		for i, sub := range pt.Items {
			t, e, c := ExtractBinding(fresh, sub)
			items[i] = t
			itemTypes[i] = t.GetType()
			env = mergeTypeEnv(env, e)
			cs = append(cs, c...)
		}
		return typed.NTupleLit{Location: pt.Location, Meta: typed.Meta{Type: &typed.TTuple{Items: itemTypes}}, Items: items}, env, cs

	case expr.ConstrLit:
		args := make([]typed.Binding, len(pt.Args))
		env := map[ast.Identifier]typed.Type{}
		var cs []TypeConstraint
		for i, sub := range pt.Args {
			t, e, c := ExtractBinding(fresh, sub)
			args[i] = t
			env = mergeTypeEnv(env, e)
			cs = append(cs, c...)
		}
		tv := fresh()
		return typed.ConstrLit{Location: pt.Location, Meta: typed.Meta{Type: tv}, Name: pt.Name, Args: args}, env, cs

	default:
		panic("pattern.ExtractBinding: unhandled binding kind")
	}
}

func atomConType(a ast.Atom) typed.Type {
	switch a.Kind {
	case ast.AInt:
		return typed.TInt
	case ast.ABool:
		return typed.TBool
	case ast.AChar:
		return typed.TChar
	default:
		return &typed.TUnknown{}
	}
}

func mergeTypeEnv(dst, src map[ast.Identifier]typed.Type) map[ast.Identifier]typed.Type {
	if dst == nil {
		dst = map[ast.Identifier]typed.Type{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
