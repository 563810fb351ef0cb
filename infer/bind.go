package infer

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// bindType extracts a fresh-variable environment and constraint set from an
// already-indexed typed.Binding tree, reimplementing pattern.ExtractBinding's
// recursion directly over typed.Binding instead of reusing it: the Index
// index.Index assigned to each node must survive into the returned
// typed.Binding unchanged, since constraint-origin attribution and
// partial-typing localisation both key off it, and pattern.ExtractBinding
// builds fresh nodes with no notion of an index to preserve. A Name pattern
// gets a fresh Var and a singleton
// mapping; literal patterns fix the type to the literal's Con; ConsLit
// forces the tail's element type equal to the head's; ListLit/NTupleLit
// recurse and unify pointwise; ConstrLit looks up the constructor's scheme
// in the environment and unifies its arrow chain against the sub-patterns.
func (ctx *Context) bindType(b typed.Binding) (typed.Binding, map[ast.Identifier]typed.Type, []Constraint, error) {
	switch pt := b.(type) {
	case typed.Lit:
		if pt.Atom.Kind == ast.AName {
			tv := ctx.fresh()
			return typed.Lit{Location: pt.Location, Meta: typed.Meta{Type: tv, Index: pt.Index}, Atom: pt.Atom},
				map[ast.Identifier]typed.Type{pt.Atom.Name: tv}, nil, nil
		}
		t := atomConType(pt.Atom)
		return typed.Lit{Location: pt.Location, Meta: typed.Meta{Type: t, Index: pt.Index}, Atom: pt.Atom}, nil, nil, nil

	case typed.ConsLit:
		headB, headEnv, headC, err := ctx.bindType(pt.Head)
		if err != nil {
			return nil, nil, nil, err
		}
		tailB, tailEnv, tailC, err := ctx.bindType(pt.Tail)
		if err != nil {
			return nil, nil, nil, err
		}
		listT := &typed.TList{Elem: headB.GetType()}
		cs := append(headC, tailC...)
		cs = append(cs, Constraint{Lhs: tailB.GetType(), Rhs: listT, Origin: pt.Index})
		return typed.ConsLit{Location: pt.Location, Meta: typed.Meta{Type: listT, Index: pt.Index}, Head: headB, Tail: tailB},
			mergeEnv(headEnv, tailEnv), cs, nil

	case typed.ListLit:
		elem := typed.Type(ctx.fresh())
		items := make([]typed.Binding, len(pt.Items))
		env := map[ast.Identifier]typed.Type{}
		var cs []Constraint
		for i, sub := range pt.Items {
			itemB, itemEnv, itemC, err := ctx.bindType(sub)
			if err != nil {
				return nil, nil, nil, err
			}
			items[i] = itemB
			env = mergeEnv(env, itemEnv)
			cs = append(cs, itemC...)
			cs = append(cs, Constraint{Lhs: itemB.GetType(), Rhs: elem, Origin: pt.Index})
		}
		return typed.ListLit{Location: pt.Location, Meta: typed.Meta{Type: &typed.TList{Elem: elem}, Index: pt.Index}, Items: items},
			env, cs, nil

	case typed.NTupleLit:
		items := make([]typed.Binding, len(pt.Items))
		itemTypes := make([]typed.Type, len(pt.Items))
		env := map[ast.Identifier]typed.Type{}
		var cs []Constraint
		for i, sub := range pt.Items {
			itemB, itemEnv, itemC, err := ctx.bindType(sub)
			if err != nil {
				return nil, nil, nil, err
			}
			items[i] = itemB
			itemTypes[i] = itemB.GetType()
			env = mergeEnv(env, itemEnv)
			cs = append(cs, itemC...)
		}
		return typed.NTupleLit{Location: pt.Location, Meta: typed.Meta{Type: &typed.TTuple{Items: itemTypes}, Index: pt.Index}, Items: items},
			env, cs, nil

	case typed.ConstrLit:
		args := make([]typed.Binding, len(pt.Args))
		argTypes := make([]typed.Type, len(pt.Args))
		env := map[ast.Identifier]typed.Type{}
		var cs []Constraint
		for i, sub := range pt.Args {
			argB, argEnv, argC, err := ctx.bindType(sub)
			if err != nil {
				return nil, nil, nil, err
			}
			args[i] = argB
			argTypes[i] = argB.GetType()
			env = mergeEnv(env, argEnv)
			cs = append(cs, argC...)
		}
		sch, ok := ctx.Env.Lookup(pt.Name)
		if !ok {
			return nil, nil, nil, UnknownDataConstructor{Name: pt.Name}
		}
		ct := ctx.instantiate(sch)
		cur := ct
		for range argTypes {
			at, ok := cur.(*typed.TArr)
			if !ok {
				return nil, nil, nil, PatternMismatch{Binding: pt, Type: ct}
			}
			cur = at.To
		}
		if _, more := cur.(*typed.TArr); more {
			return nil, nil, nil, PatternMismatch{Binding: pt, Type: ct}
		}
		result := ctx.fresh()
		expected := typed.Type(result)
		for i := len(argTypes) - 1; i >= 0; i-- {
			expected = &typed.TArr{From: argTypes[i], To: expected}
		}
		cs = append(cs, Constraint{Lhs: ct, Rhs: expected, Origin: pt.Index})
		return typed.ConstrLit{Location: pt.Location, Meta: typed.Meta{Type: result, Index: pt.Index}, Name: pt.Name, Args: args},
			env, cs, nil

	default:
		panic("infer.bindType: unhandled binding kind")
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

func mergeEnv(dst, src map[ast.Identifier]typed.Type) map[ast.Identifier]typed.Type {
	if dst == nil {
		dst = map[ast.Identifier]typed.Type{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// schemesOf lifts a binding environment's fresh, still-unsolved types into
// monomorphic schemes so it can extend a typed.TypeEnv: pattern variables
// are never generalised at their binding site, only defs are (via
// Generalize in BuildTypeEnv).
func schemesOf(env map[ast.Identifier]typed.Type) map[ast.Identifier]typed.Scheme {
	out := make(map[ast.Identifier]typed.Scheme, len(env))
	for k, v := range env {
		out[k] = typed.Scheme{Type: v}
	}
	return out
}

// bindingNames returns every name bound by b, the typed-tree analogue of
// pattern.Names.
func bindingNames(b typed.Binding) []ast.Identifier {
	switch pt := b.(type) {
	case typed.Lit:
		if pt.Atom.Kind == ast.AName {
			return []ast.Identifier{pt.Atom.Name}
		}
		return nil
	case typed.ConsLit:
		return append(bindingNames(pt.Head), bindingNames(pt.Tail)...)
	case typed.ListLit:
		var out []ast.Identifier
		for _, sub := range pt.Items {
			out = append(out, bindingNames(sub)...)
		}
		return out
	case typed.NTupleLit:
		var out []ast.Identifier
		for _, sub := range pt.Items {
			out = append(out, bindingNames(sub)...)
		}
		return out
	case typed.ConstrLit:
		var out []ast.Identifier
		for _, sub := range pt.Args {
			out = append(out, bindingNames(sub)...)
		}
		return out
	default:
		return nil
	}
}

// overlapAll reports the first name bound more than once across bs, the
// typed-tree analogue of pattern.Overlap, used to enforce the "pattern
// variables are unique within a single clause/lambda head" invariant.
func overlapAll(bs []typed.Binding) (ast.Identifier, bool) {
	seen := map[ast.Identifier]bool{}
	for _, b := range bs {
		for _, n := range bindingNames(b) {
			if seen[n] {
				return n, true
			}
			seen[n] = true
		}
	}
	return "", false
}
