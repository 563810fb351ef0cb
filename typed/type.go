// Package typed is the type-annotated expression tree. Every node here
// carries a Type field (nilable — nil before inference has visited it) and
// an Index that index.Index assigns before constraint generation. The Index
// gives constraints a stable handle on the node that generated them;
// TypeTreePartial's markFailed pass reads it after unification to put
// recorded failures back onto their nodes, and index.Strip zeroes it.
package typed

import (
	"fmt"
	"strings"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

// Type is a Hindley-Milner type term. Free-variable discovery and
// substitution live in package subst rather than as methods here, since
// Go cannot add methods to a type declared in another package and the
// substitution machinery needs to stay generic over the whole Type family.
type Type interface {
	fmt.Stringer
	_type()
}

type TVar struct {
	Name string
}

func (*TVar) _type()        {}
func (t *TVar) String() string { return t.Name }

type TCon struct {
	Name string
}

func (*TCon) _type()        {}
func (t *TCon) String() string { return t.Name }

var (
	TInt  = &TCon{Name: "Int"}
	TBool = &TCon{Name: "Bool"}
	TChar = &TCon{Name: "Char"}
)

type TArr struct {
	From, To Type
}

func (*TArr) _type() {}
func (t *TArr) String() string {
	if _, ok := t.From.(*TArr); ok {
		return fmt.Sprintf("(%v) -> %v", t.From, t.To)
	}
	return fmt.Sprintf("%v -> %v", t.From, t.To)
}

type TList struct {
	Elem Type
}

func (*TList) _type()        {}
func (t *TList) String() string { return fmt.Sprintf("[%v]", t.Elem) }

type TTuple struct {
	Items []Type
}

func (*TTuple) _type() {}
func (t *TTuple) String() string {
	return fmt.Sprintf("(%s)", common.Join(stringers(t.Items), ", "))
}

// TCons is a user-declared ADT applied to its type arguments.
type TCons struct {
	Name Identifier
	Args []Type
}

func (*TCons) _type() {}
func (t *TCons) String() string {
	if len(t.Args) == 0 {
		return string(t.Name)
	}
	return fmt.Sprintf("%s %s", t.Name, strings.Join(mapString(t.Args), " "))
}

// TError wraps a solved-so-far type error so it can travel as a Type value
// in a partially-typed tree, localizing the failure to the node that caused
// it instead of aborting the whole pass.
type TError struct {
	Err error
}

func (*TError) _type()        {}
func (t *TError) String() string { return fmt.Sprintf("<type error: %v>", t.Err) }

// TUnknown stands for "no information yet"; it unifies with anything.
type TUnknown struct{}

func (*TUnknown) _type()        {}
func (t *TUnknown) String() string { return "?" }

type Identifier = ast.Identifier

func stringers[T fmt.Stringer](xs []T) []fmt.Stringer {
	out := make([]fmt.Stringer, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func mapString(ts []Type) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		s := t.String()
		if _, isArr := t.(*TArr); isArr {
			s = "(" + s + ")"
		}
		if c, isCons := t.(*TCons); isCons && len(c.Args) > 0 {
			s = "(" + s + ")"
		}
		out[i] = s
	}
	return out
}

// EqualsTo is a structural equality check on two types; unification does
// not call it.
func EqualsTo(a, b Type) bool {
	switch x := a.(type) {
	case *TVar:
		y, ok := b.(*TVar)
		return ok && x.Name == y.Name
	case *TCon:
		y, ok := b.(*TCon)
		return ok && x.Name == y.Name
	case *TArr:
		y, ok := b.(*TArr)
		return ok && EqualsTo(x.From, y.From) && EqualsTo(x.To, y.To)
	case *TList:
		y, ok := b.(*TList)
		return ok && EqualsTo(x.Elem, y.Elem)
	case *TTuple:
		y, ok := b.(*TTuple)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !EqualsTo(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *TCons:
		y, ok := b.(*TCons)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !EqualsTo(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *TUnknown:
		_, ok := b.(*TUnknown)
		return ok
	case *TError:
		_, ok := b.(*TError)
		return ok
	default:
		return false
	}
}

// Scheme is a type universally quantified over Vars.
type Scheme struct {
	Vars []string
	Type Type
}

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Type.String()
	}
	return fmt.Sprintf("forall %s. %v", strings.Join(s.Vars, " "), s.Type)
}
