package ast

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Atom is the closed set of leaf values. Only one of the fields is
// meaningful, selected by Kind — an interface-with-marker-method sum type
// would cost us the compact, comparable value semantics Atom needs (Atom
// is compared pointwise a lot; a plain struct keeps that a single
// `==`-friendly comparison instead of a type switch).
type AtomKind int

const (
	AInt AtomKind = iota
	ABool
	AChar
	AName
	AConstr
)

func (k AtomKind) String() string {
	switch k {
	case AInt:
		return "Int"
	case ABool:
		return "Bool"
	case AChar:
		return "Char"
	case AName:
		return "Name"
	case AConstr:
		return "Constr"
	default:
		return "?"
	}
}

type Atom struct {
	Kind AtomKind
	Int  int64
	Bool bool
	Char rune
	Name Identifier
}

func MkInt(i int64) Atom     { return Atom{Kind: AInt, Int: i} }
func MkBool(b bool) Atom     { return Atom{Kind: ABool, Bool: b} }
func MkChar(c rune) Atom     { return Atom{Kind: AChar, Char: c} }
func MkName(n Identifier) Atom {
	return Atom{Kind: AName, Name: n}
}
func MkConstr(n Identifier) Atom {
	return Atom{Kind: AConstr, Name: n}
}

func (a Atom) String() string {
	switch a.Kind {
	case AInt:
		return fmt.Sprintf("%d", a.Int)
	case ABool:
		return fmt.Sprintf("%t", a.Bool)
	case AChar:
		return fmt.Sprintf("%q", a.Char)
	case AName:
		return string(a.Name)
	case AConstr:
		return string(a.Name)
	default:
		return "?"
	}
}

// Equal compares two atoms pointwise; Name and Constr compare by string.
func (a Atom) Equal(b Atom) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AInt:
		return a.Int == b.Int
	case ABool:
		return a.Bool == b.Bool
	case AChar:
		return a.Char == b.Char
	case AName, AConstr:
		return a.Name == b.Name
	default:
		return false
	}
}

// Compare orders two atoms of the same kind; ok is false for atoms whose
// kind admits no total order (Name, Constr) or for mismatched kinds.
func (a Atom) Compare(b Atom) (cmp int, ok bool) {
	if a.Kind != b.Kind {
		return 0, false
	}
	switch a.Kind {
	case AInt:
		return compareOrdered(a.Int, b.Int), true
	case ABool:
		return compareOrdered(boolRank(a.Bool), boolRank(b.Bool)), true
	case AChar:
		return compareOrdered(a.Char, b.Char), true
	default:
		return 0, false
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolRank(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

// IsEnumerable reports whether an atom's base type admits arithmetic
// sequence enumeration.
func (k AtomKind) IsEnumerable() bool {
	return k == AInt || k == ABool || k == AChar
}

// Ordinal maps an enumerable atom onto its position in its base type's
// natural order, so eval's arithmetic-sequence unfolder can enumerate
// Int/Bool/Char with one generic algorithm instead of three.
func (a Atom) Ordinal() int64 {
	switch a.Kind {
	case AInt:
		return a.Int
	case ABool:
		return int64(boolRank(a.Bool))
	case AChar:
		return int64(a.Char)
	default:
		panic("ast.Atom.Ordinal: not an enumerable atom")
	}
}

// FromOrdinal is Ordinal's inverse for the given kind.
func FromOrdinal(kind AtomKind, n int64) Atom {
	switch kind {
	case AInt:
		return MkInt(n)
	case ABool:
		return MkBool(n != 0)
	case AChar:
		return MkChar(rune(n))
	default:
		panic("ast.FromOrdinal: not an enumerable kind")
	}
}

// Bounds returns the inclusive ordinal range of kind's base type.
func Bounds(kind AtomKind) (min, max int64) {
	switch kind {
	case AInt:
		return math.MinInt64, math.MaxInt64
	case ABool:
		return 0, 1
	case AChar:
		return 0, 0x10FFFF
	default:
		panic("ast.Bounds: not an enumerable kind")
	}
}
