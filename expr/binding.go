package expr

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

// Binding is a raw pattern. A Name atom pattern binds unconditionally;
// every other Lit atom must match an equal atom.
type Binding interface {
	fmt.Stringer
	_binding()
	GetLocation() ast.Location
}

type Lit struct {
	ast.Location
	Atom ast.Atom
}

func (Lit) _binding()                  {}
func (b Lit) GetLocation() ast.Location { return b.Location }
func (b Lit) String() string            { return b.Atom.String() }

type ConsLit struct {
	ast.Location
	Head, Tail Binding
}

func (ConsLit) _binding()                  {}
func (b ConsLit) GetLocation() ast.Location { return b.Location }
func (b ConsLit) String() string            { return fmt.Sprintf("(%v:%v)", b.Head, b.Tail) }

type ListLit struct {
	ast.Location
	Items []Binding
}

func (ListLit) _binding()                  {}
func (b ListLit) GetLocation() ast.Location { return b.Location }
func (b ListLit) String() string            { return fmt.Sprintf("[%s]", common.Join(b.Items, ", ")) }

type NTupleLit struct {
	ast.Location
	Items []Binding
}

func (NTupleLit) _binding()                  {}
func (b NTupleLit) GetLocation() ast.Location { return b.Location }
func (b NTupleLit) String() string            { return fmt.Sprintf("(%s)", common.Join(b.Items, ", ")) }

// ConstrLit matches a user data constructor applied to sub-patterns.
type ConstrLit struct {
	ast.Location
	Name ast.Identifier
	Args []Binding
}

func (ConstrLit) _binding()                  {}
func (b ConstrLit) GetLocation() ast.Location { return b.Location }
func (b ConstrLit) String() string {
	if len(b.Args) == 0 {
		return string(b.Name)
	}
	return fmt.Sprintf("(%s %s)", b.Name, common.Join(b.Args, " "))
}

// Name extracts the bound identifier of a name-shaped Lit pattern (a Lit
// wrapping an ast.AName atom), which is the only Binding kind that
// introduces a variable unconditionally.
func Name(b Binding) (ast.Identifier, bool) {
	lit, ok := b.(Lit)
	if !ok || lit.Atom.Kind != ast.AName {
		return "", false
	}
	return lit.Atom.Name, true
}

func NamePattern(loc ast.Location, name ast.Identifier) Lit {
	return Lit{Location: loc, Atom: ast.MkName(name)}
}
