package typed

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

// Binding is the typed counterpart of expr.Binding: every node additionally
// carries a Type (nil until infer's bindType visits it) and,
// transiently, a NodeIndex.
type Binding interface {
	fmt.Stringer
	_binding()
	GetLocation() ast.Location
	GetType() Type
	GetIndex() uint32
}

type Meta struct {
	Type  Type
	Index uint32
}

func (m Meta) GetType() Type    { return m.Type }
func (m Meta) GetIndex() uint32 { return m.Index }

type Lit struct {
	ast.Location
	Meta
	Atom ast.Atom
}

func (Lit) _binding()      {}
func (b Lit) GetLocation() ast.Location { return b.Location }
func (b Lit) String() string            { return b.Atom.String() }

type ConsLit struct {
	ast.Location
	Meta
	Head, Tail Binding
}

func (ConsLit) _binding()      {}
func (b ConsLit) GetLocation() ast.Location { return b.Location }
func (b ConsLit) String() string            { return fmt.Sprintf("(%v:%v)", b.Head, b.Tail) }

type ListLit struct {
	ast.Location
	Meta
	Items []Binding
}

func (ListLit) _binding()      {}
func (b ListLit) GetLocation() ast.Location { return b.Location }
func (b ListLit) String() string            { return fmt.Sprintf("[%s]", common.Join(b.Items, ", ")) }

type NTupleLit struct {
	ast.Location
	Meta
	Items []Binding
}

func (NTupleLit) _binding()      {}
func (b NTupleLit) GetLocation() ast.Location { return b.Location }
func (b NTupleLit) String() string            { return fmt.Sprintf("(%s)", common.Join(b.Items, ", ")) }

type ConstrLit struct {
	ast.Location
	Meta
	Name ast.Identifier
	Args []Binding
}

func (ConstrLit) _binding()      {}
func (b ConstrLit) GetLocation() ast.Location { return b.Location }
func (b ConstrLit) String() string {
	if len(b.Args) == 0 {
		return string(b.Name)
	}
	return fmt.Sprintf("(%s %s)", b.Name, common.Join(b.Args, " "))
}
