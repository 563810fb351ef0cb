package typed

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

// Expression is the typed counterpart of expr.Expression: every node embeds
// Meta (its own Type plus a transient NodeIndex), and operator-bearing nodes
// additionally embed OpMeta so the resolved operator carries its own
// instantiated type alongside the raw ast.Operator tag.
type Expression interface {
	fmt.Stringer
	_expression()
	GetLocation() ast.Location
	GetType() Type
	GetIndex() uint32
	WithType(t Type) Expression
}

// OpMeta is the "(Op, optional type)" operator payload of the type tree:
// Op is the resolved operator, OpType is nil until infer.Generate has
// instantiated its scheme (e.g. `+`'s Int -> Int -> Int).
type OpMeta struct {
	Op     ast.Operator
	OpType Type
}

type Atom struct {
	ast.Location
	Meta
	Atom ast.Atom
}

func (Atom) _expression()                  {}
func (e Atom) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e Atom) GetLocation() ast.Location { return e.Location }
func (e Atom) String() string            { return e.Atom.String() }

type List struct {
	ast.Location
	Meta
	Items []Expression
}

func (List) _expression()                  {}
func (e List) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e List) GetLocation() ast.Location { return e.Location }
func (e List) String() string            { return fmt.Sprintf("[%s]", common.Join(e.Items, ", ")) }

type NTuple struct {
	ast.Location
	Meta
	Items []Expression
}

func (NTuple) _expression()                  {}
func (e NTuple) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e NTuple) GetLocation() ast.Location { return e.Location }
func (e NTuple) String() string            { return fmt.Sprintf("(%s)", common.Join(e.Items, ", ")) }

type Binary struct {
	ast.Location
	Meta
	OpMeta
	Left, Right Expression
}

func (Binary) _expression()                  {}
func (e Binary) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e Binary) GetLocation() ast.Location { return e.Location }
func (e Binary) String() string            { return fmt.Sprintf("(%v %v %v)", e.Left, e.Op, e.Right) }

type Unary struct {
	ast.Location
	Meta
	OpMeta
	Expr Expression
}

func (Unary) _expression()                  {}
func (e Unary) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e Unary) GetLocation() ast.Location { return e.Location }
func (e Unary) String() string            { return fmt.Sprintf("(%v%v)", e.Op, e.Expr) }

type SectL struct {
	ast.Location
	Meta
	OpMeta
	Expr Expression
}

func (SectL) _expression()                  {}
func (e SectL) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e SectL) GetLocation() ast.Location { return e.Location }
func (e SectL) String() string            { return fmt.Sprintf("(%v %v)", e.Expr, e.Op) }

type SectR struct {
	ast.Location
	Meta
	OpMeta
	Expr Expression
}

func (SectR) _expression()                  {}
func (e SectR) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e SectR) GetLocation() ast.Location { return e.Location }
func (e SectR) String() string            { return fmt.Sprintf("(%v %v)", e.Op, e.Expr) }

type PrefixOp struct {
	ast.Location
	Meta
	OpMeta
}

func (PrefixOp) _expression()                  {}
func (e PrefixOp) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e PrefixOp) GetLocation() ast.Location { return e.Location }
func (e PrefixOp) String() string            { return fmt.Sprintf("(%v)", e.Op) }

type IfExpr struct {
	ast.Location
	Meta
	Cond, Then, Else Expression
}

func (IfExpr) _expression()                  {}
func (e IfExpr) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e IfExpr) GetLocation() ast.Location { return e.Location }
func (e IfExpr) String() string {
	return fmt.Sprintf("if %v then %v else %v", e.Cond, e.Then, e.Else)
}

type ArithmSeq struct {
	ast.Location
	Meta
	Start     Expression
	Step, End Expression
}

func (ArithmSeq) _expression()                  {}
func (e ArithmSeq) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e ArithmSeq) GetLocation() ast.Location { return e.Location }
func (e ArithmSeq) String() string {
	s := fmt.Sprintf("%v", e.Start)
	if e.Step != nil {
		s += fmt.Sprintf(",%v", e.Step)
	}
	s += ".."
	if e.End != nil {
		s += fmt.Sprintf("%v", e.End)
	}
	return "[" + s + "]"
}

type LetBinding struct {
	ast.Location
	Binding Binding
	Expr    Expression
}

func (b LetBinding) String() string { return fmt.Sprintf("%v = %v", b.Binding, b.Expr) }

type LetExpr struct {
	ast.Location
	Meta
	Bindings []LetBinding
	Body     Expression
}

func (LetExpr) _expression()                  {}
func (e LetExpr) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e LetExpr) GetLocation() ast.Location { return e.Location }
func (e LetExpr) String() string {
	return fmt.Sprintf("let %s in %v", common.Join(letBindingStringers(e.Bindings), "; "), e.Body)
}

func letBindingStringers(bs []LetBinding) []fmt.Stringer {
	out := make([]fmt.Stringer, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}

type Lambda struct {
	ast.Location
	Meta
	Params []Binding
	Body   Expression
}

func (Lambda) _expression()                  {}
func (e Lambda) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e Lambda) GetLocation() ast.Location { return e.Location }
func (e Lambda) String() string {
	return fmt.Sprintf("(\\%s -> %v)", common.Join(e.Params, " "), e.Body)
}

type App struct {
	ast.Location
	Meta
	Head Expression
	Args []Expression
}

func (App) _expression()                  {}
func (e App) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e App) GetLocation() ast.Location { return e.Location }
func (e App) String() string            { return fmt.Sprintf("(%v %s)", e.Head, common.Join(e.Args, " ")) }

type ListComp struct {
	ast.Location
	Meta
	Head  Expression
	Quals []Qual
}

func (ListComp) _expression()                  {}
func (e ListComp) WithType(t Type) Expression { e.Meta.Type = t; return e }
func (e ListComp) GetLocation() ast.Location { return e.Location }
func (e ListComp) String() string {
	return fmt.Sprintf("[%v | %s]", e.Head, common.Join(e.Quals, ", "))
}
