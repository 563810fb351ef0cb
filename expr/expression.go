// Package expr is the raw expression tree produced by the parser: no type
// annotations yet, just the syntax shape. Package typed holds the parallel
// tree once inference has attached a Type to every node; keeping the two
// as sibling interface-based packages rather than one generic tree
// parameterized over its payload keeps each stage's node kinds concrete
// and easy to switch over.
package expr

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

type Expression interface {
	fmt.Stringer
	_expression()
	GetLocation() ast.Location
}

type Atom struct {
	ast.Location
	Atom ast.Atom
}

func (Atom) _expression()                  {}
func (e Atom) GetLocation() ast.Location { return e.Location }
func (e Atom) String() string            { return e.Atom.String() }

type List struct {
	ast.Location
	Items []Expression
}

func (List) _expression()                  {}
func (e List) GetLocation() ast.Location { return e.Location }
func (e List) String() string            { return fmt.Sprintf("[%s]", common.Join(e.Items, ", ")) }

type NTuple struct {
	ast.Location
	Items []Expression
}

func (NTuple) _expression()                  {}
func (e NTuple) GetLocation() ast.Location { return e.Location }
func (e NTuple) String() string            { return fmt.Sprintf("(%s)", common.Join(e.Items, ", ")) }

type Binary struct {
	ast.Location
	Op          ast.Operator
	Left, Right Expression
}

func (Binary) _expression()                  {}
func (e Binary) GetLocation() ast.Location { return e.Location }
func (e Binary) String() string            { return fmt.Sprintf("(%v %v %v)", e.Left, e.Op, e.Right) }

type Unary struct {
	ast.Location
	Op   ast.Operator
	Expr Expression
}

func (Unary) _expression()                  {}
func (e Unary) GetLocation() ast.Location { return e.Location }
func (e Unary) String() string            { return fmt.Sprintf("(%v%v)", e.Op, e.Expr) }

// SectL is a left section `(e op)`; SectR is a right section `(op e)`.
type SectL struct {
	ast.Location
	Expr Expression
	Op   ast.Operator
}

func (SectL) _expression()                  {}
func (e SectL) GetLocation() ast.Location { return e.Location }
func (e SectL) String() string            { return fmt.Sprintf("(%v %v)", e.Expr, e.Op) }

type SectR struct {
	ast.Location
	Op   ast.Operator
	Expr Expression
}

func (SectR) _expression()                  {}
func (e SectR) GetLocation() ast.Location { return e.Location }
func (e SectR) String() string            { return fmt.Sprintf("(%v %v)", e.Op, e.Expr) }

// PrefixOp is a bare operator used as a value, e.g. `(+)`.
type PrefixOp struct {
	ast.Location
	Op ast.Operator
}

func (PrefixOp) _expression()                  {}
func (e PrefixOp) GetLocation() ast.Location { return e.Location }
func (e PrefixOp) String() string            { return fmt.Sprintf("(%v)", e.Op) }

type IfExpr struct {
	ast.Location
	Cond, Then, Else Expression
}

func (IfExpr) _expression()                  {}
func (e IfExpr) GetLocation() ast.Location { return e.Location }
func (e IfExpr) String() string {
	return fmt.Sprintf("if %v then %v else %v", e.Cond, e.Then, e.Else)
}

// ArithmSeq is `[start..]`, `[start,step..]`, `[start..end]` or
// `[start,step..end]` depending on which of Step/End are present.
type ArithmSeq struct {
	ast.Location
	Start      Expression
	Step, End  Expression // nil when absent
}

func (ArithmSeq) _expression()                  {}
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
	Bindings []LetBinding
	Body     Expression
}

func (LetExpr) _expression()                  {}
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
	Params []Binding
	Body   Expression
}

func (Lambda) _expression()                  {}
func (e Lambda) GetLocation() ast.Location { return e.Location }
func (e Lambda) String() string {
	return fmt.Sprintf("(\\%s -> %v)", common.Join(e.Params, " "), e.Body)
}

type App struct {
	ast.Location
	Head Expression
	Args []Expression
}

func (App) _expression()                  {}
func (e App) GetLocation() ast.Location { return e.Location }
func (e App) String() string            { return fmt.Sprintf("(%v %s)", e.Head, common.Join(e.Args, " ")) }

type ListComp struct {
	ast.Location
	Head  Expression
	Quals []Qual
}

func (ListComp) _expression()                  {}
func (e ListComp) GetLocation() ast.Location { return e.Location }
func (e ListComp) String() string {
	return fmt.Sprintf("[%v | %s]", e.Head, common.Join(e.Quals, ", "))
}
