package typed

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
)

// Qual is the typed counterpart of expr.Qual.
type Qual interface {
	fmt.Stringer
	_qual()
	GetLocation() ast.Location
}

type Gen struct {
	ast.Location
	Binding Binding
	Expr    Expression
}

func (Gen) _qual()                  {}
func (q Gen) GetLocation() ast.Location { return q.Location }
func (q Gen) String() string            { return fmt.Sprintf("%v <- %v", q.Binding, q.Expr) }

type LetQual struct {
	ast.Location
	Binding Binding
	Expr    Expression
}

func (LetQual) _qual()                  {}
func (q LetQual) GetLocation() ast.Location { return q.Location }
func (q LetQual) String() string            { return fmt.Sprintf("let %v = %v", q.Binding, q.Expr) }

type Guard struct {
	ast.Location
	Expr Expression
}

func (Guard) _qual()                  {}
func (q Guard) GetLocation() ast.Location { return q.Location }
func (q Guard) String() string            { return q.Expr.String() }
