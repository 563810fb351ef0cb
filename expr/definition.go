package expr

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

// Def is one pattern-matched clause; a program is an ordered list of Defs,
// and multiple Defs sharing Name are clauses tried in source order.
type Def struct {
	Location ast.Location
	Name     ast.Identifier
	Params   []Binding
	Body     Expression
}

func (d Def) String() string {
	if len(d.Params) == 0 {
		return fmt.Sprintf("%s = %v", d.Name, d.Body)
	}
	return fmt.Sprintf("%s %s = %v", d.Name, common.Join(d.Params, " "), d.Body)
}

// Associativity of a user-declared infix data constructor.
type Associativity int

const (
	Left Associativity = iota
	Right
	Non
)

// Constructor is one data-constructor alternative of an ADT: either a
// prefix constructor `Name a1 .. an` or an infix one `a1 `Name` a2` /
// `a1 <> a2` with declared fixity.
type Constructor struct {
	Location ast.Location
	Prefix   bool
	Name     ast.Identifier
	Arity    int
	// ParamTypes has length Arity for a prefix constructor, or exactly two
	// entries (left, right operand type) for an infix constructor.
	ParamTypes    []ast.Identifier
	Associativity Associativity
	Precedence    int
}

func (c Constructor) String() string {
	if c.Prefix {
		return fmt.Sprintf("%s/%d", c.Name, c.Arity)
	}
	return fmt.Sprintf("`%s`", c.Name)
}

// ADT is a user-declared algebraic data type.
type ADT struct {
	Location     ast.Location
	Name         ast.Identifier
	TypeParams   []ast.Identifier
	Constructors []Constructor
}

// CompileADT converts each data constructor of an ADT into an ordinary Def:
// a nullary constructor becomes a Def whose body is bare constructor atom,
// and an n-ary constructor becomes a Def with n fresh parameters applying
// that atom to them. This lets the evaluator treat constructors exactly
// like any other named function once they're merged into an eval.Env; only
// pattern matching and (separately) type inference need to know a name
// came from a data declaration.
func CompileADT(adt ADT) []Def {
	return common.Map(func(c Constructor) Def {
		if c.Arity == 0 {
			return Def{
				Location: c.Location,
				Name:     c.Name,
				Body:     Atom{Location: c.Location, Atom: ast.MkConstr(c.Name)},
			}
		}
		params := common.Map(func(i int) Binding {
			return NamePattern(c.Location, ast.Identifier(fmt.Sprintf("p%d", i)))
		}, common.Range(0, c.Arity))
		args := common.Map(func(i int) Expression {
			return Atom{Location: c.Location, Atom: ast.MkName(ast.Identifier(fmt.Sprintf("p%d", i)))}
		}, common.Range(0, c.Arity))
		return Def{
			Location: c.Location,
			Name:     c.Name,
			Params:   params,
			Body: App{
				Location: c.Location,
				Head:     Atom{Location: c.Location, Atom: ast.MkConstr(c.Name)},
				Args:     args,
			},
		}
	}, adt.Constructors)
}
