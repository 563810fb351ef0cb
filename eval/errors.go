package eval

import (
	"fmt"
	"strings"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/pattern"
)

// Error is the closed set of evaluation errors. Each variant is its own
// type — a per-subsystem closed error set rather than one generic error
// carrying a tag field — so a caller's type switch on Error is exhaustive
// and the compiler flags a missed case.
type Error interface {
	error
	_evalError()
}

type PathError struct {
	Path ast.Path
	Expr expr.Expression
}

func (PathError) _evalError() {}
func (e PathError) Error() string {
	return fmt.Sprintf("path %v does not navigate %v", e.Path, e.Expr)
}

type IndexError struct {
	Index, Len int
}

func (IndexError) _evalError() {}
func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (len %d)", e.Index, e.Len)
}

type DivByZero struct{}

func (DivByZero) _evalError()  {}
func (DivByZero) Error() string { return "division by zero" }

type EvalError struct {
	Expr expr.Expression
}

func (EvalError) _evalError() {}
func (e EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate %v", e.Expr)
}

type BinaryOpError struct {
	Op          ast.Operator
	Left, Right expr.Expression
}

func (BinaryOpError) _evalError() {}
func (e BinaryOpError) Error() string {
	return fmt.Sprintf("%v is not defined for %v %v %v", e.Op, e.Left, e.Op, e.Right)
}

type UnaryOpError struct {
	Op   ast.Operator
	Expr expr.Expression
}

func (UnaryOpError) _evalError() {}
func (e UnaryOpError) Error() string {
	return fmt.Sprintf("%v is not defined for %v%v", e.Op, e.Op, e.Expr)
}

type NameCaptureError struct {
	Names []ast.Identifier
}

func (NameCaptureError) _evalError() {}
func (e NameCaptureError) Error() string {
	names := make([]string, len(e.Names))
	for i, n := range e.Names {
		names[i] = string(n)
	}
	return fmt.Sprintf("name capture on %s", strings.Join(names, ", "))
}

type UnknownFunction struct {
	Name ast.Identifier
}

func (UnknownFunction) _evalError() {}
func (e UnknownFunction) Error() string {
	return fmt.Sprintf("unknown function %s", e.Name)
}

type NoMatchingFunction struct {
	Name   ast.Identifier
	Causes []error
}

func (NoMatchingFunction) _evalError() {}
func (e NoMatchingFunction) Error() string {
	return fmt.Sprintf("no clause of %s matches", e.Name)
}

type CannotEvaluate struct {
	Expr expr.Expression
}

func (CannotEvaluate) _evalError() {}
func (e CannotEvaluate) Error() string {
	return fmt.Sprintf("cannot evaluate %v further", e.Expr)
}

// MoreErrors is the monoid used by error-collecting callers: concatenation
// via Concat, with nil as identity.
type MoreErrors struct {
	Errors []error
}

func (MoreErrors) _evalError() {}
func (e MoreErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func Concat(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	flat := func(e error) []error {
		if m, ok := e.(MoreErrors); ok {
			return m.Errors
		}
		return []error{e}
	}
	return MoreErrors{Errors: append(flat(a), flat(b)...)}
}

// Compile-time checks that pattern.Match's error variants are plain errors.
// They are not eval.Error variants; TryClauses passes them on unchanged
// inside NoMatchingFunction.Causes.
var (
	_ error = pattern.MatchingError{}
	_ error = pattern.StrictnessError{}
	_ error = pattern.TooFewArguments{}
)
