package infer

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// Error is the closed type-error variant set, following the same
// per-package closed-error-interface idiom as eval.Error.
type Error interface {
	error
	_typeError()
}

type UnificationFail struct {
	T1, T2 typed.Type
}

func (UnificationFail) _typeError() {}
func (e UnificationFail) Error() string {
	return fmt.Sprintf("cannot unify %v with %v", e.T1, e.T2)
}

type InfiniteType struct {
	Var  string
	Type typed.Type
}

func (InfiniteType) _typeError() {}
func (e InfiniteType) Error() string {
	return fmt.Sprintf("infinite type: %s occurs in %v", e.Var, e.Type)
}

type UnboundVariable struct {
	Name ast.Identifier
}

func (UnboundVariable) _typeError() {}
func (e UnboundVariable) Error() string { return fmt.Sprintf("unbound variable %q", e.Name) }

type UnknownDataConstructor struct {
	Name ast.Identifier
}

func (UnknownDataConstructor) _typeError() {}
func (e UnknownDataConstructor) Error() string {
	return fmt.Sprintf("unknown data constructor %q", e.Name)
}

type NoInstanceOfEnum struct {
	Type typed.Type
}

func (NoInstanceOfEnum) _typeError() {}
func (e NoInstanceOfEnum) Error() string { return fmt.Sprintf("%v has no Enum instance", e.Type) }

type PatternMismatch struct {
	Binding typed.Binding
	Type    typed.Type
}

func (PatternMismatch) _typeError() {}
func (e PatternMismatch) Error() string {
	return fmt.Sprintf("pattern %v does not match type %v", e.Binding, e.Type)
}

// UnknownError carries a message that doesn't fit any other variant, e.g.
// the pattern-overlap check's "Conflicting definitions for 'x'" when a
// clause head binds the same pattern variable twice.
type UnknownError struct {
	Msg string
}

func (UnknownError) _typeError() {}
func (e UnknownError) Error() string { return e.Msg }
