// Package ast holds the identifiers, source locations, atoms and operators
// shared by every stage of the pipeline (raw, typed and indexed-typed trees).
package ast

import "fmt"

// Identifier names a variable, a data constructor, or a pattern binding.
type Identifier string

// Location marks where a node came from in source text, 0-based.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Nav is a single navigation token of a Path.
type Nav int

const (
	End Nav = iota
	Fst
	Snd
	Thrd
	Nth
)

func (n Nav) String() string {
	switch n {
	case End:
		return "End"
	case Fst:
		return "Fst"
	case Snd:
		return "Snd"
	case Thrd:
		return "Thrd"
	case Nth:
		return "Nth"
	default:
		return "?"
	}
}

// Step is one element of a Path: a Nav token, with an Index payload when
// Nav == Nth.
type Step struct {
	Nav   Nav
	Index int
}

func FstStep() Step  { return Step{Nav: Fst} }
func SndStep() Step  { return Step{Nav: Snd} }
func ThrdStep() Step { return Step{Nav: Thrd} }
func NthStep(i int) Step {
	return Step{Nav: Nth, Index: i}
}

func (s Step) String() string {
	if s.Nav == Nth {
		return fmt.Sprintf("Nth(%d)", s.Index)
	}
	return s.Nav.String()
}

// Path is an opaque navigation sequence identifying a sub-expression, meant
// to be produced by a host UI from a click on a rendered node.
type Path []Step

func (p Path) String() string {
	s := ""
	for i, step := range p {
		if i > 0 {
			s += "."
		}
		s += step.String()
	}
	if s == "" {
		return "End"
	}
	return s
}

// Head returns the first step of the path and the remaining tail. If the
// path is empty, ok is false and the caller has reached the End token.
func (p Path) Head() (step Step, rest Path, ok bool) {
	if len(p) == 0 {
		return Step{}, nil, false
	}
	return p[0], p[1:], true
}
