package eval

import "github.com/SRechenberger/clickyEvaluation/ast"

// next, nextTo, nextStep and nextStepTo implement the four arithmetic-
// sequence unfolding rules ([x..], [x..y], [x,y..], [x,y..z]) over an
// atom's ordinal position (ast.Atom.Ordinal/FromOrdinal), so Int/Bool/Char
// share one algorithm instead of three. Each returns the head to emit this
// step (ok=false means terminate with an empty list) and the next seed to
// recurse on (cont=nil means terminate after emitting head).

// next implements `[x..]`: enumerate upward by one, terminating at the top
// of x's base type.
func next(x ast.Atom) (head ast.Atom, cont *ast.Atom, ok bool) {
	_, max := ast.Bounds(x.Kind)
	o := x.Ordinal()
	if o > max {
		return ast.Atom{}, nil, false
	}
	if o == max {
		return x, nil, true
	}
	c := ast.FromOrdinal(x.Kind, o+1)
	return x, &c, true
}

// nextTo implements `[x..z]`: enumerate upward by one, terminating at z;
// empty if x > z.
func nextTo(x, z ast.Atom) (head ast.Atom, cont *ast.Atom, ok bool) {
	if x.Ordinal() > z.Ordinal() {
		return ast.Atom{}, nil, false
	}
	if x.Ordinal() == z.Ordinal() {
		return x, nil, true
	}
	c := ast.FromOrdinal(x.Kind, x.Ordinal()+1)
	return x, &c, true
}

// nextStep implements `[x,y..]`: enumerate with step y-x, terminating when
// passing the top (ascending) or bottom (descending) of the base type. A
// zero step with x==y emits a single element and terminates.
func nextStep(x, y ast.Atom) (head ast.Atom, cont *ast.Atom, ok bool) {
	step := y.Ordinal() - x.Ordinal()
	min, max := ast.Bounds(x.Kind)
	if step == 0 {
		return x, nil, true
	}
	nextOrd := x.Ordinal() + step
	if step > 0 {
		if nextOrd > max {
			return x, nil, true
		}
		c := ast.FromOrdinal(x.Kind, nextOrd)
		return x, &c, true
	}
	if nextOrd < min {
		return x, nil, true
	}
	c := ast.FromOrdinal(x.Kind, nextOrd)
	return x, &c, true
}

// nextStepTo implements `[x,y..z]`: enumerate with step y-x, terminating
// at or past z in the direction of the step's sign.
func nextStepTo(x, y, z ast.Atom) (head ast.Atom, cont *ast.Atom, ok bool) {
	step := y.Ordinal() - x.Ordinal()
	if step == 0 {
		if x.Ordinal() == z.Ordinal() {
			return x, nil, true
		}
		return x, nil, true
	}
	if step > 0 {
		if x.Ordinal() > z.Ordinal() {
			return ast.Atom{}, nil, false
		}
		nextOrd := x.Ordinal() + step
		if nextOrd > z.Ordinal() {
			return x, nil, true
		}
		c := ast.FromOrdinal(x.Kind, nextOrd)
		return x, &c, true
	}
	if x.Ordinal() < z.Ordinal() {
		return ast.Atom{}, nil, false
	}
	nextOrd := x.Ordinal() + step
	if nextOrd < z.Ordinal() {
		return x, nil, true
	}
	c := ast.FromOrdinal(x.Kind, nextOrd)
	return x, &c, true
}
