// Package common carries the small cross-cutting pieces every stage of the
// pipeline needs: a located/system error split, and generic slice helpers
// backed by github.com/samber/lo instead of hand-rolled loops.
package common

import (
	"fmt"

	"github.com/samber/lo"
)

// Error is a located, user-facing error — a malformed program, a matching
// failure, a type error. SystemError is an internal invariant violation (a
// closed switch reaching its default case): a bug in this module, never a
// property of the user's program.
type Error struct {
	Location fmt.Stringer
	Message  string
}

func (e Error) Error() string {
	if e.Location != nil {
		return fmt.Sprintf("%s: %s", e.Location, e.Message)
	}
	return e.Message
}

type SystemError struct {
	Message string
}

func (e SystemError) Error() string {
	return e.Message
}

// Map applies p to every element of xs, backed by lo.Map.
func Map[I, O any](p func(I) O, xs []I) []O {
	return lo.Map(xs, func(x I, _ int) O { return p(x) })
}

// Find returns the first element of xs matching p, backed by lo.Find.
func Find[T any](p func(T) bool, xs []T) (T, bool) {
	return lo.Find(xs, p)
}

// Join renders xs separated by sep.
func Join[T fmt.Stringer](xs []T, sep string) string {
	return lo.Reduce(xs, func(acc string, x T, i int) string {
		if i == 0 {
			return x.String()
		}
		return acc + sep + x.String()
	}, "")
}

// Range produces [min, max).
func Range(min, max int) []int {
	if max <= min {
		return nil
	}
	return lo.RangeWithSteps(min, max, 1)
}

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	return lo.Keys(m)
}

// Uniq removes duplicate elements, preserving first occurrence order.
func Uniq[T comparable](xs []T) []T {
	return lo.Uniq(xs)
}
