package eval

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
)

// Clause is one (param-patterns, body) alternative of a definition.
type Clause struct {
	Params []expr.Binding
	Body   expr.Expression
}

// Env maps a function name to its ordered list of clauses. Building one
// from a Def list preserves source order, since clause order is what
// TryClauses relies on to pick the first pattern that matches.
type Env map[ast.Identifier][]Clause

// DefsToEnv groups defs by name, clauses kept in source order.
func DefsToEnv(defs []expr.Def) Env {
	env := Env{}
	for _, d := range defs {
		env[d.Name] = append(env[d.Name], Clause{Params: d.Params, Body: d.Body})
	}
	return env
}

// Clauses returns env's clauses for name (nil, false if unbound) — a small
// accessor so callers never reach into the raw map directly.
func (env Env) Clauses(name ast.Identifier) ([]Clause, bool) {
	cs, ok := env[name]
	return cs, ok
}

// Merge extends env with other's bindings, other winning on collision, and
// returns a new map, so a host can build one prelude Env once and layer
// per-query definitions on top without mutating the prelude.
func (env Env) Merge(other Env) Env {
	out := make(Env, len(env)+len(other))
	for k, v := range env {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
