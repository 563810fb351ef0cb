package typed

import "github.com/SRechenberger/clickyEvaluation/common"

// TypeEnv maps an identifier to its scheme. It is immutable by convention:
// every operation below returns a new map rather than mutating a caller's
// symbol map in place.
type TypeEnv map[Identifier]Scheme

func NewTypeEnv() TypeEnv { return TypeEnv{} }

// Extend returns a copy of env with name bound to scheme (last write wins).
func (env TypeEnv) Extend(name Identifier, scheme Scheme) TypeEnv {
	out := env.clone()
	out[name] = scheme
	return out
}

// ExtendMany extends env with every (name, scheme) pair in bindings.
func (env TypeEnv) ExtendMany(bindings map[Identifier]Scheme) TypeEnv {
	out := env.clone()
	for k, v := range bindings {
		out[k] = v
	}
	return out
}

// Union merges other into env, left-biased: env's own bindings win.
func (env TypeEnv) Union(other TypeEnv) TypeEnv {
	out := other.clone()
	for k, v := range env {
		out[k] = v
	}
	return out
}

func (env TypeEnv) clone() TypeEnv {
	out := make(TypeEnv, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

func (env TypeEnv) Lookup(name Identifier) (Scheme, bool) {
	s, ok := env[name]
	return s, ok
}

func (env TypeEnv) Names() []Identifier {
	return common.Keys(env)
}
