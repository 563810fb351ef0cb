package infer

import (
	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/expr"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

// ADTEnv computes the type scheme every constructor of adt gets under
// Hindley-Milner: the arrow chain formed by folding Arr over the
// constructor's declared parameter types, ending in the ADT itself applied
// to its own type parameters. expr.CompileADT only lowers a constructor to
// the untyped Def its evaluator wrapper needs; ADTEnv is the typing half,
// meant to be unioned into the prelude handed to BuildTypeEnv/TypeTree
// alongside (not through) that compiled Def being added to the eval.Env,
// since a constructor's type is fully known from its declaration and never
// needs to be inferred.
//
// A parameter type name matching one of adt.TypeParams becomes a shared
// type variable at that position; every other name is a nullary type
// constructor, either a builtin (Int, Bool, Char) or another declared ADT
// referenced with no arguments.
func ADTEnv(adt expr.ADT) typed.TypeEnv {
	env := typed.NewTypeEnv()
	tvars := make(map[ast.Identifier]typed.Type, len(adt.TypeParams))
	adtArgs := make([]typed.Type, len(adt.TypeParams))
	for i, p := range adt.TypeParams {
		v := &typed.TVar{Name: string(p)}
		tvars[p] = v
		adtArgs[i] = v
	}
	result := typed.Type(&typed.TCons{Name: adt.Name, Args: adtArgs})

	for _, c := range adt.Constructors {
		chain := make([]typed.Type, len(c.ParamTypes)+1)
		for i, name := range c.ParamTypes {
			chain[i] = adtParamType(name, tvars)
		}
		chain[len(chain)-1] = result
		env = env.Extend(c.Name, Generalize(typed.NewTypeEnv(), arr(chain...)))
	}
	return env
}

func adtParamType(name ast.Identifier, tvars map[ast.Identifier]typed.Type) typed.Type {
	if v, ok := tvars[name]; ok {
		return v
	}
	switch name {
	case "Int":
		return typed.TInt
	case "Bool":
		return typed.TBool
	case "Char":
		return typed.TChar
	default:
		return &typed.TCons{Name: name}
	}
}
