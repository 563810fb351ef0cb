package subst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/typed"
)

func TestApplyExpressionAppliesEverywhere(t *testing.T) {
	lam := typed.Lambda{
		Meta:   typed.Meta{Type: &typed.TArr{From: tv("a"), To: tv("a")}},
		Params: []typed.Binding{typed.Lit{Meta: typed.Meta{Type: tv("a")}, Atom: ast.MkName("x")}},
		Body:   typed.Atom{Meta: typed.Meta{Type: tv("a")}, Atom: ast.MkName("x")},
	}
	s := Singleton("a", typed.TInt)
	got := ApplyExpression(s, lam).(typed.Lambda)

	assert.True(t, typed.EqualsTo(&typed.TArr{From: typed.TInt, To: typed.TInt}, got.GetType()))
	assert.True(t, typed.EqualsTo(typed.TInt, got.Params[0].GetType()))
	assert.True(t, typed.EqualsTo(typed.TInt, got.Body.GetType()))
}

func TestApplyExpressionNilTypeUntouched(t *testing.T) {
	a := typed.Atom{Atom: ast.MkInt(1)}
	got := ApplyExpression(Singleton("a", typed.TInt), a).(typed.Atom)
	assert.Nil(t, got.GetType())
}

func TestApplyBindingConsLit(t *testing.T) {
	b := typed.ConsLit{
		Meta: typed.Meta{Type: &typed.TList{Elem: tv("a")}},
		Head: typed.Lit{Meta: typed.Meta{Type: tv("a")}, Atom: ast.MkName("h")},
		Tail: typed.Lit{Meta: typed.Meta{Type: &typed.TList{Elem: tv("a")}}, Atom: ast.MkName("t")},
	}
	got := ApplyBinding(Singleton("a", typed.TBool), b).(typed.ConsLit)
	assert.True(t, typed.EqualsTo(&typed.TList{Elem: typed.TBool}, got.GetType()))
	assert.True(t, typed.EqualsTo(typed.TBool, got.Head.GetType()))
}
