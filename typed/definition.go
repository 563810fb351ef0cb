package typed

import (
	"fmt"

	"github.com/SRechenberger/clickyEvaluation/ast"
	"github.com/SRechenberger/clickyEvaluation/common"
)

// Def is the typed counterpart of expr.Def: one pattern-matched clause,
// with a Scheme slot for Name. Scheme is nil unless a caller sets it:
// infer.BuildTypeEnv returns its schemes in a TypeEnv and does not fill
// this field, and subst.ApplyDef only refreshes a scheme already present.
type Def struct {
	Location ast.Location
	Name     ast.Identifier
	Params   []Binding
	Body     Expression
	Scheme   *Scheme
}

func (d Def) String() string {
	if len(d.Params) == 0 {
		return fmt.Sprintf("%s = %v", d.Name, d.Body)
	}
	return fmt.Sprintf("%s %s = %v", d.Name, common.Join(d.Params, " "), d.Body)
}
