package model

import (
	"fmt"

	"github.com/aretw0/boardchain/pkg/domain"
)

// DefectKind names a broken invariant.
type DefectKind string

const (
	DefectRowSum     DefectKind = "row_sum"     // outgoing mass is not one
	DefectRange      DefectKind = "range"       // a probability outside [0, 1]
	DefectTrapTarget DefectKind = "trap_target" // mass flows into goto_jail
)

// Defect describes one invariant violation found by Diagnose.
type Defect struct {
	Kind   DefectKind
	From   domain.State
	To     domain.State // unset for DefectRowSum
	Detail string
}

func (d Defect) String() string {
	if d.Kind == DefectRowSum {
		return fmt.Sprintf("%s: state %d %s", d.Kind, d.From, d.Detail)
	}
	return fmt.Sprintf("%s: (%d, %d) %s", d.Kind, d.From, d.To, d.Detail)
}

// Diagnose checks the relation's invariants and lists every violation.
// It is a diagnostic, not a gate: floating relations are compared with the
// arithmetic's own tolerance and an empty result means the relation is sound.
func Diagnose[T any](r *Relation[T]) []Defect {
	a := r.arith
	t := r.topo
	zero, one := a.Zero(), a.One()

	var defects []Defect
	for _, p := range r.Pairs() {
		v := r.edges[p]
		if (a.Cmp(v, zero) < 0 && !a.Close(v, zero)) || (a.Cmp(v, one) > 0 && !a.Close(v, one)) {
			defects = append(defects, Defect{
				Kind: DefectRange, From: p.From, To: p.To,
				Detail: "probability " + a.String(v),
			})
		}
		if p.To == t.GoToJail && a.Cmp(v, zero) > 0 {
			defects = append(defects, Defect{
				Kind: DefectTrapTarget, From: p.From, To: p.To,
				Detail: "mass " + a.String(v),
			})
		}
	}

	for _, s := range t.States() {
		if sum := r.RowSum(s); !a.Close(sum, one) {
			defects = append(defects, Defect{
				Kind: DefectRowSum, From: s,
				Detail: "sums to " + a.String(sum),
			})
		}
	}
	return defects
}
