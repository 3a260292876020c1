package gte

import (
	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// Double composes an Encoder and an Inverted encoder over a shared input
// stream: Add broadcasts to both, but their adder trees and encoding
// windows are built and tracked independently. Not a
// particularly efficient encoding — it duplicates the whole tree — kept
// for callers that genuinely need both bound directions against the
// same weighted sum.
type Double struct {
	ub *Encoder
	lb *Inverted
}

// NewDouble returns an empty, non-reserving Double encoder.
func NewDouble() *Double {
	return &Double{ub: NewEncoder(), lb: NewInverted()}
}

// NewReservingDouble returns an empty Double encoder in reserving mode.
func NewReservingDouble() *Double {
	return &Double{ub: NewReservingEncoder(), lb: NewReservingInverted()}
}

// Add broadcasts (literal, weight) pairs to both the upper- and
// lower-bound encoders.
func (d *Double) Add(lits map[literal.Literal]uint64) {
	d.ub.Add(lits)
	d.lb.Add(lits)
}

// EncodeUB delegates to the upper-bound encoder.
func (d *Double) EncodeUB(minUB, maxUB uint64, vm vars.Manager) (*clause.CNF, error) {
	return d.ub.EncodeUB(minUB, maxUB, vm)
}

// EncodeUBChange delegates to the upper-bound encoder.
func (d *Double) EncodeUBChange(minUB, maxUB uint64, vm vars.Manager) (*clause.CNF, error) {
	return d.ub.EncodeUBChange(minUB, maxUB, vm)
}

// EnforceUB delegates to the upper-bound encoder.
func (d *Double) EnforceUB(ub uint64) ([]literal.Literal, error) {
	return d.ub.EnforceUB(ub)
}

// EncodeLB delegates to the lower-bound encoder.
func (d *Double) EncodeLB(minLB, maxLB uint64, vm vars.Manager) (*clause.CNF, error) {
	return d.lb.EncodeLB(minLB, maxLB, vm)
}

// EncodeLBChange delegates to the lower-bound encoder.
func (d *Double) EncodeLBChange(minLB, maxLB uint64, vm vars.Manager) (*clause.CNF, error) {
	return d.lb.EncodeLBChange(minLB, maxLB, vm)
}

// EnforceLB delegates to the lower-bound encoder.
func (d *Double) EnforceLB(lb uint64) ([]literal.Literal, error) {
	return d.lb.EnforceLB(lb)
}

// NClauses sums the clause counts of both internal encoders.
func (d *Double) NClauses() int { return d.ub.NClauses() + d.lb.NClauses() }

// NVars sums the variable counts of both internal encoders.
func (d *Double) NVars() int { return d.ub.NVars() + d.lb.NVars() }
