package totalizer

import (
	"github.com/katalvlaran/gte"
	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// Encoder is an upper-bound cardinality (Totalizer) encoder: a thin
// weight-1 wrapper over gte.Encoder, accepting plain literals instead of
// a (literal -> weight) map.
type Encoder struct {
	gte *gte.Encoder
}

// NewEncoder returns an empty, non-reserving Totalizer encoder.
func NewEncoder() *Encoder {
	return &Encoder{gte: gte.NewEncoder()}
}

// NewReservingEncoder returns an empty Totalizer encoder in reserving
// mode.
func NewReservingEncoder() *Encoder {
	return &Encoder{gte: gte.NewReservingEncoder()}
}

// Add accumulates literals, each counting 1 toward the cardinality sum.
// A literal added more than once has its weight summed like any other
// gte.Encoder input — callers wanting strict set semantics should
// de-duplicate before calling Add.
func (e *Encoder) Add(lits []literal.Literal) {
	weighted := make(map[literal.Literal]uint64, len(lits))
	for _, l := range lits {
		weighted[l]++
	}
	e.gte.Add(weighted)
}

// EncodeUB builds/extends the tree and encodes [minUB, maxUB].
func (e *Encoder) EncodeUB(minUB, maxUB uint64, vm vars.Manager) (*clause.CNF, error) {
	return e.gte.EncodeUB(minUB, maxUB, vm)
}

// EncodeUBChange is the incremental counterpart of EncodeUB.
func (e *Encoder) EncodeUBChange(minUB, maxUB uint64, vm vars.Manager) (*clause.CNF, error) {
	return e.gte.EncodeUBChange(minUB, maxUB, vm)
}

// EnforceUB returns assumption literals imposing ∑ ℓᵢ <= ub.
func (e *Encoder) EnforceUB(ub uint64) ([]literal.Literal, error) {
	return e.gte.EnforceUB(ub)
}

// Depth returns the adder tree's current depth.
func (e *Encoder) Depth() int { return e.gte.Depth() }

// NClauses returns the cumulative number of clauses emitted so far.
func (e *Encoder) NClauses() int { return e.gte.NClauses() }

// NVars returns the cumulative number of variables minted so far.
func (e *Encoder) NVars() int { return e.gte.NVars() }

// Inverted is a lower-bound cardinality encoder, the weight-1
// specialization of gte.Inverted.
type Inverted struct {
	gte *gte.Inverted
}

// NewInverted returns an empty, non-reserving lower-bound Totalizer.
func NewInverted() *Inverted {
	return &Inverted{gte: gte.NewInverted()}
}

// NewReservingInverted returns an empty lower-bound Totalizer in
// reserving mode.
func NewReservingInverted() *Inverted {
	return &Inverted{gte: gte.NewReservingInverted()}
}

// Add accumulates literals, each counting 1 toward the cardinality sum.
func (e *Inverted) Add(lits []literal.Literal) {
	weighted := make(map[literal.Literal]uint64, len(lits))
	for _, l := range lits {
		weighted[l]++
	}
	e.gte.Add(weighted)
}

// EncodeLB builds/extends the tree and encodes [minLB, maxLB].
func (e *Inverted) EncodeLB(minLB, maxLB uint64, vm vars.Manager) (*clause.CNF, error) {
	return e.gte.EncodeLB(minLB, maxLB, vm)
}

// EncodeLBChange is the incremental counterpart of EncodeLB.
func (e *Inverted) EncodeLBChange(minLB, maxLB uint64, vm vars.Manager) (*clause.CNF, error) {
	return e.gte.EncodeLBChange(minLB, maxLB, vm)
}

// EnforceLB returns assumption literals imposing ∑ ℓᵢ >= lb.
func (e *Inverted) EnforceLB(lb uint64) ([]literal.Literal, error) {
	return e.gte.EnforceLB(lb)
}

// Depth returns the adder tree's current depth.
func (e *Inverted) Depth() int { return e.gte.Depth() }

// NClauses returns the cumulative number of clauses emitted so far.
func (e *Inverted) NClauses() int { return e.gte.NClauses() }

// NVars returns the cumulative number of variables minted so far.
func (e *Inverted) NVars() int { return e.gte.NVars() }
