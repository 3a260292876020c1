package gte

import (
	"fmt"

	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// Inverted is the lower-bound Generalized Totalizer Encoder: the same
// adder-tree machinery as Encoder, but every input literal is
// negated on admission to the tree and bounds are reflected through the
// total input weight W, so ∑ wᵢ·ℓᵢ >= lb is encoded as an upper bound of
// W - lb on the negated sum.
type Inverted struct {
	t *tree
}

// NewInverted returns an empty, non-reserving Inverted encoder.
func NewInverted() *Inverted {
	return &Inverted{t: newTree(false)}
}

// NewReservingInverted returns an empty Inverted encoder in reserving
// mode.
func NewReservingInverted() *Inverted {
	return &Inverted{t: newTree(true)}
}

// Add accumulates (literal, weight) pairs in user-facing (non-negated)
// form; negation happens internally when literals are admitted to the
// tree, not here — mirroring the original reference encoding, where
// Add is identical between the upper- and lower-bound encoders and only
// extend_tree diverges.
func (e *Inverted) Add(lits map[literal.Literal]uint64) {
	e.t.add(lits)
}

// convertLBUB maps an outside lower bound to the internal upper bound
// W - bound on the negated tree. Fails ErrUnsat if bound >= W, since the
// constraint would then be trivially unsatisfiable.
func (e *Inverted) convertLBUB(bound uint64) (uint64, error) {
	if e.t.totalWeight > bound {
		return e.t.totalWeight - bound, nil
	}

	return 0, fmt.Errorf("gte: convertLBUB: %w", ErrUnsat)
}

// EncodeLB builds/extends the tree and encodes [minLB, maxLB], returning
// the clauses newly emitted by this call. Fails ErrInvalidLimits if
// minLB > maxLB. A bound that would make the internal conversion to an
// upper bound impossible (minLB/maxLB at or above the total input weight)
// is clamped to 0 rather than rejected here — encoding is permissive by
// design; only EnforceLB reports ErrUnsat for an unsatisfiable bound.
func (e *Inverted) EncodeLB(minLB, maxLB uint64, vm vars.Manager) (*clause.CNF, error) {
	if minLB > maxLB {
		return nil, fmt.Errorf("gte: EncodeLB: %w", ErrInvalidLimits)
	}

	nVarsBefore := vm.NUsed()
	intMinUB, errMin := e.convertLBUB(maxLB)
	if errMin != nil {
		intMinUB = 0
	}
	intMaxUB, errMax := e.convertLBUB(minLB)
	if errMax != nil {
		intMaxUB = 0
	}

	e.t.extend(intMaxUB, vm, literal.Literal.Negate)
	cnf := e.t.encode(intMinUB+1, intMaxUB+e.t.maxLeafWeight, vm)
	e.t.nVars += vm.NUsed() - nVarsBefore

	return cnf, nil
}

// EncodeLBChange is the incremental counterpart of EncodeLB.
func (e *Inverted) EncodeLBChange(minLB, maxLB uint64, vm vars.Manager) (*clause.CNF, error) {
	if minLB > maxLB {
		return nil, fmt.Errorf("gte: EncodeLBChange: %w", ErrInvalidLimits)
	}

	nVarsBefore := vm.NUsed()
	intMinUB, errMin := e.convertLBUB(maxLB)
	if errMin != nil {
		intMinUB = 0
	}
	intMaxUB, errMax := e.convertLBUB(minLB)
	if errMax != nil {
		intMaxUB = 0
	}

	e.t.extend(intMaxUB, vm, literal.Literal.Negate)
	cnf := e.t.encodeChange(intMinUB+1, intMaxUB+e.t.maxLeafWeight, vm)
	e.t.nVars += vm.NUsed() - nVarsBefore

	return cnf, nil
}

// EnforceLB returns assumption literals that together impose
// ∑ wᵢ·ℓᵢ >= lb, mirroring EnforceUB but asserting positive-polarity
// literals for over-weight inputs (they are already inverted once
// inside the tree).
func (e *Inverted) EnforceLB(lb uint64) ([]literal.Literal, error) {
	ub, err := e.convertLBUB(lb)
	if err != nil {
		return nil, err
	}

	return e.t.enforce(ub, false)
}

// Depth returns the adder tree's current depth, or 0 if nothing has been
// encoded yet.
func (e *Inverted) Depth() int { return e.t.depth() }

// NClauses returns the cumulative number of clauses emitted so far.
func (e *Inverted) NClauses() int { return e.t.nClauses }

// NVars returns the cumulative number of variables minted so far.
func (e *Inverted) NVars() int { return e.t.nVars }
