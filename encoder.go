package gte

import (
	"fmt"

	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// identity leaves a literal unchanged — the upper-bound tree's leaf
// transform, contrasted against Inverted's negation.
func identity(l literal.Literal) literal.Literal { return l }

// Encoder is the upper-bound Generalized Totalizer Encoder: it
// accumulates weighted input literals, lazily extends its adder tree, and
// encodes ∑ wᵢ·ℓᵢ <= ub for a requested bound window.
type Encoder struct {
	t *tree
}

// NewEncoder returns an empty, non-reserving Encoder.
func NewEncoder() *Encoder {
	return &Encoder{t: newTree(false)}
}

// NewReservingEncoder returns an empty Encoder in reserving mode: every
// feasible output variable is minted as soon as its subtree is built, so
// downstream tooling gets contiguous variable IDs across a future
// encoding window.
func NewReservingEncoder() *Encoder {
	return &Encoder{t: newTree(true)}
}

// Add accumulates (literal, weight) pairs; a literal already buffered or
// internalized has its weight summed, not replaced.
func (e *Encoder) Add(lits map[literal.Literal]uint64) {
	e.t.add(lits)
}

// EncodeUB builds/extends the tree and encodes [minUB, maxUB], returning
// the clauses newly emitted by this call. Fails ErrInvalidLimits if
// minUB > maxUB.
func (e *Encoder) EncodeUB(minUB, maxUB uint64, vm vars.Manager) (*clause.CNF, error) {
	if minUB > maxUB {
		return nil, fmt.Errorf("gte: EncodeUB: %w", ErrInvalidLimits)
	}

	nVarsBefore := vm.NUsed()
	e.t.extend(maxUB, vm, identity)
	cnf := e.t.encode(minUB+1, maxUB+e.t.maxLeafWeight, vm)
	e.t.nVars += vm.NUsed() - nVarsBefore

	return cnf, nil
}

// EncodeUBChange is the incremental counterpart of EncodeUB: it emits
// only the clauses not already covered by a prior EncodeUB/EncodeUBChange
// call.
func (e *Encoder) EncodeUBChange(minUB, maxUB uint64, vm vars.Manager) (*clause.CNF, error) {
	if minUB > maxUB {
		return nil, fmt.Errorf("gte: EncodeUBChange: %w", ErrInvalidLimits)
	}

	nVarsBefore := vm.NUsed()
	e.t.extend(maxUB, vm, identity)
	cnf := e.t.encodeChange(minUB+1, maxUB+e.t.maxLeafWeight, vm)
	e.t.nVars += vm.NUsed() - nVarsBefore

	return cnf, nil
}

// EnforceUB returns assumption literals that together impose
// ∑ wᵢ·ℓᵢ <= ub against the current (possibly partial) encoding, or
// ErrNotEncoded if the current window cannot faithfully represent ub.
func (e *Encoder) EnforceUB(ub uint64) ([]literal.Literal, error) {
	return e.t.enforce(ub, true)
}

// Depth returns the adder tree's current depth, or 0 if nothing has been
// encoded yet.
func (e *Encoder) Depth() int { return e.t.depth() }

// NClauses returns the cumulative number of clauses emitted so far.
func (e *Encoder) NClauses() int { return e.t.nClauses }

// NVars returns the cumulative number of variables minted so far.
func (e *Encoder) NVars() int { return e.t.nVars }
