package gte

import (
	"fmt"

	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// tree is the adder-tree bookkeeping shared by Encoder (upper bound) and
// Inverted (lower bound): the two-tier input storage, the running root,
// and the incremental stats. Both wrap a *tree rather than duplicating
// its ~150 lines, because the two bound directions differ only in (a)
// how a literal is transformed before becoming a tree leaf — identity
// for Encoder, negation for Inverted — and (b) which polarity an
// over-weight input is asserted with during enforcement. Everything else
// — build/extend/encode/reserve — is identical, the same way
// lvlath/flow shares one FlowOptions and one buildCapMap helper across
// Ford-Fulkerson, Edmonds-Karp, and Dinic instead of three copies.
type tree struct {
	// inLits maps literals already placed into the tree to their
	// accumulated weight.
	inLits map[literal.Literal]uint64

	// litBuffer maps literals not yet placed into the tree to their
	// accumulated weight.
	litBuffer map[literal.Literal]uint64

	root      adderNode
	reserving bool

	// maxLeafWeight is the largest weight of any leaf ever admitted to
	// the tree; used to compute how far past a requested bound the
	// encoding window must extend.
	maxLeafWeight uint64

	// totalWeight is the sum of all weights ever added, buffered or not.
	totalWeight uint64

	nVars    int
	nClauses int
}

func newTree(reserving bool) *tree {
	return &tree{
		inLits:    make(map[literal.Literal]uint64),
		litBuffer: make(map[literal.Literal]uint64),
		reserving: reserving,
	}
}

// add accumulates (lit, weight) pairs into the buffer, summing weights
// for a literal already present. A zero weight is absence and is
// dropped.
func (t *tree) add(lits map[literal.Literal]uint64) {
	for l, w := range lits {
		if w == 0 {
			continue
		}
		t.totalWeight += w
		t.litBuffer[l] += w
	}
}

// extend drains every buffered literal with weight <= maxWeight into a
// fresh subtree and merges it with the existing root. transform is
// applied to each literal before it becomes a leaf: identity
// for upper-bound encoding, negation for lower-bound encoding.
func (t *tree) extend(maxWeight uint64, vm vars.Manager, transform func(literal.Literal) literal.Literal) {
	if len(t.litBuffer) == 0 {
		return
	}

	admitted := make([]literal.Literal, 0, len(t.litBuffer))
	newLits := make([]weightedLit, 0, len(t.litBuffer))
	for l, w := range t.litBuffer {
		if w > maxWeight {
			continue
		}
		if w > t.maxLeafWeight {
			t.maxLeafWeight = w
		}
		newLits = append(newLits, weightedLit{lit: transform(l), weight: w})
		admitted = append(admitted, l)
	}
	if len(newLits) == 0 {
		return
	}

	sortWeightedLits(newLits)
	subtree := buildTree(newLits)
	if t.reserving {
		subtree.reserveAllVarsRec(vm)
	}

	if t.root == nil {
		t.root = subtree
	} else {
		newRoot := newInternalNode(t.root, subtree)
		if t.reserving {
			newRoot.reserveAllVars(vm)
		}
		t.root = newRoot
	}

	for _, l := range admitted {
		t.inLits[l] += t.litBuffer[l]
		delete(t.litBuffer, l)
	}
}

// encode re-encodes [minEnc, maxEnc] from scratch and returns the clauses
// newly emitted by this call.
func (t *tree) encode(minEnc, maxEnc uint64, vm vars.Manager) *clause.CNF {
	sink := clause.New()
	if t.root != nil {
		t.root.encodeRec(minEnc, maxEnc, vm, sink)
	}
	t.nClauses += sink.Len()

	return sink
}

// encodeChange incrementally encodes [minEnc, maxEnc], emitting only what
// is not already covered by a prior encode/encodeChange call.
func (t *tree) encodeChange(minEnc, maxEnc uint64, vm vars.Manager) *clause.CNF {
	sink := clause.New()
	if t.root != nil {
		t.root.encodeChangeRec(minEnc, maxEnc, vm, sink)
	}
	t.nClauses += sink.Len()

	return sink
}

func (t *tree) depth() int {
	if t.root == nil {
		return 0
	}

	return t.root.depth()
}

// enforce implements the shared part of upper- and lower-bound
// enforcement: assume over-weight inputs, then enforce the root. negate
// controls the polarity asserted for an over-weight input: true for
// upper-bound enforcement (¬ℓ), false for lower-bound (ℓ is already
// inverted once inside the tree).
func (t *tree) enforce(bound uint64, negate bool) ([]literal.Literal, error) {
	assumps := make([]literal.Literal, 0, len(t.litBuffer)+len(t.inLits))

	bufferedLits := make([]literal.Literal, 0, len(t.litBuffer))
	for l := range t.litBuffer {
		bufferedLits = append(bufferedLits, l)
	}
	sortLiterals(bufferedLits)
	for _, l := range bufferedLits {
		w := t.litBuffer[l]
		if w <= bound {
			return nil, fmt.Errorf("gte: enforce: %w", ErrNotEncoded)
		}
		assumps = append(assumps, polarized(l, negate))
	}

	inLits := make([]literal.Literal, 0, len(t.inLits))
	for l := range t.inLits {
		inLits = append(inLits, l)
	}
	sortLiterals(inLits)
	for _, l := range inLits {
		if t.inLits[l] > bound {
			assumps = append(assumps, polarized(l, negate))
		}
	}

	if t.root == nil {
		return assumps, nil
	}

	internal, ok := t.root.(*internalNode)
	if !ok {
		// The root is a bare leaf: its over-weight case was already
		// handled above, nothing else to enforce.
		return assumps, nil
	}

	if bound >= internal.maxValV {
		return assumps, nil
	}
	if internal.minMax == nil {
		return nil, fmt.Errorf("gte: enforce: %w", ErrNotEncoded)
	}

	upper := bound + t.maxLeafWeight
	limit := internal.maxValV
	if upper < limit {
		limit = upper
	}
	if internal.minMax.hi < limit || internal.minMax.lo > bound+1 {
		return nil, fmt.Errorf("gte: enforce: %w", ErrNotEncoded)
	}

	for _, e := range rangeInclusive(internal.outLits.entries, bound+1, upper) {
		assumps = append(assumps, e.lit.Negate())
	}

	return assumps, nil
}

// polarized returns ¬l if negate is true, l otherwise.
func polarized(l literal.Literal, negate bool) literal.Literal {
	if negate {
		return l.Negate()
	}

	return l
}
