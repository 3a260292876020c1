package gte

import (
	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// adderNode is the tagged node of the binary adder tree: a leaf (one
// weighted input literal) or an internal node (weighted output literals
// plus two owned children). It is expressed as a small interface with two
// implementations rather than a struct-with-mode-enum, the way
// lvlath/tsp keeps exact and approximate solvers as distinct types behind
// a shared surface instead of one struct branching on a tag field.
//
// There is no parent back-pointer: recursion carries all the context the
// algorithms need. Each node exclusively owns its children; there is no
// sharing and no cycles.
type adderNode interface {
	// maxVal is the sum of all leaf weights in the subtree.
	maxVal() uint64

	// depth is 1 + max(child depths); a leaf has depth 1.
	depth() int

	// entriesView returns this node's (value, literal) pairs in ascending
	// order. For a leaf this is the synthetic singleton {weight: lit}.
	entriesView() []entry

	// encodeRec recurses depth-first and re-encodes [minEnc, maxEnc] from
	// scratch, ignoring any prior encoding window.
	encodeRec(minEnc, maxEnc uint64, vm vars.Manager, sink clause.Sink)

	// encodeChangeRec recurses depth-first and encodes only the portion
	// of [minEnc, maxEnc] not already covered by this node's recorded
	// window.
	encodeChangeRec(minEnc, maxEnc uint64, vm vars.Manager, sink clause.Sink)

	// reserveAllVarsRec walks the subtree bottom-up, minting every output
	// variable the subtree might ever need without emitting clauses.
	reserveAllVarsRec(vm vars.Manager)
}

// leafNode carries one input literal and its weight. Its output is the
// singleton mapping {weight -> lit}.
type leafNode struct {
	lit    literal.Literal
	weight uint64
}

func newLeaf(lit literal.Literal, weight uint64) *leafNode {
	return &leafNode{lit: lit, weight: weight}
}

func (n *leafNode) maxVal() uint64 { return n.weight }
func (n *leafNode) depth() int     { return 1 }

func (n *leafNode) entriesView() []entry {
	return []entry{{value: n.weight, lit: n.lit}}
}

func (n *leafNode) encodeRec(uint64, uint64, vars.Manager, clause.Sink)       {}
func (n *leafNode) encodeChangeRec(uint64, uint64, vars.Manager, clause.Sink) {}
func (n *leafNode) reserveAllVarsRec(vars.Manager)                           {}

// encWindow is the encoding window already materialized on an internal
// node, or nil for "nothing encoded yet".
type encWindow struct {
	lo, hi uint64
}

// internalNode is the internal variant of the adder tree.
type internalNode struct {
	outLits  outputMap
	depthVal int
	maxValV  uint64
	nClauses int
	minMax   *encWindow
	left     adderNode
	right    adderNode
}

// newInternalNode wraps left and right under a fresh internal node,
// computing depth and maxVal from the children.
func newInternalNode(left, right adderNode) *internalNode {
	d := left.depth()
	if rd := right.depth(); rd > d {
		d = rd
	}

	return &internalNode{
		depthVal: d + 1,
		maxValV:  left.maxVal() + right.maxVal(),
		left:     left,
		right:    right,
	}
}

func (n *internalNode) maxVal() uint64 { return n.maxValV }
func (n *internalNode) depth() int     { return n.depthVal }

func (n *internalNode) entriesView() []entry {
	return n.outLits.entries
}

// reserveAllVars mints every output variable this node alone might need
// over its full range, without recursing into children.
func (n *internalNode) reserveAllVars(vm vars.Manager) {
	n.reserveVarsFromTill(0, n.maxValV, vm)
}

func (n *internalNode) reserveAllVarsRec(vm vars.Manager) {
	n.left.reserveAllVarsRec(vm)
	n.right.reserveAllVarsRec(vm)
	n.reserveAllVars(vm)
}

// reserveVarsFromTill mints (without emitting clauses) every output
// variable in [minEnc, maxEnc] this node's adder could produce: every
// value arising from the left child alone, the right child alone, or a
// pairwise sum of the two that falls in the window. This is exactly the
// variable-reservation half of encodeFromTill, factored out so reserving
// mode can run it without emitting any clauses.
func (n *internalNode) reserveVarsFromTill(minEnc, maxEnc uint64, vm vars.Manager) {
	if minEnc > maxEnc {
		return
	}

	leftEntries := n.left.entriesView()
	rightEntries := n.right.entriesView()

	for _, e := range rangeInclusive(leftEntries, minEnc, maxEnc) {
		n.outLits.ensure(e.value, vm)
	}
	for _, e := range rangeInclusive(rightEntries, minEnc, maxEnc) {
		n.outLits.ensure(e.value, vm)
	}

	if maxEnc < 2 {
		return
	}

	for _, le := range rangeInclusive(leftEntries, 1, maxEnc-1) {
		rightMin := uint64(0)
		if minEnc > le.value {
			rightMin = minEnc - le.value
		}
		rightMax := maxEnc - le.value

		for _, re := range rangeInclusive(rightEntries, rightMin, rightMax) {
			sum := le.value + re.value
			if sum > maxEnc || sum < minEnc {
				continue
			}
			n.outLits.ensure(sum, vm)
		}
	}
}

// encodeFromTill is the node encoding kernel: it emits clauses making
// this node's output literals faithfully represent "sum of descendants
// >= v" for every v in [minEnc, maxEnc] ∩ (0, maxVal].
func (n *internalNode) encodeFromTill(minEnc, maxEnc uint64, vm vars.Manager, sink clause.Sink) {
	if minEnc > maxEnc {
		return
	}

	n.reserveVarsFromTill(minEnc, maxEnc, vm)

	if minEnc > n.maxValV {
		return
	}

	leftEntries := n.left.entriesView()
	rightEntries := n.right.entriesView()

	// Left propagation: ℓₐ → out_lits[a] for a in [minEnc, maxEnc].
	for _, e := range rangeInclusive(leftEntries, minEnc, maxEnc) {
		out, _ := n.outLits.get(e.value)
		sink.AddImplication(e.lit, out)
	}
	// Right propagation: symmetric.
	for _, e := range rangeInclusive(rightEntries, minEnc, maxEnc) {
		out, _ := n.outLits.get(e.value)
		sink.AddImplication(e.lit, out)
	}

	if maxEnc < 2 {
		return
	}

	// Sum propagation: (ℓₐ ∧ ℓᵦ) → out_lits[a+b] for a in (0, maxEnc),
	// b in [max(minEnc-a, 0), maxEnc-a], whenever a+b lands in the window.
	for _, le := range rangeInclusive(leftEntries, 1, maxEnc-1) {
		rightMin := uint64(0)
		if minEnc > le.value {
			rightMin = minEnc - le.value
		}
		rightMax := maxEnc - le.value

		for _, re := range rangeInclusive(rightEntries, rightMin, rightMax) {
			sum := le.value + re.value
			if sum > maxEnc || sum < minEnc {
				continue
			}
			out, _ := n.outLits.get(sum)
			sink.AddCubeImplication([]literal.Literal{le.lit, re.lit}, out)
		}
	}
}

// computeRequiredMinEnc narrows the window a child needs to see, given
// the parent's requested window and the child's sibling. The
// sibling-is-leaf threshold (requested min > 2 before shrinking by
// exactly 1) is the canonical formula from the underlying construction
// (Joshi, Martins & Manquinho, CP 2015) and must not be "improved" — a
// max(min-w,1) formulation would change clause counts and break
// determinism against any oracle built on the original algorithm.
func computeRequiredMinEnc(minEncRequested, maxEncRequested uint64, sibling adderNode) uint64 {
	if _, isLeaf := sibling.(*leafNode); isLeaf {
		if minEncRequested > 2 {
			return minEncRequested - 1
		}

		return 1
	}

	siblingMax := sibling.maxVal()
	if maxEncRequested < siblingMax {
		if minEncRequested > maxEncRequested {
			return minEncRequested - maxEncRequested
		}

		return 1
	}
	if minEncRequested > siblingMax {
		return minEncRequested - siblingMax
	}

	return 1
}

func (n *internalNode) encodeRec(minEnc, maxEnc uint64, vm vars.Manager, sink clause.Sink) {
	leftMinEnc := computeRequiredMinEnc(minEnc, maxEnc, n.right)
	rightMinEnc := computeRequiredMinEnc(minEnc, maxEnc, n.left)

	n.left.encodeRec(leftMinEnc, maxEnc, vm, sink)
	n.right.encodeRec(rightMinEnc, maxEnc, vm, sink)

	before := sink.Len()
	n.encodeFromTill(minEnc, maxEnc, vm, sink)
	added := sink.Len() - before

	hi := maxEnc
	if n.maxValV < hi {
		hi = n.maxValV
	}
	n.minMax = &encWindow{lo: minEnc, hi: hi}
	n.nClauses += added
}

func (n *internalNode) encodeChangeRec(minEnc, maxEnc uint64, vm vars.Manager, sink clause.Sink) {
	leftMinEnc := computeRequiredMinEnc(minEnc, maxEnc, n.right)
	rightMinEnc := computeRequiredMinEnc(minEnc, maxEnc, n.left)

	n.left.encodeChangeRec(leftMinEnc, maxEnc, vm, sink)
	n.right.encodeChangeRec(rightMinEnc, maxEnc, vm, sink)

	before := sink.Len()
	switch {
	case n.minMax == nil:
		n.encodeFromTill(minEnc, maxEnc, vm, sink)
	default:
		old := n.minMax
		if minEnc < old.lo {
			n.encodeFromTill(minEnc, old.lo-1, vm, sink)
		}
		if maxEnc > old.hi {
			n.encodeFromTill(old.hi+1, maxEnc, vm, sink)
		}
	}
	added := sink.Len() - before

	if n.minMax == nil {
		hi := maxEnc
		if n.maxValV < hi {
			hi = n.maxValV
		}
		n.minMax = &encWindow{lo: minEnc, hi: hi}
	} else {
		lo := n.minMax.lo
		if minEnc < lo {
			lo = minEnc
		}
		hi := n.minMax.hi
		if maxEnc > hi {
			hi = maxEnc
		}
		if n.maxValV < hi {
			hi = n.maxValV
		}
		n.minMax = &encWindow{lo: lo, hi: hi}
	}
	n.nClauses += added
}
