package gte

import (
	"sort"

	"github.com/katalvlaran/gte/literal"
)

// weightedLit pairs a literal with its weight, the unit buildTree and
// tree.extend operate on.
type weightedLit struct {
	lit    literal.Literal
	weight uint64
}

// buildTree recursively builds a balanced binary adder tree over lits,
// which must already be sorted by weight ascending and non-empty. The
// ascending-weight split places low-weight leaves together, which
// empirically minimizes the distinct pairwise sums near low output
// values — directly reducing clauses for small upper bounds, the common
// case in optimization loops.
//
// Recursion depth is log2(len(lits)); buildTree is only ever called on
// the literals newly admitted by one tree.extend call, so this never
// approaches Go's goroutine stack limits in practice.
func buildTree(lits []weightedLit) adderNode {
	if len(lits) == 0 {
		panic("gte: buildTree called with empty input")
	}
	if len(lits) == 1 {
		return newLeaf(lits[0].lit, lits[0].weight)
	}

	mid := len(lits) / 2
	left := buildTree(lits[:mid])
	right := buildTree(lits[mid:])

	return newInternalNode(left, right)
}

// sortWeightedLits sorts lits by weight ascending with a fully
// deterministic tie-break (variable id, then polarity). Go map iteration
// order is randomized per process, so without an explicit tie-break two
// runs over the same literals with equal weights could build different
// trees and mint variables in different orders — violating the
// determinism contract documented in doc.go. The original reference
// implementation sorts only by weight over a Rust HashMap iteration and
// inherits the same latent nondeterminism for tied weights; this
// tie-break closes that gap rather than reproducing it.
func sortWeightedLits(lits []weightedLit) {
	sort.Slice(lits, func(i, j int) bool {
		if lits[i].weight != lits[j].weight {
			return lits[i].weight < lits[j].weight
		}
		vi, vj := lits[i].lit.Var(), lits[j].lit.Var()
		if vi != vj {
			return vi < vj
		}

		return !lits[i].lit.Negated() && lits[j].lit.Negated()
	})
}

// sortLiterals sorts lits by (variable, polarity) for deterministic
// iteration over what would otherwise be Go's randomized map order, the
// same concern sortWeightedLits addresses for tree construction.
func sortLiterals(lits []literal.Literal) {
	sort.Slice(lits, func(i, j int) bool {
		vi, vj := lits[i].Var(), lits[j].Var()
		if vi != vj {
			return vi < vj
		}

		return !lits[i].Negated() && lits[j].Negated()
	})
}
