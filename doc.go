// Package gte (github.com/katalvlaran/gte) implements the Generalized
// Totalizer Encoding: translating a weighted sum of Boolean literals into
// propositional clauses that constrain the sum against an upper or lower
// bound, incrementally and only over the bound window a caller actually
// needs. See Joshi, Martins & Manquinho, "Generalized Totalizer Encoding
// for Pseudo-Boolean Constraints" (CP 2015), for the underlying
// construction.
//
// Under the hood, the module is organized into small, single-purpose
// packages:
//
//   - literal   — Boolean Variable and Literal value types
//   - vars      — the variable-manager collaborator contract and a basic
//     deterministic implementation
//   - clause    — the CNF clause sink and container
//   - gte       — this package: the adder-tree construction and encoding
//     kernel, plus Encoder (upper bound), Inverted (lower bound), and
//     Double
//   - totalizer — the unit-weight cardinality specialization of gte
//
// # Encoders
//
// Encoder encodes upper bounds (∑ wᵢ·ℓᵢ ≤ ub) directly. Inverted encodes
// lower bounds (∑ wᵢ·ℓᵢ ≥ lb) by negating inputs into an internal
// upper-bound tree and reflecting bounds through the total input weight.
// Double composes one of each, sharing nothing but an input broadcast —
// it is not a particularly efficient encoding (it duplicates the adder
// tree), and exists only for callers that need both directions from a
// single input stream.
//
//	enc := gte.NewEncoder()
//	enc.Add(map[literal.Literal]uint64{a: 5, b: 3})
//	vm := vars.NewBasicManager()
//	cnf, err := enc.EncodeUB(0, 8, vm)
//	...
//	assumps, err := enc.EnforceUB(4)
//
// # Incremental encoding
//
// EncodeUB re-encodes its window from scratch on every call and is
// cheapest the first time a given window is needed. EncodeUBChange tracks,
// per tree node, the window already materialized and only emits the
// newly-uncovered slice on each call — the right choice for optimization
// loops that call GTE repeatedly with shrinking or widening bounds.
// Property: running EncodeUB once over [lo, hi] emits the same total
// clause set (modulo order) as EncodeUB over a narrower window followed by
// EncodeUBChange widening it to [lo, hi].
//
// # Concurrency
//
// An Encoder/Inverted/Double is single-threaded cooperative: every method
// runs to completion on the calling goroutine, there is no internal
// parallelism, and an instance is not safe for concurrent mutation. This
// is the opposite of lvlath/core.Graph, which is internally locked for
// exactly the reason GTE is not: a SAT-solver integration loop calls
// encode/enforce serially against one variable manager, and there is no
// benefit to locking half an adder tree for a caller that never shares it
// across goroutines.
//
// Variable IDs are minted in a deterministic order for a given sequence of
// Add/EncodeUB(Change) calls: two runs with a fresh vars.Manager each mint
// identical variable IDs and emit identical clauses (modulo the ordering
// guarantees the vars.Manager itself makes). This holds even though Go's
// map iteration order is randomized per process — Add only sums weights,
// which does not depend on order, extend's subtree construction sorts by
// weight with an explicit, fully-ordered tie-break (variable id, then
// polarity) before ever touching the tree, and enforcement sorts literals
// before emitting assumptions, so no step depends on map iteration order.
package gte
