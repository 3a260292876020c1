// Package vars defines the variable-manager collaborator contract that the
// gte package borrows mutably for the duration of any encode or reserve
// call (see gte's doc.go for the borrowing rule), plus BasicManager, a
// minimal deterministic allocator for callers — tests, examples — that do
// not already have one wired to a SAT solver's own variable pool.
//
// Variable IDs are minted in strictly increasing order starting at 1:
// NextFree never returns the same Variable twice, and two managers fed
// identical call sequences mint identical IDs. This determinism is a hard
// contract for gte (see gte's doc.go, "Concurrency") — downstream tooling
// that diffs clause sets across runs relies on it.
//
// BasicManager is not safe for concurrent use, matching the single-
// threaded cooperative model the whole module follows.
package vars
