// Package clause defines the clause-container collaborator contract, Sink,
// plus CNF, a concrete ordered accumulator of propositional clauses.
//
// The gte package never builds a clause by hand: it only ever asks a Sink
// to record a binary implication (lit → out) or a cube implication
// ((lit1 ∧ lit2) → out), so CNF's two Add methods are the entire surface
// the encoding kernel needs. Clauses are appended in emission order and
// never rewritten or deduplicated — the incremental contract ("no
// previously emitted clause is re-emitted") is enforced by gte's own
// encoding-window bookkeeping, not by this package.
package clause
