// Package literal defines the polarity-tagged Boolean variable references
// that flow through the rest of the gte module: Variable, the bare integer
// handle minted by a vars.Manager, and Literal, a Variable plus a sign.
//
// Variable 0 is reserved as the zero value meaning "no variable", the same
// way lvlath/core reserves the empty string as "no vertex ID" — callers
// should never mint variable 0 from a vars.Manager.
//
// Literal is a small value type (one uint32, one bool) so it can be used
// directly as a map key: the adder tree's input buffer and internalized
// inputs are both map[Literal]uint64, and equality/hashing follow Go's
// built-in struct comparison — no custom Hash or Equal method is needed.
package literal
