// Package totalizer implements the (unweighted) Totalizer encoding for
// cardinality constraints — ∑ ℓᵢ <= k or ∑ ℓᵢ >= k over plain literals —
// as the unit-weight specialization of the Generalized Totalizer Encoding
// in package gte. Every literal is admitted to the adder tree
// with weight 1; the adder-tree shape, clause counts, and variable
// consumption are then identical to a gte.Encoder fed the same literals
// each weighted 1, which is exactly how this package is tested against
// its parent.
package totalizer
