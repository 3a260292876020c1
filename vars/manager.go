package vars

import "github.com/katalvlaran/gte/literal"

// Manager is the external variable-manager collaborator: a serial
// allocator of fresh Boolean variable IDs, borrowed mutably by gte for
// the duration of any encode or reserve call.
//
// Implementations must guarantee NextFree returns distinct variables on
// successive calls and that NUsed never decreases.
type Manager interface {
	// NextFree mints and returns a fresh Variable.
	NextFree() literal.Variable

	// NUsed returns the number of variables minted so far.
	NUsed() int

	// IncreaseNextFree raises the internal counter so the next minted
	// Variable is >= v. It never lowers the counter.
	IncreaseNextFree(v literal.Variable)
}

// BasicManager is a minimal, deterministic Manager: a monotone counter
// starting below variable 1. It carries no pooling, no recycling, and no
// locking — purely the plumbing role a variable manager needs to play.
type BasicManager struct {
	next literal.Variable
}

// NewBasicManager returns an empty BasicManager whose first NextFree call
// mints variable 1.
func NewBasicManager() *BasicManager {
	return &BasicManager{next: 1}
}

// NextFree mints the next Variable and advances the counter.
func (m *BasicManager) NextFree() literal.Variable {
	v := m.next
	m.next++

	return v
}

// NUsed reports how many variables have been minted, i.e. next-1.
func (m *BasicManager) NUsed() int {
	return int(m.next) - 1
}

// IncreaseNextFree raises the counter so the next mint is >= v. A v that
// does not exceed the current counter is a no-op.
func (m *BasicManager) IncreaseNextFree(v literal.Variable) {
	if v > m.next {
		m.next = v
	}
}

// Clone returns an independent copy of m, sharing no state. Two
// incremental encode branches that both need to start from the same
// variable counter can clone a manager rather than share one, the way the
// original Rust BasicVarManager derives Clone for the same purpose.
func (m *BasicManager) Clone() *BasicManager {
	return &BasicManager{next: m.next}
}
