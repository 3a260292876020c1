package gte

import (
	"sort"

	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

// entry is one (value, literal) pair of an output map, or the synthetic
// singleton view of a leaf.
type entry struct {
	value uint64
	lit   literal.Literal
}

// outputMap is the ordered mapping from output value to output literal:
// a sorted structure supporting half-open/closed range queries, never a
// plain hash map, since the kernel needs ordered range scans far more
// often than point lookups. It is backed by a slice kept sorted by
// value, with sort.Search driving
// both point lookups and range queries — the same approach
// lvlath/tsp and lvlath/matrix take for their small ordered collections,
// rather than reaching for container/heap or a third-party tree map.
type outputMap struct {
	entries []entry
}

// get returns the literal minted for value v, if any.
func (m *outputMap) get(v uint64) (literal.Literal, bool) {
	i := m.search(v)
	if i < len(m.entries) && m.entries[i].value == v {
		return m.entries[i].lit, true
	}

	return literal.Literal{}, false
}

// ensure returns the literal for value v, minting one via vm and
// inserting it in sorted position if v is not yet present. A value is
// minted lazily on demand, the first time it falls inside an encoded
// window, and reused for every subsequent encoding that touches it.
func (m *outputMap) ensure(v uint64, vm vars.Manager) literal.Literal {
	i := m.search(v)
	if i < len(m.entries) && m.entries[i].value == v {
		return m.entries[i].lit
	}

	l := vm.NextFree().Pos()
	m.entries = append(m.entries, entry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry{value: v, lit: l}

	return l
}

// search returns the index of the first entry with value >= v.
func (m *outputMap) search(v uint64) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].value >= v })
}

// len reports how many distinct output values have been minted.
func (m *outputMap) len() int {
	return len(m.entries)
}

// rangeInclusive returns the entries of a sorted entry slice with
// lo <= value <= hi, ascending. It underlies every half-open/closed
// window query the kernel and the enforcement path perform.
func rangeInclusive(entries []entry, lo, hi uint64) []entry {
	if lo > hi {
		return nil
	}
	start := sort.Search(len(entries), func(i int) bool { return entries[i].value >= lo })
	end := sort.Search(len(entries), func(i int) bool { return entries[i].value > hi })
	if start >= end {
		return nil
	}

	return entries[start:end]
}
