package gte_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gte"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

func v(id uint32) literal.Variable { return literal.Variable(id) }

// TestEncoder_FullAdderStats checks a balanced four-leaf adder tree: four
// literals with weights {5, 5, 3, 3} encoded over [0, 6] must produce a
// depth-3 tree and mint exactly 10 output variables.
func TestEncoder_FullAdderStats(t *testing.T) {
	require := require.New(t)

	enc := gte.NewEncoder()
	vm := vars.NewBasicManager()
	enc.Add(map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 5,
		v(3).Pos(): 3,
		v(4).Pos(): 3,
	})

	cnf, err := enc.EncodeUB(0, 6, vm)
	require.NoError(err)
	require.Equal(3, enc.Depth())
	require.Equal(10, enc.NVars())
	require.Equal(12, cnf.Len())
	require.Equal(12, enc.NClauses())
}

// Enforcing a bound at or above a still-buffered literal's weight (the
// weight-3 literals against ub 4), before any encoding has happened, fails
// ErrNotEncoded rather than silently under-constraining: those literals
// are not in the tree yet.
func TestEncoder_EnforceUB_BufferedOverweightLiteral(t *testing.T) {
	require := require.New(t)

	enc := gte.NewEncoder()
	enc.Add(map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 5,
		v(3).Pos(): 3,
		v(4).Pos(): 3,
	})

	_, err := enc.EnforceUB(4)
	require.Error(err)
	require.True(errors.Is(err, gte.ErrNotEncoded))
}

func TestEncoder_EncodeUB_InvalidLimits(t *testing.T) {
	require := require.New(t)

	enc := gte.NewEncoder()
	vm := vars.NewBasicManager()
	enc.Add(map[literal.Literal]uint64{v(1).Pos(): 1})

	_, err := enc.EncodeUB(5, 2, vm)
	require.Error(err)
	require.True(errors.Is(err, gte.ErrInvalidLimits))
}

// TestEncoder_EnforceUB_AfterFullEncode checks that once a bound's window
// is fully covered, EnforceUB returns without error and negates every
// output literal strictly above the bound.
func TestEncoder_EnforceUB_AfterFullEncode(t *testing.T) {
	require := require.New(t)

	enc := gte.NewEncoder()
	vm := vars.NewBasicManager()
	enc.Add(map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 3,
	})

	_, err := enc.EncodeUB(0, 8, vm)
	require.NoError(err)

	assumps, err := enc.EnforceUB(5)
	require.NoError(err)
	require.NotEmpty(assumps)
	for _, a := range assumps {
		require.True(a.Negated())
	}
}

// TestEncoder_IncrementalMatchesFullEncode checks that encoding a window
// in two incremental steps must emit exactly the clauses the single
// non-incremental call over the full window would, with no overlap and
// no gap.
func TestEncoder_IncrementalMatchesFullEncode(t *testing.T) {
	require := require.New(t)

	lits := map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 5,
		v(3).Pos(): 3,
		v(4).Pos(): 3,
	}

	full := gte.NewEncoder()
	vmFull := vars.NewBasicManager()
	full.Add(lits)
	cnfFull, err := full.EncodeUB(0, 6, vmFull)
	require.NoError(err)

	incremental := gte.NewEncoder()
	vmInc := vars.NewBasicManager()
	incremental.Add(lits)
	first, err := incremental.EncodeUBChange(0, 3, vmInc)
	require.NoError(err)
	second, err := incremental.EncodeUBChange(0, 6, vmInc)
	require.NoError(err)

	require.Equal(cnfFull.Len(), first.Len()+second.Len())
	require.Equal(full.NVars(), incremental.NVars())
	require.Equal(full.NClauses(), incremental.NClauses())
}

// TestEncoder_ReservingModeMintsUpfront checks that, over the same narrow
// encoding window, a reserving encoder mints strictly more variables than
// a lazy one — it reserves every output variable its subtree could ever
// need as soon as the subtree is built, rather than only those touched by
// the requested window.
func TestEncoder_ReservingModeMintsUpfront(t *testing.T) {
	require := require.New(t)

	lits := map[literal.Literal]uint64{
		v(1).Pos(): 1,
		v(2).Pos(): 1,
		v(3).Pos(): 1,
		v(4).Pos(): 1,
	}

	lazy := gte.NewEncoder()
	vmLazy := vars.NewBasicManager()
	lazy.Add(lits)
	_, err := lazy.EncodeUB(0, 1, vmLazy)
	require.NoError(err)

	reserving := gte.NewReservingEncoder()
	vmReserving := vars.NewBasicManager()
	reserving.Add(lits)
	_, err = reserving.EncodeUB(0, 1, vmReserving)
	require.NoError(err)

	require.Greater(vmReserving.NUsed(), vmLazy.NUsed())
}
