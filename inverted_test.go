package gte_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gte"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/vars"
)

func TestInverted_EncodeLB_Basic(t *testing.T) {
	require := require.New(t)

	inv := gte.NewInverted()
	vm := vars.NewBasicManager()
	inv.Add(map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 3,
	})

	cnf, err := inv.EncodeLB(0, 8, vm)
	require.NoError(err)
	require.Equal(3, cnf.Len())
	require.Equal(3, inv.NClauses())
}

// A lower bound at or above the total input weight is unsatisfiable.
func TestInverted_EnforceLB_UnsatWhenBoundMeetsTotal(t *testing.T) {
	require := require.New(t)

	inv := gte.NewInverted()
	inv.Add(map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 3,
	})

	_, err := inv.EnforceLB(8)
	require.Error(err)
	require.True(errors.Is(err, gte.ErrUnsat))
}

func TestInverted_EncodeLB_InvalidLimits(t *testing.T) {
	require := require.New(t)

	inv := gte.NewInverted()
	vm := vars.NewBasicManager()
	inv.Add(map[literal.Literal]uint64{v(1).Pos(): 1})

	_, err := inv.EncodeLB(5, 2, vm)
	require.Error(err)
	require.True(errors.Is(err, gte.ErrInvalidLimits))
}

func TestInverted_EnforceLB_AfterEncode(t *testing.T) {
	require := require.New(t)

	inv := gte.NewInverted()
	vm := vars.NewBasicManager()
	inv.Add(map[literal.Literal]uint64{
		v(1).Pos(): 5,
		v(2).Pos(): 3,
	})

	_, err := inv.EncodeLB(0, 8, vm)
	require.NoError(err)

	assumps, err := inv.EnforceLB(3)
	require.NoError(err)
	require.NotNil(assumps)
}
