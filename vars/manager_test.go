package vars_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gte/vars"
)

func TestBasicManager_NextFreeIsMonotoneAndDistinct(t *testing.T) {
	require := require.New(t)

	m := vars.NewBasicManager()
	a := m.NextFree()
	b := m.NextFree()
	c := m.NextFree()

	require.NotEqual(a, b)
	require.NotEqual(b, c)
	require.Equal(3, m.NUsed())
}

func TestBasicManager_IncreaseNextFreeNeverLowersCounter(t *testing.T) {
	require := require.New(t)

	m := vars.NewBasicManager()
	_ = m.NextFree()
	_ = m.NextFree()
	require.Equal(2, m.NUsed())

	m.IncreaseNextFree(1) // below current counter: no-op
	require.Equal(2, m.NUsed())

	m.IncreaseNextFree(10)
	require.Equal(9, m.NUsed())

	v := m.NextFree()
	require.Equal(10, m.NUsed())
	require.Equal(10, int(v))
}

func TestBasicManager_CloneIsIndependent(t *testing.T) {
	require := require.New(t)

	m1 := vars.NewBasicManager()
	_ = m1.NextFree()
	m2 := m1.Clone()

	_ = m1.NextFree()
	require.Equal(2, m1.NUsed())
	require.Equal(1, m2.NUsed())
}
