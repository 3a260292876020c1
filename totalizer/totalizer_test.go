package totalizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gte"
	"github.com/katalvlaran/gte/literal"
	"github.com/katalvlaran/gte/totalizer"
	"github.com/katalvlaran/gte/vars"
)

func lv(id uint32) literal.Literal { return literal.Variable(id).Pos() }

// TestTotalizer_EqualsUnitWeightGTE checks that a Totalizer over 7
// unit-weight literals is indistinguishable, in clause count and variable
// consumption, from a gte.Encoder fed the same 7 literals each weighted 1.
func TestTotalizer_EqualsUnitWeightGTE(t *testing.T) {
	require := require.New(t)

	lits := []literal.Literal{lv(0), lv(1), lv(2), lv(3), lv(4), lv(5), lv(6)}

	vmTot := vars.NewBasicManager()
	vmTot.IncreaseNextFree(literal.Variable(7))
	tot := totalizer.NewEncoder()
	tot.Add(lits)
	totCNF, err := tot.EncodeUB(3, 7, vmTot)
	require.NoError(err)

	vmGTE := vars.NewBasicManager()
	vmGTE.IncreaseNextFree(literal.Variable(7))
	weighted := make(map[literal.Literal]uint64, len(lits))
	for _, l := range lits {
		weighted[l] = 1
	}
	raw := gte.NewEncoder()
	raw.Add(weighted)
	gteCNF, err := raw.EncodeUB(3, 7, vmGTE)
	require.NoError(err)

	require.Equal(vmGTE.NUsed(), vmTot.NUsed())
	require.Equal(gteCNF.Len(), totCNF.Len())
	require.Equal(raw.NClauses(), tot.NClauses())
}

func TestTotalizer_Inverted_EqualsUnitWeightGTE(t *testing.T) {
	require := require.New(t)

	lits := []literal.Literal{lv(0), lv(1), lv(2), lv(3)}

	vmTot := vars.NewBasicManager()
	tot := totalizer.NewInverted()
	tot.Add(lits)
	totCNF, err := tot.EncodeLB(1, 3, vmTot)
	require.NoError(err)

	vmGTE := vars.NewBasicManager()
	weighted := make(map[literal.Literal]uint64, len(lits))
	for _, l := range lits {
		weighted[l] = 1
	}
	raw := gte.NewInverted()
	raw.Add(weighted)
	gteCNF, err := raw.EncodeLB(1, 3, vmGTE)
	require.NoError(err)

	require.Equal(vmGTE.NUsed(), vmTot.NUsed())
	require.Equal(gteCNF.Len(), totCNF.Len())
}
