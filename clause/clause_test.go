package clause_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gte/clause"
	"github.com/katalvlaran/gte/literal"
)

func TestCNF_AddImplication(t *testing.T) {
	require := require.New(t)

	c := clause.New()
	a := literal.Variable(1).Pos()
	b := literal.Variable(2).Pos()
	c.AddImplication(a, b)

	require.Equal(1, c.Len())
	require.Equal(clause.Clause{a.Negate(), b}, c.Clauses()[0])
}

func TestCNF_AddCubeImplication(t *testing.T) {
	require := require.New(t)

	c := clause.New()
	a := literal.Variable(1).Pos()
	b := literal.Variable(2).Neg()
	out := literal.Variable(3).Pos()
	c.AddCubeImplication([]literal.Literal{a, b}, out)

	require.Equal(1, c.Len())
	require.Equal(clause.Clause{a.Negate(), b.Negate(), out}, c.Clauses()[0])
}

func TestCNF_Merge(t *testing.T) {
	require := require.New(t)

	c1 := clause.New()
	c1.AddImplication(literal.Variable(1).Pos(), literal.Variable(2).Pos())
	c2 := clause.New()
	c2.AddImplication(literal.Variable(3).Pos(), literal.Variable(4).Pos())

	c1.Merge(c2)
	require.Equal(2, c1.Len())

	c1.Merge(nil)
	require.Equal(2, c1.Len())
}
