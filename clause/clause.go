package clause

import "github.com/katalvlaran/gte/literal"

// Clause is a disjunction of literals.
type Clause []literal.Literal

// Sink is the external clause-container collaborator described in spec
// §6: it accepts the two clause shapes the GTE kernel ever produces and
// reports how many it has accumulated.
type Sink interface {
	// AddImplication records the binary clause {¬lit, out}, i.e. lit → out.
	AddImplication(lit, out literal.Literal)

	// AddCubeImplication records the clause {¬cube[0], ¬cube[1], ..., out},
	// i.e. (cube[0] ∧ cube[1] ∧ ...) → out.
	AddCubeImplication(cube []literal.Literal, out literal.Literal)

	// Len reports the number of clauses accumulated so far.
	Len() int
}

// CNF is a concrete, ordered Sink: a growing slice of clauses in emission
// order. The zero value is an empty, ready-to-use CNF.
type CNF struct {
	clauses []Clause
}

// New returns an empty CNF.
func New() *CNF {
	return &CNF{}
}

// AddImplication appends lit → out as the binary clause {¬lit, out}.
func (c *CNF) AddImplication(lit, out literal.Literal) {
	c.clauses = append(c.clauses, Clause{lit.Negate(), out})
}

// AddCubeImplication appends (cube) → out as {¬cube..., out}.
func (c *CNF) AddCubeImplication(cube []literal.Literal, out literal.Literal) {
	cl := make(Clause, 0, len(cube)+1)
	for _, l := range cube {
		cl = append(cl, l.Negate())
	}
	cl = append(cl, out)
	c.clauses = append(c.clauses, cl)
}

// Len reports the number of clauses held.
func (c *CNF) Len() int {
	return len(c.clauses)
}

// Clauses returns the accumulated clauses in emission order. The
// returned slice aliases CNF's internal storage and must not be mutated.
func (c *CNF) Clauses() []Clause {
	return c.clauses
}

// Merge appends other's clauses to c in order, the way
// lvlath/matrix's elementwise ops combine two accumulators in place.
func (c *CNF) Merge(other *CNF) {
	if other == nil {
		return
	}
	c.clauses = append(c.clauses, other.clauses...)
}
