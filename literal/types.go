package literal

import "fmt"

// Variable is a fresh Boolean variable handle minted by a vars.Manager.
// The zero Variable is never minted and denotes "undefined".
type Variable uint32

// String renders the variable the way DIMACS tooling names them ("x12").
func (v Variable) String() string {
	return fmt.Sprintf("x%d", uint32(v))
}

// Pos returns the positive literal of v.
func (v Variable) Pos() Literal {
	return Literal{variable: v, negated: false}
}

// Neg returns the negative literal of v.
func (v Variable) Neg() Literal {
	return Literal{variable: v, negated: true}
}

// Literal is a Variable together with a polarity. Two literals are equal
// iff they share both the variable and the polarity, so Literal is safe
// to use as a map key without a custom Equal/Hash pair.
type Literal struct {
	variable Variable
	negated  bool
}

// NewLiteral builds the literal for v with the given polarity (negated
// true meaning ¬v).
func NewLiteral(v Variable, negated bool) Literal {
	return Literal{variable: v, negated: negated}
}

// Var strips the polarity, returning the underlying Variable.
func (l Literal) Var() Variable {
	return l.variable
}

// Negated reports whether l is the negative literal of its variable.
func (l Literal) Negated() bool {
	return l.negated
}

// Negate returns ¬l, leaving the underlying variable unchanged.
func (l Literal) Negate() Literal {
	return Literal{variable: l.variable, negated: !l.negated}
}

// String renders the literal the way DIMACS clauses print it ("-x12" / "x12").
func (l Literal) String() string {
	if l.negated {
		return "-" + l.variable.String()
	}

	return l.variable.String()
}
