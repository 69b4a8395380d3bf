package cnf

import "strconv"

// Literal is a signed reference to a variable: the variable's
// identifier together with a polarity. A positive literal is
// satisfied when its variable is assigned true, a negated literal
// when its variable is assigned false. Equality is structural.
type Literal struct {
	Var     int
	Negated bool
}

// Pos returns the positive literal for variable v.
func Pos(v int) Literal {
	return Literal{Var: v}
}

// Neg returns the negated literal for variable v.
func Neg(v int) Literal {
	return Literal{Var: v, Negated: true}
}

// Not returns the literal of opposite polarity on the same variable.
func (l Literal) Not() Literal {
	return Literal{Var: l.Var, Negated: !l.Negated}
}

// Dimacs returns the literal in DIMACS convention: the variable
// identifier, negative when the literal is negated.
func (l Literal) Dimacs() int {
	if l.Negated {
		return -l.Var
	}
	return l.Var
}

// String implements fmt.Stringer using the DIMACS convention.
func (l Literal) String() string {
	return strconv.Itoa(l.Dimacs())
}
