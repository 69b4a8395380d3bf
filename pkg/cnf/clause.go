package cnf

import "strings"

// Clause is a disjunction of literals. Literal order is preserved and
// duplicates are kept as given. A clause with no literals can never
// be satisfied; a clause with exactly one literal is a unit clause
// and forces that literal's value.
type Clause []Literal

// Empty reports whether the clause has no literals.
func (c Clause) Empty() bool {
	return len(c) == 0
}

// Unit reports whether the clause forces its only literal.
func (c Clause) Unit() bool {
	return len(c) == 1
}

// Contains reports whether the clause holds an occurrence of lit.
func (c Clause) Contains(lit Literal) bool {
	for _, l := range c {
		if l == lit {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the clause.
func (c Clause) Clone() Clause {
	out := make(Clause, len(c))
	copy(out, c)
	return out
}

// String implements fmt.Stringer and renders the clause as
// space-separated DIMACS literals.
func (c Clause) String() string {
	s := make([]string, len(c))
	for i, l := range c {
		s[i] = l.String()
	}
	return strings.Join(s, " ")
}
