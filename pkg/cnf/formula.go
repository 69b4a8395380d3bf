package cnf

import "fmt"

// Formula is a conjunction of clauses over a declared variable
// universe. It is populated through AddClause before solving begins
// and treated as read-only afterwards; solvers operate on working
// copies obtained through Clauses, never on the formula itself.
type Formula struct {
	numVars int
	clauses []Clause
}

// New returns an empty formula over variables 1..numVars.
func New(numVars int) *Formula {
	return &Formula{numVars: numVars}
}

// AddClause appends the disjunction of lits to the formula. Adding a
// clause with no literals makes the formula unsatisfiable. Literals
// must reference variables inside the declared universe;
// out-of-range variables are rejected rather than silently widening
// the universe.
func (f *Formula) AddClause(lits ...Literal) error {
	for _, l := range lits {
		if l.Var < 1 || l.Var > f.numVars {
			return fmt.Errorf("literal %s: variable out of range [1, %d]", l, f.numVars)
		}
	}
	clause := make(Clause, len(lits))
	copy(clause, lits)
	f.clauses = append(f.clauses, clause)
	return nil
}

// NumVars returns the size of the declared variable universe.
func (f *Formula) NumVars() int {
	return f.numVars
}

// Len returns the number of clauses added so far.
func (f *Formula) Len() int {
	return len(f.clauses)
}

// Clauses returns an independent deep copy of the formula's clauses
// in insertion order, suitable as a solver's working copy.
func (f *Formula) Clauses() []Clause {
	out := make([]Clause, len(f.clauses))
	for i, c := range f.clauses {
		out[i] = c.Clone()
	}
	return out
}

// Satisfied reports whether asg satisfies every clause of the
// formula. An empty formula is trivially satisfied.
func (f *Formula) Satisfied(asg Assignment) bool {
	for _, c := range f.clauses {
		satisfied := false
		for _, l := range c {
			if asg.Satisfies(l) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
