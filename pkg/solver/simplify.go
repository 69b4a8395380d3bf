package solver

import (
	"errors"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

// errConflict signals that the current branch's assignment
// contradicts the formula.
var errConflict = errors.New("conflict")

// simplify applies the consequences of lit holding to a working
// formula: clauses containing lit are satisfied and dropped, and
// every occurrence of the opposite literal is struck from the
// remaining clauses. Striking the last literal of a clause leaves it
// empty, meaning the branch is inconsistent; simplify reports that
// as errConflict.
//
// simplify never mutates its input; untouched clauses are shared
// with the result and reduced clauses are freshly allocated, so two
// branches can start from the same snapshot safely.
func simplify(clauses []cnf.Clause, lit cnf.Literal) ([]cnf.Clause, error) {
	not := lit.Not()
	out := make([]cnf.Clause, 0, len(clauses))
	for _, c := range clauses {
		if c.Contains(lit) {
			continue
		}
		if !c.Contains(not) {
			out = append(out, c)
			continue
		}
		reduced := make(cnf.Clause, 0, len(c)-1)
		for _, l := range c {
			if l != not {
				reduced = append(reduced, l)
			}
		}
		if reduced.Empty() {
			return nil, errConflict
		}
		out = append(out, reduced)
	}
	return out, nil
}
