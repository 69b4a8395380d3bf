package solver

import (
	"github.com/loveland-solver/loveland/pkg/cnf"
)

// propagate resolves unit clauses until none remain. Units are
// consumed in clause order: each scan picks the first unit clause it
// encounters, so reordering clauses changes which unit fires first
// but never the verdict.
//
// propagate extends asg in place (the caller owns it) and returns
// the simplified working formula. An empty returned formula means
// every clause has been satisfied. It fails with errConflict when a
// forced value contradicts an earlier assignment or a clause is
// reduced to empty.
func propagate(clauses []cnf.Clause, asg cnf.Assignment) ([]cnf.Clause, error) {
	for {
		var lit cnf.Literal
		found := false
		for _, c := range clauses {
			if c.Unit() {
				lit, found = c[0], true
				break
			}
		}
		if !found {
			return clauses, nil
		}

		forced := !lit.Negated
		if v := asg.Value(lit.Var); !v.Undef() && v.True() != forced {
			return nil, errConflict
		}
		asg.Assign(lit.Var, forced)

		var err error
		clauses, err = simplify(clauses, lit)
		if err != nil {
			return nil, err
		}
		if len(clauses) == 0 {
			return clauses, nil
		}
	}
}
