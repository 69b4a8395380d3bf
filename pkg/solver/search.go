package solver

import (
	"context"
	"errors"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

// search is the branch-and-backtrack core of the DPLL procedure.
// Each invocation owns clauses and asg outright; branches explore
// independent snapshots, so backtracking is just returning from a
// failed branch rather than undoing mutations.
func (s *Solver) search(ctx context.Context, clauses []cnf.Clause, asg cnf.Assignment, depth int) (cnf.Assignment, error) {
	if ctx.Err() != nil {
		return nil, ErrIncomplete
	}

	clauses, err := propagate(clauses, asg)
	if err != nil {
		return nil, ErrNotSatisfiable
	}
	if len(clauses) == 0 {
		return asg, nil
	}
	// a clause the caller added empty survives propagation untouched
	for _, c := range clauses {
		if c.Empty() {
			return nil, ErrNotSatisfiable
		}
	}

	// branch on the variable of the first literal of the first
	// remaining clause, trying true before false
	v := clauses[0][0].Var
	s.tracer.Trace(searchPosition{variable: v, depth: depth, assignment: asg})

	trueAsg := asg.Clone()
	trueAsg.Assign(v, true)
	if reduced, err := simplify(clauses, cnf.Pos(v)); err == nil {
		result, err := s.search(ctx, reduced, trueAsg, depth+1)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrIncomplete) {
			return nil, err
		}
	}

	falseAsg := asg.Clone()
	falseAsg.Assign(v, false)
	if reduced, err := simplify(clauses, cnf.Neg(v)); err == nil {
		return s.search(ctx, reduced, falseAsg, depth+1)
	}

	return nil, ErrNotSatisfiable
}
