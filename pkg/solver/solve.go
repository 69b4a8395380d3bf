package solver

import (
	"context"
	"errors"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

// ErrNotSatisfiable is returned by Solve when no assignment can
// satisfy the formula.
var ErrNotSatisfiable = errors.New("formula not satisfiable")

// ErrIncomplete is returned when the context is cancelled before a
// verdict could be reached.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

// Solver runs the DPLL procedure over a single formula: unit
// propagation interleaved with branch-and-backtrack search.
type Solver struct {
	formula *cnf.Formula
	tracer  Tracer
}

// Solve searches to completion and returns a satisfying assignment,
// or ErrNotSatisfiable when none exists. The assignment may leave
// variables unconstrained by any clause unassigned. Given a fixed
// formula and clause insertion order the result is deterministic.
// Cancelling the context aborts the search with ErrIncomplete.
func (s *Solver) Solve(ctx context.Context) (cnf.Assignment, error) {
	return s.search(ctx, s.formula.Clauses(), cnf.NewAssignment(s.formula.NumVars()), 0)
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

func WithFormula(f *cnf.Formula) Option {
	return func(s *Solver) error {
		s.formula = f
		return nil
	}
}

func WithTracer(t Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.formula == nil {
			s.formula = cnf.New(0)
		}
		return nil
	},
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
