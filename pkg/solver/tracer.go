package solver

import (
	"fmt"
	"io"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

// SearchPosition describes a branching decision: the variable about
// to be decided, the decision depth, and the partial assignment
// accumulated so far.
type SearchPosition interface {
	Variable() int
	Depth() int
	Assignment() cnf.Assignment
}

type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nBranching on variable %d at depth %d\nAssigned:\n", p.Variable(), p.Depth())
	for _, v := range p.Assignment().Assigned() {
		fmt.Fprintf(t.Writer, "- %d = %t\n", v, p.Assignment().Value(v).True())
	}
}

type searchPosition struct {
	variable   int
	depth      int
	assignment cnf.Assignment
}

func (p searchPosition) Variable() int {
	return p.variable
}

func (p searchPosition) Depth() int {
	return p.depth
}

func (p searchPosition) Assignment() cnf.Assignment {
	return p.assignment
}
