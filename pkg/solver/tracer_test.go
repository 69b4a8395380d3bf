package solver

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

type recordingTracer struct {
	variables []int
	depths    []int
}

func (t *recordingTracer) Trace(p SearchPosition) {
	t.variables = append(t.variables, p.Variable())
	t.depths = append(t.depths, p.Depth())
}

func TestTracerSeesDecisions(t *testing.T) {
	// propagation alone cannot solve this, so the solver must
	// branch on variable 1 first
	f := formula(t, 2,
		cnf.Clause{cnf.Pos(1), cnf.Pos(2)},
		cnf.Clause{cnf.Neg(1), cnf.Neg(2)},
	)

	tracer := &recordingTracer{}
	s, err := New(WithFormula(f), WithTracer(tracer))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, tracer.variables)
	assert.Equal(t, 1, tracer.variables[0])
	assert.Equal(t, 0, tracer.depths[0])
}

func TestTracerSilentOnPropagationOnly(t *testing.T) {
	f := formula(t, 1, cnf.Clause{cnf.Pos(1)})

	tracer := &recordingTracer{}
	s, err := New(WithFormula(f), WithTracer(tracer))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tracer.variables)
}

func TestLoggingTracer(t *testing.T) {
	var buf bytes.Buffer

	f := formula(t, 2,
		cnf.Clause{cnf.Pos(1), cnf.Pos(2)},
		cnf.Clause{cnf.Neg(1), cnf.Neg(2)},
	)

	s, err := New(WithFormula(f), WithTracer(LoggingTracer{Writer: &buf}))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Branching on variable 1 at depth 0")
}
