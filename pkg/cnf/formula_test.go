package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaAddClause(t *testing.T) {
	f := New(2)
	require.NoError(t, f.AddClause(Pos(1), Neg(2)))
	require.NoError(t, f.AddClause(Pos(2)))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 2, f.NumVars())
}

func TestFormulaAddEmptyClause(t *testing.T) {
	f := New(1)
	require.NoError(t, f.AddClause())
	assert.Equal(t, []Clause{{}}, f.Clauses())
}

func TestFormulaRejectsOutOfRangeVariables(t *testing.T) {
	f := New(2)
	assert.Error(t, f.AddClause(Pos(3)))
	assert.Error(t, f.AddClause(Pos(0)))
	assert.Error(t, f.AddClause(Neg(-1)))
	assert.Error(t, f.AddClause(Pos(1), Neg(3)))
	assert.Equal(t, 0, f.Len())
}

func TestFormulaClausesAreIndependent(t *testing.T) {
	f := New(2)
	require.NoError(t, f.AddClause(Pos(1), Pos(2)))

	working := f.Clauses()
	working[0][0] = Neg(2)

	assert.Equal(t, []Clause{{Pos(1), Pos(2)}}, f.Clauses())
}

func TestFormulaSatisfied(t *testing.T) {
	f := New(2)
	require.NoError(t, f.AddClause(Pos(1), Pos(2)))
	require.NoError(t, f.AddClause(Neg(1), Pos(2)))

	asg := NewAssignment(2)
	assert.False(t, f.Satisfied(asg))

	asg.Assign(2, true)
	assert.True(t, f.Satisfied(asg))

	asg.Assign(2, false)
	asg.Assign(1, true)
	assert.False(t, f.Satisfied(asg))
}

func TestEmptyFormulaSatisfied(t *testing.T) {
	assert.True(t, New(0).Satisfied(NewAssignment(0)))
}
