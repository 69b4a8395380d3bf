package sudoku

import (
	"math/rand"
	"time"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

// GetID maps a board position and candidate number to a CNF
// variable. Rows, columns and numbers are all zero-based; the
// returned identifier is in 1..729.
func GetID(row int, col int, num int) int {
	return row*81 + col*9 + num + 1
}

// NewFormula encodes an empty 9x9 sudoku board as CNF: every cell
// holds at least one number, no cell holds two, and no row, column
// or 3x3 box repeats a number. The candidate order inside the
// at-least-one clauses is randomized so repeated runs produce
// different boards.
// adapted from: https://github.com/go-air/gini/blob/871d828a26852598db2b88f436549634ba9533ff/sudoku_test.go#L10
func NewFormula() (*cnf.Formula, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	f := cnf.New(9 * 9 * 9)

	// every cell has a number
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			lits := make([]cnf.Literal, 9)
			for n := 0; n < 9; n++ {
				lits[n] = cnf.Pos(GetID(row, col, n))
			}
			rng.Shuffle(len(lits), func(i, j int) { lits[i], lits[j] = lits[j], lits[i] })
			if err := f.AddClause(lits...); err != nil {
				return nil, err
			}
		}
	}

	// no cell has two numbers
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for a := 0; a < 9; a++ {
				for b := a + 1; b < 9; b++ {
					if err := f.AddClause(cnf.Neg(GetID(row, col, a)), cnf.Neg(GetID(row, col, b))); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// every row has unique numbers
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				for colB := colA + 1; colB < 9; colB++ {
					if err := f.AddClause(cnf.Neg(GetID(row, colA, n)), cnf.Neg(GetID(row, colB, n))); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// every column has unique numbers
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				for rowB := rowA + 1; rowB < 9; rowB++ {
					if err := f.AddClause(cnf.Neg(GetID(rowA, col, n)), cnf.Neg(GetID(rowB, col, n))); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// every 3x3 box has unique numbers
	for n := 0; n < 9; n++ {
		for boxRow := 0; boxRow < 3; boxRow++ {
			for boxCol := 0; boxCol < 3; boxCol++ {
				var cells [][2]int
				for r := 0; r < 3; r++ {
					for c := 0; c < 3; c++ {
						cells = append(cells, [2]int{boxRow*3 + r, boxCol*3 + c})
					}
				}
				for i := 0; i < len(cells); i++ {
					for j := i + 1; j < len(cells); j++ {
						if err := f.AddClause(
							cnf.Neg(GetID(cells[i][0], cells[i][1], n)),
							cnf.Neg(GetID(cells[j][0], cells[j][1], n)),
						); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return f, nil
}
