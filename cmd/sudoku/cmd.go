package sudoku

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loveland-solver/loveland/pkg/solver"
)

func NewSudokuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku",
		Short: "Returns a solved sudoku board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve()
		},
	}
}

func solve() error {
	formula, err := NewFormula()
	if err != nil {
		return err
	}

	s, err := solver.New(solver.WithFormula(formula))
	if err != nil {
		return err
	}

	// get solution
	assignment, err := s.Solve(context.Background())
	if err != nil {
		fmt.Println("no solution found")
		return nil
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			found := false
			for n := 0; n < 9; n++ {
				if assignment.Value(GetID(row, col, n)).True() {
					fmt.Printf("%d", n+1)
					found = true
					break
				}
			}
			if !found {
				fmt.Printf(" ")
			}
			if col != 8 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}

	return nil
}
