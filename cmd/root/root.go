package root

import (
	"github.com/spf13/cobra"

	"github.com/loveland-solver/loveland/cmd/dimacs"

	"github.com/loveland-solver/loveland/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loveland",
		Short: "Loveland is an open-source DPLL sat solver",
		Long: `An open-source DPLL sat solver written in Go.
For more information visit https://github.com/loveland-solver/loveland`,
	}

	// add sub-commands
	rootCmd.AddCommand(dimacs.NewDimacsCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())

	return rootCmd
}
