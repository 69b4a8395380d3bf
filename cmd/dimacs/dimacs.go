package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/loveland-solver/loveland/pkg/cnf"
)

// Dimacs holds the variable universe and clauses of a CNF problem
// described in DIMACS format
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
type Dimacs struct {
	numVars int
	clauses [][]int
}

func (d *Dimacs) NumVars() int {
	return d.numVars
}

func (d *Dimacs) Clauses() [][]int {
	return d.clauses
}

// Formula translates the parsed problem into a cnf.Formula ready for
// solving.
func (d *Dimacs) Formula() (*cnf.Formula, error) {
	f := cnf.New(d.numVars)
	for _, clause := range d.clauses {
		lits := make([]cnf.Literal, len(clause))
		for i, lit := range clause {
			if lit < 0 {
				lits[i] = cnf.Neg(-lit)
			} else {
				lits[i] = cnf.Pos(lit)
			}
		}
		if err := f.AddClause(lits...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewDimacs creates a Dimacs struct with the values parsed from the
// DIMACS formatted stream afforded by dimacsReader
func NewDimacs(dimacsReader io.Reader) (*Dimacs, error) {
	reader := bufio.NewReader(dimacsReader)

	numVariables := 0
	numClauses := 0
	var clauses [][]int

	commentLine := regexp.MustCompile(`^c\s*.*`)
	headerLine := regexp.MustCompile(`^p cnf\s+\d+\s+\d+\s*`)
	clauseLine := regexp.MustCompile(`^(-?\d+\s+)+0`)
	cleanInput := regexp.MustCompile(`\s\s+`)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading dimacs data: %w", err)
		}
		line = strings.TrimSpace(line)

		// ignore comments
		if commentLine.MatchString(line) {
			continue
		}

		// parse header
		if headerLine.MatchString(line) {
			line = cleanInput.ReplaceAllString(line, " ")
			problem := strings.Split(line, " ")
			if len(problem) != 4 {
				return nil, fmt.Errorf("invalid statement: (%s). Valid format is p cnf <variables> <clauses>", line)
			}
			numVariables, err = strconv.Atoi(problem[2])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[2], line)
			}
			numClauses, err = strconv.Atoi(problem[3])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[3], line)
			}
			clauses = make([][]int, 0, numClauses)

			// parse next line
			continue
		}

		// collect clauses
		if clauseLine.MatchString(line) {
			if clauses == nil {
				return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
			}
			line = cleanInput.ReplaceAllString(line, " ")
			tokens := strings.Split(line, " ")
			if tokens[len(tokens)-1] != "0" {
				return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
			}
			tokens = tokens[:len(tokens)-1]
			clause, err := parseClause(tokens, numVariables)
			if err != nil {
				return nil, fmt.Errorf("invalid clause (%s): %w", line, err)
			}
			clauses = append(clauses, clause)

			// parse next line
			continue
		}

		// error out if the instruction is invalid
		return nil, fmt.Errorf("invalid dimacs command: %s", line)
	}

	if numVariables == 0 || numClauses == 0 || clauses == nil {
		return nil, fmt.Errorf("invalid format: no variables or clauses found")
	}

	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differ from the total number of clauses")
	}

	return &Dimacs{
		numVars: numVariables,
		clauses: clauses,
	}, nil
}

func parseClause(tokens []string, numVariables int) ([]int, error) {
	clause := make([]int, 0, len(tokens))
	for _, lit := range tokens {
		litInt, err := strconv.Atoi(lit)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", lit)
		}
		if litInt == 0 {
			return nil, fmt.Errorf("0 is not a valid variable")
		}
		if litInt > numVariables || litInt < -numVariables {
			return nil, fmt.Errorf("%s is not a valid variable", lit)
		}
		clause = append(clause, litInt)
	}
	return clause, nil
}
