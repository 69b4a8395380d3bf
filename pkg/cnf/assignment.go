package cnf

import (
	"fmt"
	"strings"
)

// Value is a lifted boolean: a variable either carries a concrete
// truth value or is still unassigned.
type Value uint8

const (
	// Undef is the unassigned state.
	Undef Value = iota
	// False is the concrete false value.
	False
	// True is the concrete true value.
	True
)

// FromBool returns the Value corresponding to a concrete boolean.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// True reports whether the value is concrete true.
func (v Value) True() bool {
	return v == True
}

// False reports whether the value is concrete false.
func (v Value) False() bool {
	return v == False
}

// Undef reports whether the value is still unassigned.
func (v Value) Undef() bool {
	return v == Undef
}

// Not negates a concrete value and leaves Undef untouched.
func (v Value) Not() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Undef
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undef"
	}
}

// Assignment records a truth value per variable. It is a dense slice
// indexed by variable identifier; index 0 is unused because DIMACS
// reserves 0 as the clause terminator. An assignment may stay
// partial: variables untouched by any clause keep the Undef state.
type Assignment []Value

// NewAssignment returns an empty assignment over variables
// 1..numVars.
func NewAssignment(numVars int) Assignment {
	return make(Assignment, numVars+1)
}

// Value returns the value recorded for variable v, or Undef when v
// lies outside the assignment's universe.
func (a Assignment) Value(v int) Value {
	if v < 1 || v >= len(a) {
		return Undef
	}
	return a[v]
}

// Assign records a concrete value for variable v.
func (a Assignment) Assign(v int, b bool) {
	a[v] = FromBool(b)
}

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)
	return out
}

// Satisfies reports whether the assignment makes lit true. Literals
// over unassigned variables are not satisfied.
func (a Assignment) Satisfies(lit Literal) bool {
	v := a.Value(lit.Var)
	if v.Undef() {
		return false
	}
	return v.True() != lit.Negated
}

// Assigned returns the identifiers of all variables holding a
// concrete value, in increasing order.
func (a Assignment) Assigned() []int {
	var vars []int
	for v := 1; v < len(a); v++ {
		if !a[v].Undef() {
			vars = append(vars, v)
		}
	}
	return vars
}

// String implements fmt.Stringer and renders only the assigned
// variables.
func (a Assignment) String() string {
	assigned := a.Assigned()
	s := make([]string, len(assigned))
	for i, v := range assigned {
		s[i] = fmt.Sprintf("%d=%s", v, a[v])
	}
	return strings.Join(s, " ")
}
