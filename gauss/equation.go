package gauss

import "fmt"

// Equation represents one linear equation: an ordered sequence of
// coefficients and a right-hand-side result scalar. Its length is fixed at
// construction; coefficient values are mutated in place during elimination.
type Equation struct {
	coefficients []float64 // ordered coefficients, index = variable index
	result       float64   // right-hand side of the equation
}

// NewEquation constructs an Equation from the given coefficients and
// right-hand-side result. The coefficient slice is copied, so the caller
// may reuse or mutate its slice afterwards without affecting the equation.
// Complexity: O(len(coefficients)).
func NewEquation(coefficients []float64, result float64) Equation {
	// Defensive copy: the pipeline mutates coefficients in place and must
	// never share backing storage with the caller.
	c := make([]float64, len(coefficients))
	copy(c, coefficients)

	return Equation{coefficients: c, result: result}
}

// Len returns the number of coefficients in the equation. This is the
// equation's own width, independent of any owning matrix's declared size.
// Complexity: O(1).
func (e Equation) Len() int {
	return len(e.coefficients)
}

// At retrieves coefficient i.
// Returns ErrIndexOutOfRange if i < 0 or i >= Len().
// Complexity: O(1).
func (e Equation) At(i int) (float64, error) {
	if i < 0 || i >= len(e.coefficients) {
		return 0, fmt.Errorf("At(%d) with len %d: %w", i, len(e.coefficients), ErrIndexOutOfRange)
	}

	return e.coefficients[i], nil
}

// Set assigns the value v to coefficient i.
// Returns ErrIndexOutOfRange if i < 0 or i >= Len().
// Complexity: O(1).
func (e *Equation) Set(i int, v float64) error {
	if i < 0 || i >= len(e.coefficients) {
		return fmt.Errorf("Set(%d) with len %d: %w", i, len(e.coefficients), ErrIndexOutOfRange)
	}
	e.coefficients[i] = v

	return nil
}

// Result returns the equation's right-hand side.
// Complexity: O(1).
func (e Equation) Result() float64 {
	return e.result
}

// SetResult assigns the equation's right-hand side.
// Complexity: O(1).
func (e *Equation) SetResult(v float64) {
	e.result = v
}

// Clone returns a deep copy of the equation, independent of the original.
// Complexity: O(Len()).
func (e Equation) Clone() Equation {
	return NewEquation(e.coefficients, e.result)
}

// String renders the equation as "<coefficients> = <result>",
// e.g. "[8 -6] = 2".
func (e Equation) String() string {
	return fmt.Sprintf("%v = %v", e.coefficients, e.result)
}
