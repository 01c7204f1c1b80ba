package gauss

import (
	"fmt"
	"strings"
)

// stage tags how far a CoefficientMatrix has progressed through the
// pipeline. Convert and Solve check the tag at entry, so neither can run
// on a matrix whose shape has not been established by Validate.
type stage int

const (
	stageUnvalidated stage = iota // freshly built, shape unknown
	stageValidated                // shape checked: size×size plus results
	stageTriangular               // upper-triangular after elimination
	stageSolved                   // identity block, result column = solution
)

// CoefficientMatrix is the pipeline's unit of transformation: a declared
// dimension size and an ordered sequence of equations. Row order is
// semantically meaningful — after solving, row i corresponds to variable i.
//
// A CoefficientMatrix is a value. Each pipeline stage consumes one value
// and returns a new one (or an error); the stages deep-copy before
// mutating, so a value the caller still holds is never modified under it.
type CoefficientMatrix struct {
	size      int        // declared dimension n
	stage     stage      // pipeline progress tag
	equations []Equation // appended rows, in insertion order
}

// New constructs an empty CoefficientMatrix of declared dimension size.
// No validation happens here; a non-positive size is rejected later by
// Validate with ErrTooSmall.
// Complexity: O(1).
func New(size int) CoefficientMatrix {
	capacity := 0
	if size > 0 {
		capacity = size
	}

	return CoefficientMatrix{
		size:      size,
		equations: make([]Equation, 0, capacity),
	}
}

// AddEquation appends one equation and returns the updated matrix,
// enabling a fluent builder chain:
//
//	m := gauss.New(2).
//	    AddEquation(gauss.NewEquation([]float64{8, -6}, 2)).
//	    AddEquation(gauss.NewEquation([]float64{2, 3}, 2))
//
// The chain is consuming: keep building on the returned value, not on the
// receiver. No shape checking occurs here — that is Validate's job.
// Complexity: O(1) amortized.
func (m CoefficientMatrix) AddEquation(eq Equation) CoefficientMatrix {
	m.equations = append(m.equations, eq)
	m.stage = stageUnvalidated

	return m
}

// Size returns the declared dimension n.
// Complexity: O(1).
func (m CoefficientMatrix) Size() int {
	return m.size
}

// Len returns the number of equations appended so far. Before Validate it
// may differ from Size.
// Complexity: O(1).
func (m CoefficientMatrix) Len() int {
	return len(m.equations)
}

// Equation returns a deep copy of row i.
// Returns ErrIndexOutOfRange if i < 0 or i >= Len().
// Complexity: O(Size()).
func (m CoefficientMatrix) Equation(i int) (Equation, error) {
	if i < 0 || i >= len(m.equations) {
		return Equation{}, fmt.Errorf("Equation(%d) with %d rows: %w", i, len(m.equations), ErrIndexOutOfRange)
	}

	return m.equations[i].Clone(), nil
}

// Solution extracts the solution vector from a solved matrix: entry i is
// the value of variable i, read from row i's result.
// Returns ErrStage unless the matrix went through Solve.
// Complexity: O(Size()).
func (m CoefficientMatrix) Solution() ([]float64, error) {
	if m.stage != stageSolved {
		return nil, fmt.Errorf("Solution requires a solved matrix: %w", ErrStage)
	}

	x := make([]float64, m.size)
	for i := range m.equations {
		x[i] = m.equations[i].result
	}

	return x, nil
}

// clone returns a deep copy of the matrix, sharing no storage with the
// receiver. Every mutating stage clones first, which is what gives the
// pipeline its value semantics.
// Complexity: O(Size()²).
func (m CoefficientMatrix) clone() CoefficientMatrix {
	eqs := make([]Equation, len(m.equations))
	for i := range m.equations {
		eqs[i] = m.equations[i].Clone()
	}

	return CoefficientMatrix{size: m.size, stage: m.stage, equations: eqs}
}

// String renders the matrix one equation per line, each as
// "<coefficients> = <result>".
func (m CoefficientMatrix) String() string {
	var sb strings.Builder
	for i := range m.equations {
		sb.WriteString(m.equations[i].String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
