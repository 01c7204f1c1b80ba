package gauss

import (
	"fmt"
	"math"
)

// Convert reduces a validated matrix to upper-triangular form by forward
// elimination with partial pivoting, returning a new matrix in the
// Triangular stage. The receiver is left untouched.
//
// Blueprint, for each pivot column a in 0..size-2:
//
//	Stage 1 (Pivot): among rows a..size-1, swap into position a the row
//	  whose entry in column a has the strictly largest absolute value
//	  (ties keep the earliest row). Small pivots amplify rounding error;
//	  the largest-magnitude candidate bounds it.
//	Stage 2 (Eliminate): for each row b below a, subtract
//	  ratio·row_a from row_b where ratio = row_b[a]/pivot, touching only
//	  columns a..size-1 plus the result — columns before a are already
//	  zero from earlier steps and are not recomputed.
//
// Convert never fails on numeric grounds: an exactly singular column
// yields a zero pivot whose division degenerates the rows below it
// (IEEE ±Inf/NaN), and Solve classifies the outcome once the degeneracy
// reaches the diagonal. The only error here is ErrStage for a matrix that
// has not passed Validate.
// Complexity: O(Size()³) time, O(Size()²) memory for the copy.
func (m CoefficientMatrix) Convert() (CoefficientMatrix, error) {
	if m.stage != stageValidated {
		return CoefficientMatrix{}, fmt.Errorf("Convert requires a validated matrix: %w", ErrStage)
	}

	// Work on a private copy; the caller's value must stay intact.
	out := m.clone()
	n := out.size

	for a := 0; a < n-1; a++ {
		// Stage 1: search rows below for a strictly larger pivot and swap
		// it into position a.
		pivot := out.equations[a].coefficients[a]
		for i := a + 1; i < n; i++ {
			if math.Abs(out.equations[i].coefficients[a]) > math.Abs(pivot) {
				out.equations[i], out.equations[a] = out.equations[a], out.equations[i]
				pivot = out.equations[a].coefficients[a]
			}
		}

		// Stage 2: eliminate column a from every row below the pivot row.
		for b := a + 1; b < n; b++ {
			ratio := out.equations[b].coefficients[a] / pivot
			for c := a; c < n; c++ {
				out.equations[b].coefficients[c] -= ratio * out.equations[a].coefficients[c]
			}
			out.equations[b].result -= ratio * out.equations[a].result
		}
	}

	out.stage = stageTriangular

	return out, nil
}
