package gauss

import "fmt"

// zeroPivot is the exact singularity threshold on the diagonal. Zero tests
// are exact by contract; floating residue off the diagonal never reaches
// this comparison.
const zeroPivot = 0.0

// Solve reduces an upper-triangular matrix to fully solved form by
// Gauss–Jordan reduction, returning a new matrix in the Solved stage whose
// coefficient block is the identity and whose result column is the
// solution vector. The receiver is left untouched.
//
// Blueprint, for each row i from size-1 down to 0:
//
//	Stage 1 (Classify): divisor = row_i[i]. A zero divisor means the
//	  system is singular; a zero right-hand side alongside it means
//	  consistent-but-rank-deficient (ErrDependentSystem, infinitely many
//	  solutions), a nonzero one means inconsistent (ErrNoSolution).
//	  Either error aborts the whole operation — no partial result.
//	Stage 2 (Normalize): divide row i, result included, by divisor so the
//	  diagonal entry becomes exactly one.
//	Stage 3 (Back-eliminate): for each row j above i, subtract
//	  row_j[i]·row_i from row_j, result included, zeroing column i above
//	  the diagonal.
//
// Full reduction is deliberate: the caller reads variable i straight from
// row i's result, with no separate back-substitution pass.
// Complexity: O(Size()²) time, O(Size()²) memory for the copy.
func (m CoefficientMatrix) Solve() (CoefficientMatrix, error) {
	if m.stage != stageTriangular {
		return CoefficientMatrix{}, fmt.Errorf("Solve requires a triangular matrix: %w", ErrStage)
	}

	// Work on a private copy; the caller's value must stay intact.
	out := m.clone()
	n := out.size

	for i := n - 1; i >= 0; i-- {
		// Stage 1: classify a singular diagonal before dividing by it.
		divisor := out.equations[i].coefficients[i]
		if divisor == zeroPivot {
			if out.equations[i].result == 0 {
				return CoefficientMatrix{}, fmt.Errorf("Solve: zero pivot at row %d with zero result: %w", i, ErrDependentSystem)
			}

			return CoefficientMatrix{}, fmt.Errorf("Solve: zero pivot at row %d with nonzero result: %w", i, ErrNoSolution)
		}

		// Stage 2: normalize row i so its diagonal entry becomes one.
		for j := 0; j < n; j++ {
			out.equations[i].coefficients[j] /= divisor
		}
		out.equations[i].result /= divisor

		// Stage 3: eliminate column i from every row above.
		for j := i - 1; j >= 0; j-- {
			factor := out.equations[j].coefficients[i]
			for k := 0; k < n; k++ {
				out.equations[j].coefficients[k] -= factor * out.equations[i].coefficients[k]
			}
			out.equations[j].result -= factor * out.equations[i].result
		}
	}

	out.stage = stageSolved

	return out, nil
}
