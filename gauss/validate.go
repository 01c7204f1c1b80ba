package gauss

import "fmt"

// minSize is the smallest dimension a solvable system can declare.
const minSize = 1

// Validate checks the matrix shape and, on success, returns the same
// matrix narrowed to the Validated stage, unlocking Convert.
//
// Checks, in order (fail-fast, one error per call):
//  1. size ≥ 1, else ErrTooSmall.
//  2. appended equation count == size, else ErrEquationCount.
//  3. every equation's width == size, else ErrCoefficientCount. The scan
//     covers all rows and reports the width of the last offending row.
//
// No structural change occurs; validation only records that the shape
// invariant holds from here on.
// Complexity: O(Size()²) worst case (the width scan touches every row).
func (m CoefficientMatrix) Validate() (CoefficientMatrix, error) {
	// 1) The declared dimension must admit at least one unknown.
	if m.size < minSize {
		return CoefficientMatrix{}, fmt.Errorf("Validate: matrix size of %d is too small: %w", m.size, ErrTooSmall)
	}

	// 2) Exactly size equations must have been appended.
	if len(m.equations) != m.size {
		return CoefficientMatrix{}, fmt.Errorf("Validate: amount %d of equations does not fit in matrix of size %d: %w",
			len(m.equations), m.size, ErrEquationCount)
	}

	// 3) Every equation must be exactly size coefficients wide. The scan
	// deliberately runs to the end: the reported width is that of the
	// LAST offending row, preserving the reference last-wins policy.
	var (
		unfitting    bool
		unfittingLen int
	)
	for i := range m.equations {
		if m.equations[i].Len() != m.size {
			unfitting = true
			unfittingLen = m.equations[i].Len()
		}
	}
	if unfitting {
		return CoefficientMatrix{}, fmt.Errorf("Validate: amount %d of coefficients does not fit in matrix of size %d: %w",
			unfittingLen, m.size, ErrCoefficientCount)
	}

	m.stage = stageValidated

	return m, nil
}
