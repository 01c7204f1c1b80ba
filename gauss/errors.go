package gauss

import "errors"

// Sentinel errors returned by the solving pipeline. Call sites wrap these
// with the offending sizes via fmt.Errorf("...: %w", Err); match with
// errors.Is. No function in this package panics on user input.
var (
	// ErrTooSmall indicates the declared matrix size is below 1.
	ErrTooSmall = errors.New("gauss: matrix size is too small")

	// ErrEquationCount indicates the number of appended equations differs
	// from the declared matrix size.
	ErrEquationCount = errors.New("gauss: equation amount does not fit matrix size")

	// ErrCoefficientCount indicates at least one equation's coefficient
	// count differs from the declared matrix size. The wrapped message
	// reports the width of the last offending equation scanned.
	ErrCoefficientCount = errors.New("gauss: coefficient amount does not fit matrix size")

	// ErrDependentSystem indicates a consistent but rank-deficient system:
	// a zero pivot whose right-hand side is also zero, hence infinitely
	// many solutions.
	ErrDependentSystem = errors.New("gauss: the system of equations is dependent")

	// ErrNoSolution indicates an inconsistent system: a zero pivot whose
	// right-hand side is nonzero, hence an empty solution set.
	ErrNoSolution = errors.New("gauss: the system of equations has no solution")

	// ErrIndexOutOfRange indicates an Equation coefficient index outside
	// [0, Len()). Public indexers return this, they never panic.
	ErrIndexOutOfRange = errors.New("gauss: coefficient index out of range")

	// ErrStage indicates a pipeline method was invoked out of order, e.g.
	// Convert on an unvalidated matrix or Solve on a non-triangular one.
	ErrStage = errors.New("gauss: matrix is not in the required pipeline stage")
)
