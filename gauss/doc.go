// Package gauss solves dense systems of n linear equations in n unknowns
// via Gaussian elimination with partial pivoting, followed by a full
// Gauss–Jordan reduction so the solution is read directly off the matrix.
//
// Overview:
//
//   - An Equation holds one row: an ordered coefficient sequence plus a
//     right-hand-side result scalar.
//   - A CoefficientMatrix holds a declared dimension n and the appended
//     equations; row order is meaningful — after solving, row i carries
//     the value of variable i in its result field.
//   - The pipeline is staged and one-shot:
//     Unvalidated --Validate--> Validated --Convert--> Triangular --Solve--> Solved.
//     Each stage consumes one matrix value and produces a new one (or an
//     error); the input value stays untouched and usable.
//
// Complexity:
//
//	– Time:  O(n²) Validate, O(n³) Convert, O(n²) Solve — O(n³) total,
//	  dominated by forward elimination.
//	– Space: O(n²) per stage (each stage works on its own copy).
//
// Notes on implementation choices:
//
//   - Partial pivoting swaps in the row with the largest-magnitude entry of
//     the pivot column; ties keep the earliest row. This bounds error from
//     small pivots but does not detect exact singularity.
//   - Convert never fails: a fully singular column merely degenerates the
//     rows below it, and Solve classifies the outcome once the zero pivot
//     surfaces on the diagonal.
//   - Zero tests are exact (== 0); there is no epsilon policy. Floating
//     residue below the diagonal is expected and harmless.
//
// Errors (sentinel):
//
//	– ErrTooSmall         if the declared size is < 1.
//	– ErrEquationCount    if the appended equation count differs from the size.
//	– ErrCoefficientCount if any equation's width differs from the size.
//	– ErrDependentSystem  if a zero pivot pairs with a zero result (infinitely many solutions).
//	– ErrNoSolution       if a zero pivot pairs with a nonzero result (inconsistent system).
//	– ErrIndexOutOfRange  if an Equation coefficient index is out of bounds.
//	– ErrStage            if Convert/Solve is called out of pipeline order.
//
// Example usage:
//
//	validated, err := gauss.New(2).
//	    AddEquation(gauss.NewEquation([]float64{8, -6}, 2)).
//	    AddEquation(gauss.NewEquation([]float64{2, 3}, 2)).
//	    Validate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	triangular, _ := validated.Convert()
//	solved, err := triangular.Solve()
//	if err != nil {
//	    log.Fatal(err) // ErrDependentSystem or ErrNoSolution
//	}
//	x, _ := solved.Solution() // [0.5 0.333...]
//
// Thread safety:
//
//   - The pipeline is synchronous and value-based; concurrent callers are
//     safe as long as each holds its own CoefficientMatrix value.
package gauss
