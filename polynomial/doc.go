// Package polynomial evaluates single-variable polynomials via Horner's
// method (nested multiplication).
//
// Overview:
//
//   - A Polynomial is an ordered coefficient sequence, highest degree
//     first: [3 0 -2 1] represents 3x³ − 2x + 1.
//   - Eval folds the sequence as (((c₀)·x + c₁)·x + c₂)... — one multiply
//     and one add per coefficient, no explicit powers.
//   - Parse builds a Polynomial from decimal strings, for hosts that
//     collect coefficients as text arguments.
//
// Complexity:
//
//	– Time:  O(d) per evaluation, d = number of coefficients.
//	– Space: O(d) for the stored coefficients; Eval allocates nothing.
//
// Errors (sentinel):
//
//	– ErrNoCoefficients if Eval is called on an empty polynomial.
//	– ErrBadCoefficient if Parse meets a token that is not a decimal number.
//
// The package shares no data or control dependency with gauss; it is a
// sibling utility for the same embedding hosts.
package polynomial
