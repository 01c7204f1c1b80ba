package polynomial

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors returned by the polynomial package.
var (
	// ErrNoCoefficients indicates an evaluation attempt on a polynomial
	// with an empty coefficient sequence.
	ErrNoCoefficients = errors.New("polynomial: no coefficients to evaluate")

	// ErrBadCoefficient indicates Parse met a token that does not parse
	// as a decimal number.
	ErrBadCoefficient = errors.New("polynomial: invalid input coefficient")
)

// Polynomial is a single-variable polynomial stored as its coefficient
// sequence, highest degree first.
type Polynomial struct {
	coefficients []float64
}

// New constructs a Polynomial from the given coefficients, highest degree
// first. New(3, 0, -2, 1) is 3x³ − 2x + 1.
// Complexity: O(len(coefficients)).
func New(coefficients ...float64) Polynomial {
	c := make([]float64, len(coefficients))
	copy(c, coefficients)

	return Polynomial{coefficients: c}
}

// Parse builds a Polynomial from decimal string tokens, highest degree
// first. Returns ErrBadCoefficient naming the offending token if any
// token fails to parse.
// Complexity: O(len(args)).
func Parse(args []string) (Polynomial, error) {
	coefficients := make([]float64, 0, len(args))
	for _, arg := range args {
		c, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return Polynomial{}, fmt.Errorf("Parse: token %q: %w", arg, ErrBadCoefficient)
		}
		coefficients = append(coefficients, c)
	}

	return Polynomial{coefficients: coefficients}, nil
}

// Eval evaluates the polynomial at x using Horner's method: the sum starts
// at the leading coefficient and each step multiplies by x and adds the
// next coefficient. Returns ErrNoCoefficients for an empty polynomial.
// Complexity: O(Degree()+1), zero allocations.
func (p Polynomial) Eval(x float64) (float64, error) {
	if len(p.coefficients) == 0 {
		return 0, ErrNoCoefficients
	}

	sum := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		sum = sum*x + c
	}

	return sum, nil
}

// Coefficients returns a copy of the coefficient sequence, highest degree
// first.
// Complexity: O(Degree()+1).
func (p Polynomial) Coefficients() []float64 {
	c := make([]float64, len(p.coefficients))
	copy(c, p.coefficients)

	return c
}

// Degree returns the polynomial's degree, taken from the coefficient
// count; leading zeros are not stripped. An empty polynomial reports -1.
// Complexity: O(1).
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// String renders the coefficient sequence, e.g. "[3 0 -2 1]".
func (p Polynomial) String() string {
	return fmt.Sprintf("%v", p.coefficients)
}
