package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsys/gauss"
)

// buildMatrix assembles a CoefficientMatrix of the given size from raw
// rows and their results. Shape errors are left for Validate to report.
func buildMatrix(size int, rows [][]float64, results []float64) gauss.CoefficientMatrix {
	m := gauss.New(size)
	for i, row := range rows {
		m = m.AddEquation(gauss.NewEquation(row, results[i]))
	}

	return m
}

// pipeline runs Validate → Convert → Solve → Solution on the given system
// and returns the solution vector or the first stage error.
func pipeline(t *testing.T, size int, rows [][]float64, results []float64) ([]float64, error) {
	t.Helper()

	validated, err := buildMatrix(size, rows, results).Validate()
	if err != nil {
		return nil, err
	}
	triangular, err := validated.Convert()
	if err != nil {
		return nil, err
	}
	solved, err := triangular.Solve()
	if err != nil {
		return nil, err
	}

	return solved.Solution()
}
