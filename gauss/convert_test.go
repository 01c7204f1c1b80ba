package gauss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/stretchr/testify/require"
)

// requireRow asserts row i of m equals the given coefficients and result
// exactly. Used where the arithmetic is exact in binary floating point.
func requireRow(t *testing.T, m gauss.CoefficientMatrix, i int, coeffs []float64, result float64) {
	t.Helper()

	eq, err := m.Equation(i)
	require.NoError(t, err)
	require.Equal(t, len(coeffs), eq.Len())
	for j, want := range coeffs {
		got, atErr := eq.At(j)
		require.NoError(t, atErr)
		require.Equal(t, want, got, "row %d col %d", i, j)
	}
	require.Equal(t, result, eq.Result(), "row %d result", i)
}

func TestConvert_ToUpperTriangular(t *testing.T) {
	// Reference scenario: [8 -6]=2, [2 3]=2. The pivot 8 already has the
	// largest magnitude, so no swap; one elimination step with ratio 1/4.
	validated, err := buildMatrix(2,
		[][]float64{{8, -6}, {2, 3}},
		[]float64{2, 2},
	).Validate()
	require.NoError(t, err)

	triangular, err := validated.Convert()
	require.NoError(t, err)

	requireRow(t, triangular, 0, []float64{8, -6}, 2)
	requireRow(t, triangular, 1, []float64{0, 4.5}, 1.5)
}

func TestConvert_SwapsLargerPivotIntoPlace(t *testing.T) {
	// Column 0 holds |1| and |4|: partial pivoting must swap row 1 up
	// before eliminating.
	validated, err := buildMatrix(2,
		[][]float64{{1, 1}, {4, 2}},
		[]float64{3, 10},
	).Validate()
	require.NoError(t, err)

	triangular, err := validated.Convert()
	require.NoError(t, err)

	requireRow(t, triangular, 0, []float64{4, 2}, 10)
	requireRow(t, triangular, 1, []float64{0, 0.5}, 0.5)
}

func TestConvert_TieKeepsEarliestRow(t *testing.T) {
	// Equal magnitudes in the pivot column: the earliest row stays in
	// place (the swap requires a strictly larger candidate).
	validated, err := buildMatrix(2,
		[][]float64{{2, 1}, {-2, 3}},
		[]float64{4, 0},
	).Validate()
	require.NoError(t, err)

	triangular, err := validated.Convert()
	require.NoError(t, err)

	requireRow(t, triangular, 0, []float64{2, 1}, 4)
	requireRow(t, triangular, 1, []float64{0, 4}, 4)
}

func TestConvert_BelowDiagonalIsZero(t *testing.T) {
	// A dense 3×3 system: every entry below the diagonal must come out
	// numerically zero after forward elimination.
	validated, err := buildMatrix(3,
		[][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
		[]float64{8, -11, -3},
	).Validate()
	require.NoError(t, err)

	triangular, err := validated.Convert()
	require.NoError(t, err)

	for i := 1; i < 3; i++ {
		eq, eqErr := triangular.Equation(i)
		require.NoError(t, eqErr)
		for j := 0; j < i; j++ {
			v, atErr := eq.At(j)
			require.NoError(t, atErr)
			require.InDelta(t, 0, v, 1e-12, "row %d col %d", i, j)
		}
	}
}

func TestConvert_LeavesReceiverUntouched(t *testing.T) {
	// Value semantics: converting must not mutate the validated matrix
	// the caller still holds.
	validated, err := buildMatrix(2,
		[][]float64{{8, -6}, {2, 3}},
		[]float64{2, 2},
	).Validate()
	require.NoError(t, err)

	_, err = validated.Convert()
	require.NoError(t, err)

	requireRow(t, validated, 0, []float64{8, -6}, 2)
	requireRow(t, validated, 1, []float64{2, 3}, 2)
}

func TestConvert_SingularColumnDoesNotFail(t *testing.T) {
	// An exactly singular system passes Convert (degeneracy is classified
	// by Solve); the converted rows may carry NaN from 0/0 ratios.
	validated, err := buildMatrix(2,
		[][]float64{{0, 1}, {0, 2}},
		[]float64{1, 2},
	).Validate()
	require.NoError(t, err)

	triangular, err := validated.Convert()
	require.NoError(t, err)

	eq, err := triangular.Equation(0)
	require.NoError(t, err)
	v, err := eq.At(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	eq, err = triangular.Equation(1)
	require.NoError(t, err)
	v, err = eq.At(1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v) || v == 0, "degenerate row below a singular pivot, got %v", v)
}
