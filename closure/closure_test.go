package closure_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/semipath/builder"
	"github.com/katalvlaran/semipath/closure"
	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/oracle"
	"github.com/katalvlaran/semipath/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatTol is the element-wise tolerance for comparing against the oracles.
const floatTol = 1e-9

// cycleW builds the 4-vertex directed cycle used across the scenario tests:
//
//	0→1 (3), 1→2 (1), 2→3 (7), 3→0 (2); diagonal 0; +Inf elsewhere.
func cycleW(t *testing.T) *matrix.Dense[float64] {
	t.Helper()
	inf := math.Inf(1)
	W, err := matrix.FromRows([][]float64{
		{0, 3, inf, inf},
		{inf, 0, 1, inf},
		{inf, inf, 0, 7},
		{2, inf, inf, 0},
	})
	require.NoError(t, err)

	return W
}

// assertSameDistances compares two float64 matrices element-wise: +Inf must
// match exactly, finite values within floatTol.
func assertSameDistances(t *testing.T, want, got *matrix.Dense[float64]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		wRow, _ := want.RowView(i)
		gRow, _ := got.RowView(i)
		for j := range wRow {
			if math.IsInf(wRow[j], 1) {
				assert.True(t, math.IsInf(gRow[j], 1), "(%d,%d): want +Inf, got %v", i, j, gRow[j])
				continue
			}
			assert.InDelta(t, wRow[j], gRow[j], floatTol, "(%d,%d)", i, j)
		}
	}
}

// assertSameVector is the vector counterpart of assertSameDistances.
func assertSameVector(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsInf(want[i], 1) {
			assert.True(t, math.IsInf(got[i], 1), "[%d]: want +Inf, got %v", i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], floatTol, "[%d]", i)
	}
}

// TestSolve_APSP_Cycle pins the full APSP matrix of the 4-cycle; row 0 is
// the documented [0, 3, 4, 11].
func TestSolve_APSP_Cycle(t *testing.T) {
	W := cycleW(t)
	sp := semiring.ShortestPath()

	L, err := closure.Solve(W, sp)
	require.NoError(t, err)

	want, _ := matrix.FromRows([][]float64{
		{0, 3, 4, 11},
		{10, 0, 1, 8},
		{9, 12, 0, 7},
		{2, 5, 6, 0},
	})
	assertSameDistances(t, want, L)

	// SlowAPSP is the same branch under its traditional name.
	S, err := closure.SlowAPSP(W, sp)
	require.NoError(t, err)
	assertSameDistances(t, L, S)

	// Input must be untouched.
	w01, _ := W.At(0, 1)
	assert.Equal(t, 3.0, w01)
}

// TestSolve_SSSP_Cycle pins the single-source result from vertex 0 as both
// the one-row matrix Solve returns and the raw SSSP vector.
func TestSolve_SSSP_Cycle(t *testing.T) {
	W := cycleW(t)
	sp := semiring.ShortestPath()

	row, err := closure.Solve(W, sp, closure.WithSource(0))
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 4, row.Cols())
	got, _ := row.RowView(0)
	assertSameVector(t, []float64{0, 3, 4, 11}, got)

	d, err := closure.SSSP(W, sp, 0)
	require.NoError(t, err)
	assertSameVector(t, []float64{0, 3, 4, 11}, d)
}

// TestSolve_SSSPEqualsAPSPRow checks the structural identity the vector
// form is derived from: SSSP from s is row s of the APSP closure.
func TestSolve_SSSPEqualsAPSPRow(t *testing.T) {
	sp := semiring.ShortestPath()
	for _, n := range []int{2, 5, 9} {
		W, err := builder.Random(n, sp, builder.WithSeed(int64(100+n)), builder.WithDensity(0.4))
		require.NoError(t, err)

		L, err := closure.Solve(W, sp)
		require.NoError(t, err)
		for s := 0; s < n; s++ {
			d, err := closure.SSSP(W, sp, s)
			require.NoError(t, err)
			wantRow, _ := L.RowView(s)
			assertSameVector(t, wantRow, d)
		}
	}
}

// TestSolve_EdgeCases covers the n == 0 and n == 1 contract and the source
// precondition.
func TestSolve_EdgeCases(t *testing.T) {
	sp := semiring.ShortestPath()

	// n == 0: empty result, no error.
	empty, err := matrix.NewDense(0, sp.Zero())
	require.NoError(t, err)
	L, err := closure.Solve(empty, sp)
	require.NoError(t, err)
	assert.Zero(t, L.Rows())

	// n == 0 with a source: every index is out of range.
	_, err = closure.Solve(empty, sp, closure.WithSource(0))
	assert.ErrorIs(t, err, closure.ErrSourceOutOfRange)

	// n == 1: identity result after zero rounds.
	one, err := matrix.FromRows([][]float64{{0}})
	require.NoError(t, err)
	L, err = closure.Solve(one, sp)
	require.NoError(t, err)
	v, _ := L.At(0, 0)
	assert.Equal(t, 0.0, v)

	d, err := closure.SSSP(one, sp, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, d)

	// Source outside [0, n).
	W := cycleW(t)
	_, err = closure.SSSP(W, sp, -1)
	assert.ErrorIs(t, err, closure.ErrSourceOutOfRange)
	_, err = closure.SSSP(W, sp, 4)
	assert.ErrorIs(t, err, closure.ErrSourceOutOfRange)
}

// TestExtend_Validation covers the shape preconditions of both kernels.
func TestExtend_Validation(t *testing.T) {
	sp := semiring.ShortestPath()
	W := cycleW(t)

	// Nil and non-square weight matrices.
	_, err := closure.Solve(nil, sp)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	rect, _ := matrix.NewRect(2, 3, sp.Zero())
	_, err = closure.Solve(rect, sp)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	// Extend with mismatched L.
	small, _ := matrix.NewDense(2, sp.Zero())
	_, err = closure.Extend(small, W, sp)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// ExtendVector with a short vector.
	_, err = closure.ExtendVector([]float64{0}, W, sp)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAPSP_MatchesFloydWarshall diffs the generalized closure against the
// classical oracle on random connected and disconnected graphs, n ∈ [1,20].
func TestAPSP_MatchesFloydWarshall(t *testing.T) {
	sp := semiring.ShortestPath()
	for _, tc := range []struct {
		name string
		opts []builder.Option
	}{
		{"connected", []builder.Option{builder.WithConnected(), builder.WithDensity(0.3)}},
		{"disconnected", []builder.Option{builder.WithDensity(0.12)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for n := 1; n <= 20; n++ {
				opts := append([]builder.Option{builder.WithSeed(int64(n))}, tc.opts...)
				W, err := builder.Random(n, sp, opts...)
				require.NoError(t, err)

				got, err := closure.Solve(W, sp)
				require.NoError(t, err)
				want, err := oracle.FloydWarshall(W)
				require.NoError(t, err)
				assertSameDistances(t, want, got)
			}
		})
	}
}

// TestSSSP_MatchesDijkstraAndBellmanFord diffs the vector closure against
// both classical SSSP oracles (weights are non-negative by construction).
func TestSSSP_MatchesDijkstraAndBellmanFord(t *testing.T) {
	sp := semiring.ShortestPath()
	for n := 1; n <= 20; n++ {
		W, err := builder.Random(n, sp, builder.WithSeed(int64(50+n)), builder.WithDensity(0.25))
		require.NoError(t, err)

		got, err := closure.SSSP(W, sp, 0)
		require.NoError(t, err)

		dj, err := oracle.Dijkstra(W, 0)
		require.NoError(t, err)
		assertSameVector(t, dj, got)

		bf, err := oracle.BellmanFord(W, 0)
		require.NoError(t, err)
		assertSameVector(t, bf, got)
	}
}

// TestConvergence_FixedPoint verifies that rounds beyond n−1 change nothing
// for non-negative weights: the closure has already reached its fixed point.
func TestConvergence_FixedPoint(t *testing.T) {
	sp := semiring.ShortestPath()
	for _, n := range []int{3, 8, 14} {
		W, err := builder.Random(n, sp, builder.WithSeed(int64(7*n)), builder.WithConnected())
		require.NoError(t, err)

		L, err := closure.Solve(W, sp)
		require.NoError(t, err)

		// Two extra matrix rounds must be no-ops.
		more, err := closure.Extend(L, W, sp)
		require.NoError(t, err)
		assertSameDistances(t, L, more)
		more, err = closure.Extend(more, W, sp)
		require.NoError(t, err)
		assertSameDistances(t, L, more)

		// Same for the vector form.
		d, err := closure.SSSP(W, sp, 0)
		require.NoError(t, err)
		dMore, err := closure.ExtendVector(d, W, sp)
		require.NoError(t, err)
		assertSameVector(t, d, dMore)
	}
}

// TestSolve_Reachability runs the boolean semiring: on the 4-cycle every
// vertex reaches every other.
func TestSolve_Reachability(t *testing.T) {
	rb := semiring.Reachability()
	W, err := matrix.FromRows([][]bool{
		{true, true, false, false},
		{false, true, true, false},
		{false, false, true, true},
		{true, false, false, true},
	})
	require.NoError(t, err)

	L, err := closure.Solve(W, rb)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		row, _ := L.RowView(i)
		for j, reachable := range row {
			assert.True(t, reachable, "(%d,%d)", i, j)
		}
	}
}

// TestSolve_PathCount counts walks on a small diamond DAG under the
// counting semiring. The diagonal-one convention puts a unit self-loop on
// every vertex, so the closure (W⁴ here) counts walks of length exactly
// n−1 in the self-loop-augmented graph: a non-idempotent ⊕ counts each
// shorter walk once per self-loop padding, not once.
func TestSolve_PathCount(t *testing.T) {
	pc := semiring.PathCount()
	// Diamond: 0→1, 0→2, 1→3, 2→3; diagonal 1 (the self-loop).
	W, err := matrix.FromRows([][]float64{
		{1, 1, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)

	L, err := closure.Solve(W, pc)
	require.NoError(t, err)

	// 0→3: two 2-edge paths, each padded with 2 self-loop steps placed
	// anywhere among the 4 steps — C(4,2) = 6 paddings per path.
	got, err := L.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	// 0→1: one 1-edge path, C(4,1) = 4 paddings.
	got, err = L.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	// 0→0: the all-self-loop walk only.
	got, err = L.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestSolve_WidestPath diffs the bottleneck semiring against the classical
// max-min closure on random capacity matrices.
func TestSolve_WidestPath(t *testing.T) {
	wp := semiring.WidestPath()
	for _, n := range []int{2, 6, 12} {
		W, err := builder.Random(n, wp, builder.WithSeed(int64(300+n)), builder.WithDensity(0.35))
		require.NoError(t, err)

		got, err := closure.Solve(W, wp)
		require.NoError(t, err)
		want, err := oracle.WidestPath(W)
		require.NoError(t, err)
		assertSameDistances(t, want, got)
	}
}
