package oracle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/semipath/builder"
	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/mst"
	"github.com/katalvlaran/semipath/oracle"
	"github.com/katalvlaran/semipath/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTol = 1e-9

// cycleW is the directed 4-cycle: 0→1 (3), 1→2 (1), 2→3 (7), 3→0 (2).
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

// TestFloydWarshall_Cycle pins the full distance matrix of the 4-cycle and
// checks the input survives untouched.
func TestFloydWarshall_Cycle(t *testing.T) {
	W := cycleW(t)
	d, err := oracle.FloydWarshall(W)
	require.NoError(t, err)

	want := [][]float64{
		{0, 3, 4, 11},
		{10, 0, 1, 8},
		{9, 12, 0, 7},
		{2, 5, 6, 0},
	}
	for i, row := range want {
		got, _ := d.RowView(i)
		for j := range row {
			assert.InDelta(t, row[j], got[j], floatTol, "(%d,%d)", i, j)
		}
	}

	// W itself must be unchanged (FloydWarshall works on a clone).
	w12, _ := W.At(1, 2)
	assert.Equal(t, 1.0, w12)
}

// TestDijkstra_AgreesWithBellmanFord cross-checks the two SSSP oracles on
// random graphs, including unreachable vertices.
func TestDijkstra_AgreesWithBellmanFord(t *testing.T) {
	sp := semiring.ShortestPath()
	for n := 1; n <= 16; n++ {
		W, err := builder.Random(n, sp, builder.WithSeed(int64(n)), builder.WithDensity(0.2))
		require.NoError(t, err)

		dj, err := oracle.Dijkstra(W, 0)
		require.NoError(t, err)
		bf, err := oracle.BellmanFord(W, 0)
		require.NoError(t, err)

		require.Len(t, dj, n)
		for i := range dj {
			if math.IsInf(bf[i], 1) {
				assert.True(t, math.IsInf(dj[i], 1), "[%d]", i)
				continue
			}
			assert.InDelta(t, bf[i], dj[i], floatTol, "[%d]", i)
		}
	}
}

// TestDijkstra_Preconditions covers the negative-weight and source-range
// sentinels.
func TestDijkstra_Preconditions(t *testing.T) {
	W := cycleW(t)

	_, err := oracle.Dijkstra(W, -1)
	assert.ErrorIs(t, err, oracle.ErrSourceOutOfRange)
	_, err = oracle.Dijkstra(W, 4)
	assert.ErrorIs(t, err, oracle.ErrSourceOutOfRange)

	require.NoError(t, W.Set(0, 1, -3))
	_, err = oracle.Dijkstra(W, 0)
	assert.ErrorIs(t, err, oracle.ErrNegativeWeight)

	// Bellman–Ford accepts negative weights (no negative cycle here).
	d, err := oracle.BellmanFord(W, 0)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, d[1], floatTol)
}

// TestKruskalPrim_House pins both MST oracles on the distinct-weight house
// graph: total 11, three edges.
func TestKruskalPrim_House(t *testing.T) {
	inf := math.Inf(1)
	W, err := matrix.FromRows([][]float64{
		{inf, 2, inf, 6},
		{2, inf, 3, 8},
		{inf, 3, inf, inf},
		{6, 8, inf, inf},
	})
	require.NoError(t, err)

	kEdges, kTotal, err := oracle.Kruskal(W)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, kTotal, floatTol)
	assert.Equal(t, []mst.Edge[float64]{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: 3},
		{U: 0, V: 3, Weight: 6},
	}, kEdges)

	pEdges, pTotal, err := oracle.Prim(W, 0)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, pTotal, floatTol)
	assert.Len(t, pEdges, 3)
}

// TestKruskalPrim_Disconnected verifies both oracles refuse graphs without
// a spanning tree.
func TestKruskalPrim_Disconnected(t *testing.T) {
	inf := math.Inf(1)
	W, err := matrix.FromRows([][]float64{
		{inf, 4, inf, inf},
		{4, inf, inf, inf},
		{inf, inf, inf, 5},
		{inf, inf, 5, inf},
	})
	require.NoError(t, err)

	_, _, err = oracle.Kruskal(W)
	assert.ErrorIs(t, err, oracle.ErrDisconnected)
	_, _, err = oracle.Prim(W, 0)
	assert.ErrorIs(t, err, oracle.ErrDisconnected)
}

// TestKruskal_MatchesPrim cross-checks total weights on random connected
// symmetric graphs.
func TestKruskal_MatchesPrim(t *testing.T) {
	sp := semiring.ShortestPath()
	for n := 2; n <= 16; n++ {
		W, err := builder.Random(n, sp,
			builder.WithSeed(int64(70+n)), builder.WithSymmetric(), builder.WithConnected())
		require.NoError(t, err)

		kEdges, kTotal, err := oracle.Kruskal(W)
		require.NoError(t, err)
		pEdges, pTotal, err := oracle.Prim(W, 0)
		require.NoError(t, err)

		assert.Len(t, kEdges, n-1)
		assert.Len(t, pEdges, n-1)
		assert.InDelta(t, kTotal, pTotal, floatTol, "n=%d", n)
	}
}

// TestWidestPath_Bottleneck pins the max-min closure on a small capacity
// graph: 0→1 (4), 1→2 (2), 0→2 (1) — the widest 0→2 route is 2 via 1.
func TestWidestPath_Bottleneck(t *testing.T) {
	inf := math.Inf(1)
	W, err := matrix.FromRows([][]float64{
		{inf, 4, 1},
		{0, inf, 2},
		{0, 0, inf},
	})
	require.NoError(t, err)

	width, err := oracle.WidestPath(W)
	require.NoError(t, err)
	got, err := width.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}
