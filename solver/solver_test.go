package solver_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/rational"
	"github.com/Liozou/crystalnets-core/solver"
)

// parallelEdgeGraph is two vertices joined by two distinct bonds, one
// within the cell and one across a single +x translation.
func parallelEdgeGraph() *periodicgraph.PeriodicGraph3D {
	return periodicgraph.New(2, []periodicgraph.PeriodicEdge3D{
		{U: 0, V: 1, O: periodicgraph.Offset{0, 0, 0}},
		{U: 0, V: 1, O: periodicgraph.Offset{1, 0, 0}},
	})
}

func TestAssembleSystem(t *testing.T) {
	g := parallelEdgeGraph()
	a, y := solver.AssembleSystem(g)

	assert.Equal(t, [][]int64{{-2, 2}, {2, -2}}, a)
	assert.Equal(t, [3]int64{-1, 0, 0}, y[0])
	assert.Equal(t, [3]int64{1, 0, 0}, y[1])
}

func TestSolveEquilibriumBalance(t *testing.T) {
	g := parallelEdgeGraph()
	x, err := solver.Solve(g)
	require.NoError(t, err)
	require.Len(t, x, 2)

	half := big.NewRat(1, 2)
	assert.Equal(t, 0, x[1][0].Cmp(new(big.Rat).Neg(half)))
	assert.Equal(t, 0, x[1][1].Sign())
	assert.Equal(t, 0, x[1][2].Sign())

	// spec §8 property 7: deg(i)·X[:,i] == Σ (X[:,j] + o) exactly.
	for i := 0; i < g.NumVertices(); i++ {
		var sum [3]*big.Rat
		for c := range sum {
			sum[c] = big.NewRat(0, 1)
		}
		for _, nb := range g.Neighbors(i) {
			for c := 0; c < 3; c++ {
				sum[c].Add(sum[c], x[nb.V][c])
				sum[c].Add(sum[c], big.NewRat(int64(nb.O[c]), 1))
			}
		}
		deg := big.NewRat(int64(g.Degree(i)), 1)
		for c := 0; c < 3; c++ {
			got := new(big.Rat).Mul(deg, x[i][c])
			assert.Equal(t, 0, got.Cmp(sum[c]), "vertex %d axis %d", i, c)
		}
	}
}

func TestSolveSingleVertex(t *testing.T) {
	g := periodicgraph.New(1, nil)
	x, err := solver.Solve(g)
	require.NoError(t, err)
	require.Len(t, x, 1)
	for c := 0; c < 3; c++ {
		assert.Equal(t, 0, x[0][c].Sign())
	}
}

func TestSolveWithCrossCheck(t *testing.T) {
	g := parallelEdgeGraph()
	_, err := solver.Solve(g, solver.WithCrossCheck(true))
	assert.NoError(t, err)
}

func TestSelectWidth(t *testing.T) {
	g := parallelEdgeGraph()
	x, err := solver.Solve(g)
	require.NoError(t, err)

	w, err := solver.SelectWidth(x)
	require.NoError(t, err)
	assert.Equal(t, rational.Width8, w)
}
