package solver

import (
	"math/big"

	"github.com/Liozou/crystalnets-core/periodicgraph"
)

// Solve computes the equilibrium embedding of g (spec §4.7): for every
// vertex i, X[:,i] equals the mean over periodic neighbors (j,o) of
// (X[:,j]+o). The system has a one-dimensional null space (any constant
// shift), so vertex 0 is anchored at the origin and the reduced system
// on rows/columns 1..n-1 is solved via DixonSolve; vertex 0's row is
// reinserted as the zero vector.
func Solve(g *periodicgraph.PeriodicGraph3D, opts ...Option) ([][3]*big.Rat, error) {
	n := g.NumVertices()
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		zero := big.NewRat(0, 1)
		return [][3]*big.Rat{{zero, zero, zero}}, nil
	}

	a, y := AssembleSystem(g)
	reducedA := make([][]int64, n-1)
	reducedY := make([][3]int64, n-1)
	for i := 1; i < n; i++ {
		row := make([]int64, n-1)
		for j := 1; j < n; j++ {
			row[j-1] = a[i][j]
		}
		reducedA[i-1] = row
		reducedY[i-1] = y[i]
	}

	reducedX, err := DixonSolve(reducedA, reducedY, opts...)
	if err != nil {
		return nil, err
	}

	zero := big.NewRat(0, 1)
	x := make([][3]*big.Rat, n)
	x[0] = [3]*big.Rat{zero, zero, zero}
	copy(x[1:], reducedX)

	return x, nil
}
