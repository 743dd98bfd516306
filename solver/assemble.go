package solver

import "github.com/Liozou/crystalnets-core/periodicgraph"

// AssembleSystem builds the balance system of spec §4.7 from a periodic
// graph: A is the n×n matrix with A[i,i] = -deg(i) (self-loops at i
// excluded) and A[i,j] (j != i) the number of periodic neighbor entries
// of i pointing at j; Y[i] is minus the componentwise sum of the offsets
// of every edge leaving i (including self-loops, whose +o and -o
// contributions cancel).
func AssembleSystem(g *periodicgraph.PeriodicGraph3D) (a [][]int64, y [][3]int64) {
	n := g.NumVertices()
	a = make([][]int64, n)
	y = make([][3]int64, n)
	for i := range a {
		a[i] = make([]int64, n)
	}

	for i := 0; i < n; i++ {
		for _, nb := range g.Neighbors(i) {
			y[i][0] -= int64(nb.O[0])
			y[i][1] -= int64(nb.O[1])
			y[i][2] -= int64(nb.O[2])
			if nb.V == i {
				continue // self-loops do not contribute to the degree count
			}
			a[i][i]--
			a[i][nb.V]++
		}
	}

	return a, y
}
