package clustering

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/cell"
	"github.com/Liozou/crystalnets-core/periodicgraph"
)

// ClusterMember is one atom belonging to a cluster: its original
// vertex index and the ℤ³ offset that brings it into the cluster's
// reference image (spec §3 Clusters).
type ClusterMember struct {
	Vertex int
	Offset [3]int
}

// Clusters is a partition of atoms into SBUs (spec §3 Clusters): for
// every original vertex, which cluster it belongs to and by what
// offset, plus the membership list per cluster.
type Clusters struct {
	Attribution []int // per atom: cluster index
	Offset      [][3]int
	Members     [][]ClusterMember // per cluster: its members
}

// IsEmpty reports whether every atom is its own cluster with zero
// offset (spec §3: "tested as attribution[i]=i ∀i").
func (c Clusters) IsEmpty() bool {
	for i, cl := range c.Attribution {
		if cl != i {
			return false
		}
	}
	return true
}

// Identity returns the trivial clustering on n atoms: each atom is its
// own cluster, at zero offset.
func Identity(n int) Clusters {
	attribution := make([]int, n)
	offset := make([][3]int, n)
	members := make([][]ClusterMember, n)
	for i := 0; i < n; i++ {
		attribution[i] = i
		members[i] = []ClusterMember{{Vertex: i}}
	}
	return Clusters{Attribution: attribution, Offset: offset, Members: members}
}

// ClusterState is the closed two-member set {Present, None} that
// Crystal's type parameter ranges over (spec §9 design note: "Union
// type Crystal<T>... tagged variant with two variants").
type ClusterState interface {
	clusterState()
}

// Present tags a Crystal that carries an actual clustering.
type Present struct {
	Clusters Clusters
}

func (Present) clusterState() {}

// None tags a Crystal with no clustering (each atom its own vertex).
type None struct{}

func (None) clusterState() {}

// Crystal is spec §3's Crystal<T>: a cell, one element symbol per
// vertex, an optional clustering tagged by T, a fractional 3×N
// position matrix, and the periodic graph over the same vertex set.
type Crystal[T ClusterState] struct {
	Cell     *cell.Cell
	Elements []string
	State    T
	Pos      *mat.Dense // 3×N fractional positions
	Graph    *periodicgraph.PeriodicGraph3D
}

// NumVertices returns the number of vertices (len(Elements)).
func (c Crystal[T]) NumVertices() int { return len(c.Elements) }

// isAnyCrystal satisfies AnyCrystal regardless of T, giving the
// selector a single parameter type to dispatch on by type switch —
// the Go rendering of "tagged variant... dispatches on the tag."
func (c Crystal[T]) isAnyCrystal() {}

// AnyCrystal is satisfied by both Crystal[Present] and Crystal[None].
type AnyCrystal interface {
	isAnyCrystal()
}

// FracAt returns the fractional position of vertex i.
func (c Crystal[T]) FracAt(i int) [3]float64 {
	return [3]float64{c.Pos.At(0, i), c.Pos.At(1, i), c.Pos.At(2, i)}
}
