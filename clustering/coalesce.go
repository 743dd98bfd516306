package clustering

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/periodicgraph"
)

// Coalesce merges crystal's clusters into super-vertices (spec §6
// collaborator coalesce_sbus): one vertex per cluster, positioned at
// the mean of its members' positions (each member shifted by its
// cluster offset first, mirroring the edge-offset compensation
// net.Canonicalize already performs for the same reason — bringing
// every member into a common reference image before averaging), and
// edges induced between clusters by every inter-cluster atom bond,
// with the bond's offset compensated by the endpoints' own offsets.
// Bonds between two distinct atoms of the same cluster are absorbed and
// dropped; an atom's own self-loop is kept as a self-loop of its cluster.
func Coalesce(crystal Crystal[Present]) (Crystal[None], error) {
	clusters := crystal.State.Clusters
	numClusters := len(clusters.Members)

	sums := make([][3]float64, numClusters)
	counts := make([]int, numClusters)
	elements := make([]string, numClusters)
	for v := 0; v < crystal.NumVertices(); v++ {
		cl := clusters.Attribution[v]
		off := clusters.Offset[v]
		p := crystal.FracAt(v)
		for axis := 0; axis < 3; axis++ {
			sums[cl][axis] += p[axis] - float64(off[axis])
		}
		counts[cl]++
		if elements[cl] == "" {
			elements[cl] = crystal.Elements[v]
		}
	}

	pos := mat.NewDense(3, numClusters, nil)
	for cl := 0; cl < numClusters; cl++ {
		n := float64(counts[cl])
		for axis := 0; axis < 3; axis++ {
			pos.Set(axis, cl, sums[cl][axis]/n)
		}
	}

	var edges []periodicgraph.PeriodicEdge3D
	for _, e := range crystal.Graph.Edges() {
		cu, cv := clusters.Attribution[e.U], clusters.Attribution[e.V]
		if cu == cv && e.U != e.V {
			// two distinct atoms merged into the same cluster: this
			// bond is absorbed into the super-vertex, not periodicity.
			continue
		}
		offU, offV := clusters.Offset[e.U], clusters.Offset[e.V]
		o := periodicgraph.Offset{
			e.O[0] + offV[0] - offU[0],
			e.O[1] + offV[1] - offU[1],
			e.O[2] + offV[2] - offU[2],
		}
		edges = append(edges, periodicgraph.PeriodicEdge3D{U: cu, V: cv, O: o})
	}

	return Crystal[None]{
		Cell:     crystal.Cell,
		Elements: elements,
		State:    None{},
		Pos:      pos,
		Graph:    periodicgraph.New(numClusters, edges),
	}, nil
}
