package net

import (
	"math/big"
	"sort"

	"github.com/Liozou/crystalnets-core/cell"
	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/rational"
)

// Canonicalize implements C8 (spec §4.8): given a cell, one element
// symbol per vertex, a periodic graph, a rational equilibrium
// placement X (one vector per vertex, as produced by solver.Solve),
// and the width C7 selected for that placement, fold every position
// into [0,1)³, sort vertices into ascending position order, relabel
// the graph to match, and adjust every edge's offset so the folding
// is transparent to downstream consumers.
func Canonicalize(c *cell.Cell, elements []string, g *periodicgraph.PeriodicGraph3D, x [][3]*big.Rat, width rational.Width) (*CrystalNet, error) {
	n := g.NumVertices()

	// Stage 1: split each position into its integer lattice offset and
	// its [0,1)³ fractional remainder.
	offsets := make([][3]*big.Int, n)
	positions := make([]rational.Vec3, n)
	for i := 0; i < n; i++ {
		off, pos := rational.FloorVec3(rational.Vec3(x[i]))
		offsets[i] = off
		positions[i] = pos
	}

	// Stage 2: sort vertices by folded position, lexicographically.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return lessVec3(positions[order[a]], positions[order[b]])
	})

	oldToNew := make([]int, n)
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = newIdx
	}

	newElements := make([]string, n)
	newPositions := make([]rational.Vec3, n)
	for newIdx, oldIdx := range order {
		newElements[newIdx] = elements[oldIdx]
		newPositions[newIdx] = positions[oldIdx]
	}

	// Stage 3: relabel every edge and compensate its offset for the
	// shift each of its endpoints underwent in stage 1.
	newEdges := make([]periodicgraph.PeriodicEdge3D, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		o, err := compensateOffset(e.O, offsets[e.U], offsets[e.V])
		if err != nil {
			return nil, err
		}
		newEdges = append(newEdges, periodicgraph.PeriodicEdge3D{
			U: oldToNew[e.U],
			V: oldToNew[e.V],
			O: o,
		})
	}

	newGraph := periodicgraph.New(n, newEdges)

	return &CrystalNet{
		Cell:      c.CopyWithEquivalents(nil),
		Elements:  newElements,
		Positions: newPositions,
		Graph:     newGraph,
		Width:     width,
	}, nil
}

// lessVec3 orders two Vec3 lexicographically by component.
func lessVec3(a, b rational.Vec3) bool {
	for i := 0; i < 3; i++ {
		c := a[i].Cmp(b[i])
		if c != 0 {
			return c < 0
		}
	}
	return false
}

// compensateOffset computes o + offset_v - offset_u (spec §4.8 step 3),
// converting the big.Int per-axis offsets to the small int lattice
// translations a periodicgraph.Offset stores.
func compensateOffset(o periodicgraph.Offset, offU, offV [3]*big.Int) (periodicgraph.Offset, error) {
	var out periodicgraph.Offset
	for k := 0; k < 3; k++ {
		d := new(big.Int).Sub(offV[k], offU[k])
		d.Add(d, big.NewInt(int64(o[k])))
		if !d.IsInt64() {
			return periodicgraph.Offset{}, ErrOffsetOverflow
		}
		v := d.Int64()
		if v != int64(int(v)) {
			return periodicgraph.Offset{}, ErrOffsetOverflow
		}
		out[k] = int(v)
	}
	return out, nil
}
