package net

import (
	"github.com/Liozou/crystalnets-core/cell"
	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/rational"
)

// CrystalNet is the final canonical form produced by C8 (spec §3
// CrystalNet<T>): a Cell with no equivalents, one element symbol and
// one fractional position per vertex, and the periodic graph those
// positions were derived from.
//
// The spec's T (the numerator/denominator width the positions are
// expressed over) is not realized as a Go generic parameter: no
// per-width arithmetic type exists anywhere in this module, only the
// bound-checking Width tag that rational.WidenToFit already attaches
// to plain *big.Rat values (see C1's own design note on the ladder).
// CrystalNet carries that tag as Width instead, alongside positions
// that remain exact *big.Rat throughout.
type CrystalNet struct {
	Cell      *cell.Cell
	Elements  []string
	Positions []rational.Vec3
	Graph     *periodicgraph.PeriodicGraph3D
	Width     rational.Width
}

// NumVertices returns the number of vertices in the net.
func (n *CrystalNet) NumVertices() int {
	return len(n.Positions)
}
