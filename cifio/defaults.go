package cifio

import (
	"fmt"
	"math/big"

	"github.com/Liozou/crystalnets-core/clustering"
	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/solver"
)

// DefaultDimensionalityAnalyzer wraps periodicgraph.AnalyzeDimensionality,
// which already implements spec §6's dimensionality collaborator
// internally (it needs PeriodicGraph3D's adjacency directly).
type DefaultDimensionalityAnalyzer struct{}

// Analyze implements DimensionalityAnalyzer.
func (DefaultDimensionalityAnalyzer) Analyze(g *periodicgraph.PeriodicGraph3D) ([]periodicgraph.ComponentAnalysis, error) {
	return periodicgraph.AnalyzeDimensionality(g)
}

// DefaultVertexRemover wraps periodicgraph.Subgraph, restricting g to
// its vertex set minus idxs (spec §6 rem_vertices!).
type DefaultVertexRemover struct{}

// RemoveVertices implements VertexRemover.
func (DefaultVertexRemover) RemoveVertices(g *periodicgraph.PeriodicGraph3D, idxs []int) (*periodicgraph.PeriodicGraph3D, []int, error) {
	remove := make(map[int]bool, len(idxs))
	for _, idx := range idxs {
		if idx < 0 || idx >= g.NumVertices() {
			return nil, nil, fmt.Errorf("cifio: RemoveVertices: index %d out of range [0,%d)", idx, g.NumVertices())
		}
		remove[idx] = true
	}
	keep := make([]int, 0, g.NumVertices()-len(remove))
	for v := 0; v < g.NumVertices(); v++ {
		if !remove[v] {
			keep = append(keep, v)
		}
	}
	sub, vmap := periodicgraph.Subgraph(g, keep)
	return sub, vmap, nil
}

// DefaultOffsetShifter wraps periodicgraph.ShiftRepresentatives (spec §6
// offset_representatives!).
type DefaultOffsetShifter struct{}

// ShiftOffsets implements OffsetShifter.
func (DefaultOffsetShifter) ShiftOffsets(g *periodicgraph.PeriodicGraph3D, shifts []periodicgraph.Offset) *periodicgraph.PeriodicGraph3D {
	return periodicgraph.ShiftRepresentatives(g, shifts)
}

// DefaultLinearSolver wraps solver.DixonSolve (spec §6 dixon_solve),
// carrying a fixed set of solver options so it can satisfy the
// non-variadic LinearSolver interface.
type DefaultLinearSolver struct {
	Options []solver.Option
}

// Solve implements LinearSolver.
func (s DefaultLinearSolver) Solve(a [][]int64, y [][3]int64) ([][3]*big.Rat, error) {
	return solver.DixonSolve(a, y, s.Options...)
}

// DefaultCoalescer wraps clustering.Coalesce (spec §6 coalesce_sbus).
type DefaultCoalescer struct{}

// Coalesce implements Coalescer.
func (DefaultCoalescer) Coalesce(crystal clustering.Crystal[clustering.Present]) (clustering.Crystal[clustering.None], error) {
	return clustering.Coalesce(crystal)
}
