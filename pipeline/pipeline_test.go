package pipeline_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/cell"
	"github.com/Liozou/crystalnets-core/cif"
	"github.com/Liozou/crystalnets-core/clustering"
	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/pipeline"
	"github.com/Liozou/crystalnets-core/rational"
	"github.com/Liozou/crystalnets-core/report"
)

func cubicCell(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.NewCell(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)
	return c
}

// a single P1 record with two atoms bonded, one at the origin and one
// at the cell's center, matching spec.md §8 end-to-end scenario 4. The
// two positions are equidistant under all eight {0,-1}³ lattice
// translations, so C5 retains all eight as tied minimum-distance
// offsets rather than a single edge; that tie is exactly what lets the
// two degree-8 vertices' equilibrium split at the midpoint instead of
// collapsing onto each other, the way a single untied bond would.
func TestRunSingleBondAcrossCenterPlacesSecondAtomAtMidpoint(t *testing.T) {
	pos := mat.NewDense(3, 2, nil)
	pos.Set(0, 0, 0)
	pos.Set(1, 0, 0)
	pos.Set(2, 0, 0)
	pos.Set(0, 1, 0.5)
	pos.Set(1, 1, 0.5)
	pos.Set(2, 1, 0.5)
	bonds := cif.NewBonds(2)
	bonds.Set(0, 1, true)
	record := &cif.Record{
		Metadata: map[string]cif.MetaValue{},
		Cell:     cubicCell(t),
		Types:    []string{"C"},
		Ids:      []int{0, 0},
		Pos:      pos,
		Bonds:    bonds,
	}

	out, err := pipeline.Run(record, clustering.EachVertexClustering, clustering.DefaultSBUFinder{}, report.Default)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumVertices())
	for axis := 0; axis < 3; axis++ {
		assert.Equal(t, int64(0), out.Positions[0][axis].Num().Int64())
	}
	assert.Equal(t, big.NewRat(1, 2), out.Positions[1][0])
	assert.Equal(t, big.NewRat(1, 2), out.Positions[1][1])
	assert.Equal(t, big.NewRat(1, 2), out.Positions[1][2])
}

// a record with atoms but an all-zero bond matrix must be rejected as
// EmptyGraph before C5 ever runs, distinct from NonCrystallineInput
// (which only applies once a graph with edges fails dimensionality).
func TestBuildRejectsAllZeroBondsAsEmptyGraph(t *testing.T) {
	pos := mat.NewDense(3, 2, nil)
	pos.Set(0, 1, 0.5)
	pos.Set(1, 1, 0.5)
	pos.Set(2, 1, 0.5)
	record := &cif.Record{
		Metadata: map[string]cif.MetaValue{},
		Cell:     cubicCell(t),
		Types:    []string{"C"},
		Ids:      []int{0, 0},
		Pos:      pos,
		Bonds:    cif.NewBonds(2),
	}

	_, err := pipeline.Build(record, report.Default)
	assert.ErrorIs(t, err, periodicgraph.ErrEmptyGraph)
}

// the primitive cubic net of spec.md §8 end-to-end scenario 5: every
// corner of the conventional cubic cell is the same lattice point
// bonded to its three axis neighbors across the cell boundary, so the
// graph is a single vertex with one self-loop per axis (the same
// construction periodicgraph_test.go and clustering_test.go build
// directly). Trimming is a no-op on it since no vertex has degree 1
// or 2, and its equilibrium places the sole vertex at the origin with
// values fitting the narrowest width tier.
func primitiveCubicGraph() *periodicgraph.PeriodicGraph3D {
	return periodicgraph.New(1, []periodicgraph.PeriodicEdge3D{
		{U: 0, V: 0, O: periodicgraph.Offset{1, 0, 0}},
		{U: 0, V: 0, O: periodicgraph.Offset{0, 1, 0}},
		{U: 0, V: 0, O: periodicgraph.Offset{0, 0, 1}},
	})
}

func TestSelectEachVertexPrimitiveCubicNetPlacesVertexAtOrigin(t *testing.T) {
	crystal := clustering.Crystal[clustering.None]{
		Cell:     cubicCell(t),
		Elements: []string{"Po"},
		Graph:    primitiveCubicGraph(),
	}

	result, err := clustering.Select(clustering.EachVertexClustering, crystal, clustering.DefaultSBUFinder{}, report.Default)
	require.NoError(t, err)
	require.Equal(t, 1, result.NumVertices())
	assert.Equal(t, rational.Width8, result.Width)
	for axis := 0; axis < 3; axis++ {
		assert.Equal(t, int64(0), result.Positions[0][axis].Num().Int64())
	}
}

// two disjoint rank-3 components (spec.md §8 end-to-end scenario 6):
// a CIF with no bonds linking two separately-periodic fragments must
// be rejected as NonCrystallineInput rather than silently picking one.
func TestSelectTwoDisjointComponentsIsNonCrystalline(t *testing.T) {
	g := periodicgraph.New(2, []periodicgraph.PeriodicEdge3D{
		{U: 0, V: 0, O: periodicgraph.Offset{1, 0, 0}},
		{U: 0, V: 0, O: periodicgraph.Offset{0, 1, 0}},
		{U: 0, V: 0, O: periodicgraph.Offset{0, 0, 1}},
		{U: 1, V: 1, O: periodicgraph.Offset{1, 0, 0}},
		{U: 1, V: 1, O: periodicgraph.Offset{0, 1, 0}},
		{U: 1, V: 1, O: periodicgraph.Offset{0, 0, 1}},
	})
	crystal := clustering.Crystal[clustering.None]{
		Cell:     cubicCell(t),
		Elements: []string{"P", "P"},
		Graph:    g,
	}

	_, err := clustering.Select(clustering.EachVertexClustering, crystal, clustering.DefaultSBUFinder{}, report.Default)
	assert.ErrorIs(t, err, periodicgraph.ErrNonCrystalline)
}
