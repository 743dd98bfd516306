package cifio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liozou/crystalnets-core/cifio"
	"github.com/Liozou/crystalnets-core/periodicgraph"
)

func TestDefaultTokenizerSymmetryOperator(t *testing.T) {
	toks, err := cifio.DefaultTokenizer{}.Tokenize("-x+1/2, y")
	require.NoError(t, err)

	kinds := make([]cifio.TokenKind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []cifio.TokenKind{
		cifio.KindMinus,
		cifio.KindIdentifier,
		cifio.KindPlus,
		cifio.KindInteger,
		cifio.KindSlash,
		cifio.KindInteger,
		cifio.KindComma,
		cifio.KindWhitespace,
		cifio.KindIdentifier,
		cifio.KindEnd,
	}, kinds)

	assert.Equal(t, "x", "-x+1/2, y"[toks[1].Start:toks[1].End])
}

func TestDefaultTokenizerRejectsUnknownCharacter(t *testing.T) {
	_, err := cifio.DefaultTokenizer{}.Tokenize("x#y")
	assert.Error(t, err)
}

func TestDefaultVertexRemoverDropsRequestedIndices(t *testing.T) {
	g := periodicgraph.New(3, []periodicgraph.PeriodicEdge3D{
		{U: 0, V: 1, O: periodicgraph.Offset{}},
		{U: 1, V: 2, O: periodicgraph.Offset{}},
	})

	sub, vmap, err := cifio.DefaultVertexRemover{}.RemoveVertices(g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumVertices())
	assert.Equal(t, []int{0, 2}, vmap)
	assert.Empty(t, sub.Edges())
}

func TestDefaultVertexRemoverRejectsOutOfRangeIndex(t *testing.T) {
	g := periodicgraph.New(1, nil)
	_, _, err := cifio.DefaultVertexRemover{}.RemoveVertices(g, []int{5})
	assert.Error(t, err)
}

func TestDefaultOffsetShifterAdjustsEdgeOffsets(t *testing.T) {
	g := periodicgraph.New(2, []periodicgraph.PeriodicEdge3D{
		{U: 0, V: 1, O: periodicgraph.Offset{1, 0, 0}},
	})
	shifted := cifio.DefaultOffsetShifter{}.ShiftOffsets(g, []periodicgraph.Offset{
		{0, 0, 0},
		{-1, 0, 0},
	})
	require.Len(t, shifted.Edges(), 1)
	assert.Equal(t, periodicgraph.Offset{0, 0, 0}, shifted.Edges()[0].O)
}

func TestDefaultLinearSolverMatchesDixonSolve(t *testing.T) {
	a := [][]int64{{1}}
	y := [][3]int64{{3, -2, 0}}

	x, err := cifio.DefaultLinearSolver{}.Solve(a, y)
	require.NoError(t, err)
	require.Len(t, x, 1)
	assert.Equal(t, int64(3), x[0][0].Num().Int64())
	assert.Equal(t, int64(-2), x[0][1].Num().Int64())
}

func TestDefaultDimensionalityAnalyzerRanksComponents(t *testing.T) {
	g := periodicgraph.New(2, []periodicgraph.PeriodicEdge3D{
		{U: 0, V: 0, O: periodicgraph.Offset{1, 0, 0}},
	})
	comps, err := cifio.DefaultDimensionalityAnalyzer{}.Analyze(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)
}
