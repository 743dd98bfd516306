package cifio

import (
	"math/big"

	"github.com/Liozou/crystalnets-core/clustering"
	"github.com/Liozou/crystalnets-core/periodicgraph"
)

// TokenKind classifies a lexeme produced by a Tokenizer, per spec §6's
// grammar for a CIF symmetry-operator value line.
type TokenKind int

const (
	KindInteger TokenKind = iota
	KindIdentifier
	KindPlus
	KindMinus
	KindSlash
	KindComma
	KindSemicolon
	KindWhitespace
	KindEnd
)

func (k TokenKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindIdentifier:
		return "identifier"
	case KindPlus:
		return "plus"
	case KindMinus:
		return "minus"
	case KindSlash:
		return "slash"
	case KindComma:
		return "comma"
	case KindSemicolon:
		return "semicolon"
	case KindWhitespace:
		return "whitespace"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Token is one lexeme of a tokenized line, given as a byte-offset span
// into the original string plus its kind. An end-of-input Token has
// Start == End == len(line) and Kind == KindEnd.
type Token struct {
	Start int
	End   int
	Kind  TokenKind
}

// Tokenizer splits a CIF value line into lexemes (spec §6: "a generic
// text tokenizer"). The symmetry package's own scanner is inlined and
// does not go through this interface; Tokenizer exists for callers
// that want to plug in their own lexer ahead of the core, or reuse one
// across several text-bearing CIF fields.
type Tokenizer interface {
	Tokenize(line string) ([]Token, error)
}

// SBUFinder discovers secondary building units in an unclustered
// crystal (spec §6 find_sbus). Any type satisfying
// clustering.SBUFinder, such as clustering.DefaultSBUFinder, satisfies
// this interface too: the two are structurally identical.
type SBUFinder interface {
	FindSBUs(crystal clustering.Crystal[clustering.None]) (clustering.Clusters, error)
}

// Coalescer merges a clustered crystal's clusters into super-vertices
// (spec §6 coalesce_sbus).
type Coalescer interface {
	Coalesce(crystal clustering.Crystal[clustering.Present]) (clustering.Crystal[clustering.None], error)
}

// DimensionalityAnalyzer partitions a periodic graph into connected
// components and reports each one's periodicity rank (spec §6
// dimensionality). periodicgraph.AnalyzeDimensionality already
// implements this and is wrapped by DefaultDimensionalityAnalyzer
// below.
type DimensionalityAnalyzer interface {
	Analyze(g *periodicgraph.PeriodicGraph3D) ([]periodicgraph.ComponentAnalysis, error)
}

// VertexRemover deletes a set of vertices from a periodic graph and
// returns the resulting graph together with a vmap from new index to
// old index (spec §6 rem_vertices!).
type VertexRemover interface {
	RemoveVertices(g *periodicgraph.PeriodicGraph3D, idxs []int) (*periodicgraph.PeriodicGraph3D, []int, error)
}

// OffsetShifter translates which image of each vertex is treated as
// its canonical representative, without relabeling (spec §6
// offset_representatives!).
type OffsetShifter interface {
	ShiftOffsets(g *periodicgraph.PeriodicGraph3D, shifts []periodicgraph.Offset) *periodicgraph.PeriodicGraph3D
}

// LinearSolver solves the exact integer balance system A·X = Y over ℚ
// (spec §6 dixon_solve).
type LinearSolver interface {
	Solve(a [][]int64, y [][3]int64) ([][3]*big.Rat, error)
}
