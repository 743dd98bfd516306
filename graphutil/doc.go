// Package graphutil provides the small amount of general graph
// machinery used by clustering: a plain undirected
// multigraph over integer vertex indices, connected-component
// partitioning, and a union-find (disjoint-set) structure.
//
// It deliberately does not carry the directed/weighted/mixed-edge
// machinery or the concurrency guards of a general-purpose graph
// library: every graph this module builds is undirected, unweighted at
// this layer (periodic offsets and solved distances live one layer up,
// in periodicgraph and net), and built and consumed within a single
// goroutine.
package graphutil

import "errors"

// ErrInvalidVertex indicates an operation referenced a vertex index
// outside [0, NumVertices).
var ErrInvalidVertex = errors.New("graphutil: invalid vertex index")
