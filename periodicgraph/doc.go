// Package periodicgraph implements the periodic edge builder and
// periodic graph reducer (spec C5 and C6): PeriodicGraph3D, minimum-image
// edge construction from a bonded CIF record, degree-based trimming,
// and per-component dimensionality (periodicity rank) analysis.
package periodicgraph

import "errors"

// ErrNonCrystalline indicates the graph has no rank-3 connected
// component, or more than one (spec §7 NonCrystallineInput).
var ErrNonCrystalline = errors.New("periodicgraph: no single 3D periodic component")

// ErrEmptyGraph indicates a bonds matrix that is all zero (spec §7
// EmptyGraph).
var ErrEmptyGraph = errors.New("periodicgraph: bonds matrix is empty")
