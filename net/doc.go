// Package net canonicalizes a rational equilibrium placement into a
// CrystalNet: every vertex folded into [0,1)³, vertices sorted into a
// deterministic order, and the graph relabeled and re-offset to match
// (spec §4.8, C8).
package net

import "errors"

// ErrOffsetOverflow indicates a per-vertex integer offset produced by
// folding the solver's placement into the unit cell does not fit in a
// periodicgraph.Offset (spec: int-valued lattice translation). A
// correctly converged equilibrium placement never triggers this; it
// guards against a caller-supplied placement with pathological
// magnitude.
var ErrOffsetOverflow = errors.New("net: folded lattice offset overflows int")
